package main

import (
	"io"
	"log"

	"dscheirer.com/oledtiles/oled_tiles"
	"github.com/pkg/errors"
	"go.bug.st/serial"
)

// bridge protocol: ESC 'T' row col b0..b7 draws a tile, ESC 'C' clears
const (
	bridgeEsc   = 0x1B
	bridgeTile  = 'T'
	bridgeClear = 'C'
)

// replaced in tests
var openSerial = func(port string, baud int) (io.WriteCloser, error) {
	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	return serial.Open(port, mode)
}

// serialPanel hands tiles to a microcontroller that owns the panel
type serialPanel struct {
	port      io.WriteCloser
	name      string
	rows      int
	cols      int
	debugDump bool
}

func (sp *serialPanel) OpenPanel(settings configSettings) error {
	sp.name = settings.GetString(sSerialPort)
	sp.rows = settings.GetInt(sRows)
	sp.cols = settings.GetInt(sCols)
	sp.debugDump = settings.GetBool(sDebug)

	var err error
	sp.port, err = openSerial(sp.name, settings.GetInt(sSerialBaud))
	if err != nil {
		return errors.Wrapf(err, "cannot open serial port %s", sp.name)
	}
	return sp.ClearPanel()
}

func (sp *serialPanel) DebugDump(on bool) {
	sp.debugDump = on
}

func (sp *serialPanel) write(data []byte) error {
	n, err := sp.port.Write(data)
	if err != nil {
		return errors.Wrapf(err, "serial write %s", sp.name)
	}
	if n < len(data) {
		return errors.Errorf("serial write %s: wrote only %d of %d bytes", sp.name, n, len(data))
	}
	return nil
}

func (sp *serialPanel) DrawTile(row, col int, t oled_tiles.Tile) error {
	if row < 0 || row >= sp.rows || col < 0 || col >= sp.cols {
		return errors.Wrapf(oled_tiles.ErrOffGrid, "serial panel: tile %d/%d", row, col)
	}
	msg := append([]byte{bridgeEsc, bridgeTile, byte(row), byte(col)}, t[:]...)
	if sp.debugDump {
		log.Printf("serial % x", msg)
	}
	return sp.write(msg)
}

func (sp *serialPanel) ClearPanel() error {
	return sp.write([]byte{bridgeEsc, bridgeClear})
}

func (sp *serialPanel) ClosePanel() error {
	return sp.port.Close()
}
