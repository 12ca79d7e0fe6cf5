/*
Package sh1107 drives a 128x128 monochrome OLED on an SH1107 controller.

The controller memory is 16 pages of 8 pixel rows by 128 columns, so the
panel splits naturally into a 16x16 grid of 8x8 tiles. Tiles are written
whole, one page address and eight column bytes per tile.
*/
package sh1107

import (
	"log"

	"dscheirer.com/oledtiles/oled_tiles"
	"github.com/pkg/errors"
)

// commands we use
const (
	cmdDisplayOff     = 0xAE
	cmdDisplayOn      = 0xAF
	cmdStartLine      = 0xDC // + 1 byte
	cmdContrast       = 0x81 // + 1 byte
	cmdPageAddressing = 0x20
	cmdSegmentRemap   = 0xA0
	cmdScanDirection  = 0xC0
	cmdMultiplex      = 0xA8 // + 1 byte
	cmdDisplayOffset  = 0xD3 // + 1 byte
	cmdClockDivide    = 0xD5 // + 1 byte
	cmdPrecharge      = 0xD9 // + 1 byte
	cmdVcomDeselect   = 0xDB // + 1 byte
	cmdResumeRAM      = 0xA4
	cmdNormal         = 0xA6
	cmdPage           = 0xB0 // | page
	cmdColumnHigh     = 0x10 // | col >> 4
	cmdColumnLow      = 0x00 // | col & 0x0f
)

const (
	Width  = 128
	Pages  = 16
	Tiles  = Width / 8
	tileSz = 8

	DefaultContrast = 0x2F
)

var initSequence = []byte{
	cmdDisplayOff,
	cmdStartLine, 0x00,
	cmdContrast, DefaultContrast,
	cmdPageAddressing,
	cmdSegmentRemap,
	cmdScanDirection,
	cmdMultiplex, 0x7F,
	cmdDisplayOffset, 0x60,
	cmdClockDivide, 0x51,
	cmdPrecharge, 0x22,
	cmdVcomDeselect, 0x35,
	cmdResumeRAM,
	cmdNormal,
}

// transport carries commands and display data to the controller.
type transport interface {
	command(cmds ...byte) error
	data(buf []byte) error
	Close() error
}

// Device is one SH1107 panel. It implements oled_tiles.Sink.
type Device struct {
	bus      transport
	contrast uint8
	on       bool
	dump     bool
}

func newDevice(bus transport) *Device {
	return &Device{bus: bus, contrast: DefaultContrast}
}

// DebugDump logs every tile as it is written.
func (this *Device) DebugDump(on bool) {
	this.dump = on
}

// Init sends the power up sequence and clears the panel. You still need to
// call Power(true) to light it.
func (this *Device) Init() error {
	if err := this.bus.command(initSequence...); err != nil {
		return errors.Wrap(err, "sh1107: init")
	}
	return this.Clear()
}

// Power turns the panel on or off. Memory is kept while off.
func (this *Device) Power(on bool) error {
	cmd := byte(cmdDisplayOff)
	if on {
		cmd = cmdDisplayOn
	}
	if err := this.bus.command(cmd); err != nil {
		return errors.Wrap(err, "sh1107: power")
	}
	this.on = on
	return nil
}

// SetContrast sets the panel contrast, 0 to 255.
func (this *Device) SetContrast(level uint8) error {
	if err := this.bus.command(cmdContrast, level); err != nil {
		return errors.Wrap(err, "sh1107: contrast")
	}
	this.contrast = level
	return nil
}

func (this *Device) address(page, column int) error {
	return this.bus.command(
		cmdPage|byte(page),
		cmdColumnHigh|byte(column>>4),
		cmdColumnLow|byte(column&0x0f))
}

// Clear blanks the whole display memory.
func (this *Device) Clear() error {
	blank := make([]byte, Width)
	for page := 0; page < Pages; page++ {
		if err := this.address(page, 0); err != nil {
			return errors.Wrap(err, "sh1107: clear")
		}
		if err := this.bus.data(blank); err != nil {
			return errors.Wrap(err, "sh1107: clear")
		}
	}
	return nil
}

// DrawTile writes one tile. row picks the 8 column group across the
// panel and col the page, the same order u8x8 style drivers use; byte i
// of the tile becomes column row*8+i, least significant bit at the top.
func (this *Device) DrawTile(row, col int, t oled_tiles.Tile) error {
	if row < 0 || row >= Tiles || col < 0 || col >= Pages {
		return errors.Wrapf(oled_tiles.ErrOffGrid, "sh1107: tile %d/%d", row, col)
	}
	if this.dump {
		log.Printf("tile %d/%d % x", row, col, t[:])
	}
	if err := this.address(col, row*tileSz); err != nil {
		return errors.Wrapf(err, "sh1107: tile %d/%d", row, col)
	}
	if err := this.bus.data(t[:]); err != nil {
		return errors.Wrapf(err, "sh1107: tile %d/%d", row, col)
	}
	return nil
}

// Close powers the panel down and releases the bus.
func (this *Device) Close() error {
	if this.on {
		if err := this.Power(false); err != nil {
			return err
		}
	}
	return this.bus.Close()
}
