package main

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"dscheirer.com/oledtiles/oled_tiles"
	"github.com/pkg/errors"
	"gotest.tools/assert"
)

func TestLogPanel(t *testing.T) {
	lp := &logPanel{}
	assert.NilError(t, lp.OpenPanel(testSettings))
	assert.Equal(t, lp.open, true)

	tile := oled_tiles.Tile{1, 2, 3, 4, 5, 6, 7, 0xff}
	assert.NilError(t, lp.DrawTile(1, 2, tile))
	assert.DeepEqual(t, lp.audit, []string{"tile 1/2 01 02 03 04 05 06 07 ff"})
	assert.Equal(t, lp.tileAt(1, 2), tile)
	assert.Equal(t, lp.tileAt(2, 1), oled_tiles.Tile{})

	err := lp.DrawTile(16, 0, tile)
	assert.Assert(t, errors.Is(err, oled_tiles.ErrOffGrid))
	assert.Equal(t, len(lp.audit), 1)

	assert.NilError(t, lp.ClearPanel())
	assert.Equal(t, lp.tileAt(1, 2), oled_tiles.Tile{})
	assert.Equal(t, lp.audit[1], "clear")

	assert.NilError(t, lp.ClosePanel())
	assert.Equal(t, lp.open, false)
}

type fakePort struct {
	bytes.Buffer
	closed bool
	short  bool
}

func (fp *fakePort) Write(p []byte) (int, error) {
	if fp.short {
		return fp.Buffer.Write(p[:len(p)-1])
	}
	return fp.Buffer.Write(p)
}

func (fp *fakePort) Close() error {
	fp.closed = true
	return nil
}

func fakeSerial(t *testing.T) *fakePort {
	fp := &fakePort{}
	saved := openSerial
	openSerial = func(port string, baud int) (io.WriteCloser, error) {
		assert.Equal(t, port, testSettings.GetString(sSerialPort))
		assert.Equal(t, baud, 115200)
		return fp, nil
	}
	t.Cleanup(func() {
		openSerial = saved
	})
	return fp
}

func TestSerialPanel(t *testing.T) {
	fp := fakeSerial(t)
	sp := &serialPanel{}

	assert.NilError(t, sp.OpenPanel(testSettings))
	assert.DeepEqual(t, fp.Bytes(), []byte{0x1B, 'C'})
	fp.Reset()

	assert.NilError(t, sp.DrawTile(2, 3, oled_tiles.Tile{1, 2, 3, 4, 5, 6, 7, 8}))
	assert.DeepEqual(t, fp.Bytes(), []byte{0x1B, 'T', 2, 3, 1, 2, 3, 4, 5, 6, 7, 8})
	fp.Reset()

	err := sp.DrawTile(0, 16, oled_tiles.Tile{})
	assert.Assert(t, errors.Is(err, oled_tiles.ErrOffGrid))
	assert.Equal(t, fp.Len(), 0)

	fp.short = true
	assert.ErrorContains(t, sp.DrawTile(0, 0, oled_tiles.Tile{}), "wrote only 11 of 12 bytes")

	assert.NilError(t, sp.ClosePanel())
	assert.Equal(t, fp.closed, true)
}

func TestSerialPanelOpenFails(t *testing.T) {
	saved := openSerial
	defer func() {
		openSerial = saved
	}()
	openSerial = func(port string, baud int) (io.WriteCloser, error) {
		return nil, errors.New("no such port")
	}

	sp := &serialPanel{}
	assert.ErrorContains(t, sp.OpenPanel(testSettings), "cannot open serial port /dev/ttyUSB0")
}

func TestSH1107PanelSimulated(t *testing.T) {
	// the test config has a simulated i2c bus
	sp := &sh1107Panel{}
	assert.NilError(t, sp.OpenPanel(testSettings))
	assert.NilError(t, sp.DrawTile(0, 0, oled_tiles.Tile{0xff}))
	err := sp.DrawTile(0, 16, oled_tiles.Tile{})
	assert.Assert(t, errors.Is(err, oled_tiles.ErrOffGrid))
	assert.NilError(t, sp.ClearPanel())
	assert.NilError(t, sp.ClosePanel())
}

func TestSH1107PanelQuietBus(t *testing.T) {
	sp := &sh1107Panel{}
	assert.NilError(t, sp.OpenPanel(testSettings))
	// debugDump is off in the test config
	assert.Assert(t, !sp.bus.Logging())

	for i := 0; i < 500; i++ {
		assert.NilError(t, sp.DrawTile(i%16, i/16%16, oled_tiles.Tile{0xff}))
	}
	assert.Equal(t, len(sp.bus.Writes()), 0)

	sp.DebugDump(true)
	assert.Assert(t, sp.bus.Logging())
	sp.DebugDump(false)
	assert.Assert(t, !sp.bus.Logging())
	assert.NilError(t, sp.ClosePanel())
}

func TestNewPanel(t *testing.T) {
	comms := initCommChannels()
	s := testSettings.clone()

	for name, want := range map[string]string{
		sinkI2C:    "*main.sh1107Panel",
		sinkSPI:    "*main.sh1107Panel",
		sinkTerm:   "*main.termPanel",
		sinkSerial: "*main.serialPanel",
		sinkLog:    "*main.logPanel",
	} {
		s.Set(sSink, name)
		p, err := newPanel(s, comms)
		assert.NilError(t, err)
		assert.Equal(t, fmt.Sprintf("%T", p), want, name)
	}

	s.Set(sSink, sinkSPI)
	p, _ := newPanel(s, comms)
	assert.Equal(t, p.(*sh1107Panel).spi, true)

	s.Set(sSink, "lcd")
	_, err := newPanel(s, comms)
	assert.ErrorContains(t, err, "unknown sink 'lcd'")
}

func TestNewSource(t *testing.T) {
	for name, want := range map[string]valueSource{
		srcSweep:   sweepSource{},
		srcSysinfo: sysinfoSource{},
		srcHTTP:    httpSource{},
	} {
		src, err := newSource(name)
		assert.NilError(t, err)
		assert.Equal(t, src, want)
	}
	_, err := newSource("mic")
	assert.ErrorContains(t, err, "unknown source 'mic'")
}
