package main

import (
	"dscheirer.com/oledtiles/i2c"
	"dscheirer.com/oledtiles/oled_tiles"
	"dscheirer.com/oledtiles/sh1107"
	"github.com/pkg/errors"
)

type sh1107Panel struct {
	dev *sh1107.Device
	bus *i2c.I2C // nil on SPI
	spi bool
}

func (sp *sh1107Panel) OpenPanel(settings configSettings) error {
	var err error
	if sp.spi {
		sp.dev, err = sh1107.OpenSPI(sh1107.SPIOpts{
			Speed:    settings.GetInt(sSPISpeed),
			DCPin:    settings.GetInt(sDCPin),
			ResetPin: settings.GetInt(sResetPin),
		})
	} else {
		sp.dev, sp.bus, err = sh1107.OpenI2C(
			settings.GetByte(sI2CDev),
			settings.GetInt(sI2CBus),
			settings.GetBool(sI2CSim))
	}
	if err != nil {
		return errors.Wrap(err, "open panel")
	}
	sp.DebugDump(settings.GetBool(sDebug))

	if err := sp.dev.Init(); err != nil {
		sp.dev.Close()
		return err
	}
	if err := sp.dev.SetContrast(settings.GetByte(sContrast)); err != nil {
		sp.dev.Close()
		return err
	}
	// ready to rock
	return sp.dev.Power(true)
}

func (sp *sh1107Panel) DebugDump(on bool) {
	sp.dev.DebugDump(on)
	if sp.bus != nil {
		sp.bus.SetLogging(on)
	}
}

func (sp *sh1107Panel) DrawTile(row, col int, t oled_tiles.Tile) error {
	return sp.dev.DrawTile(row, col, t)
}

func (sp *sh1107Panel) ClearPanel() error {
	return sp.dev.Clear()
}

func (sp *sh1107Panel) ClosePanel() error {
	return sp.dev.Close()
}
