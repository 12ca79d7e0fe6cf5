package main

import (
	"fmt"
	"log"

	"dscheirer.com/oledtiles/oled_tiles"
	"github.com/pkg/errors"
)

type cell struct {
	row, col int
}

// logPanel keeps the tiles in memory and an audit of every draw
type logPanel struct {
	rows, cols int
	debugDump  bool
	open       bool
	tiles      map[cell]oled_tiles.Tile
	audit      []string
}

func (lp *logPanel) OpenPanel(settings configSettings) error {
	lp.rows = settings.GetInt(sRows)
	lp.cols = settings.GetInt(sCols)
	lp.debugDump = settings.GetBool(sDebug)
	lp.tiles = make(map[cell]oled_tiles.Tile)
	lp.audit = []string{}
	lp.open = true
	return nil
}

func (lp *logPanel) DebugDump(on bool) {
	lp.debugDump = on
}

func (lp *logPanel) DrawTile(row, col int, t oled_tiles.Tile) error {
	if row < 0 || row >= lp.rows || col < 0 || col >= lp.cols {
		return errors.Wrapf(oled_tiles.ErrOffGrid, "log panel: tile %d/%d", row, col)
	}
	lp.tiles[cell{row, col}] = t
	e := fmt.Sprintf("tile %d/%d % x", row, col, t[:])
	if lp.debugDump {
		log.Println(e)
	}
	lp.audit = append(lp.audit, e)
	return nil
}

func (lp *logPanel) ClearPanel() error {
	lp.tiles = make(map[cell]oled_tiles.Tile)
	lp.audit = append(lp.audit, "clear")
	return nil
}

func (lp *logPanel) ClosePanel() error {
	lp.open = false
	return nil
}

// tileAt returns a blank tile for cells never drawn
func (lp *logPanel) tileAt(row, col int) oled_tiles.Tile {
	return lp.tiles[cell{row, col}]
}
