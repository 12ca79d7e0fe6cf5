package main

import (
	"dscheirer.com/oledtiles/oled_tiles"
)

// panel is where the renderer's tiles end up
type panel interface {
	OpenPanel(settings configSettings) error
	DebugDump(on bool)
	DrawTile(row, col int, t oled_tiles.Tile) error
	ClearPanel() error
	ClosePanel() error
}

// valueSource feeds readings to the panel loop until quit closes
type valueSource interface {
	run(rt runtimeConfig)
}
