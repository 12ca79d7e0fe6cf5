package oled_tiles

import (
	"github.com/pkg/errors"
)

type drawCall struct {
	Row, Col int
	Tile     Tile
}

// recordSink keeps every tile it is sent
type recordSink struct {
	calls  []drawCall
	failAt int // fail the nth call (1 based), 0 never
}

func (rs *recordSink) DrawTile(row, col int, t Tile) error {
	if rs.failAt > 0 && len(rs.calls)+1 == rs.failAt {
		return errors.New("bus error")
	}
	rs.calls = append(rs.calls, drawCall{Row: row, Col: col, Tile: t})
	return nil
}

func (rs *recordSink) reset() {
	rs.calls = nil
}

func setup() (*Renderer, *recordSink) {
	rs := &recordSink{}
	return New(rs, DefaultConfig()), rs
}

// logical origin under the default offsets
const (
	x0 = 0
	y0 = 12
)
