/*
Package oled_tiles draws fixed 8x8 glyph tiles (digits, letters, dials, VU
bars, symbols) onto a tile addressed monochrome panel that is mounted rotated
by 90 degrees, connector edge on the right.

The panel is treated as a grid of tiles. A Renderer translates logical tile
coordinates, x growing to the right and y growing down the rotated panel,
into the panel's own addressing and hands each tile to a Sink. Nothing is buffered:
every tile drawn is exactly one Sink call, in order.
*/
package oled_tiles

import (
	"github.com/pkg/errors"
)

var (
	// ErrOutOfRange is returned when a glyph index or value is outside its table.
	ErrOutOfRange = errors.New("out of range")
	// ErrInvalidLength is returned when a text field length does not match its string.
	ErrInvalidLength = errors.New("invalid length")
	// ErrOffGrid is returned when a tile would land outside the panel.
	ErrOffGrid = errors.New("off grid")
)

// Sink accepts one tile at a panel grid coordinate.
type Sink interface {
	DrawTile(row, col int, t Tile) error
}

// Config describes the target panel.
type Config struct {
	XOffset int
	YOffset int
	Rows    int
	Cols    int
}

// DefaultConfig suits a 128x128 SH1107 board mounted with its pins on the right.
func DefaultConfig() Config {
	return Config{
		XOffset: 15,
		YOffset: 12,
		Rows:    16,
		Cols:    16,
	}
}

// Renderer draws glyphs on one panel. It is not safe for concurrent use.
type Renderer struct {
	sink    Sink
	xOffset int
	yOffset int
	rows    int
	cols    int
}

// New returns a Renderer for sink. Zero grid sizes fall back to the defaults.
func New(sink Sink, cfg Config) *Renderer {
	def := DefaultConfig()
	if cfg.Rows <= 0 {
		cfg.Rows = def.Rows
	}
	if cfg.Cols <= 0 {
		cfg.Cols = def.Cols
	}
	return &Renderer{
		sink:    sink,
		xOffset: cfg.XOffset,
		yOffset: cfg.YOffset,
		rows:    cfg.Rows,
		cols:    cfg.Cols,
	}
}

// SetXOffset sets the x translation for the target screen.
func (r *Renderer) SetXOffset(val int) {
	r.xOffset = val
}

// SetYOffset sets the y translation for the target screen.
func (r *Renderer) SetYOffset(val int) {
	r.yOffset = val
}

// Config returns the renderer's current settings.
func (r *Renderer) Config() Config {
	return Config{XOffset: r.xOffset, YOffset: r.yOffset, Rows: r.rows, Cols: r.cols}
}

// Transform maps logical tile coordinates onto the rotated panel.
func (r *Renderer) Transform(x, y int) (row, col int) {
	return y - r.yOffset, r.xOffset - x
}

func (r *Renderer) onGrid(row, col int) bool {
	return row >= 0 && row < r.rows && col >= 0 && col < r.cols
}

// draw sends a composed glyph anchored at (x, y). The whole glyph is
// checked against the grid before the first tile goes out.
func (r *Renderer) draw(x, y int, tiles []placement) error {
	for _, p := range tiles {
		row, col := r.Transform(x+p.dx, y+p.dy)
		if !r.onGrid(row, col) {
			return errors.Wrapf(ErrOffGrid, "tile (%d,%d) maps to %d/%d", x+p.dx, y+p.dy, row, col)
		}
	}
	for _, p := range tiles {
		row, col := r.Transform(x+p.dx, y+p.dy)
		if err := r.sink.DrawTile(row, col, p.tile); err != nil {
			return errors.Wrapf(err, "draw tile %d/%d", row, col)
		}
	}
	return nil
}

func (r *Renderer) drawOne(x, y int, t Tile) error {
	return r.draw(x, y, []placement{{tile: t}})
}

// DrawNumber draws digit n (0-9).
func (r *Renderer) DrawNumber(x, y, n int) error {
	t, ok := Digit(n)
	if !ok {
		return errors.Wrapf(ErrOutOfRange, "digit %d", n)
	}
	return r.drawOne(x, y, t)
}

// DrawLetter draws letter l (0-25 for A-Z, 26 for space).
func (r *Renderer) DrawLetter(x, y, l int) error {
	t, ok := Letter(l)
	if !ok {
		return errors.Wrapf(ErrOutOfRange, "letter %d", l)
	}
	return r.drawOne(x, y, t)
}

// DrawLetterBar draws letter l with a dotted bar on its right.
func (r *Renderer) DrawLetterBar(x, y, l int) error {
	if l < 0 || l >= NumLetters {
		return errors.Wrapf(ErrOutOfRange, "letter %d", l)
	}
	return r.drawOne(x, y, lettersBar[l])
}

// DrawDash draws a centred horizontal dash.
func (r *Renderer) DrawDash(x, y int) error {
	return r.drawOne(x, y, symbols[symDash])
}

// DrawDot draws a centred dot.
func (r *Renderer) DrawDot(x, y int) error {
	return r.drawOne(x, y, symbols[symDot])
}

// DrawBlank clears one tile.
func (r *Renderer) DrawBlank(x, y int) error {
	return r.drawOne(x, y, symbols[symBlank])
}

// DrawHeightMark draws a short dash at height val (0 bottom, 7 top).
func (r *Renderer) DrawHeightMark(x, y, val int) error {
	if val < 0 || val >= NumHeightMarks {
		return errors.Wrapf(ErrOutOfRange, "height mark %d", val)
	}
	return r.drawOne(x, y, heightMarks[val])
}

// DrawLetter4 draws a 2x2 tile letter with its top left at (x, y).
func (r *Renderer) DrawLetter4(x, y, l int) error {
	if l < 0 || l >= NumLetters {
		return errors.Wrapf(ErrOutOfRange, "letter %d", l)
	}
	return r.draw(x, y, letter4Cells(l))
}

func letter4Cells(l int) []placement {
	g := letters4[l]
	return []placement{
		{dx: 0, dy: 0, tile: g[0]},
		{dx: 1, dy: 0, tile: g[1]},
		{dx: 0, dy: 1, tile: g[2]},
		{dx: 1, dy: 1, tile: g[3]},
	}
}

// DrawCircle9 draws the 3x3 dial background with its top left at (x, y).
func (r *Renderer) DrawCircle9(x, y int) error {
	return r.draw(x, y, dialFaces[0])
}

// DrawDial9 draws a 3x3 dial showing val (0-1024).
func (r *Renderer) DrawDial9(x, y, val int) error {
	b, ok := DialBucket(val)
	if !ok {
		return errors.Wrapf(ErrOutOfRange, "dial value %d", val)
	}
	return r.draw(x, y, dialFaces[b])
}

// VUMax is the top of the VU bar's input range.
const VUMax = 40

// VULevels returns the fill level of each VU cell for val, bottom cell
// first. Each cell holds 8 steps; a cell only starts filling once the one
// below it is full, so val 8 is a full bottom cell and nothing above.
func VULevels(val int) ([5]int, bool) {
	var levels [5]int
	if val < 0 || val > VUMax {
		return levels, false
	}
	active := 0
	if val > 0 {
		active = (val - 1) / 8
	}
	for i := range levels {
		switch {
		case i < active:
			levels[i] = 8
		case i == active:
			levels[i] = val - 8*active
		}
	}
	return levels, true
}

// DrawVUBar5 draws a five tile high VU meter showing val (0-40). The
// column occupies (x, y) at the top down to (x, y+4).
func (r *Renderer) DrawVUBar5(x, y, val int) error {
	levels, ok := VULevels(val)
	if !ok {
		return errors.Wrapf(ErrOutOfRange, "vu value %d", val)
	}
	cells := make([]placement, 0, len(levels))
	for i, lvl := range levels {
		cells = append(cells, placement{dx: 0, dy: 4 - i, tile: vuBars[lvl]})
	}
	return r.draw(x, y, cells)
}

// PercentMax is the top of Draw100's input range.
const PercentMax = 1024

// Percent scales a 0-1024 reading to 0-100 the way Draw100 shows it.
func Percent(val int) (int, bool) {
	if val < 0 || val > PercentMax {
		return 0, false
	}
	return int(float64(val) * 0.098), true
}

// Draw100 draws a reading of 0-1024 as a right aligned 0-100 number in
// three tiles.
func (r *Renderer) Draw100(x, y, val int) error {
	n, ok := Percent(val)
	if !ok {
		return errors.Wrapf(ErrOutOfRange, "percent value %d", val)
	}
	var cells []placement
	switch {
	case n == 100:
		cells = []placement{
			{dx: 0, tile: numbers[1]},
			{dx: 1, tile: numbers[0]},
			{dx: 2, tile: numbers[0]},
		}
	case n > 9:
		cells = []placement{
			{dx: 0, tile: symbols[symBlank]},
			{dx: 1, tile: numbers[n/10]},
			{dx: 2, tile: numbers[n%10]},
		}
	default:
		cells = []placement{
			{dx: 0, tile: symbols[symBlank]},
			{dx: 1, tile: symbols[symBlank]},
			{dx: 2, tile: numbers[n]},
		}
	}
	return r.draw(x, y, cells)
}
