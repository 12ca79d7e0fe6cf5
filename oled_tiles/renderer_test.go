package oled_tiles

import (
	"testing"

	"github.com/pkg/errors"
	"gotest.tools/assert"
)

func TestTransform(t *testing.T) {
	r, _ := setup()

	row, col := r.Transform(0, 12)
	assert.Equal(t, row, 0)
	assert.Equal(t, col, 15)

	row, col = r.Transform(15, 27)
	assert.Equal(t, row, 15)
	assert.Equal(t, col, 0)

	r.SetXOffset(7)
	r.SetYOffset(0)
	row, col = r.Transform(3, 5)
	assert.Equal(t, row, 5)
	assert.Equal(t, col, 4)
	assert.Equal(t, r.Config().XOffset, 7)
	assert.Equal(t, r.Config().YOffset, 0)
}

func TestTransformInjective(t *testing.T) {
	r, _ := setup()
	seen := map[[2]int][2]int{}
	for x := -4; x < 20; x++ {
		for y := 8; y < 32; y++ {
			row, col := r.Transform(x, y)
			key := [2]int{row, col}
			prev, dup := seen[key]
			assert.Assert(t, !dup, "(%d,%d) and %v both map to %v", x, y, prev, key)
			seen[key] = [2]int{x, y}
		}
	}
}

func TestNewDefaultsGrid(t *testing.T) {
	r := New(&recordSink{}, Config{XOffset: 1, YOffset: 2})
	cfg := r.Config()
	assert.Equal(t, cfg.Rows, 16)
	assert.Equal(t, cfg.Cols, 16)
	assert.Equal(t, cfg.XOffset, 1)
}

func TestDrawNumber(t *testing.T) {
	r, rs := setup()

	for n := 0; n < NumDigits; n++ {
		rs.reset()
		assert.NilError(t, r.DrawNumber(x0+n, y0, n))
		assert.DeepEqual(t, rs.calls, []drawCall{{Row: 0, Col: 15 - n, Tile: numbers[n]}})
	}

	rs.reset()
	for _, n := range []int{-1, 10, 99} {
		err := r.DrawNumber(x0, y0, n)
		assert.Assert(t, errors.Is(err, ErrOutOfRange), "digit %d: %v", n, err)
	}
	assert.Equal(t, len(rs.calls), 0)
}

func TestSingleTilePrimitives(t *testing.T) {
	r, rs := setup()

	cases := []struct {
		name string
		draw func() error
		want Tile
	}{
		{"letter A", func() error { return r.DrawLetter(2, 13, 0) }, letters[0]},
		{"letter space", func() error { return r.DrawLetter(2, 13, LetterSpace) }, letters[26]},
		{"letter bar Z", func() error { return r.DrawLetterBar(2, 13, 25) }, lettersBar[25]},
		{"dash", func() error { return r.DrawDash(2, 13) }, symbols[symDash]},
		{"dot", func() error { return r.DrawDot(2, 13) }, symbols[symDot]},
		{"blank", func() error { return r.DrawBlank(2, 13) }, Tile{}},
		{"height 0", func() error { return r.DrawHeightMark(2, 13, 0) }, heightMarks[0]},
		{"height 7", func() error { return r.DrawHeightMark(2, 13, 7) }, heightMarks[7]},
	}
	for _, c := range cases {
		rs.reset()
		assert.NilError(t, c.draw(), c.name)
		assert.DeepEqual(t, rs.calls, []drawCall{{Row: 1, Col: 13, Tile: c.want}})
	}
}

func TestSingleTileRange(t *testing.T) {
	r, rs := setup()

	assert.Assert(t, errors.Is(r.DrawLetter(x0, y0, 27), ErrOutOfRange))
	assert.Assert(t, errors.Is(r.DrawLetter(x0, y0, -1), ErrOutOfRange))
	assert.Assert(t, errors.Is(r.DrawLetterBar(x0, y0, 27), ErrOutOfRange))
	assert.Assert(t, errors.Is(r.DrawHeightMark(x0, y0, 8), ErrOutOfRange))
	assert.Assert(t, errors.Is(r.DrawLetter4(x0, y0, 30), ErrOutOfRange))
	assert.Equal(t, len(rs.calls), 0)
}

func TestOffGrid(t *testing.T) {
	r, rs := setup()

	// x=16 maps to col -1
	err := r.DrawNumber(16, y0, 1)
	assert.Assert(t, errors.Is(err, ErrOffGrid), "%v", err)
	// y below the offset maps to a negative row
	err = r.DrawDot(0, 11)
	assert.Assert(t, errors.Is(err, ErrOffGrid), "%v", err)

	// right half of a big letter hangs off the edge, nothing is sent
	err = r.DrawLetter4(15, y0, 0)
	assert.Assert(t, errors.Is(err, ErrOffGrid), "%v", err)
	assert.Equal(t, len(rs.calls), 0)
}

func TestSinkError(t *testing.T) {
	rs := &recordSink{failAt: 3}
	r := New(rs, DefaultConfig())

	err := r.DrawCircle9(x0, y0)
	assert.ErrorContains(t, err, "bus error")
	assert.Equal(t, len(rs.calls), 2)
}

func TestDrawLetter4(t *testing.T) {
	r, rs := setup()

	assert.NilError(t, r.DrawLetter4(4, 14, 7))
	h := letters4[7]
	assert.DeepEqual(t, rs.calls, []drawCall{
		{Row: 2, Col: 11, Tile: h[0]},
		{Row: 2, Col: 10, Tile: h[1]},
		{Row: 3, Col: 11, Tile: h[2]},
		{Row: 3, Col: 10, Tile: h[3]},
	})
}

func TestDrawCircle9(t *testing.T) {
	r, rs := setup()

	assert.NilError(t, r.DrawCircle9(x0, y0))
	assert.Equal(t, len(rs.calls), 9)
	for k, c := range rs.calls {
		assert.Equal(t, c.Row, k/3)
		assert.Equal(t, c.Col, 15-k%3)
		assert.Equal(t, c.Tile, circle9[k])
	}
}

func TestTableLookups(t *testing.T) {
	d, ok := Digit(9)
	assert.Assert(t, ok)
	assert.Equal(t, d, numbers[9])
	_, ok = Digit(10)
	assert.Assert(t, !ok)

	l, ok := Letter(LetterSpace)
	assert.Assert(t, ok)
	assert.Equal(t, l, Tile{})
	_, ok = Letter(-1)
	assert.Assert(t, !ok)
}
