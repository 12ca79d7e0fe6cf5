package oled_tiles

import (
	"testing"

	"github.com/pkg/errors"
	"gotest.tools/assert"
)

func TestVULevels(t *testing.T) {
	cases := []struct {
		val  int
		want [5]int
	}{
		{0, [5]int{0, 0, 0, 0, 0}},
		{1, [5]int{1, 0, 0, 0, 0}},
		{8, [5]int{8, 0, 0, 0, 0}},
		{9, [5]int{8, 1, 0, 0, 0}},
		{16, [5]int{8, 8, 0, 0, 0}},
		{20, [5]int{8, 8, 4, 0, 0}},
		{33, [5]int{8, 8, 8, 8, 1}},
		{40, [5]int{8, 8, 8, 8, 8}},
	}
	for _, c := range cases {
		got, ok := VULevels(c.val)
		assert.Assert(t, ok)
		assert.Equal(t, got, c.want, "val %d", c.val)
	}

	_, ok := VULevels(-1)
	assert.Assert(t, !ok)
	_, ok = VULevels(41)
	assert.Assert(t, !ok)
}

func TestVULevelsShape(t *testing.T) {
	for val := 0; val <= VUMax; val++ {
		levels, _ := VULevels(val)
		sum := 0
		partial := 0
		for i, lvl := range levels {
			sum += lvl
			if lvl > 0 && lvl < 8 {
				partial++
			}
			if i > 0 {
				assert.Assert(t, lvl <= levels[i-1], "val %d not filled bottom up: %v", val, levels)
				if lvl > 0 {
					assert.Equal(t, levels[i-1], 8, "val %d: %v", val, levels)
				}
			}
		}
		assert.Equal(t, sum, val)
		assert.Assert(t, partial <= 1, "val %d: %v", val, levels)
	}
}

func TestDrawVUBar5(t *testing.T) {
	r, rs := setup()

	assert.NilError(t, r.DrawVUBar5(6, 13, 12))
	// bottom cell goes first
	assert.DeepEqual(t, rs.calls, []drawCall{
		{Row: 5, Col: 9, Tile: vuBars[8]},
		{Row: 4, Col: 9, Tile: vuBars[4]},
		{Row: 3, Col: 9, Tile: vuBars[0]},
		{Row: 2, Col: 9, Tile: vuBars[0]},
		{Row: 1, Col: 9, Tile: vuBars[0]},
	})

	rs.reset()
	assert.Assert(t, errors.Is(r.DrawVUBar5(6, 13, 41), ErrOutOfRange))
	assert.Equal(t, len(rs.calls), 0)
}

// percentText reads back what Draw100 sent as a three character string.
func percentText(t *testing.T, calls []drawCall) string {
	t.Helper()
	assert.Equal(t, len(calls), 3)
	s := ""
	for _, c := range calls {
		if c.Tile == symbols[symBlank] {
			s += " "
			continue
		}
		found := false
		for n, d := range numbers {
			if d == c.Tile {
				s += string(rune('0' + n))
				found = true
			}
		}
		assert.Assert(t, found, "tile %v is not a digit", c.Tile)
	}
	return s
}

func TestDraw100(t *testing.T) {
	r, rs := setup()

	cases := map[int]string{
		0:    "  0",
		10:   "  0",
		11:   "  1",
		102:  "  9",
		103:  " 10",
		500:  " 49",
		1015: " 99",
		1020: " 99",
		1021: "100",
		1024: "100",
	}
	for val, want := range cases {
		rs.reset()
		assert.NilError(t, r.Draw100(x0, y0, val))
		assert.Equal(t, percentText(t, rs.calls), want, "val %d", val)
	}
}

func TestDraw100Boundary(t *testing.T) {
	r, rs := setup()

	for val := 1015; val <= 1024; val++ {
		rs.reset()
		assert.NilError(t, r.Draw100(x0, y0, val))
		want := " 99"
		if val >= 1021 {
			want = "100"
		}
		assert.Equal(t, percentText(t, rs.calls), want, "val %d", val)
	}
}

func TestDraw100Layout(t *testing.T) {
	r, rs := setup()

	for val := 0; val <= PercentMax; val++ {
		rs.reset()
		assert.NilError(t, r.Draw100(x0, y0, val))
		n, _ := Percent(val)
		s := percentText(t, rs.calls)
		if n >= 10 && n <= 99 {
			assert.Equal(t, s[0], byte(' '), "val %d", val)
			assert.Assert(t, s[1] != ' ' && s[2] != ' ', "val %d %q", val, s)
		}
		for i, c := range rs.calls {
			assert.Equal(t, c.Row, 0)
			assert.Equal(t, c.Col, 15-i)
		}
	}

	rs.reset()
	assert.Assert(t, errors.Is(r.Draw100(x0, y0, -5), ErrOutOfRange))
	assert.Assert(t, errors.Is(r.Draw100(x0, y0, 1025), ErrOutOfRange))
	assert.Equal(t, len(rs.calls), 0)
}
