package main

import (
	"dscheirer.com/oledtiles/oled_tiles"
)

// dumpGlyphs draws every glyph the renderer knows, one after the other, at
// the top left of the panel. Handy with a log panel to check the tables.
func dumpGlyphs(r *oled_tiles.Renderer) error {
	x, y := 0, r.Config().YOffset
	steps := []func() error{
		func() error { return r.DrawDash(x, y) },
		func() error { return r.DrawDot(x, y) },
		func() error { return r.DrawBlank(x, y) },
		func() error { return r.DrawCircle9(x, y) },
	}
	for n := 0; n < oled_tiles.NumDigits; n++ {
		n := n
		steps = append(steps, func() error { return r.DrawNumber(x, y, n) })
	}
	for l := 0; l < oled_tiles.NumLetters; l++ {
		l := l
		steps = append(steps,
			func() error { return r.DrawLetter(x, y, l) },
			func() error { return r.DrawLetterBar(x, y, l) },
			func() error { return r.DrawLetter4(x, y, l) })
	}
	for v := 0; v < oled_tiles.NumHeightMarks; v++ {
		v := v
		steps = append(steps, func() error { return r.DrawHeightMark(x, y, v) })
	}
	// the first value of every dial bucket
	last := -1
	for val := 0; val <= oled_tiles.DialMax; val++ {
		b, _ := oled_tiles.DialBucket(val)
		if b == last {
			continue
		}
		last = b
		val := val
		steps = append(steps, func() error { return r.DrawDial9(x, y, val) })
	}
	for v := 0; v <= oled_tiles.VUMax; v += oled_tiles.VUMax / 5 {
		v := v
		steps = append(steps, func() error { return r.DrawVUBar5(x, y, v) })
	}

	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
