package oled_tiles

import (
	"github.com/pkg/errors"
)

// text fields are fixed width: callers pad words with spaces to length

func checkLength(word string, length int) error {
	if length < 1 || length != len(word) {
		return errors.Wrapf(ErrInvalidLength, "length %d for %q", length, word)
	}
	return nil
}

// plainTile picks the single tile glyph for c.
func plainTile(c byte) (Tile, bool) {
	if l, ok := letterIndex(c); ok {
		return letters[l], true
	}
	if d, ok := digitIndex(c); ok {
		return numbers[d], true
	}
	return Tile{}, false
}

// barTile is plainTile with the bar variant for letters; digits have none.
func barTile(c byte) (Tile, bool) {
	if l, ok := letterIndex(c); ok {
		return lettersBar[l], true
	}
	return plainTile(c)
}

// CheckWord returns ErrOutOfRange if any character of word has no single
// tile glyph.
func CheckWord(word string) error {
	for i := 0; i < len(word); i++ {
		if _, ok := plainTile(word[i]); !ok {
			return errors.Wrapf(ErrOutOfRange, "character %q in %q", word[i], word)
		}
	}
	return nil
}

func (r *Renderer) drawText(x, y int, word string, length int, last func(byte) (Tile, bool)) error {
	if err := checkLength(word, length); err != nil {
		return err
	}
	cells := make([]placement, 0, length)
	for i := 0; i < length; i++ {
		pick := plainTile
		if i == length-1 {
			pick = last
		}
		t, ok := pick(word[i])
		if !ok {
			return errors.Wrapf(ErrOutOfRange, "character %q in %q", word[i], word)
		}
		cells = append(cells, placement{dx: i, tile: t})
	}
	return r.draw(x, y, cells)
}

// DrawWord draws length single tile letters, digits or spaces starting
// at (x, y). Letters are shown upper case.
func (r *Renderer) DrawWord(x, y int, word string, length int) error {
	return r.drawText(x, y, word, length, plainTile)
}

// DrawWordBar is DrawWord with the indicator bar on the last letter.
func (r *Renderer) DrawWordBar(x, y int, word string, length int) error {
	return r.drawText(x, y, word, length, barTile)
}

// DrawWord4 draws length 2x2 letters or spaces, two columns apart.
func (r *Renderer) DrawWord4(x, y int, word string, length int) error {
	if err := checkLength(word, length); err != nil {
		return err
	}
	cells := make([]placement, 0, 4*length)
	for i := 0; i < length; i++ {
		l, ok := letterIndex(word[i])
		if !ok {
			return errors.Wrapf(ErrOutOfRange, "character %q in %q", word[i], word)
		}
		for _, p := range letter4Cells(l) {
			p.dx += 2 * i
			cells = append(cells, p)
		}
	}
	return r.draw(x, y, cells)
}
