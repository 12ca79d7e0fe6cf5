package oled_tiles

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
)

// Frame is an in-memory panel. It keeps the tiles it has been sent and an
// image of the panel as a viewer sees it after the 90 degree rotation.
type Frame struct {
	rows, cols int
	tiles      [][]Tile
	img        *image.Gray
}

// NewFrame returns a blank frame of rows x cols tiles.
func NewFrame(rows, cols int) *Frame {
	f := &Frame{
		rows: rows,
		cols: cols,
		img:  image.NewGray(image.Rect(0, 0, cols*8, rows*8)),
	}
	f.tiles = make([][]Tile, rows)
	for i := range f.tiles {
		f.tiles[i] = make([]Tile, cols)
	}
	return f
}

// DrawTile implements Sink. Higher panel columns sit further left once
// the panel is rotated, so col 0 is the right hand tile column.
func (f *Frame) DrawTile(row, col int, t Tile) error {
	if row < 0 || row >= f.rows || col < 0 || col >= f.cols {
		return errors.Wrapf(ErrOffGrid, "frame tile %d/%d", row, col)
	}
	f.tiles[row][col] = t
	x0, y0 := f.origin(row, col)
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			c := color.Gray{Y: 0}
			if t[i]&(0x80>>uint(j)) != 0 {
				c.Y = 255
			}
			f.img.SetGray(x0+j, y0+i, c)
		}
	}
	return nil
}

func (f *Frame) origin(row, col int) (x, y int) {
	return (f.cols - 1 - col) * 8, row * 8
}

// TileAt returns the last tile drawn at a panel coordinate.
func (f *Frame) TileAt(row, col int) Tile {
	return f.tiles[row][col]
}

// Pixel reports whether the viewer-space pixel (x, y) is lit.
func (f *Frame) Pixel(x, y int) bool {
	return f.img.GrayAt(x, y).Y != 0
}

// Bounds returns the tile rectangle of a panel cell in viewer pixels.
func (f *Frame) Bounds(row, col int) image.Rectangle {
	x, y := f.origin(row, col)
	return image.Rect(x, y, x+8, y+8)
}

// Image returns the frame image. Lit pixels are white.
func (f *Frame) Image() *image.Gray {
	return f.img
}

// Clear blanks every tile.
func (f *Frame) Clear() {
	for row := 0; row < f.rows; row++ {
		for col := 0; col < f.cols; col++ {
			f.DrawTile(row, col, Tile{})
		}
	}
}
