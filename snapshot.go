package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"io/ioutil"

	"dscheirer.com/oledtiles/oled_tiles"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const captionHeight = 16

// renderFrame draws one panel of v into an in-memory frame
func renderFrame(settings configSettings, v panelValues) (*oled_tiles.Frame, error) {
	frame := oled_tiles.NewFrame(settings.GetInt(sRows), settings.GetInt(sCols))
	lay := newLayout(newRenderer(frame, settings),
		settings.GetString(sTitle), settings.GetString(sLabel))
	if err := lay.update(v); err != nil {
		return nil, err
	}
	return frame, nil
}

// scaleFrame blows the panel up by scale and adds a caption strip under it
func scaleFrame(src *image.Gray, scale int, caption string) *image.Gray {
	if scale < 1 {
		scale = 1
	}
	w, h := src.Bounds().Dx()*scale, src.Bounds().Dy()*scale
	dst := image.NewGray(image.Rect(0, 0, w, h+captionHeight))
	draw.NearestNeighbor.Scale(dst, image.Rect(0, 0, w, h), src, src.Bounds(), draw.Src, nil)

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.Gray{Y: 255}),
		Face: basicfont.Face7x13,
	}
	d.Dot = fixed.P(2, h+12)
	d.DrawString(caption)
	return dst
}

func writeSnapshot(w io.Writer, settings configSettings, v panelValues, scale int) error {
	frame, err := renderFrame(settings, v)
	if err != nil {
		return err
	}
	caption := fmt.Sprintf("dial %d vu %d level %d", v.Dial, v.VU, v.Level)
	return png.Encode(w, scaleFrame(frame.Image(), scale, caption))
}

// saveSnapshot renders to memory first so bad values never leave a file
func saveSnapshot(path string, settings configSettings, v panelValues, scale int) error {
	var buf bytes.Buffer
	if err := writeSnapshot(&buf, settings, v, scale); err != nil {
		return err
	}
	return errors.Wrap(ioutil.WriteFile(path, buf.Bytes(), 0644), "snapshot")
}
