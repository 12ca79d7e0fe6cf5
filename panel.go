package main

import (
	"log"
	"strings"

	"dscheirer.com/oledtiles/oled_tiles"
	"github.com/pkg/errors"
)

// panelValues is one reading for the panel
type panelValues struct {
	Dial  int    `json:"dial"`  // 0-1024
	VU    int    `json:"vu"`    // 0-40
	Level int    `json:"level"` // 0-1024, shown as a percentage
	Title string `json:"title"`
}

// where everything goes, in logical tile coordinates
const (
	titleX, titleY     = 0, 12
	titleLen           = 4
	dialX, dialY       = 1, 14
	percentX, percentY = 1, 18
	vuX, vuY           = 6, 14
	markX              = 7
	labelX, labelY     = 9, 14
	labelLen           = 3
	dividerY           = 20
	dividerLen         = 16
)

// fit pads or cuts a word to n characters
func fit(word string, n int) string {
	if len(word) > n {
		return word[:n]
	}
	return word + strings.Repeat(" ", n-len(word))
}

// markPosition finds the cell of the VU bar (0 = bottom) and the height
// mark that tops its fill
func markPosition(vu int) (int, int) {
	levels, ok := oled_tiles.VULevels(vu)
	if !ok {
		return 0, 0
	}
	top := 0
	for i, l := range levels {
		if l > 0 {
			top = i
		}
	}
	mark := levels[top] - 1
	if mark < 0 {
		mark = 0
	}
	return top, mark
}

// layout redraws only the parts of the panel whose values changed
type layout struct {
	r       *oled_tiles.Renderer
	label   string
	drawn   bool
	cur     panelValues
	markRow int
}

func newLayout(r *oled_tiles.Renderer, title, label string) *layout {
	return &layout{
		r:     r,
		label: fit(label, labelLen),
		cur:   panelValues{Title: fit(title, titleLen)},
	}
}

// validate checks v can be drawn
func validate(v panelValues) error {
	if _, ok := oled_tiles.DialBucket(v.Dial); !ok {
		return errors.Wrapf(oled_tiles.ErrOutOfRange, "dial %d", v.Dial)
	}
	if _, ok := oled_tiles.VULevels(v.VU); !ok {
		return errors.Wrapf(oled_tiles.ErrOutOfRange, "vu %d", v.VU)
	}
	if _, ok := oled_tiles.Percent(v.Level); !ok {
		return errors.Wrapf(oled_tiles.ErrOutOfRange, "level %d", v.Level)
	}
	return oled_tiles.CheckWord(v.Title)
}

func (l *layout) drawStatic() error {
	for x := 0; x < dividerLen; x++ {
		var err error
		if x%4 == 3 {
			err = l.r.DrawDot(x, dividerY)
		} else {
			err = l.r.DrawDash(x, dividerY)
		}
		if err != nil {
			return err
		}
	}
	return l.r.DrawWord4(labelX, labelY, l.label, labelLen)
}

func (l *layout) drawMark(vu int) error {
	row, mark := markPosition(vu)
	if l.drawn && row != l.markRow {
		if err := l.r.DrawBlank(markX, vuY+4-l.markRow); err != nil {
			return err
		}
	}
	l.markRow = row
	return l.r.DrawHeightMark(markX, vuY+4-row, mark)
}

// update draws v. An empty title keeps the current one.
func (l *layout) update(v panelValues) error {
	if v.Title == "" {
		v.Title = l.cur.Title
	}
	v.Title = fit(v.Title, titleLen)
	if err := validate(v); err != nil {
		return err
	}

	if !l.drawn {
		if err := l.drawStatic(); err != nil {
			return err
		}
	}
	if !l.drawn || v.Title != l.cur.Title {
		if err := l.r.DrawWordBar(titleX, titleY, v.Title, titleLen); err != nil {
			return err
		}
	}
	if !l.drawn || v.Dial != l.cur.Dial {
		if err := l.r.DrawDial9(dialX, dialY, v.Dial); err != nil {
			return err
		}
	}
	if !l.drawn || v.Level != l.cur.Level {
		if err := l.r.Draw100(percentX, percentY, v.Level); err != nil {
			return err
		}
	}
	if !l.drawn || v.VU != l.cur.VU {
		if err := l.r.DrawVUBar5(vuX, vuY, v.VU); err != nil {
			return err
		}
		if err := l.drawMark(v.VU); err != nil {
			return err
		}
	}
	l.cur = v
	l.drawn = true
	return nil
}

func newRenderer(s oled_tiles.Sink, settings configSettings) *oled_tiles.Renderer {
	return oled_tiles.New(s, oled_tiles.Config{
		XOffset: settings.GetInt(sXOffset),
		YOffset: settings.GetInt(sYOffset),
		Rows:    settings.GetInt(sRows),
		Cols:    settings.GetInt(sCols),
	})
}

// runPanel owns the renderer: every draw happens on this goroutine
func runPanel(rt runtimeConfig) {
	defer func() {
		log.Println("exiting runPanel")
	}()

	settings := rt.settings
	comms := rt.comms

	if err := rt.panel.OpenPanel(settings); err != nil {
		log.Printf("Error: %s", err.Error())
		comms.stop()
		return
	}
	defer rt.panel.ClosePanel()

	rt.panel.DebugDump(settings.GetBool(sDebug))

	lay := newLayout(newRenderer(rt.panel, settings),
		settings.GetString(sTitle), settings.GetString(sLabel))
	if err := lay.update(panelValues{}); err != nil {
		log.Printf("Error: %s", err.Error())
		comms.stop()
		return
	}

	frame := settings.GetDuration(sFrameTime)
	for {
		select {
		case <-comms.quit:
			log.Println("quit from runPanel")
			return
		case v := <-comms.values:
			if err := lay.update(v); err != nil {
				log.Printf("Error: %s", err.Error())
			}
		default:
			rt.clock.Sleep(frame)
		}
	}
}
