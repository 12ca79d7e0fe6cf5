package main

import (
	"log"

	"dscheirer.com/oledtiles/oled_tiles"
	"github.com/nsf/termbox-go"
)

// termPanel shows the panel in a terminal for sim mode. Each character
// cell holds two pixel rows using the upper half block.
type termPanel struct {
	comms     commChannels
	frame     *oled_tiles.Frame
	debugDump bool
	done      chan struct{}
}

const halfBlock = '▀'

func pixelColor(on bool) termbox.Attribute {
	if on {
		return termbox.ColorWhite
	}
	return termbox.ColorBlack
}

func (tp *termPanel) OpenPanel(settings configSettings) error {
	tp.frame = oled_tiles.NewFrame(settings.GetInt(sRows), settings.GetInt(sCols))
	tp.debugDump = settings.GetBool(sDebug)
	if err := termbox.Init(); err != nil {
		return err
	}
	tp.done = make(chan struct{})
	go tp.watchKeys()
	return tp.ClearPanel()
}

// watchKeys quits on Esc, q or ctrl-c
func (tp *termPanel) watchKeys() {
	defer close(tp.done)
	for {
		ev := termbox.PollEvent()
		switch ev.Type {
		case termbox.EventKey:
			if ev.Key == termbox.KeyCtrlC || ev.Key == termbox.KeyEsc || ev.Ch == 'q' {
				log.Println("quit from keyboard")
				tp.comms.stop()
			}
		case termbox.EventInterrupt, termbox.EventError:
			return
		}
	}
}

func (tp *termPanel) DebugDump(on bool) {
	tp.debugDump = on
}

func (tp *termPanel) paint(row, col int) {
	b := tp.frame.Bounds(row, col)
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			termbox.SetCell(x, y/2, halfBlock,
				pixelColor(tp.frame.Pixel(x, y)),
				pixelColor(tp.frame.Pixel(x, y+1)))
		}
	}
}

func (tp *termPanel) DrawTile(row, col int, t oled_tiles.Tile) error {
	if err := tp.frame.DrawTile(row, col, t); err != nil {
		return err
	}
	if tp.debugDump {
		log.Printf("tile %d/%d % x", row, col, t[:])
	}
	tp.paint(row, col)
	return termbox.Flush()
}

func (tp *termPanel) ClearPanel() error {
	tp.frame.Clear()
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorBlack); err != nil {
		return err
	}
	return termbox.Flush()
}

func (tp *termPanel) ClosePanel() error {
	termbox.Interrupt()
	<-tp.done
	termbox.Close()
	return nil
}
