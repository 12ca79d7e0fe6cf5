package main

import (
	"testing"

	"dscheirer.com/oledtiles/oled_tiles"
	"github.com/pkg/errors"
	"gotest.tools/assert"
)

// tiles drawn for a fresh panel: divider, label, title, dial, percent,
// VU bar and its height mark
const firstDraws = dividerLen + 4*labelLen + titleLen + 9 + 3 + 5 + 1

func assertPanel(t *testing.T, lp *logPanel, v panelValues) {
	t.Helper()
	want, err := renderFrame(testSettings, v)
	assert.NilError(t, err)
	for row := 0; row < lp.rows; row++ {
		for col := 0; col < lp.cols; col++ {
			assert.Equal(t, lp.tileAt(row, col), want.TileAt(row, col), "tile %d/%d", row, col)
		}
	}
}

func TestFit(t *testing.T) {
	assert.Equal(t, fit("vol", 4), "vol ")
	assert.Equal(t, fit("VOLUME", 4), "VOLU")
	assert.Equal(t, fit("", 2), "  ")
}

func TestMarkPosition(t *testing.T) {
	cases := []struct {
		vu, row, mark int
	}{
		{0, 0, 0},
		{1, 0, 0},
		{8, 0, 7},
		{9, 1, 0},
		{20, 2, 3},
		{40, 4, 7},
		{41, 0, 0},
	}
	for _, c := range cases {
		row, mark := markPosition(c.vu)
		assert.Equal(t, row, c.row, "vu %d", c.vu)
		assert.Equal(t, mark, c.mark, "vu %d", c.vu)
	}
}

func TestValidate(t *testing.T) {
	assert.NilError(t, validate(panelValues{Dial: 1024, VU: 40, Level: 1024, Title: "A 1"}))
	for _, v := range []panelValues{
		{Dial: -1},
		{Dial: 1025},
		{VU: 41},
		{Level: 2000},
		{Title: "50%"},
	} {
		err := validate(v)
		assert.Assert(t, errors.Is(err, oled_tiles.ErrOutOfRange), "%v: %v", v, err)
	}
}

func TestLayoutFirstDraw(t *testing.T) {
	lp := &logPanel{}
	assert.NilError(t, lp.OpenPanel(testSettings))
	lay := newLayout(newRenderer(lp, testSettings), "VOL", "SW")

	assert.NilError(t, lay.update(panelValues{}))
	assert.Equal(t, len(lp.audit), firstDraws)
	assertPanel(t, lp, panelValues{})
	assert.Equal(t, lay.cur.Title, "VOL ")
}

func TestLayoutRedrawsChanges(t *testing.T) {
	lp := &logPanel{}
	assert.NilError(t, lp.OpenPanel(testSettings))
	lay := newLayout(newRenderer(lp, testSettings), "VOL", "SW")
	assert.NilError(t, lay.update(panelValues{}))

	// nothing changed, nothing drawn
	assert.NilError(t, lay.update(panelValues{}))
	assert.Equal(t, len(lp.audit), firstDraws)

	// dial only
	assert.NilError(t, lay.update(panelValues{Dial: 512}))
	assert.Equal(t, len(lp.audit), firstDraws+9)

	// VU moves the height mark up two cells: bar, old mark blanked, new mark
	assert.NilError(t, lay.update(panelValues{Dial: 512, VU: 20}))
	assert.Equal(t, len(lp.audit), firstDraws+9+5+2)

	v := panelValues{Dial: 512, VU: 20, Level: 500, Title: "PEAK"}
	assert.NilError(t, lay.update(v))
	assert.Equal(t, len(lp.audit), firstDraws+9+5+2+3+4)
	assertPanel(t, lp, v)
}

func TestLayoutBadValues(t *testing.T) {
	lp := &logPanel{}
	assert.NilError(t, lp.OpenPanel(testSettings))
	lay := newLayout(newRenderer(lp, testSettings), "VOL", "SW")
	assert.NilError(t, lay.update(panelValues{}))

	err := lay.update(panelValues{Dial: 100, VU: 99})
	assert.Assert(t, errors.Is(err, oled_tiles.ErrOutOfRange))
	// nothing partial
	assert.Equal(t, len(lp.audit), firstDraws)
	assert.Equal(t, lay.cur.Dial, 0)
}

func TestRunPanel(t *testing.T) {
	rt, clock, lp := testRuntime()
	frame := rt.settings.GetDuration(sFrameTime)

	done := start(rt, runPanel)
	testBlockDuration(clock, frame, frame)
	assert.Equal(t, len(lp.audit), firstDraws)
	assertPanel(t, lp, panelValues{})

	v := panelValues{Dial: 1024, VU: 40, Level: 1024}
	rt.comms.values <- v
	testBlockDuration(clock, frame, 2*frame)
	assertPanel(t, lp, v)

	testQuit(rt, clock, frame, done)
	assert.Equal(t, lp.open, false)
}

func TestRunPanelBadValues(t *testing.T) {
	rt, clock, lp := testRuntime()
	frame := rt.settings.GetDuration(sFrameTime)

	done := start(rt, runPanel)
	testBlockDuration(clock, frame, frame)

	// logged and dropped, the loop keeps going
	rt.comms.values <- panelValues{Level: 5000}
	testBlockDuration(clock, frame, 2*frame)
	assert.Equal(t, len(lp.audit), firstDraws)

	rt.comms.values <- panelValues{Level: 512}
	testBlockDuration(clock, frame, 2*frame)
	assert.Equal(t, len(lp.audit), firstDraws+3)

	testQuit(rt, clock, frame, done)
}

func TestRunPanelBadTitle(t *testing.T) {
	rt, _, lp := testRuntime()
	rt.settings.Set(sTitle, "50%")

	// can't draw the first frame, give up and tell everyone
	<-start(rt, runPanel)
	assert.Equal(t, len(lp.audit), 0)
	select {
	case <-rt.comms.quit:
	default:
		assert.Assert(t, false, "quit not closed")
	}
}
