package ui

import (
	"math"
	"testing"

	"github.com/hubastard/groveui/engine/colors"
	"github.com/hubastard/groveui/engine/geom"
	"github.com/hubastard/groveui/engine/input"
	"github.com/hubastard/groveui/engine/lineinput"
)

func TestLinearScale(t *testing.T) {
	var s LinearScale
	if got := s.ToAbsolute(0.5, 0, 100); got != 50 {
		t.Fatalf("ToAbsolute(0.5, 0, 100) = %d, want 50", got)
	}
	if got := s.ToRelative(5, 5, 5); got != 0 {
		t.Fatalf("ToRelative on an empty range = %v", got)
	}
	for _, rng := range [][2]int{{0, 100}, {-10, 10}, {1, 7}, {5, 500}} {
		for v := rng[0]; v <= rng[1]; v++ {
			got := s.ToAbsolute(s.ToRelative(v, rng[0], rng[1]), rng[0], rng[1])
			if d := got - v; d < -1 || d > 1 {
				t.Fatalf("range %v: %d -> %d", rng, v, got)
			}
		}
	}
}

func TestLogarithmicScale(t *testing.T) {
	tests := []struct {
		scale  LogarithmicScale
		ranges [][2]int
	}{
		{DefaultLogScale, [][2]int{{0, 100}, {1, 1000}, {-5, 50}, {30, 300}}},
		// an adjustment below 1 behaves like 1
		{LogarithmicScale{MinAdjustment: 0}, [][2]int{{0, 100}, {1, 1000}}},
	}
	for _, tt := range tests {
		s := tt.scale
		for _, rng := range tt.ranges {
			for v := rng[0]; v <= rng[1]; v++ {
				got := s.ToAbsolute(s.ToRelative(v, rng[0], rng[1]), rng[0], rng[1])
				if d := got - v; d < -1 || d > 1 {
					t.Fatalf("adj %d range %v: %d -> %d", s.MinAdjustment, rng, v, got)
				}
			}
		}
	}
	s := DefaultLogScale
	if got := s.ToRelative(0, 0, 100); got != 0 {
		t.Fatalf("ToRelative(min) = %v", got)
	}
	if got := s.ToRelative(100, 0, 100); math.Abs(float64(got)-1) > 1e-6 {
		t.Fatalf("ToRelative(max) = %v", got)
	}
	// the low end gets more travel than a linear scale
	if s.ToRelative(10, 0, 100) <= (LinearScale{}).ToRelative(10, 0, 100) {
		t.Fatalf("log scale does not stretch the low end")
	}
}

func TestButtonColors(t *testing.T) {
	tests := []struct {
		cf              ButtonColorFunc
		active, hovered bool
		want            colors.Color
	}{
		{DarkButtonColors{}, true, true, colors.Color{0.15, 0.15, 0.15, 0.25}},
		{DarkButtonColors{}, false, true, colors.Color{0.5, 0.5, 0.5, 0.25}},
		{DarkButtonColors{}, false, false, colors.Color{0, 0, 0, 0.25}},
		{LightButtonColors{}, true, false, colors.Color{1, 1, 1, 0.4}},
		{LightButtonColors{}, false, true, colors.Color{1, 1, 1, 0.6}},
		{LightButtonColors{}, false, false, colors.Color{1, 1, 1, 0.5}},
	}
	for _, tt := range tests {
		if got := tt.cf.Color(tt.active, tt.hovered); got != tt.want {
			t.Errorf("%T(%v, %v) = %v, want %v", tt.cf, tt.active, tt.hovered, got, tt.want)
		}
	}
}

func TestPickerDragsPastEdges(t *testing.T) {
	u, in, _ := newTestUI()
	id := "picker"
	r := geom.Rect{X: 100, Y: 100, W: 50, H: 50}

	frame(u, in, 110, 120, false)
	if _, _, ok := u.DoPickerLogic(id, r); ok {
		t.Fatalf("picker active without press")
	}
	frame(u, in, 110, 120, true)
	x, y, ok := u.DoPickerLogic(id, r)
	if !ok || x != 10 || y != 20 {
		t.Fatalf("picker = %v %v %v", x, y, ok)
	}
	frame(u, in, 300, 90, true)
	x, y, ok = u.DoPickerLogic(id, r)
	if !ok || x != 50 || y != 0 {
		t.Fatalf("picker past edges = %v %v %v", x, y, ok)
	}
	frame(u, in, 300, 90, false)
	if _, _, ok := u.DoPickerLogic(id, r); ok || u.ActiveItem() != nil {
		t.Fatalf("picker kept the token after release")
	}
}

func TestScrollbarVDrag(t *testing.T) {
	u, in, _ := newTestUI()
	id := "scroll"
	r := geom.Rect{X: 0, Y: 0, W: 20, H: 210}
	// rail is y 5..205, handle height min(max(33, 10), 200/3) = 33

	frame(u, in, 10, 20, false)
	if v := u.DoScrollbarV(id, r, 0); v != 0 {
		t.Fatalf("idle value = %v", v)
	}
	if u.NextHotItem() != id {
		t.Fatalf("handle hover did not nominate hot")
	}

	// grab the handle 15 units below its top
	frame(u, in, 10, 20, true)
	if v := u.DoScrollbarV(id, r, 0); v != 0 {
		t.Fatalf("grab moved the value to %v", v)
	}
	if u.ActiveItem() != id {
		t.Fatalf("grab did not claim the token")
	}

	span := float32(200 - 33)
	frame(u, in, 10, 20+span/2, true)
	if v := u.DoScrollbarV(id, r, 0); math.Abs(float64(v)-0.5) > 1e-4 {
		t.Fatalf("half drag = %v", v)
	}
	frame(u, in, 10, 1000, true)
	if v := u.DoScrollbarV(id, r, 0.5); v != 1 {
		t.Fatalf("drag past the end = %v", v)
	}
	frame(u, in, 10, 1000, false)
	if v := u.DoScrollbarV(id, r, 0.7); v != 0.7 || u.ActiveItem() != nil {
		t.Fatalf("release: value %v active %v", v, u.ActiveItem())
	}
}

func TestScrollbarHRailClickCentersHandle(t *testing.T) {
	u, in, _ := newTestUI()
	id := "scroll"
	r := geom.Rect{X: 0, Y: 0, W: 210, H: 20}
	// rail x 5..205, handle width min(max(33, 10), 200/3) = 33

	frame(u, in, 150, 10, false)
	u.DoScrollbarH(id, r, 0)
	frame(u, in, 150, 10, true)
	v := u.DoScrollbarH(id, r, 0)
	want := (150 - 33.0/2 - 5) / (200 - 33.0)
	if math.Abs(float64(v)-want) > 1e-4 {
		t.Fatalf("rail click = %v, want %v", v, want)
	}
}

func TestScrollbarOptionInfinite(t *testing.T) {
	u, in, _ := newTestUI()
	r := geom.Rect{X: 0, Y: 0, W: 400, H: 20}
	frame(u, in, 0, 0, false)

	opt := 0
	u.DoScrollbarOption(&opt, &opt, r, "Limit", 0, 10, LinearScale{}, true)
	if opt != 0 {
		t.Fatalf("infinite value changed to %d", opt)
	}
	opt = 4
	u.DoScrollbarOption(&opt, &opt, r, "Limit", 0, 10, LinearScale{}, true)
	if opt != 4 {
		t.Fatalf("value changed to %d", opt)
	}
	opt = 50
	u.DoScrollbarOption(&opt, &opt, r, "Limit", 0, 10, LinearScale{}, false)
	if opt != 10 {
		t.Fatalf("out of range value = %d, want clamped 10", opt)
	}
}

func TestScrollbarOptionEmptyRange(t *testing.T) {
	u, in, _ := newTestUI()
	r := geom.Rect{X: 0, Y: 0, W: 400, H: 20}

	opt := 7
	frame(u, in, 300, 10, false)
	u.DoScrollbarOption(&opt, &opt, r, "Fixed", 7, 7, LinearScale{}, false)
	frame(u, in, 300, 10, true)
	u.DoScrollbarOption(&opt, &opt, r, "Fixed", 7, 7, LinearScale{}, false)
	if opt != 7 {
		t.Fatalf("empty range value = %d, want 7", opt)
	}
	if u.ActiveItem() != nil {
		t.Fatalf("empty range scrollbar took the active item")
	}
}

func TestScrollbarOptionLabeledClickCycles(t *testing.T) {
	u, in, _ := newTestUI()
	r := geom.Rect{X: 0, Y: 0, W: 300, H: 20}
	labels := []string{"low", "mid", "high"}
	opt := 2

	frame(u, in, 20, 10, false)
	u.DoScrollbarOptionLabeled(&opt, &opt, r, "Detail", labels, LinearScale{})
	frame(u, in, 20, 10, true)
	u.DoScrollbarOptionLabeled(&opt, &opt, r, "Detail", labels, LinearScale{})
	if opt != 0 {
		t.Fatalf("click on caption = %d, want wrap to 0", opt)
	}
}

func TestEditBox(t *testing.T) {
	u, in, rend := newTestUI()
	li := lineinput.New(64, 32)
	r := geom.Rect{X: 0, Y: 0, W: 200, H: 20}

	frame(u, in, 10, 10, false)
	u.DoEditBox(li, r, 10, false, geom.CornerAll, DarkButtonColors{})
	frame(u, in, 10, 10, true)
	u.DoEditBox(li, r, 10, false, geom.CornerAll, DarkButtonColors{})
	if u.ActiveItem() != any(li) || !u.IsInputActive() || !in.textInput {
		t.Fatalf("click did not focus the edit box")
	}

	in.events = []input.Event{
		{Flags: input.FlagText, Text: "hi"},
		{Key: input.KeyBackspace, Flags: input.FlagPress},
		{Flags: input.FlagText, Text: "o"},
	}
	frame(u, in, 10, 10, false)
	if !u.DoEditBox(li, r, 10, false, geom.CornerAll, DarkButtonColors{}) {
		t.Fatalf("edit not reported")
	}
	if li.Text() != "ho" {
		t.Fatalf("text = %q", li.Text())
	}

	in.events = []input.Event{{Key: input.KeyReturn, Flags: input.FlagPress}}
	frame(u, in, 10, 10, false)
	u.DoEditBox(li, r, 10, false, geom.CornerAll, DarkButtonColors{})
	if u.ActiveItem() != nil || u.IsInputActive() || in.textInput {
		t.Fatalf("enter did not release the edit box")
	}
	if li.Text() != "ho" {
		t.Fatalf("enter changed text to %q", li.Text())
	}
	if len(rend.texts) == 0 || rend.texts[len(rend.texts)-1].text != "ho" {
		t.Fatalf("edit box did not draw its text")
	}
}

func TestEditBoxReleasedByOutsideClick(t *testing.T) {
	u, in, _ := newTestUI()
	li := lineinput.New(64, 32)
	r := geom.Rect{X: 0, Y: 0, W: 200, H: 20}

	frame(u, in, 10, 10, false)
	u.DoEditBox(li, r, 10, false, geom.CornerAll, DarkButtonColors{})
	frame(u, in, 10, 10, true)
	u.DoEditBox(li, r, 10, false, geom.CornerAll, DarkButtonColors{})
	frame(u, in, 10, 10, false)
	u.DoEditBox(li, r, 10, false, geom.CornerAll, DarkButtonColors{})

	frame(u, in, 10, 300, true)
	u.DoEditBox(li, r, 10, false, geom.CornerAll, DarkButtonColors{})
	if u.ActiveItem() != nil || u.IsInputActive() {
		t.Fatalf("outside click did not release the edit box")
	}
}

func TestEditBoxKeepsFocusOnClickDuringComposition(t *testing.T) {
	u, in, _ := newTestUI()
	li := lineinput.New(64, 32)
	r := geom.Rect{X: 0, Y: 0, W: 200, H: 20}

	frame(u, in, 10, 10, false)
	u.DoEditBox(li, r, 10, false, geom.CornerAll, DarkButtonColors{})
	frame(u, in, 10, 10, true)
	u.DoEditBox(li, r, 10, false, geom.CornerAll, DarkButtonColors{})
	frame(u, in, 10, 10, false)
	u.DoEditBox(li, r, 10, false, geom.CornerAll, DarkButtonColors{})

	in.comp = "xy"
	frame(u, in, 10, 10, true)
	u.DoEditBox(li, r, 10, false, geom.CornerAll, DarkButtonColors{})
	if u.ActiveItem() != any(li) || !u.IsInputActive() || !in.textInput {
		t.Fatalf("click inside during composition released the edit box")
	}

	frame(u, in, 10, 10, false)
	u.DoEditBox(li, r, 10, false, geom.CornerAll, DarkButtonColors{})
	frame(u, in, 10, 300, true)
	u.DoEditBox(li, r, 10, false, geom.CornerAll, DarkButtonColors{})
	if u.ActiveItem() != nil || u.IsInputActive() {
		t.Fatalf("click outside during composition kept the edit box")
	}
}

func TestEditBoxStopsTextInputWhenNotDrawn(t *testing.T) {
	u, in, _ := newTestUI()
	li := lineinput.New(64, 32)
	r := geom.Rect{X: 0, Y: 0, W: 200, H: 20}

	frame(u, in, 10, 10, false)
	u.DoEditBox(li, r, 10, false, geom.CornerAll, DarkButtonColors{})
	u.StartCheck()
	frame(u, in, 10, 10, true)
	u.DoEditBox(li, r, 10, false, geom.CornerAll, DarkButtonColors{})
	u.FinishCheck()

	// the screen holding the edit box closes
	u.StartCheck()
	u.FinishCheck()
	frame(u, in, 10, 10, false)
	if u.IsInputActive() || in.textInput {
		t.Fatalf("text input still active after the edit box disappeared")
	}
}

func TestEditBoxShowsComposition(t *testing.T) {
	u, in, rend := newTestUI()
	li := lineinput.New(64, 32)
	li.Set("ab")
	li.SetCursor(1)
	r := geom.Rect{X: 0, Y: 0, W: 200, H: 20}

	frame(u, in, 10, 10, false)
	u.DoEditBox(li, r, 10, false, geom.CornerAll, DarkButtonColors{})
	frame(u, in, 10, 10, true)
	u.DoEditBox(li, r, 10, false, geom.CornerAll, DarkButtonColors{})

	in.comp = "xy"
	in.compCur = 1
	frame(u, in, 10, 10, false)
	u.DoEditBox(li, r, 10, false, geom.CornerAll, DarkButtonColors{})

	last := rend.texts[len(rend.texts)-1]
	if last.text != "axyb" || last.opt.HighlightStart != 1 || last.opt.HighlightEnd != 3 {
		t.Fatalf("drawn %q highlight %d..%d", last.text, last.opt.HighlightStart, last.opt.HighlightEnd)
	}
	// caret after "ax": 2 bytes * 10/2
	if in.imePos[0] != r.X+2+10 {
		t.Fatalf("IME window x = %v", in.imePos[0])
	}
}

func TestEditBoxHidden(t *testing.T) {
	u, in, rend := newTestUI()
	li := lineinput.New(64, 32)
	li.Set("pässword")
	frame(u, in, 500, 500, false)
	u.DoEditBox(li, geom.Rect{W: 200, H: 20}, 10, true, geom.CornerAll, DarkButtonColors{})
	if got := rend.texts[len(rend.texts)-1].text; got != "********" {
		t.Fatalf("hidden text drawn as %q", got)
	}
}

func TestLabelHighlighted(t *testing.T) {
	u, _, rend := newTestUI()
	u.DoLabelHighlighted(geom.Rect{W: 100, H: 10}, "Server Name", "NAME", 10, colors.White, colors.Yellow)
	opt := rend.texts[0].opt
	if opt.HighlightStart != 7 || opt.HighlightEnd != 11 {
		t.Fatalf("highlight = %d..%d, want 7..11", opt.HighlightStart, opt.HighlightEnd)
	}
}
