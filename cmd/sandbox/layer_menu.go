package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/hubastard/groveui/engine/colors"
	"github.com/hubastard/groveui/engine/core"
	"github.com/hubastard/groveui/engine/geom"
	"github.com/hubastard/groveui/engine/input"
	"github.com/hubastard/groveui/engine/lineinput"
	"github.com/hubastard/groveui/engine/ui"
)

const (
	fontSize = 14
	rowH     = ui.ButtonHeight
	spacing  = 5
)

var serverNames = []string{
	"Amsterdam", "Athens", "Berlin", "Bogota", "Brussels", "Buenos Aires",
	"Cairo", "Cape Town", "Chicago", "Copenhagen", "Dublin", "Frankfurt",
	"Helsinki", "Hong Kong", "Istanbul", "Jakarta", "Johannesburg", "Lima",
	"Lisbon", "London", "Los Angeles", "Madrid", "Melbourne", "Mexico City",
	"Montreal", "Moscow", "Mumbai", "Oslo", "Paris", "Prague", "Santiago",
	"Sao Paulo", "Seoul", "Singapore", "Stockholm", "Sydney", "Tokyo",
	"Toronto", "Vienna", "Warsaw", "Zurich",
}

// ------- Widget demo -------
type LayerMenu struct {
	name, password, search *lineinput.Buffer

	// widget identities
	applyButton, copyButton, pasteButton, nextJoyButton byte
	maxFPSBar, sensBar, toleranceBar, joyBar, grabBar   byte
	listBar, picker                                     byte

	maxFPS    int
	joyEnable int
	grab      int
	scroll    float32
	selected  int
	hue, val  float32
	status    string
	items     []string
}

func NewLayerMenu() *LayerMenu {
	return &LayerMenu{
		name:     lineinput.New(64, 16),
		password: lineinput.New(64, 32),
		search:   lineinput.New(64, 32),
		items:    append([]string(nil), serverNames...),
		maxFPS:   144,
		val:      1,
		selected: -1,
	}
}

func (l *LayerMenu) OnAttach(e *core.Engine) {
	l.joyEnable = boolInt(e.Settings.JoystickEnable)
	l.grab = boolInt(e.Settings.InpGrab)
}

func (l *LayerMenu) OnDetach(e *core.Engine) {}

func (l *LayerMenu) OnUpdate(e *core.Engine, dt float64) {}

func (l *LayerMenu) OnInput(e *core.Engine, ev input.Event) bool { return false }

func (l *LayerMenu) OnRender(e *core.Engine, alpha float64) {
	u := e.UI
	area := u.Screen().Margin(40)
	u.DrawRect(area, colors.Black.WithAlpha(0.35), 10, geom.CornerAll)
	area = area.Margin(10)

	left, right := area.VSplitMid(20)
	l.settings(e, left)
	l.serverList(e, right)
	l.candidates(e, area)
}

func (l *LayerMenu) settings(e *core.Engine, r geom.Rect) {
	u := e.UI
	s := e.Settings
	next := func() geom.Rect {
		row, rest := r.HSplitTop(rowH)
		_, r = rest.HSplitTop(spacing)
		return row
	}

	u.DoEditBoxOption(l.name, next(), "Name", 100, false)
	u.DoEditBoxOption(l.password, next(), "Password", 100, true)

	u.DoScrollbarOption(&l.maxFPSBar, &l.maxFPS, next(), "Max FPS", 10, 1000, ui.DefaultLogScale, true)
	u.DoScrollbarOption(&l.sensBar, &s.UIMouseSens, next(), "UI mouse sens", 1, 500, ui.DefaultLogScale, false)
	u.DoScrollbarOption(&l.toleranceBar, &s.JoystickTolerance, next(), "Dead zone", 0, 50, ui.LinearScale{}, false)

	onOff := []string{"off", "on"}
	u.DoScrollbarOptionLabeled(&l.joyBar, &l.joyEnable, next(), "Joystick", onOff, ui.LinearScale{})
	s.JoystickEnable = l.joyEnable == 1
	u.DoScrollbarOptionLabeled(&l.grabBar, &l.grab, next(), "Raw mouse", onOff, ui.LinearScale{})
	s.InpGrab = l.grab == 1

	buttons := next()
	b1, rest := buttons.VSplitRatio(1.0/3, spacing)
	b2, b3 := rest.VSplitMid(spacing)
	if u.DoButton(&l.copyButton, "Copy name", b1, fontSize, ui.DarkButtonColors{}) {
		e.Input.SetClipboardText(l.name.Text())
		l.status = "name copied"
	}
	if u.DoButton(&l.pasteButton, "Paste name", b2, fontSize, ui.DarkButtonColors{}) {
		l.name.Set(e.Input.ClipboardText())
	}
	joyLabel := "No joystick"
	if e.Input.NumJoysticks() > 0 {
		joyLabel = fmt.Sprintf("Joystick %d/%d", e.Input.SelectedJoystickIndex()+1, e.Input.NumJoysticks())
	}
	if u.DoButton(&l.nextJoyButton, joyLabel, b3, fontSize, ui.DarkButtonColors{}) {
		e.Input.SelectNextJoystick()
	}

	if u.DoButton(&l.applyButton, "Apply", next(), fontSize, ui.LightButtonColors{}) || u.ConsumeHotkey(ui.HotkeyEnter) {
		l.status = fmt.Sprintf("hello, %s", l.name.Text())
	}
	u.DoLabel(next(), l.status, fontSize, ui.AlignLeft, -1)

	l.colorPicker(e, r)
}

func (l *LayerMenu) colorPicker(e *core.Engine, r geom.Rect) {
	u := e.UI
	area, _ := r.HSplitTop(min(r.H, 120))
	area, preview := area.VSplitRight(area.H)
	area, _ = area.VSplitRight(spacing)

	if x, y, ok := u.DoPickerLogic(&l.picker, area); ok {
		l.hue = (x - area.X) / area.W
		l.val = 1 - (y-area.Y)/area.H
	}
	top := hsv(l.hue, 1, 1)
	u.DrawRect4(area, [4]colors.Color{colors.White, top, colors.Black, colors.Black}, 0, geom.CornerNone)

	marker := geom.Rect{X: area.X + l.hue*area.W - 3, Y: area.Y + (1-l.val)*area.H - 3, W: 6, H: 6}
	u.DrawRect(marker, colors.White, 3, geom.CornerAll)
	u.DrawRect(preview, hsv(l.hue, 1, l.val), 5, geom.CornerAll)
}

func (l *LayerMenu) serverList(e *core.Engine, r geom.Rect) {
	u := e.UI
	searchRow, r := r.HSplitTop(rowH)
	_, r = r.HSplitTop(spacing)
	u.DoEditBoxOption(l.search, searchRow, "Search", 70, false)
	if u.ConsumeHotkey(ui.HotkeyEscape) {
		l.search.Clear()
	}

	var visible []int
	for i, it := range l.items {
		if l.search.Text() == "" || strings.Contains(strings.ToLower(it), strings.ToLower(l.search.Text())) {
			visible = append(visible, i)
		}
	}

	if u.ConsumeHotkey(ui.HotkeyDown) {
		l.selected = l.step(visible, 1)
	}
	if u.ConsumeHotkey(ui.HotkeyUp) {
		l.selected = l.step(visible, -1)
	}

	u.DrawRect(r, colors.Black.WithAlpha(0.25), 5, geom.CornerAll)
	list, bar := r.VSplitRight(20)
	list = list.Margin(2)

	total := float32(len(visible)) * rowH
	if u.MouseInside(r) {
		if u.KeyPress(input.KeyMouseWheelUp) {
			l.scroll -= 0.1
		}
		if u.KeyPress(input.KeyMouseWheelDown) {
			l.scroll += 0.1
		}
	}
	l.scroll = u.DoScrollbarV(&l.listBar, bar, l.scroll)
	offset := max(total-list.H, 0) * l.scroll

	u.ClipEnable(list)
	for n, idx := range visible {
		row := geom.Rect{X: list.X, Y: list.Y + float32(n)*rowH - offset, W: list.W, H: rowH}
		if row.Bottom() < list.Y || row.Y > list.Bottom() {
			continue
		}
		id := &l.items[idx]
		if u.DoButtonLogic(id, row, 0) {
			l.selected = idx
		}
		if l.selected == idx {
			u.DrawRect(row, colors.White.WithAlpha(0.25), 4, geom.CornerAll)
			if u.MouseHovered(row) && e.Input.MouseDoubleClick() {
				l.status = "joining " + l.items[idx]
			}
		} else if u.HotItem() == id {
			u.DrawRect(row, colors.White.WithAlpha(0.1), 4, geom.CornerAll)
		}
		u.DoLabelHighlighted(row.VMargin(5), l.items[idx], l.search.Text(), fontSize, ui.DefaultTextColor, colors.Yellow)
	}
	u.ClipDisable()
}

// step moves the selection through the visible rows.
func (l *LayerMenu) step(visible []int, dir int) int {
	if len(visible) == 0 {
		return -1
	}
	pos := -1
	for n, idx := range visible {
		if idx == l.selected {
			pos = n
		}
	}
	pos = min(max(pos+dir, 0), len(visible)-1)
	return visible[pos]
}

// candidates shows the IME candidate window while composing.
func (l *LayerMenu) candidates(e *core.Engine, r geom.Rect) {
	in := e.Input
	list := in.Candidates()
	if !in.HasComposition() || len(list) == 0 {
		return
	}
	u := e.UI
	box := geom.Rect{X: r.X, Y: r.Bottom() - float32(len(list))*rowH, W: 200, H: float32(len(list)) * rowH}
	u.DrawRect(box, colors.Black.WithAlpha(0.8), 5, geom.CornerAll)
	for i, c := range list {
		row := geom.Rect{X: box.X, Y: box.Y + float32(i)*rowH, W: box.W, H: rowH}
		if i == in.CandidateSelectedIndex() {
			u.DrawRect(row, colors.White.WithAlpha(0.3), 5, geom.CornerAll)
		}
		u.DoLabel(row.VMargin(5), fmt.Sprintf("%d. %s", i+1, c), fontSize, ui.AlignLeft, -1)
	}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// hsv converts hue, saturation and value in [0, 1] to an opaque color.
func hsv(h, s, v float32) colors.Color {
	h = float32(math.Mod(float64(h), 1)) * 6
	i := int(h)
	f := h - float32(i)
	p, q, t := v*(1-s), v*(1-s*f), v*(1-s*(1-f))
	switch i % 6 {
	case 0:
		return colors.Color{v, t, p, 1}
	case 1:
		return colors.Color{q, v, p, 1}
	case 2:
		return colors.Color{p, v, t, 1}
	case 3:
		return colors.Color{p, q, v, 1}
	case 4:
		return colors.Color{t, p, v, 1}
	default:
		return colors.Color{v, p, q, 1}
	}
}
