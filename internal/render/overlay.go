// Package render draws a menu as a terminal overlay using tcell and
// implements the bounds-provider contract the menu core hit-tests
// against. It also translates tcell input into the raw event model.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/drunkenninja/overmenu/internal/menu"
)

// Row geometry: one control per row, the toggle box in the rightmost
// cells.
const (
	rowWidth    = 36
	toggleWidth = 6
)

// Overlay renders one menu at a fixed origin.
type Overlay struct {
	screen tcell.Screen
	menu   *menu.Menu

	originX int
	originY int

	// ready is false until the screen is initialized; before that the
	// provider reports no bounds and pointer events are dropped.
	ready bool

	// lastButtons tracks the previous mouse button mask so only press
	// edges become ButtonDown events.
	lastButtons tcell.ButtonMask
}

// Option configures an Overlay.
type Option func(*Overlay)

// WithOrigin places the menu's top-left corner.
func WithOrigin(x, y int) Option {
	return func(o *Overlay) {
		o.originX = x
		o.originY = y
	}
}

// WithScreen injects a screen, used by tests with tcell's simulation
// screen. When unset, Init creates a real terminal screen.
func WithScreen(screen tcell.Screen) Option {
	return func(o *Overlay) { o.screen = screen }
}

// New creates an overlay for a menu. Call Init before use.
func New(m *menu.Menu, opts ...Option) *Overlay {
	o := &Overlay{menu: m, originX: 1, originY: 1}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Init sets up the screen and enables mouse reporting.
func (o *Overlay) Init() error {
	if o.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		o.screen = screen
	}
	if err := o.screen.Init(); err != nil {
		return err
	}
	o.screen.EnableMouse()
	o.ready = true
	return nil
}

// Fini restores the terminal.
func (o *Overlay) Fini() {
	if o.screen != nil {
		o.screen.Fini()
	}
	o.ready = false
}

// Sync forces a full repaint, used after terminal resizes.
func (o *Overlay) Sync() {
	if o.ready {
		o.screen.Sync()
	}
}

// PollEvent blocks for the next tcell event.
func (o *Overlay) PollEvent() tcell.Event {
	return o.screen.PollEvent()
}

// PostEvent injects an event into the screen's queue. It is the only
// overlay method safe to call from another goroutine; everything else
// stays on the event-loop goroutine.
func (o *Overlay) PostEvent(ev tcell.Event) error {
	return o.screen.PostEvent(ev)
}

// visibleRow returns the row index of a visible component, counting
// only visible components above it. Hidden controls occupy no row.
func (o *Overlay) visibleRow(c menu.Component) (int, bool) {
	if !o.ready || !o.menu.Visible() {
		return 0, false
	}
	row := 0
	for _, item := range o.menu.Components() {
		if !item.Visible() {
			continue
		}
		if item == c {
			return row, true
		}
		row++
	}
	return 0, false
}

// ControlBounds implements menu.BoundsProvider.
func (o *Overlay) ControlBounds(c menu.Component) (menu.Rect, bool) {
	row, ok := o.visibleRow(c)
	if !ok {
		return menu.Rect{}, false
	}
	return menu.NewRect(o.originX, o.originY+1+row, rowWidth, 1), true
}

// ToggleBounds implements menu.BoundsProvider.
func (o *Overlay) ToggleBounds(c menu.Component) (menu.Rect, bool) {
	bounds, ok := o.ControlBounds(c)
	if !ok {
		return menu.Rect{}, false
	}
	bounds.Left = bounds.Right - toggleWidth
	return bounds, true
}

// Draw renders the menu and flushes the screen.
func (o *Overlay) Draw() {
	if !o.ready {
		return
	}
	o.screen.Clear()
	if o.menu.Visible() {
		o.drawText(o.originX, o.originY, headerStyle, pad(o.menu.DisplayName(), rowWidth))
		row := 0
		for _, c := range o.menu.Components() {
			if !c.Visible() {
				continue
			}
			o.drawText(o.originX, o.originY+1+row, rowStyle(c), renderRow(c))
			row++
		}
	}
	o.screen.Show()
}

var headerStyle = tcell.StyleDefault.Bold(true).Reverse(true)

func rowStyle(c menu.Component) tcell.Style {
	if kb, ok := c.(*menu.KeyBind); ok && kb.Capturing() {
		return tcell.StyleDefault.Reverse(true)
	}
	return tcell.StyleDefault
}

// renderRow formats one control as a fixed-width row with its value
// box in the toggle region.
func renderRow(c menu.Component) string {
	label := c.DisplayName()
	var body, box string

	switch v := c.(type) {
	case *menu.KeyBind:
		if v.Capturing() {
			body = "[press a key]"
		} else {
			body = fmt.Sprintf("[%s]", v.Key())
		}
		box = onOff(v.Value())
	case *menu.Bool:
		box = onOff(v.Value())
	case *menu.Slider:
		body = fmt.Sprintf("%d", v.Value())
		box = fmt.Sprintf("%3d%%", percent(v))
	case *menu.List:
		body = fmt.Sprintf("< %s >", v.Selected())
	case *menu.Separator:
		return pad(label, rowWidth)
	}

	left := rowWidth - toggleWidth
	line := pad(label, left-runewidth.StringWidth(body)-1) + " " + body
	return pad(line, left) + pad(box, toggleWidth)
}

func onOff(v bool) string {
	if v {
		return "[ ON]"
	}
	return "[OFF]"
}

func percent(s *menu.Slider) int {
	span := s.Max() - s.Min()
	if span == 0 {
		return 100
	}
	return (s.Value() - s.Min()) * 100 / span
}

// pad truncates or right-pads a string to a display width, never
// splitting a rune.
func pad(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, width, ""), width)
}

func (o *Overlay) drawText(x, y int, style tcell.Style, text string) {
	col := x
	for _, r := range text {
		o.screen.SetContent(col, y, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
}
