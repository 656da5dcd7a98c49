package menu

import (
	"github.com/drunkenninja/overmenu/internal/input"
	"github.com/drunkenninja/overmenu/internal/menu/notify"
	"github.com/drunkenninja/overmenu/internal/menu/store"
)

// Slider is an integer control in [Min, Max]. Clicking inside its
// bounds sets the value proportionally to the click position.
type Slider struct {
	control
	value int
	min   int
	max   int
}

// Slider creates a slider control, registers it and immediately
// merges any persisted record. Values are clamped to [min, max].
func (m *Menu) Slider(name, display string, value, min, max int, opts ...ControlOption) *Slider {
	if max < min {
		min, max = max, min
	}
	s := &Slider{
		control: control{menu: m, name: name, display: display, visible: true},
		value:   clamp(value, min, max),
		min:     min,
		max:     max,
	}
	for _, opt := range opts {
		opt(&s.control)
	}
	m.Add(s)
	s.Load()
	return s
}

// Value returns the current value.
func (s *Slider) Value() int { return s.value }

// Min returns the lower bound.
func (s *Slider) Min() int { return s.min }

// Max returns the upper bound.
func (s *Slider) Max() int { return s.max }

// SetValue sets the value programmatically, clamping to range and
// persisting and notifying on change.
func (s *Slider) SetValue(value int) {
	value = clamp(value, s.min, s.max)
	if s.value == value {
		return
	}
	old := s.snapshot()
	s.value = value
	_ = s.Save()
	s.menu.notifyChange(old, s.snapshot())
}

// HandleEvent maps a click inside the bounds to a value proportional
// to the horizontal click position.
func (s *Slider) HandleEvent(ev input.Event) {
	if !s.Visible() || ev.Kind != input.ButtonDown {
		return
	}
	bounds, ok := s.menu.controlBounds(s)
	if !ok || !bounds.Contains(ev.X, ev.Y) {
		return
	}
	span := bounds.Width() - 1
	if span <= 0 {
		return
	}
	s.SetValue(s.min + (ev.X-bounds.Left)*(s.max-s.min)/span)
}

// Load merges a persisted value; out-of-range values clamp rather
// than reject, so a range narrowed in code still honors old files.
func (s *Slider) Load() {
	if s.menu.storage == nil {
		return
	}
	if rec, ok := s.menu.storage.Load(s.path()); ok {
		s.value = clamp(rec.Number, s.min, s.max)
	}
}

// Save overwrites the control's persisted record.
func (s *Slider) Save() error {
	if s.menu.storage == nil {
		return nil
	}
	return s.menu.storage.Save(s.path(), store.Record{Name: s.name, Number: s.value})
}

func (s *Slider) snapshot() notify.Snapshot {
	return notify.Snapshot{Name: s.name, DisplayName: s.display, Number: s.value}
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
