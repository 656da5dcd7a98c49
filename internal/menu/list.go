package menu

import (
	"github.com/drunkenninja/overmenu/internal/input"
	"github.com/drunkenninja/overmenu/internal/menu/notify"
	"github.com/drunkenninja/overmenu/internal/menu/store"
)

// List is a control selecting one option from a fixed set. Clicking
// inside its bounds advances to the next option, wrapping around.
type List struct {
	control
	options []string
	index   int
}

// List creates a list control, registers it and immediately merges
// any persisted record. The option set is fixed at construction.
func (m *Menu) List(name, display string, options []string, index int, opts ...ControlOption) *List {
	l := &List{
		control: control{menu: m, name: name, display: display, visible: true},
		options: append([]string(nil), options...),
		index:   clampIndex(index, len(options)),
	}
	for _, opt := range opts {
		opt(&l.control)
	}
	m.Add(l)
	l.Load()
	return l
}

// Index returns the selected option's position.
func (l *List) Index() int { return l.index }

// Selected returns the selected option, or "" for an empty list.
func (l *List) Selected() string {
	if len(l.options) == 0 {
		return ""
	}
	return l.options[l.index]
}

// Options returns the option set. The slice is a copy.
func (l *List) Options() []string {
	return append([]string(nil), l.options...)
}

// SetIndex selects an option programmatically, persisting and
// notifying on change. Out-of-range indexes clamp.
func (l *List) SetIndex(index int) {
	index = clampIndex(index, len(l.options))
	if l.index == index {
		return
	}
	old := l.snapshot()
	l.index = index
	_ = l.Save()
	l.menu.notifyChange(old, l.snapshot())
}

// HandleEvent cycles to the next option on a click inside the bounds.
func (l *List) HandleEvent(ev input.Event) {
	if !l.Visible() || ev.Kind != input.ButtonDown || len(l.options) < 2 {
		return
	}
	bounds, ok := l.menu.controlBounds(l)
	if !ok || !bounds.Contains(ev.X, ev.Y) {
		return
	}
	l.SetIndex((l.index + 1) % len(l.options))
}

// Load merges a persisted selection; indexes beyond the current
// option set clamp to the last option.
func (l *List) Load() {
	if l.menu.storage == nil {
		return
	}
	if rec, ok := l.menu.storage.Load(l.path()); ok {
		l.index = clampIndex(rec.Number, len(l.options))
	}
}

// Save overwrites the control's persisted record.
func (l *List) Save() error {
	if l.menu.storage == nil {
		return nil
	}
	return l.menu.storage.Save(l.path(), store.Record{Name: l.name, Number: l.index})
}

func (l *List) snapshot() notify.Snapshot {
	return notify.Snapshot{Name: l.name, DisplayName: l.display, Number: l.index}
}

func clampIndex(index, n int) int {
	if n == 0 {
		return 0
	}
	return clamp(index, 0, n-1)
}
