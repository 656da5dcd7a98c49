package menu

import (
	"github.com/drunkenninja/overmenu/internal/input"
	"github.com/drunkenninja/overmenu/internal/menu/notify"
	"github.com/drunkenninja/overmenu/internal/menu/store"
)

// Bool is a checkbox control: a persisted boolean toggled by clicking
// anywhere inside the control's bounds.
type Bool struct {
	control
	value bool
}

// Bool creates a checkbox control, registers it and immediately
// merges any persisted record.
func (m *Menu) Bool(name, display string, value bool, opts ...ControlOption) *Bool {
	b := &Bool{
		control: control{menu: m, name: name, display: display, visible: true},
		value:   value,
	}
	for _, opt := range opts {
		opt(&b.control)
	}
	m.Add(b)
	b.Load()
	return b
}

// Value returns the current boolean state.
func (b *Bool) Value() bool { return b.value }

// Enabled is an alias for Value, exposed for conditional UI.
func (b *Bool) Enabled() bool { return b.value }

// SetValue sets the value programmatically, persisting and notifying
// on change.
func (b *Bool) SetValue(value bool) {
	if b.value == value {
		return
	}
	old := b.snapshot()
	b.value = value
	_ = b.Save()
	b.menu.notifyChange(old, b.snapshot())
}

// HandleEvent flips the value on a click inside the control's bounds.
func (b *Bool) HandleEvent(ev input.Event) {
	if !b.Visible() || ev.Kind != input.ButtonDown {
		return
	}
	bounds, ok := b.menu.controlBounds(b)
	if !ok || !bounds.Contains(ev.X, ev.Y) {
		return
	}
	b.SetValue(!b.value)
}

// Load merges a persisted value; defaults survive missing or
// malformed records.
func (b *Bool) Load() {
	if b.menu.storage == nil {
		return
	}
	if rec, ok := b.menu.storage.Load(b.path()); ok {
		b.value = rec.Value
	}
}

// Save overwrites the control's persisted record.
func (b *Bool) Save() error {
	if b.menu.storage == nil {
		return nil
	}
	return b.menu.storage.Save(b.path(), store.Record{Name: b.name, Value: b.value})
}

func (b *Bool) snapshot() notify.Snapshot {
	return notify.Snapshot{Name: b.name, DisplayName: b.display, Value: b.value}
}
