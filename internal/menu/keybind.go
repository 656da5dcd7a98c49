package menu

import (
	"github.com/drunkenninja/overmenu/internal/input"
	"github.com/drunkenninja/overmenu/internal/menu/notify"
	"github.com/drunkenninja/overmenu/internal/menu/store"
)

// BindMode selects how a KeyBind interprets its bound key.
type BindMode uint8

const (
	// Press is momentary: the value is true exactly while the bound
	// key is physically held down. Press transitions are never
	// persisted.
	Press BindMode = iota

	// Toggle is latched: the value flips once per completed key-up on
	// the bound key, and each flip is persisted.
	Toggle
)

// String returns the mode name.
func (m BindMode) String() string {
	switch m {
	case Press:
		return "press"
	case Toggle:
		return "toggle"
	default:
		return "unknown"
	}
}

// KeyBind binds a boolean value to a physical key. Clicking the
// control outside its toggle sub-region starts key capture: the next
// key released, whatever it is, becomes the new binding. Clicking
// inside the toggle sub-region flips the value directly.
type KeyBind struct {
	control

	key   input.Key
	mode  BindMode
	value bool

	// capturing is true between a click on the capture region and the
	// key-up that completes the rebind. While capturing, key matching
	// is suspended so the key being replaced cannot fire the bind.
	capturing bool
}

// KeyBind creates a key binding control, registers it and immediately
// merges any persisted record. Mode and key are fixed at
// construction; only value and key are ever restored from disk.
func (m *Menu) KeyBind(name, display string, key input.Key, mode BindMode, opts ...ControlOption) *KeyBind {
	k := &KeyBind{
		control: control{menu: m, name: name, display: display, visible: true},
		key:     key,
		mode:    mode,
	}
	for _, opt := range opts {
		opt(&k.control)
	}
	m.Add(k)
	k.Load()
	return k
}

// Value returns the current boolean state.
func (k *KeyBind) Value() bool { return k.value }

// Enabled is an alias for Value, exposed for conditional UI.
func (k *KeyBind) Enabled() bool { return k.value }

// Key returns the currently bound key.
func (k *KeyBind) Key() input.Key { return k.key }

// Mode returns the bind mode fixed at construction.
func (k *KeyBind) Mode() BindMode { return k.mode }

// Capturing reports whether the control is waiting for a new key.
func (k *KeyBind) Capturing() bool { return k.capturing }

// HandleEvent runs the bind's state machine for one raw input event.
// A single event either toggles the capturing state or performs
// exactly one value/key mutation, never both.
func (k *KeyBind) HandleEvent(ev input.Event) {
	if !k.Visible() {
		return
	}

	switch ev.Kind {
	case input.ButtonDown:
		k.handleClick(ev.X, ev.Y)
	case input.KeyUp:
		if k.capturing {
			// Any released key completes the capture.
			k.finishCapture(ev.Key)
			return
		}
		if ev.Key != k.key {
			return
		}
		switch k.mode {
		case Press:
			k.setValue(false, false)
		case Toggle:
			k.setValue(!k.value, true)
		}
	case input.KeyDown:
		if k.capturing || k.mode != Press || ev.Key != k.key {
			return
		}
		k.setValue(true, false)
	}
}

// handleClick hit-tests a pointer press. Pointer hit-testing runs
// before any key matching so a click on the capture region can never
// be misread as a key match.
func (k *KeyBind) handleClick(x, y int) {
	bounds, ok := k.menu.controlBounds(k)
	if !ok || !bounds.Contains(x, y) {
		return
	}
	toggle, ok := k.menu.toggleBounds(k)
	if !ok {
		return
	}

	if toggle.Contains(x, y) {
		// The toggle region works independently of the capture state:
		// a click here flips the value even mid-capture. Observed
		// host behavior, kept deliberately.
		k.setValue(!k.value, k.mode == Toggle)
		return
	}
	k.capturing = true
}

// finishCapture installs the released key as the new binding.
func (k *KeyBind) finishCapture(key input.Key) {
	old := k.snapshot()
	k.key = key
	k.capturing = false
	k.persist()
	k.menu.notifyChange(old, k.snapshot())
}

// setValue applies a value transition. No-op transitions (press-mode
// key autorepeat) neither persist nor notify.
func (k *KeyBind) setValue(value, persist bool) {
	if k.value == value {
		return
	}
	old := k.snapshot()
	k.value = value
	if persist {
		k.persist()
	}
	k.menu.notifyChange(old, k.snapshot())
}

// persist writes the record best-effort. A write failure does not
// roll back the in-memory value; the session stays internally
// consistent even if the value fails to outlive it.
func (k *KeyBind) persist() {
	_ = k.Save()
}

// Load merges a persisted record into the bind: value and key only.
// Mode, display name and sharing stay whatever construction
// specified, so stale files never override code changes.
func (k *KeyBind) Load() {
	if k.menu.storage == nil {
		return
	}
	rec, ok := k.menu.storage.Load(k.path())
	if !ok {
		return
	}
	k.value = rec.Value
	k.key = input.Key(rec.Key)
}

// Save overwrites the bind's persisted record.
func (k *KeyBind) Save() error {
	if k.menu.storage == nil {
		return nil
	}
	return k.menu.storage.Save(k.path(), store.Record{
		Name:  k.name,
		Value: k.value,
		Key:   int(k.key),
		Mode:  int(k.mode),
	})
}

// snapshot copies the diffable fields for change notification.
func (k *KeyBind) snapshot() notify.Snapshot {
	return notify.Snapshot{
		Name:        k.name,
		DisplayName: k.display,
		Value:       k.value,
		Key:         int(k.key),
	}
}
