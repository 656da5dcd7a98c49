package menu

import "github.com/drunkenninja/overmenu/internal/input"

// Separator is a display-only divider. It never persists and ignores
// every event.
type Separator struct {
	control
}

// Separator creates a divider and registers it. The display text may
// be empty for a plain rule.
func (m *Menu) Separator(name, display string) *Separator {
	s := &Separator{
		control: control{menu: m, name: name, display: display, visible: true},
	}
	m.Add(s)
	return s
}

// HandleEvent discards the event.
func (s *Separator) HandleEvent(input.Event) {}

// Load is a no-op; separators hold no persistent state.
func (s *Separator) Load() {}

// Save is a no-op; separators hold no persistent state.
func (s *Separator) Save() error { return nil }
