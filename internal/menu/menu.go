package menu

import (
	"github.com/drunkenninja/overmenu/internal/input"
	"github.com/drunkenninja/overmenu/internal/menu/notify"
)

// Menu owns an ordered set of controls for one plugin. It forwards
// raw host input events to every visible control and supplies the
// shared collaborators (storage, bounds provider, notifier) controls
// need.
type Menu struct {
	name    string
	display string

	// owner is the identity the host assigned to the constructing
	// plugin. It namespaces unshared persistence paths and nothing
	// else.
	owner string

	storage  Storage
	provider BoundsProvider
	notifier *notify.Notifier

	visible bool
	items   []Component
	index   map[string]Component
}

// Option configures a Menu.
type Option func(*Menu)

// WithDisplayName sets the user-facing menu title.
func WithDisplayName(display string) Option {
	return func(m *Menu) { m.display = display }
}

// WithOwner sets the plugin identity used for unshared persistence
// namespacing. The host assigns it; the menu never derives it.
func WithOwner(owner string) Option {
	return func(m *Menu) { m.owner = owner }
}

// WithStorage sets the persistence adapter.
func WithStorage(s Storage) Option {
	return func(m *Menu) { m.storage = s }
}

// WithProvider sets the bounds provider.
func WithProvider(p BoundsProvider) Option {
	return func(m *Menu) { m.provider = p }
}

// WithNotifier sets the change notifier.
func WithNotifier(n *notify.Notifier) Option {
	return func(m *Menu) { m.notifier = n }
}

// New creates a visible, empty menu.
func New(name string, opts ...Option) *Menu {
	m := &Menu{
		name:    name,
		display: name,
		owner:   name,
		visible: true,
		index:   make(map[string]Component),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Name returns the menu's internal name.
func (m *Menu) Name() string { return m.name }

// DisplayName returns the menu's title.
func (m *Menu) DisplayName() string { return m.display }

// Owner returns the plugin identity the menu was built with.
func (m *Menu) Owner() string { return m.owner }

// Visible reports whether the menu is shown.
func (m *Menu) Visible() bool { return m.visible }

// SetVisible shows or hides the whole menu. A hidden menu discards
// all events.
func (m *Menu) SetVisible(visible bool) { m.visible = visible }

// SetProvider installs the bounds provider after construction. Until
// one is set, pointer events are dropped.
func (m *Menu) SetProvider(p BoundsProvider) { m.provider = p }

// Notifier returns the menu's change notifier, which may be nil.
func (m *Menu) Notifier() *notify.Notifier { return m.notifier }

// Add registers a custom component. A component with the same name
// replaces the previous registration in place.
func (m *Menu) Add(c Component) {
	if prev, ok := m.index[c.Name()]; ok {
		for i, item := range m.items {
			if item == prev {
				m.items[i] = c
				break
			}
		}
	} else {
		m.items = append(m.items, c)
	}
	m.index[c.Name()] = c
}

// Get returns the component with the given internal name.
func (m *Menu) Get(name string) (Component, bool) {
	c, ok := m.index[name]
	return c, ok
}

// Components returns the controls in registration order. The slice is
// shared; callers must not mutate it.
func (m *Menu) Components() []Component {
	return m.items
}

// Dispatch forwards one raw input event to every visible control, in
// registration order, on the calling goroutine. Controls decide
// themselves whether the event concerns them.
func (m *Menu) Dispatch(ev input.Event) {
	if !m.visible {
		return
	}
	for _, c := range m.items {
		c.HandleEvent(ev)
	}
}

// controlBounds asks the provider for a control's full rectangle.
func (m *Menu) controlBounds(c Component) (Rect, bool) {
	if m.provider == nil {
		return Rect{}, false
	}
	return m.provider.ControlBounds(c)
}

// toggleBounds asks the provider for a control's toggle hit area.
func (m *Menu) toggleBounds(c Component) (Rect, bool) {
	if m.provider == nil {
		return Rect{}, false
	}
	return m.provider.ToggleBounds(c)
}

// notifyChange publishes a mutation to subscribers. Delivery is
// synchronous: subscribers run before the next event is processed.
func (m *Menu) notifyChange(old, new notify.Snapshot) {
	if m.notifier == nil {
		return
	}
	m.notifier.Notify(notify.Change{Old: old, New: new})
}
