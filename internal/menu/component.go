package menu

import (
	"github.com/drunkenninja/overmenu/internal/input"
	"github.com/drunkenninja/overmenu/internal/menu/store"
)

// Component is the contract every menu control satisfies. Controls
// are a closed set of variants; capability methods replace a class
// hierarchy.
type Component interface {
	// Name is the stable internal name, unique within the menu; it is
	// also the persistence key.
	Name() string

	// DisplayName is the user-facing label.
	DisplayName() string

	// Visible reports whether the control currently receives events.
	// An invisible control discards all events without state change.
	Visible() bool

	// SetVisible shows or hides the control.
	SetVisible(visible bool)

	// HandleEvent consumes one raw input event. Side effects (value
	// or key mutation, persistence, change notification) are the only
	// observable contract; there is no return value.
	HandleEvent(ev input.Event)

	// Load merges any persisted record into the control. Missing or
	// malformed records leave compiled-in defaults untouched.
	Load()

	// Save persists the control's current record, overwriting any
	// previous one. Controls that hold no persistent state return nil.
	Save() error
}

// BoundsProvider reports screen geometry for controls. The renderer
// implements it; the menu core calls it synchronously on every
// pointer event. A provider that cannot answer yet returns false and
// the pointer event is dropped.
type BoundsProvider interface {
	// ControlBounds returns the control's full clickable rectangle.
	ControlBounds(c Component) (Rect, bool)

	// ToggleBounds returns the sub-rectangle that toggles the
	// control's boolean value when clicked.
	ToggleBounds(c Component) (Rect, bool)
}

// Storage is the persistence surface a menu needs. *store.Store
// satisfies it.
type Storage interface {
	PathFor(name string, shared bool, owner string) string
	Load(path string) (store.Record, bool)
	Save(path string, rec store.Record) error
}

// control carries the state common to every concrete control.
type control struct {
	menu    *Menu
	name    string
	display string
	shared  bool
	visible bool
}

func (c *control) Name() string { return c.name }

func (c *control) DisplayName() string { return c.display }

// Visible is true only when both the control and its owning menu are
// visible, so hidden menu branches never capture input.
func (c *control) Visible() bool {
	return c.visible && c.menu.Visible()
}

func (c *control) SetVisible(visible bool) { c.visible = visible }

// path resolves the control's persistence location.
func (c *control) path() string {
	return c.menu.storage.PathFor(c.name, c.shared, c.menu.owner)
}

// ControlOption configures a control at construction.
type ControlOption func(*control)

// Shared places the control's record in the global persistence
// namespace, keyed only by internal name. Two independently built
// controls that agree on a name then intentionally share one file.
func Shared() ControlOption {
	return func(c *control) { c.shared = true }
}

// Hidden constructs the control invisible.
func Hidden() ControlOption {
	return func(c *control) { c.visible = false }
}
