// Package input defines the raw input event model consumed by menu
// controls. Events arrive from the host application's message pump as
// (kind, position, key) tuples and are delivered single-threaded and
// in order; this package only models them, it never dispatches.
package input

import "fmt"

// Kind classifies a raw input event.
type Kind uint8

const (
	// ButtonDown is a pointer button press at a screen position.
	ButtonDown Kind = iota

	// KeyDown is a physical key press.
	KeyDown

	// KeyUp is a physical key release.
	KeyUp
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case ButtonDown:
		return "button-down"
	case KeyDown:
		return "key-down"
	case KeyUp:
		return "key-up"
	default:
		return "unknown"
	}
}

// IsPointer returns true for events carrying a screen position.
func (k Kind) IsPointer() bool {
	return k == ButtonDown
}

// Event is a single raw input event. For pointer kinds X and Y hold
// the screen position; for key kinds Key holds the virtual-key code.
type Event struct {
	Kind Kind
	X    int
	Y    int
	Key  Key
}

// PackPosition packs a screen position into a single position word in
// the host's wire layout: low 16 bits x, remaining bits y.
func PackPosition(x, y int) uint64 {
	return uint64(y)<<16 | uint64(x)&0xFFFF
}

// PointerEvent builds a pointer event from a packed position word.
func PointerEvent(kind Kind, packed uint64) Event {
	return Event{
		Kind: kind,
		X:    int(packed & 0xFFFF),
		Y:    int(packed >> 16),
	}
}

// KeyEvent builds a key event from a virtual-key code.
func KeyEvent(kind Kind, key Key) Event {
	return Event{Kind: kind, Key: key}
}

// String returns a compact description for logging and tests.
func (e Event) String() string {
	if e.Kind.IsPointer() {
		return fmt.Sprintf("%s(%d,%d)", e.Kind, e.X, e.Y)
	}
	return fmt.Sprintf("%s(%s)", e.Kind, e.Key)
}
