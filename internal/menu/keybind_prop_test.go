package menu

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/drunkenninja/overmenu/internal/input"
)

// genEvent draws an arbitrary raw input event, pointer positions
// spanning in and out of the fakeProvider geometry and keys drawn from
// a small set including the bound key.
func genEvent(t *rapid.T) input.Event {
	kind := rapid.SampledFrom([]input.Kind{
		input.ButtonDown, input.KeyDown, input.KeyUp,
	}).Draw(t, "kind")

	if kind == input.ButtonDown {
		return input.Event{
			Kind: input.ButtonDown,
			X:    rapid.IntRange(-5, 60).Draw(t, "x"),
			Y:    rapid.IntRange(-2, 8).Draw(t, "y"),
		}
	}
	key := rapid.SampledFrom([]input.Key{
		input.KeySpace, input.KeyA, input.KeyF5, input.KeyEscape,
	}).Draw(t, "key")
	return input.KeyEvent(kind, key)
}

// An invisible control is inert under every event sequence.
func TestKeyBind_Prop_InvisibleUnchanged(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m, st, n := newTestMenu(nil)
		changes := countChanges(n)
		kb := m.KeyBind("combo", "Combo", input.KeySpace, Toggle)
		kb.SetVisible(false)

		steps := rapid.IntRange(0, 50).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			m.Dispatch(genEvent(t))
		}

		if kb.Value() || kb.Capturing() || kb.Key() != input.KeySpace {
			t.Fatalf("invisible control mutated: value=%v capturing=%v key=%v",
				kb.Value(), kb.Capturing(), kb.Key())
		}
		if len(st.saves) != 0 || *changes != 0 {
			t.Fatalf("invisible control persisted (%d) or notified (%d)",
				len(st.saves), *changes)
		}
	})
}

// Under key events alone, a press-mode bind never persists and its
// value always equals "the bound key is currently down".
func TestKeyBind_Prop_PressTracksKeyState(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m, st, _ := newTestMenu(nil)
		kb := m.KeyBind("combo", "Combo", input.KeySpace, Press)

		held := false
		steps := rapid.IntRange(0, 80).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			kind := rapid.SampledFrom([]input.Kind{input.KeyDown, input.KeyUp}).Draw(t, "kind")
			key := rapid.SampledFrom([]input.Key{
				input.KeySpace, input.KeyA, input.KeyF5,
			}).Draw(t, "key")
			m.Dispatch(input.KeyEvent(kind, key))

			if key == input.KeySpace {
				held = kind == input.KeyDown
			}
			if kb.Value() != held {
				t.Fatalf("value = %v, want %v after %s(%s)", kb.Value(), held, kind, key)
			}
		}

		if len(st.saves) != 0 {
			t.Fatalf("press mode persisted %d times", len(st.saves))
		}
	})
}

// Under key events alone, a toggle-mode bind flips once per key-up on
// the bound key and persists exactly once per flip.
func TestKeyBind_Prop_ToggleCountsKeyUps(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m, st, _ := newTestMenu(nil)
		kb := m.KeyBind("combo", "Combo", input.KeySpace, Toggle)

		flips := 0
		steps := rapid.IntRange(0, 80).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			kind := rapid.SampledFrom([]input.Kind{input.KeyDown, input.KeyUp}).Draw(t, "kind")
			key := rapid.SampledFrom([]input.Key{
				input.KeySpace, input.KeyA, input.KeyEscape,
			}).Draw(t, "key")
			m.Dispatch(input.KeyEvent(kind, key))
			if kind == input.KeyUp && key == input.KeySpace {
				flips++
			}
		}

		if want := flips%2 == 1; kb.Value() != want {
			t.Fatalf("value = %v after %d flips", kb.Value(), flips)
		}
		if len(st.saves) != flips {
			t.Fatalf("saves = %d, want %d", len(st.saves), flips)
		}
	})
}
