package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/drunkenninja/overmenu/internal/input"
)

// Translate converts a tcell event into raw input events. Mouse
// presses become ButtonDown on the press edge only. Terminals report
// completed key presses rather than separate down/up transitions, so
// one key event becomes a KeyDown/KeyUp pair; momentary binds work,
// they just never observe a held key.
func (o *Overlay) Translate(ev tcell.Event) []input.Event {
	switch e := ev.(type) {
	case *tcell.EventMouse:
		buttons := e.Buttons() & tcell.ButtonMask(0xFF)
		pressed := buttons &^ o.lastButtons
		o.lastButtons = buttons
		if pressed == 0 {
			return nil
		}
		x, y := e.Position()
		return []input.Event{input.PointerEvent(input.ButtonDown, input.PackPosition(x, y))}

	case *tcell.EventKey:
		key := keyFromTcell(e)
		if key == input.KeyNone {
			return nil
		}
		return []input.Event{
			input.KeyEvent(input.KeyDown, key),
			input.KeyEvent(input.KeyUp, key),
		}
	}
	return nil
}

// keyFromTcell maps a tcell key event to a virtual-key code.
func keyFromTcell(ev *tcell.EventKey) input.Key {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		switch {
		case r == ' ':
			return input.KeySpace
		case r >= 'a' && r <= 'z':
			return input.KeyA + input.Key(r-'a')
		case r >= 'A' && r <= 'Z':
			return input.KeyA + input.Key(r-'A')
		case r >= '0' && r <= '9':
			return input.Key0 + input.Key(r-'0')
		}
		return input.KeyNone
	}

	if k := ev.Key(); k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return input.KeyF1 + input.Key(k-tcell.KeyF1)
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		return input.KeyEscape
	case tcell.KeyEnter:
		return input.KeyReturn
	case tcell.KeyTab:
		return input.KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return input.KeyBack
	case tcell.KeyDelete:
		return input.KeyDelete
	case tcell.KeyInsert:
		return input.KeyInsert
	case tcell.KeyHome:
		return input.KeyHome
	case tcell.KeyEnd:
		return input.KeyEnd
	case tcell.KeyPgUp:
		return input.KeyPageUp
	case tcell.KeyPgDn:
		return input.KeyPageDown
	case tcell.KeyUp:
		return input.KeyArrowUp
	case tcell.KeyDown:
		return input.KeyArrowDown
	case tcell.KeyLeft:
		return input.KeyArrowLeft
	case tcell.KeyRight:
		return input.KeyArrowRight
	default:
		return input.KeyNone
	}
}
