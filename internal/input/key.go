package input

import (
	"fmt"
	"strings"
)

// Key identifies a physical key using Windows virtual-key code values.
// The numeric values match what a Win32 message pump delivers in wparam,
// so host-forwarded key events can be compared without translation.
type Key int

// Virtual-key codes.
const (
	KeyNone    Key = 0x00
	KeyLButton Key = 0x01
	KeyRButton Key = 0x02
	KeyMButton Key = 0x04

	KeyBack     Key = 0x08
	KeyTab      Key = 0x09
	KeyReturn   Key = 0x0D
	KeyShift    Key = 0x10
	KeyControl  Key = 0x11
	KeyAlt      Key = 0x12
	KeyPause    Key = 0x13
	KeyCapsLock Key = 0x14
	KeyEscape   Key = 0x1B
	KeySpace    Key = 0x20

	KeyPageUp   Key = 0x21
	KeyPageDown Key = 0x22
	KeyEnd      Key = 0x23
	KeyHome     Key = 0x24

	KeyArrowLeft  Key = 0x25
	KeyArrowUp    Key = 0x26
	KeyArrowRight Key = 0x27
	KeyArrowDown  Key = 0x28

	KeyInsert Key = 0x2D
	KeyDelete Key = 0x2E

	// Digits 0-9 occupy 0x30-0x39, matching ASCII.
	Key0 Key = 0x30
	Key9 Key = 0x39

	// Letters A-Z occupy 0x41-0x5A, matching ASCII.
	KeyA Key = 0x41
	KeyZ Key = 0x5A

	KeyNum0     Key = 0x60
	KeyNum9     Key = 0x69
	KeyMultiply Key = 0x6A
	KeyAdd      Key = 0x6B
	KeySubtract Key = 0x6D
	KeyDecimal  Key = 0x6E
	KeyDivide   Key = 0x6F

	KeyF1  Key = 0x70
	KeyF2  Key = 0x71
	KeyF3  Key = 0x72
	KeyF4  Key = 0x73
	KeyF5  Key = 0x74
	KeyF6  Key = 0x75
	KeyF7  Key = 0x76
	KeyF8  Key = 0x77
	KeyF9  Key = 0x78
	KeyF10 Key = 0x79
	KeyF11 Key = 0x7A
	KeyF12 Key = 0x7B
)

// keyNames maps special keys to their canonical names.
var keyNames = map[Key]string{
	KeyNone:       "None",
	KeyLButton:    "LButton",
	KeyRButton:    "RButton",
	KeyMButton:    "MButton",
	KeyBack:       "Backspace",
	KeyTab:        "Tab",
	KeyReturn:     "Enter",
	KeyShift:      "Shift",
	KeyControl:    "Ctrl",
	KeyAlt:        "Alt",
	KeyPause:      "Pause",
	KeyCapsLock:   "CapsLock",
	KeyEscape:     "Escape",
	KeySpace:      "Space",
	KeyPageUp:     "PageUp",
	KeyPageDown:   "PageDown",
	KeyEnd:        "End",
	KeyHome:       "Home",
	KeyArrowLeft:  "Left",
	KeyArrowUp:    "Up",
	KeyArrowRight: "Right",
	KeyArrowDown:  "Down",
	KeyInsert:     "Insert",
	KeyDelete:     "Delete",
	KeyMultiply:   "Num*",
	KeyAdd:        "Num+",
	KeySubtract:   "Num-",
	KeyDecimal:    "Num.",
	KeyDivide:     "Num/",
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	switch {
	case k >= Key0 && k <= Key9:
		return string(rune('0' + (k - Key0)))
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + (k - KeyA)))
	case k >= KeyNum0 && k <= KeyNum9:
		return fmt.Sprintf("Num%d", k-KeyNum0)
	case k >= KeyF1 && k <= KeyF12:
		return fmt.Sprintf("F%d", k-KeyF1+1)
	default:
		return fmt.Sprintf("Key(0x%02X)", int(k))
	}
}

// IsLetter returns true if this is a letter key (A-Z).
func (k Key) IsLetter() bool {
	return k >= KeyA && k <= KeyZ
}

// IsDigit returns true if this is a digit key (0-9, top row).
func (k Key) IsDigit() bool {
	return k >= Key0 && k <= Key9
}

// IsFunctionKey returns true if this is a function key (F1-F12).
func (k Key) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF12
}

// keyNameLookup maps lowercase names back to keys, built from keyNames.
var keyNameLookup = func() map[string]Key {
	m := make(map[string]Key, len(keyNames)+4)
	for k, name := range keyNames {
		m[strings.ToLower(name)] = k
	}
	// Common aliases.
	m["esc"] = KeyEscape
	m["return"] = KeyReturn
	m["bs"] = KeyBack
	m["del"] = KeyDelete
	return m
}()

// KeyFromName returns the Key for a name (case-insensitive).
// Single letters and digits resolve to their key; unknown names
// return KeyNone.
func KeyFromName(name string) Key {
	name = strings.TrimSpace(name)
	if len(name) == 1 {
		r := rune(strings.ToUpper(name)[0])
		switch {
		case r >= 'A' && r <= 'Z':
			return KeyA + Key(r-'A')
		case r >= '0' && r <= '9':
			return Key0 + Key(r-'0')
		}
	}
	lower := strings.ToLower(name)
	if k, ok := keyNameLookup[lower]; ok {
		return k
	}
	if strings.HasPrefix(lower, "f") {
		var n int
		if _, err := fmt.Sscanf(lower, "f%d", &n); err == nil && n >= 1 && n <= 12 {
			return KeyF1 + Key(n-1)
		}
	}
	return KeyNone
}
