package input

import "testing"

func TestKey_String(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeySpace, "Space"},
		{KeyEscape, "Escape"},
		{KeyA, "A"},
		{KeyZ, "Z"},
		{Key0, "0"},
		{Key9, "9"},
		{KeyF1, "F1"},
		{KeyF12, "F12"},
		{KeyNum0, "Num0"},
		{KeyNum9, "Num9"},
		{KeyArrowDown, "Down"},
		{KeyNone, "None"},
		{Key(0xFE), "Key(0xFE)"},
	}

	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(0x%02X).String() = %q, want %q", int(tt.key), got, tt.want)
		}
	}
}

func TestKeyFromName(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"Space", KeySpace},
		{"space", KeySpace},
		{"  escape ", KeyEscape},
		{"esc", KeyEscape},
		{"a", KeyA},
		{"A", KeyA},
		{"z", KeyZ},
		{"7", Key0 + 7},
		{"f1", KeyF1},
		{"F12", KeyF12},
		{"del", KeyDelete},
		{"bogus", KeyNone},
		{"f13", KeyNone},
		{"", KeyNone},
	}

	for _, tt := range tests {
		if got := KeyFromName(tt.name); got != tt.want {
			t.Errorf("KeyFromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestKeyFromName_RoundTrip(t *testing.T) {
	keys := []Key{
		KeySpace, KeyEscape, KeyTab, KeyReturn, KeyDelete,
		KeyA, KeyA + Key('Q'-'A'), Key0, KeyF5, KeyArrowUp,
	}
	for _, k := range keys {
		if got := KeyFromName(k.String()); got != k {
			t.Errorf("KeyFromName(%q) = %v, want %v", k.String(), got, k)
		}
	}
}

func TestKey_Predicates(t *testing.T) {
	if !KeyA.IsLetter() || KeySpace.IsLetter() {
		t.Error("IsLetter misclassified")
	}
	if !Key9.IsDigit() || KeyA.IsDigit() {
		t.Error("IsDigit misclassified")
	}
	if !KeyF7.IsFunctionKey() || KeyA.IsFunctionKey() {
		t.Error("IsFunctionKey misclassified")
	}
}
