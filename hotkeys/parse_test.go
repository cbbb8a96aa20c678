package hotkeys

import "testing"

func TestParseCombo(t *testing.T) {
	cases := []struct {
		in   string
		mods Modifier
		key  Key
	}{
		{"ctrl+alt+f9", ModCtrl | ModAlt, KeyF9},
		{"Ctrl+Shift+S", ModCtrl | ModShift, KeyS},
		{"win+space", ModWin, KeySpace},
		{"super+space", ModWin, KeySpace},
		{"alt + Enter", ModAlt, KeyEnter},
		{"f12", 0, KeyF12},
		{"ctrl+shift+alt+win+3", ModCtrl | ModShift | ModAlt | ModWin, Key3},
		{"control+printscreen", ModCtrl, KeyPrintScr},
	}
	for _, c := range cases {
		mods, key, err := ParseCombo(c.in)
		if err != nil {
			t.Errorf("ParseCombo(%q): %v", c.in, err)
			continue
		}
		if mods != c.mods || key != c.key {
			t.Errorf("ParseCombo(%q) = (%#x, %#x), want (%#x, %#x)", c.in, mods, key, c.mods, c.key)
		}
	}
}

func TestParseComboErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"ctrl+",
		"ctrl+alt",
		"ctrl+a+b",
		"ctrl+nosuchkey",
	} {
		if _, _, err := ParseCombo(in); err == nil {
			t.Errorf("ParseCombo(%q) succeeded, want error", in)
		}
	}
}

func TestFormatCombo(t *testing.T) {
	cases := []struct {
		mods Modifier
		key  Key
		want string
	}{
		{ModCtrl | ModAlt, KeyF9, "ctrl+alt+f9"},
		{ModWin, KeySpace, "win+space"},
		{0, KeyZ, "z"},
		{ModShift | ModCtrl, Key7, "ctrl+shift+7"},
	}
	for _, c := range cases {
		if got := FormatCombo(c.mods, c.key); got != c.want {
			t.Errorf("FormatCombo(%#x, %#x) = %q, want %q", c.mods, c.key, got, c.want)
		}
	}
}

func TestComboRoundTrip(t *testing.T) {
	for _, in := range []string{"ctrl+alt+f9", "win+space", "ctrl+shift+x", "delete"} {
		mods, key, err := ParseCombo(in)
		if err != nil {
			t.Fatalf("ParseCombo(%q): %v", in, err)
		}
		if got := FormatCombo(mods, key); got != in {
			t.Errorf("round trip of %q produced %q", in, got)
		}
	}
}
