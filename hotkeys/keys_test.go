package hotkeys

import "testing"

func TestKeyConstantsMatchVirtualKeyCodes(t *testing.T) {
	cases := []struct {
		key  Key
		code Key
		name string
	}{
		{KeyB, 0x42, "b"},
		{KeyC, 0x43, "c"},
		{KeyD, 0x44, "d"},
		{KeyE, 0x45, "e"},
		{KeyK, 0x4B, "k"},
		{KeyQ, 0x51, "q"},
		{KeyX, 0x58, "x"},
		{Key3, 0x33, "3"},
		{Key7, 0x37, "7"},
		{KeyF10, 0x79, "f10"},
	}
	for _, c := range cases {
		if c.key != c.code {
			t.Errorf("Key%s = %#x, want %#x", c.name, c.key, c.code)
		}
		if got, ok := keyNames[c.name]; !ok || got != c.key {
			t.Errorf("keyNames[%q] = %#x (%v), want %#x", c.name, got, ok, c.key)
		}
	}
}

func TestEveryNamedKeyFormats(t *testing.T) {
	for name, key := range keyNames {
		if got := keyName(key); got == "" {
			t.Errorf("keyName(%#x) empty for %q", key, name)
		}
	}
}
