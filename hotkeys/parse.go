package hotkeys

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCombo parses a shortcut spelled as "+"-separated tokens, e.g.
// "ctrl+alt+f9" or "win+space". Token order does not matter; exactly one
// non-modifier key is required. Names are case-insensitive.
func ParseCombo(s string) (Modifier, Key, error) {
	var mods Modifier
	var key Key
	haveKey := false

	for _, tok := range strings.Split(s, "+") {
		tok = strings.TrimSpace(strings.ToLower(tok))
		switch tok {
		case "":
			return 0, 0, fmt.Errorf("empty token in combo %q", s)
		case "alt":
			mods |= ModAlt
		case "ctrl", "control":
			mods |= ModCtrl
		case "shift":
			mods |= ModShift
		case "win", "super", "meta":
			mods |= ModWin
		default:
			if haveKey {
				return 0, 0, fmt.Errorf("combo %q has more than one key", s)
			}
			k, ok := keyNames[tok]
			if !ok {
				return 0, 0, fmt.Errorf("unknown key %q in combo %q", tok, s)
			}
			key = k
			haveKey = true
		}
	}
	if !haveKey {
		return 0, 0, fmt.Errorf("combo %q has no key", s)
	}
	return mods, key, nil
}

// FormatCombo renders a combo in the spelling ParseCombo accepts, with
// modifiers in ctrl, alt, shift, win order.
func FormatCombo(mods Modifier, key Key) string {
	var parts []string
	if mods&ModCtrl != 0 {
		parts = append(parts, "ctrl")
	}
	if mods&ModAlt != 0 {
		parts = append(parts, "alt")
	}
	if mods&ModShift != 0 {
		parts = append(parts, "shift")
	}
	if mods&ModWin != 0 {
		parts = append(parts, "win")
	}
	parts = append(parts, keyName(key))
	return strings.Join(parts, "+")
}

func keyName(key Key) string {
	switch {
	case key >= Key0 && key <= Key9:
		return string(rune('0' + key - Key0))
	case key >= KeyA && key <= KeyZ:
		return string(rune('a' + key - KeyA))
	case key >= KeyF1 && key <= KeyF12:
		return "f" + strconv.Itoa(int(key-KeyF1)+1)
	}
	switch key {
	case KeyBackspace:
		return "backspace"
	case KeyTab:
		return "tab"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "esc"
	case KeySpace:
		return "space"
	case KeyPageUp:
		return "pageup"
	case KeyPageDown:
		return "pagedown"
	case KeyEnd:
		return "end"
	case KeyHome:
		return "home"
	case KeyLeft:
		return "left"
	case KeyUp:
		return "up"
	case KeyRight:
		return "right"
	case KeyDown:
		return "down"
	case KeyPrintScr:
		return "printscreen"
	case KeyInsert:
		return "insert"
	case KeyDelete:
		return "delete"
	}
	return fmt.Sprintf("0x%02x", uint32(key))
}
