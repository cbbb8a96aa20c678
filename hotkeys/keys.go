package hotkeys

import "strconv"

// Win32 virtual-key codes for the keys a shortcut is likely to use.
const (
	KeyBackspace Key = 0x08
	KeyTab       Key = 0x09
	KeyEnter     Key = 0x0D
	KeyEscape    Key = 0x1B
	KeySpace     Key = 0x20
	KeyPageUp    Key = 0x21
	KeyPageDown  Key = 0x22
	KeyEnd       Key = 0x23
	KeyHome      Key = 0x24
	KeyLeft      Key = 0x25
	KeyUp        Key = 0x26
	KeyRight     Key = 0x27
	KeyDown      Key = 0x28
	KeyPrintScr  Key = 0x2C
	KeyInsert    Key = 0x2D
	KeyDelete    Key = 0x2E

	Key0 Key = 0x30
	Key1 Key = 0x31
	Key2 Key = 0x32
	Key3 Key = 0x33
	Key4 Key = 0x34
	Key5 Key = 0x35
	Key6 Key = 0x36
	Key7 Key = 0x37
	Key8 Key = 0x38
	Key9 Key = 0x39

	KeyA Key = 0x41
	KeyB Key = 0x42
	KeyC Key = 0x43
	KeyD Key = 0x44
	KeyE Key = 0x45
	KeyF Key = 0x46
	KeyG Key = 0x47
	KeyH Key = 0x48
	KeyI Key = 0x49
	KeyJ Key = 0x4A
	KeyK Key = 0x4B
	KeyL Key = 0x4C
	KeyM Key = 0x4D
	KeyN Key = 0x4E
	KeyO Key = 0x4F
	KeyP Key = 0x50
	KeyQ Key = 0x51
	KeyR Key = 0x52
	KeyS Key = 0x53
	KeyT Key = 0x54
	KeyU Key = 0x55
	KeyV Key = 0x56
	KeyW Key = 0x57
	KeyX Key = 0x58
	KeyY Key = 0x59
	KeyZ Key = 0x5A

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

var keyNames = map[string]Key{
	"backspace":   KeyBackspace,
	"tab":         KeyTab,
	"enter":       KeyEnter,
	"return":      KeyEnter,
	"esc":         KeyEscape,
	"escape":      KeyEscape,
	"space":       KeySpace,
	"pageup":      KeyPageUp,
	"pagedown":    KeyPageDown,
	"end":         KeyEnd,
	"home":        KeyHome,
	"left":        KeyLeft,
	"up":          KeyUp,
	"right":       KeyRight,
	"down":        KeyDown,
	"printscreen": KeyPrintScr,
	"insert":      KeyInsert,
	"delete":      KeyDelete,
}

func init() {
	for k := Key0; k <= Key9; k++ {
		keyNames[string(rune('0'+k-Key0))] = k
	}
	for k := KeyA; k <= KeyZ; k++ {
		keyNames[string(rune('a'+k-KeyA))] = k
	}
	for i := 0; i < 12; i++ {
		keyNames["f"+strconv.Itoa(i+1)] = KeyF1 + Key(i)
	}
}
