// Package hotkeys registers system-wide keyboard shortcuts and dispatches
// press events to Go callbacks.
//
// The OS hotkey primitive is thread-affine: a hotkey must be registered,
// unregistered and polled from the thread that owns it. The package funnels
// every platform call through one listener goroutine locked to its OS
// thread; caller goroutines talk to it only by posting messages to the
// platform queue. A Manager is the process-facing entry point for that
// protocol.
package hotkeys

// Modifier is a bitmask of the modifier keys that must be held together
// with the main key. The values match the win32 MOD_* flags.
type Modifier uint16

const (
	ModAlt   Modifier = 0x0001
	ModCtrl  Modifier = 0x0002
	ModShift Modifier = 0x0004
	ModWin   Modifier = 0x0008

	// modNoRepeat suppresses repeated press notifications while the key is
	// held down. Not part of the public combo surface; Manager applies it
	// from the entry's noRepeat flag at registration time.
	modNoRepeat Modifier = 0x4000
)

// Key is a virtual-key code. Constants for common keys are in keys.go.
type Key uint32

// ID identifies a registered hotkey. Ids are allocated monotonically by a
// Manager and never reused within its lifetime, and double as the platform
// registration id.
type ID int32

// Event describes one hotkey press as reported by the platform.
type Event struct {
	ID   ID
	Mods Modifier
	Key  Key
	// Time is the platform's event timestamp in milliseconds since system
	// start (win32 MSG.time).
	Time uint32
}

// Handler is invoked for each press of its hotkey.
//
// Handlers run synchronously on the listener goroutine: a slow handler
// delays every later press and hand-off, and a panicking handler takes the
// listener down. Consumers that need concurrency must spawn it themselves;
// serialized delivery is part of the contract.
type Handler func(Event)
