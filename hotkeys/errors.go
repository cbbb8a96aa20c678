package hotkeys

import (
	"errors"
	"fmt"
)

var (
	// ErrDisposed is returned by every mutating Manager call after Dispose.
	ErrDisposed = errors.New("hotkeys: manager disposed")

	// ErrUnknownID is returned when an operation references an id with no
	// live registry entry.
	ErrUnknownID = errors.New("hotkeys: unknown hotkey id")

	// ErrAlreadyRegistered is reported by a Platform when the (modifiers,
	// key) combination or id already holds a registration. The listener
	// answers it with the unregister-then-retry recovery path.
	ErrAlreadyRegistered = errors.New("hotkeys: hotkey already registered")
)

// PlatformError wraps a failed platform call with the operation and the
// hotkey id it was issued for.
type PlatformError struct {
	Op  string // "register", "unregister" or "post"
	ID  ID
	Err error
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("hotkeys: %s id %d: %v", e.Op, e.ID, e.Err)
}

func (e *PlatformError) Unwrap() error { return e.Err }
