//go:build windows

package hotkeys

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procRegisterHotKey     = user32.NewProc("RegisterHotKey")
	procUnregisterHotKey   = user32.NewProc("UnregisterHotKey")
	procGetMessageW        = user32.NewProc("GetMessageW")
	procPeekMessageW       = user32.NewProc("PeekMessageW")
	procPostThreadMessageW = user32.NewProc("PostThreadMessageW")
	procGetCurrentThreadId = kernel32.NewProc("GetCurrentThreadId")
)

const (
	wmQuit   = 0x0012
	wmHotkey = 0x0312
	// WM_APP range; one message code per hand-off kind, id in wParam.
	wmAppRegister   = 0x8000 + 1
	wmAppUnregister = 0x8000 + 2

	pmNoRemove = 0x0000

	errHotkeyAlreadyRegistered syscall.Errno = 1409
)

type win32Msg struct {
	hwnd    uintptr
	message uint32
	wParam  uintptr
	lParam  uintptr
	time    uint32
	pt      struct{ x, y int32 }
}

// win32Platform drives RegisterHotKey and the creating thread's message
// queue. Hotkeys registered with a NULL hwnd are bound to the thread, so
// Open, Register, Unregister and Receive must all run on the goroutine the
// listener locked to its OS thread.
type win32Platform struct {
	threadID uint32 // written in Open, read by Post after the ready handshake
}

// NewWin32 returns the Platform backed by the win32 hotkey subsystem.
func NewWin32() Platform {
	return &win32Platform{}
}

func (p *win32Platform) Open() error {
	tid, _, _ := procGetCurrentThreadId.Call()
	if tid == 0 {
		return fmt.Errorf("GetCurrentThreadId returned 0")
	}
	// Force creation of the thread's message queue so PostThreadMessageW
	// from other goroutines cannot fail with ERROR_INVALID_THREAD_ID.
	var m win32Msg
	procPeekMessageW.Call(uintptr(unsafe.Pointer(&m)), ^uintptr(0), 0, 0, pmNoRemove)
	p.threadID = uint32(tid)
	return nil
}

func (p *win32Platform) Register(id ID, mods Modifier, key Key) error {
	ret, _, err := procRegisterHotKey.Call(0, uintptr(id), uintptr(mods), uintptr(key))
	if ret == 0 {
		if errno, ok := err.(syscall.Errno); ok && errno == errHotkeyAlreadyRegistered {
			return fmt.Errorf("%w: %w", ErrAlreadyRegistered, errno)
		}
		return fmt.Errorf("RegisterHotKey: %w", err)
	}
	return nil
}

func (p *win32Platform) Unregister(id ID) error {
	ret, _, err := procUnregisterHotKey.Call(0, uintptr(id))
	if ret == 0 {
		return fmt.Errorf("UnregisterHotKey: %w", err)
	}
	return nil
}

func (p *win32Platform) Post(m Message) error {
	var code, wparam uintptr
	switch m.Kind {
	case MsgRegister:
		code, wparam = wmAppRegister, uintptr(m.ID)
	case MsgUnregister:
		code, wparam = wmAppUnregister, uintptr(m.ID)
	case MsgQuit:
		code = wmQuit
	default:
		return fmt.Errorf("cannot post message kind %d", m.Kind)
	}
	ret, _, err := procPostThreadMessageW.Call(uintptr(p.threadID), code, wparam, 0)
	if ret == 0 {
		return fmt.Errorf("PostThreadMessageW: %w", err)
	}
	return nil
}

func (p *win32Platform) Receive() (Message, bool) {
	var m win32Msg
	for {
		ret, _, _ := procGetMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		switch int32(ret) {
		case 0, -1: // WM_QUIT, or the queue is unusable
			return Message{Kind: MsgQuit}, false
		}
		switch m.message {
		case wmHotkey:
			return Message{
				Kind: MsgPress,
				ID:   ID(m.wParam),
				Mods: Modifier(m.lParam & 0xffff),
				Key:  Key(m.lParam >> 16),
				Time: m.time,
			}, true
		case wmAppRegister:
			return Message{Kind: MsgRegister, ID: ID(m.wParam)}, true
		case wmAppUnregister:
			return Message{Kind: MsgUnregister, ID: ID(m.wParam)}, true
		}
		// Stray messages on the listener thread are not ours; keep pumping.
	}
}

// New returns a Manager backed by the win32 hotkey subsystem.
func New(opts Options) *Manager {
	return NewManager(NewWin32(), opts)
}
