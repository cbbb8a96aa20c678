package hotkeys

import (
	"errors"
	"fmt"
	"runtime"
)

// listener is the one goroutine that talks to the platform. It locks itself
// to an OS thread, binds the platform queue to it, then serves hand-off
// messages until a quit closes the queue. Every failure while serving one
// message is reported and the loop moves on; nothing short of quit stops it.
type listener struct {
	m        *Manager
	ready    chan struct{} // closed once the queue is bound (or startup failed)
	done     chan struct{} // closed when the loop has exited
	startErr error         // set before ready is closed
}

func newListener(m *Manager) *listener {
	return &listener{
		m:     m,
		ready: make(chan struct{}),
		done:  make(chan struct{}),
	}
}

func (l *listener) run() {
	// The locked thread is never released: when the loop exits the thread
	// dies with the goroutine, and any leftover thread-affine registrations
	// die with it.
	runtime.LockOSThread()
	defer close(l.done)

	if err := l.m.platform.Open(); err != nil {
		l.startErr = fmt.Errorf("hotkeys: open platform queue: %w", err)
		close(l.ready)
		return
	}
	close(l.ready)
	l.m.log.Debug().Msg("hotkey listener started")

	for {
		msg, ok := l.m.platform.Receive()
		if !ok {
			l.m.log.Debug().Msg("hotkey listener stopped")
			return
		}
		switch msg.Kind {
		case MsgRegister:
			l.register(msg.ID)
		case MsgUnregister:
			l.unregister(msg.ID)
		case MsgPress:
			l.dispatch(msg)
		}
	}
}

func (l *listener) register(id ID) {
	m := l.m
	m.tableMu.RLock()
	e := m.table[id]
	m.tableMu.RUnlock()
	if e == nil {
		// Removed before the register message was served.
		m.log.Debug().Int32("id", int32(id)).Msg("register hand-off for dead id")
		return
	}

	mods := e.mods
	if e.noRepeat {
		mods |= modNoRepeat
	}
	err := m.platform.Register(id, mods, e.key)
	if errors.Is(err, ErrAlreadyRegistered) {
		// Replacing this id's binding: drop whatever it holds and retry
		// once. If the combination belongs to another id the unregister
		// frees nothing and the retry fails for good.
		if uerr := m.platform.Unregister(id); uerr != nil {
			m.log.Debug().Err(uerr).Int32("id", int32(id)).Msg("conflict recovery unregister failed")
		}
		err = m.platform.Register(id, mods, e.key)
	}
	if err != nil {
		l.report(id, &PlatformError{Op: "register", ID: id, Err: err})
		return
	}
	m.log.Debug().Int32("id", int32(id)).Str("combo", FormatCombo(e.mods, e.key)).Msg("hotkey registered")
}

func (l *listener) unregister(id ID) {
	m := l.m
	if err := m.platform.Unregister(id); err != nil {
		l.report(id, &PlatformError{Op: "unregister", ID: id, Err: err})
		return
	}
	m.tableMu.Lock()
	delete(m.table, id)
	m.tableMu.Unlock()
	m.log.Debug().Int32("id", int32(id)).Msg("hotkey unregistered")
}

func (l *listener) dispatch(msg Message) {
	m := l.m
	m.tableMu.RLock()
	e := m.table[msg.ID]
	m.tableMu.RUnlock()
	if e == nil {
		// Press raced a removal; the id is gone, drop the event.
		return
	}
	m.actionMu.Lock()
	h := e.handler
	m.actionMu.Unlock()
	h(Event{ID: msg.ID, Mods: msg.Mods, Key: msg.Key, Time: msg.Time})
}

func (l *listener) report(id ID, err error) {
	l.m.log.Error().Err(err).Int32("id", int32(id)).Msg("hotkey operation failed")
	if l.m.onError != nil {
		l.m.onError(id, err)
	}
}
