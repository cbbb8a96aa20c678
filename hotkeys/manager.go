package hotkeys

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Options configures a Manager.
type Options struct {
	// Logger receives diagnostics from the manager and the listener.
	// Defaults to a no-op logger.
	Logger *zerolog.Logger

	// OnError, when set, receives failures that happen asynchronously on
	// the listener goroutine (registration conflicts that recovery could
	// not resolve, unregister failures) and so cannot be returned from the
	// Manager call that caused them. It is invoked on the listener
	// goroutine, after the failure has been logged.
	OnError func(id ID, err error)
}

// entry is one live hotkey registration. Identity fields are immutable
// after insertion; handler is guarded by Manager.actionMu.
type entry struct {
	id       ID
	mods     Modifier
	key      Key
	noRepeat bool
	handler  Handler
}

// Manager is the entry point callers use to add, replace, remove and
// redirect hotkeys. All methods are safe for concurrent use. The zero value
// is not usable; construct with NewManager (or New on Windows).
type Manager struct {
	platform Platform
	log      zerolog.Logger
	onError  func(ID, error)

	// tableMu guards the table's structure. Inserting an entry and posting
	// its register message happen inside one tableMu critical section so
	// the entry is visible before the listener takes the message. Removal
	// is done only by the listener, after a confirmed unregistration.
	tableMu sync.RWMutex
	table   map[ID]*entry
	nextID  ID

	// actionMu guards the handler slot of every entry. It is separate from
	// tableMu so redirecting a callback never waits behind hand-off
	// traffic.
	actionMu sync.Mutex

	startMu sync.Mutex
	lst     *listener

	disposeOnce sync.Once
	disposed    atomic.Bool
}

// NewManager returns a Manager driving the given platform. The listener
// goroutine is started lazily by the first AddOrReplaceHotkey call.
func NewManager(p Platform, opts Options) *Manager {
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &Manager{
		platform: p,
		log:      logger,
		onError:  opts.OnError,
		table:    make(map[ID]*entry),
		nextID:   1,
	}
}

// AddOrReplaceHotkey registers the combination globally and returns its id.
// The returned id is live immediately, but the OS registration itself
// completes asynchronously on the listener goroutine; a registration
// conflict there is resolved by unregistering the id's previous binding and
// retrying once, and anything beyond that is reported through the error
// channel described in Options.OnError.
//
// noRepeat suppresses repeated notifications while the key is held down.
func (m *Manager) AddOrReplaceHotkey(mods Modifier, key Key, h Handler, noRepeat bool) (ID, error) {
	if h == nil {
		return 0, errors.New("hotkeys: nil handler")
	}
	if m.disposed.Load() {
		return 0, ErrDisposed
	}
	if _, err := m.ensureListener(); err != nil {
		return 0, err
	}

	m.tableMu.Lock()
	defer m.tableMu.Unlock()
	if m.disposed.Load() {
		return 0, ErrDisposed
	}
	id := m.nextID
	m.nextID++
	m.table[id] = &entry{id: id, mods: mods, key: key, noRepeat: noRepeat, handler: h}
	if err := m.platform.Post(Message{Kind: MsgRegister, ID: id}); err != nil {
		delete(m.table, id)
		return 0, &PlatformError{Op: "post", ID: id, Err: err}
	}
	m.log.Debug().Int32("id", int32(id)).Str("combo", FormatCombo(mods, key)).Msg("hotkey queued for registration")
	return id, nil
}

// RemoveHotkey asks the listener to release the hotkey. The table entry is
// removed by the listener once the platform confirms the unregistration, so
// a press already in flight still dispatches. Removing an id twice is
// benign; the second attempt is reported as a failure but harms nothing.
func (m *Manager) RemoveHotkey(id ID) error {
	if m.disposed.Load() {
		return ErrDisposed
	}
	m.startMu.Lock()
	started := m.lst != nil
	m.startMu.Unlock()
	if !started {
		return fmt.Errorf("%w: %d", ErrUnknownID, id)
	}
	if err := m.platform.Post(Message{Kind: MsgUnregister, ID: id}); err != nil {
		return &PlatformError{Op: "post", ID: id, Err: err}
	}
	return nil
}

// SetHotkeyAction swaps the callback of an existing hotkey. The new handler
// is guaranteed to be the one invoked for any press dispatched after this
// call returns.
func (m *Manager) SetHotkeyAction(id ID, h Handler) error {
	if h == nil {
		return errors.New("hotkeys: nil handler")
	}
	if m.disposed.Load() {
		return ErrDisposed
	}
	m.tableMu.RLock()
	e := m.table[id]
	m.tableMu.RUnlock()
	if e == nil {
		return fmt.Errorf("%w: %d", ErrUnknownID, id)
	}
	m.actionMu.Lock()
	e.handler = h
	m.actionMu.Unlock()
	return nil
}

// Dispose unregisters every known hotkey, stops the listener goroutine and
// waits for it to exit. It is idempotent and safe to call concurrently:
// only the first caller performs the teardown, later callers return
// immediately. After Dispose, every mutating call fails with ErrDisposed.
func (m *Manager) Dispose() error {
	var err error
	m.disposeOnce.Do(func() {
		err = m.dispose()
	})
	return err
}

func (m *Manager) dispose() error {
	// The flag is stored under startMu so ensureListener can never observe
	// it unset and then start a listener nothing will ever quit.
	m.startMu.Lock()
	m.disposed.Store(true)
	l := m.lst
	m.startMu.Unlock()
	if l == nil {
		return nil // listener never started, nothing registered
	}
	if l.startErr != nil {
		return nil
	}

	m.tableMu.Lock()
	ids := make([]ID, 0, len(m.table))
	for id := range m.table {
		ids = append(ids, id)
	}
	m.tableMu.Unlock()

	var errs []error
	for _, id := range ids {
		if err := m.platform.Post(Message{Kind: MsgUnregister, ID: id}); err != nil {
			errs = append(errs, &PlatformError{Op: "post", ID: id, Err: err})
		}
	}
	if err := m.platform.Post(Message{Kind: MsgQuit}); err != nil {
		// Without a quit the listener will not exit; don't wait for it.
		errs = append(errs, &PlatformError{Op: "post", Err: err})
		return errors.Join(errs...)
	}
	<-l.done

	m.tableMu.Lock()
	clear(m.table)
	m.tableMu.Unlock()
	m.log.Debug().Int("hotkeys", len(ids)).Msg("manager disposed")
	return errors.Join(errs...)
}

// ensureListener starts the listener goroutine on first use and blocks
// until it has bound the platform queue to its thread, so that no message
// can be posted to a queue that does not exist yet.
func (m *Manager) ensureListener() (*listener, error) {
	m.startMu.Lock()
	defer m.startMu.Unlock()
	if m.disposed.Load() {
		return nil, ErrDisposed
	}
	if m.lst == nil {
		l := newListener(m)
		go l.run()
		<-l.ready
		m.lst = l
	}
	if m.lst.startErr != nil {
		return nil, m.lst.startErr
	}
	return m.lst, nil
}
