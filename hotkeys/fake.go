package hotkeys

import (
	"errors"
	"fmt"
	"sync"
)

// Binding is a combination held by an id on a FakePlatform.
type Binding struct {
	Mods Modifier
	Key  Key
}

// RegisterCall records one Register call as issued, no-repeat flag
// included.
type RegisterCall struct {
	ID   ID
	Mods Modifier
	Key  Key
}

// FakePlatform is an in-memory Platform for tests and simulations. It
// enforces the same duplicate rules the OS does (one binding per id, one id
// per combination) and records every register/unregister call in order.
type FakePlatform struct {
	queue chan Message

	mu          sync.Mutex
	bindings    map[ID]Binding
	registers   []RegisterCall
	unregisters []ID
	tick        uint32
}

func NewFakePlatform() *FakePlatform {
	return &FakePlatform{
		queue:    make(chan Message, 64),
		bindings: make(map[ID]Binding),
	}
}

func (f *FakePlatform) Open() error { return nil }

func (f *FakePlatform) Register(id ID, mods Modifier, key Key) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registers = append(f.registers, RegisterCall{ID: id, Mods: mods, Key: key})
	if _, ok := f.bindings[id]; ok {
		return fmt.Errorf("id %d holds a binding: %w", id, ErrAlreadyRegistered)
	}
	// The no-repeat flag does not affect combination identity.
	combo := Binding{Mods: mods &^ modNoRepeat, Key: key}
	for other, b := range f.bindings {
		if b == combo {
			return fmt.Errorf("combination taken by id %d: %w", other, ErrAlreadyRegistered)
		}
	}
	f.bindings[id] = combo
	return nil
}

func (f *FakePlatform) Unregister(id ID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unregisters = append(f.unregisters, id)
	if _, ok := f.bindings[id]; !ok {
		return fmt.Errorf("id %d has no binding", id)
	}
	delete(f.bindings, id)
	return nil
}

func (f *FakePlatform) Post(m Message) error {
	select {
	case f.queue <- m:
		return nil
	default:
		return errors.New("queue full")
	}
}

func (f *FakePlatform) Receive() (Message, bool) {
	m := <-f.queue
	if m.Kind == MsgQuit {
		return m, false
	}
	return m, true
}

// Press simulates the OS delivering a press notification for id and returns
// the posted message, timestamp included. It panics if the queue is full:
// a silently dropped press would surface as an unexplained timeout in
// whatever test was waiting for it.
func (f *FakePlatform) Press(id ID, mods Modifier, key Key) Message {
	f.mu.Lock()
	f.tick += 16
	m := Message{Kind: MsgPress, ID: id, Mods: mods, Key: key, Time: f.tick}
	f.mu.Unlock()
	if err := f.Post(m); err != nil {
		panic(fmt.Sprintf("hotkeys: FakePlatform.Press id %d: %v", id, err))
	}
	return m
}

// SeedBinding installs a binding directly, as if a registration for id were
// left over from earlier, without recording a register call.
func (f *FakePlatform) SeedBinding(id ID, mods Modifier, key Key) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bindings[id] = Binding{Mods: mods &^ modNoRepeat, Key: key}
}

// Bindings returns a snapshot of the live bindings.
func (f *FakePlatform) Bindings() map[ID]Binding {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[ID]Binding, len(f.bindings))
	for id, b := range f.bindings {
		out[id] = b
	}
	return out
}

// RegisterCalls returns every Register call, in order.
func (f *FakePlatform) RegisterCalls() []RegisterCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]RegisterCall(nil), f.registers...)
}

// UnregisterCalls returns every id passed to Unregister, in call order.
func (f *FakePlatform) UnregisterCalls() []ID {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]ID(nil), f.unregisters...)
}
