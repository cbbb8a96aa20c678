package hotkeys

// MsgKind discriminates the hand-off messages flowing through a Platform
// queue to the listener.
type MsgKind uint8

const (
	MsgRegister MsgKind = iota + 1
	MsgUnregister
	MsgPress
	MsgQuit
)

// Message is one hand-off delivered to the listener. Register, unregister
// and quit messages carry only Kind and ID; the rest of the registration
// state travels through the table, which is populated before the message is
// posted. Press messages additionally carry the combination and the
// platform timestamp.
type Message struct {
	Kind MsgKind
	ID   ID
	Mods Modifier
	Key  Key
	Time uint32
}

// Platform is the OS hotkey subsystem. The real implementation on Windows
// wraps RegisterHotKey and the thread message queue; FakePlatform stands in
// for it in tests and simulations.
//
// Thread affinity is the whole point of the contract: Open, Register,
// Unregister and Receive may only be called from the listener goroutine
// (which locks itself to an OS thread before calling Open). Post is the one
// method safe from any goroutine, and only once Open has returned — the
// Manager guarantees that by blocking on the listener's startup handshake.
type Platform interface {
	// Open binds the message queue to the calling goroutine's thread.
	Open() error

	// Register binds id to the combination. A duplicate registration is
	// reported with an error matching ErrAlreadyRegistered.
	Register(id ID, mods Modifier, key Key) error

	// Unregister releases the binding held by id.
	Unregister(id ID) error

	// Post queues m for Receive.
	Post(m Message) error

	// Receive blocks for the next message. ok is false once a quit message
	// has been taken; the queue must not be used after that.
	Receive() (m Message, ok bool)
}
