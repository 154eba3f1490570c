// Package signal provides synchronous, typed signals with automatic
// disconnection for Go.
//
// A Signal broadcasts events to the slots connected to it. Each event
// shape is declared with a Signature; a Signal may declare several of them,
// and one slot can receive all of them. Emit calls every connected slot, in
// registration order, before it returns.
//
// Connecting a slot returns a handle. Closing the handle disconnects the
// slot, even from inside a slot while an emission is in progress. Closing
// the Signal closes every handle still connected to it, so handles may
// outlive their Signal safely.
//
// Quick example:
//
//	value := signal.NewSignature[int]("value")
//	sig := signal.New(value)
//	defer sig.Close()
//
//	conn, _ := sig.Own(func(v int) {
//	    fmt.Println(v)
//	})
//	defer conn.Close()
//
//	value.Emit(sig, 42) // prints 42
//
// Signals are not safe for concurrent use. Re-entrant calls made by a slot
// on the calling goroutine (Emit, Connect, Close) are supported.
package signal

// Stats is a snapshot of a Signal's registrations.
type Stats struct {
	// Name is the Signal's name, see WithName.
	Name string

	// Closed reports whether Close has been called.
	Closed bool

	// Connections is the number of open connections.
	Connections int

	// SlotCounts maps each declared signature name to its number of live
	// slots.
	SlotCounts map[string]int
}
