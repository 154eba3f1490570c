package signal

// OwningConnection is a Connection that also owns its slot. Use it for
// slots with no lifetime of their own, such as a func literal: holding the
// OwningConnection is enough to stay connected.
type OwningConnection struct {
	slot any
	conn *Connection
}

// Own stores slot in a new OwningConnection and connects it to every
// declared signature. Accepted slots are those of Connect.
func (s *Signal) Own(slot any) (*OwningConnection, error) {
	oc := &OwningConnection{slot: slot}
	conn, err := s.Connect(oc.slot)
	if err != nil {
		return nil, err
	}
	oc.conn = conn
	return oc, nil
}

// MustOwn works like Own, but panics on error.
func (s *Signal) MustOwn(slot any) *OwningConnection {
	oc, err := s.Own(slot)
	if err != nil {
		panic(err)
	}
	return oc
}

// Close disconnects the slot. Closing a closed OwningConnection does
// nothing.
func (oc *OwningConnection) Close() {
	if oc.conn != nil {
		oc.conn.Close()
	}
}

// Connected reports whether the slot is still connected.
func (oc *OwningConnection) Connected() bool {
	return oc.conn != nil && oc.conn.Connected()
}

// Slot returns the owned slot, or nil once moved from.
func (oc *OwningConnection) Slot() any {
	return oc.slot
}

// Move transfers the slot to a new OwningConnection and returns it. The
// slot is connected again from its new storage and disconnected from the
// old one, so it moves to the end of the registration order. The receiver
// is left closed and empty.
func (oc *OwningConnection) Move() *OwningConnection {
	dst := &OwningConnection{
		slot: oc.slot,
		conn: &Connection{},
	}
	if oc.Connected() {
		if conn, err := oc.conn.signal.Connect(dst.slot); err == nil {
			dst.conn = conn
		}
		oc.conn.Close()
	}

	oc.slot = nil
	return dst
}

func (oc *OwningConnection) release() Closer { return oc.Move() }
