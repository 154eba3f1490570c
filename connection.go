package signal

// entry is one registration made by a Connection.
type entry struct {
	registry dispatcher
	id       ClosureID
}

// Connection keeps a slot connected to a Signal until Close is called.
// It does not own the slot: the slot must stay usable while the Connection
// is open.
//
// The zero Connection is closed.
type Connection struct {
	signal        *Signal // nil once closed, moved from, or the Signal closed
	entries       []entry
	destructionID ClosureID
}

// Close disconnects the slot from every signature of the Signal. Once Close
// returns, the slot receives no further emission, including emissions
// already in progress further up the call stack. Closing a closed
// Connection does nothing.
func (c *Connection) Close() {
	s := c.signal
	if s == nil {
		return
	}

	s.destruction.Remove(c.destructionID)
	for _, e := range c.entries {
		e.registry.Remove(e.id)
	}
	c.signal = nil
	c.entries = nil

	s.logger.Debug("slot disconnected", "signal", s.name)
}

// Connected reports whether the Connection is still open.
func (c *Connection) Connected() bool {
	return c.signal != nil
}

// Move transfers the registration to a new Connection and returns it. The
// receiver becomes closed without disconnecting anything, so closing it
// afterwards has no effect on the returned Connection.
func (c *Connection) Move() *Connection {
	dst := &Connection{
		signal:  c.signal,
		entries: c.entries,
	}
	if s := c.signal; s != nil {
		dst.destructionID = s.destruction.Add(onSignalDestruction, dst)
		s.destruction.Remove(c.destructionID)
	}

	c.signal = nil
	c.entries = nil
	c.destructionID = ClosureID{}

	return dst
}

func (c *Connection) release() Closer { return c.Move() }

// onSignalDestruction closes a Connection silently: the Signal is being
// torn down, so its registries must not be touched.
func onSignalDestruction(ctx any, _ struct{}) {
	c := ctx.(*Connection) //nolint:errcheck // only connections register here
	c.signal = nil
	c.entries = nil
}
