package signal

// Closer is the capability shared by every connection handle.
type Closer interface {
	Close()
}

// mover is implemented by handles that can hand their registration over.
type mover interface {
	release() Closer
}

// AnyConnection exclusively owns one connection handle of any type, so
// connections to differently typed slots can be stored together.
type AnyConnection struct {
	holder Closer
}

// NewAnyConnection takes ownership of c. A *Connection or
// *OwningConnection is moved into the new handle, leaving c closed; closing
// c afterwards does not disconnect anything.
func NewAnyConnection(c Closer) *AnyConnection {
	if m, ok := c.(mover); ok {
		c = m.release()
	}
	return &AnyConnection{holder: c}
}

// Close closes the held connection. Safe to call multiple times.
func (a *AnyConnection) Close() {
	if a.holder != nil {
		a.holder.Close()
	}
}

// Move transfers the held connection to a new AnyConnection. The receiver
// is left empty.
func (a *AnyConnection) Move() *AnyConnection {
	dst := &AnyConnection{holder: a.holder}
	a.holder = nil
	return dst
}

// ConnectionGroup owns a set of connections of any type and closes them
// together.
//
// The zero ConnectionGroup is ready to use.
type ConnectionGroup struct {
	conns  []*AnyConnection
	closed bool
}

// Add takes ownership of c, see NewAnyConnection. Adding to a closed group
// closes c immediately.
func (g *ConnectionGroup) Add(c Closer) {
	a := NewAnyConnection(c)
	if g.closed {
		a.Close()
		return
	}
	g.conns = append(g.conns, a)
}

// Len returns the number of connections held.
func (g *ConnectionGroup) Len() int {
	return len(g.conns)
}

// Close closes every connection in the group, in the order they were
// added. Safe to call multiple times.
func (g *ConnectionGroup) Close() {
	if g.closed {
		return
	}
	g.closed = true

	conns := g.conns
	g.conns = nil
	for _, c := range conns {
		c.Close()
	}
}
