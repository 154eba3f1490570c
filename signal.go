package signal

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/pkg/errors"
)

// Signal broadcasts the events of its declared signatures to connected
// slots.
type Signal struct {
	name         string
	declared     []declaration
	registries   map[reflect.Type]dispatcher
	destruction  *Registry[struct{}]
	logger       *slog.Logger
	panicHandler PanicHandler
	closed       bool
}

// New creates a Signal. Pass the Signatures it broadcasts along with any
// other options. A Signature whose argument type is already declared is
// ignored.
func New(opts ...Option) *Signal {
	s := &Signal{
		name:        "signal",
		registries:  make(map[reflect.Type]dispatcher),
		destruction: NewRegistry[struct{}](),
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt.apply(s)
	}

	for _, d := range s.declared {
		reg := d.newRegistry()
		if s.panicHandler != nil {
			reg.recoverWith(s.recovered(d.Name()))
		}
		s.registries[d.key()] = reg
	}

	return s
}

// declare records a signature. Registries are built once all options ran.
func (s *Signal) declare(d declaration) {
	for _, existing := range s.declared {
		if existing.key() == d.key() {
			return
		}
	}
	s.declared = append(s.declared, d)
}

// Connect registers slot for every declared signature and returns the
// Connection keeping it registered. The slot is referenced, not owned.
//
// For each signature Signature[T], slot must be one of: a func(T), a
// Receiver[T], the Overload built by Signature[T].Handle, an Overloads
// holding it, or a func(any) which receives every signature. Otherwise
// nothing is registered and the error wraps ErrSlotMismatch.
func (s *Signal) Connect(slot any) (*Connection, error) {
	if s.closed {
		return nil, errors.Wrapf(ErrSignalClosed, "signal %q", s.name)
	}

	handlers := make([]any, len(s.declared))
	for i, d := range s.declared {
		h, ok := d.bind(slot)
		if !ok {
			return nil, errors.Wrapf(ErrSlotMismatch, "signal %q: slot %T, signature %q", s.name, slot, d.Name())
		}
		handlers[i] = h
	}

	conn := &Connection{
		signal:  s,
		entries: make([]entry, len(s.declared)),
	}
	for i, d := range s.declared {
		reg := s.registries[d.key()]
		conn.entries[i] = entry{registry: reg, id: d.add(reg, handlers[i])}
	}
	conn.destructionID = s.destruction.Add(onSignalDestruction, conn)

	s.logger.Debug("slot connected",
		"signal", s.name,
		"slot", fmt.Sprintf("%T", slot),
		"signatures", len(s.declared))

	return conn, nil
}

// MustConnect works like Connect, but panics on error.
func (s *Signal) MustConnect(slot any) *Connection {
	conn, err := s.Connect(slot)
	if err != nil {
		panic(err)
	}
	return conn
}

// Close destroys the Signal. Every open connection is closed first, without
// touching the Signal again, then all slots are dropped. Emitting on a
// closed Signal does nothing. Safe to call multiple times, including from a
// slot during an emission.
func (s *Signal) Close() {
	if s.closed {
		return
	}
	s.closed = true

	open := s.destruction.Len()
	s.destruction.Emit(struct{}{})

	for _, reg := range s.registries {
		reg.Clear()
	}
	s.destruction.Clear()

	s.logger.Debug("signal closed", "signal", s.name, "connections", open)
}

// Stats returns a snapshot of the Signal's registrations.
func (s *Signal) Stats() Stats {
	stats := Stats{
		Name:        s.name,
		Closed:      s.closed,
		Connections: s.destruction.Len(),
		SlotCounts:  make(map[string]int, len(s.declared)),
	}
	for _, d := range s.declared {
		stats.SlotCounts[d.Name()] = s.registries[d.key()].Len()
	}
	return stats
}

// recovered builds the panic hook for the registry of signature.
func (s *Signal) recovered(signature string) func(any) {
	return func(recovered any) {
		s.logger.Warn("slot panicked",
			"signal", s.name,
			"signature", signature,
			"panic", recovered)
		s.panicHandler(signature, recovered)
	}
}
