package signal

import "github.com/pkg/errors"

var (
	// ErrSignalClosed is returned when connecting to a Signal after Close.
	ErrSignalClosed = errors.New("signal has been closed")

	// ErrSlotMismatch is returned when a slot cannot receive one of the
	// signatures declared by the Signal it is connected to.
	ErrSlotMismatch = errors.New("slot cannot receive signature")

	// ErrUndeclaredSignature is the panic value used when a Signature is
	// emitted on a Signal that never declared it.
	ErrUndeclaredSignature = errors.New("signature not declared by signal")
)
