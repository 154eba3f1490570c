package signal

import (
	"reflect"

	"github.com/pkg/errors"
)

// Signature declares one event shape a Signal can broadcast. Events are
// told apart by their argument type T; use a struct for events carrying
// several values. The name only shows up in logs, errors and Stats.
//
// A Signature is also an Option: passing it to New declares it.
//
//	var (
//	    Resized = signal.NewSignature[Size]("resized")
//	    Closed  = signal.NewSignature[string]("closed")
//	)
//
//	sig := signal.New(Resized, Closed)
//	Resized.Emit(sig, Size{W: 80, H: 24})
type Signature[T any] struct {
	name string
}

// NewSignature creates a Signature for argument type T.
func NewSignature[T any](name string) Signature[T] {
	return Signature[T]{name: name}
}

// Name returns the display name.
func (s Signature[T]) Name() string { return s.name }

// Emit broadcasts arg to every slot connected to sig, in registration
// order, and returns once all of them ran. Emitting on a closed Signal does
// nothing. Emitting a Signature that sig never declared panics with
// ErrUndeclaredSignature.
func (s Signature[T]) Emit(sig *Signal, arg T) {
	if sig.closed {
		return
	}
	reg, ok := sig.registries[s.key()]
	if !ok {
		panic(errors.Wrapf(ErrUndeclaredSignature, "signal %q: signature %q", sig.name, s.name))
	}
	reg.(*Registry[T]).Emit(arg) //nolint:errcheck // registries are keyed by argument type
}

// Handle builds the overload of a multi-signature slot that receives this
// Signature. Combine overloads with Overloads.
func (s Signature[T]) Handle(fn func(T)) Overload {
	return overload[T]{fn: fn}
}

func (s Signature[T]) apply(sig *Signal) { sig.declare(s) }

func (s Signature[T]) key() reflect.Type { return reflect.TypeOf((*T)(nil)).Elem() }

func (s Signature[T]) newRegistry() dispatcher { return NewRegistry[T]() }

// bind resolves the handler slot provides for T.
func (s Signature[T]) bind(slot any) (any, bool) {
	switch v := slot.(type) {
	case func(T):
		return v, v != nil
	case Receiver[T]:
		return func(arg T) { v.Receive(arg) }, true
	case overload[T]:
		return v.fn, v.fn != nil
	case Overloads:
		for _, o := range v {
			if h, ok := o.(overload[T]); ok && h.fn != nil {
				return h.fn, true
			}
		}
	case func(any):
		if v != nil {
			return func(arg T) { v(arg) }, true
		}
	}
	return nil, false
}

func (s Signature[T]) add(d dispatcher, handler any) ClosureID {
	return d.(*Registry[T]).Add(invokeHandler[T], handler) //nolint:errcheck // registries are keyed by argument type
}

func invokeHandler[T any](ctx any, arg T) {
	ctx.(func(T))(arg) //nolint:errcheck // bind only yields func(T)
}

// Receiver is implemented by slots that receive a single signature.
type Receiver[T any] interface {
	Receive(T)
}

// Overload is one signature-specific handler of a multi-signature slot.
type Overload interface {
	overloaded()
}

type overload[T any] struct {
	fn func(T)
}

func (overload[T]) overloaded() {}

// Overloads is a slot made of one handler per signature, for Signals
// declaring several signatures. Each Emit only reaches the overload built
// by the matching Signature.Handle.
//
//	conn, err := sig.Connect(signal.Overloads{
//	    Resized.Handle(func(s Size) { ... }),
//	    Closed.Handle(func(reason string) { ... }),
//	})
type Overloads []Overload

// declaration is the type-erased view of a Signature used by Signal.
type declaration interface {
	Name() string
	key() reflect.Type
	newRegistry() dispatcher
	bind(slot any) (any, bool)
	add(d dispatcher, handler any) ClosureID
}

// dispatcher is the type-erased view of a Registry.
type dispatcher interface {
	Remove(id ClosureID)
	Clear()
	Len() int
	recoverWith(fn func(recovered any))
}
