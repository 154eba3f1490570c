package demo

import (
	"fmt"
	"strings"

	"github.com/zoobzio/signal"
)

var (
	intEvent    = signal.NewSignature[int]("int")
	stringEvent = signal.NewSignature[string]("string")
	floatEvent  = signal.NewSignature[float64]("double")
	tickEvent   = signal.NewSignature[struct{}]("tick")
)

// nonOwningReceiver outlives its connection, so it connects itself
// without handing ownership over.
type nonOwningReceiver struct {
	out  *strings.Builder
	conn *signal.Connection
}

func newNonOwningReceiver(out *strings.Builder, sig *signal.Signal) *nonOwningReceiver {
	r := &nonOwningReceiver{out: out}
	r.conn = sig.MustConnect(signal.Overloads{
		intEvent.Handle(r.onInt),
		stringEvent.Handle(r.onString),
	})
	return r
}

func (r *nonOwningReceiver) onInt(v int)       { fmt.Fprintf(r.out, "0i%d", v) }
func (r *nonOwningReceiver) onString(v string) { fmt.Fprintf(r.out, "0s%s", v) }

// owningReceiver hands a throwaway slot to an owning connection.
type owningReceiver struct {
	conn *signal.OwningConnection
}

func newOwningReceiver(out *strings.Builder, sig *signal.Signal) *owningReceiver {
	return &owningReceiver{
		conn: sig.MustOwn(signal.Overloads{
			intEvent.Handle(func(v int) { fmt.Fprintf(out, "2i%d", v) }),
			stringEvent.Handle(func(v string) { fmt.Fprintf(out, "2s%s", v) }),
		}),
	}
}

func (r *owningReceiver) Close() { r.conn.Close() }

func basic() bool {
	sig := signal.New(intEvent, stringEvent, signal.WithName("basic"))
	defer sig.Close()

	var out strings.Builder

	slot0 := newNonOwningReceiver(&out, sig)
	defer slot0.conn.Close()

	func() {
		slot1 := func(v any) { fmt.Fprintf(&out, "1%v", v) }
		conn := sig.MustConnect(slot1)
		defer conn.Close()

		intEvent.Emit(sig, 42)
	}()

	func() {
		slot2 := newOwningReceiver(&out, sig)
		defer slot2.Close()

		stringEvent.Emit(sig, "a")
	}()

	func() {
		conn := sig.MustOwn(func(v any) { fmt.Fprintf(&out, "3%v", v) })
		defer conn.Close()

		intEvent.Emit(sig, 8)
	}()

	stringEvent.Emit(sig, "b")

	const want = "0i42" + "142" +
		"0sa" + "2sa" +
		"0i8" + "38" +
		"0sb"
	return out.String() == want
}

func basicExample() bool {
	var out strings.Builder

	sig := signal.New(intEvent)
	conn := sig.MustOwn(func(v int) { fmt.Fprintln(&out, v) })
	defer conn.Close()
	intEvent.Emit(sig, 42)

	return out.String() == "42\n"
}

// reentrantReceiver disconnects itself on the first event and emits again.
type reentrantReceiver struct {
	sig   *signal.Signal
	calls int
	conn  *signal.OwningConnection
}

func newReentrantReceiver(sig *signal.Signal) *reentrantReceiver {
	r := &reentrantReceiver{sig: sig}
	r.conn = sig.MustOwn(r.onTick)
	return r
}

func (r *reentrantReceiver) onTick(struct{}) {
	r.calls++
	if r.calls == 1 {
		r.conn.Close()
		tickEvent.Emit(r.sig, struct{}{})
	}
}

func disconnectAtEmit() bool {
	sig := signal.New(tickEvent)
	defer sig.Close()

	receiver := newReentrantReceiver(sig)
	others := 0
	conn := sig.MustOwn(func(struct{}) { others++ })
	defer conn.Close()

	tickEvent.Emit(sig, struct{}{})

	return receiver.calls == 1 && others == 2
}

// eventEmitter hides its signal and only lets callers connect.
type eventEmitter struct {
	sig *signal.Signal
}

func newEventEmitter() *eventEmitter {
	return &eventEmitter{sig: signal.New(intEvent, stringEvent, floatEvent)}
}

func (e *eventEmitter) Connect(slot any) (*signal.Connection, error) {
	return e.sig.Connect(slot)
}

func (e *eventEmitter) run() {
	intEvent.Emit(e.sig, 1)
	intEvent.Emit(e.sig, int('2'))
	stringEvent.Emit(e.sig, "3")
	floatEvent.Emit(e.sig, 4.0)
}

type eventReceiver struct {
	out  strings.Builder
	conn *signal.Connection
}

func newEventReceiver(e *eventEmitter) (*eventReceiver, error) {
	r := &eventReceiver{}
	conn, err := e.Connect(signal.Overloads{
		intEvent.Handle(func(v int) { fmt.Fprintf(&r.out, "int: %d\n", v) }),
		stringEvent.Handle(func(v string) { fmt.Fprintf(&r.out, "string: %s\n", v) }),
		floatEvent.Handle(func(v float64) { fmt.Fprintf(&r.out, "double: %g\n", v) }),
	})
	if err != nil {
		return nil, err
	}
	r.conn = conn
	return r, nil
}

func fullExample() bool {
	emitter := newEventEmitter()
	receiver, err := newEventReceiver(emitter)
	if err != nil {
		return false
	}
	defer receiver.conn.Close()

	emitter.run()

	const want = "int: 1\n" +
		"int: 50\n" +
		"string: 3\n" +
		"double: 4\n"
	return receiver.out.String() == want
}

type moveArgs struct {
	value *int
	text  string
}

func move() bool {
	event := signal.NewSignature[*moveArgs]("move")
	sig := signal.New(event)
	defer sig.Close()

	ok := true
	var group signal.ConnectionGroup
	defer group.Close()

	group.Add(sig.MustOwn(func(a *moveArgs) {
		ok = ok && a.value != nil && *a.value == 4 && a.text == "test"
	}))
	group.Add(sig.MustOwn(func(a *moveArgs) {
		ok = ok && a.value != nil && *a.value == 4 && a.text == "test"
		a.value = nil
	}))
	group.Add(sig.MustOwn(func(a *moveArgs) {
		ok = ok && a.value == nil && a.text == "test"
	}))

	four := 4
	event.Emit(sig, &moveArgs{value: &four, text: "test"})

	return ok
}

func moveConnection() bool {
	var out strings.Builder
	sig := signal.New(intEvent)
	defer sig.Close()

	slot0 := func(v int) { fmt.Fprintf(&out, "0%d", v) }
	connection0 := sig.MustConnect(slot0)
	connection0b := connection0.Move()
	defer connection0b.Close()

	connection1 := sig.MustOwn(func(v int) { fmt.Fprintf(&out, "1%d", v) })
	connection1b := connection1.Move()
	defer connection1b.Close()

	intEvent.Emit(sig, 99)

	return out.String() == "099"+"199"
}

type whatever struct{}

func (whatever) String() string { return "whatever string" }

func multiSignature() bool {
	whateverEvent := signal.NewSignature[whatever]("whatever")
	sig := signal.New(intEvent, stringEvent, whateverEvent)

	var out strings.Builder
	slot := func(v any) { fmt.Fprintln(&out, v) }

	conn := sig.MustConnect(slot)
	defer conn.Close()

	intEvent.Emit(sig, 42)
	stringEvent.Emit(sig, "test")
	whateverEvent.Emit(sig, whatever{})

	return out.String() == "42\n"+"test\n"+"whatever string\n"
}

func signalDestroyedBeforeSlot() bool {
	sig := signal.New(intEvent)
	conn := sig.MustOwn(func(int) {})

	sig.Close()
	conn.Close()

	return !conn.Connected()
}
