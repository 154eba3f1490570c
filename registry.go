package signal

import "container/list"

// closure is one registered slot for one signature. It does not own ctx;
// the Connection that added it keeps ctx meaningful until it removes it.
type closure[T any] struct {
	invoke func(ctx any, arg T)
	ctx    any
	owner  *Registry[T]
	dead   bool // tombstoned, waiting for the outermost Emit to sweep it
}

// ClosureID references one entry of a Registry. It stays valid until that
// entry is removed, whatever happens to the other entries meanwhile.
// The zero ClosureID refers to nothing and is ignored by Remove.
type ClosureID struct {
	elem *list.Element
}

// Registry is the ordered set of closures for a single event signature.
//
// Removing an entry while an emission is in progress does not erase it.
// The entry is tombstoned instead and erased once the outermost Emit
// returns, so an in-flight pass never observes a dangling entry.
type Registry[T any] struct {
	closures list.List
	depth    int
	pending  bool
	onPanic  func(recovered any)
}

// NewRegistry creates an empty Registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{}
}

// Add appends a closure and returns its id. Existing ids are unaffected.
func (r *Registry[T]) Add(invoke func(ctx any, arg T), ctx any) ClosureID {
	c := &closure[T]{invoke: invoke, ctx: ctx, owner: r}
	return ClosureID{elem: r.closures.PushBack(c)}
}

// Remove unregisters the closure referenced by id. Removing an id twice,
// or an id that belongs to another Registry, does nothing.
func (r *Registry[T]) Remove(id ClosureID) {
	if id.elem == nil {
		return
	}
	c, ok := id.elem.Value.(*closure[T])
	if !ok || c.owner != r || c.dead {
		return
	}

	c.dead = true
	c.invoke = nil
	c.ctx = nil

	if r.depth == 0 {
		r.closures.Remove(id.elem)
		return
	}

	// An emission is iterating over the list; erase later.
	r.pending = true
}

// Emit invokes every live closure in registration order.
//
// Emit may be re-entered from a closure. Closures added during a pass are
// only visited by passes started after the add; closures removed during a
// pass are skipped by the rest of that pass and by every later pass.
func (r *Registry[T]) Emit(arg T) {
	last := r.closures.Back()
	if last == nil {
		return
	}

	r.depth++
	defer r.leave()

	for e := r.closures.Front(); e != nil; e = e.Next() {
		if c := e.Value.(*closure[T]); !c.dead { //nolint:errcheck // only closures are stored
			r.call(c, arg)
		}
		if e == last {
			break
		}
	}
}

// Clear removes every closure, deferring erasure when an emission is in
// progress.
func (r *Registry[T]) Clear() {
	if r.depth == 0 {
		for e := r.closures.Front(); e != nil; e = e.Next() {
			e.Value.(*closure[T]).dead = true //nolint:errcheck // only closures are stored
		}
		r.closures.Init()
		r.pending = false
		return
	}

	for e := r.closures.Front(); e != nil; e = e.Next() {
		c := e.Value.(*closure[T]) //nolint:errcheck // only closures are stored
		c.dead = true
		c.invoke = nil
		c.ctx = nil
	}
	r.pending = true
}

// Len returns the number of live closures. Tombstones are not counted.
func (r *Registry[T]) Len() int {
	n := 0
	for e := r.closures.Front(); e != nil; e = e.Next() {
		if !e.Value.(*closure[T]).dead { //nolint:errcheck // only closures are stored
			n++
		}
	}
	return n
}

// Depth returns the number of emissions currently in progress.
func (r *Registry[T]) Depth() int { return r.depth }

// Pending reports whether tombstones are waiting to be swept.
func (r *Registry[T]) Pending() bool { return r.pending }

func (r *Registry[T]) call(c *closure[T], arg T) {
	if r.onPanic != nil {
		defer func() {
			if recovered := recover(); recovered != nil {
				r.onPanic(recovered)
			}
		}()
	}
	c.invoke(c.ctx, arg)
}

func (r *Registry[T]) recoverWith(fn func(recovered any)) { r.onPanic = fn }

// leave runs on every exit from Emit, including a panicking slot.
func (r *Registry[T]) leave() {
	r.depth--
	if r.depth == 0 && r.pending {
		r.sweep()
	}
}

func (r *Registry[T]) sweep() {
	for e := r.closures.Front(); e != nil; {
		next := e.Next()
		if e.Value.(*closure[T]).dead { //nolint:errcheck // only closures are stored
			r.closures.Remove(e)
		}
		e = next
	}
	r.pending = false
}
