package signal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct {
	n int
}

func (c *counter) Receive(v int) { c.n += v }

func TestOwn(t *testing.T) {
	s := New(value)

	c := &counter{}
	oc, err := s.Own(c)
	require.NoError(t, err)

	assert.True(t, oc.Connected())
	assert.Same(t, c, oc.Slot())

	value.Emit(s, 2)
	value.Emit(s, 3)
	assert.Equal(t, 5, c.n)

	oc.Close()
	value.Emit(s, 4)
	assert.Equal(t, 5, c.n)
	assert.False(t, oc.Connected())
}

func TestOwnCloseIdempotent(_ *testing.T) {
	s := New(value)
	oc := s.MustOwn(func(int) {})

	// Close multiple times should not panic
	oc.Close()
	oc.Close()

	var zero OwningConnection
	zero.Close()
}

func TestOwnSlotMismatch(t *testing.T) {
	s := New(value)

	oc, err := s.Own(func(string) {})

	assert.Nil(t, oc)
	assert.ErrorIs(t, err, ErrSlotMismatch)
}

func TestOwningConnectionMove(t *testing.T) {
	s := New(value)
	var b strings.Builder

	src := s.MustOwn(tagged(&b, "1"))
	dst := src.Move()
	defer dst.Close()

	assert.False(t, src.Connected())
	assert.Nil(t, src.Slot())
	assert.True(t, dst.Connected())
	assert.NotNil(t, dst.Slot())
	assert.Equal(t, 1, s.Stats().Connections)

	// Closing the moved-from handle must not disconnect the slot.
	src.Close()
	value.Emit(s, 99)

	assert.Equal(t, "199", b.String())
}

func TestOwningConnectionMoveReordersSlot(t *testing.T) {
	s := New(value)
	var b strings.Builder

	first := s.MustOwn(tagged(&b, "0"))
	second := s.MustOwn(tagged(&b, "1"))
	defer second.Close()

	moved := first.Move()
	defer moved.Close()

	value.Emit(s, 7)

	assert.Equal(t, "17"+"07", b.String(), "a moved owning connection is registered again at the end")
}

func TestOwningConnectionMoveClosed(t *testing.T) {
	s := New(value)

	oc := s.MustOwn(func(int) {})
	oc.Close()

	moved := oc.Move()
	assert.False(t, moved.Connected())
	moved.Close()

	oc = s.MustOwn(func(int) {})
	s.Close()

	moved = oc.Move()
	assert.False(t, moved.Connected(), "moving after the Signal closed yields a closed connection")
	moved.Close()
}

func TestOwnOutlivesSignal(t *testing.T) {
	s := New(value)
	oc := s.MustOwn(func(int) {})

	s.Close()

	assert.False(t, oc.Connected())
	oc.Close()
}
