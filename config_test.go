package signal

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWithNameDefault verifies the default name.
func TestWithNameDefault(t *testing.T) {
	s := New(value)

	if s.name != "signal" {
		t.Errorf("expected default name=%q, got %q", "signal", s.name)
	}
}

func TestWithName(t *testing.T) {
	s := New(value, WithName("window"))

	assert.Equal(t, "window", s.Stats().Name)

	_, err := s.Connect(42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `signal "window"`)
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := New(value, WithName("logged"), WithLogger(logger))
	conn := s.MustConnect(func(int) {})
	conn.Close()
	s.Close()

	out := buf.String()
	assert.Contains(t, out, "slot connected")
	assert.Contains(t, out, "slot disconnected")
	assert.Contains(t, out, "signal closed")
	assert.Contains(t, out, "signal=logged")
}

func TestWithLoggerNil(t *testing.T) {
	s := New(WithLogger(nil))

	assert.NotNil(t, s.logger, "a nil logger must keep the default")
}

// TestWithPanicHandler verifies panic handler is called on slot panic.
func TestWithPanicHandler(t *testing.T) {
	var panicSignature string
	var panicValue any
	var b strings.Builder

	handler := func(signature string, recovered any) {
		panicSignature = signature
		panicValue = recovered
	}

	s := New(value, WithPanicHandler(handler))

	s.MustOwn(func(int) {
		panic("test panic")
	})
	s.MustOwn(tagged(&b, "after"))

	value.Emit(s, 1)

	if panicSignature != "value" {
		t.Errorf("expected panicSignature=%q, got %q", "value", panicSignature)
	}
	if panicValue != "test panic" {
		t.Errorf("expected panicValue=%q, got %v", "test panic", panicValue)
	}
	if b.String() != "after1" {
		t.Errorf("expected emission to continue after panic, got %q", b.String())
	}
}

// TestWithoutPanicHandler verifies a panic reaches the emitter and the
// signal keeps working afterwards.
func TestWithoutPanicHandler(t *testing.T) {
	s := New(value)
	var b strings.Builder

	fail := true
	var conn *Connection
	conn = s.MustConnect(func(int) {
		if fail {
			fail = false
			conn.Close()
			panic("test panic")
		}
	})
	s.MustOwn(tagged(&b, "b"))

	assert.PanicsWithValue(t, "test panic", func() { value.Emit(s, 1) })
	assert.Equal(t, 1, s.Stats().SlotCounts["value"])

	value.Emit(s, 2)
	assert.Equal(t, "b2", b.String())
}

// TestWithPanicHandlerBeforeSignatures verifies option order does not matter.
func TestWithPanicHandlerBeforeSignatures(t *testing.T) {
	recovered := 0
	s := New(WithPanicHandler(func(string, any) { recovered++ }), value)

	s.MustOwn(func(int) { panic("late declaration") })

	require.NotPanics(t, func() { value.Emit(s, 1) })
	assert.Equal(t, 1, recovered)
}
