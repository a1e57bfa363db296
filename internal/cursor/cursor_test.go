package cursor

import (
	"errors"
	"testing"
)

func TestRangeIsValid(t *testing.T) {
	r := NewRange(make([]byte, 10))

	tests := []struct {
		off, n int
		want   bool
	}{
		{0, 10, true},
		{0, 11, false},
		{5, 5, true},
		{5, 6, false},
		{-1, 1, false},
		{1, -1, false},
		{1 << 62, 1 << 62, false}, // overflow
	}
	for _, tt := range tests {
		if got := r.IsValid(tt.off, tt.n); got != tt.want {
			t.Errorf("IsValid(%d, %d) = %v, want %v", tt.off, tt.n, got, tt.want)
		}
	}
}

func TestCursorConsumePeek(t *testing.T) {
	c := FromBytes([]byte{1, 2, 3, 4, 5})

	peeked, err := c.Peek(3)
	if err != nil {
		t.Fatalf("Peek: %v", err)
	}
	if len(peeked) != 3 || c.Remaining() != 5 {
		t.Fatalf("Peek advanced the cursor: remaining=%d", c.Remaining())
	}

	consumed, err := c.Consume(3)
	if err != nil {
		t.Fatalf("Consume: %v", err)
	}
	if string(consumed) != string([]byte{1, 2, 3}) {
		t.Fatalf("Consume returned %v", consumed)
	}
	if c.Remaining() != 2 {
		t.Fatalf("Remaining = %d, want 2", c.Remaining())
	}
}

func TestCursorTruncated(t *testing.T) {
	c := FromBytes([]byte{1, 2})

	if _, err := c.Consume(3); !errors.Is(err, ErrTruncated) {
		t.Fatalf("Consume(3) error = %v, want ErrTruncated", err)
	}
	if err := c.Skip(3); !errors.Is(err, ErrTruncated) {
		t.Fatalf("Skip(3) error = %v, want ErrTruncated", err)
	}
}

func TestCursorSub(t *testing.T) {
	c := FromBytes([]byte{1, 2, 3, 4, 5})

	sub, err := c.Sub(1, 3)
	if err != nil {
		t.Fatalf("Sub: %v", err)
	}
	if sub.Remaining() != 3 {
		t.Fatalf("sub.Remaining() = %d, want 3", sub.Remaining())
	}
	if c.Remaining() != 5 {
		t.Fatalf("Sub advanced the parent cursor")
	}

	if _, err := c.Sub(4, 3); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Sub(4, 3) error = %v, want ErrOutOfRange", err)
	}
}

func TestCursorNoAliasing(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	c := FromBytes(data)
	view, _ := c.Consume(4)
	view[0] = 99
	if data[0] != 99 {
		t.Fatalf("Consume made a copy; expected zero-copy aliasing view")
	}
}
