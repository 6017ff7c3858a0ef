package throttle

import "testing"

func TestEmptyResultLimiterRollingWindow(t *testing.T) {
	l := New(3)

	l.Record(true)
	l.Record(true)
	if got := l.EmptyCount(); got != 2 {
		t.Fatalf("EmptyCount() = %d, want 2", got)
	}

	l.Record(false)
	if got := l.EmptyCount(); got != 2 {
		t.Fatalf("EmptyCount() = %d, want 2", got)
	}

	// window is full at 3; the next Record evicts the oldest (true).
	l.Record(true)
	if got := l.EmptyCount(); got != 2 {
		t.Fatalf("EmptyCount() after eviction = %d, want 2", got)
	}
	if got := l.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}
}

func TestEmptyResultLimiterNonPositiveWindow(t *testing.T) {
	l := New(0)
	l.Record(true)
	l.Record(true)
	if got := l.Len(); got != 1 {
		t.Fatalf("Len() = %d, want 1 (window sanitized to 1)", got)
	}
	if got := l.EmptyCount(); got != 1 {
		t.Fatalf("EmptyCount() = %d, want 1", got)
	}
}
