package input

import "testing"

func TestClampAtBounds(t *testing.T) {
	c := NewController(3)

	c.Decrement()
	if got := c.Selection(); got != 0 {
		t.Fatalf("decrement at 0: selection = %d, want 0", got)
	}

	for i := 0; i < 10; i++ {
		c.Increment()
	}
	if got := c.Selection(); got != 2 {
		t.Fatalf("increment past end: selection = %d, want 2", got)
	}
}

func TestTakeChangedConsumesOnce(t *testing.T) {
	c := NewController(5)

	if c.TakeChanged() {
		t.Fatal("changed flag set before any event")
	}

	c.Increment()
	if !c.TakeChanged() {
		t.Fatal("changed flag not set after increment")
	}
	if c.TakeChanged() {
		t.Fatal("changed flag not cleared by first read")
	}

	// A clamped turn is not a change.
	c.Decrement()
	c.Decrement()
	if c.TakeChanged() {
		t.Fatal("clamped decrement at 0 should not set the flag")
	}
}

func TestClickToggles(t *testing.T) {
	c := NewController(5)

	if !c.Click() {
		t.Fatal("first click should start playback")
	}
	if !c.Playing() {
		t.Fatal("playing flag not set after click")
	}
	if c.Click() {
		t.Fatal("second click should request stop")
	}
	if c.Playing() {
		t.Fatal("playing flag still set after stop click")
	}
}

func TestStopPlayback(t *testing.T) {
	c := NewController(5)
	c.Click()
	c.StopPlayback()
	if c.Playing() {
		t.Fatal("StopPlayback did not clear the flag")
	}
}

func TestLongPressIsNoOp(t *testing.T) {
	c := NewController(5)
	c.Increment()
	c.TakeChanged()
	c.LongPress()

	if c.Selection() != 1 || c.Playing() || c.TakeChanged() {
		t.Fatal("long press must not alter any state")
	}
}

func TestRestoreClamps(t *testing.T) {
	c := NewController(5)
	c.Restore(3)
	if c.Selection() != 3 {
		t.Fatalf("Restore(3): selection = %d", c.Selection())
	}
	if c.TakeChanged() {
		t.Fatal("Restore should not mark the selection changed")
	}
	c.Restore(99)
	if c.Selection() != 4 {
		t.Fatalf("Restore(99): selection = %d, want 4", c.Selection())
	}
	c.Restore(-1)
	if c.Selection() != 0 {
		t.Fatalf("Restore(-1): selection = %d, want 0", c.Selection())
	}
}

func TestEventsDuringPlaybackAreRecorded(t *testing.T) {
	c := NewController(5)
	c.Click() // playing

	c.Increment()
	c.Increment()
	if got := c.Selection(); got != 2 {
		t.Fatalf("selection during playback = %d, want 2", got)
	}
	// The change is still pending for the return to selection mode.
	if !c.TakeChanged() {
		t.Fatal("changed flag lost during playback")
	}
}
