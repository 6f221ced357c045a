// Package input tracks the encoder-driven selection state.
//
// Detent and click events may arrive from any goroutine, so a mutex
// guards the small shared struct. Methods never block and never touch
// the display or the transmitter; they only record state for the main
// loop to act on.
package input

import "sync"

// Controller holds the selection index, the playback flag and the
// consume-once "selection changed" flag.
type Controller struct {
	mu        sync.Mutex
	selection int
	last      int // highest valid index
	changed   bool
	playing   bool
}

// NewController creates a controller over a catalog of the given size.
func NewController(catalogSize int) *Controller {
	return &Controller{last: catalogSize - 1}
}

// Increment moves the selection one detent up, clamped at the last
// catalog index. Events arriving during playback are still recorded;
// the presenter only consumes the changed flag back in selection mode.
func (c *Controller) Increment() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selection < c.last {
		c.selection++
		c.changed = true
	}
}

// Decrement moves the selection one detent down, clamped at zero.
func (c *Controller) Decrement() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selection > 0 {
		c.selection--
		c.changed = true
	}
}

// Click toggles the playback flag and returns its new value: true means
// playback should start, false that a running song was asked to stop.
func (c *Controller) Click() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.playing = !c.playing
	return c.playing
}

// LongPress is a reserved extension point. It currently does nothing.
func (c *Controller) LongPress() {}

// Restore sets the selection directly, clamped to the catalog bounds.
// Used at startup to bring back the last selection from the config file;
// it does not mark the selection as changed.
func (c *Controller) Restore(i int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 {
		i = 0
	}
	if i > c.last {
		i = c.last
	}
	c.selection = i
}

// Selection returns the current catalog index.
func (c *Controller) Selection() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection
}

// Playing reports whether a song is actively streaming. The playback
// engine polls this as its cooperative cancellation signal.
func (c *Controller) Playing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playing
}

// StopPlayback clears the playback flag. Called when a song ends on its
// own rather than by a click.
func (c *Controller) StopPlayback() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.playing = false
}

// TakeChanged reports whether the selection changed since the last call
// and clears the flag.
func (c *Controller) TakeChanged() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	changed := c.changed
	c.changed = false
	return changed
}
