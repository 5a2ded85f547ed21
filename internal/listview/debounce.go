package listview

import (
	"sync"
	"time"
)

// Debouncer delays reacting to a rapidly changing input until it has been
// quiet for a fixed period. Each Trigger supersedes any pending one, so at
// most one callback runs per quiet period, with the most recent function.
//
// A stopped Debouncer never fires again; Stop is safe to call concurrently
// with a pending timer and guarantees no callback runs afterwards.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	gen     uint64
	stopped bool
}

// NewDebouncer creates a Debouncer with the given quiet period.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules fn to run after the quiet period. Any previously
// scheduled function that has not fired yet is cancelled.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if d.timer != nil {
		d.timer.Stop()
	}

	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		if d.stopped || gen != d.gen {
			d.mu.Unlock()
			return
		}
		d.mu.Unlock()
		fn()
	})
}

// Cancel drops any pending callback without disabling the Debouncer.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
}

// Stop cancels any pending callback and permanently disables the Debouncer.
// Used on controller teardown so no state write happens after the consumer
// is gone.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
