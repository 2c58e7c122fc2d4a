package input

import (
	"sync"
	"time"
)

// Debouncer delays a callback until input has been quiet for the configured
// delay. A value equal to the last delivered one is dropped.
type Debouncer struct {
	mu        sync.Mutex
	delay     time.Duration
	timer     *time.Timer
	lastValue string
	fire      func(string)
	stopped   bool
}

// NewDebouncer creates a debouncer calling fire on its own goroutine.
// A zero delay delivers values synchronously from Push.
func NewDebouncer(delay time.Duration, fire func(string)) *Debouncer {
	return &Debouncer{delay: delay, fire: fire}
}

// Push records a new value and restarts the quiet period.
func (d *Debouncer) Push(value string) {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.delay <= 0 {
		d.mu.Unlock()
		d.deliver(value)
		return
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.deliver(value)
	})
	d.mu.Unlock()
}

// SetDelay changes the quiet period for subsequent pushes.
func (d *Debouncer) SetDelay(delay time.Duration) {
	d.mu.Lock()
	d.delay = delay
	d.mu.Unlock()
}

// Flush cancels the pending timer and delivers value immediately.
func (d *Debouncer) Flush(value string) {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	stopped := d.stopped
	d.mu.Unlock()
	if !stopped {
		d.deliver(value)
	}
}

// Stop cancels any pending delivery. Later pushes are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer) deliver(value string) {
	// Skip duplicate values
	d.mu.Lock()
	if d.stopped || (value == d.lastValue && value != "") {
		d.mu.Unlock()
		return
	}
	d.lastValue = value
	d.mu.Unlock()

	if d.fire != nil {
		d.fire(value)
	}
}
