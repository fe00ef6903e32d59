package application

import (
	"sync"
	"time"
)

// SearchDebounce is the delay between the last search keystroke and the
// query taking effect
const SearchDebounce = 300 * time.Millisecond

// Debouncer delivers only the last value of a burst, once the input has
// been quiet for the delay.
type Debouncer[T any] struct {
	delay   time.Duration
	deliver func(T)

	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

// NewDebouncer creates a debouncer calling deliver on its own goroutine
func NewDebouncer[T any](delay time.Duration, deliver func(T)) *Debouncer[T] {
	return &Debouncer[T]{delay: delay, deliver: deliver}
}

// Push records a new value and restarts the delay
func (d *Debouncer[T]) Push(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.seq++
	seq := d.seq
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		current := d.seq == seq
		d.mu.Unlock()
		if current {
			d.deliver(v)
		}
	})
}

// Cancel drops any pending value
func (d *Debouncer[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.seq++
}
