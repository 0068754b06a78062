// Package debounce collapses bursts of Bubble Tea events into a single
// command fired after a quiet period.
package debounce

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var nextID atomic.Int64

// Msg is sent when a quiet period ends. Only the debouncer that produced it
// acts on it, and only if no newer Trigger happened in between.
type Msg struct {
	id  int64
	tag int64
}

// Debouncer forwards the most recent value passed to Trigger once no new
// Trigger has happened for the configured delay.
// It is driven from a Bubble Tea Update loop and is not safe for concurrent use.
type Debouncer[T any] struct {
	id      int64
	delay   time.Duration
	fire    func(T) tea.Cmd
	tag     int64
	pending T
	waiting bool
	stopped bool
}

// New creates a debouncer that calls fire with the last triggered value
func New[T any](delay time.Duration, fire func(T) tea.Cmd) *Debouncer[T] {
	return &Debouncer[T]{
		id:    nextID.Add(1),
		delay: delay,
		fire:  fire,
	}
}

// Delay returns the quiet period
func (d *Debouncer[T]) Delay() time.Duration {
	return d.delay
}

// Trigger records v and restarts the quiet period
func (d *Debouncer[T]) Trigger(v T) tea.Cmd {
	if d.stopped {
		return nil
	}
	d.tag++
	d.pending = v
	d.waiting = true

	id, tag := d.id, d.tag
	return tea.Tick(d.delay, func(time.Time) tea.Msg {
		return Msg{id: id, tag: tag}
	})
}

// Update handles a quiet-period message. handled reports whether msg belonged
// to this debouncer; cmd is the fired command, nil if the message was stale.
func (d *Debouncer[T]) Update(msg tea.Msg) (cmd tea.Cmd, handled bool) {
	m, ok := msg.(Msg)
	if !ok || m.id != d.id {
		return nil, false
	}
	if d.stopped || !d.waiting || m.tag != d.tag {
		return nil, true
	}

	d.waiting = false
	v := d.pending
	var zero T
	d.pending = zero
	return d.fire(v), true
}

// Pending reports whether a value is waiting for its quiet period to end
func (d *Debouncer[T]) Pending() bool {
	return d.waiting && !d.stopped
}

// Cancel drops the pending value, if any
func (d *Debouncer[T]) Cancel() {
	d.tag++
	d.waiting = false
	var zero T
	d.pending = zero
}

// Stop cancels the pending value and ignores every later Trigger.
// Call it on teardown so nothing fires after the view is gone.
func (d *Debouncer[T]) Stop() {
	d.Cancel()
	d.stopped = true
}
