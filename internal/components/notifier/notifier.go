// Package notifier provides short-lived UI values that clear themselves after
// a fixed duration.
//
// Every Post bumps a generation counter and schedules a ClearMsg tagged with
// that generation. A ClearMsg only clears the value when its generation is
// still the current one, so a newer value is never erased by the timer of an
// older one. No timer is ever cancelled.
package notifier

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Scheduler turns a delay and a message factory into a tea.Cmd.
// tea.Tick is the production scheduler; tests inject their own.
type Scheduler func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// ClearMsg is delivered when a posted value's display time is over.
type ClearMsg struct {
	ID         string // Notifier that scheduled the clear
	Generation uint64 // Only clear if this matches the current generation
}

// Notifier holds at most one transient value of type T.
type Notifier[T any] struct {
	id         string
	duration   time.Duration
	schedule   Scheduler
	value      T
	present    bool
	generation uint64
}

// Option configures a Notifier.
type Option func(*config)

type config struct {
	schedule Scheduler
}

// WithScheduler replaces tea.Tick as the clear scheduler.
func WithScheduler(s Scheduler) Option {
	return func(c *config) {
		if s != nil {
			c.schedule = s
		}
	}
}

// New creates a notifier. The id must be unique among notifiers whose
// messages flow through the same Bubble Tea program.
func New[T any](id string, duration time.Duration, opts ...Option) *Notifier[T] {
	cfg := config{schedule: tea.Tick}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Notifier[T]{
		id:       id,
		duration: duration,
		schedule: cfg.schedule,
	}
}

// ID returns the notifier identifier carried by its ClearMsg.
func (n *Notifier[T]) ID() string {
	return n.id
}

// Duration returns how long a posted value stays visible.
func (n *Notifier[T]) Duration() time.Duration {
	return n.duration
}

// Post replaces the current value and returns the command that clears it.
func (n *Notifier[T]) Post(value T) tea.Cmd {
	n.generation++
	n.value = value
	n.present = true

	msg := ClearMsg{ID: n.id, Generation: n.generation}
	return n.schedule(n.duration, func(time.Time) tea.Msg {
		return msg
	})
}

// Value returns the current value and whether one is present.
func (n *Notifier[T]) Value() (T, bool) {
	return n.value, n.present
}

// Generation returns the generation of the most recent Post.
func (n *Notifier[T]) Generation() uint64 {
	return n.generation
}

// Clear removes the value if generation is still current.
// Returns true if the value was cleared.
func (n *Notifier[T]) Clear(generation uint64) bool {
	if !n.present || generation != n.generation {
		return false
	}

	var zero T
	n.value = zero
	n.present = false
	return true
}

// Update handles ClearMsg addressed to this notifier.
// Returns true if msg belonged to this notifier, whether or not it was stale.
func (n *Notifier[T]) Update(msg tea.Msg) bool {
	cm, ok := msg.(ClearMsg)
	if !ok || cm.ID != n.id {
		return false
	}

	n.Clear(cm.Generation)
	return true
}
