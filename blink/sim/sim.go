// Package sim provides a simulated board for exercising blink.HAL
// users on the host. Time is virtual: DelayMs advances a clock instead
// of sleeping.
package sim

import (
	"runtime"
	"sync"
	"time"

	"github.com/harveysanders/picoblink/blink"
)

// Kind identifies a recorded HAL call.
type Kind uint8

const (
	InitIO Kind = iota
	Configure
	Write
	Delay
)

func (k Kind) String() string {
	switch k {
	case InitIO:
		return "init-io"
	case Configure:
		return "configure"
	case Write:
		return "write"
	case Delay:
		return "delay"
	}
	return "unknown"
}

// Event is one HAL call as seen by the board.
type Event struct {
	Kind  Kind
	Pin   int           // Configure and Write only.
	Level blink.Level   // Write only.
	Dur   time.Duration // Delay only.
	At    time.Duration // Virtual time at which the call started.
}

// Board implements blink.HAL and records every call.
type Board struct {
	mu      sync.Mutex
	now     time.Duration
	stopAt  time.Duration
	stop    bool
	events  []Event
	outputs map[int]bool
}

var _ blink.HAL = (*Board)(nil)

// New returns a board at virtual time zero.
func New() *Board {
	return &Board{outputs: make(map[int]bool)}
}

// StopAfter makes the first DelayMs issued at or after virtual time d
// end the calling goroutine via runtime.Goexit.
func (b *Board) StopAfter(d time.Duration) {
	b.mu.Lock()
	b.stopAt = d
	b.stop = true
	b.mu.Unlock()
}

// InitIO records the call.
func (b *Board) InitIO() {
	b.record(Event{Kind: InitIO})
}

// ConfigureOutput marks pin as an output.
func (b *Board) ConfigureOutput(pin int) {
	b.mu.Lock()
	b.outputs[pin] = true
	b.mu.Unlock()
	b.record(Event{Kind: Configure, Pin: pin})
}

// WritePin records level on pin at the current virtual time.
func (b *Board) WritePin(pin int, level blink.Level) {
	b.record(Event{Kind: Write, Pin: pin, Level: level})
}

// DelayMs advances the virtual clock by ms. If StopAfter was set and
// the clock has reached its deadline, the calling goroutine is ended
// with runtime.Goexit instead and nothing is recorded.
func (b *Board) DelayMs(ms uint32) {
	d := time.Duration(ms) * time.Millisecond
	b.mu.Lock()
	if b.stop && b.now >= b.stopAt {
		b.mu.Unlock()
		runtime.Goexit()
	}
	b.events = append(b.events, Event{Kind: Delay, Dur: d, At: b.now})
	b.now += d
	b.mu.Unlock()
}

// Now returns the current virtual time.
func (b *Board) Now() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.now
}

// IsOutput reports whether pin has been configured as an output.
func (b *Board) IsOutput(pin int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.outputs[pin]
}

// Events returns a copy of all recorded calls in order.
func (b *Board) Events() []Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Event(nil), b.events...)
}

// Writes returns only the Write events.
func (b *Board) Writes() []Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []Event
	for _, ev := range b.events {
		if ev.Kind == Write {
			out = append(out, ev)
		}
	}
	return out
}

// LevelAt returns the level of pin at virtual time t. A write issued
// exactly at t is included. ok is false if pin had not been written
// by then.
func (b *Board) LevelAt(pin int, t time.Duration) (level blink.Level, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ev := range b.events {
		if ev.At > t {
			break
		}
		if ev.Kind == Write && ev.Pin == pin {
			level, ok = ev.Level, true
		}
	}
	return level, ok
}

func (b *Board) record(ev Event) {
	b.mu.Lock()
	ev.At = b.now
	b.events = append(b.events, ev)
	b.mu.Unlock()
}
