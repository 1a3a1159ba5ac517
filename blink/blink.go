// Package blink drives a single GPIO line through an endless on/off
// cycle. The hardware is reached only through the HAL interface so the
// same loop runs on a Pico, a Pico W or a simulated board in tests.
//
// Example usage:
//
//	b := blink.New(machinehal.New(), blink.DefaultConfig(), logger)
//	b.Run() // never returns
package blink

import (
	"io"
	"log/slog"
	"math"
	"time"
)

const (
	// DefaultPin is the GPIO wired to the onboard LED of a Raspberry Pi Pico.
	DefaultPin = 25
	// DefaultInterval is how long the LED stays in each state.
	DefaultInterval = 500 * time.Millisecond
)

// Level is the logical state of a GPIO line.
type Level bool

const (
	Low  Level = false // LED off
	High Level = true  // LED on
)

func (l Level) String() string {
	if l {
		return "HIGH"
	}
	return "LOW"
}

// HAL is the hardware boundary used by the Blinker. Implementations
// handle their own failures; none of the calls report errors.
type HAL interface {
	// InitIO brings up stdio. It is called once, before anything else.
	InitIO()
	// ConfigureOutput makes pin a digital output.
	ConfigureOutput(pin int)
	// WritePin drives pin to level.
	WritePin(pin int, level Level)
	// DelayMs blocks the caller for ms milliseconds.
	DelayMs(ms uint32)
}

// Config selects the line to blink and the time spent in each state.
type Config struct {
	// Pin is the GPIO number as understood by the HAL.
	Pin int
	// Interval is the time spent HIGH and then LOW in each cycle.
	Interval time.Duration
}

// DefaultConfig returns the configuration for the Pico's onboard LED.
func DefaultConfig() Config {
	return Config{
		Pin:      DefaultPin,
		Interval: DefaultInterval,
	}
}

// Blinker toggles one pin forever.
type Blinker struct {
	hal     HAL
	cfg     Config
	logger  *slog.Logger
	delayMs uint32
	ready   bool
}

// maxInterval is the longest delay DelayMs can express.
const maxInterval = time.Duration(math.MaxUint32) * time.Millisecond

// New creates a Blinker on hal. cfg.Interval is truncated to whole
// milliseconds and capped at maxInterval; anything under 1ms is
// replaced by DefaultInterval. cfg.Pin is used as given since 0 is a
// valid line. A nil logger discards all output.
func New(hal HAL, cfg Config, logger *slog.Logger) *Blinker {
	cfg.Interval = cfg.Interval.Truncate(time.Millisecond)
	if cfg.Interval < time.Millisecond {
		cfg.Interval = DefaultInterval
	}
	if cfg.Interval > maxInterval {
		cfg.Interval = maxInterval
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.Level(127), // Make logger that does no logging.
		}))
	}
	return &Blinker{
		hal:     hal,
		cfg:     cfg,
		logger:  logger,
		delayMs: uint32(cfg.Interval / time.Millisecond),
	}
}

// Config returns the effective configuration.
func (b *Blinker) Config() Config { return b.cfg }

// Setup initializes stdio and configures the pin as an output.
// Only the first call touches the hardware.
func (b *Blinker) Setup() {
	if b.ready {
		return
	}
	b.hal.InitIO()
	b.hal.ConfigureOutput(b.cfg.Pin)
	b.ready = true
	b.logger.Info("blink:ready",
		slog.Int("pin", b.cfg.Pin),
		slog.Duration("interval", b.cfg.Interval),
	)
}

// Cycle runs one full on/off period.
func (b *Blinker) Cycle() {
	b.Setup()
	b.set(High)
	b.hal.DelayMs(b.delayMs)
	b.set(Low)
	b.hal.DelayMs(b.delayMs)
}

// Run blinks the LED until the device is reset. It never returns.
func (b *Blinker) Run() {
	b.Setup()
	for {
		b.Cycle()
	}
}

func (b *Blinker) set(level Level) {
	b.hal.WritePin(b.cfg.Pin, level)
	b.logger.Debug("led", slog.String("state", level.String()), slog.Int("pin", b.cfg.Pin))
}
