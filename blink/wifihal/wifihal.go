//go:build rp2040 || rp2350

// Package wifihal implements blink.HAL for the Raspberry Pi Pico W.
//
// On the Pico W the user LED hangs off GPIO 0 of the CYW43439 wireless
// chip rather than a microcontroller pin, so every write goes over the
// chip's SPI bus. The radio itself is never joined to a network.
package wifihal

import (
	"io"
	"log/slog"
	"machine"
	"time"

	"github.com/harveysanders/picoblink/blink"
	"github.com/soypat/cyw43439"
)

// HAL drives CYW43439 GPIO lines.
type HAL struct {
	dev *cyw43439.Device
	log *slog.Logger
}

var _ blink.HAL = (*HAL)(nil)

// New returns an uninitialized HAL. A nil logger discards output.
func New(logger *slog.Logger) *HAL {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.Level(127), // Make temporary logger that does no logging.
		}))
	}
	return &HAL{log: logger}
}

// SetLogger replaces the logger used for device errors.
func (h *HAL) SetLogger(logger *slog.Logger) { h.log = logger }

// Serial returns the writer println and the logger print to.
func (h *HAL) Serial() io.Writer { return machine.Serial }

// InitIO configures serial and brings up the CYW43439. The LED cannot
// work without the chip, so an init failure blocks forever.
func (h *HAL) InitIO() {
	err := machine.Serial.Configure(machine.UARTConfig{})
	if err != nil {
		println("could not configure serial:", err.Error())
	}
	start := time.Now()
	dev := cyw43439.NewPicoWDevice()
	dev.SetLogger(h.log)
	err = dev.Init(cyw43439.DefaultWifiConfig())
	if err != nil {
		printErrForever(h.log, "cyw43439:Init", slog.String("err", err.Error()))
	}
	h.log.Info("cyw43439:Init", slog.Duration("duration", time.Since(start)))
	h.dev = dev
}

// ConfigureOutput checks that pin exists on the chip. CYW43439 GPIOs
// need no direction setup.
func (h *HAL) ConfigureOutput(pin int) {
	if err := checkPin(pin); err != nil {
		h.log.Error("cyw43439:configure", slog.String("err", err.Error()))
	}
}

// WritePin sets a CYW43439 GPIO. Bus errors are logged and dropped.
func (h *HAL) WritePin(pin int, level blink.Level) {
	if h.dev == nil {
		return
	}
	err := h.dev.GPIOSet(uint8(pin), bool(level))
	if err != nil {
		h.log.Error("cyw43439:GPIOSet", slog.Int("pin", pin), slog.String("err", err.Error()))
	}
}

func (h *HAL) DelayMs(ms uint32) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

// printErrForever logs msg @ 1hz. It blocks forever.
func printErrForever(logger *slog.Logger, msg string, args ...any) {
	for {
		logger.Error(msg, args...)
		time.Sleep(time.Second)
	}
}
