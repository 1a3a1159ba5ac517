//go:build rp2040 || rp2350

// Package machinehal implements blink.HAL on RP2040/RP2350 GPIO using
// TinyGo's machine package.
package machinehal

import (
	"io"
	"machine"
	"time"

	"github.com/harveysanders/picoblink/blink"
)

// HAL drives the microcontroller's own GPIO lines.
type HAL struct{}

var _ blink.HAL = HAL{}

func New() HAL { return HAL{} }

// Serial returns the writer println and the logger print to.
func (HAL) Serial() io.Writer { return machine.Serial }

// InitIO configures the default serial port (USB CDC on the Pico).
func (HAL) InitIO() {
	err := machine.Serial.Configure(machine.UARTConfig{})
	if err != nil {
		println("could not configure serial:", err.Error())
	}
}

func (HAL) ConfigureOutput(pin int) {
	machine.Pin(pin).Configure(machine.PinConfig{Mode: machine.PinOutput})
}

func (HAL) WritePin(pin int, level blink.Level) {
	machine.Pin(pin).Set(bool(level))
}

func (HAL) DelayMs(ms uint32) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}
