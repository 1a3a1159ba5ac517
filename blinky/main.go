//go:build rp2040 || rp2350

// Command blinky blinks the Raspberry Pi Pico's onboard LED (GP25),
// 500ms on and 500ms off, until the board is reset.
package main

import (
	"log/slog"

	"github.com/harveysanders/picoblink/blink"
	"github.com/harveysanders/picoblink/blink/machinehal"
)

func main() {
	hal := machinehal.New()
	logger := slog.New(slog.NewTextHandler(hal.Serial(), &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	blink.New(hal, blink.DefaultConfig(), logger).Run()
}
