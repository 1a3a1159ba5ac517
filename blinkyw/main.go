//go:build rp2040 || rp2350

// Command blinkyw blinks the Raspberry Pi Pico W's onboard LED, which
// is wired to the CYW43439 wireless chip instead of GP25.
//
//	tinygo flash -target=pico -stack-size=8kb ./blinkyw
package main

import (
	"log/slog"

	"github.com/harveysanders/picoblink/blink"
	"github.com/harveysanders/picoblink/blink/wifihal"
)

func main() {
	hal := wifihal.New(nil)
	logger := slog.New(slog.NewTextHandler(hal.Serial(), &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	hal.SetLogger(logger)

	cfg := blink.DefaultConfig()
	cfg.Pin = wifihal.LEDPin
	blink.New(hal, cfg, logger).Run()
}
