package wifihal

import (
	"errors"
	"strconv"
)

// LEDPin is the CYW43439 GPIO wired to the Pico W's onboard LED.
const LEDPin = 0

// maxPin is the highest GPIO exposed by the CYW43439.
const maxPin = 2

func checkPin(pin int) error {
	if pin < 0 || pin > maxPin {
		return errors.New("cyw43439 gpio out of range: " + strconv.Itoa(pin))
	}
	return nil
}
