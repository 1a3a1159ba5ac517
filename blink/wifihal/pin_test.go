package wifihal

import "testing"

func TestCheckPin(t *testing.T) {
	for pin := 0; pin <= maxPin; pin++ {
		if err := checkPin(pin); err != nil {
			t.Fatalf("checkPin(%d): %v", pin, err)
		}
	}
	if err := checkPin(LEDPin); err != nil {
		t.Fatalf("LEDPin rejected: %v", err)
	}
	for _, pin := range []int{-1, 3, 25} {
		if err := checkPin(pin); err == nil {
			t.Fatalf("checkPin(%d) accepted", pin)
		}
	}
}
