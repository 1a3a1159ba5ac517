package sim

import (
	"testing"
	"time"

	"github.com/harveysanders/picoblink/blink"
)

func TestBoard_VirtualClock(t *testing.T) {
	b := New()
	b.DelayMs(250)
	b.DelayMs(750)
	if got := b.Now(); got != time.Second {
		t.Fatalf("Now()=%v, want 1s", got)
	}
	ev := b.Events()
	if len(ev) != 2 || ev[0].At != 0 || ev[1].At != 250*time.Millisecond {
		t.Fatalf("delay events: %+v", ev)
	}
}

func TestBoard_LevelAt(t *testing.T) {
	b := New()
	b.ConfigureOutput(4)
	if _, ok := b.LevelAt(4, 0); ok {
		t.Fatalf("level reported before any write")
	}
	b.WritePin(4, blink.High)
	b.DelayMs(10)
	b.WritePin(4, blink.Low)
	b.WritePin(5, blink.High)

	if l, ok := b.LevelAt(4, 0); !ok || l != blink.High {
		t.Fatalf("LevelAt(4, 0)=%v,%v", l, ok)
	}
	if l, ok := b.LevelAt(4, 9*time.Millisecond); !ok || l != blink.High {
		t.Fatalf("LevelAt(4, 9ms)=%v,%v", l, ok)
	}
	if l, ok := b.LevelAt(4, 10*time.Millisecond); !ok || l != blink.Low {
		t.Fatalf("LevelAt(4, 10ms)=%v,%v", l, ok)
	}
	if len(b.Writes()) != 3 {
		t.Fatalf("Writes()=%d, want 3", len(b.Writes()))
	}
	if !b.IsOutput(4) || b.IsOutput(5) {
		t.Fatalf("IsOutput mismatch")
	}
}

func TestBoard_StopAfter(t *testing.T) {
	b := New()
	b.StopAfter(20 * time.Millisecond)
	done := make(chan struct{})
	var delays int
	go func() {
		defer close(done)
		for {
			b.DelayMs(10)
			delays++
		}
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("goroutine not stopped")
	}
	if delays != 2 {
		t.Fatalf("completed %d delays, want 2", delays)
	}
	if got := b.Now(); got != 20*time.Millisecond {
		t.Fatalf("Now()=%v, want 20ms", got)
	}
}

func TestKind_String(t *testing.T) {
	if InitIO.String() != "init-io" || Configure.String() != "configure" ||
		Write.String() != "write" || Delay.String() != "delay" || Kind(99).String() != "unknown" {
		t.Fatalf("Kind.String failed")
	}
}
