package pace

import (
	"testing"
	"time"
)

func TestRunTicks(t *testing.T) {
	action := make(chan Action)
	tick := make(chan struct{})
	go Run(time.Millisecond, action, tick)
	defer close(action)

	for i := 0; i < 3; i++ {
		select {
		case <-tick:
		case <-time.After(time.Second):
			t.Fatalf("Expected tick %d within a second", i)
		}
	}
}

func TestStopPausesTicks(t *testing.T) {
	action := make(chan Action)
	tick := make(chan struct{})
	go Run(5*time.Millisecond, action, tick)
	defer close(action)

	action <- Stop
	select {
	case <-tick:
		t.Errorf("Expected no tick while stopped")
	case <-time.After(50 * time.Millisecond):
	}

	action <- Start
	select {
	case <-tick:
	case <-time.After(time.Second):
		t.Errorf("Expected ticking to resume after Start")
	}
}
