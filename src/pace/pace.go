package pace

import "time"

type Action int

const (
	Start Action = iota
	Stop
)

// Run paces the simulation loop. Each elapsed interval emits one tick; Stop
// pauses the clock until the next Start. Runs until the action channel
// closes.
func Run(interval time.Duration, action <-chan Action, tick chan<- struct{}) {
	t := time.NewTimer(interval)
	for {
		select {
		case a, ok := <-action:
			if !ok {
				t.Stop()
				return
			}
			switch a {
			case Start:
				resetTimer(t, interval)
			case Stop:
				t.Stop()
			}
		case <-t.C:
			tick <- struct{}{}
			t.Reset(interval)
		}
	}
}

// Stops the timer, draining a pending fire, and restarts it.
func resetTimer(t *time.Timer, interval time.Duration) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	t.Reset(interval)
}
