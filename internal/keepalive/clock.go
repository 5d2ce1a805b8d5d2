package keepalive

import "time"

// Ticker delivers ticks at a fixed period until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock is the time source the loop schedules against.
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// NewTicker wraps time.Ticker, which drops ticks for a slow receiver instead of
// queueing them, so a long tick never causes a second one to run back to back.
func (systemClock) NewTicker(d time.Duration) Ticker {
	return &systemTicker{t: time.NewTicker(d)}
}

type systemTicker struct {
	t *time.Ticker
}

func (s *systemTicker) C() <-chan time.Time { return s.t.C }
func (s *systemTicker) Stop()               { s.t.Stop() }
