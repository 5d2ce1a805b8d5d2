// Package keepalive runs the cursor perturbation loop that keeps a machine
// from idling into sleep or a screen lock.
package keepalive

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Cursor is the platform input capability the loop drives.
type Cursor interface {
	Position() (x, y int, err error)
	ScreenSize() (w, h int, err error)
	Move(x, y int) error
}

// Reporter receives the records a run produces.
type Reporter interface {
	ReportStart(opts Options)
	ReportTick(t Tick)
	ReportError(err error)
	ReportComplete(s Summary)
}

// Options configures a Loop. A zero Duration runs until stopped.
type Options struct {
	Interval time.Duration
	Duration time.Duration
	Clock    Clock
}

func (o Options) validate() error {
	if o.Interval <= 0 {
		return &ConfigError{Field: "interval", Reason: fmt.Sprintf("must be positive, got %v", o.Interval)}
	}
	if o.Duration < 0 {
		return &ConfigError{Field: "duration", Reason: fmt.Sprintf("must be positive when set, got %v", o.Duration)}
	}
	return nil
}

// Loop perturbs and restores the cursor once per interval until it terminates.
// A Loop runs at most once.
type Loop struct {
	opts     Options
	cursor   Cursor
	reporter Reporter
	clock    Clock

	mu       sync.Mutex
	state    State
	stopChan chan struct{}
	stopOnce sync.Once
}

// New validates opts and returns an idle Loop.
func New(opts Options, cursor Cursor, reporter Reporter) (*Loop, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if cursor == nil {
		return nil, &ConfigError{Field: "cursor", Reason: "must not be nil"}
	}
	if reporter == nil {
		return nil, &ConfigError{Field: "reporter", Reason: "must not be nil"}
	}
	clock := opts.Clock
	if clock == nil {
		clock = systemClock{}
	}
	return &Loop{
		opts:     opts,
		cursor:   cursor,
		reporter: reporter,
		clock:    clock,
		stopChan: make(chan struct{}),
	}, nil
}

// Stop asks a running loop to terminate gracefully. Calls after the first are no-ops.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
	})
}

// State returns the current lifecycle state.
func (l *Loop) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

func (l *Loop) setState(s State) {
	l.mu.Lock()
	l.state = s
	l.mu.Unlock()
}

// Run blocks until the duration is reached, ctx is cancelled, Stop is called
// or a cursor operation fails. Only the last case returns an error.
func (l *Loop) Run(ctx context.Context) (Summary, error) {
	l.mu.Lock()
	if l.state != Idle {
		l.mu.Unlock()
		return Summary{}, ErrAlreadyStarted
	}
	l.state = Running
	l.mu.Unlock()

	l.reporter.ReportStart(l.opts)

	run := &RunState{StartTime: l.clock.Now()}
	ticker := l.clock.NewTicker(l.opts.Interval)

	for {
		select {
		case <-ctx.Done():
			return l.terminate(run, ticker, Interrupted, nil)
		case <-l.stopChan:
			return l.terminate(run, ticker, Interrupted, nil)
		case <-ticker.C():
			// Both channels can be ready at once and select picks at random.
			if l.stopping(ctx) {
				return l.terminate(run, ticker, Interrupted, nil)
			}

			tick, ok, err := l.tick(ctx, run)
			if err != nil {
				l.reporter.ReportError(err)
				return l.terminate(run, ticker, Failed, err)
			}
			if !ok {
				return l.terminate(run, ticker, Interrupted, nil)
			}
			l.reporter.ReportTick(tick)

			if l.opts.Duration > 0 && tick.Elapsed >= l.opts.Duration {
				return l.terminate(run, ticker, Completed, nil)
			}
		}
	}
}

// tick performs one perturb-and-restore cycle. ok is false when a stop request
// arrived before the cursor was touched.
func (l *Loop) tick(ctx context.Context, run *RunState) (Tick, bool, error) {
	x, y, err := l.cursor.Position()
	if err != nil {
		return Tick{}, false, &CapabilityError{Op: "position", Err: err}
	}
	w, h, err := l.cursor.ScreenSize()
	if err != nil {
		return Tick{}, false, &CapabilityError{Op: "screen size", Err: err}
	}

	// Last cancellation point. Move and restore below always run as a pair so
	// the cursor is never left at the offset position.
	if l.stopping(ctx) {
		return Tick{}, false, nil
	}

	tx, ty := Target(x, y, w, h, run.Moves)
	if err := l.cursor.Move(tx, ty); err != nil {
		return Tick{}, false, &CapabilityError{Op: "move", Err: err}
	}
	run.Moves++
	if err := l.cursor.Move(x, y); err != nil {
		return Tick{}, false, &CapabilityError{Op: "restore", Err: err}
	}

	return Tick{
		Elapsed: run.Elapsed(l.clock.Now()),
		Moves:   run.Moves,
		X:       x,
		Y:       y,
	}, true, nil
}

func (l *Loop) stopping(ctx context.Context) bool {
	if ctx.Err() != nil {
		return true
	}
	select {
	case <-l.stopChan:
		return true
	default:
		return false
	}
}

func (l *Loop) terminate(run *RunState, ticker Ticker, cause Cause, err error) (Summary, error) {
	l.setState(Terminating)
	ticker.Stop()

	summary := Summary{
		Moves:   run.Moves,
		Elapsed: run.Elapsed(l.clock.Now()),
		Cause:   cause,
		Err:     err,
	}
	l.reporter.ReportComplete(summary)

	l.setState(Terminated)
	return summary, err
}
