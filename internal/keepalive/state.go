package keepalive

import "time"

// State is the lifecycle position of a Loop.
type State int

const (
	Idle State = iota
	Running
	Terminating
	Terminated
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Terminating:
		return "terminating"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Cause records why a run ended.
type Cause int

const (
	// Completed means the duration budget was reached.
	Completed Cause = iota
	// Interrupted means a signal, Stop or context cancellation ended the run.
	Interrupted
	// Failed means a cursor operation returned an error.
	Failed
)

func (c Cause) String() string {
	switch c {
	case Completed:
		return "completed"
	case Interrupted:
		return "interrupted"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// RunState is owned by a single Run call and only touched by its tick and
// termination handlers.
type RunState struct {
	StartTime time.Time
	Moves     int
}

func (r *RunState) Elapsed(now time.Time) time.Duration {
	return now.Sub(r.StartTime)
}

// Tick is the progress record emitted after every completed perturbation.
// X and Y are the position the cursor was restored to.
type Tick struct {
	Elapsed time.Duration
	Moves   int
	X       int
	Y       int
}

// Summary is emitted exactly once when a run ends.
type Summary struct {
	Moves   int
	Elapsed time.Duration
	Cause   Cause
	Err     error
}

// Seconds floors d to whole seconds, the unit every record is reported in.
func Seconds(d time.Duration) int {
	return int(d / time.Second)
}
