package keepalive

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

type fakeTicker struct {
	ch      chan time.Time
	period  time.Duration
	stopped atomic.Bool
}

func (t *fakeTicker) C() <-chan time.Time { return t.ch }
func (t *fakeTicker) Stop()               { t.stopped.Store(true) }

// fakeClock only moves when the test says so. Tick blocks until the loop has
// received the tick, which means the previous tick has fully completed.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	ticker *fakeTicker
	armed  chan struct{}
}

func newFakeClock() *fakeClock {
	return &fakeClock{
		now:   time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC),
		armed: make(chan struct{}),
	}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) NewTicker(d time.Duration) Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ticker = &fakeTicker{ch: make(chan time.Time), period: d}
	close(c.armed)
	return c.ticker
}

func (c *fakeClock) Advance(d time.Duration) {
	<-c.armed
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func (c *fakeClock) Tick() {
	<-c.armed
	c.mu.Lock()
	c.now = c.now.Add(c.ticker.period)
	now := c.now
	ch := c.ticker.ch
	c.mu.Unlock()
	ch <- now
}

func (c *fakeClock) tickerStopped() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ticker != nil && c.ticker.stopped.Load()
}

type point struct{ x, y int }

var errNoSession = errors.New("no display session")

type fakeCursor struct {
	mu         sync.Mutex
	pos        point
	w, h       int
	moves      []point
	failMoveAt int // 1-based Move call that fails, 0 for never
	failSize   bool

	// Hooks run after the call, outside the lock. n is the 1-based Move count.
	onSize func()
	onMove func(n int)
}

func newFakeCursor(x, y, w, h int) *fakeCursor {
	return &fakeCursor{pos: point{x, y}, w: w, h: h}
}

func (c *fakeCursor) Position() (int, int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pos.x, c.pos.y, nil
}

func (c *fakeCursor) ScreenSize() (int, int, error) {
	c.mu.Lock()
	if c.failSize {
		c.mu.Unlock()
		return 0, 0, errNoSession
	}
	w, h, hook := c.w, c.h, c.onSize
	c.mu.Unlock()

	if hook != nil {
		hook()
	}
	return w, h, nil
}

func (c *fakeCursor) Move(x, y int) error {
	c.mu.Lock()
	if c.failMoveAt > 0 && len(c.moves)+1 == c.failMoveAt {
		c.mu.Unlock()
		return errNoSession
	}
	c.moves = append(c.moves, point{x, y})
	c.pos = point{x, y}
	n, hook := len(c.moves), c.onMove
	c.mu.Unlock()

	if hook != nil {
		hook(n)
	}
	return nil
}

func (c *fakeCursor) setScreen(w, h int) {
	c.mu.Lock()
	c.w, c.h = w, h
	c.mu.Unlock()
}

func (c *fakeCursor) position() point {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pos
}

func (c *fakeCursor) history() []point {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]point(nil), c.moves...)
}

type recordingReporter struct {
	mu        sync.Mutex
	starts    int
	errs      []error
	summaries []Summary
	ticks     chan Tick
}

func newRecordingReporter() *recordingReporter {
	return &recordingReporter{ticks: make(chan Tick, 64)}
}

func (r *recordingReporter) ReportStart(Options) {
	r.mu.Lock()
	r.starts++
	r.mu.Unlock()
}

func (r *recordingReporter) ReportTick(t Tick) { r.ticks <- t }

func (r *recordingReporter) ReportError(err error) {
	r.mu.Lock()
	r.errs = append(r.errs, err)
	r.mu.Unlock()
}

func (r *recordingReporter) ReportComplete(s Summary) {
	r.mu.Lock()
	r.summaries = append(r.summaries, s)
	r.mu.Unlock()
}

func (r *recordingReporter) completed() []Summary {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Summary(nil), r.summaries...)
}

func (r *recordingReporter) drainTicks() []Tick {
	var out []Tick
	for {
		select {
		case t := <-r.ticks:
			out = append(out, t)
		default:
			return out
		}
	}
}
