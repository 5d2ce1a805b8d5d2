package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/vedantwpatil/mouse-keepalive/internal/config"
	"github.com/vedantwpatil/mouse-keepalive/internal/cursor"
	"github.com/vedantwpatil/mouse-keepalive/internal/hotkey"
	"github.com/vedantwpatil/mouse-keepalive/internal/keepalive"
	"github.com/vedantwpatil/mouse-keepalive/internal/report"
)

type cursorFactory func() (keepalive.Cursor, error)

func robotCursor() (keepalive.Cursor, error) {
	r, err := cursor.NewRobot()
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Application wires the configured cursor, reporter and loop to the process
// signals.
type Application struct {
	config    *config.Config
	newCursor cursorFactory
	out       io.Writer
	signals   chan os.Signal
	ctx       context.Context
	cancel    context.CancelFunc

	mu   sync.Mutex
	loop *keepalive.Loop
}

// NewApplication returns an Application that has not started yet.
func NewApplication(cfg *config.Config, newCursor cursorFactory, out io.Writer) *Application {
	ctx, cancel := context.WithCancel(context.Background())
	return &Application{
		config:    cfg,
		newCursor: newCursor,
		out:       out,
		signals:   make(chan os.Signal, 1),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Run blocks until the loop terminates. A nil error means the run completed
// or was interrupted.
func (app *Application) Run() error {
	defer app.cancel()

	signal.Notify(app.signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(app.signals)
	go app.handleSignals()

	var combo []string
	if app.config.Hotkey.Stop != "" {
		keys, err := hotkey.ParseCombo(app.config.Hotkey.Stop)
		if err != nil {
			return fmt.Errorf("%w: %v", config.ErrInvalid, err)
		}
		combo = keys
	}

	reporter, err := report.New(app.config.Output.Format, app.out, app.config.Output.Verbose)
	if err != nil {
		return fmt.Errorf("%w: %v", config.ErrInvalid, err)
	}

	c, err := app.newCursor()
	if err != nil {
		return fmt.Errorf("cursor unavailable: %w", err)
	}

	loop, err := keepalive.New(keepalive.Options{
		Interval: app.config.IntervalDuration(),
		Duration: app.config.RunDuration(),
	}, c, reporter)
	if err != nil {
		return err
	}
	app.mu.Lock()
	app.loop = loop
	app.mu.Unlock()

	var wg sync.WaitGroup
	if combo != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hotkey.Listen(app.ctx, combo, loop.Stop)
		}()
	}

	// A signal that arrived during startup has already cancelled ctx, so the
	// loop reports an interrupted run without ticking.
	_, err = loop.Run(app.ctx)
	app.cancel()
	wg.Wait()
	return err
}

// handleSignals turns every SIGINT/SIGTERM into a stop request. The loop
// ignores all but the first.
func (app *Application) handleSignals() {
	for {
		select {
		case <-app.ctx.Done():
			return
		case <-app.signals:
			app.stop()
		}
	}
}

// stop cancels startup when no loop exists yet.
func (app *Application) stop() {
	app.mu.Lock()
	defer app.mu.Unlock()
	if app.loop == nil {
		app.cancel()
		return
	}
	app.loop.Stop()
}

func main() {
	os.Exit(Execute(os.Args[1:]))
}
