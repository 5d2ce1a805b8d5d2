package cursor

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/go-vgo/robotgo"
	"github.com/kbinani/screenshot"
)

// ErrNoDisplay means there is no graphical session to inject input into.
var ErrNoDisplay = errors.New("no active display session")

// Robot reads and moves the system cursor through robotgo.
type Robot struct{}

// NewRobot checks that a display session is reachable before handing out a
// Robot. robotgo aborts the process instead of returning an error when the
// X server is missing, so the check has to happen up front.
func NewRobot() (*Robot, error) {
	if runtime.GOOS == "linux" && os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		return nil, fmt.Errorf("%w: neither DISPLAY nor WAYLAND_DISPLAY is set", ErrNoDisplay)
	}
	if n := screenshot.NumActiveDisplays(); n < 1 {
		return nil, fmt.Errorf("%w: found %d active displays", ErrNoDisplay, n)
	}
	return &Robot{}, nil
}

func (r *Robot) Position() (x, y int, err error) {
	err = guard("read position", func() {
		x, y = robotgo.Location()
	})
	return x, y, err
}

func (r *Robot) ScreenSize() (w, h int, err error) {
	err = guard("read screen size", func() {
		w, h = robotgo.GetScreenSize()
	})
	if err != nil {
		return 0, 0, err
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%w: screen reported as %dx%d", ErrNoDisplay, w, h)
	}
	return w, h, nil
}

func (r *Robot) Move(x, y int) error {
	return guard("move", func() {
		robotgo.Move(x, y)
	})
}

// guard turns a panic raised in the native layer into an error.
func guard(op string, fn func()) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%s: %v", op, rec)
		}
	}()
	fn()
	return nil
}
