// Package report turns keepalive progress records into console or JSON output.
package report

import (
	"fmt"
	"io"

	"github.com/vedantwpatil/mouse-keepalive/internal/keepalive"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// New returns the reporter for format, writing to w.
func New(format string, w io.Writer, verbose bool) (keepalive.Reporter, error) {
	switch format {
	case FormatText, "":
		return NewConsole(w, verbose), nil
	case FormatJSON:
		return NewJSON(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want %s or %s)", format, FormatText, FormatJSON)
	}
}
