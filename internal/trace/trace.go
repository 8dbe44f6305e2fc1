// Package trace emits structured step diagnostics on stderr. It never
// touches the program's own output stream.
package trace

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/sl236/piet/internal/vm"
)

// Tracer logs one line per interpreter step. It implements vm.Tracer and
// is only attached when tracing was requested.
type Tracer struct {
	logger *log.Logger
}

// New creates a tracer writing to w.
func New(w io.Writer) *Tracer {
	return &Tracer{
		logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: false,
			Prefix:          "piet",
		}),
	}
}

// Trace logs the step event.
func (t *Tracer) Trace(ev vm.Event) {
	if ev.Action == "halt" {
		t.logger.Info("halt",
			"step", ev.Step,
			"reason", ev.Reason.String(),
			"depth", ev.Depth,
		)
		return
	}
	t.logger.Info(ev.Action,
		"step", ev.Step,
		"cursor", fmt.Sprintf("%d,%d", ev.Cursor.X, ev.Cursor.Y),
		"dp", ev.DP.String(),
		"cc", ev.CC.String(),
		"value", ev.Value,
		"depth", ev.Depth,
	)
}
