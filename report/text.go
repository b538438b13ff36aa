package report

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

// TextSink prints one line per outcome, colored by status.
type TextSink struct {
	w      io.Writer
	colors map[Status]*color.Color
}

type TextOption func(*TextSink)

// WithoutColor forces plain output regardless of the terminal.
func WithoutColor() TextOption {
	return func(s *TextSink) {
		for _, c := range s.colors {
			c.DisableColor()
		}
	}
}

// WithColor forces colored output, even when w is not a terminal.
func WithColor() TextOption {
	return func(s *TextSink) {
		for _, c := range s.colors {
			c.EnableColor()
		}
	}
}

func NewTextSink(w io.Writer, opts ...TextOption) *TextSink {
	s := &TextSink{
		w: w,
		colors: map[Status]*color.Color{
			StatusPassed:  color.New(color.FgGreen),
			StatusFailed:  color.New(color.FgRed),
			StatusErrored: color.New(color.FgMagenta, color.Bold),
			StatusSkipped: color.New(color.FgYellow),
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *TextSink) Report(o Outcome) {
	label := statusLabel(o.Status)
	if c, ok := s.colors[o.Status]; ok {
		label = c.Sprint(label)
	}

	line := fmt.Sprintf("%s %s (%s)", label, o.Name(), formatDuration(o.Duration))
	if o.Err != nil {
		line += ": " + o.Err.Error()
	}

	_, _ = fmt.Fprintln(s.w, line)
}

func statusLabel(s Status) string {
	switch s {
	case StatusPassed:
		return "PASS"
	case StatusFailed:
		return "FAIL"
	case StatusErrored:
		return "ERROR"
	case StatusSkipped:
		return "SKIP"
	default:
		return "UNKNOWN"
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}

	return d.Truncate(time.Millisecond).String()
}
