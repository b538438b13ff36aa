package report

import (
	"time"

	"github.com/google/uuid"

	"dataprovider/expand"
)

//go:generate go tool stringer -type=Status -linecomment -output=status_string.go

// Status classifies how a test case ended.
type Status int

const (
	StatusPassed  Status = iota // passed
	StatusFailed                // failed
	StatusErrored               // errored
	StatusSkipped               // skipped
)

// Outcome is the result of running one test case.
type Outcome struct {
	// RunID identifies the Reporter run the outcome belongs to.
	RunID    uuid.UUID
	Case     *expand.TestCase
	Status   Status
	Err      error
	Duration time.Duration
}

// Name returns the display name of the case.
func (o Outcome) Name() string {
	if o.Case == nil {
		return ""
	}

	return o.Case.Name
}

// Test returns the name of the parametrized test the case belongs to.
func (o Outcome) Test() string {
	if o.Case == nil || o.Case.Callable == nil {
		return ""
	}

	return o.Case.Callable.Name()
}
