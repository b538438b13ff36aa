package report

import (
	"slices"
	"sync"
)

// Counts tallies outcomes by status.
type Counts struct {
	Passed  int
	Failed  int
	Errored int
	Skipped int
}

func (c Counts) Total() int { return c.Passed + c.Failed + c.Errored + c.Skipped }

func (c *Counts) add(s Status) {
	switch s {
	case StatusPassed:
		c.Passed++
	case StatusFailed:
		c.Failed++
	case StatusErrored:
		c.Errored++
	case StatusSkipped:
		c.Skipped++
	}
}

// Collector keeps every outcome it receives.
type Collector struct {
	mu       sync.Mutex
	outcomes []Outcome
}

func NewCollector() *Collector { return &Collector{} }

func (c *Collector) Report(o Outcome) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.outcomes = append(c.outcomes, o)
}

// Outcomes returns a copy of the received outcomes in arrival order.
func (c *Collector) Outcomes() []Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Clone(c.outcomes)
}

func (c *Collector) Counts() Counts {
	c.mu.Lock()
	defer c.mu.Unlock()

	var counts Counts
	for _, o := range c.outcomes {
		counts.add(o.Status)
	}

	return counts
}
