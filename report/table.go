package report

import (
	"io"
	"strconv"
	"sync"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// TableSink buffers outcomes and renders them as a table on Flush.
type TableSink struct {
	w io.Writer

	mu       sync.Mutex
	outcomes []Outcome
}

func NewTableSink(w io.Writer) *TableSink {
	return &TableSink{w: w}
}

func (s *TableSink) Report(o Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.outcomes = append(s.outcomes, o)
}

// Flush renders the buffered outcomes and clears the buffer.
func (s *TableSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := table.NewWriter()
	t.SetOutputMirror(s.w)
	t.SetTitle("Parametrized test results")
	t.AppendHeader(table.Row{"#", "Case", "Status", "Duration", "Error"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})

	var counts Counts
	for _, o := range s.outcomes {
		counts.add(o.Status)

		index, errText := "", ""
		if o.Case != nil {
			index = strconv.Itoa(o.Case.Index)
		}
		if o.Err != nil {
			errText = o.Err.Error()
		}

		t.AppendRow(table.Row{index, o.Name(), statusLabel(o.Status), formatDuration(o.Duration), errText})
	}

	t.AppendFooter(table.Row{
		"", "TOTAL " + strconv.Itoa(counts.Total()),
		"passed " + strconv.Itoa(counts.Passed),
		"",
		"failed " + strconv.Itoa(counts.Failed) +
			", errored " + strconv.Itoa(counts.Errored) +
			", skipped " + strconv.Itoa(counts.Skipped),
	})

	t.Render()
	s.outcomes = nil

	return nil
}
