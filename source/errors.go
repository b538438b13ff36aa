package source

import (
	"errors"
	"fmt"
)

var (
	ErrNilSource   = errors.New("data source is nil")
	ErrNilRow      = errors.New("row is nil")
	ErrNotSequence = errors.New("data source is not a sequence")
	ErrBadSupplier = errors.New("data supplier must be func() T or func() (T, error)")
)

// MalformedDataSourceError reports a structurally invalid data source.
type MalformedDataSourceError struct {
	// Row is the offending row, -1 when the source as a whole is invalid.
	Row int
	Err error
}

func (e *MalformedDataSourceError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("malformed data source: %v", e.Err)
	}

	return fmt.Sprintf("malformed data source: row %d: %v", e.Row, e.Err)
}

func (e *MalformedDataSourceError) Unwrap() error { return e.Err }

func malformed(row int, err error) *MalformedDataSourceError {
	return &MalformedDataSourceError{Row: row, Err: err}
}
