package expand

import (
	"errors"
	"fmt"
)

var (
	ErrSubscriptOutOfRange = errors.New("argument subscript out of range")
	ErrLeadingArgs         = errors.New("wrong number of leading arguments")
)

// EmptyDataSourceError reports a data source without rows. A parametrized
// test with no data is a configuration error, not zero passing tests.
type EmptyDataSourceError struct {
	Callable string
}

func (e *EmptyDataSourceError) Error() string {
	return fmt.Sprintf("data source of %s has no rows", e.Callable)
}

// FormatError reports a name pattern placeholder that cannot be rendered for a row.
type FormatError struct {
	Pattern     string
	Placeholder string
	Err         error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("name pattern %q: %s: %v", e.Pattern, e.Placeholder, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }
