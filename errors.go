package gopaginate

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is returned when Paginate is called without a *gorm.DB.
	// No query is issued.
	ErrConfiguration = errors.New("gopaginate: query builder is required")

	// ErrInvalidRequest is returned when a Request does not pass validation.
	// No query is issued.
	ErrInvalidRequest = errors.New("gopaginate: invalid request")
)

// QueryKind names one of the two queries issued per page.
type QueryKind string

const (
	QueryData  QueryKind = "data"
	QueryCount QueryKind = "count"
)

// ExecutionError wraps a failure of the data or count query as reported by
// the underlying database.
type ExecutionError struct {
	Query QueryKind
	Table string
	Err   error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("gopaginate: %s query on '%s' failed: %v", e.Query, e.Table, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

func invalidRequest(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
}
