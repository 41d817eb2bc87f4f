package insighting

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPeriod     = errors.New("invalid period")
	ErrFetchScope        = errors.New("error fetching user accounts")
	ErrDatabaseOperation = errors.New("database operation error")
)

// InsightError carrega o código da API junto do erro base
type InsightError struct {
	Err     error
	Code    string
	Details string
}

func (e *InsightError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *InsightError) Unwrap() error {
	return e.Err
}

func NewInsightError(err error, code string, details string) *InsightError {
	return &InsightError{Err: err, Code: code, Details: details}
}
