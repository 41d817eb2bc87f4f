package repository

import (
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

const uniqueViolationCode = "23505"

var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate key")
)

// translateError converte violações de unicidade do Postgres em ErrDuplicateKey
func translateError(err error, message string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
		return errors.Wrapf(ErrDuplicateKey, "%s: %s", message, pqErr.Constraint)
	}

	return errors.Wrap(err, message)
}
