package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// Sentinel errors for constraint violations reported by PostgreSQL.
var (
	ErrDuplicate  = errors.New("duplicate key")
	ErrForeignKey = errors.New("foreign key violation")
)

// translateError maps driver level constraint errors onto package sentinels,
// keeping the driver error in the chain.
func translateError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code.Name() {
	case "unique_violation":
		return fmt.Errorf("%w (%s): %w", ErrDuplicate, pqErr.Constraint, err)
	case "foreign_key_violation":
		return fmt.Errorf("%w (%s): %w", ErrForeignKey, pqErr.Constraint, err)
	}
	return err
}
