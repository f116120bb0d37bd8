package adapter

import (
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/secuaas/NetSentinel/internal/core/domain"
)

// uniqueViolation is the Postgres error code for a broken unique constraint.
const uniqueViolation = "23505"

// mapWriteError translates a Postgres unique-constraint violation into the
// domain conflict error; anything else passes through untouched.
func mapWriteError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", domain.ErrConflict, pqErr.Constraint)
	}
	return err
}
