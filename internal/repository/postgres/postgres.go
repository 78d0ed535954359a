package postgres

import (
	"github.com/pkg/errors"
	"github.com/uptrace/bun/driver/pgdriver"
)

// IsUniqueViolation reports whether err is a postgres unique-constraint
// violation (SQLSTATE 23505). The punch-in and daily base-location
// invariants are enforced by unique indexes and surface through here.
func IsUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C') == "23505"
	}
	return false
}
