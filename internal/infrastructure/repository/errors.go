package repository

import "strings"

// IsUniqueViolation reports whether the SQLite driver rejected a write on a
// unique index. Services pre-check codes before writing; this backstops the
// race between check and insert.
func IsUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
