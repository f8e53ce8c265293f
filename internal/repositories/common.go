package repositories

import (
	"errors"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// ErrNoFieldsToUpdate signals a partial update whose payload contained no
// recognized fields. A caller must be able to tell this apart from "no row
// matched": the record may exist and is left byte-for-byte unchanged.
var ErrNoFieldsToUpdate = errors.New("no fields to update")

// nowUTC is the single timestamp source for writes. The store never
// generates timestamps itself.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// isUniqueViolation reports whether err is a unique-index violation from
// the driver. The unique indexes are the real uniqueness guarantee; any
// pre-insert existence check only exists for the friendlier message, so
// a racing insert that slips past one still has to map to a conflict.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) &&
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}

// boolToInt pins the stored representation of flags to 0/1. Several
// columns are read by tooling that expects integers, so boolean patch
// values are converted explicitly rather than relying on driver coercion.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
