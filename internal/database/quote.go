package database

import (
	"strings"

	"gorm.io/gorm"
)

// Quote renders an identifier with the connected dialect's quoting. Raw
// aggregate SQL needs it: lines is a reserved word in MySQL, and gorm only
// rewrites identifiers in builder-generated statements, never in Raw ones.
func Quote(db *gorm.DB, ident string) string {
	var b strings.Builder
	db.Dialector.QuoteTo(&b, ident)
	return b.String()
}
