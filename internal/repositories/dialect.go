package repositories

import (
	"fmt"

	"gorm.io/gorm"
)

// exactCompare строит условие "column op ?" с побайтовым сравнением.
// В MySQL колляции по умолчанию не различают регистр, поэтому аргумент
// приводится к BINARY.
func exactCompare(db *gorm.DB, column, op string) string {
	if db.Dialector != nil && db.Dialector.Name() == "mysql" {
		return fmt.Sprintf("%s %s CAST(? AS BINARY)", column, op)
	}
	return fmt.Sprintf("%s %s ?", column, op)
}
