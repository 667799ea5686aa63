package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestExactCompare(t *testing.T) {
	tests := []struct {
		name      string
		dialector gorm.Dialector
		op        string
		want      string
	}{
		{name: "postgres equality", dialector: postgres.New(postgres.Config{}), op: "=", want: "hr_email = ?"},
		{name: "mysql equality", dialector: mysql.New(mysql.Config{}), op: "=", want: "hr_email = CAST(? AS BINARY)"},
		{name: "mysql inequality", dialector: mysql.New(mysql.Config{}), op: "<>", want: "hr_email <> CAST(? AS BINARY)"},
		{name: "no dialector", op: "=", want: "hr_email = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &gorm.DB{Config: &gorm.Config{Dialector: tt.dialector}}
			assert.Equal(t, tt.want, exactCompare(db, "hr_email", tt.op))
		})
	}
}
