package database

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestQuoteFollowsDialect(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	assert.Equal(t, "`lines`", Quote(db, "lines"))
}

func TestQuoteMySQLReservedWord(t *testing.T) {
	// the dialector alone carries the quoting rules, no connection needed
	db := &gorm.DB{Config: &gorm.Config{Dialector: mysql.New(mysql.Config{})}}
	assert.Equal(t, "`lines`", Quote(db, "lines"))
}

func TestQuotePostgres(t *testing.T) {
	db := &gorm.DB{Config: &gorm.Config{Dialector: postgres.New(postgres.Config{})}}
	assert.Equal(t, `"lines"`, Quote(db, "lines"))
}
