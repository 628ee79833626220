package database

import (
	"embed"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"
)

// One directory per dialect: reserved-word quoting, auto-increment syntax
// and statement batching all differ between postgres and mysql.
//
//go:embed migrations/postgres/*.sql migrations/mysql/*.sql
var migrationFiles embed.FS

// Migrate applies the embedded schema migrations to the connected database.
func Migrate(db *gorm.DB) error {
	config, err := NewConfig()
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	var driver migratedb.Driver
	switch config.Driver {
	case "postgres":
		driver, err = migratepostgres.WithInstance(sqlDB, &migratepostgres.Config{})
	case "mysql":
		driver, err = migratemysql.WithInstance(sqlDB, &migratemysql.Config{})
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (expected postgres or mysql)", config.Driver)
	}
	if err != nil {
		return err
	}

	source, err := iofs.New(migrationFiles, "migrations/"+config.Driver)
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", source, config.DBName, driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}
