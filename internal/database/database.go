package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// Registers the pure-Go "sqlite" database/sql driver.
	_ "modernc.org/sqlite"
)

// Open connects to PostgreSQL when the DSN looks like a postgres URL and
// falls back to the pure-Go SQLite driver otherwise, so local runs need
// nothing but a file path.
func Open(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("connecting to PostgreSQL")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("using SQLite storage at", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}
