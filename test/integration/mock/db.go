// Package mock provides shared test doubles for the integration suite.
package mock

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/budget-tracker/backend/internal/integration/persistence/model"
)

var (
	once sync.Once
	db   *Db
)

// Db wraps a shared in-memory SQLite database used by every scenario.
type Db struct {
	DbConn *gorm.DB
	models []any
}

// NewDb opens the shared in-memory database on first use and migrates the
// schema. Subsequent calls return the same instance.
func NewDb() *Db {
	once.Do(func() {
		db = open()
	})
	return db
}

func open() *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// SQLite handles one writer at a time.
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database: " + err.Error())
	}

	newDb := &Db{
		DbConn: dbConn,
		models: []any{
			&model.CategoryModel{},
			&model.TransactionModel{},
		},
	}

	if err := dbConn.AutoMigrate(newDb.models...); err != nil {
		panic(fmt.Sprintf("failed to migrate schema: %v", err))
	}

	return newDb
}

// Reset clears every table and resets the autoincrement counters so each
// scenario starts from a pristine store with predictable IDs.
func (d *Db) Reset() error {
	// Transactions reference categories; delete them first.
	for i := len(d.models) - 1; i >= 0; i-- {
		m := d.models[i]

		if err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
			return fmt.Errorf("failed to clear table for %T: %w", m, err)
		}

		stmt := &gorm.Statement{DB: d.DbConn}
		if err := stmt.Parse(m); err != nil {
			return err
		}
		err := d.DbConn.Exec("DELETE FROM sqlite_sequence WHERE name = ?", stmt.Schema.Table).Error
		if err != nil && !strings.Contains(err.Error(), "no such table: sqlite_sequence") {
			return err
		}
	}
	return nil
}
