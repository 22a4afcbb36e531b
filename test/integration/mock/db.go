// Package mock provides in-memory stand-ins for external dependencies of
// the integration suite.
package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/spendlens/backend/internal/integration/persistence/model"
)

var (
	once sync.Once
	db   *Db
)

// Db wraps a shared in-memory sqlite connection migrated to the
// application schema. The production queries are written portably, so the
// suite exercises the same SQL the postgres deployment runs.
type Db struct {
	DbConn *gorm.DB
}

// NewDb returns the process-wide test database, opening and migrating it
// on first use.
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
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: false,
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := dbConn.AutoMigrate(allModels()...); err != nil {
		panic("failed to migrate test database. err: " + err.Error())
	}

	return &Db{DbConn: dbConn}
}

// Reset deletes every row from every table, in dependency order.
func (d *Db) Reset() error {
	tables := []any{
		&model.TransactionModel{},
		&model.BudgetModel{},
		&model.AccountModel{},
		&model.CategoryModel{},
		&model.UserModel{},
	}
	for _, table := range tables {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error
		if err != nil {
			return fmt.Errorf("failed to reset table %T: %w", table, err)
		}
	}
	return nil
}

func allModels() []any {
	return []any{
		&model.UserModel{},
		&model.AccountModel{},
		&model.CategoryModel{},
		&model.TransactionModel{},
		&model.BudgetModel{},
	}
}
