package services

import (
	"testing"
	"time"

	"restaurant-api/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every statement on the same in-memory
	// database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

// touchAfterRead simulates a concurrent writer: right after the first read
// of the given row, its updated_at is bumped directly, so the caller's
// guarded write sees a stale version.
func touchAfterRead(t *testing.T, db *gorm.DB, table string, id uint) {
	t.Helper()
	done := false
	err := db.Callback().Query().After("gorm:query").Register("touch_"+table, func(tx *gorm.DB) {
		if done || tx.Statement.Table != table {
			return
		}
		done = true
		db.Exec("UPDATE "+table+" SET updated_at = ? WHERE id = ?", time.Now().Add(time.Hour), id)
	})
	require.NoError(t, err)
}

func seedCustomer(t *testing.T, db *gorm.DB, name string) models.Customer {
	t.Helper()
	customer := models.Customer{Name: name, Phone: "555-0100"}
	require.NoError(t, db.Create(&customer).Error)
	return customer
}

func seedMenuItem(t *testing.T, db *gorm.DB, id uint, name string, price float64) models.MenuItem {
	t.Helper()
	item := models.MenuItem{ID: id, Name: name, Price: price}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
