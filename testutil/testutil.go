// Package testutil provides shared helpers for package tests: an in-memory
// SQLite database migrated with the application schema and small pointer
// helpers.
package testutil

import (
	"testing"

	"github.com/haawaard/Barangay-Document-Checker/config"
	"github.com/haawaard/Barangay-Document-Checker/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupSQLiteTestDB creates an in-memory SQLite database migrated with all
// application models. Each call returns a fresh, isolated database.
func SetupSQLiteTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to SQLite test database: %v", err)
	}

	// Every pooled connection to a plain :memory: DSN is a distinct empty
	// database, so pin the pool to a single connection
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.IndigencyCertificate{},
		&models.BarangayClearance{},
		&models.BusinessPermit{},
		&models.LogEntry{},
		&models.User{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// InitEnums installs the default enum configuration so model validation
// works in tests. Safe to call from every test; the first call wins.
func InitEnums() {
	models.SetEnumConfig(config.GetDefaultEnums())
}

// SeedUser inserts a staff account for login tests.
func SeedUser(t *testing.T, db *gorm.DB, name, password, role string) *models.User {
	t.Helper()

	user := &models.User{
		Name:     name,
		Password: password,
		Role:     role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}
	return user
}
