package database

import (
	"fmt"
	"testing"
	"time"

	"finance-ledger/internal/config"
	"finance-ledger/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestTransaction(t *testing.T, db *DB, date time.Time, merchant string, amount float64, category string) *models.Transaction {
	t.Helper()

	txn := &models.Transaction{
		Date:     date,
		Merchant: merchant,
		Amount:   decimal.NewFromFloat(amount),
		Category: category,
		Source:   models.SourceManual,
	}

	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return txn
}

func CreateTestBudget(t *testing.T, db *DB, category string, monthlyLimit float64) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		Category:     category,
		MonthlyLimit: decimal.NewFromFloat(monthlyLimit),
	}

	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}

	return budget
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"transactions",
		"budgets",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
