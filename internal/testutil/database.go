package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the embedded goose migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Holding table
		CREATE TABLE IF NOT EXISTS holding (
			symbol VARCHAR(10) NOT NULL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			shares INTEGER NOT NULL DEFAULT 0,
			avg_cost FLOAT NOT NULL DEFAULT 0
		);

		-- Ledger entry table
		CREATE TABLE IF NOT EXISTS ledger_entry (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			symbol VARCHAR(10) NOT NULL,
			date VARCHAR(10) NOT NULL,
			shares INTEGER NOT NULL,
			amount FLOAT NOT NULL,
			reinvested FLOAT NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(symbol) REFERENCES holding(symbol) ON DELETE CASCADE
		);

		-- Dividend table
		CREATE TABLE IF NOT EXISTS dividend (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			symbol VARCHAR(10) NOT NULL,
			date VARCHAR(10) NOT NULL,
			cash FLOAT NOT NULL,
			note TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(symbol) REFERENCES holding(symbol) ON DELETE CASCADE
		);

		-- DCA record table
		CREATE TABLE IF NOT EXISTS dca_record (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			symbol VARCHAR(10) NOT NULL,
			date VARCHAR(10) NOT NULL,
			amount FLOAT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(symbol) REFERENCES holding(symbol) ON DELETE CASCADE
		);

		-- Price cache table
		CREATE TABLE IF NOT EXISTS price_cache (
			symbol VARCHAR(10) NOT NULL PRIMARY KEY,
			price FLOAT NOT NULL,
			updated_at DATETIME NOT NULL
		);

		-- Indexes for performance
		CREATE INDEX IF NOT EXISTS ix_ledger_entry_symbol ON ledger_entry(symbol);
		CREATE INDEX IF NOT EXISTS ix_ledger_entry_date ON ledger_entry(date);
		CREATE INDEX IF NOT EXISTS ix_dividend_symbol ON dividend(symbol);
		CREATE INDEX IF NOT EXISTS ix_dividend_date ON dividend(date);
		CREATE INDEX IF NOT EXISTS ix_dca_record_symbol ON dca_record(symbol);
		CREATE INDEX IF NOT EXISTS ix_dca_record_date ON dca_record(date);
	`

	_, err := db.Exec(schema)
	return err
}

// CleanDatabase truncates all tables in dependency order.
// Useful for reusing the same database across multiple tests.
func CleanDatabase(t *testing.T, db *sql.DB) {
	t.Helper()

	// Order matters: delete children before parents due to foreign keys
	tables := []string{
		"ledger_entry",
		"dividend",
		"dca_record",
		"price_cache",
		"holding",
	}

	for _, table := range tables {
		query := "DELETE FROM " + table
		if _, err := db.Exec(query); err != nil {
			t.Fatalf("Failed to clean table %s: %v", table, err)
		}
	}
}

// CountRows returns the number of rows in a table.
// Useful for assertions in tests.
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var count int
	query := "SELECT COUNT(*) FROM " + table
	err := db.QueryRow(query).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}

	return count
}

// AssertRowCount asserts that a table has the expected number of rows.
//
// Example usage:
//
//	testutil.AssertRowCount(t, db, "holding", 2)
func AssertRowCount(t *testing.T, db *sql.DB, table string, expected int) {
	t.Helper()

	actual := CountRows(t, db, table)
	if actual != expected {
		t.Errorf("Expected %d rows in %s, got %d", expected, table, actual)
	}
}
