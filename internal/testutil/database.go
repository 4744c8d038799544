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
// Schema is synchronized with the production migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Goal table
		CREATE TABLE goal (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			target_amount REAL NOT NULL,
			start_date VARCHAR(10),
			deadline VARCHAR(10) NOT NULL,
			priority_weight INTEGER NOT NULL,
			monthly_contribution REAL NOT NULL DEFAULT 0,
			current_amount REAL NOT NULL DEFAULT 0,
			is_emergency_fund BOOLEAN NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		);

		-- Income scenario table
		CREATE TABLE income_scenario (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			monthly_income REAL NOT NULL,
			tax_rate REAL NOT NULL DEFAULT 0,
			fixed_expenses REAL NOT NULL DEFAULT 0,
			scenario_type VARCHAR(20) NOT NULL
		);

		-- Transaction table (quoted because transaction is a reserved keyword)
		CREATE TABLE "transaction" (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			goal_id VARCHAR(36) REFERENCES goal(id),
			category_id VARCHAR(36),
			amount REAL NOT NULL,
			type VARCHAR(20) NOT NULL,
			date VARCHAR(10) NOT NULL,
			description TEXT,
			deviation_type VARCHAR(30),
			planned_amount REAL,
			actual_amount REAL,
			acknowledged BOOLEAN NOT NULL DEFAULT 0,
			acknowledged_at TEXT,
			created_at TEXT NOT NULL
		);

		CREATE INDEX idx_transaction_goal_date ON "transaction"(goal_id, date);

		-- Acknowledged deviation table
		CREATE TABLE acknowledged_deviation (
			goal_id VARCHAR(36) NOT NULL REFERENCES goal(id),
			year INTEGER NOT NULL,
			month INTEGER NOT NULL,
			acknowledged_at TEXT NOT NULL,
			PRIMARY KEY (goal_id, year, month)
		);

		-- Flex event table (goal sets stored as JSON text)
		CREATE TABLE flex_event (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			date VARCHAR(10) NOT NULL,
			reason TEXT NOT NULL,
			amount REAL NOT NULL,
			affected_goals TEXT NOT NULL,
			paused_goals TEXT NOT NULL,
			adjusted_allocations TEXT NOT NULL,
			resume_date VARCHAR(10),
			acknowledged BOOLEAN NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		);

		-- Plan health snapshot table
		CREATE TABLE plan_health_snapshot (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			health_status VARCHAR(20) NOT NULL,
			allocation_efficiency REAL NOT NULL,
			fragility_score REAL NOT NULL,
			slack_months INTEGER NOT NULL,
			deviation_count INTEGER NOT NULL,
			on_track_goals INTEGER NOT NULL,
			behind_goals INTEGER NOT NULL,
			goal_count INTEGER NOT NULL,
			calculated_at TEXT NOT NULL
		);

		-- Application settings table
		CREATE TABLE app_setting (
			key VARCHAR(100) NOT NULL PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);
	`

	_, err := db.Exec(schema)
	return err
}
