package repository_test

import (
	"testing"

	"github.com/ycwang-tw/etf-dashboard-backend/internal/model"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/repository"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/testutil"
)

// TestLedgerRepository_AggregateBySymbol tests the per-symbol ledger sums.
//
// WHY: The position merge consumes these sums directly; a wrong grouping or
// a leaked unknown symbol would silently distort every dashboard figure.
func TestLedgerRepository_AggregateBySymbol(t *testing.T) {
	t.Run("sums entries per symbol", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewLedgerRepository(db)

		testutil.CreateHolding(t, db, "0050")
		testutil.CreateHolding(t, db, "0056")

		testutil.CreateLedgerEntry(t, db, "0050", "2025-01-10", 100, 15000, 0)
		testutil.CreateLedgerEntry(t, db, "0050", "2025-02-10", 200, 31000, 1000)
		testutil.CreateLedgerEntry(t, db, "0056", "2025-01-20", 1000, 33000, 0)

		aggregates, err := repo.AggregateBySymbol()
		if err != nil {
			t.Fatalf("AggregateBySymbol failed: %v", err)
		}

		if len(aggregates) != 2 {
			t.Fatalf("Expected 2 aggregates, got %d", len(aggregates))
		}

		agg := aggregates["0050"]
		if agg.Shares != 300 {
			t.Errorf("Expected 300 shares for 0050, got %d", agg.Shares)
		}
		if agg.Amount != 46000 {
			t.Errorf("Expected amount 46000 for 0050, got %v", agg.Amount)
		}
		if agg.Reinvested != 1000 {
			t.Errorf("Expected reinvested 1000 for 0050, got %v", agg.Reinvested)
		}

		if aggregates["0056"].Shares != 1000 {
			t.Errorf("Expected 1000 shares for 0056, got %d", aggregates["0056"].Shares)
		}
	})

	t.Run("returns empty map for empty ledger", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewLedgerRepository(db)

		aggregates, err := repo.AggregateBySymbol()
		if err != nil {
			t.Fatalf("AggregateBySymbol failed: %v", err)
		}

		if len(aggregates) != 0 {
			t.Errorf("Expected no aggregates, got %d", len(aggregates))
		}
	})
}

// TestLedgerRepository_GetAll tests retrieval ordering.
//
// WHY: Entries are displayed chronologically; date strings sort
// lexicographically so the database ordering must match calendar order.
func TestLedgerRepository_GetAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewLedgerRepository(db)

	testutil.CreateHolding(t, db, "0050")

	// Inserted out of calendar order on purpose
	testutil.CreateLedgerEntry(t, db, "0050", "2025-03-01", 100, 15000, 0)
	testutil.CreateLedgerEntry(t, db, "0050", "2025-01-01", 100, 14000, 0)
	testutil.CreateLedgerEntry(t, db, "0050", "2025-02-01", 100, 14500, 0)

	entries, err := repo.GetAll()
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}

	dates := []string{entries[0].Date, entries[1].Date, entries[2].Date}
	expected := []string{"2025-01-01", "2025-02-01", "2025-03-01"}
	for i := range expected {
		if dates[i] != expected[i] {
			t.Errorf("Expected entry %d on %s, got %s", i, expected[i], dates[i])
		}
	}
}

// TestLedgerRepository_UpdateDelete tests the RowsAffected-based miss detection.
func TestLedgerRepository_UpdateDelete(t *testing.T) {
	t.Run("update of missing entry reports not found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewLedgerRepository(db)

		err := repo.Update(model.LedgerEntry{ID: testutil.MakeID(), Symbol: "0050", Date: "2025-01-01"})
		if err == nil {
			t.Fatal("Expected error updating missing entry")
		}
	})

	t.Run("delete removes the entry", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewLedgerRepository(db)

		testutil.CreateHolding(t, db, "0050")
		entry := testutil.CreateLedgerEntry(t, db, "0050", "2025-01-01", 100, 15000, 0)

		if err := repo.Delete(entry.ID); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}

		testutil.AssertRowCount(t, db, "ledger_entry", 0)
	})
}
