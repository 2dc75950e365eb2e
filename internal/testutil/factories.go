package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/ycwang-tw/etf-dashboard-backend/internal/model"
)

// HoldingBuilder provides a fluent interface for creating test holdings.
//
// Example usage:
//
//	// Simple creation with defaults
//	holding := testutil.NewHolding().Build(t, db)
//
//	// Customized holding
//	holding := testutil.NewHolding().
//	    WithSymbol("0050").
//	    WithShares(1000).
//	    WithAvgCost(150).
//	    Build(t, db)
type HoldingBuilder struct {
	Symbol  string
	Name    string
	Shares  int64
	AvgCost float64
}

// NewHolding creates a HoldingBuilder with sensible defaults.
func NewHolding() *HoldingBuilder {
	return &HoldingBuilder{
		Symbol:  MakeSymbol("00"),
		Name:    "Test ETF",
		Shares:  1000,
		AvgCost: 100,
	}
}

// WithSymbol sets a custom symbol.
func (b *HoldingBuilder) WithSymbol(symbol string) *HoldingBuilder {
	b.Symbol = symbol
	return b
}

// WithName sets a custom display name.
func (b *HoldingBuilder) WithName(name string) *HoldingBuilder {
	b.Name = name
	return b
}

// WithShares sets the share count.
func (b *HoldingBuilder) WithShares(shares int64) *HoldingBuilder {
	b.Shares = shares
	return b
}

// WithAvgCost sets the weighted average cost per share.
func (b *HoldingBuilder) WithAvgCost(avgCost float64) *HoldingBuilder {
	b.AvgCost = avgCost
	return b
}

// Build creates the holding in the database and returns it.
func (b *HoldingBuilder) Build(t *testing.T, db *sql.DB) model.Holding {
	t.Helper()

	query := `
		INSERT INTO holding (symbol, name, shares, avg_cost)
		VALUES (?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.Symbol, b.Name, b.Shares, b.AvgCost)
	if err != nil {
		t.Fatalf("Failed to create test holding: %v", err)
	}

	return model.Holding{
		Symbol:  b.Symbol,
		Name:    b.Name,
		Shares:  b.Shares,
		AvgCost: b.AvgCost,
	}
}

// Convenience functions

// CreateHolding creates a holding with the given symbol and default values.
//
// Example usage:
//
//	holding := testutil.CreateHolding(t, db, "0056")
func CreateHolding(t *testing.T, db *sql.DB, symbol string) model.Holding {
	t.Helper()
	return NewHolding().WithSymbol(symbol).Build(t, db)
}

// CreateLedgerEntry inserts a ledger entry for an existing holding and returns it.
func CreateLedgerEntry(t *testing.T, db *sql.DB, symbol, date string, shares int64, amount, reinvested float64) model.LedgerEntry {
	t.Helper()

	entry := model.LedgerEntry{
		ID:         MakeID(),
		Symbol:     symbol,
		Date:       date,
		Shares:     shares,
		Amount:     amount,
		Reinvested: reinvested,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339Nano),
	}

	query := `
		INSERT INTO ledger_entry (id, symbol, date, shares, amount, reinvested, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, entry.ID, entry.Symbol, entry.Date, entry.Shares, entry.Amount, entry.Reinvested, entry.CreatedAt)
	if err != nil {
		t.Fatalf("Failed to create test ledger entry: %v", err)
	}

	return entry
}

// CreateDividend inserts a dividend event for an existing holding and returns it.
func CreateDividend(t *testing.T, db *sql.DB, symbol, date string, cash float64) model.DividendEvent {
	t.Helper()

	event := model.DividendEvent{
		ID:        MakeID(),
		Symbol:    symbol,
		Date:      date,
		Cash:      cash,
		CreatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}

	query := `
		INSERT INTO dividend (id, symbol, date, cash, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, event.ID, event.Symbol, event.Date, event.Cash, event.Note, event.CreatedAt)
	if err != nil {
		t.Fatalf("Failed to create test dividend: %v", err)
	}

	return event
}

// CreateDCARecord inserts a contribution record for an existing holding and returns it.
func CreateDCARecord(t *testing.T, db *sql.DB, symbol, date string, amount float64) model.DCARecord {
	t.Helper()

	record := model.DCARecord{
		ID:        MakeID(),
		Symbol:    symbol,
		Date:      date,
		Amount:    amount,
		CreatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}

	query := `
		INSERT INTO dca_record (id, symbol, date, amount, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, record.ID, record.Symbol, record.Date, record.Amount, record.CreatedAt)
	if err != nil {
		t.Fatalf("Failed to create test contribution record: %v", err)
	}

	return record
}
