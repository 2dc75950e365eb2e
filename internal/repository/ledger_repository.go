package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/apperrors"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/model"
)

// LedgerRepository provides data access methods for the ledger_entry table:
// the append-only record of buy transactions.
type LedgerRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewLedgerRepository creates a new LedgerRepository with the provided database connection.
func NewLedgerRepository(db *sql.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// WithTx returns a copy of the repository that runs its statements on the
// given transaction.
func (r *LedgerRepository) WithTx(tx *sql.Tx) *LedgerRepository {
	return &LedgerRepository{
		db: r.db,
		tx: tx,
	}
}

func (r *LedgerRepository) getQuerier() interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	Exec(query string, args ...any) (sql.Result, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

// GetAll retrieves all ledger entries ordered by date then creation time.
// Returns an empty slice if the ledger is empty.
func (r *LedgerRepository) GetAll() ([]model.LedgerEntry, error) {
	rows, err := r.getQuerier().Query(`
        SELECT id, symbol, date, shares, amount, reinvested, created_at
        FROM ledger_entry
        ORDER BY date ASC, created_at ASC
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger_entry table: %w", err)
	}
	defer rows.Close()

	entries := []model.LedgerEntry{}

	for rows.Next() {
		var e model.LedgerEntry
		if err := rows.Scan(&e.ID, &e.Symbol, &e.Date, &e.Shares, &e.Amount, &e.Reinvested, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ledger_entry table results: %w", err)
		}
		e.Date = DateOnly(e.Date)
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger_entry table: %w", err)
	}

	return entries, nil
}

// AggregateBySymbol sums share, amount and reinvested deltas per symbol.
// The aggregation is range-restricted to symbols present in the holding
// table, so entries for unknown symbols can never surface a position.
func (r *LedgerRepository) AggregateBySymbol() (map[string]model.LedgerAggregate, error) {
	rows, err := r.getQuerier().Query(`
        SELECT le.symbol, SUM(le.shares), SUM(le.amount), SUM(le.reinvested)
        FROM ledger_entry le
        INNER JOIN holding h ON h.symbol = le.symbol
        GROUP BY le.symbol
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate ledger_entry table: %w", err)
	}
	defer rows.Close()

	aggregates := make(map[string]model.LedgerAggregate)

	for rows.Next() {
		var symbol string
		var agg model.LedgerAggregate
		if err := rows.Scan(&symbol, &agg.Shares, &agg.Amount, &agg.Reinvested); err != nil {
			return nil, fmt.Errorf("failed to scan ledger aggregate results: %w", err)
		}
		aggregates[symbol] = agg
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger aggregate results: %w", err)
	}

	return aggregates, nil
}

// Create inserts a new ledger entry and returns it with its generated ID.
func (r *LedgerRepository) Create(e model.LedgerEntry) (model.LedgerEntry, error) {
	e.ID = uuid.New().String()

	_, err := r.getQuerier().Exec(`
        INSERT INTO ledger_entry (id, symbol, date, shares, amount, reinvested)
        VALUES (?, ?, ?, ?, ?, ?)
    `, e.ID, e.Symbol, e.Date, e.Shares, e.Amount, e.Reinvested)
	if err != nil {
		return model.LedgerEntry{}, fmt.Errorf("failed to insert ledger entry: %w", err)
	}

	return e, nil
}

// Update replaces the mutable fields of a ledger entry.
func (r *LedgerRepository) Update(e model.LedgerEntry) error {
	result, err := r.getQuerier().Exec(`
        UPDATE ledger_entry
        SET symbol = ?, date = ?, shares = ?, amount = ?, reinvested = ?
        WHERE id = ?
    `, e.Symbol, e.Date, e.Shares, e.Amount, e.Reinvested, e.ID)
	if err != nil {
		return fmt.Errorf("failed to update ledger entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrLedgerEntryNotFound
	}
	return nil
}

// Delete removes a ledger entry by ID.
func (r *LedgerRepository) Delete(id string) error {
	result, err := r.getQuerier().Exec(`DELETE FROM ledger_entry WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete ledger entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrLedgerEntryNotFound
	}
	return nil
}
