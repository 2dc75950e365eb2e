package repository

import (
	"database/sql"
	"fmt"

	"github.com/ycwang-tw/etf-dashboard-backend/internal/apperrors"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/model"
)

// HoldingRepository provides data access methods for the holding table:
// the base position snapshot the ledger is reconciled against.
type HoldingRepository struct {
	db *sql.DB
}

// NewHoldingRepository creates a new HoldingRepository with the provided database connection.
func NewHoldingRepository(db *sql.DB) *HoldingRepository {
	return &HoldingRepository{db: db}
}

// GetAll retrieves all holdings ordered by symbol.
// Returns an empty slice if no holdings exist.
func (r *HoldingRepository) GetAll() ([]model.Holding, error) {
	rows, err := r.db.Query(`
        SELECT symbol, name, shares, avg_cost
        FROM holding
        ORDER BY symbol ASC
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query holding table: %w", err)
	}
	defer rows.Close()

	holdings := []model.Holding{}

	for rows.Next() {
		var h model.Holding
		if err := rows.Scan(&h.Symbol, &h.Name, &h.Shares, &h.AvgCost); err != nil {
			return nil, fmt.Errorf("failed to scan holding table results: %w", err)
		}
		holdings = append(holdings, h)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating holding table: %w", err)
	}

	return holdings, nil
}

// Get retrieves one holding by symbol.
func (r *HoldingRepository) Get(symbol string) (model.Holding, error) {
	var h model.Holding
	err := r.db.QueryRow(`
        SELECT symbol, name, shares, avg_cost
        FROM holding
        WHERE symbol = ?
    `, symbol).Scan(&h.Symbol, &h.Name, &h.Shares, &h.AvgCost)
	if err == sql.ErrNoRows {
		return model.Holding{}, apperrors.ErrHoldingNotFound
	}
	if err != nil {
		return model.Holding{}, fmt.Errorf("failed to query holding table: %w", err)
	}
	return h, nil
}

// Exists reports whether a holding exists for the symbol.
func (r *HoldingRepository) Exists(symbol string) (bool, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM holding WHERE symbol = ?`, symbol).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to query holding table: %w", err)
	}
	return count > 0, nil
}

// Create inserts a new holding.
// Returns ErrDuplicateEntry if the symbol is already tracked.
func (r *HoldingRepository) Create(h model.Holding) error {
	exists, err := r.Exists(h.Symbol)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", apperrors.ErrDuplicateEntry, h.Symbol)
	}

	_, err = r.db.Exec(`
        INSERT INTO holding (symbol, name, shares, avg_cost)
        VALUES (?, ?, ?, ?)
    `, h.Symbol, h.Name, h.Shares, h.AvgCost)
	if err != nil {
		return fmt.Errorf("failed to insert holding: %w", err)
	}
	return nil
}

// Update replaces the mutable fields of a holding.
// Returns ErrHoldingNotFound if the symbol does not exist.
func (r *HoldingRepository) Update(h model.Holding) error {
	result, err := r.db.Exec(`
        UPDATE holding
        SET name = ?, shares = ?, avg_cost = ?
        WHERE symbol = ?
    `, h.Name, h.Shares, h.AvgCost, h.Symbol)
	if err != nil {
		return fmt.Errorf("failed to update holding: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrHoldingNotFound
	}
	return nil
}

// Delete removes a holding and, through foreign keys, its ledger, dividend
// and DCA records.
func (r *HoldingRepository) Delete(symbol string) error {
	result, err := r.db.Exec(`DELETE FROM holding WHERE symbol = ?`, symbol)
	if err != nil {
		return fmt.Errorf("failed to delete holding: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrHoldingNotFound
	}
	return nil
}
