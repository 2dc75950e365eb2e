package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ycwang-tw/etf-dashboard-backend/internal/apperrors"
)

// CachedPrice is a last known price for a symbol with its refresh time.
type CachedPrice struct {
	Symbol    string    `json:"symbol"`
	Price     float64   `json:"price"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PriceRepository provides data access methods for the price_cache table.
type PriceRepository struct {
	db *sql.DB
}

// NewPriceRepository creates a new PriceRepository with the provided database connection.
func NewPriceRepository(db *sql.DB) *PriceRepository {
	return &PriceRepository{db: db}
}

// Get retrieves the cached price for a symbol.
func (r *PriceRepository) Get(symbol string) (CachedPrice, error) {
	var p CachedPrice
	var updated string
	err := r.db.QueryRow(`
        SELECT symbol, price, updated_at
        FROM price_cache
        WHERE symbol = ?
    `, symbol).Scan(&p.Symbol, &p.Price, &updated)
	if err == sql.ErrNoRows {
		return CachedPrice{}, apperrors.ErrPriceNotFound
	}
	if err != nil {
		return CachedPrice{}, fmt.Errorf("failed to query price_cache table: %w", err)
	}

	p.UpdatedAt, err = ParseTime(updated)
	if err != nil {
		return CachedPrice{}, err
	}
	return p, nil
}

// GetAll retrieves all cached prices keyed by symbol.
func (r *PriceRepository) GetAll() (map[string]CachedPrice, error) {
	rows, err := r.db.Query(`SELECT symbol, price, updated_at FROM price_cache`)
	if err != nil {
		return nil, fmt.Errorf("failed to query price_cache table: %w", err)
	}
	defer rows.Close()

	prices := make(map[string]CachedPrice)

	for rows.Next() {
		var p CachedPrice
		var updated string
		if err := rows.Scan(&p.Symbol, &p.Price, &updated); err != nil {
			return nil, fmt.Errorf("failed to scan price_cache table results: %w", err)
		}
		if p.UpdatedAt, err = ParseTime(updated); err != nil {
			return nil, err
		}
		prices[p.Symbol] = p
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating price_cache table: %w", err)
	}

	return prices, nil
}

// Upsert stores the latest price for a symbol, replacing any previous one.
func (r *PriceRepository) Upsert(symbol string, price float64, updatedAt time.Time) error {
	_, err := r.db.Exec(`
        INSERT INTO price_cache (symbol, price, updated_at)
        VALUES (?, ?, ?)
        ON CONFLICT(symbol) DO UPDATE SET price = excluded.price, updated_at = excluded.updated_at
    `, symbol, price, updatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to upsert price: %w", err)
	}
	return nil
}
