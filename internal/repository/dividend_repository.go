package repository

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/apperrors"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/model"
)

// DividendRepository provides data access methods for the dividend table.
type DividendRepository struct {
	db *sql.DB
}

// NewDividendRepository creates a new DividendRepository with the provided database connection.
func NewDividendRepository(db *sql.DB) *DividendRepository {
	return &DividendRepository{db: db}
}

// GetAll retrieves all dividend events in creation order. The dividend
// aggregation relies on this ordering to break same-date ties in favour of
// the most recently created event.
func (r *DividendRepository) GetAll() ([]model.DividendEvent, error) {
	rows, err := r.db.Query(`
        SELECT id, symbol, date, cash, COALESCE(note, ''), created_at
        FROM dividend
        ORDER BY created_at ASC, id ASC
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query dividend table: %w", err)
	}
	defer rows.Close()

	events := []model.DividendEvent{}

	for rows.Next() {
		var e model.DividendEvent
		if err := rows.Scan(&e.ID, &e.Symbol, &e.Date, &e.Cash, &e.Note, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan dividend table results: %w", err)
		}
		e.Date = DateOnly(e.Date)
		events = append(events, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating dividend table: %w", err)
	}

	return events, nil
}

// Create inserts a new dividend event and returns it with its generated ID.
func (r *DividendRepository) Create(e model.DividendEvent) (model.DividendEvent, error) {
	e.ID = uuid.New().String()

	_, err := r.db.Exec(`
        INSERT INTO dividend (id, symbol, date, cash, note)
        VALUES (?, ?, ?, ?, ?)
    `, e.ID, e.Symbol, e.Date, e.Cash, e.Note)
	if err != nil {
		return model.DividendEvent{}, fmt.Errorf("failed to insert dividend: %w", err)
	}

	return e, nil
}

// Update replaces the mutable fields of a dividend event.
func (r *DividendRepository) Update(e model.DividendEvent) error {
	result, err := r.db.Exec(`
        UPDATE dividend
        SET symbol = ?, date = ?, cash = ?, note = ?
        WHERE id = ?
    `, e.Symbol, e.Date, e.Cash, e.Note, e.ID)
	if err != nil {
		return fmt.Errorf("failed to update dividend: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrDividendNotFound
	}
	return nil
}

// Delete removes a dividend event by ID.
func (r *DividendRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM dividend WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete dividend: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrDividendNotFound
	}
	return nil
}
