package repository

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/apperrors"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/model"
)

// DCARepository provides data access methods for the dca_record table:
// the periodic contribution history.
type DCARepository struct {
	db *sql.DB
}

// NewDCARepository creates a new DCARepository with the provided database connection.
func NewDCARepository(db *sql.DB) *DCARepository {
	return &DCARepository{db: db}
}

// GetAll retrieves all contribution records ordered by date.
func (r *DCARepository) GetAll() ([]model.DCARecord, error) {
	rows, err := r.db.Query(`
        SELECT id, symbol, date, amount, created_at
        FROM dca_record
        ORDER BY date ASC, created_at ASC
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query dca_record table: %w", err)
	}
	defer rows.Close()

	records := []model.DCARecord{}

	for rows.Next() {
		var rec model.DCARecord
		if err := rows.Scan(&rec.ID, &rec.Symbol, &rec.Date, &rec.Amount, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan dca_record table results: %w", err)
		}
		rec.Date = DateOnly(rec.Date)
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating dca_record table: %w", err)
	}

	return records, nil
}

// Total returns the sum of all contribution amounts, or 0 with no records.
func (r *DCARepository) Total() (float64, error) {
	var total float64
	err := r.db.QueryRow(`SELECT COALESCE(SUM(amount), 0) FROM dca_record`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to total dca_record table: %w", err)
	}
	return total, nil
}

// TotalByYear returns the sum of contribution amounts in one calendar year.
func (r *DCARepository) TotalByYear(year int) (float64, error) {
	var total float64
	err := r.db.QueryRow(`
        SELECT COALESCE(SUM(amount), 0)
        FROM dca_record
        WHERE SUBSTR(date, 1, 4) = ?
    `, fmt.Sprintf("%04d", year)).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to total dca_record table: %w", err)
	}
	return total, nil
}

// Create inserts a new contribution record and returns it with its generated ID.
func (r *DCARepository) Create(rec model.DCARecord) (model.DCARecord, error) {
	rec.ID = uuid.New().String()

	_, err := r.db.Exec(`
        INSERT INTO dca_record (id, symbol, date, amount)
        VALUES (?, ?, ?, ?)
    `, rec.ID, rec.Symbol, rec.Date, rec.Amount)
	if err != nil {
		return model.DCARecord{}, fmt.Errorf("failed to insert dca record: %w", err)
	}

	return rec, nil
}

// Delete removes a contribution record by ID.
func (r *DCARepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM dca_record WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete dca record: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrDCARecordNotFound
	}
	return nil
}
