package service

import (
	"fmt"

	"github.com/ycwang-tw/etf-dashboard-backend/internal/apperrors"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/model"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/repository"
)

// DCAService handles operations on periodic contribution records.
type DCAService struct {
	dcaRepo     *repository.DCARepository
	holdingRepo *repository.HoldingRepository
}

// NewDCAService creates a new DCAService.
func NewDCAService(dcaRepo *repository.DCARepository, holdingRepo *repository.HoldingRepository) *DCAService {
	return &DCAService{
		dcaRepo:     dcaRepo,
		holdingRepo: holdingRepo,
	}
}

// GetAllRecords returns all contribution records ordered by date.
func (s *DCAService) GetAllRecords() ([]model.DCARecord, error) {
	return s.dcaRepo.GetAll()
}

// Total returns the sum of all contributions.
func (s *DCAService) Total() (float64, error) {
	return s.dcaRepo.Total()
}

// TotalByYear returns the sum of contributions in one calendar year.
func (s *DCAService) TotalByYear(year int) (float64, error) {
	return s.dcaRepo.TotalByYear(year)
}

// CreateRecord records a contribution against an existing holding.
func (s *DCAService) CreateRecord(rec model.DCARecord) (model.DCARecord, error) {
	exists, err := s.holdingRepo.Exists(rec.Symbol)
	if err != nil {
		return model.DCARecord{}, err
	}
	if !exists {
		return model.DCARecord{}, fmt.Errorf("%w: %s", apperrors.ErrUnknownSymbol, rec.Symbol)
	}
	return s.dcaRepo.Create(rec)
}

// DeleteRecord removes a contribution record by ID.
func (s *DCAService) DeleteRecord(id string) error {
	return s.dcaRepo.Delete(id)
}
