package service

import (
	"fmt"

	"github.com/ycwang-tw/etf-dashboard-backend/internal/apperrors"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/engine"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/model"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/repository"
)

// DividendService handles operations on cash dividend events.
type DividendService struct {
	dividendRepo *repository.DividendRepository
	holdingRepo  *repository.HoldingRepository
}

// NewDividendService creates a new DividendService.
func NewDividendService(dividendRepo *repository.DividendRepository, holdingRepo *repository.HoldingRepository) *DividendService {
	return &DividendService{
		dividendRepo: dividendRepo,
		holdingRepo:  holdingRepo,
	}
}

// GetAllDividends returns all dividend events in creation order.
func (s *DividendService) GetAllDividends() ([]model.DividendEvent, error) {
	return s.dividendRepo.GetAll()
}

// TotalBySymbol returns the total cash received for one symbol.
func (s *DividendService) TotalBySymbol(symbol string) (float64, error) {
	events, err := s.dividendRepo.GetAll()
	if err != nil {
		return 0, err
	}
	return engine.TotalBySymbol(events, symbol), nil
}

// TotalByYear returns the total cash received in one calendar year.
func (s *DividendService) TotalByYear(year int) (float64, error) {
	events, err := s.dividendRepo.GetAll()
	if err != nil {
		return 0, err
	}
	return engine.TotalByYear(events, year), nil
}

// CreateDividend records a dividend against an existing holding.
func (s *DividendService) CreateDividend(e model.DividendEvent) (model.DividendEvent, error) {
	if err := s.requireHolding(e.Symbol); err != nil {
		return model.DividendEvent{}, err
	}
	return s.dividendRepo.Create(e)
}

// UpdateDividend replaces the fields of an existing dividend event.
func (s *DividendService) UpdateDividend(e model.DividendEvent) (model.DividendEvent, error) {
	if err := s.requireHolding(e.Symbol); err != nil {
		return model.DividendEvent{}, err
	}
	if err := s.dividendRepo.Update(e); err != nil {
		return model.DividendEvent{}, err
	}
	return e, nil
}

// DeleteDividend removes a dividend event by ID.
func (s *DividendService) DeleteDividend(id string) error {
	return s.dividendRepo.Delete(id)
}

func (s *DividendService) requireHolding(symbol string) error {
	exists, err := s.holdingRepo.Exists(symbol)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", apperrors.ErrUnknownSymbol, symbol)
	}
	return nil
}
