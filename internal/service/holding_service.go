package service

import (
	"github.com/ycwang-tw/etf-dashboard-backend/internal/model"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/repository"
)

// HoldingService handles operations on the base holding snapshot: the fixed
// set of tracked ETFs and their pre-ledger positions.
type HoldingService struct {
	holdingRepo *repository.HoldingRepository
}

// NewHoldingService creates a new HoldingService.
func NewHoldingService(holdingRepo *repository.HoldingRepository) *HoldingService {
	return &HoldingService{
		holdingRepo: holdingRepo,
	}
}

// GetAllHoldings returns all base holdings ordered by symbol.
func (s *HoldingService) GetAllHoldings() ([]model.Holding, error) {
	return s.holdingRepo.GetAll()
}

// GetHolding returns one base holding by symbol.
func (s *HoldingService) GetHolding(symbol string) (model.Holding, error) {
	return s.holdingRepo.Get(symbol)
}

// CreateHolding adds a new ETF to the tracked universe.
func (s *HoldingService) CreateHolding(h model.Holding) (model.Holding, error) {
	if err := s.holdingRepo.Create(h); err != nil {
		return model.Holding{}, err
	}
	return h, nil
}

// UpdateHolding replaces the name, share count and average cost of a holding.
func (s *HoldingService) UpdateHolding(h model.Holding) (model.Holding, error) {
	if err := s.holdingRepo.Update(h); err != nil {
		return model.Holding{}, err
	}
	return h, nil
}

// DeleteHolding removes a holding and all records attached to its symbol.
func (s *HoldingService) DeleteHolding(symbol string) error {
	return s.holdingRepo.Delete(symbol)
}
