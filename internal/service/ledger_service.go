package service

import (
	"fmt"

	"github.com/ycwang-tw/etf-dashboard-backend/internal/apperrors"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/model"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/repository"
)

// LedgerService handles operations on the buy-transaction ledger.
type LedgerService struct {
	ledgerRepo  *repository.LedgerRepository
	holdingRepo *repository.HoldingRepository
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(ledgerRepo *repository.LedgerRepository, holdingRepo *repository.HoldingRepository) *LedgerService {
	return &LedgerService{
		ledgerRepo:  ledgerRepo,
		holdingRepo: holdingRepo,
	}
}

// GetAllEntries returns the raw ledger for audit and listing.
func (s *LedgerService) GetAllEntries() ([]model.LedgerEntry, error) {
	return s.ledgerRepo.GetAll()
}

// Aggregate returns the per-symbol ledger sums consumed by the position merge.
func (s *LedgerService) Aggregate() (map[string]model.LedgerAggregate, error) {
	return s.ledgerRepo.AggregateBySymbol()
}

// CreateEntry records a buy against an existing holding. The ledger cannot
// create instruments, so the symbol must already be part of the holding
// universe.
func (s *LedgerService) CreateEntry(e model.LedgerEntry) (model.LedgerEntry, error) {
	if err := s.requireHolding(e.Symbol); err != nil {
		return model.LedgerEntry{}, err
	}
	return s.ledgerRepo.Create(e)
}

// UpdateEntry replaces the fields of an existing ledger entry.
func (s *LedgerService) UpdateEntry(e model.LedgerEntry) (model.LedgerEntry, error) {
	if err := s.requireHolding(e.Symbol); err != nil {
		return model.LedgerEntry{}, err
	}
	if err := s.ledgerRepo.Update(e); err != nil {
		return model.LedgerEntry{}, err
	}
	return e, nil
}

// DeleteEntry removes a ledger entry by ID.
func (s *LedgerService) DeleteEntry(id string) error {
	return s.ledgerRepo.Delete(id)
}

func (s *LedgerService) requireHolding(symbol string) error {
	exists, err := s.holdingRepo.Exists(symbol)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", apperrors.ErrUnknownSymbol, symbol)
	}
	return nil
}
