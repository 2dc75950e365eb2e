package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ycwang-tw/etf-dashboard-backend/internal/engine"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/model"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/repository"
)

// DashboardService assembles the data snapshots the engine consumes and
// turns them into dashboard and fill-progress responses. All calculation is
// delegated to the engine package; this layer only does I/O.
type DashboardService struct {
	holdingRepo  *repository.HoldingRepository
	ledgerRepo   *repository.LedgerRepository
	dividendRepo *repository.DividendRepository
	dcaRepo      *repository.DCARepository
	prices       *PriceService
	goal         engine.GoalConfig
	now          func() time.Time
}

// NewDashboardService creates a new DashboardService. goal carries the
// process-wide savings-goal assumptions loaded at startup.
func NewDashboardService(
	holdingRepo *repository.HoldingRepository,
	ledgerRepo *repository.LedgerRepository,
	dividendRepo *repository.DividendRepository,
	dcaRepo *repository.DCARepository,
	prices *PriceService,
	goal engine.GoalConfig,
) *DashboardService {
	return &DashboardService{
		holdingRepo:  holdingRepo,
		ledgerRepo:   ledgerRepo,
		dividendRepo: dividendRepo,
		dcaRepo:      dcaRepo,
		prices:       prices,
		goal:         goal,
		now:          time.Now,
	}
}

// BuildDashboard loads a fresh snapshot of holdings, ledger, dividends and
// contributions, resolves a current price per symbol and hands everything
// to the engine.
func (s *DashboardService) BuildDashboard(ctx context.Context) (model.Dashboard, error) {
	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return model.Dashboard{}, err
	}

	dashboard := engine.BuildDashboard(snap, s.goal)
	dashboard.GeneratedAt = s.now()
	return dashboard, nil
}

// FillProgress computes the dividend fill estimate for every position that
// has a dividend history and a resolvable pre-ex close. Positions missing
// either are omitted, not reported as errors; fill data is advisory.
func (s *DashboardService) FillProgress(ctx context.Context) ([]model.FillInfo, error) {
	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	positions := engine.Merge(snap.Holdings, snap.Ledger)

	fills := []model.FillInfo{}
	for _, pos := range positions {
		last, ok := engine.LastEvent(snap.Dividends, pos.Symbol)
		if !ok {
			continue
		}

		exDate, err := repository.ParseTime(last.Date)
		if err != nil {
			continue
		}

		preExClose, ok := s.prices.ClosingBefore(ctx, pos.Symbol, exDate)
		if !ok {
			continue
		}

		if info, ok := engine.EstimateFill(pos, snap.Prices[pos.Symbol], last, preExClose); ok {
			fills = append(fills, info)
		}
	}

	return fills, nil
}

func (s *DashboardService) loadSnapshot(ctx context.Context) (engine.Snapshot, error) {
	holdings, err := s.holdingRepo.GetAll()
	if err != nil {
		return engine.Snapshot{}, fmt.Errorf("failed to load holdings: %w", err)
	}

	ledger, err := s.ledgerRepo.AggregateBySymbol()
	if err != nil {
		return engine.Snapshot{}, fmt.Errorf("failed to aggregate ledger: %w", err)
	}

	dividends, err := s.dividendRepo.GetAll()
	if err != nil {
		return engine.Snapshot{}, fmt.Errorf("failed to load dividends: %w", err)
	}

	dcaTotal, err := s.dcaRepo.Total()
	if err != nil {
		return engine.Snapshot{}, fmt.Errorf("failed to total contributions: %w", err)
	}

	symbols := make([]string, 0, len(holdings))
	for _, h := range holdings {
		symbols = append(symbols, h.Symbol)
	}

	return engine.Snapshot{
		Holdings:  holdings,
		Ledger:    ledger,
		Dividends: dividends,
		Prices:    s.prices.CurrentPrices(ctx, symbols),
		DCATotal:  dcaTotal,
		Year:      s.now().Year(),
	}, nil
}
