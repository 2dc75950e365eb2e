// Package scheduler runs the periodic background jobs: currently just the
// price cache refresh.
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/ycwang-tw/etf-dashboard-backend/internal/repository"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/service"
)

// Scheduler owns the cron runner and the jobs registered on it.
type Scheduler struct {
	cron        *cron.Cron
	holdingRepo *repository.HoldingRepository
	prices      *service.PriceService
}

// New creates a Scheduler with the price refresh job registered on the
// given cron spec (e.g. "@hourly").
func New(spec string, holdingRepo *repository.HoldingRepository, prices *service.PriceService) (*Scheduler, error) {
	s := &Scheduler{
		cron:        cron.New(),
		holdingRepo: holdingRepo,
		prices:      prices,
	}

	if _, err := s.cron.AddFunc(spec, s.refreshPrices); err != nil {
		return nil, err
	}

	return s, nil
}

// Start launches the cron runner and primes the cache once immediately so
// the first dashboard render after startup does not block on the feed.
func (s *Scheduler) Start() {
	go s.refreshPrices()
	s.cron.Start()
}

// Stop halts the cron runner and waits for any running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) refreshPrices() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	holdings, err := s.holdingRepo.GetAll()
	if err != nil {
		log.Printf("Price refresh failed to load holdings: %v", err)
		return
	}

	symbols := make([]string, 0, len(holdings))
	for _, h := range holdings {
		symbols = append(symbols, h.Symbol)
	}

	if err := s.prices.RefreshAll(ctx, symbols); err != nil {
		log.Printf("Price refresh failed: %v", err)
		return
	}

	log.Printf("Price cache refreshed for %d symbols", len(symbols))
}
