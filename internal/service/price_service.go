package service

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ycwang-tw/etf-dashboard-backend/internal/pricefeed"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/repository"
)

// cacheMaxAge is how long a cached price is served without consulting the
// remote feed. The scheduler refreshes the cache on its own cadence, so a
// page render normally never waits on Yahoo.
const cacheMaxAge = time.Hour

// PriceService resolves current prices for tracked symbols. Lookups degrade
// gracefully: fresh cache, then the remote feed, then a stale cache entry,
// then the configured per-symbol default. A caller is never handed a
// missing price and never sees an error.
type PriceService struct {
	priceRepo *repository.PriceRepository
	quoter    pricefeed.Quoter
	defaults  map[string]float64
	now       func() time.Time
}

// NewPriceService creates a new PriceService. defaults maps each symbol to
// the fallback price used when no quote can be obtained at all.
func NewPriceService(priceRepo *repository.PriceRepository, quoter pricefeed.Quoter, defaults map[string]float64) *PriceService {
	return &PriceService{
		priceRepo: priceRepo,
		quoter:    quoter,
		defaults:  defaults,
		now:       time.Now,
	}
}

// CurrentPrice returns the best known price for a symbol.
func (s *PriceService) CurrentPrice(ctx context.Context, symbol string) float64 {
	cached, err := s.priceRepo.Get(symbol)
	if err == nil && s.now().Sub(cached.UpdatedAt) < cacheMaxAge {
		return cached.Price
	}

	price, fetchErr := s.quoter.LatestClose(ctx, symbol)
	if fetchErr == nil {
		if err := s.priceRepo.Upsert(symbol, price, s.now()); err != nil {
			log.Printf("Failed to cache price for %s: %v", symbol, err)
		}
		return price
	}
	log.Printf("Failed to fetch price for %s: %v", symbol, fetchErr)

	// Stale cache beats a static default.
	if err == nil {
		return cached.Price
	}

	fallback := s.defaults[symbol]
	log.Printf("Using default price for %s: %v", symbol, fallback)
	return fallback
}

// CurrentPrices resolves a price for every given symbol.
func (s *PriceService) CurrentPrices(ctx context.Context, symbols []string) map[string]float64 {
	prices := make(map[string]float64, len(symbols))
	for _, symbol := range symbols {
		prices[symbol] = s.CurrentPrice(ctx, symbol)
	}
	return prices
}

// ClosingBefore returns the last trading-day close strictly before the
// given date. Feed failures are treated the same as an empty lookback
// window: the caller skips the symbol.
func (s *PriceService) ClosingBefore(ctx context.Context, symbol string, date time.Time) (float64, bool) {
	price, ok, err := s.quoter.ClosingBefore(ctx, symbol, date)
	if err != nil {
		log.Printf("Failed to fetch pre-ex close for %s: %v", symbol, err)
		return 0, false
	}
	return price, ok
}

// RefreshAll fetches and caches the latest close for every given symbol
// concurrently. Individual failures are logged and skipped; the cache keeps
// its previous entry for those symbols.
func (s *PriceService) RefreshAll(ctx context.Context, symbols []string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for _, symbol := range symbols {
		symbol := symbol
		g.Go(func() error {
			price, err := s.quoter.LatestClose(ctx, symbol)
			if err != nil {
				log.Printf("Price refresh skipped %s: %v", symbol, err)
				return nil
			}
			return s.priceRepo.Upsert(symbol, price, s.now())
		})
	}

	return g.Wait()
}
