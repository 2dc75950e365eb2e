package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ycwang-tw/etf-dashboard-backend/internal/repository"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/testutil"
)

// TestPriceService_CurrentPrice tests the price resolution fallback chain.
//
// WHY: Every dashboard figure depends on a price being available for every
// symbol. The service promises a price under all failure modes: fresh
// cache, live quote, stale cache, configured default, in that order.
func TestPriceService_CurrentPrice(t *testing.T) {
	ctx := context.Background()

	t.Run("serves a fresh cache entry without hitting the feed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		quoter := testutil.NewMockQuoter().WithLatest("0050", 155)
		svc := testutil.NewTestPriceService(t, db, quoter, nil)

		priceRepo := repository.NewPriceRepository(db)
		if err := priceRepo.Upsert("0050", 150, time.Now()); err != nil {
			t.Fatalf("Failed to seed price cache: %v", err)
		}

		price := svc.CurrentPrice(ctx, "0050")

		if price != 150 {
			t.Errorf("Expected cached price 150, got %v", price)
		}
		if quoter.QueryCount != 0 {
			t.Errorf("Expected no feed queries, got %d", quoter.QueryCount)
		}
	})

	t.Run("fetches and caches on cache miss", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		quoter := testutil.NewMockQuoter().WithLatest("0056", 34.5)
		svc := testutil.NewTestPriceService(t, db, quoter, nil)

		price := svc.CurrentPrice(ctx, "0056")

		if price != 34.5 {
			t.Errorf("Expected fetched price 34.5, got %v", price)
		}

		// Fetched price must land in the cache
		cached, err := repository.NewPriceRepository(db).Get("0056")
		if err != nil {
			t.Fatalf("Expected cached price after fetch: %v", err)
		}
		if cached.Price != 34.5 {
			t.Errorf("Expected cached price 34.5, got %v", cached.Price)
		}
	})

	t.Run("falls back to stale cache when the feed fails", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		quoter := testutil.NewMockQuoter().WithError(errors.New("feed unavailable"))
		svc := testutil.NewTestPriceService(t, db, quoter, map[string]float64{"0050": 150})

		priceRepo := repository.NewPriceRepository(db)
		stale := time.Now().Add(-48 * time.Hour)
		if err := priceRepo.Upsert("0050", 148, stale); err != nil {
			t.Fatalf("Failed to seed stale cache: %v", err)
		}

		price := svc.CurrentPrice(ctx, "0050")

		if price != 148 {
			t.Errorf("Expected stale cached price 148, got %v", price)
		}
	})

	t.Run("falls back to the configured default when nothing else works", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		quoter := testutil.NewMockQuoter().WithError(errors.New("feed unavailable"))
		svc := testutil.NewTestPriceService(t, db, quoter, map[string]float64{"00878": 23})

		price := svc.CurrentPrice(ctx, "00878")

		if price != 23 {
			t.Errorf("Expected default price 23, got %v", price)
		}
	})
}

// TestPriceService_RefreshAll tests the concurrent cache refresh.
//
// WHY: The scheduler calls this on its cadence; a single bad symbol must
// not prevent the rest of the universe from refreshing.
func TestPriceService_RefreshAll(t *testing.T) {
	t.Run("caches every fetchable symbol", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		quoter := testutil.NewMockQuoter().
			WithLatest("0050", 151).
			WithLatest("0056", 34)
		svc := testutil.NewTestPriceService(t, db, quoter, nil)

		// "9999" has no quote configured and is skipped, not fatal
		err := svc.RefreshAll(context.Background(), []string{"0050", "0056", "9999"})
		if err != nil {
			t.Fatalf("RefreshAll failed: %v", err)
		}

		testutil.AssertRowCount(t, db, "price_cache", 2)
	})
}

// TestPriceService_ClosingBefore tests the pre-ex close lookup.
//
// WHY: Fill estimation needs the close before the ex-dividend date and must
// treat a failed or empty lookup as "skip this symbol" rather than an error.
func TestPriceService_ClosingBefore(t *testing.T) {
	exDate := time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC)

	t.Run("returns the configured historical close", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		quoter := testutil.NewMockQuoter().WithHistorical("0056", 36.2)
		svc := testutil.NewTestPriceService(t, db, quoter, nil)

		price, ok := svc.ClosingBefore(context.Background(), "0056", exDate)

		if !ok {
			t.Fatal("Expected a close to be found")
		}
		if price != 36.2 {
			t.Errorf("Expected close 36.2, got %v", price)
		}
	})

	t.Run("reports not found on feed failure", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		quoter := testutil.NewMockQuoter().WithError(errors.New("feed unavailable"))
		svc := testutil.NewTestPriceService(t, db, quoter, nil)

		_, ok := svc.ClosingBefore(context.Background(), "0056", exDate)

		if ok {
			t.Error("Expected lookup to report not found")
		}
	})
}
