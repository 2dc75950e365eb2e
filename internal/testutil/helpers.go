package testutil

import (
	"database/sql"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/engine"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/pricefeed"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/repository"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/service"
)

func NewTestHoldingService(t *testing.T, db *sql.DB) *service.HoldingService {
	t.Helper()

	return service.NewHoldingService(repository.NewHoldingRepository(db))
}

func NewTestLedgerService(t *testing.T, db *sql.DB) *service.LedgerService {
	t.Helper()

	ledgerRepo := repository.NewLedgerRepository(db)
	holdingRepo := repository.NewHoldingRepository(db)

	return service.NewLedgerService(ledgerRepo, holdingRepo)
}

func NewTestDividendService(t *testing.T, db *sql.DB) *service.DividendService {
	t.Helper()

	dividendRepo := repository.NewDividendRepository(db)
	holdingRepo := repository.NewHoldingRepository(db)

	return service.NewDividendService(dividendRepo, holdingRepo)
}

func NewTestDCAService(t *testing.T, db *sql.DB) *service.DCAService {
	t.Helper()

	dcaRepo := repository.NewDCARepository(db)
	holdingRepo := repository.NewHoldingRepository(db)

	return service.NewDCAService(dcaRepo, holdingRepo)
}

// NewTestPriceService creates a PriceService backed by the given quoter.
// Pass a MockQuoter to test cache and fallback behavior without network access.
func NewTestPriceService(t *testing.T, db *sql.DB, quoter pricefeed.Quoter, defaults map[string]float64) *service.PriceService {
	t.Helper()

	return service.NewPriceService(repository.NewPriceRepository(db), quoter, defaults)
}

func NewTestDashboardService(t *testing.T, db *sql.DB, prices *service.PriceService, goal engine.GoalConfig) *service.DashboardService {
	t.Helper()

	return service.NewDashboardService(
		repository.NewHoldingRepository(db),
		repository.NewLedgerRepository(db),
		repository.NewDividendRepository(db),
		repository.NewDCARepository(db),
		prices,
		goal,
	)
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeSymbol generates a ticker-like symbol for testing.
//
// Example usage:
//
//	symbol := testutil.MakeSymbol("00")
//	// Returns: "001234"
func MakeSymbol(base string) string {
	if base == "" {
		base = "00"
	}
	return base + randomDigits(4)
}

// randomDigits generates a random numeric string of specified length.
func randomDigits(length int) string {
	const charset = "0123456789"
	result := make([]byte, length)
	for i := range result {
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
