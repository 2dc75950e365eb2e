package testutil

import (
	"context"
	"time"
)

// MockQuoter is a mock implementation of pricefeed.Quoter for testing.
// It returns predefined prices instead of hitting the remote market feed.
type MockQuoter struct {
	// LatestPrices maps symbol to the price returned by LatestClose.
	LatestPrices map[string]float64
	// HistoricalPrices maps symbol to the price returned by ClosingBefore.
	HistoricalPrices map[string]float64
	// Err is returned by both query methods when set.
	Err error
	// QueryCount tracks how many times a query method was called.
	QueryCount int
}

// NewMockQuoter creates a mock quoter with no configured prices.
// Unconfigured symbols report as not found.
func NewMockQuoter() *MockQuoter {
	return &MockQuoter{
		LatestPrices:     make(map[string]float64),
		HistoricalPrices: make(map[string]float64),
	}
}

// WithLatest configures the latest close for a symbol.
func (m *MockQuoter) WithLatest(symbol string, price float64) *MockQuoter {
	m.LatestPrices[symbol] = price
	return m
}

// WithHistorical configures the pre-date close for a symbol.
func (m *MockQuoter) WithHistorical(symbol string, price float64) *MockQuoter {
	m.HistoricalPrices[symbol] = price
	return m
}

// WithError configures the mock to fail every query.
func (m *MockQuoter) WithError(err error) *MockQuoter {
	m.Err = err
	return m
}

// LatestClose returns the configured latest price for the symbol.
func (m *MockQuoter) LatestClose(_ context.Context, symbol string) (float64, error) {
	m.QueryCount++
	if m.Err != nil {
		return 0, m.Err
	}
	price, ok := m.LatestPrices[symbol]
	if !ok {
		return 0, errNoQuote(symbol)
	}
	return price, nil
}

// ClosingBefore returns the configured historical price for the symbol.
func (m *MockQuoter) ClosingBefore(_ context.Context, symbol string, _ time.Time) (float64, bool, error) {
	m.QueryCount++
	if m.Err != nil {
		return 0, false, m.Err
	}
	price, ok := m.HistoricalPrices[symbol]
	if !ok {
		return 0, false, nil
	}
	return price, true, nil
}

type errNoQuote string

func (e errNoQuote) Error() string {
	return "no quote configured for symbol " + string(e)
}
