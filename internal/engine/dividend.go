package engine

import (
	"strconv"

	"github.com/ycwang-tw/etf-dashboard-backend/internal/model"
)

// TotalBySymbol sums the cash of all dividend events for one symbol.
// Returns 0 when the symbol has no dividend history.
func TotalBySymbol(events []model.DividendEvent, symbol string) float64 {
	var total float64
	for _, e := range events {
		if e.Symbol == symbol {
			total += e.Cash
		}
	}
	return total
}

// TotalByYear sums the cash of all dividend events whose date falls in the
// given calendar year. The year is taken from the leading 4-digit component
// of the YYYY-MM-DD date; events with malformed dates are skipped.
func TotalByYear(events []model.DividendEvent, year int) float64 {
	var total float64
	for _, e := range events {
		if len(e.Date) < 4 {
			continue
		}
		y, err := strconv.Atoi(e.Date[:4])
		if err != nil {
			continue
		}
		if y == year {
			total += e.Cash
		}
	}
	return total
}

// LastEvent returns the most recent dividend event for a symbol, or false
// when the symbol has no dividend history. Dates are YYYY-MM-DD strings, so
// a plain string comparison is chronological; among events sharing the
// greatest date the one appearing latest in the slice wins, which for
// store-loaded events is the most recently created.
func LastEvent(events []model.DividendEvent, symbol string) (model.DividendEvent, bool) {
	var last model.DividendEvent
	found := false
	for _, e := range events {
		if e.Symbol != symbol {
			continue
		}
		if !found || e.Date >= last.Date {
			last = e
			found = true
		}
	}
	return last, found
}
