package validation

import (
	"github.com/ycwang-tw/etf-dashboard-backend/internal/api/request"
)

// ValidateCreateDividend validates a dividend creation request.
//
// Required fields:
//   - symbol: non-empty
//   - date: YYYY-MM-DD
//   - cash: non-negative
//
// The note is optional and unconstrained.
func ValidateCreateDividend(req request.CreateDividendRequest) error {
	return validateDividendFields(req.Symbol, req.Date, req.Cash)
}

// ValidateUpdateDividend validates a dividend edit, with the same
// constraints as creation.
func ValidateUpdateDividend(req request.UpdateDividendRequest) error {
	return validateDividendFields(req.Symbol, req.Date, req.Cash)
}

func validateDividendFields(symbol, date string, cash float64) error {
	errors := make(map[string]string)

	requireSymbol(errors, symbol)
	requireDate(errors, "date", date)

	if cash < 0 {
		errors["cash"] = "cash must not be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
