package validation

import (
	"github.com/ycwang-tw/etf-dashboard-backend/internal/api/request"
)

// ValidateCreateLedgerEntry validates a buy-recording request.
//
// Required fields:
//   - symbol: non-empty
//   - date: YYYY-MM-DD
//   - shares: non-negative (buys only; the model has no sells)
//   - amount: non-negative
//   - reinvested: 0 <= reinvested <= amount
//
// The reinvested cap is enforced here and nowhere else: the engine trusts
// ledger aggregates to be sanitized.
func ValidateCreateLedgerEntry(req request.CreateLedgerEntryRequest) error {
	return validateLedgerFields(req.Symbol, req.Date, req.Shares, req.Amount, req.Reinvested)
}

// ValidateUpdateLedgerEntry validates a ledger entry edit, with the same
// constraints as creation.
func ValidateUpdateLedgerEntry(req request.UpdateLedgerEntryRequest) error {
	return validateLedgerFields(req.Symbol, req.Date, req.Shares, req.Amount, req.Reinvested)
}

func validateLedgerFields(symbol, date string, shares int64, amount, reinvested float64) error {
	errors := make(map[string]string)

	requireSymbol(errors, symbol)
	requireDate(errors, "date", date)

	if shares < 0 {
		errors["shares"] = "shares must not be negative"
	}
	if amount < 0 {
		errors["amount"] = "amount must not be negative"
	}
	if reinvested < 0 {
		errors["reinvested"] = "reinvested must not be negative"
	} else if reinvested > amount {
		errors["reinvested"] = "reinvested must not exceed amount"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
