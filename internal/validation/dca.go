package validation

import (
	"github.com/ycwang-tw/etf-dashboard-backend/internal/api/request"
)

// ValidateCreateDCARecord validates a contribution-recording request.
//
// Required fields:
//   - symbol: non-empty
//   - date: YYYY-MM-DD
//   - amount: positive
func ValidateCreateDCARecord(req request.CreateDCARecordRequest) error {
	errors := make(map[string]string)

	requireSymbol(errors, req.Symbol)
	requireDate(errors, "date", req.Date)

	if req.Amount <= 0 {
		errors["amount"] = "amount must be positive"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
