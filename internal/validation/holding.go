package validation

import (
	"strings"

	"github.com/ycwang-tw/etf-dashboard-backend/internal/api/request"
)

// ValidateCreateHolding validates a holding creation request.
//
// Required fields:
//   - symbol: non-empty
//   - name: non-empty
//   - shares: non-negative
//   - avgCost: non-negative
func ValidateCreateHolding(req request.CreateHoldingRequest) error {
	errors := make(map[string]string)

	requireSymbol(errors, req.Symbol)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}
	if req.Shares < 0 {
		errors["shares"] = "shares must not be negative"
	}
	if req.AvgCost < 0 {
		errors["avgCost"] = "avgCost must not be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateUpdateHolding validates a holding update request.
func ValidateUpdateHolding(req request.UpdateHoldingRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}
	if req.Shares < 0 {
		errors["shares"] = "shares must not be negative"
	}
	if req.AvgCost < 0 {
		errors["avgCost"] = "avgCost must not be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
