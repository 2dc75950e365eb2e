// Package request defines the JSON request bodies accepted by the API.
package request

// CreateHoldingRequest is the body for creating a base holding.
type CreateHoldingRequest struct {
	Symbol  string  `json:"symbol"`
	Name    string  `json:"name"`
	Shares  int64   `json:"shares"`
	AvgCost float64 `json:"avgCost"`
}

// UpdateHoldingRequest is the body for updating a base holding.
// The symbol comes from the URL.
type UpdateHoldingRequest struct {
	Name    string  `json:"name"`
	Shares  int64   `json:"shares"`
	AvgCost float64 `json:"avgCost"`
}
