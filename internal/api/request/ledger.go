package request

// CreateLedgerEntryRequest is the body for recording a buy.
// Reinvested is the portion of Amount funded by reinvested dividends.
type CreateLedgerEntryRequest struct {
	Symbol     string  `json:"symbol"`
	Date       string  `json:"date"` // YYYY-MM-DD
	Shares     int64   `json:"shares"`
	Amount     float64 `json:"amount"`
	Reinvested float64 `json:"reinvested"`
}

// UpdateLedgerEntryRequest is the body for editing a ledger entry.
// The entry ID comes from the URL.
type UpdateLedgerEntryRequest struct {
	Symbol     string  `json:"symbol"`
	Date       string  `json:"date"`
	Shares     int64   `json:"shares"`
	Amount     float64 `json:"amount"`
	Reinvested float64 `json:"reinvested"`
}
