package model

// LedgerEntry represents a buy transaction recorded against a holding.
// The model only supports additive buys; Shares is the number of shares
// acquired and Amount the total cash paid. Reinvested is the portion of
// Amount that was funded by reinvested dividends (0 <= Reinvested <= Amount,
// enforced at the validation boundary).
type LedgerEntry struct {
	ID         string  `json:"id"`
	Symbol     string  `json:"symbol"`
	Date       string  `json:"date"` // YYYY-MM-DD
	Shares     int64   `json:"shares"`
	Amount     float64 `json:"amount"`
	Reinvested float64 `json:"reinvested"`
	CreatedAt  string  `json:"createdAt,omitempty"`
}

// LedgerAggregate is the per-symbol sum of all ledger entries, as consumed
// by the position merge.
type LedgerAggregate struct {
	Shares     int64   `json:"shares"`
	Amount     float64 `json:"amount"`
	Reinvested float64 `json:"reinvested"`
}
