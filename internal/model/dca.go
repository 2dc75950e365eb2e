package model

// DCARecord represents one periodic (dollar-cost-averaging) contribution.
// DCA records are tracked separately from the buy ledger and only feed the
// contribution-vs-market-value comparison on the dashboard.
type DCARecord struct {
	ID        string  `json:"id"`
	Symbol    string  `json:"symbol"`
	Date      string  `json:"date"` // YYYY-MM-DD
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"createdAt,omitempty"`
}
