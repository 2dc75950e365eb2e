package model

// DividendEvent represents a cash distribution received for one ETF.
// Date is the ex/record date in YYYY-MM-DD form; lexicographic order on the
// string therefore equals chronological order, which the dividend
// aggregation relies on.
type DividendEvent struct {
	ID        string  `json:"id"`
	Symbol    string  `json:"symbol"`
	Date      string  `json:"date"` // YYYY-MM-DD
	Cash      float64 `json:"cash"`
	Note      string  `json:"note,omitempty"`
	CreatedAt string  `json:"createdAt,omitempty"`
}
