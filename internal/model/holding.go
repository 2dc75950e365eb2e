package model

// Holding represents a base position in one tracked ETF: the snapshot the
// ledger is reconciled against. Shares and AvgCost describe the position
// before any ledger entries are applied.
type Holding struct {
	Symbol  string  `json:"symbol"`
	Name    string  `json:"name"`
	Shares  int64   `json:"shares"`
	AvgCost float64 `json:"avgCost"`
}

// CostTotal returns the total cost basis of the holding (shares x average cost).
func (h Holding) CostTotal() float64 {
	return float64(h.Shares) * h.AvgCost
}
