package request

// CreateDCARecordRequest is the body for recording a periodic contribution.
type CreateDCARecordRequest struct {
	Symbol string  `json:"symbol"`
	Date   string  `json:"date"` // YYYY-MM-DD
	Amount float64 `json:"amount"`
}
