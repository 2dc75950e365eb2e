package request

// CreateDividendRequest is the body for recording a cash dividend.
type CreateDividendRequest struct {
	Symbol string  `json:"symbol"`
	Date   string  `json:"date"` // YYYY-MM-DD
	Cash   float64 `json:"cash"`
	Note   string  `json:"note"`
}

// UpdateDividendRequest is the body for editing a dividend event.
// The event ID comes from the URL.
type UpdateDividendRequest struct {
	Symbol string  `json:"symbol"`
	Date   string  `json:"date"`
	Cash   float64 `json:"cash"`
	Note   string  `json:"note"`
}
