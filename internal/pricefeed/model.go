// Package pricefeed fetches ETF prices from the Yahoo Finance chart API.
// Tracked symbols are Taiwan-listed ETFs, so ticker symbols get the ".TW"
// suffix before querying.
package pricefeed

import "time"

// Response represents the raw JSON response structure from the Yahoo
// Finance chart API: an array of results (typically one) carrying symbol
// metadata, Unix timestamps and parallel price arrays, plus an optional
// API-level error.
type Response struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency     string `json:"currency"`
				Symbol       string `json:"symbol"`
				ExchangeName string `json:"exchangeName"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *string `json:"error"`
	} `json:"chart"`
}

// Close is one trading day's closing price.
type Close struct {
	Date  time.Time `json:"date"`
	Price float64   `json:"price"`
}
