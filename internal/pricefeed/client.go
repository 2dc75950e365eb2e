package pricefeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// lookbackDays is how far ClosingBefore searches back for a trading-day
// close. 20 calendar days is enough to skip any run of weekends and
// holidays on the Taiwan exchange.
const lookbackDays = 20

// Quoter is the price lookup contract the service layer depends on.
// LatestClose returns the most recent trading-day close for a symbol;
// ClosingBefore returns the last close strictly before the given date, with
// false when no qualifying close exists in the lookback window.
type Quoter interface {
	LatestClose(ctx context.Context, symbol string) (float64, error)
	ClosingBefore(ctx context.Context, symbol string, date time.Time) (float64, bool, error)
}

// Client queries the Yahoo Finance chart API for Taiwan-listed ETF prices.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a price feed client with a bounded request timeout.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// LatestClose returns the most recent daily close for a symbol, using the
// 5-day range query so the latest trading day is always included.
func (c *Client) LatestClose(ctx context.Context, symbol string) (float64, error) {
	url := fmt.Sprintf(
		"https://query1.finance.yahoo.com/v8/finance/chart/%s.TW?interval=1d&range=5d",
		symbol,
	)

	closes, err := c.queryCloses(ctx, url)
	if err != nil {
		return 0, err
	}
	if len(closes) == 0 {
		return 0, fmt.Errorf("no close prices returned for symbol %s", symbol)
	}

	return closes[len(closes)-1].Price, nil
}

// ClosingBefore returns the most recent close strictly before the given
// date, searching back over the lookback window. Returns false when the
// window holds no qualifying close; callers treat that as "skip", not as
// an error.
func (c *Client) ClosingBefore(ctx context.Context, symbol string, date time.Time) (float64, bool, error) {
	end := date.UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -lookbackDays)

	url := fmt.Sprintf(
		"https://query1.finance.yahoo.com/v8/finance/chart/%s.TW?interval=1d&period1=%d&period2=%d",
		symbol,
		start.Unix(),
		end.Unix(),
	)

	closes, err := c.queryCloses(ctx, url)
	if err != nil {
		return 0, false, err
	}

	// Closes arrive oldest first; keep the last one before the date.
	var price float64
	found := false
	for _, cl := range closes {
		if cl.Date.Before(end) {
			price = cl.Price
			found = true
		}
	}

	return price, found, nil
}

// queryCloses executes a chart request and flattens the response into a
// date-ordered close series, dropping days Yahoo reports with a zero close
// (halted or not yet settled).
func (c *Client) queryCloses(ctx context.Context, url string) ([]Close, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var response Response
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, err
	}

	if response.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo error: %s", *response.Chart.Error)
	}
	if len(response.Chart.Result) == 0 {
		return nil, fmt.Errorf("no results returned")
	}

	result := response.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("no close prices returned")
	}
	quotes := result.Indicators.Quote[0]
	if len(quotes.Close) != len(result.Timestamp) {
		return nil, fmt.Errorf("mismatched data lengths")
	}

	closes := make([]Close, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if quotes.Close[i] <= 0 {
			continue
		}
		closes = append(closes, Close{
			Date:  time.Unix(ts, 0).UTC().Truncate(24 * time.Hour),
			Price: quotes.Close[i],
		})
	}

	return closes, nil
}
