package model

import "time"

// ETFRow holds the per-instrument valuation figures shown on the dashboard.
// Shares and AvgCost are the effective position after applying the ledger
// to the base holding.
type ETFRow struct {
	Symbol                 string  `json:"symbol"`
	Name                   string  `json:"name"`
	Shares                 int64   `json:"shares"`
	AvgCost                float64 `json:"avgCost"`
	Price                  float64 `json:"price"`
	CostTotal              float64 `json:"costTotal"`
	MarketValue            float64 `json:"marketValue"`
	Profit                 float64 `json:"profit"`
	ProfitPct              float64 `json:"profitPct"`
	DividendTotal          float64 `json:"dividendTotal"`
	ProfitWithDividends    float64 `json:"profitWithDividends"`
	ProfitWithDividendsPct float64 `json:"profitWithDividendsPct"`
}

// Totals holds the portfolio-level sums of the dashboard rows.
// Percentages are 0 when the total cost basis is 0.
type Totals struct {
	Cost                   float64 `json:"cost"`
	MarketValue            float64 `json:"marketValue"`
	Profit                 float64 `json:"profit"`
	ProfitPct              float64 `json:"profitPct"`
	Dividends              float64 `json:"dividends"`
	ProfitWithDividends    float64 `json:"profitWithDividends"`
	ProfitWithDividendsPct float64 `json:"profitWithDividendsPct"`
}

// DividendCompare holds the year-over-year dividend comparison.
type DividendCompare struct {
	CurrentYear      int     `json:"currentYear"`
	LastYear         int     `json:"lastYear"`
	CurrentYearTotal float64 `json:"currentYearTotal"`
	LastYearTotal    float64 `json:"lastYearTotal"`
	Diff             float64 `json:"diff"`
}

// DCACompare compares total periodic contributions against current market
// value. ProfitVsContributed and ReturnPct are nil when there are no
// contribution records to compare against.
type DCACompare struct {
	Contributed         float64  `json:"contributed"`
	ProfitVsContributed *float64 `json:"profitVsContributed"`
	ReturnPct           *float64 `json:"returnPct"`
}

// GoalProgress holds the savings-goal figures: the gap to each target
// threshold (clipped to non-negative) and the estimated years to reach each
// target. A nil years estimate means the target is not reachable within the
// projection horizon and should be rendered as unknown.
type GoalProgress struct {
	CurrentValue float64  `json:"currentValue"`
	GapToLow     float64  `json:"gapToLow"`
	GapToHigh    float64  `json:"gapToHigh"`
	YearsToLow   *float64 `json:"yearsToLow"`
	YearsToHigh  *float64 `json:"yearsToHigh"`
}

// Dashboard is the full dashboard response.
type Dashboard struct {
	GeneratedAt     time.Time       `json:"generatedAt"`
	Rows            []ETFRow        `json:"rows"`
	Totals          Totals          `json:"totals"`
	DividendCompare DividendCompare `json:"dividendCompare"`
	DCACompare      DCACompare      `json:"dcaCompare"`
	Goal            GoalProgress    `json:"goal"`
}

// FillInfo describes how much of the most recent dividend the market price
// has recovered since the ex-date. FillRatioPct may exceed 100 (price rose
// beyond full recovery) or be negative (price fell further).
type FillInfo struct {
	Symbol           string  `json:"symbol"`
	Name             string  `json:"name"`
	DividendDate     string  `json:"dividendDate"`
	DividendCash     float64 `json:"dividendCash"`
	DividendPerShare float64 `json:"dividendPerShare"`
	PreExClose       float64 `json:"preExClose"`
	ExReference      float64 `json:"exReference"`
	CurrentPrice     float64 `json:"currentPrice"`
	FilledAmount     float64 `json:"filledAmount"`
	FillRatioPct     float64 `json:"fillRatioPct"`
	GapToFill        float64 `json:"gapToFill"`
}
