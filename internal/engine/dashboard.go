package engine

import "github.com/ycwang-tw/etf-dashboard-backend/internal/model"

// Snapshot is everything the dashboard computation consumes, loaded by the
// caller before the engine is invoked: base holdings, the per-symbol ledger
// aggregate, all dividend events, a current price per held symbol, the
// total of all periodic contributions, and the current calendar year for
// the year-over-year dividend comparison. Prices must be present for every
// holding; the price feed guarantees a fallback value.
type Snapshot struct {
	Holdings  []model.Holding
	Ledger    map[string]model.LedgerAggregate
	Dividends []model.DividendEvent
	Prices    map[string]float64
	DCATotal  float64
	Year      int
}

// BuildDashboard merges the snapshot into per-instrument rows and portfolio
// totals, the year-over-year dividend comparison, the contribution-vs-value
// comparison and the goal progress figures.
func BuildDashboard(snap Snapshot, goal GoalConfig) model.Dashboard {
	positions := Merge(snap.Holdings, snap.Ledger)

	rows := make([]model.ETFRow, 0, len(positions))
	var totals model.Totals

	for _, p := range positions {
		price := snap.Prices[p.Symbol]

		costTotal := p.CostTotal()
		mv := float64(p.Shares) * price
		profit := mv - costTotal

		divTotal := TotalBySymbol(snap.Dividends, p.Symbol)
		profitWithDiv := profit + divTotal

		rows = append(rows, model.ETFRow{
			Symbol:                 p.Symbol,
			Name:                   p.Name,
			Shares:                 p.Shares,
			AvgCost:                p.AvgCost,
			Price:                  price,
			CostTotal:              costTotal,
			MarketValue:            mv,
			Profit:                 profit,
			ProfitPct:              pct(profit, costTotal),
			DividendTotal:          divTotal,
			ProfitWithDividends:    profitWithDiv,
			ProfitWithDividendsPct: pct(profitWithDiv, costTotal),
		})

		totals.Cost += costTotal
		totals.MarketValue += mv
		totals.Dividends += divTotal
	}

	totals.Profit = totals.MarketValue - totals.Cost
	totals.ProfitWithDividends = totals.Profit + totals.Dividends
	totals.ProfitPct = pct(totals.Profit, totals.Cost)
	totals.ProfitWithDividendsPct = pct(totals.ProfitWithDividends, totals.Cost)

	return model.Dashboard{
		Rows:            rows,
		Totals:          totals,
		DividendCompare: compareDividendYears(snap.Dividends, snap.Year),
		DCACompare:      compareDCA(snap.DCATotal, totals.MarketValue),
		Goal:            goalProgress(totals.MarketValue, goal),
	}
}

func compareDividendYears(events []model.DividendEvent, year int) model.DividendCompare {
	thisYear := TotalByYear(events, year)
	lastYear := TotalByYear(events, year-1)

	return model.DividendCompare{
		CurrentYear:      year,
		LastYear:         year - 1,
		CurrentYearTotal: thisYear,
		LastYearTotal:    lastYear,
		Diff:             thisYear - lastYear,
	}
}

// compareDCA relates total contributions to current market value. The
// comparison is only meaningful once something has been contributed; with
// no records the profit and return fields stay nil.
func compareDCA(contributed, marketValue float64) model.DCACompare {
	cmp := model.DCACompare{Contributed: contributed}
	if contributed > 0 {
		profit := marketValue - contributed
		ret := profit / contributed * 100
		cmp.ProfitVsContributed = &profit
		cmp.ReturnPct = &ret
	}
	return cmp
}

func goalProgress(marketValue float64, goal GoalConfig) model.GoalProgress {
	progress := model.GoalProgress{
		CurrentValue: marketValue,
		GapToLow:     clampZero(goal.TargetLow - marketValue),
		GapToHigh:    clampZero(goal.TargetHigh - marketValue),
	}

	if years, ok := YearsToTarget(marketValue, goal.MonthlyContribution, goal.AnnualReturn, goal.TargetLow); ok {
		progress.YearsToLow = &years
	}
	if years, ok := YearsToTarget(marketValue, goal.MonthlyContribution, goal.AnnualReturn, goal.TargetHigh); ok {
		progress.YearsToHigh = &years
	}

	return progress
}

// pct returns part as a percentage of base, or 0 when base is 0 so that an
// empty position never produces NaN.
func pct(part, base float64) float64 {
	if base == 0 {
		return 0
	}
	return part / base * 100
}

func clampZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
