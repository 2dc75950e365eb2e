package engine_test

import (
	"math"
	"testing"

	"github.com/ycwang-tw/etf-dashboard-backend/internal/engine"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/model"
)

var testGoal = engine.GoalConfig{
	TargetLow:           6_500_000,
	TargetHigh:          7_500_000,
	AnnualReturn:        0.06,
	MonthlyContribution: 5000,
}

// TestBuildDashboard_SingleHolding walks one holding through the full
// composition: valuation row, totals, dividend compare and goal figures.
func TestBuildDashboard_SingleHolding(t *testing.T) {
	snap := engine.Snapshot{
		Holdings: []model.Holding{
			{Symbol: "X", Name: "Test ETF", Shares: 1000, AvgCost: 50},
		},
		Ledger: map[string]model.LedgerAggregate{
			"X": {Shares: 0, Amount: 0},
		},
		Dividends: []model.DividendEvent{
			{Symbol: "X", Date: "2025-03-01", Cash: 500},
		},
		Prices: map[string]float64{"X": 60},
		Year:   2025,
	}

	d := engine.BuildDashboard(snap, testGoal)

	if len(d.Rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(d.Rows))
	}
	row := d.Rows[0]

	if row.CostTotal != 50000 {
		t.Errorf("Expected cost total 50000, got %v", row.CostTotal)
	}
	if row.MarketValue != 60000 {
		t.Errorf("Expected market value 60000, got %v", row.MarketValue)
	}
	if row.Profit != 10000 {
		t.Errorf("Expected profit 10000, got %v", row.Profit)
	}
	if row.DividendTotal != 500 {
		t.Errorf("Expected dividend total 500, got %v", row.DividendTotal)
	}
	if row.ProfitWithDividends != 10500 {
		t.Errorf("Expected profit with dividends 10500, got %v", row.ProfitWithDividends)
	}
	if math.Abs(row.ProfitWithDividendsPct-21.0) > 1e-9 {
		t.Errorf("Expected 21.0%%, got %v", row.ProfitWithDividendsPct)
	}

	if d.Totals.Cost != 50000 || d.Totals.MarketValue != 60000 {
		t.Errorf("Expected totals to mirror the single row, got %+v", d.Totals)
	}
	if d.DividendCompare.CurrentYearTotal != 500 || d.DividendCompare.LastYearTotal != 0 {
		t.Errorf("Unexpected dividend compare: %+v", d.DividendCompare)
	}
	if d.DividendCompare.Diff != 500 {
		t.Errorf("Expected dividend diff 500, got %v", d.DividendCompare.Diff)
	}
}

func TestBuildDashboard_PercentageSafety(t *testing.T) {
	snap := engine.Snapshot{
		Holdings: []model.Holding{
			{Symbol: "X", Name: "Empty", Shares: 0, AvgCost: 0},
		},
		Prices: map[string]float64{"X": 60},
		Year:   2025,
	}

	d := engine.BuildDashboard(snap, testGoal)

	row := d.Rows[0]
	if row.ProfitPct != 0 || row.ProfitWithDividendsPct != 0 {
		t.Errorf("Expected zero percentages on zero cost basis, got %+v", row)
	}
	if math.IsNaN(d.Totals.ProfitPct) || d.Totals.ProfitPct != 0 {
		t.Errorf("Expected zero total percentage, got %v", d.Totals.ProfitPct)
	}
}

func TestBuildDashboard_DCACompare(t *testing.T) {
	t.Run("nil comparison without contributions", func(t *testing.T) {
		d := engine.BuildDashboard(engine.Snapshot{Year: 2025}, testGoal)

		if d.DCACompare.ProfitVsContributed != nil || d.DCACompare.ReturnPct != nil {
			t.Errorf("Expected nil comparison fields, got %+v", d.DCACompare)
		}
	})

	t.Run("rough return against contributions", func(t *testing.T) {
		snap := engine.Snapshot{
			Holdings: []model.Holding{
				{Symbol: "X", Shares: 100, AvgCost: 100},
			},
			Prices:   map[string]float64{"X": 120},
			DCATotal: 10000,
			Year:     2025,
		}

		d := engine.BuildDashboard(snap, testGoal)

		if d.DCACompare.ProfitVsContributed == nil || d.DCACompare.ReturnPct == nil {
			t.Fatal("Expected comparison fields to be set")
		}
		if *d.DCACompare.ProfitVsContributed != 2000 {
			t.Errorf("Expected profit vs contributed 2000, got %v", *d.DCACompare.ProfitVsContributed)
		}
		if *d.DCACompare.ReturnPct != 20 {
			t.Errorf("Expected return 20%%, got %v", *d.DCACompare.ReturnPct)
		}
	})
}

func TestBuildDashboard_GoalProgress(t *testing.T) {
	t.Run("gaps clip to zero past the target", func(t *testing.T) {
		snap := engine.Snapshot{
			Holdings: []model.Holding{
				{Symbol: "X", Shares: 100_000, AvgCost: 50},
			},
			Prices: map[string]float64{"X": 70}, // 7M market value
			Year:   2025,
		}

		d := engine.BuildDashboard(snap, testGoal)

		if d.Goal.GapToLow != 0 {
			t.Errorf("Expected zero gap to low target, got %v", d.Goal.GapToLow)
		}
		if d.Goal.GapToHigh != 500_000 {
			t.Errorf("Expected 500000 gap to high target, got %v", d.Goal.GapToHigh)
		}
		if d.Goal.YearsToLow == nil || *d.Goal.YearsToLow != 0 {
			t.Errorf("Expected zero years to the already-met target, got %v", d.Goal.YearsToLow)
		}
		if d.Goal.YearsToHigh == nil || *d.Goal.YearsToHigh <= 0 {
			t.Errorf("Expected a positive estimate to the high target, got %v", d.Goal.YearsToHigh)
		}
	})
}
