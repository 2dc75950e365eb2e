package engine_test

import (
	"math"
	"testing"

	"github.com/ycwang-tw/etf-dashboard-backend/internal/engine"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/model"
)

func TestEstimateFill(t *testing.T) {
	pos := model.Holding{Symbol: "0056", Name: "High Dividend ETF", Shares: 1000}
	event := model.DividendEvent{Symbol: "0056", Date: "2025-01-17", Cash: 2000}

	t.Run("zero fill at the theoretical ex price", func(t *testing.T) {
		// 2000 cash over 1000 shares: 2 per share; ex reference is 98.
		info, ok := engine.EstimateFill(pos, 98, event, 100)
		if !ok {
			t.Fatal("Expected a fill estimate")
		}
		if info.DividendPerShare != 2 {
			t.Errorf("Expected dividend per share 2, got %v", info.DividendPerShare)
		}
		if info.FillRatioPct != 0 {
			t.Errorf("Expected fill ratio 0, got %v", info.FillRatioPct)
		}
		if info.GapToFill != 2 {
			t.Errorf("Expected gap 2, got %v", info.GapToFill)
		}
	})

	t.Run("full fill back at the pre-ex close", func(t *testing.T) {
		info, ok := engine.EstimateFill(pos, 100, event, 100)
		if !ok {
			t.Fatal("Expected a fill estimate")
		}
		if info.FillRatioPct != 100 {
			t.Errorf("Expected fill ratio 100, got %v", info.FillRatioPct)
		}
		if info.GapToFill != 0 {
			t.Errorf("Expected gap 0, got %v", info.GapToFill)
		}
	})

	t.Run("ratio exceeds 100 above the pre-ex close", func(t *testing.T) {
		info, _ := engine.EstimateFill(pos, 101, event, 100)
		if info.FillRatioPct != 150 {
			t.Errorf("Expected fill ratio 150, got %v", info.FillRatioPct)
		}
		if info.GapToFill != 0 {
			t.Errorf("Expected gap clipped to 0, got %v", info.GapToFill)
		}
	})

	t.Run("ratio goes negative when price fell past the ex reference", func(t *testing.T) {
		info, _ := engine.EstimateFill(pos, 96, event, 100)
		if info.FillRatioPct != -100 {
			t.Errorf("Expected fill ratio -100, got %v", info.FillRatioPct)
		}
		if info.GapToFill != 4 {
			t.Errorf("Expected gap 4, got %v", info.GapToFill)
		}
	})

	t.Run("skips positions without shares", func(t *testing.T) {
		empty := model.Holding{Symbol: "0056", Shares: 0}
		if _, ok := engine.EstimateFill(empty, 100, event, 100); ok {
			t.Error("Expected no estimate for a position without shares")
		}
	})

	t.Run("zero dividend yields zero ratio, not NaN", func(t *testing.T) {
		free := model.DividendEvent{Symbol: "0056", Date: "2025-01-17", Cash: 0}
		info, ok := engine.EstimateFill(pos, 99, free, 100)
		if !ok {
			t.Fatal("Expected a fill estimate")
		}
		if math.IsNaN(info.FillRatioPct) || info.FillRatioPct != 0 {
			t.Errorf("Expected ratio 0, got %v", info.FillRatioPct)
		}
	})
}
