package engine_test

import (
	"math/rand"
	"testing"

	"github.com/ycwang-tw/etf-dashboard-backend/internal/engine"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/model"
)

func testDividends() []model.DividendEvent {
	return []model.DividendEvent{
		{ID: "1", Symbol: "00878", Date: "2023-08-16", Cash: 350},
		{ID: "2", Symbol: "00878", Date: "2023-11-16", Cash: 350},
		{ID: "3", Symbol: "00919", Date: "2023-12-18", Cash: 358},
		{ID: "4", Symbol: "00919", Date: "2024-09-23", Cash: 2160},
		{ID: "5", Symbol: "0056", Date: "2024-10-17", Cash: 2140},
		{ID: "6", Symbol: "00878", Date: "2024-11-18", Cash: 1650},
		{ID: "7", Symbol: "0056", Date: "2025-01-17", Cash: 2140},
	}
}

func TestTotalBySymbol(t *testing.T) {
	t.Run("sums matching events", func(t *testing.T) {
		total := engine.TotalBySymbol(testDividends(), "00878")
		if total != 2350 {
			t.Errorf("Expected 2350, got %v", total)
		}
	})

	t.Run("returns zero for unknown symbol", func(t *testing.T) {
		total := engine.TotalBySymbol(testDividends(), "0050")
		if total != 0 {
			t.Errorf("Expected 0, got %v", total)
		}
	})

	t.Run("is order independent", func(t *testing.T) {
		events := testDividends()
		expected := engine.TotalBySymbol(events, "00919")

		shuffled := make([]model.DividendEvent, len(events))
		copy(shuffled, events)
		rand.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		if got := engine.TotalBySymbol(shuffled, "00919"); got != expected {
			t.Errorf("Expected %v after shuffle, got %v", expected, got)
		}
	})
}

func TestTotalByYear(t *testing.T) {
	t.Run("sums events in the calendar year", func(t *testing.T) {
		total := engine.TotalByYear(testDividends(), 2024)
		if total != 5950 {
			t.Errorf("Expected 5950, got %v", total)
		}
	})

	t.Run("returns zero for a year with no events", func(t *testing.T) {
		if total := engine.TotalByYear(testDividends(), 2020); total != 0 {
			t.Errorf("Expected 0, got %v", total)
		}
	})

	t.Run("skips malformed dates", func(t *testing.T) {
		events := []model.DividendEvent{
			{Symbol: "0050", Date: "bad", Cash: 100},
			{Symbol: "0050", Date: "2024-01-01", Cash: 50},
		}
		if total := engine.TotalByYear(events, 2024); total != 50 {
			t.Errorf("Expected 50, got %v", total)
		}
	})

	t.Run("is order independent", func(t *testing.T) {
		events := testDividends()
		expected := engine.TotalByYear(events, 2023)

		shuffled := make([]model.DividendEvent, len(events))
		copy(shuffled, events)
		rand.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		if got := engine.TotalByYear(shuffled, 2023); got != expected {
			t.Errorf("Expected %v after shuffle, got %v", expected, got)
		}
	})
}

func TestLastEvent(t *testing.T) {
	t.Run("returns the most recent event for the symbol", func(t *testing.T) {
		last, ok := engine.LastEvent(testDividends(), "00878")
		if !ok {
			t.Fatal("Expected an event")
		}
		if last.Date != "2024-11-18" || last.Cash != 1650 {
			t.Errorf("Expected 2024-11-18/1650, got %s/%v", last.Date, last.Cash)
		}
	})

	t.Run("breaks date ties by latest entry", func(t *testing.T) {
		events := []model.DividendEvent{
			{ID: "a", Symbol: "0050", Date: "2025-07-21", Cash: 360},
			{ID: "b", Symbol: "0050", Date: "2025-07-21", Cash: 400},
		}
		last, ok := engine.LastEvent(events, "0050")
		if !ok {
			t.Fatal("Expected an event")
		}
		if last.ID != "b" {
			t.Errorf("Expected the later entry to win the tie, got %s", last.ID)
		}
	})

	t.Run("reports absence for symbols without history", func(t *testing.T) {
		if _, ok := engine.LastEvent(testDividends(), "0050"); ok {
			t.Error("Expected no event for a symbol with no dividend history")
		}
	})
}
