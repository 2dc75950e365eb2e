package engine_test

import (
	"math"
	"testing"

	"github.com/ycwang-tw/etf-dashboard-backend/internal/engine"
)

func TestYearsToTarget(t *testing.T) {
	t.Run("returns zero when the target is already met", func(t *testing.T) {
		years, ok := engine.YearsToTarget(8_000_000, 5000, 0.06, 6_500_000)
		if !ok {
			t.Fatal("Expected an estimate")
		}
		if years != 0.0 {
			t.Errorf("Expected 0.0 years, got %v", years)
		}
	})

	t.Run("is non-decreasing in the target", func(t *testing.T) {
		prev := 0.0
		for target := 1_000_000.0; target <= 10_000_000; target += 500_000 {
			years, ok := engine.YearsToTarget(800_000, 5000, 0.06, target)
			if !ok {
				t.Fatalf("Expected target %v reachable", target)
			}
			if years < prev {
				t.Errorf("Estimate decreased from %v to %v at target %v", prev, years, target)
			}
			prev = years
		}
	})

	t.Run("returns quarter-year steps rounded to one decimal", func(t *testing.T) {
		for target := 1_000_000.0; target <= 20_000_000; target += 777_777 {
			years, ok := engine.YearsToTarget(500_000, 5000, 0.06, target)
			if !ok {
				t.Fatalf("Expected target %v reachable", target)
			}
			// The scan only visits multiples of 0.25; the result is that
			// step rounded to one decimal.
			steps := years * 4
			rounded := math.Round(math.Round(steps)/4*10) / 10
			if math.Abs(years-rounded) > 1e-9 {
				t.Errorf("Estimate %v is not a rounded quarter-year step", years)
			}
		}
	})

	t.Run("reports unreachable targets within the horizon", func(t *testing.T) {
		// Effectively no growth or contributions against a huge target.
		if _, ok := engine.YearsToTarget(1, 0.0001, 0.0001, 1_000_000_000); ok {
			t.Error("Expected target to be unreachable within 80 years")
		}
	})

	t.Run("reaches the target just above the current value quickly", func(t *testing.T) {
		years, ok := engine.YearsToTarget(1_000_000, 5000, 0.06, 1_000_001)
		if !ok {
			t.Fatal("Expected an estimate")
		}
		if years > 0.3 {
			t.Errorf("Expected at most one step, got %v years", years)
		}
	})
}
