package engine

import "math"

// goalStepYears is the simulation resolution: one step per quarter year.
// goalHorizonYears is the hard ceiling on the scan; targets not reached
// within it are reported as unreachable.
const (
	goalStepYears    = 0.25
	goalHorizonYears = 80.0
)

// GoalConfig holds the savings-goal assumptions: the two target thresholds,
// the assumed annual growth rate and the assumed monthly contribution.
// It is passed in per call rather than read from process-wide state so that
// projections can be computed under arbitrary assumptions.
type GoalConfig struct {
	TargetLow           float64
	TargetHigh          float64
	AnnualReturn        float64
	MonthlyContribution float64
}

// YearsToTarget estimates the elapsed years for currentValue, growing at a
// fixed annual rate with a fixed monthly contribution, to reach target.
//
// The projected value after n years is the lump sum compounded at the rate
// plus a growing-annuity term for the contribution stream:
//
//	FV(n) = currentValue*(1+r)^n + (monthly*12)*((1+r)^n - 1)/r
//
// The scan walks n forward in quarter-year steps up to an 80-year horizon
// and returns the first n at which FV(n) >= target, rounded to one decimal.
// A fixed-step scan is used instead of inverting FV for n: the closed form
// needs a root-finder of comparable complexity and the domain tolerates
// quarter-year imprecision. A target at or below the current value returns
// 0 on the first step.
//
// Returns false when the target is not reached within the horizon. The rate
// must be positive; the annuity term divides by it.
func YearsToTarget(currentValue, monthlyContribution, annualRate, target float64) (float64, bool) {
	yearlyContribution := monthlyContribution * 12

	for years := 0.0; years <= goalHorizonYears; years += goalStepYears {
		growth := math.Pow(1+annualRate, years)
		fv := currentValue*growth + yearlyContribution*(growth-1)/annualRate
		if fv >= target {
			return math.Round(years*10) / 10, true
		}
	}

	return 0, false
}
