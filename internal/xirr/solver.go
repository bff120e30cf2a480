// Package xirr solves for the internal rate of return of cash flows occurring
// on irregular, explicit dates. Amounts are signed: negative for outflows.
//
// The solver runs Newton-Raphson from a guess derived from the flow totals and
// falls back to bisection when Newton fails to converge. Iteration happens in
// float64; callers convert at the boundary.
package xirr

import (
	"math"
	"sort"
	"time"
)

// CashFlow is one dated, signed amount.
type CashFlow struct {
	Date   time.Time
	Amount float64
}

const (
	maxNewtonIterations    = 60
	maxBisectionIterations = 120
	convergenceTolerance   = 1e-7
	minRate                = -0.9
	hoursPerYear           = 24 * 365.25
)

// Solve returns the annualized internal rate of return as a percentage.
// Degenerate input (fewer than two cash flows) returns 0 without iterating.
func Solve(flows []CashFlow) float64 {
	if len(flows) < 2 {
		return 0
	}

	sorted := make([]CashFlow, len(flows))
	copy(sorted, flows)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	t0 := sorted[0].Date
	years := make([]float64, len(sorted))
	for i, f := range sorted {
		years[i] = f.Date.Sub(t0).Hours() / hoursPerYear
	}

	rate, ok := newton(sorted, years, initialGuess(sorted, years))
	if !ok {
		rate, ok = bisect(sorted, years)
		if !ok {
			return 0
		}
	}
	return rate * 100
}

// initialGuess estimates a starting rate from the ratio of total inflows to
// total outflows raised to the inverse of the inflow time-weighted centroid.
func initialGuess(flows []CashFlow, years []float64) float64 {
	var positive, negative, weightedTime float64
	for i, f := range flows {
		if f.Amount > 0 {
			positive += f.Amount
			weightedTime += years[i] * f.Amount
		} else {
			negative -= f.Amount
		}
	}
	if positive <= 0 || negative <= 0 {
		return 0.1
	}

	centroid := weightedTime / positive
	if centroid <= 0 {
		return 0.1
	}
	guess := math.Pow(positive/negative, 1/centroid) - 1
	if guess < minRate {
		guess = minRate
	}
	return guess
}

// npv evaluates the net present value and its first derivative at rate.
func npv(flows []CashFlow, years []float64, rate float64) (value, derivative float64) {
	for i, f := range flows {
		discount := math.Pow(1+rate, years[i])
		value += f.Amount / discount
		derivative -= years[i] * f.Amount / (discount * (1 + rate))
	}
	return value, derivative
}

func newton(flows []CashFlow, years []float64, guess float64) (float64, bool) {
	rate := guess
	for i := 0; i < maxNewtonIterations; i++ {
		value, derivative := npv(flows, years, rate)
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return 0, false
		}
		if math.Abs(derivative) < 1e-12 {
			return 0, false
		}
		next := rate - value/derivative
		if math.IsNaN(next) || math.IsInf(next, 0) {
			return 0, false
		}
		if next <= minRate {
			next = minRate + (rate-minRate)/2
		}
		if math.Abs(next-rate) < convergenceTolerance {
			return next, true
		}
		rate = next
	}
	return 0, false
}

// bisect finds a sign-changing bracket by expanding the upper bound, then
// halves it down to tolerance. Returns the midpoint.
func bisect(flows []CashFlow, years []float64) (float64, bool) {
	lo, hi := minRate, 0.1
	loVal, _ := npv(flows, years, lo)

	// Expand hi until the NPV sign changes.
	hiVal, _ := npv(flows, years, hi)
	for i := 0; i < 60 && loVal*hiVal > 0; i++ {
		hi = hi*2 + 0.1
		hiVal, _ = npv(flows, years, hi)
	}
	if loVal*hiVal > 0 {
		return 0, false
	}

	for i := 0; i < maxBisectionIterations; i++ {
		mid := (lo + hi) / 2
		midVal, _ := npv(flows, years, mid)
		if math.IsNaN(midVal) {
			return 0, false
		}
		if loVal*midVal <= 0 {
			hi = mid
		} else {
			lo = mid
			loVal = midVal
		}
		if hi-lo < convergenceTolerance {
			break
		}
	}
	return (lo + hi) / 2, true
}
