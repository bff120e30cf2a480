package xirr

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSolveRoundTrip(t *testing.T) {
	// A single outflow now and a single inflow of outflow*(1+r)^years later
	// must recover r within 1e-4 relative tolerance.
	rates := []float64{0.03, 0.08, 0.15, 0.40, -0.20}
	yearsOut := []float64{1, 5, 10}

	for _, r := range rates {
		for _, yrs := range yearsOut {
			start := date(2025, time.January, 1)
			end := start.Add(time.Duration(yrs * 365.25 * 24 * float64(time.Hour)))
			flows := []CashFlow{
				{Date: start, Amount: -100000},
				{Date: end, Amount: 100000 * math.Pow(1+r, yrs)},
			}

			got := Solve(flows) / 100
			assert.InEpsilon(t, 1+r, 1+got, 1e-4, "rate %v over %v years, got %v", r, yrs, got)
		}
	}
}

func TestSolveDegenerateInputs(t *testing.T) {
	assert.Zero(t, Solve(nil))
	assert.Zero(t, Solve([]CashFlow{{Date: date(2025, time.January, 1), Amount: -1000}}))
}

func TestSolveUnorderedFlows(t *testing.T) {
	flows := []CashFlow{
		{Date: date(2030, time.January, 1), Amount: 161051},
		{Date: date(2025, time.January, 1), Amount: -100000},
	}
	// 100,000 growing to 161,051 over 5 years is 10%.
	got := Solve(flows)
	assert.InDelta(t, 10.0, got, 0.05)
}

func TestSolveAnnuityLikeSeries(t *testing.T) {
	// Outflow then ten equal annual inflows; IRR of -1000 followed by 10x150
	// is about 8.14%.
	flows := []CashFlow{{Date: date(2025, time.January, 1), Amount: -1000}}
	for i := 1; i <= 10; i++ {
		flows = append(flows, CashFlow{Date: date(2025+i, time.January, 1), Amount: 150})
	}

	got := Solve(flows)
	assert.InDelta(t, 8.14, got, 0.1)
}

func TestSolveNegativeReturn(t *testing.T) {
	flows := []CashFlow{
		{Date: date(2025, time.January, 1), Amount: -100000},
		{Date: date(2027, time.January, 1), Amount: 64000},
	}
	// Losing 36% over two years is -20% annualized.
	got := Solve(flows)
	assert.InDelta(t, -20.0, got, 0.1)
}

func TestSolveExtremeSkewFallsBackToBisection(t *testing.T) {
	// All inflows packed a few days after the outflow produce a huge
	// annualized rate; Newton diverges on such schedules and the bisection
	// bracket must still find the root.
	flows := []CashFlow{
		{Date: date(2025, time.January, 1), Amount: -100000},
		{Date: date(2025, time.January, 8), Amount: 35000},
		{Date: date(2025, time.January, 9), Amount: 35000},
		{Date: date(2025, time.January, 10), Amount: 35000},
	}

	got := Solve(flows) / 100
	assert.False(t, math.IsNaN(got))
	assert.False(t, math.IsInf(got, 0))

	// Whatever path produced the rate, it must zero the NPV.
	t0 := flows[0].Date
	npvAt := 0.0
	for _, f := range flows {
		years := f.Date.Sub(t0).Hours() / (24 * 365.25)
		npvAt += f.Amount / math.Pow(1+got, years)
	}
	assert.InDelta(t, 0.0, npvAt, 1.0)
}

func TestInitialGuessClampedAboveFloor(t *testing.T) {
	flows := []CashFlow{
		{Date: date(2025, time.January, 1), Amount: -100000},
		{Date: date(2035, time.January, 1), Amount: 1},
	}
	years := []float64{0, 10}
	guess := initialGuess(flows, years)
	assert.GreaterOrEqual(t, guess, minRate)
}
