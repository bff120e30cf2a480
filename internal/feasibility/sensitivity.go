package feasibility

import (
	"github.com/mivnecheck/mivnecheck/internal/domain"
	"github.com/mivnecheck/mivnecheck/internal/mortgage"
	"github.com/shopspring/decimal"
)

// sensitivityDeltas are the perturbations applied along both grid axes, in
// percentage points.
var sensitivityDeltas = []decimal.Decimal{
	decimal.NewFromFloat(-0.005),
	decimal.Zero,
	decimal.NewFromFloat(0.005),
}

// sensitivityGrid perturbs the appreciation and index rates by +/-0.5pp and
// recomputes a simplified 10-year terminal value per cell: projected sale
// value under the perturbed appreciation, net of the acquisition cost with
// the linkage surcharge recomputed under the perturbed index. Rent flows are
// held fixed.
func (e *Engine) sensitivityGrid(inputs domain.FeasibilityInputs, base domain.FeasibilityOutputs) [][]domain.SensitivityCell {
	acquisitionLessLinkage := base.TotalAcquisitionCost.Sub(base.LinkageSurcharge)

	grid := make([][]domain.SensitivityCell, len(sensitivityDeltas))
	for i, appreciationDelta := range sensitivityDeltas {
		row := make([]domain.SensitivityCell, len(sensitivityDeltas))
		appreciation := base.AppreciationRate.Add(appreciationDelta)
		saleValue := projectValue(inputs.Price, appreciation, projectionYears)

		for j, indexDelta := range sensitivityDeltas {
			surcharge := mortgage.CalculateLinkageSurcharge(mortgage.LinkageInput{
				ContractPrice:   inputs.Price,
				Schedule:        inputs.PaymentSchedule,
				DeliveryDate:    inputs.DeliveryDate,
				AnnualIndexRate: inputs.AnnualIndexRate.Add(indexDelta),
			})
			acquisition := acquisitionLessLinkage.Add(surcharge)

			row[j] = domain.SensitivityCell{
				AppreciationDelta: appreciationDelta,
				IndexDelta:        indexDelta,
				NetTerminalValue:  saleValue.Sub(acquisition),
			}
		}
		grid[i] = row
	}
	return grid
}
