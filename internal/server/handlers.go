package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/mivnecheck/mivnecheck/internal/config"
	"github.com/mivnecheck/mivnecheck/internal/domain"
	"github.com/mivnecheck/mivnecheck/internal/rights"
	"github.com/mivnecheck/mivnecheck/internal/tax"
	"github.com/shopspring/decimal"
)

var rightsValidate = validator.New()

// RightsRequest is the JSON body of POST /api/v1/rights. Plot geometry is
// bounded to the range the baseline plan tables are calibrated for.
type RightsRequest struct {
	PlotArea            float64              `json:"plotArea" validate:"required,gte=100,lte=10000"`
	ExistingBuiltArea   float64              `json:"existingBuiltArea" validate:"gte=0"`
	ExistingFloors      int                  `json:"existingFloors" validate:"required,gte=1,lte=10"`
	AptsPerFloor        int                  `json:"aptsPerFloor" validate:"gte=0,lte=12"`
	IsCornerPlot        bool                 `json:"isCornerPlot"`
	City                string               `json:"city" validate:"required"`
	SubmissionDate      time.Time            `json:"submissionDate" validate:"required"`
	ProjectType         domain.ProjectType   `json:"projectType" validate:"required,oneof=demolish_rebuild retrofit"`
	MetroDistanceMeters *float64             `json:"metroDistanceMeters,omitempty"`
	Overrides           domain.OverrideFlags `json:"overrides"`
	Betterment          *BettermentRequest   `json:"betterment,omitempty"`
}

// BettermentRequest is the optional betterment-levy section of a rights
// request. The metro rate is derived from the resolved zone, not supplied.
type BettermentRequest struct {
	HasPlanApproval   bool     `json:"hasPlanApproval"`
	AreaSqm           float64  `json:"areaSqm" validate:"gte=0"`
	ValueBeforePerSqm *float64 `json:"valueBeforePerSqm,omitempty"`
	ValueAfterPerSqm  *float64 `json:"valueAfterPerSqm,omitempty"`
	OwnershipShare    float64  `json:"ownershipShare" validate:"gte=0,lte=1"`
}

// Validate checks the request against its field constraints.
func (r *RightsRequest) Validate() error {
	return rightsValidate.Struct(r)
}

// RightsResponse bundles the baseline plan figures with the full regime
// resolution and, when requested, the betterment levy.
type RightsResponse struct {
	BaselinePlan rights.TABAResult                           `json:"baselinePlan"`
	Rights       domain.RightsResult                         `json:"rights"`
	Betterment   *domain.ComputeResult[tax.BettermentResult] `json:"betterment,omitempty"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleRights(c *gin.Context) {
	var req RightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	var metroDistance *decimal.Decimal
	if req.MetroDistanceMeters != nil {
		d := decimal.NewFromFloat(*req.MetroDistanceMeters)
		metroDistance = &d
	}

	plan := rights.CalculateTABA(rights.TABAInput{
		PlotArea:       decimal.NewFromFloat(req.PlotArea),
		ExistingFloors: req.ExistingFloors,
		AptsPerFloor:   req.AptsPerFloor,
		IsCornerPlot:   req.IsCornerPlot,
	})
	resolution := rights.Resolve(rights.ResolveInput{
		PlotArea:            decimal.NewFromFloat(req.PlotArea),
		ExistingBuiltArea:   decimal.NewFromFloat(req.ExistingBuiltArea),
		ExistingFloors:      req.ExistingFloors,
		City:                req.City,
		SubmissionDate:      req.SubmissionDate,
		ProjectType:         req.ProjectType,
		MetroDistanceMeters: metroDistance,
		Overrides:           req.Overrides,
	})

	resp := RightsResponse{BaselinePlan: plan, Rights: resolution}
	if req.Betterment != nil {
		levy := tax.CalculateBettermentLevy(tax.BettermentInput{
			HasPlanApproval:   req.Betterment.HasPlanApproval,
			AreaSqm:           decimal.NewFromFloat(req.Betterment.AreaSqm),
			ValueBeforePerSqm: decimalPtr(req.Betterment.ValueBeforePerSqm),
			ValueAfterPerSqm:  decimalPtr(req.Betterment.ValueAfterPerSqm),
			OwnershipShare:    decimal.NewFromFloat(req.Betterment.OwnershipShare),
			InMetroZone:       resolution.MetroZone.InMetroZone(),
		})
		resp.Betterment = &levy
	}
	c.JSON(http.StatusOK, resp)
}

func decimalPtr(v *float64) *decimal.Decimal {
	if v == nil {
		return nil
	}
	d := decimal.NewFromFloat(*v)
	return &d
}

func (s *Server) handleFeasibility(c *gin.Context) {
	var inputs domain.FeasibilityInputs
	if err := c.ShouldBindJSON(&inputs); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	parser := config.NewInputParser()
	if err := parser.ValidateScenario(&config.Scenario{Feasibility: &inputs}); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result := s.engine.Compute(inputs)
	if result.Status == domain.StatusCannotCompute {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: result.Reason})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
