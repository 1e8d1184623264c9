package usecase

import (
	"context"
	"errors"
	"sort"

	"lotwise/internal/domain/entities"
	"lotwise/internal/usecase/interfaces"
)

var (
	ErrInvalidLandArea = errors.New("invalid land area")
)

// Advice codes emitted by the evaluator.
const (
	AdviceNoYield         = "NO_YIELD"
	AdviceMissingFrontage = "MISSING_FRONTAGE"
)

// sensitivityLandPsqm keys the land-price-per-sqm band in the response.
const sensitivityLandPsqm = "land_psqm"

// IEvaluateUseCase exposes the scenario evaluation pipeline.
//
// Evaluate runs the single-pass pipeline: enrichment against the zoning
// catalog, lot-yield estimation, scenario building, ranking, sensitivity and
// advice. Bad business inputs (no zoning match, failed frontage, missing
// ARV, absent catalogs) degrade to zero-yield / omitted-scenario results with
// notes; only structurally invalid input is an error.
type IEvaluateUseCase interface {
	Evaluate(ctx context.Context, req entities.EvaluationRequest) (entities.EvaluationResponse, error)
}

type EvaluateUseCase struct {
	catalogs interfaces.ICatalogSource
}

var _ IEvaluateUseCase = (*EvaluateUseCase)(nil)

func NewEvaluateUseCase(catalogs interfaces.ICatalogSource) *EvaluateUseCase {
	return &EvaluateUseCase{catalogs: catalogs}
}

func (u *EvaluateUseCase) Evaluate(_ context.Context, req entities.EvaluationRequest) (entities.EvaluationResponse, error) {
	if req.Prop.LandAreaSqm <= 0 {
		return entities.EvaluationResponse{}, ErrInvalidLandArea
	}

	enriched, ectx := u.enrich(req)

	lots, yieldNotes := estimateLotYield(enriched.Prop, enriched.Scen, ectx.rule)
	ectx.notes = append(ectx.notes, yieldNotes...)

	scenarios := u.buildScenarios(enriched, ectx, lots)

	// Sensitivity is anchored on scenario A (the first constructed scenario)
	// before ranking, so the base band equals its profit exactly.
	var sensitivity map[string]entities.SensitivityBand
	if len(scenarios) > 0 {
		costBase := scenarios[0].TotalCost + scenarios[0].HoldingCost
		targetLot := targetLotSize(enriched)
		profitFor := func(psqm float64) float64 {
			return float64(lots*targetLot)*psqm - costBase
		}
		basePsqm := enriched.Market.LandPricePerSqmSmallLot
		sensitivity = map[string]entities.SensitivityBand{
			sensitivityLandPsqm: {
				BaseProfit:  profitFor(basePsqm),
				BestProfit:  profitFor(basePsqm * 1.10),
				WorstProfit: profitFor(basePsqm * 0.90),
			},
		}
	}

	rankScenarios(scenarios)

	ranking := make([]string, 0, len(scenarios))
	for _, s := range scenarios {
		ranking = append(ranking, s.Scenario)
	}
	best := ""
	if len(scenarios) > 0 {
		best = scenarios[0].Scenario
	}

	return entities.EvaluationResponse{
		PricePerSqm:      enriched.Prop.PurchasePrice / enriched.Prop.LandAreaSqm,
		LotYieldEstimate: lots,
		Scenarios:        scenarios,
		Advice:           advise(enriched.Prop, lots),
		Sensitivity:      sensitivity,
		BestScenario:     best,
		Ranking:          ranking,
	}, nil
}

// rankScenarios orders scenarios best-first by (profit, margin-on-cost).
// The sort is stable, so fully equal scenarios keep construction order.
func rankScenarios(scenarios []entities.ScenarioResult) {
	sort.SliceStable(scenarios, func(i, j int) bool {
		if scenarios[i].Profit != scenarios[j].Profit {
			return scenarios[i].Profit > scenarios[j].Profit
		}
		return scenarios[i].MarginOnCost > scenarios[j].MarginOnCost
	})
}

func advise(prop entities.PropertyInput, lots int) []entities.AdviceItem {
	advice := make([]entities.AdviceItem, 0, 2)
	if lots == 0 {
		advice = append(advice, entities.AdviceItem{
			Code:     AdviceNoYield,
			Severity: entities.SeverityHigh,
			Message:  "No compliant lots are achievable with the current inputs; check frontage and R-code constraints.",
		})
	}
	if prop.FrontageM == nil {
		advice = append(advice, entities.AdviceItem{
			Code:     AdviceMissingFrontage,
			Severity: entities.SeverityMedium,
			Message:  "Frontage not supplied; the estimate is indicative and skips frontage compliance checks.",
		})
	}
	return advice
}
