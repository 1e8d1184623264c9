package response

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"lotwise/internal/domain/entities"
)

func TestFromEvaluation(t *testing.T) {
	e := entities.EvaluationResponse{
		PricePerSqm:      894.74,
		LotYieldEstimate: 2,
		Scenarios: []entities.ScenarioResult{
			{
				Scenario:     "subdivide_sell_lots",
				Lots:         2,
				Revenue:      1120000,
				TotalCost:    808000,
				HoldingCost:  23800,
				Profit:       288200,
				MarginOnCost: 0.3465,
				ROISimple:    0.4238,
				Notes:        []string{"Leftover area ~60 sqm (non-divisible residue)."},
			},
		},
		Advice: []entities.AdviceItem{
			{Code: "MISSING_FRONTAGE", Severity: entities.SeverityMedium, Message: "Frontage not supplied."},
		},
		Sensitivity: map[string]entities.SensitivityBand{
			"land_psqm": {BaseProfit: 288200, BestProfit: 400200, WorstProfit: 176200},
		},
		BestScenario: "subdivide_sell_lots",
		Ranking:      []string{"subdivide_sell_lots"},
	}

	got := FromEvaluation(e)

	want := EvaluationResponse{
		PricePerSqm:      894.74,
		LotYieldEstimate: 2,
		Scenarios: []ScenarioResultResponse{
			{
				Scenario:     "subdivide_sell_lots",
				Lots:         2,
				Revenue:      1120000,
				TotalCost:    808000,
				HoldingCost:  23800,
				Profit:       288200,
				MarginOnCost: 0.3465,
				ROISimple:    0.4238,
				Notes:        []string{"Leftover area ~60 sqm (non-divisible residue)."},
			},
		},
		Advice: []AdviceItemResponse{
			{Code: "MISSING_FRONTAGE", Severity: "medium", Message: "Frontage not supplied."},
		},
		Sensitivity: map[string]SensitivityBandResponse{
			"land_psqm": {BaseProfit: 288200, BestProfit: 400200, WorstProfit: 176200},
		},
		BestScenario: "subdivide_sell_lots",
		Ranking:      []string{"subdivide_sell_lots"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("response mismatch (-want +got):\n%s", diff)
	}
}

func TestFromEvaluation_EmptyCollections(t *testing.T) {
	got := FromEvaluation(entities.EvaluationResponse{})

	if got.Scenarios == nil || got.Advice == nil {
		t.Fatalf("collections must serialize as empty arrays, not null: %+v", got)
	}
	if got.Sensitivity != nil {
		t.Fatalf("absent sensitivity must stay nil for omitempty: %+v", got.Sensitivity)
	}
}
