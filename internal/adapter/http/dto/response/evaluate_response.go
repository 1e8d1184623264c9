package response

import (
	"lotwise/internal/domain/entities"
)

type ScenarioResultResponse struct {
	Scenario     string   `json:"scenario"`
	Lots         int      `json:"lots"`
	Revenue      float64  `json:"revenue"`
	TotalCost    float64  `json:"total_cost"`
	HoldingCost  float64  `json:"holding_cost"`
	Profit       float64  `json:"profit"`
	MarginOnCost float64  `json:"margin_on_cost"`
	ROISimple    float64  `json:"roi_simple"`
	Notes        []string `json:"notes"`
}

type AdviceItemResponse struct {
	Code     string `json:"code"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

type SensitivityBandResponse struct {
	BaseProfit  float64 `json:"base_profit"`
	BestProfit  float64 `json:"best_profit"`
	WorstProfit float64 `json:"worst_profit"`
}

// EvaluationResponse is the payload returned by POST /v1/evaluate.
// Scenarios are ranked best-first.
type EvaluationResponse struct {
	PricePerSqm      float64                            `json:"price_per_sqm"`
	LotYieldEstimate int                                `json:"lot_yield_estimate"`
	Scenarios        []ScenarioResultResponse           `json:"scenarios"`
	Advice           []AdviceItemResponse               `json:"advice"`
	Sensitivity      map[string]SensitivityBandResponse `json:"sensitivity,omitempty"`
	BestScenario     string                             `json:"best_scenario,omitempty"`
	Ranking          []string                           `json:"ranking"`
}

func FromEvaluation(e entities.EvaluationResponse) EvaluationResponse {
	scenarios := make([]ScenarioResultResponse, 0, len(e.Scenarios))
	for _, s := range e.Scenarios {
		scenarios = append(scenarios, ScenarioResultResponse{
			Scenario:     s.Scenario,
			Lots:         s.Lots,
			Revenue:      s.Revenue,
			TotalCost:    s.TotalCost,
			HoldingCost:  s.HoldingCost,
			Profit:       s.Profit,
			MarginOnCost: s.MarginOnCost,
			ROISimple:    s.ROISimple,
			Notes:        s.Notes,
		})
	}

	advice := make([]AdviceItemResponse, 0, len(e.Advice))
	for _, a := range e.Advice {
		advice = append(advice, AdviceItemResponse{
			Code:     a.Code,
			Severity: string(a.Severity),
			Message:  a.Message,
		})
	}

	var sensitivity map[string]SensitivityBandResponse
	if e.Sensitivity != nil {
		sensitivity = make(map[string]SensitivityBandResponse, len(e.Sensitivity))
		for k, b := range e.Sensitivity {
			sensitivity[k] = SensitivityBandResponse{
				BaseProfit:  b.BaseProfit,
				BestProfit:  b.BestProfit,
				WorstProfit: b.WorstProfit,
			}
		}
	}

	return EvaluationResponse{
		PricePerSqm:      e.PricePerSqm,
		LotYieldEstimate: e.LotYieldEstimate,
		Scenarios:        scenarios,
		Advice:           advice,
		Sensitivity:      sensitivity,
		BestScenario:     e.BestScenario,
		Ranking:          e.Ranking,
	}
}
