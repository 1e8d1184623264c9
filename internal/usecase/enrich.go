package usecase

import (
	"fmt"
	"math"

	"lotwise/internal/domain/entities"
)

// frontageEpsilon is the tolerance below which a catalog frontage is treated
// as equal to the requested one.
const frontageEpsilon = 1e-9

// enrichmentContext carries the matched zoning rule and the notes
// accumulated while enriching, for consumption by later pipeline stages.
type enrichmentContext struct {
	rule  *entities.ZoningRule
	notes []string
}

// enrich merges zoning-catalog minimums into the scenario settings.
//
// The catalog only ever raises requirements: the target lot size is lifted to
// the zoning minimum when that is stricter, and the frontage requirement is
// set from the catalog when it differs. The incoming request is never
// mutated; a copy with fresh settings is returned.
func (u *EvaluateUseCase) enrich(req entities.EvaluationRequest) (entities.EvaluationRequest, enrichmentContext) {
	rules := u.catalogs.ZoningRules()

	var rule *entities.ZoningRule
	if req.Prop.RCode != "" {
		if r, ok := rules[req.Prop.RCode]; ok {
			rule = &r
		}
	}

	var notes []string
	scen := entities.DefaultScenarioSettings()
	if req.Scen != nil {
		scen = *req.Scen
	}

	if rule != nil && rule.MinLotSqm > 0 {
		if minLot := int(rule.MinLotSqm); minLot > scen.TargetLotSizeSqm {
			notes = append(notes, fmt.Sprintf("Target lot size raised from %d to %d due to R-code minimum.", scen.TargetLotSizeSqm, minLot))
			scen.TargetLotSizeSqm = minLot
		}
	}

	if rule != nil && rule.MinFrontageM > 0 {
		if math.Abs(rule.MinFrontageM-scen.MinFrontageRequiredM) > frontageEpsilon {
			notes = append(notes, fmt.Sprintf("Min frontage requirement set to %gm from R-code.", rule.MinFrontageM))
			scen.MinFrontageRequiredM = rule.MinFrontageM
		}
	}

	enriched := req
	enriched.Scen = &scen
	return enriched, enrichmentContext{rule: rule, notes: notes}
}
