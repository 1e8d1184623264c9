package usecase

import (
	"fmt"
	"math"

	"lotwise/internal/domain/entities"
)

// minFrontageRequired picks the governing frontage minimum: a zoning rule
// value takes priority over the scenario settings when the catalog knows one.
func minFrontageRequired(scen entities.ScenarioSettings, rule *entities.ZoningRule) float64 {
	if rule != nil && rule.MinFrontageM != 0 {
		return rule.MinFrontageM
	}
	return scen.MinFrontageRequiredM
}

// effectiveMinLotSize conservatively takes the larger of the requested target
// lot size and the zoning minimum (when known).
func effectiveMinLotSize(scen entities.ScenarioSettings, rule *entities.ZoningRule) int {
	base := scen.TargetLotSizeSqm
	if rule != nil && rule.MinLotSqm != 0 {
		if minLot := int(rule.MinLotSqm); minLot > base {
			return minLot
		}
	}
	return base
}

// estimateLotYield computes how many compliant lots the parcel yields.
//
// Undesirable configurations degrade to zero lots with explanatory notes;
// the function never fails and the count is never negative.
func estimateLotYield(prop entities.PropertyInput, scen *entities.ScenarioSettings, rule *entities.ZoningRule) (int, []string) {
	var notes []string
	s := entities.DefaultScenarioSettings()
	if scen != nil {
		s = *scen
	}

	minFront := minFrontageRequired(s, rule)
	if prop.FrontageM != nil && *prop.FrontageM < minFront {
		notes = append(notes, fmt.Sprintf("Frontage %.2fm < required %.2fm.", *prop.FrontageM, minFront))
		return 0, notes
	}

	minLot := effectiveMinLotSize(s, rule)
	if minLot != s.TargetLotSizeSqm {
		notes = append(notes, fmt.Sprintf("Target lot size raised to %d sqm due to R-code minimum.", minLot))
	}

	if prop.LandAreaSqm <= 0 || minLot <= 0 {
		return 0, notes
	}

	lots := int(math.Floor(prop.LandAreaSqm / float64(minLot)))
	if lots < 1 {
		notes = append(notes, "Insufficient land area for even a single compliant lot.")
		return 0, notes
	}

	// Corner-lot, shape and easement adjustments are out of scope; the only
	// extra signal is the non-divisible residue.
	if math.Mod(prop.LandAreaSqm, float64(minLot)) != 0 {
		leftover := prop.LandAreaSqm - float64(lots*minLot)
		notes = append(notes, fmt.Sprintf("Leftover area ~%.0f sqm (non-divisible residue).", leftover))
	}

	return lots, notes
}
