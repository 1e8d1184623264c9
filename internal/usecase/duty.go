package usecase

import (
	"lotwise/internal/domain/entities"
)

// CalcStampDuty computes transfer duty through a piecewise-linear bracket
// schedule. Brackets must be sorted ascending by lower bound and carry
// cumulative fixed amounts, so duty inside a bracket is
// fixed + (price - lower) * rate.
//
// A non-positive price or an empty schedule yields 0; the loader logs the
// empty-schedule case so the zero does not go entirely unnoticed.
func CalcStampDuty(purchasePrice float64, brackets []entities.DutyBracket) float64 {
	if purchasePrice <= 0 {
		return 0
	}
	if len(brackets) == 0 {
		return 0
	}

	// Bracket with the greatest lower bound not exceeding the price;
	// a price equal to a lower bound selects that bracket.
	var selected *entities.DutyBracket
	for i := range brackets {
		if purchasePrice >= brackets[i].LowerBound {
			selected = &brackets[i]
		} else {
			break
		}
	}
	if selected == nil {
		return 0
	}
	return selected.Fixed + (purchasePrice-selected.LowerBound)*selected.Rate
}
