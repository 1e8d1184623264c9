package interfaces

import (
	"lotwise/internal/domain/entities"
)

// ICatalogSource abstracts access to the static reference tables.
//
// The evaluator needs:
//   - zoning rules keyed by R-code (enrichment + lot yield)
//   - cost catalog items keyed by item code (cost aggregation)
//   - the stamp duty bracket schedule, sorted ascending by lower bound
//
// Implementations must tolerate missing data: an absent catalog is an empty
// map or nil slice, never an error.

type ICatalogSource interface {
	ZoningRules() map[string]entities.ZoningRule
	CostItems() map[string]entities.CostItem
	DutyBrackets() []entities.DutyBracket
}
