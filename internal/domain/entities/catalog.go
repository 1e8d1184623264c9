package entities

// ZoningRule is one row of the R-code catalog.
//
// A zero field means the catalog did not specify the value; consumers treat
// zero as "no constraint" rather than an error.
type ZoningRule struct {
	MinLotSqm    float64 `json:"min_lot_sqm"`
	AvgLotSqm    float64 `json:"avg_lot_sqm"`
	MinFrontageM float64 `json:"min_frontage_m"`
}

// CostUnit tells how a cost catalog default is interpreted.
type CostUnit string

const (
	// CostUnitCurrency marks a flat currency amount (AUD).
	CostUnitCurrency CostUnit = "AUD"
	// CostUnitPercent marks a fraction of scenario revenue.
	CostUnitPercent CostUnit = "percent"
)

// CostItem is one row of the cost catalog.
type CostItem struct {
	Unit         CostUnit `json:"unit"`
	DefaultValue float64  `json:"default_value"`
}

// DutyBracket is one row of the stamp duty schedule.
// Fixed is the cumulative duty at LowerBound, so duty within a bracket is
// Fixed + (price - LowerBound) * Rate.
type DutyBracket struct {
	LowerBound float64 `json:"lower_bound"`
	Rate       float64 `json:"rate"`
	Fixed      float64 `json:"fixed"`
}
