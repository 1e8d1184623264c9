package entities

// Severity grades an advice item.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// PropertyInput describes the parcel under evaluation.
//
// Frontage and the R-code are optional: when frontage is unknown the yield
// estimate skips the frontage compliance check, and an unknown R-code simply
// means no zoning enrichment applies.
type PropertyInput struct {
	Address       string   `json:"address,omitempty"`
	Suburb        string   `json:"suburb,omitempty"`
	LandAreaSqm   float64  `json:"land_area_sqm"`
	FrontageM     *float64 `json:"frontage_m,omitempty"`
	RCode         string   `json:"r_code,omitempty"`
	PurchasePrice float64  `json:"purchase_price"`
}

// Assumptions bundles the financial defaults a caller may override.
type Assumptions struct {
	DemoCostFixedMin   float64  `json:"demo_cost_fixed_min"`
	DemoCostFixedMax   float64  `json:"demo_cost_fixed_max"`
	SubdivCostRangeMin float64  `json:"subdiv_cost_range_min"`
	SubdivCostRangeMax float64  `json:"subdiv_cost_range_max"`
	MinBuildCostTotal  float64  `json:"min_build_cost_total"`
	AnnualInterestRate float64  `json:"annual_interest_rate"`
	SubdivMonths       int      `json:"subdiv_months"`
	BuildMonths        int      `json:"build_months"`
	WeeklyRentIfRetain float64  `json:"weekly_rent_if_retain"`
	StampDuty          *float64 `json:"stamp_duty,omitempty"`
	SettlementCost     float64  `json:"settlement_cost"`
	CouncilRatesAnnual float64  `json:"council_rates_annual"`
	ContingencyPct     float64  `json:"contingency_pct"`
}

// DefaultAssumptions returns the baseline financial assumptions.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		DemoCostFixedMin:   20_000,
		DemoCostFixedMax:   50_000,
		SubdivCostRangeMin: 30_000,
		SubdivCostRangeMax: 50_000,
		MinBuildCostTotal:  300_000,
		AnnualInterestRate: 0.07,
		SubdivMonths:       6,
		BuildMonths:        18,
		WeeklyRentIfRetain: 500,
		SettlementCost:     1000,
		CouncilRatesAnnual: 1200,
		ContingencyPct:     0.10,
	}
}

// MarketBenchmarks carries market pricing inputs.
type MarketBenchmarks struct {
	LandPricePerSqmSmallLot float64  `json:"land_price_per_sqm_small_lot"`
	HouseARV                *float64 `json:"house_arv,omitempty"`
	LandTargetLotSizeSqm    int      `json:"land_target_lot_size_sqm"`
}

// ScenarioSettings controls lot sizing and retention. Enrichment may raise
// the minimums from the zoning catalog but never lowers a stricter caller
// value below the catalog floor.
type ScenarioSettings struct {
	AllowRetain          bool    `json:"allow_retain"`
	TargetLotSizeSqm     int     `json:"target_lot_size_sqm"`
	MinFrontageRequiredM float64 `json:"min_frontage_required_m"`
}

// DefaultScenarioSettings returns the settings used when the caller supplies none.
func DefaultScenarioSettings() ScenarioSettings {
	return ScenarioSettings{
		AllowRetain:          true,
		TargetLotSizeSqm:     200,
		MinFrontageRequiredM: 10.0,
	}
}

// EvaluationRequest is the validated input bundle the core evaluates.
// Scen is nil when the caller supplied no scenario settings; enrichment
// substitutes the defaults.
type EvaluationRequest struct {
	Prop   PropertyInput     `json:"prop"`
	Asm    Assumptions       `json:"asm"`
	Market MarketBenchmarks  `json:"market"`
	Scen   *ScenarioSettings `json:"scen,omitempty"`
}

// ScenarioResult is one fully accounted subdivision scenario.
//
// TotalCost includes purchase price, stamp duty and project costs; the
// interest carry is isolated in HoldingCost.
type ScenarioResult struct {
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

// AdviceItem is an advisory flag; it never alters the computation.
type AdviceItem struct {
	Code     string   `json:"code"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// SensitivityBand holds profit under base, +10% and -10% land price per sqm.
type SensitivityBand struct {
	BaseProfit  float64 `json:"base_profit"`
	BestProfit  float64 `json:"best_profit"`
	WorstProfit float64 `json:"worst_profit"`
}

// EvaluationResponse is the assembled result of one evaluation.
// Scenarios are ranked best-first by (profit, margin-on-cost).
type EvaluationResponse struct {
	PricePerSqm      float64                    `json:"price_per_sqm"`
	LotYieldEstimate int                        `json:"lot_yield_estimate"`
	Scenarios        []ScenarioResult           `json:"scenarios"`
	Advice           []AdviceItem               `json:"advice"`
	Sensitivity      map[string]SensitivityBand `json:"sensitivity,omitempty"`
	BestScenario     string                     `json:"best_scenario,omitempty"`
	Ranking          []string                   `json:"ranking"`
}
