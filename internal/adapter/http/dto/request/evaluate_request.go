package request

import (
	"lotwise/internal/domain/entities"
)

// PropertyRequest carries the parcel attributes. Structural validation
// (positivity, bounds) happens here through binding tags; the core does not
// re-validate.
type PropertyRequest struct {
	Address       string   `json:"address"`
	Suburb        string   `json:"suburb"`
	LandAreaSqm   float64  `json:"land_area_sqm" binding:"required,gt=0"`
	FrontageM     *float64 `json:"frontage_m" binding:"omitempty,gt=0"`
	RCode         string   `json:"r_code"`
	PurchasePrice float64  `json:"purchase_price" binding:"required,gt=0"`
}

// AssumptionsRequest overrides any subset of the financial defaults.
// Absent fields keep the documented defaults.
type AssumptionsRequest struct {
	DemoCostFixedMin   *float64 `json:"demo_cost_fixed_min" binding:"omitempty,gte=0"`
	DemoCostFixedMax   *float64 `json:"demo_cost_fixed_max" binding:"omitempty,gte=0"`
	SubdivCostRangeMin *float64 `json:"subdiv_cost_range_min" binding:"omitempty,gte=0"`
	SubdivCostRangeMax *float64 `json:"subdiv_cost_range_max" binding:"omitempty,gte=0"`
	MinBuildCostTotal  *float64 `json:"min_build_cost_total" binding:"omitempty,gte=0"`
	AnnualInterestRate *float64 `json:"annual_interest_rate" binding:"omitempty,gte=0,lte=1"`
	SubdivMonths       *int     `json:"subdiv_months" binding:"omitempty,gte=0"`
	BuildMonths        *int     `json:"build_months" binding:"omitempty,gte=0"`
	WeeklyRentIfRetain *float64 `json:"weekly_rent_if_retain" binding:"omitempty,gte=0"`
	StampDuty          *float64 `json:"stamp_duty" binding:"omitempty,gte=0"`
	SettlementCost     *float64 `json:"settlement_cost" binding:"omitempty,gte=0"`
	CouncilRatesAnnual *float64 `json:"council_rates_annual" binding:"omitempty,gte=0"`
	ContingencyPct     *float64 `json:"contingency_pct" binding:"omitempty,gte=0,lte=1"`
}

type MarketRequest struct {
	LandPricePerSqmSmallLot float64  `json:"land_price_per_sqm_small_lot" binding:"required,gt=0"`
	HouseARV                *float64 `json:"house_arv" binding:"omitempty,gt=0"`
	LandTargetLotSizeSqm    *int     `json:"land_target_lot_size_sqm" binding:"omitempty,gt=0"`
}

type ScenarioSettingsRequest struct {
	AllowRetain          *bool    `json:"allow_retain"`
	TargetLotSizeSqm     *int     `json:"target_lot_size_sqm" binding:"omitempty,gt=0"`
	MinFrontageRequiredM *float64 `json:"min_frontage_required_m" binding:"omitempty,gt=0"`
}

// EvaluateRequest is the evaluation payload accepted by POST /v1/evaluate.
type EvaluateRequest struct {
	Prop   PropertyRequest          `json:"prop" binding:"required"`
	Asm    AssumptionsRequest       `json:"asm"`
	Market MarketRequest            `json:"market" binding:"required"`
	Scen   *ScenarioSettingsRequest `json:"scen"`
}

// ToEvaluation converts the payload into the domain request, applying
// defaults for every omitted assumption and setting.
func (r EvaluateRequest) ToEvaluation() entities.EvaluationRequest {
	asm := entities.DefaultAssumptions()
	asm.DemoCostFixedMin = orFloat(r.Asm.DemoCostFixedMin, asm.DemoCostFixedMin)
	asm.DemoCostFixedMax = orFloat(r.Asm.DemoCostFixedMax, asm.DemoCostFixedMax)
	asm.SubdivCostRangeMin = orFloat(r.Asm.SubdivCostRangeMin, asm.SubdivCostRangeMin)
	asm.SubdivCostRangeMax = orFloat(r.Asm.SubdivCostRangeMax, asm.SubdivCostRangeMax)
	asm.MinBuildCostTotal = orFloat(r.Asm.MinBuildCostTotal, asm.MinBuildCostTotal)
	asm.AnnualInterestRate = orFloat(r.Asm.AnnualInterestRate, asm.AnnualInterestRate)
	asm.SubdivMonths = orInt(r.Asm.SubdivMonths, asm.SubdivMonths)
	asm.BuildMonths = orInt(r.Asm.BuildMonths, asm.BuildMonths)
	asm.WeeklyRentIfRetain = orFloat(r.Asm.WeeklyRentIfRetain, asm.WeeklyRentIfRetain)
	asm.StampDuty = r.Asm.StampDuty
	asm.SettlementCost = orFloat(r.Asm.SettlementCost, asm.SettlementCost)
	asm.CouncilRatesAnnual = orFloat(r.Asm.CouncilRatesAnnual, asm.CouncilRatesAnnual)
	asm.ContingencyPct = orFloat(r.Asm.ContingencyPct, asm.ContingencyPct)

	market := entities.MarketBenchmarks{
		LandPricePerSqmSmallLot: r.Market.LandPricePerSqmSmallLot,
		HouseARV:                r.Market.HouseARV,
		LandTargetLotSizeSqm:    orInt(r.Market.LandTargetLotSizeSqm, 200),
	}

	var scen *entities.ScenarioSettings
	if r.Scen != nil {
		s := entities.DefaultScenarioSettings()
		if r.Scen.AllowRetain != nil {
			s.AllowRetain = *r.Scen.AllowRetain
		}
		s.TargetLotSizeSqm = orInt(r.Scen.TargetLotSizeSqm, s.TargetLotSizeSqm)
		s.MinFrontageRequiredM = orFloat(r.Scen.MinFrontageRequiredM, s.MinFrontageRequiredM)
		scen = &s
	}

	return entities.EvaluationRequest{
		Prop: entities.PropertyInput{
			Address:       r.Prop.Address,
			Suburb:        r.Prop.Suburb,
			LandAreaSqm:   r.Prop.LandAreaSqm,
			FrontageM:     r.Prop.FrontageM,
			RCode:         r.Prop.RCode,
			PurchasePrice: r.Prop.PurchasePrice,
		},
		Asm:    asm,
		Market: market,
		Scen:   scen,
	}
}

func orFloat(v *float64, def float64) float64 {
	if v != nil {
		return *v
	}
	return def
}

func orInt(v *int, def int) int {
	if v != nil {
		return *v
	}
	return def
}
