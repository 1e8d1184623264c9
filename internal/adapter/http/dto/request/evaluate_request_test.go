package request

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"lotwise/internal/domain/entities"
)

func TestEvaluateRequest_ToEvaluation_Defaults(t *testing.T) {
	payload := `{
		"prop": {"land_area_sqm": 760, "purchase_price": 680000, "frontage_m": 12.5, "r_code": "R20"},
		"asm": {},
		"market": {"land_price_per_sqm_small_lot": 1600}
	}`

	var r EvaluateRequest
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	got := r.ToEvaluation()

	if diff := cmp.Diff(entities.DefaultAssumptions(), got.Asm); diff != "" {
		t.Fatalf("assumptions defaults mismatch (-want +got):\n%s", diff)
	}
	if got.Market.LandTargetLotSizeSqm != 200 {
		t.Fatalf("target lot size default = %d, want 200", got.Market.LandTargetLotSizeSqm)
	}
	if got.Scen != nil {
		t.Fatalf("expected nil scenario settings when omitted, got %+v", got.Scen)
	}
	if got.Prop.FrontageM == nil || *got.Prop.FrontageM != 12.5 {
		t.Fatalf("frontage not carried: %+v", got.Prop)
	}
}

func TestEvaluateRequest_ToEvaluation_Overrides(t *testing.T) {
	payload := `{
		"prop": {"land_area_sqm": 760, "purchase_price": 680000},
		"asm": {"annual_interest_rate": 0.05, "subdiv_months": 9, "settlement_cost": 2500, "stamp_duty": 30000},
		"market": {"land_price_per_sqm_small_lot": 1600, "house_arv": 850000, "land_target_lot_size_sqm": 250},
		"scen": {"allow_retain": false, "target_lot_size_sqm": 300}
	}`

	var r EvaluateRequest
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	got := r.ToEvaluation()

	if got.Asm.AnnualInterestRate != 0.05 || got.Asm.SubdivMonths != 9 || got.Asm.SettlementCost != 2500 {
		t.Fatalf("assumption overrides not applied: %+v", got.Asm)
	}
	if got.Asm.StampDuty == nil || *got.Asm.StampDuty != 30000 {
		t.Fatalf("stamp duty override not carried: %+v", got.Asm.StampDuty)
	}
	if got.Asm.BuildMonths != 18 {
		t.Fatalf("untouched assumption changed: %+v", got.Asm)
	}
	if got.Market.HouseARV == nil || *got.Market.HouseARV != 850000 {
		t.Fatalf("house ARV not carried: %+v", got.Market)
	}
	if got.Market.LandTargetLotSizeSqm != 250 {
		t.Fatalf("market target lot override not applied: %+v", got.Market)
	}
	if got.Scen == nil || got.Scen.AllowRetain || got.Scen.TargetLotSizeSqm != 300 {
		t.Fatalf("scenario overrides not applied: %+v", got.Scen)
	}
	if got.Scen.MinFrontageRequiredM != 10 {
		t.Fatalf("omitted scenario field must keep default: %+v", got.Scen)
	}
}
