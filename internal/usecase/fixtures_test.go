package usecase

import (
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"lotwise/internal/domain/entities"
	mock_interfaces "lotwise/internal/usecase/interfaces/mocks"
)

func f64(v float64) *float64 { return &v }

func waZoningRules() map[string]entities.ZoningRule {
	return map[string]entities.ZoningRule{
		"R20": {MinLotSqm: 350, AvgLotSqm: 450, MinFrontageM: 10},
		"R40": {MinLotSqm: 180, AvgLotSqm: 220, MinFrontageM: 6},
	}
}

// waCostItems mirrors the default WA cost catalog. The SETTLEMENT entry
// deliberately differs from the assumptions default so tests can verify that
// assumptions take priority over the catalog for that item.
func waCostItems() map[string]entities.CostItem {
	return map[string]entities.CostItem{
		CostDemoBase:      {Unit: entities.CostUnitCurrency, DefaultValue: 35000},
		CostSubdivBase:    {Unit: entities.CostUnitCurrency, DefaultValue: 40000},
		CostUtilitiesBase: {Unit: entities.CostUnitCurrency, DefaultValue: 15000},
		CostMarketing:     {Unit: entities.CostUnitPercent, DefaultValue: 0.025},
		CostSettlement:    {Unit: entities.CostUnitCurrency, DefaultValue: 2000},
	}
}

func newCatalogSource(t *testing.T, duty []entities.DutyBracket) *mock_interfaces.MockICatalogSource {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	catalogs := mock_interfaces.NewMockICatalogSource(ctrl)
	catalogs.EXPECT().ZoningRules().Return(waZoningRules()).AnyTimes()
	catalogs.EXPECT().CostItems().Return(waCostItems()).AnyTimes()
	catalogs.EXPECT().DutyBrackets().Return(duty).AnyTimes()
	return catalogs
}

// thornlieRequest is the reference 760 sqm R20 parcel used across tests.
func thornlieRequest() entities.EvaluationRequest {
	return entities.EvaluationRequest{
		Prop: entities.PropertyInput{
			Address:       "123 Sample St, Thornlie WA",
			LandAreaSqm:   760,
			FrontageM:     f64(12.5),
			RCode:         "R20",
			PurchasePrice: 680000,
		},
		Asm: entities.DefaultAssumptions(),
		Market: entities.MarketBenchmarks{
			LandPricePerSqmSmallLot: 1600,
			LandTargetLotSizeSqm:    200,
		},
	}
}

func containsNote(notes []string, substr string) bool {
	for _, n := range notes {
		if strings.Contains(n, substr) {
			return true
		}
	}
	return false
}
