package usecase

import (
	"testing"

	"go.uber.org/mock/gomock"

	"lotwise/internal/domain/entities"
	mock_interfaces "lotwise/internal/usecase/interfaces/mocks"
)

func TestComputeProjectCosts_CatalogDefaults(t *testing.T) {
	uc := NewEvaluateUseCase(newCatalogSource(t, nil))
	req := thornlieRequest()

	// 2 lots at the enriched 350 sqm target and 1600/sqm.
	revenue := float64(2 * 350 * 1600)
	costs := uc.computeProjectCosts(req, 2, revenue)

	expected := map[string]float64{
		CostDemoBase:      35000,
		CostSubdivBase:    40000,
		CostUtilitiesBase: 15000,
		CostMarketing:     28000, // 2.5% of 1,120,000
		CostSettlement:    1000,  // from assumptions; catalog entry ignored
		CostContingency:   9000,  // 10% of the 90,000 hard costs
	}
	for code, want := range expected {
		if got := costs.Items[code]; !almostEqual(got, want) {
			t.Fatalf("%s = %v, want %v", code, got, want)
		}
	}
	if !almostEqual(costs.TotalExPurchase, 128000) {
		t.Fatalf("total ex purchase = %v, want 128000", costs.TotalExPurchase)
	}
}

func TestComputeProjectCosts_FlatMarketing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	catalogs := mock_interfaces.NewMockICatalogSource(ctrl)
	items := waCostItems()
	items[CostMarketing] = entities.CostItem{Unit: entities.CostUnitCurrency, DefaultValue: 5000}
	catalogs.EXPECT().CostItems().Return(items).AnyTimes()

	uc := NewEvaluateUseCase(catalogs)
	costs := uc.computeProjectCosts(thornlieRequest(), 2, 1120000)

	if got := costs.Items[CostMarketing]; !almostEqual(got, 5000) {
		t.Fatalf("flat marketing = %v, want 5000", got)
	}
}

func TestComputeProjectCosts_EmptyCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	catalogs := mock_interfaces.NewMockICatalogSource(ctrl)
	catalogs.EXPECT().CostItems().Return(map[string]entities.CostItem{}).AnyTimes()

	uc := NewEvaluateUseCase(catalogs)
	costs := uc.computeProjectCosts(thornlieRequest(), 2, 1120000)

	// Only the assumption-driven settlement survives; contingency applies to
	// zero hard costs.
	if !almostEqual(costs.TotalExPurchase, 1000) {
		t.Fatalf("total ex purchase = %v, want 1000", costs.TotalExPurchase)
	}
}
