package usecase

import (
	"strings"

	"lotwise/internal/domain/entities"
)

// Cost catalog item codes.
const (
	CostDemoBase      = "DEMO_BASE"
	CostSubdivBase    = "SUBDIV_BASE"
	CostUtilitiesBase = "UTILITIES_BASE"
	CostMarketing     = "MARKETING"
	CostSettlement    = "SETTLEMENT"
	CostContingency   = "CONTINGENCY"
	CostBuild         = "BUILD"
)

// costItemOrder fixes the rendering order of breakdown items in notes.
var costItemOrder = []string{
	CostDemoBase,
	CostSubdivBase,
	CostUtilitiesBase,
	CostMarketing,
	CostSettlement,
	CostContingency,
	CostBuild,
}

// CostBreakdown maps item codes to computed amounts. TotalExPurchase
// excludes the purchase price, stamp duty and holding cost; the scenario
// builder adds those.
type CostBreakdown struct {
	Items           map[string]float64
	TotalExPurchase float64
}

// computeProjectCosts aggregates catalog-driven line items for one scenario.
//
// Rules:
//   - demolition, subdivision and utilities are flat catalog amounts (0 when absent)
//   - marketing multiplies revenue when its catalog unit is percent
//   - settlement always comes from the request's assumptions, never the catalog
//   - contingency applies only to the hard costs (demo + subdiv + utilities)
func (u *EvaluateUseCase) computeProjectCosts(req entities.EvaluationRequest, lots int, revenue float64) CostBreakdown {
	catalog := u.catalogs.CostItems()

	demo := catalog[CostDemoBase].DefaultValue
	subdiv := catalog[CostSubdivBase].DefaultValue
	utilities := catalog[CostUtilitiesBase].DefaultValue

	mkt := catalog[CostMarketing]
	marketing := mkt.DefaultValue
	if strings.EqualFold(string(mkt.Unit), string(entities.CostUnitPercent)) {
		marketing = revenue * mkt.DefaultValue
	}

	settlement := req.Asm.SettlementCost

	hardCosts := demo + subdiv + utilities
	contingency := hardCosts * req.Asm.ContingencyPct

	items := map[string]float64{
		CostDemoBase:      demo,
		CostSubdivBase:    subdiv,
		CostUtilitiesBase: utilities,
		CostMarketing:     marketing,
		CostSettlement:    settlement,
		CostContingency:   contingency,
	}
	return CostBreakdown{Items: items, TotalExPurchase: sumItems(items)}
}

func sumItems(items map[string]float64) float64 {
	total := 0.0
	for _, v := range items {
		total += v
	}
	return total
}

func cloneItems(items map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(items))
	for k, v := range items {
		out[k] = v
	}
	return out
}
