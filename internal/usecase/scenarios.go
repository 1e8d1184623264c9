package usecase

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"lotwise/internal/domain/entities"
)

// Scenario identifiers, in construction order.
const (
	ScenarioSubdivideSellLots  = "subdivide_sell_lots"
	ScenarioRetainAndSubdivide = "retain_and_subdivide"
	ScenarioDemoRebuildAndSell = "demo_rebuild_and_sell"
)

// holdingCost is the interest carry on the purchase capital over the given
// number of months.
func holdingCost(purchase, annualRate float64, months int) float64 {
	return purchase * (annualRate / 12.0) * float64(months)
}

// guardedRatio divides num by den, substituting 1 when den is not positive.
// The substitution avoids NaN/Inf on degenerate cost bases; it is not a
// financially meaningful fallback.
func guardedRatio(num, den float64) float64 {
	if den <= 0 {
		den = 1
	}
	return num / den
}

func roiSimple(profit, purchase float64) float64 {
	if purchase > 0 {
		return profit / purchase
	}
	return 0
}

// targetLotSize returns the effective lot size for revenue estimation.
func targetLotSize(req entities.EvaluationRequest) int {
	if req.Scen != nil {
		return req.Scen.TargetLotSizeSqm
	}
	return req.Market.LandTargetLotSizeSqm
}

// stampDuty resolves the duty for the purchase: an explicit assumption
// override wins, otherwise the bracket schedule applies.
func (u *EvaluateUseCase) stampDuty(req entities.EvaluationRequest) float64 {
	if req.Asm.StampDuty != nil {
		return *req.Asm.StampDuty
	}
	return CalcStampDuty(req.Prop.PurchasePrice, u.catalogs.DutyBrackets())
}

func costsNote(items map[string]float64, duty float64) string {
	parts := make([]string, 0, len(items)+1)
	for _, code := range costItemOrder {
		if v, ok := items[code]; ok {
			parts = append(parts, fmt.Sprintf("%s=%s", code, humanize.CommafWithDigits(v, 0)))
		}
	}
	parts = append(parts, "DUTY="+humanize.CommafWithDigits(duty, 0))
	return "Costs: " + strings.Join(parts, ", ")
}

func mergeNotes(base []string, extra ...string) []string {
	merged := make([]string, 0, len(base)+len(extra))
	merged = append(merged, base...)
	for _, n := range extra {
		if n != "" {
			merged = append(merged, n)
		}
	}
	return merged
}

// buildScenarios produces the candidate scenarios for an enriched request.
//
//	A) subdivide and sell the bare lots
//	B) retain the existing dwelling and sell one rear lot (needs yield >= 2
//	   and AllowRetain)
//	C) demolish, build on every lot and sell the houses (needs a positive
//	   house ARV and at least one lot)
//
// TotalCost is purchase + stamp duty + project costs for every scenario;
// the interest carry stays isolated in HoldingCost.
func (u *EvaluateUseCase) buildScenarios(req entities.EvaluationRequest, ctx enrichmentContext, lots int) []entities.ScenarioResult {
	var scenarios []entities.ScenarioResult

	targetLot := targetLotSize(req)
	landPsqm := req.Market.LandPricePerSqmSmallLot
	purchase := req.Prop.PurchasePrice
	duty := u.stampDuty(req)

	// A) subdivide & sell lots
	revenueA := float64(lots*targetLot) * landPsqm
	costsA := u.computeProjectCosts(req, lots, revenueA)
	totalA := purchase + duty + costsA.TotalExPurchase
	holdA := holdingCost(purchase, req.Asm.AnnualInterestRate, req.Asm.SubdivMonths)
	profitA := revenueA - (totalA + holdA)
	scenarios = append(scenarios, entities.ScenarioResult{
		Scenario:     ScenarioSubdivideSellLots,
		Lots:         lots,
		Revenue:      revenueA,
		TotalCost:    totalA,
		HoldingCost:  holdA,
		Profit:       profitA,
		MarginOnCost: guardedRatio(profitA, totalA+holdA),
		ROISimple:    roiSimple(profitA, purchase),
		Notes:        mergeNotes(ctx.notes, "A: "+costsNote(costsA.Items, duty)),
	})

	// B) retain house & subdivide one rear lot; a single remaining lot can
	// never be split off a retained dwelling, so yield < 2 sells nothing.
	if req.Scen == nil || req.Scen.AllowRetain {
		retainLots := 0
		if lots >= 2 {
			retainLots = 1
		}
		revenueB := float64(retainLots*targetLot) * landPsqm
		costsB := u.computeProjectCosts(req, retainLots, revenueB)
		itemsB := cloneItems(costsB.Items)
		itemsB[CostDemoBase] = 0
		totalB := purchase + duty + sumItems(itemsB)
		holdB := holdingCost(purchase, req.Asm.AnnualInterestRate, req.Asm.SubdivMonths)
		profitB := revenueB - (totalB + holdB)
		scenarios = append(scenarios, entities.ScenarioResult{
			Scenario:     ScenarioRetainAndSubdivide,
			Lots:         retainLots,
			Revenue:      revenueB,
			TotalCost:    totalB,
			HoldingCost:  holdB,
			Profit:       profitB,
			MarginOnCost: guardedRatio(profitB, totalB+holdB),
			ROISimple:    roiSimple(profitB, purchase),
			Notes:        mergeNotes(ctx.notes, "B: retain house; DEMO excluded.", costsNote(itemsB, duty)),
		})
	}

	// C) demolish, rebuild & sell; omitted entirely without a usable ARV.
	if arv := req.Market.HouseARV; arv != nil && *arv > 0 && lots > 0 {
		revenueC := float64(lots) * *arv
		costsC := u.computeProjectCosts(req, lots, revenueC)
		itemsC := cloneItems(costsC.Items)
		itemsC[CostBuild] = req.Asm.MinBuildCostTotal * float64(lots)
		totalC := purchase + duty + sumItems(itemsC)
		monthsC := req.Asm.SubdivMonths + req.Asm.BuildMonths
		holdC := holdingCost(purchase, req.Asm.AnnualInterestRate, monthsC)
		profitC := revenueC - (totalC + holdC)
		scenarios = append(scenarios, entities.ScenarioResult{
			Scenario:     ScenarioDemoRebuildAndSell,
			Lots:         lots,
			Revenue:      revenueC,
			TotalCost:    totalC,
			HoldingCost:  holdC,
			Profit:       profitC,
			MarginOnCost: guardedRatio(profitC, totalC+holdC),
			ROISimple:    roiSimple(profitC, purchase),
			Notes:        mergeNotes(ctx.notes, "C: includes BUILD cost.", costsNote(itemsC, duty)),
		})
	}

	return scenarios
}
