package main

import (
	"sort"
	"strings"
)

// Aggregate combines initiative results into a portfolio. The totals are
// summed in value order so the output does not depend on input order.
func Aggregate(results []InitiativeResult) PortfolioResult {
	investments := make([]float64, len(results))
	benefits := make([]float64, len(results))
	for i, r := range results {
		investments[i] = r.Result.TotalInvestment
		benefits[i] = r.Result.TotalAnnualBenefit
	}
	investment := orderedSum(investments)
	benefit := orderedSum(benefits)
	payback, defined := PaybackMonths(investment, benefit)

	initiatives := make([]InitiativeResult, len(results))
	copy(initiatives, results)
	sort.SliceStable(initiatives, func(i, j int) bool {
		a, b := initiatives[i], initiatives[j]
		if a.Result.ROIPercent != b.Result.ROIPercent {
			return a.Result.ROIPercent > b.Result.ROIPercent
		}
		if a.Name != b.Name {
			return strings.Compare(a.Name, b.Name) < 0
		}
		return a.Key < b.Key
	})

	return PortfolioResult{
		TotalInvestment:    investment,
		TotalAnnualBenefit: benefit,
		NetAnnualBenefit:   benefit - investment,
		ROIPercent:         ROIPercent(investment, benefit),
		PaybackMonths:      payback,
		PaybackDefined:     defined,
		Initiatives:        initiatives,
	}
}

func orderedSum(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	total := 0.0
	for _, v := range sorted {
		total += v
	}
	return total
}
