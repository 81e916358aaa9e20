// Package economics computes per-unit and aggregate seller economics for a
// Wildberries listing: realized revenue, marketplace commission, acquiring
// fee, cost base, and post-tax profit under the three simplified-taxation
// scenarios.
package economics

// Input holds the per-unit cost and price figures for one calculation.
// Monetary fields are rubles; WBCommission and RedemptionRate are fractions
// in [0, 1].
type Input struct {
	UnitsSold      float64 `json:"unitsSold"`
	Logistics      float64 `json:"logistics"`
	Fulfillment    float64 `json:"fulfillment"`
	PaidAcceptance float64 `json:"paidAcceptance"`
	WBCommission   float64 `json:"wbCommission"`
	StorageCost    float64 `json:"storageCost"`
	Advertising    float64 `json:"advertising"`
	PurchasePrice  float64 `json:"purchasePrice"`
	SellingPrice   float64 `json:"sellingPrice"`
	RedemptionRate float64 `json:"redemptionRate"`
}

// Validate checks the fields that must be strictly positive for a
// calculation to be meaningful. It returns false plus the offending field
// names; it never signals an error.
func (in Input) Validate() (bool, []string) {
	var invalid []string
	if in.UnitsSold <= 0 {
		invalid = append(invalid, "unitsSold")
	}
	if in.PurchasePrice <= 0 {
		invalid = append(invalid, "purchasePrice")
	}
	if in.SellingPrice <= 0 {
		invalid = append(invalid, "sellingPrice")
	}
	return len(invalid) == 0, invalid
}

// ScenarioResult is the tax amount and post-tax profit for one bracket.
type ScenarioResult struct {
	Tax    float64 `json:"tax"`
	Profit float64 `json:"profit"`
}

// UnitResult is the per-unit breakdown for a single calculation.
type UnitResult struct {
	Revenue            float64                     `json:"revenue"`
	WBCommissionAmount float64                     `json:"wbCommissionAmount"`
	AcquiringAmount    float64                     `json:"acquiringAmount"`
	TotalCosts         float64                     `json:"totalCosts"`
	ProfitBeforeTax    float64                     `json:"profitBeforeTax"`
	Scenarios          map[Scenario]ScenarioResult `json:"scenarios"`
	Margin             float64                     `json:"margin"`
	Profitability      float64                     `json:"profitability"`
}

// TotalsResult is the per-unit breakdown scaled by units sold.
type TotalsResult struct {
	Revenue         float64                     `json:"revenue"`
	WBCommission    float64                     `json:"wbCommission"`
	Acquiring       float64                     `json:"acquiring"`
	Costs           float64                     `json:"costs"`
	ProfitBeforeTax float64                     `json:"profitBeforeTax"`
	Scenarios       map[Scenario]ScenarioResult `json:"scenarios"`
}

// CalculateUnitEconomics computes the full per-unit breakdown. The caller is
// expected to have validated the input; the function itself is total and
// guards only the divisions.
//
// Commission and acquiring are charged on realized revenue (selling price
// discounted by the redemption rate) while logistics, fulfillment, paid
// acceptance, storage and advertising stay flat per unit. That mirrors the
// product's existing model and is intentionally left as-is.
func CalculateUnitEconomics(in Input) UnitResult {
	revenue := in.SellingPrice * in.RedemptionRate
	wbCommission := revenue * in.WBCommission
	acquiring := revenue * AcquiringRate

	totalCosts := in.PurchasePrice + in.Logistics + in.Fulfillment +
		in.PaidAcceptance + in.StorageCost + in.Advertising

	profitBeforeTax := revenue - wbCommission - acquiring - totalCosts

	scenarios := make(map[Scenario]ScenarioResult, len(TaxRates))
	for scenario, rate := range TaxRates {
		tax := revenue * rate
		scenarios[scenario] = ScenarioResult{
			Tax:    tax,
			Profit: profitBeforeTax - tax,
		}
	}

	var margin float64
	if revenue > 0 {
		margin = profitBeforeTax / revenue * 100
	}
	var profitability float64
	if totalCosts > 0 {
		profitability = profitBeforeTax / totalCosts * 100
	}

	return UnitResult{
		Revenue:            revenue,
		WBCommissionAmount: wbCommission,
		AcquiringAmount:    acquiring,
		TotalCosts:         totalCosts,
		ProfitBeforeTax:    profitBeforeTax,
		Scenarios:          scenarios,
		Margin:             margin,
		Profitability:      profitability,
	}
}

// CalculateTotals scales every monetary figure of a unit result by the
// number of units sold. No rounding happens here; formatting is a
// presentation concern.
func CalculateTotals(in Input, unit UnitResult) TotalsResult {
	n := in.UnitsSold

	scenarios := make(map[Scenario]ScenarioResult, len(unit.Scenarios))
	for scenario, r := range unit.Scenarios {
		scenarios[scenario] = ScenarioResult{
			Tax:    r.Tax * n,
			Profit: r.Profit * n,
		}
	}

	return TotalsResult{
		Revenue:         unit.Revenue * n,
		WBCommission:    unit.WBCommissionAmount * n,
		Acquiring:       unit.AcquiringAmount * n,
		Costs:           unit.TotalCosts * n,
		ProfitBeforeTax: unit.ProfitBeforeTax * n,
		Scenarios:       scenarios,
	}
}
