package economics

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculateUnitEconomicsExample(t *testing.T) {
	in := Input{
		UnitsSold:      100,
		Logistics:      25.5,
		Fulfillment:    15,
		PaidAcceptance: 8,
		WBCommission:   0.155,
		StorageCost:    5,
		Advertising:    50,
		PurchasePrice:  200,
		SellingPrice:   450,
		RedemptionRate: 0.85,
	}

	unit := CalculateUnitEconomics(in)

	if !almostEqual(unit.Revenue, 382.5) {
		t.Errorf("revenue = %v, want 382.5", unit.Revenue)
	}
	if !almostEqual(unit.WBCommissionAmount, 59.2875) {
		t.Errorf("wb commission = %v, want 59.2875", unit.WBCommissionAmount)
	}
	if !almostEqual(unit.AcquiringAmount, 9.5625) {
		t.Errorf("acquiring = %v, want 9.5625", unit.AcquiringAmount)
	}
	if !almostEqual(unit.TotalCosts, 303.5) {
		t.Errorf("total costs = %v, want 303.5", unit.TotalCosts)
	}
	if math.Abs(unit.ProfitBeforeTax-10.15) > 1e-6 {
		t.Errorf("profit before tax = %v, want 10.15", unit.ProfitBeforeTax)
	}

	low := unit.Scenarios[ScenarioLow]
	if math.Abs(low.Tax-7.65) > 1e-6 {
		t.Errorf("low tax = %v, want 7.65", low.Tax)
	}
	if math.Abs(low.Profit-2.5) > 1e-6 {
		t.Errorf("low profit = %v, want 2.5", low.Profit)
	}
}

func TestProfitIdentityWithoutFees(t *testing.T) {
	// With full redemption, no commission, and no cost fields, profit before
	// tax collapses to sellingPrice - purchasePrice - acquiring. Acquiring is
	// a fixed constant, so subtract it explicitly.
	cases := []struct {
		purchase, selling float64
	}{
		{100, 250},
		{1, 2},
		{500, 499},
	}

	for _, tc := range cases {
		in := Input{
			UnitsSold:      1,
			PurchasePrice:  tc.purchase,
			SellingPrice:   tc.selling,
			RedemptionRate: 1,
			WBCommission:   0,
		}
		unit := CalculateUnitEconomics(in)
		want := tc.selling - tc.purchase - tc.selling*AcquiringRate
		if !almostEqual(unit.ProfitBeforeTax, want) {
			t.Errorf("profit(%v, %v) = %v, want %v", tc.purchase, tc.selling, unit.ProfitBeforeTax, want)
		}
	}
}

func TestScenarioRelation(t *testing.T) {
	in := Input{
		UnitsSold:      10,
		Logistics:      12,
		WBCommission:   0.2,
		PurchasePrice:  80,
		SellingPrice:   199,
		RedemptionRate: 0.9,
	}
	unit := CalculateUnitEconomics(in)

	for scenario, rate := range TaxRates {
		r := unit.Scenarios[scenario]
		if !almostEqual(r.Tax, unit.Revenue*rate) {
			t.Errorf("%s tax = %v, want revenue*%v = %v", scenario, r.Tax, rate, unit.Revenue*rate)
		}
		if !almostEqual(r.Profit, unit.ProfitBeforeTax-r.Tax) {
			t.Errorf("%s profit = %v, want %v", scenario, r.Profit, unit.ProfitBeforeTax-r.Tax)
		}
	}
}

func TestDivisionGuards(t *testing.T) {
	// Zero revenue must not produce NaN margin; zero costs must not produce
	// NaN profitability.
	unit := CalculateUnitEconomics(Input{SellingPrice: 100, RedemptionRate: 0})
	if unit.Margin != 0 {
		t.Errorf("margin with zero revenue = %v, want 0", unit.Margin)
	}

	unit = CalculateUnitEconomics(Input{SellingPrice: 100, RedemptionRate: 1})
	if unit.TotalCosts != 0 {
		t.Fatalf("expected zero costs, got %v", unit.TotalCosts)
	}
	if unit.Profitability != 0 {
		t.Errorf("profitability with zero costs = %v, want 0", unit.Profitability)
	}
}

func TestCalculateTotalsLinearity(t *testing.T) {
	base := Input{
		Logistics:      25.5,
		Fulfillment:    15,
		PaidAcceptance: 8,
		WBCommission:   0.155,
		StorageCost:    5,
		Advertising:    50,
		PurchasePrice:  200,
		SellingPrice:   450,
		RedemptionRate: 0.85,
	}

	for _, k := range []float64{0, 1, 7, 250} {
		in := base
		in.UnitsSold = k
		unit := CalculateUnitEconomics(in)
		totals := CalculateTotals(in, unit)

		if !almostEqual(totals.Revenue, unit.Revenue*k) {
			t.Errorf("k=%v: total revenue = %v, want %v", k, totals.Revenue, unit.Revenue*k)
		}
		if !almostEqual(totals.Costs, unit.TotalCosts*k) {
			t.Errorf("k=%v: total costs = %v, want %v", k, totals.Costs, unit.TotalCosts*k)
		}
		if !almostEqual(totals.ProfitBeforeTax, unit.ProfitBeforeTax*k) {
			t.Errorf("k=%v: total profit = %v, want %v", k, totals.ProfitBeforeTax, unit.ProfitBeforeTax*k)
		}
		for scenario, r := range totals.Scenarios {
			if !almostEqual(r.Tax, unit.Scenarios[scenario].Tax*k) {
				t.Errorf("k=%v: %s tax = %v, want %v", k, scenario, r.Tax, unit.Scenarios[scenario].Tax*k)
			}
			if !almostEqual(r.Profit, unit.Scenarios[scenario].Profit*k) {
				t.Errorf("k=%v: %s profit = %v, want %v", k, scenario, r.Profit, unit.Scenarios[scenario].Profit*k)
			}
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      Input
		ok      bool
		invalid []string
	}{
		{
			name: "all required set",
			in:   Input{UnitsSold: 1, PurchasePrice: 10, SellingPrice: 20},
			ok:   true,
		},
		{
			name:    "everything missing",
			in:      Input{},
			ok:      false,
			invalid: []string{"unitsSold", "purchasePrice", "sellingPrice"},
		},
		{
			name:    "zero selling price",
			in:      Input{UnitsSold: 5, PurchasePrice: 10},
			ok:      false,
			invalid: []string{"sellingPrice"},
		},
		{
			name:    "negative units",
			in:      Input{UnitsSold: -1, PurchasePrice: 10, SellingPrice: 20},
			ok:      false,
			invalid: []string{"unitsSold"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ok, invalid := tc.in.Validate()
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if len(invalid) != len(tc.invalid) {
				t.Fatalf("invalid = %v, want %v", invalid, tc.invalid)
			}
			for i := range invalid {
				if invalid[i] != tc.invalid[i] {
					t.Errorf("invalid[%d] = %q, want %q", i, invalid[i], tc.invalid[i])
				}
			}
		})
	}
}
