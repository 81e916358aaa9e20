package economics

// AcquiringRate is the payment-processing (acquiring) fee Wildberries
// charges on realized revenue.
const AcquiringRate = 0.025

// Scenario is one of the simplified-taxation brackets. Rates apply to
// revenue, not profit.
type Scenario string

const (
	ScenarioLow    Scenario = "low"    // УСН 2%
	ScenarioMedium Scenario = "medium" // УСН 5%
	ScenarioHigh   Scenario = "high"   // УСН 7%
)

// TaxRates maps each scenario to its rate as a fraction of revenue.
var TaxRates = map[Scenario]float64{
	ScenarioLow:    0.02,
	ScenarioMedium: 0.05,
	ScenarioHigh:   0.07,
}

// ScenarioOrder is the display order for scenario breakdowns.
var ScenarioOrder = []Scenario{ScenarioLow, ScenarioMedium, ScenarioHigh}

// ExampleInput is the demo preset offered by the UI's "load example" action.
var ExampleInput = Input{
	UnitsSold:      100,
	Logistics:      25.50,
	Fulfillment:    15.00,
	PaidAcceptance: 8.00,
	WBCommission:   0.155,
	StorageCost:    5.00,
	Advertising:    50.00,
	PurchasePrice:  200.00,
	SellingPrice:   450.00,
	RedemptionRate: 0.85,
}
