package handlers

import (
	"fmt"
	"strings"

	"github.com/Kreemchek/unitka20/internal/economics"
)

// Russian labels for the tax scenarios, in display order.
var scenarioLabels = map[economics.Scenario]string{
	economics.ScenarioLow:    "УСН 2%",
	economics.ScenarioMedium: "УСН 5%",
	economics.ScenarioHigh:   "УСН 7%",
}

func (h *Handler) money(v float64) string {
	return h.printer.Sprintf("%.2f ₽", v)
}

func (h *Handler) percent(v float64) string {
	return h.printer.Sprintf("%.2f%%", v)
}

// formatResults renders every figure of a calculation as a ru-RU display
// string. The numeric breakdown travels alongside; clients pick whichever
// they need.
func (h *Handler) formatResults(unit economics.UnitResult, totals economics.TotalsResult) map[string]interface{} {
	unitScenarios := make(map[economics.Scenario]map[string]string, len(unit.Scenarios))
	totalScenarios := make(map[economics.Scenario]map[string]string, len(totals.Scenarios))
	for _, s := range economics.ScenarioOrder {
		unitScenarios[s] = map[string]string{
			"tax":    h.money(unit.Scenarios[s].Tax),
			"profit": h.money(unit.Scenarios[s].Profit),
		}
		totalScenarios[s] = map[string]string{
			"tax":    h.money(totals.Scenarios[s].Tax),
			"profit": h.money(totals.Scenarios[s].Profit),
		}
	}

	return map[string]interface{}{
		"unit": map[string]interface{}{
			"revenue":         h.money(unit.Revenue),
			"wbCommission":    h.money(unit.WBCommissionAmount),
			"acquiring":       h.money(unit.AcquiringAmount),
			"totalCosts":      h.money(unit.TotalCosts),
			"profitBeforeTax": h.money(unit.ProfitBeforeTax),
			"margin":          h.percent(unit.Margin),
			"profitability":   h.percent(unit.Profitability),
			"scenarios":       unitScenarios,
		},
		"totals": map[string]interface{}{
			"revenue":         h.money(totals.Revenue),
			"wbCommission":    h.money(totals.WBCommission),
			"acquiring":       h.money(totals.Acquiring),
			"costs":           h.money(totals.Costs),
			"profitBeforeTax": h.money(totals.ProfitBeforeTax),
			"scenarios":       totalScenarios,
		},
	}
}

// formatShareMessage builds the Markdown summary sent to the user's chat.
func (h *Handler) formatShareMessage(in economics.Input, unit economics.UnitResult) string {
	var b strings.Builder
	b.WriteString("📊 *Расчёт юнит-экономики WB*\n\n")
	fmt.Fprintf(&b, "Цена продажи: %s\n", h.money(in.SellingPrice))
	fmt.Fprintf(&b, "Выкуп: %s\n\n", h.percent(in.RedemptionRate*100))
	fmt.Fprintf(&b, "💰 Выручка: %s\n", h.money(unit.Revenue))
	fmt.Fprintf(&b, "📦 Комиссия WB: %s\n", h.money(unit.WBCommissionAmount))
	fmt.Fprintf(&b, "💳 Эквайринг: %s\n", h.money(unit.AcquiringAmount))
	fmt.Fprintf(&b, "📉 Затраты: %s\n", h.money(unit.TotalCosts))
	fmt.Fprintf(&b, "📈 Прибыль до налога: %s\n\n", h.money(unit.ProfitBeforeTax))
	for _, s := range economics.ScenarioOrder {
		fmt.Fprintf(&b, "%s: прибыль %s (налог %s)\n",
			scenarioLabels[s], h.money(unit.Scenarios[s].Profit), h.money(unit.Scenarios[s].Tax))
	}
	fmt.Fprintf(&b, "\nМаржинальность: %s\n", h.percent(unit.Margin))
	fmt.Fprintf(&b, "Рентабельность: %s", h.percent(unit.Profitability))
	return b.String()
}
