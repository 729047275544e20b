package finance

import (
	"github.com/shopspring/decimal"

	"settlement/internal/money"
	"settlement/pkg/models"
)

// CalculateProfitWithoutTax returns receiptTotal − invoiceTotal − administrativeCost.
func CalculateProfitWithoutTax(receiptTotal, invoiceTotal, administrativeCost decimal.Decimal) decimal.Decimal {
	return money.SafeSubtract(receiptTotal, invoiceTotal, administrativeCost)
}

// CalculateProfitTax taxes positive profit at taxRatePercent, rounded to whole
// units. Losses and break-even are never taxed.
func CalculateProfitTax(profitWithoutTax, taxRatePercent decimal.Decimal) decimal.Decimal {
	if !profitWithoutTax.IsPositive() {
		return decimal.Zero
	}
	return money.Percent(profitWithoutTax, taxRatePercent)
}

// CalculateNetProfit runs the closing pipeline in its fixed order:
// profit without tax, tax, bonuses on the pre-tax profit, then net profit.
func CalculateNetProfit(
	receiptTotal, invoiceTotal, administrativeCost, taxRatePercent decimal.Decimal,
	bonusRules []BonusRule,
) models.ProfitCalculationResult {
	profitWithoutTax := CalculateProfitWithoutTax(receiptTotal, invoiceTotal, administrativeCost)
	profitTax := CalculateProfitTax(profitWithoutTax, taxRatePercent)
	totalBonus := CalculateTotalBonus(profitWithoutTax, bonusRules)

	return models.ProfitCalculationResult{
		ReceiptTotal:       receiptTotal,
		InvoiceTotal:       invoiceTotal,
		AdministrativeCost: administrativeCost,
		ProfitWithoutTax:   profitWithoutTax,
		ProfitTax:          profitTax,
		TotalBonus:         totalBonus,
		NetProfit:          money.SafeSubtract(profitWithoutTax, profitTax, totalBonus),
	}
}
