package finance

import (
	"github.com/shopspring/decimal"

	"settlement/internal/money"
	"settlement/pkg/models"
)

// CalculateBonus evaluates a single rule against baseAmount. Percentage
// variants are rounded once to whole units; amount variants pass the value
// through. Unknown calculation types yield zero.
func CalculateBonus(baseAmount decimal.Decimal, rule BonusRule) decimal.Decimal {
	switch rule.Calculation {
	case CalculationPercentage:
		return money.Percent(baseAmount, rule.Value)
	case CalculationAmount:
		return rule.Value
	case CalculationNegativePercentage:
		return money.Percent(baseAmount, rule.Value).Neg()
	case CalculationNegativeAmount:
		return rule.Value.Neg()
	case CalculationUnknown:
		return decimal.Zero
	default:
		return decimal.Zero
	}
}

// CalculateTotalBonus sums CalculateBonus over rules. There is no loss guard:
// a negative baseAmount is evaluated like any other.
func CalculateTotalBonus(baseAmount decimal.Decimal, rules []BonusRule) decimal.Decimal {
	total := decimal.Zero
	for _, rule := range rules {
		total = total.Add(CalculateBonus(baseAmount, rule))
	}
	return total
}

// CalculateBonusBreakdown evaluates every rule separately, in rule order.
// resolveEmployeeName may be nil, in which case names are left empty.
func CalculateBonusBreakdown(baseAmount decimal.Decimal, rules []BonusRule, resolveEmployeeName func(string) string) []models.BonusLine {
	lines := make([]models.BonusLine, 0, len(rules))
	for _, rule := range rules {
		line := models.BonusLine{
			Kind:         rule.Kind.String(),
			Calculation:  rule.Calculation.String(),
			Value:        rule.Value,
			EmployeeCode: rule.EmployeeCode,
			Amount:       CalculateBonus(baseAmount, rule),
		}
		if rule.EmployeeCode != "" && resolveEmployeeName != nil {
			line.EmployeeName = resolveEmployeeName(rule.EmployeeCode)
		}
		lines = append(lines, line)
	}
	return lines
}
