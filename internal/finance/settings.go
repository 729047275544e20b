package finance

import (
	"github.com/shopspring/decimal"
)

// Stored GroupBonusSetting.Type codes.
const (
	SettingTypeProfitTax      = 1
	SettingTypeOP             = 2
	SettingTypeSales          = 3
	SettingTypeTeam           = 4
	SettingTypeAdministrative = 5
)

// Stored GroupBonusSetting.BonusType codes.
const (
	BonusTypePercentage         = 1
	BonusTypeAmount             = 2
	BonusTypeNegativePercentage = 3
	BonusTypeNegativeAmount     = 4
)

// KindFromCode maps a stored setting type code to a BonusKind.
func KindFromCode(code int) BonusKind {
	switch code {
	case SettingTypeProfitTax:
		return KindProfitTax
	case SettingTypeOP:
		return KindOP
	case SettingTypeSales:
		return KindSales
	case SettingTypeTeam:
		return KindTeam
	case SettingTypeAdministrative:
		return KindAdministrative
	default:
		return KindUnknown
	}
}

// CalculationFromCode maps a stored bonus type code to a CalculationType.
func CalculationFromCode(code int) CalculationType {
	switch code {
	case BonusTypePercentage:
		return CalculationPercentage
	case BonusTypeAmount:
		return CalculationAmount
	case BonusTypeNegativePercentage:
		return CalculationNegativePercentage
	case BonusTypeNegativeAmount:
		return CalculationNegativeAmount
	default:
		return CalculationUnknown
	}
}

// Rule converts a persisted setting into its semantic BonusRule.
func (s GroupBonusSetting) Rule() BonusRule {
	return BonusRule{
		Kind:         KindFromCode(s.Type),
		Calculation:  CalculationFromCode(s.BonusType),
		Value:        s.Bonus,
		EmployeeCode: s.Employee(),
	}
}

// ClosingTerms are the parameters a group is closed with.
type ClosingTerms struct {
	TaxRatePercent  decimal.Decimal
	CostPerCustomer decimal.Decimal
	BonusRules      []BonusRule

	// RefundTypeCode marks invoice lines that are expected to be negative.
	RefundTypeCode int
}

// ResolveClosingTerms folds a group's settings over defaults.
//
// A company-level profit tax percentage overrides the tax rate and a
// company-level administrative amount overrides the cost per customer; the
// last such row wins. Every other setting becomes a bonus rule, in order.
func ResolveClosingTerms(settings []GroupBonusSetting, defaults ClosingTerms) ClosingTerms {
	terms := ClosingTerms{
		TaxRatePercent:  defaults.TaxRatePercent,
		CostPerCustomer: defaults.CostPerCustomer,
		BonusRules:      append([]BonusRule(nil), defaults.BonusRules...),
		RefundTypeCode:  defaults.RefundTypeCode,
	}

	for _, setting := range settings {
		rule := setting.Rule()
		companyLevel := rule.EmployeeCode == ""

		switch {
		case companyLevel && rule.Kind == KindProfitTax && rule.Calculation == CalculationPercentage:
			terms.TaxRatePercent = rule.Value
		case companyLevel && rule.Kind == KindAdministrative && rule.Calculation == CalculationAmount:
			terms.CostPerCustomer = rule.Value
		default:
			terms.BonusRules = append(terms.BonusRules, rule)
		}
	}

	return terms
}
