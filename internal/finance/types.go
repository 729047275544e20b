// Package finance computes a travel group's closing figures: receipt and
// invoice totals, administrative cost, profit tax, bonuses and net profit.
//
// Every function in this package is a pure transformation of its arguments.
// Amounts are shopspring decimals; nothing is rejected for being negative, so
// genuine losses flow through the pipeline as negative profit.
package finance

import (
	"strings"

	"github.com/shopspring/decimal"
)

// InvoiceItem is a single invoice line. Price × Quantity may be negative.
// InvoiceType only matters to validation, which leaves refund lines alone.
type InvoiceItem struct {
	Price       decimal.Decimal `json:"price" yaml:"price"`
	Quantity    decimal.Decimal `json:"quantity" yaml:"quantity"`
	InvoiceType int             `json:"invoiceType,omitempty" yaml:"invoiceType,omitempty"`
}

// Receipt is money received for a group. A nil ActualAmount counts as zero.
type Receipt struct {
	ActualAmount *decimal.Decimal `json:"actualAmount" yaml:"actualAmount"`
}

// Amount returns the receipt's actual amount, or zero when it is missing.
func (r Receipt) Amount() decimal.Decimal {
	if r.ActualAmount == nil {
		return decimal.Zero
	}
	return *r.ActualAmount
}

// BonusKind identifies what a bonus rule pays for.
type BonusKind int

const (
	KindUnknown BonusKind = iota
	KindProfitTax
	KindOP
	KindSales
	KindTeam
	KindAdministrative
)

var kindNames = map[BonusKind]string{
	KindUnknown:        "unknown",
	KindProfitTax:      "profitTax",
	KindOP:             "op",
	KindSales:          "sales",
	KindTeam:           "team",
	KindAdministrative: "administrative",
}

func (k BonusKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// CalculationType selects how a rule's value turns into an amount.
type CalculationType int

const (
	CalculationUnknown CalculationType = iota
	CalculationPercentage
	CalculationAmount
	CalculationNegativePercentage
	CalculationNegativeAmount
)

var calculationNames = map[CalculationType]string{
	CalculationUnknown:            "unknown",
	CalculationPercentage:         "percentage",
	CalculationAmount:             "amount",
	CalculationNegativePercentage: "negativePercentage",
	CalculationNegativeAmount:     "negativeAmount",
}

func (c CalculationType) String() string {
	if name, ok := calculationNames[c]; ok {
		return name
	}
	return calculationNames[CalculationUnknown]
}

// ParseCalculationType maps a name such as "negativePercentage" to its
// CalculationType. Unrecognized names map to CalculationUnknown.
func ParseCalculationType(name string) CalculationType {
	for c, n := range calculationNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return c
		}
	}
	return CalculationUnknown
}

// MarshalText implements encoding.TextMarshaler.
func (c CalculationType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It never fails; unknown
// names decode to CalculationUnknown, which contributes nothing.
func (c *CalculationType) UnmarshalText(text []byte) error {
	*c = ParseCalculationType(string(text))
	return nil
}

// BonusRule is one bonus rule in its semantic form.
type BonusRule struct {
	Kind         BonusKind       `json:"kind"`
	Calculation  CalculationType `json:"calculationType"`
	Value        decimal.Decimal `json:"value"`
	EmployeeCode string          `json:"employeeCode,omitempty"`
}

// GroupBonusSetting is the persisted form of a bonus rule. Type and BonusType
// are stored codes; see KindFromCode and CalculationFromCode.
type GroupBonusSetting struct {
	Type         int             `json:"type" yaml:"type"`
	BonusType    int             `json:"bonusType" yaml:"bonusType"`
	Bonus        decimal.Decimal `json:"bonus" yaml:"bonus"`
	EmployeeCode *string         `json:"employeeCode,omitempty" yaml:"employeeCode,omitempty"`
}

// Employee returns the setting's employee code, or "" for company-level settings.
func (s GroupBonusSetting) Employee() string {
	if s.EmployeeCode == nil {
		return ""
	}
	return strings.TrimSpace(*s.EmployeeCode)
}
