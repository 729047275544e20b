package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProfitCalculationResult is the outcome of closing one travel group's accounts.
type ProfitCalculationResult struct {
	ReceiptTotal       decimal.Decimal `json:"receiptTotal" yaml:"receiptTotal"`             // Σ receipt actual amounts
	InvoiceTotal       decimal.Decimal `json:"invoiceTotal" yaml:"invoiceTotal"`             // Σ price × quantity over invoice lines
	AdministrativeCost decimal.Decimal `json:"administrativeCost" yaml:"administrativeCost"` // customers × cost per customer
	ProfitWithoutTax   decimal.Decimal `json:"profitWithoutTax" yaml:"profitWithoutTax"`     // may be negative
	ProfitTax          decimal.Decimal `json:"profitTax" yaml:"profitTax"`                   // zero for losses
	TotalBonus         decimal.Decimal `json:"totalBonus" yaml:"totalBonus"`                 // computed on ProfitWithoutTax
	NetProfit          decimal.Decimal `json:"netProfit" yaml:"netProfit"`
}

// BonusLine is one evaluated bonus rule.
type BonusLine struct {
	Kind         string          `json:"kind" yaml:"kind"`
	Calculation  string          `json:"calculation" yaml:"calculation"`
	Value        decimal.Decimal `json:"value" yaml:"value"`
	EmployeeCode string          `json:"employeeCode,omitempty" yaml:"employeeCode,omitempty"` // empty for company-level rules
	EmployeeName string          `json:"employeeName,omitempty" yaml:"employeeName,omitempty"`
	Amount       decimal.Decimal `json:"amount" yaml:"amount"`
}

// ClosingReport wraps a ProfitCalculationResult with the context it was produced in.
type ClosingReport struct {
	ID              string                  `json:"id" yaml:"id"`
	GroupCode       string                  `json:"groupCode" yaml:"groupCode"`
	GroupName       string                  `json:"groupName" yaml:"groupName"`
	CustomerCount   int                     `json:"customerCount" yaml:"customerCount"`
	TaxRatePercent  decimal.Decimal         `json:"taxRatePercent" yaml:"taxRatePercent"`
	CostPerCustomer decimal.Decimal         `json:"costPerCustomer" yaml:"costPerCustomer"`
	Result          ProfitCalculationResult `json:"result" yaml:"result"`
	Bonuses         []BonusLine             `json:"bonuses" yaml:"bonuses"`
	Warnings        []string                `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	GeneratedAt     time.Time               `json:"generatedAt" yaml:"generatedAt"`
}
