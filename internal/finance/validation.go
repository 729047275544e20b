package finance

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"settlement/internal/logger"
)

// IsValidAmount reports whether v is usable as a user-facing amount.
func IsValidAmount(v decimal.Decimal) bool {
	return !v.IsNegative()
}

// AmountValidation inspects closing input and reports suspicious amounts.
// It never rejects input; the engine computes with whatever it is given.
type AmountValidation struct {
	log zerolog.Logger
}

// NewAmountValidation creates a new amount validation service
func NewAmountValidation() *AmountValidation {
	return &AmountValidation{
		log: logger.WithComponent("amount-validation"),
	}
}

// AmountValidationResult lists the warnings raised for one closing input.
type AmountValidationResult struct {
	Warnings       []string
	HasNegative    bool
	MissingAmounts int
}

// Validate checks receipts, invoice lines and the customer count. Lines of
// refundTypeCode are refunds and may be negative without a warning.
func (av *AmountValidation) Validate(receipts []Receipt, items []InvoiceItem, customerCount, refundTypeCode int) *AmountValidationResult {
	result := &AmountValidationResult{Warnings: []string{}}

	for i, r := range receipts {
		if r.ActualAmount == nil {
			result.MissingAmounts++
			continue
		}
		if !IsValidAmount(*r.ActualAmount) {
			result.HasNegative = true
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("receipt %d has negative actual amount %s", i+1, r.ActualAmount.String()))
		}
	}

	for i, item := range items {
		if item.Quantity.IsZero() {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("invoice line %d has zero quantity", i+1))
		}
		if item.InvoiceType != refundTypeCode && !IsValidAmount(item.Price.Mul(item.Quantity)) {
			result.HasNegative = true
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("invoice line %d is negative (%s × %s)", i+1, item.Price.String(), item.Quantity.String()))
		}
	}

	if customerCount < 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("customer count is negative (%d)", customerCount))
	}

	if result.MissingAmounts > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%d receipt(s) have no actual amount and count as zero", result.MissingAmounts))
	}

	av.log.Debug().
		Int("receipts", len(receipts)).
		Int("invoice_lines", len(items)).
		Int("missing_amounts", result.MissingAmounts).
		Bool("has_negative", result.HasNegative).
		Strs("warnings", result.Warnings).
		Msg("Amount validation completed")

	return result
}
