package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"settlement/internal/logger"
	"settlement/pkg/models"
)

// ClosingInput is everything needed to close one travel group.
type ClosingInput struct {
	GroupCode     string
	GroupName     string
	CustomerCount int
	Receipts      []Receipt
	InvoiceItems  []InvoiceItem
	Terms         ClosingTerms

	// ResolveEmployeeName names employee-scoped bonus lines. Optional.
	ResolveEmployeeName func(string) string
}

// Closer produces closing reports.
type Closer struct {
	validation *AmountValidation
	log        zerolog.Logger
}

// NewCloser creates a Closer.
func NewCloser() *Closer {
	return &Closer{
		validation: NewAmountValidation(),
		log:        logger.WithComponent("closer"),
	}
}

// Close computes totals, profit, tax and bonuses for the input group.
func (c *Closer) Close(in ClosingInput) *models.ClosingReport {
	validation := c.validation.Validate(in.Receipts, in.InvoiceItems, in.CustomerCount, in.Terms.RefundTypeCode)

	receiptTotal := CalculateReceiptTotal(in.Receipts)
	invoiceTotal := CalculateInvoiceTotal(in.InvoiceItems)
	administrativeCost := CalculateAdministrativeCost(in.CustomerCount, in.Terms.CostPerCustomer)

	result := CalculateNetProfit(receiptTotal, invoiceTotal, administrativeCost, in.Terms.TaxRatePercent, in.Terms.BonusRules)

	report := &models.ClosingReport{
		ID:              uuid.NewString(),
		GroupCode:       in.GroupCode,
		GroupName:       in.GroupName,
		CustomerCount:   in.CustomerCount,
		TaxRatePercent:  in.Terms.TaxRatePercent,
		CostPerCustomer: in.Terms.CostPerCustomer,
		Result:          result,
		Bonuses:         CalculateBonusBreakdown(result.ProfitWithoutTax, in.Terms.BonusRules, in.ResolveEmployeeName),
		Warnings:        validation.Warnings,
		GeneratedAt:     time.Now(),
	}

	c.log.Info().
		Str("report_id", report.ID).
		Str("group_code", in.GroupCode).
		Str("receipt_total", result.ReceiptTotal.String()).
		Str("invoice_total", result.InvoiceTotal.String()).
		Str("profit_without_tax", result.ProfitWithoutTax.String()).
		Str("profit_tax", result.ProfitTax.String()).
		Str("total_bonus", result.TotalBonus.String()).
		Str("net_profit", result.NetProfit.String()).
		Int("warnings", len(report.Warnings)).
		Msg("Group closed")

	return report
}
