package bill

import (
	"strings"

	"github.com/shopspring/decimal"

	"settlement/internal/money"
	"settlement/pkg/models"
)

// NoteSeparator joins the notes of merged lines.
const NoteSeparator = "、"

// PayeeGroup holds the rows of one payee in encounter order.
type PayeeGroup struct {
	PayFor string
	Items  []ProcessedInvoiceItem
}

// GroupInvoicesByPayFor groups items by payee display name. Groups appear in
// first-seen payee order and keep their items in input order.
func GroupInvoicesByPayFor(items []ProcessedInvoiceItem) []PayeeGroup {
	groups := []PayeeGroup{}
	index := make(map[string]int)
	for _, item := range items {
		i, ok := index[item.PayFor]
		if !ok {
			i = len(groups)
			index[item.PayFor] = i
			groups = append(groups, PayeeGroup{PayFor: item.PayFor})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

// MergeInvoicesByNumber collapses rows sharing an invoice number into one.
// Prices are summed and notes joined in encounter order; the other fields come
// from the first row. Output follows first encounter of each invoice number.
func MergeInvoicesByNumber(items []ProcessedInvoiceItem) []models.BillInvoice {
	merged := []models.BillInvoice{}
	index := make(map[string]int)
	notes := [][]string{}
	prices := [][]decimal.Decimal{}

	for _, item := range items {
		i, ok := index[item.InvoiceNumber]
		if !ok {
			i = len(merged)
			index[item.InvoiceNumber] = i
			merged = append(merged, item)
			notes = append(notes, nil)
			prices = append(prices, nil)
		}
		notes[i] = append(notes[i], item.Note)
		prices[i] = append(prices[i], item.Price)
	}

	for i := range merged {
		merged[i].Note = strings.Join(notes[i], NoteSeparator)
		merged[i].Price = money.SafeAdd(prices[i]...)
	}
	return merged
}

// SplitLargeGroups breaks every group holding more than maxGroupSize rows into
// consecutive chunks. The first chunk keeps the group total; later chunks get
// a zero total and HiddenTotal. A maxGroupSize <= 0 uses DefaultMaxGroupSize.
func SplitLargeGroups(groups []models.InvoiceGroup, maxGroupSize int) []models.InvoiceGroup {
	if maxGroupSize <= 0 {
		maxGroupSize = DefaultMaxGroupSize
	}

	result := make([]models.InvoiceGroup, 0, len(groups))
	for _, group := range groups {
		if len(group.Invoices) <= maxGroupSize {
			result = append(result, group)
			continue
		}

		for start := 0; start < len(group.Invoices); start += maxGroupSize {
			end := min(start+maxGroupSize, len(group.Invoices))
			chunk := models.InvoiceGroup{
				PayFor:   group.PayFor,
				Invoices: append([]models.BillInvoice(nil), group.Invoices[start:end]...),
				Total:    group.Total,
			}
			if start > 0 {
				chunk.Total = decimal.Zero
				chunk.HiddenTotal = true
			}
			result = append(result, chunk)
		}
	}
	return result
}

// CalculateBillTotalAmount sums Total over all groups. Continuation chunks
// contribute zero, so no filtering is needed.
func CalculateBillTotalAmount(groups []models.InvoiceGroup) decimal.Decimal {
	totals := make([]decimal.Decimal, 0, len(groups))
	for _, g := range groups {
		totals = append(totals, g.Total)
	}
	return money.SafeAdd(totals...)
}
