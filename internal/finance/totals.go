package finance

import (
	"github.com/shopspring/decimal"

	"settlement/internal/money"
)

// CalculateInvoiceTotal returns Σ price × quantity. Refund lines are summed
// with whatever sign they carry.
func CalculateInvoiceTotal(items []InvoiceItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(item.Quantity))
	}
	return total
}

// CalculateReceiptTotal returns Σ actual amount, counting missing amounts as zero.
func CalculateReceiptTotal(receipts []Receipt) decimal.Decimal {
	amounts := make([]decimal.Decimal, 0, len(receipts))
	for _, r := range receipts {
		amounts = append(amounts, r.Amount())
	}
	return money.SafeAdd(amounts...)
}

// DefaultCostPerCustomer is the administrative cost charged per customer.
var DefaultCostPerCustomer = decimal.NewFromInt(10)

// CalculateAdministrativeCost returns customerCount × costPerCustomer.
func CalculateAdministrativeCost(customerCount int, costPerCustomer decimal.Decimal) decimal.Decimal {
	if customerCount == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(customerCount)).Mul(costPerCustomer)
}
