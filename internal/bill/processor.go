package bill

import (
	"github.com/shopspring/decimal"

	"settlement/internal/money"
)

// CalculateInvoiceItemPrice returns price × quantity, made non-negative when
// the line is of the refund type. Other types keep their sign.
func CalculateInvoiceItemPrice(price, quantity decimal.Decimal, invoiceType, refundTypeCode int) decimal.Decimal {
	raw := money.SafeMultiply(price, quantity)
	if invoiceType == refundTypeCode {
		return raw.Abs()
	}
	return raw
}

// ResolvePayee returns the display name of p.
func ResolvePayee(p Payee, dir Directory, labels PaymentLabels) string {
	switch p.Kind {
	case PayeeCustomer:
		return labels.CustomerRefund
	case PayeeForeign:
		return labels.ForeignPayment
	default:
		return dir.SupplierName(p.SupplierID)
	}
}

// ProcessInvoiceItems flattens invoices into one row per line item.
func ProcessInvoiceItems(invoices []InvoiceForBill, dir Directory, refundTypeCode int, labels PaymentLabels) []ProcessedInvoiceItem {
	var items []ProcessedInvoiceItem
	for _, inv := range invoices {
		createdBy := dir.EmployeeName(inv.CreatedBy)
		for _, line := range inv.Items {
			note := line.Note
			if note == "" {
				note = dir.InvoiceTypeName(line.InvoiceType)
			}

			items = append(items, ProcessedInvoiceItem{
				InvoiceNumber: inv.InvoiceNumber,
				CreatedBy:     createdBy,
				GroupName:     inv.GroupName,
				GroupCode:     inv.GroupCode,
				Note:          note,
				PayFor:        ResolvePayee(line.PayFor, dir, labels),
				Price:         CalculateInvoiceItemPrice(line.Price, line.Quantity, line.InvoiceType, refundTypeCode),
			})
		}
	}
	return items
}
