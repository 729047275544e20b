package bill_test

import (
	"fmt"

	"github.com/shopspring/decimal"

	"settlement/internal/bill"
)

// Example builds a bill from two invoices. The hotel has three rows, so with
// a group size of two it continues in a second batch with a hidden total.
func Example() {
	suppliers := map[string]string{"S01": "Harbor Hotel"}
	dir := bill.Lookups{
		Employee:    func(id string) string { return "staff " + id },
		Supplier:    func(id string) string { return suppliers[id] },
		InvoiceType: func(int) string { return "Lodging" },
	}
	opts := bill.Options{
		RefundTypeCode: 9,
		Labels:         bill.PaymentLabels{CustomerRefund: "Customer Refund", ForeignPayment: "Foreign Payment"},
		MaxGroupSize:   2,
	}

	line := func(price int64, payFor string, invoiceType int) bill.InvoiceLine {
		return bill.InvoiceLine{
			Price:       decimal.NewFromInt(price),
			Quantity:    decimal.NewFromInt(1),
			PayFor:      bill.ParsePayee(payFor),
			InvoiceType: invoiceType,
		}
	}

	invoices := []bill.InvoiceForBill{
		{InvoiceNumber: "A-1", CreatedBy: "E01", Items: []bill.InvoiceLine{line(100, "S01", 1), line(-40, "customer", 9)}},
		{InvoiceNumber: "A-2", CreatedBy: "E01", Items: []bill.InvoiceLine{line(200, "S01", 1)}},
		{InvoiceNumber: "A-3", CreatedBy: "E01", Items: []bill.InvoiceLine{line(300, "S01", 1)}},
	}

	groups := bill.ProcessBillInvoices(invoices, dir, opts)
	for _, g := range groups {
		total := g.Total.String()
		if g.HiddenTotal {
			total = "-"
		}
		fmt.Printf("%s rows=%d total=%s\n", g.PayFor, len(g.Invoices), total)
	}
	fmt.Println("bill total:", bill.CalculateBillTotalAmount(groups))
	// Output:
	// Customer Refund rows=1 total=40
	// Harbor Hotel rows=2 total=600
	// Harbor Hotel rows=1 total=-
	// bill total: 640
}
