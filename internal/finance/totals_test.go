package finance

import (
	"testing"
)

// TestCalculateInvoiceTotal sums price × quantity per line.
func TestCalculateInvoiceTotal(t *testing.T) {
	items := []InvoiceItem{
		{Price: d("1000"), Quantity: d("2")},
		{Price: d("500"), Quantity: d("3")},
		{Price: d("800"), Quantity: d("1")},
	}
	assertDecimal(t, "4300", CalculateInvoiceTotal(items))
}

// TestCalculateInvoiceTotal_RefundKeepsSign verifies no refund normalization happens here.
func TestCalculateInvoiceTotal_RefundKeepsSign(t *testing.T) {
	items := []InvoiceItem{
		{Price: d("1000"), Quantity: d("1")},
		{Price: d("-300"), Quantity: d("1")},
	}
	assertDecimal(t, "700", CalculateInvoiceTotal(items))
}

// TestCalculateInvoiceTotal_Fractions verifies there is no binary drift.
func TestCalculateInvoiceTotal_Fractions(t *testing.T) {
	items := []InvoiceItem{
		{Price: d("0.1"), Quantity: d("1")},
		{Price: d("0.2"), Quantity: d("1")},
	}
	assertDecimal(t, "0.3", CalculateInvoiceTotal(items))
}

// TestCalculateInvoiceTotal_Empty verifies an empty list totals zero.
func TestCalculateInvoiceTotal_Empty(t *testing.T) {
	assertDecimal(t, "0", CalculateInvoiceTotal(nil))
}

// TestCalculateReceiptTotal treats missing amounts as zero.
func TestCalculateReceiptTotal(t *testing.T) {
	receipts := []Receipt{
		{ActualAmount: dp("30000")},
		{ActualAmount: nil},
		{ActualAmount: dp("20000.5")},
	}
	assertDecimal(t, "50000.5", CalculateReceiptTotal(receipts))
	assertDecimal(t, "0", CalculateReceiptTotal(nil))
	assertDecimal(t, "0", CalculateReceiptTotal([]Receipt{{}}))
}

// TestCalculateAdministrativeCost multiplies customers by the per-head cost.
func TestCalculateAdministrativeCost(t *testing.T) {
	assertDecimal(t, "0", CalculateAdministrativeCost(0, DefaultCostPerCustomer))
	assertDecimal(t, "200", CalculateAdministrativeCost(20, DefaultCostPerCustomer))
	assertDecimal(t, "750", CalculateAdministrativeCost(15, d("50")))
}
