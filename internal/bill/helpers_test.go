package bill

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

const refundType = 9

var testLabels = PaymentLabels{CustomerRefund: "Customer Refund", ForeignPayment: "Foreign Payment"}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	if !d(want).Equal(got) {
		assert.Fail(t, "decimal mismatch: want "+want+", got "+got.String(), msgAndArgs...)
	}
}

func testDirectory() Lookups {
	employees := map[string]string{"E01": "Chen Yu", "E02": "Wang Li"}
	suppliers := map[string]string{"S01": "Harbor Hotel", "S02": "Alpine Coaches", "S03": "Zen Garden Tours"}
	types := map[int]string{1: "Lodging", 2: "Transport", refundType: "Refund"}
	return Lookups{
		Employee: func(id string) string { return employees[id] },
		Supplier: func(id string) string { return suppliers[id] },
		InvoiceType: func(code int) string {
			if name, ok := types[code]; ok {
				return name
			}
			return fmt.Sprintf("type-%d", code)
		},
	}
}

func row(number, payFor, note, price string) ProcessedInvoiceItem {
	return ProcessedInvoiceItem{
		InvoiceNumber: number,
		CreatedBy:     "Chen Yu",
		GroupName:     "Kyoto Spring",
		GroupCode:     "JP-0412",
		PayFor:        payFor,
		Note:          note,
		Price:         d(price),
	}
}
