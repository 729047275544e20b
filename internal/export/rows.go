// Package export renders a disbursement bill for spreadsheets.
//
// Rows come out in bill order. The payee total is printed on the first row of
// each group; a group with HiddenTotal prints none, so a split payee shows its
// total exactly once.
package export

import (
	"github.com/shopspring/decimal"

	"settlement/internal/bill"
	"settlement/pkg/models"
)

// Headers are the bill columns, in order.
var Headers = []string{
	"Pay For", "Invoice Number", "Group Code", "Group Name", "Created By", "Note", "Price", "Payee Total",
}

// TotalLabel is written next to the grand total.
const TotalLabel = "Bill Total"

// BillRow is one printed bill line.
type BillRow struct {
	PayFor        string
	InvoiceNumber string
	GroupCode     string
	GroupName     string
	CreatedBy     string
	Note          string
	Price         decimal.Decimal
	// PayeeTotal is nil on every row that must not show a total.
	PayeeTotal *decimal.Decimal
}

// Rows flattens groups into printable rows.
func Rows(groups []models.InvoiceGroup) []BillRow {
	var rows []BillRow
	for _, group := range groups {
		for i, inv := range group.Invoices {
			row := BillRow{
				PayFor:        group.PayFor,
				InvoiceNumber: inv.InvoiceNumber,
				GroupCode:     inv.GroupCode,
				GroupName:     inv.GroupName,
				CreatedBy:     inv.CreatedBy,
				Note:          inv.Note,
				Price:         inv.Price,
			}
			if i == 0 && !group.HiddenTotal {
				total := group.Total
				row.PayeeTotal = &total
			}
			rows = append(rows, row)
		}
	}
	return rows
}

// Values returns the row as spreadsheet cell values. Amounts are numbers; an
// absent payee total is an empty string. This is the only place bill amounts
// become floats: cells need numbers, and nothing computes with them afterwards.
func (r BillRow) Values() []interface{} {
	var total interface{} = ""
	if r.PayeeTotal != nil {
		total = r.PayeeTotal.InexactFloat64()
	}
	return []interface{}{
		r.PayFor,
		r.InvoiceNumber,
		r.GroupCode,
		r.GroupName,
		r.CreatedBy,
		r.Note,
		r.Price.InexactFloat64(),
		total,
	}
}

// TotalValues returns the grand total line.
func TotalValues(groups []models.InvoiceGroup) []interface{} {
	values := make([]interface{}, len(Headers))
	for i := range values {
		values[i] = ""
	}
	values[0] = TotalLabel
	values[len(values)-1] = bill.CalculateBillTotalAmount(groups).InexactFloat64()
	return values
}
