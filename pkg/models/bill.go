package models

import "github.com/shopspring/decimal"

// BillInvoice is one merged invoice row of a disbursement bill.
type BillInvoice struct {
	InvoiceNumber string          `json:"invoiceNumber" yaml:"invoiceNumber"`
	CreatedBy     string          `json:"createdBy" yaml:"createdBy"` // employee display name
	GroupName     string          `json:"groupName" yaml:"groupName"`
	GroupCode     string          `json:"groupCode" yaml:"groupCode"`
	Note          string          `json:"note" yaml:"note"`
	PayFor        string          `json:"payFor" yaml:"payFor"` // payee display name
	Price         decimal.Decimal `json:"price" yaml:"price"`
}

// InvoiceGroup is a payee-keyed batch of bill rows.
//
// A payee with more rows than the bill's group size is split into several
// consecutive groups. Only the first carries the payee total; the others have
// Total zero and HiddenTotal set, and their total must not be rendered.
type InvoiceGroup struct {
	PayFor      string          `json:"payFor" yaml:"payFor"`
	Invoices    []BillInvoice   `json:"invoices" yaml:"invoices"`
	Total       decimal.Decimal `json:"total" yaml:"total"`
	HiddenTotal bool            `json:"hiddenTotal,omitempty" yaml:"hiddenTotal,omitempty"`
}
