// Package bill reshapes invoice line items into the payee-grouped batches of a
// disbursement bill.
//
// The pipeline is ProcessInvoiceItems -> GroupInvoicesByPayFor ->
// MergeInvoicesByNumber -> SplitLargeGroups -> sort by payee, composed by
// ProcessBillInvoices. Each stage is a pure function; name lookups are
// delegated to a caller-supplied Directory.
package bill

import (
	"strconv"

	"github.com/shopspring/decimal"

	"settlement/pkg/models"
)

// DefaultMaxGroupSize is the number of rows a bill batch holds before the
// payee continues in a further batch.
const DefaultMaxGroupSize = 5

// PayeeKind distinguishes suppliers from the two reserved payee categories.
type PayeeKind int

const (
	PayeeSupplier PayeeKind = iota
	PayeeCustomer
	PayeeForeign
)

// Stored payFor tokens for the reserved categories.
const (
	TokenCustomer = "customer"
	TokenForeign  = "foreign"
)

// Payee is who an invoice line pays: a supplier by id, a customer refund, or
// a foreign payment.
type Payee struct {
	Kind       PayeeKind
	SupplierID string
}

// SupplierPayee returns the payee for supplier id.
func SupplierPayee(id string) Payee { return Payee{Kind: PayeeSupplier, SupplierID: id} }

// CustomerRefund returns the reserved customer refund payee.
func CustomerRefund() Payee { return Payee{Kind: PayeeCustomer} }

// ForeignPayment returns the reserved foreign payment payee.
func ForeignPayment() Payee { return Payee{Kind: PayeeForeign} }

// ParsePayee decodes a stored payFor value. Only the exact tokens select the
// reserved payees; any other value, padded variants included, is a supplier id.
func ParsePayee(raw string) Payee {
	switch raw {
	case TokenCustomer:
		return CustomerRefund()
	case TokenForeign:
		return ForeignPayment()
	default:
		return SupplierPayee(raw)
	}
}

// String returns the stored form of the payee.
func (p Payee) String() string {
	switch p.Kind {
	case PayeeCustomer:
		return TokenCustomer
	case PayeeForeign:
		return TokenForeign
	default:
		return p.SupplierID
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Payee) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Payee) UnmarshalText(text []byte) error {
	*p = ParsePayee(string(text))
	return nil
}

// InvoiceLine is one line item of an invoice headed for a bill.
type InvoiceLine struct {
	Price       decimal.Decimal `json:"price" yaml:"price"`
	Quantity    decimal.Decimal `json:"quantity" yaml:"quantity"`
	PayFor      Payee           `json:"payFor" yaml:"payFor"`
	Note        string          `json:"note,omitempty" yaml:"note,omitempty"`
	InvoiceType int             `json:"invoiceType" yaml:"invoiceType"`
}

// InvoiceForBill is an invoice with its line items.
type InvoiceForBill struct {
	InvoiceNumber string        `json:"invoiceNumber" yaml:"invoiceNumber"`
	CreatedBy     string        `json:"createdBy" yaml:"createdBy"` // employee id
	GroupName     string        `json:"groupName,omitempty" yaml:"groupName,omitempty"`
	GroupCode     string        `json:"groupCode,omitempty" yaml:"groupCode,omitempty"`
	Items         []InvoiceLine `json:"items" yaml:"items"`
}

// ProcessedInvoiceItem is a flattened line with display names resolved and
// its price sign-normalized. It shares the bill row shape so merged rows can
// be merged again.
type ProcessedInvoiceItem = models.BillInvoice

// PaymentLabels are the display names of the reserved payees.
type PaymentLabels struct {
	CustomerRefund string
	ForeignPayment string
}

// Directory resolves ids to display names. Implementations must be total:
// every lookup returns some string.
type Directory interface {
	EmployeeName(id string) string
	SupplierName(id string) string
	InvoiceTypeName(code int) string
}

// Lookups adapts plain functions to Directory. A nil function echoes the id,
// or the code as text for invoice types.
type Lookups struct {
	Employee    func(id string) string
	Supplier    func(id string) string
	InvoiceType func(code int) string
}

func (l Lookups) EmployeeName(id string) string {
	if l.Employee == nil {
		return id
	}
	return l.Employee(id)
}

func (l Lookups) SupplierName(id string) string {
	if l.Supplier == nil {
		return id
	}
	return l.Supplier(id)
}

func (l Lookups) InvoiceTypeName(code int) string {
	if l.InvoiceType == nil {
		return strconv.Itoa(code)
	}
	return l.InvoiceType(code)
}

// Options are the bill constants.
type Options struct {
	RefundTypeCode int
	Labels         PaymentLabels
	MaxGroupSize   int // <= 0 means DefaultMaxGroupSize
}

func (o Options) maxGroupSize() int {
	if o.MaxGroupSize <= 0 {
		return DefaultMaxGroupSize
	}
	return o.MaxGroupSize
}
