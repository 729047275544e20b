package ledger

import "strconv"

// Directory resolves employee, supplier and invoice type names from the maps
// carried by an input file. Unknown ids resolve to the id itself, so every
// lookup is total.
type Directory struct {
	Employees    map[string]string
	Suppliers    map[string]string
	InvoiceTypes map[int]string
}

// EmployeeName returns the employee's display name.
func (d Directory) EmployeeName(id string) string {
	if name, ok := d.Employees[id]; ok && name != "" {
		return name
	}
	return id
}

// SupplierName returns the supplier's display name.
func (d Directory) SupplierName(id string) string {
	if name, ok := d.Suppliers[id]; ok && name != "" {
		return name
	}
	return id
}

// InvoiceTypeName returns the invoice type's display name.
func (d Directory) InvoiceTypeName(code int) string {
	if name, ok := d.InvoiceTypes[code]; ok && name != "" {
		return name
	}
	return strconv.Itoa(code)
}
