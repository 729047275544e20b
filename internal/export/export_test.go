package export

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"settlement/internal/bill"
	"settlement/pkg/models"
)

func billRow(number string, price int64) models.BillInvoice {
	return models.BillInvoice{
		InvoiceNumber: number,
		CreatedBy:     "Alice",
		GroupName:     "Kyoto Autumn",
		GroupCode:     "KY-2410",
		Note:          "hotel",
		Price:         decimal.NewFromInt(price),
	}
}

// splitFixture holds a payee split into two chunks plus a single-row payee.
func splitFixture() []models.InvoiceGroup {
	return bill.SplitLargeGroups([]models.InvoiceGroup{
		{
			PayFor:   "Harbor Hotel",
			Invoices: []models.BillInvoice{billRow("A1", 100), billRow("A2", 200), billRow("A3", 300)},
			Total:    decimal.NewFromInt(600),
		},
		{
			PayFor:   "Zen Garden Tours",
			Invoices: []models.BillInvoice{billRow("B1", 40)},
			Total:    decimal.NewFromInt(40),
		},
	}, 2)
}

// TestRows_TotalShownOncePerPayee verifies continuation chunks print no total.
func TestRows_TotalShownOncePerPayee(t *testing.T) {
	rows := Rows(splitFixture())
	require.Len(t, rows, 4)

	require.NotNil(t, rows[0].PayeeTotal)
	assert.True(t, decimal.NewFromInt(600).Equal(*rows[0].PayeeTotal))
	assert.Nil(t, rows[1].PayeeTotal)
	assert.Nil(t, rows[2].PayeeTotal, "continuation chunk must not show a total")
	assert.Equal(t, "A3", rows[2].InvoiceNumber)
	require.NotNil(t, rows[3].PayeeTotal)
	assert.True(t, decimal.NewFromInt(40).Equal(*rows[3].PayeeTotal))

	assert.Equal(t, "", rows[2].Values()[7])
	assert.Equal(t, 600.0, rows[0].Values()[7])
}

func TestTotalValues(t *testing.T) {
	values := TotalValues(splitFixture())
	require.Len(t, values, len(Headers))
	assert.Equal(t, TotalLabel, values[0])
	assert.Equal(t, 640.0, values[len(values)-1])
}

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bill.xlsx")
	require.NoError(t, WriteWorkbook(path, splitFixture()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	get := func(cell string) string {
		t.Helper()
		v, err := f.GetCellValue(SheetName, cell)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Pay For", get("A1"))
	assert.Equal(t, "Payee Total", get("H1"))

	assert.Equal(t, "Harbor Hotel", get("A2"))
	assert.Equal(t, "A1", get("B2"))
	assert.Equal(t, "100", get("G2"))
	assert.Equal(t, "600", get("H2"))
	assert.Equal(t, "", get("H3"))
	assert.Equal(t, "A3", get("B4"))
	assert.Equal(t, "", get("H4"))
	assert.Equal(t, "Zen Garden Tours", get("A5"))
	assert.Equal(t, "40", get("H5"))

	assert.Equal(t, TotalLabel, get("A6"))
	assert.Equal(t, "640", get("H6"))
}

func TestWriteWorkbook_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "bill.xlsx")
	assert.Error(t, WriteWorkbook(path, splitFixture()))
}
