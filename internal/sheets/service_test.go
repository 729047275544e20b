package sheets

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"settlement/internal/export"
	"settlement/pkg/models"
)

func TestExtractSpreadsheetID(t *testing.T) {
	id, err := extractSpreadsheetID("https://docs.google.com/spreadsheets/d/1AbC-d_9xyz/edit#gid=0")
	require.NoError(t, err)
	assert.Equal(t, "1AbC-d_9xyz", id)

	_, err = extractSpreadsheetID("https://example.com/not-a-sheet")
	assert.Error(t, err)
}

func TestLastColumn(t *testing.T) {
	assert.Len(t, sheetHeaders(), len(export.Headers)+1)
	assert.Equal(t, "I", lastColumn())
}

func TestBillValues(t *testing.T) {
	groups := []models.InvoiceGroup{
		{
			PayFor: "Harbor Hotel",
			Invoices: []models.BillInvoice{
				{InvoiceNumber: "A1", Price: decimal.NewFromInt(250)},
				{InvoiceNumber: "A2", Price: decimal.NewFromInt(350)},
			},
			Total: decimal.NewFromInt(600),
		},
	}
	at := time.Date(2024, 10, 3, 9, 30, 0, 0, time.UTC)

	values := billValues(groups, at)
	require.Len(t, values, 3)

	assert.Equal(t, "Harbor Hotel", values[0][0])
	assert.Equal(t, 600.0, values[0][7])
	assert.Equal(t, "", values[1][7])
	assert.Equal(t, "2024-10-03 09:30:00", values[1][8])
	assert.Equal(t, export.TotalLabel, values[2][0])
	assert.Equal(t, 600.0, values[2][7])
}

func TestLoadCredentials(t *testing.T) {
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "")
	t.Setenv("GOOGLE_CREDENTIALS", "")
	_, err := loadCredentials()
	assert.Error(t, err)

	t.Setenv("GOOGLE_CREDENTIALS", `{"type":"service_account"}`)
	creds, err := loadCredentials()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"service_account"}`, string(creds))
}
