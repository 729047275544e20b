package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"settlement/internal/logger"
	"settlement/pkg/models"
)

// SheetName is the worksheet the bill is written to.
const SheetName = "Bill"

// WriteWorkbook writes the bill to an .xlsx file at path.
func WriteWorkbook(path string, groups []models.InvoiceGroup) error {
	const op = "WriteWorkbook"

	log := logger.WithComponent("export")

	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(SheetName); err != nil {
		return fmt.Errorf("%s: failed to create sheet: %w", op, err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("%s: failed to remove default sheet: %w", op, err)
	}

	if err := writeRow(f, 1, stringValues(Headers)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	bold, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E6E6E6"}},
	})
	if err != nil {
		return fmt.Errorf("%s: failed to create header style: %w", op, err)
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(Headers), 1)
	if err := f.SetCellStyle(SheetName, "A1", lastHeader, bold); err != nil {
		return fmt.Errorf("%s: failed to style headers: %w", op, err)
	}

	rows := Rows(groups)
	for i, row := range rows {
		if err := writeRow(f, i+2, row.Values()); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	totalRow := len(rows) + 2
	if err := writeRow(f, totalRow, TotalValues(groups)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	first, _ := excelize.CoordinatesToCellName(1, totalRow)
	last, _ := excelize.CoordinatesToCellName(len(Headers), totalRow)
	if err := f.SetCellStyle(SheetName, first, last, bold); err != nil {
		return fmt.Errorf("%s: failed to style total row: %w", op, err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("%s: failed to save workbook: %w", op, err)
	}

	log.Info().
		Str("file", path).
		Int("groups", len(groups)).
		Int("rows", len(rows)).
		Msg("Bill workbook written")

	return nil
}

func writeRow(f *excelize.File, row int, values []interface{}) error {
	for col, value := range values {
		if s, ok := value.(string); ok && s == "" {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", cell, err)
		}
	}
	return nil
}

func stringValues(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
