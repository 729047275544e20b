package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"settlement/internal/bill"
	"settlement/internal/export"
	"settlement/internal/ledger"
	"settlement/internal/logger"
	"settlement/internal/sheets"
	"settlement/pkg/models"
)

var billCmd = &cobra.Command{
	Use:   "bill [group-file]",
	Short: "Build the disbursement bill for a group's invoices",
	Long: `Build the disbursement bill for the invoices in a JSON or YAML group file.

Invoice lines are priced, labelled with their payee, merged per invoice number
and batched per payee. Payees with more rows than the group size are split;
only the first batch shows the payee total.

Optional environment variables:
  MAX_GROUP_SIZE        - Rows per payee batch (default: 5)
  REFUND_TYPE_CODE      - Invoice type whose prices are absolute (default: 9)
  GOOGLE_SHEET_URL      - Sheet to append the bill to with --sheet
  GOOGLE_SHEET_WORKSHEET - Worksheet name (default: Bill)`,
	Example: `  # Print the bill
  settlement bill kyoto-2410.yaml

  # Write an Excel workbook and append to Google Sheets
  settlement bill kyoto-2410.yaml --xlsx bill.xlsx --sheet`,
	Args: cobra.ExactArgs(1),
	RunE: runBill,
}

func init() {
	rootCmd.AddCommand(billCmd)

	billCmd.Flags().Bool("json", false, "Output as JSON format")
	billCmd.Flags().Bool("yaml", false, "Output as YAML format")
	billCmd.Flags().Int("max-group-size", 0, "Rows per payee batch (default from MAX_GROUP_SIZE)")
	billCmd.Flags().String("xlsx", "", "Write the bill to this Excel file")
	billCmd.Flags().Bool("sheet", false, "Append the bill to the Google Sheet in GOOGLE_SHEET_URL")
}

func runBill(cmd *cobra.Command, args []string) error {
	groupFile := args[0]

	jsonOutput, _ := cmd.Flags().GetBool("json")
	yamlOutput, _ := cmd.Flags().GetBool("yaml")
	maxGroupSize, _ := cmd.Flags().GetInt("max-group-size")
	xlsxPath, _ := cmd.Flags().GetString("xlsx")
	toSheet, _ := cmd.Flags().GetBool("sheet")

	if maxGroupSize < 0 {
		return fmt.Errorf("max group size must be positive")
	}
	if toSheet && appConfig.GoogleSheetURL == "" {
		return fmt.Errorf("GOOGLE_SHEET_URL environment variable is required for --sheet")
	}

	file, err := ledger.NewLoader().Load(groupFile)
	if err != nil {
		return err
	}

	log := logger.WithGroup("bill", file.Group.Code)

	opts := appConfig.BillOptions()
	if maxGroupSize > 0 {
		opts.MaxGroupSize = maxGroupSize
	}

	groups := bill.NewAggregator(file.Directory(), opts).Process(file.Invoices)

	if xlsxPath != "" {
		if err := export.WriteWorkbook(xlsxPath, groups); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
		log.Info().Str("file", xlsxPath).Msg("Bill written to Excel")
	}

	if toSheet {
		ctx := context.Background()
		sheetsService, err := sheets.NewSheetsService(ctx, appConfig.GoogleSheetURL)
		if err != nil {
			return fmt.Errorf("failed to initialize Google Sheets service: %w", err)
		}
		if err := sheetsService.WriteBill(ctx, groups, appConfig.GoogleSheetWorksheet); err != nil {
			return fmt.Errorf("failed to write bill to Google Sheet: %w", err)
		}
	}

	if jsonOutput || yamlOutput {
		return printStructured(groups, yamlOutput)
	}

	printBill(groups)
	return nil
}

func printBill(groups []models.InvoiceGroup) {
	fmt.Println(strings.Repeat("=", 80))
	fmt.Printf("%-20s %-14s %-24s %10s %10s\n", "PAY FOR", "INVOICE", "NOTE", "PRICE", "TOTAL")
	fmt.Println(strings.Repeat("=", 80))

	for _, row := range export.Rows(groups) {
		total := ""
		if row.PayeeTotal != nil {
			total = row.PayeeTotal.StringFixed(2)
		}
		fmt.Printf("%-20s %-14s %-24s %10s %10s\n", row.PayFor, row.InvoiceNumber, row.Note, row.Price.StringFixed(2), total)
	}

	fmt.Println(strings.Repeat("-", 80))
	fmt.Printf("%-60s %21s\n", export.TotalLabel, bill.CalculateBillTotalAmount(groups).StringFixed(2))
}
