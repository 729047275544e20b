package cmd

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"settlement/internal/finance"
	"settlement/internal/ledger"
	"settlement/internal/logger"
	"settlement/pkg/models"
)

var closeCmd = &cobra.Command{
	Use:   "close [group-file]",
	Short: "Close a travel group's accounts",
	Long: `Close a travel group's accounts from a JSON or YAML group file.

Computes the receipt and invoice totals, the administrative cost, the profit
before tax, the profit tax, every bonus and the net profit.

Optional environment variables:
  TAX_RATE_PERCENT  - Default profit tax rate (default: 20)
  COST_PER_CUSTOMER - Default administrative cost per customer (default: 10)`,
	Example: `  # Close a group
  settlement close kyoto-2410.yaml

  # Close with an explicit tax rate and print JSON
  settlement close kyoto-2410.json --tax-rate 12.5 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runClose,
}

func init() {
	rootCmd.AddCommand(closeCmd)

	closeCmd.Flags().Bool("json", false, "Output as JSON format")
	closeCmd.Flags().Bool("yaml", false, "Output as YAML format")
	closeCmd.Flags().String("tax-rate", "", "Profit tax rate in percent, overrides group settings")
	closeCmd.Flags().Bool("verbose", false, "Show the bonus breakdown and input warnings")
}

func runClose(cmd *cobra.Command, args []string) error {
	groupFile := args[0]

	jsonOutput, _ := cmd.Flags().GetBool("json")
	yamlOutput, _ := cmd.Flags().GetBool("yaml")
	taxRate, _ := cmd.Flags().GetString("tax-rate")
	verbose, _ := cmd.Flags().GetBool("verbose")

	file, err := ledger.NewLoader().Load(groupFile)
	if err != nil {
		return err
	}

	log := logger.WithGroup("close", file.Group.Code)
	log.Info().
		Str("file", groupFile).
		Int("customers", file.Group.CustomerCount).
		Msg("Closing group")

	input := file.ClosingInput(appConfig.ClosingDefaults())
	if taxRate != "" {
		rate, err := decimal.NewFromString(taxRate)
		if err != nil {
			return fmt.Errorf("invalid tax rate %q: %w", taxRate, err)
		}
		input.Terms.TaxRatePercent = rate
	}

	report := finance.NewCloser().Close(input)

	if jsonOutput || yamlOutput {
		return printStructured(report, yamlOutput)
	}

	printClosingReport(report, verbose)
	return nil
}

func printClosingReport(report *models.ClosingReport, verbose bool) {
	r := report.Result

	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("  CLOSING REPORT  %s  %s\n", report.GroupCode, report.GroupName)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Customers:            %d\n", report.CustomerCount)
	fmt.Printf("Tax rate:             %s%%\n", report.TaxRatePercent.String())
	fmt.Printf("Cost per customer:    %s\n", report.CostPerCustomer.StringFixed(2))
	fmt.Println()
	fmt.Printf("Receipt total:        %s\n", r.ReceiptTotal.StringFixed(2))
	fmt.Printf("Invoice total:        %s\n", r.InvoiceTotal.StringFixed(2))
	fmt.Printf("Administrative cost:  %s\n", r.AdministrativeCost.StringFixed(2))
	fmt.Printf("Profit without tax:   %s\n", r.ProfitWithoutTax.StringFixed(2))
	fmt.Printf("Profit tax:           %s\n", r.ProfitTax.StringFixed(2))
	fmt.Printf("Total bonus:          %s\n", r.TotalBonus.StringFixed(2))
	fmt.Printf("Net profit:           %s\n", r.NetProfit.StringFixed(2))

	if !verbose {
		return
	}

	fmt.Println()
	fmt.Println("=== BONUSES ===")
	if len(report.Bonuses) == 0 {
		fmt.Println("-")
	}
	for _, b := range report.Bonuses {
		who := b.EmployeeName
		if who == "" {
			who = "company"
		}
		fmt.Printf("%-14s %-20s %-10s %10s  (%s)\n", b.Kind, b.Calculation, b.Value.String(), b.Amount.StringFixed(2), who)
	}

	if len(report.Warnings) > 0 {
		fmt.Println()
		fmt.Println("=== WARNINGS ===")
		for _, w := range report.Warnings {
			fmt.Printf("- %s\n", w)
		}
	}

	fmt.Println()
	fmt.Printf("Report %s generated at %s\n", report.ID, report.GeneratedAt.Format("2006-01-02 15:04:05"))
}
