package bill

import (
	"sort"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"settlement/internal/logger"
	"settlement/internal/money"
	"settlement/pkg/models"
)

// ProcessBillInvoices runs the whole bill pipeline and returns the payee
// groups sorted by payee name. Chunks of one payee stay in order.
func ProcessBillInvoices(invoices []InvoiceForBill, dir Directory, opts Options) []models.InvoiceGroup {
	items := ProcessInvoiceItems(invoices, dir, opts.RefundTypeCode, opts.Labels)

	payees := GroupInvoicesByPayFor(items)
	groups := make([]models.InvoiceGroup, 0, len(payees))
	for _, payee := range payees {
		merged := MergeInvoicesByNumber(payee.Items)
		groups = append(groups, models.InvoiceGroup{
			PayFor:   payee.PayFor,
			Invoices: merged,
			Total:    sumPrices(merged),
		})
	}

	groups = SplitLargeGroups(groups, opts.maxGroupSize())

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].PayFor < groups[j].PayFor
	})
	return groups
}

func sumPrices(rows []models.BillInvoice) decimal.Decimal {
	prices := make([]decimal.Decimal, 0, len(rows))
	for _, r := range rows {
		prices = append(prices, r.Price)
	}
	return money.SafeAdd(prices...)
}

// Aggregator runs the bill pipeline for a fixed directory and options.
type Aggregator struct {
	dir  Directory
	opts Options
	log  zerolog.Logger
}

// NewAggregator creates an Aggregator.
func NewAggregator(dir Directory, opts Options) *Aggregator {
	return &Aggregator{
		dir:  dir,
		opts: opts,
		log:  logger.WithComponent("bill-aggregator"),
	}
}

// Process builds the bill groups for invoices.
func (a *Aggregator) Process(invoices []InvoiceForBill) []models.InvoiceGroup {
	groups := ProcessBillInvoices(invoices, a.dir, a.opts)

	lines, payees, continuations := 0, 0, 0
	for _, inv := range invoices {
		lines += len(inv.Items)
	}
	for _, g := range groups {
		if g.HiddenTotal {
			continuations++
		} else {
			payees++
		}
	}

	a.log.Info().
		Int("invoices", len(invoices)).
		Int("lines", lines).
		Int("payees", payees).
		Int("groups", len(groups)).
		Int("continuations", continuations).
		Int("max_group_size", a.opts.maxGroupSize()).
		Str("total", CalculateBillTotalAmount(groups).String()).
		Msg("Bill invoices aggregated")

	return groups
}
