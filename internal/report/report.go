package report

import (
	"errors"
	"time"
)

// Kind identifies one of the five financial statements the dashboard renders.
type Kind string

const (
	KindIncomeStatement  Kind = "income_statement"
	KindBalanceSheet     Kind = "balance_sheet"
	KindCashFlow         Kind = "cash_flow"
	KindExpenseBreakdown Kind = "expense_breakdown"
	KindRevenueBreakdown Kind = "revenue_breakdown"
)

// ErrUnsupportedKind is returned for report kinds the builder does not know.
// There is deliberately no default report to fall back to.
var ErrUnsupportedKind = errors.New("unsupported report kind")

var titles = map[Kind]string{
	KindIncomeStatement:  "Income Statement",
	KindBalanceSheet:     "Balance Sheet",
	KindCashFlow:         "Cash Flow Statement",
	KindExpenseBreakdown: "Expense Report",
	KindRevenueBreakdown: "Revenue Report",
}

// Report is a transient display envelope. It is regenerated on every request
// and never persisted. Exactly one of the data fields is set, matching Kind.
type Report struct {
	Kind        Kind
	Title       string
	DateRange   string
	GeneratedAt time.Time

	IncomeStatement  *IncomeStatement
	BalanceSheet     *BalanceSheet
	CashFlow         *CashFlow
	ExpenseBreakdown *Breakdown
	RevenueBreakdown *Breakdown
}

// LineItem is a labelled amount in cents.
type LineItem struct {
	Label  string
	Amount int64
}

func sumItems(items []LineItem) int64 {
	var total int64
	for _, it := range items {
		total += it.Amount
	}

	return total
}

type IncomeStatement struct {
	Revenue  []LineItem
	Expenses []LineItem
	Summary  IncomeSummary
}

type IncomeSummary struct {
	TotalRevenue  int64
	TotalExpenses int64
	NetIncome     int64
	MarginPercent float64
}

// recompute derives the summary from the line items. Whatever figures a
// source put in Summary are discarded, which keeps the summary consistent
// with the items by construction.
func (d *IncomeStatement) recompute() {
	s := IncomeSummary{
		TotalRevenue:  sumItems(d.Revenue),
		TotalExpenses: sumItems(d.Expenses),
	}
	s.NetIncome = s.TotalRevenue - s.TotalExpenses

	if s.TotalRevenue != 0 {
		s.MarginPercent = float64(s.NetIncome) / float64(s.TotalRevenue) * 100
	}

	d.Summary = s
}

type BalanceSheet struct {
	Assets      []LineItem
	Liabilities []LineItem
	Equity      []LineItem
	Summary     BalanceSummary
}

type BalanceSummary struct {
	TotalAssets      int64
	TotalLiabilities int64
	TotalEquity      int64
}

func (d *BalanceSheet) recompute() {
	d.Summary = BalanceSummary{
		TotalAssets:      sumItems(d.Assets),
		TotalLiabilities: sumItems(d.Liabilities),
		TotalEquity:      sumItems(d.Equity),
	}
}

type CashFlow struct {
	Months  []CashFlowMonth
	Summary CashFlowSummary
}

// CashFlowMonth carries the raw inflow/outflow for one month; Net and
// Balance are derived during recompute.
type CashFlowMonth struct {
	Month   string // "2006-01"
	Inflow  int64
	Outflow int64
	Net     int64
	Balance int64
}

type CashFlowSummary struct {
	TotalInflow  int64
	TotalOutflow int64
	NetCashFlow  int64
}

func (d *CashFlow) recompute() {
	var s CashFlowSummary

	var running int64

	for i := range d.Months {
		m := &d.Months[i]
		m.Net = m.Inflow - m.Outflow
		running += m.Net
		m.Balance = running

		s.TotalInflow += m.Inflow
		s.TotalOutflow += m.Outflow
	}

	s.NetCashFlow = s.TotalInflow - s.TotalOutflow
	d.Summary = s
}

type Breakdown struct {
	Items   []BreakdownItem
	Summary BreakdownSummary
}

type BreakdownItem struct {
	Label   string
	Amount  int64
	Count   int
	Percent float64
}

type BreakdownSummary struct {
	TotalAmount int64
	TotalCount  int
}

func (d *Breakdown) recompute() {
	var s BreakdownSummary

	for _, it := range d.Items {
		s.TotalAmount += it.Amount
		s.TotalCount += it.Count
	}

	for i := range d.Items {
		if s.TotalAmount != 0 {
			d.Items[i].Percent = float64(d.Items[i].Amount) / float64(s.TotalAmount) * 100
		} else {
			d.Items[i].Percent = 0
		}
	}

	d.Summary = s
}
