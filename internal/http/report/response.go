package report

import (
	"time"

	"github.com/rpfonseca/finboard/internal/report"
)

type reportResponse struct {
	Kind        report.Kind `json:"kind"`
	Title       string      `json:"title"`
	DateRange   string      `json:"date_range"`
	GeneratedAt time.Time   `json:"generated_at"`

	IncomeStatement  *incomeStatementDTO `json:"income_statement,omitempty"`
	BalanceSheet     *balanceSheetDTO    `json:"balance_sheet,omitempty"`
	CashFlow         *cashFlowDTO        `json:"cash_flow,omitempty"`
	ExpenseBreakdown *breakdownDTO       `json:"expense_breakdown,omitempty"`
	RevenueBreakdown *breakdownDTO       `json:"revenue_breakdown,omitempty"`
}

type lineItemDTO struct {
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

func toLineItems(items []report.LineItem) []lineItemDTO {
	out := make([]lineItemDTO, len(items))
	for i, it := range items {
		out[i] = lineItemDTO{Label: it.Label, Amount: it.Amount}
	}

	return out
}

type incomeStatementDTO struct {
	Revenue  []lineItemDTO    `json:"revenue"`
	Expenses []lineItemDTO    `json:"expenses"`
	Summary  incomeSummaryDTO `json:"summary"`
}

type incomeSummaryDTO struct {
	TotalRevenue  int64   `json:"total_revenue"`
	TotalExpenses int64   `json:"total_expenses"`
	NetIncome     int64   `json:"net_income"`
	MarginPercent float64 `json:"margin_percent"`
}

type balanceSheetDTO struct {
	Assets      []lineItemDTO     `json:"assets"`
	Liabilities []lineItemDTO     `json:"liabilities"`
	Equity      []lineItemDTO     `json:"equity"`
	Summary     balanceSummaryDTO `json:"summary"`
}

type balanceSummaryDTO struct {
	TotalAssets      int64 `json:"total_assets"`
	TotalLiabilities int64 `json:"total_liabilities"`
	TotalEquity      int64 `json:"total_equity"`
}

type cashFlowDTO struct {
	Months  []cashFlowMonthDTO `json:"months"`
	Summary cashFlowSummaryDTO `json:"summary"`
}

type cashFlowMonthDTO struct {
	Month   string `json:"month"`
	Inflow  int64  `json:"inflow"`
	Outflow int64  `json:"outflow"`
	Net     int64  `json:"net"`
	Balance int64  `json:"balance"`
}

type cashFlowSummaryDTO struct {
	TotalInflow  int64 `json:"total_inflow"`
	TotalOutflow int64 `json:"total_outflow"`
	NetCashFlow  int64 `json:"net_cash_flow"`
}

type breakdownDTO struct {
	Items   []breakdownItemDTO  `json:"items"`
	Summary breakdownSummaryDTO `json:"summary"`
}

type breakdownItemDTO struct {
	Label   string  `json:"label"`
	Amount  int64   `json:"amount"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

type breakdownSummaryDTO struct {
	TotalAmount int64 `json:"total_amount"`
	TotalCount  int   `json:"total_count"`
}

func toResponse(r *report.Report) reportResponse {
	resp := reportResponse{
		Kind:        r.Kind,
		Title:       r.Title,
		DateRange:   r.DateRange,
		GeneratedAt: r.GeneratedAt,
	}

	if r.IncomeStatement != nil {
		resp.IncomeStatement = &incomeStatementDTO{
			Revenue:  toLineItems(r.IncomeStatement.Revenue),
			Expenses: toLineItems(r.IncomeStatement.Expenses),
			Summary: incomeSummaryDTO{
				TotalRevenue:  r.IncomeStatement.Summary.TotalRevenue,
				TotalExpenses: r.IncomeStatement.Summary.TotalExpenses,
				NetIncome:     r.IncomeStatement.Summary.NetIncome,
				MarginPercent: r.IncomeStatement.Summary.MarginPercent,
			},
		}
	}

	if r.BalanceSheet != nil {
		resp.BalanceSheet = &balanceSheetDTO{
			Assets:      toLineItems(r.BalanceSheet.Assets),
			Liabilities: toLineItems(r.BalanceSheet.Liabilities),
			Equity:      toLineItems(r.BalanceSheet.Equity),
			Summary: balanceSummaryDTO{
				TotalAssets:      r.BalanceSheet.Summary.TotalAssets,
				TotalLiabilities: r.BalanceSheet.Summary.TotalLiabilities,
				TotalEquity:      r.BalanceSheet.Summary.TotalEquity,
			},
		}
	}

	if r.CashFlow != nil {
		months := make([]cashFlowMonthDTO, len(r.CashFlow.Months))
		for i, m := range r.CashFlow.Months {
			months[i] = cashFlowMonthDTO{
				Month:   m.Month,
				Inflow:  m.Inflow,
				Outflow: m.Outflow,
				Net:     m.Net,
				Balance: m.Balance,
			}
		}

		resp.CashFlow = &cashFlowDTO{
			Months: months,
			Summary: cashFlowSummaryDTO{
				TotalInflow:  r.CashFlow.Summary.TotalInflow,
				TotalOutflow: r.CashFlow.Summary.TotalOutflow,
				NetCashFlow:  r.CashFlow.Summary.NetCashFlow,
			},
		}
	}

	if r.ExpenseBreakdown != nil {
		resp.ExpenseBreakdown = toBreakdownDTO(r.ExpenseBreakdown)
	}

	if r.RevenueBreakdown != nil {
		resp.RevenueBreakdown = toBreakdownDTO(r.RevenueBreakdown)
	}

	return resp
}

func toBreakdownDTO(b *report.Breakdown) *breakdownDTO {
	items := make([]breakdownItemDTO, len(b.Items))
	for i, it := range b.Items {
		items[i] = breakdownItemDTO{
			Label:   it.Label,
			Amount:  it.Amount,
			Count:   it.Count,
			Percent: it.Percent,
		}
	}

	return &breakdownDTO{
		Items: items,
		Summary: breakdownSummaryDTO{
			TotalAmount: b.Summary.TotalAmount,
			TotalCount:  b.Summary.TotalCount,
		},
	}
}
