// Package sample provides a fixture-backed report source. It stands in for
// the external financial-data feed in demos and while the ledger has no
// postings to derive a statement from.
package sample

import (
	"context"

	"github.com/rpfonseca/finboard/internal/record"
	"github.com/rpfonseca/finboard/internal/report"
)

type Source struct{}

func New() *Source {
	return &Source{}
}

func (s *Source) IncomeStatement(_ context.Context, _ string, _ record.Window) (*report.IncomeStatement, error) {
	return &report.IncomeStatement{
		Revenue: []report.LineItem{
			{Label: "Consulting", Amount: 4500000},
			{Label: "Product Sales", Amount: 2800000},
			{Label: "Maintenance Contracts", Amount: 1200000},
		},
		Expenses: []report.LineItem{
			{Label: "Salaries", Amount: 3200000},
			{Label: "Rent", Amount: 850000},
			{Label: "Software & Tooling", Amount: 340000},
			{Label: "Marketing", Amount: 510000},
		},
	}, nil
}

func (s *Source) BalanceSheet(_ context.Context, _ string, _ record.Window) (*report.BalanceSheet, error) {
	return &report.BalanceSheet{
		Assets: []report.LineItem{
			{Label: "Cash & Equivalents", Amount: 6200000},
			{Label: "Accounts Receivable", Amount: 1850000},
			{Label: "Equipment", Amount: 940000},
		},
		Liabilities: []report.LineItem{
			{Label: "Accounts Payable", Amount: 720000},
			{Label: "Deferred Revenue", Amount: 1100000},
		},
		Equity: []report.LineItem{
			{Label: "Retained Earnings", Amount: 5370000},
			{Label: "Owner Capital", Amount: 1800000},
		},
	}, nil
}

func (s *Source) CashFlow(_ context.Context, _ string, _ record.Window) (*report.CashFlow, error) {
	return &report.CashFlow{
		Months: []report.CashFlowMonth{
			{Month: "2024-01", Inflow: 2100000, Outflow: 1600000},
			{Month: "2024-02", Inflow: 1800000, Outflow: 1750000},
			{Month: "2024-03", Inflow: 2600000, Outflow: 1550000},
		},
	}, nil
}

func (s *Source) ExpenseBreakdown(_ context.Context, _ string, _ record.Window) (*report.Breakdown, error) {
	return &report.Breakdown{
		Items: []report.BreakdownItem{
			{Label: "Salaries", Amount: 3200000, Count: 12},
			{Label: "Rent", Amount: 850000, Count: 4},
			{Label: "Software & Tooling", Amount: 340000, Count: 23},
			{Label: "Marketing", Amount: 510000, Count: 9},
		},
	}, nil
}

func (s *Source) RevenueBreakdown(_ context.Context, _ string, _ record.Window) (*report.Breakdown, error) {
	return &report.Breakdown{
		Items: []report.BreakdownItem{
			{Label: "Consulting", Amount: 4500000, Count: 18},
			{Label: "Product Sales", Amount: 2800000, Count: 64},
			{Label: "Maintenance Contracts", Amount: 1200000, Count: 6},
		},
	}, nil
}
