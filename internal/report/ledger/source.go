// Package ledger derives report datasets from the actual expense and revenue
// records. Cancelled records are excluded: a statement reflects recorded and
// pending activity, not transactions that never settled.
package ledger

import (
	"context"
	"fmt"
	"sort"

	"github.com/rpfonseca/finboard/internal/record"
	"github.com/rpfonseca/finboard/internal/report"
)

// Lister is the slice of the record service the ledger source needs.
type Lister interface {
	List(ctx context.Context, owner string, kind record.Kind, filter record.ListFilter) ([]*record.Record, error)
}

// Source builds report datasets from records. The balance sheet alone is
// delegated to a fallback source, since flat transaction rows carry no
// asset or liability postings to derive one from.
type Source struct {
	records  Lister
	fallback report.Source
}

func New(records Lister, fallback report.Source) *Source {
	return &Source{records: records, fallback: fallback}
}

var activeStatuses = []record.Status{record.StatusPending, record.StatusCompleted}

func (s *Source) list(ctx context.Context, owner string, kind record.Kind, window record.Window) ([]*record.Record, error) {
	records, err := s.records.List(ctx, owner, kind, record.ListFilter{
		Window:   window,
		Statuses: activeStatuses,
	})
	if err != nil {
		return nil, fmt.Errorf("listing %s records: %w", kind, err)
	}

	return records, nil
}

// byCategory groups amounts under category labels, keeping labels in
// first-encounter order. Uncategorized records land under "Other".
func byCategory(records []*record.Record) []report.BreakdownItem {
	type bucket struct {
		amount int64
		count  int
	}

	buckets := make(map[string]*bucket)

	var labels []string

	for _, r := range records {
		label := r.Category
		if label == "" {
			label = "Other"
		}

		b, ok := buckets[label]
		if !ok {
			b = &bucket{}
			buckets[label] = b

			labels = append(labels, label)
		}

		b.amount += r.Amount
		b.count++
	}

	items := make([]report.BreakdownItem, 0, len(labels))
	for _, label := range labels {
		items = append(items, report.BreakdownItem{
			Label:  label,
			Amount: buckets[label].amount,
			Count:  buckets[label].count,
		})
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].Amount > items[j].Amount })

	return items
}

func toLineItems(items []report.BreakdownItem) []report.LineItem {
	lines := make([]report.LineItem, len(items))
	for i, it := range items {
		lines[i] = report.LineItem{Label: it.Label, Amount: it.Amount}
	}

	return lines
}

func (s *Source) IncomeStatement(ctx context.Context, owner string, window record.Window) (*report.IncomeStatement, error) {
	revenues, err := s.list(ctx, owner, record.KindRevenue, window)
	if err != nil {
		return nil, err
	}

	expenses, err := s.list(ctx, owner, record.KindExpense, window)
	if err != nil {
		return nil, err
	}

	return &report.IncomeStatement{
		Revenue:  toLineItems(byCategory(revenues)),
		Expenses: toLineItems(byCategory(expenses)),
	}, nil
}

func (s *Source) BalanceSheet(ctx context.Context, owner string, window record.Window) (*report.BalanceSheet, error) {
	return s.fallback.BalanceSheet(ctx, owner, window)
}

func (s *Source) CashFlow(ctx context.Context, owner string, window record.Window) (*report.CashFlow, error) {
	revenues, err := s.list(ctx, owner, record.KindRevenue, window)
	if err != nil {
		return nil, err
	}

	expenses, err := s.list(ctx, owner, record.KindExpense, window)
	if err != nil {
		return nil, err
	}

	type flow struct {
		inflow  int64
		outflow int64
	}

	flows := make(map[string]*flow)

	monthOf := func(r *record.Record) *flow {
		key := r.Date.Format("2006-01")

		f, ok := flows[key]
		if !ok {
			f = &flow{}
			flows[key] = f
		}

		return f
	}

	for _, r := range revenues {
		monthOf(r).inflow += r.Amount
	}

	for _, r := range expenses {
		monthOf(r).outflow += r.Amount
	}

	keys := make([]string, 0, len(flows))
	for k := range flows {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	months := make([]report.CashFlowMonth, 0, len(keys))
	for _, k := range keys {
		months = append(months, report.CashFlowMonth{
			Month:   k,
			Inflow:  flows[k].inflow,
			Outflow: flows[k].outflow,
		})
	}

	return &report.CashFlow{Months: months}, nil
}

func (s *Source) ExpenseBreakdown(ctx context.Context, owner string, window record.Window) (*report.Breakdown, error) {
	expenses, err := s.list(ctx, owner, record.KindExpense, window)
	if err != nil {
		return nil, err
	}

	return &report.Breakdown{Items: byCategory(expenses)}, nil
}

func (s *Source) RevenueBreakdown(ctx context.Context, owner string, window record.Window) (*report.Breakdown, error) {
	revenues, err := s.list(ctx, owner, record.KindRevenue, window)
	if err != nil {
		return nil, err
	}

	return &report.Breakdown{Items: byCategory(revenues)}, nil
}
