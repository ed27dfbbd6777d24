package report

import (
	"context"
	"fmt"
	"time"

	"github.com/rpfonseca/finboard/internal/record"
)

//go:generate mockgen -source=builder.go -destination=source_mock.go -package=report

// Source supplies the raw datasets behind each report kind. The production
// source derives them from the ledger; tests and the sample source return
// fixtures. Summary figures coming out of a Source are ignored: the builder
// always recomputes them from line items.
type Source interface {
	IncomeStatement(ctx context.Context, owner string, window record.Window) (*IncomeStatement, error)
	BalanceSheet(ctx context.Context, owner string, window record.Window) (*BalanceSheet, error)
	CashFlow(ctx context.Context, owner string, window record.Window) (*CashFlow, error)
	ExpenseBreakdown(ctx context.Context, owner string, window record.Window) (*Breakdown, error)
	RevenueBreakdown(ctx context.Context, owner string, window record.Window) (*Breakdown, error)
}

type Builder struct {
	source Source
	now    func() time.Time
}

func NewBuilder(source Source) *Builder {
	return &Builder{source: source, now: time.Now}
}

const dateFormat = "Jan 2, 2006"

// Build assembles the display envelope for one report kind over the window.
// Unknown kinds return ErrUnsupportedKind.
func (b *Builder) Build(ctx context.Context, owner string, kind Kind, window record.Window) (*Report, error) {
	r := &Report{
		Kind:        kind,
		Title:       titles[kind],
		DateRange:   fmt.Sprintf("%s - %s", window.Start.Format(dateFormat), window.End.Format(dateFormat)),
		GeneratedAt: b.now(),
	}

	switch kind {
	case KindIncomeStatement:
		data, err := b.source.IncomeStatement(ctx, owner, window)
		if err != nil {
			return nil, fmt.Errorf("building income statement: %w", err)
		}

		data.recompute()
		r.IncomeStatement = data

	case KindBalanceSheet:
		data, err := b.source.BalanceSheet(ctx, owner, window)
		if err != nil {
			return nil, fmt.Errorf("building balance sheet: %w", err)
		}

		data.recompute()
		r.BalanceSheet = data

	case KindCashFlow:
		data, err := b.source.CashFlow(ctx, owner, window)
		if err != nil {
			return nil, fmt.Errorf("building cash flow statement: %w", err)
		}

		data.recompute()
		r.CashFlow = data

	case KindExpenseBreakdown:
		data, err := b.source.ExpenseBreakdown(ctx, owner, window)
		if err != nil {
			return nil, fmt.Errorf("building expense breakdown: %w", err)
		}

		data.recompute()
		r.ExpenseBreakdown = data

	case KindRevenueBreakdown:
		data, err := b.source.RevenueBreakdown(ctx, owner, window)
		if err != nil {
			return nil, fmt.Errorf("building revenue breakdown: %w", err)
		}

		data.recompute()
		r.RevenueBreakdown = data

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKind, kind)
	}

	return r, nil
}
