package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/rpfonseca/finboard/internal/money"
	"github.com/rpfonseca/finboard/internal/record"
)

// Service renders record listings as CSV for download. Amounts are written
// as plain decimals so the file round-trips through the importer.
type Service struct {
	records *record.Service
}

func NewService(records *record.Service) *Service {
	return &Service{records: records}
}

var expenseHeader = []string{"id", "date", "description", "category", "amount", "status", "notes"}

var revenueHeader = []string{
	"id", "date", "description", "category", "amount", "status",
	"client", "payment_method", "invoice", "notes",
}

// Write streams the owner's records of the given kind within the window.
func (s *Service) Write(ctx context.Context, w io.Writer, owner string, kind record.Kind, window record.Window) error {
	records, err := s.records.List(ctx, owner, kind, record.ListFilter{Window: window})
	if err != nil {
		return fmt.Errorf("listing records: %w", err)
	}

	cw := csv.NewWriter(w)

	header := expenseHeader
	if kind == record.KindRevenue {
		header = revenueHeader
	}

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, r := range records {
		row := []string{
			fmt.Sprintf("%d", r.ID),
			r.Date.Format(time.DateOnly),
			r.Description,
			r.Category,
			money.FormatCents(r.Amount),
			string(r.Status),
		}

		if kind == record.KindRevenue {
			row = append(row, r.Client, r.PaymentMethod, r.Invoice)
		}

		row = append(row, r.Notes)

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}

	return nil
}

// Filename builds the attachment name for a download, e.g.
// "expenses_20240331.csv".
func Filename(kind record.Kind, now time.Time) string {
	return fmt.Sprintf("%ss_%s.csv", kind, now.Format("20060102"))
}
