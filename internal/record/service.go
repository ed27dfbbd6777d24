package record

import (
	"context"
	"fmt"
	"time"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=record
type Repository interface {
	CreateRecord(ctx context.Context, r *Record) error
	GetRecord(ctx context.Context, owner string, kind Kind, id int64) (*Record, error)
	UpdateRecord(ctx context.Context, r *Record) error
	DeleteRecord(ctx context.Context, owner string, kind Kind, id int64) error
	ListRecords(ctx context.Context, owner string, kind Kind, filter ListFilter) ([]*Record, error)
}

// ListFilter narrows repository listings before the in-memory pipeline runs.
type ListFilter struct {
	Window   Window
	Statuses []Status
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type CreateParams struct {
	Owner         string
	Kind          Kind
	Date          time.Time
	Description   string
	Amount        int64
	Category      string
	Status        Status
	Client        string
	PaymentMethod string
	Invoice       string
	Notes         string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Record, error) {
	r := &Record{
		Owner:         params.Owner,
		Kind:          params.Kind,
		Date:          params.Date,
		Description:   params.Description,
		Amount:        params.Amount,
		Category:      params.Category,
		Status:        params.Status,
		Client:        params.Client,
		PaymentMethod: params.PaymentMethod,
		Invoice:       params.Invoice,
		Notes:         params.Notes,
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.CreateRecord(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

func (s *Service) Get(ctx context.Context, owner string, kind Kind, id int64) (*Record, error) {
	return s.repo.GetRecord(ctx, owner, kind, id)
}

func (s *Service) Update(ctx context.Context, r *Record) error {
	if err := r.Validate(); err != nil {
		return err
	}

	return s.repo.UpdateRecord(ctx, r)
}

func (s *Service) Delete(ctx context.Context, owner string, kind Kind, id int64) error {
	return s.repo.DeleteRecord(ctx, owner, kind, id)
}

func (s *Service) List(ctx context.Context, owner string, kind Kind, filter ListFilter) ([]*Record, error) {
	return s.repo.ListRecords(ctx, owner, kind, filter)
}

// Query materializes the owner's records for the query window and runs the
// table pipeline over them.
func (s *Service) Query(ctx context.Context, owner string, kind Kind, q Query) (Page, error) {
	records, err := s.repo.ListRecords(ctx, owner, kind, ListFilter{Window: q.Window})
	if err != nil {
		return Page{}, fmt.Errorf("listing records: %w", err)
	}

	return Run(records, q), nil
}

// Stats computes the windowed aggregate for the owner's records of a kind.
func (s *Service) Stats(ctx context.Context, owner string, kind Kind, window Window) (Summary, error) {
	records, err := s.repo.ListRecords(ctx, owner, kind, ListFilter{Window: window})
	if err != nil {
		return Summary{}, fmt.Errorf("listing records: %w", err)
	}

	return Summarize(records, window), nil
}

// RevenueStats computes the revenue aggregate. The month-over-month figures
// need the full ledger, so the listing is unwindowed and the window is only
// applied inside the aggregation.
func (s *Service) RevenueStats(ctx context.Context, owner string, window Window) (RevenueSummary, error) {
	records, err := s.repo.ListRecords(ctx, owner, KindRevenue, ListFilter{})
	if err != nil {
		return RevenueSummary{}, fmt.Errorf("listing records: %w", err)
	}

	return SummarizeRevenue(records, window, s.now()), nil
}
