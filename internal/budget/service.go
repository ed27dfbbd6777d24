package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=budget
type Repository interface {
	CreateCategory(ctx context.Context, c *Category) error
	GetCategory(ctx context.Context, owner string, id uuid.UUID) (*Category, error)
	UpdateCategory(ctx context.Context, c *Category) error
	DeleteCategory(ctx context.Context, owner string, id uuid.UUID) error
	ListCategories(ctx context.Context, owner string) ([]*Category, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Owner              string
	Name               string
	Color              string
	BudgetAmount       int64
	ActualSpent        int64
	PreviousMonthSpent int64
	Transactions       int
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Category, error) {
	if params.Name == "" {
		return nil, fmt.Errorf("category name is required")
	}

	if params.BudgetAmount < 0 {
		return nil, fmt.Errorf("budget amount must not be negative")
	}

	c := &Category{
		ID:                 uuid.New(),
		Owner:              params.Owner,
		Name:               params.Name,
		Color:              params.Color,
		BudgetAmount:       params.BudgetAmount,
		ActualSpent:        params.ActualSpent,
		PreviousMonthSpent: params.PreviousMonthSpent,
		Transactions:       params.Transactions,
	}

	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, owner string, id uuid.UUID) (*Category, error) {
	return s.repo.GetCategory(ctx, owner, id)
}

func (s *Service) Update(ctx context.Context, c *Category) error {
	if c.Name == "" {
		return fmt.Errorf("category name is required")
	}

	if c.BudgetAmount < 0 {
		return fmt.Errorf("budget amount must not be negative")
	}

	return s.repo.UpdateCategory(ctx, c)
}

func (s *Service) Delete(ctx context.Context, owner string, id uuid.UUID) error {
	return s.repo.DeleteCategory(ctx, owner, id)
}

func (s *Service) List(ctx context.Context, owner string) ([]*Category, error) {
	return s.repo.ListCategories(ctx, owner)
}
