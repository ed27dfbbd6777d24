package categorize

import (
	"context"
)

type Repository interface {
	FindCategory(ctx context.Context, owner, description string) (string, error)
	CreateRule(ctx context.Context, owner, pattern, category string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Suggest tries to find a category for the given record description.
// Returns empty string if no rule matches.
func (s *Service) Suggest(ctx context.Context, owner, description string) (string, error) {
	return s.repo.FindCategory(ctx, owner, description)
}

// Learn remembers a new mapping between a description pattern and a category.
func (s *Service) Learn(ctx context.Context, owner, pattern, category string) error {
	return s.repo.CreateRule(ctx, owner, pattern, category)
}
