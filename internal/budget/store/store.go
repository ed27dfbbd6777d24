package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/rpfonseca/finboard/internal/budget"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectCategoryColumns = `
	id, owner, name, color, budget_amount, actual_spent, previous_month_spent,
	transactions, created_at, updated_at
`

func scanCategory(s scanner) (*budget.Category, error) {
	var c budget.Category

	if err := s.Scan(
		&c.ID, &c.Owner, &c.Name, &c.Color, &c.BudgetAmount, &c.ActualSpent,
		&c.PreviousMonthSpent, &c.Transactions, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &c, nil
}

func (s *Store) CreateCategory(ctx context.Context, c *budget.Category) error {
	query := `
		INSERT INTO budget_categories (id, owner, name, color, budget_amount,
			actual_spent, previous_month_spent, transactions, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.ID,
		c.Owner,
		c.Name,
		c.Color,
		c.BudgetAmount,
		c.ActualSpent,
		c.PreviousMonthSpent,
		c.Transactions,
	).Scan(&c.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating budget category: %w", err)
	}

	return nil
}

func (s *Store) GetCategory(ctx context.Context, owner string, id uuid.UUID) (*budget.Category, error) {
	query := `SELECT ` + selectCategoryColumns + `
		FROM budget_categories
		WHERE id = $1 AND owner = $2`

	c, err := scanCategory(s.db.QueryRowContext(ctx, query, id, owner))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, budget.ErrNotFound
		}

		return nil, fmt.Errorf("getting budget category: %w", err)
	}

	return c, nil
}

func (s *Store) ListCategories(ctx context.Context, owner string) ([]*budget.Category, error) {
	query := `SELECT ` + selectCategoryColumns + `
		FROM budget_categories
		WHERE owner = $1
		ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("listing budget categories: %w", err)
	}
	defer rows.Close()

	var categories []*budget.Category

	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning budget category: %w", err)
		}

		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating budget category rows: %w", err)
	}

	return categories, nil
}

func (s *Store) UpdateCategory(ctx context.Context, c *budget.Category) error {
	query := `
		UPDATE budget_categories
		SET name = $1, color = $2, budget_amount = $3, actual_spent = $4,
			previous_month_spent = $5, transactions = $6, updated_at = NOW()
		WHERE id = $7 AND owner = $8
	`

	res, err := s.db.ExecContext(ctx, query,
		c.Name,
		c.Color,
		c.BudgetAmount,
		c.ActualSpent,
		c.PreviousMonthSpent,
		c.Transactions,
		c.ID,
		c.Owner,
	)
	if err != nil {
		return fmt.Errorf("updating budget category: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating budget category: %w", err)
	}

	if affected == 0 {
		return budget.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteCategory(ctx context.Context, owner string, id uuid.UUID) error {
	query := `DELETE FROM budget_categories WHERE id = $1 AND owner = $2`

	res, err := s.db.ExecContext(ctx, query, id, owner)
	if err != nil {
		return fmt.Errorf("deleting budget category: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting budget category: %w", err)
	}

	if affected == 0 {
		return budget.ErrNotFound
	}

	return nil
}
