package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rpfonseca/finboard/internal/record"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectRecordColumns = `
	id, owner, kind, date, description, amount, category, status,
	client, payment_method, invoice, notes, created_at, updated_at
`

func scanRecord(s scanner) (*record.Record, error) {
	var r record.Record

	var kindStr, statusStr string

	if err := s.Scan(
		&r.ID, &r.Owner, &kindStr, &r.Date, &r.Description, &r.Amount, &r.Category, &statusStr,
		&r.Client, &r.PaymentMethod, &r.Invoice, &r.Notes, &r.CreatedAt, &r.UpdatedAt,
	); err != nil {
		return nil, err
	}

	r.Kind = record.Kind(kindStr)
	r.Status = record.Status(statusStr)

	return &r, nil
}

func (s *Store) CreateRecord(ctx context.Context, r *record.Record) error {
	// The id comes from the records_id_seq sequence, so concurrent writers
	// can never collide.
	query := `
		INSERT INTO records (owner, kind, date, description, amount, category, status,
			client, payment_method, invoice, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		r.Owner,
		r.Kind,
		r.Date,
		r.Description,
		r.Amount,
		r.Category,
		r.Status,
		r.Client,
		r.PaymentMethod,
		r.Invoice,
		r.Notes,
	).Scan(&r.ID, &r.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating record: %w", err)
	}

	return nil
}

func (s *Store) GetRecord(ctx context.Context, owner string, kind record.Kind, id int64) (*record.Record, error) {
	query := `SELECT ` + selectRecordColumns + `
		FROM records
		WHERE id = $1 AND owner = $2 AND kind = $3`

	r, err := scanRecord(s.db.QueryRowContext(ctx, query, id, owner, kind))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, record.ErrNotFound
		}

		return nil, fmt.Errorf("getting record: %w", err)
	}

	return r, nil
}

func (s *Store) ListRecords(ctx context.Context, owner string, kind record.Kind, filter record.ListFilter) ([]*record.Record, error) {
	query := `SELECT ` + selectRecordColumns + `
		FROM records
		WHERE owner = $1 AND kind = $2`

	args := []any{owner, kind}

	argIdx := 3

	if !filter.Window.Start.IsZero() {
		query += fmt.Sprintf(" AND date >= $%d", argIdx)

		args = append(args, filter.Window.Start)
		argIdx++
	}

	if !filter.Window.End.IsZero() {
		query += fmt.Sprintf(" AND date <= $%d", argIdx)

		args = append(args, filter.Window.End)
		argIdx++
	}

	if len(filter.Statuses) > 0 {
		query += fmt.Sprintf(" AND status = ANY($%d)", argIdx)

		statuses := make([]string, len(filter.Statuses))
		for i, st := range filter.Statuses {
			statuses[i] = string(st)
		}

		args = append(args, statuses)
		argIdx++
	}

	query += " ORDER BY date ASC, id ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	defer rows.Close()

	var records []*record.Record

	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}

		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating record rows: %w", err)
	}

	return records, nil
}

func (s *Store) UpdateRecord(ctx context.Context, r *record.Record) error {
	query := `
		UPDATE records
		SET date = $1, description = $2, amount = $3, category = $4, status = $5,
			client = $6, payment_method = $7, invoice = $8, notes = $9, updated_at = NOW()
		WHERE id = $10 AND owner = $11 AND kind = $12
	`

	res, err := s.db.ExecContext(ctx, query,
		r.Date,
		r.Description,
		r.Amount,
		r.Category,
		r.Status,
		r.Client,
		r.PaymentMethod,
		r.Invoice,
		r.Notes,
		r.ID,
		r.Owner,
		r.Kind,
	)
	if err != nil {
		return fmt.Errorf("updating record: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating record: %w", err)
	}

	if affected == 0 {
		return record.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteRecord(ctx context.Context, owner string, kind record.Kind, id int64) error {
	query := `DELETE FROM records WHERE id = $1 AND owner = $2 AND kind = $3`

	res, err := s.db.ExecContext(ctx, query, id, owner, kind)
	if err != nil {
		return fmt.Errorf("deleting record: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting record: %w", err)
	}

	if affected == 0 {
		return record.ErrNotFound
	}

	return nil
}
