package record

import (
	"errors"
	"fmt"
	"time"
)

// Kind distinguishes the two transaction ledgers.
type Kind string

const (
	KindExpense Kind = "expense"
	KindRevenue Kind = "revenue"
)

func (k Kind) Valid() bool {
	return k == KindExpense || k == KindRevenue
}

// Status represents the lifecycle state of a record.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusCompleted || s == StatusCancelled
}

var ErrNotFound = errors.New("record not found")

// ValidationError reports a malformed field at the construction boundary.
// Aggregation and query code downstream assumes well-formed records.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Record is a single expense or revenue transaction row.
// Client, PaymentMethod and Invoice are only meaningful for revenues.
type Record struct {
	ID            int64
	Owner         string
	Kind          Kind
	Date          time.Time
	Description   string
	Amount        int64 // Amount in cents, always >= 0
	Category      string
	Status        Status
	Client        string
	PaymentMethod string
	Invoice       string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// Validate checks the record invariants.
func (r *Record) Validate() error {
	if !r.Kind.Valid() {
		return &ValidationError{Field: "kind", Reason: fmt.Sprintf("unknown kind %q", r.Kind)}
	}

	if r.Amount < 0 {
		return &ValidationError{Field: "amount", Reason: "must not be negative"}
	}

	if !r.Status.Valid() {
		return &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", r.Status)}
	}

	if r.Date.IsZero() {
		return &ValidationError{Field: "date", Reason: "missing date"}
	}

	return nil
}

// Window is an inclusive [Start, End] date range. A zero bound leaves that
// side open.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Contains(t time.Time) bool {
	if !w.Start.IsZero() && t.Before(w.Start) {
		return false
	}

	if !w.End.IsZero() && t.After(w.End) {
		return false
	}

	return true
}

func (w Window) IsZero() bool {
	return w.Start.IsZero() && w.End.IsZero()
}
