package budget

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("budget category not found")

// Category is a spending envelope maintained alongside the expense ledger.
// Spent figures are entered independently and are not derived from expense
// rows.
type Category struct {
	ID                 uuid.UUID
	Owner              string
	Name               string
	Color              string
	BudgetAmount       int64 // cents
	ActualSpent        int64
	PreviousMonthSpent int64
	Transactions       int
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}

// Remaining is the unspent portion of the budget; negative when overspent.
func (c *Category) Remaining() int64 {
	return c.BudgetAmount - c.ActualSpent
}

// PercentUsed reports spend against the ceiling, 0 for a zero budget.
func (c *Category) PercentUsed() float64 {
	if c.BudgetAmount == 0 {
		return 0
	}

	return float64(c.ActualSpent) / float64(c.BudgetAmount) * 100
}

func (c *Category) OverBudget() bool {
	return c.ActualSpent > c.BudgetAmount
}
