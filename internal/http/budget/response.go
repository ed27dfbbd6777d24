package budget

import (
	"time"

	"github.com/google/uuid"

	"github.com/rpfonseca/finboard/internal/budget"
)

type categoryResponse struct {
	ID                 uuid.UUID  `json:"id"`
	Name               string     `json:"name"`
	Color              string     `json:"color,omitempty"`
	BudgetAmount       int64      `json:"budget_amount"`
	ActualSpent        int64      `json:"actual_spent"`
	PreviousMonthSpent int64      `json:"previous_month_spent"`
	Transactions       int        `json:"transactions"`
	Remaining          int64      `json:"remaining"`
	PercentUsed        float64    `json:"percent_used"`
	OverBudget         bool       `json:"over_budget"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"`
}

func toResponse(c *budget.Category) categoryResponse {
	return categoryResponse{
		ID:                 c.ID,
		Name:               c.Name,
		Color:              c.Color,
		BudgetAmount:       c.BudgetAmount,
		ActualSpent:        c.ActualSpent,
		PreviousMonthSpent: c.PreviousMonthSpent,
		Transactions:       c.Transactions,
		Remaining:          c.Remaining(),
		PercentUsed:        c.PercentUsed(),
		OverBudget:         c.OverBudget(),
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

func toResponseList(categories []*budget.Category) []categoryResponse {
	resp := make([]categoryResponse, len(categories))
	for i, c := range categories {
		resp[i] = toResponse(c)
	}

	return resp
}
