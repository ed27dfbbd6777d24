package record

import (
	"time"

	"github.com/rpfonseca/finboard/internal/record"
)

type recordResponse struct {
	ID            int64         `json:"id"`
	Date          string        `json:"date"`
	Description   string        `json:"description"`
	Amount        int64         `json:"amount"`
	Category      string        `json:"category"`
	Status        record.Status `json:"status"`
	Client        string        `json:"client,omitempty"`
	PaymentMethod string        `json:"payment_method,omitempty"`
	Invoice       string        `json:"invoice,omitempty"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     *time.Time    `json:"updated_at,omitempty"`
}

func toResponse(r *record.Record) recordResponse {
	return recordResponse{
		ID:            r.ID,
		Date:          r.Date.Format(time.DateOnly),
		Description:   r.Description,
		Amount:        r.Amount,
		Category:      r.Category,
		Status:        r.Status,
		Client:        r.Client,
		PaymentMethod: r.PaymentMethod,
		Invoice:       r.Invoice,
		Notes:         r.Notes,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

type pageResponse struct {
	Items      []recordResponse `json:"items"`
	TotalCount int              `json:"total_count"`
	TotalPages int              `json:"total_pages"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
}

func toPageResponse(p record.Page) pageResponse {
	items := make([]recordResponse, len(p.Items))
	for i, r := range p.Items {
		items[i] = toResponse(r)
	}

	return pageResponse{
		Items:      items,
		TotalCount: p.TotalCount,
		TotalPages: p.TotalPages,
		Page:       p.Page,
		PageSize:   p.PageSize,
	}
}

type statsResponse struct {
	TotalAmount   int64   `json:"total_amount"`
	PendingAmount int64   `json:"pending_amount"`
	PendingCount  int     `json:"pending_count"`
	TotalCount    int     `json:"total_count"`
	AverageAmount float64 `json:"average_amount"`
}

func toStatsResponse(s record.Summary) statsResponse {
	return statsResponse{
		TotalAmount:   s.TotalAmount,
		PendingAmount: s.PendingAmount,
		PendingCount:  s.PendingCount,
		TotalCount:    s.TotalCount,
		AverageAmount: s.AverageAmount,
	}
}

type revenueStatsResponse struct {
	statsResponse
	PercentChange   float64 `json:"percent_change"`
	NoPriorBaseline bool    `json:"no_prior_baseline"`
	TopClient       string  `json:"top_client"`
	TopClientAmount int64   `json:"top_client_amount"`
}

func toRevenueStatsResponse(s record.RevenueSummary) revenueStatsResponse {
	return revenueStatsResponse{
		statsResponse:   toStatsResponse(s.Summary),
		PercentChange:   s.PercentChange,
		NoPriorBaseline: s.NoPriorBaseline,
		TopClient:       s.TopClient,
		TopClientAmount: s.TopClientAmount,
	}
}
