package record

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rpfonseca/finboard/internal/auth"
	"github.com/rpfonseca/finboard/internal/record"
)

// Handler serves one kind of record. The router mounts it once under
// /expenses and once under /revenues.
type Handler struct {
	svc  *record.Service
	kind record.Kind
}

func NewHandler(svc *record.Service, kind record.Kind) *Handler {
	return &Handler{svc: svc, kind: kind}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/stats", h.stats)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createRecordRequest struct {
	Date          string        `json:"date"`
	Description   string        `json:"description"`
	Amount        int64         `json:"amount"`
	Category      string        `json:"category"`
	Status        record.Status `json:"status"`
	Client        string        `json:"client,omitempty"`
	PaymentMethod string        `json:"payment_method,omitempty"`
	Invoice       string        `json:"invoice,omitempty"`
	Notes         string        `json:"notes,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	status := req.Status
	if status == "" {
		status = record.StatusCompleted
	}

	rec, err := h.svc.Create(r.Context(), record.CreateParams{
		Owner:         auth.UserID(r.Context()),
		Kind:          h.kind,
		Date:          date,
		Description:   req.Description,
		Amount:        req.Amount,
		Category:      req.Category,
		Status:        status,
		Client:        req.Client,
		PaymentMethod: req.PaymentMethod,
		Invoice:       req.Invoice,
		Notes:         req.Notes,
	})
	if err != nil {
		var verr *record.ValidationError
		if errors.As(err, &verr) {
			http.Error(w, verr.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(rec)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q := record.Query{
		Search:    r.URL.Query().Get("q"),
		Window:    parseWindow(r),
		SortField: r.URL.Query().Get("sort"),
		Direction: record.Direction(r.URL.Query().Get("dir")),
	}

	if s := r.URL.Query().Get("category"); s != "" {
		q.Categories = strings.Split(s, ",")
	}

	if s := r.URL.Query().Get("status"); s != "" {
		for _, v := range strings.Split(s, ",") {
			q.Statuses = append(q.Statuses, record.Status(v))
		}
	}

	if s := r.URL.Query().Get("client"); s != "" {
		q.Clients = strings.Split(s, ",")
	}

	if n, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		q.Page = n
	}

	if n, err := strconv.Atoi(r.URL.Query().Get("page_size")); err == nil {
		q.PageSize = n
	}

	page, err := h.svc.Query(r.Context(), auth.UserID(r.Context()), h.kind, q)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toPageResponse(page)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	window := parseWindow(r)
	owner := auth.UserID(r.Context())

	w.Header().Set("Content-Type", "application/json")

	if h.kind == record.KindRevenue {
		summary, err := h.svc.RevenueStats(r.Context(), owner, window)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if err := json.NewEncoder(w).Encode(toRevenueStatsResponse(summary)); err != nil {
			slog.Error("failed to encode response", "error", err)
		}

		return
	}

	summary, err := h.svc.Stats(r.Context(), owner, h.kind, window)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if err := json.NewEncoder(w).Encode(toStatsResponse(summary)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	rec, err := h.svc.Get(r.Context(), auth.UserID(r.Context()), h.kind, id)
	if err != nil {
		if errors.Is(err, record.ErrNotFound) {
			http.Error(w, "record not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(rec)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateRecordRequest struct {
	Date          *string        `json:"date,omitempty"`
	Description   *string        `json:"description,omitempty"`
	Amount        *int64         `json:"amount,omitempty"`
	Category      *string        `json:"category,omitempty"`
	Status        *record.Status `json:"status,omitempty"`
	Client        *string        `json:"client,omitempty"`
	PaymentMethod *string        `json:"payment_method,omitempty"`
	Invoice       *string        `json:"invoice,omitempty"`
	Notes         *string        `json:"notes,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rec, err := h.svc.Get(r.Context(), auth.UserID(r.Context()), h.kind, id)
	if err != nil {
		if errors.Is(err, record.ErrNotFound) {
			http.Error(w, "record not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Date != nil {
		date, err := time.Parse(time.DateOnly, *req.Date)
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		rec.Date = date
	}

	if req.Description != nil {
		rec.Description = *req.Description
	}

	if req.Amount != nil {
		rec.Amount = *req.Amount
	}

	if req.Category != nil {
		rec.Category = *req.Category
	}

	if req.Status != nil {
		rec.Status = *req.Status
	}

	if req.Client != nil {
		rec.Client = *req.Client
	}

	if req.PaymentMethod != nil {
		rec.PaymentMethod = *req.PaymentMethod
	}

	if req.Invoice != nil {
		rec.Invoice = *req.Invoice
	}

	if req.Notes != nil {
		rec.Notes = *req.Notes
	}

	if err := h.svc.Update(r.Context(), rec); err != nil {
		var verr *record.ValidationError
		if errors.As(err, &verr) {
			http.Error(w, verr.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(rec)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), auth.UserID(r.Context()), h.kind, id); err != nil {
		if errors.Is(err, record.ErrNotFound) {
			http.Error(w, "record not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseWindow reads the optional start_date/end_date query parameters.
// Malformed dates are ignored, leaving that bound open.
func parseWindow(r *http.Request) record.Window {
	var window record.Window

	if s := r.URL.Query().Get("start_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			window.Start = t
		}
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			window.End = t
		}
	}

	return window
}
