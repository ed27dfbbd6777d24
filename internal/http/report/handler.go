package report

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rpfonseca/finboard/internal/auth"
	"github.com/rpfonseca/finboard/internal/record"
	"github.com/rpfonseca/finboard/internal/report"
)

type Handler struct {
	builder *report.Builder
}

func NewHandler(builder *report.Builder) *Handler {
	return &Handler{builder: builder}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/{kind}", h.build)
}

func (h *Handler) build(w http.ResponseWriter, r *http.Request) {
	kind := report.Kind(chi.URLParam(r, "kind"))

	// Reports cover an explicit period, so both bounds are required.
	start, err := time.Parse(time.DateOnly, r.URL.Query().Get("start_date"))
	if err != nil {
		http.Error(w, "start_date is required and must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	end, err := time.Parse(time.DateOnly, r.URL.Query().Get("end_date"))
	if err != nil {
		http.Error(w, "end_date is required and must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	window := record.Window{Start: start, End: end}

	rep, err := h.builder.Build(r.Context(), auth.UserID(r.Context()), kind, window)
	if err != nil {
		if errors.Is(err, report.ErrUnsupportedKind) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(rep)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
