package export

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rpfonseca/finboard/internal/auth"
	"github.com/rpfonseca/finboard/internal/export"
	"github.com/rpfonseca/finboard/internal/record"
)

type Handler struct {
	svc *export.Service
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.download)
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	kind := record.Kind(r.URL.Query().Get("kind"))
	if !kind.Valid() {
		http.Error(w, "kind must be expense or revenue", http.StatusBadRequest)
		return
	}

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

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", export.Filename(kind, time.Now())))

	if err := h.svc.Write(r.Context(), w, auth.UserID(r.Context()), kind, window); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
}
