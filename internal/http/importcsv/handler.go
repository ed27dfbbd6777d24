package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rpfonseca/finboard/internal/auth"
	"github.com/rpfonseca/finboard/internal/categorize"
	"github.com/rpfonseca/finboard/internal/importer"
	"github.com/rpfonseca/finboard/internal/record"
)

const maxUploadBytes = 10 << 20

// Handler imports one kind of record. The router mounts it under both
// /expenses/import and /revenues/import.
type Handler struct {
	importSvc  *importer.Service
	recordSvc  *record.Service
	suggestSvc *categorize.Service
	kind       record.Kind
}

func NewHandler(importSvc *importer.Service, recordSvc *record.Service, suggestSvc *categorize.Service, kind record.Kind) *Handler {
	return &Handler{
		importSvc:  importSvc,
		recordSvc:  recordSvc,
		suggestSvc: suggestSvc,
		kind:       kind,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type importedRecord struct {
	ID          int64         `json:"id"`
	Date        string        `json:"date"`
	Description string        `json:"description"`
	Amount      int64         `json:"amount"`
	Category    string        `json:"category,omitempty"`
	Status      record.Status `json:"status"`
}

type importResponse struct {
	Imported int              `json:"imported"`
	Skipped  int              `json:"skipped"`
	Records  []importedRecord `json:"records"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	result, err := h.importSvc.Parse(file, h.kind)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	owner := auth.UserID(r.Context())

	// Uncategorized rows get a suggestion from the learned rules. A failed
	// lookup just leaves the row uncategorized.
	for i, p := range result.Params {
		if p.Category != "" {
			continue
		}

		suggested, err := h.suggestSvc.Suggest(r.Context(), owner, p.Description)
		if err != nil {
			continue
		}

		result.Params[i].Category = suggested
	}

	resp := importResponse{Skipped: result.Skipped}

	for _, p := range result.Params {
		p.Owner = owner

		rec, err := h.recordSvc.Create(r.Context(), p)
		if err != nil {
			resp.Skipped++
			continue
		}

		resp.Imported++
		resp.Records = append(resp.Records, importedRecord{
			ID:          rec.ID,
			Date:        rec.Date.Format(time.DateOnly),
			Description: rec.Description,
			Amount:      rec.Amount,
			Category:    rec.Category,
			Status:      rec.Status,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
