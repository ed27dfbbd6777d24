package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/rpfonseca/finboard/internal/auth"
	budgetHandler "github.com/rpfonseca/finboard/internal/http/budget"
	categorizeHandler "github.com/rpfonseca/finboard/internal/http/categorize"
	exportHandler "github.com/rpfonseca/finboard/internal/http/export"
	importHandler "github.com/rpfonseca/finboard/internal/http/importcsv"
	recordHandler "github.com/rpfonseca/finboard/internal/http/record"
	reportHandler "github.com/rpfonseca/finboard/internal/http/report"
)

// New assembles the API router. Everything under /api/v1 requires a valid
// bearer token; /healthz stays open for probes.
func New(
	verifier *auth.Verifier,
	allowedOrigins []string,
	expensesV1 *recordHandler.Handler,
	revenuesV1 *recordHandler.Handler,
	budgetsV1 *budgetHandler.Handler,
	reportsV1 *reportHandler.Handler,
	importExpensesV1 *importHandler.Handler,
	importRevenuesV1 *importHandler.Handler,
	exportV1 *exportHandler.Handler,
	categorizeV1 *categorizeHandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(verifier.Middleware)

		r.Route("/expenses", func(r chi.Router) {
			r.Route("/import", importExpensesV1.Routes)

			r.Group(func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				expensesV1.Routes(r)
			})
		})

		r.Route("/revenues", func(r chi.Router) {
			r.Route("/import", importRevenuesV1.Routes)

			r.Group(func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				revenuesV1.Routes(r)
			})
		})

		r.Route("/budgets", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			budgetsV1.Routes(r)
		})

		r.Route("/reports", reportsV1.Routes)

		r.Route("/export", exportV1.Routes)

		r.Route("/categorize", func(r chi.Router) {
			categorizeV1.Routes(r)
		})
	})

	return router
}
