package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/rpfonseca/finboard/internal/auth"
	"github.com/rpfonseca/finboard/internal/budget"
	budgetStore "github.com/rpfonseca/finboard/internal/budget/store"
	"github.com/rpfonseca/finboard/internal/categorize"
	categorizeStore "github.com/rpfonseca/finboard/internal/categorize/store"
	"github.com/rpfonseca/finboard/internal/config"
	"github.com/rpfonseca/finboard/internal/database"
	"github.com/rpfonseca/finboard/internal/export"
	finboardHttp "github.com/rpfonseca/finboard/internal/http"
	budgetHandler "github.com/rpfonseca/finboard/internal/http/budget"
	categorizeHandler "github.com/rpfonseca/finboard/internal/http/categorize"
	exportHandler "github.com/rpfonseca/finboard/internal/http/export"
	importHandler "github.com/rpfonseca/finboard/internal/http/importcsv"
	recordHandler "github.com/rpfonseca/finboard/internal/http/record"
	reportHandler "github.com/rpfonseca/finboard/internal/http/report"
	"github.com/rpfonseca/finboard/internal/importer"
	"github.com/rpfonseca/finboard/internal/record"
	recordStore "github.com/rpfonseca/finboard/internal/record/store"
	"github.com/rpfonseca/finboard/internal/report"
	"github.com/rpfonseca/finboard/internal/report/ledger"
	"github.com/rpfonseca/finboard/internal/report/sample"
)

func main() {
	// Missing .env is fine, the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), database.Pool{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	var (
		recordService     = record.NewService(recordStore.New(db))
		budgetService     = budget.NewService(budgetStore.New(db))
		categorizeService = categorize.NewService(categorizeStore.New(db))
		importService     = importer.NewService()
		exportService     = export.NewService(recordService)
		reportBuilder     = report.NewBuilder(ledger.New(recordService, sample.New()))
	)

	verifier := auth.NewVerifier(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.Audience)

	var (
		expensesH       = recordHandler.NewHandler(recordService, record.KindExpense)
		revenuesH       = recordHandler.NewHandler(recordService, record.KindRevenue)
		budgetsH        = budgetHandler.NewHandler(budgetService)
		reportsH        = reportHandler.NewHandler(reportBuilder)
		importExpensesH = importHandler.NewHandler(importService, recordService, categorizeService, record.KindExpense)
		importRevenuesH = importHandler.NewHandler(importService, recordService, categorizeService, record.KindRevenue)
		exportH         = exportHandler.NewHandler(exportService)
		categorizeH     = categorizeHandler.NewHandler(categorizeService)
	)

	router := finboardHttp.New(
		verifier,
		cfg.CORS.AllowedOrigins,
		expensesH,
		revenuesH,
		budgetsH,
		reportsH,
		importExpensesH,
		importRevenuesH,
		exportH,
		categorizeH,
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("starting server", "app", cfg.App.Name, "addr", srv.Addr)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
