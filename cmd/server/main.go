package main

import (
	"fmt"
	"net/http"

	"github.com/andrewshostak/team-lookup-service/config"
	"github.com/andrewshostak/team-lookup-service/internal/adapters/http/client/sportsdb"
	"github.com/andrewshostak/team-lookup-service/internal/adapters/http/server/handler"
	"github.com/andrewshostak/team-lookup-service/internal/adapters/presenter"
	"github.com/andrewshostak/team-lookup-service/internal/adapters/repository"
	"github.com/andrewshostak/team-lookup-service/internal/app/history"
	"github.com/andrewshostak/team-lookup-service/internal/app/lookup"
	"github.com/andrewshostak/team-lookup-service/internal/infra/http/server"
	loggerinternal "github.com/andrewshostak/team-lookup-service/internal/infra/logger"
	"github.com/andrewshostak/team-lookup-service/internal/infra/metrics"
	"github.com/andrewshostak/team-lookup-service/internal/infra/postgres"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "run",
		Short: "Server starts running the server",
		Run:   startServer,
	}

	if err := rootCmd.Execute(); err != nil {
		panic(err)
	}
}

func startServer(_ *cobra.Command, _ []string) {
	cfg := config.Parse[config.Server]()

	logger := loggerinternal.SetupLogger()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewRecorder(registry)

	httpClient := http.Client{Timeout: cfg.SportsDB.HTTPTimeout}
	sportsDBClient := sportsdb.NewSportsDBClient(&httpClient, logger, cfg.SportsDB)

	var searchRepository lookup.SearchRepository
	var historyService handler.HistoryService
	if cfg.History.Enabled {
		db := postgres.EstablishDatabaseConnection(cfg.PG)
		repo := repository.NewSearchRepository(db)

		searchRepository = repo
		historyService = history.NewHistoryService(cfg.History, repo, logger)
	}

	lookupService := lookup.NewLookupService(cfg.Lookup, sportsDBClient, searchRepository, recorder, logger)

	r, err := server.NewServer(cfg.App, server.Handlers{
		LookupHandler:  handler.NewLookupHandler(lookupService),
		BoardHandler:   handler.NewBoardHandler(lookupService, presenter.NewBoard(), logger),
		HistoryHandler: handler.NewHistoryHandler(historyService),
		MetricsHandler: recorder.Handler(),
	})
	if err != nil {
		panic(err)
	}

	logger.Info().Str("port", cfg.App.Port).Bool("history", cfg.History.Enabled).Msg("starting server")

	if err := r.Run(fmt.Sprintf(":%s", cfg.App.Port)); err != nil {
		logger.Error().Err(err).Msg("server stopped")
	}
}
