package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/andrewshostak/team-lookup-service/config"
	"github.com/andrewshostak/team-lookup-service/internal/adapters/http/client/sportsdb"
	"github.com/andrewshostak/team-lookup-service/internal/adapters/presenter"
	"github.com/andrewshostak/team-lookup-service/internal/app/lookup"
	loggerinternal "github.com/andrewshostak/team-lookup-service/internal/infra/logger"
	"github.com/andrewshostak/team-lookup-service/internal/infra/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func main() {
	var logFile string

	rootCmd := &cobra.Command{
		Use:   "lookup [team name]",
		Short: "lookup prints upcoming games, past games and roster of a team",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), strings.Join(args, " "), logFile, cmd.OutOrStdout())
		},
	}

	rootCmd.Flags().StringVar(&logFile, "log-file", "", "also append logs to the file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, name string, logFile string, out io.Writer) error {
	cfg := config.Parse[config.CLI]()

	var writers []io.Writer
	if logFile != "" {
		f, err := loggerinternal.OpenLogFile(logFile)
		if err != nil {
			return err
		}

		defer f.Close()

		writers = append(writers, f)
	}

	logger := loggerinternal.SetupLogger(writers...)

	httpClient := http.Client{Timeout: cfg.SportsDB.HTTPTimeout}
	sportsDBClient := sportsdb.NewSportsDBClient(&httpClient, logger, cfg.SportsDB)
	recorder := metrics.NewRecorder(prometheus.NewRegistry())

	lookupService := lookup.NewLookupService(cfg.Lookup, sportsDBClient, nil, recorder, logger)

	text := presenter.NewText()
	if outcome := lookupService.RunLookup(ctx, name, text); outcome == nil {
		return fmt.Errorf("team name must not be blank")
	}

	_, err := fmt.Fprint(out, text.Render())

	return err
}
