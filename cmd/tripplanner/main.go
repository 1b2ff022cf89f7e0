package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"tripplanner/internal/config"
	"tripplanner/internal/logging"
	"tripplanner/internal/planner"
	"tripplanner/internal/trace"
	"tripplanner/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:        "tripplanner",
		Usage:       "Plan a trip from the terminal",
		Description: "Suggests flight destinations for a date range, budget and trip type, then shows a daily plan and trip images for the one you pick.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "api-url",
				Usage: "base URL of the planning service (overrides TRIPPLANNER_API_URL)",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "per-request timeout (overrides TRIPPLANNER_REQUEST_TIMEOUT)",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "file to write logs to (overrides TRIPPLANNER_LOG_FILE)",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg, warning, err := config.Load()
	if err != nil {
		return err
	}
	if c.IsSet("api-url") {
		cfg.APIURL = c.String("api-url")
	}
	if c.IsSet("timeout") {
		cfg.RequestTimeout = c.Duration("timeout")
	}
	if c.IsSet("log-file") {
		cfg.LogFile = c.String("log-file")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	closer, err := logging.Setup(logging.Options{
		Path:  cfg.LogPath(),
		JSON:  cfg.IsJSONLog(),
		Debug: cfg.IsDebug(),
	})
	if err != nil {
		return err
	}
	defer closer.Close()
	if warning != "" {
		log.Warn().Msg(warning)
	}

	ctx := c.Context
	tp, err := trace.NewProvider(ctx, cfg.OTLPEndpoint, cfg.ServiceName)
	if err != nil {
		return fmt.Errorf("set up tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("trace provider shutdown")
		}
	}()

	client := planner.NewClient(cfg.APIURL,
		planner.WithTracer(tp.Tracer()),
		planner.WithTimeout(cfg.RequestTimeout),
	)
	log.Info().
		Str("api_url", client.BaseURL()).
		Dur("timeout", cfg.RequestTimeout).
		Bool("tracing", tp.Enabled()).
		Msg("starting tripplanner")

	p := tea.NewProgram(ui.NewAppModel(client).AsTeaModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
