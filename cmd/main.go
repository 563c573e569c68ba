package main

//
//  @title           fipepulse API
//  @version         1.0
//  @description     FIPE vehicle price history and multi-vehicle comparison service.
//  @termsOfService  https://github.com/guttosm/fipepulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/fipepulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        catalog
//  @tag.description Vehicle taxonomy (type, brand, model, year)
//
//  @tag.name        history
//  @tag.description Reference periods and price history
//
//  @tag.name        sessions
//  @tag.description Comparison sessions, table and chart
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/fipepulse/config"
	_ "github.com/guttosm/fipepulse/docs" // swagger docs
	"github.com/guttosm/fipepulse/internal/app"
	"github.com/guttosm/fipepulse/internal/compare"
	"github.com/guttosm/fipepulse/internal/logger"
)

// startServer starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The configured Gin engine.
//   - port (string): Port to listen on, without the colon.
//
// Returns:
//   - *http.Server: The running server, to be passed to gracefulShutdown.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown waits for SIGINT or SIGTERM, drains the server, then runs
// cleanup to stop the scheduler and cancel running fetches.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Error().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// runCompare executes a YAML comparison plan and writes the result as JSON.
//
// Parameters:
//   - ctx (context.Context): Cancels every vehicle run when done.
//   - cfg (config.Config): Supplies the upstream clients and the plan defaults.
//   - planPath (string): Path of the YAML plan.
//   - out (io.Writer): Destination of the indented JSON result.
//
// Returns:
//   - error: Plan loading or run failure; per-vehicle failures are in the result.
func runCompare(ctx context.Context, cfg config.Config, planPath string, out io.Writer) error {
	plan, err := compare.LoadPlan(planPath)
	if err != nil {
		return err
	}
	if plan.Months == 0 {
		plan.Months = cfg.History.DefaultMonths
	}
	if plan.Parallel == 0 {
		plan.Parallel = cfg.History.Parallel
	}

	up := app.NewUpstream(cfg)
	res, err := compare.Run(ctx, up.Fetcher, plan)
	if err != nil {
		return fmt.Errorf("run comparison: %w", err)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// main is the entry point of the fipepulse application.
//
// Modes (selected via -mode flag):
//   - api:     Starts the REST API.
//   - compare: Runs the comparison plan given by -plan and prints the chart JSON.
func main() {
	config.LoadConfig()
	logger.Init()

	mode := flag.String("mode", "api", "Mode: api or compare")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	planPath := flag.String("plan", "plan.yaml", "Comparison plan for compare mode")
	outPath := flag.String("out", "", "Output file for compare mode (default stdout)")
	flag.Parse()

	switch *mode {
	case "compare":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var out io.Writer = os.Stdout
		if *outPath != "" {
			f, err := os.Create(*outPath)
			if err != nil {
				logger.L().Fatal().Err(err).Str("out", *outPath).Msg("open output failed")
			}
			defer func() { _ = f.Close() }()
			out = f
		}

		logger.L().Info().Str("plan", *planPath).Msg("running comparison")
		if err := runCompare(ctx, config.AppConfig, *planPath, out); err != nil {
			logger.L().Error().Err(err).Msg("comparison failed")
			stop()
			os.Exit(1)
		}

	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(context.Background(), server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
