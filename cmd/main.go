package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/scout/internal/adapters/browser"
	"github.com/okian/scout/internal/adapters/export"
	"github.com/okian/scout/internal/adapters/extract"
	"github.com/okian/scout/internal/adapters/scrape"
	app "github.com/okian/scout/internal/app"
	"github.com/okian/scout/internal/config"
	"github.com/okian/scout/internal/domain/validate"
	"github.com/okian/scout/internal/synth"
	"github.com/okian/scout/pkg/logger"
	"github.com/okian/scout/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics listener timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		// Use stderr for initialization errors since logger isn't available yet
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			os.Stderr.WriteString("failed to sync logger: " + err.Error() + "\n")
		}
	}()

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Optional Prometheus endpoint. Disabled unless an address is configured.
	if cfg.MetricsAddr != "" {
		go serveMetrics(ctx, cfg.MetricsAddr)
	}

	// The browser session is the one dependency the run cannot continue
	// without: fail fast when it cannot start.
	browserOpts := []browser.Option{
		browser.WithHeadless(cfg.Headless),
		browser.WithTimeout(time.Duration(cfg.FetchTimeoutMS) * time.Millisecond),
	}
	if cfg.UserAgent != "" {
		browserOpts = append(browserOpts, browser.WithUserAgent(cfg.UserAgent))
	}
	session, err := browser.NewSession(ctx, browserOpts...)
	if err != nil {
		log.Error(ctx, "browser session failed to start", logger.Error(err))
		return
	}
	defer session.Close()

	extractor, err := extract.New(cfg.BaseURL)
	if err != nil {
		log.Error(ctx, "invalid base URL", logger.String("base_url", cfg.BaseURL), logger.Error(err))
		return
	}

	fetcher, err := scrape.NewFetcher(session, extractor,
		scrape.WithBaseURL(cfg.BaseURL),
		scrape.WithMaxAttempts(cfg.MaxFetchAttempts),
		scrape.WithBackoff(
			time.Duration(cfg.BackoffBaseMS)*time.Millisecond,
			time.Duration(cfg.BackoffMaxMS)*time.Millisecond,
		),
		scrape.WithMaxPages(cfg.MaxPages),
		scrape.WithPageRate(cfg.PageRatePerSec),
	)
	if err != nil {
		log.Error(ctx, "fetcher setup failed", logger.Error(err))
		return
	}

	exporter, err := export.NewCSVWriter(cfg.OutputPath)
	if err != nil {
		log.Error(ctx, "output file setup failed", logger.String("path", cfg.OutputPath), logger.Error(err))
		return
	}
	defer func() {
		if err := exporter.Close(); err != nil {
			log.Error(ctx, "closing output file failed", logger.Error(err))
		}
	}()

	opts := []app.Option{
		app.WithLogger(log),
		app.WithTargetPerRole(cfg.TargetPerRole),
		app.WithValidatorOptions(
			validate.WithBrandTokens(cfg.BrandTokens),
			validate.WithPlaceholderMarkers(cfg.PlaceholderMarkers),
			validate.WithPlaceholderDomains(cfg.PlaceholderDomains),
		),
	}
	if cfg.SynthFallback {
		gen := synth.New(synth.WithBaseURL(cfg.BaseURL))
		opts = append(opts, app.WithSynthFallback(gen, cfg.SynthCount))
	}

	svc, err := app.New(fetcher, exporter, opts...)
	if err != nil {
		log.Error(ctx, "service setup failed", logger.Error(err))
		return
	}

	sum, err := svc.Run(ctx)
	if err != nil {
		log.Error(ctx, "run failed", logger.String("runID", sum.RunID), logger.Error(err))
		return
	}

	log.Info(ctx, "run complete",
		logger.String("runID", sum.RunID),
		logger.String("output", cfg.OutputPath),
		logger.Int("extracted", sum.Extracted),
		logger.Int("accepted", sum.Accepted),
		logger.Int("fetchFailures", sum.FetchFailures),
		logger.Duration("elapsed", sum.Elapsed),
	)
	for reason, n := range sum.Rejected {
		log.Info(ctx, "rejections", logger.String("reason", string(reason)), logger.Int("count", n))
	}
}

// serveMetrics exposes the custom registry on /metrics until ctx is done.
func serveMetrics(ctx context.Context, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Get().Info(ctx, "metrics listener started", logger.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Get().Error(ctx, "metrics listener failed", logger.Error(err))
	}
}
