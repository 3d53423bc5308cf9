package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexanderramin/sprout/internal/advisory"
	"github.com/alexanderramin/sprout/internal/calendar"
	"github.com/alexanderramin/sprout/internal/cli"
	"github.com/alexanderramin/sprout/internal/intelligence"
	"github.com/alexanderramin/sprout/internal/knowledge"
	"github.com/alexanderramin/sprout/internal/weather"
	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := cli.LoadConfig()
	weatherCfg := weather.LoadConfig()

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	kb, err := loadKnowledge(cfg.KnowledgeFile)
	if err != nil {
		return fmt.Errorf("loading crop table: %w", err)
	}
	cal, err := loadCalendar(cfg.CalendarFile)
	if err != nil {
		return fmt.Errorf("loading planting calendar: %w", err)
	}

	// The chat owns the terminal, so diagnostics stay quiet unless
	// SPROUT_LOG_CALLS asks for them.
	diag := diagnostics(logger, weatherCfg.LogCalls)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Wire weather observers
	observers := weather.MultiObserver{}
	if weatherCfg.LogCalls {
		observers = append(observers, weather.NewLogObserver(diag))
	}
	if cfg.MetricsAddr != "" {
		metrics, err := weather.NewMetricsObserver(prometheus.DefaultRegisterer)
		if err != nil {
			return fmt.Errorf("registering metrics: %w", err)
		}
		observers = append(observers, metrics)
		shutdown := serveMetrics(cfg.MetricsAddr, diag)
		defer shutdown()
	}
	var observer weather.Observer = weather.NoopObserver{}
	if len(observers) > 0 {
		observer = observers
	}

	client := weather.NewClient(weatherCfg, observer)
	if weatherCfg.APIKey == "" {
		diag.Debug("no weather API key set, suggestions will come from the calendar")
	}

	app := &cli.App{
		Knowledge:  kb,
		Calendar:   cal,
		Resolver:   intelligence.NewResolver(kb),
		Advisory:   advisory.NewService(client, cal, weatherCfg.City),
		ReplyDelay: cfg.ReplyDelay(),
	}

	// Detect interactive terminal for the chat entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

// newLogger builds a production zap logger on stderr so it never mixes
// with command output.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	return config.Build()
}

// diagnostics returns logger when enabled and a no-op logger otherwise.
func diagnostics(logger *zap.Logger, enabled bool) *zap.Logger {
	if !enabled {
		return zap.NewNop()
	}
	return logger
}

func loadKnowledge(path string) (*knowledge.Base, error) {
	if path == "" {
		return knowledge.Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return knowledge.Load(f)
}

func loadCalendar(path string) (*calendar.Calendar, error) {
	if path == "" {
		return calendar.Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return calendar.Load(f)
}

// serveMetrics exposes /metrics on addr and returns a shutdown func.
func serveMetrics(addr string, logger *zap.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Debug("metrics listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", zap.Error(err))
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
