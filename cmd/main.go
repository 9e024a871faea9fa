package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/okian/pulss/internal/adapters/http/api"
	"github.com/okian/pulss/internal/adapters/http/swagger"
	"github.com/okian/pulss/internal/adapters/upstream"
	app "github.com/okian/pulss/internal/app"
	"github.com/okian/pulss/internal/config"
	"github.com/okian/pulss/pkg/logger"
	"github.com/okian/pulss/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second

	systemMetricsInterval  = 10 * time.Second
	serviceMetricsInterval = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "pulss-dashboard: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Process gauges come from updateSystemMetrics on the custom registry.
	prometheus.Unregister(collectors.NewGoCollector())
	prometheus.Unregister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	if err := logger.Init(logger.WithJSON(cfg.LogJSON)); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Get()

	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	svc := newDashboard(cfg, log)
	if err := svc.Start(ctx); err != nil {
		return fmt.Errorf("starting dashboard: %w", err)
	}
	defer svc.Stop()

	go every(ctx, systemMetricsInterval, updateSystemMetrics)
	go every(ctx, serviceMetricsInterval, func() { updateServiceMetrics(svc) })

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newMux(ctx, svc),
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info(ctx, "starting HTTP server",
			logger.String("addr", cfg.Addr),
			logger.String("api", cfg.APIBaseURL),
			logger.Bool("fallback", cfg.FallbackEnabled))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
	}
	log.Info(ctx, "shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	log.Info(ctx, "server stopped")
	return nil
}

// newDashboard wires the service layer against the configured Pulss API.
func newDashboard(cfg *config.Config, log logger.Logger) *app.Dashboard {
	client := upstream.New(cfg.APIBaseURL,
		upstream.WithTimeout(cfg.RequestTimeout()),
		upstream.WithLogger(log.Named("upstream")),
	)
	return app.New(
		app.WithAPI(client),
		app.WithLogger(log),
		app.WithFallbackEnabled(cfg.FallbackEnabled),
		app.WithNewsDefaultLimit(cfg.NewsDefaultLimit),
	)
}

// newMux registers the API docs and the dashboard routes.
func newMux(ctx context.Context, svc *app.Dashboard) *http.ServeMux {
	mux := http.NewServeMux()
	swagger.Register(ctx, mux)
	api.NewServer(api.DependenciesFrom(svc)).Register(mux)
	return mux
}

// every runs fn on each tick until ctx ends.
func every(ctx context.Context, interval time.Duration, fn func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn()
		}
	}
}

func updateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	metrics.UpdateSystemMemoryUsage(m.Alloc)
	metrics.UpdateSystemGoroutineCount(runtime.NumGoroutine())
	if m.NumGC > 0 {
		avg := time.Duration(m.PauseTotalNs / uint64(m.NumGC))
		metrics.RecordSystemGCPauseTime(float64(avg.Microseconds()) / 1000)
	}
}

// updateServiceMetrics copies dashboard stats into gauges.
func updateServiceMetrics(svc *app.Dashboard) {
	stats := svc.GetStats()
	if open, ok := stats["openChats"].(int); ok {
		metrics.UpdateOpenChatSessions(open)
	}
	if sizes, ok := stats["fallbackStore"].(map[string]int); ok {
		for collection, n := range sizes {
			metrics.UpdateFallbackStoreSize(collection, n)
		}
	}
}
