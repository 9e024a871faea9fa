package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/pulss/internal/adapters/upstream"
	"github.com/okian/pulss/pkg/logger"
)

// ErrSmokeFailed reports a smoke run that saw failed requests.
var ErrSmokeFailed = errors.New("smoke run failed")

// Smoke defaults.
const (
	DefaultSmokeURL      = "http://localhost:9080"
	DefaultSmokeRequests = 200
	DefaultSmokeTimeout  = 10 * time.Second
	percentMultiplier    = 100
)

// smokeRoutes are the read routes a smoke run cycles through. All of them
// degrade rather than fail while the Pulss API is down.
var smokeRoutes = []string{
	"/api/clients",
	"/api/director-board/clients",
	"/api/sns-news",
	"/api/schedules",
	"/api/clients/1/tasks",
}

// SmokeConfig holds the parameters of a smoke run against a running dashboard
// server.
type SmokeConfig struct {
	BaseURL  string
	Requests int
	Workers  int
	Timeout  time.Duration
}

// SmokeStats tallies a smoke run.
type SmokeStats struct {
	Ready             string         `json:"ready"`
	Upstream          string         `json:"upstream"`
	Requested         int            `json:"requested"`
	Succeeded         int            `json:"succeeded"`
	Failed            int            `json:"failed"`
	FailuresByRoute   map[string]int `json:"failures_by_route,omitempty"`
	Duration          time.Duration  `json:"duration_ns"`
	RequestsPerSecond float64        `json:"requests_per_second"`
	SuccessRate       float64        `json:"success_rate"`
}

// RunSmoke checks readiness and then fires cfg.Requests reads across
// cfg.Workers goroutines. It fails when any request fails.
func RunSmoke(ctx context.Context, hc *http.Client, cfg SmokeConfig) (SmokeStats, error) {
	log := logger.Named("smoke")
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultSmokeTimeout
	}
	opts := []upstream.Option{upstream.WithTimeout(cfg.Timeout), upstream.WithLogger(log)}
	if hc != nil {
		opts = append(opts, upstream.WithHTTPClient(hc))
	}
	client := upstream.New(cfg.BaseURL, opts...)

	log.Info(ctx, "starting smoke run",
		logger.String("baseURL", client.BaseURL()),
		logger.Int("requests", cfg.Requests),
		logger.Int("workers", cfg.Workers))

	var stats SmokeStats
	start := time.Now()

	// Step 1: readiness
	var ready struct {
		Status   string `json:"status"`
		Upstream string `json:"upstream"`
	}
	if err := client.Get(ctx, "smoke.ready", "/readyz", &ready); err != nil {
		return stats, fmt.Errorf("readiness check failed: %w", err)
	}
	stats.Ready, stats.Upstream = ready.Status, ready.Upstream
	if ready.Status != "ok" {
		log.Warn(ctx, "server is degraded; reads will come from fallback data", logger.String("upstream", ready.Upstream))
	}

	// Step 2: concurrent reads
	var (
		succeeded, failed int64
		mu                sync.Mutex
		failures          = map[string]int{}
		wg                sync.WaitGroup
	)
	jobs := make(chan string, cfg.Workers*2)
	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for route := range jobs {
				var body json.RawMessage
				if err := client.Get(ctx, "smoke.read", route, &body); err != nil {
					atomic.AddInt64(&failed, 1)
					mu.Lock()
					failures[route]++
					mu.Unlock()
					log.Debug(ctx, "smoke request failed", logger.String("route", route), logger.Error(err))
					continue
				}
				atomic.AddInt64(&succeeded, 1)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i := 0; i < cfg.Requests; i++ {
			select {
			case <-ctx.Done():
				return
			case jobs <- smokeRoutes[i%len(smokeRoutes)]:
			}
		}
	}()
	wg.Wait()

	// Step 3: tally and verify
	stats.Succeeded = int(atomic.LoadInt64(&succeeded))
	stats.Failed = int(atomic.LoadInt64(&failed))
	stats.Requested = stats.Succeeded + stats.Failed
	if len(failures) > 0 {
		stats.FailuresByRoute = failures
	}
	stats.Duration = time.Since(start)
	if stats.Requested > 0 {
		stats.SuccessRate = float64(stats.Succeeded) / float64(stats.Requested) * percentMultiplier
	}
	if stats.Duration > 0 {
		stats.RequestsPerSecond = float64(stats.Requested) / stats.Duration.Seconds()
	}

	log.Info(ctx, "smoke run finished",
		logger.Int("succeeded", stats.Succeeded),
		logger.Int("failed", stats.Failed),
		logger.Duration("duration", stats.Duration),
		logger.Float64("successRate", stats.SuccessRate))

	if err := ctx.Err(); err != nil {
		return stats, fmt.Errorf("smoke run interrupted: %w", err)
	}
	if stats.Failed > 0 {
		return stats, fmt.Errorf("%w: %d of %d requests failed", ErrSmokeFailed, stats.Failed, stats.Requested)
	}
	return stats, nil
}
