package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// ScraperMetrics mirror the counters the scraper has always exported.
type ScraperMetrics struct {
	Runs       prometheus.Counter
	Errors     prometheus.Counter
	LastScrape prometheus.Gauge
}

// NewScraperMetrics registers the scraper counters.
func NewScraperMetrics() *ScraperMetrics {
	return &ScraperMetrics{
		Runs: promauto.NewCounter(prometheus.CounterOpts{
			Name: "scraper_runs_total",
			Help: "Number of scraper runs",
		}),
		Errors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "scraper_errors_total",
			Help: "Number of errors during scraping",
		}),
		LastScrape: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "scraper_last_scrape_timestamp",
			Help: "Last scrape time (unix)",
		}),
	}
}

// MarkRun records one completed scrape pass.
func (m *ScraperMetrics) MarkRun() {
	m.Runs.Inc()
	m.LastScrape.Set(float64(time.Now().Unix()))
}

// StageMetrics count messages through one pipeline stage.
type StageMetrics struct {
	Processed prometheus.Counter
	Failed    prometheus.Counter
	Duration  prometheus.Histogram
}

// NewStageMetrics registers per-stage counters for a service.
func NewStageMetrics(serviceName string) *StageMetrics {
	return &StageMetrics{
		Processed: promauto.NewCounter(prometheus.CounterOpts{
			Name: serviceName + "_messages_processed_total",
			Help: "Total number of messages processed",
		}),
		Failed: promauto.NewCounter(prometheus.CounterOpts{
			Name: serviceName + "_messages_failed_total",
			Help: "Total number of messages that failed processing",
		}),
		Duration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    serviceName + "_message_duration_seconds",
			Help:    "Message processing duration in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// Serve exposes /metrics on addr in the background. addr empty means
// metrics stay registered but unexported.
func Serve(addr string, log *zap.Logger) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Error("metrics server stopped", zap.Error(err))
		}
	}()
	log.Info("metrics server listening", zap.String("addr", addr))
}
