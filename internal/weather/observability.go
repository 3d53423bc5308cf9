package weather

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// CallEvent records metadata about a single provider fetch.
type CallEvent struct {
	RequestID  string
	City       string
	LatencyMs  int64
	StatusCode int // 0 when no response was received
	Success    bool
	ErrorCode  string
}

// Observer receives events about provider fetches for logging and metrics.
type Observer interface {
	OnFetchComplete(event CallEvent)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnFetchComplete(CallEvent) {}

// LogObserver writes fetch events to a zap logger.
type LogObserver struct {
	log *zap.Logger
}

// NewLogObserver creates an Observer that logs events to log.
func NewLogObserver(log *zap.Logger) *LogObserver {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogObserver{log: log.Named("weather")}
}

func (o *LogObserver) OnFetchComplete(event CallEvent) {
	fields := []zap.Field{
		zap.String("request_id", event.RequestID),
		zap.String("city", event.City),
		zap.Int64("latency_ms", event.LatencyMs),
		zap.Int("status", event.StatusCode),
	}
	if event.Success {
		o.log.Info("weather_fetch", fields...)
		return
	}
	o.log.Warn("weather_fetch", append(fields, zap.String("error_code", event.ErrorCode))...)
}

// MetricsObserver records fetch outcomes as Prometheus metrics.
type MetricsObserver struct {
	fetches *prometheus.CounterVec
	latency prometheus.Histogram
}

// NewMetricsObserver creates the collectors and registers them on reg.
func NewMetricsObserver(reg prometheus.Registerer) (*MetricsObserver, error) {
	o := &MetricsObserver{
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sprout",
			Subsystem: "weather",
			Name:      "fetches_total",
			Help:      "Weather provider fetches by outcome.",
		}, []string{"outcome"}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sprout",
			Subsystem: "weather",
			Name:      "fetch_latency_seconds",
			Help:      "Weather provider fetch latency.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
	for _, c := range []prometheus.Collector{o.fetches, o.latency} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (o *MetricsObserver) OnFetchComplete(event CallEvent) {
	outcome := "ok"
	if !event.Success {
		outcome = event.ErrorCode
	}
	o.fetches.WithLabelValues(outcome).Inc()
	o.latency.Observe(float64(event.LatencyMs) / 1000)
}

// MultiObserver fans events out to several observers in order.
type MultiObserver []Observer

func (m MultiObserver) OnFetchComplete(event CallEvent) {
	for _, o := range m {
		if o != nil {
			o.OnFetchComplete(event)
		}
	}
}
