// Package metrics exposes audio cache counters to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// AudioRecorder is what the audio cache reports into.
type AudioRecorder interface {
	RecordCacheHit()
	RecordCacheMiss()
	RecordGenerationFailure(stage string)
	RecordGenerationLatency(duration time.Duration)
}

type Collector struct {
	cacheHits        prometheus.Counter
	cacheMisses      prometheus.Counter
	generationFailed *prometheus.CounterVec
	generationTime   prometheus.Histogram
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vocalfeed_audio_cache_hits_total",
			Help: "Audio requests served from an existing artifact.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vocalfeed_audio_cache_misses_total",
			Help: "Audio requests that required generation.",
		}),
		generationFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vocalfeed_audio_generation_failures_total",
			Help: "Failed audio generations by stage.",
		}, []string{"stage"}),
		generationTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "vocalfeed_audio_generation_seconds",
			Help:    "Time spent generating and storing one artifact.",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40, 60},
		}),
	}

	reg.MustRegister(
		c.cacheHits,
		c.cacheMisses,
		c.generationFailed,
		c.generationTime,
	)

	return c
}

func (c *Collector) RecordCacheHit() {
	c.cacheHits.Inc()
}

func (c *Collector) RecordCacheMiss() {
	c.cacheMisses.Inc()
}

func (c *Collector) RecordGenerationFailure(stage string) {
	c.generationFailed.WithLabelValues(stage).Inc()
}

func (c *Collector) RecordGenerationLatency(duration time.Duration) {
	c.generationTime.Observe(duration.Seconds())
}

// Noop discards everything.
type Noop struct{}

func (Noop) RecordCacheHit()                       {}
func (Noop) RecordCacheMiss()                      {}
func (Noop) RecordGenerationFailure(string)        {}
func (Noop) RecordGenerationLatency(time.Duration) {}

func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
