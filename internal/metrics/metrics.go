package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizforge/internal/ingest"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder implements ingest.Recorder and exposes HTTP request metrics.
type Recorder struct {
	registry *prometheus.Registry

	contentFetched  *prometheus.CounterVec
	fallbacks       prometheus.Counter
	matcherHits     *prometheus.CounterVec
	pipelineResults *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		contentFetched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "quizforge_content_fetched_total",
			Help: "Content acquisitions by source kind and provenance",
		}, []string{"kind", "provenance"}),
		fallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quizforge_generation_fallbacks_total",
			Help: "Generation requests retried on the secondary backend after a rate limit",
		}),
		matcherHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "quizforge_extraction_matcher_total",
			Help: "Successful extractions by matcher",
		}, []string{"matcher"}),
		pipelineResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "quizforge_pipeline_results_total",
			Help: "Question pipeline outcomes by source kind",
		}, []string{"kind", "outcome"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "quizforge_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.contentFetched,
		r.fallbacks,
		r.matcherHits,
		r.pipelineResults,
		r.httpDuration,
	)
	return r
}

func (r *Recorder) ObserveContent(kind ingest.SourceKind, provenance ingest.Provenance) {
	r.contentFetched.WithLabelValues(string(kind), string(provenance)).Inc()
}

func (r *Recorder) ObserveFallback() {
	r.fallbacks.Inc()
}

func (r *Recorder) ObserveMatcher(name string) {
	r.matcherHits.WithLabelValues(name).Inc()
}

func (r *Recorder) ObserveOutcome(kind ingest.SourceKind, err error) {
	r.pipelineResults.WithLabelValues(string(kind), Outcome(err)).Inc()
}

// Outcome classifies a pipeline error into a low-cardinality label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ingest.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ingest.ErrNotFound):
		return "not_found"
	case errors.Is(err, ingest.ErrInsufficientContent):
		return "insufficient_content"
	case errors.Is(err, ingest.ErrExtractionEmpty):
		return "extraction_empty"
	case errors.Is(err, ingest.ErrGenerationFailed):
		return "generation_failed"
	default:
		return "error"
	}
}

// Middleware records request latency by matched route.
func (r *Recorder) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		r.httpDuration.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Observe(time.Since(start).Seconds())
	}
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
