package metrics

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"postcraft/internal/model"
)

var (
	Adaptations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "postcraft_adaptations_total",
		Help: "Platform renderings produced",
	}, []string{"platform", "truncated"})
	PreflightChecks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "postcraft_preflight_checks_total",
		Help: "Preflight check outcomes",
	}, []string{"platform", "status"})
	PreflightBlocked = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "postcraft_preflight_blocked_total",
		Help: "Preflight reports that blocked publishing",
	}, []string{"platform"})
	PredictionScore = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "postcraft_prediction_score",
		Help:    "Predicted engagement scores",
		Buckets: prometheus.LinearBuckets(10, 10, 10),
	}, []string{"platform"})
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "postcraft_http_requests_total",
		Help: "HTTP requests served",
	}, []string{"method", "route", "status"})
	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "postcraft_http_request_duration_seconds",
		Help:    "HTTP request duration seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
	CommandRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "postcraft_command_runs_total",
		Help: "CLI command runs",
	}, []string{"command"})
	CommandErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "postcraft_command_errors_total",
		Help: "CLI command failures",
	}, []string{"command"})
)

func init() {
	prometheus.MustRegister(Adaptations, PreflightChecks, PreflightBlocked, PredictionScore,
		HTTPRequests, HTTPDuration, CommandRuns, CommandErrors)
}

// StartServer returns an unstarted metrics HTTP server for addr (e.g., ":9090").
// The caller runs ListenAndServe. It returns nil when no address is configured.
func StartServer(addr string) *http.Server {
	if addr == "" {
		addr = os.Getenv("METRICS_ADDR")
	}
	if addr == "" {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	return &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
}

// ObserveRendering records one adapter output.
func ObserveRendering(r model.PlatformRendering) {
	Adaptations.WithLabelValues(r.Platform.String(), strconv.FormatBool(r.Truncated)).Inc()
}

// ObservePreflight records every check outcome of a report.
func ObservePreflight(r model.PreflightReport) {
	p := r.Platform.String()
	for _, c := range r.Checks {
		PreflightChecks.WithLabelValues(p, string(c.Status)).Inc()
	}
	if !r.CanProceed {
		PreflightBlocked.WithLabelValues(p).Inc()
	}
}

// ObservePrediction records a prediction score.
func ObservePrediction(p model.EngagementPrediction) {
	PredictionScore.WithLabelValues(p.Platform.String()).Observe(float64(p.Score))
}

// ObserveHTTP records one served request.
func ObserveHTTP(method, route string, status int, start time.Time) {
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}

func IncCommandRun(cmd string)   { CommandRuns.WithLabelValues(cmd).Inc() }
func IncCommandError(cmd string) { CommandErrors.WithLabelValues(cmd).Inc() }
