package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	RequestsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_http_requests_total",
			Help: "Total number of handled HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "jobboard_http_request_duration_seconds",
			Help:    "Duration of each HTTP request in seconds.",
			Buckets: []float64{0.005, 0.025, 0.1, 0.25, 1, 2.5},
		},
		[]string{"method", "path"},
	)
	ApplicationsSubmittedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobboard_applications_submitted_total",
			Help: "Total number of submitted job applications.",
		},
	)
	ApplicationStatusCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_application_status_changes_total",
			Help: "Total number of application status changes.",
		},
		[]string{"status"},
	)
	JobsAutoClosedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobboard_jobs_auto_closed_total",
			Help: "Total number of jobs closed by the deadline sweeper.",
		},
	)
)

func StartMetricsServer(port int) {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(RequestsCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(ApplicationsSubmittedCounter)
	prometheus.MustRegister(ApplicationStatusCounter)
	prometheus.MustRegister(JobsAutoClosedCounter)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", port), mux))
	}()
}
