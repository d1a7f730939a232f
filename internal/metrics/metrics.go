package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder samler metrikkene for innhenting og klassifisering.
// Alle metoder tåler nil-mottaker, slik at metrikker er valgfrie.
type Recorder struct {
	Registry *prometheus.Registry

	GitHubRequests   *prometheus.CounterVec
	ProjectsByStatus *prometheus.CounterVec
	ReposFetched     prometheus.Counter
	PipelineDuration prometheus.Histogram
}

func NewRecorder() *Recorder {
	r := &Recorder{Registry: prometheus.NewRegistry()}

	r.GitHubRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "onelink_github_requests_total",
			Help: "Antall kall mot GitHub API fordelt på endepunkt og utfall",
		},
		[]string{"endpoint", "status"},
	)

	r.ProjectsByStatus = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "onelink_projects_classified_total",
			Help: "Antall klassifiserte prosjekter per status",
		},
		[]string{"status"},
	)

	r.ReposFetched = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "onelink_repos_fetched_total",
			Help: "Antall repos hentet før filtrering",
		},
	)

	r.PipelineDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "onelink_pipeline_duration_seconds",
			Help:    "Varighet av en hel innhenting for en bruker",
			Buckets: prometheus.DefBuckets,
		},
	)

	r.Registry.MustRegister(r.GitHubRequests, r.ProjectsByStatus, r.ReposFetched, r.PipelineDuration)
	return r
}

func (r *Recorder) ObserveRequest(endpoint, status string) {
	if r == nil {
		return
	}
	r.GitHubRequests.WithLabelValues(endpoint, status).Inc()
}

func (r *Recorder) ObserveProject(status string) {
	if r == nil {
		return
	}
	r.ProjectsByStatus.WithLabelValues(status).Inc()
}

func (r *Recorder) AddReposFetched(n int) {
	if r == nil {
		return
	}
	r.ReposFetched.Add(float64(n))
}

func (r *Recorder) ObservePipeline(d time.Duration) {
	if r == nil {
		return
	}
	r.PipelineDuration.Observe(d.Seconds())
}

// Handler eksponerer registeret i Prometheus-format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(r.Registry, promhttp.HandlerOpts{})
}
