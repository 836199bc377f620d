package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pipeline outcomes.
const (
	OutcomeRows  = "rows"
	OutcomeEmpty = "empty"
	OutcomeError = "error"
)

// Poll tick results.
const (
	TickApplied = "applied"
	TickStale   = "stale"
	TickFailed  = "failed"
)

type Metrics struct {
	Fetches       *prometheus.CounterVec
	CacheInfo     *prometheus.CounterVec
	PollTicks     *prometheus.CounterVec
	LiveMarkers   prometheus.Gauge
	PushClients   prometheus.Gauge
	FeedPublished prometheus.Counter
}

// New registers the dashboard metrics on reg. Tests pass a fresh
// prometheus.NewRegistry so that collectors never clash.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Fetches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "flighthub_fetches_total",
			Help: "Collaborator fetches by entity kind and outcome.",
		}, []string{"kind", "outcome"}),
		CacheInfo: f.NewCounterVec(prometheus.CounterOpts{
			Name: "flighthub_cache_info_refreshes_total",
			Help: "Cache statistics refreshes by result.",
		}, []string{"result"}),
		PollTicks: f.NewCounterVec(prometheus.CounterOpts{
			Name: "flighthub_poll_ticks_total",
			Help: "Live position poll ticks by result.",
		}, []string{"result"}),
		LiveMarkers: f.NewGauge(prometheus.GaugeOpts{
			Name: "flighthub_live_markers",
			Help: "Markers currently on the map.",
		}),
		PushClients: f.NewGauge(prometheus.GaugeOpts{
			Name: "flighthub_push_clients",
			Help: "Connected websocket clients.",
		}),
		FeedPublished: f.NewCounter(prometheus.CounterOpts{
			Name: "flighthub_feed_messages_total",
			Help: "Position messages written to the feed.",
		}),
	}
}

func (m *Metrics) ObserveFetch(kind, outcome string) {
	m.Fetches.WithLabelValues(kind, outcome).Inc()
}

func (m *Metrics) ObserveCacheInfo(result string) {
	m.CacheInfo.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveTick(result string, markers int) {
	m.PollTicks.WithLabelValues(result).Inc()
	if result == TickApplied {
		m.LiveMarkers.Set(float64(markers))
	}
}
