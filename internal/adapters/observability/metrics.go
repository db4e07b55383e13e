package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	PagesGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "villa", Name: "pages_generated_total", Help: "Room pages by outcome."},
		[]string{"status"}, // status: ok|lookup_failed|write_failed
	)
	PageBytes = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "villa", Name: "page_bytes",
			Help:    "Size of rendered room pages.",
			Buckets: prometheus.ExponentialBuckets(4096, 2, 6),
		},
	)
	GenerationLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "villa", Name: "generation_duration_seconds",
			Help:    "Duration of a full generation pass.",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(PagesGenerated, PageBytes, GenerationLatency)
	return reg
}

// WriteTextfile dumps the registry in the node_exporter textfile format.
func WriteTextfile(path string, reg *prometheus.Registry) error {
	return prometheus.WriteToTextfile(path, reg)
}

func ObservePage(size int) {
	PagesGenerated.WithLabelValues("ok").Inc()
	PageBytes.Observe(float64(size))
}

func ObserveFailure(status string) { // status: lookup_failed|write_failed
	PagesGenerated.WithLabelValues(status).Inc()
}

func ObservePass(dur time.Duration) {
	GenerationLatency.Observe(dur.Seconds())
}
