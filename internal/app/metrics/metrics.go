package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for the transcription pipeline
type Metrics struct {
	RequestsTotal      *prometheus.CounterVec
	TranscribeDuration prometheus.Histogram
	AudioSecondsTotal  prometheus.Counter
	InFlight           prometheus.Gauge
	ModelLoaded        prometheus.Gauge
}

// New registers the transcription metrics on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "voice",
			Name:      "transcribe_requests_total",
			Help:      "Transcription requests by outcome.",
		}, []string{"status"}),
		TranscribeDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "voice",
			Name:      "transcribe_duration_seconds",
			Help:      "Wall-clock time of the transcription step.",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
		}),
		AudioSecondsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "voice",
			Name:      "audio_seconds_total",
			Help:      "Total seconds of audio successfully transcribed.",
		}),
		InFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "voice",
			Name:      "transcriptions_in_flight",
			Help:      "Transcriptions currently running or queued.",
		}),
		ModelLoaded: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "voice",
			Name:      "model_loaded",
			Help:      "Whether the transcription engine has been constructed.",
		}),
	}
}

// Default registers on the global default registry.
func Default() *Metrics {
	return New(prometheus.DefaultRegisterer)
}
