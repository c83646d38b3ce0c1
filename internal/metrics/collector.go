// Package metrics exposes frametool's Prometheus counters. Grounded on
// the sibling gobfd daemon's bfdmetrics.Collector of the same shape.
package metrics

import "github.com/prometheus/client_golang/prometheus"

const (
	namespace = "frametool"
	subsystem = "codec"
)

const labelFrameKind = "frame_kind"

// Collector holds frametool's Prometheus metrics: frame counts by kind
// and by outcome, broken out for build (encode) and decode separately.
type Collector struct {
	FramesBuilt      *prometheus.CounterVec
	FramesDecoded    *prometheus.CounterVec
	DecodeErrors     *prometheus.CounterVec
	ChecksumFailures *prometheus.CounterVec
}

// NewCollector creates a Collector with all metrics registered against
// reg. If reg is nil, prometheus.DefaultRegisterer is used.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	c := newMetrics()
	reg.MustRegister(c.FramesBuilt, c.FramesDecoded, c.DecodeErrors, c.ChecksumFailures)
	return c
}

func newMetrics() *Collector {
	kindLabels := []string{labelFrameKind}
	return &Collector{
		FramesBuilt: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "frames_built_total",
			Help:      "Total frames constructed, by frame kind.",
		}, kindLabels),
		FramesDecoded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "frames_decoded_total",
			Help:      "Total frames successfully decoded, by frame kind.",
		}, kindLabels),
		DecodeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "decode_errors_total",
			Help:      "Total frame decode failures, by frame kind.",
		}, kindLabels),
		ChecksumFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "checksum_failures_total",
			Help:      "Total checksum verification failures, by frame kind.",
		}, kindLabels),
	}
}

// IncFramesBuilt increments the built-frame counter for kind.
func (c *Collector) IncFramesBuilt(kind string) { c.FramesBuilt.WithLabelValues(kind).Inc() }

// IncFramesDecoded increments the decoded-frame counter for kind.
func (c *Collector) IncFramesDecoded(kind string) { c.FramesDecoded.WithLabelValues(kind).Inc() }

// IncDecodeErrors increments the decode-error counter for kind.
func (c *Collector) IncDecodeErrors(kind string) { c.DecodeErrors.WithLabelValues(kind).Inc() }

// IncChecksumFailures increments the checksum-failure counter for kind.
func (c *Collector) IncChecksumFailures(kind string) { c.ChecksumFailures.WithLabelValues(kind).Inc() }
