package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/ironcurve/lneto/internal/metrics"
)

func TestNewCollector(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)

	if c.FramesBuilt == nil {
		t.Error("FramesBuilt is nil")
	}
	if c.FramesDecoded == nil {
		t.Error("FramesDecoded is nil")
	}
	if c.DecodeErrors == nil {
		t.Error("DecodeErrors is nil")
	}
	if c.ChecksumFailures == nil {
		t.Error("ChecksumFailures is nil")
	}

	// Gathering must succeed with all four vectors registered. Vectors
	// with no label values observed yet produce no families, so the
	// result itself is not inspected.
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}
	_ = families
}

func TestIncFramesBuilt(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)

	c.IncFramesBuilt("arp")
	c.IncFramesBuilt("arp")
	c.IncFramesBuilt("ipv4_udp")

	if got := counterValue(t, c.FramesBuilt, "arp"); got != 2 {
		t.Errorf("FramesBuilt(arp) = %v, want 2", got)
	}
	if got := counterValue(t, c.FramesBuilt, "ipv4_udp"); got != 1 {
		t.Errorf("FramesBuilt(ipv4_udp) = %v, want 1", got)
	}
}

func TestIncFramesDecoded(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)

	c.IncFramesDecoded("dhcpv4_inform")
	c.IncFramesDecoded("dhcpv4_inform")
	c.IncFramesDecoded("dhcpv4_inform")

	if got := counterValue(t, c.FramesDecoded, "dhcpv4_inform"); got != 3 {
		t.Errorf("FramesDecoded(dhcpv4_inform) = %v, want 3", got)
	}
}

func TestIncDecodeErrors(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)

	c.IncDecodeErrors("arp")

	if got := counterValue(t, c.DecodeErrors, "arp"); got != 1 {
		t.Errorf("DecodeErrors(arp) = %v, want 1", got)
	}
	if got := counterValue(t, c.DecodeErrors, "ipv4_udp"); got != 0 {
		t.Errorf("DecodeErrors(ipv4_udp) = %v, want 0 (unaffected)", got)
	}
}

func TestIncChecksumFailures(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)

	c.IncChecksumFailures("ipv4_udp")
	c.IncChecksumFailures("ipv4_udp")

	if got := counterValue(t, c.ChecksumFailures, "ipv4_udp"); got != 2 {
		t.Errorf("ChecksumFailures(ipv4_udp) = %v, want 2", got)
	}
}

func TestNewCollectorDefaultRegisterer(t *testing.T) {
	t.Parallel()

	// A nil registerer must fall back to prometheus.DefaultRegisterer
	// instead of panicking. This is the only test in the package that
	// registers against the default registry, so MustRegister sees no
	// duplicate within a single run.
	c := metrics.NewCollector(nil)
	if c == nil {
		t.Fatal("NewCollector(nil) = nil")
	}
}

// counterValue reads the current value of a CounterVec with the given labels.
func counterValue(t *testing.T, vec *prometheus.CounterVec, labels ...string) float64 {
	t.Helper()

	counter, err := vec.GetMetricWithLabelValues(labels...)
	if err != nil {
		t.Fatalf("GetMetricWithLabelValues(%v): %v", labels, err)
	}

	m := &dto.Metric{}
	if err := counter.Write(m); err != nil {
		t.Fatalf("Write metric: %v", err)
	}

	return m.GetCounter().GetValue()
}
