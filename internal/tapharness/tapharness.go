// Package tapharness attaches frametool's serve mode to a Linux TAP
// device: it answers ARP requests for a configured IPv4 address and
// counts DHCPINFORM traffic it observes, using only the codec packages
// at the module root. The actual device I/O is platform-gated, since a
// TAP device is a Linux (and BSD, via a different API) concept with no
// portable cross-platform equivalent; see tapharness_linux.go and
// tapharness_other.go.
package tapharness

import (
	"context"
	"log/slog"

	"github.com/ironcurve/lneto"
	"github.com/ironcurve/lneto/arp"
	"github.com/ironcurve/lneto/dhcpv4"
	"github.com/ironcurve/lneto/ethernet"
	"github.com/ironcurve/lneto/frame"
	"github.com/ironcurve/lneto/internal/metrics"
)

// Config describes the identity frametool answers as on the TAP device.
type Config struct {
	// DeviceName is the TAP interface name. Empty lets the kernel
	// assign one.
	DeviceName string
	HardwareAddr lneto.MacAddr
	IPAddr       lneto.IPv4Addr
}

// Harness reads Ethernet frames from a TAP device and answers ARP
// requests for Config.IPAddr, per RFC 826.
type Harness struct {
	cfg       Config
	collector *metrics.Collector
	logger    *slog.Logger
}

// New creates a Harness. collector may be nil, in which case metrics
// are skipped; a nil logger is replaced with slog.Default().
func New(cfg Config, collector *metrics.Collector, logger *slog.Logger) *Harness {
	if logger == nil {
		logger = slog.Default()
	}
	return &Harness{cfg: cfg, collector: collector, logger: logger}
}

// Run opens the TAP device and serves until ctx is cancelled or an
// unrecoverable I/O error occurs. See openDevice in the platform-specific
// files for the actual implementation.
func (h *Harness) Run(ctx context.Context) error {
	dev, err := openDevice(h.cfg)
	if err != nil {
		return err
	}
	defer dev.Close()

	h.logger.Info("tap harness started",
		"device", h.cfg.DeviceName,
		"hardware_addr", h.cfg.HardwareAddr,
		"ip_addr", h.cfg.IPAddr,
	)

	errc := make(chan error, 1)
	go func() { errc <- h.serveLoop(dev) }()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errc:
		return err
	}
}

// tapDevice is the minimal surface Run needs from a platform's TAP
// implementation: a frame reader/writer closable at shutdown.
type tapDevice interface {
	ReadFrame(buf []byte) (int, error)
	WriteFrame(buf []byte) error
	Close() error
}

func (h *Harness) serveLoop(dev tapDevice) error {
	var buf [1514]byte
	for {
		n, err := dev.ReadFrame(buf[:])
		if err != nil {
			return err
		}
		h.handleFrame(dev, buf[:n])
	}
}

// handleFrame answers ARP requests for h.cfg.IPAddr and logs observed
// DHCPINFORM traffic. A frame that parses as neither Ethernet/ARP nor
// Ethernet/IPv4/UDP is counted as a decode error of kind "unknown".
func (h *Harness) handleFrame(dev tapDevice, buf []byte) {
	if af, err := frame.ParseEthernetARPFrame(buf); err == nil {
		h.incDecoded("arp")
		h.handleARP(dev, af)
		return
	}

	if iuf, err := frame.ParseEthernetIPv4UDPFrame(buf); err == nil {
		h.incDecoded("ipv4_udp")
		if err := iuf.VerifyChecksums(); err != nil {
			h.incChecksumFailure("ipv4_udp")
			h.logger.Warn("dropping frame with bad checksum", "error", err)
			return
		}
		h.handleIPv4UDP(iuf)
		return
	}

	h.incDecodeError("unknown")
}

func (h *Harness) handleARP(dev tapDevice, af frame.EthernetARPFrame) {
	if af.ARP.Operation != arp.OpRequest || af.ARP.TargetProto != h.cfg.IPAddr {
		return
	}

	reply := arp.NewReply(af.ARP, h.cfg.HardwareAddr, h.cfg.IPAddr)
	out := frame.EthernetARPFrame{
		EthHeader: ethernet.Header{
			Destination: af.EthHeader.Source,
			Source:      h.cfg.HardwareAddr,
			EtherType:   lneto.EtherTypeARP,
		},
		ARP: reply,
	}
	h.logger.Info("answering arp request", "sender", af.ARP.SenderProto, "target", af.ARP.TargetProto)
	if err := dev.WriteFrame(out.AppendBinary(nil)); err != nil {
		h.logger.Warn("failed to write arp reply", "error", err)
		return
	}
	h.incBuilt("arp")
}

func (h *Harness) handleIPv4UDP(iuf frame.EthernetIPv4UDPFrame) {
	if iuf.IPv4UDP.UDP.Header.DestinationPort != dhcpv4.ServerPort {
		return
	}
	msg, err := dhcpv4.ParseMessage(iuf.IPv4UDP.UDP.Payload.Bytes())
	if err != nil {
		h.incDecodeError("dhcpv4")
		return
	}
	msgType, ok := msg.MessageType()
	if !ok || msgType != dhcpv4.MsgInform {
		return
	}
	h.logger.Info("observed dhcpinform", "client_addr", msg.ClientAddr, "client_hwaddr", msg.ClientHWAddr, "xid", msg.XID)
}

func (h *Harness) incBuilt(kind string) {
	if h.collector != nil {
		h.collector.IncFramesBuilt(kind)
	}
}

func (h *Harness) incDecoded(kind string) {
	if h.collector != nil {
		h.collector.IncFramesDecoded(kind)
	}
}

func (h *Harness) incDecodeError(kind string) {
	if h.collector != nil {
		h.collector.IncDecodeErrors(kind)
	}
}

func (h *Harness) incChecksumFailure(kind string) {
	if h.collector != nil {
		h.collector.IncChecksumFailures(kind)
	}
}
