package frame

import (
	"github.com/ironcurve/lneto"
	"github.com/ironcurve/lneto/arp"
	"github.com/ironcurve/lneto/ethernet"
)

// EthernetIPv4UDPFrame is a full Ethernet II frame carrying an
// IPv4/UDP datagram. Its wire form is exactly the 14-byte Ethernet
// header followed by the IPv4/UDP datagram — no trailing FCS. The FCS
// is an optional trailer handled separately (see fcs.go); folding it
// into this type's BYTE_LEN would make every composed frame's length
// depend on whether the caller's driver happens to expose it, which
// most don't.
type EthernetIPv4UDPFrame struct {
	EthHeader ethernet.Header
	IPv4UDP   IPv4UDPFrame
}

// ByteLen returns the total wire length of f.
func (f EthernetIPv4UDPFrame) ByteLen() int { return ethernet.ByteLen + f.IPv4UDP.ByteLen() }

// AppendBinary appends the wire form of f to dst.
func (f EthernetIPv4UDPFrame) AppendBinary(dst []byte) []byte {
	dst = f.EthHeader.AppendBinary(dst)
	return f.IPv4UDP.AppendBinary(dst)
}

// ParseEthernetIPv4UDPFrame decodes an EthernetIPv4UDPFrame from data.
// EthHeader.EtherType must be EtherTypeIPv4.
func ParseEthernetIPv4UDPFrame(data []byte) (EthernetIPv4UDPFrame, error) {
	if len(data) < ethernet.ByteLen {
		return EthernetIPv4UDPFrame{}, lneto.ErrBufferTooShort
	}
	eh, err := ethernet.ParseHeader(data[:ethernet.ByteLen])
	if err != nil {
		return EthernetIPv4UDPFrame{}, err
	}
	if eh.EtherType != lneto.EtherTypeIPv4 {
		return EthernetIPv4UDPFrame{}, lneto.ErrUnsupportedProtocol
	}
	iuf, err := ParseIPv4UDPFrame(data[ethernet.ByteLen:])
	if err != nil {
		return EthernetIPv4UDPFrame{}, err
	}
	return EthernetIPv4UDPFrame{EthHeader: eh, IPv4UDP: iuf}, nil
}

// ComputeChecksums fills in the IPv4 and UDP checksums of f.IPv4UDP.
func (f EthernetIPv4UDPFrame) ComputeChecksums() EthernetIPv4UDPFrame {
	f.IPv4UDP = f.IPv4UDP.ComputeChecksums()
	return f
}

// VerifyChecksums checks the IPv4 and UDP checksums of f.IPv4UDP.
func (f EthernetIPv4UDPFrame) VerifyChecksums() error {
	return f.IPv4UDP.VerifyChecksums()
}

// EthernetARPFrame is a full Ethernet II frame carrying an ARP
// payload. Like EthernetIPv4UDPFrame its wire form has no trailing
// FCS by default; see fcs.go for the optional trailer helpers.
type EthernetARPFrame struct {
	EthHeader ethernet.Header
	ARP       arp.Payload
}

// ByteLen returns the total wire length of f.
func (f EthernetARPFrame) ByteLen() int { return ethernet.ByteLen + arp.ByteLen }

// AppendBinary appends the wire form of f to dst.
func (f EthernetARPFrame) AppendBinary(dst []byte) []byte {
	dst = f.EthHeader.AppendBinary(dst)
	return f.ARP.AppendBinary(dst)
}

// ParseEthernetARPFrame decodes an EthernetARPFrame from data.
// EthHeader.EtherType must be EtherTypeARP and data must be exactly
// ByteLen long.
func ParseEthernetARPFrame(data []byte) (EthernetARPFrame, error) {
	const want = ethernet.ByteLen + arp.ByteLen
	if len(data) < want {
		return EthernetARPFrame{}, lneto.ErrBufferTooShort
	}
	if len(data) > want {
		return EthernetARPFrame{}, lneto.ErrBufferTooLong
	}
	eh, err := ethernet.ParseHeader(data[:ethernet.ByteLen])
	if err != nil {
		return EthernetARPFrame{}, err
	}
	if eh.EtherType != lneto.EtherTypeARP {
		return EthernetARPFrame{}, lneto.ErrUnsupportedProtocol
	}
	ap, err := arp.ParsePayload(data[ethernet.ByteLen:])
	if err != nil {
		return EthernetARPFrame{}, err
	}
	return EthernetARPFrame{EthHeader: eh, ARP: ap}, nil
}
