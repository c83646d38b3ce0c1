// Package frame composes the per-protocol headers in ethernet, ipv4,
// udp, and arp into the handful of concrete, fully-nested frame shapes
// this stack actually puts on the wire. Go has no type-level way to
// express "a Frame of any Header and Body", so rather than attempt a
// generic Frame[H, B] this package pre-generates the specific
// compositions the spec calls for, each as its own named struct; see
// SPEC_FULL.md §3 for the design note this mirrors.
package frame

import (
	"github.com/ironcurve/lneto"
	"github.com/ironcurve/lneto/udp"
)

// UDPFrame is a UDP header plus its payload.
type UDPFrame struct {
	Header  udp.Header
	Payload lneto.ByteArray
}

// ByteLen returns the total wire length: the fixed 8-byte header plus
// the payload.
func (f UDPFrame) ByteLen() int { return udp.ByteLen + f.Payload.ByteLen() }

// AppendBinary appends the wire form of f to dst. Header.Length is
// emitted verbatim; callers constructing a frame from scratch should
// set it to f.ByteLen() beforehand.
func (f UDPFrame) AppendBinary(dst []byte) []byte {
	dst = f.Header.AppendBinary(dst)
	return f.Payload.AppendBinary(dst)
}

// ParseUDPFrame decodes a UDPFrame from data. The UDP header's Length
// field must equal len(data) exactly; any mismatch reports
// ErrLengthFieldInconsistent, since a UDP datagram is always the
// entirety of its IPv4 payload in this stack (no trailing padding).
func ParseUDPFrame(data []byte) (UDPFrame, error) {
	if len(data) < udp.ByteLen {
		return UDPFrame{}, lneto.ErrBufferTooShort
	}
	h, err := udp.ParseHeader(data[:udp.ByteLen])
	if err != nil {
		return UDPFrame{}, err
	}
	if int(h.Length) != len(data) {
		return UDPFrame{}, lneto.ErrLengthFieldInconsistent
	}
	return UDPFrame{Header: h, Payload: lneto.NewByteArray(data[udp.ByteLen:])}, nil
}
