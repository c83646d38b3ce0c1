// Package udp implements the 8-byte UDP header this stack emits and
// parses, per RFC 768. Grounded on the teacher's udp.Frame field
// layout, rebased from a buffer view onto a value struct per
// SPEC_FULL.md §4.D.
package udp

import (
	"encoding/binary"

	"github.com/ironcurve/lneto"
	"github.com/ironcurve/lneto/ipv4"
)

// ByteLen is the fixed wire length of a Header.
const ByteLen = 8

// Header is the UDP header as a plain value type: source port,
// destination port, length (header + payload), checksum.
type Header struct {
	SourcePort      uint16
	DestinationPort uint16
	Length          uint16
	Checksum        uint16
}

// ByteLen returns the fixed 8-byte wire length of a Header.
func (Header) ByteLen() int { return ByteLen }

// AppendBinary appends the 8-byte big-endian wire form of h to dst.
func (h Header) AppendBinary(dst []byte) []byte {
	var buf [ByteLen]byte
	binary.BigEndian.PutUint16(buf[0:2], h.SourcePort)
	binary.BigEndian.PutUint16(buf[2:4], h.DestinationPort)
	binary.BigEndian.PutUint16(buf[4:6], h.Length)
	binary.BigEndian.PutUint16(buf[6:8], h.Checksum)
	return append(dst, buf[:]...)
}

// ParseHeader decodes a Header from exactly the first ByteLen bytes of
// data. data must be exactly ByteLen long.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < ByteLen {
		return Header{}, lneto.ErrBufferTooShort
	}
	if len(data) > ByteLen {
		return Header{}, lneto.ErrBufferTooLong
	}
	var h Header
	h.SourcePort = binary.BigEndian.Uint16(data[0:2])
	h.DestinationPort = binary.BigEndian.Uint16(data[2:4])
	h.Length = binary.BigEndian.Uint16(data[4:6])
	h.Checksum = binary.BigEndian.Uint16(data[6:8])
	return h, nil
}

// CalculateChecksum computes the RFC 768 UDP checksum over the IPv4
// pseudo-header, h as it would appear on the wire with Checksum treated
// as zero, and payload. It never returns the all-zero value. Grounded
// on the teacher's commented-out udp.Frame.CalculateIPv4Checksum sketch,
// completed and wired to the new ipv4.Header pseudo-header helper.
func (h Header) CalculateChecksum(ipHeader ipv4.Header, payload []byte) uint16 {
	h.Checksum = 0
	var crc lneto.CRC791
	ipHeader.WriteUDPPseudoHeader(&crc, h.Length)
	crc.Write(h.AppendBinary(make([]byte, 0, ByteLen)))
	crc.WriteOdd(payload)
	return lneto.NeverZeroChecksum(crc.Sum16())
}

// VerifyChecksum reports whether h.Checksum matches CalculateChecksum
// for the given IPv4 header and payload, returning ErrChecksumMismatch
// if not. A received checksum of exactly zero means "checksum not
// computed" per RFC 768 and is treated as valid unconditionally.
func (h Header) VerifyChecksum(ipHeader ipv4.Header, payload []byte) error {
	if h.Checksum == 0 {
		return nil
	}
	if h.CalculateChecksum(ipHeader, payload) != h.Checksum {
		return lneto.ErrChecksumMismatch
	}
	return nil
}
