// Package ipv4 implements the 20-byte, no-options IPv4 header this stack
// emits and parses. Fragmentation is never performed on send; on
// receive, the Flags/FragmentOffset bits are exposed but not acted on,
// per spec.md's non-goal on reassembly.
package ipv4

import (
	"encoding/binary"

	"github.com/ironcurve/lneto"
)

// Header is the fixed 20-byte IPv4 header as a plain value type.
// Grounded on the field layout of the teacher's ipv4.Frame, rebased
// from a buffer view onto a value struct per SPEC_FULL.md §4.D.
type Header struct {
	VersionAndIHL VersionAndIHL
	ToS           ToS
	TotalLength   uint16
	ID            uint16
	Flags         Flags
	TTL           uint8
	Protocol      lneto.IPProto
	Checksum      uint16
	Source        lneto.IPv4Addr
	Destination   lneto.IPv4Addr
}

// ByteLen returns the fixed 20-byte wire length of a Header.
func (Header) ByteLen() int { return ByteLen }

// AppendBinary appends the 20-byte big-endian wire form of h to dst.
// The Checksum field is emitted verbatim; callers that want a correct
// on-wire checksum must call CalculateChecksum first and store the
// result back into h.Checksum.
func (h Header) AppendBinary(dst []byte) []byte {
	var buf [ByteLen]byte
	buf[0] = byte(h.VersionAndIHL)
	buf[1] = byte(h.ToS)
	binary.BigEndian.PutUint16(buf[2:4], h.TotalLength)
	binary.BigEndian.PutUint16(buf[4:6], h.ID)
	binary.BigEndian.PutUint16(buf[6:8], uint16(h.Flags))
	buf[8] = h.TTL
	buf[9] = byte(h.Protocol)
	binary.BigEndian.PutUint16(buf[10:12], h.Checksum)
	copy(buf[12:16], h.Source[:])
	copy(buf[16:20], h.Destination[:])
	return append(dst, buf[:]...)
}

// ParseHeader decodes a Header from exactly the first ByteLen bytes of
// data. data must be exactly ByteLen long. It does not validate the
// checksum; use VerifyChecksum for that.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < ByteLen {
		return Header{}, lneto.ErrBufferTooShort
	}
	if len(data) > ByteLen {
		return Header{}, lneto.ErrBufferTooLong
	}
	var h Header
	h.VersionAndIHL = VersionAndIHL(data[0])
	if h.VersionAndIHL.IHL() != 5 {
		return Header{}, lneto.ErrUnsupportedIHL
	}
	h.ToS = ToS(data[1])
	h.TotalLength = binary.BigEndian.Uint16(data[2:4])
	h.ID = binary.BigEndian.Uint16(data[4:6])
	h.Flags = Flags(binary.BigEndian.Uint16(data[6:8]))
	h.TTL = data[8]
	h.Protocol = lneto.IPProto(data[9])
	h.Checksum = binary.BigEndian.Uint16(data[10:12])
	copy(h.Source[:], data[12:16])
	copy(h.Destination[:], data[16:20])
	return h, nil
}

// CalculateChecksum computes the RFC 791 header checksum over h as it
// would appear on the wire, treating the Checksum field itself as zero
// during the sum (per RFC 791 §3.1's self-referential definition of the
// field), and never returning the all-zero value. Grounded on the
// teacher's ipv4.Frame.CalculateHeaderCRC.
func (h Header) CalculateChecksum() uint16 {
	h.Checksum = 0
	buf := h.AppendBinary(make([]byte, 0, ByteLen))
	var crc lneto.CRC791
	crc.Write(buf)
	return lneto.NeverZeroChecksum(crc.Sum16())
}

// VerifyChecksum reports whether h.Checksum matches CalculateChecksum,
// returning ErrChecksumMismatch if not.
func (h Header) VerifyChecksum() error {
	if h.CalculateChecksum() != h.Checksum {
		return lneto.ErrChecksumMismatch
	}
	return nil
}

// WriteUDPPseudoHeader folds the RFC 768 UDP pseudo-header (source
// address, destination address, zero byte, protocol, UDP length) into
// crc, ahead of the caller folding in the UDP header and payload
// themselves. Grounded on the teacher's ipv4.Frame.CRCWriteUDPPseudo.
func (h Header) WriteUDPPseudoHeader(crc *lneto.CRC791, udpLength uint16) {
	crc.Write(h.Source[:])
	crc.Write(h.Destination[:])
	crc.AddUint16(uint16(h.Protocol))
	crc.AddUint16(udpLength)
}
