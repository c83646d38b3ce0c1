// Package ethernet implements the 14-byte Ethernet II header this stack
// emits and parses: destination MAC, source MAC, EtherType. There is no
// preamble, no VLAN tag, and no FCS computation here — see
// SPEC_FULL.md §9 for why the trailing FCS slot is the caller's problem.
package ethernet

import (
	"encoding/binary"

	"github.com/ironcurve/lneto"
)

// ByteLen is the fixed wire length of a Header.
const ByteLen = 14

// Header is the Ethernet II header as a plain value type: destination
// MAC, source MAC, EtherType. Grounded on the field layout of the
// teacher's ethernet.Frame, rebased from a buffer view onto a value
// struct per SPEC_FULL.md §4.D.
type Header struct {
	Destination lneto.MacAddr
	Source      lneto.MacAddr
	EtherType   lneto.EtherType
}

// ByteLen returns the fixed 14-byte wire length of a Header.
func (Header) ByteLen() int { return ByteLen }

// AppendBinary appends the 14-byte big-endian wire form of h to dst.
func (h Header) AppendBinary(dst []byte) []byte {
	dst = append(dst, h.Destination[:]...)
	dst = append(dst, h.Source[:]...)
	var etBuf [2]byte
	binary.BigEndian.PutUint16(etBuf[:], uint16(h.EtherType))
	return append(dst, etBuf[:]...)
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
	copy(h.Destination[:], data[0:6])
	copy(h.Source[:], data[6:12])
	h.EtherType = lneto.EtherType(binary.BigEndian.Uint16(data[12:14]))
	return h, nil
}
