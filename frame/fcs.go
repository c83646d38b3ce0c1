package frame

import (
	"encoding/binary"

	"github.com/ironcurve/lneto"
)

// AppendFCS appends a caller-supplied 4-byte Ethernet Frame Check
// Sequence to an already-serialized frame (e.g. the result of
// EthernetIPv4UDPFrame.AppendBinary). This stack never computes the
// FCS itself — see SPEC_FULL.md §9's open question: real hardware
// generates and strips it, and most captures this stack ever decodes
// are taken upstream of that boundary and never carry one. AppendFCS
// exists for the minority of callers, such as a raw Ethernet socket,
// that do need to emit one.
func AppendFCS(frameBytes []byte, fcs uint32) []byte {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], fcs)
	return append(frameBytes, buf[:]...)
}

// SplitFCS splits a trailing 4-byte FCS off the end of frameBytes,
// returning the frame body (suitable for ParseEthernetIPv4UDPFrame or
// ParseEthernetARPFrame) and the FCS value verbatim. It reports
// ErrBufferTooShort if frameBytes is shorter than 4 bytes.
func SplitFCS(frameBytes []byte) (body []byte, fcs uint32, err error) {
	if len(frameBytes) < 4 {
		return nil, 0, lneto.ErrBufferTooShort
	}
	split := len(frameBytes) - 4
	return frameBytes[:split], binary.BigEndian.Uint32(frameBytes[split:]), nil
}
