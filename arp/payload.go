// Package arp implements the 28-byte IPv4-over-Ethernet ARP message this
// stack builds and parses (RFC 826 / RFC 5227 announcements), as a
// message builder rather than a protocol client: there is no cache, no
// pending-query table, and no retransmission timer here, per
// SPEC_FULL.md §4.G. Grounded on the field layout of the teacher's
// arp.Frame, narrowed to the one hardware/protocol combination this
// stack ever emits.
package arp

import (
	"encoding/binary"

	"github.com/ironcurve/lneto"
)

// ByteLen is the fixed wire length of a Payload: the 8-byte fixed
// header plus two 6-byte hardware addresses and two 4-byte protocol
// addresses.
const ByteLen = 28

// Payload is an ARP message for Ethernet hardware addresses and IPv4
// protocol addresses, the only combination this stack constructs.
type Payload struct {
	HardwareType HardwareType
	ProtocolType lneto.EtherType
	Operation    Operation
	SenderHW     lneto.MacAddr
	SenderProto  lneto.IPv4Addr
	TargetHW     lneto.MacAddr
	TargetProto  lneto.IPv4Addr
}

// ByteLen returns the fixed 28-byte wire length of a Payload.
func (Payload) ByteLen() int { return ByteLen }

// AppendBinary appends the 28-byte big-endian wire form of p to dst.
// HardwareAddressLength and ProtocolAddressLength are always emitted as
// 6 and 4 respectively, since a Payload only ever carries Ethernet and
// IPv4 addresses.
func (p Payload) AppendBinary(dst []byte) []byte {
	var buf [ByteLen]byte
	binary.BigEndian.PutUint16(buf[0:2], uint16(p.HardwareType))
	binary.BigEndian.PutUint16(buf[2:4], uint16(p.ProtocolType))
	buf[4] = 6
	buf[5] = 4
	binary.BigEndian.PutUint16(buf[6:8], uint16(p.Operation))
	copy(buf[8:14], p.SenderHW[:])
	copy(buf[14:18], p.SenderProto[:])
	copy(buf[18:24], p.TargetHW[:])
	copy(buf[24:28], p.TargetProto[:])
	return append(dst, buf[:]...)
}

// ParsePayload decodes a Payload from exactly the first ByteLen bytes
// of data. data must be exactly ByteLen long, and its hardware/protocol
// address lengths must be 6 and 4 (Ethernet/IPv4); any other
// combination reports ErrUnsupportedIHL, reused here to mean "this
// stack does not know this address-length combination" rather than
// introduce a second sentinel for the same shape of failure.
func ParsePayload(data []byte) (Payload, error) {
	if len(data) < ByteLen {
		return Payload{}, lneto.ErrBufferTooShort
	}
	if len(data) > ByteLen {
		return Payload{}, lneto.ErrBufferTooLong
	}
	if data[4] != 6 || data[5] != 4 {
		return Payload{}, lneto.ErrUnsupportedIHL
	}
	var p Payload
	p.HardwareType = HardwareType(binary.BigEndian.Uint16(data[0:2]))
	p.ProtocolType = lneto.EtherType(binary.BigEndian.Uint16(data[2:4]))
	p.Operation = Operation(binary.BigEndian.Uint16(data[6:8]))
	copy(p.SenderHW[:], data[8:14])
	copy(p.SenderProto[:], data[14:18])
	copy(p.TargetHW[:], data[18:24])
	copy(p.TargetProto[:], data[24:28])
	return p, nil
}

// NewRequest builds an ARP request: "who has targetProto, tell
// senderHW/senderProto". TargetHW is left as the zero address, which is
// the conventional filler for a request per RFC 826.
func NewRequest(senderHW lneto.MacAddr, senderProto lneto.IPv4Addr, targetProto lneto.IPv4Addr) Payload {
	return Payload{
		HardwareType: HardwareTypeEthernet,
		ProtocolType: lneto.EtherTypeIPv4,
		Operation:    OpRequest,
		SenderHW:     senderHW,
		SenderProto:  senderProto,
		TargetProto:  targetProto,
	}
}

// NewReply builds an ARP reply to the sender of req, asserting that
// ourHW owns ourProto.
func NewReply(req Payload, ourHW lneto.MacAddr, ourProto lneto.IPv4Addr) Payload {
	return Payload{
		HardwareType: HardwareTypeEthernet,
		ProtocolType: req.ProtocolType,
		Operation:    OpReply,
		SenderHW:     ourHW,
		SenderProto:  ourProto,
		TargetHW:     req.SenderHW,
		TargetProto:  req.SenderProto,
	}
}

// NewAnnouncement builds a gratuitous ARP announcement (RFC 5227): a
// request where sender and target protocol addresses are identical,
// used to advertise or defend ownership of ourProto without expecting
// a reply.
func NewAnnouncement(ourHW lneto.MacAddr, ourProto lneto.IPv4Addr) Payload {
	return Payload{
		HardwareType: HardwareTypeEthernet,
		ProtocolType: lneto.EtherTypeIPv4,
		Operation:    OpRequest,
		SenderHW:     ourHW,
		SenderProto:  ourProto,
		TargetProto:  ourProto,
	}
}
