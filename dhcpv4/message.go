// Package dhcpv4 implements the subset of RFC 2131/2132 this stack
// needs: building and parsing DHCPINFORM messages. There is no lease
// state machine here — no DISCOVER/OFFER/REQUEST/ACK exchange, no lease
// table — since a host that already has its address by other means
// only ever needs INFORM to request configuration. Grounded on the
// teacher's dhcpv4.Frame field layout (RFC 2131 §2), narrowed to a
// value-struct encode/decode pair per SPEC_FULL.md §4.D.
package dhcpv4

import (
	"encoding/binary"

	"github.com/ironcurve/lneto"
)

// MagicCookie is the fixed 4-byte value separating the BOOTP fixed
// header from the variable-length option area (RFC 1497).
const MagicCookie uint32 = 0x63825363

const (
	sizeCHAddr   = 16
	sizeSName    = 64
	sizeBootFile = 128
	// FixedByteLen is the length of the BOOTP fixed header, not
	// including the magic cookie or options.
	FixedByteLen = 1 + 1 + 1 + 1 + 4 + 2 + 2 + 4*4 + sizeCHAddr + sizeSName + sizeBootFile
	// HeaderByteLen additionally covers the magic cookie, the point at
	// which the variable-length options begin.
	HeaderByteLen = FixedByteLen + 4
)

// Message is a DHCPv4 message: the fixed BOOTP header followed by the
// magic cookie and a run of TLV options. Options are carried as an
// opaque, already-encoded ByteArray rather than a parsed slice, since
// Go has no fixed upper bound on option count to size a value type
// around; see SPEC_FULL.md §3.
type Message struct {
	Op           Op
	HType        uint8
	HLen         uint8
	Hops         uint8
	XID          uint32
	Secs         uint16
	Flags        Flags
	ClientAddr   lneto.IPv4Addr // ciaddr
	YourAddr     lneto.IPv4Addr // yiaddr
	ServerAddr   lneto.IPv4Addr // siaddr
	GatewayAddr  lneto.IPv4Addr // giaddr
	ClientHWAddr lneto.MacAddr  // first 6 bytes of chaddr; the rest is zero.
	ServerName   [sizeSName]byte
	BootFile     [sizeBootFile]byte
	Options      lneto.ByteArray // encoded options, including the terminating OptEnd.
}

// ByteLen returns the total wire length of m: the fixed header, magic
// cookie, and options.
func (m Message) ByteLen() int { return HeaderByteLen + m.Options.ByteLen() }

// AppendBinary appends the big-endian wire form of m to dst.
func (m Message) AppendBinary(dst []byte) []byte {
	var fixed [FixedByteLen]byte
	fixed[0] = byte(m.Op)
	fixed[1] = m.HType
	fixed[2] = m.HLen
	fixed[3] = m.Hops
	binary.BigEndian.PutUint32(fixed[4:8], m.XID)
	binary.BigEndian.PutUint16(fixed[8:10], m.Secs)
	binary.BigEndian.PutUint16(fixed[10:12], uint16(m.Flags))
	copy(fixed[12:16], m.ClientAddr[:])
	copy(fixed[16:20], m.YourAddr[:])
	copy(fixed[20:24], m.ServerAddr[:])
	copy(fixed[24:28], m.GatewayAddr[:])
	copy(fixed[28:28+6], m.ClientHWAddr[:])
	copy(fixed[28+sizeCHAddr:28+sizeCHAddr+sizeSName], m.ServerName[:])
	copy(fixed[28+sizeCHAddr+sizeSName:], m.BootFile[:])

	dst = append(dst, fixed[:]...)
	var cookie [4]byte
	binary.BigEndian.PutUint32(cookie[:], MagicCookie)
	dst = append(dst, cookie[:]...)
	return m.Options.AppendBinary(dst)
}

// ParseMessage decodes a Message from data, which must be at least
// HeaderByteLen bytes (fixed header plus magic cookie); any bytes past
// that are taken verbatim as the options area. It reports
// ErrChecksumMismatch-adjacent ErrLengthFieldInconsistent if the magic
// cookie does not match.
func ParseMessage(data []byte) (Message, error) {
	if len(data) < HeaderByteLen {
		return Message{}, lneto.ErrBufferTooShort
	}
	var m Message
	m.Op = Op(data[0])
	m.HType = data[1]
	m.HLen = data[2]
	m.Hops = data[3]
	m.XID = binary.BigEndian.Uint32(data[4:8])
	m.Secs = binary.BigEndian.Uint16(data[8:10])
	m.Flags = Flags(binary.BigEndian.Uint16(data[10:12]))
	copy(m.ClientAddr[:], data[12:16])
	copy(m.YourAddr[:], data[16:20])
	copy(m.ServerAddr[:], data[20:24])
	copy(m.GatewayAddr[:], data[24:28])
	copy(m.ClientHWAddr[:], data[28:28+6])
	copy(m.ServerName[:], data[28+sizeCHAddr:28+sizeCHAddr+sizeSName])
	copy(m.BootFile[:], data[28+sizeCHAddr+sizeSName:FixedByteLen])

	cookie := binary.BigEndian.Uint32(data[FixedByteLen:HeaderByteLen])
	if cookie != MagicCookie {
		return Message{}, lneto.ErrLengthFieldInconsistent
	}
	m.Options = lneto.NewByteArray(data[HeaderByteLen:])
	return m, nil
}

// ForEachOption walks the TLV options area, calling fn with each
// option's tag and data in turn. Iteration stops at OptEnd or at the
// end of the buffer, whichever comes first. fn may be nil, in which
// case ForEachOption only validates that every option's length fits
// inside the buffer. Grounded on the teacher's Frame.ForEachOption.
func (m Message) ForEachOption(fn func(opt OptNum, data []byte) error) error {
	buf := m.Options.Bytes()
	ptr := 0
	for ptr < len(buf) {
		opt := OptNum(buf[ptr])
		if opt == OptEnd {
			return nil
		}
		if opt == OptWordAligned {
			ptr++
			continue
		}
		if ptr+1 >= len(buf) {
			return lneto.ErrBufferTooShort
		}
		optlen := int(buf[ptr+1])
		if ptr+2+optlen > len(buf) {
			return lneto.ErrBufferTooShort
		}
		if fn != nil {
			if err := fn(opt, buf[ptr+2:ptr+2+optlen]); err != nil {
				return err
			}
		}
		ptr += 2 + optlen
	}
	return nil
}

// MessageType returns the value of option 53, the DHCP message type,
// and whether it was present.
func (m Message) MessageType() (MessageType, bool) {
	var mt MessageType
	var found bool
	m.ForEachOption(func(opt OptNum, data []byte) error {
		if opt == OptMessageType && len(data) == 1 {
			mt = MessageType(data[0])
			found = true
		}
		return nil
	})
	return mt, found
}

// AppendOption appends one TLV-encoded option (tag, length byte, data)
// to dst. Grounded on the teacher's EncodeOption helper referenced
// throughout client.go/server.go.
func AppendOption(dst []byte, opt OptNum, data ...byte) []byte {
	dst = append(dst, byte(opt), byte(len(data)))
	return append(dst, data...)
}
