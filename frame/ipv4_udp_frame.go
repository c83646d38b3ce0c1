package frame

import (
	"github.com/ironcurve/lneto"
	"github.com/ironcurve/lneto/ipv4"
)

// IPv4UDPFrame is an IPv4 header carrying a UDP datagram. This stack
// never emits IPv4 options, so the IPv4 header is always exactly
// ipv4.ByteLen bytes.
type IPv4UDPFrame struct {
	IPHeader ipv4.Header
	UDP      UDPFrame
}

// ByteLen returns the total wire length of f.
func (f IPv4UDPFrame) ByteLen() int { return ipv4.ByteLen + f.UDP.ByteLen() }

// AppendBinary appends the wire form of f to dst.
func (f IPv4UDPFrame) AppendBinary(dst []byte) []byte {
	dst = f.IPHeader.AppendBinary(dst)
	return f.UDP.AppendBinary(dst)
}

// ParseIPv4UDPFrame decodes an IPv4UDPFrame from data. IPHeader.Protocol
// must be IPProtoUDP and IPHeader.TotalLength must equal len(data)
// exactly: data shorter than TotalLength reports ErrBufferTooShort,
// data longer than it reports ErrLengthFieldInconsistent.
func ParseIPv4UDPFrame(data []byte) (IPv4UDPFrame, error) {
	if len(data) < ipv4.ByteLen {
		return IPv4UDPFrame{}, lneto.ErrBufferTooShort
	}
	ih, err := ipv4.ParseHeader(data[:ipv4.ByteLen])
	if err != nil {
		return IPv4UDPFrame{}, err
	}
	if int(ih.TotalLength) > len(data) {
		return IPv4UDPFrame{}, lneto.ErrBufferTooShort
	}
	if int(ih.TotalLength) != len(data) {
		return IPv4UDPFrame{}, lneto.ErrLengthFieldInconsistent
	}
	if ih.Protocol != lneto.IPProtoUDP {
		return IPv4UDPFrame{}, lneto.ErrUnsupportedProtocol
	}
	uf, err := ParseUDPFrame(data[ipv4.ByteLen:])
	if err != nil {
		return IPv4UDPFrame{}, err
	}
	return IPv4UDPFrame{IPHeader: ih, UDP: uf}, nil
}

// ComputeChecksums fills in f.IPHeader.Checksum and f.UDP.Header.Checksum
// from the frame's current contents, returning the updated frame. Call
// this after setting every other field and before AppendBinary.
func (f IPv4UDPFrame) ComputeChecksums() IPv4UDPFrame {
	f.UDP.Header.Checksum = f.UDP.Header.CalculateChecksum(f.IPHeader, f.UDP.Payload.Bytes())
	f.IPHeader.Checksum = f.IPHeader.CalculateChecksum()
	return f
}

// VerifyChecksums checks both the IPv4 header checksum and the UDP
// checksum, returning the first mismatch found.
func (f IPv4UDPFrame) VerifyChecksums() error {
	if err := f.IPHeader.VerifyChecksum(); err != nil {
		return err
	}
	return f.UDP.Header.VerifyChecksum(f.IPHeader, f.UDP.Payload.Bytes())
}
