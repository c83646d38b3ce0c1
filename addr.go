package lneto

import "strconv"

// MacAddr is a 6-octet IEEE 802 hardware address. It is a plain value
// type: construction is a literal, equality is byte-wise, and there is
// no heap indirection.
type MacAddr [6]byte

// BroadcastMAC is the all-ones Ethernet broadcast address.
var BroadcastMAC = MacAddr{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}

// AnyMAC is the all-zeros address.
var AnyMAC = MacAddr{}

// NewMacAddr is a total constructor over the 6 address bytes.
func NewMacAddr(b [6]byte) MacAddr { return MacAddr(b) }

// IsBroadcast reports whether addr is the all-ones broadcast address.
func (addr MacAddr) IsBroadcast() bool { return addr == BroadcastMAC }

// AppendText appends the colon-separated hex text form of addr to dst
// without allocating, e.g. "02:af:ff:1a:e5:3c". Grounded on the
// teacher's ethernet.AppendAddr helper.
func (addr MacAddr) AppendText(dst []byte) []byte {
	for i, b := range addr {
		if i != 0 {
			dst = append(dst, ':')
		}
		if b < 16 {
			dst = append(dst, '0')
		}
		dst = strconv.AppendUint(dst, uint64(b), 16)
	}
	return dst
}

// String renders the address in colon-separated hex, e.g. "02:af:ff:1a:e5:3c".
func (addr MacAddr) String() string { return string(addr.AppendText(make([]byte, 0, 17))) }

// IPv4Addr is a 4-octet IPv4 address in network (big-endian) byte order.
type IPv4Addr [4]byte

// BroadcastIPv4 is 255.255.255.255.
var BroadcastIPv4 = IPv4Addr{255, 255, 255, 255}

// AnyIPv4 is 0.0.0.0.
var AnyIPv4 = IPv4Addr{}

// NewIPv4Addr is a total constructor over the 4 address bytes.
func NewIPv4Addr(b [4]byte) IPv4Addr { return IPv4Addr(b) }

// AppendText appends the dotted-decimal text form of addr to dst
// without allocating, e.g. "10.0.0.120".
func (addr IPv4Addr) AppendText(dst []byte) []byte {
	for i, b := range addr {
		if i != 0 {
			dst = append(dst, '.')
		}
		dst = strconv.AppendUint(dst, uint64(b), 10)
	}
	return dst
}

// String renders the address in dotted-decimal form, e.g. "10.0.0.120".
func (addr IPv4Addr) String() string { return string(addr.AppendText(make([]byte, 0, 15))) }
