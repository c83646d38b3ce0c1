package dhcpv4

import (
	"errors"

	"github.com/ironcurve/lneto"
)

// MaxParameterRequestList bounds the number of option tags
// InformConfig.ParameterRequestList may carry.
const MaxParameterRequestList = 8

// MaxHostnameLen bounds InformConfig.Hostname.
const MaxHostnameLen = 32

// OptionsByteLen is the fixed, compile-time size of a DHCPINFORM
// message's options area: the message-type option (3 bytes), the
// parameter-request-list option at its worst-case length (2 + 8
// bytes), the hostname option at its worst-case length (2 + 32
// bytes), and the end option (1 byte), zero-padded out to this total
// regardless of how much of it a given message actually uses. This
// keeps BuildInform's output a fixed total length per SPEC_FULL.md
// §4.H, the same way every other frame/header type in this tree has a
// compile-time ByteLen.
const OptionsByteLen = 3 + (2 + MaxParameterRequestList) + (2 + MaxHostnameLen) + 1

// Errors reported by BuildInform when cfg asks for more than
// OptionsByteLen can hold.
var (
	ErrParameterRequestListTooLong = errors.New("dhcpv4: parameter request list too long")
	ErrHostnameTooLong             = errors.New("dhcpv4: hostname too long")
)

// InformConfig describes the fields a caller supplies to build a
// DHCPINFORM message (RFC 2131 §3.4): a host that already has an IP
// address by other means, asking a server for the rest of its
// configuration (default route, DNS, domain name, and so on).
type InformConfig struct {
	// XID is the transaction ID; the caller picks it so it can match
	// the eventual ACK.
	XID uint32
	// Secs is the number of seconds elapsed since the client began its
	// configuration exchange.
	Secs uint16
	// Broadcast requests the server reply to the IPv4 broadcast
	// address instead of unicasting to ClientAddr.
	Broadcast bool
	// ClientAddr is the address the client already holds.
	ClientAddr lneto.IPv4Addr
	// ClientHWAddr is the client's hardware address.
	ClientHWAddr lneto.MacAddr
	// ParameterRequestList names the options the client wants the
	// server to include in its reply (option 55), up to
	// MaxParameterRequestList entries. If empty,
	// DefaultParameterRequestList is used.
	ParameterRequestList []OptNum
	// Hostname, if non-empty, is sent as option 12. It must not exceed
	// MaxHostnameLen bytes.
	Hostname string
}

// DefaultParameterRequestList is the set of options a caller typically
// wants back from a DHCPINFORM exchange: subnet mask, router, DNS
// servers, domain name.
var DefaultParameterRequestList = []OptNum{OptSubnetMask, OptRouter, OptDNSServers, OptDomainName}

// HardwareTypeEthernetOctets is the ARPHRD_ETHER hardware type value
// DHCP shares with ARP (RFC 2131 §2, "htype").
const HardwareTypeEthernetOctets = 1

// BuildInform constructs a DHCPINFORM Message from cfg, encoding its
// options into optionsBuf instead of an allocated buffer: optionsBuf
// is written into in place and aliased (not copied) by the returned
// Message's Options field. A typical call looks like:
//
//	var buf [dhcpv4.OptionsByteLen]byte
//	msg, err := dhcpv4.BuildInform(cfg, &buf)
func BuildInform(cfg InformConfig, optionsBuf *[OptionsByteLen]byte) (Message, error) {
	prl := cfg.ParameterRequestList
	if len(prl) == 0 {
		prl = DefaultParameterRequestList
	}
	if len(prl) > MaxParameterRequestList {
		return Message{}, ErrParameterRequestListTooLong
	}
	if len(cfg.Hostname) > MaxHostnameLen {
		return Message{}, ErrHostnameTooLong
	}

	var m Message
	m.Op = OpRequest
	m.HType = uint8(HardwareTypeEthernetOctets)
	m.HLen = 6
	m.XID = cfg.XID
	m.Secs = cfg.Secs
	m.Flags = Flags(0).WithBroadcast(cfg.Broadcast)
	m.ClientAddr = cfg.ClientAddr
	m.ClientHWAddr = cfg.ClientHWAddr

	*optionsBuf = [OptionsByteLen]byte{}
	opts := optionsBuf[:0]
	opts = AppendOption(opts, OptMessageType, byte(MsgInform))

	var prlBytes [MaxParameterRequestList]byte
	for i, opt := range prl {
		prlBytes[i] = byte(opt)
	}
	opts = AppendOption(opts, OptParameterRequestList, prlBytes[:len(prl)]...)

	if len(cfg.Hostname) > 0 {
		opts = append(opts, byte(OptHostName), byte(len(cfg.Hostname)))
		opts = append(opts, cfg.Hostname...)
	}
	opts = append(opts, byte(OptEnd))
	// The remainder of optionsBuf is already zero from the reset above:
	// OptWordAligned (0) is the pad option, and ForEachOption stops at
	// OptEnd regardless.

	m.Options = lneto.NewByteArray(optionsBuf[:])
	return m, nil
}
