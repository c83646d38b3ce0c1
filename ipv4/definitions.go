package ipv4

// ByteLen is the fixed wire length of a Header: this stack parses and
// emits only the minimal 20-byte form (IHL=5), per spec.md's non-goal
// on IPv4 options.
const ByteLen = 20

// VersionAndIHL packs the 4-bit version (always 4) and 4-bit Internet
// Header Length (in 32-bit words) into a single byte per RFC 791 §3.1.
// Grounded on ipv4.Frame's VersionAndIHL/SetVersionAndIHL pair in the
// teacher, lifted into its own bit-packed record per SPEC_FULL.md §4.C.
type VersionAndIHL uint8

// DefaultVersionAndIHL is 0x45: version 4, IHL 5 (20-byte header, no
// options) — the only value this stack transmits.
const DefaultVersionAndIHL VersionAndIHL = 0x45

// NewVersionAndIHL packs a version and header-length-in-words pair.
func NewVersionAndIHL(version, ihlWords uint8) VersionAndIHL {
	return VersionAndIHL(version<<4 | ihlWords&0xf)
}

// Version returns the high nibble.
func (v VersionAndIHL) Version() uint8 { return uint8(v) >> 4 }

// WithVersion returns v with its version nibble replaced.
func (v VersionAndIHL) WithVersion(version uint8) VersionAndIHL {
	return VersionAndIHL(version<<4 | uint8(v)&0xf)
}

// IHL returns the header length in 32-bit words (low nibble).
func (v VersionAndIHL) IHL() uint8 { return uint8(v) & 0xf }

// WithHeaderLength returns v with its IHL nibble replaced.
func (v VersionAndIHL) WithHeaderLength(words uint8) VersionAndIHL {
	return VersionAndIHL(uint8(v)&0xf0 | words&0xf)
}

// HeaderLengthBytes returns the header length in bytes (IHL * 4).
func (v VersionAndIHL) HeaderLengthBytes() int { return int(v.IHL()) * 4 }

// DSCP is a Differentiated Services Code Point (RFC 2474), the high six
// bits of the IPv4 ToS byte. Like the EtherType/IPProto enums, any
// value round-trips; the named constants below are simply the ones this
// stack's callers are expected to use.
type DSCP uint8

// Named DSCP code points.
const (
	DSCPStandard DSCP = 0  // CS0 / best-effort.
	DSCPRealTime DSCP = 46 // EF, expedited forwarding.
	DSCPCS1      DSCP = 8
	DSCPCS2      DSCP = 16
	DSCPCS3      DSCP = 24
	DSCPCS4      DSCP = 32
	DSCPCS5      DSCP = 40
	DSCPCS6      DSCP = 48
	DSCPCS7      DSCP = 56
)

// ToS is the IPv4 Type-of-Service byte: DSCP in the high six bits, ECN
// in the low two, per RFC 2474 / RFC 3168. Grounded verbatim on
// ipv4/definitions.go's ToS type in the teacher.
type ToS uint8

// NewToS packs a DSCP code point and a 2-bit ECN field into a ToS byte.
func NewToS(dscp DSCP, ecn uint8) ToS { return ToS(uint8(dscp)<<2 | ecn&0b11) }

// DSCP returns the top six bits of the ToS byte.
func (tos ToS) DSCP() DSCP { return DSCP(uint8(tos) >> 2) }

// WithDSCP returns tos with its DSCP bits replaced.
func (tos ToS) WithDSCP(dscp DSCP) ToS { return ToS(uint8(dscp)<<2 | uint8(tos)&0b11) }

// ECN returns the bottom two bits of the ToS byte.
func (tos ToS) ECN() uint8 { return uint8(tos) & 0b11 }

// WithECN returns tos with its ECN bits replaced.
func (tos ToS) WithECN(ecn uint8) ToS { return ToS(uint8(tos)&0xfc | ecn&0b11) }

// Flags is the 16-bit field following Identification: 3 flag bits
// (reserved, DF, MF) then a 13-bit fragment offset in 8-byte units, per
// RFC 791 §3.1. This stack never fragments, so the only value it
// transmits is DefaultFlags (DF=1, MF=0, offset=0). Grounded on
// ipv4/definitions.go's Flags type in the teacher.
type Flags uint16

const (
	flagDontFragment  Flags = 1 << 14
	flagMoreFragments Flags = 1 << 13
	fragOffsetMask    Flags = 0x1fff
)

// DefaultFlags is DF=1, MF=0, fragment offset 0: the only fragmentation
// field value this no-fragmentation stack ever transmits.
const DefaultFlags Flags = flagDontFragment

// DontFragment reports the DF bit.
func (f Flags) DontFragment() bool { return f&flagDontFragment != 0 }

// WithDontFragment returns f with the DF bit set or cleared.
func (f Flags) WithDontFragment(df bool) Flags {
	if df {
		return f | flagDontFragment
	}
	return f &^ flagDontFragment
}

// MoreFragments reports the MF bit.
func (f Flags) MoreFragments() bool { return f&flagMoreFragments != 0 }

// WithMoreFragments returns f with the MF bit set or cleared.
func (f Flags) WithMoreFragments(mf bool) Flags {
	if mf {
		return f | flagMoreFragments
	}
	return f &^ flagMoreFragments
}

// FragmentOffset returns the 13-bit fragment offset in 8-byte units.
func (f Flags) FragmentOffset() uint16 { return uint16(f) & uint16(fragOffsetMask) }

// WithFragmentOffset returns f with its fragment offset replaced.
func (f Flags) WithFragmentOffset(offset uint16) Flags {
	return f&^fragOffsetMask | Flags(offset)&fragOffsetMask
}
