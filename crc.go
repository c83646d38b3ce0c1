package lneto

import "encoding/binary"

// CRC791 is the one's-complement checksum defined by RFC 791/RFC 1071 and
// reused by RFC 768 for UDP: the 16-bit one's complement of the one's
// complement sum of all 16-bit words, with an odd trailing byte treated
// as the high byte of a zero-padded word. Grounded on the teacher's
// crc.go of the same name; the zero value is ready to use and performs
// no allocation.
type CRC791 struct {
	sum uint32
}

// Reset zeros the running sum so the value can be reused.
func (c *CRC791) Reset() { c.sum = 0 }

// AddUint16 folds a big-endian 16-bit value into the running sum.
func (c *CRC791) AddUint16(v uint16) { c.sum += uint32(v) }

// AddUint32 folds a big-endian 32-bit value into the running sum as two
// 16-bit words.
func (c *CRC791) AddUint32(v uint32) {
	c.AddUint16(uint16(v >> 16))
	c.AddUint16(uint16(v))
}

// Write folds an even-length buffer into the running sum, two bytes at a
// time, interpreted big-endian. It panics if len(buf) is odd; callers
// with a possibly-odd trailing buffer must use WriteOdd for the last
// chunk instead.
func (c *CRC791) Write(buf []byte) {
	if len(buf)%2 != 0 {
		panic("lneto: CRC791.Write requires an even-length buffer")
	}
	for i := 0; i < len(buf); i += 2 {
		c.sum += uint32(binary.BigEndian.Uint16(buf[i:]))
	}
}

// WriteOdd folds a buffer of any length into the running sum. A trailing
// unpaired byte is treated as the high byte of a 16-bit word whose low
// byte is zero, per RFC 1071 §4.1.
func (c *CRC791) WriteOdd(buf []byte) {
	even := len(buf) &^ 1
	c.Write(buf[:even])
	if even != len(buf) {
		c.sum += uint32(buf[even]) << 8
	}
}

// Sum16 folds carries out of the upper 16 bits until none remain and
// returns the one's complement of the result: the finished checksum.
func (c *CRC791) Sum16() uint16 {
	sum := c.sum
	for sum>>16 != 0 {
		sum = sum&0xffff + sum>>16
	}
	return ^uint16(sum)
}

// NeverZeroChecksum returns 0xFFFF in place of a computed checksum of
// exactly zero, since 0x0000 and 0xFFFF are the same value under one's
// complement arithmetic and RFC 768 reserves zero to mean "no checksum
// computed".
func NeverZeroChecksum(sum16 uint16) uint16 {
	if sum16 == 0 {
		return 0xffff
	}
	return sum16
}
