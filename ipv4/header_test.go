package ipv4

import (
	"math/rand"
	"testing"

	"github.com/ironcurve/lneto"
)

func randomHeader(rng *rand.Rand) Header {
	var h Header
	h.VersionAndIHL = DefaultVersionAndIHL
	h.ToS = NewToS(DSCPStandard, 0)
	h.TotalLength = uint16(rng.Intn(1 << 16))
	h.ID = uint16(rng.Intn(1 << 16))
	h.Flags = DefaultFlags
	h.TTL = uint8(rng.Intn(256))
	h.Protocol = lneto.IPProtoUDP
	rng.Read(h.Source[:])
	rng.Read(h.Destination[:])
	h.Checksum = h.CalculateChecksum()
	return h
}

func TestHeaderRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		want := randomHeader(rng)
		buf := want.AppendBinary(nil)
		if len(buf) != ByteLen {
			t.Fatalf("got %d bytes, want %d", len(buf), ByteLen)
		}
		got, err := ParseHeader(buf)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("round trip mismatch: got %+v want %+v", got, want)
		}
		if err := got.VerifyChecksum(); err != nil {
			t.Fatalf("VerifyChecksum: %v", err)
		}
	}
}

func TestHeaderShortBuffer(t *testing.T) {
	_, err := ParseHeader(make([]byte, ByteLen-1))
	if err != lneto.ErrBufferTooShort {
		t.Fatalf("got %v, want ErrBufferTooShort", err)
	}
	_, err = ParseHeader(make([]byte, ByteLen+1))
	if err != lneto.ErrBufferTooLong {
		t.Fatalf("got %v, want ErrBufferTooLong", err)
	}
}

func TestHeaderUnsupportedIHL(t *testing.T) {
	buf := make([]byte, ByteLen)
	buf[0] = byte(NewVersionAndIHL(4, 6))
	_, err := ParseHeader(buf)
	if err != lneto.ErrUnsupportedIHL {
		t.Fatalf("got %v, want ErrUnsupportedIHL", err)
	}
}

func TestChecksumDetectsCorruption(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	h := randomHeader(rng)
	buf := h.AppendBinary(nil)
	buf[8] ^= 0xff // flip TTL
	got, err := ParseHeader(buf)
	if err != nil {
		t.Fatal(err)
	}
	if err := got.VerifyChecksum(); err != lneto.ErrChecksumMismatch {
		t.Fatalf("got %v, want ErrChecksumMismatch", err)
	}
}

func TestVersionAndIHLBits(t *testing.T) {
	v := NewVersionAndIHL(4, 5)
	if v.Version() != 4 || v.IHL() != 5 || v.HeaderLengthBytes() != 20 {
		t.Fatalf("unexpected decode of %08b", v)
	}
}

func TestFlagsBits(t *testing.T) {
	f := DefaultFlags.WithFragmentOffset(37).WithMoreFragments(true)
	if !f.DontFragment() {
		t.Fatal("expected DF set")
	}
	if !f.MoreFragments() {
		t.Fatal("expected MF set")
	}
	if f.FragmentOffset() != 37 {
		t.Fatalf("got offset %d, want 37", f.FragmentOffset())
	}
}

func TestToSBits(t *testing.T) {
	tos := NewToS(DSCPRealTime, 0b10)
	if tos.DSCP() != DSCPRealTime {
		t.Fatalf("got DSCP %d, want %d", tos.DSCP(), DSCPRealTime)
	}
	if tos.ECN() != 0b10 {
		t.Fatalf("got ECN %d, want 2", tos.ECN())
	}
}
