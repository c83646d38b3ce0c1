package dhcpv4

import (
	"testing"

	"github.com/ironcurve/lneto"
)

func TestBuildInformRoundTrip(t *testing.T) {
	cfg := InformConfig{
		XID:          0xdeadbeef,
		Secs:         3,
		Broadcast:    false,
		ClientAddr:   lneto.IPv4Addr{10, 0, 0, 120},
		ClientHWAddr: lneto.MacAddr{0x02, 0xaf, 0xff, 0x1a, 0xe5, 0x3c},
		Hostname:     "probe",
	}
	var optionsBuf [OptionsByteLen]byte
	want, err := BuildInform(cfg, &optionsBuf)
	if err != nil {
		t.Fatal(err)
	}
	buf := want.AppendBinary(nil)
	if len(buf) != want.ByteLen() {
		t.Fatalf("got %d bytes, want %d", len(buf), want.ByteLen())
	}
	if want.ByteLen() != HeaderByteLen+OptionsByteLen {
		t.Fatalf("got ByteLen %d, want fixed length %d", want.ByteLen(), HeaderByteLen+OptionsByteLen)
	}

	got, err := ParseMessage(buf)
	if err != nil {
		t.Fatal(err)
	}
	if got.Op != OpRequest {
		t.Fatalf("got op %v, want OpRequest", got.Op)
	}
	if got.XID != cfg.XID || got.Secs != cfg.Secs {
		t.Fatalf("xid/secs mismatch: got %+v", got)
	}
	if got.ClientAddr != cfg.ClientAddr || got.ClientHWAddr != cfg.ClientHWAddr {
		t.Fatalf("address mismatch: got %+v", got)
	}
	mt, found := got.MessageType()
	if !found || mt != MsgInform {
		t.Fatalf("got message type %v found=%v, want INFORM", mt, found)
	}
}

func TestBuildInformFixedLengthRegardlessOfHostname(t *testing.T) {
	var shortBuf, longBuf [OptionsByteLen]byte
	short, err := BuildInform(InformConfig{XID: 1}, &shortBuf)
	if err != nil {
		t.Fatal(err)
	}
	long, err := BuildInform(InformConfig{XID: 1, Hostname: "a-fairly-long-hostname"}, &longBuf)
	if err != nil {
		t.Fatal(err)
	}
	if short.ByteLen() != long.ByteLen() {
		t.Fatalf("ByteLen varies with hostname length: %d vs %d", short.ByteLen(), long.ByteLen())
	}
}

func TestBuildInformRejectsOversizedInputs(t *testing.T) {
	var buf [OptionsByteLen]byte
	longHostname := make([]byte, MaxHostnameLen+1)
	for i := range longHostname {
		longHostname[i] = 'a'
	}
	_, err := BuildInform(InformConfig{XID: 1, Hostname: string(longHostname)}, &buf)
	if err != ErrHostnameTooLong {
		t.Fatalf("got %v, want ErrHostnameTooLong", err)
	}

	longPRL := make([]OptNum, MaxParameterRequestList+1)
	_, err = BuildInform(InformConfig{XID: 1, ParameterRequestList: longPRL}, &buf)
	if err != ErrParameterRequestListTooLong {
		t.Fatalf("got %v, want ErrParameterRequestListTooLong", err)
	}
}

func TestBuildInformDefaultParameterRequestList(t *testing.T) {
	var optionsBuf [OptionsByteLen]byte
	m, err := BuildInform(InformConfig{XID: 1}, &optionsBuf)
	if err != nil {
		t.Fatal(err)
	}
	var gotPRL []byte
	err = m.ForEachOption(func(opt OptNum, data []byte) error {
		if opt == OptParameterRequestList {
			gotPRL = append([]byte{}, data...)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(gotPRL) != len(DefaultParameterRequestList) {
		t.Fatalf("got %d requested params, want %d", len(gotPRL), len(DefaultParameterRequestList))
	}
	for i, opt := range DefaultParameterRequestList {
		if gotPRL[i] != byte(opt) {
			t.Fatalf("param %d: got %d, want %d", i, gotPRL[i], opt)
		}
	}
}

func TestParseMessageBadMagicCookie(t *testing.T) {
	var optionsBuf [OptionsByteLen]byte
	m, err := BuildInform(InformConfig{XID: 1}, &optionsBuf)
	if err != nil {
		t.Fatal(err)
	}
	buf := m.AppendBinary(nil)
	buf[FixedByteLen] ^= 0xff
	_, err = ParseMessage(buf)
	if err != lneto.ErrLengthFieldInconsistent {
		t.Fatalf("got %v, want ErrLengthFieldInconsistent", err)
	}
}

func TestParseMessageShortBuffer(t *testing.T) {
	_, err := ParseMessage(make([]byte, HeaderByteLen-1))
	if err != lneto.ErrBufferTooShort {
		t.Fatalf("got %v, want ErrBufferTooShort", err)
	}
}

func TestForEachOptionStopsAtEnd(t *testing.T) {
	var optionsBuf [OptionsByteLen]byte
	m, err := BuildInform(InformConfig{XID: 1, Hostname: "x"}, &optionsBuf)
	if err != nil {
		t.Fatal(err)
	}
	var tags []OptNum
	err = m.ForEachOption(func(opt OptNum, data []byte) error {
		tags = append(tags, opt)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(tags) == 0 {
		t.Fatal("expected at least one option")
	}
	for _, tag := range tags {
		if tag == OptEnd {
			t.Fatal("OptEnd should not be passed to callback")
		}
	}
}
