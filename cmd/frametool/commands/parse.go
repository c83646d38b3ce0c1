package commands

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/ironcurve/lneto"
)

func parseMAC(s string) (lneto.MacAddr, error) {
	var addr lneto.MacAddr
	parts := strings.Split(s, ":")
	if len(parts) != 6 {
		return addr, fmt.Errorf("invalid MAC address %q: expected 6 colon-separated octets", s)
	}
	for i, part := range parts {
		v, err := strconv.ParseUint(part, 16, 8)
		if err != nil {
			return addr, fmt.Errorf("invalid MAC address %q: %w", s, err)
		}
		addr[i] = byte(v)
	}
	return addr, nil
}

func parseIPv4(s string) (lneto.IPv4Addr, error) {
	var addr lneto.IPv4Addr
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return addr, fmt.Errorf("invalid IPv4 address %q: expected 4 dot-separated octets", s)
	}
	for i, part := range parts {
		v, err := strconv.ParseUint(part, 10, 8)
		if err != nil {
			return addr, fmt.Errorf("invalid IPv4 address %q: %w", s, err)
		}
		addr[i] = byte(v)
	}
	return addr, nil
}

func parseHexPayload(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex payload: %w", err)
	}
	return b, nil
}
