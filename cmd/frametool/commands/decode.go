package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ironcurve/lneto"
	"github.com/ironcurve/lneto/frame"
)

func decodeCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a hex-encoded Ethernet frame and print its fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := input
			if raw == "" {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				raw = string(data)
			}
			buf, err := hex.DecodeString(strings.TrimSpace(raw))
			if err != nil {
				return fmt.Errorf("invalid hex input: %w", err)
			}
			return decodeFrame(cmd, buf)
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "hex-encoded frame; reads stdin if omitted")
	return cmd
}

func decodeFrame(cmd *cobra.Command, buf []byte) error {
	if iuf, err := frame.ParseEthernetIPv4UDPFrame(buf); err == nil {
		checksumErr := iuf.VerifyChecksums()
		slog.Info("decoded ethernet/ipv4/udp frame",
			"src_mac", iuf.EthHeader.Source,
			"dst_mac", iuf.EthHeader.Destination,
			"src_ip", iuf.IPv4UDP.IPHeader.Source,
			"dst_ip", iuf.IPv4UDP.IPHeader.Destination,
			"src_port", iuf.IPv4UDP.UDP.Header.SourcePort,
			"dst_port", iuf.IPv4UDP.UDP.Header.DestinationPort,
			"payload_len", iuf.IPv4UDP.UDP.Payload.ByteLen(),
			"checksum_ok", checksumErr == nil,
		)
		cmd.Printf("Ethernet/IPv4/UDP: %s:%d -> %s:%d, %d byte payload, checksum_ok=%v\n",
			iuf.IPv4UDP.IPHeader.Source, iuf.IPv4UDP.UDP.Header.SourcePort,
			iuf.IPv4UDP.IPHeader.Destination, iuf.IPv4UDP.UDP.Header.DestinationPort,
			iuf.IPv4UDP.UDP.Payload.ByteLen(), checksumErr == nil)
		return nil
	}
	if af, err := frame.ParseEthernetARPFrame(buf); err == nil {
		slog.Info("decoded ethernet/arp frame",
			"operation", af.ARP.Operation,
			"sender_hw", af.ARP.SenderHW,
			"sender_proto", af.ARP.SenderProto,
			"target_proto", af.ARP.TargetProto,
		)
		cmd.Printf("Ethernet/ARP: %s sender=%s/%s target=%s\n",
			af.ARP.Operation, af.ARP.SenderHW, af.ARP.SenderProto, af.ARP.TargetProto)
		return nil
	}
	return lneto.ErrUnsupportedProtocol
}
