package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironcurve/lneto"
	"github.com/ironcurve/lneto/arp"
	"github.com/ironcurve/lneto/dhcpv4"
	"github.com/ironcurve/lneto/ethernet"
	"github.com/ironcurve/lneto/frame"
	"github.com/ironcurve/lneto/ipv4"
	"github.com/ironcurve/lneto/udp"
)

func buildUDPCmd() *cobra.Command {
	var srcMAC, dstMAC, srcIP, dstIP, payloadHex string
	var srcPort, dstPort uint16
	var ttl uint8

	cmd := &cobra.Command{
		Use:   "build-udp",
		Short: "Build a complete Ethernet/IPv4/UDP frame",
		RunE: func(cmd *cobra.Command, args []string) error {
			srcMACAddr, err := parseMAC(srcMAC)
			if err != nil {
				return err
			}
			dstMACAddr, err := parseMAC(dstMAC)
			if err != nil {
				return err
			}
			srcIPAddr, err := parseIPv4(srcIP)
			if err != nil {
				return err
			}
			dstIPAddr, err := parseIPv4(dstIP)
			if err != nil {
				return err
			}
			payload, err := parseHexPayload(payloadHex)
			if err != nil {
				return err
			}

			udpLen := uint16(udp.ByteLen + len(payload))
			iuf := frame.IPv4UDPFrame{
				IPHeader: ipv4.Header{
					VersionAndIHL: ipv4.DefaultVersionAndIHL,
					ToS:           ipv4.NewToS(ipv4.DSCPStandard, 0),
					TotalLength:   uint16(ipv4.ByteLen) + udpLen,
					Flags:         ipv4.DefaultFlags,
					TTL:           ttl,
					Protocol:      lneto.IPProtoUDP,
					Source:        srcIPAddr,
					Destination:   dstIPAddr,
				},
				UDP: frame.UDPFrame{
					Header: udp.Header{
						SourcePort:      srcPort,
						DestinationPort: dstPort,
						Length:          udpLen,
					},
					Payload: lneto.NewByteArray(payload),
				},
			}
			iuf = iuf.ComputeChecksums()

			eth := frame.EthernetIPv4UDPFrame{
				EthHeader: ethernet.Header{
					Destination: dstMACAddr,
					Source:      srcMACAddr,
					EtherType:   lneto.EtherTypeIPv4,
				},
				IPv4UDP: iuf,
			}
			cmd.Println(hex.EncodeToString(eth.AppendBinary(nil)))
			return nil
		},
	}
	cmd.Flags().StringVar(&srcMAC, "src-mac", "02:00:00:00:00:01", "source MAC address")
	cmd.Flags().StringVar(&dstMAC, "dst-mac", "ff:ff:ff:ff:ff:ff", "destination MAC address")
	cmd.Flags().StringVar(&srcIP, "src-ip", "0.0.0.0", "source IPv4 address")
	cmd.Flags().StringVar(&dstIP, "dst-ip", "255.255.255.255", "destination IPv4 address")
	cmd.Flags().Uint16Var(&srcPort, "src-port", 0, "UDP source port")
	cmd.Flags().Uint16Var(&dstPort, "dst-port", 0, "UDP destination port")
	cmd.Flags().Uint8Var(&ttl, "ttl", 64, "IPv4 time-to-live")
	cmd.Flags().StringVar(&payloadHex, "payload", "", "payload bytes, hex-encoded")
	return cmd
}

func buildARPCmd() *cobra.Command {
	var op, srcMAC, srcIP, dstIP string

	cmd := &cobra.Command{
		Use:   "build-arp",
		Short: "Build a complete Ethernet/ARP frame",
		RunE: func(cmd *cobra.Command, args []string) error {
			srcMACAddr, err := parseMAC(srcMAC)
			if err != nil {
				return err
			}
			srcIPAddr, err := parseIPv4(srcIP)
			if err != nil {
				return err
			}
			dstIPAddr, err := parseIPv4(dstIP)
			if err != nil {
				return err
			}

			var payload arp.Payload
			var dstMACAddr lneto.MacAddr
			switch op {
			case "request":
				payload = arp.NewRequest(srcMACAddr, srcIPAddr, dstIPAddr)
				dstMACAddr = lneto.BroadcastMAC
			case "announce":
				payload = arp.NewAnnouncement(srcMACAddr, srcIPAddr)
				dstMACAddr = lneto.BroadcastMAC
			default:
				return fmt.Errorf("unknown --op %q: want request or announce", op)
			}

			eth := frame.EthernetARPFrame{
				EthHeader: ethernet.Header{
					Destination: dstMACAddr,
					Source:      srcMACAddr,
					EtherType:   lneto.EtherTypeARP,
				},
				ARP: payload,
			}
			cmd.Println(hex.EncodeToString(eth.AppendBinary(nil)))
			return nil
		},
	}
	cmd.Flags().StringVar(&op, "op", "request", "ARP operation: request or announce")
	cmd.Flags().StringVar(&srcMAC, "src-mac", "02:00:00:00:00:01", "sender MAC address")
	cmd.Flags().StringVar(&srcIP, "src-ip", "0.0.0.0", "sender IPv4 address")
	cmd.Flags().StringVar(&dstIP, "dst-ip", "0.0.0.0", "queried (target) IPv4 address")
	return cmd
}

func buildDHCPInformCmd() *cobra.Command {
	var clientMAC, clientIP, hostname string
	var xid uint32

	cmd := &cobra.Command{
		Use:   "build-dhcp-inform",
		Short: "Build a complete Ethernet/IPv4/UDP/DHCPINFORM frame",
		RunE: func(cmd *cobra.Command, args []string) error {
			clientMACAddr, err := parseMAC(clientMAC)
			if err != nil {
				return err
			}
			clientIPAddr, err := parseIPv4(clientIP)
			if err != nil {
				return err
			}

			var optionsBuf [dhcpv4.OptionsByteLen]byte
			msg, err := dhcpv4.BuildInform(dhcpv4.InformConfig{
				XID:          xid,
				ClientAddr:   clientIPAddr,
				ClientHWAddr: clientMACAddr,
				Hostname:     hostname,
			}, &optionsBuf)
			if err != nil {
				return err
			}
			payload := msg.AppendBinary(nil)
			udpLen := uint16(udp.ByteLen + len(payload))

			iuf := frame.IPv4UDPFrame{
				IPHeader: ipv4.Header{
					VersionAndIHL: ipv4.DefaultVersionAndIHL,
					TotalLength:   uint16(ipv4.ByteLen) + udpLen,
					Flags:         ipv4.DefaultFlags,
					TTL:           64,
					Protocol:      lneto.IPProtoUDP,
					Source:        clientIPAddr,
					Destination:   lneto.BroadcastIPv4,
				},
				UDP: frame.UDPFrame{
					Header: udp.Header{
						SourcePort:      dhcpv4.ClientPort,
						DestinationPort: dhcpv4.ServerPort,
						Length:          udpLen,
					},
					Payload: lneto.NewByteArray(payload),
				},
			}
			iuf = iuf.ComputeChecksums()

			eth := frame.EthernetIPv4UDPFrame{
				EthHeader: ethernet.Header{
					Destination: lneto.BroadcastMAC,
					Source:      clientMACAddr,
					EtherType:   lneto.EtherTypeIPv4,
				},
				IPv4UDP: iuf,
			}
			cmd.Println(hex.EncodeToString(eth.AppendBinary(nil)))
			return nil
		},
	}
	cmd.Flags().Uint32Var(&xid, "xid", 1, "DHCP transaction ID")
	cmd.Flags().StringVar(&clientMAC, "client-mac", "02:00:00:00:00:01", "client MAC address")
	cmd.Flags().StringVar(&clientIP, "client-ip", "0.0.0.0", "client's already-held IPv4 address")
	cmd.Flags().StringVar(&hostname, "hostname", "", "optional hostname option")
	return cmd
}
