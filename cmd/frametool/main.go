// Command frametool builds, decodes, and serves Ethernet/IPv4/UDP/ARP/
// DHCPINFORM frames.
package main

import "github.com/ironcurve/lneto/cmd/frametool/commands"

func main() {
	commands.Execute()
}
