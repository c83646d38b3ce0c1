// Package commands implements frametool's cobra command tree: building
// and decoding frames from the command line, and a serve mode that
// answers ARP requests and logs DHCPINFORM traffic on a Linux TAP device. Grounded on
// the sibling gobfdctl CLI's command-tree layout.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var outputFormat string

// rootCmd is the top-level cobra command for frametool.
var rootCmd = &cobra.Command{
	Use:           "frametool",
	Short:         "Build, decode, and serve Ethernet/IPv4/UDP/ARP/DHCPINFORM frames",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "hex", "output format; not read by any subcommand: build commands always print hex, decode always prints a text summary")

	rootCmd.AddCommand(buildUDPCmd())
	rootCmd.AddCommand(buildARPCmd())
	rootCmd.AddCommand(buildDHCPInformCmd())
	rootCmd.AddCommand(decodeCmd())
	rootCmd.AddCommand(serveCmd())
}

// Execute runs the root command and exits with code 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
