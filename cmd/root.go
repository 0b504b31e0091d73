package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var (
	cfgFile string
	verbose bool
)

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "hookline",
	Short: "Relay repository webhook events to Discord channels",
	Long: `hookline classifies a forge webhook event, filters it by actor, repository,
and author-permission policy, and relays a rendered message to the staff or
external Discord channel.

Get started:
  hookline relay <payload.json>    Process one webhook event
  hookline preview <payload.json>  Render an event locally without sending
  hookline doctor                  Verify configuration and credentials`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ~/.hookline/config.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable verbose/debug logging")

	rootCmd.Version = Version
	rootCmd.AddCommand(
		relayCmd,
		previewCmd,
		doctorCmd,
	)
}
