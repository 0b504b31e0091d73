package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hookline/hookline/internal/config"
	"github.com/hookline/hookline/internal/discord"
	"github.com/hookline/hookline/internal/forge"
	"github.com/hookline/hookline/internal/logging"
	"github.com/hookline/hookline/internal/policy"
	"github.com/hookline/hookline/internal/relay"
)

var relayCmd = &cobra.Command{
	Use:   "relay <payload.json>",
	Short: "Process one webhook event and relay it to Discord",
	Long: `Reads a single webhook event payload from the given JSON file, classifies
it, applies the filter policy, and delivers the rendered message to the staff
or external channel.

All failures are logged to the rotating log file; the command always exits 0
so the calling hook never sees a delivery problem as its own failure.`,
	Args: cobra.ExactArgs(1),
	RunE: runRelay,
}

func runRelay(cmd *cobra.Command, args []string) error {
	// Every failure from here on is logged and swallowed: the process exit
	// code never reflects event-handling problems, so the calling hook does
	// not retry or alert on its own.
	cfg, err := config.Load(cfgFile)
	if err != nil {
		logging.Setup(config.LogConfig{Path: config.DefaultLogPath}, verbose)
		slog.Error("can not handle event", "error", fmt.Errorf("loading config: %w", err))
		return nil
	}

	logging.Setup(cfg.Log, verbose)

	if err := relayOne(cfg, args[0]); err != nil {
		slog.Error("can not handle event", "error", err)
	}
	return nil
}

func relayOne(cfg *config.Config, payloadPath string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	raw, err := os.ReadFile(payloadPath)
	if err != nil {
		return fmt.Errorf("reading payload: %w", err)
	}

	pol := policy.Default()
	if cfg.Policy.Path != "" {
		pol, err = policy.Load(cfg.Policy.Path)
		if err != nil {
			return err
		}
	}

	checker, err := forge.New(cfg.Forge)
	if err != nil {
		return err
	}

	handler := relay.NewHandler(
		policy.NewFilter(pol, checker),
		discord.NewDispatcher(discord.NewClient()),
		cfg.Channels.StaffURL,
		cfg.Channels.ExternalURL,
	)

	return handler.Handle(context.Background(), raw)
}
