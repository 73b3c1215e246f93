package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xvierd/skycast/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the current configuration",
	Long:  `Show the values loaded from ~/.skycast/config.toml.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := app.config
		out := cmd.OutOrStdout()

		onOff := func(b bool) string {
			if b {
				return "on"
			}
			return "off"
		}
		notif := onOff(cfg.Notifications.Enabled)
		if cfg.Notifications.Enabled && cfg.Notifications.Sound {
			notif = "on (with sound)"
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Current configuration:")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "    Banner duration:   %s\n", cfg.BannerDuration())
		fmt.Fprintf(out, "    Contacts:          %s\n", strings.Join(cfg.ContactList(), ", "))
		fmt.Fprintf(out, "    Star field:        %s (density %d)\n", onOff(cfg.Starfield.Enabled), cfg.Starfield.Density)
		fmt.Fprintf(out, "    Notifications:     %s\n", notif)
		fmt.Fprintf(out, "    Data directory:    %s\n", cfg.Storage.DataDir)
		fmt.Fprintf(out, "    Debug logging:     %s\n", onOff(cfg.Log.Debug))
		fmt.Fprintln(out)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting and save it",
	Long: `Change a setting and save it to the config file.

Keys: banner.duration, notifications.enabled, notifications.sound,
log.debug, starfield.density`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.config.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := config.Save(app.config); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s = %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSetCmd)
}
