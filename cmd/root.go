// Package cmd provides the CLI commands for the Skycast application.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/xvierd/skycast/internal/adapters/tui"
	"github.com/xvierd/skycast/internal/domain"
	"github.com/xvierd/skycast/internal/logger"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	dbPath     string
	debugMode  bool
	secretMode bool
	bannerFlag string
	noNotify   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "skycast",
	Short: "Skycast - a weekly weather forecast for your terminal",
	Long: `Skycast shows the current conditions, a seven day forecast and a few
summary tiles in a full-screen terminal view.

Run "skycast" with no arguments to open the forecast screen.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices(cmd != cmd.Root())
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return cleanupServices()
	},
	RunE: runScreen,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the forecast cache (default: ~/.skycast/forecast.db)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Write debug logs")
	rootCmd.Flags().BoolVar(&secretMode, "secret", false, "Start with secret mode on")
	rootCmd.Flags().StringVar(&bannerFlag, "banner", "", "How long confirmations stay on screen, e.g. 3s")
	rootCmd.Flags().BoolVar(&noNotify, "no-notify", false, "Keep confirmations off the desktop notification center")

	// Set version - cobra handles --version automatically
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("Skycast\nVersion: {{.Version}}\n")

	rootCmd.AddCommand(forecastCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(mcpCmd)
}

// setupSignalHandler sets up a context that cancels on interrupt signals.
func setupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return ctx
}

// runScreen opens the full-screen forecast.
func runScreen(cmd *cobra.Command, args []string) error {
	cfg := *app.config
	if bannerFlag != "" {
		if err := cfg.Set("banner.duration", bannerFlag); err != nil {
			return fmt.Errorf("invalid --banner: %w", err)
		}
	}

	ctx := setupSignalHandler()
	forecast, err := app.forecast.GetForecast(ctx)
	if err != nil {
		return fmt.Errorf("failed to load forecast: %w", err)
	}

	if noNotify {
		app.notifier.SetEnabled(false)
	}

	screen := tui.NewScreen(&cfg, secretMode)
	screen.SetReload(func() (domain.Forecast, error) {
		f, err := app.forecast.GetForecast(ctx)
		if err != nil {
			logger.Error("forecast reload failed", "err", err)
		}
		return f, err
	})
	screen.SetOnConfirm(func(c domain.Confirmation) {
		if err := app.notifier.NotifyConfirmation(c); err != nil {
			logger.Warn("notification failed", "err", err)
		}
	})

	logger.Debug("opening forecast screen", "banner", cfg.BannerDuration())
	return screen.Run(ctx, forecast)
}
