// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/calpick/calpick/internal/config"
	"github.com/calpick/calpick/internal/ui"
)

var (
	// Global flags
	configPath    string
	weekStartFlag string
	formatFlag    string
	patternFlag   string
	minFlag       string
	maxFlag       string

	// Resolved values
	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "calpick",
	Short: "Calpick - a calendar date picker for the terminal",
	Long: `Calpick picks single dates and date ranges from an interactive
month calendar, with bounds, disabled days, presets, and custom output
formats. It reads its defaults from a TOML config and every setting can
be overridden per invocation with flags.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Commands that never touch the configuration.
		switch cmd.Name() {
		case "completion", "help", "version":
			return nil
		}
		if cmd.Parent() != nil && cmd.Parent().Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = loadGlobalConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyFlagOverrides(cfg)
		ui.ConfigureTheme(cfg.UI.Accent)
		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&weekStartFlag, "week-start", "", "First day of the week: monday or sunday")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "", "Output format: native, iso, or custom")
	rootCmd.PersistentFlags().StringVar(&patternFlag, "pattern", "", "Token pattern for custom format, e.g. DD/MM/YYYY")
	rootCmd.PersistentFlags().StringVar(&minFlag, "min", "", "Earliest selectable date (YYYY-MM-DD)")
	rootCmd.PersistentFlags().StringVar(&maxFlag, "max", "", "Latest selectable date (YYYY-MM-DD)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for agent/script use)")
}

// getConfig returns the loaded config.
func getConfig() *config.Config {
	return cfg
}

func loadGlobalConfig() (*config.Config, error) {
	var loaded *config.Config
	var err error
	if strings.TrimSpace(configPath) != "" {
		loaded, err = config.LoadFrom(configPath)
	} else {
		loaded, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if loaded == nil {
		loaded = &config.Config{}
	}
	return loaded, nil
}

// applyFlagOverrides folds per-invocation flags into the loaded config so
// every command reads one resolved source of truth.
func applyFlagOverrides(c *config.Config) {
	if weekStartFlag != "" {
		c.WeekStart = weekStartFlag
	}
	if formatFlag != "" {
		c.Format = formatFlag
	}
	if patternFlag != "" {
		c.Pattern = patternFlag
		if c.Format == "" {
			c.Format = "custom"
		}
	}
	if minFlag != "" {
		c.Min = minFlag
	}
	if maxFlag != "" {
		c.Max = maxFlag
	}
}

// nowFunc is swapped in tests to pin the clock.
var nowFunc = time.Now
