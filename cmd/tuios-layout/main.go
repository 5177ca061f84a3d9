// Package main implements tuios-layout, a driver for the tiling layout
// engine. It runs .tape scripts of window-management commands against a
// container tree and prints or steps through the resulting layouts.
package main

import (
	"context"
	"fmt"
	"os"

	"charm.land/log/v2"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/Gaurav-Gosain/tuios-layout/internal/config"
	"github.com/Gaurav-Gosain/tuios-layout/internal/logging"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Global flags
var (
	debugMode  bool
	configPath string
)

var logger = logging.New("cli")

func main() {
	rootCmd := &cobra.Command{
		Use:   "tuios-layout",
		Short: "Tiling layout engine for TUIOS",
		Long: `tuios-layout - tiling layout engine

Maintains the container tree of a tiling window manager: windows nested in
splits, sized proportionally, kept consistent as they are opened, closed and
moved. Scripts of window-management commands (.tape files) drive the tree.`,
		Example: `  # Run a script and print the final tree
  tuios-layout run demo.tape

  # Also print window rectangles for the current terminal size
  tuios-layout run demo.tape --layout

  # Step through a script interactively
  tuios-layout play demo.tape

  # Check a script for syntax errors
  tuios-layout validate demo.tape`,
		Version:      version,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: XDG config location)")

	var runVerbose, runDelays, runLayout bool
	runCmd := &cobra.Command{
		Use:   "run <file.tape>",
		Short: "Run a tape script headlessly",
		Long: `Run a tape script without a UI

Commands are applied in order and the run stops at the first command that
fails. The final container tree is printed when the script ends.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(cmd.Context(), args[0], runOptions{
				verbose: runVerbose,
				delays:  runDelays,
				layout:  runLayout,
			})
		},
	}
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Log every command as it runs")
	runCmd.Flags().BoolVar(&runDelays, "delays", false, "Honour @<duration> delays in the script")
	runCmd.Flags().BoolVar(&runLayout, "layout", false, "Print window rectangles for the terminal size")

	var recordPath string
	playCmd := &cobra.Command{
		Use:   "play [file.tape]",
		Short: "Step through a tape script interactively",
		Long: `Step through a tape script one command at a time

Window-management keys also work while playing, so a script can be used as
a starting point and extended by hand. Use --record to save the session.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var file string
			if len(args) == 1 {
				file = args[0]
			}
			return playScript(cmd.Context(), file, recordPath)
		},
	}
	playCmd.Flags().StringVarP(&recordPath, "record", "r", "", "Write the played session to this .tape file on exit")

	validateCmd := &cobra.Command{
		Use:   "validate <file.tape>",
		Short: "Check a tape script for syntax errors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateScript(args[0])
		},
	}

	rootCmd.AddCommand(runCmd, playCmd, validateCmd, newConfigCmd())

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads --config when given, otherwise the user config, falling
// back to defaults if the user config is broken. It also applies the log
// level.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		loaded, err := config.LoadUserConfig()
		if err != nil {
			logger.Warn("Failed to load config, using defaults", "err", err)
			loaded = config.DefaultConfig()
		}
		cfg = loaded
	}

	logging.SetLevelString(cfg.Log.Level)
	if debugMode {
		logging.SetLevel(log.DebugLevel)
	}
	return cfg, nil
}

// resolveConfigPath returns --config or the XDG location.
func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	path, err := config.GetConfigPath()
	if err != nil {
		return "", fmt.Errorf("could not determine config path: %w", err)
	}
	return path, nil
}
