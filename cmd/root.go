package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobolt/internal/config"
	"github.com/alexiusacademia/gobolt/internal/version"
)

var (
	verbose bool
	envFile string

	// Set before any subcommand runs
	cfg    = config.Default()
	logger = slog.Default()
)

var rootCmd = &cobra.Command{
	Use:   "gobolt",
	Short: "Bolted Steel Connection Capacity Checker",
	Long: `gobolt - Go Bolted Connection Checker

A CLI tool for the capacity check of bolted steel connections
based on AISC 360 allowable strength design (ASD).

For each connection between two members this tool calculates:
  - Bolt shear capacity of the bolt group
  - Block shear rupture of the connected ply
  - Bolt bearing on the connected ply
  - Bolt tensile capacity (reported only)

and compares the governing capacity with the demand from the load case.

Settings are read from a .env file and GOBOLT_* environment variables.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		loaded, err := config.Load(envFile)
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", envFile, err)
		}
		cfg = loaded

		level := cfg.LogLevel
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
		logger.Debug("configuration loaded", "env_file", envFile, "id_scheme", cfg.IDScheme, "bolt_fu", cfg.BoltFu)
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gobolt v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Bolted Connection Checker                            ║")
		fmt.Printf("  ║   %-56s║\n", version.Author+" ©  "+version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the capacity check of bolted steel connections")
		fmt.Println("  based on AISC 360 allowable strength design (ASD).")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Bolt shear, block shear and bearing checks with governing ratio")
		fmt.Println("    • Load case reduction to a single demand, ASCE 7 ASD combinations")
		fmt.Println("    • Project files in YAML or JSON with text, JSON, PDF and XLSX reports")
		fmt.Println("    • Capacity charts and bolt pattern plots (png, svg, pdf)")
		fmt.Println("    • HTTP API for evaluating project documents")
		fmt.Println()
		fmt.Println("  Use 'gobolt --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug messages to stderr")
	rootCmd.PersistentFlags().StringVar(&envFile, "env", config.DefaultEnvFile, "Path to the settings file")
}
