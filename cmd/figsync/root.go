package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// logger is replaced once flags are parsed.
var logger = slog.Default()

var rootCmd = &cobra.Command{
	Use:   "figsync",
	Short: "Keep portfolio design tokens and a Figma file in step",
	Long: `Extract the portfolio's design tokens, push them to Figma as a generated
document, and poll watched Figma nodes for values designers changed.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		logger = newLogger(getBool("verbose", false))
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	pf := rootCmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "Enable debug logging")
	pf.Bool("quiet", false, "Suppress all output (exit code only)")
	pf.Bool("color", false, "Force color output")
	pf.String("config", defaultConfigPath, "Config file path")
	pf.String("token", "", "Figma access token (default: $FIGMA_ACCESS_TOKEN)")
	pf.String("file-key", "", "Figma file key or URL (default: $FIGMA_FILE_KEY)")
	pf.String("base-url", "", "Figma API base URL")
	pf.Duration("timeout", 0, "Per-request timeout (default: 10s)")
	pf.String("auth-scheme", "", "Token scheme: token|bearer")

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(pushCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(nodesCmd)
	rootCmd.AddCommand(imagesCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
