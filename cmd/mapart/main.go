// Command mapart turns images into map art build scripts.
//
// Usage:
//
//	mapart convert [flags] <image>   write (and optionally upload) a script
//	mapart preview [flags] <image>   show the quantized map in the terminal
//	mapart palette [flags]           list the block palette
//	mapart serve [flags]             run the web front end
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:               "mapart",
	Short:             "Turn images into map art build scripts",
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "warn", "verbosity of logging output")
	rootCmd.PersistentFlags().Bool("log-as-json", false, "change logging format to JSON")
	rootCmd.AddCommand(convertCmd, previewCmd, paletteCmd, serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// setup configures the default slog logger from the persistent flags.
func setup(cmd *cobra.Command, _ []string) error {
	logLevel, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return fmt.Errorf("get log-level flag: %w", err)
	}
	logAsJSON, err := cmd.Flags().GetBool("log-as-json")
	if err != nil {
		return fmt.Errorf("get log-as-json flag: %w", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}

	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: level}
	if logAsJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
	return nil
}
