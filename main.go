// package main is the entry point for the gmeek-pub tool
package main

import (
	"log/slog"
	"os"

	"github.com/alan/gmeek-pub/cmd"
	configcmd "github.com/alan/gmeek-pub/cmd/config"
	publishcmd "github.com/alan/gmeek-pub/cmd/publish"
	"github.com/alan/gmeek-pub/internal/config"
	"github.com/alan/gmeek-pub/internal/prompt"
	"github.com/spf13/cobra"
)

func main() {
	var configFile string
	var logLevel string
	var logFormat string

	rootCmd := publishcmd.NewPublishCmd(&configFile, config.LoadOptionalConfig, prompt.Readline{})
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		setupLogger(logLevel, logFormat)
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", cmd.DefaultConfigFile, "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&logFormat, "log-format", "f", "text", "Log format (text, json)")

	rootCmd.AddCommand(configcmd.NewConfigCmd(&configFile, config.LoadOptionalConfig, config.SaveConfig))

	if err := rootCmd.Execute(); err != nil {
		publishcmd.ReportError(os.Stdout, err)
		os.Exit(1)
	}
}

func setupLogger(level, format string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	}

	slog.SetDefault(slog.New(handler))
}
