/*
Package cmd implements all CLI subcommands for robson-go.

The root command serves as the entry point and coordinator for all subcommands.
*/
package cmd

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ldamasio/robson/cli/internal/config"
	"github.com/ldamasio/robson/cli/internal/log"
	"github.com/ldamasio/robson/cli/internal/output"
)

var (
	// Global flags
	jsonOutput   bool
	outputFormat string
	verbose      bool
	configFile   string

	// settings is loaded before any subcommand runs.
	settings *config.Settings

	rootCmd = &cobra.Command{
		Use:   "robson-go",
		Short: "Robson - Cryptocurrency trading platform CLI",
		Long: `Robson is an open-source cryptocurrency trading platform.

This CLI provides access to trading operations, reporting, and agentic workflows
that separate planning, validation, and execution.

Design philosophy:
  - Plan before you act
  - Validate before you commit
  - Execute with intent

Legacy mode:
  The CLI maintains backward compatibility with legacy flags (--help, --buy, etc.)
  which are translated by the robson router before they reach this binary.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: loadSettings,
	}
)

// Execute runs the root command. SIGINT and SIGTERM cancel the command
// context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var coded interface{ ExitCode() int }
	if errors.As(err, &coded) && coded.ExitCode() > 0 {
		return coded.ExitCode()
	}
	return 1
}

func loadSettings(cmd *cobra.Command, _ []string) error {
	if err := output.Validate(format()); err != nil {
		return err
	}

	s, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return err
	}
	settings = s

	log.Init(s.Verbose)
	if s.NoColor {
		color.NoColor = true
	}
	if s.ConfigFile != "" {
		log.GetLogger().Debug("using config", "file", s.ConfigFile)
	}
	return nil
}

// format resolves --json and --output into one output format.
func format() string {
	if jsonOutput {
		return output.FormatJSON
	}
	return outputFormat
}

// render prints payload when a structured format is selected and falls
// back to the text screen otherwise.
func render(cmd *cobra.Command, payload interface{}, text func(io.Writer) error) error {
	if f := format(); output.Structured(f) {
		return output.Print(cmd.OutOrStdout(), f, payload)
	}
	return text(cmd.OutOrStdout())
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format for automation/agents")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", output.FormatText, "Output format (text, json, yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, config.KeyVerbose, "v", false, "Enable verbose logging (env: ROBSON_VERBOSE)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to the configuration file (env: ROBSON_CONFIG)")

	rootCmd.SetHelpCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(sayCmd)
	rootCmd.AddCommand(buyCmd)
	rootCmd.AddCommand(sellCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(executeCmd)
}
