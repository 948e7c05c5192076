/*
Package cmd - Legacy subcommands

These commands keep the vocabulary of the original robson entry point
(--help, --report, --say, --buy, --sell). The robson router rewrites those
flags to the subcommands below. The screens themselves are shared with the
legacy dispatcher build.
*/
package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/ldamasio/robson/cli/internal/screen"
)

// helpCmd displays help information. Given a command name it shows that
// command's usage instead.
var helpCmd = &cobra.Command{
	Use:   "help [command]",
	Short: "Display help information",
	Long: `Display comprehensive help information about Robson trading platform.

This command provides guidance on:
  - Available commands and their usage
  - Trading strategies and risk management
  - Configuration and setup
  - API integration`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			target, _, err := cmd.Root().Find(args)
			if err == nil && target != nil && target != cmd.Root() {
				return target.Help()
			}
		}
		return render(cmd, screen.HelpPayload(), screen.Help)
	},
}

// reportCmd generates trading reports
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate trading report",
	Long: `Generate comprehensive trading reports including:
  - Current positions
  - Profit/Loss analysis
  - Trade history
  - Performance metrics`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return render(cmd, screen.ReportPayload(), screen.Report)
	},
}

// sayCmd echoes a message (for testing)
var sayCmd = &cobra.Command{
	Use:   "say [message...]",
	Short: "Echo a message (testing)",
	Long: `Simple echo command for testing CLI functionality.

Without a message it prints the default greeting, as the legacy --say flag does.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		message := screen.SayMessage(args)
		return render(cmd, screen.SayPayload(message), func(w io.Writer) error {
			return screen.Say(w, message)
		})
	},
}

// buyCmd executes a buy order
var buyCmd = orderCommand("buy", "Execute buy order", `Execute a buy order for a cryptocurrency pair.

Arguments:
  symbol    Trading pair (e.g., BTCUSDT)
  quantity  Amount to buy
  price     Limit price (optional, uses market price if omitted)

Example:
  robson buy BTCUSDT 0.001 50000`)

// sellCmd executes a sell order
var sellCmd = orderCommand("sell", "Execute sell order", `Execute a sell order for a cryptocurrency pair.

Arguments:
  symbol    Trading pair (e.g., BTCUSDT)
  quantity  Amount to sell
  price     Limit price (optional, uses market price if omitted)

Example:
  robson sell BTCUSDT 0.001 55000`)

func orderCommand(side, short, long string) *cobra.Command {
	return &cobra.Command{
		Use:   side + " [symbol] [quantity] [price]",
		Short: short,
		Long:  long,
		Args:  cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return render(cmd, screen.OrderPayload(side, args), func(w io.Writer) error {
				return screen.Order(w, side, args)
			})
		},
	}
}
