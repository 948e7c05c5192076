/*
Package cmd - Margin trading commands

These commands provide real-time visibility into:
  - Account status (balances, equity)
  - Open positions with P&L
  - Margin levels and health
  - Operations and their movements

They delegate to Django management commands for the actual data fetching.
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ldamasio/robson/cli/internal/django"
)

var statusFlags struct {
	clientID int
	detailed bool
}

// statusCmd shows account status via Django
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show margin account status and positions overview",
	Long: `Display a comprehensive overview of your Robson trading account.

Shows:
  - Spot balances (USDC, BTC)
  - Isolated margin balances
  - Open positions with P&L
  - Total equity

This is a READ-ONLY command that fetches live data from Binance.

Examples:
  robson status                    # Quick overview
  robson status --detailed         # With position details
  robson status --client-id 2      # For specific client`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		djangoArgs := django.Args{}.
			Int("client-id", statusFlags.clientID).
			Flag("detailed", statusFlags.detailed)
		return djangoRunner(cmd).Run(cmd.Context(), "status", djangoArgs, "")
	},
}

var marginPositionsFlags struct {
	clientID int
	live     bool
	all      bool
	symbol   string
}

// marginPositionsCmd shows detailed margin positions via Django
var marginPositionsCmd = &cobra.Command{
	Use:   "margin-positions",
	Short: "Show detailed isolated margin positions",
	Long: `Display detailed information about your margin positions.

Shows for each position:
  - Entry price, current price, stop-loss
  - Quantity and leverage
  - Risk amount and percentage
  - Margin level and health status
  - Unrealized P&L
  - Binance order references

Examples:
  robson margin-positions                 # Open positions
  robson margin-positions --live          # With real-time prices
  robson margin-positions --all           # Include closed
  robson margin-positions --json          # JSON for automation
  robson margin-positions --symbol BTCUSDC`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := marginPositionsFlags
		djangoArgs := django.Args{}.
			Int("client-id", f.clientID).
			Flag("live", f.live).
			Flag("all", f.all).
			String("symbol", f.symbol).
			Flag("json", jsonOutput)
		return djangoRunner(cmd).Run(cmd.Context(), "positions", djangoArgs, "")
	},
}

var operationsFlags struct {
	clientID    int
	open        bool
	closed      bool
	operationID string
	limit       int
}

// operationsCmd shows operations with their movements
var operationsCmd = &cobra.Command{
	Use:   "operations",
	Short: "Show operations with all movements (audit trail)",
	Long: `Display trading operations with their complete movement history.

Shows for each operation:
  - Entry and exit trades
  - Transfers (Spot <-> Isolated Margin)
  - Borrows and repayments
  - Stop-loss orders
  - Fees charged

Examples:
  robson operations                 # All recent operations
  robson operations --open          # Only open operations
  robson operations --id OP-2024    # Specific operation
  robson operations --json          # JSON for automation`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := operationsFlags
		djangoArgs := django.Args{}.
			Int("client-id", f.clientID).
			Int("limit", f.limit).
			Flag("open", f.open).
			Flag("closed", f.closed).
			String("id", f.operationID).
			Flag("json", jsonOutput)
		return djangoRunner(cmd).Run(cmd.Context(), "operations", djangoArgs, "")
	},
}

var marginBuyFlags struct {
	capital     string
	stopPercent string
	stopPrice   string
	leverage    int
	symbol      string
	clientID    int
	live        bool
	confirm     bool
}

// marginBuyCmd opens a leveraged long position
var marginBuyCmd = &cobra.Command{
	Use:   "margin-buy",
	Short: "Open a leveraged LONG position with risk management",
	Long: `Open a leveraged LONG position on Binance Isolated Margin.

This command enforces the GOLDEN RULE:
  Position size = (1% of capital) / Stop distance

This ensures that if your stop-loss is hit, you lose at most 1% of your capital.

SAFE BY DEFAULT:
  - DRY-RUN is the default (simulation)
  - LIVE requires --live AND --confirm flags

Examples:
  # DRY-RUN (preview only)
  robson margin-buy --capital 100 --stop-percent 2 --leverage 3

  # LIVE execution
  robson margin-buy --capital 100 --stop-percent 2 --leverage 3 --live --confirm

  # With specific stop price
  robson margin-buy --capital 100 --stop-price 85000 --leverage 5 --live --confirm`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return djangoRunner(cmd).Run(cmd.Context(), "isolated_margin_buy", marginBuyArgs(), "")
	},
}

// marginBuyArgs prefers an explicit stop price over the percentage.
func marginBuyArgs() django.Args {
	f := marginBuyFlags
	args := django.Args{}.
		String("capital", f.capital).
		Int("leverage", f.leverage).
		String("symbol", f.symbol).
		Int("client-id", f.clientID)

	if f.stopPrice != "" {
		args = args.String("stop-price", f.stopPrice)
	} else {
		args = args.String("stop-percent", f.stopPercent)
	}

	return args.Flag("live", f.live).Flag("confirm", f.confirm)
}

func init() {
	statusCmd.Flags().IntVar(&statusFlags.clientID, "client-id", 1, "Client ID (tenant)")
	statusCmd.Flags().BoolVar(&statusFlags.detailed, "detailed", false, "Show detailed position information")

	marginPositionsCmd.Flags().IntVar(&marginPositionsFlags.clientID, "client-id", 1, "Client ID (tenant)")
	marginPositionsCmd.Flags().BoolVar(&marginPositionsFlags.live, "live", false, "Fetch real-time prices from Binance")
	marginPositionsCmd.Flags().BoolVar(&marginPositionsFlags.all, "all", false, "Include closed positions")
	marginPositionsCmd.Flags().StringVar(&marginPositionsFlags.symbol, "symbol", "", "Filter by symbol (e.g., BTCUSDC)")

	operationsCmd.Flags().IntVar(&operationsFlags.clientID, "client-id", 1, "Client ID (tenant)")
	operationsCmd.Flags().BoolVar(&operationsFlags.open, "open", false, "Show only open operations")
	operationsCmd.Flags().BoolVar(&operationsFlags.closed, "closed", false, "Show only closed operations")
	operationsCmd.Flags().StringVar(&operationsFlags.operationID, "id", "", "Show specific operation by ID")
	operationsCmd.Flags().IntVar(&operationsFlags.limit, "limit", 10, "Maximum number of operations to show")
	operationsCmd.MarkFlagsMutuallyExclusive("open", "closed")

	marginBuyCmd.Flags().StringVar(&marginBuyFlags.capital, "capital", "", "Capital to use for position (REQUIRED)")
	marginBuyCmd.Flags().StringVar(&marginBuyFlags.stopPercent, "stop-percent", "2", "Stop-loss as percentage below entry")
	marginBuyCmd.Flags().StringVar(&marginBuyFlags.stopPrice, "stop-price", "", "Exact stop-loss price (overrides stop-percent)")
	marginBuyCmd.Flags().IntVar(&marginBuyFlags.leverage, "leverage", 3, "Leverage multiplier (2, 3, 5, or 10)")
	marginBuyCmd.Flags().StringVar(&marginBuyFlags.symbol, "symbol", "BTCUSDC", "Trading pair")
	marginBuyCmd.Flags().IntVar(&marginBuyFlags.clientID, "client-id", 1, "Client ID (tenant)")
	marginBuyCmd.Flags().BoolVar(&marginBuyFlags.live, "live", false, "Execute REAL orders (default is dry-run)")
	marginBuyCmd.Flags().BoolVar(&marginBuyFlags.confirm, "confirm", false, "Confirm risk acknowledgement for live execution")
	_ = marginBuyCmd.MarkFlagRequired("capital")

	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(marginPositionsCmd)
	rootCmd.AddCommand(operationsCmd)
	rootCmd.AddCommand(marginBuyCmd)
}
