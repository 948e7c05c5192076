/*
Package cmd - Monitoring commands

These commands provide real-time visibility into positions, prices, and account
summary data for the production dashboard.
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ldamasio/robson/cli/internal/api"
	"github.com/ldamasio/robson/cli/internal/config"
	"github.com/ldamasio/robson/cli/internal/output"
)

var positionsCmd = &cobra.Command{
	Use:   "positions",
	Short: "List active positions with P&L",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, err := apiClient().Positions(cmd.Context())
		if err != nil {
			return err
		}

		return render(cmd, payload, func(w io.Writer) error {
			if len(payload.Positions) == 0 {
				_, err := fmt.Fprintln(w, "No active positions.")
				return err
			}
			for _, pos := range payload.Positions {
				if err := printPosition(w, pos); err != nil {
					return err
				}
			}
			return nil
		})
	},
}

var priceWatch bool

var priceCmd = &cobra.Command{
	Use:   "price <symbol>",
	Short: "Show current market price",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		symbol := normalizeSymbol(args[0])
		client := apiClient()

		if !priceWatch {
			return printPrice(cmd, client, symbol)
		}

		ticker := time.NewTicker(1 * time.Second)
		defer ticker.Stop()
		for {
			if !output.Structured(format()) {
				clearScreen(cmd.OutOrStdout())
			}
			if err := printPrice(cmd, client, symbol); err != nil {
				return err
			}
			select {
			case <-cmd.Context().Done():
				return nil
			case <-ticker.C:
			}
		}
	},
}

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Show account summary and exposure",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		summary, err := fetchAccountSummary(cmd.Context(), apiClient())
		if err != nil {
			return err
		}
		return render(cmd, summary.payload(), summary.print)
	},
}

func init() {
	for _, c := range []*cobra.Command{positionsCmd, priceCmd, accountCmd} {
		c.Flags().String(config.KeyAPIBaseURL, "", "Base URL for the backend API (env: ROBSON_API_BASE_URL)")
		c.Flags().String(config.KeyToken, "", "JWT access token (env: ROBSON_API_TOKEN)")
	}
	priceCmd.Flags().BoolVar(&priceWatch, "watch", false, "Poll price every second")

	rootCmd.AddCommand(positionsCmd)
	rootCmd.AddCommand(priceCmd)
	rootCmd.AddCommand(accountCmd)
}

func apiClient() *api.Client {
	return api.NewClient(settings.APIBaseURL, settings.Token)
}

type accountSummary struct {
	positions      api.Positions
	positionsValue *float64
	total          *float64
	available      *float64
	exposure       *float64
	balance        map[string]interface{}
	patrimony      map[string]interface{}
}

func fetchAccountSummary(ctx context.Context, client *api.Client) (accountSummary, error) {
	positions, err := client.Positions(ctx)
	if err != nil {
		return accountSummary{}, err
	}
	patrimony, err := client.Patrimony(ctx)
	if err != nil {
		return accountSummary{}, err
	}
	balance, err := client.Balance(ctx)
	if err != nil {
		return accountSummary{}, err
	}

	var value float64
	for _, pos := range positions.Positions {
		price := readNumber(pos.CurrentPrice)
		qty := readNumber(pos.Quantity)
		if price != nil && qty != nil {
			value += *price * *qty
		}
	}

	total := readNumber(patrimony["patrimony"])
	return accountSummary{
		positions:      positions,
		positionsValue: &value,
		total:          total,
		available:      deriveAvailableBalance(balance, total, &value),
		exposure:       computeExposurePercent(total, &value),
		balance:        balance,
		patrimony:      patrimony,
	}, nil
}

func (s accountSummary) payload() map[string]interface{} {
	return map[string]interface{}{
		"total_balance":     formatOptionalNumber(s.total),
		"available_balance": formatOptionalNumber(s.available),
		"positions_value":   formatOptionalNumber(s.positionsValue),
		"exposure_percent":  formatOptionalNumber(s.exposure),
		"num_positions":     len(s.positions.Positions),
		"balance_raw":       s.balance,
		"patrimony_raw":     s.patrimony,
	}
}

func (s accountSummary) print(w io.Writer) error {
	var b strings.Builder
	b.WriteString("╔════════════════════════════════════════════════════════════╗\n")
	b.WriteString("║                    ACCOUNT SUMMARY                         ║\n")
	b.WriteString("╚════════════════════════════════════════════════════════════╝\n")
	fmt.Fprintf(&b, "Total Balance:     %s\n", formatOptionalUSD(s.total))
	fmt.Fprintf(&b, "Positions Value:   %s\n", formatOptionalUSD(s.positionsValue))
	fmt.Fprintf(&b, "Available Balance: %s\n", formatOptionalUSD(s.available))
	fmt.Fprintf(&b, "Exposure:          %s\n", formatOptionalPercent(s.exposure))
	fmt.Fprintf(&b, "Active Positions:  %d\n", len(s.positions.Positions))
	_, err := io.WriteString(w, b.String())
	return err
}

func printPosition(w io.Writer, pos api.Position) error {
	sideLabel := "LONG"
	if strings.ToUpper(pos.Side) == "SELL" {
		sideLabel = "SHORT"
	}

	pnlValue := readNumber(pos.UnrealizedPnL)
	pnlPercentValue := readNumber(pos.UnrealizedPnLPercent)

	pnlLine := colorizeNumber(pnlValue,
		fmt.Sprintf("%s (%s)", formatSignedUSD(pnlValue), formatSignedPercent(pnlPercentValue)))
	currentLine := colorizeNumber(pnlPercentValue,
		fmt.Sprintf("$%s (%s)", pos.CurrentPrice, formatSignedPercent(pnlPercentValue)))

	stopLine := "N/A"
	if pos.StopLoss != "" && pos.DistanceToStopPercent != "" {
		stopLine = fmt.Sprintf("$%s (%s%% away)", pos.StopLoss, pos.DistanceToStopPercent)
	}

	targetLine := "N/A"
	if pos.TakeProfit != "" && pos.DistanceToTargetPercent != "" {
		targetLine = fmt.Sprintf("$%s (%s%% to go)", pos.TakeProfit, pos.DistanceToTargetPercent)
	}

	var b strings.Builder
	b.WriteString("╔════════════════════════════════════════════════════════════╗\n")
	b.WriteString("║                    ACTIVE POSITION                         ║\n")
	b.WriteString("╚════════════════════════════════════════════════════════════╝\n")
	fmt.Fprintf(&b, "Symbol:   %s\n", pos.Symbol)
	fmt.Fprintf(&b, "Side:     %s\n", sideLabel)
	fmt.Fprintf(&b, "Quantity: %s\n", pos.Quantity)
	fmt.Fprintf(&b, "Entry:    $%s\n", pos.EntryPrice)
	fmt.Fprintf(&b, "Current:  %s\n", currentLine)
	fmt.Fprintf(&b, "P&L:      %s\n", pnlLine)
	fmt.Fprintf(&b, "Stop:     %s\n", stopLine)
	fmt.Fprintf(&b, "Target:   %s\n\n", targetLine)
	_, err := io.WriteString(w, b.String())
	return err
}

func printPrice(cmd *cobra.Command, client *api.Client, symbol string) error {
	payload, err := client.Price(cmd.Context(), symbol)
	if err != nil {
		return err
	}

	return render(cmd, payload, func(w io.Writer) error {
		bid := readNumber(payload.Bid)
		ask := readNumber(payload.Ask)
		_, err := fmt.Fprintf(w, "%s: Bid %s | Ask %s | Spread %s\n",
			payload.Symbol,
			formatOptionalUSD(bid),
			formatOptionalUSD(ask),
			formatOptionalUSD(computeSpread(bid, ask)),
		)
		return err
	})
}

func clearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}
