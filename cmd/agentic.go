/*
Package cmd - Agentic workflow commands

These commands implement the core philosophy:
  PLAN → VALIDATE → EXECUTE

Just as in trading we separate:
  - Idea formulation
  - Validation
  - Execution

We separate these concerns at the CLI level to prevent unintended actions.
*/
package cmd

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ldamasio/robson/cli/internal/django"
	"github.com/ldamasio/robson/cli/internal/log"
)

// Plan is a draft execution plan. Nothing is executed when it is created.
type Plan struct {
	PlanID    string   `json:"planID" yaml:"planID"`
	Strategy  string   `json:"strategy" yaml:"strategy"`
	Params    []string `json:"params" yaml:"params"`
	CreatedAt string   `json:"createdAt" yaml:"createdAt"`
	Status    string   `json:"status" yaml:"status"`
	Validated bool     `json:"validated" yaml:"validated"`
}

// newPlan derives the plan ID from the creation second, strategy and
// parameters, so the same request within one second yields the same ID.
func newPlan(strategy string, params []string, now time.Time) Plan {
	if params == nil {
		params = []string{}
	}
	planData := fmt.Sprintf("%d-%s-%v", now.Unix(), strategy, params)
	hash := sha256.Sum256([]byte(planData))

	return Plan{
		PlanID:    hex.EncodeToString(hash[:])[:16],
		Strategy:  strategy,
		Params:    params,
		CreatedAt: now.Format(time.RFC3339),
		Status:    "draft",
		Validated: false,
	}
}

func printPlan(w io.Writer, plan Plan, now time.Time) error {
	var b strings.Builder
	b.WriteString("╔════════════════════════════════════════════════════════════╗\n")
	b.WriteString("║                    EXECUTION PLAN                          ║\n")
	b.WriteString("╚════════════════════════════════════════════════════════════╝\n\n")
	fmt.Fprintf(&b, "Plan ID:    %s\n", plan.PlanID)
	fmt.Fprintf(&b, "Strategy:   %s\n", plan.Strategy)
	fmt.Fprintf(&b, "Parameters: %v\n", plan.Params)
	fmt.Fprintf(&b, "Created:    %s\n", now.Format("2006-01-02 15:04:05"))
	b.WriteString("Status:     DRAFT (not validated)\n\n")
	b.WriteString("NEXT STEPS:\n")
	b.WriteString("  1. Review this plan carefully\n")
	fmt.Fprintf(&b, "  2. Validate it: robson validate %s --client-id <id>\n", plan.PlanID)
	fmt.Fprintf(&b, "  3. If valid, execute: robson execute %s --client-id <id>\n\n", plan.PlanID)
	b.WriteString("⚠️  This plan has NOT been executed. It's just a blueprint.\n\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// planCmd creates an execution plan
var planCmd = &cobra.Command{
	Use:   "plan <strategy> [parameters...]",
	Short: "Create an execution plan",
	Long: `Create a detailed execution plan for a trading strategy.

This is the FIRST step in the agentic workflow. The plan:
  - Defines what action will be taken
  - Specifies all parameters
  - Generates a unique plan ID
  - Does NOT execute anything

Philosophy:
  "Plan before you act. Know what you're doing before you do it."

Strategy parameters that look like flags go after "--".

Examples:
  robson plan buy BTCUSDT 0.001 -- --limit 50000
  robson plan sell ETHUSDT 0.5 -- --market
  robson plan rebalance -- --target-allocation btc:50,eth:30,usdt:20`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		plan := newPlan(args[0], args[1:], now)
		log.GetLogger().Debug("plan created", "planID", plan.PlanID, "strategy", plan.Strategy)

		return render(cmd, plan, func(w io.Writer) error {
			return printPlan(w, plan, now)
		})
	},
}

// orderFlags are shared by validate and execute.
type orderFlags struct {
	clientID   int
	strategyID int
	opType     string
	symbol     string
	quantity   string
	price      string
}

func addOrderFlags(cmd *cobra.Command, f *orderFlags, clientHelp, strategyHelp string) {
	cmd.Flags().IntVar(&f.clientID, "client-id", 0, clientHelp)
	cmd.Flags().IntVar(&f.strategyID, "strategy-id", 0, strategyHelp)
	cmd.Flags().StringVar(&f.opType, "operation-type", "", "Operation type (buy, sell, cancel)")
	cmd.Flags().StringVar(&f.symbol, "symbol", "", "Trading symbol (e.g., BTCUSDT)")
	cmd.Flags().StringVar(&f.quantity, "quantity", "", "Order quantity")
	cmd.Flags().StringVar(&f.price, "price", "", "Order price (for limit orders)")
	_ = cmd.MarkFlagRequired("client-id")
}

func (f *orderFlags) args(planID string) django.Args {
	return django.Args{"--plan-id", planID}.
		Int("client-id", f.clientID).
		Int("strategy-id", f.strategyID).
		String("operation-type", f.opType).
		String("symbol", f.symbol).
		String("quantity", f.quantity).
		String("price", f.price)
}

var validateFlags orderFlags

// validateCmd validates an execution plan
var validateCmd = &cobra.Command{
	Use:   "validate <plan-id> --client-id <id> [options]",
	Short: "Validate an execution plan",
	Long: `Validate an execution plan before execution.

This is the SECOND step in the agentic workflow (PAPER TRADING stage).

Validation performs operational and financial checks:
  - Tenant isolation (client_id is mandatory)
  - Risk configuration (drawdown, stop-loss, position sizing)
  - Operation parameters (symbol, quantity, price)
  - Does NOT execute anything

Philosophy:
  "Validate before you commit. Catch errors before they cost money."

This is NOT developer CI. This is operational and financial validation.

Examples:
  robson validate abc123 --client-id 1 --strategy-id 5
  robson validate abc123 --client-id 1 --operation-type buy --symbol BTCUSDT --quantity 0.001 --price 50000
  robson validate abc123 --client-id 1 --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		djangoArgs := validateFlags.args(args[0]).Flag("json", jsonOutput)
		return djangoRunner(cmd).Run(cmd.Context(), "validate_plan", djangoArgs, "validation failed")
	},
}

var (
	executeFlags     orderFlags
	live             bool
	acknowledgeRisk  bool
	validated        bool
	validationPassed bool
)

// executeCmd executes a plan (DRY-RUN by default, LIVE requires explicit flags)
var executeCmd = &cobra.Command{
	Use:   "execute <plan-id> --client-id <id> [options]",
	Short: "Execute a plan (DRY-RUN by default)",
	Long: `Execute a plan with SAFE BY DEFAULT semantics.

This is the FINAL step in the agentic workflow: PLAN → VALIDATE → EXECUTE

SAFE BY DEFAULT:
  - DRY-RUN is the default (simulation, no real orders)
  - LIVE requires --live AND --acknowledge-risk flags
  - LIVE requires prior validation
  - All executions are audited

Philosophy:
  "Execute with intent. Safety first, always."

Examples:
  # DRY-RUN (default, safe)
  robson execute abc123 --client-id 1

  # LIVE (requires explicit acknowledgement)
  robson execute abc123 --client-id 1 --live --acknowledge-risk

  # With strategy limits
  robson execute abc123 --client-id 1 --strategy-id 5 --live --acknowledge-risk`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		djangoArgs := executeFlags.args(args[0]).
			Flag("live", live).
			Flag("acknowledge-risk", acknowledgeRisk).
			Flag("validated", validated).
			Flag("validation-passed", validationPassed).
			Flag("json", jsonOutput)
		return djangoRunner(cmd).Run(cmd.Context(), "execute_plan", djangoArgs, "execution blocked or failed")
	},
}

func init() {
	addOrderFlags(validateCmd, &validateFlags,
		"Client ID (tenant) - MANDATORY for tenant isolation",
		"Strategy ID to load risk configuration from")

	addOrderFlags(executeCmd, &executeFlags,
		"Client ID (tenant) - MANDATORY",
		"Strategy ID for limits and configuration")
	executeCmd.Flags().BoolVar(&live, "live", false, "LIVE mode (real orders) - requires --acknowledge-risk")
	executeCmd.Flags().BoolVar(&acknowledgeRisk, "acknowledge-risk", false, "Acknowledge risk of LIVE execution (REQUIRED for --live)")
	executeCmd.Flags().BoolVar(&validated, "validated", false, "Mark as validated (set by validation step)")
	executeCmd.Flags().BoolVar(&validationPassed, "validation-passed", false, "Mark validation as passed (set by validation step)")
}

// djangoRunner builds a manage.py runner from the loaded settings, writing
// to the command's streams.
func djangoRunner(cmd *cobra.Command) *django.Runner {
	runner := django.NewRunner(settings.Python, settings.ManagePy, log.GetLogger())
	runner.Stdout = cmd.OutOrStdout()
	runner.Stderr = cmd.ErrOrStderr()
	return runner
}
