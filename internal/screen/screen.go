/*
Package screen renders the static screens shared by the legacy robson
dispatcher and the robson-go legacy subcommands.

Each screen has a text rendering (written to an io.Writer in one call) and a
payload for --json / --output consumers.
*/
package screen

import (
	"fmt"
	"io"
	"strings"

	"github.com/rodaine/table"
)

// DefaultSayMessage is echoed by say when no message is given.
const DefaultSayMessage = "Hello from Robson"

// Payload is the structured form of a screen.
type Payload map[string]interface{}

type command struct {
	usage       string
	description string
}

var legacyCommands = []command{
	{"robson help", "Display this help"},
	{"robson report", "Generate trading report"},
	{"robson say [message]", "Echo a message (testing)"},
	{"robson buy <args>", "Execute buy order"},
	{"robson sell <args>", "Execute sell order"},
}

var agenticCommands = []command{
	{"robson plan <strategy>", "Create execution plan"},
	{"robson validate <plan>", "Validate plan before execution"},
	{"robson execute <plan>", "Execute validated plan"},
}

var monitoringCommands = []command{
	{"robson positions", "List active positions with P&L"},
	{"robson price <symbol>", "Show current market price"},
	{"robson account", "Show account summary and exposure"},
	{"robson status", "Show margin account status"},
	{"robson operations", "Show operations with all movements"},
}

func banner(b *strings.Builder, title string) {
	b.WriteString("╔════════════════════════════════════════════════════════════╗\n")
	fmt.Fprintf(b, "║%-60s║\n", centered(title, 60))
	b.WriteString("╚════════════════════════════════════════════════════════════╝\n\n")
}

func rule(b *strings.Builder, title string) {
	b.WriteString("═══════════════════════════════════════\n")
	fmt.Fprintf(b, "         %s\n", title)
	b.WriteString("═══════════════════════════════════════\n\n")
}

func centered(s string, width int) string {
	pad := width - len([]rune(s))
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad/2) + s
}

func commandTable(b *strings.Builder, heading string, commands []command) {
	b.WriteString(heading + "\n")
	tbl := table.New("  COMMAND", "DESCRIPTION").WithWriter(b).WithPadding(3)
	for _, c := range commands {
		tbl.AddRow("  "+c.usage, c.description)
	}
	tbl.Print()
	b.WriteString("\n")
}

func flush(w io.Writer, b *strings.Builder) error {
	_, err := io.WriteString(w, b.String())
	return err
}

// Help writes the command overview.
func Help(w io.Writer) error {
	var b strings.Builder
	banner(&b, "Robson - Cryptocurrency Trading CLI")
	commandTable(&b, "LEGACY COMMANDS (for backward compatibility):", legacyCommands)
	commandTable(&b, "AGENTIC WORKFLOW (plan → validate → execute):", agenticCommands)
	commandTable(&b, "MONITORING:", monitoringCommands)
	b.WriteString("GLOBAL FLAGS:\n")
	b.WriteString("  --json                   Output in JSON format\n")
	b.WriteString("  --output <format>        Output format (text, json, yaml)\n\n")
	b.WriteString("For detailed help on a specific command:\n")
	b.WriteString("  robson <command> --help\n\n")
	return flush(w, &b)
}

// HelpPayload is the structured form of Help.
func HelpPayload() Payload {
	return Payload{
		"command": "help",
		"status":  "success",
		"message": "Help information displayed",
	}
}

// Report writes the trading report screen.
func Report(w io.Writer) error {
	var b strings.Builder
	rule(&b, "TRADING REPORT")
	b.WriteString("Status: Report generation not yet implemented\n\n")
	b.WriteString("This command will display:\n")
	b.WriteString("  • Current open positions\n")
	b.WriteString("  • Total P&L (realized + unrealized)\n")
	b.WriteString("  • Recent trade history\n")
	b.WriteString("  • Performance metrics\n\n")
	b.WriteString("Use 'robson positions' and 'robson account' for live data.\n\n")
	return flush(w, &b)
}

// ReportPayload is the structured form of Report.
func ReportPayload() Payload {
	return Payload{
		"command":   "report",
		"status":    "success",
		"positions": []string{},
		"summary": map[string]string{
			"totalPnL":     "0.00",
			"openTrades":   "0",
			"closedTrades": "0",
		},
	}
}

// SayMessage joins args into the message say echoes.
func SayMessage(args []string) string {
	message := strings.Join(args, " ")
	if message == "" {
		return DefaultSayMessage
	}
	return message
}

// Say echoes message.
func Say(w io.Writer, message string) error {
	_, err := fmt.Fprintf(w, "Robson says: %s\n", message)
	return err
}

// SayPayload is the structured form of Say.
func SayPayload(message string) Payload {
	return Payload{
		"command": "say",
		"status":  "success",
		"message": message,
	}
}

// Order writes the buy or sell order screen. side is "buy" or "sell".
func Order(w io.Writer, side string, args []string) error {
	var b strings.Builder
	rule(&b, strings.ToUpper(side)+" ORDER")
	fmt.Fprintf(&b, "Status: %s order execution not yet implemented\n\n", titleCase(side))
	if len(args) > 0 {
		fmt.Fprintf(&b, "Arguments received: %v\n\n", args)
	}
	b.WriteString("This command will:\n")
	b.WriteString("  1. Validate order parameters\n")
	if side == "sell" {
		b.WriteString("  2. Check position availability\n")
	} else {
		b.WriteString("  2. Check account balance\n")
	}
	b.WriteString("  3. Execute order via exchange API\n")
	b.WriteString("  4. Return order confirmation\n\n")
	fmt.Fprintf(&b, "Until then: robson plan %s <symbol> <quantity>, then validate and execute.\n\n", side)
	return flush(w, &b)
}

// OrderPayload is the structured form of Order.
func OrderPayload(side string, args []string) Payload {
	if args == nil {
		args = []string{}
	}
	return Payload{
		"command": side,
		"status":  "pending",
		"message": titleCase(side) + " order functionality not yet implemented",
		"args":    args,
	}
}

// Welcome writes the one-line greeting shown when robson runs without
// arguments.
func Welcome(w io.Writer, version string) error {
	_, err := fmt.Fprintf(w, "Welcome to Robson %s\n", version)
	return err
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
