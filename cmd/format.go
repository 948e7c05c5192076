package cmd

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

var (
	gain = color.New(color.FgGreen)
	loss = color.New(color.FgRed)
)

func normalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.ReplaceAll(symbol, "/", ""))
}

// readNumber accepts the shapes the backend uses for decimals: strings,
// json.Number and float64. Anything unparsable is nil.
func readNumber(value interface{}) *float64 {
	var (
		num float64
		err error
	)
	switch v := value.(type) {
	case string:
		if v == "" {
			return nil
		}
		num, err = strconv.ParseFloat(v, 64)
	case json.Number:
		num, err = v.Float64()
	case float64:
		num = v
	default:
		return nil
	}
	if err != nil {
		return nil
	}
	return &num
}

func sign(value float64) string {
	switch {
	case value > 0:
		return "+"
	case value < 0:
		return "-"
	}
	return ""
}

func formatSignedUSD(value *float64) string {
	if value == nil {
		return "N/A"
	}
	return fmt.Sprintf("%s$%.2f", sign(*value), math.Abs(*value))
}

func formatSignedPercent(value *float64) string {
	if value == nil {
		return "N/A"
	}
	return fmt.Sprintf("%s%.2f%%", sign(*value), math.Abs(*value))
}

func formatOptionalUSD(value *float64) string {
	if value == nil {
		return "N/A"
	}
	return fmt.Sprintf("$%.2f", *value)
}

func formatOptionalPercent(value *float64) string {
	if value == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", *value)
}

func formatOptionalNumber(value *float64) interface{} {
	if value == nil {
		return nil
	}
	return fmt.Sprintf("%.2f", *value)
}

func computeSpread(bid, ask *float64) *float64 {
	if bid == nil || ask == nil {
		return nil
	}
	spread := *ask - *bid
	return &spread
}

func computeExposurePercent(total, positions *float64) *float64 {
	if total == nil || positions == nil || *total == 0 {
		return nil
	}
	value := (*positions / *total) * 100
	return &value
}

// deriveAvailableBalance sums spot and isolated margin when the backend
// reports them, else falls back to total minus positions.
func deriveAvailableBalance(balance map[string]interface{}, total, positions *float64) *float64 {
	spot := readNumber(balance["spot"])
	isolated := readNumber(balance["isolated_margin"])
	if spot != nil || isolated != nil {
		value := 0.0
		if spot != nil {
			value += *spot
		}
		if isolated != nil {
			value += *isolated
		}
		return &value
	}
	if total != nil && positions != nil && *total > 0 {
		value := *total - *positions
		return &value
	}
	return nil
}

// colorizeNumber paints text green or red by the sign of value. color
// disables itself when stdout is not a terminal or no-color is set.
func colorizeNumber(value *float64, text string) string {
	if value == nil {
		return text
	}
	if *value > 0 {
		return gain.Sprint(text)
	}
	if *value < 0 {
		return loss.Sprint(text)
	}
	return text
}
