// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/theirongolddev/launchdash/internal/model"
)

var printer = message.NewPrinter(language.English)

// FormatNumber adds thousands separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int) string {
	return printer.Sprintf("%d", n)
}

// FormatMass formats a payload mass in whole kilograms.
// e.g., 15600 -> "15,600 kg"
func FormatMass(kg float64) string {
	return printer.Sprintf("%.0f kg", kg)
}

// FormatRange formats a payload range, e.g. "0 to 9,600 kg".
func FormatRange(r model.PayloadRange) string {
	return printer.Sprintf("%.0f to %.0f kg", r.Low, r.High)
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatShare formats part/total as a percentage, or "-" when total is zero.
func FormatShare(part, total int) string {
	if total == 0 {
		return "-"
	}
	return FormatPercent(float64(part) / float64(total))
}

// FormatClass names an outcome class.
func FormatClass(class int) string {
	switch class {
	case model.ClassSuccess:
		return "1 (success)"
	case model.ClassFailure:
		return "0 (failure)"
	}
	return strconv.Itoa(class)
}
