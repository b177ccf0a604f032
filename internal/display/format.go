// Package display formats numbers for on-screen and terminal output.
package display

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Score renders a score with thousands separators, e.g. "5,230".
func Score(score int) string {
	return printer.Sprintf("%d", score)
}

// Amount renders money with two decimals and separators, e.g. "$1,250.00".
// Negative amounts keep their sign in front of the currency mark.
func Amount(amount float64) string {
	if amount < 0 {
		return "-" + printer.Sprintf("$%.2f", -amount)
	}
	return printer.Sprintf("$%.2f", amount)
}
