package ui

import (
	"fmt"
	"os"
)

// PrintSuccess prints a success message.
func PrintSuccess(msg string) {
	fmt.Printf("%s%s%s %s%s\n", ColorGreen, SymbolCheck, ColorReset, msg, ColorReset)
}

// PrintError prints an error message to stderr.
func PrintError(msg string) {
	fmt.Fprintf(os.Stderr, "%s%s%s %s%s\n", ColorRed, SymbolCross, ColorReset, msg, ColorReset)
}

// PrintInfo prints an info message.
func PrintInfo(msg string) {
	fmt.Printf("%s%s%s %s%s\n", ColorBlue, SymbolInfo, ColorReset, msg, ColorReset)
}

// PrintWarning prints a warning message.
func PrintWarning(msg string) {
	fmt.Printf("%s%s%s %s%s\n", ColorYellow, SymbolWarning, ColorReset, msg, ColorReset)
}

// YesNo renders a boolean as a coloured yes/no.
func YesNo(b bool) string {
	if b {
		return ColorGreen + "yes" + ColorReset
	}
	return ColorYellow + "no" + ColorReset
}
