package ui

import (
	"strings"

	"github.com/muesli/termenv"
)

// ANSI color codes - exported for use across packages.
var (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[91m"
	ColorGreen  = "\033[92m"
	ColorYellow = "\033[93m"
	ColorBlue   = "\033[94m"
	ColorPurple = "\033[95m"
	ColorCyan   = "\033[96m"
	ColorBold   = "\033[1m"
	ActiveTheme = "nord"
)

// Unicode symbols
var (
	SymbolCheck   = "✓"
	SymbolCross   = "✗"
	SymbolArrow   = "→"
	SymbolInfo    = "ℹ"
	SymbolWarning = "⚠"
)

// InitColorPalette selects the colour theme. "plain" and terminals without
// colour support get no escape codes at all.
func InitColorPalette(theme string) {
	InitColorPaletteFor(theme, termenv.EnvColorProfile())
}

// InitColorPaletteFor is InitColorPalette with an explicit colour profile.
func InitColorPaletteFor(theme string, profile termenv.Profile) {
	theme = strings.ToLower(strings.TrimSpace(theme))
	if theme != "" {
		ActiveTheme = theme
	}

	if ActiveTheme == "plain" || profile == termenv.Ascii {
		initPlainPalette()
		return
	}
	if ActiveTheme == "vivid" {
		initVividPalette(profile)
		return
	}
	initNordOneDarkPalette(profile)
}

func initPlainPalette() {
	ColorReset = ""
	ColorRed = ""
	ColorGreen = ""
	ColorYellow = ""
	ColorBlue = ""
	ColorPurple = ""
	ColorCyan = ""
	ColorBold = ""
}

func initBase() {
	ColorReset = "\033[0m"
	ColorBold = "\033[1m"
}

func initVividPalette(profile termenv.Profile) {
	initBase()
	switch profile {
	case termenv.TrueColor:
		ColorRed = "\033[1;38;2;255;76;102m"
		ColorGreen = "\033[1;38;2;80;250;123m"
		ColorYellow = "\033[1;38;2;255;221;87m"
		ColorBlue = "\033[1;38;2;110;196;255m"
		ColorPurple = "\033[1;38;2;215;130;255m"
		ColorCyan = "\033[1;38;2;0;245;255m"
	case termenv.ANSI256:
		ColorRed = "\033[1;38;5;203m"
		ColorGreen = "\033[1;38;5;84m"
		ColorYellow = "\033[1;38;5;227m"
		ColorBlue = "\033[1;38;5;81m"
		ColorPurple = "\033[1;38;5;177m"
		ColorCyan = "\033[1;38;5;51m"
	default:
		ColorRed = "\033[1;91m"
		ColorGreen = "\033[1;92m"
		ColorYellow = "\033[1;93m"
		ColorBlue = "\033[1;94m"
		ColorPurple = "\033[1;95m"
		ColorCyan = "\033[1;96m"
	}
}

func initNordOneDarkPalette(profile termenv.Profile) {
	initBase()
	switch profile {
	case termenv.TrueColor:
		ColorRed = "\033[1;38;2;224;108;117m"
		ColorGreen = "\033[1;38;2;152;195;121m"
		ColorYellow = "\033[1;38;2;229;192;123m"
		ColorBlue = "\033[1;38;2;143;188;255m"
		ColorPurple = "\033[1;38;2;180;142;255m"
		ColorCyan = "\033[1;38;2;136;220;255m"
	case termenv.ANSI256:
		ColorRed = "\033[1;38;5;210m"
		ColorGreen = "\033[1;38;5;114m"
		ColorYellow = "\033[1;38;5;222m"
		ColorBlue = "\033[1;38;5;111m"
		ColorPurple = "\033[1;38;5;183m"
		ColorCyan = "\033[1;38;5;159m"
	default:
		ColorRed = "\033[91m"
		ColorGreen = "\033[92m"
		ColorYellow = "\033[93m"
		ColorBlue = "\033[94m"
		ColorPurple = "\033[95m"
		ColorCyan = "\033[96m"
	}
}
