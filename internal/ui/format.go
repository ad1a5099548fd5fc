package ui

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/jmagar/ttyctl/internal/tty"
	"github.com/mattn/go-runewidth"
)

const (
	boxTopLeft     = "┌"
	boxTopRight    = "┐"
	boxBottomLeft  = "└"
	boxBottomRight = "┘"
	boxVertical    = "│"
	boxHorizontal  = "─"
	boxTeeLeft     = "├"
	boxTeeRight    = "┤"
	boxTeeTop      = "┬"
	boxTeeBottom   = "┴"
	boxCross       = "┼"

	bulletCircle  = "•"
	bulletDiamond = "◆"
)

const (
	defaultWidth  = 80
	keyColumn     = 22
	minValueWidth = 8
)

var ansiSeq = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// termWidth reports the column count of the output terminal, or
// defaultWidth when stdout is not one.
var termWidth = func() int {
	cols, _, err := tty.Size(tty.Output)
	if err != nil {
		return defaultWidth
	}
	return cols
}

// StripAnsiCodes removes colour escape sequences from s.
func StripAnsiCodes(s string) string {
	return ansiSeq.ReplaceAllString(s, "")
}

// VisibleLength returns the number of terminal cells s occupies.
func VisibleLength(s string) int {
	return runewidth.StringWidth(StripAnsiCodes(s))
}

// TruncateWithEllipsis shortens s to at most maxLen cells. A truncated
// result loses its colour codes.
func TruncateWithEllipsis(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if VisibleLength(s) <= maxLen {
		return s
	}
	plain := StripAnsiCodes(s)
	if maxLen <= 3 {
		return runewidth.Truncate(plain, maxLen, "")
	}
	return runewidth.Truncate(plain, maxLen, "...")
}

// PadRight pads s with spaces to width cells.
func PadRight(s string, width int) string {
	n := VisibleLength(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// PrintSection prints an underlined section title.
func PrintSection(title string) {
	rule := VisibleLength(title) + 2
	if w := termWidth(); rule > w && w > 0 {
		rule = w
	}
	fmt.Printf("\n%s%s %s%s\n", ColorBold, bulletDiamond, title, ColorReset)
	fmt.Printf("%s%s%s\n\n", ColorCyan, strings.Repeat(boxHorizontal, rule), ColorReset)
}

// PrintList prints a bullet list.
func PrintList(items []string, color string) {
	for _, item := range items {
		fmt.Printf("  %s%s%s %s\n", color, bulletCircle, ColorReset, item)
	}
}

// PrintKeyValue prints an aligned "key: value" line, shortening value to
// fit the terminal.
func PrintKeyValue(key, value, valueColor string) {
	room := termWidth() - keyColumn - 4
	if room < minValueWidth {
		room = minValueWidth
	}
	value = TruncateWithEllipsis(value, room)
	fmt.Printf("  %s%s%s %s%s%s\n",
		ColorCyan, PadRight(key+":", keyColumn), ColorReset,
		valueColor, value, ColorReset)
}

// Table renders rows in a box. Columns are as wide as their widest cell.
type Table struct {
	headers []string
	right   []bool
	rows    [][]string
}

// NewTable starts a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers, right: make([]bool, len(headers))}
}

// AlignRight right-aligns the given columns.
func (t *Table) AlignRight(cols ...int) *Table {
	for _, c := range cols {
		if c >= 0 && c < len(t.right) {
			t.right[c] = true
		}
	}
	return t
}

// AddRow appends a row. Missing cells are blank and extra cells are dropped.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Print renders the table to stdout.
func (t *Table) Print() { t.Render(os.Stdout) }

// Render writes the table to w.
func (t *Table) Render(w io.Writer) {
	if len(t.headers) == 0 {
		return
	}
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = VisibleLength(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if n := VisibleLength(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	rule := func(left, mid, right string) {
		parts := make([]string, len(widths))
		for i, n := range widths {
			parts[i] = strings.Repeat(boxHorizontal, n+2)
		}
		fmt.Fprintln(w, ColorCyan+left+strings.Join(parts, mid)+right+ColorReset)
	}
	line := func(cells []string, style string) {
		var b strings.Builder
		b.WriteString(ColorCyan + boxVertical + ColorReset)
		for i, cell := range cells {
			if t.right[i] {
				cell = strings.Repeat(" ", widths[i]-VisibleLength(cell)) + cell
			} else {
				cell = PadRight(cell, widths[i])
			}
			fmt.Fprintf(&b, " %s%s%s ", style, cell, ColorReset)
			b.WriteString(ColorCyan + boxVertical + ColorReset)
		}
		fmt.Fprintln(w, b.String())
	}

	rule(boxTopLeft, boxTeeTop, boxTopRight)
	line(t.headers, ColorBold)
	rule(boxTeeLeft, boxCross, boxTeeRight)
	for _, row := range t.rows {
		line(row, "")
	}
	rule(boxBottomLeft, boxTeeBottom, boxBottomRight)
}
