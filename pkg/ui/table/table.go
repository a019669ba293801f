// Package table renders lists as terminal tables using lipgloss.
package table

import (
	"fmt"
	"os"
	"strings"
	"time"

	// Packages
	lipgloss "github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	term "golang.org/x/term"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Data is the row source for Render. Row values are converted to display
// strings by FormatCell, so cells may be strings, numbers, booleans,
// timestamps or values wrapped in Bold.
type Data interface {
	// Header returns the column header labels.
	Header() []string

	// Len returns the number of rows.
	Len() int

	// Row returns the cell values for row i, or nil to skip the row.
	Row(i int) []any
}

// Bold marks a cell value for emphasis.
type Bold struct{ Value any }

// Timestamp is a Unix timestamp in seconds, as the endpoint reports
// created_at and updated_at fields.
type Timestamp int64

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const timeFormat = "2006-01-02 15:04"

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	boldStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	borderStyle = lipgloss.NewStyle().Faint(true)
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Render returns the data as a bordered table, constrained to the
// terminal width when the natural layout would overflow it.
func Render(data Data) string {
	t := lgtable.New().
		Headers(data.Header()...).
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Wrap(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle()
		})
	for i := range data.Len() {
		row := data.Row(i)
		if row == nil {
			continue
		}
		cells := make([]string, len(row))
		for j, value := range row {
			cells[j] = FormatCell(value)
		}
		t.Row(cells...)
	}

	// Re-render with a width constraint when the natural layout overflows
	// the terminal
	result := t.Render()
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 && lipgloss.Width(result) > width {
		t.Width(width)
		result = t.Render()
	}
	return result
}

// FormatCell converts a cell value to its display string. Zero values
// render as "-" and Bold values are emphasised.
func FormatCell(value any) string {
	if bold, ok := value.(Bold); ok {
		return boldStyle.Render(FormatCell(bold.Value))
	}
	return formatValue(value)
}

// Truncate shortens s to at most max runes, collapsing newlines and
// appending an ellipsis when shortened.
func Truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if runes := []rune(s); len(runes) > max {
		return string(runes[:max-1]) + "…"
	}
	return s
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func formatValue(value any) string {
	switch value := value.(type) {
	case nil:
		return "-"
	case string:
		if value == "" {
			return "-"
		}
		return value
	case Timestamp:
		if value == 0 {
			return "-"
		}
		return time.Unix(int64(value), 0).Format(timeFormat)
	case time.Time:
		if value.IsZero() {
			return "-"
		}
		return value.Format(timeFormat)
	case bool:
		if value {
			return "yes"
		}
		return "no"
	default:
		if s := fmt.Sprint(value); s != "" && s != "0" {
			return s
		}
		return "-"
	}
}
