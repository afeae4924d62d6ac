// ABOUTME: Tabwriter-based table output with status coloring and pagination footer
// ABOUTME: Shared by the console screens and the admin command output

package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
)

var (
	statusGood    = color.New(color.FgGreen)
	statusPending = color.New(color.FgYellow)
	statusClosed  = color.New(color.FgRed)
	statusDim     = color.New(color.Faint)
)

// Table writes headers and rows as an aligned table with the dashed
// header rule. Rows shorter than the header are padded with blanks.
func Table(out io.Writer, headers []string, rows [][]string) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "  "+strings.Join(headers, "\t"))
	rule := make([]string, len(headers))
	for i, h := range headers {
		rule[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(w, "  "+strings.Join(rule, "\t"))

	for _, row := range rows {
		cells := make([]string, len(headers))
		copy(cells, row)
		fmt.Fprintln(w, "  "+strings.Join(cells, "\t"))
	}
	w.Flush()
}

// Status colors a status value by meaning. Unknown statuses pass
// through uncolored.
func Status(s string) string {
	switch strings.ToLower(s) {
	case "active", "available", "completed", "paid", "fulfilled":
		return statusGood.Sprint(s)
	case "pending":
		return statusPending.Sprint(s)
	case "sold", "cancelled", "refunded":
		return statusClosed.Sprint(s)
	case "resolved":
		return statusDim.Sprint(s)
	default:
		return s
	}
}

// Footer is the pagination line shown under a table, e.g.
// "page 2/5 (38 items)". Empty sets get no footer.
func Footer(page, totalPages, total int) string {
	if total == 0 {
		return ""
	}
	noun := "items"
	if total == 1 {
		noun = "item"
	}
	return fmt.Sprintf("page %d/%d (%d %s)", page, totalPages, total, noun)
}

// Truncate shortens s to max runes, appending ... when cut.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// Time formats a timestamp for table cells. Zero times render blank.
func Time(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("Jan 02 15:04")
}

// Price formats an amount for table cells.
func Price(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
