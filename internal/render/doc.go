// Package render formats collection data for the terminal.
//
// Tables go through text/tabwriter with the two-space indent and dashed
// header rule used across the console binaries. Status values are
// colored by meaning (green for open/successful states, yellow for
// pending, red for terminal ones) via fatih/color, which disables
// itself automatically when stdout is not a TTY.
//
// Description fields are markdown. Markdown converts them to plain
// terminal text rather than HTML.
package render
