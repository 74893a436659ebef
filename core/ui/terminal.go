// Package ui - Terminal user interface
// Aligned tables and colored status lines for CLI output.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Colors for terminal output
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

// Writer is the UI output destination. Write errors are sticky: after the
// first one, output stops and Err reports it.
type Writer struct {
	out     io.Writer
	noColor bool
	err     error
}

// NewWriter creates a UI writer
func NewWriter(out io.Writer, noColor bool) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{out: out, noColor: noColor}
}

// Err returns the first write error
func (w *Writer) Err() error {
	return w.err
}

// Color applies color if enabled
func (w *Writer) Color(c, text string) string {
	if w.noColor || c == "" {
		return text
	}
	return c + text + Reset
}

// Print writes formatted text
func (w *Writer) Print(format string, args ...interface{}) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.out, format, args...)
}

// Println writes a line with newline
func (w *Writer) Println(format string, args ...interface{}) {
	w.Print(format+"\n", args...)
}

// Header prints a section header
func (w *Writer) Header(title string) {
	w.Println(w.Color(Bold+Cyan, "━━━ "+title+" ━━━"))
	w.Println("")
}

// Success prints a success message
func (w *Writer) Success(format string, args ...interface{}) {
	w.Println(w.Color(Green, "✓ ")+format, args...)
}

// Warning prints a warning
func (w *Writer) Warning(format string, args ...interface{}) {
	w.Println(w.Color(Yellow, "⚠ ")+format, args...)
}

// Error prints an error
func (w *Writer) Error(format string, args ...interface{}) {
	w.Println(w.Color(Red, "✗ ")+format, args...)
}

// Align controls cell padding
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Table renders an aligned table. Widths count runes so that ¥ and
// box-drawing characters line up.
type Table struct {
	w       *Writer
	headers []string
	aligns  []Align
	rows    [][]string
	colors  []string
	widths  []int
}

// NewTable creates a table
func (w *Writer) NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	return &Table{
		w:       w,
		headers: headers,
		aligns:  make([]Align, len(headers)),
		widths:  widths,
	}
}

// SetAlign sets the alignment of column i
func (t *Table) SetAlign(i int, a Align) {
	if i >= 0 && i < len(t.aligns) {
		t.aligns[i] = a
	}
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	t.AddColoredRow("", cells...)
}

// AddColoredRow adds a row rendered in color c
func (t *Table) AddColoredRow(c string, cells ...string) {
	// Pad or truncate cells to match header count
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
		if n := utf8.RuneCountInString(row[i]); n > t.widths[i] {
			t.widths[i] = n
		}
	}
	t.rows = append(t.rows, row)
	t.colors = append(t.colors, c)
}

func (t *Table) line(cells []string) string {
	var b strings.Builder
	for i, cell := range cells {
		if i > 0 {
			b.WriteString(" │ ")
		}
		pad := strings.Repeat(" ", t.widths[i]-utf8.RuneCountInString(cell))
		if t.aligns[i] == AlignRight {
			b.WriteString(pad + cell)
		} else {
			b.WriteString(cell + pad)
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// Render prints the table
func (t *Table) Render() {
	t.w.Println("%s", t.w.Color(Bold, t.line(t.headers)))

	// Separator
	parts := make([]string, len(t.widths))
	for i, w := range t.widths {
		parts[i] = strings.Repeat("─", w)
	}
	t.w.Println("%s", strings.Join(parts, "─┼─"))

	for i, row := range t.rows {
		t.w.Println("%s", t.w.Color(t.colors[i], t.line(row)))
	}
}
