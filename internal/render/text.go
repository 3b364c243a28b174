package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/relatolabs/relato/internal/model"
)

// dateLayout is the format used for period dates in text output.
const dateLayout = "2006-01-02"

// TextWriter outputs human-readable text report specifications.
// This format is designed for terminal display with clear label
// alignment and a banner framing the output.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
type TextWriter struct {
	baseWriter

	// banner controls whether the decorative banner lines are printed.
	// Disabling the banner produces output that is easier to post-process.
	banner bool
}

// TextWriterOption configures a TextWriter.
type TextWriterOption func(*TextWriter)

// WithBanner controls whether the banner framing is printed.
func WithBanner(banner bool) TextWriterOption {
	return func(w *TextWriter) {
		w.banner = banner
	}
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer, opts ...TextWriterOption) *TextWriter {
	w := &TextWriter{
		baseWriter: newBaseWriter(output),
		banner:     true,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write renders the spec as plain text.
//
// Lines appear in a fixed order, one per populated attribute: title,
// format, period, header, chart, columns, filters, grouping, totals,
// layout, footer, and a closing success line. Unset attributes are
// omitted entirely; the column list is the only section always printed,
// even when empty.
func (w *TextWriter) Write(spec model.ReportSpec) (int, error) {
	var sb strings.Builder

	if w.banner {
		sb.WriteString(strings.Repeat("=", 60))
		sb.WriteString("\n")
		sb.WriteString("                 REPORT SPECIFICATION\n")
		sb.WriteString(strings.Repeat("=", 60))
		sb.WriteString("\n\n")
	}

	sb.WriteString(fmt.Sprintf("Title:   %s\n", spec.Title))
	sb.WriteString(fmt.Sprintf("Format:  %s\n", spec.Format))
	sb.WriteString(fmt.Sprintf("Period:  %s to %s\n",
		spec.StartDate.Format(dateLayout), spec.EndDate.Format(dateLayout)))

	if spec.IncludeHeader {
		sb.WriteString(fmt.Sprintf("Header:  %s\n", spec.HeaderText))
	}
	if spec.IncludeCharts {
		sb.WriteString(fmt.Sprintf("Chart:   %s\n", spec.ChartType))
	}

	// Columns are always listed, even when empty.
	if len(spec.Columns) == 0 {
		sb.WriteString("Columns: (none)\n")
	} else {
		sb.WriteString(fmt.Sprintf("Columns: %s\n", strings.Join(spec.Columns, ", ")))
	}

	if spec.HasFilters() {
		sb.WriteString(fmt.Sprintf("Filters: %s\n", strings.Join(spec.Filters, ", ")))
	}
	if spec.GroupBy != "" {
		sb.WriteString(fmt.Sprintf("Group By: %s\n", spec.GroupBy))
	}
	if spec.IncludeTotals {
		sb.WriteString("Totals:  included\n")
	}
	if spec.Orientation != "" || spec.PageSize != "" {
		sb.WriteString(fmt.Sprintf("Layout:  %s %s\n", spec.Orientation, spec.PageSize))
	}
	if spec.IncludeFooter {
		sb.WriteString(fmt.Sprintf("Footer:  %s\n", spec.FooterText))
	}

	sb.WriteString("\nReport specification generated successfully.\n")

	return w.output.Write([]byte(sb.String()))
}
