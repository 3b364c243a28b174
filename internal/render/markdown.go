package render

import (
	"io"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/relatolabs/relato/internal/model"
)

// MarkdownWriter outputs report specifications in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write renders the spec as GitHub Flavored Markdown.
// Attribute gating matches TextWriter: unset attributes produce no
// output, and the column list is always rendered.
func (w *MarkdownWriter) Write(spec model.ReportSpec) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, spec)
	w.writeColumns(md, spec)
	w.writeFilters(md, spec)
	w.writeFooter(md, spec)

	md.Note("Report specification generated successfully.")

	return len(md.String()), md.Build()
}

// writeHeader writes the title and the property table.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, spec model.ReportSpec) {
	md.H1(spec.Title)
	md.PlainText("")

	rows := [][]string{
		{"Format", spec.Format},
		{"Period", spec.StartDate.Format(dateLayout) + " to " + spec.EndDate.Format(dateLayout)},
	}
	if spec.IncludeHeader {
		rows = append(rows, []string{"Header", spec.HeaderText})
	}
	if spec.IncludeCharts {
		rows = append(rows, []string{"Chart", spec.ChartType})
	}
	if spec.GroupBy != "" {
		rows = append(rows, []string{"Group By", spec.GroupBy})
	}
	if spec.IncludeTotals {
		rows = append(rows, []string{"Totals", "included"})
	}
	if spec.Orientation != "" || spec.PageSize != "" {
		rows = append(rows, []string{"Layout", strings.TrimSpace(spec.Orientation + " " + spec.PageSize)})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeColumns writes the column list. It is always present, even when empty.
func (w *MarkdownWriter) writeColumns(md *markdown.Markdown, spec model.ReportSpec) {
	md.H2("Columns")
	md.PlainText("")

	if len(spec.Columns) == 0 {
		md.PlainText("No columns defined.")
		md.PlainText("")
		return
	}

	md.BulletList(spec.Columns...)
	md.PlainText("")
}

// writeFilters writes the filter list, omitted entirely when empty.
func (w *MarkdownWriter) writeFilters(md *markdown.Markdown, spec model.ReportSpec) {
	if !spec.HasFilters() {
		return
	}

	md.H2("Filters")
	md.PlainText("")
	md.BulletList(spec.Filters...)
	md.PlainText("")
}

// writeFooter writes the footer text, omitted when the spec has no footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown, spec model.ReportSpec) {
	if !spec.IncludeFooter {
		return
	}

	md.HorizontalRule()
	md.PlainText(spec.FooterText)
	md.PlainText("")
}
