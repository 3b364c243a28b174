package model

import (
	"time"
)

// ReportSpec is the finalized report specification.
// It describes every aspect of one report: identity, period, layout,
// and the data shape (columns, filters, grouping).
//
// Design decision: We use a single flat struct rather than nested
// sub-structs (e.g., LayoutSpec, DataSpec) because the field count is
// manageable and a flat shape serializes cleanly. A ReportSpec is only
// created by the builder's Build method; everywhere else it travels by
// value and is treated as immutable.
type ReportSpec struct {
	// === Identity ===

	// Title is the report title shown at the top of the rendered output.
	Title string `json:"title"`

	// Format is the target output format token (e.g., "PDF", "Excel", "HTML").
	// The value is a free token; it is not checked against a fixed set.
	Format string `json:"format"`

	// === Period ===

	// StartDate is the beginning of the reporting period.
	StartDate time.Time `json:"start_date"`

	// EndDate is the end of the reporting period.
	// No ordering relative to StartDate is enforced.
	EndDate time.Time `json:"end_date"`

	// === Header and Footer ===

	// IncludeHeader indicates whether the report has a header band.
	IncludeHeader bool `json:"include_header"`

	// HeaderText is the header band content.
	// Only meaningful when IncludeHeader is true.
	HeaderText string `json:"header_text,omitempty"`

	// IncludeFooter indicates whether the report has a footer band.
	IncludeFooter bool `json:"include_footer"`

	// FooterText is the footer band content.
	// Only meaningful when IncludeFooter is true.
	FooterText string `json:"footer_text,omitempty"`

	// === Charts ===

	// IncludeCharts indicates whether the report embeds a chart.
	IncludeCharts bool `json:"include_charts"`

	// ChartType is the chart kind token (e.g., "Bar", "Line", "Pie").
	// Only meaningful when IncludeCharts is true.
	ChartType string `json:"chart_type,omitempty"`

	// === Data Shape ===

	// Columns lists the report columns in insertion order.
	// Duplicates are permitted; the list may be empty.
	Columns []string `json:"columns"`

	// Filters lists filter expressions in insertion order (e.g., "Status=Fechado").
	Filters []string `json:"filters,omitempty"`

	// GroupBy is the field the report rows are grouped by. Empty means ungrouped.
	GroupBy string `json:"group_by,omitempty"`

	// IncludeTotals indicates whether a totals row is appended.
	IncludeTotals bool `json:"include_totals"`

	// === Page Layout ===

	// Orientation is the page orientation token (e.g., "Portrait", "Landscape").
	Orientation string `json:"orientation,omitempty"`

	// PageSize is the paper size token (e.g., "A4", "A3").
	PageSize string `json:"page_size,omitempty"`
}

// HasFilters reports whether any filter expression is set.
func (s ReportSpec) HasFilters() bool {
	return len(s.Filters) > 0
}

// Period returns the reporting period as a start/end pair.
// Both dates are guaranteed non-zero for any spec produced by the builder.
func (s ReportSpec) Period() (start, end time.Time) {
	return s.StartDate, s.EndDate
}
