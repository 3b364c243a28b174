package model

// Well-known format tokens.
//
// Design decision: These are plain string constants rather than a closed
// enum type because the builder intentionally accepts any token. A report
// format we have never heard of is a renderer concern, not a validation
// error. The constants exist so that recipes and callers spell the common
// values consistently.
const (
	// FormatPDF targets PDF output.
	FormatPDF = "PDF"

	// FormatExcel targets Excel (spreadsheet) output.
	FormatExcel = "Excel"

	// FormatHTML targets HTML output.
	FormatHTML = "HTML"
)

// Well-known chart type tokens.
const (
	// ChartBar is a vertical bar chart.
	ChartBar = "Bar"

	// ChartLine is a line chart.
	ChartLine = "Line"

	// ChartPie is a pie chart.
	ChartPie = "Pie"
)

// Well-known page orientation tokens.
const (
	// OrientationPortrait lays the page out taller than wide.
	OrientationPortrait = "Portrait"

	// OrientationLandscape lays the page out wider than tall.
	OrientationLandscape = "Landscape"
)

// Well-known page size tokens.
const (
	// PageSizeA4 is the ISO 216 A4 paper size.
	PageSizeA4 = "A4"

	// PageSizeA3 is the ISO 216 A3 paper size.
	PageSizeA3 = "A3"
)
