package builder

import (
	"time"

	"github.com/relatolabs/relato/internal/model"
)

// ReportBuilder accumulates configuration for exactly one report
// specification. Every setter mutates the in-progress spec and returns
// the same builder so that calls chain fluently. Setters never fail;
// required fields are checked once, in Build.
//
// A ReportBuilder is not safe for concurrent use. It is owned by one
// caller for its whole construction sequence.
type ReportBuilder struct {
	// spec is the in-progress specification, mutable until Build succeeds.
	spec model.ReportSpec

	// finalized is set after a successful Build. Once set, setters become
	// no-ops and further Build calls return ErrBuilderFinalized.
	finalized bool
}

// NewReportBuilder creates a builder with an empty in-progress spec.
func NewReportBuilder() *ReportBuilder {
	return &ReportBuilder{}
}

// SetTitle overwrites the report title.
func (b *ReportBuilder) SetTitle(title string) *ReportBuilder {
	if b.finalized {
		return b
	}
	b.spec.Title = title
	return b
}

// SetFormat overwrites the output format token.
// The value is not checked against any known set of formats.
func (b *ReportBuilder) SetFormat(format string) *ReportBuilder {
	if b.finalized {
		return b
	}
	b.spec.Format = format
	return b
}

// SetStartDate overwrites the beginning of the reporting period.
func (b *ReportBuilder) SetStartDate(date time.Time) *ReportBuilder {
	if b.finalized {
		return b
	}
	b.spec.StartDate = date
	return b
}

// SetEndDate overwrites the end of the reporting period.
// No ordering relative to the start date is enforced, here or in Build.
func (b *ReportBuilder) SetEndDate(date time.Time) *ReportBuilder {
	if b.finalized {
		return b
	}
	b.spec.EndDate = date
	return b
}

// IncludeHeader enables the header band and sets its text.
func (b *ReportBuilder) IncludeHeader(text string) *ReportBuilder {
	if b.finalized {
		return b
	}
	b.spec.IncludeHeader = true
	b.spec.HeaderText = text
	return b
}

// IncludeFooter enables the footer band and sets its text.
func (b *ReportBuilder) IncludeFooter(text string) *ReportBuilder {
	if b.finalized {
		return b
	}
	b.spec.IncludeFooter = true
	b.spec.FooterText = text
	return b
}

// IncludeCharts enables chart embedding and sets the chart type token.
func (b *ReportBuilder) IncludeCharts(chartType string) *ReportBuilder {
	if b.finalized {
		return b
	}
	b.spec.IncludeCharts = true
	b.spec.ChartType = chartType
	return b
}

// AddColumn appends a column name. Insertion order is preserved and
// duplicates are permitted.
func (b *ReportBuilder) AddColumn(name string) *ReportBuilder {
	if b.finalized {
		return b
	}
	b.spec.Columns = append(b.spec.Columns, name)
	return b
}

// AddFilter appends a filter expression (e.g., "Status=Fechado").
// Insertion order is preserved and duplicates are permitted.
func (b *ReportBuilder) AddFilter(expr string) *ReportBuilder {
	if b.finalized {
		return b
	}
	b.spec.Filters = append(b.spec.Filters, expr)
	return b
}

// SetGroupBy overwrites the grouping field.
func (b *ReportBuilder) SetGroupBy(field string) *ReportBuilder {
	if b.finalized {
		return b
	}
	b.spec.GroupBy = field
	return b
}

// IncludeTotals enables the totals row.
func (b *ReportBuilder) IncludeTotals() *ReportBuilder {
	if b.finalized {
		return b
	}
	b.spec.IncludeTotals = true
	return b
}

// SetOrientation overwrites the page orientation token.
func (b *ReportBuilder) SetOrientation(value string) *ReportBuilder {
	if b.finalized {
		return b
	}
	b.spec.Orientation = value
	return b
}

// SetPageSize overwrites the paper size token.
func (b *ReportBuilder) SetPageSize(value string) *ReportBuilder {
	if b.finalized {
		return b
	}
	b.spec.PageSize = value
	return b
}

// Build validates the accumulated configuration and returns the
// finalized specification.
//
// Validation covers only the required fields, checked in a fixed order:
// title, format, start date, end date. The first missing field aborts
// the build with a *ValidationError naming it.
//
// On failure the builder stays open: the caller can set the missing
// field and call Build again. On success the builder is sealed — later
// setters are no-ops and later Build calls return ErrBuilderFinalized.
func (b *ReportBuilder) Build() (model.ReportSpec, error) {
	if b.finalized {
		return model.ReportSpec{}, ErrBuilderFinalized
	}

	if b.spec.Title == "" {
		return model.ReportSpec{}, &ValidationError{Field: FieldTitle}
	}
	if b.spec.Format == "" {
		return model.ReportSpec{}, &ValidationError{Field: FieldFormat}
	}
	if b.spec.StartDate.IsZero() {
		return model.ReportSpec{}, &ValidationError{Field: FieldStartDate}
	}
	if b.spec.EndDate.IsZero() {
		return model.ReportSpec{}, &ValidationError{Field: FieldEndDate}
	}

	b.finalized = true

	// Return a value whose slices are detached from the builder, so the
	// finalized spec cannot change even if the builder is misused later.
	spec := b.spec
	spec.Columns = append(make([]string, 0, len(b.spec.Columns)), b.spec.Columns...)
	spec.Filters = append(make([]string, 0, len(b.spec.Filters)), b.spec.Filters...)
	return spec, nil
}
