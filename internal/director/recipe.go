package director

import (
	"strings"
	"time"

	"github.com/relatolabs/relato/internal/builder"
	"github.com/relatolabs/relato/internal/config"
	"github.com/relatolabs/relato/internal/model"
)

// labelPlaceholder marks where the caller-supplied label is substituted
// into a custom recipe's title template.
const labelPlaceholder = "{label}"

// CustomReport drives the builder through a recipe loaded from the
// configuration file. The label replaces every "{label}" placeholder in
// the recipe's title template; a template without the placeholder is
// used verbatim.
//
// The director applies the recipe's fields in the same order the
// built-in recipes use and performs no validation of its own: a recipe
// with an empty title or format surfaces as the builder's own
// ValidationError from Build.
func CustomReport(b *builder.ReportBuilder, recipe config.Recipe, label string, start, end time.Time) (model.ReportSpec, error) {
	b.
		SetTitle(strings.ReplaceAll(recipe.Title, labelPlaceholder, label)).
		SetFormat(recipe.Format).
		SetStartDate(start).
		SetEndDate(end)

	if recipe.Header != "" {
		b.IncludeHeader(recipe.Header)
	}
	if recipe.Footer != "" {
		b.IncludeFooter(recipe.Footer)
	}
	for _, column := range recipe.Columns {
		b.AddColumn(column)
	}
	if recipe.Chart != "" {
		b.IncludeCharts(recipe.Chart)
	}
	if recipe.GroupBy != "" {
		b.SetGroupBy(recipe.GroupBy)
	}
	if recipe.Totals {
		b.IncludeTotals()
	}
	for _, filter := range recipe.Filters {
		b.AddFilter(filter)
	}
	if recipe.Orientation != "" {
		b.SetOrientation(recipe.Orientation)
	}
	if recipe.PageSize != "" {
		b.SetPageSize(recipe.PageSize)
	}

	return b.Build()
}
