package config

// Recipe defines a custom report recipe loaded from the configuration file.
// A recipe fixes every aspect of a report shape except the period: the
// caller still supplies the label and the start/end dates at generation time.
//
// The title template may contain the "{label}" placeholder, which the
// director replaces with the caller-supplied label.
type Recipe struct {
	// Title is the report title template (e.g., "Vendas Regionais - {label}").
	Title string `yaml:"title"`

	// Format is the output format token (e.g., "PDF", "Excel", "HTML").
	Format string `yaml:"format"`

	// Header is the header band text. Empty means no header.
	Header string `yaml:"header,omitempty"`

	// Footer is the footer band text. Empty means no footer.
	Footer string `yaml:"footer,omitempty"`

	// Columns lists the report columns in order.
	Columns []string `yaml:"columns,omitempty"`

	// Filters lists fixed filter expressions (e.g., "Status=Fechado").
	Filters []string `yaml:"filters,omitempty"`

	// Chart is the chart type token. Empty means no chart.
	Chart string `yaml:"chart,omitempty"`

	// GroupBy is the grouping field. Empty means ungrouped.
	GroupBy string `yaml:"groupBy,omitempty"`

	// Totals indicates whether a totals row is appended.
	Totals bool `yaml:"totals,omitempty"`

	// Orientation is the page orientation token.
	Orientation string `yaml:"orientation,omitempty"`

	// PageSize is the paper size token.
	PageSize string `yaml:"pageSize,omitempty"`
}

// File represents the structure of the .relato.yaml configuration file.
type File struct {
	// Recipes maps recipe names to their definitions.
	// Names matching a built-in recipe are reserved and ignored at lookup.
	Recipes map[string]Recipe `yaml:"recipes,omitempty"`
}

// Lookup returns the custom recipe with the given name.
// Built-in recipe names never resolve to a file-defined recipe, even if
// the file declares one under that name.
func (f *File) Lookup(name string) (Recipe, bool) {
	if IsBuiltinRecipe(name) {
		return Recipe{}, false
	}
	recipe, ok := f.Recipes[name]
	return recipe, ok
}

// Names returns the custom recipe names in no particular order,
// excluding any that collide with built-in recipe names.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Recipes))
	for name := range f.Recipes {
		if IsBuiltinRecipe(name) {
			continue
		}
		names = append(names, name)
	}
	return names
}
