// Package builder provides the incremental, validated construction of
// report specifications.
//
// A ReportBuilder accumulates configuration through chained setter calls
// and validates required fields exactly once, when Build is called:
//
//	spec, err := builder.NewReportBuilder().
//		SetTitle("Vendas Mensais - Janeiro/2024").
//		SetFormat(model.FormatPDF).
//		SetStartDate(start).
//		SetEndDate(end).
//		AddColumn("Produto").
//		Build()
//
// Design decision: Setters never fail and perform no validation. All
// checking is deferred to Build so that callers can apply configuration
// in any order without caring about intermediate states. Validation
// depth is deliberately minimal: only title, format, and the two period
// dates are required. Everything else (format tokens, chart types, date
// ordering) is accepted as given.
package builder
