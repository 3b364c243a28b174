package director

import (
	"strconv"
	"time"

	"github.com/relatolabs/relato/internal/builder"
	"github.com/relatolabs/relato/internal/model"
)

// MonthlySalesReport drives the builder through the monthly sales recipe.
// The month label is interpolated into the title as-is (e.g., "Janeiro/2024").
// Any error from Build is propagated unchanged.
func MonthlySalesReport(b *builder.ReportBuilder, month string, start, end time.Time) (model.ReportSpec, error) {
	return b.
		SetTitle("Vendas Mensais - " + month).
		SetFormat(model.FormatPDF).
		SetStartDate(start).
		SetEndDate(end).
		IncludeHeader("Relatório de Vendas Mensais").
		IncludeFooter("Confidencial - Uso Interno").
		AddColumn("Produto").
		AddColumn("Quantidade").
		AddColumn("Valor Total").
		IncludeCharts(model.ChartBar).
		SetGroupBy("Categoria").
		IncludeTotals().
		SetOrientation(model.OrientationPortrait).
		SetPageSize(model.PageSizeA4).
		Build()
}

// QuarterlyExecutiveReport drives the builder through the quarterly
// executive recipe. The report carries a header but no footer, and a
// fixed filter restricting rows to closed deals.
func QuarterlyExecutiveReport(b *builder.ReportBuilder, quarter string, start, end time.Time) (model.ReportSpec, error) {
	return b.
		SetTitle("Relatório Executivo - " + quarter).
		SetFormat(model.FormatExcel).
		SetStartDate(start).
		SetEndDate(end).
		IncludeHeader("Relatório Executivo Trimestral").
		AddColumn("Vendedor").
		AddColumn("Região").
		AddColumn("Meta").
		AddColumn("Realizado").
		AddColumn("% Atingimento").
		IncludeCharts(model.ChartLine).
		SetGroupBy("Região").
		IncludeTotals().
		AddFilter("Status=Fechado").
		SetOrientation(model.OrientationLandscape).
		SetPageSize(model.PageSizeA4).
		Build()
}

// AnnualAnalyticsReport drives the builder through the annual analytics
// recipe. The reporting period is January 1 through December 31 of the
// given year.
func AnnualAnalyticsReport(b *builder.ReportBuilder, year int) (model.ReportSpec, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	return b.
		SetTitle("Análise Anual de Vendas - " + strconv.Itoa(year)).
		SetFormat(model.FormatPDF).
		SetStartDate(start).
		SetEndDate(end).
		IncludeHeader("Análise Anual de Vendas").
		IncludeFooter("Confidencial - Uso Interno").
		AddColumn("Mês").
		AddColumn("Produto").
		AddColumn("Categoria").
		AddColumn("Vendas").
		AddColumn("Crescimento %").
		IncludeCharts(model.ChartPie).
		SetGroupBy("Mês").
		IncludeTotals().
		AddFilter("Status=Aprovado").
		SetOrientation(model.OrientationLandscape).
		SetPageSize(model.PageSizeA3).
		Build()
}
