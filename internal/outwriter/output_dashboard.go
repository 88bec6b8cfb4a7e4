package outwriter

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/huangsam/starchart/internal/contract"
	"github.com/huangsam/starchart/schema"
)

const (
	chartWidth       = "100%"
	chartHeight      = "520px"
	emptyChartHeight = "240px"
	noDataSubtitle   = "No data available"
)

// PrintDashboard renders the dashboard page: the aligned line chart of the
// selection followed by a totals bar chart of the ranked catalog.
// The page is always HTML regardless of the configured output mode.
func PrintDashboard(aligned schema.AlignedResult, ranked []schema.RankedRepository, cfg *contract.Config) error {
	title := aligned.Metric.Title() + " over time"
	var line components.Charter = buildAlignedLineChart(aligned)
	if len(aligned.Repositories) == 0 || len(aligned.Points) == 0 {
		line = buildEmptyChart(title)
	}

	var bar components.Charter = buildTotalsBarChart(ranked, aligned.Metric)
	if len(ranked) == 0 {
		bar = buildEmptyChart("Total " + aligned.Metric.Title())
	}

	if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return renderPage(w, "starchart dashboard", line, bar)
	}, "Wrote HTML dashboard"); err != nil {
		return fmt.Errorf("error writing dashboard: %w", err)
	}
	return nil
}

// renderPage writes a standalone HTML page holding the given charts.
func renderPage(w io.Writer, title string, items ...components.Charter) error {
	page := components.NewPage()
	page.PageTitle = title
	page.AddCharts(items...)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render HTML page: %w", err)
	}
	return nil
}

func lineChartOptions(title, subtitle string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle, Left: "center"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Type: "scroll", Top: "10%", Left: "center"}),
		charts.WithDataZoomOpts(
			opts.DataZoom{Type: "slider", Start: 0, End: 100},
			opts.DataZoom{Type: "inside"},
		),
		charts.WithGridOpts(opts.Grid{Top: "25%", Bottom: "15%", Left: "5%", Right: "5%", ContainLabel: opts.Bool(true)}),
	}
}

// buildAlignedLineChart plots one smoothed line per repository on the shared date axis.
func buildAlignedLineChart(result schema.AlignedResult) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(lineChartOptions(result.Metric.Title()+" over time",
		fmt.Sprintf("%d repositories", len(result.Repositories)))...)
	line.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{Name: "Date"}),
		charts.WithYAxisOpts(opts.YAxis{Name: result.Metric.Title()}),
	)
	line.SetXAxis(result.Dates())
	for _, name := range result.Repositories {
		col := result.Column(name)
		data := make([]opts.LineData, len(col))
		for i, v := range col {
			data[i] = opts.LineData{Value: v}
		}
		line.AddSeries(name, data, charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	}
	return line
}

// buildSeriesLineChart plots both cumulative metrics of one repository.
func buildSeriesLineChart(result schema.SeriesResult) *charts.Line {
	subtitle := schema.GitHubURL(result.Name)
	if len(result.Points) > 0 {
		subtitle += " since " + schema.FormatDay(result.Points[0].Date)
	}
	line := charts.NewLine()
	line.SetGlobalOptions(lineChartOptions(result.Name, subtitle)...)

	dates := make([]string, len(result.Points))
	stars := make([]opts.LineData, len(result.Points))
	forks := make([]opts.LineData, len(result.Points))
	for i, p := range result.Points {
		dates[i] = p.Date
		stars[i] = opts.LineData{Value: p.Stars}
		forks[i] = opts.LineData{Value: p.Forks}
	}
	line.SetXAxis(dates)
	line.AddSeries(schema.StarsMetric.Title(), stars, charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	line.AddSeries(schema.ForksMetric.Title(), forks, charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	return line
}

// buildTotalsBarChart compares the current totals of ranked repositories.
func buildTotalsBarChart(ranked []schema.RankedRepository, metric schema.Metric) *charts.Bar {
	total := 0
	for _, r := range ranked {
		total += metricTotal(r, metric)
	}
	subtitle := fmt.Sprintf("%d repositories, %s combined", len(ranked), schema.FormatCompact(total))

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: "Total " + metric.Title(), Subtitle: subtitle, Left: "center"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Rotate: 30}}),
		charts.WithGridOpts(opts.Grid{Top: "15%", Bottom: "20%", Left: "5%", Right: "5%", ContainLabel: opts.Bool(true)}),
	)

	names := make([]string, len(ranked))
	data := make([]opts.BarData, len(ranked))
	for i, r := range ranked {
		names[i] = r.Name
		data[i] = opts.BarData{Value: metricTotal(r, metric)}
	}
	bar.SetXAxis(names)
	bar.AddSeries(metric.Title(), data)
	return bar
}

func metricTotal(r schema.RankedRepository, metric schema.Metric) int {
	if metric == schema.ForksMetric {
		return r.TotalForks
	}
	return r.TotalStars
}

// buildEmptyChart is a placeholder that tells the reader there is nothing to plot.
func buildEmptyChart(title string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: emptyChartHeight}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: noDataSubtitle, Left: "center"}),
	)
	return line
}
