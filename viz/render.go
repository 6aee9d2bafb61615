// Package viz turns reduced chart descriptors into self-contained HTML
// pages via go-echarts. It only consumes descriptors the engine has already
// optimized; all painting is delegated to the charting library.
package viz

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/SecTionXx/SaleOrderForecast-sub001/chartopt"
)

// Render writes an HTML page for the descriptor. Bar datasets render as
// bars, scatter as scatter, everything else (line, area, fallback types)
// as lines over a numeric x-axis.
func Render(chart *chartopt.ChartDescriptor, w io.Writer) error {
	if chart == nil {
		return fmt.Errorf("rendering nil chart")
	}
	switch chart.Type {
	case chartopt.ChartBar, chartopt.ChartHorizontalBar:
		return renderBar(chart, w)
	case chartopt.ChartScatter:
		return renderScatter(chart, w)
	default:
		return renderLine(chart, w)
	}
}

func renderLine(chart *chartopt.ChartDescriptor, w io.Writer) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: chart.Title}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)
	for _, ds := range chart.Datasets {
		if ds == nil {
			continue
		}
		items := make([]opts.LineData, 0, len(ds.Points))
		for _, p := range ds.Points {
			items = append(items, opts.LineData{Value: []interface{}{p.X, p.Y}})
		}
		line.AddSeries(ds.Label, items)
	}
	return line.Render(w)
}

func renderBar(chart *chartopt.ChartDescriptor, w io.Writer) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: chart.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	var labels []string
	for _, ds := range chart.Datasets {
		if ds == nil {
			continue
		}
		if labels == nil {
			labels = barLabels(ds.Points)
			bar.SetXAxis(labels)
		}
		items := make([]opts.BarData, 0, len(ds.Points))
		for _, p := range ds.Points {
			items = append(items, opts.BarData{Value: p.Y})
		}
		bar.AddSeries(ds.Label, items)
	}
	return bar.Render(w)
}

func renderScatter(chart *chartopt.ChartDescriptor, w io.Writer) error {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: chart.Title}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value"}),
	)
	for _, ds := range chart.Datasets {
		if ds == nil {
			continue
		}
		items := make([]opts.ScatterData, 0, len(ds.Points))
		for _, p := range ds.Points {
			items = append(items, opts.ScatterData{Value: []interface{}{p.X, p.Y}})
		}
		scatter.AddSeries(ds.Label, items)
	}
	return scatter.Render(w)
}

// barLabels prefers the points' categorical labels and falls back to X.
func barLabels(points []chartopt.Point) []string {
	labels := make([]string, len(points))
	for i, p := range points {
		if p.Label != "" {
			labels[i] = p.Label
		} else {
			labels[i] = fmt.Sprintf("%g", p.X)
		}
	}
	return labels
}
