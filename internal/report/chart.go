package report

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/agreement.report/internal/kappa"
)

// WriteChartHTML renders a self-contained per-question kappa bar chart.
// Questions with an undefined kappa appear as gaps.
func WriteChartHTML(w io.Writer, results []kappa.Result) error {
	questions := make([]string, 0, len(results))
	data := make([]opts.BarData, 0, len(results))
	undefined := 0
	for _, r := range results {
		questions = append(questions, r.Question)
		if math.IsNaN(r.Kappa) {
			undefined++
			data = append(data, opts.BarData{Value: nil, Name: r.Question})
			continue
		}
		data = append(data, opts.BarData{Value: r.Kappa, Name: r.Question})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Fleiss' Kappa Agreement", Width: "1200px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Fleiss' Kappa by Question",
			Subtitle: fmt.Sprintf("questions=%d undefined=%d | bands: 0.01 slight, 0.21 fair, 0.41 moderate, 0.61 substantial, 0.81 almost perfect", len(results), undefined),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Fleiss' Kappa"}),
	)
	bar.SetXAxis(questions).AddSeries("kappa", data)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %v", err)
	}
	return nil
}

// SaveChartPNG writes the same per-question chart as a PNG. Undefined
// kappa values are drawn as zero-height bars; the title carries the
// undefined count so they are not mistaken for genuine zeros.
func SaveChartPNG(path string, results []kappa.Result) error {
	values := make(plotter.Values, 0, len(results))
	questions := make([]string, 0, len(results))
	undefined := 0
	for _, r := range results {
		questions = append(questions, r.Question)
		if math.IsNaN(r.Kappa) {
			undefined++
			values = append(values, 0)
			continue
		}
		values = append(values, r.Kappa)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Fleiss' Kappa by Question (%d questions, %d undefined)", len(results), undefined)
	p.Y.Label.Text = "Fleiss' Kappa"

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return fmt.Errorf("failed to build bar chart: %v", err)
	}
	p.Add(bars)
	p.NominalX(questions...)

	if err := p.Save(14*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save chart %s: %v", path, err)
	}
	return nil
}
