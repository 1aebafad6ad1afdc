// Package chart renders report result sets as horizontal bar chart
// PNG files.
package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ewilliams-labs/trackline/internal/core/domain"
	"github.com/ewilliams-labs/trackline/internal/core/ports"
)

var (
	skyBlue    = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	lightCoral = color.RGBA{R: 240, G: 128, B: 128, A: 255}
)

// Renderer implements the chart renderer port with gonum/plot.
type Renderer struct{}

// compile-time interface assertion
var _ ports.ChartRenderer = Renderer{}

// NewRenderer constructs a Renderer.
func NewRenderer() Renderer {
	return Renderer{}
}

// RenderLabelCounts draws the labels-by-track-count chart, busiest
// label at the top.
func (Renderer) RenderLabelCounts(path string, title string, rows []domain.LabelCount) error {
	names := make([]string, len(rows))
	values := make(plotter.Values, len(rows))
	for i, row := range rows {
		names[i] = row.Label
		values[i] = float64(row.TrackCount)
	}
	return renderBars(path, title, "Number of Tracks", "Label", names, values, skyBlue)
}

// RenderTrackPopularity draws the popular-tracks chart, most popular
// track at the top.
func (Renderer) RenderTrackPopularity(path string, title string, rows []domain.TrackPopularity) error {
	names := make([]string, len(rows))
	values := make(plotter.Values, len(rows))
	for i, row := range rows {
		names[i] = row.Name
		values[i] = float64(row.Popularity)
	}
	return renderBars(path, title, "Track Popularity", "Track Name", names, values, lightCoral)
}

// renderBars draws one horizontal bar chart. Rows arrive ranked best
// first; the nominal Y axis grows upward, so they are reversed to put
// the top-ranked entry at the top of the image.
func renderBars(path, title, xLabel, yLabel string, names []string, values plotter.Values, fill color.Color) error {
	reverse(names)
	reverse(values)

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	bars, err := plotter.NewBarChart(values, vg.Points(10))
	if err != nil {
		return fmt.Errorf("chart renderer: %w", err)
	}
	bars.Horizontal = true
	bars.Color = fill
	bars.LineStyle.Width = 0

	p.Add(bars)
	p.NominalY(names...)

	if err := p.Save(12*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("chart renderer: save %s: %w", path, err)
	}

	return nil
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
