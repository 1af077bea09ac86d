// Package viz renders the VRPPD visual artifacts: per-instance illustrations,
// benchmark bar charts and geographic distribution scatters. Everything is
// drawn through go-chart into an image.Image; callers own persistence and
// display. Renderers are stateless, all configuration arrives as parameters.
package viz

import (
	"bytes"
	"image"
	"image/png"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Options controls raster sizing for one render call. Zero values take the
// per-chart defaults.
type Options struct {
	Width  int
	Height int
}

func (o Options) size(defWidth, defHeight int) (int, int) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = defWidth
	}
	if h <= 0 {
		h = defHeight
	}
	return w, h
}

// Entity colors. Kinds are told apart by color alone so no legend is needed
// on the illustration.
var (
	colorVehicle      = drawing.Color{R: 0, G: 90, B: 200, A: 255}
	colorPickup       = drawing.Color{R: 34, G: 139, B: 34, A: 255}
	colorPickupText   = drawing.Color{R: 0, G: 100, B: 0, A: 255}
	colorDelivery     = drawing.Color{R: 200, G: 30, B: 30, A: 255}
	colorDeliveryText = drawing.Color{R: 139, G: 0, B: 0, A: 255}
	colorConnector    = drawing.Color{R: 128, G: 128, B: 128, A: 255}
	colorGrid         = drawing.Color{R: 0, G: 0, B: 0, A: 40}
	colorBarFill      = drawing.Color{R: 135, G: 206, B: 235, A: 178} // sky blue
	colorBarEdge      = drawing.Color{R: 0, G: 0, B: 128, A: 255}     // navy
)

// pointStyle returns a style that renders points only (no connecting line).
func pointStyle(col drawing.Color, width float64) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		DotWidth:    width,
		DotColor:    col,
	}
}

// gridStyle is the light dashed grid drawn behind every chart.
func gridStyle() chart.Style {
	return chart.Style{
		StrokeColor:     colorGrid,
		StrokeWidth:     1,
		StrokeDashArray: []float64{3, 3},
	}
}

// renderPNG rasterizes the chart and decodes it back to an image for the
// caller to encode or display.
func renderPNG(ch chart.Chart) (image.Image, error) {
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}

// Approximate gutters go-chart reserves around the plot area for axis labels.
// Used to fit the coordinate extent to the drawable region so equal-aspect
// holds on the rendered pixels.
const (
	gutterX = 110
	gutterY = 90
)

func plotArea(w, h int) (float64, float64) {
	pw, ph := float64(w-gutterX), float64(h-gutterY)
	if pw < 1 {
		pw = 1
	}
	if ph < 1 {
		ph = 1
	}
	return pw, ph
}
