package viz

import (
	"errors"
	"fmt"
	"image"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/AlexShukel/KDP-Algoritmai/src/analysis"
)

const (
	defaultBenchmarkWidth  = 1400
	defaultBenchmarkHeight = 800

	// half bar width in x-axis units, with bars centered on 1..n
	barHalfWidth = 0.35
)

// ErrNoData signals that a renderer received zero records or points. Callers
// report "nothing to render" and skip output instead of producing an empty
// chart.
var ErrNoData = errors.New("no data to render")

// RenderBenchmark draws one bar per aggregated series point, in the given
// (already sorted) order. With logScale set the y axis is logarithmic and the
// per-bar value labels are offset multiplicatively above the bar top, since
// an additive offset is visually incorrect on a log axis.
func RenderBenchmark(series []analysis.SeriesPoint, title string, logScale bool, opts Options) (image.Image, error) {
	if len(series) == 0 {
		return nil, ErrNoData
	}
	w, h := opts.size(defaultBenchmarkWidth, defaultBenchmarkHeight)
	n := len(series)

	minAvg, maxAvg := series[0].AvgTime, series[0].AvgTime
	for _, sp := range series[1:] {
		if sp.AvgTime < minAvg {
			minAvg = sp.AvgTime
		}
		if sp.AvgTime > maxAvg {
			maxAvg = sp.AvgTime
		}
	}

	xr := &chart.ContinuousRange{Min: 0.5, Max: float64(n) + 0.5}
	var yr chart.Range
	var yTicks []chart.Tick
	yAxisName := "Avg execution time (ms)"
	if logScale {
		yAxisName = "Avg execution time (ms) - log scale"
		lo := minAvg
		if lo <= 0 {
			lo = 0.1
		}
		hi := maxAvg
		if hi <= lo {
			hi = lo * 10
		}
		yr = &chart.LogarithmicRange{
			Min: math.Pow(10, math.Floor(math.Log10(lo))),
			Max: math.Pow(10, math.Ceil(math.Log10(hi*1.3))),
		}
	} else {
		// headroom above the tallest bar for its value label
		_, nMax := niceAxisBounds(0, maxAvg*1.08)
		yr = &chart.ContinuousRange{Min: 0, Max: nMax}
		yTicks = niceTicks(0, nMax, 6)
	}

	xTicks := make([]chart.Tick, 0, n+2)
	xTicks = append(xTicks, chart.Tick{Value: 0.5, Label: ""})
	for i, sp := range series {
		xTicks = append(xTicks, chart.Tick{Value: float64(i + 1), Label: sp.Label})
	}
	xTicks = append(xTicks, chart.Tick{Value: float64(n) + 0.5, Label: ""})

	// Anchor series keeps go-chart's series validation happy; the visible
	// bars are drawn by the renderable below.
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, sp := range series {
		xs[i] = float64(i + 1)
		ys[i] = sp.AvgTime
	}

	ch := chart.Chart{
		Title:      fmt.Sprintf("Benchmark results: %s (avg execution time per problem size)", title),
		TitleStyle: chart.Style{FontSize: 14},
		Width:      w,
		Height:     h,
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 16, Right: 12, Bottom: 48}},
		XAxis: chart.XAxis{
			Name:      "Problem size (vehicles_orders)",
			Ticks:     xTicks,
			Range:     xr,
			TickStyle: chart.Style{TextRotationDegrees: 45, FontSize: 9},
		},
		YAxis: chart.YAxis{
			Name:           yAxisName,
			Range:          yr,
			Ticks:          yTicks,
			GridMajorStyle: gridStyle(),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xs,
				YValues: ys,
				Style:   chart.Style{StrokeColor: chart.ColorTransparent},
			},
		},
	}
	ch.Elements = []chart.Renderable{drawBars(xr, yr, series, logScale)}

	img, err := renderPNG(ch)
	if err != nil {
		return nil, fmt.Errorf("render benchmark chart: %w", err)
	}
	return img, nil
}

// drawBars paints the bars and their value labels once the axes have fixed
// the range domains. Bar i is centered on x=i+1 and runs down to the canvas
// bottom (the y-range minimum).
func drawBars(xr, yr chart.Range, series []analysis.SeriesPoint, logScale bool) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		halfPx := int(float64(xr.GetDomain()) * barHalfWidth / xr.GetDelta())
		if halfPx < 2 {
			halfPx = 2
		}
		barStyle := chart.Style{FillColor: colorBarFill, StrokeColor: colorBarEdge, StrokeWidth: 1}
		labelStyle := chart.Style{FontSize: 8, FontColor: colorBarEdge}.InheritFrom(defaults)

		for i, sp := range series {
			xc := canvasBox.Left + xr.Translate(float64(i+1))
			top := canvasBox.Bottom - yr.Translate(sp.AvgTime)
			if top > canvasBox.Bottom {
				top = canvasBox.Bottom
			}
			chart.Draw.Box(r, chart.Box{
				Top:    top,
				Left:   xc - halfPx,
				Right:  xc + halfPx,
				Bottom: canvasBox.Bottom,
			}, barStyle)

			labelY := top - 4
			if logScale {
				labelY = canvasBox.Bottom - yr.Translate(sp.AvgTime*1.1)
			}
			font := labelStyle.GetFont()
			if font == nil {
				font, _ = chart.GetDefaultFont()
			}
			r.SetFont(font)
			r.SetFontSize(labelStyle.GetFontSize())
			r.SetFontColor(labelStyle.FontColor)
			r.SetTextRotation(-math.Pi / 2)
			r.Text(analysis.FormatMillis(sp.AvgTime), xc+3, labelY)
			r.ClearTextRotation()
		}
	}
}
