package viz

import (
	"fmt"
	"image"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/AlexShukel/KDP-Algoritmai/src/geometry"
	"github.com/AlexShukel/KDP-Algoritmai/src/types"
)

const (
	defaultDistributionWidth  = 1200
	defaultDistributionHeight = 1000
)

// RenderDistribution plots vehicle and order coordinates on one shared pair
// of equal-scaled axes. Vehicles draw as small translucent dots so dense
// coverage does not overwhelm the sparser, larger order markers. Inputs are
// geographic coordinates, so axes are Longitude/Latitude and aspect is kept
// equal to not misrepresent distance.
func RenderDistribution(vehiclePts, orderPts []types.Point2D, opts Options) (image.Image, error) {
	if len(vehiclePts) == 0 && len(orderPts) == 0 {
		return nil, ErrNoData
	}
	w, h := opts.size(defaultDistributionWidth, defaultDistributionHeight)
	pw, ph := plotArea(w, h)

	all := make([]types.Point2D, 0, len(vehiclePts)+len(orderPts))
	all = append(all, vehiclePts...)
	all = append(all, orderPts...)
	ext := geometry.FitAspect(geometry.Compute(all), pw, ph)

	// Hidden anchor spanning the extent; keeps it out of the legend.
	series := []chart.Series{
		chart.ContinuousSeries{
			XValues: []float64{ext.MinX, ext.MaxX},
			YValues: []float64{ext.MinY, ext.MaxY},
			Style:   chart.Style{Hidden: true},
		},
	}
	if len(vehiclePts) > 0 {
		xs, ys := splitXY(vehiclePts)
		series = append(series, chart.ContinuousSeries{
			Name:    "Vehicles",
			XValues: xs,
			YValues: ys,
			Style:   pointStyle(colorVehicle.WithAlpha(80), 3),
		})
	}
	if len(orderPts) > 0 {
		xs, ys := splitXY(orderPts)
		series = append(series, chart.ContinuousSeries{
			Name:    "Order Pickups",
			XValues: xs,
			YValues: ys,
			Style:   pointStyle(colorDelivery.WithAlpha(220), 6),
		})
	}

	ch := chart.Chart{
		Title:      fmt.Sprintf("Vehicle & Order Distribution (orders: %d, vehicles: %d)", len(orderPts), len(vehiclePts)),
		TitleStyle: chart.Style{FontSize: 14},
		Width:      w,
		Height:     h,
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:           "Longitude",
			Range:          &chart.ContinuousRange{Min: ext.MinX, Max: ext.MaxX},
			GridMajorStyle: gridStyle(),
		},
		YAxis: chart.YAxis{
			Name:           "Latitude",
			Range:          &chart.ContinuousRange{Min: ext.MinY, Max: ext.MaxY},
			GridMajorStyle: gridStyle(),
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	img, err := renderPNG(ch)
	if err != nil {
		return nil, fmt.Errorf("render distribution chart: %w", err)
	}
	return img, nil
}

func splitXY(pts []types.Point2D) ([]float64, []float64) {
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return xs, ys
}
