package viz

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/AlexShukel/KDP-Algoritmai/src/geometry"
	"github.com/AlexShukel/KDP-Algoritmai/src/types"
)

const (
	defaultIllustrationWidth  = 1200
	defaultIllustrationHeight = 900
)

// collectPoints gathers every vehicle start, pickup and delivery point in a
// fixed order (vehicles first, then per order pickup before delivery).
// A nil location aborts collection before anything is drawn.
func collectPoints(inst types.ProblemInstance) ([]types.Point2D, error) {
	pts := make([]types.Point2D, 0, len(inst.Vehicles)+2*len(inst.Orders))
	for _, v := range inst.Vehicles {
		if v.StartLocation == nil {
			return nil, &types.MissingFieldError{Entity: "vehicle", ID: v.ID, Field: "startLocation"}
		}
		pts = append(pts, *v.StartLocation)
	}
	for _, o := range inst.Orders {
		if o.PickupLocation == nil {
			return nil, &types.MissingFieldError{Entity: "order", ID: o.ID, Field: "pickupLocation"}
		}
		if o.DeliveryLocation == nil {
			return nil, &types.MissingFieldError{Entity: "order", ID: o.ID, Field: "deliveryLocation"}
		}
		pts = append(pts, *o.PickupLocation, *o.DeliveryLocation)
	}
	return pts, nil
}

// IllustrationExtent returns the equal-aspect extent the illustration of inst
// would be drawn with. Exposed so callers can verify geometry without
// rasterizing.
func IllustrationExtent(inst types.ProblemInstance, opts Options) (geometry.Extent, error) {
	pts, err := collectPoints(inst)
	if err != nil {
		return geometry.Extent{}, err
	}
	w, h := opts.size(defaultIllustrationWidth, defaultIllustrationHeight)
	pw, ph := plotArea(w, h)
	return geometry.FitAspect(geometry.Compute(pts), pw, ph), nil
}

// RenderIllustration draws one problem instance: vehicle start markers
// annotated with id and capacity, and per order a pickup/delivery marker pair
// joined by a dotted connector. The instance is never mutated; rendering the
// same instance twice produces identical geometry.
func RenderIllustration(inst types.ProblemInstance, name string, opts Options) (image.Image, error) {
	ext, err := IllustrationExtent(inst, opts)
	if err != nil {
		return nil, err
	}
	w, h := opts.size(defaultIllustrationWidth, defaultIllustrationHeight)

	// Invisible anchor spanning the extent keeps go-chart satisfied even for
	// an empty instance.
	series := []chart.Series{
		chart.ContinuousSeries{
			XValues: []float64{ext.MinX, ext.MaxX},
			YValues: []float64{ext.MinY, ext.MaxY},
			Style:   chart.Style{StrokeColor: chart.ColorTransparent},
		},
	}

	// Connectors go first so markers draw on top of them.
	for _, o := range inst.Orders {
		series = append(series, chart.ContinuousSeries{
			XValues: []float64{o.PickupLocation.X, o.DeliveryLocation.X},
			YValues: []float64{o.PickupLocation.Y, o.DeliveryLocation.Y},
			Style: chart.Style{
				StrokeWidth:     1,
				StrokeColor:     colorConnector,
				StrokeDashArray: []float64{2, 3},
			},
		})
	}

	var vehicleAnn, pickupAnn, deliveryAnn []chart.Value2
	vxs := make([]float64, 0, len(inst.Vehicles))
	vys := make([]float64, 0, len(inst.Vehicles))
	for _, v := range inst.Vehicles {
		vxs = append(vxs, v.StartLocation.X)
		vys = append(vys, v.StartLocation.Y)
		vehicleAnn = append(vehicleAnn, chart.Value2{
			XValue: v.StartLocation.X,
			YValue: v.StartLocation.Y,
			Label:  fmt.Sprintf("%s (Cap:%g)", v.ID, v.Capacity),
		})
	}
	pxs := make([]float64, 0, len(inst.Orders))
	pys := make([]float64, 0, len(inst.Orders))
	dxs := make([]float64, 0, len(inst.Orders))
	dys := make([]float64, 0, len(inst.Orders))
	for _, o := range inst.Orders {
		pxs = append(pxs, o.PickupLocation.X)
		pys = append(pys, o.PickupLocation.Y)
		dxs = append(dxs, o.DeliveryLocation.X)
		dys = append(dys, o.DeliveryLocation.Y)
		pickupAnn = append(pickupAnn, chart.Value2{
			XValue: o.PickupLocation.X, YValue: o.PickupLocation.Y, Label: "P-" + o.ID,
		})
		deliveryAnn = append(deliveryAnn, chart.Value2{
			XValue: o.DeliveryLocation.X, YValue: o.DeliveryLocation.Y, Label: "D-" + o.ID,
		})
	}
	if len(vxs) > 0 {
		series = append(series, chart.ContinuousSeries{XValues: vxs, YValues: vys, Style: pointStyle(colorVehicle, 9)})
	}
	if len(pxs) > 0 {
		series = append(series,
			chart.ContinuousSeries{XValues: pxs, YValues: pys, Style: pointStyle(colorPickup, 7)},
			chart.ContinuousSeries{XValues: dxs, YValues: dys, Style: pointStyle(colorDelivery, 7)},
		)
	}
	for _, ann := range []struct {
		values []chart.Value2
		col    chart.Style
	}{
		{vehicleAnn, annotationStyle(colorVehicle)},
		{pickupAnn, annotationStyle(colorPickupText)},
		{deliveryAnn, annotationStyle(colorDeliveryText)},
	} {
		if len(ann.values) > 0 {
			series = append(series, chart.AnnotationSeries{Annotations: ann.values, Style: ann.col})
		}
	}

	ch := chart.Chart{
		Title:      "Vehicle Routing Problem with Pickups and Deliveries: " + name,
		TitleStyle: chart.Style{FontSize: 14},
		Width:      w,
		Height:     h,
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:           "X Coordinate",
			Range:          &chart.ContinuousRange{Min: ext.MinX, Max: ext.MaxX},
			GridMajorStyle: gridStyle(),
		},
		YAxis: chart.YAxis{
			Name:           "Y Coordinate",
			Range:          &chart.ContinuousRange{Min: ext.MinY, Max: ext.MaxY},
			GridMajorStyle: gridStyle(),
		},
		Series: series,
	}
	img, err := renderPNG(ch)
	if err != nil {
		return nil, fmt.Errorf("render illustration %s: %w", name, err)
	}
	return img, nil
}

func annotationStyle(col drawing.Color) chart.Style {
	return chart.Style{
		FontSize:    7,
		FontColor:   col,
		StrokeColor: chart.ColorTransparent,
		FillColor:   chart.ColorWhite.WithAlpha(190),
	}
}

// OutputName derives the artifact name from the instance's source
// identifier: the extension is stripped and ".png" appended.
func OutputName(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + ".png"
}

// WriteIllustrationPNG renders inst and writes the image as OutputName(name)
// under outDir, overwriting any previous artifact. Nothing is written when
// rendering fails.
func WriteIllustrationPNG(inst types.ProblemInstance, name, outDir string, opts Options) (string, error) {
	img, err := RenderIllustration(inst, strings.TrimSuffix(name, filepath.Ext(name)), opts)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("png encode %s: %w", name, err)
	}
	outPath := filepath.Join(outDir, OutputName(name))
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", outPath, err)
	}
	return outPath, nil
}
