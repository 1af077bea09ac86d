// Package geometry derives plot extents from arbitrary 2D point sets so that
// rendered output stays legible regardless of input scale.
package geometry

import "github.com/AlexShukel/KDP-Algoritmai/src/types"

// Extent is a padded coordinate bounding box, derived per render call and
// never shared across instances.
type Extent struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Width returns the X span of the extent.
func (e Extent) Width() float64 { return e.MaxX - e.MinX }

// Height returns the Y span of the extent.
func (e Extent) Height() float64 { return e.MaxY - e.MinY }

// defaultExtent keeps downstream rendering working on an empty instance.
var defaultExtent = Extent{MinX: 0, MaxX: 10, MinY: 0, MaxY: 10}

// Compute returns the bounding box of points padded by exactly one coordinate
// unit on each side. The padding is fixed rather than proportional so very
// small and very large coordinate ranges both get a visible margin. An empty
// input yields the fixed default extent.
func Compute(points []types.Point2D) Extent {
	if len(points) == 0 {
		return defaultExtent
	}
	e := Extent{
		MinX: points[0].X, MaxX: points[0].X,
		MinY: points[0].Y, MaxY: points[0].Y,
	}
	for _, p := range points[1:] {
		if p.X < e.MinX {
			e.MinX = p.X
		}
		if p.X > e.MaxX {
			e.MaxX = p.X
		}
		if p.Y < e.MinY {
			e.MinY = p.Y
		}
		if p.Y > e.MaxY {
			e.MaxY = p.Y
		}
	}
	e.MinX--
	e.MaxX++
	e.MinY--
	e.MaxY++
	return e
}

// FitAspect widens exactly one axis of e, symmetrically about its center, so
// that Width/Height matches the w/h pixel ratio of the target plot area. One
// coordinate unit then renders as the same length on both axes and shapes are
// not distorted. The input extent always remains contained in the result.
func FitAspect(e Extent, w, h float64) Extent {
	if w <= 0 || h <= 0 || e.Width() <= 0 || e.Height() <= 0 {
		return e
	}
	target := w / h
	current := e.Width() / e.Height()
	switch {
	case current < target:
		span := e.Height() * target
		cx := (e.MinX + e.MaxX) / 2
		e.MinX = cx - span/2
		e.MaxX = cx + span/2
	case current > target:
		span := e.Width() / target
		cy := (e.MinY + e.MaxY) / 2
		e.MinY = cy - span/2
		e.MaxY = cy + span/2
	}
	return e
}
