// Package types holds the data model shared by the loader, the aggregation
// pipeline and the renderers. All values are read-only once loaded: the suite
// loads fresh data per run, renders, and discards it.
package types

import "fmt"

// Point2D is a coordinate in an arbitrary planar unit (grid cell or
// geographic degree).
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// GeoPoint is the coordinate schema of the synthetic generator dumps
// (orders_*.json / vehicles_*.json). Converted to Point2D for plotting with
// longitude on X and latitude on Y.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Planar maps the geographic coordinate onto plot axes.
func (g GeoPoint) Planar() Point2D { return Point2D{X: g.Longitude, Y: g.Latitude} }

// Vehicle is one fleet member with its depot start point. Locations are
// pointers so an absent field in the source JSON stays detectable; renderers
// must reject a nil location instead of defaulting it.
type Vehicle struct {
	ID            string   `json:"id"`
	Capacity      float64  `json:"capacity"`
	StartLocation *Point2D `json:"startLocation"`
}

// Order is a pickup/delivery pair. The two locations may coincide
// numerically; that is accepted input.
type Order struct {
	ID               string   `json:"id"`
	PickupLocation   *Point2D `json:"pickupLocation"`
	DeliveryLocation *Point2D `json:"deliveryLocation"`
}

// ProblemInstance is one complete input scenario, illustrated by one diagram.
type ProblemInstance struct {
	Vehicles []Vehicle `json:"vehicles"`
	Orders   []Order   `json:"orders"`
}

// ProblemSize is the (vehicle count, order count) pair used as the benchmark
// grouping key.
type ProblemSize struct {
	Vehicles int `json:"vehicles"`
	Orders   int `json:"orders"`
}

// Total returns the combined problem magnitude used as the primary sort key.
func (s ProblemSize) Total() int { return s.Vehicles + s.Orders }

// TimingRecord is one benchmark sample. Multiple records may share the same
// problem size (repeated trials).
type TimingRecord struct {
	ProblemSize ProblemSize `json:"problemSize"`
	ExecTime    float64     `json:"execTime"` // milliseconds
}

// MissingFieldError reports an entity that lacks a required location field.
// It is raised before any drawing happens so a malformed instance never
// produces partial output; the batch driver decides skip vs abort.
type MissingFieldError struct {
	Entity string // "vehicle" or "order"
	ID     string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s %q: missing field %s", e.Entity, e.ID, e.Field)
}
