package viz

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/AlexShukel/KDP-Algoritmai/src/types"
)

func pt(x, y float64) *types.Point2D { return &types.Point2D{X: x, Y: y} }

func sampleInstance() types.ProblemInstance {
	return types.ProblemInstance{
		Vehicles: []types.Vehicle{
			{ID: "v1", Capacity: 3, StartLocation: pt(0, 0)},
			{ID: "v2", Capacity: 5, StartLocation: pt(8, 2)},
		},
		Orders: []types.Order{
			{ID: "o1", PickupLocation: pt(1, 1), DeliveryLocation: pt(6, 7)},
			{ID: "o2", PickupLocation: pt(3, 5), DeliveryLocation: pt(3, 5)},
		},
	}
}

func TestRenderIllustrationSize(t *testing.T) {
	img, err := RenderIllustration(sampleInstance(), "problem1", Options{Width: 600, Height: 450})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 600 || b.Dy() != 450 {
		t.Fatalf("unexpected image size %dx%d", b.Dx(), b.Dy())
	}
}

func TestRenderIllustrationEmptyInstance(t *testing.T) {
	img, err := RenderIllustration(types.ProblemInstance{}, "empty", Options{Width: 400, Height: 300})
	if err != nil {
		t.Fatalf("empty instance should render on the default extent: %v", err)
	}
	if img == nil {
		t.Fatal("nil image")
	}
}

func TestIllustrationExtentIdempotent(t *testing.T) {
	inst := sampleInstance()
	first, err := IllustrationExtent(inst, Options{})
	if err != nil {
		t.Fatalf("extent: %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := IllustrationExtent(inst, Options{})
		if err != nil {
			t.Fatalf("extent pass %d: %v", i, err)
		}
		if again != first {
			t.Fatalf("geometry drifted between renders: %+v vs %+v", again, first)
		}
	}
}

func TestIllustrationExtentEqualAspect(t *testing.T) {
	ext, err := IllustrationExtent(sampleInstance(), Options{Width: 1200, Height: 900})
	if err != nil {
		t.Fatalf("extent: %v", err)
	}
	pw, ph := plotArea(1200, 900)
	gotRatio := ext.Width() / ext.Height()
	wantRatio := pw / ph
	if diff := gotRatio - wantRatio; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("aspect mismatch: extent ratio %v, plot ratio %v", gotRatio, wantRatio)
	}
}

func TestMissingVehicleLocation(t *testing.T) {
	inst := types.ProblemInstance{
		Vehicles: []types.Vehicle{{ID: "v7", Capacity: 1}},
	}
	_, err := RenderIllustration(inst, "bad", Options{})
	var mfe *types.MissingFieldError
	if !errors.As(err, &mfe) {
		t.Fatalf("expected MissingFieldError, got %v", err)
	}
	if mfe.Entity != "vehicle" || mfe.ID != "v7" || mfe.Field != "startLocation" {
		t.Fatalf("error does not identify the offender: %+v", mfe)
	}
}

func TestMissingOrderLocation(t *testing.T) {
	inst := types.ProblemInstance{
		Orders: []types.Order{{ID: "o3", PickupLocation: pt(1, 1)}},
	}
	_, err := RenderIllustration(inst, "bad", Options{})
	var mfe *types.MissingFieldError
	if !errors.As(err, &mfe) {
		t.Fatalf("expected MissingFieldError, got %v", err)
	}
	if mfe.Entity != "order" || mfe.ID != "o3" || mfe.Field != "deliveryLocation" {
		t.Fatalf("error does not identify the offender: %+v", mfe)
	}
}

func TestWriteIllustrationPNG(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteIllustrationPNG(sampleInstance(), "problem1.json", dir, Options{Width: 400, Height: 300})
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if filepath.Base(path) != "problem1.png" {
		t.Fatalf("unexpected artifact name %s", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("artifact missing: %v", err)
	}
	// A second run overwrites, not errors.
	if _, err := WriteIllustrationPNG(sampleInstance(), "problem1.json", dir, Options{Width: 400, Height: 300}); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
}

func TestWriteIllustrationPNGNoPartialOutput(t *testing.T) {
	dir := t.TempDir()
	inst := types.ProblemInstance{Vehicles: []types.Vehicle{{ID: "v1"}}}
	if _, err := WriteIllustrationPNG(inst, "broken.json", dir, Options{}); err == nil {
		t.Fatal("expected error for missing location")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("partial output written: %v", entries)
	}
}

func TestOutputName(t *testing.T) {
	cases := map[string]string{
		"problem1.json": "problem1.png",
		"problem1":      "problem1.png",
		"a.b.json":      "a.b.png",
	}
	for in, want := range cases {
		if got := OutputName(in); got != want {
			t.Fatalf("OutputName(%q) = %q, want %q", in, got, want)
		}
	}
}
