package viz

import (
	"errors"
	"testing"

	"github.com/AlexShukel/KDP-Algoritmai/src/analysis"
	"github.com/AlexShukel/KDP-Algoritmai/src/types"
)

func benchSeries() []analysis.SeriesPoint {
	return analysis.Aggregate([]types.TimingRecord{
		{ProblemSize: types.ProblemSize{Vehicles: 2, Orders: 3}, ExecTime: 120},
		{ProblemSize: types.ProblemSize{Vehicles: 2, Orders: 3}, ExecTime: 180},
		{ProblemSize: types.ProblemSize{Vehicles: 3, Orders: 5}, ExecTime: 2400},
		{ProblemSize: types.ProblemSize{Vehicles: 5, Orders: 8}, ExecTime: 91000},
	})
}

func TestRenderBenchmarkLinear(t *testing.T) {
	img, err := RenderBenchmark(benchSeries(), "brute-force", false, Options{Width: 700, Height: 400})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 700 || b.Dy() != 400 {
		t.Fatalf("unexpected image size %dx%d", b.Dx(), b.Dy())
	}
}

func TestRenderBenchmarkLogScale(t *testing.T) {
	if _, err := RenderBenchmark(benchSeries(), "brute-force", true, Options{Width: 700, Height: 400}); err != nil {
		t.Fatalf("log-scale render: %v", err)
	}
}

func TestRenderBenchmarkSingleBar(t *testing.T) {
	series := analysis.Aggregate([]types.TimingRecord{
		{ProblemSize: types.ProblemSize{Vehicles: 1, Orders: 1}, ExecTime: 42},
	})
	if _, err := RenderBenchmark(series, "greedy", false, Options{Width: 500, Height: 300}); err != nil {
		t.Fatalf("single-bar render: %v", err)
	}
}

func TestRenderBenchmarkEmpty(t *testing.T) {
	_, err := RenderBenchmark(nil, "brute-force", false, Options{})
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}
