package main

import (
	"testing"

	"github.com/AlexShukel/KDP-Algoritmai/src/types"
	"github.com/AlexShukel/KDP-Algoritmai/src/viz"
)

func TestAlgorithmName(t *testing.T) {
	cases := map[string]string{
		"benchmark-results-brute-force.json":    "brute-force",
		"./data/benchmark-results-genetic.json": "genetic",
		"benchmark-results-nearest_noext":       "nearest_noext",
		"custom.json":                           "custom",
	}
	for in, want := range cases {
		if got := algorithmName(in); got != want {
			t.Fatalf("algorithmName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRenderIfDataEmptyGuard(t *testing.T) {
	img, series, err := renderIfData(nil, "brute-force", false, viz.Options{})
	if err != nil {
		t.Fatalf("empty records must not error: %v", err)
	}
	if img != nil || series != nil {
		t.Fatal("empty records must not reach the renderer")
	}
}

func TestRenderIfData(t *testing.T) {
	records := []types.TimingRecord{
		{ProblemSize: types.ProblemSize{Vehicles: 1, Orders: 2}, ExecTime: 30},
	}
	img, series, err := renderIfData(records, "greedy", false, viz.Options{Width: 400, Height: 300})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if img == nil || len(series) != 1 {
		t.Fatalf("expected one-bar chart, got series %+v", series)
	}
}
