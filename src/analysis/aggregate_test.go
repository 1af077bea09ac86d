package analysis

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/AlexShukel/KDP-Algoritmai/src/types"
)

func rec(v, o int, ms float64) types.TimingRecord {
	return types.TimingRecord{ProblemSize: types.ProblemSize{Vehicles: v, Orders: o}, ExecTime: ms}
}

func TestAggregateGroupsAndSorts(t *testing.T) {
	records := []types.TimingRecord{
		rec(2, 3, 100),
		rec(2, 3, 300),
		rec(5, 1, 50),
	}
	got := Aggregate(records)
	if len(got) != 2 {
		t.Fatalf("expected 2 groups got %d", len(got))
	}
	// Total 5 sorts before total 6.
	if got[0].Label != "2_3" || got[0].AvgTime != 200 || got[0].Samples != 2 {
		t.Fatalf("first group wrong: %+v", got[0])
	}
	if got[1].Label != "5_1" || got[1].AvgTime != 50 || got[1].Samples != 1 {
		t.Fatalf("second group wrong: %+v", got[1])
	}
}

func TestAggregateTieBreakByVehicles(t *testing.T) {
	// Same total magnitude 6; fewer vehicles sorts first.
	got := Aggregate([]types.TimingRecord{rec(5, 1, 10), rec(2, 4, 20), rec(4, 2, 30)})
	labels := []string{got[0].Label, got[1].Label, got[2].Label}
	want := []string{"2_4", "4_2", "5_1"}
	if !reflect.DeepEqual(labels, want) {
		t.Fatalf("tie-break order: got %v want %v", labels, want)
	}
}

func TestAggregatePermutationInvariant(t *testing.T) {
	records := []types.TimingRecord{
		rec(1, 1, 5), rec(1, 1, 15), rec(2, 2, 40),
		rec(3, 1, 25), rec(1, 3, 35), rec(2, 2, 60),
	}
	want := Aggregate(records)
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		shuffled := append([]types.TimingRecord(nil), records...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		if got := Aggregate(shuffled); !reflect.DeepEqual(got, want) {
			t.Fatalf("trial %d: permutation changed output:\ngot  %+v\nwant %+v", trial, got, want)
		}
	}
}

func TestAggregateEmpty(t *testing.T) {
	if got := Aggregate(nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

func TestFormatMillis(t *testing.T) {
	cases := []struct {
		ms   float64
		want string
	}{
		{999, "999"},
		{1000, "1000"},
		{1001, "1.00s"},
		{2500, "2.50s"},
		{50, "50"},
		{123456, "123.46s"},
	}
	for _, c := range cases {
		if got := FormatMillis(c.ms); got != c.want {
			t.Fatalf("FormatMillis(%v) = %q, want %q", c.ms, got, c.want)
		}
	}
}
