// Package analysis turns raw benchmark timing samples into a
// presentation-ready series: grouped by problem size, averaged, and sorted
// into a monotonically-growing-difficulty order.
package analysis

import (
	"fmt"
	"sort"

	"github.com/AlexShukel/KDP-Algoritmai/src/types"
)

// SeriesPoint is one aggregated group: a distinct problem size with the
// arithmetic mean of its trial times. Consumed once by the chart renderer and
// discarded.
type SeriesPoint struct {
	Size    types.ProblemSize
	Label   string
	AvgTime float64 // milliseconds
	Samples int
}

// Aggregate pools records by (vehicles, orders), averages each pool and
// returns the groups sorted ascending by total problem magnitude, with
// vehicle count as the tie-break. Output is invariant under any permutation
// of the input. Empty input yields an empty result; the caller treats that as
// "no data to plot", not an error.
func Aggregate(records []types.TimingRecord) []SeriesPoint {
	if len(records) == 0 {
		return nil
	}
	sums := map[types.ProblemSize]float64{}
	counts := map[types.ProblemSize]int{}
	for _, rec := range records {
		sums[rec.ProblemSize] += rec.ExecTime
		counts[rec.ProblemSize]++
	}
	out := make([]SeriesPoint, 0, len(sums))
	for size, sum := range sums {
		out = append(out, SeriesPoint{
			Size:    size,
			Label:   fmt.Sprintf("%d_%d", size.Vehicles, size.Orders),
			AvgTime: sum / float64(counts[size]),
			Samples: counts[size],
		})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Size, out[j].Size
		if a.Total() != b.Total() {
			return a.Total() < b.Total()
		}
		return a.Vehicles < b.Vehicles
	})
	return out
}

// FormatMillis renders a bar value label. Values above 1000 ms switch to
// seconds with two decimals so large and small magnitudes both stay legible.
func FormatMillis(ms float64) string {
	if ms > 1000 {
		return fmt.Sprintf("%.2fs", ms/1000)
	}
	return fmt.Sprintf("%.0f", ms)
}
