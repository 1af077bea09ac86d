// Driver for benchmark bar charts: loads a benchmark results file, pools the
// samples per problem size and shows (or saves) the resulting chart. The
// algorithm name in the title is derived from the file name.
package main

import (
	"bytes"
	"flag"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/AlexShukel/KDP-Algoritmai/src/analysis"
	"github.com/AlexShukel/KDP-Algoritmai/src/display"
	"github.com/AlexShukel/KDP-Algoritmai/src/loader"
	"github.com/AlexShukel/KDP-Algoritmai/src/logging"
	"github.com/AlexShukel/KDP-Algoritmai/src/types"
	"github.com/AlexShukel/KDP-Algoritmai/src/viz"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// algorithmName derives the chart title from a results file name, e.g.
// "benchmark-results-brute-force.json" -> "brute-force".
func algorithmName(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return strings.TrimPrefix(name, "benchmark-results-")
}

func savePNG(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// renderIfData aggregates records and renders only when there is something to
// plot. A nil image with nil error means "no data"; the renderer is never
// invoked with an empty series.
func renderIfData(records []types.TimingRecord, name string, logScale bool, opts viz.Options) (image.Image, []analysis.SeriesPoint, error) {
	series := analysis.Aggregate(records)
	if len(series) == 0 {
		return nil, nil, nil
	}
	img, err := viz.RenderBenchmark(series, name, logScale, opts)
	return img, series, err
}

func main() {
	if err := godotenv.Load(); err != nil {
		logging.Debugf("no .env file (%v)", err)
	}

	logScale := flag.Bool("log", false, "Use logarithmic scale for the Y axis")
	out := flag.String("out", "", "Write the chart PNG to this path instead of opening a window")
	width := flag.Int("width", 1400, "Chart width in pixels")
	height := flag.Int("height", 800, "Chart height in pixels")
	logLevel := flag.String("log-level", "info", "Log level (debug|info|warn|error)")
	flag.Parse()
	logging.SetLevel(*logLevel)

	file := flag.Arg(0)
	if file == "" {
		file = getEnv("BENCHMARK_FILE", "benchmark-results-brute-force.json")
	}

	logging.Infof("loading data from %s", file)
	records, err := loader.LoadTimings(file)
	if err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
	name := algorithmName(file)
	img, series, err := renderIfData(records, name, *logScale, viz.Options{Width: *width, Height: *height})
	if err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
	if img == nil {
		logging.Warnf("no data found in %s; nothing to render", file)
		return
	}
	for _, sp := range series {
		logging.Debugf("size %s: %d samples, avg %s", sp.Label, sp.Samples, analysis.FormatMillis(sp.AvgTime))
	}

	if *out != "" {
		if err := savePNG(*out, img); err != nil {
			logging.Errorf("write %s: %v", *out, err)
			os.Exit(1)
		}
		logging.Infof("wrote %s", *out)
		return
	}
	logging.Infof("displaying chart")
	display.ShowImage("Benchmark: "+name, img)
}
