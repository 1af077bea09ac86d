// Batch driver for problem instance illustrations: every *.json file in the
// input directory becomes one <name>.png diagram beside it. A malformed
// instance is logged and skipped; it never aborts the rest of the batch.
package main

import (
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/AlexShukel/KDP-Algoritmai/src/loader"
	"github.com/AlexShukel/KDP-Algoritmai/src/logging"
	"github.com/AlexShukel/KDP-Algoritmai/src/viz"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := godotenv.Load(); err != nil {
		logging.Debugf("no .env file (%v)", err)
	}

	inputDir := flag.String("input", getEnv("PROBLEMS_DIR", "./src/problems"), "Directory with problem instance JSON files")
	outputDir := flag.String("output", getEnv("ILLUSTRATIONS_DIR", ""), "Output directory for PNG artifacts (defaults to the input directory)")
	width := flag.Int("width", 1200, "Artifact width in pixels")
	height := flag.Int("height", 900, "Artifact height in pixels")
	logLevel := flag.String("log-level", "info", "Log level (debug|info|warn|error)")
	flag.Parse()
	logging.SetLevel(*logLevel)
	defer logging.TimeTrack(time.Now(), "illustration batch")

	if *outputDir == "" {
		*outputDir = *inputDir
	}
	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		logging.Errorf("create output dir: %v", err)
		os.Exit(1)
	}

	files, err := loader.ProblemFiles(*inputDir)
	if err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		logging.Warnf("no JSON files found in %s", *inputDir)
		return
	}

	opts := viz.Options{Width: *width, Height: *height}
	rendered := 0
	for _, f := range files {
		inst, err := loader.LoadProblem(f)
		if err != nil {
			logging.Errorf("skipping %s: %v", filepath.Base(f), err)
			continue
		}
		outPath, err := viz.WriteIllustrationPNG(inst, filepath.Base(f), *outputDir, opts)
		if err != nil {
			logging.Errorf("skipping %s: %v", filepath.Base(f), err)
			continue
		}
		logging.Infof("generated %s", outPath)
		rendered++
	}
	if rendered < len(files) {
		logging.Warnf("rendered %d of %d instances", rendered, len(files))
	}
}
