// Driver for the geographic distribution chart: picks the newest generator
// dumps (orders_*.json / vehicles_*.json) from the data directory, plots both
// point sets on shared equal-scaled axes and opens the result in a window.
// Display-only; pass -out to capture a PNG instead.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/AlexShukel/KDP-Algoritmai/src/display"
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

func savePNG(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func main() {
	if err := godotenv.Load(); err != nil {
		logging.Debugf("no .env file (%v)", err)
	}

	dataDir := flag.String("data", getEnv("DATA_DIR", "./data"), "Directory with generator dumps")
	ordersFile := flag.String("orders", "", "Explicit orders dump (defaults to the newest orders_*.json)")
	vehiclesFile := flag.String("vehicles", "", "Explicit vehicles dump (defaults to the newest vehicles_*.json)")
	out := flag.String("out", "", "Write the chart PNG to this path instead of opening a window")
	width := flag.Int("width", 1200, "Chart width in pixels")
	height := flag.Int("height", 1000, "Chart height in pixels")
	logLevel := flag.String("log-level", "info", "Log level (debug|info|warn|error)")
	flag.Parse()
	logging.SetLevel(*logLevel)

	var err error
	if *ordersFile == "" {
		if *ordersFile, err = loader.LatestFile(*dataDir, "orders"); err != nil {
			logging.Errorf("%v (run the data generator first)", err)
			os.Exit(1)
		}
	}
	if *vehiclesFile == "" {
		if *vehiclesFile, err = loader.LatestFile(*dataDir, "vehicles"); err != nil {
			logging.Errorf("%v (run the data generator first)", err)
			os.Exit(1)
		}
	}

	logging.Infof("loading data from %s", *ordersFile)
	orderPts, err := loader.LoadOrderPickups(*ordersFile)
	if err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
	logging.Infof("loading data from %s", *vehiclesFile)
	vehiclePts, err := loader.LoadVehicleStarts(*vehiclesFile)
	if err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}

	img, err := viz.RenderDistribution(vehiclePts, orderPts, viz.Options{Width: *width, Height: *height})
	if errors.Is(err, viz.ErrNoData) {
		logging.Warnf("both dumps are empty; nothing to render")
		return
	}
	if err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
	img = viz.Caption(img, fmt.Sprintf("orders: %s, vehicles: %s",
		filepath.Base(*ordersFile), filepath.Base(*vehiclesFile)))

	if *out != "" {
		if err := savePNG(*out, img); err != nil {
			logging.Errorf("write %s: %v", *out, err)
			os.Exit(1)
		}
		logging.Infof("wrote %s", *out)
		return
	}
	logging.Infof("displaying chart")
	display.ShowImage("Vehicle & Order Distribution", img)
}
