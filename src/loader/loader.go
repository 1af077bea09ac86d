// Package loader is the filesystem boundary of the suite: it decodes the
// dataset JSON files and resolves which files to visualize. The renderers
// never touch raw bytes; by the time data leaves this package it conforms to
// the types model or the run has failed.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AlexShukel/KDP-Algoritmai/src/types"
)

// LoadProblem reads one problem instance file.
func LoadProblem(path string) (types.ProblemInstance, error) {
	var inst types.ProblemInstance
	b, err := os.ReadFile(path)
	if err != nil {
		return inst, fmt.Errorf("read problem %s: %w", path, err)
	}
	if err := json.Unmarshal(b, &inst); err != nil {
		return inst, fmt.Errorf("decode problem %s: %w", path, err)
	}
	return inst, nil
}

// LoadTimings reads a benchmark results file: a JSON array of timing samples.
func LoadTimings(path string) ([]types.TimingRecord, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read benchmark results %s: %w", path, err)
	}
	var records []types.TimingRecord
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, fmt.Errorf("decode benchmark results %s: %w", path, err)
	}
	return records, nil
}

// Generator dump schemas (geographic coordinates).
type orderDump struct {
	PickupLocation types.GeoPoint `json:"pickupLocation"`
}

type vehicleDump struct {
	StartLocation types.GeoPoint `json:"startLocation"`
}

// LoadOrderPickups reads an orders_*.json generator dump and returns the
// pickup coordinates as planar points.
func LoadOrderPickups(path string) ([]types.Point2D, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read orders %s: %w", path, err)
	}
	var dumps []orderDump
	if err := json.Unmarshal(b, &dumps); err != nil {
		return nil, fmt.Errorf("decode orders %s: %w", path, err)
	}
	pts := make([]types.Point2D, len(dumps))
	for i, d := range dumps {
		pts[i] = d.PickupLocation.Planar()
	}
	return pts, nil
}

// LoadVehicleStarts reads a vehicles_*.json generator dump and returns the
// start coordinates as planar points.
func LoadVehicleStarts(path string) ([]types.Point2D, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vehicles %s: %w", path, err)
	}
	var dumps []vehicleDump
	if err := json.Unmarshal(b, &dumps); err != nil {
		return nil, fmt.Errorf("decode vehicles %s: %w", path, err)
	}
	pts := make([]types.Point2D, len(dumps))
	for i, d := range dumps {
		pts[i] = d.StartLocation.Planar()
	}
	return pts, nil
}

// LatestFile returns the most recently modified "<prefix>_*.json" file under
// dir. The generator writes timestamped dumps; the newest one is the dataset
// to visualize.
func LatestFile(dir, prefix string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, prefix+"_*.json"))
	if err != nil {
		return "", fmt.Errorf("glob %s: %w", prefix, err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no %s_*.json files in %s: %w", prefix, dir, os.ErrNotExist)
	}
	latest := ""
	var latestMod int64
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			return "", fmt.Errorf("stat %s: %w", m, err)
		}
		if mod := info.ModTime().UnixNano(); latest == "" || mod > latestMod {
			latest, latestMod = m, mod
		}
	}
	return latest, nil
}

// ProblemFiles lists the *.json problem files under dir, excluding already
// generated artifacts. Order follows the directory listing (sorted by name).
func ProblemFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input dir %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return files, nil
}
