package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mrtroute/mrtroute_core/internal/config"
	"github.com/mrtroute/mrtroute_core/internal/dataset"
	"github.com/mrtroute/mrtroute_core/internal/graph"
)

func main() {
	start := flag.String("start", "", "Start station code, e.g. NS1 (required)")
	end := flag.String("end", "", "End station code, e.g. EW24 (required)")
	stage := flag.String("stage", "future", "Network stage to query")
	walk := flag.Bool("walk", false, "Allow walking routes between nearby stations")
	coordinatesPath := flag.String("coordinates", "", "Path to station coordinates CSV (optional)")
	snapshotPath := flag.String("snapshot", "", "Load the network from a YAML snapshot file instead of presets")

	flag.Parse()

	if *start == "" || *end == "" {
		fmt.Println("Usage: mrtroute --start=<code> --end=<code> [--stage=<name>] [--walk] [--coordinates=<path.csv>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	var (
		cfg graph.Config
		err error
	)
	if *snapshotPath != "" {
		cfg, err = config.LoadSnapshot(*snapshotPath)
	} else {
		cfg, err = dataset.Snapshot(*stage)
	}
	if err != nil {
		log.Fatalf("Failed to load network: %v", err)
	}

	if *coordinatesPath != "" {
		coordinates, err := config.LoadCoordinates(*coordinatesPath, dataset.CodeEquivalences())
		if err != nil {
			log.Fatalf("Failed to load coordinates: %v", err)
		}
		cfg.Coordinates = coordinates
	}

	g, err := graph.New(cfg)
	if err != nil {
		log.Fatalf("Failed to build network graph: %v", err)
	}

	path, err := g.FindShortestPath(*start, *end, *walk)
	if err != nil {
		log.Fatalf("Route query failed: %v", err)
	}

	steps, err := g.MakeDirections(path)
	if err != nil {
		log.Fatalf("Failed to render directions: %v", err)
	}
	for _, step := range steps {
		fmt.Println(step)
	}
}
