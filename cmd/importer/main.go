package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/mrtroute/mrtroute_core/internal/config"
	"github.com/mrtroute/mrtroute_core/internal/dataset"
	"github.com/mrtroute/mrtroute_core/internal/db"
	"github.com/mrtroute/mrtroute_core/internal/graph"
	"github.com/mrtroute/mrtroute_core/internal/store"
)

func main() {
	stage := flag.String("stage", "", "Stage to import, or 'all' for every stage (required)")
	coordinatesPath := flag.String("coordinates", "", "Path to station coordinates CSV (optional)")
	outPath := flag.String("out", "", "Write the snapshot to a YAML file instead of Postgres")

	flag.Parse()

	if *stage == "" {
		fmt.Println("Usage: mrtroute-import --stage=<name|all> [--coordinates=<path.csv>] [--out=<path.yaml>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	if err := dataset.Validate(); err != nil {
		log.Fatalf("Preset data failed validation: %v", err)
	}

	stages := []string{*stage}
	if *stage == "all" {
		stages = dataset.Stages()
	}

	if *outPath != "" {
		if len(stages) != 1 {
			log.Fatal("--out requires a single stage")
		}
		cfg, err := buildSnapshot(stages[0], *coordinatesPath)
		if err != nil {
			log.Fatalf("Failed to build snapshot: %v", err)
		}
		if err := config.SaveSnapshot(*outPath, cfg); err != nil {
			log.Fatalf("Failed to write snapshot file: %v", err)
		}
		log.Printf("Wrote stage %s to %s", stages[0], *outPath)
		return
	}

	pool, err := db.GetDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	st := store.New(pool)
	if err := st.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	positions := stagePositions()
	for _, name := range stages {
		cfg, err := buildSnapshot(name, *coordinatesPath)
		if err != nil {
			log.Fatalf("Failed to build stage %s: %v", name, err)
		}
		if err := st.SaveSnapshot(ctx, name, positions[name], cfg); err != nil {
			log.Fatalf("Failed to save stage %s: %v", name, err)
		}
		if cfg.Coordinates != nil {
			if err := st.SaveCoordinates(ctx, cfg.Coordinates); err != nil {
				log.Fatalf("Failed to save coordinates: %v", err)
			}
		}
	}

	log.Println("Import completed successfully!")
}

func buildSnapshot(stage, coordinatesPath string) (graph.Config, error) {
	cfg, err := dataset.Snapshot(stage)
	if err != nil {
		return graph.Config{}, err
	}
	if coordinatesPath != "" {
		coordinates, err := config.LoadCoordinates(coordinatesPath, dataset.CodeEquivalences())
		if err != nil {
			return graph.Config{}, err
		}
		cfg.Coordinates = coordinates
	}
	return cfg, nil
}

func stagePositions() map[string]int {
	positions := make(map[string]int)
	for i, name := range dataset.Stages() {
		positions[name] = i
	}
	return positions
}
