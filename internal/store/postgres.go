// Package store persists network snapshots in PostgreSQL so the API can
// serve any imported stage without re-deriving it from the preset tables.
package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mrtroute/mrtroute_core/internal/graph"
	"github.com/mrtroute/mrtroute_core/internal/models"
	"github.com/mrtroute/mrtroute_core/internal/network"
)

// ErrSnapshotNotFound is returned when loading a stage that was never imported.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// Store reads and writes network snapshots.
type Store struct {
	db *pgxpool.Pool
}

// New creates a Store backed by the given pool.
func New(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS snapshot (
		stage_name TEXT PRIMARY KEY,
		position INT NOT NULL,
		imported_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS station (
		stage_name TEXT NOT NULL REFERENCES snapshot(stage_name) ON DELETE CASCADE,
		code TEXT NOT NULL,
		name TEXT NOT NULL,
		PRIMARY KEY (stage_name, code)
	)`,
	`CREATE TABLE IF NOT EXISTS segment (
		stage_name TEXT NOT NULL REFERENCES snapshot(stage_name) ON DELETE CASCADE,
		from_code TEXT NOT NULL,
		to_code TEXT NOT NULL,
		duration_asc INT NOT NULL,
		duration_desc INT NOT NULL,
		dwell_asc INT NOT NULL,
		dwell_desc INT NOT NULL,
		edge_type TEXT NOT NULL DEFAULT '',
		mode TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (stage_name, from_code, to_code)
	)`,
	`CREATE TABLE IF NOT EXISTS transfer (
		stage_name TEXT NOT NULL REFERENCES snapshot(stage_name) ON DELETE CASCADE,
		station_name TEXT NOT NULL,
		duration INT NOT NULL,
		PRIMARY KEY (stage_name, station_name)
	)`,
	`CREATE TABLE IF NOT EXISTS conditional_transfer (
		stage_name TEXT NOT NULL REFERENCES snapshot(stage_name) ON DELETE CASCADE,
		prev_edge_type TEXT NOT NULL,
		next_edge_type TEXT NOT NULL,
		duration INT NOT NULL,
		PRIMARY KEY (stage_name, prev_edge_type, next_edge_type)
	)`,
	`CREATE TABLE IF NOT EXISTS non_linear_terminal (
		stage_name TEXT NOT NULL REFERENCES snapshot(stage_name) ON DELETE CASCADE,
		line_code TEXT NOT NULL,
		station_code TEXT NOT NULL,
		PRIMARY KEY (stage_name, line_code, station_code)
	)`,
	`CREATE TABLE IF NOT EXISTS pseudonym (
		stage_name TEXT NOT NULL REFERENCES snapshot(stage_name) ON DELETE CASCADE,
		pseudo_code TEXT NOT NULL,
		real_code TEXT NOT NULL,
		PRIMARY KEY (stage_name, pseudo_code)
	)`,
	`CREATE TABLE IF NOT EXISTS station_coordinates (
		code TEXT PRIMARY KEY,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL
	)`,
}

// EnsureSchema creates the snapshot tables if they do not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// SaveSnapshot writes a stage's network config, replacing any previous
// import of the same stage. Position records the stage's place in the
// chronological build-out order.
func (s *Store) SaveSnapshot(ctx context.Context, stage string, position int, cfg graph.Config) error {
	startTime := time.Now()

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Replace any previous import; child rows cascade.
	if _, err := tx.Exec(ctx, `DELETE FROM snapshot WHERE stage_name = $1`, stage); err != nil {
		return fmt.Errorf("failed to clear stage %s: %w", stage, err)
	}
	if _, err := tx.Exec(ctx,
		`INSERT INTO snapshot (stage_name, position) VALUES ($1, $2)`, stage, position); err != nil {
		return fmt.Errorf("failed to insert snapshot row: %w", err)
	}

	batch := &pgx.Batch{}
	for code, name := range cfg.Stations {
		batch.Queue(`INSERT INTO station (stage_name, code, name) VALUES ($1, $2, $3)`,
			stage, code, name)
	}
	for _, seg := range cfg.Segments {
		batch.Queue(`INSERT INTO segment
			(stage_name, from_code, to_code, duration_asc, duration_desc, dwell_asc, dwell_desc, edge_type, mode)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			stage, seg.From, seg.To, seg.DurationAsc, seg.DurationDesc,
			seg.DwellAsc, seg.DwellDesc, seg.EdgeType, string(seg.Mode))
	}
	for name, duration := range cfg.TransferDurations {
		batch.Queue(`INSERT INTO transfer (stage_name, station_name, duration) VALUES ($1, $2, $3)`,
			stage, name, duration)
	}
	for prev, inner := range cfg.ConditionalTransfers {
		for next, duration := range inner {
			batch.Queue(`INSERT INTO conditional_transfer
				(stage_name, prev_edge_type, next_edge_type, duration) VALUES ($1, $2, $3, $4)`,
				stage, prev, next, duration)
		}
	}
	for line, codes := range cfg.NonLinearTerminals {
		for code := range codes {
			batch.Queue(`INSERT INTO non_linear_terminal (stage_name, line_code, station_code) VALUES ($1, $2, $3)`,
				stage, line, code)
		}
	}
	for pseudo, real := range cfg.Pseudonyms {
		batch.Queue(`INSERT INTO pseudonym (stage_name, pseudo_code, real_code) VALUES ($1, $2, $3)`,
			stage, pseudo, real)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert snapshot rows: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}

	log.Printf("Saved stage %s: %d stations, %d segments in %v",
		stage, len(cfg.Stations), len(cfg.Segments), time.Since(startTime))
	return nil
}

// SaveCoordinates upserts station coordinates. Coordinates are shared by
// all stages.
func (s *Store) SaveCoordinates(ctx context.Context, coordinates map[string]models.Coordinates) error {
	batch := &pgx.Batch{}
	for code, c := range coordinates {
		batch.Queue(`INSERT INTO station_coordinates (code, latitude, longitude)
			VALUES ($1, $2, $3)
			ON CONFLICT (code) DO UPDATE SET latitude = $2, longitude = $3`,
			code, c.Latitude, c.Longitude)
	}
	if err := s.db.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to upsert coordinates: %w", err)
	}
	return nil
}

// Stages lists the imported stages in chronological order.
func (s *Store) Stages(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx, `SELECT stage_name FROM snapshot ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to list stages: %w", err)
	}
	defer rows.Close()

	var stages []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan stage: %w", err)
		}
		stages = append(stages, name)
	}
	return stages, rows.Err()
}

// LoadSnapshot reads a stage's network config back out of the database.
func (s *Store) LoadSnapshot(ctx context.Context, stage string) (graph.Config, error) {
	var exists bool
	err := s.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM snapshot WHERE stage_name = $1)`, stage).Scan(&exists)
	if err != nil {
		return graph.Config{}, fmt.Errorf("failed to check stage %s: %w", stage, err)
	}
	if !exists {
		return graph.Config{}, fmt.Errorf("%w: %s", ErrSnapshotNotFound, stage)
	}

	cfg := graph.Config{
		Stations:             make(map[string]string),
		TransferDurations:    make(map[string]int),
		ConditionalTransfers: make(network.ConditionalTransferTable),
		NonLinearTerminals:   make(network.NonLinearTerminals),
		Pseudonyms:           make(map[string]string),
	}

	rows, err := s.db.Query(ctx, `SELECT code, name FROM station WHERE stage_name = $1`, stage)
	if err != nil {
		return graph.Config{}, fmt.Errorf("failed to load stations: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var code, name string
		if err := rows.Scan(&code, &name); err != nil {
			return graph.Config{}, fmt.Errorf("failed to scan station: %w", err)
		}
		cfg.Stations[code] = name
	}
	if err := rows.Err(); err != nil {
		return graph.Config{}, err
	}

	segmentRows, err := s.db.Query(ctx, `
		SELECT from_code, to_code, duration_asc, duration_desc, dwell_asc, dwell_desc, edge_type, mode
		FROM segment WHERE stage_name = $1
		ORDER BY from_code, to_code`, stage)
	if err != nil {
		return graph.Config{}, fmt.Errorf("failed to load segments: %w", err)
	}
	defer segmentRows.Close()
	for segmentRows.Next() {
		var seg models.SegmentSpec
		var mode string
		if err := segmentRows.Scan(&seg.From, &seg.To, &seg.DurationAsc, &seg.DurationDesc,
			&seg.DwellAsc, &seg.DwellDesc, &seg.EdgeType, &mode); err != nil {
			return graph.Config{}, fmt.Errorf("failed to scan segment: %w", err)
		}
		seg.Mode = models.EdgeMode(mode)
		cfg.Segments = append(cfg.Segments, seg)
	}
	if err := segmentRows.Err(); err != nil {
		return graph.Config{}, err
	}

	transferRows, err := s.db.Query(ctx,
		`SELECT station_name, duration FROM transfer WHERE stage_name = $1`, stage)
	if err != nil {
		return graph.Config{}, fmt.Errorf("failed to load transfers: %w", err)
	}
	defer transferRows.Close()
	for transferRows.Next() {
		var name string
		var duration int
		if err := transferRows.Scan(&name, &duration); err != nil {
			return graph.Config{}, fmt.Errorf("failed to scan transfer: %w", err)
		}
		cfg.TransferDurations[name] = duration
	}
	if err := transferRows.Err(); err != nil {
		return graph.Config{}, err
	}

	conditionalRows, err := s.db.Query(ctx,
		`SELECT prev_edge_type, next_edge_type, duration FROM conditional_transfer WHERE stage_name = $1`, stage)
	if err != nil {
		return graph.Config{}, fmt.Errorf("failed to load conditional transfers: %w", err)
	}
	defer conditionalRows.Close()
	for conditionalRows.Next() {
		var prev, next string
		var duration int
		if err := conditionalRows.Scan(&prev, &next, &duration); err != nil {
			return graph.Config{}, fmt.Errorf("failed to scan conditional transfer: %w", err)
		}
		if cfg.ConditionalTransfers[prev] == nil {
			cfg.ConditionalTransfers[prev] = make(map[string]int)
		}
		cfg.ConditionalTransfers[prev][next] = duration
	}
	if err := conditionalRows.Err(); err != nil {
		return graph.Config{}, err
	}

	terminalRows, err := s.db.Query(ctx,
		`SELECT line_code, station_code FROM non_linear_terminal WHERE stage_name = $1`, stage)
	if err != nil {
		return graph.Config{}, fmt.Errorf("failed to load terminals: %w", err)
	}
	defer terminalRows.Close()
	for terminalRows.Next() {
		var line, code string
		if err := terminalRows.Scan(&line, &code); err != nil {
			return graph.Config{}, fmt.Errorf("failed to scan terminal: %w", err)
		}
		if cfg.NonLinearTerminals[line] == nil {
			cfg.NonLinearTerminals[line] = make(map[string]struct{})
		}
		cfg.NonLinearTerminals[line][code] = struct{}{}
	}
	if err := terminalRows.Err(); err != nil {
		return graph.Config{}, err
	}

	pseudonymRows, err := s.db.Query(ctx,
		`SELECT pseudo_code, real_code FROM pseudonym WHERE stage_name = $1`, stage)
	if err != nil {
		return graph.Config{}, fmt.Errorf("failed to load pseudonyms: %w", err)
	}
	defer pseudonymRows.Close()
	for pseudonymRows.Next() {
		var pseudo, real string
		if err := pseudonymRows.Scan(&pseudo, &real); err != nil {
			return graph.Config{}, fmt.Errorf("failed to scan pseudonym: %w", err)
		}
		cfg.Pseudonyms[pseudo] = real
	}
	if err := pseudonymRows.Err(); err != nil {
		return graph.Config{}, err
	}

	coordinateRows, err := s.db.Query(ctx, `SELECT code, latitude, longitude FROM station_coordinates`)
	if err != nil {
		return graph.Config{}, fmt.Errorf("failed to load coordinates: %w", err)
	}
	defer coordinateRows.Close()
	for coordinateRows.Next() {
		var code string
		var c models.Coordinates
		if err := coordinateRows.Scan(&code, &c.Latitude, &c.Longitude); err != nil {
			return graph.Config{}, fmt.Errorf("failed to scan coordinates: %w", err)
		}
		if cfg.Coordinates == nil {
			cfg.Coordinates = make(map[string]models.Coordinates)
		}
		cfg.Coordinates[code] = c
	}
	return cfg, coordinateRows.Err()
}
