package config

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mrtroute/mrtroute_core/internal/models"
)

// ErrBadCoordinatesRow is returned for a coordinates file row that does
// not have the expected columns.
var ErrBadCoordinatesRow = errors.New("malformed coordinates row")

// LoadCoordinates reads a station coordinates CSV file with columns
// station_code, station_name, latitude, longitude (header row skipped).
// Aliases maps codes absent from the file to codes sharing the same
// physical location; see dataset.CodeEquivalences.
func LoadCoordinates(path string, aliases map[string]string) (map[string]models.Coordinates, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open coordinates: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	if _, err := reader.Read(); err != nil { // header
		return nil, fmt.Errorf("read coordinates header: %w", err)
	}

	coordinates := make(map[string]models.Coordinates)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read coordinates: %w", err)
		}
		if len(row) < 4 {
			return nil, fmt.Errorf("%w: %v", ErrBadCoordinatesRow, row)
		}
		latitude, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s latitude: %v", ErrBadCoordinatesRow, row[0], err)
		}
		longitude, err := strconv.ParseFloat(row[3], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s longitude: %v", ErrBadCoordinatesRow, row[0], err)
		}
		coordinates[row[0]] = models.Coordinates{Latitude: latitude, Longitude: longitude}
	}

	for alias, real := range aliases {
		if _, ok := coordinates[alias]; ok {
			continue
		}
		if c, ok := coordinates[real]; ok {
			coordinates[alias] = c
		}
	}
	return coordinates, nil
}
