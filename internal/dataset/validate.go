package dataset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mrtroute/mrtroute_core/internal/models"
)

var (
	// ErrBadSegmentKey is returned for a duration table key that is not an
	// ascending pair of valid station codes.
	ErrBadSegmentKey = errors.New("malformed segment key")
	// ErrBadDuration is returned for a non-positive or implausibly large
	// preset duration.
	ErrBadDuration = errors.New("preset duration out of range")
	// ErrDuplicateStage is returned when two stages share a name.
	ErrDuplicateStage = errors.New("duplicate stage name")
)

const maxPresetSeconds = 3600

// Validate cross-checks the preset tables. It is cheap enough to run at
// startup and is exercised by tests against every stage.
func Validate() error {
	seen := make(map[string]struct{}, len(stageDefs))
	for _, def := range stageDefs {
		if _, ok := seen[def.Name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateStage, def.Name)
		}
		seen[def.Name] = struct{}{}
		for _, s := range append(append([]stationDef{}, def.Added...), def.Removed...) {
			if _, err := models.ParseStationCode(s.Code); err != nil {
				return fmt.Errorf("stage %s: %w", def.Name, err)
			}
			if s.Name == "" {
				return fmt.Errorf("stage %s: station %s has no name", def.Name, s.Code)
			}
		}
	}

	for key, duration := range trainSegmentDurations {
		from, to, ok := strings.Cut(key, "-")
		if !ok {
			return fmt.Errorf("%w: %s", ErrBadSegmentKey, key)
		}
		if _, err := models.ParseStationCode(from); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrBadSegmentKey, key, err)
		}
		if _, err := models.ParseStationCode(to); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrBadSegmentKey, key, err)
		}
		if models.CompareStationCodes(from, to) >= 0 {
			return fmt.Errorf("%w: %s is not in ascending order", ErrBadSegmentKey, key)
		}
		if duration <= 0 || duration > maxPresetSeconds {
			return fmt.Errorf("%w: segment %s = %d", ErrBadDuration, key, duration)
		}
	}

	for _, route := range walkingRoutes {
		if route.From == route.To {
			return fmt.Errorf("walking route connects %s to itself", route.From)
		}
		if route.Duration <= 0 || route.Duration > maxPresetSeconds {
			return fmt.Errorf("%w: walk %s to %s = %d", ErrBadDuration, route.From, route.To, route.Duration)
		}
	}

	for name, duration := range interchangeTransferDurations {
		if duration <= 0 || duration > maxPresetSeconds {
			return fmt.Errorf("%w: transfer at %s = %d", ErrBadDuration, name, duration)
		}
	}

	for _, seg := range conditionalSegments {
		if err := seg.Validate(); err != nil {
			return err
		}
		if _, ok := trainSegmentDurations[seg.Pair[0]+"-"+seg.Pair[1]]; !ok {
			return fmt.Errorf("%w: %s-%s", ErrMissingSegmentDuration, seg.Pair[0], seg.Pair[1])
		}
	}

	for prev, inner := range conditionalTransferDurations {
		for next, duration := range inner {
			if prev == next {
				return fmt.Errorf("conditional transfer %s to itself", prev)
			}
			if duration <= 0 || duration > maxPresetSeconds {
				return fmt.Errorf("%w: conditional %s to %s = %d", ErrBadDuration, prev, next, duration)
			}
		}
	}

	for line, terminals := range loopedLineTerminals {
		for _, code := range terminals {
			if _, err := models.ParseStationCode(code); err != nil {
				return fmt.Errorf("looped line %s: %w", line, err)
			}
		}
	}
	return nil
}
