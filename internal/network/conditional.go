package network

import (
	"errors"
	"fmt"
)

// ErrInvalidConditionalSegment is returned for malformed conditional
// transfer segment entries.
var ErrInvalidConditionalSegment = errors.New("invalid conditional transfer segment")

// ConditionalSegment marks one train segment adjacent to a conditional
// interchange: a junction station positioned between train segments of the
// same line that are not directly connected, such as STC between the
// Sengkang LRT east and west loops.
//
// If DefunctWith names a station present in the network, the segment no
// longer exists (a newer station has extended past it).
type ConditionalSegment struct {
	Pair        [2]string
	EdgeType    string
	Interchange string
	DefunctWith string
}

// Validate checks structural integrity of the entry.
func (s ConditionalSegment) Validate() error {
	if s.EdgeType == "" {
		return fmt.Errorf("%w: empty edge type for %v", ErrInvalidConditionalSegment, s.Pair)
	}
	if s.Pair[0] == s.Pair[1] {
		return fmt.Errorf("%w: pair %v must be two different codes", ErrInvalidConditionalSegment, s.Pair)
	}
	if s.Interchange != s.Pair[0] && s.Interchange != s.Pair[1] {
		return fmt.Errorf("%w: pair %v must contain interchange %s", ErrInvalidConditionalSegment, s.Pair, s.Interchange)
	}
	return nil
}

// ConditionalTransferTable maps ordered pairs of segment edge types to the
// extra transfer duration, in seconds, incurred when traversing them in
// sequence through the same junction. Direction matters: bahar_east ->
// bahar_west is a transfer while bahar_west -> bahar_east is through-running.
type ConditionalTransferTable map[string]map[string]int

// IsTransfer reports whether moving from an edge of type prev onto an edge
// of type next crosses platforms at a conditional interchange.
func (t ConditionalTransferTable) IsTransfer(prev, next string) bool {
	_, ok := t.ExtraDuration(prev, next)
	return ok
}

// ExtraDuration returns the transfer duration in seconds for the ordered
// edge-type pair, if the pair is a conditional transfer.
func (t ConditionalTransferTable) ExtraDuration(prev, next string) (int, bool) {
	if prev == "" || next == "" {
		return 0, false
	}
	inner, ok := t[prev]
	if !ok {
		return 0, false
	}
	d, ok := inner[next]
	return d, ok
}

// Restrict returns a copy of the table keeping only pairs whose edge types
// both appear in present. Snapshot builders use this to drop transfers for
// junction branches that do not exist yet at a given stage.
func (t ConditionalTransferTable) Restrict(present map[string]struct{}) ConditionalTransferTable {
	out := make(ConditionalTransferTable)
	for prev, inner := range t {
		if _, ok := present[prev]; !ok {
			continue
		}
		for next, d := range inner {
			if _, ok := present[next]; !ok {
				continue
			}
			if out[prev] == nil {
				out[prev] = make(map[string]int)
			}
			out[prev][next] = d
		}
	}
	return out
}

// ActiveConditionalSegments filters segments down to those whose both
// endpoints exist in stations and whose DefunctWith station does not.
func ActiveConditionalSegments(segments []ConditionalSegment, stations map[string]string) []ConditionalSegment {
	var active []ConditionalSegment
	for _, seg := range segments {
		if seg.DefunctWith != "" {
			if _, ok := stations[seg.DefunctWith]; ok {
				continue
			}
		}
		_, okA := stations[seg.Pair[0]]
		_, okB := stations[seg.Pair[1]]
		if okA && okB {
			active = append(active, seg)
		}
	}
	return active
}
