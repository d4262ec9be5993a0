package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// adjacencyStub is a map-backed Neighbourhood for tests.
type adjacencyStub map[string][]string

func (a adjacencyStub) Neighbours(code string) []string { return a[code] }

func TestApproachingTerminal(t *testing.T) {
	line := adjacencyStub{
		"NS1": {"NS2"},
		"NS2": {"NS1", "NS3"},
		"NS3": {"NS2", "NS4", "EW24"},
		"NS4": {"NS3"},
	}

	terminal, err := ApproachingTerminal(line, nil, "NS2", "NS3")
	require.NoError(t, err)
	assert.Equal(t, "NS4", terminal)

	terminal, err = ApproachingTerminal(line, nil, "NS3", "NS2")
	require.NoError(t, err)
	assert.Equal(t, "NS1", terminal)

	// Direction is taken from code order, not adjacency: the endpoints do
	// not need to be neighbours.
	terminal, err = ApproachingTerminal(line, nil, "NS1", "NS4")
	require.NoError(t, err)
	assert.Equal(t, "NS4", terminal)
}

func TestApproachingTerminalNonLinearLine(t *testing.T) {
	loop := adjacencyStub{
		"BP6":  {"BP7", "BP13"},
		"BP7":  {"BP6", "BP8"},
		"BP13": {"BP12", "BP6"},
	}
	nonLinear := NonLinearTerminals{"BP": {"BP1": {}, "BP14": {}}}

	terminal, err := ApproachingTerminal(loop, nonLinear, "BP6", "BP7")
	require.NoError(t, err)
	assert.Empty(t, terminal)
}

func TestApproachingTerminalErrors(t *testing.T) {
	line := adjacencyStub{}

	_, err := ApproachingTerminal(line, nil, "NS1", "NS1")
	assert.ErrorIs(t, err, ErrSameStation)

	_, err = ApproachingTerminal(line, nil, "NS1", "EW1")
	assert.ErrorIs(t, err, ErrLineMismatch)
}

func TestTerminals(t *testing.T) {
	adjacency := map[string][]string{
		"NS1": {"NS2"},
		"NS2": {"NS3"},
		"NS3": {"NS4"},
		"CG":  {"CG1"},
		"CG1": {"CG2"},
	}

	terminals := Terminals(nil, adjacency)
	assert.Equal(t, map[string]struct{}{
		"NS1": {},
		"NS4": {},
		"CG":  {}, // alphabetic codes are always terminals
		"CG2": {},
	}, terminals)
}

func TestTerminalsNonLinearLine(t *testing.T) {
	// Every station on a loop has two neighbours, so the explicit
	// registration decides.
	adjacency := map[string][]string{
		"PTC": {"PE1"},
		"PE1": {"PE2"},
		"PE2": {"PE3"},
		"PE3": {"PTC"},
	}
	nonLinear := NonLinearTerminals{
		"PE":  {"PTC": {}},
		"PTC": {"PTC": {}},
	}

	terminals := Terminals(nonLinear, adjacency)
	assert.Equal(t, map[string]struct{}{"PTC": {}}, terminals)

	assert.True(t, nonLinear.Contains("PTC", "PTC"))
	assert.False(t, nonLinear.Contains("PE", "PE1"))
	assert.False(t, nonLinear.Contains("NS", "NS1"))
}
