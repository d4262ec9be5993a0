package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDwellTimes(t *testing.T) {
	terminals := map[string]struct{}{"NS1": {}, "NS4": {}}
	interchanges := map[string]struct{}{"NS1": {}, "NS3": {}}

	cases := []struct {
		name          string
		current, next string
		asc, desc     int
	}{
		{"plain stations", "EW5", "EW6", DwellNonInterchange, DwellNonInterchange},
		{"interchange at higher code", "NS2", "NS3", DwellNonInterchange, DwellInterchange},
		{"interchange then terminal", "NS3", "NS4", DwellInterchange, DwellTerminal},
		{"terminal beats interchange", "NS1", "NS2", DwellTerminal, DwellNonInterchange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			asc, desc := DwellTimes(terminals, interchanges, tc.current, tc.next)
			assert.Equal(t, tc.asc, asc)
			assert.Equal(t, tc.desc, desc)

			// Dwell is a property of the segment, not the traversal order.
			asc, desc = DwellTimes(terminals, interchanges, tc.next, tc.current)
			assert.Equal(t, tc.asc, asc)
			assert.Equal(t, tc.desc, desc)
		})
	}
}
