package network

import "github.com/mrtroute/mrtroute_core/internal/models"

// Dwell time presets in seconds, by station class.
//
// Reference: https://www.railengineer.co.uk/an-international-metro-review
const (
	DwellNonInterchange = 28
	DwellInterchange    = 45
	DwellTerminal       = 60
)

// DwellTimes assigns direction-specific dwell times to the segment between
// two adjacent stations. The ascending dwell is charged at the lower-coded
// station, the descending dwell at the higher-coded one, so asymmetric
// stations such as terminals weigh on the correct end of the segment.
func DwellTimes(terminals, interchanges map[string]struct{}, current, next string) (asc, desc int) {
	smaller, larger := current, next
	if models.CompareStationCodes(current, next) > 0 {
		smaller, larger = next, current
	}

	asc, desc = DwellNonInterchange, DwellNonInterchange
	if _, ok := interchanges[smaller]; ok {
		asc = max(asc, DwellInterchange)
	}
	if _, ok := interchanges[larger]; ok {
		desc = max(desc, DwellInterchange)
	}
	if _, ok := terminals[smaller]; ok {
		asc = max(asc, DwellTerminal)
	}
	if _, ok := terminals[larger]; ok {
		desc = max(desc, DwellTerminal)
	}
	return asc, desc
}
