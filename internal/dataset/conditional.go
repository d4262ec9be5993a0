package dataset

import "github.com/mrtroute/mrtroute_core/internal/network"

// Train segments adjacent to a conditional interchange, with the edge type
// riders experience when travelling over them. Nearly all of these are
// non-sequential pairs like JS7-JW1; only BP6-BP7, JS6-JS7 and JS7-JS8 are
// sequential.
var conditionalSegments = []network.ConditionalSegment{
	{Pair: [2]string{"BP5", "BP6"}, EdgeType: "bukit_panjang_main", Interchange: "BP6"},
	{Pair: [2]string{"BP6", "BP13"}, EdgeType: "bukit_panjang_service_a", Interchange: "BP6"},
	{Pair: [2]string{"BP6", "BP7"}, EdgeType: "bukit_panjang_service_b", Interchange: "BP6"},
	{Pair: [2]string{"BP6", "BP14"}, EdgeType: "bukit_panjang_service_c", Interchange: "BP6"},

	{Pair: [2]string{"STC", "SE1"}, EdgeType: "sengkang_east_loop", Interchange: "STC"},
	{Pair: [2]string{"STC", "SE5"}, EdgeType: "sengkang_east_loop", Interchange: "STC"},
	{Pair: [2]string{"STC", "SW1"}, EdgeType: "sengkang_west_loop", Interchange: "STC"},
	{Pair: [2]string{"STC", "SW2"}, EdgeType: "sengkang_west_loop", Interchange: "STC", DefunctWith: "SW1"},
	{Pair: [2]string{"STC", "SW4"}, EdgeType: "sengkang_west_loop", Interchange: "STC", DefunctWith: "SW2"},
	{Pair: [2]string{"STC", "SW8"}, EdgeType: "sengkang_west_loop", Interchange: "STC"},

	{Pair: [2]string{"PTC", "PE1"}, EdgeType: "punggol_east_loop", Interchange: "PTC"},
	{Pair: [2]string{"PTC", "PE5"}, EdgeType: "punggol_east_loop", Interchange: "PTC", DefunctWith: "PE6"},
	{Pair: [2]string{"PTC", "PE6"}, EdgeType: "punggol_east_loop", Interchange: "PTC", DefunctWith: "PE7"},
	{Pair: [2]string{"PTC", "PE7"}, EdgeType: "punggol_east_loop", Interchange: "PTC"},
	{Pair: [2]string{"PTC", "PW1"}, EdgeType: "punggol_west_loop", Interchange: "PTC"},
	{Pair: [2]string{"PTC", "PW5"}, EdgeType: "punggol_west_loop", Interchange: "PTC", DefunctWith: "PW1"},
	{Pair: [2]string{"PTC", "PW7"}, EdgeType: "punggol_west_loop", Interchange: "PTC"},

	{Pair: [2]string{"CC4", "CC5"}, EdgeType: "promenade_east", Interchange: "CC4"},
	{Pair: [2]string{"CC3", "CC4"}, EdgeType: "promenade_west", Interchange: "CC4"},
	{Pair: [2]string{"CC4", "CC34"}, EdgeType: "promenade_south", Interchange: "CC4"},

	{Pair: [2]string{"JS6", "JS7"}, EdgeType: "bahar_east", Interchange: "JS7"},
	{Pair: [2]string{"JS7", "JW1"}, EdgeType: "bahar_west", Interchange: "JS7"},
	{Pair: [2]string{"JS7", "JS8"}, EdgeType: "bahar_south", Interchange: "JS7"},
}

// Transfer durations at all conditional interchanges, keyed by the ordered
// (previous, next) edge type pair. Order matters: riding bahar_east then
// bahar_west means changing trains at JS7, the reverse does not.
var conditionalTransferDurations = network.ConditionalTransferTable{
	"punggol_west_loop": {"punggol_east_loop": 360},
	"punggol_east_loop": {"punggol_west_loop": 360},

	"sengkang_west_loop": {"sengkang_east_loop": 360},
	"sengkang_east_loop": {"sengkang_west_loop": 360},

	"bukit_panjang_service_a": {
		"bukit_panjang_service_b": 420,
		"bukit_panjang_service_c": 420,
	},
	"bukit_panjang_service_b": {
		"bukit_panjang_service_a": 420,
		"bukit_panjang_service_c": 420,
	},
	// Assume Service C always involves a transfer at BP6.
	"bukit_panjang_service_c": {
		"bukit_panjang_main":      420,
		"bukit_panjang_service_a": 420,
		"bukit_panjang_service_b": 420,
	},
	"bukit_panjang_main": {"bukit_panjang_service_c": 420},

	"promenade_south": {"promenade_west": 420},
	"promenade_west":  {"promenade_south": 420},
	"promenade_east":  {"promenade_south": 420},

	"bahar_east":  {"bahar_west": 360},
	"bahar_west":  {"bahar_south": 360},
	"bahar_south": {"bahar_east": 360},
}
