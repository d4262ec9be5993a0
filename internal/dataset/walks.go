package dataset

// Walking routes between nearby stations and their durations in seconds,
// from the LTA Walking Train Map.
var walkingRoutes = []walkRoute{
	{"Bras Basah", "Bencoolen", 120},
	{"Dhoby Ghaut", "Bencoolen", 300},
	{"Esplanade", "City Hall", 300},
	{"Marina Bay", "Downtown", 300},
	{"Rochor", "Jalan Besar", 300},
	{"Telok Ayer", "Raffles Place", 300},
	{"Shenton Way", "Downtown", 360},
	{"Bras Basah", "City Hall", 420},
	{"Downtown", "Raffles Place", 420},
	{"Maxwell", "Tanjong Pagar", 480},
	{"Telok Ayer", "Tanjong Pagar", 480},
	{"Jalan Besar", "Bugis", 540},
	{"Rochor", "Bencoolen", 540},
	{"Boon Keng", "Bendemeer", 600},
	{"Bras Basah", "Bugis", 600},
	{"Chinatown", "Maxwell", 600},
	{"Clarke Quay", "Raffles Place", 600},
	{"Fort Canning", "Clarke Quay", 600},
	{"Little India", "Jalan Besar", 600},
	{"Shenton Way", "Tanjong Pagar", 600},
	{"Chinatown", "Raffles Place", 660},
	{"Maxwell", "Telok Ayer", 660},
	{"Esplanade", "Bugis", 720},
	{"Shenton Way", "Raffles Place", 720},
}
