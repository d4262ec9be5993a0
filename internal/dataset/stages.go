package dataset

// Stations opened and closed at every stage of the MRT/LRT network
// build-out, in chronological order. Stage snapshots are cumulative folds
// over this list.
var stageDefs = []stageDef{
	{
		Name: "phase_1_1",
		Added: []stationDef{
			{"NS15", "Yio Chu Kang"},
			{"NS16", "Ang Mo Kio"},
			{"NS17", "Bishan"},
			{"NS18", "Braddell"},
			{"NS19", "Toa Payoh"},
		},
	},
	{
		Name: "phase_1_2",
		Added: []stationDef{
			{"EW15", "Tanjong Pagar"},
			{"EW16", "Outram Park"},
			{"NS20", "Novena"},
			{"NS21", "Newton"},
			{"NS22", "Orchard"},
			{"NS23", "Somerset"},
			{"NS24", "Dhoby Ghaut"},
			{"NS25", "City Hall"},
			{"NS26", "Raffles Place"},
		},
	},
	{
		Name: "phase_1a",
		Added: []stationDef{
			{"EW17", "Tiong Bahru"},
			{"EW18", "Redhill"},
			{"EW19", "Queenstown"},
			{"EW20", "Commonwealth"},
			{"EW21", "Buona Vista"},
			{"EW23", "Clementi"},
		},
	},
	{
		Name: "phase_2b_1",
		Added: []stationDef{
			{"EW24", "Jurong East"},
			{"EW25", "Chinese Garden"},
			{"EW26", "Lakeside"},
		},
	},
	{
		Name: "phase_2b_2",
		Added: []stationDef{
			{"NS13", "Yishun"},
			{"NS14", "Khatib"},
		},
	},
	{
		Name: "phase_2a_1",
		Added: []stationDef{
			{"EW4", "Tanah Merah"},
			{"EW5", "Bedok"},
			{"EW6", "Kembangan"},
			{"EW7", "Eunos"},
			{"EW8", "Paya Lebar"},
			{"EW9", "Aljunied"},
			{"EW10", "Kallang"},
			{"EW11", "Lavender"},
			{"EW12", "Bugis"},
			{"EW13", "City Hall"},
			{"EW14", "Raffles Place"},
			{"NS27", "Marina Bay"},
		},
	},
	{
		Name: "phase_2a_2",
		Added: []stationDef{
			{"EW1", "Pasir Ris"},
			{"EW2", "Tampines"},
			{"EW3", "Simei"},
		},
	},
	{
		Name: "phase_2b_3",
		Added: []stationDef{
			{"NS1", "Jurong East"},
			{"NS2", "Bukit Batok"},
			{"NS3", "Bukit Gombak"},
			{"NS4", "Choa Chu Kang"},
		},
	},
	{
		Name: "phase_2b_4",
		Added: []stationDef{
			{"EW27", "Boon Lay"},
		},
	},
	{
		Name: "woodlands_extension",
		Added: []stationDef{
			{"NS5", "Yew Tee"},
			{"NS7", "Kranji"},
			{"NS8", "Marsiling"},
			{"NS9", "Woodlands"},
			{"NS10", "Admiralty"},
			{"NS11", "Sembawang"},
		},
	},
	{
		Name: "bplrt",
		Added: []stationDef{
			{"BP1", "Choa Chu Kang"},
			{"BP2", "South View"},
			{"BP3", "Keat Hong"},
			{"BP4", "Teck Whye"},
			{"BP5", "Phoenix"},
			{"BP6", "Bukit Panjang"},
			{"BP7", "Petir"},
			{"BP8", "Pending"},
			{"BP9", "Bangkit"},
			{"BP10", "Fajar"},
			{"BP11", "Segar"},
			{"BP12", "Jelapang"},
			{"BP13", "Senja"},
			{"BP14", "Ten Mile Junction"},
		},
	},
	{
		Name: "ewl_expo",
		Added: []stationDef{
			{"CG", "Tanah Merah"},
			{"CG1", "Expo"},
		},
	},
	{
		Name: "dover",
		Added: []stationDef{
			{"EW22", "Dover"},
		},
	},
	{
		Name: "ewl_changi_airport",
		Added: []stationDef{
			{"CG2", "Changi Airport"},
		},
	},
	{
		Name: "sklrt_east_loop",
		Added: []stationDef{
			{"STC", "Sengkang"},
			{"SE1", "Compassvale"},
			{"SE2", "Rumbia"},
			{"SE3", "Bakau"},
			{"SE4", "Kangkar"},
			{"SE5", "Ranggung"},
		},
	},
	{
		Name: "nel",
		Added: []stationDef{
			{"NE1", "HarbourFront"},
			{"NE3", "Outram Park"},
			{"NE4", "Chinatown"},
			{"NE5", "Clarke Quay"},
			{"NE6", "Dhoby Ghaut"},
			{"NE7", "Little India"},
			{"NE8", "Farrer Park"},
			{"NE9", "Boon Keng"},
			{"NE10", "Potong Pasir"},
			{"NE12", "Serangoon"},
			{"NE13", "Kovan"},
			{"NE14", "Hougang"},
			{"NE16", "Sengkang"},
			{"NE17", "Punggol"},
		},
	},
	{
		Name: "pglrt_east_loop_and_sklrt_west_loop",
		Added: []stationDef{
			{"PTC", "Punggol"},
			{"PE1", "Cove"},
			{"PE2", "Meridian"},
			{"PE3", "Coral Edge"},
			{"PE4", "Riviera"},
			{"PE5", "Kadaloor"},
			{"SW4", "Thanggam"},
			{"SW5", "Fernvale"},
			{"SW6", "Layar"},
			{"SW7", "Tongkang"},
			{"SW8", "Renjong"},
		},
	},
	{
		Name: "buangkok",
		Added: []stationDef{
			{"NE15", "Buangkok"},
		},
	},
	{
		Name: "oasis",
		Added: []stationDef{
			{"PE6", "Oasis"},
		},
	},
	{
		Name: "farmway",
		Added: []stationDef{
			{"SW2", "Farmway"},
		},
	},
	{
		Name: "ewl_boon_lay_extension",
		Added: []stationDef{
			{"EW28", "Pioneer"},
			{"EW29", "Joo Koon"},
		},
	},
	{
		Name: "ccl_3",
		Added: []stationDef{
			{"CC12", "Bartley"},
			{"CC13", "Serangoon"},
			{"CC14", "Lorong Chuan"},
			{"CC15", "Bishan"},
			{"CC16", "Marymount"},
		},
	},
	{
		Name: "ccl_1_and_ccl_2",
		Added: []stationDef{
			{"CC1", "Dhoby Ghaut"},
			{"CC2", "Bras Basah"},
			{"CC3", "Esplanade"},
			{"CC4", "Promenade"},
			{"CC5", "Nicoll Highway"},
			{"CC6", "Stadium"},
			{"CC7", "Mountbatten"},
			{"CC8", "Dakota"},
			{"CC9", "Paya Lebar"},
			{"CC10", "MacPherson"},
			{"CC11", "Tai Seng"},
		},
	},
	{
		Name: "ten_mile_junction_temporary_closure",
		Removed: []stationDef{
			{"BP14", "Ten Mile Junction"},
		},
	},
	{
		Name: "woodleigh_and_damai",
		Added: []stationDef{
			{"NE11", "Woodleigh"},
			{"PE7", "Damai"},
		},
	},
	{
		Name: "ccl_4_and_ccl_5",
		Added: []stationDef{
			{"CC17", "Caldecott"},
			{"CC19", "Botanic Gardens"},
			{"CC20", "Farrer Road"},
			{"CC21", "Holland Village"},
			{"CC22", "Buona Vista"},
			{"CC23", "one-north"},
			{"CC24", "Kent Ridge"},
			{"CC25", "Haw Par Villa"},
			{"CC26", "Pasir Panjang"},
			{"CC27", "Labrador Park"},
			{"CC28", "Telok Blangah"},
			{"CC29", "HarbourFront"},
		},
	},
	{
		Name: "ten_mile_junction_reopen",
		Added: []stationDef{
			{"BP14", "Ten Mile Junction"},
		},
	},
	{
		Name: "ccl_e",
		Added: []stationDef{
			{"CE0X", "Stadium"},
			{"CE0Y", "Nicoll Highway"},
			{"CE0Z", "Promenade"},
			{"CE1", "Bayfront"},
			{"CE2", "Marina Bay"},
		},
	},
	{
		Name: "cheng_lim",
		Added: []stationDef{
			{"SW1", "Cheng Lim"},
		},
	},
	{
		Name: "dtl_1",
		Added: []stationDef{
			{"DT14", "Bugis"},
			{"DT15", "Promenade"},
			{"DT16", "Bayfront"},
			{"DT17", "Downtown"},
			{"DT18", "Telok Ayer"},
			{"DT19", "Chinatown"},
		},
	},
	{
		Name: "pglrt_west_loop",
		Added: []stationDef{
			{"PW5", "Nibong"},
			{"PW6", "Sumang"},
			{"PW7", "Soo Teck"},
		},
	},
	{
		Name: "marina_south_pier",
		Added: []stationDef{
			{"NS28", "Marina South Pier"},
		},
	},
	{
		Name: "kupang",
		Added: []stationDef{
			{"SW3", "Kupang"},
		},
	},
	{
		Name: "dtl_2",
		Added: []stationDef{
			{"DT1", "Bukit Panjang"},
			{"DT2", "Cashew"},
			{"DT3", "Hillview"},
			{"DT5", "Beauty World"},
			{"DT6", "King Albert Park"},
			{"DT7", "Sixth Avenue"},
			{"DT8", "Tan Kah Kee"},
			{"DT9", "Botanic Gardens"},
			{"DT10", "Stevens"},
			{"DT11", "Newton"},
			{"DT12", "Little India"},
			{"DT13", "Rochor"},
		},
	},
	{
		Name: "sam_kee",
		Added: []stationDef{
			{"PW1", "Sam Kee"},
		},
	},
	{
		Name: "punggol_point",
		Added: []stationDef{
			{"PW3", "Punggol Point"},
		},
	},
	{
		Name: "samudera",
		Added: []stationDef{
			{"PW4", "Samudera"},
		},
	},
	{
		Name: "ewl_tuas_extension",
		Added: []stationDef{
			{"EW30", "Gul Circle"},
			{"EW31", "Tuas Crescent"},
			{"EW32", "Tuas West Road"},
			{"EW33", "Tuas Link"},
		},
	},
	{
		Name: "dtl_3",
		Added: []stationDef{
			{"DT20", "Fort Canning"},
			{"DT21", "Bencoolen"},
			{"DT22", "Jalan Besar"},
			{"DT23", "Bendemeer"},
			{"DT24", "Geylang Bahru"},
			{"DT25", "Mattar"},
			{"DT26", "MacPherson"},
			{"DT27", "Ubi"},
			{"DT28", "Kaki Bukit"},
			{"DT29", "Bedok North"},
			{"DT30", "Bedok Reservoir"},
			{"DT31", "Tampines West"},
			{"DT32", "Tampines"},
			{"DT33", "Tampines East"},
			{"DT34", "Upper Changi"},
			{"DT35", "Expo"},
		},
	},
	{
		Name: "ten_mile_junction_permanent_closure",
		Removed: []stationDef{
			{"BP14", "Ten Mile Junction"},
		},
	},
	{
		Name: "canberra",
		Added: []stationDef{
			{"NS12", "Canberra"},
		},
	},
	{
		Name: "tel_1",
		Added: []stationDef{
			{"TE1", "Woodlands North"},
			{"TE2", "Woodlands"},
			{"TE3", "Woodlands South"},
		},
	},
	{
		Name: "tel_2",
		Added: []stationDef{
			{"TE4", "Springleaf"},
			{"TE5", "Lentor"},
			{"TE6", "Mayflower"},
			{"TE7", "Bright Hill"},
			{"TE8", "Upper Thomson"},
			{"TE9", "Caldecott"},
		},
	},
	{
		Name: "tel_3",
		Added: []stationDef{
			{"TE11", "Stevens"},
			{"TE12", "Napier"},
			{"TE13", "Orchard Boulevard"},
			{"TE14", "Orchard"},
			{"TE15", "Great World"},
			{"TE16", "Havelock"},
			{"TE17", "Outram Park"},
			{"TE18", "Maxwell"},
			{"TE19", "Shenton Way"},
			{"TE20", "Marina Bay"},
			{"TE22", "Gardens by the Bay"},
		},
	},
	{
		Name: "tel_4",
		Added: []stationDef{
			{"TE23", "Tanjong Rhu"},
			{"TE24", "Katong Park"},
			{"TE25", "Tanjong Katong"},
			{"TE26", "Marine Parade"},
			{"TE27", "Marine Terrace"},
			{"TE28", "Siglap"},
			{"TE29", "Bayshore"},
		},
	},
	{
		Name: "teck_lee",
		Added: []stationDef{
			{"PW2", "Teck Lee"},
		},
	},
	{
		Name: "punggol_coast_extension",
		Added: []stationDef{
			{"NE18", "Punggol Coast"},
		},
	},
	{
		Name: "hume",
		Added: []stationDef{
			{"DT4", "Hume"},
		},
	},
	{
		Name: "tel_5_and_dtl_3e",
		Added: []stationDef{
			{"TE30", "Bedok South"},
			{"TE31", "Sungei Bedok"},
			{"DT36", "Xilin"},
			{"DT37", "Sungei Bedok"},
		},
	},
	{
		Name: "ccl_6",
		Added: []stationDef{
			{"CC30", "Keppel"},
			{"CC31", "Cantonment"},
			{"CC32", "Prince Edward Road"},
			{"CC33", "Marina Bay"},
			{"CC34", "Bayfront"},
		},
		Removed: []stationDef{
			{"CE0X", "Stadium"},
			{"CE0Y", "Nicoll Highway"},
			{"CE0Z", "Promenade"},
			{"CE1", "Bayfront"},
			{"CE2", "Marina Bay"},
		},
	},
	{
		Name: "jrl_1",
		Added: []stationDef{
			{"JS1", "Choa Chu Kang"},
			{"JS2", "Choa Chu Kang West"},
			{"JS3", "Tengah"},
			{"JS4", "Hong Kah"},
			{"JS5", "Corporation"},
			{"JS6", "Jurong West"},
			{"JS7", "Bahar Junction"},
			{"JS8", "Boon Lay"},
			{"JW1", "Gek Poh"},
			{"JW2", "Tawas"},
		},
	},
	{
		Name: "founders_memorial",
		Added: []stationDef{
			{"TE22A", "Founders' Memorial"},
		},
	},
	{
		Name: "jrl_2",
		Added: []stationDef{
			{"JE0", "Tengah"},
			{"JE1", "Tengah Plantation"},
			{"JE2", "Tengah Park"},
			{"JE3", "Bukit Batok West"},
			{"JE4", "Toh Guan"},
			{"JE5", "Jurong East"},
			{"JE6", "Jurong Town Hall"},
			{"JE7", "Pandan Reservoir"},
		},
	},
	{
		Name: "jrl_3",
		Added: []stationDef{
			{"JS9", "Enterprise"},
			{"JS10", "Tukang"},
			{"JS11", "Jurong Hill"},
			{"JS12", "Jurong Pier"},
			{"JW3", "Nanyang Gateway"},
			{"JW4", "Nanyang Crescent"},
			{"JW5", "Peng Kang Hill"},
		},
	},
	{
		Name: "crl_1",
		Added: []stationDef{
			{"CR2", "Aviation Park"},
			{"CR3", "Loyang"},
			{"CR4", "Pasir Ris East"},
			{"CR5", "Pasir Ris"},
			{"CR6", "Tampines North"},
			{"CR7", "Defu"},
			{"CR8", "Hougang"},
			{"CR9", "Serangoon North"},
			{"CR10", "Tavistock"},
			{"CR11", "Ang Mo Kio"},
			{"CR12", "Teck Ghee"},
			{"CR13", "Bright Hill"},
		},
	},
	{
		Name: "crl_2",
		Added: []stationDef{
			{"CR14", "Turf City"},
			{"CR15", "King Albert Park"},
			{"CR16", "Maju"},
			{"CR17", "Clementi"},
			{"CR18", "West Coast"},
			{"CR19", "Jurong Lake District"},
		},
	},
	{
		Name: "crl_pe",
		Added: []stationDef{
			{"CP1", "Pasir Ris"},
			{"CP2", "Elias"},
			{"CP3", "Riviera"},
			{"CP4", "Punggol"},
		},
	},
	{
		Name: "brickland",
		Added: []stationDef{
			{"NS3A", "Brickland"},
		},
	},
	{
		Name: "cg_tel_c",
		Added: []stationDef{
			{"CR1", "Changi Airport Terminal 5"},
			{"TE32", "Changi Airport Terminal 5"},
			{"TE33", "Changi Airport"},
			{"TE34", "Expo"},
			{"TE35", "Tanah Merah"},
		},
		Removed: []stationDef{
			{"CG2", "Changi Airport"},
			{"CG1", "Expo"},
			{"CG", "Tanah Merah"},
		},
	},
	{
		Name: "future",
		Added: []stationDef{
			{"CC18", "Bukit Brown"},
			{"DT", "Sungei Kadut"},
			{"NS6", "Sungei Kadut"},
			{"TE4A", "Tagore"},
			{"TE10", "Mount Pleasant"},
			{"TE21", "Marina South"},
		},
	},
}
