package dataset

// Interchange transfer durations in seconds by station name, covering
// defunct and future interchanges. Walking plus waiting time estimates;
// both directions treated as equal.
var interchangeTransferDurations = map[string]int{
	"Ang Mo Kio": 600,
	"Bayfront": 360,
	"Bishan": 480,
	"Boon Lay": 600,
	"Botanic Gardens": 480,
	"Bright Hill": 540,
	"Bugis": 540,
	"Bukit Panjang": 600,
	"Buona Vista": 480,
	"Caldecott": 540,
	"Changi Airport Terminal 5": 540,
	"Chinatown": 420,
	"Choa Chu Kang": 420,
	"City Hall": 360,
	"Clementi": 480,
	"Dhoby Ghaut": 480,
	"Expo": 480,
	"HarbourFront": 420,
	"Hougang": 540,
	"Jurong East": 420,
	"King Albert Park": 540,
	"Little India": 480,
	"MacPherson": 360,
	"Marina Bay": 600,
	"Newton": 540,
	"Nicoll Highway": 360,
	"Orchard": 480,
	"Outram Park": 480,
	"Pasir Ris": 480,
	"Paya Lebar": 480,
	"Promenade": 420,
	"Punggol": 420,
	"Raffles Place": 360,
	"Riviera": 480,
	"Sengkang": 420,
	"Serangoon": 480,
	"Stadium": 360,
	"Stevens": 420,
	"Sungei Bedok": 540,
	"Sungei Kadut": 480,
	"Tampines": 720,
	"Tanah Merah": 420,
	"Tengah": 360,
	"Woodlands": 540,
}
