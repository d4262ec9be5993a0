package dataset

// Looped lines all terminate at a single station like JS1, except for the
// Bukit Panjang LRT (Service A/B end at BP1, Service C at BP14).
var loopedLineTerminals = map[string][]string{
	"BP":  {"BP1", "BP14"},
	"JS":  {"JS1"},
	"JW":  {"JS1"},
	"PE":  {"PTC"},
	"PTC": {"PTC"},
	"PW":  {"PTC"},
	"SE":  {"STC"},
	"STC": {"STC"},
	"SW":  {"STC"},
}
