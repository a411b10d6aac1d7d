package filter

// All is the wildcard accepted by every categorical filter.
const All = "All"

// Positions are the position tags offered for filtering.
var Positions = []string{All, "PG", "G", "G/F", "F/C", "PF", "C"}

// Conferences are the conference abbreviations offered for filtering.
var Conferences = []string{
	All,
	"A10", "ACC", "AE", "ASun", "Amer", "B10", "B12", "BE", "BSky", "BSth",
	"BW", "CAA", "CUSA", "Horz", "Ivy", "MAAC", "MAC", "MEAC", "MVC", "MWC",
	"NEC", "OVC", "Pat", "SB", "SC", "SEC", "SWAC", "Slnd", "Sum", "WAC", "WCC",
}

// Archetypes are the player roles offered for filtering.
var Archetypes = []string{
	All,
	"Scoring PG", "Pure PG", "PF/C", "Stretch 4", "Combo G", "Wing F", "Wing G", "C",
}

// CommitmentStatus values for the committed filter.
var CommitmentStatus = []string{All, "Yes", "No"}

// ConferenceNames maps abbreviations to display names. Abbreviations
// without an entry display as-is.
var ConferenceNames = map[string]string{
	"AE":     "America East",
	"ASun":   "ASUN",
	"Amer":   "AAC",
	"B10":    "Big 10",
	"B12":    "Big 12",
	"BE":     "Big East",
	"BSky":   "Big Sky",
	"BSouth": "Big South",
	"BW":     "Big West",
	"Horz":   "Horizon",
	"MWC":    "Mountain West",
	"Pat":    "Patriot",
	"SB":     "Sun Belt",
	"SC":     "SoCon",
	"Slnd":   "Southland",
	"Sum":    "Summit",
}

// ConferenceName returns the display name for an abbreviation.
func ConferenceName(abbr string) string {
	if name, ok := ConferenceNames[abbr]; ok {
		return name
	}
	return abbr
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
