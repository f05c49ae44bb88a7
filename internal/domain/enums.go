package domain

// Genres is the fixed set of genre tags offered on venue and artist
// forms. Membership is checked at form-submission time only; the
// storage layer stores genres as a plain text array.
var Genres = []string{
	"Alternative",
	"Blues",
	"Classical",
	"Country",
	"Electronic",
	"Folk",
	"Funk",
	"Hip-Hop",
	"Heavy Metal",
	"Instrumental",
	"Jazz",
	"Musical Theatre",
	"Pop",
	"Punk",
	"R&B",
	"Reggae",
	"Rock n Roll",
	"Soul",
	"Other",
}

// States is the fixed set of US state codes offered on forms.
var States = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH",
	"OK", "OR", "MD", "MA", "MI", "MN", "MS", "MO", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI",
	"WY",
}

var (
	genreSet = toSet(Genres)
	stateSet = toSet(States)
)

func toSet(vals []string) map[string]struct{} {
	m := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		m[v] = struct{}{}
	}
	return m
}

// ValidGenre reports whether g belongs to the fixed genre tag set.
func ValidGenre(g string) bool {
	_, ok := genreSet[g]
	return ok
}

// ValidGenres reports whether every element of gs is a known genre tag.
func ValidGenres(gs []string) bool {
	for _, g := range gs {
		if !ValidGenre(g) {
			return false
		}
	}
	return true
}

// ValidState reports whether s is a known US state code.
func ValidState(s string) bool {
	_, ok := stateSet[s]
	return ok
}
