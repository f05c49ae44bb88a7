package domain

import (
	"time"
)

// Venue is a physical location that hosts shows.
type Venue struct {
	ID                 int64
	Name               string
	Genres             []string
	Address            string
	City               string
	State              string
	Phone              string
	ImageLink          string
	FacebookLink       string
	WebsiteLink        string
	SeekingTalent      bool
	SeekingDescription string
}

// Artist is a performer who appears at shows.
type Artist struct {
	ID                 int64
	Name               string
	Genres             []string
	City               string
	State              string
	Phone              string
	ImageLink          string
	FacebookLink       string
	WebsiteLink        string
	SeekingVenue       bool
	SeekingDescription string
}

// Show links one artist to one venue at a specific start time. Both
// foreign keys are required; the schema rejects orphan shows.
type Show struct {
	ID        int64
	ArtistID  int64
	VenueID   int64
	StartTime time.Time
}

// VenueSummary is a listing/search row with its derived upcoming count.
type VenueSummary struct {
	ID               int64
	Name             string
	City             string
	State            string
	NumUpcomingShows int64
}

// ArtistSummary is a listing/search row with its derived upcoming count.
type ArtistSummary struct {
	ID               int64
	Name             string
	NumUpcomingShows int64
}

// VenueArea groups venues sharing a (city, state) pair.
type VenueArea struct {
	City   string
	State  string
	Venues []VenueSummary
}

// ShowDetail is one row of an entity's show history: the show's start
// time plus both entities' identity and image, so either side of the
// relation can render the other.
type ShowDetail struct {
	ShowID          int64
	VenueID         int64
	VenueName       string
	VenueImageLink  string
	ArtistID        int64
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// VenuePage is a venue detail view with its shows partitioned by time.
type VenuePage struct {
	Venue
	PastShows          []ShowDetail
	UpcomingShows      []ShowDetail
	PastShowsCount     int
	UpcomingShowsCount int
}

// ArtistPage is an artist detail view with its shows partitioned by time.
type ArtistPage struct {
	Artist
	PastShows          []ShowDetail
	UpcomingShows      []ShowDetail
	PastShowsCount     int
	UpcomingShowsCount int
}

// ShowListing is one row of the flat all-shows join.
type ShowListing struct {
	VenueID         int64
	VenueName       string
	ArtistID        int64
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}
