package httpgin

import (
	"time"

	"github.com/bandstand/bandstand/internal/domain"
)

// displayTime is the layout show times are rendered with on pages.
const displayTime = "Mon Jan 2, 2006 3:04PM"

// formTime is the layout the show form submits start times in.
const formTime = "2006-01-02 15:04:05"

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type CreateShowRequest struct {
	ArtistID  int64  `json:"artist_id" binding:"required,gt=0"`
	VenueID   int64  `json:"venue_id" binding:"required,gt=0"`
	StartTime string `json:"start_time" binding:"required"`
}

func (r CreateShowRequest) Show(startTime time.Time) domain.Show {
	return domain.Show{
		ArtistID:  r.ArtistID,
		VenueID:   r.VenueID,
		StartTime: startTime,
	}
}

type CreateShowResponse struct {
	ShowID int64 `json:"show_id"`
}

type VenueSummaryResponse struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int64  `json:"num_upcoming_shows"`
}

type VenueAreaResponse struct {
	City   string                 `json:"city"`
	State  string                 `json:"state"`
	Venues []VenueSummaryResponse `json:"venues"`
}

func toVenueAreaResponses(in []domain.VenueArea) []VenueAreaResponse {
	out := make([]VenueAreaResponse, 0, len(in))
	for _, a := range in {
		vs := make([]VenueSummaryResponse, 0, len(a.Venues))
		for _, v := range a.Venues {
			vs = append(vs, VenueSummaryResponse{
				ID:               v.ID,
				Name:             v.Name,
				NumUpcomingShows: v.NumUpcomingShows,
			})
		}
		out = append(out, VenueAreaResponse{City: a.City, State: a.State, Venues: vs})
	}
	return out
}

type ArtistSummaryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func toArtistSummaryResponses(in []domain.ArtistSummary) []ArtistSummaryResponse {
	out := make([]ArtistSummaryResponse, 0, len(in))
	for _, a := range in {
		out = append(out, ArtistSummaryResponse{ID: a.ID, Name: a.Name})
	}
	return out
}

type ShowListingResponse struct {
	VenueID         int64  `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        int64  `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

func toShowListingResponses(in []domain.ShowListing) []ShowListingResponse {
	out := make([]ShowListingResponse, 0, len(in))
	for _, s := range in {
		out = append(out, ShowListingResponse{
			VenueID:         s.VenueID,
			VenueName:       s.VenueName,
			ArtistID:        s.ArtistID,
			ArtistName:      s.ArtistName,
			ArtistImageLink: s.ArtistImageLink,
			StartTime:       s.StartTime.UTC().Format(time.RFC3339),
		})
	}
	return out
}

func parseRFC3339(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// showRow is a template-facing show history row with its start time
// preformatted.
type showRow struct {
	VenueID         int64
	VenueName       string
	VenueImageLink  string
	ArtistID        int64
	ArtistName      string
	ArtistImageLink string
	StartTime       string
}

func toShowRows(in []domain.ShowDetail) []showRow {
	out := make([]showRow, 0, len(in))
	for _, s := range in {
		out = append(out, showRow{
			VenueID:         s.VenueID,
			VenueName:       s.VenueName,
			VenueImageLink:  s.VenueImageLink,
			ArtistID:        s.ArtistID,
			ArtistName:      s.ArtistName,
			ArtistImageLink: s.ArtistImageLink,
			StartTime:       s.StartTime.Format(displayTime),
		})
	}
	return out
}
