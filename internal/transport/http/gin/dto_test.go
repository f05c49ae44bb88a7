package httpgin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bandstand/bandstand/internal/domain"
)

func TestToShowListingResponses(t *testing.T) {
	loc := time.FixedZone("PST", -8*3600)
	in := []domain.ShowListing{
		{
			VenueID:    1,
			VenueName:  "The Musical Hop",
			ArtistID:   2,
			ArtistName: "Guns N Petals",
			StartTime:  time.Date(2026, 7, 4, 12, 0, 0, 0, loc),
		},
	}

	out := toShowListingResponses(in)

	require.Len(t, out, 1)
	assert.Equal(t, "2026-07-04T20:00:00Z", out[0].StartTime)
	assert.Equal(t, "The Musical Hop", out[0].VenueName)
}

func TestToShowRowsFormatsDisplayTime(t *testing.T) {
	in := []domain.ShowDetail{
		{
			ArtistID:   2,
			ArtistName: "Guns N Petals",
			StartTime:  time.Date(2026, 7, 4, 20, 0, 0, 0, time.UTC),
		},
	}

	out := toShowRows(in)

	require.Len(t, out, 1)
	assert.Equal(t, "Sat Jul 4, 2026 8:00PM", out[0].StartTime)
}

func TestParseRFC3339(t *testing.T) {
	got, err := parseRFC3339("2026-07-04T20:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 7, 4, 20, 0, 0, 0, time.UTC), got)

	_, err = parseRFC3339("2026-07-04 20:00:00")
	assert.Error(t, err)
}

func TestCreateShowRequestShow(t *testing.T) {
	start := time.Date(2026, 7, 4, 20, 0, 0, 0, time.UTC)
	req := CreateShowRequest{ArtistID: 2, VenueID: 1, StartTime: "2026-07-04T20:00:00Z"}

	s := req.Show(start)

	assert.Equal(t, int64(2), s.ArtistID)
	assert.Equal(t, int64(1), s.VenueID)
	assert.True(t, s.StartTime.Equal(start))
}
