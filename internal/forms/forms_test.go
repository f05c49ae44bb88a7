package forms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bandstand/bandstand/internal/domain"
)

func validVenueForm() VenueForm {
	return VenueForm{
		Name:    "The Musical Hop",
		City:    "San Francisco",
		State:   "CA",
		Address: "1015 Folsom Street",
		Phone:   "123-123-1234",
		Genres:  []string{"Jazz", "Reggae"},
	}
}

func TestVenueFormValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		f := validVenueForm()
		assert.False(t, f.Validate().Any())
	})

	t.Run("missing required fields", func(t *testing.T) {
		f := VenueForm{}
		errs := f.Validate()
		require.True(t, errs.Any())
		assert.Contains(t, errs["name"], "This field is required.")
		assert.Contains(t, errs["city"], "This field is required.")
		assert.Contains(t, errs["state"], "This field is required.")
		assert.Contains(t, errs["address"], "This field is required.")
		assert.Contains(t, errs["phone"], "This field is required.")
		assert.Contains(t, errs["genres"], "This field is required.")
	})

	t.Run("trims whitespace before validating", func(t *testing.T) {
		f := validVenueForm()
		f.Name = "  The Musical Hop  "
		f.City = " San Francisco "
		assert.False(t, f.Validate().Any())
		assert.Equal(t, "The Musical Hop", f.Name)
		assert.Equal(t, "San Francisco", f.City)
	})

	t.Run("unknown state", func(t *testing.T) {
		f := validVenueForm()
		f.State = "XX"
		errs := f.Validate()
		assert.Contains(t, errs["state"], "Invalid state.")
	})

	t.Run("unknown genre", func(t *testing.T) {
		f := validVenueForm()
		f.Genres = []string{"Jazz", "Polka"}
		errs := f.Validate()
		assert.Contains(t, errs["genres"], "Invalid genres.")
	})

	t.Run("bad facebook link", func(t *testing.T) {
		f := validVenueForm()
		f.FacebookLink = "not a url"
		errs := f.Validate()
		assert.Contains(t, errs["facebook_link"], "Invalid URL.")
	})

	t.Run("optional links may be empty", func(t *testing.T) {
		f := validVenueForm()
		f.ImageLink = ""
		f.FacebookLink = ""
		f.WebsiteLink = ""
		assert.False(t, f.Validate().Any())
	})
}

func TestPhoneValidation(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"123-123-1234", true},
		{"123.123.1234", true},
		{"123 123 1234", true},
		{"1231231234", true},
		{"(123)123-1234", true},
		{"(123) 123-1234", true},
		{"not-a-phone", false},
		{"123-123-123", false},
		{"123-123-12345", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			f := validVenueForm()
			f.Phone = tt.phone
			errs := f.Validate()
			if tt.valid {
				assert.False(t, errs.Any(), errs)
			} else {
				assert.True(t, errs.Any())
			}
		})
	}
}

func TestVenueFormToDomain(t *testing.T) {
	f := validVenueForm()
	f.SeekingTalent = "y"
	f.SeekingDescription = "Looking for local jazz acts."

	v := f.Venue()

	assert.Equal(t, "The Musical Hop", v.Name)
	assert.Equal(t, "CA", v.State)
	assert.True(t, v.SeekingTalent)
	assert.Equal(t, "Looking for local jazz acts.", v.SeekingDescription)
}

func TestVenueFormCheckboxUnchecked(t *testing.T) {
	f := validVenueForm()
	f.SeekingTalent = ""

	assert.False(t, f.Venue().SeekingTalent)
}

func TestFromVenueRoundTrip(t *testing.T) {
	v := domain.Venue{
		ID:                 7,
		Name:               "Park Square Live Music & Coffee",
		Genres:             []string{"Rock n Roll", "Jazz"},
		Address:            "34 Whiskey Moore Ave",
		City:               "San Francisco",
		State:              "CA",
		Phone:              "415-000-1234",
		ImageLink:          "https://example.com/park.jpg",
		SeekingTalent:      true,
		SeekingDescription: "We want you here!",
	}

	f := FromVenue(v)

	assert.Equal(t, "y", f.SeekingTalent)
	assert.False(t, f.Validate().Any())

	got := f.Venue()
	got.ID = v.ID
	assert.Equal(t, v, got)
}

func TestArtistFormValidate(t *testing.T) {
	f := ArtistForm{
		Name:   "Guns N Petals",
		City:   "San Francisco",
		State:  "CA",
		Phone:  "326-123-5000",
		Genres: []string{"Rock n Roll"},
	}
	assert.False(t, f.Validate().Any())

	f.Phone = "nope"
	errs := f.Validate()
	assert.Contains(t, errs["phone"], "Invalid phone number.")
}

func TestFromArtistRoundTrip(t *testing.T) {
	a := domain.Artist{
		ID:           4,
		Name:         "Guns N Petals",
		Genres:       []string{"Rock n Roll"},
		City:         "San Francisco",
		State:        "CA",
		Phone:        "326-123-5000",
		SeekingVenue: true,
	}

	f := FromArtist(a)

	assert.Equal(t, "y", f.SeekingVenue)

	got := f.Artist()
	got.ID = a.ID
	assert.Equal(t, a, got)
}

func TestShowFormValidate(t *testing.T) {
	tests := []struct {
		name      string
		form      ShowForm
		wantField string
	}{
		{
			name: "valid",
			form: ShowForm{
				ArtistID:  1,
				VenueID:   2,
				StartTime: time.Date(2026, 7, 4, 20, 0, 0, 0, time.UTC),
			},
		},
		{
			name:      "missing artist",
			form:      ShowForm{VenueID: 2, StartTime: time.Now()},
			wantField: "artist_id",
		},
		{
			name:      "missing venue",
			form:      ShowForm{ArtistID: 1, StartTime: time.Now()},
			wantField: "venue_id",
		},
		{
			name:      "missing start time",
			form:      ShowForm{ArtistID: 1, VenueID: 2},
			wantField: "start_time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.form.Validate()
			if tt.wantField == "" {
				assert.False(t, errs.Any(), errs)
				return
			}
			require.True(t, errs.Any())
			assert.NotEmpty(t, errs[tt.wantField])
		})
	}
}

func TestShowFormToDomain(t *testing.T) {
	start := time.Date(2026, 7, 4, 20, 0, 0, 0, time.UTC)
	f := ShowForm{ArtistID: 1, VenueID: 2, StartTime: start}

	s := f.Show()

	assert.Equal(t, int64(1), s.ArtistID)
	assert.Equal(t, int64(2), s.VenueID)
	assert.True(t, s.StartTime.Equal(start))
}
