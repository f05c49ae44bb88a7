package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionShows(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		starts       []time.Time
		wantPast     int
		wantUpcoming int
	}{
		{
			name:         "empty",
			starts:       nil,
			wantPast:     0,
			wantUpcoming: 0,
		},
		{
			name: "mixed",
			starts: []time.Time{
				now.Add(-48 * time.Hour),
				now.Add(-time.Minute),
				now.Add(time.Minute),
				now.Add(72 * time.Hour),
			},
			wantPast:     2,
			wantUpcoming: 2,
		},
		{
			name:         "exactly now counts as past",
			starts:       []time.Time{now},
			wantPast:     1,
			wantUpcoming: 0,
		},
		{
			name:         "all upcoming",
			starts:       []time.Time{now.Add(time.Second), now.Add(time.Hour)},
			wantPast:     0,
			wantUpcoming: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shows := make([]ShowDetail, 0, len(tt.starts))
			for i, s := range tt.starts {
				shows = append(shows, ShowDetail{ShowID: int64(i + 1), StartTime: s})
			}

			past, upcoming := PartitionShows(shows, now)

			assert.Len(t, past, tt.wantPast)
			assert.Len(t, upcoming, tt.wantUpcoming)
			assert.Equal(t, len(shows), len(past)+len(upcoming))

			for _, s := range past {
				assert.False(t, s.StartTime.After(now))
			}
			for _, s := range upcoming {
				assert.True(t, s.StartTime.After(now))
			}
		})
	}
}

func TestPartitionShowsPreservesOrder(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	shows := []ShowDetail{
		{ShowID: 1, StartTime: now.Add(-3 * time.Hour)},
		{ShowID: 2, StartTime: now.Add(-time.Hour)},
		{ShowID: 3, StartTime: now.Add(time.Hour)},
		{ShowID: 4, StartTime: now.Add(3 * time.Hour)},
	}

	past, upcoming := PartitionShows(shows, now)

	require.Len(t, past, 2)
	require.Len(t, upcoming, 2)
	assert.Equal(t, int64(1), past[0].ShowID)
	assert.Equal(t, int64(2), past[1].ShowID)
	assert.Equal(t, int64(3), upcoming[0].ShowID)
	assert.Equal(t, int64(4), upcoming[1].ShowID)
}

func TestGroupVenuesByArea(t *testing.T) {
	venues := []VenueSummary{
		{ID: 3, Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA"},
		{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA"},
		{ID: 2, Name: "The Dueling Pianos Bar", City: "New York", State: "NY"},
	}

	areas := GroupVenuesByArea(venues)

	require.Len(t, areas, 2)

	assert.Equal(t, "New York", areas[0].City)
	assert.Equal(t, "NY", areas[0].State)
	require.Len(t, areas[0].Venues, 1)
	assert.Equal(t, int64(2), areas[0].Venues[0].ID)

	assert.Equal(t, "San Francisco", areas[1].City)
	assert.Equal(t, "CA", areas[1].State)
	require.Len(t, areas[1].Venues, 2)
	assert.Equal(t, "Park Square Live Music & Coffee", areas[1].Venues[0].Name)
	assert.Equal(t, "The Musical Hop", areas[1].Venues[1].Name)
}

func TestGroupVenuesByAreaSameCityDifferentState(t *testing.T) {
	venues := []VenueSummary{
		{ID: 1, Name: "A", City: "Springfield", State: "MA"},
		{ID: 2, Name: "B", City: "Springfield", State: "IL"},
	}

	areas := GroupVenuesByArea(venues)

	require.Len(t, areas, 2)
	assert.Equal(t, "IL", areas[0].State)
	assert.Equal(t, "MA", areas[1].State)
}

func TestGroupVenuesByAreaEmpty(t *testing.T) {
	assert.Empty(t, GroupVenuesByArea(nil))
}
