package domain

import (
	"sort"
	"time"
)

// PartitionShows splits shows into past and upcoming relative to now.
// A show starting strictly after now is upcoming; everything else,
// including a show starting exactly at now, is past.
func PartitionShows(shows []ShowDetail, now time.Time) (past, upcoming []ShowDetail) {
	for _, s := range shows {
		if s.StartTime.After(now) {
			upcoming = append(upcoming, s)
		} else {
			past = append(past, s)
		}
	}
	return past, upcoming
}

// GroupVenuesByArea partitions venue summaries into (city, state)
// groups. Groups are ordered lexicographically by city then state, and
// venues within a group by name then id, so the listing is stable
// across requests.
func GroupVenuesByArea(venues []VenueSummary) []VenueArea {
	type areaKey struct {
		city  string
		state string
	}

	byArea := make(map[areaKey][]VenueSummary)
	for _, v := range venues {
		k := areaKey{city: v.City, state: v.State}
		byArea[k] = append(byArea[k], v)
	}

	areas := make([]VenueArea, 0, len(byArea))
	for k, vs := range byArea {
		sort.Slice(vs, func(i, j int) bool {
			if vs[i].Name != vs[j].Name {
				return vs[i].Name < vs[j].Name
			}
			return vs[i].ID < vs[j].ID
		})
		areas = append(areas, VenueArea{City: k.city, State: k.state, Venues: vs})
	}

	sort.Slice(areas, func(i, j int) bool {
		if areas[i].City != areas[j].City {
			return areas[i].City < areas[j].City
		}
		return areas[i].State < areas[j].State
	})

	return areas
}
