package redis

import "fmt"

const ns = "bandstand:v1"

func KeyVenueAreas() string {
	return ns + ":venues:areas"
}

func KeyVenuePage(venueID int64) string {
	return fmt.Sprintf("%s:venue:%d:page", ns, venueID)
}

func KeyArtistPage(artistID int64) string {
	return fmt.Sprintf("%s:artist:%d:page", ns, artistID)
}

func KeyShowsList() string {
	return ns + ":shows:list"
}

func KeyRecentVenues() string {
	return ns + ":venues:recent"
}

func KeyRecentArtists() string {
	return ns + ":artists:recent"
}

func KeyIdemShow(idemKey string) string {
	return fmt.Sprintf("%s:idem:shows:%s", ns, idemKey)
}
