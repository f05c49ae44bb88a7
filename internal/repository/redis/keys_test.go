package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "bandstand:v1:venues:areas", KeyVenueAreas())
	assert.Equal(t, "bandstand:v1:venue:42:page", KeyVenuePage(42))
	assert.Equal(t, "bandstand:v1:artist:7:page", KeyArtistPage(7))
	assert.Equal(t, "bandstand:v1:shows:list", KeyShowsList())
	assert.Equal(t, "bandstand:v1:venues:recent", KeyRecentVenues())
	assert.Equal(t, "bandstand:v1:artists:recent", KeyRecentArtists())
	assert.Equal(t, "bandstand:v1:idem:shows:abc-123", KeyIdemShow("abc-123"))
}

func TestKeysDistinctPerEntity(t *testing.T) {
	assert.NotEqual(t, KeyVenuePage(1), KeyArtistPage(1))
	assert.NotEqual(t, KeyVenuePage(1), KeyVenuePage(2))
}
