package httpgin

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSONWithCache(t *testing.T) {
	payload := []ShowListingResponse{
		{VenueID: 1, VenueName: "The Musical Hop", ArtistID: 2, ArtistName: "Guns N Petals", StartTime: "2026-07-04T20:00:00Z"},
	}

	c, w := newTestContext(t)
	writeJSONWithCache(c, http.StatusOK, payload, "public, max-age=15", true)

	res := w.Result()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "public, max-age=15", res.Header.Get("Cache-Control"))

	tag := res.Header.Get("ETag")
	require.NotEmpty(t, tag)
	assert.True(t, strings.HasPrefix(tag, "W/"))

	var got []ShowListingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, payload, got)
}

func TestWriteJSONWithCacheNotModified(t *testing.T) {
	payload := map[string]string{"status": "ok"}

	c, w := newTestContext(t)
	writeJSONWithCache(c, http.StatusOK, payload, "", true)
	tag := w.Result().Header.Get("ETag")
	require.NotEmpty(t, tag)

	c2, w2 := newTestContext(t)
	c2.Request.Header.Set("If-None-Match", tag)
	writeJSONWithCache(c2, http.StatusOK, payload, "", true)

	assert.Equal(t, http.StatusNotModified, w2.Result().StatusCode)
	assert.Empty(t, w2.Body.Bytes())
}

func TestWriteJSONWithCacheStrongTag(t *testing.T) {
	c, w := newTestContext(t)
	writeJSONWithCache(c, http.StatusOK, map[string]int{"n": 1}, "", false)

	tag := w.Result().Header.Get("ETag")
	require.NotEmpty(t, tag)
	assert.False(t, strings.HasPrefix(tag, "W/"))
	assert.True(t, strings.HasPrefix(tag, `"`))
}

func TestWriteJSONWithCacheDifferentBodiesDifferentTags(t *testing.T) {
	c1, w1 := newTestContext(t)
	writeJSONWithCache(c1, http.StatusOK, map[string]int{"n": 1}, "", true)

	c2, w2 := newTestContext(t)
	writeJSONWithCache(c2, http.StatusOK, map[string]int{"n": 2}, "", true)

	assert.NotEqual(t, w1.Result().Header.Get("ETag"), w2.Result().Header.Get("ETag"))
}
