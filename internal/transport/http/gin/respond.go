package httpgin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bandstand/bandstand/internal/service/artists"
	"github.com/bandstand/bandstand/internal/service/shows"
	"github.com/bandstand/bandstand/internal/service/venues"
)

// respondDeleteErr maps delete failures onto the JSON contract the
// page scripts expect: 404 when the id is absent, 409 when shows still
// reference the record, 500 otherwise. Internal detail never leaks
// into the body.
func respondDeleteErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, venues.ErrVenueNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Venue not found"})
	case errors.Is(err, venues.ErrHasShows):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Venue has shows and cannot be deleted"})
	case errors.Is(err, artists.ErrArtistNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Artist not found"})
	case errors.Is(err, artists.ErrHasShows):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Artist has shows and cannot be deleted"})
	default:
		c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Deletion failed"})
	}
}

// respondAPIErr maps service errors for the JSON endpoints.
func respondAPIErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, shows.ErrArtistNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "artist not found"})
	case errors.Is(err, shows.ErrVenueNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "venue not found"})
	case errors.Is(err, venues.ErrVenueNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "venue not found"})
	case errors.Is(err, artists.ErrArtistNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "artist not found"})
	default:
		c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
