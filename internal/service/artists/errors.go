package artists

import (
	"errors"
)

var (
	ErrArtistNotFound = errors.New("artist not found")

	// ErrHasShows rejects deletion of an artist that shows still
	// reference.
	ErrHasShows = errors.New("artist has shows")
)
