package venues

import (
	"errors"
)

var (
	ErrVenueNotFound = errors.New("venue not found")

	// ErrHasShows rejects deletion of a venue that shows still
	// reference.
	ErrHasShows = errors.New("venue has shows")
)
