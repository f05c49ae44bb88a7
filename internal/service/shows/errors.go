package shows

import (
	"errors"
)

var (
	ErrArtistNotFound = errors.New("artist not found")
	ErrVenueNotFound  = errors.New("venue not found")
)
