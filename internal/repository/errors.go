package repository

import "errors"

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")

	// ErrReferenced marks a delete rejected because shows still point
	// at the row.
	ErrReferenced = errors.New("referenced by existing shows")

	// ErrMissingReference marks an insert whose foreign key points at a
	// row that does not exist.
	ErrMissingReference = errors.New("referenced row does not exist")

	ErrArtistMissing = errors.New("artist does not exist")
	ErrVenueMissing  = errors.New("venue does not exist")
)
