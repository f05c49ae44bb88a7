package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bandstand/bandstand/internal/domain"
	"github.com/bandstand/bandstand/internal/repository"
)

type ShowRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *ShowRepo) With(db DB) *ShowRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *ShowRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// ListAll returns the flat show join across all three tables, ordered
// by start time then id.
func (r *ShowRepo) ListAll(ctx context.Context) ([]domain.ShowListing, error) {
	const op = "postgres.ShowRepo.ListAll"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT s.venue_id, v.name, s.artist_id, a.name, a.image_link, s.start_time
		 FROM shows s
		 JOIN venues v ON v.id = s.venue_id
		 JOIN artists a ON a.id = s.artist_id
		 ORDER BY s.start_time, s.id`,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.ShowListing
	for rows.Next() {
		var sl domain.ShowListing
		if err := rows.Scan(
			&sl.VenueID, &sl.VenueName,
			&sl.ArtistID, &sl.ArtistName, &sl.ArtistImageLink,
			&sl.StartTime,
		); err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, sl)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

// ListByVenue returns every show at a venue joined with its artist,
// ordered by start time.
func (r *ShowRepo) ListByVenue(ctx context.Context, venueID int64) ([]domain.ShowDetail, error) {
	const op = "postgres.ShowRepo.ListByVenue"

	return r.listDetails(ctx, op,
		`SELECT s.id, s.venue_id, v.name, v.image_link,
		        s.artist_id, a.name, a.image_link, s.start_time
		 FROM shows s
		 JOIN venues v ON v.id = s.venue_id
		 JOIN artists a ON a.id = s.artist_id
		 WHERE s.venue_id = $1
		 ORDER BY s.start_time, s.id`,
		venueID,
	)
}

// ListByArtist returns every show by an artist joined with its venue,
// ordered by start time.
func (r *ShowRepo) ListByArtist(ctx context.Context, artistID int64) ([]domain.ShowDetail, error) {
	const op = "postgres.ShowRepo.ListByArtist"

	return r.listDetails(ctx, op,
		`SELECT s.id, s.venue_id, v.name, v.image_link,
		        s.artist_id, a.name, a.image_link, s.start_time
		 FROM shows s
		 JOIN venues v ON v.id = s.venue_id
		 JOIN artists a ON a.id = s.artist_id
		 WHERE s.artist_id = $1
		 ORDER BY s.start_time, s.id`,
		artistID,
	)
}

func (r *ShowRepo) listDetails(ctx context.Context, op, sql string, arg any) ([]domain.ShowDetail, error) {
	db := r.handle()

	rows, err := db.Query(ctx, sql, arg)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.ShowDetail
	for rows.Next() {
		var sd domain.ShowDetail
		if err := rows.Scan(
			&sd.ShowID,
			&sd.VenueID, &sd.VenueName, &sd.VenueImageLink,
			&sd.ArtistID, &sd.ArtistName, &sd.ArtistImageLink,
			&sd.StartTime,
		); err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, sd)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

// ExistsForVenue reports whether any show references the venue.
func (r *ShowRepo) ExistsForVenue(ctx context.Context, venueID int64) (bool, error) {
	const op = "postgres.ShowRepo.ExistsForVenue"

	db := r.handle()

	var exists bool
	if err := db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM shows WHERE venue_id = $1)`,
		venueID,
	).Scan(&exists); err != nil {
		return false, wrapDBErr(op, err)
	}

	return exists, nil
}

// ExistsForArtist reports whether any show references the artist.
func (r *ShowRepo) ExistsForArtist(ctx context.Context, artistID int64) (bool, error) {
	const op = "postgres.ShowRepo.ExistsForArtist"

	db := r.handle()

	var exists bool
	if err := db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM shows WHERE artist_id = $1)`,
		artistID,
	).Scan(&exists); err != nil {
		return false, wrapDBErr(op, err)
	}

	return exists, nil
}

// Create inserts a show. A foreign key violation surfaces as
// repository.ErrMissingReference wrapped with the failing side's
// constraint so the caller can say whether the artist or the venue was
// absent.
func (r *ShowRepo) Create(ctx context.Context, s domain.Show) (int64, error) {
	const op = "postgres.ShowRepo.Create"

	db := r.handle()

	var id int64
	if err := db.QueryRow(ctx,
		`INSERT INTO shows(artist_id, venue_id, start_time)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		s.ArtistID, s.VenueID, s.StartTime,
	).Scan(&id); err != nil {
		if constraint, ok := fkConstraint(err); ok {
			switch {
			case strings.Contains(constraint, "artist"):
				return 0, fmt.Errorf("%s: %w", op, repository.ErrArtistMissing)
			case strings.Contains(constraint, "venue"):
				return 0, fmt.Errorf("%s: %w", op, repository.ErrVenueMissing)
			}
			return 0, fmt.Errorf("%s: %w", op, repository.ErrMissingReference)
		}
		return 0, wrapDBErr(op, err)
	}

	return id, nil
}
