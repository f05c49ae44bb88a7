package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bandstand/bandstand/internal/domain"
	"github.com/bandstand/bandstand/internal/repository"
)

type ArtistRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *ArtistRepo) With(db DB) *ArtistRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *ArtistRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// List returns every artist's id and name, ordered by name then id.
func (r *ArtistRepo) List(ctx context.Context) ([]domain.ArtistSummary, error) {
	const op = "postgres.ArtistRepo.List"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, name FROM artists ORDER BY name, id`,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.ArtistSummary
	for rows.Next() {
		var as domain.ArtistSummary
		if err := rows.Scan(&as.ID, &as.Name); err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, as)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

// SearchByName matches artists whose name contains term, case
// insensitively, with upcoming-show counts relative to now. An empty
// term matches every artist.
func (r *ArtistRepo) SearchByName(ctx context.Context, term string, now time.Time) ([]domain.ArtistSummary, error) {
	const op = "postgres.ArtistRepo.SearchByName"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT a.id, a.name,
		        COUNT(s.id) FILTER (WHERE s.start_time > $2)
		 FROM artists a
		 LEFT JOIN shows s ON s.artist_id = a.id
		 WHERE a.name ILIKE '%' || $1 || '%'
		 GROUP BY a.id
		 ORDER BY a.name, a.id`,
		term, now,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.ArtistSummary
	for rows.Next() {
		var as domain.ArtistSummary
		if err := rows.Scan(&as.ID, &as.Name, &as.NumUpcomingShows); err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, as)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

// Get retrieves an artist by id. Returns repository.ErrNotFound when
// the id is absent.
func (r *ArtistRepo) Get(ctx context.Context, id int64) (*domain.Artist, error) {
	const op = "postgres.ArtistRepo.Get"

	db := r.handle()

	var a domain.Artist
	err := db.QueryRow(ctx,
		`SELECT id, name, genres, city, state, phone,
		        image_link, facebook_link, website_link,
		        seeking_venue, seeking_description
		 FROM artists WHERE id = $1`,
		id,
	).Scan(
		&a.ID, &a.Name, &a.Genres, &a.City, &a.State, &a.Phone,
		&a.ImageLink, &a.FacebookLink, &a.WebsiteLink,
		&a.SeekingVenue, &a.SeekingDescription,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &a, nil
}

// ListRecent returns the most recently created artists, newest first.
func (r *ArtistRepo) ListRecent(ctx context.Context, limit int) ([]domain.Artist, error) {
	const op = "postgres.ArtistRepo.ListRecent"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, name, genres, city, state, phone,
		        image_link, facebook_link, website_link,
		        seeking_venue, seeking_description
		 FROM artists
		 ORDER BY id DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.Artist
	for rows.Next() {
		var a domain.Artist
		if err := rows.Scan(
			&a.ID, &a.Name, &a.Genres, &a.City, &a.State, &a.Phone,
			&a.ImageLink, &a.FacebookLink, &a.WebsiteLink,
			&a.SeekingVenue, &a.SeekingDescription,
		); err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

func (r *ArtistRepo) Create(ctx context.Context, a domain.Artist) (int64, error) {
	const op = "postgres.ArtistRepo.Create"

	db := r.handle()

	var id int64
	if err := db.QueryRow(ctx,
		`INSERT INTO artists(
			name, genres, city, state, phone,
			image_link, facebook_link, website_link,
			seeking_venue, seeking_description
		 )
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		a.Name, a.Genres, a.City, a.State, a.Phone,
		a.ImageLink, a.FacebookLink, a.WebsiteLink,
		a.SeekingVenue, a.SeekingDescription,
	).Scan(&id); err != nil {
		return 0, wrapDBErr(op, err)
	}

	return id, nil
}

// Update overwrites every editable field. Returns
// repository.ErrNotFound when the id is absent.
func (r *ArtistRepo) Update(ctx context.Context, a domain.Artist) error {
	const op = "postgres.ArtistRepo.Update"

	db := r.handle()

	tag, err := db.Exec(ctx,
		`UPDATE artists SET
			name = $2, genres = $3, city = $4, state = $5, phone = $6,
			image_link = $7, facebook_link = $8, website_link = $9,
			seeking_venue = $10, seeking_description = $11
		 WHERE id = $1`,
		a.ID,
		a.Name, a.Genres, a.City, a.State, a.Phone,
		a.ImageLink, a.FacebookLink, a.WebsiteLink,
		a.SeekingVenue, a.SeekingDescription,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}

// Delete removes an artist. Returns repository.ErrNotFound when the id
// is absent and repository.ErrReferenced when shows still point at it.
func (r *ArtistRepo) Delete(ctx context.Context, id int64) error {
	const op = "postgres.ArtistRepo.Delete"

	db := r.handle()

	tag, err := db.Exec(ctx, `DELETE FROM artists WHERE id = $1`, id)
	if err != nil {
		return wrapDeleteErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}
