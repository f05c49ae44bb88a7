package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bandstand/bandstand/internal/domain"
	"github.com/bandstand/bandstand/internal/repository"
)

type VenueRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *VenueRepo) With(db DB) *VenueRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *VenueRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// ListSummaries returns every venue with its upcoming-show count
// relative to now, ordered by city, state, name, id so the grouped
// listing is deterministic.
func (r *VenueRepo) ListSummaries(ctx context.Context, now time.Time) ([]domain.VenueSummary, error) {
	const op = "postgres.VenueRepo.ListSummaries"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT v.id, v.name, v.city, v.state,
		        COUNT(s.id) FILTER (WHERE s.start_time > $1)
		 FROM venues v
		 LEFT JOIN shows s ON s.venue_id = v.id
		 GROUP BY v.id
		 ORDER BY v.city, v.state, v.name, v.id`,
		now,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.VenueSummary
	for rows.Next() {
		var vs domain.VenueSummary
		if err := rows.Scan(&vs.ID, &vs.Name, &vs.City, &vs.State, &vs.NumUpcomingShows); err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, vs)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

// SearchByName matches venues whose name contains term, case
// insensitively. An empty term matches every venue.
func (r *VenueRepo) SearchByName(ctx context.Context, term string, now time.Time) ([]domain.VenueSummary, error) {
	const op = "postgres.VenueRepo.SearchByName"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT v.id, v.name, v.city, v.state,
		        COUNT(s.id) FILTER (WHERE s.start_time > $2)
		 FROM venues v
		 LEFT JOIN shows s ON s.venue_id = v.id
		 WHERE v.name ILIKE '%' || $1 || '%'
		 GROUP BY v.id
		 ORDER BY v.name, v.id`,
		term, now,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.VenueSummary
	for rows.Next() {
		var vs domain.VenueSummary
		if err := rows.Scan(&vs.ID, &vs.Name, &vs.City, &vs.State, &vs.NumUpcomingShows); err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, vs)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

// Get retrieves a venue by id. Returns repository.ErrNotFound when the
// id is absent.
func (r *VenueRepo) Get(ctx context.Context, id int64) (*domain.Venue, error) {
	const op = "postgres.VenueRepo.Get"

	db := r.handle()

	var v domain.Venue
	err := db.QueryRow(ctx,
		`SELECT id, name, genres, address, city, state, phone,
		        image_link, facebook_link, website_link,
		        seeking_talent, seeking_description
		 FROM venues WHERE id = $1`,
		id,
	).Scan(
		&v.ID, &v.Name, &v.Genres, &v.Address, &v.City, &v.State, &v.Phone,
		&v.ImageLink, &v.FacebookLink, &v.WebsiteLink,
		&v.SeekingTalent, &v.SeekingDescription,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &v, nil
}

// ListRecent returns the most recently created venues, newest first.
// Ids are sequence-assigned, so id order is creation order.
func (r *VenueRepo) ListRecent(ctx context.Context, limit int) ([]domain.Venue, error) {
	const op = "postgres.VenueRepo.ListRecent"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, name, genres, address, city, state, phone,
		        image_link, facebook_link, website_link,
		        seeking_talent, seeking_description
		 FROM venues
		 ORDER BY id DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.Venue
	for rows.Next() {
		var v domain.Venue
		if err := rows.Scan(
			&v.ID, &v.Name, &v.Genres, &v.Address, &v.City, &v.State, &v.Phone,
			&v.ImageLink, &v.FacebookLink, &v.WebsiteLink,
			&v.SeekingTalent, &v.SeekingDescription,
		); err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

func (r *VenueRepo) Create(ctx context.Context, v domain.Venue) (int64, error) {
	const op = "postgres.VenueRepo.Create"

	db := r.handle()

	var id int64
	if err := db.QueryRow(ctx,
		`INSERT INTO venues(
			name, genres, address, city, state, phone,
			image_link, facebook_link, website_link,
			seeking_talent, seeking_description
		 )
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id`,
		v.Name, v.Genres, v.Address, v.City, v.State, v.Phone,
		v.ImageLink, v.FacebookLink, v.WebsiteLink,
		v.SeekingTalent, v.SeekingDescription,
	).Scan(&id); err != nil {
		return 0, wrapDBErr(op, err)
	}

	return id, nil
}

// Update overwrites every editable field. Returns
// repository.ErrNotFound when the id is absent.
func (r *VenueRepo) Update(ctx context.Context, v domain.Venue) error {
	const op = "postgres.VenueRepo.Update"

	db := r.handle()

	tag, err := db.Exec(ctx,
		`UPDATE venues SET
			name = $2, genres = $3, address = $4, city = $5, state = $6,
			phone = $7, image_link = $8, facebook_link = $9,
			website_link = $10, seeking_talent = $11,
			seeking_description = $12
		 WHERE id = $1`,
		v.ID,
		v.Name, v.Genres, v.Address, v.City, v.State, v.Phone,
		v.ImageLink, v.FacebookLink, v.WebsiteLink,
		v.SeekingTalent, v.SeekingDescription,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}

// Delete removes a venue. Returns repository.ErrNotFound when the id
// is absent and repository.ErrReferenced when shows still point at it.
func (r *VenueRepo) Delete(ctx context.Context, id int64) error {
	const op = "postgres.VenueRepo.Delete"

	db := r.handle()

	tag, err := db.Exec(ctx, `DELETE FROM venues WHERE id = $1`, id)
	if err != nil {
		return wrapDeleteErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}
