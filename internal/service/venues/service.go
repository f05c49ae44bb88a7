package venues

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bandstand/bandstand/internal/clock"
	"github.com/bandstand/bandstand/internal/domain"
	"github.com/bandstand/bandstand/internal/repository"
	postgresrepo "github.com/bandstand/bandstand/internal/repository/postgres"
	redisrepo "github.com/bandstand/bandstand/internal/repository/redis"
	bredis "github.com/bandstand/bandstand/internal/redis"
	"github.com/bandstand/bandstand/internal/uow"
)

type Config struct {
	AreasTTL time.Duration
	PageTTL  time.Duration
}

type Service struct {
	store  *postgresrepo.Store
	cache  *redisrepo.Cache
	pubsub *bredis.ListingsPubSub
	clock  clock.Clock
	uow    *uow.UoW
	cfg    Config
}

func New(
	store *postgresrepo.Store,
	cache *redisrepo.Cache,
	pubsub *bredis.ListingsPubSub,
	clk clock.Clock,
	cfg Config,
) *Service {
	if cfg.AreasTTL <= 0 {
		cfg.AreasTTL = 30 * time.Second
	}

	if cfg.PageTTL <= 0 {
		cfg.PageTTL = 30 * time.Second
	}

	return &Service{
		store:  store,
		cache:  cache,
		pubsub: pubsub,
		clock:  clk,
		uow:    uow.NewUoW(store),
		cfg:    cfg,
	}
}

// ListAreas returns every venue grouped by (city, state) with upcoming
// counts, through the listings cache.
func (s *Service) ListAreas(ctx context.Context) ([]domain.VenueArea, error) {
	const op = "service.venues.ListAreas"

	areas, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyVenueAreas(),
		s.cfg.AreasTTL,
		func(ctx context.Context) ([]domain.VenueArea, error) {
			summaries, err := s.store.Venues().ListSummaries(ctx, s.clock.Now())
			if err != nil {
				return nil, err
			}

			return domain.GroupVenuesByArea(summaries), nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return areas, nil
}

// Search matches venues by case-insensitive substring of name. An
// empty term matches all venues. Search is never cached: it carries
// user input.
func (s *Service) Search(ctx context.Context, term string) ([]domain.VenueSummary, error) {
	const op = "service.venues.Search"

	out, err := s.store.Venues().SearchByName(ctx, term, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// Get returns the venue with its shows partitioned into past and
// upcoming relative to the service clock.
func (s *Service) Get(ctx context.Context, id int64) (*domain.VenuePage, error) {
	const op = "service.venues.Get"

	page, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyVenuePage(id),
		s.cfg.PageTTL,
		func(ctx context.Context) (domain.VenuePage, error) {
			v, err := s.store.Venues().Get(ctx, id)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return domain.VenuePage{}, ErrVenueNotFound
				}
				return domain.VenuePage{}, err
			}

			shows, err := s.store.Shows().ListByVenue(ctx, id)
			if err != nil {
				return domain.VenuePage{}, err
			}

			past, upcoming := domain.PartitionShows(shows, s.clock.Now())

			return domain.VenuePage{
				Venue:              *v,
				PastShows:          past,
				UpcomingShows:      upcoming,
				PastShowsCount:     len(past),
				UpcomingShowsCount: len(upcoming),
			}, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &page, nil
}

// recentLimit is the dashboard's recently-listed page size.
const recentLimit = 10

// ListRecent returns the newest venues for the dashboard, through the
// listings cache.
func (s *Service) ListRecent(ctx context.Context) ([]domain.Venue, error) {
	const op = "service.venues.ListRecent"

	out, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyRecentVenues(),
		s.cfg.PageTTL,
		func(ctx context.Context) ([]domain.Venue, error) {
			return s.store.Venues().ListRecent(ctx, recentLimit)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// Create persists a venue and returns its id.
func (s *Service) Create(ctx context.Context, v domain.Venue) (int64, error) {
	const op = "service.venues.Create"

	var id int64
	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		var err error
		id, err = s.store.Venues().With(tx).Create(ctx, v)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateVenue(ctx, id)
			_ = s.pubsub.PublishVenueChanged(ctx, id)
		})
		return nil
	})

	return id, err
}

// Update overwrites every editable field of the venue.
func (s *Service) Update(ctx context.Context, v domain.Venue) error {
	const op = "service.venues.Update"

	return s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		if err := s.store.Venues().With(tx).Update(ctx, v); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrVenueNotFound)
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateVenue(ctx, v.ID)
			_ = s.pubsub.PublishVenueChanged(ctx, v.ID)
		})
		return nil
	})
}

// Delete removes a venue. Deletion is denied while shows still
// reference it.
func (s *Service) Delete(ctx context.Context, id int64) error {
	const op = "service.venues.Delete"

	return s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		referenced, err := s.store.Shows().With(tx).ExistsForVenue(ctx, id)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if referenced {
			return fmt.Errorf("%s: %w", op, ErrHasShows)
		}

		if err := s.store.Venues().With(tx).Delete(ctx, id); err != nil {
			switch {
			case errors.Is(err, repository.ErrNotFound):
				return fmt.Errorf("%s: %w", op, ErrVenueNotFound)
			case errors.Is(err, repository.ErrReferenced):
				// A show created between the check and the delete.
				return fmt.Errorf("%s: %w", op, ErrHasShows)
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateVenue(ctx, id)
			_ = s.pubsub.PublishVenueChanged(ctx, id)
		})
		return nil
	})
}
