package artists

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bandstand/bandstand/internal/clock"
	"github.com/bandstand/bandstand/internal/domain"
	bredis "github.com/bandstand/bandstand/internal/redis"
	"github.com/bandstand/bandstand/internal/repository"
	postgresrepo "github.com/bandstand/bandstand/internal/repository/postgres"
	redisrepo "github.com/bandstand/bandstand/internal/repository/redis"
	"github.com/bandstand/bandstand/internal/uow"
)

type Config struct {
	PageTTL time.Duration
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

// List returns every artist's id and name for the listing page.
func (s *Service) List(ctx context.Context) ([]domain.ArtistSummary, error) {
	const op = "service.artists.List"

	out, err := s.store.Artists().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// Search matches artists by case-insensitive substring of name. An
// empty term matches all artists.
func (s *Service) Search(ctx context.Context, term string) ([]domain.ArtistSummary, error) {
	const op = "service.artists.Search"

	out, err := s.store.Artists().SearchByName(ctx, term, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// Get returns the artist with its shows partitioned into past and
// upcoming relative to the service clock.
func (s *Service) Get(ctx context.Context, id int64) (*domain.ArtistPage, error) {
	const op = "service.artists.Get"

	page, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyArtistPage(id),
		s.cfg.PageTTL,
		func(ctx context.Context) (domain.ArtistPage, error) {
			a, err := s.store.Artists().Get(ctx, id)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return domain.ArtistPage{}, ErrArtistNotFound
				}
				return domain.ArtistPage{}, err
			}

			shows, err := s.store.Shows().ListByArtist(ctx, id)
			if err != nil {
				return domain.ArtistPage{}, err
			}

			past, upcoming := domain.PartitionShows(shows, s.clock.Now())

			return domain.ArtistPage{
				Artist:             *a,
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

// ListRecent returns the newest artists for the dashboard, through the
// listings cache.
func (s *Service) ListRecent(ctx context.Context) ([]domain.Artist, error) {
	const op = "service.artists.ListRecent"

	out, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyRecentArtists(),
		s.cfg.PageTTL,
		func(ctx context.Context) ([]domain.Artist, error) {
			return s.store.Artists().ListRecent(ctx, recentLimit)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// Create persists an artist and returns its id.
func (s *Service) Create(ctx context.Context, a domain.Artist) (int64, error) {
	const op = "service.artists.Create"

	var id int64
	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		var err error
		id, err = s.store.Artists().With(tx).Create(ctx, a)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateArtist(ctx, id)
			_ = s.pubsub.PublishArtistChanged(ctx, id)
		})
		return nil
	})

	return id, err
}

// Update overwrites every editable field of the artist.
func (s *Service) Update(ctx context.Context, a domain.Artist) error {
	const op = "service.artists.Update"

	return s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		if err := s.store.Artists().With(tx).Update(ctx, a); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrArtistNotFound)
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateArtist(ctx, a.ID)
			_ = s.pubsub.PublishArtistChanged(ctx, a.ID)
		})
		return nil
	})
}

// Delete removes an artist. Deletion is denied while shows still
// reference it.
func (s *Service) Delete(ctx context.Context, id int64) error {
	const op = "service.artists.Delete"

	return s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		referenced, err := s.store.Shows().With(tx).ExistsForArtist(ctx, id)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if referenced {
			return fmt.Errorf("%s: %w", op, ErrHasShows)
		}

		if err := s.store.Artists().With(tx).Delete(ctx, id); err != nil {
			switch {
			case errors.Is(err, repository.ErrNotFound):
				return fmt.Errorf("%s: %w", op, ErrArtistNotFound)
			case errors.Is(err, repository.ErrReferenced):
				return fmt.Errorf("%s: %w", op, ErrHasShows)
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateArtist(ctx, id)
			_ = s.pubsub.PublishArtistChanged(ctx, id)
		})
		return nil
	})
}
