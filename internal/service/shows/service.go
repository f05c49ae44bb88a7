package shows

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bandstand/bandstand/internal/domain"
	bredis "github.com/bandstand/bandstand/internal/redis"
	"github.com/bandstand/bandstand/internal/repository"
	postgresrepo "github.com/bandstand/bandstand/internal/repository/postgres"
	redisrepo "github.com/bandstand/bandstand/internal/repository/redis"
	"github.com/bandstand/bandstand/internal/uow"
)

type Config struct {
	ListTTL time.Duration
}

type Service struct {
	store  *postgresrepo.Store
	cache  *redisrepo.Cache
	pubsub *bredis.ListingsPubSub
	uow    *uow.UoW
	cfg    Config
}

func New(
	store *postgresrepo.Store,
	cache *redisrepo.Cache,
	pubsub *bredis.ListingsPubSub,
	cfg Config,
) *Service {
	if cfg.ListTTL <= 0 {
		cfg.ListTTL = 15 * time.Second
	}

	return &Service{
		store:  store,
		cache:  cache,
		pubsub: pubsub,
		uow:    uow.NewUoW(store),
		cfg:    cfg,
	}
}

// List returns every show joined with its venue and artist, ordered by
// start time, through the listings cache.
func (s *Service) List(ctx context.Context) ([]domain.ShowListing, error) {
	const op = "service.shows.List"

	out, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyShowsList(),
		s.cfg.ListTTL,
		func(ctx context.Context) ([]domain.ShowListing, error) {
			return s.store.Shows().ListAll(ctx)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// Create persists a show. The referenced artist and venue must exist;
// the schema's foreign keys are the source of truth, so a concurrent
// delete cannot race a stale existence check.
func (s *Service) Create(ctx context.Context, show domain.Show) (int64, error) {
	const op = "service.shows.Create"

	var id int64
	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		var err error
		id, err = s.store.Shows().With(tx).Create(ctx, show)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrArtistMissing):
				return fmt.Errorf("%s: %w", op, ErrArtistNotFound)
			case errors.Is(err, repository.ErrVenueMissing):
				return fmt.Errorf("%s: %w", op, ErrVenueNotFound)
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateVenue(ctx, show.VenueID)
			_ = s.cache.InvalidateArtist(ctx, show.ArtistID)
			_ = s.pubsub.PublishShowsChanged(ctx, show.VenueID, show.ArtistID)
		})
		return nil
	})

	return id, err
}
