package service

import (
	"github.com/bandstand/bandstand/internal/clock"
	bredis "github.com/bandstand/bandstand/internal/redis"
	postgres "github.com/bandstand/bandstand/internal/repository/postgres"
	redis "github.com/bandstand/bandstand/internal/repository/redis"
	"github.com/bandstand/bandstand/internal/service/artists"
	"github.com/bandstand/bandstand/internal/service/shows"
	"github.com/bandstand/bandstand/internal/service/venues"
)

type Services struct {
	Venues  *venues.Service
	Artists *artists.Service
	Shows   *shows.Service
}

type Config struct {
	Venues  venues.Config
	Artists artists.Config
	Shows   shows.Config
}

func NewServices(
	store *postgres.Store,
	cache *redis.Cache,
	pubsub *bredis.ListingsPubSub,
	clk clock.Clock,
	cfg Config,
) *Services {
	return &Services{
		Venues:  venues.New(store, cache, pubsub, clk, cfg.Venues),
		Artists: artists.New(store, cache, pubsub, clk, cfg.Artists),
		Shows:   shows.New(store, cache, pubsub, cfg.Shows),
	}
}
