package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// ChannelListingsChanged is the fan-out channel for mutation
// notifications.
const ChannelListingsChanged = "bandstand:v1:listings:changed"

// ListingsPubSub fans out mutation notifications so peer instances can
// drop their cached listings for the touched venue/artist.
type ListingsPubSub struct {
	rdb     *redis.Client
	channel string
}

func NewListingsPubSub(rdb *redis.Client) *ListingsPubSub {
	return &ListingsPubSub{
		rdb:     rdb,
		channel: ChannelListingsChanged,
	}
}

type listingsChangedMsg struct {
	Type     string `json:"type"`
	VenueID  int64  `json:"venue_id,omitempty"`
	ArtistID int64  `json:"artist_id,omitempty"`
	TsUnix   int64  `json:"ts_unix"`
}

func (p *ListingsPubSub) PublishVenueChanged(ctx context.Context, venueID int64) error {
	return p.publish(ctx, listingsChangedMsg{
		Type:    "venue_changed",
		VenueID: venueID,
		TsUnix:  time.Now().Unix(),
	})
}

func (p *ListingsPubSub) PublishArtistChanged(ctx context.Context, artistID int64) error {
	return p.publish(ctx, listingsChangedMsg{
		Type:     "artist_changed",
		ArtistID: artistID,
		TsUnix:   time.Now().Unix(),
	})
}

func (p *ListingsPubSub) PublishShowsChanged(ctx context.Context, venueID, artistID int64) error {
	return p.publish(ctx, listingsChangedMsg{
		Type:     "shows_changed",
		VenueID:  venueID,
		ArtistID: artistID,
		TsUnix:   time.Now().Unix(),
	})
}

func (p *ListingsPubSub) publish(ctx context.Context, msg listingsChangedMsg) error {
	b, _ := json.Marshal(msg)
	return p.rdb.Publish(ctx, p.channel, b).Err()
}

// Subscribe blocks delivering change notifications to handler until ctx
// is cancelled.
func (p *ListingsPubSub) Subscribe(ctx context.Context, handler func(ctx context.Context, venueID, artistID int64)) error {
	sub := p.rdb.Subscribe(ctx, p.channel)
	defer sub.Close()

	ch := sub.Channel(redis.WithChannelSize(256))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case m, ok := <-ch:
			if !ok {
				return nil
			}
			var msg listingsChangedMsg
			if err := json.Unmarshal([]byte(m.Payload), &msg); err == nil {
				handler(ctx, msg.VenueID, msg.ArtistID)
			}
		}
	}
}
