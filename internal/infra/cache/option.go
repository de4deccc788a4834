package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const activeOptionsKey = "options:active"

// OptionCache serves the active option list from Redis and falls back to the
// wrapped store on a miss or any cache failure.
type OptionCache struct {
	next   queries.OptionReadStore
	client redis.Cmdable
	key    string
	ttl    time.Duration
}

func NewOptionCache(next queries.OptionReadStore, client redis.Cmdable, prefix string, ttl time.Duration) *OptionCache {
	return &OptionCache{
		next:   next,
		client: client,
		key:    prefix + ":" + activeOptionsKey,
		ttl:    ttl,
	}
}

func (c *OptionCache) ListActive(ctx context.Context) ([]*queries.OptionView, error) {
	raw, err := c.client.Get(ctx, c.key).Bytes()
	switch {
	case err == nil:
		var cached []*queries.OptionView
		if jerr := json.Unmarshal(raw, &cached); jerr == nil {
			return cached, nil
		}
		slog.WarnContext(ctx, "discarding malformed option cache entry", slog.String("key", c.key))
	case errors.Is(err, redis.Nil):
	default:
		slog.WarnContext(ctx, "option cache read failed", slog.String("key", c.key), slog.String("error", err.Error()))
	}

	options, err := c.next.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(options)
	if err != nil {
		return options, nil
	}
	if err := c.client.Set(ctx, c.key, payload, c.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "option cache write failed", slog.String("key", c.key), slog.String("error", err.Error()))
	}
	return options, nil
}

