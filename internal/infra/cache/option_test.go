//go:build unit

package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/infra/cache"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/usecase/queries"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/tests/common/builder"
	queriesmock "github.com/PandaPandaBE/oud-zwembad-booking-tool/tests/mock/queries"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// unreachableRedis fails every command quickly.
func unreachableRedis(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestOptionCache_FallsBackWhenRedisIsDown(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockOptionReadStore(ctrl)

	options := []*queries.OptionView{builder.NewOptionBuilder().BuildView()}
	store.EXPECT().ListActive(ctx).Return(options, nil).Times(2)

	c := cache.NewOptionCache(store, unreachableRedis(t), "booking-test", time.Minute)

	for range 2 {
		got, err := c.ListActive(ctx)
		require.NoError(t, err)
		assert.Equal(t, options, got)
	}
}

func TestOptionCache_StoreErrorIsReturned(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockOptionReadStore(ctrl)
	storeErr := errors.New("db down")
	store.EXPECT().ListActive(ctx).Return(nil, storeErr)

	_, err := cache.NewOptionCache(store, unreachableRedis(t), "booking-test", time.Minute).ListActive(ctx)
	assert.ErrorIs(t, err, storeErr)
}
