package inmemory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithinTxSerializesConcurrentMutations(t *testing.T) {
	store := NewStore()

	var inFlight, overlapped int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := store.WithinTx(context.Background(), func(ctx context.Context) error {
				if atomic.AddInt32(&inFlight, 1) > 1 {
					atomic.StoreInt32(&overlapped, 1)
				}
				_, err := store.Flowers().Create(ctx, "rose", 1)
				time.Sleep(time.Millisecond)
				atomic.AddInt32(&inFlight, -1)
				return err
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Zero(t, atomic.LoadInt32(&overlapped), "transactions ran concurrently")
}

func TestWithinTxJoinsNestedCall(t *testing.T) {
	store := NewStore()

	err := store.WithinTx(context.Background(), func(ctx context.Context) error {
		return store.WithinTx(ctx, func(ctx context.Context) error {
			_, err := store.Flowers().Create(ctx, "tulip", 2)
			return err
		})
	})
	require.NoError(t, err)

	flowers, err := store.Flowers().FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, flowers, 1)
	assert.Equal(t, "tulip", flowers[0].Name)
}
