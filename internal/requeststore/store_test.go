package requeststore_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"go-shiftdesk/internal/requeststore"

	"github.com/stretchr/testify/assert"
)

type row struct {
	ID            string
	PartnerStatus string
}

func idOf(r row) string { return r.ID }

func TestStore_Snapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("loads on first read and caches", func(t *testing.T) {
		var calls int32
		store := requeststore.New(idOf, func(ctx context.Context, key string) ([]row, error) {
			atomic.AddInt32(&calls, 1)
			return []row{{ID: "r1", PartnerStatus: "waiting"}}, nil
		})

		list, err := store.Snapshot(ctx, "store-1")
		assert.NoError(t, err)
		assert.Len(t, list, 1)

		_, err = store.Snapshot(ctx, "store-1")
		assert.NoError(t, err)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("negative loader error surfaces", func(t *testing.T) {
		store := requeststore.New(idOf, func(ctx context.Context, key string) ([]row, error) {
			return nil, errors.New("backend down")
		})

		_, err := store.Snapshot(ctx, "store-1")
		assert.Error(t, err)
	})

	t.Run("refresh fully replaces the list", func(t *testing.T) {
		lists := [][]row{
			{{ID: "r1", PartnerStatus: "waiting"}, {ID: "r2", PartnerStatus: "waiting"}},
			{{ID: "r2", PartnerStatus: "accepted"}},
		}
		var call int32
		store := requeststore.New(idOf, func(ctx context.Context, key string) ([]row, error) {
			n := atomic.AddInt32(&call, 1)
			return lists[n-1], nil
		})

		list, err := store.Snapshot(ctx, "store-1")
		assert.NoError(t, err)
		assert.Len(t, list, 2)

		assert.NoError(t, store.Refresh(ctx, "store-1"))

		list, err = store.Snapshot(ctx, "store-1")
		assert.NoError(t, err)
		assert.Len(t, list, 1)
		assert.Equal(t, "accepted", list[0].PartnerStatus)
	})
}

func TestStore_Overlay(t *testing.T) {
	ctx := context.Background()

	newStore := func() *requeststore.Store[row] {
		return requeststore.New(idOf, func(ctx context.Context, key string) ([]row, error) {
			return []row{{ID: "r1", PartnerStatus: "waiting"}}, nil
		})
	}

	t.Run("overlay visible until rolled back", func(t *testing.T) {
		store := newStore()
		_, err := store.Snapshot(ctx, "store-1")
		assert.NoError(t, err)

		h := store.ApplyOptimistic("store-1", "r1", func(r *row) { r.PartnerStatus = "accepted" })

		list, err := store.Snapshot(ctx, "store-1")
		assert.NoError(t, err)
		assert.Equal(t, "accepted", list[0].PartnerStatus)

		h.Rollback()

		list, err = store.Snapshot(ctx, "store-1")
		assert.NoError(t, err)
		assert.Equal(t, "waiting", list[0].PartnerStatus)
	})

	t.Run("conflict keeps the overlay until refresh supersedes it", func(t *testing.T) {
		// The partner-accept call lost the race but the guess matched
		// eventual reality: the overlay must NOT be rolled back.
		authoritative := []row{{ID: "r1", PartnerStatus: "waiting"}}
		store := requeststore.New(idOf, func(ctx context.Context, key string) ([]row, error) {
			out := make([]row, len(authoritative))
			copy(out, authoritative)
			return out, nil
		})

		_, err := store.Snapshot(ctx, "store-1")
		assert.NoError(t, err)

		h := store.ApplyOptimistic("store-1", "r1", func(r *row) { r.PartnerStatus = "accepted" })

		// Backend reports "already processed"; overlay stays in place.
		list, err := store.Snapshot(ctx, "store-1")
		assert.NoError(t, err)
		assert.Equal(t, "accepted", list[0].PartnerStatus)

		// The follow-up refresh carries the authoritative value, after
		// which the overlay is cleared.
		authoritative[0].PartnerStatus = "accepted"
		assert.NoError(t, store.Refresh(ctx, "store-1"))
		h.Confirm()

		list, err = store.Snapshot(ctx, "store-1")
		assert.NoError(t, err)
		assert.Equal(t, "accepted", list[0].PartnerStatus)
	})

	t.Run("overlay for unknown id is a no-op", func(t *testing.T) {
		store := newStore()
		_, err := store.Snapshot(ctx, "store-1")
		assert.NoError(t, err)

		h := store.ApplyOptimistic("store-1", "missing", func(r *row) { r.PartnerStatus = "accepted" })
		defer h.Rollback()

		list, err := store.Snapshot(ctx, "store-1")
		assert.NoError(t, err)
		assert.Equal(t, "waiting", list[0].PartnerStatus)
	})

	t.Run("invalidate forces reload", func(t *testing.T) {
		var calls int32
		store := requeststore.New(idOf, func(ctx context.Context, key string) ([]row, error) {
			atomic.AddInt32(&calls, 1)
			return []row{{ID: "r1"}}, nil
		})

		_, _ = store.Snapshot(ctx, "store-1")
		store.Invalidate("store-1")
		_, _ = store.Snapshot(ctx, "store-1")

		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})
}
