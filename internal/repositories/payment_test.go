package repositories

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paygate/internal/models"
)

func TestMemoryStore_PutGet(t *testing.T) {
	store := NewMemoryPaymentRepository()
	ctx := context.Background()

	payment := &models.Payment{
		ID:                 uuid.New(),
		Status:             models.StatusAuthorized,
		CardNumberLastFour: "0369",
		ExpiryMonth:        12,
		ExpiryYear:         2026,
		Currency:           "GBP",
		Amount:             100,
	}

	require.NoError(t, store.Put(ctx, payment))

	got, err := store.Get(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, payment, got)
}

func TestMemoryStore_GetMissing(t *testing.T) {
	store := NewMemoryPaymentRepository()

	got, err := store.Get(context.Background(), uuid.New())
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

// Stored outcomes are immutable: neither mutating the value passed to
// Put nor mutating the value returned by Get reaches the store.
func TestMemoryStore_Immutable(t *testing.T) {
	store := NewMemoryPaymentRepository()
	ctx := context.Background()

	payment := &models.Payment{ID: uuid.New(), Status: models.StatusDeclined, Currency: "USD"}
	require.NoError(t, store.Put(ctx, payment))

	payment.Currency = "XXX"

	got, err := store.Get(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, "USD", got.Currency)

	got.Currency = "YYY"

	again, err := store.Get(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, "USD", again.Currency)
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	store := NewMemoryPaymentRepository()
	ctx := context.Background()

	const n = 100
	ids := make([]uuid.UUID, n)
	for i := range ids {
		ids[i] = uuid.New()
	}

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = store.Put(ctx, &models.Payment{ID: ids[i], Status: models.StatusAuthorized})
		}(i)
		go func(i int) {
			defer wg.Done()
			// Racing a Put of the same id; either outcome is fine as
			// long as it does not crash.
			_, _ = store.Get(ctx, ids[i])
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		got, err := store.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
	}
}
