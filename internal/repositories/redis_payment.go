package repositories

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"paygate/internal/models"
)

// RedisConfig holds the connection settings for a Redis-backed store.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// NewRedisClient builds a go-redis client from the config.
func NewRedisClient(cfg *RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// RedisPaymentRepository stores payment outcomes in Redis, one JSON
// value per payment. It satisfies the same contract as the in-memory
// store; choosing it trades a network hop for a store that outlives
// a single gateway process.
type RedisPaymentRepository struct {
	client *redis.Client
}

// NewRedisPaymentRepository returns a store backed by the given
// client.
func NewRedisPaymentRepository(client *redis.Client) *RedisPaymentRepository {
	return &RedisPaymentRepository{client: client}
}

func paymentKey(id uuid.UUID) string {
	return "payment:" + id.String()
}

// Put stores the payment under its identifier. Entries have no TTL;
// outcomes are kept for the lifetime of the store.
func (r *RedisPaymentRepository) Put(ctx context.Context, payment *models.Payment) error {
	data, err := json.Marshal(payment)
	if err != nil {
		return fmt.Errorf("marshal payment %s: %w", payment.ID, err)
	}
	return r.client.Set(ctx, paymentKey(payment.ID), data, 0).Err()
}

// Get returns the stored payment or ErrPaymentNotFound.
func (r *RedisPaymentRepository) Get(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	data, err := r.client.Get(ctx, paymentKey(id)).Bytes()
	if err == redis.Nil {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get payment %s: %w", id, err)
	}

	var payment models.Payment
	if err := json.Unmarshal(data, &payment); err != nil {
		return nil, fmt.Errorf("unmarshal payment %s: %w", id, err)
	}
	return &payment, nil
}

// Close releases the underlying Redis connection.
func (r *RedisPaymentRepository) Close() error {
	return r.client.Close()
}
