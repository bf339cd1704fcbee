package booking

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"medbook/models"
)

const receiptKeyPrefix = "receipt:"

// ReceiptStore keeps confirmations retrievable by reference code for a
// while after admission. A nil store disables the feature; losing a receipt
// never loses a reservation.
type ReceiptStore interface {
	Save(ctx context.Context, receipt *models.BookingReceipt) error
	// Get returns (nil, nil) when the reference is unknown or expired.
	Get(ctx context.Context, reference string) (*models.BookingReceipt, error)
}

// RedisReceiptStore caches receipts in Redis with a TTL.
type RedisReceiptStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisReceiptStore(client *redis.Client, ttl time.Duration) *RedisReceiptStore {
	return &RedisReceiptStore{client: client, ttl: ttl}
}

func (s *RedisReceiptStore) Save(ctx context.Context, receipt *models.BookingReceipt) error {
	data, err := json.Marshal(receipt)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, receiptKeyPrefix+receipt.Reference, data, s.ttl).Err()
}

func (s *RedisReceiptStore) Get(ctx context.Context, reference string) (*models.BookingReceipt, error) {
	data, err := s.client.Get(ctx, receiptKeyPrefix+reference).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var receipt models.BookingReceipt
	if err := json.Unmarshal([]byte(data), &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}
