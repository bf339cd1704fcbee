package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"medbook/config"
)

// ReceiptCacheClient is the Redis client backing booking receipts. It stays
// nil when no Redis address is configured; receipts are an optional feature.
var ReceiptCacheClient *redis.Client

// InitReceiptCache connects the receipt cache client.
func InitReceiptCache() {
	if config.AppConfig.RedisAddr == "" {
		log.Println("No Redis address configured, booking receipts disabled")
		return
	}
	ReceiptCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReceiptDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := ReceiptCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Receipt Cache): %v", err)
	}
}

// GetReceiptCacheClient returns the receipt cache client, possibly nil.
func GetReceiptCacheClient() *redis.Client {
	return ReceiptCacheClient
}
