package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"medbook/database/store"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Store     bool      `json:"store"`
	Redis     *bool     `json:"redis,omitempty"` // nil when receipts are disabled
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory
// state. The store probe reads a single header cell, which is as cheap as the
// row store gets.
func StartHealthMonitor(rowStore store.RowStore, redisClient *redis.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)

			_, storeErr := rowStore.ReadRange(ctx, store.HealthCheckRange)

			var redisHealth *bool
			if redisClient != nil {
				healthy := redisClient.Ping(ctx).Err() == nil
				redisHealth = &healthy
			}
			cancel()

			mu.Lock()
			currentHealth = HealthStatus{
				Store:     storeErr == nil,
				Redis:     redisHealth,
				CheckedAt: time.Now(),
			}
			mu.Unlock()
		}
	}()
}
