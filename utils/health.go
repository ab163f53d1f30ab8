package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is the snapshot /healthz serves. This service has exactly two
// external dependencies: the mongo deployment holding places and reservations,
// and the redis instance backing the summary cache and the snapshot queue.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     bool      `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

func setHealth(status HealthStatus) {
	healthMu.Lock()
	currentHealth = status
	healthMu.Unlock()
}

// StartHealthMonitor pings mongo and the cache once a minute and stores the
// result, so /healthz answers from memory instead of probing on every request.
func StartHealthMonitor(cache *redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			setHealth(HealthStatus{
				Mongo:     mongoClient.Ping(ctx, nil) == nil,
				Redis:     cache.Ping(ctx).Err() == nil,
				CheckedAt: time.Now(),
			})
		}
	}()
}
