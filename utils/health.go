// File: utils/health.go
package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	healthInterval    = time.Minute
	healthPingTimeout = 5 * time.Second
)

// HealthStatus is the snapshot served by the health endpoint. Redis is
// keyed by role ("cache", "auth") so a degraded client is identifiable.
type HealthStatus struct {
	Mongo     bool            `json:"mongo"`
	Redis     map[string]bool `json:"redis"`
	CheckedAt time.Time       `json:"checkedAt"`
}

var (
	healthMu      sync.RWMutex
	currentHealth HealthStatus
)

// GetHealthStatus returns the latest stored snapshot. It is zero until
// the monitor's first check completes.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor takes an immediate snapshot, then re-checks every
// minute in the background.
func StartHealthMonitor(redisClients map[string]*redis.Client, mongoClient *mongo.Client) {
	go func() {
		snapshotHealth(redisClients, mongoClient)

		ticker := time.NewTicker(healthInterval)
		defer ticker.Stop()
		for range ticker.C {
			snapshotHealth(redisClients, mongoClient)
		}
	}()
}

func snapshotHealth(redisClients map[string]*redis.Client, mongoClient *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), healthPingTimeout)
	defer cancel()

	redisUp := make(map[string]bool, len(redisClients))
	for role, client := range redisClients {
		redisUp[role] = client.Ping(ctx).Err() == nil
	}
	mongoUp := mongoClient.Ping(ctx, nil) == nil

	healthMu.Lock()
	currentHealth = HealthStatus{
		Mongo:     mongoUp,
		Redis:     redisUp,
		CheckedAt: time.Now(),
	}
	healthMu.Unlock()
}
