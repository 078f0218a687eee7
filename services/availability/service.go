// File: services/availability/service.go
package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"meetcure/calendar"
	availabilityRepo "meetcure/database/repository/availability"
	"meetcure/models"
	"meetcure/utils"
)

const (
	cachePrefix = "availability:"
	cacheTTL    = 5 * time.Minute
)

// Cache is the slice of redis the service reads and drops availability
// snapshots through. Satisfied by *redis.Client.
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// DefaultAvailabilityService is the production AvailabilityService.
// Cache may be nil; reads then always hit the repository.
type DefaultAvailabilityService struct {
	Repo  availabilityRepo.AvailabilityRepository
	Cache Cache
}

// Set validates and stores the doctor's slots for a date. Slots are
// deduplicated and sorted by time of day; the write is an upsert keyed
// on (doctor, date).
func (s *DefaultAvailabilityService) Set(ctx context.Context, doctorID string, req models.SetAvailabilityRequest) (*models.Availability, error) {
	if _, err := time.Parse(calendar.DateLayout, req.Date); err != nil {
		return nil, newValidationError("date", fmt.Sprintf("invalid date %q, want YYYY-MM-DD", req.Date))
	}

	slots, err := normalizeSlots(req.Slots)
	if err != nil {
		return nil, err
	}

	stored, err := s.Repo.Upsert(ctx, &models.Availability{
		DoctorID: doctorID,
		Date:     req.Date,
		Slots:    slots,
	})
	if err != nil {
		return nil, err
	}

	s.Invalidate(ctx, doctorID)
	return stored, nil
}

// GetByDoctor serves availability reads, consulting the cache first.
func (s *DefaultAvailabilityService) GetByDoctor(ctx context.Context, doctorID string) ([]models.Availability, error) {
	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, cachePrefix+doctorID).Result(); err == nil {
			var docs []models.Availability
			if err := json.Unmarshal([]byte(raw), &docs); err == nil {
				return docs, nil
			}
		}
	}

	docs, err := s.Repo.GetByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(docs); err == nil {
			if err := s.Cache.Set(ctx, cachePrefix+doctorID, data, cacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("availability cache write failed", zap.Error(err))
			}
		}
	}
	return docs, nil
}

func (s *DefaultAvailabilityService) DeleteByDate(ctx context.Context, doctorID, date string) error {
	if _, err := time.Parse(calendar.DateLayout, date); err != nil {
		return newValidationError("date", fmt.Sprintf("invalid date %q, want YYYY-MM-DD", date))
	}

	if err := s.Repo.DeleteByDoctorAndDate(ctx, doctorID, date); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrNotFound
		}
		return err
	}

	s.Invalidate(ctx, doctorID)
	return nil
}

// Invalidate drops the cached snapshot for a doctor. Every slot
// mutation must pass through here, including the booking and
// cancellation paths that write to the repository directly; a stale
// entry would otherwise keep advertising a consumed slot until the
// TTL expires.
func (s *DefaultAvailabilityService) Invalidate(ctx context.Context, doctorID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, cachePrefix+doctorID).Err(); err != nil {
		utils.GetLogger().Warn("availability cache invalidation failed", zap.Error(err))
	}
}

// normalizeSlots validates each clock string, drops duplicates, and
// sorts by time of day.
func normalizeSlots(in []string) ([]string, error) {
	type parsed struct {
		slot    string
		minutes int
	}
	seen := make(map[int]bool, len(in))
	out := make([]parsed, 0, len(in))
	for _, slot := range in {
		h, m, err := calendar.ParseClock(slot)
		if err != nil {
			return nil, newValidationError("slots", fmt.Sprintf("invalid slot %q, want \"H:MM AM|PM\"", slot))
		}
		key := h*60 + m
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, parsed{slot: slot, minutes: key})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].minutes < out[j].minutes })

	slots := make([]string, len(out))
	for i, p := range out {
		slots[i] = p.slot
	}
	return slots, nil
}
