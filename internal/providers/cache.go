package providers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sehatplus/notification-service/pkg/logging"
)

const emergencyNursesKey = "notify:emergency_nurses"

// CachedRepository caches recipient lookups in Redis with a TTL. Cache
// failures are logged and fall through to the underlying repository; a cache
// outage must never block a notification.
type CachedRepository struct {
	inner  Repository
	rdb    *redis.Client
	ttl    time.Duration
	logger *logging.Logger
}

// NewCachedRepository wraps a repository with a Redis lookup cache.
func NewCachedRepository(inner Repository, rdb *redis.Client, ttl time.Duration, logger *logging.Logger) *CachedRepository {
	if logger == nil {
		logger = logging.Default()
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachedRepository{inner: inner, rdb: rdb, ttl: ttl, logger: logger}
}

func (c *CachedRepository) cachedEmail(ctx context.Context, key string, lookup func() (string, error)) (string, error) {
	if cached, err := c.rdb.Get(ctx, key).Result(); err == nil {
		return cached, nil
	} else if err != redis.Nil {
		c.logger.Warn("provider cache read failed", "key", key, "error", err)
	}

	email, err := lookup()
	if err != nil {
		return "", err
	}
	if err := c.rdb.Set(ctx, key, email, c.ttl).Err(); err != nil {
		c.logger.Warn("provider cache write failed", "key", key, "error", err)
	}
	return email, nil
}

// DoctorEmail returns the doctor's email, cached.
func (c *CachedRepository) DoctorEmail(ctx context.Context, id string) (string, error) {
	return c.cachedEmail(ctx, "notify:email:doctor:"+id, func() (string, error) {
		return c.inner.DoctorEmail(ctx, id)
	})
}

// NurseEmail returns the nurse's email, cached.
func (c *CachedRepository) NurseEmail(ctx context.Context, id string) (string, error) {
	return c.cachedEmail(ctx, "notify:email:nurse:"+id, func() (string, error) {
		return c.inner.NurseEmail(ctx, id)
	})
}

// StoreEmail returns the medical store's email, cached.
func (c *CachedRepository) StoreEmail(ctx context.Context, id string) (string, error) {
	return c.cachedEmail(ctx, "notify:email:store:"+id, func() (string, error) {
		return c.inner.StoreEmail(ctx, id)
	})
}

// EmergencyNurseEmails returns the broadcast set, cached as a JSON list.
func (c *CachedRepository) EmergencyNurseEmails(ctx context.Context) ([]string, error) {
	if cached, err := c.rdb.Get(ctx, emergencyNursesKey).Result(); err == nil {
		var emails []string
		if jsonErr := json.Unmarshal([]byte(cached), &emails); jsonErr == nil {
			return emails, nil
		}
	} else if err != redis.Nil {
		c.logger.Warn("provider cache read failed", "key", emergencyNursesKey, "error", err)
	}

	emails, err := c.inner.EmergencyNurseEmails(ctx)
	if err != nil {
		return nil, err
	}
	if data, jsonErr := json.Marshal(emails); jsonErr == nil {
		if err := c.rdb.Set(ctx, emergencyNursesKey, data, c.ttl).Err(); err != nil {
			c.logger.Warn("provider cache write failed", "key", emergencyNursesKey, "error", err)
		}
	}
	return emails, nil
}

// UserEmail resolves a profile's email, cached.
func (c *CachedRepository) UserEmail(ctx context.Context, userID string) (string, error) {
	return c.cachedEmail(ctx, "notify:email:user:"+userID, func() (string, error) {
		return c.inner.UserEmail(ctx, userID)
	})
}

var _ Repository = (*CachedRepository)(nil)
