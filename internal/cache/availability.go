// Package cache keeps computed ticket availability in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Jairobuifranco/A2-Group17/internal/domain"
	"github.com/redis/go-redis/v9"
)

const defaultTTL = 30 * time.Second

type Availability struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAvailability(client *redis.Client, ttl time.Duration) *Availability {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Availability{client: client, ttl: ttl}
}

// NewClient connects to Redis and pings it once.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

func key(eventID string) string {
	return "event:" + eventID + ":availability"
}

func versionKey(eventID string) string {
	return "event:" + eventID + ":availability:version"
}

// Get reports false without an error on a cache miss.
func (c *Availability) Get(ctx context.Context, eventID string) (*domain.Availability, bool, error) {
	raw, err := c.client.Get(ctx, key(eventID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var a domain.Availability
	if err = json.Unmarshal(raw, &a); err != nil {
		return nil, false, fmt.Errorf("decode availability: %w", err)
	}
	return &a, true, nil
}

// Version returns the invalidation counter of an event, 0 if it was never invalidated.
func (c *Availability) Version(ctx context.Context, eventID string) (int64, error) {
	v, err := c.client.Get(ctx, versionKey(eventID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("redis get version: %w", err)
	}
	return v, nil
}

// Set stores a only while the event's version still equals version. It
// reports false when an Invalidate ran in between.
func (c *Availability) Set(ctx context.Context, eventID string, version int64, a domain.Availability) (bool, error) {
	raw, err := json.Marshal(a)
	if err != nil {
		return false, fmt.Errorf("encode availability: %w", err)
	}

	stored := false
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, versionKey(eventID)).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if cur != version {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key(eventID), raw, c.ttl)
			return nil
		})
		if err != nil {
			return err
		}
		stored = true
		return nil
	}, versionKey(eventID))

	if errors.Is(err, redis.TxFailedErr) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis set: %w", err)
	}
	return stored, nil
}

// Invalidate drops the cached value and bumps the version so in-flight
// computations started before this call cannot store their result.
func (c *Availability) Invalidate(ctx context.Context, eventID string) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, versionKey(eventID))
		pipe.Del(ctx, key(eventID))
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis invalidate: %w", err)
	}
	return nil
}
