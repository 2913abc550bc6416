package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Domenick1991/airlink/config"
	"github.com/Domenick1991/airlink/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client     *redis.Client
	flightsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, flightsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		flightsTTL: flightsTTL,
	}
}

type flightListEntry struct {
	Items []domain.FlightListItem `json:"items"`
	Total int                     `json:"total"`
}

// GetFlightList returns the cached default flight page, or (nil, 0, nil) on a miss.
func (c *RedisCache) GetFlightList(ctx context.Context) ([]domain.FlightListItem, int, error) {
	data, err := c.client.Get(ctx, flightsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, 0, nil
		}
		return nil, 0, err
	}

	var entry flightListEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, 0, err
	}
	return entry.Items, entry.Total, nil
}

func (c *RedisCache) SetFlightList(ctx context.Context, items []domain.FlightListItem, total int) error {
	payload, err := json.Marshal(flightListEntry{Items: items, Total: total})
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightsKey(), payload, c.flightsTTL).Err()
}

// InvalidateFlights drops the cached page after any write that changes what a
// flight list would show, including ticket sales.
func (c *RedisCache) InvalidateFlights(ctx context.Context) error {
	return c.client.Del(ctx, flightsKey()).Err()
}

func flightsKey() string {
	return "cache:flights"
}
