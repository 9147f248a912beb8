package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"friends-directory/internal/domain/friends"

	"github.com/redis/go-redis/v9"
)

const (
	defaultPrefix = "friends:overview:"
	genSuffix     = "gen"
)

// OverviewCache guarda en redis los agrupados por país. Invalidate solo hace
// INCR del contador de generación; las claves viejas expiran por TTL.
type OverviewCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
}

type Options struct {
	Addr   string
	DB     int
	TTL    time.Duration
	Prefix string
}

// Connect abre el cliente y verifica la conexión con un Ping.
func Connect(ctx context.Context, opts Options) (*OverviewCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: opts.Addr,
		DB:   opts.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", opts.Addr, err)
	}
	return New(rdb, opts.TTL, opts.Prefix), nil
}

func New(rdb *redis.Client, ttl time.Duration, prefix string) *OverviewCache {
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &OverviewCache{rdb: rdb, ttl: ttl, prefix: prefix}
}

// Generation devuelve la generación actual (0 si nunca se invalidó).
func (c *OverviewCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.rdb.Get(ctx, c.prefix+genSuffix).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis get generation: %w", err)
	}
	return gen, nil
}

func (c *OverviewCache) Get(ctx context.Context, key string) (map[string][]friends.Friend, bool, error) {
	raw, err := c.rdb.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}

	var groups map[string][]friends.Friend
	if err := json.Unmarshal(raw, &groups); err != nil {
		return nil, false, fmt.Errorf("decode cached overview: %w", err)
	}
	return groups, true, nil
}

func (c *OverviewCache) Set(ctx context.Context, key string, groups map[string][]friends.Friend) error {
	data, err := json.Marshal(groups)
	if err != nil {
		return fmt.Errorf("encode overview: %w", err)
	}

	if err := c.rdb.Set(ctx, c.prefix+key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Invalidate avanza la generación. Las lecturas siguientes arman claves nuevas.
func (c *OverviewCache) Invalidate(ctx context.Context) error {
	if err := c.rdb.Incr(ctx, c.prefix+genSuffix).Err(); err != nil {
		return fmt.Errorf("redis incr generation: %w", err)
	}
	return nil
}

func (c *OverviewCache) Close() error {
	return c.rdb.Close()
}
