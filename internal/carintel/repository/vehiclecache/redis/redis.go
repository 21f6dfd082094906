package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Vlok123/carintel/internal/carintel/repository/vehiclecache"
	"github.com/Vlok123/carintel/internal/pkg/config"
	"github.com/Vlok123/carintel/internal/pkg/redistools"
	"github.com/redis/go-redis/v9"
)

// VehicleCache keeps raw RDW payloads keyed by normalized kenteken so
// repeated lookups of the same plate skip the upstream call.
type VehicleCache struct {
	rdb     *redis.Client
	expTime time.Duration
}

func New(ctx context.Context, cfg config.RedisCache) (VehicleCache, error) {
	rdb := redis.NewClient(&redis.Options{ //nolint:exhaustruct
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := redistools.Connect(ctx, rdb); err != nil {
		return VehicleCache{}, fmt.Errorf("connect error: %w", err)
	}

	return VehicleCache{
		rdb:     rdb,
		expTime: cfg.ExpTime,
	}, nil
}

func (vc VehicleCache) GetVehicle(ctx context.Context, kenteken string) (json.RawMessage, error) {
	data, err := vc.rdb.Get(ctx, "vehicle:"+kenteken).Result()
	if errors.Is(err, redis.Nil) {
		return nil, vehiclecache.ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("get error: %w", err)
	}

	return json.RawMessage(data), nil
}

func (vc VehicleCache) SetVehicle(ctx context.Context, kenteken string, data json.RawMessage) error {
	if _, err := vc.rdb.Set(ctx, "vehicle:"+kenteken, []byte(data), vc.expTime).Result(); err != nil {
		return fmt.Errorf("set error: %w", err)
	}

	return nil
}

func (vc VehicleCache) Shutdown(ctx context.Context) error {
	done := make(chan struct{})

	go func() {
		vc.rdb.Close() //nolint:errcheck
		close(done)
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("context error: %w", ctx.Err())
	case <-done:
		return nil
	}
}
