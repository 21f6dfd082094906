package vehicleservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Vlok123/carintel/internal/carintel/domain/models"
	"github.com/Vlok123/carintel/internal/carintel/repository/vehiclecache"
	"github.com/Vlok123/carintel/pkg/logger"
)

var (
	ErrNotFound         = errors.New("vehicle not found")
	ErrKentekenRequired = errors.New("kenteken is required")
)

// Registry fetches registration data from the upstream open-data API.
type Registry interface {
	FetchVehicle(ctx context.Context, kenteken string) (json.RawMessage, error)
}

type Cache interface {
	GetVehicle(ctx context.Context, kenteken string) (json.RawMessage, error)
	SetVehicle(ctx context.Context, kenteken string, data json.RawMessage) error
}

type SearchRecorder interface {
	RecordSearch(ctx context.Context, kenteken string) error
}

type VehicleService struct {
	registry Registry
	cache    Cache
	searches SearchRecorder
	lg       logger.Logger
}

func New(registry Registry, cache Cache, searches SearchRecorder, lg logger.Logger) *VehicleService {
	return &VehicleService{
		registry: registry,
		cache:    cache,
		searches: searches,
		lg:       lg,
	}
}

// Lookup resolves a registration code to its RDW record, consulting the
// cache first. Every lookup is logged anonymously for the usage stats;
// logging failures never fail the lookup.
func (vs *VehicleService) Lookup(ctx context.Context, kenteken string) (models.Vehicle, error) {
	if strings.TrimSpace(kenteken) == "" {
		return models.Vehicle{}, ErrKentekenRequired
	}

	kenteken = models.NormalizeKenteken(kenteken)

	if err := vs.searches.RecordSearch(ctx, kenteken); err != nil {
		vs.lg.Errorf("record search error: %s", err.Error())
	}

	data, err := vs.cache.GetVehicle(ctx, kenteken)
	if err == nil {
		vs.lg.Info("cache hit")

		return models.Vehicle{Kenteken: kenteken, Data: data, FetchedAt: time.Now()}, nil
	}

	if !errors.Is(err, vehiclecache.ErrNotFound) {
		vs.lg.Errorf("vehicle cache error: %s", err.Error())
	}

	data, err = vs.registry.FetchVehicle(ctx, kenteken)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.Vehicle{}, ErrNotFound
		}

		return models.Vehicle{}, fmt.Errorf("fetch vehicle error: %w", err)
	}

	if err := vs.cache.SetVehicle(ctx, kenteken, data); err != nil {
		vs.lg.Errorf("vehicle cache set error: %s", err.Error())
	}

	return models.Vehicle{Kenteken: kenteken, Data: data, FetchedAt: time.Now()}, nil
}
