package savedservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Vlok123/carintel/internal/carintel/domain/models"
	"github.com/Vlok123/carintel/internal/carintel/repository/savedrepo"
)

var (
	ErrNotFound         = errors.New("saved item not found")
	ErrQueryRequired    = errors.New("query is required")
	ErrKentekenRequired = errors.New("kenteken is required")
	ErrAlreadySaved     = errors.New("vehicle already saved")
)

type Repository interface {
	ListSearches(context.Context, int64) ([]models.SavedSearch, error)
	CreateSearch(context.Context, models.SavedSearch) (models.SavedSearch, error)
	DeleteSearch(ctx context.Context, userID, id int64) error
	ListVehicles(context.Context, int64) ([]models.SavedVehicle, error)
	CreateVehicle(context.Context, models.SavedVehicle) (models.SavedVehicle, error)
	DeleteVehicle(ctx context.Context, userID, id int64) error
}

type SavedService struct {
	savedRepo Repository
}

func New(savedRepo Repository) *SavedService {
	return &SavedService{
		savedRepo: savedRepo,
	}
}

func (ss *SavedService) ListSearches(ctx context.Context, userID int64) ([]models.SavedSearch, error) {
	searches, err := ss.savedRepo.ListSearches(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list searches error: %w", err)
	}

	return searches, nil
}

func (ss *SavedService) SaveSearch(ctx context.Context, s models.SavedSearch) (models.SavedSearch, error) {
	if strings.TrimSpace(s.Query) == "" {
		return models.SavedSearch{}, ErrQueryRequired
	}

	if len(s.Filters) == 0 {
		s.Filters = models.EmptyObject
	}

	s, err := ss.savedRepo.CreateSearch(ctx, s)
	if err != nil {
		return models.SavedSearch{}, fmt.Errorf("create search error: %w", err)
	}

	return s, nil
}

func (ss *SavedService) DeleteSearch(ctx context.Context, userID, id int64) error {
	if err := ss.savedRepo.DeleteSearch(ctx, userID, id); err != nil {
		if errors.Is(err, savedrepo.ErrNotFound) {
			return ErrNotFound
		}

		return fmt.Errorf("delete search error: %w", err)
	}

	return nil
}

func (ss *SavedService) ListVehicles(ctx context.Context, userID int64) ([]models.SavedVehicle, error) {
	vehicles, err := ss.savedRepo.ListVehicles(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list vehicles error: %w", err)
	}

	return vehicles, nil
}

func (ss *SavedService) SaveVehicle(ctx context.Context, v models.SavedVehicle) (models.SavedVehicle, error) {
	if strings.TrimSpace(v.Kenteken) == "" {
		return models.SavedVehicle{}, ErrKentekenRequired
	}

	v.Kenteken = models.NormalizeKenteken(v.Kenteken)

	if len(v.Data) == 0 {
		v.Data = models.EmptyObject
	}

	v, err := ss.savedRepo.CreateVehicle(ctx, v)
	if err != nil {
		if errors.Is(err, savedrepo.ErrAlreadyExists) {
			return models.SavedVehicle{}, ErrAlreadySaved
		}

		return models.SavedVehicle{}, fmt.Errorf("create vehicle error: %w", err)
	}

	return v, nil
}

func (ss *SavedService) DeleteVehicle(ctx context.Context, userID, id int64) error {
	if err := ss.savedRepo.DeleteVehicle(ctx, userID, id); err != nil {
		if errors.Is(err, savedrepo.ErrNotFound) {
			return ErrNotFound
		}

		return fmt.Errorf("delete vehicle error: %w", err)
	}

	return nil
}
