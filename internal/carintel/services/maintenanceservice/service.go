package maintenanceservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Vlok123/carintel/internal/carintel/domain/models"
	"github.com/Vlok123/carintel/internal/carintel/repository/userrepo"
	"github.com/Vlok123/carintel/internal/pkg/config"
	"github.com/Vlok123/carintel/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// Retention windows for the age-based cleanup.
const (
	SearchRetention   = 30 * 24 * time.Hour
	ActivityRetention = 90 * 24 * time.Hour
	MessageRetention  = 365 * 24 * time.Hour
)

type UserRepository interface {
	CreateUser(context.Context, models.User) (models.User, error)
	UpsertAdmin(context.Context, models.User) error
	CountUsers(context.Context) (int64, error)
}

type SketchRepository interface {
	CreateSketch(context.Context, models.Sketch) (models.Sketch, error)
	CountSketches(context.Context) (int64, error)
}

type SavedRepository interface {
	CountSearches(context.Context) (int64, error)
	CountVehicles(context.Context) (int64, error)
}

type LogRepository interface {
	DeleteSearchesBefore(context.Context, time.Time) (int64, error)
	DeleteActivitiesBefore(context.Context, time.Time) (int64, error)
}

type ContactRepository interface {
	DeleteMessagesBefore(context.Context, time.Time) (int64, error)
}

type Stats struct {
	Users         int64 `json:"users"`
	Sketches      int64 `json:"sketches"`
	SavedSearches int64 `json:"saved_searches"` //nolint:tagliatelle
	SavedVehicles int64 `json:"saved_vehicles"` //nolint:tagliatelle
}

type CleanupResult struct {
	SearchesDeleted   int64 `json:"searches_deleted"`   //nolint:tagliatelle
	ActivitiesDeleted int64 `json:"activities_deleted"` //nolint:tagliatelle
	MessagesDeleted   int64 `json:"messages_deleted"`   //nolint:tagliatelle
}

type SeedResult struct {
	UsersCreated    int64 `json:"users_created"`    //nolint:tagliatelle
	SketchesCreated int64 `json:"sketches_created"` //nolint:tagliatelle
}

type MaintenanceService struct {
	userRepo    UserRepository
	sketchRepo  SketchRepository
	savedRepo   SavedRepository
	logRepo     LogRepository
	contactRepo ContactRepository
	admin       config.Admin
	now         func() time.Time
	lg          logger.Logger
}

func New(userRepo UserRepository, sketchRepo SketchRepository, savedRepo SavedRepository,
	logRepo LogRepository, contactRepo ContactRepository, admin config.Admin, lg logger.Logger,
) *MaintenanceService {
	return &MaintenanceService{
		userRepo:    userRepo,
		sketchRepo:  sketchRepo,
		savedRepo:   savedRepo,
		logRepo:     logRepo,
		contactRepo: contactRepo,
		admin:       admin,
		now:         time.Now,
		lg:          lg,
	}
}

// EnsureAdmin creates or refreshes the designated admin account.
// Safe to run on every startup.
func (ms *MaintenanceService) EnsureAdmin(ctx context.Context) error {
	if ms.admin.Email == "" || ms.admin.Password == "" {
		return errors.New("admin account not configured")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(ms.admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("generate from password error: %w", err)
	}

	u := models.User{ //nolint:exhaustruct
		Email:        ms.admin.Email,
		Name:         ms.admin.Name,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}

	if err := ms.userRepo.UpsertAdmin(ctx, u); err != nil {
		return fmt.Errorf("upsert admin error: %w", err)
	}

	return nil
}

// Seed inserts the demo accounts and example sketches. The batch is
// insert-or-skip: rows that already exist are counted as skipped, while
// any other failure aborts the whole run.
func (ms *MaintenanceService) Seed(ctx context.Context) (SeedResult, error) {
	var res SeedResult

	for _, su := range sampleUsers() {
		u, err := ms.userRepo.CreateUser(ctx, su)
		if err != nil {
			if errors.Is(err, userrepo.ErrAlreadyExists) {
				ms.lg.Infof("sample user %s already present, skipping", su.Email)

				continue
			}

			return res, fmt.Errorf("create sample user error: %w", err)
		}

		res.UsersCreated++

		for _, sk := range sampleSketches(u.ID) {
			if _, err := ms.sketchRepo.CreateSketch(ctx, sk); err != nil {
				return res, fmt.Errorf("create sample sketch error: %w", err)
			}

			res.SketchesCreated++
		}
	}

	return res, nil
}

// Cleanup purges aged log rows: anonymous searches after 30 days,
// activity rows after 90 days, contact messages after a year. Rows
// exactly at the threshold are removed.
func (ms *MaintenanceService) Cleanup(ctx context.Context) (CleanupResult, error) {
	var res CleanupResult

	now := ms.now()

	searches, err := ms.logRepo.DeleteSearchesBefore(ctx, now.Add(-SearchRetention))
	if err != nil {
		return res, fmt.Errorf("delete searches error: %w", err)
	}

	res.SearchesDeleted = searches

	activities, err := ms.logRepo.DeleteActivitiesBefore(ctx, now.Add(-ActivityRetention))
	if err != nil {
		return res, fmt.Errorf("delete activities error: %w", err)
	}

	res.ActivitiesDeleted = activities

	messages, err := ms.contactRepo.DeleteMessagesBefore(ctx, now.Add(-MessageRetention))
	if err != nil {
		return res, fmt.Errorf("delete messages error: %w", err)
	}

	res.MessagesDeleted = messages

	return res, nil
}

func (ms *MaintenanceService) Stats(ctx context.Context) (Stats, error) {
	var s Stats

	users, err := ms.userRepo.CountUsers(ctx)
	if err != nil {
		return s, fmt.Errorf("count users error: %w", err)
	}

	sketches, err := ms.sketchRepo.CountSketches(ctx)
	if err != nil {
		return s, fmt.Errorf("count sketches error: %w", err)
	}

	searches, err := ms.savedRepo.CountSearches(ctx)
	if err != nil {
		return s, fmt.Errorf("count searches error: %w", err)
	}

	vehicles, err := ms.savedRepo.CountVehicles(ctx)
	if err != nil {
		return s, fmt.Errorf("count vehicles error: %w", err)
	}

	s.Users = users
	s.Sketches = sketches
	s.SavedSearches = searches
	s.SavedVehicles = vehicles

	return s, nil
}
