package maintenanceservice

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Vlok123/carintel/internal/carintel/domain/models"
	"github.com/Vlok123/carintel/internal/carintel/repository/userrepo"
	"github.com/Vlok123/carintel/internal/pkg/config"
	"github.com/Vlok123/carintel/pkg/logger"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUsers struct {
	users  []models.User
	admins []models.User
}

func (f *fakeUsers) CreateUser(_ context.Context, u models.User) (models.User, error) {
	for _, existing := range f.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return models.User{}, userrepo.ErrAlreadyExists
		}
	}

	u.ID = int64(len(f.users) + 1)
	f.users = append(f.users, u)

	return u, nil
}

func (f *fakeUsers) UpsertAdmin(_ context.Context, u models.User) error {
	f.admins = append(f.admins, u)

	return nil
}

func (f *fakeUsers) CountUsers(context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

type fakeSketches struct {
	sketches []models.Sketch
}

func (f *fakeSketches) CreateSketch(_ context.Context, s models.Sketch) (models.Sketch, error) {
	s.ID = int64(len(f.sketches) + 1)
	f.sketches = append(f.sketches, s)

	return s, nil
}

func (f *fakeSketches) CountSketches(context.Context) (int64, error) {
	return int64(len(f.sketches)), nil
}

type fakeSaved struct {
	searches, vehicles int64
}

func (f *fakeSaved) CountSearches(context.Context) (int64, error) { return f.searches, nil }
func (f *fakeSaved) CountVehicles(context.Context) (int64, error) { return f.vehicles, nil }

type fakeLogs struct {
	searchRows   []time.Time
	activityRows []time.Time
}

func deleteBefore(rows []time.Time, cutoff time.Time) ([]time.Time, int64) {
	var kept []time.Time

	var deleted int64

	for _, ts := range rows {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		} else {
			deleted++
		}
	}

	return kept, deleted
}

func (f *fakeLogs) DeleteSearchesBefore(_ context.Context, cutoff time.Time) (int64, error) {
	var n int64
	f.searchRows, n = deleteBefore(f.searchRows, cutoff)

	return n, nil
}

func (f *fakeLogs) DeleteActivitiesBefore(_ context.Context, cutoff time.Time) (int64, error) {
	var n int64
	f.activityRows, n = deleteBefore(f.activityRows, cutoff)

	return n, nil
}

type fakeContacts struct {
	rows []time.Time
}

func (f *fakeContacts) DeleteMessagesBefore(_ context.Context, cutoff time.Time) (int64, error) {
	var n int64
	f.rows, n = deleteBefore(f.rows, cutoff)

	return n, nil
}

func newTestService(admin config.Admin) (*MaintenanceService, *fakeUsers, *fakeSketches, *fakeLogs, *fakeContacts) {
	users := &fakeUsers{}         //nolint:exhaustruct
	sketches := &fakeSketches{}   //nolint:exhaustruct
	saved := &fakeSaved{3, 5}     //nolint:exhaustruct
	logs := &fakeLogs{}           //nolint:exhaustruct
	contacts := &fakeContacts{}   //nolint:exhaustruct

	ms := New(users, sketches, saved, logs, contacts, admin, logger.NewNop())

	return ms, users, sketches, logs, contacts
}

func TestEnsureAdmin(t *testing.T) {
	ctx := context.Background()
	ms, users, _, _, _ := newTestService(config.Admin{
		Email:    "admin@carintel.nl",
		Password: "topsecret",
		Name:     "Beheerder",
	})

	require.NoError(t, ms.EnsureAdmin(ctx))
	require.Len(t, users.admins, 1)

	admin := users.admins[0]
	require.Equal(t, models.RoleAdmin, admin.Role)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("topsecret")))
}

func TestEnsureAdminUnconfigured(t *testing.T) {
	ctx := context.Background()
	ms, _, _, _, _ := newTestService(config.Admin{}) //nolint:exhaustruct

	require.Error(t, ms.EnsureAdmin(ctx))
}

func TestSeedFreshDatabase(t *testing.T) {
	ctx := context.Background()
	ms, users, sketches, _, _ := newTestService(config.Admin{}) //nolint:exhaustruct

	res, err := ms.Seed(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), res.UsersCreated)
	require.Equal(t, int64(4), res.SketchesCreated)
	require.Len(t, users.users, 2)
	require.Len(t, sketches.sketches, 4)

	// Each sketch belongs to the user it was created for.
	for _, s := range sketches.sketches {
		require.NotZero(t, s.UserID)
	}
}

func TestSeedSkipsExisting(t *testing.T) {
	ctx := context.Background()
	ms, users, sketches, _, _ := newTestService(config.Admin{}) //nolint:exhaustruct

	_, err := ms.Seed(ctx)
	require.NoError(t, err)

	// Second run finds everything present and creates nothing.
	res, err := ms.Seed(ctx)
	require.NoError(t, err)
	require.Zero(t, res.UsersCreated)
	require.Zero(t, res.SketchesCreated)
	require.Len(t, users.users, 2)
	require.Len(t, sketches.sketches, 4)
}

func TestCleanupRetentionWindows(t *testing.T) {
	ctx := context.Background()
	ms, _, _, logs, contacts := newTestService(config.Admin{}) //nolint:exhaustruct

	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	ms.now = func() time.Time { return now }

	day := 24 * time.Hour

	logs.searchRows = []time.Time{
		now.Add(-31 * day), // past the window
		now.Add(-30 * day), // exactly at the cutoff, removed
		now.Add(-29 * day), // kept
	}
	logs.activityRows = []time.Time{
		now.Add(-91 * day),
		now.Add(-89 * day),
	}
	contacts.rows = []time.Time{
		now.Add(-366 * day),
		now.Add(-364 * day),
	}

	res, err := ms.Cleanup(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), res.SearchesDeleted)
	require.Equal(t, int64(1), res.ActivitiesDeleted)
	require.Equal(t, int64(1), res.MessagesDeleted)

	require.Len(t, logs.searchRows, 1)
	require.Len(t, logs.activityRows, 1)
	require.Len(t, contacts.rows, 1)
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	ms, _, sketches, _, _ := newTestService(config.Admin{}) //nolint:exhaustruct

	_, err := sketches.CreateSketch(ctx, models.Sketch{UserID: 1, Title: "x"}) //nolint:exhaustruct
	require.NoError(t, err)

	s, err := ms.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(0), s.Users)
	require.Equal(t, int64(1), s.Sketches)
	require.Equal(t, int64(3), s.SavedSearches)
	require.Equal(t, int64(5), s.SavedVehicles)
}
