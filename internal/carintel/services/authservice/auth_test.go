package authservice_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Vlok123/carintel/internal/carintel/domain/models"
	"github.com/Vlok123/carintel/internal/carintel/repository/userrepo"
	"github.com/Vlok123/carintel/internal/carintel/services/authservice"
	"github.com/Vlok123/carintel/internal/pkg/config"
	"github.com/Vlok123/carintel/pkg/logger"

	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users  map[int64]models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]models.User), nextID: 1}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, u models.User) (models.User, error) {
	for _, existing := range f.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return models.User{}, userrepo.ErrAlreadyExists
		}
	}

	u.ID = f.nextID
	f.nextID++
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	f.users[u.ID] = u

	return u, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (models.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}

	return models.User{}, userrepo.ErrNotFound
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id int64) (models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return models.User{}, userrepo.ErrNotFound
	}

	return u, nil
}

type noopActivity struct{}

func (noopActivity) RecordActivity(context.Context, int64, string) error { return nil }

func newService() (*authservice.AuthService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	cfg := config.Auth{TTL: time.Hour, Secret: "test-secret"}

	return authservice.New(repo, noopActivity{}, cfg, logger.NewNop()), repo
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	as, _ := newService()

	u, token, err := as.Register(ctx, authservice.RegisterRequest{
		Email:    "jan@example.nl",
		Password: "hunter22",
		Name:     "Jan",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, models.RoleUser, u.Role)
	require.NotEqual(t, "hunter22", u.PasswordHash)

	logged, token2, err := as.Login(ctx, "jan@example.nl", "hunter22")
	require.NoError(t, err)
	require.NotEmpty(t, token2)
	require.Equal(t, u.ID, logged.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	as, _ := newService()

	req := authservice.RegisterRequest{Email: "jan@example.nl", Password: "hunter22", Name: "Jan"}

	_, _, err := as.Register(ctx, req)
	require.NoError(t, err)

	_, _, err = as.Register(ctx, req)
	require.ErrorIs(t, err, authservice.ErrEmailTaken)
}

func TestLoginFailuresIndistinguishable(t *testing.T) {
	ctx := context.Background()
	as, _ := newService()

	_, _, err := as.Register(ctx, authservice.RegisterRequest{
		Email:    "jan@example.nl",
		Password: "hunter22",
		Name:     "Jan",
	})
	require.NoError(t, err)

	// Wrong password and unknown email report the same error.
	_, _, errWrongPass := as.Login(ctx, "jan@example.nl", "wrong")
	_, _, errNoUser := as.Login(ctx, "nobody@example.nl", "hunter22")

	require.ErrorIs(t, errWrongPass, authservice.ErrInvalidCredentials)
	require.ErrorIs(t, errNoUser, authservice.ErrInvalidCredentials)
}

func TestVerifyRoundtrip(t *testing.T) {
	ctx := context.Background()
	as, _ := newService()

	u, token, err := as.Register(ctx, authservice.RegisterRequest{
		Email:    "jan@example.nl",
		Password: "hunter22",
		Name:     "Jan",
	})
	require.NoError(t, err)

	verified, err := as.Verify(ctx, token)
	require.NoError(t, err)
	require.Equal(t, u.ID, verified.ID)
	require.Equal(t, u.Email, verified.Email)
}

func TestVerifyGarbageToken(t *testing.T) {
	ctx := context.Background()
	as, _ := newService()

	_, err := as.Verify(ctx, "not-a-jwt")
	require.ErrorIs(t, err, authservice.ErrInvalidToken)

	_, err = as.Verify(ctx, "")
	require.ErrorIs(t, err, authservice.ErrInvalidToken)
}

func TestVerifyDeletedUser(t *testing.T) {
	ctx := context.Background()
	as, repo := newService()

	u, token, err := as.Register(ctx, authservice.RegisterRequest{
		Email:    "jan@example.nl",
		Password: "hunter22",
		Name:     "Jan",
	})
	require.NoError(t, err)

	delete(repo.users, u.ID)

	_, err = as.Verify(ctx, token)
	require.ErrorIs(t, err, authservice.ErrInvalidToken)
}

func TestAuthenticateCarriesRole(t *testing.T) {
	ctx := context.Background()
	as, repo := newService()

	_, token, err := as.Register(ctx, authservice.RegisterRequest{
		Email:    "jan@example.nl",
		Password: "hunter22",
		Name:     "Jan",
	})
	require.NoError(t, err)

	id, err := as.Authenticate(token)
	require.NoError(t, err)
	require.Equal(t, models.RoleUser, id.Role)
	require.Equal(t, "jan@example.nl", repo.users[id.UserID].Email)
}
