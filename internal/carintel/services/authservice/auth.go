package authservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/Vlok123/carintel/internal/carintel/domain/models"
	"github.com/Vlok123/carintel/internal/carintel/repository/logrepo"
	"github.com/Vlok123/carintel/internal/carintel/repository/userrepo"
	"github.com/Vlok123/carintel/internal/pkg/config"
	"github.com/Vlok123/carintel/internal/pkg/jwtauth"
	"github.com/Vlok123/carintel/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
)

type Repository interface {
	CreateUser(context.Context, models.User) (models.User, error)
	GetUserByEmail(context.Context, string) (models.User, error)
	GetUserByID(context.Context, int64) (models.User, error)
}

type ActivityRecorder interface {
	RecordActivity(ctx context.Context, userID int64, action string) error
}

// Identity is what a verified token resolves to.
type Identity struct {
	UserID int64
	Role   string
}

type AuthService struct {
	userRepo Repository
	activity ActivityRecorder
	cfg      config.Auth
	lg       logger.Logger
}

func New(userRepo Repository, activity ActivityRecorder, cfg config.Auth, lg logger.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		activity: activity,
		cfg:      cfg,
		lg:       lg,
	}
}

func (as *AuthService) Register(ctx context.Context, req RegisterRequest) (models.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, "", fmt.Errorf("generate from password error: %w", err)
	}

	u := models.User{ //nolint:exhaustruct
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}

	u, err = as.userRepo.CreateUser(ctx, u)
	if err != nil {
		if errors.Is(err, userrepo.ErrAlreadyExists) {
			return models.User{}, "", ErrEmailTaken
		}

		return models.User{}, "", fmt.Errorf("create user error: %w", err)
	}

	token, err := jwtauth.GetToken(u, as.cfg.TTL, as.cfg.Secret)
	if err != nil {
		return models.User{}, "", fmt.Errorf("can't get token error: %w", err)
	}

	if err := as.activity.RecordActivity(ctx, u.ID, logrepo.ActionRegister); err != nil {
		as.lg.Errorf("record activity error: %s", err.Error())
	}

	return u, token, nil
}

// Login verifies email+password. Unknown email and wrong password are
// reported identically.
func (as *AuthService) Login(ctx context.Context, email, password string) (models.User, string, error) {
	u, err := as.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userrepo.ErrNotFound) {
			return models.User{}, "", ErrInvalidCredentials
		}

		return models.User{}, "", fmt.Errorf("get user error: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := jwtauth.GetToken(u, as.cfg.TTL, as.cfg.Secret)
	if err != nil {
		return models.User{}, "", fmt.Errorf("can't get token error: %w", err)
	}

	if err := as.activity.RecordActivity(ctx, u.ID, logrepo.ActionLogin); err != nil {
		as.lg.Errorf("record activity error: %s", err.Error())
	}

	return u, token, nil
}

// Authenticate resolves a bearer token to an identity without touching
// the database. Any token failure comes back as ErrInvalidToken.
func (as *AuthService) Authenticate(token string) (Identity, error) {
	claims, err := jwtauth.ValidateToken(token, as.cfg.Secret)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}

	return Identity{UserID: claims.UserID, Role: claims.Role}, nil
}

// Verify resolves a token to its user. A syntactically invalid or
// expired token yields ErrInvalidToken, never a panic or 500.
func (as *AuthService) Verify(ctx context.Context, token string) (models.User, error) {
	id, err := as.Authenticate(token)
	if err != nil {
		return models.User{}, ErrInvalidToken
	}

	u, err := as.userRepo.GetUserByID(ctx, id.UserID)
	if err != nil {
		if errors.Is(err, userrepo.ErrNotFound) {
			return models.User{}, ErrInvalidToken
		}

		return models.User{}, fmt.Errorf("get user error: %w", err)
	}

	return u, nil
}
