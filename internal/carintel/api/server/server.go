package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Vlok123/carintel/internal/carintel/domain/models"
	"github.com/Vlok123/carintel/internal/carintel/services/authservice"
	"github.com/Vlok123/carintel/internal/carintel/services/maintenanceservice"
	"github.com/Vlok123/carintel/internal/carintel/services/sketchservice"
	"github.com/Vlok123/carintel/internal/pkg/config"
	"github.com/Vlok123/carintel/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type Server struct {
	serv               *http.Server
	authService        AuthService
	sketchService      SketchService
	savedService       SavedService
	vehicleService     VehicleService
	contactService     ContactService
	maintenanceService MaintenanceService
}

type AuthService interface {
	Register(context.Context, authservice.RegisterRequest) (models.User, string, error)
	Login(ctx context.Context, email, password string) (models.User, string, error)
	Verify(ctx context.Context, token string) (models.User, error)
	Authenticate(token string) (authservice.Identity, error)
}

type SketchService interface {
	ListSketches(context.Context, int64) ([]models.SketchSummary, error)
	GetSketch(ctx context.Context, userID, id int64) (models.Sketch, error)
	SaveSketch(context.Context, sketchservice.SaveSketchRequest) (models.Sketch, error)
	UpdateSketch(context.Context, sketchservice.SaveSketchRequest) (time.Time, error)
	DeleteSketch(ctx context.Context, userID, id int64) error
}

type SavedService interface {
	ListSearches(context.Context, int64) ([]models.SavedSearch, error)
	SaveSearch(context.Context, models.SavedSearch) (models.SavedSearch, error)
	DeleteSearch(ctx context.Context, userID, id int64) error
	ListVehicles(context.Context, int64) ([]models.SavedVehicle, error)
	SaveVehicle(context.Context, models.SavedVehicle) (models.SavedVehicle, error)
	DeleteVehicle(ctx context.Context, userID, id int64) error
}

type VehicleService interface {
	Lookup(ctx context.Context, kenteken string) (models.Vehicle, error)
}

type ContactService interface {
	Submit(context.Context, models.ContactMessage) error
}

type MaintenanceService interface {
	EnsureAdmin(context.Context) error
	Seed(context.Context) (maintenanceservice.SeedResult, error)
	Cleanup(context.Context) (maintenanceservice.CleanupResult, error)
	Stats(context.Context) (maintenanceservice.Stats, error)
}

type Services struct {
	Auth        AuthService
	Sketches    SketchService
	Saved       SavedService
	Vehicles    VehicleService
	Contact     ContactService
	Maintenance MaintenanceService
}

func New(cfg config.Server, corsCfg config.CORS, svc Services, lg logger.Logger) *Server {
	var s Server

	s.authService = svc.Auth
	s.sketchService = svc.Sketches
	s.savedService = svc.Saved
	s.vehicleService = svc.Vehicles
	s.contactService = svc.Contact
	s.maintenanceService = svc.Maintenance

	r := chi.NewRouter()
	r.Use(loggingMiddleware(lg))
	r.Use(corsMiddleware(corsCfg))

	// Errors are JSON everywhere, including router-level misses.
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		handleError(w, errMethodNotAllowed, http.StatusMethodNotAllowed)
	})
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		handleError(w, errRouteNotFound, http.StatusNotFound)
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)
		r.Get("/auth/verify", s.handleVerify)
		r.Post("/contact", s.handleContact)
		r.Get("/vehicles/{kenteken}", s.handleVehicleLookup)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)

			r.Route("/sketches", func(r chi.Router) {
				r.Get("/", s.handleListSketches)
				r.Post("/", s.handleSaveSketch)
				r.Get("/{id}", s.handleGetSketch)
				r.Put("/{id}", s.handleUpdateSketch)
				r.Delete("/{id}", s.handleDeleteSketch)
			})

			r.Route("/saved/searches", func(r chi.Router) {
				r.Get("/", s.handleListSearches)
				r.Post("/", s.handleSaveSearch)
				r.Delete("/{id}", s.handleDeleteSearch)
			})

			r.Route("/saved/vehicles", func(r chi.Router) {
				r.Get("/", s.handleListSavedVehicles)
				r.Post("/", s.handleSaveVehicle)
				r.Delete("/{id}", s.handleDeleteSavedVehicle)
			})

			r.Group(func(r chi.Router) {
				r.Use(s.requireAdmin)

				r.Get("/admin/stats", s.handleAdminStats)
				r.Post("/admin/ensure-admin", s.handleEnsureAdmin)
				r.Post("/admin/seed", s.handleSeed)
				r.Post("/admin/cleanup", s.handleCleanup)
			})
		})
	})

	serv := &http.Server{ //nolint:exhaustruct
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	s.serv = serv

	return &s
}

// Handler exposes the routed handler. Used by tests.
func (s *Server) Handler() http.Handler {
	return s.serv.Handler
}

func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error)

	go func() {
		if err := s.serv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			close(errCh)
		}
	}()

	select {
	case <-ctx.Done():
		ctxS, cancel := context.WithTimeout(context.Background(), time.Second*5) //nolint:gomnd
		defer cancel()

		if err := s.Shutdown(ctxS); err != nil { //nolint:contextcheck
			return fmt.Errorf("context error: %w server error %w", ctxS.Err(), err)
		}

		if !errors.Is(ctx.Err(), context.Canceled) {
			return fmt.Errorf("context cancelled error: %w", ctx.Err())
		}

		return nil
	case err := <-errCh:
		return fmt.Errorf("listen and serve error: %w", err)
	}
}

func (s *Server) Shutdown(ctx context.Context) error {
	ctxS, cancel := context.WithTimeout(ctx, s.serv.IdleTimeout)
	defer cancel()

	if err := s.serv.Shutdown(ctxS); err != nil {
		return fmt.Errorf("shutdown server error: %w", err)
	}

	return nil
}
