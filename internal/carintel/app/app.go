package app

import (
	"context"
	"fmt"
	"time"

	"github.com/Vlok123/carintel/internal/carintel/api/server"
	contactpg "github.com/Vlok123/carintel/internal/carintel/repository/contactrepo/postgres"
	logpg "github.com/Vlok123/carintel/internal/carintel/repository/logrepo/postgres"
	savedpg "github.com/Vlok123/carintel/internal/carintel/repository/savedrepo/postgres"
	sketchpg "github.com/Vlok123/carintel/internal/carintel/repository/sketchrepo/postgres"
	userpg "github.com/Vlok123/carintel/internal/carintel/repository/userrepo/postgres"
	vcredis "github.com/Vlok123/carintel/internal/carintel/repository/vehiclecache/redis"
	"github.com/Vlok123/carintel/internal/carintel/services/authservice"
	"github.com/Vlok123/carintel/internal/carintel/services/contactservice"
	"github.com/Vlok123/carintel/internal/carintel/services/maintenanceservice"
	"github.com/Vlok123/carintel/internal/carintel/services/savedservice"
	"github.com/Vlok123/carintel/internal/carintel/services/sketchservice"
	"github.com/Vlok123/carintel/internal/carintel/services/vehicleservice"
	"github.com/Vlok123/carintel/internal/pkg/config"
	"github.com/Vlok123/carintel/internal/pkg/mailer"
	"github.com/Vlok123/carintel/internal/pkg/pgtools"
	"github.com/Vlok123/carintel/pkg/logger"
)

type Server interface {
	Start(context.Context) error
	Shutdown(context.Context) error
}

type CarIntelApp struct {
	s   Server
	lg  logger.Logger
	cfg config.Config
}

func New(ctx context.Context, cfg config.Config) (CarIntelApp, error) {
	lg, err := logger.New(cfg.Logger)
	if err != nil {
		return CarIntelApp{}, fmt.Errorf("can't get logger error: %w", err)
	}

	db, err := pgtools.Connect(ctx, pgtools.ConnString(cfg.PostgresDB))
	if err != nil {
		return CarIntelApp{}, fmt.Errorf("connect to db error: %w", err)
	}

	if err := pgtools.ApplyMigration(cfg.PostgresDB); err != nil {
		return CarIntelApp{}, fmt.Errorf("apply migration error: %w", err)
	}

	userRepo := userpg.New(db)
	sketchRepo := sketchpg.New(db)
	savedRepo := savedpg.New(db)
	logRepo := logpg.New(db)
	contactRepo := contactpg.New(db)

	vehicleCache, err := vcredis.New(ctx, cfg.RedisCache)
	if err != nil {
		return CarIntelApp{}, fmt.Errorf("redis vehicle cache initializing error: %w", err)
	}

	smtpMailer, err := mailer.New(cfg.SMTP)
	if err != nil {
		return CarIntelApp{}, fmt.Errorf("mailer initializing error: %w", err)
	}

	authService := authservice.New(userRepo, logRepo, cfg.Auth, lg)
	sketchService := sketchservice.New(sketchRepo, logRepo, lg)
	savedService := savedservice.New(savedRepo)
	vehicleService := vehicleservice.New(vehicleservice.NewRDWClient(cfg.RDW), vehicleCache, logRepo, lg)
	contactService := contactservice.New(smtpMailer, contactRepo, cfg.SMTP, lg)
	maintenanceService := maintenanceservice.New(userRepo, sketchRepo, savedRepo, logRepo, contactRepo, cfg.Admin, lg)

	// The admin account comes from configuration, so a fresh database
	// gets its admin without a manual maintenance call.
	if err := maintenanceService.EnsureAdmin(ctx); err != nil {
		lg.Errorf("ensure admin error: %s", err.Error())
	}

	s := server.New(cfg.Server, cfg.CORS, server.Services{
		Auth:        authService,
		Sketches:    sketchService,
		Saved:       savedService,
		Vehicles:    vehicleService,
		Contact:     contactService,
		Maintenance: maintenanceService,
	}, lg)

	return CarIntelApp{
		s:   s,
		lg:  lg,
		cfg: cfg,
	}, nil
}

func (ca *CarIntelApp) Run(ctx context.Context) {
	ca.lg.Infof("STARTED SERVER ON %s", ca.cfg.Server.Addr)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		if err := ca.s.Start(ctx); err != nil {
			ca.lg.Errorf("server start error: %s", err.Error())
			cancel()
		}
	}()

	<-ctx.Done()

	ctxS, cancel := context.WithTimeout(context.Background(), time.Second*5) //nolint:gomnd
	defer cancel()

	if err := ca.Stop(ctxS); err != nil { //nolint:contextcheck
		ca.lg.Errorf("server shutdown error: %s", err.Error())
	}
}

func (ca *CarIntelApp) Stop(ctx context.Context) error {
	if err := ca.s.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	ca.lg.Info("Shutdowned successfully")

	return nil
}
