package app

import (
	"context"
	"errors"
	"time"

	"talent-match/internal/config"
	"talent-match/internal/database"
	dbpostgres "talent-match/internal/database/postgres"
	"talent-match/internal/infrastructure/cache"
	"talent-match/internal/pkg/jwt"
	"talent-match/internal/pkg/metrics"
	"talent-match/internal/repository"
	"talent-match/internal/usecase"
	"talent-match/internal/ws"

	"go.uber.org/zap"
)

const connectTimeout = 10 * time.Second

type Repositories struct {
	Users        *repository.PostgresUserRepository
	JobOffers    *repository.PostgresJobOfferRepository
	Applications *repository.PostgresApplicationRepository
	Reviews      *repository.PostgresReviewRepository
	Records      *repository.PostgresRecordRepository
	Candidates   *repository.PostgresCandidateRepository
	Objectives   *repository.PostgresObjectiveRepository
}

type Usecases struct {
	Auth         *usecase.Auth
	HR           *usecase.HR
	JobOffers    *usecase.JobOffers
	Matching     *usecase.Matching
	Reviews      *usecase.Reviews
	Employee     *usecase.Employee
	Applications *usecase.Applications
	Objectives   *usecase.Objectives
}

type Container struct {
	Config  config.Config
	Logger  *zap.Logger
	DB      database.DB
	Cache   *cache.Redis
	Metrics *metrics.Manager
	Hub     *ws.Hub
	JWT     jwt.Service

	Repos    Repositories
	Usecases Usecases
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	return Assemble(cfg, logger, db, cache.NewRedis(cfg.Redis, logger), metrics.Default()), nil
}

// Assemble wires repositories and usecases over already opened stores.
func Assemble(cfg config.Config, logger *zap.Logger, db database.DB, rc *cache.Redis, m *metrics.Manager) *Container {
	hub := ws.NewHub(logger, m)
	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	repos := Repositories{
		Users:        repository.NewPostgresUserRepository(db),
		JobOffers:    repository.NewPostgresJobOfferRepository(db),
		Applications: repository.NewPostgresApplicationRepository(db),
		Reviews:      repository.NewPostgresReviewRepository(db),
		Records:      repository.NewPostgresRecordRepository(db),
		Candidates:   repository.NewPostgresCandidateRepository(db),
		Objectives:   repository.NewPostgresObjectiveRepository(db),
	}

	ucs := Usecases{
		Auth:         usecase.NewAuthUsecase(repos.Users, jwtSvc),
		HR:           usecase.NewHRUsecase(repos.Users, repos.JobOffers, repos.Applications, rc, hub, logger),
		JobOffers:    usecase.NewJobOfferUsecase(repos.JobOffers, hub, logger),
		Matching:     usecase.NewMatchingUsecase(repos.JobOffers, repos.Candidates, rc, m, logger, cfg.Matching),
		Reviews:      usecase.NewReviewUsecase(repos.Reviews, repos.Users, rc, m, logger),
		Employee:     usecase.NewEmployeeUsecase(repos.Users, repos.Records, repos.Reviews, repos.JobOffers, rc, logger),
		Applications: usecase.NewApplicationUsecase(repos.Applications, repos.JobOffers, repos.Candidates, hub, m, logger),
		Objectives:   usecase.NewObjectiveUsecase(repos.Objectives, repos.Users, hub, logger),
	}

	return &Container{
		Config:   cfg,
		Logger:   logger,
		DB:       db,
		Cache:    rc,
		Metrics:  m,
		Hub:      hub,
		JWT:      jwtSvc,
		Repos:    repos,
		Usecases: ucs,
	}
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Hub != nil {
		c.Hub.Stop()
	}
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
