package app

import (
	"context"
	"errors"
	"time"

	"skillmatch/internal/config"
	"skillmatch/internal/database"
	dbpostgres "skillmatch/internal/database/postgres"
	"skillmatch/internal/infrastructure/cache"
	"skillmatch/internal/repository"
	"skillmatch/internal/usecase"

	"github.com/rs/zerolog"
)

const connectTimeout = 10 * time.Second

type Repositories struct {
	Users      repository.UserRepository
	UserSkills repository.UserSkillRepository
	Roles      repository.RoleRepository
	Skills     repository.SkillRepository
	Resources  repository.ResourceRepository
	Projects   repository.ProjectRepository
}

type Usecases struct {
	Roles       *usecase.RoleRecommendation
	Projects    *usecase.ProjectRecommendation
	Simulation  *usecase.Simulation
	Assistant   *usecase.Assistant
	Catalog     *usecase.Catalog
	UserProfile *usecase.UserProfile
}

type Container struct {
	Config config.Config
	Log    zerolog.Logger
	DB     database.DB
	Redis  *cache.Redis

	Repos    Repositories
	Usecases Usecases
}

func NewContainer(cfg config.Config, log zerolog.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	rdb := cache.NewRedis(ctx, cfg.Redis, log)

	c := &Container{Config: cfg, Log: log, DB: db, Redis: rdb}
	c.Repos = NewRepositories(db)
	c.Usecases = NewUsecases(c.Repos, log)
	return c, nil
}

func NewRepositories(db database.DB) Repositories {
	return Repositories{
		Users:      repository.NewPostgresUserRepository(db),
		UserSkills: repository.NewPostgresUserSkillRepository(db),
		Roles:      repository.NewPostgresRoleRepository(db),
		Skills:     repository.NewPostgresSkillRepository(db),
		Resources:  repository.NewPostgresResourceRepository(db),
		Projects:   repository.NewPostgresProjectRepository(db),
	}
}

func NewUsecases(r Repositories, log zerolog.Logger) Usecases {
	return Usecases{
		Roles:       usecase.NewRoleRecommendationUsecase(r.Users, r.Roles, r.Resources, log),
		Projects:    usecase.NewProjectRecommendationUsecase(r.Users, r.Projects, log),
		Simulation:  usecase.NewSimulationUsecase(r.Users, r.Roles, r.Skills, r.Resources),
		Assistant:   usecase.NewAssistantUsecase(r.Users, r.Roles, r.Resources, log),
		Catalog:     usecase.NewCatalogUsecase(r.Users, r.Roles, r.Skills, r.Resources),
		UserProfile: usecase.NewUserProfileUsecase(r.Users, r.Skills, r.UserSkills),
	}
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Redis != nil {
		errs = append(errs, c.Redis.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
