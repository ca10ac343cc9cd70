package usecase

import (
	"context"
	"errors"

	"skillmatch/internal/domain/matching"
	"skillmatch/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type ProjectRecommendationUsecase interface {
	RecommendProjects(ctx context.Context, userID int64) ([]matching.ProjectMatch, error)
}

type ProjectRecommendation struct {
	users    repository.UserRepository
	projects repository.ProjectRepository
	log      zerolog.Logger
}

func NewProjectRecommendationUsecase(users repository.UserRepository, projects repository.ProjectRepository, log zerolog.Logger) *ProjectRecommendation {
	return &ProjectRecommendation{users: users, projects: projects, log: log}
}

func (u *ProjectRecommendation) RecommendProjects(ctx context.Context, userID int64) ([]matching.ProjectMatch, error) {
	var user repository.User
	var items []repository.Project

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = u.users.GetByID(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = u.projects.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			u.log.Debug().Int64("user_id", userID).Msg("recommend projects: user not found")
			return []matching.ProjectMatch{}, nil
		}
		return nil, ErrInternal
	}

	return matching.MatchProjects(user.Levels(), toProjects(items)), nil
}
