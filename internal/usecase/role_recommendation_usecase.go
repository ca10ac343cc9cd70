package usecase

import (
	"context"
	"errors"
	"sort"

	"skillmatch/internal/domain/matching"
	"skillmatch/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type RoleRecommendationUsecase interface {
	RecommendRoles(ctx context.Context, userID int64) ([]matching.RoleReadiness, error)
}

type RoleRecommendation struct {
	users     repository.UserRepository
	roles     repository.RoleRepository
	resources repository.ResourceRepository
	log       zerolog.Logger
}

func NewRoleRecommendationUsecase(users repository.UserRepository, roles repository.RoleRepository, resources repository.ResourceRepository, log zerolog.Logger) *RoleRecommendation {
	return &RoleRecommendation{users: users, roles: roles, resources: resources, log: log}
}

// RecommendRoles scores every role for the user, best fit first. An unknown
// user gets an empty list rather than an error.
func (u *RoleRecommendation) RecommendRoles(ctx context.Context, userID int64) ([]matching.RoleReadiness, error) {
	var user repository.User
	var roles []repository.Role

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = u.users.GetByID(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		roles, err = u.roles.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			u.log.Debug().Int64("user_id", userID).Msg("recommend roles: user not found")
			return []matching.RoleReadiness{}, nil
		}
		return nil, ErrInternal
	}

	lookup, err := prefetchResources(ctx, u.resources, roles...)
	if err != nil {
		return nil, ErrInternal
	}

	levels := user.Levels()
	out := make([]matching.RoleReadiness, 0, len(roles))
	for _, role := range roles {
		out = append(out, matching.ComputeReadiness(levels, toRoleRef(role), toRequirements(role.Requirements), lookup))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ReadinessScore > out[j].ReadinessScore
	})
	return out, nil
}
