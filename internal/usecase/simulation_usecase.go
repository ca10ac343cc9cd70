package usecase

import (
	"context"
	"errors"

	"skillmatch/internal/domain/matching"
	"skillmatch/internal/repository"
)

type SimulationInput struct {
	UserID      int64
	RoleID      int64
	SkillID     int64
	TargetLevel int
}

type SimulationResult struct {
	CurrentReadiness float64
	NewReadiness     float64
	Improvement      float64
	SkillSimulated   string
}

type SimulationUsecase interface {
	Simulate(ctx context.Context, in SimulationInput) (SimulationResult, error)
}

type Simulation struct {
	users     repository.UserRepository
	roles     repository.RoleRepository
	skills    repository.SkillRepository
	resources repository.ResourceRepository
}

func NewSimulationUsecase(users repository.UserRepository, roles repository.RoleRepository, skills repository.SkillRepository, resources repository.ResourceRepository) *Simulation {
	return &Simulation{users: users, roles: roles, skills: skills, resources: resources}
}

// Simulate reports how readiness for a role would move if one skill were at
// TargetLevel. TargetLevel is passed through as given; negative values are
// treated as 0 by the engine.
func (u *Simulation) Simulate(ctx context.Context, in SimulationInput) (SimulationResult, error) {
	user, err := u.users.GetByID(ctx, in.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return SimulationResult{}, ErrUserNotFound
		}
		return SimulationResult{}, ErrInternal
	}

	role, err := u.roles.GetByID(ctx, in.RoleID)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return SimulationResult{}, ErrRoleNotFound
		}
		return SimulationResult{}, ErrInternal
	}

	skill, err := u.skills.GetByID(ctx, in.SkillID)
	if err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return SimulationResult{}, ErrSkillNotFound
		}
		return SimulationResult{}, ErrInternal
	}

	lookup, err := prefetchResources(ctx, u.resources, role)
	if err != nil {
		return SimulationResult{}, ErrInternal
	}

	res := matching.Simulate(user.Levels(), toRoleRef(role), toRequirements(role.Requirements), lookup, skill.ID, in.TargetLevel)
	return SimulationResult{
		CurrentReadiness: res.CurrentReadiness,
		NewReadiness:     res.NewReadiness,
		Improvement:      res.Improvement,
		SkillSimulated:   skill.Name,
	}, nil
}
