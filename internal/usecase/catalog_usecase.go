package usecase

import (
	"context"
	"errors"

	"skillmatch/internal/domain/matching"
	"skillmatch/internal/repository"
)

type CatalogUsecase interface {
	ListRoles(ctx context.Context) ([]repository.Role, error)
	GetRole(ctx context.Context, roleID int64) (repository.Role, error)
	ListSkills(ctx context.Context) ([]repository.Skill, error)
	ListResources(ctx context.Context) ([]repository.LearningResource, error)
	ComputeReadiness(ctx context.Context, userID, roleID int64) (matching.RoleReadiness, error)
}

type Catalog struct {
	users     repository.UserRepository
	roles     repository.RoleRepository
	skills    repository.SkillRepository
	resources repository.ResourceRepository
}

func NewCatalogUsecase(users repository.UserRepository, roles repository.RoleRepository, skills repository.SkillRepository, resources repository.ResourceRepository) *Catalog {
	return &Catalog{users: users, roles: roles, skills: skills, resources: resources}
}

func (u *Catalog) ListRoles(ctx context.Context) ([]repository.Role, error) {
	roles, err := u.roles.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return roles, nil
}

func (u *Catalog) GetRole(ctx context.Context, roleID int64) (repository.Role, error) {
	role, err := u.roles.GetByID(ctx, roleID)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return repository.Role{}, ErrRoleNotFound
		}
		return repository.Role{}, ErrInternal
	}
	return role, nil
}

func (u *Catalog) ListSkills(ctx context.Context) ([]repository.Skill, error) {
	skills, err := u.skills.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return skills, nil
}

func (u *Catalog) ListResources(ctx context.Context) ([]repository.LearningResource, error) {
	items, err := u.resources.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Catalog) ComputeReadiness(ctx context.Context, userID, roleID int64) (matching.RoleReadiness, error) {
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return matching.RoleReadiness{}, ErrUserNotFound
		}
		return matching.RoleReadiness{}, ErrInternal
	}

	role, err := u.GetRole(ctx, roleID)
	if err != nil {
		return matching.RoleReadiness{}, err
	}

	lookup, err := prefetchResources(ctx, u.resources, role)
	if err != nil {
		return matching.RoleReadiness{}, ErrInternal
	}
	return matching.ComputeReadiness(user.Levels(), toRoleRef(role), toRequirements(role.Requirements), lookup), nil
}
