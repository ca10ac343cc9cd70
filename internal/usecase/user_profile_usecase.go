package usecase

import (
	"context"
	"errors"
	"strings"

	"skillmatch/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
)

type UpsertSkillInput struct {
	SkillID          int64
	ProficiencyLevel int
}

type CreateUserInput struct {
	FullName         string
	Email            string
	CurrentRoleTitle string
}

// UpdateUserInput carries optional changes. A nil field, or an empty FullName,
// leaves the stored value alone.
type UpdateUserInput struct {
	FullName         *string
	CurrentRoleTitle *string
	TargetRoleID     *int64
}

type UserProfileUsecase interface {
	CreateUser(ctx context.Context, in CreateUserInput) (repository.User, error)
	GetUser(ctx context.Context, userID int64) (repository.User, error)
	GetUserByEmail(ctx context.Context, email string) (repository.User, error)
	UpdateUser(ctx context.Context, userID int64, in UpdateUserInput) (repository.User, error)
	UpsertSkill(ctx context.Context, userID int64, in UpsertSkillInput) (repository.UserSkill, error)
	RemoveSkill(ctx context.Context, userID, skillID int64) error
}

type UserProfile struct {
	users      repository.UserRepository
	skills     repository.SkillRepository
	userSkills repository.UserSkillRepository
}

func NewUserProfileUsecase(users repository.UserRepository, skills repository.SkillRepository, userSkills repository.UserSkillRepository) *UserProfile {
	return &UserProfile{users: users, skills: skills, userSkills: userSkills}
}

func (u *UserProfile) GetUser(ctx context.Context, userID int64) (repository.User, error) {
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return repository.User{}, ErrUserNotFound
		}
		return repository.User{}, ErrInternal
	}
	return user, nil
}

func (u *UserProfile) CreateUser(ctx context.Context, in CreateUserInput) (repository.User, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return repository.User{}, ErrInvalidEmail
	}

	created, err := u.users.Create(ctx, repository.User{
		FullName:         strings.TrimSpace(in.FullName),
		Email:            email,
		CurrentRoleTitle: in.CurrentRoleTitle,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return repository.User{}, ErrEmailTaken
		}
		return repository.User{}, ErrInternal
	}
	return created, nil
}

func (u *UserProfile) GetUserByEmail(ctx context.Context, email string) (repository.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return repository.User{}, ErrInvalidEmail
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return repository.User{}, ErrUserNotFound
		}
		return repository.User{}, ErrInternal
	}
	return user, nil
}

func (u *UserProfile) UpdateUser(ctx context.Context, userID int64, in UpdateUserInput) (repository.User, error) {
	user, err := u.GetUser(ctx, userID)
	if err != nil {
		return repository.User{}, err
	}

	if in.FullName != nil && *in.FullName != "" {
		user.FullName = *in.FullName
	}
	if in.CurrentRoleTitle != nil {
		user.CurrentRoleTitle = *in.CurrentRoleTitle
	}
	if in.TargetRoleID != nil {
		v := *in.TargetRoleID
		user.TargetRoleID = &v
	}

	saved, err := u.users.Update(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			return repository.User{}, ErrUserNotFound
		case isForeignKeyViolation(err):
			return repository.User{}, ErrRoleNotFound
		}
		return repository.User{}, ErrInternal
	}
	return saved, nil
}

// UpsertSkill sets the user's level for a skill, creating the entry on first
// write. Level 0 is kept as an explicit "absent" marker.
func (u *UserProfile) UpsertSkill(ctx context.Context, userID int64, in UpsertSkillInput) (repository.UserSkill, error) {
	if in.SkillID <= 0 {
		return repository.UserSkill{}, ErrInvalidInput
	}
	if !isValidProficiency(in.ProficiencyLevel) {
		return repository.UserSkill{}, ErrInvalidProficiencyLevel
	}

	if _, err := u.GetUser(ctx, userID); err != nil {
		return repository.UserSkill{}, err
	}

	if _, err := u.skills.GetByID(ctx, in.SkillID); err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return repository.UserSkill{}, ErrSkillNotFound
		}
		return repository.UserSkill{}, ErrInternal
	}

	saved, err := u.userSkills.Upsert(ctx, repository.UserSkill{
		UserID:           userID,
		SkillID:          in.SkillID,
		ProficiencyLevel: in.ProficiencyLevel,
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.UserSkill{}, ErrSkillNotFound
		}
		return repository.UserSkill{}, ErrInternal
	}
	return saved, nil
}

func (u *UserProfile) RemoveSkill(ctx context.Context, userID, skillID int64) error {
	if skillID <= 0 {
		return ErrInvalidInput
	}
	if err := u.userSkills.Delete(ctx, userID, skillID); err != nil {
		if errors.Is(err, repository.ErrUserSkillNotFound) {
			return ErrUserSkillNotFound
		}
		return ErrInternal
	}
	return nil
}

func isValidProficiency(v int) bool {
	return v >= 0 && v <= 5
}

func isForeignKeyViolation(err error) bool {
	return hasPgCode(err, "23503")
}

func isUniqueViolation(err error) bool {
	return hasPgCode(err, "23505")
}

func hasPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}
