package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
	ErrInternal     = errors.New("internal error")
)

var (
	ErrUserNotFound      = fmt.Errorf("user %w", ErrNotFound)
	ErrRoleNotFound      = fmt.Errorf("role %w", ErrNotFound)
	ErrSkillNotFound     = fmt.Errorf("skill %w", ErrNotFound)
	ErrUserSkillNotFound = fmt.Errorf("user skill %w", ErrNotFound)

	ErrEmailTaken = fmt.Errorf("email already registered: %w", ErrConflict)

	ErrInvalidProficiencyLevel = fmt.Errorf("proficiency level must be between 0 and 5: %w", ErrInvalidInput)
	ErrInvalidEmail            = fmt.Errorf("email is required: %w", ErrInvalidInput)
)
