package repository

import (
	"context"
	"database/sql"
	"errors"

	"skillmatch/internal/database"
)

var ErrUserNotFound = errors.New("user not found")

type User struct {
	ID               int64
	FullName         string
	Email            string
	CurrentRoleTitle string
	TargetRoleID     *int64
	Skills           []UserSkill
}

// Levels flattens the user's skills into the map the matching engine reads.
func (u User) Levels() map[int64]int {
	out := make(map[int64]int, len(u.Skills))
	for _, s := range u.Skills {
		out[s.SkillID] = s.ProficiencyLevel
	}
	return out
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Create(ctx context.Context, u User) (User, error)
	Update(ctx context.Context, u User) (User, error)
}

type PostgresUserRepository struct {
	db     database.DB
	skills UserSkillRepository
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db, skills: NewPostgresUserSkillRepository(db)}
}

const userColumns = `id, COALESCE(full_name, ''), email, COALESCE(current_role_title, ''), target_role_id`

func (r *PostgresUserRepository) GetByID(ctx context.Context, id int64) (User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *PostgresUserRepository) Create(ctx context.Context, u User) (User, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO users (full_name, email, current_role_title)
		 VALUES ($1, $2, NULLIF($3, ''))
		 RETURNING id`,
		u.FullName, u.Email, u.CurrentRoleTitle,
	)
	var id int64
	if err := row.Scan(&id); err != nil {
		return User{}, err
	}
	return r.GetByID(ctx, id)
}

// Update writes every profile column of u; callers merge partial changes first.
func (r *PostgresUserRepository) Update(ctx context.Context, u User) (User, error) {
	rowsAffected, err := r.db.Exec(ctx,
		`UPDATE users
		 SET full_name = $2, current_role_title = NULLIF($3, ''), target_role_id = $4
		 WHERE id = $1`,
		u.ID, u.FullName, u.CurrentRoleTitle, u.TargetRoleID,
	)
	if err != nil {
		return User{}, err
	}
	if rowsAffected == 0 {
		return User{}, ErrUserNotFound
	}
	return r.GetByID(ctx, u.ID)
}

func (r *PostgresUserRepository) getOne(ctx context.Context, query string, arg any) (User, error) {
	row := r.db.QueryRow(ctx, query, arg)

	var u User
	var target sql.NullInt64
	if err := row.Scan(&u.ID, &u.FullName, &u.Email, &u.CurrentRoleTitle, &target); err != nil {
		if database.IsNoRows(err) {
			return User{}, ErrUserNotFound
		}
		return User{}, err
	}
	if target.Valid {
		v := target.Int64
		u.TargetRoleID = &v
	}

	skills, err := r.skills.FindByUserID(ctx, u.ID)
	if err != nil {
		return User{}, err
	}
	u.Skills = skills
	return u, nil
}
