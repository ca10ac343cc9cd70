package repository

import (
	"context"
	"errors"

	"skillmatch/internal/database"
)

var ErrUserSkillNotFound = errors.New("user skill not found")

type UserSkill struct {
	ID               int64
	UserID           int64
	SkillID          int64
	SkillName        string
	ProficiencyLevel int
}

type UserSkillRepository interface {
	FindByUserID(ctx context.Context, userID int64) ([]UserSkill, error)
	Upsert(ctx context.Context, us UserSkill) (UserSkill, error)
	Delete(ctx context.Context, userID int64, skillID int64) error
}

type PostgresUserSkillRepository struct {
	db database.DB
}

func NewPostgresUserSkillRepository(db database.DB) *PostgresUserSkillRepository {
	return &PostgresUserSkillRepository{db: db}
}

const userSkillQuery = `SELECT us.id, us.user_id, us.skill_id, s.name, COALESCE(us.proficiency_level, 0)
 FROM user_skills us
 JOIN skills s ON s.id = us.skill_id`

func (r *PostgresUserSkillRepository) FindByUserID(ctx context.Context, userID int64) ([]UserSkill, error) {
	rows, err := r.db.Query(ctx, userSkillQuery+` WHERE us.user_id = $1 ORDER BY us.skill_id ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]UserSkill, 0)
	for rows.Next() {
		var us UserSkill
		if err := rows.Scan(&us.ID, &us.UserID, &us.SkillID, &us.SkillName, &us.ProficiencyLevel); err != nil {
			return nil, err
		}
		out = append(out, us)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Upsert keeps at most one row per (user, skill); a second write replaces the level.
func (r *PostgresUserSkillRepository) Upsert(ctx context.Context, us UserSkill) (UserSkill, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO user_skills (user_id, skill_id, proficiency_level)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, skill_id) DO UPDATE SET proficiency_level = EXCLUDED.proficiency_level
		 RETURNING id`,
		us.UserID, us.SkillID, us.ProficiencyLevel,
	)
	if err := row.Scan(&us.ID); err != nil {
		return UserSkill{}, err
	}

	saved := r.db.QueryRow(ctx, userSkillQuery+` WHERE us.id = $1`, us.ID)
	var out UserSkill
	if err := saved.Scan(&out.ID, &out.UserID, &out.SkillID, &out.SkillName, &out.ProficiencyLevel); err != nil {
		if database.IsNoRows(err) {
			return UserSkill{}, ErrUserSkillNotFound
		}
		return UserSkill{}, err
	}
	return out, nil
}

func (r *PostgresUserSkillRepository) Delete(ctx context.Context, userID int64, skillID int64) error {
	rowsAffected, err := r.db.Exec(ctx,
		`DELETE FROM user_skills WHERE user_id = $1 AND skill_id = $2`,
		userID, skillID,
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrUserSkillNotFound
	}
	return nil
}
