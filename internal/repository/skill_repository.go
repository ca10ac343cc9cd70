package repository

import (
	"context"
	"errors"

	"skillmatch/internal/database"
)

var ErrSkillNotFound = errors.New("skill not found")

type Skill struct {
	ID       int64
	Name     string
	Category string
}

type SkillRepository interface {
	GetByID(ctx context.Context, id int64) (Skill, error)
	List(ctx context.Context) ([]Skill, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) GetByID(ctx context.Context, id int64) (Skill, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, COALESCE(category, '') FROM skills WHERE id = $1`, id)

	var s Skill
	if err := row.Scan(&s.ID, &s.Name, &s.Category); err != nil {
		if database.IsNoRows(err) {
			return Skill{}, ErrSkillNotFound
		}
		return Skill{}, err
	}
	return s, nil
}

func (r *PostgresSkillRepository) List(ctx context.Context) ([]Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, COALESCE(category, '') FROM skills ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Skill, 0)
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
