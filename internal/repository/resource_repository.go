package repository

import (
	"context"
	"database/sql"

	"skillmatch/internal/database"
)

type LearningResource struct {
	ID              int64
	SkillID         int64
	Title           string
	Type            string
	Provider        string
	Link            *string
	DifficultyLevel int
}

type ResourceRepository interface {
	FindBySkillIDs(ctx context.Context, skillIDs []int64) (map[int64][]LearningResource, error)
	List(ctx context.Context) ([]LearningResource, error)
}

type PostgresResourceRepository struct {
	db database.DB
}

func NewPostgresResourceRepository(db database.DB) *PostgresResourceRepository {
	return &PostgresResourceRepository{db: db}
}

const resourceColumns = `id, skill_id, title, COALESCE(type, ''), COALESCE(provider, ''), link, COALESCE(difficulty_level, 1)`

// FindBySkillIDs groups resources by skill. Skills without resources are absent
// from the map.
func (r *PostgresResourceRepository) FindBySkillIDs(ctx context.Context, skillIDs []int64) (map[int64][]LearningResource, error) {
	out := make(map[int64][]LearningResource)
	if len(skillIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+resourceColumns+`
		 FROM learning_resources
		 WHERE skill_id = ANY($1)
		 ORDER BY id ASC`,
		skillIDs,
	)
	if err != nil {
		return nil, err
	}
	items, err := scanResources(rows)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		out[it.SkillID] = append(out[it.SkillID], it)
	}
	return out, nil
}

func (r *PostgresResourceRepository) List(ctx context.Context) ([]LearningResource, error) {
	rows, err := r.db.Query(ctx, `SELECT `+resourceColumns+` FROM learning_resources ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	return scanResources(rows)
}

func scanResources(rows database.Rows) ([]LearningResource, error) {
	defer rows.Close()

	out := make([]LearningResource, 0)
	for rows.Next() {
		var it LearningResource
		var link sql.NullString
		if err := rows.Scan(&it.ID, &it.SkillID, &it.Title, &it.Type, &it.Provider, &link, &it.DifficultyLevel); err != nil {
			return nil, err
		}
		if link.Valid {
			v := link.String
			it.Link = &v
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
