package seeder

import (
	"context"
	"fmt"

	"skillmatch/internal/database"
)

type RolesSeeder struct{}

func (RolesSeeder) Name() string { return "job_roles" }

func (RolesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "job_skills", "job_role_id", "skill_id", "required_level", "importance_weight"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, role := range roleSeeds {
		var roleID int64
		if err := tx.QueryRow(ctx,
			`INSERT INTO job_roles (title, domain, description) VALUES ($1, $2, $3)
			 ON CONFLICT (title) DO UPDATE SET domain = EXCLUDED.domain, description = EXCLUDED.description
			 RETURNING id`,
			role.Title, role.Domain, role.Description,
		).Scan(&roleID); err != nil {
			return fmt.Errorf("role %q: %w", role.Title, err)
		}

		for _, req := range role.Requirements {
			affected, err := tx.Exec(ctx,
				`INSERT INTO job_skills (job_role_id, skill_id, required_level, importance_weight)
				 SELECT $1, s.id, $3, $4 FROM skills s WHERE s.name = $2
				 ON CONFLICT (job_role_id, skill_id) DO UPDATE
				 SET required_level = EXCLUDED.required_level, importance_weight = EXCLUDED.importance_weight`,
				roleID, req.Skill, req.Level, req.Weight,
			)
			if err != nil {
				return err
			}
			if affected == 0 {
				return fmt.Errorf("role %q references unknown skill %q", role.Title, req.Skill)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
