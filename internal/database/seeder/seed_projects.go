package seeder

import (
	"context"
	"fmt"

	"skillmatch/internal/database"
)

type ProjectsSeeder struct{}

func (ProjectsSeeder) Name() string { return "projects" }

func (ProjectsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "projects", "title", "description", "domain", "difficulty_level", "github_repo_url"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, p := range projectSeeds {
		var projectID int64
		if err := tx.QueryRow(ctx,
			`INSERT INTO projects (title, description, domain, difficulty_level, github_repo_url)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (title) DO UPDATE
			 SET description = EXCLUDED.description, domain = EXCLUDED.domain,
			     difficulty_level = EXCLUDED.difficulty_level, github_repo_url = EXCLUDED.github_repo_url
			 RETURNING id`,
			p.Title, p.Description, p.Domain, p.Difficulty, p.Repo,
		).Scan(&projectID); err != nil {
			return fmt.Errorf("project %q: %w", p.Title, err)
		}

		for _, name := range p.Skills {
			if _, err := tx.Exec(ctx,
				`INSERT INTO project_skills (project_id, skill_id)
				 SELECT $1, s.id FROM skills s WHERE s.name = $2
				 ON CONFLICT (project_id, skill_id) DO NOTHING`,
				projectID, name,
			); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
