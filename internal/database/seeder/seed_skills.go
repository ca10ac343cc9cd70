package seeder

import (
	"context"
	"fmt"

	"skillmatch/internal/database"
)

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "name", "category"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, it := range skillSeeds {
		if _, err := tx.Exec(ctx,
			`INSERT INTO skills (name, category) VALUES ($1, $2)
			 ON CONFLICT (name) DO UPDATE SET category = EXCLUDED.category`,
			it.Name, it.Category,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// ResourcesSeeder refreshes resource metadata on re-runs.
type ResourcesSeeder struct{}

func (ResourcesSeeder) Name() string { return "learning_resources" }

func (ResourcesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "learning_resources", "skill_id", "title", "type", "provider", "link", "difficulty_level"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, it := range resourceSeeds {
		var link *string
		if it.Link != "" {
			v := it.Link
			link = &v
		}
		affected, err := tx.Exec(ctx,
			`INSERT INTO learning_resources (skill_id, title, type, provider, link, difficulty_level)
			 SELECT s.id, $2, $3, $4, $5, $6 FROM skills s WHERE s.name = $1
			 ON CONFLICT (skill_id, title) DO UPDATE
			 SET type = EXCLUDED.type, provider = EXCLUDED.provider, link = EXCLUDED.link, difficulty_level = EXCLUDED.difficulty_level`,
			it.Skill, it.Title, it.Type, it.Provider, link, it.Difficulty,
		)
		if err != nil {
			return err
		}
		if affected == 0 {
			return fmt.Errorf("resource %q references unknown skill %q", it.Title, it.Skill)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
