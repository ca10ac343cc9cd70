package seeder

import (
	"context"
	"fmt"

	"skillmatch/internal/database"
)

type DemoUserSeeder struct{}

func (DemoUserSeeder) Name() string { return "demo_user" }

func (DemoUserSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "users", "id", "full_name", "email", "current_role_title", "target_role_id"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	var userID int64
	if err := tx.QueryRow(ctx,
		`INSERT INTO users (full_name, email, current_role_title) VALUES ($1, $2, $3)
		 ON CONFLICT (email) DO UPDATE SET full_name = EXCLUDED.full_name
		 RETURNING id`,
		"Alex Chen", demoUserEmail, "Junior Developer",
	).Scan(&userID); err != nil {
		return err
	}

	for _, it := range demoUserSkills {
		if _, err := tx.Exec(ctx,
			`INSERT INTO user_skills (user_id, skill_id, proficiency_level)
			 SELECT $1, s.id, $3 FROM skills s WHERE s.name = $2
			 ON CONFLICT (user_id, skill_id) DO NOTHING`,
			userID, it.Skill, it.Level,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
