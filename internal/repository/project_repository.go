package repository

import (
	"context"

	"skillmatch/internal/database"
)

type ProjectSkill struct {
	ProjectID int64
	SkillID   int64
	SkillName string
}

type Project struct {
	ID              int64
	Title           string
	Description     string
	Domain          string
	DifficultyLevel int
	GithubRepoURL   string
	RequiredSkills  []ProjectSkill
}

type ProjectRepository interface {
	List(ctx context.Context) ([]Project, error)
}

type PostgresProjectRepository struct {
	db database.DB
}

func NewPostgresProjectRepository(db database.DB) *PostgresProjectRepository {
	return &PostgresProjectRepository{db: db}
}

func (r *PostgresProjectRepository) List(ctx context.Context) ([]Project, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, COALESCE(description, ''), COALESCE(domain, ''),
		        COALESCE(difficulty_level, 1), COALESCE(github_repo_url, '')
		 FROM projects
		 ORDER BY id ASC`,
	)
	if err != nil {
		return nil, err
	}
	projects, err := scanProjects(rows)
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return projects, nil
	}

	skillRows, err := r.db.Query(ctx,
		`SELECT ps.project_id, ps.skill_id, s.name
		 FROM project_skills ps
		 JOIN skills s ON s.id = ps.skill_id
		 ORDER BY ps.project_id ASC, ps.id ASC`,
	)
	if err != nil {
		return nil, err
	}
	skills, err := scanProjectSkills(skillRows)
	if err != nil {
		return nil, err
	}

	idx := make(map[int64]int, len(projects))
	for i, p := range projects {
		idx[p.ID] = i
	}
	for _, s := range skills {
		i, ok := idx[s.ProjectID]
		if !ok {
			continue
		}
		projects[i].RequiredSkills = append(projects[i].RequiredSkills, s)
	}
	return projects, nil
}

func scanProjects(rows database.Rows) ([]Project, error) {
	defer rows.Close()

	out := make([]Project, 0)
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Domain, &p.DifficultyLevel, &p.GithubRepoURL); err != nil {
			return nil, err
		}
		p.RequiredSkills = []ProjectSkill{}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanProjectSkills(rows database.Rows) ([]ProjectSkill, error) {
	defer rows.Close()

	out := make([]ProjectSkill, 0)
	for rows.Next() {
		var s ProjectSkill
		if err := rows.Scan(&s.ProjectID, &s.SkillID, &s.SkillName); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
