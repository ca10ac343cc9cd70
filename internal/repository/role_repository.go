package repository

import (
	"context"
	"errors"

	"skillmatch/internal/database"
)

var ErrRoleNotFound = errors.New("role not found")

type Requirement struct {
	ID               int64
	RoleID           int64
	SkillID          int64
	SkillName        string
	SkillCategory    string
	RequiredLevel    int
	ImportanceWeight float64
}

type Role struct {
	ID           int64
	Title        string
	Domain       string
	Description  string
	Requirements []Requirement
}

type RoleRepository interface {
	GetByID(ctx context.Context, id int64) (Role, error)
	List(ctx context.Context) ([]Role, error)
}

type PostgresRoleRepository struct {
	db database.DB
}

func NewPostgresRoleRepository(db database.DB) *PostgresRoleRepository {
	return &PostgresRoleRepository{db: db}
}

const requirementQuery = `SELECT js.id, js.job_role_id, js.skill_id, s.name, COALESCE(s.category, ''),
        COALESCE(js.required_level, 1), COALESCE(js.importance_weight, 1.0)
 FROM job_skills js
 JOIN skills s ON s.id = js.skill_id`

func (r *PostgresRoleRepository) GetByID(ctx context.Context, id int64) (Role, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, title, COALESCE(domain, ''), COALESCE(description, '') FROM job_roles WHERE id = $1`,
		id,
	)

	var role Role
	if err := row.Scan(&role.ID, &role.Title, &role.Domain, &role.Description); err != nil {
		if database.IsNoRows(err) {
			return Role{}, ErrRoleNotFound
		}
		return Role{}, err
	}

	rows, err := r.db.Query(ctx, requirementQuery+` WHERE js.job_role_id = $1 ORDER BY js.id ASC`, id)
	if err != nil {
		return Role{}, err
	}
	reqs, err := scanRequirements(rows)
	if err != nil {
		return Role{}, err
	}
	role.Requirements = reqs
	return role, nil
}

// List returns every role in id order with its requirements attached.
func (r *PostgresRoleRepository) List(ctx context.Context) ([]Role, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, COALESCE(domain, ''), COALESCE(description, '') FROM job_roles ORDER BY id ASC`,
	)
	if err != nil {
		return nil, err
	}

	roles, err := scanRoles(rows)
	if err != nil {
		return nil, err
	}
	if len(roles) == 0 {
		return roles, nil
	}

	reqRows, err := r.db.Query(ctx, requirementQuery+` ORDER BY js.job_role_id ASC, js.id ASC`)
	if err != nil {
		return nil, err
	}
	reqs, err := scanRequirements(reqRows)
	if err != nil {
		return nil, err
	}

	idx := make(map[int64]int, len(roles))
	for i, role := range roles {
		idx[role.ID] = i
	}
	for _, req := range reqs {
		i, ok := idx[req.RoleID]
		if !ok {
			continue
		}
		roles[i].Requirements = append(roles[i].Requirements, req)
	}
	return roles, nil
}

func scanRoles(rows database.Rows) ([]Role, error) {
	defer rows.Close()

	out := make([]Role, 0)
	for rows.Next() {
		var role Role
		if err := rows.Scan(&role.ID, &role.Title, &role.Domain, &role.Description); err != nil {
			return nil, err
		}
		role.Requirements = []Requirement{}
		out = append(out, role)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanRequirements(rows database.Rows) ([]Requirement, error) {
	defer rows.Close()

	out := make([]Requirement, 0)
	for rows.Next() {
		var it Requirement
		if err := rows.Scan(&it.ID, &it.RoleID, &it.SkillID, &it.SkillName, &it.SkillCategory, &it.RequiredLevel, &it.ImportanceWeight); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
