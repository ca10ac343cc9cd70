package usecase

import (
	"context"

	"skillmatch/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
)

type fakeUsers struct {
	items map[int64]repository.User
	// roleIDs are the target roles Update accepts; others fail like a foreign key.
	roleIDs map[int64]bool
	err     error
}

func (f fakeUsers) GetByID(_ context.Context, id int64) (repository.User, error) {
	if f.err != nil {
		return repository.User{}, f.err
	}
	u, ok := f.items[id]
	if !ok {
		return repository.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (f fakeUsers) GetByEmail(_ context.Context, email string) (repository.User, error) {
	if f.err != nil {
		return repository.User{}, f.err
	}
	for _, u := range f.items {
		if u.Email == email {
			return u, nil
		}
	}
	return repository.User{}, repository.ErrUserNotFound
}

func (f fakeUsers) Create(_ context.Context, u repository.User) (repository.User, error) {
	if f.err != nil {
		return repository.User{}, f.err
	}
	var maxID int64
	for id, existing := range f.items {
		if existing.Email == u.Email {
			return repository.User{}, &pgconn.PgError{Code: "23505"}
		}
		if id > maxID {
			maxID = id
		}
	}
	u.ID = maxID + 1
	u.Skills = []repository.UserSkill{}
	f.items[u.ID] = u
	return u, nil
}

func (f fakeUsers) Update(_ context.Context, u repository.User) (repository.User, error) {
	if f.err != nil {
		return repository.User{}, f.err
	}
	if _, ok := f.items[u.ID]; !ok {
		return repository.User{}, repository.ErrUserNotFound
	}
	if u.TargetRoleID != nil && !f.roleIDs[*u.TargetRoleID] {
		return repository.User{}, &pgconn.PgError{Code: "23503"}
	}
	f.items[u.ID] = u
	return u, nil
}

type fakeRoles struct {
	items []repository.Role
	err   error
}

func (f fakeRoles) GetByID(_ context.Context, id int64) (repository.Role, error) {
	if f.err != nil {
		return repository.Role{}, f.err
	}
	for _, r := range f.items {
		if r.ID == id {
			return r, nil
		}
	}
	return repository.Role{}, repository.ErrRoleNotFound
}

func (f fakeRoles) List(context.Context) ([]repository.Role, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

type fakeSkills struct {
	items []repository.Skill
}

func (f fakeSkills) GetByID(_ context.Context, id int64) (repository.Skill, error) {
	for _, s := range f.items {
		if s.ID == id {
			return s, nil
		}
	}
	return repository.Skill{}, repository.ErrSkillNotFound
}

func (f fakeSkills) List(context.Context) ([]repository.Skill, error) {
	return f.items, nil
}

type fakeResources struct {
	items []repository.LearningResource
	calls *int
}

func (f fakeResources) FindBySkillIDs(_ context.Context, skillIDs []int64) (map[int64][]repository.LearningResource, error) {
	if f.calls != nil {
		*f.calls++
	}
	want := make(map[int64]struct{}, len(skillIDs))
	for _, id := range skillIDs {
		want[id] = struct{}{}
	}
	out := make(map[int64][]repository.LearningResource)
	for _, it := range f.items {
		if _, ok := want[it.SkillID]; ok {
			out[it.SkillID] = append(out[it.SkillID], it)
		}
	}
	return out, nil
}

func (f fakeResources) List(context.Context) ([]repository.LearningResource, error) {
	return f.items, nil
}

type fakeProjects struct {
	items []repository.Project
}

func (f fakeProjects) List(context.Context) ([]repository.Project, error) {
	return f.items, nil
}

type fakeUserSkills struct {
	rows map[[2]int64]repository.UserSkill
}

func (f *fakeUserSkills) FindByUserID(_ context.Context, userID int64) ([]repository.UserSkill, error) {
	out := make([]repository.UserSkill, 0)
	for k, v := range f.rows {
		if k[0] == userID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeUserSkills) Upsert(_ context.Context, us repository.UserSkill) (repository.UserSkill, error) {
	if f.rows == nil {
		f.rows = make(map[[2]int64]repository.UserSkill)
	}
	key := [2]int64{us.UserID, us.SkillID}
	if prev, ok := f.rows[key]; ok {
		us.ID = prev.ID
	} else {
		us.ID = int64(len(f.rows) + 1)
	}
	f.rows[key] = us
	return us, nil
}

func (f *fakeUserSkills) Delete(_ context.Context, userID, skillID int64) error {
	key := [2]int64{userID, skillID}
	if _, ok := f.rows[key]; !ok {
		return repository.ErrUserSkillNotFound
	}
	delete(f.rows, key)
	return nil
}

const (
	skillSQL    int64 = 10
	skillDocker int64 = 20
	skillFigma  int64 = 30
)

func fixtureSkills() fakeSkills {
	return fakeSkills{items: []repository.Skill{
		{ID: skillSQL, Name: "SQL", Category: "data"},
		{ID: skillDocker, Name: "Docker", Category: "devops"},
		{ID: skillFigma, Name: "Figma", Category: "design"},
	}}
}

// fixtureUsers holds user 1 with SQL at level 4. Roles 1..3 exist as targets.
func fixtureUsers() fakeUsers {
	return fakeUsers{roleIDs: map[int64]bool{1: true, 2: true, 3: true}, items: map[int64]repository.User{
		1: {
			ID:       1,
			FullName: "Demo User",
			Email:    "demo@skillmatch.local",
			Skills:   []repository.UserSkill{{UserID: 1, SkillID: skillSQL, SkillName: "SQL", ProficiencyLevel: 4}},
		},
	}}
}

// fixtureRoles scores 0.0, 0.8 and 1.0 for user 1 in id order.
func fixtureRoles() fakeRoles {
	return fakeRoles{items: []repository.Role{
		{ID: 1, Title: "UI Designer", Domain: "SmartCity", Requirements: []repository.Requirement{
			{RoleID: 1, SkillID: skillFigma, SkillName: "Figma", RequiredLevel: 4, ImportanceWeight: 2},
		}},
		{ID: 2, Title: "Backend Engineer", Domain: "Healthcare", Requirements: []repository.Requirement{
			{RoleID: 2, SkillID: skillSQL, SkillName: "SQL", RequiredLevel: 4, ImportanceWeight: 2},
			{RoleID: 2, SkillID: skillDocker, SkillName: "Docker", RequiredLevel: 2, ImportanceWeight: 1},
		}},
		{ID: 3, Title: "Data Analyst", Domain: "AgriTech", Requirements: []repository.Requirement{
			{RoleID: 3, SkillID: skillSQL, SkillName: "SQL", RequiredLevel: 4, ImportanceWeight: 2},
		}},
	}}
}

func fixtureResources(calls *int) fakeResources {
	return fakeResources{calls: calls, items: []repository.LearningResource{
		{ID: 1, SkillID: skillDocker, Title: "Docker Basics", Type: "course", Provider: "Docker Docs", DifficultyLevel: 1},
		{ID: 2, SkillID: skillFigma, Title: "Figma 101", Type: "video", Provider: "YouTube", DifficultyLevel: 1},
	}}
}
