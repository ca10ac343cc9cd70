package seeder

import (
	"context"
	"errors"
	"testing"

	"skillmatch/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nopDB satisfies database.DB for seeders that never touch it.
type nopDB struct{ database.DB }

type recordingSeeder struct {
	name string
	err  error
	ran  *[]string
}

func (s recordingSeeder) Name() string { return s.name }

func (s recordingSeeder) Run(context.Context, database.DB) error {
	*s.ran = append(*s.ran, s.name)
	return s.err
}

func TestRunner_StopsOnError(t *testing.T) {
	var ran []string
	boom := errors.New("boom")
	r := Runner{Seeders: []Seeder{
		recordingSeeder{name: "a", ran: &ran},
		recordingSeeder{name: "b", err: boom, ran: &ran},
		recordingSeeder{name: "c", ran: &ran},
	}}

	err := r.Run(context.Background(), nopDB{})
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "seed b")
	assert.Equal(t, []string{"a", "b"}, ran)
}

func TestRunner_NilDB(t *testing.T) {
	assert.ErrorIs(t, Runner{}.Run(context.Background(), nil), errNilDB)
}

func TestSelect(t *testing.T) {
	all := Defaults()

	got, err := Select(all, nil)
	require.NoError(t, err)
	assert.Len(t, got, len(all))

	got, err = Select(all, []string{"projects", "skills"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "skills", got[0].Name())
	assert.Equal(t, "projects", got[1].Name())

	_, err = Select(all, []string{"jobs"})
	assert.ErrorContains(t, err, `unknown seeder "jobs"`)
}

func TestSeedData_ReferencesKnownSkills(t *testing.T) {
	known := make(map[string]bool, len(skillSeeds))
	for _, s := range skillSeeds {
		assert.False(t, known[s.Name], "duplicate skill %s", s.Name)
		known[s.Name] = true
	}

	for _, r := range resourceSeeds {
		assert.True(t, known[r.Skill], "resource %s", r.Title)
	}
	for _, role := range roleSeeds {
		for _, req := range role.Requirements {
			assert.True(t, known[req.Skill], "role %s requires %s", role.Title, req.Skill)
			assert.GreaterOrEqual(t, req.Level, 1)
			assert.LessOrEqual(t, req.Level, 5)
			assert.Greater(t, req.Weight, 0.0)
		}
	}
	for _, p := range projectSeeds {
		assert.NotEmpty(t, p.Skills, p.Title)
		for _, name := range p.Skills {
			assert.True(t, known[name], "project %s uses %s", p.Title, name)
		}
	}
	for _, us := range demoUserSkills {
		assert.True(t, known[us.Skill], us.Skill)
	}
}
