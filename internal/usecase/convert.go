package usecase

import (
	"context"

	"skillmatch/internal/domain/matching"
	"skillmatch/internal/repository"
)

func toRoleRef(r repository.Role) matching.RoleRef {
	return matching.RoleRef{ID: r.ID, Title: r.Title, Domain: r.Domain}
}

func toRequirements(reqs []repository.Requirement) []matching.Requirement {
	out := make([]matching.Requirement, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, matching.Requirement{
			SkillID:          r.SkillID,
			SkillName:        r.SkillName,
			RequiredLevel:    r.RequiredLevel,
			ImportanceWeight: r.ImportanceWeight,
		})
	}
	return out
}

func toProjects(items []repository.Project) []matching.Project {
	out := make([]matching.Project, 0, len(items))
	for _, p := range items {
		skills := make([]matching.ProjectSkill, 0, len(p.RequiredSkills))
		for _, s := range p.RequiredSkills {
			skills = append(skills, matching.ProjectSkill{SkillID: s.SkillID, SkillName: s.SkillName})
		}
		out = append(out, matching.Project{
			ID:              p.ID,
			Title:           p.Title,
			Description:     p.Description,
			Domain:          p.Domain,
			DifficultyLevel: p.DifficultyLevel,
			GithubRepoURL:   p.GithubRepoURL,
			RequiredSkills:  skills,
		})
	}
	return out
}

// prefetchResources loads resources for every skill named in roles with one
// query and serves them from memory while the engine runs.
func prefetchResources(ctx context.Context, repo repository.ResourceRepository, roles ...repository.Role) (matching.ResourceLookup, error) {
	seen := make(map[int64]struct{})
	ids := make([]int64, 0)
	for _, role := range roles {
		for _, r := range role.Requirements {
			if _, ok := seen[r.SkillID]; ok {
				continue
			}
			seen[r.SkillID] = struct{}{}
			ids = append(ids, r.SkillID)
		}
	}

	bySkill, err := repo.FindBySkillIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	return func(skillID int64) []matching.Resource {
		items := bySkill[skillID]
		out := make([]matching.Resource, 0, len(items))
		for _, it := range items {
			out = append(out, matching.Resource{
				Title:           it.Title,
				Type:            it.Type,
				Provider:        it.Provider,
				Link:            it.Link,
				DifficultyLevel: it.DifficultyLevel,
			})
		}
		return out
	}, nil
}
