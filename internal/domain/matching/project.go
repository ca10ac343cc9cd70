package matching

import "sort"

type ProjectSkill struct {
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

type ProjectMatch struct {
	Project
	RelevanceScore float64
	MatchCount     int
}

// MatchProjects ranks projects by the share of their required skills the user
// already holds at level 1 or above. Projects without requirements or without
// any overlap are left out.
func MatchProjects(levels map[int64]int, projects []Project) []ProjectMatch {
	out := make([]ProjectMatch, 0, len(projects))
	for _, p := range projects {
		total := len(p.RequiredSkills)
		if total == 0 {
			continue
		}

		matched := 0
		for _, s := range p.RequiredSkills {
			if levels[s.SkillID] >= 1 {
				matched++
			}
		}
		if matched == 0 {
			continue
		}

		out = append(out, ProjectMatch{
			Project:        p,
			RelevanceScore: float64(matched) / float64(total),
			MatchCount:     matched,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RelevanceScore > out[j].RelevanceScore
	})
	return out
}
