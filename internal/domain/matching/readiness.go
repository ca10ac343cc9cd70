package matching

import "sort"

// Requirement is one weighted skill a role asks for.
type Requirement struct {
	SkillID          int64
	SkillName        string
	RequiredLevel    int
	ImportanceWeight float64
}

type Resource struct {
	Title           string
	Type            string
	Provider        string
	Link            *string
	DifficultyLevel int
}

// ResourceLookup returns the learning resources for a skill, in fetch order.
type ResourceLookup func(skillID int64) []Resource

type RoleRef struct {
	ID     int64
	Title  string
	Domain string
}

type GapDetail struct {
	SkillID          int64
	SkillName        string
	CurrentLevel     int
	RequiredLevel    int
	Gap              int
	ImportanceWeight float64
	WeightedGap      float64
	Resources        []Resource
}

type RoleReadiness struct {
	RoleID            int64
	RoleTitle         string
	Domain            string
	ReadinessScore    float64
	MissingSkillCount int
	Gaps              []GapDetail
}

// ComputeReadiness scores how well levels (skill id -> proficiency) cover reqs.
// Skills absent from levels count as level 0. Gaps come back highest weighted gap
// first; equal weighted gaps keep requirement order.
func ComputeReadiness(levels map[int64]int, role RoleRef, reqs []Requirement, lookup ResourceLookup) RoleReadiness {
	var totalPossible float64
	var totalWeightedGap float64

	gaps := make([]GapDetail, 0)
	missing := 0

	for _, r := range reqs {
		reqLvl := nonNegativeInt(r.RequiredLevel)
		weight := nonNegativeFloat(r.ImportanceWeight)
		usrLvl := nonNegativeInt(levels[r.SkillID])

		totalPossible += float64(reqLvl) * weight

		gap := reqLvl - usrLvl
		if gap <= 0 {
			continue
		}
		weighted := float64(gap) * weight
		totalWeightedGap += weighted
		missing++

		resources := []Resource{}
		if lookup != nil {
			if found := lookup(r.SkillID); found != nil {
				resources = found
			}
		}

		gaps = append(gaps, GapDetail{
			SkillID:          r.SkillID,
			SkillName:        r.SkillName,
			CurrentLevel:     usrLvl,
			RequiredLevel:    reqLvl,
			Gap:              gap,
			ImportanceWeight: weight,
			WeightedGap:      weighted,
			Resources:        resources,
		})
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].WeightedGap > gaps[j].WeightedGap
	})

	score := 1.0
	if totalPossible > 0 {
		score = clampScore(1.0 - totalWeightedGap/totalPossible)
	}

	return RoleReadiness{
		RoleID:            role.ID,
		RoleTitle:         role.Title,
		Domain:            role.Domain,
		ReadinessScore:    score,
		MissingSkillCount: missing,
		Gaps:              gaps,
	}
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func nonNegativeInt(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func nonNegativeFloat(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
