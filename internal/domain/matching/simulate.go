package matching

// MaxProficiency is the top of the 0..5 proficiency scale.
const MaxProficiency = 5

type SimulationOutcome struct {
	CurrentReadiness float64
	NewReadiness     float64
	Improvement      float64
}

// Simulate compares readiness for the user's actual levels against the same
// levels with skillID set to target. A target below the current level is allowed
// and yields a negative improvement. target is clamped to 0..MaxProficiency.
// levels is not modified.
func Simulate(levels map[int64]int, role RoleRef, reqs []Requirement, lookup ResourceLookup, skillID int64, target int) SimulationOutcome {
	base := ComputeReadiness(levels, role, reqs, lookup)

	hypothetical := make(map[int64]int, len(levels)+1)
	for k, v := range levels {
		hypothetical[k] = v
	}
	hypothetical[skillID] = clampLevel(target)

	sim := ComputeReadiness(hypothetical, role, reqs, lookup)

	return SimulationOutcome{
		CurrentReadiness: base.ReadinessScore,
		NewReadiness:     sim.ReadinessScore,
		Improvement:      sim.ReadinessScore - base.ReadinessScore,
	}
}

func clampLevel(v int) int {
	if v > MaxProficiency {
		return MaxProficiency
	}
	return nonNegativeInt(v)
}
