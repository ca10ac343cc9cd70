package assistant

import (
	"strings"
	"unicode/utf8"
)

type RoleCandidate struct {
	ID    int64
	Title string
}

const substringBonus = 0.5

// ResolveRole picks the role whose title best overlaps the message tokens. A
// title containing the whole message (longer than 4 characters) earns a bonus.
// The winner needs a score of at least 1; on equal scores the earlier candidate
// is kept. ok is false when nothing qualifies.
func ResolveRole(message string, candidates []RoleCandidate) (RoleCandidate, bool) {
	msg := strings.ToLower(message)
	msgTokens := tokenSet(msg)

	var best RoleCandidate
	found := false
	bestScore := 0.0

	for _, c := range candidates {
		title := strings.ToLower(c.Title)

		score := 0.0
		for tok := range tokenSet(title) {
			if _, ok := msgTokens[tok]; ok {
				score++
			}
		}
		if utf8.RuneCountInString(msg) > 4 && strings.Contains(title, msg) {
			score += substringBonus
		}

		if score > bestScore && score >= 1 {
			bestScore = score
			best = c
			found = true
		}
	}
	return best, found
}

func tokenSet(s string) map[string]struct{} {
	fields := strings.Fields(s)
	out := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		out[f] = struct{}{}
	}
	return out
}
