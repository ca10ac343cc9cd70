package assistant

import "strings"

type Intent int

const (
	IntentFallback Intent = iota
	IntentExplainScore
	IntentGaps
	IntentImprove
	IntentProjects
	IntentGreeting
)

func (i Intent) String() string {
	switch i {
	case IntentExplainScore:
		return "explain_score"
	case IntentGaps:
		return "gaps"
	case IntentImprove:
		return "improve"
	case IntentProjects:
		return "projects"
	case IntentGreeting:
		return "greeting"
	default:
		return "fallback"
	}
}

type rule struct {
	intent   Intent
	keywords []string
}

// Evaluated top to bottom; the first rule with a keyword inside the message wins.
var rules = []rule{
	{intent: IntentExplainScore, keywords: []string{"score", "rating", "why", "analysis"}},
	{intent: IntentGaps, keywords: []string{"gap", "missing", "lack", "need", "skills", "required"}},
	{intent: IntentImprove, keywords: []string{"improve", "learn", "study", "resource", "help"}},
	{intent: IntentProjects, keywords: []string{"project", "build", "portfolio", "hands-on"}},
	{intent: IntentGreeting, keywords: []string{"hello", "hi", "hey"}},
}

// Classify matches keywords as substrings of the lowercased message, so "hi"
// also fires inside longer words.
func Classify(message string) Intent {
	msg := strings.ToLower(message)
	for _, r := range rules {
		for _, k := range r.keywords {
			if strings.Contains(msg, k) {
				return r.intent
			}
		}
	}
	return IntentFallback
}
