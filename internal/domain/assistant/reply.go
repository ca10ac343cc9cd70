package assistant

import (
	"fmt"
	"strings"

	"skillmatch/internal/domain/matching"
)

const (
	ActionWhatAreMyGaps  = "What are my gaps?"
	ActionMissingSkills  = "What are my missing skills?"
	ActionGoLearningHub  = "Go to Learning Hub"
	ActionGoProjectsHub  = "Go to Projects Hub"
	UserNotFoundResponse = "User not found."
)

const (
	maxGapsInReply        = 3
	strongReadinessFloor  = 80
	partialReadinessFloor = 50
)

type Reply struct {
	Response         string
	SuggestedActions []string
}

// Context is what the assistant knows when answering. Readiness is nil when no
// role could be resolved for the message.
type Context struct {
	Message   string
	Readiness *matching.RoleReadiness
}

// UserNotFound is the canned reply for an unknown user.
func UserNotFound() Reply {
	return Reply{Response: UserNotFoundResponse, SuggestedActions: []string{}}
}

// Respond renders the reply for an already classified message.
func Respond(intent Intent, c Context) Reply {
	switch intent {
	case IntentExplainScore:
		return explainScore(c)
	case IntentGaps:
		return describeGaps(c)
	case IntentImprove:
		return suggestImprovement(c)
	case IntentProjects:
		return Reply{
			Response:         "Building real-world projects is the best way to prove your skills! Check out the 'Projects' tab for GitHub repositories tailored to your profile.",
			SuggestedActions: []string{ActionGoProjectsHub},
		}
	case IntentGreeting:
		return Reply{
			Response:         "Hello! I am your SkillMatch Assistant. I'm here to translate your data into a clear career path. Ask me about your match score or skill gaps.",
			SuggestedActions: []string{},
		}
	default:
		return summarize(c)
	}
}

func explainScore(c Context) Reply {
	r := c.Readiness
	if r == nil {
		return Reply{
			Response:         "I can currently explain your readiness for specific roles. Please select a Job Role context first!",
			SuggestedActions: []string{},
		}
	}

	score := percent(r.ReadinessScore)
	var text string
	switch {
	case score > strongReadinessFloor:
		text = fmt.Sprintf("You have a strong readiness score of %d%%! You are well-aligned with the %s role.", score, r.RoleTitle)
	case score > partialReadinessFloor:
		text = fmt.Sprintf("Your score is %d%%. You have a good foundation, but there are %d specific gaps we need to address.", score, r.MissingSkillCount)
	default:
		text = fmt.Sprintf("Your current score is %d%%. This is a specialized role, so don't worry, focusing on a few key skills will boost this quickly.", score)
	}
	return Reply{Response: text, SuggestedActions: []string{ActionWhatAreMyGaps}}
}

func describeGaps(c Context) Reply {
	r := c.Readiness
	switch {
	case r != nil && len(r.Gaps) > 0:
		top := r.Gaps
		if len(top) > maxGapsInReply {
			top = top[:maxGapsInReply]
		}
		names := make([]string, 0, len(top))
		for _, g := range top {
			names = append(names, g.SkillName)
		}
		return Reply{
			Response:         fmt.Sprintf("The most critical skills you are missing are: %s. Closing these gaps has the highest 'Importance Weight' for this role.", strings.Join(names, ", ")),
			SuggestedActions: []string{fmt.Sprintf("How to learn %s?", names[0])},
		}
	case r != nil:
		return Reply{
			Response:         "You don't have any major skill gaps for this role! You might be ready to apply.",
			SuggestedActions: []string{},
		}
	default:
		return Reply{
			Response:         "Select a job role, and I'll tell you exactly what skills you are missing.",
			SuggestedActions: []string{},
		}
	}
}

func suggestImprovement(c Context) Reply {
	r := c.Readiness
	if r == nil || len(r.Gaps) == 0 {
		return Reply{
			Response:         "The best way to improve is to tackle your biggest skill gaps one by one. Check the 'Gap Analysis' on your dashboard.",
			SuggestedActions: []string{},
		}
	}

	msg := strings.ToLower(c.Message)
	target := r.Gaps[0]
	for _, g := range r.Gaps {
		if strings.Contains(msg, strings.ToLower(g.SkillName)) {
			target = g
			break
		}
	}

	return Reply{
		Response:         fmt.Sprintf("To improve %s, you should aim for Level %d. I recommend checking the Learning Hub for courses on this.", target.SkillName, target.RequiredLevel),
		SuggestedActions: []string{ActionGoLearningHub},
	}
}

func summarize(c Context) Reply {
	r := c.Readiness
	if r == nil {
		return Reply{
			Response:         "I'm tuned to analyze your career data. Try asking: 'Why is my score low?', 'What are my missing skills?', or 'How can I improve?'",
			SuggestedActions: []string{ActionMissingSkills},
		}
	}

	text := fmt.Sprintf("I've switched context to **%s**. Your readiness is %d%%. You are missing %d skills.", r.RoleTitle, percent(r.ReadinessScore), r.MissingSkillCount)
	actions := []string{}
	if len(r.Gaps) > 0 {
		text += " Ask 'What are my gaps?' for details."
		actions = append(actions, ActionWhatAreMyGaps)
	}
	return Reply{Response: text, SuggestedActions: actions}
}

// percent truncates like the score shown on the dashboard.
func percent(score float64) int {
	return int(score * 100)
}
