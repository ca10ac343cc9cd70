package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAssistant() *Assistant {
	return NewAssistantUsecase(fixtureUsers(), fixtureRoles(), fixtureResources(nil), zerolog.Nop())
}

func roleID(v int64) *int64 { return &v }

func TestAssistant_UnknownUser(t *testing.T) {
	out, err := newAssistant().HandleChatMessage(context.Background(), ChatInput{UserID: 5, Message: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "User not found.", out.Response)
	assert.NotNil(t, out.SuggestedActions)
	assert.Empty(t, out.SuggestedActions)
}

func TestAssistant_NonPositiveUserIDIsUnknownUser(t *testing.T) {
	for _, id := range []int64{0, -3} {
		out, err := newAssistant().HandleChatMessage(context.Background(), ChatInput{UserID: id, Message: "hello"})
		require.NoError(t, err)
		assert.Equal(t, "User not found.", out.Response)
		assert.Empty(t, out.SuggestedActions)
	}
}

func TestAssistant_BlankMessageGetsFallback(t *testing.T) {
	for _, msg := range []string{"", "   "} {
		out, err := newAssistant().HandleChatMessage(context.Background(), ChatInput{UserID: 1, Message: msg})
		require.NoError(t, err)
		assert.Contains(t, out.Response, "I'm tuned to analyze your career data.")
		assert.Equal(t, []string{"What are my missing skills?"}, out.SuggestedActions)
	}
}

func TestAssistant_GapsWithExplicitRole(t *testing.T) {
	out, err := newAssistant().HandleChatMessage(context.Background(), ChatInput{UserID: 1, RoleID: roleID(2), Message: "What are my gaps?"})
	require.NoError(t, err)
	assert.Equal(t, "The most critical skills you are missing are: Docker. Closing these gaps has the highest 'Importance Weight' for this role.", out.Response)
	assert.Equal(t, []string{"How to learn Docker?"}, out.SuggestedActions)
}

func TestAssistant_RoleFromMessage(t *testing.T) {
	out, err := newAssistant().HandleChatMessage(context.Background(), ChatInput{UserID: 1, Message: "data analyst"})
	require.NoError(t, err)
	assert.Equal(t, "I've switched context to **Data Analyst**. Your readiness is 100%. You are missing 0 skills.", out.Response)
	assert.Empty(t, out.SuggestedActions)
}

func TestAssistant_UnknownRoleIDFallsBackToSearch(t *testing.T) {
	out, err := newAssistant().HandleChatMessage(context.Background(), ChatInput{UserID: 1, RoleID: roleID(99), Message: "why is my backend engineer score low"})
	require.NoError(t, err)
	assert.Equal(t, "Your score is 80%. You have a good foundation, but there are 1 specific gaps we need to address.", out.Response)
	assert.Equal(t, []string{"What are my gaps?"}, out.SuggestedActions)
}

func TestAssistant_Greeting(t *testing.T) {
	out, err := newAssistant().HandleChatMessage(context.Background(), ChatInput{UserID: 1, Message: "hello"})
	require.NoError(t, err)
	assert.Contains(t, out.Response, "SkillMatch Assistant")
	assert.Empty(t, out.SuggestedActions)
}

func TestAssistant_StoreFailure(t *testing.T) {
	uc := NewAssistantUsecase(fakeUsers{err: errors.New("down")}, fixtureRoles(), fixtureResources(nil), zerolog.Nop())
	_, err := uc.HandleChatMessage(context.Background(), ChatInput{UserID: 1, Message: "hello"})
	assert.ErrorIs(t, err, ErrInternal)
}
