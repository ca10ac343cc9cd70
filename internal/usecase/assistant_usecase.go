package usecase

import (
	"context"
	"errors"

	"skillmatch/internal/domain/assistant"
	"skillmatch/internal/domain/matching"
	"skillmatch/internal/repository"

	"github.com/rs/zerolog"
)

type ChatInput struct {
	UserID  int64
	RoleID  *int64
	Message string
}

type ChatReply struct {
	Response         string
	SuggestedActions []string
}

type AssistantUsecase interface {
	HandleChatMessage(ctx context.Context, in ChatInput) (ChatReply, error)
}

type Assistant struct {
	users     repository.UserRepository
	roles     repository.RoleRepository
	resources repository.ResourceRepository
	log       zerolog.Logger
}

func NewAssistantUsecase(users repository.UserRepository, roles repository.RoleRepository, resources repository.ResourceRepository, log zerolog.Logger) *Assistant {
	return &Assistant{users: users, roles: roles, resources: resources, log: log}
}

func (u *Assistant) HandleChatMessage(ctx context.Context, in ChatInput) (ChatReply, error) {
	user, err := u.users.GetByID(ctx, in.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return toChatReply(assistant.UserNotFound()), nil
		}
		return ChatReply{}, ErrInternal
	}

	role, ok, err := u.resolveRole(ctx, in)
	if err != nil {
		return ChatReply{}, ErrInternal
	}

	c := assistant.Context{Message: in.Message}
	if ok {
		lookup, err := prefetchResources(ctx, u.resources, role)
		if err != nil {
			return ChatReply{}, ErrInternal
		}
		r := matching.ComputeReadiness(user.Levels(), toRoleRef(role), toRequirements(role.Requirements), lookup)
		c.Readiness = &r
	}

	intent := assistant.Classify(in.Message)
	u.log.Debug().
		Int64("user_id", in.UserID).
		Str("intent", intent.String()).
		Bool("role_context", ok).
		Msg("assistant message classified")

	return toChatReply(assistant.Respond(intent, c)), nil
}

// resolveRole prefers an explicit role id and falls back to matching the
// message against role titles when the id is absent or unknown.
func (u *Assistant) resolveRole(ctx context.Context, in ChatInput) (repository.Role, bool, error) {
	if in.RoleID != nil {
		role, err := u.roles.GetByID(ctx, *in.RoleID)
		if err == nil {
			return role, true, nil
		}
		if !errors.Is(err, repository.ErrRoleNotFound) {
			return repository.Role{}, false, err
		}
	}

	roles, err := u.roles.List(ctx)
	if err != nil {
		return repository.Role{}, false, err
	}

	candidates := make([]assistant.RoleCandidate, 0, len(roles))
	for _, r := range roles {
		candidates = append(candidates, assistant.RoleCandidate{ID: r.ID, Title: r.Title})
	}
	best, ok := assistant.ResolveRole(in.Message, candidates)
	if !ok {
		return repository.Role{}, false, nil
	}
	for _, r := range roles {
		if r.ID == best.ID {
			return r, true, nil
		}
	}
	return repository.Role{}, false, nil
}

func toChatReply(r assistant.Reply) ChatReply {
	actions := r.SuggestedActions
	if actions == nil {
		actions = []string{}
	}
	return ChatReply{Response: r.Response, SuggestedActions: actions}
}
