package port

import (
	"context"
	"errors"

	"planwise/internal/core/domain"
)

var (
	// ErrConversationNotFound is returned for an unknown conversation id.
	ErrConversationNotFound = errors.New("conversation not found")
	// ErrTurnSuperseded is returned when a newer message for the same
	// conversation aborted this turn. It is not a failure: the caller
	// simply drops the response.
	ErrTurnSuperseded = errors.New("turn superseded by a newer message")
)

// PlannerUseCase is the primary port into the planning engine. Mock
// implementations can be generated from this interface for testing.
type PlannerUseCase interface {
	// StartConversation opens a fresh brief and returns its id.
	StartConversation(ctx context.Context) (string, error)

	// HandleMessage processes one user utterance for a conversation. The
	// result carries either a clarification reply or a generated plan.
	// A message issued while a previous one is still in flight aborts the
	// older turn, which then returns ErrTurnSuperseded without mutating
	// the brief.
	HandleMessage(ctx context.Context, conversationID, text string) (*TurnResult, error)

	// GetBrief returns a snapshot of the conversation's current brief.
	GetBrief(ctx context.Context, conversationID string) (*domain.CampaignBrief, error)

	// GetPlan loads a persisted plan by id. Returns nil when unknown.
	GetPlan(ctx context.Context, planID string) (*domain.MediaPlan, error)
}

// TurnResult is the outcome of one conversational turn. Exactly one of
// Reply and Plan drives the caller's next step: a non-nil Plan means the
// brief was complete and generation ran; otherwise Reply holds the next
// question or scenario prompt.
type TurnResult struct {
	ConversationID string
	Reply          string
	Brief          domain.CampaignBrief
	Plan           *domain.MediaPlan
}
