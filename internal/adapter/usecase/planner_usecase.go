// Package usecase wires the conversation machine and the planning
// pipeline behind the PlannerUseCase port. It owns conversation state and
// the supersede semantics: the newest message for a conversation always
// wins over any turn still in flight.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"planwise/internal/core/domain"
	"planwise/internal/core/planning"
	"planwise/internal/core/planning/conversation"
	"planwise/internal/core/planning/extract"
	"planwise/internal/core/port"
)

type session struct {
	conv   *conversation.Conversation
	seq    uint64
	cancel context.CancelFunc
}

// PlannerUseCase implements port.PlannerUseCase over in-memory
// conversation state, the embedded playbook and the dataset store.
type PlannerUseCase struct {
	log      *slog.Logger
	datasets port.DatasetProvider
	playbook port.PlaybookProvider
	plans    port.PlanRepository
	machine  *conversation.Machine

	mu       sync.RWMutex
	sessions map[string]*session
}

func NewPlannerUseCase(log *slog.Logger, datasets port.DatasetProvider, playbook port.PlaybookProvider, plans port.PlanRepository) *PlannerUseCase {
	return &PlannerUseCase{
		log:      log,
		datasets: datasets,
		playbook: playbook,
		plans:    plans,
		machine:  conversation.New(extract.New(playbook)),
		sessions: make(map[string]*session),
	}
}

func (uc *PlannerUseCase) StartConversation(_ context.Context) (string, error) {
	id := uuid.NewString()

	uc.mu.Lock()
	uc.sessions[id] = &session{conv: conversation.NewConversation()}
	uc.mu.Unlock()

	uc.log.Info("conversation started", slog.String("conversation_id", id))
	return id, nil
}

func (uc *PlannerUseCase) HandleMessage(ctx context.Context, conversationID, text string) (*port.TurnResult, error) {
	uc.mu.RLock()
	s := uc.sessions[conversationID]
	uc.mu.RUnlock()
	if s == nil {
		return nil, port.ErrConversationNotFound
	}

	// claim the turn: cancel whatever is still in flight and snapshot the
	// brief so an aborted turn leaves no trace
	uc.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	turnCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.seq++
	seq := s.seq
	work := &conversation.Conversation{
		State:       s.conv.State,
		Brief:       s.conv.Brief.Clone(),
		BudgetAsked: s.conv.BudgetAsked,
	}
	uc.mu.Unlock()
	defer cancel()

	out := uc.machine.Turn(work, text)

	var plan *domain.MediaPlan
	if out.Generate {
		datasets, err := uc.datasets.LoadDatasets(turnCtx)
		if err != nil {
			return nil, fmt.Errorf("load datasets: %w", err)
		}
		plan, err = planning.Generate(work.Brief, datasets, uc.playbook)
		if err != nil {
			return nil, err
		}
		work.State = conversation.StateGenerated
	}

	// commit only if no newer message claimed the conversation meanwhile
	uc.mu.Lock()
	if s.seq != seq || turnCtx.Err() != nil {
		uc.mu.Unlock()
		uc.log.Debug("turn superseded",
			slog.String("conversation_id", conversationID), slog.Uint64("seq", seq))
		return nil, port.ErrTurnSuperseded
	}
	s.cancel = nil
	s.conv = work
	uc.mu.Unlock()

	reply := out.Reply
	if plan != nil {
		if err := uc.plans.SavePlan(ctx, plan); err != nil {
			return nil, fmt.Errorf("save plan %s: %w", plan.ID, err)
		}
		reply = renderPlanReply(plan)
		uc.log.Info("plan generated",
			slog.String("conversation_id", conversationID),
			slog.String("plan_id", plan.ID),
			slog.Int64("budget", plan.Summary.TotalBudget),
			slog.String("tier", string(plan.Tier)))
	}

	return &port.TurnResult{
		ConversationID: conversationID,
		Reply:          reply,
		Brief:          *work.Brief.Clone(),
		Plan:           plan,
	}, nil
}

func (uc *PlannerUseCase) GetBrief(_ context.Context, conversationID string) (*domain.CampaignBrief, error) {
	uc.mu.RLock()
	s := uc.sessions[conversationID]
	uc.mu.RUnlock()
	if s == nil {
		return nil, port.ErrConversationNotFound
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	return s.conv.Brief.Clone(), nil
}

func (uc *PlannerUseCase) GetPlan(ctx context.Context, planID string) (*domain.MediaPlan, error) {
	return uc.plans.GetPlan(ctx, planID)
}

// renderPlanReply formats the chat-facing summary of a generated plan.
func renderPlanReply(plan *domain.MediaPlan) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Here's your %s plan (RM %d over %d weeks):\n",
		plan.Strategy.Name, plan.Summary.TotalBudget, plan.Summary.DurationWeeks)
	for _, l := range plan.LineItems {
		fmt.Fprintf(&sb, "- %s (%s, %s): RM %d, ~%d impressions\n",
			l.Platform, l.Pillar, l.BuyType, l.Budget, l.Impressions)
	}
	fmt.Fprintf(&sb, "Estimated unique reach: %d", plan.Summary.UniqueReach)
	if len(plan.Warnings) > 0 {
		sb.WriteString("\nNotes:")
		for _, w := range plan.Warnings {
			fmt.Fprintf(&sb, "\n- [%s] %s", w.Severity, w.Message)
		}
	}
	return sb.String()
}
