package usecase

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"planwise/internal/core/domain"
	"planwise/internal/core/planning/conversation"
	"planwise/internal/core/port"
	"planwise/internal/core/port/mocks"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func slogDiscard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testDatasets() *port.Datasets {
	return &port.Datasets{
		Rates: []domain.RateCardEntry{
			{Platform: "Tonton", Pillar: "Video", Format: "In-stream Video", CPMDirect: 30, CPMPD: 24},
			{Platform: "Berita Network", Pillar: "Display", Format: "Leaderboard Banner", CPMDirect: 12, CPMPD: 8},
			{Platform: "Gempak", Pillar: "Social", Format: "Social Feed Story", CPMDirect: 15},
		},
		Formats: []domain.AdFormat{
			{Name: "In-stream Video", Medium: "video", Category: "OTT"},
			{Name: "Leaderboard Banner", Medium: "static", Category: "Web"},
		},
		Audiences: []domain.AudiencePersona{
			{Name: "Beauty Enthusiasts", TotalReach: 2_000_000},
			{Name: "Family Dynamic", TotalReach: 6_000_000},
		},
		Sites: []domain.PublisherSite{
			{Name: "MegaPortal", Category: "Web", MonthlyTraffic: 15_000_000},
		},
	}
}

type deps struct {
	datasets *mocks.MockDatasetProvider
	playbook *mocks.MockPlaybookProvider
	plans    *mocks.MockPlanRepository
}

func newUseCase(t *testing.T) (*PlannerUseCase, deps) {
	d := deps{
		datasets: mocks.NewMockDatasetProvider(t),
		playbook: mocks.NewMockPlaybookProvider(t),
		plans:    mocks.NewMockPlanRepository(t),
	}
	d.playbook.EXPECT().Match(mock.Anything).Return(domain.PlaybookEntry{}, false).Maybe()
	uc := NewPlannerUseCase(slogDiscard(), d.datasets, d.playbook, d.plans)
	return uc, d
}

func TestStartConversationAndGetBrief(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	id, err := uc.StartConversation(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	brief, err := uc.GetBrief(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, brief.Budget)

	_, err = uc.GetBrief(ctx, "missing")
	assert.ErrorIs(t, err, port.ErrConversationNotFound)
}

func TestHandleMessage_UnknownConversation(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.HandleMessage(context.Background(), "missing", "hello")
	assert.ErrorIs(t, err, port.ErrConversationNotFound)
}

func TestHandleMessage_ClarificationTurn(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	id, err := uc.StartConversation(ctx)
	require.NoError(t, err)

	res, err := uc.HandleMessage(ctx, id, "launching a new skincare brand with RM150k, nationwide")
	require.NoError(t, err)
	assert.Nil(t, res.Plan)
	assert.NotEmpty(t, res.Reply)
	assert.Equal(t, int64(150_000), res.Brief.Budget)
}

func TestHandleMessage_GeneratesAndPersistsPlan(t *testing.T) {
	uc, d := newUseCase(t)
	ctx := context.Background()

	d.playbook.EXPECT().Lookup("Beauty & Cosmetics").Return(domain.PlaybookEntry{
		Key:    "beauty_cosmetics",
		Config: domain.VerticalConfig{Label: "Beauty & Cosmetics"},
	}).Once()
	d.datasets.EXPECT().LoadDatasets(mock.Anything).Return(testDatasets(), nil).Once()

	var saved *domain.MediaPlan
	d.plans.EXPECT().SavePlan(mock.Anything, mock.Anything).
		Run(func(_ context.Context, plan *domain.MediaPlan) { saved = plan }).
		Return(nil).Once()

	id, err := uc.StartConversation(ctx)
	require.NoError(t, err)

	for _, msg := range []string{
		"launching a new skincare brand with RM150k, nationwide",
		"1",
		"both",
		"4 weeks",
	} {
		res, err := uc.HandleMessage(ctx, id, msg)
		require.NoError(t, err)
		require.Nil(t, res.Plan)
	}

	res, err := uc.HandleMessage(ctx, id, "a mix of both")
	require.NoError(t, err)
	require.NotNil(t, res.Plan)
	require.NotNil(t, saved)
	assert.Equal(t, res.Plan.ID, saved.ID)
	assert.Equal(t, int64(150_000), res.Plan.Summary.TotalBudget)
	assert.Contains(t, res.Reply, "plan")

	// the committed brief reflects the full dialogue
	brief, err := uc.GetBrief(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 4, brief.DurationWeeks)
	assert.Equal(t, domain.ChannelOTT, brief.ChannelPreference)
	assert.Equal(t, domain.BuyMixed, brief.BuyingType)
}

func TestHandleMessage_DatasetsNotReady(t *testing.T) {
	uc, d := newUseCase(t)
	ctx := context.Background()

	d.playbook.EXPECT().Lookup(mock.Anything).Return(domain.PlaybookEntry{}).Once()
	d.datasets.EXPECT().LoadDatasets(mock.Anything).Return(&port.Datasets{}, nil).Once()

	id, err := uc.StartConversation(ctx)
	require.NoError(t, err)
	uc.primeComplete(id)

	_, err = uc.HandleMessage(ctx, id, "looks good, go ahead")
	assert.ErrorIs(t, err, port.ErrNotReady)

	// the failed turn must not advance the conversation state
	brief, err := uc.GetBrief(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(150_000), brief.Budget)
}

func TestHandleMessage_NewerMessageSupersedes(t *testing.T) {
	uc, d := newUseCase(t)
	ctx := context.Background()

	d.playbook.EXPECT().Lookup(mock.Anything).Return(domain.PlaybookEntry{}).Maybe()

	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	d.datasets.EXPECT().LoadDatasets(mock.Anything).RunAndReturn(
		func(context.Context) (*port.Datasets, error) {
			if calls.Add(1) == 1 {
				close(started)
				<-release
			}
			return testDatasets(), nil
		}).Times(2)
	d.plans.EXPECT().SavePlan(mock.Anything, mock.Anything).Return(nil).Once()

	id, err := uc.StartConversation(ctx)
	require.NoError(t, err)
	uc.primeComplete(id)

	firstErr := make(chan error, 1)
	go func() {
		_, err := uc.HandleMessage(ctx, id, "go ahead")
		firstErr <- err
	}()
	<-started

	res, err := uc.HandleMessage(ctx, id, "actually regenerate it")
	require.NoError(t, err)
	require.NotNil(t, res.Plan)

	close(release)
	assert.ErrorIs(t, <-firstErr, port.ErrTurnSuperseded)
}

// primeComplete fast-forwards a conversation to a generation-ready brief.
func (uc *PlannerUseCase) primeComplete(id string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	s := uc.sessions[id]
	b := s.conv.Brief
	b.ProductBrand = "skincare line"
	b.Objective = domain.ObjectiveAwareness
	b.Industry = "Beauty & Cosmetics"
	b.Budget = 150_000
	b.Geography = []string{domain.GeoNationwide}
	b.DurationWeeks = 4
	b.ChannelPreference = domain.ChannelBalanced
	b.CreativeAsset = domain.CreativeHybrid
	b.BuyingType = domain.BuyMixed
	for _, topic := range []domain.ClarificationTopic{
		domain.TopicChannelPreference, domain.TopicCreativeAssets,
		domain.TopicGeography, domain.TopicDuration, domain.TopicBuyingType,
	} {
		b.SetClarification(topic, domain.ClarificationAnswered)
	}
	s.conv.State = conversation.StateReady
}
