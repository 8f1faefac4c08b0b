package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"planwise/internal/core/domain"
	"planwise/internal/core/port/mocks"
)

func newExtractor(t *testing.T) *Extractor {
	pb := mocks.NewMockPlaybookProvider(t)
	pb.EXPECT().Match(mock.Anything).Return(domain.PlaybookEntry{}, false).Maybe()
	return New(pb)
}

func TestExtract_SkincareLaunch(t *testing.T) {
	e := newExtractor(t)
	brief := domain.NewBrief()

	ch := e.Extract("We're launching a new skincare brand and want people to know about it", brief)
	ch.Apply(brief)

	assert.Equal(t, domain.ObjectiveAwareness, brief.Objective)
	assert.Equal(t, "Beauty & Cosmetics", brief.Industry)
	assert.Zero(t, brief.Budget)
	assert.False(t, brief.NeedsBudgetSuggestion)
}

func TestExtract_BudgetGeoAndChannelFocus(t *testing.T) {
	e := newExtractor(t)
	brief := domain.NewBrief()

	ch := e.Extract("RM150k for 2 weeks nationwide, focus on OTT", brief)
	ch.Apply(brief)

	assert.Equal(t, int64(150_000), brief.Budget)
	assert.Equal(t, []string{domain.GeoNationwide}, brief.Geography)
	assert.Equal(t, domain.ChannelOTT, brief.ChannelPreference)
	assert.Equal(t, domain.ClarificationAnswered, brief.Clarification(domain.TopicChannelPreference))
	// duration stays open until its clarification has been asked
	assert.Zero(t, brief.DurationWeeks)
}

func TestExtract_BudgetForms(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int64
	}{
		{"rm with k suffix", "around RM80k should do", 80_000},
		{"rm plain", "budget is RM 120,000", 120_000},
		{"standalone k", "we have 50k to spend", 50_000},
		{"plain number", "spending 200000 on this", 200_000},
		{"qualitative small", "we only have a small budget", 50_000},
		{"qualitative large", "big budget campaign", 200_000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newExtractor(t)
			brief := domain.NewBrief()
			ch := e.Extract(tt.text, brief)
			ch.Apply(brief)
			assert.Equal(t, tt.want, brief.Budget)
		})
	}
}

func TestExtract_BudgetUncertainty(t *testing.T) {
	e := newExtractor(t)
	brief := domain.NewBrief()

	ch := e.Extract("not sure about the budget, what would you recommend?", brief)
	ch.Apply(brief)

	assert.Zero(t, brief.Budget)
	assert.True(t, brief.NeedsBudgetSuggestion)
}

func TestExtract_DurationGatedOnClarification(t *testing.T) {
	e := newExtractor(t)

	brief := domain.NewBrief()
	ch := e.Extract("run it for 2 months", brief)
	ch.Apply(brief)
	assert.Zero(t, brief.DurationWeeks)

	brief.SetClarification(domain.TopicDuration, domain.ClarificationAsked)
	ch = e.Extract("run it for 2 months", brief)
	ch.Apply(brief)
	assert.Equal(t, 8, brief.DurationWeeks)
}

func TestExtract_SeasonalContext(t *testing.T) {
	e := newExtractor(t)
	brief := domain.NewBrief()

	ch := e.Extract("Raya promo for our chocolate gift hampers", brief)
	ch.Apply(brief)

	assert.Equal(t, domain.SeasonRaya, brief.Seasonal)
	assert.Equal(t, domain.CultureMalay, brief.Cultural)
	assert.Equal(t, "F&B", brief.Industry)
	assert.Contains(t, brief.ContextPersonas, "Muslim Households")
}

func TestExtract_HalalRefinesIndustry(t *testing.T) {
	e := newExtractor(t)
	brief := domain.NewBrief()

	ch := e.Extract("promoting our halal snack range", brief)
	ch.Apply(brief)

	assert.Equal(t, "F&B (Halal)", brief.Industry)
	assert.Equal(t, domain.CultureMalay, brief.Cultural)
}

func TestExtract_Geography(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"region alias", "target the northern region", []string{"Penang", "Kedah", "Perlis", "Perak"}},
		{"east malaysia", "we want Sabah and Sarawak covered", []string{"Sabah", "Sarawak", "Labuan"}},
		{"kl shorthand", "just KL for now", []string{"Kuala Lumpur"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newExtractor(t)
			brief := domain.NewBrief()
			ch := e.Extract(tt.text, brief)
			ch.Apply(brief)
			assert.ElementsMatch(t, tt.want, brief.Geography)
		})
	}
}

func TestExtract_BuyingTypeAndPriority(t *testing.T) {
	e := newExtractor(t)
	brief := domain.NewBrief()

	ch := e.Extract("we want premium homepage takeovers with maximum reach", brief)
	ch.Apply(brief)

	assert.Equal(t, domain.BuyDirect, brief.BuyingType)
	assert.Equal(t, domain.PriorityMaxReach, brief.Priority)
}

func TestExtract_SalesVetoedWhenDescribingProduct(t *testing.T) {
	e := newExtractor(t)
	brief := domain.NewBrief()

	ch := e.Extract("I'm selling bottled water, what do you suggest for sales?", brief)
	ch.Apply(brief)

	assert.Empty(t, brief.Objective)
	assert.Equal(t, "F&B", brief.Industry)
}

func TestExtract_KnownFieldsAreStable(t *testing.T) {
	e := newExtractor(t)
	brief := domain.NewBrief()

	text := "launch our new perfume nationwide with RM100k"
	ch := e.Extract(text, brief)
	ch.Apply(brief)
	require.Equal(t, int64(100_000), brief.Budget)
	require.Equal(t, "Beauty & Cosmetics", brief.Industry)

	// a second pass over the same utterance must not produce new updates
	again := e.Extract(text, brief)
	assert.Empty(t, again.Objective)
	assert.Empty(t, again.Industry)
	assert.Zero(t, again.Budget)
	assert.Empty(t, again.Geography)
}

func TestExtract_PlaybookFallback(t *testing.T) {
	pb := mocks.NewMockPlaybookProvider(t)
	pb.EXPECT().Match(mock.Anything).Return(domain.PlaybookEntry{
		Key:    "telco",
		Config: domain.VerticalConfig{Label: "Telco"},
	}, true).Once()
	e := New(pb)

	brief := domain.NewBrief()
	ch := e.Extract("postpaid plan campaign", brief)
	ch.Apply(brief)

	assert.Equal(t, "Telco", brief.Industry)
	assert.Equal(t, "telco", brief.IndustryKey)
}
