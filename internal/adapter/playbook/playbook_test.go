package playbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planwise/internal/core/domain"
)

func TestNew_ParsesEmbeddedData(t *testing.T) {
	p, err := New()
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.GreaterOrEqual(t, len(p.verticals), 9)
}

func TestLookup_KnownVertical(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	entry := p.Lookup("Beauty & Cosmetics")
	assert.Equal(t, "beauty_cosmetics", entry.Key)
	assert.Equal(t, domain.PlaybookIndustry, entry.Source)
	require.NotNil(t, entry.Personas)
	assert.Contains(t, entry.Personas.Primary, "Beauty Enthusiasts")
	assert.NotEmpty(t, entry.Config.Funnel[domain.StageAwareness])
}

func TestLookup_AliasNormalization(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	assert.Equal(t, "f_b", p.Lookup("F&B (Halal)").Key)
	assert.Equal(t, "banking", p.Lookup("Insurance").Key)
	assert.Equal(t, "retail_ecommerce", p.Lookup("Fashion Retail").Key)
}

func TestLookup_UnknownFallsBackToGeneric(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	entry := p.Lookup("Space Mining")
	assert.Equal(t, "generic", entry.Key)
	assert.Equal(t, domain.PlaybookGeneric, entry.Source)
	assert.Nil(t, entry.Personas)
	assert.NotEmpty(t, entry.Config.Funnel[domain.StageAwareness])
}

func TestMatch_TextSignals(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	entry, ok := p.Match("launching a new postpaid data plan")
	require.True(t, ok)
	assert.Equal(t, "telco", entry.Key)

	_, ok = p.Match("hello there")
	assert.False(t, ok)
}
