package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAssessor(t *testing.T) *Assessor {
	t.Helper()
	regions, err := DefaultRegions()
	require.NoError(t, err)
	return NewAssessor(regions)
}

func TestAssessNormalRoute(t *testing.T) {
	a := testAssessor(t)

	p := a.Assess("Mumbai Port", "Delhi Warehouse")
	assert.Equal(t, TierNormal, p.Tier)
	assert.Equal(t, "no watch-list match", p.Rationale)
}

func TestAssessConflictZone(t *testing.T) {
	a := testAssessor(t)

	p := a.Assess("Kabul, Afghanistan", "Karachi")
	assert.Equal(t, TierHigh, p.Tier)
	assert.Contains(t, p.Rationale, "conflict zones")
	assert.Contains(t, p.Rationale, "Afghanistan")
}

func TestAssessSanctionedCountry(t *testing.T) {
	a := testAssessor(t)

	p := a.Assess("Shanghai", "Tehran, Iran")
	assert.Equal(t, TierHigh, p.Tier)
	assert.Contains(t, p.Rationale, "sanctioned countries")
}

func TestAssessElevatedTier(t *testing.T) {
	a := testAssessor(t)

	p := a.Assess("Manaus, Amazon Basin", "Santos")
	assert.Equal(t, TierElevated, p.Tier)
	assert.Contains(t, p.Rationale, "environmental risk")
}

func TestAssessHighWinsOverElevated(t *testing.T) {
	a := testAssessor(t)

	p := a.Assess("Amazon Basin", "Damascus, Syria")
	assert.Equal(t, TierHigh, p.Tier)
}

func TestAssessCaseInsensitive(t *testing.T) {
	a := testAssessor(t)

	p := a.Assess("pyongyang, NORTH KOREA", "Vladivostok")
	assert.Equal(t, TierHigh, p.Tier)
}

func TestAssessDeterministicRationale(t *testing.T) {
	a := testAssessor(t)

	first := a.Assess("Sanaa, Yemen via Mogadishu, Somalia", "Aden")
	for range 50 {
		assert.Equal(t, first, a.Assess("Sanaa, Yemen via Mogadishu, Somalia", "Aden"))
	}
}

func TestAssessEmptyEndpoints(t *testing.T) {
	a := testAssessor(t)

	p := a.Assess("", "")
	assert.Equal(t, TierNormal, p.Tier)
}
