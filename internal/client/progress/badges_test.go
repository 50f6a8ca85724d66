package progress

import (
	"testing"

	"github.com/glasses-man/exampilot/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_IDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, b := range Catalog {
		assert.False(t, seen[b.ID], "duplicate badge id %q", b.ID)
		seen[b.ID] = true
		require.NotNil(t, b.Earned, "badge %q has no predicate", b.ID)
		assert.NotEmpty(t, b.Name)
		assert.NotEmpty(t, b.Description)
	}
}

func TestByID(t *testing.T) {
	b, ok := ByID("questions_50")
	require.True(t, ok)
	assert.Equal(t, "Scholar", b.Name)

	_, ok = ByID("does_not_exist")
	assert.False(t, ok)
}

func TestCatalog_ThresholdPredicates(t *testing.T) {
	p := models.Profile{TotalQuestions: 50, Streak: 7, Tier: models.TierFree}

	assertEarned := func(id string, want bool) {
		b, ok := ByID(id)
		require.True(t, ok, id)
		assert.Equal(t, want, b.Earned(p), id)
	}

	assertEarned("first_question", false) // exactly-one rule
	assertEarned("questions_10", true)
	assertEarned("questions_50", true)
	assertEarned("questions_100", false)
	assertEarned("streak_3", true)
	assertEarned("streak_7", true)
	assertEarned("streak_30", false)
	assertEarned("premium", false)
}
