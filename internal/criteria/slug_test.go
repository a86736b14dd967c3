package criteria

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlug_JoinsPartsWithUnderscores(t *testing.T) {
	assert.Equal(t, "plate_work_stance_01", Slug("Plate Work", "Stance", "01"))
}

func TestSlug_SkipsEmptyParts(t *testing.T) {
	assert.Equal(t, "base_work_03", Slug("Base Work", "", "03"))
}

func TestSlug_FallbackWhenNothingSurvives(t *testing.T) {
	assert.Equal(t, "criterion", Slug("", ""))
	assert.Equal(t, "criterion", Slug("!!!", "???"))
}

func TestSlug_StripsAccentsToASCII(t *testing.T) {
	assert.Equal(t, "senor_arbitro_01", Slug("Señor Árbitro", "01"))
}

func TestSlug_CollapsesPunctuationRuns(t *testing.T) {
	assert.Equal(t, "pre_game_check_in_02", Slug("Pre-Game", "Check-In!", "02"))
}

func TestSlug_Deterministic(t *testing.T) {
	first := Slug("Plate Work", "Mechanics & Timing", "07")
	second := Slug("Plate Work", "Mechanics & Timing", "07")
	assert.Equal(t, first, second)
}
