package criteria

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean_NilYieldsEmpty(t *testing.T) {
	assert.Equal(t, "", Clean(nil))
}

func TestClean_WholeFloatDropsDecimal(t *testing.T) {
	assert.Equal(t, "25", Clean(25.0))
	assert.Equal(t, "3", Clean(3))
	assert.Equal(t, "2.5", Clean(2.5))
}

func TestClean_ReplacesTypographicPunctuation(t *testing.T) {
	assert.Equal(t, `Plate - work "calls" don't`, Clean("Plate – work “calls” don’t"))
	assert.Equal(t, "pre-game", Clean("pre—game"))
	assert.Equal(t, "it's", Clean("it�s"))
}

func TestClean_PreservesBullet(t *testing.T) {
	assert.Equal(t, "• stance", Clean("• stance"))
}

func TestClean_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "keeps proper position", Clean("  keeps\nproper\r\n  position\t "))
}

func TestClean_NFKCNormalization(t *testing.T) {
	// Fullwidth digits fold to ASCII under NFKC.
	assert.Equal(t, "25", Clean("２５"))
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Plate Work", TitleCase("PLATE WORK"))
	assert.Equal(t, "Base Work (Continued)", TitleCase("BASE WORK (CONTINUED)"))
	assert.Equal(t, "", TitleCase(""))
}
