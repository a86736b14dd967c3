package criteria

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func section(name, raw string, subs ...*Subsection) *Section {
	return &Section{Name: name, RawName: raw, Subsections: subs}
}

func TestMergeContinuedSections_FoldsContinuation(t *testing.T) {
	first := &Subsection{Name: "Stance"}
	other := &Subsection{Name: "Signals"}
	second := &Subsection{Name: "Timing"}

	merged := MergeContinuedSections([]*Section{
		section("PLATE WORK", "PLATE WORK", first),
		section("Other", "Other", other),
		section("PLATE WORK (Continued)", "PLATE WORK (Continued)", second),
	})

	require.Len(t, merged, 2)
	assert.Equal(t, "PLATE WORK", merged[0].Name)
	assert.Equal(t, "Other", merged[1].Name)
	assert.Equal(t, []*Subsection{first, second}, merged[0].Subsections)
	assert.Equal(t, "PLATE WORK, PLATE WORK (Continued)", merged[0].RawName)
}

func TestMergeContinuedSections_CaseInsensitiveSuffix(t *testing.T) {
	merged := MergeContinuedSections([]*Section{
		section("Base Work", "BASE WORK"),
		section("Base Work (CONTINUED)", "BASE WORK (CONTINUED)"),
	})

	require.Len(t, merged, 1)
	assert.Equal(t, "Base Work", merged[0].Name)
}

func TestMergeContinuedSections_DoesNotRepeatRecordedRawName(t *testing.T) {
	merged := MergeContinuedSections([]*Section{
		section("Plate Work", "PLATE WORK (Continued)"),
		section("Plate Work (Continued)", "PLATE WORK (Continued)"),
	})

	require.Len(t, merged, 1)
	assert.Equal(t, "PLATE WORK (Continued)", merged[0].RawName)
}

func TestMergeContinuedSections_Empty(t *testing.T) {
	assert.Empty(t, MergeContinuedSections(nil))
}
