package criteria

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// row builds an 11-column worksheet row from sparse cell assignments.
func row(cells map[int]any) []any {
	out := make([]any, maxColumns)
	for i, v := range cells {
		out[i] = v
	}
	return out
}

func sectionRow(label string) []any {
	return row(map[int]any{colSection: label})
}

func subsectionRow(name string, scoreCells map[int]any) []any {
	cells := map[int]any{colLabel: name}
	for i, v := range scoreCells {
		cells[i] = v
	}
	return row(cells)
}

func itemRow(label, text string) []any {
	return row(map[int]any{colLabel: label, colText: text})
}

func TestExtractSections_BasicTree(t *testing.T) {
	sections := ExtractSections([][]any{
		sectionRow("PLATE WORK"),
		subsectionRow("Stance", map[int]any{colScore1: "Score", colScore2: 25.0}),
		itemRow("1.", "Maintains proper stance"),
		itemRow("2. N/A", "Signals clearly"),
	})

	require.Len(t, sections, 1)
	assert.Equal(t, "Plate Work", sections[0].Name)
	assert.Equal(t, "PLATE WORK", sections[0].RawName)

	require.Len(t, sections[0].Subsections, 1)
	sub := sections[0].Subsections[0]
	assert.Equal(t, "Stance", sub.Name)
	require.NotNil(t, sub.MaxScore)
	assert.Equal(t, 25, *sub.MaxScore)

	require.Len(t, sub.Items, 2)
	assert.Equal(t, "plate_work_stance_01", sub.Items[0].Key)
	assert.Equal(t, "Maintains proper stance", sub.Items[0].Text)
	assert.False(t, sub.Items[0].AllowNA)
	assert.Equal(t, "plate_work_stance_02", sub.Items[1].Key)
	assert.True(t, sub.Items[1].AllowNA)
}

func TestExtractSections_ContinuationMergesIntoPreviousItem(t *testing.T) {
	sections := ExtractSections([][]any{
		sectionRow("PLATE WORK"),
		subsectionRow("Stance", map[int]any{colScore1: "Score out of 25"}),
		itemRow("1.", "Maintains proper stance"),
		itemRow("", "and footwork."),
	})

	require.Len(t, sections, 1)
	items := sections[0].Subsections[0].Items
	require.Len(t, items, 1)
	assert.Equal(t, "Maintains proper stance and footwork.", items[0].Text)
}

func TestExtractSections_OrdinalWithConnectorWordContinues(t *testing.T) {
	sections := ExtractSections([][]any{
		sectionRow("BASE WORK"),
		subsectionRow("Rotation", map[int]any{colScore2: "Score"}),
		itemRow("1.", "Moves quickly"),
		itemRow("2.", "To the proper position"),
		itemRow("3.", "Calls the play decisively"),
	})

	items := sections[0].Subsections[0].Items
	require.Len(t, items, 2)
	assert.Equal(t, "Moves quickly To the proper position", items[0].Text)
	assert.Equal(t, "Calls the play decisively", items[1].Text)
}

func TestExtractSections_LowercaseStartContinuesUnderAnyLabel(t *testing.T) {
	sections := ExtractSections([][]any{
		sectionRow("BASE WORK"),
		subsectionRow("Rotation", map[int]any{colScore2: "Score"}),
		itemRow("1.", "Covers third base"),
		itemRow("note", "when the runner advances."),
	})

	items := sections[0].Subsections[0].Items
	require.Len(t, items, 1)
	assert.Equal(t, "Covers third base when the runner advances.", items[0].Text)
}

func TestExtractSections_HyphenTailJoinsWithoutSpace(t *testing.T) {
	sections := ExtractSections([][]any{
		sectionRow("PLATE WORK"),
		subsectionRow("Stance", map[int]any{colScore1: "Score"}),
		itemRow("1.", "Watches the check-"),
		itemRow("", "swing carefully."),
	})

	items := sections[0].Subsections[0].Items
	require.Len(t, items, 1)
	assert.Equal(t, "Watches the check-swing carefully.", items[0].Text)
}

func TestExtractSections_ScoringRowNotMistakenForSection(t *testing.T) {
	sections := ExtractSections([][]any{
		sectionRow("PLATE WORK"),
		sectionRow("Score out of 25"),
		sectionRow("Pass or Fail"),
		sectionRow("BASE WORK"),
	})

	require.Len(t, sections, 2)
	assert.Equal(t, "Plate Work", sections[0].Name)
	assert.Equal(t, "Base Work", sections[1].Name)
}

func TestExtractSections_RowsBeforeFirstSectionSkipped(t *testing.T) {
	sections := ExtractSections([][]any{
		itemRow("1.", "Orphan item text"),
		subsectionRow("Orphan", map[int]any{colScore1: "Score"}),
		sectionRow("PLATE WORK"),
	})

	require.Len(t, sections, 1)
	assert.Empty(t, sections[0].Subsections)
}

func TestExtractSections_ItemRowsWithoutSubsectionSkipped(t *testing.T) {
	sections := ExtractSections([][]any{
		sectionRow("PLATE WORK"),
		itemRow("1.", "No subsection yet"),
	})

	require.Len(t, sections, 1)
	assert.Empty(t, sections[0].Subsections)
}

func TestExtractSections_MaxScoreFromEmbeddedInteger(t *testing.T) {
	sections := ExtractSections([][]any{
		sectionRow("GAME MANAGEMENT"),
		subsectionRow("Hustle", map[int]any{colScore3: "Pass or Fail, score out of 10"}),
	})

	sub := sections[0].Subsections[0]
	require.NotNil(t, sub.MaxScore)
	assert.Equal(t, 10, *sub.MaxScore)
}

func TestExtractSections_NoNumbersLeavesMaxScoreNil(t *testing.T) {
	sections := ExtractSections([][]any{
		sectionRow("GAME MANAGEMENT"),
		subsectionRow("Hustle", map[int]any{colScore3: "Pass or Fail"}),
	})

	assert.Nil(t, sections[0].Subsections[0].MaxScore)
}

func TestExtractSections_NewSectionResetsContinuationState(t *testing.T) {
	sections := ExtractSections([][]any{
		sectionRow("PLATE WORK"),
		subsectionRow("Stance", map[int]any{colScore1: "Score"}),
		itemRow("1.", "Maintains proper stance"),
		sectionRow("BASE WORK"),
		itemRow("", "and footwork."),
	})

	require.Len(t, sections, 2)
	// The continuation row after the new section header has no subsection
	// to attach to, so it is dropped rather than merged across sections.
	assert.Len(t, sections[0].Subsections[0].Items, 1)
	assert.Empty(t, sections[1].Subsections)
}

func TestLoadFromWorkbook_MissingFile(t *testing.T) {
	sections, err := LoadFromWorkbook("testdata/does-not-exist.xlsx")
	assert.Error(t, err)
	assert.Empty(t, sections)
}
