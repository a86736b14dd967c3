package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/htaso/evaltracker/internal/evaluation"
)

func TestPDFReport(t *testing.T) {
	data, err := PDF(sampleRecord(), "")
	require.NoError(t, err)

	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestPDFReportMissingLogo(t *testing.T) {
	data, err := PDF(sampleRecord(), "does/not/exist.png")
	require.NoError(t, err, "a missing logo is skipped, not fatal")
	assert.NotEmpty(t, data)
}

func TestPDFReportNothingRated(t *testing.T) {
	rec := &evaluation.Record{EvaluatorName: "Pat Doyle", TrainerName: "Chris Smith"}
	data, err := PDF(rec, "")
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
