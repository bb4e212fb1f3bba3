package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/greentrust/esg-audit/internal/entity"
)

func TestSummariesXLSX(t *testing.T) {
	dev := 6.7
	summaries := []entity.AuditSummary{
		{
			ID:                  uuid.New(),
			DocumentID:          uuid.New(),
			SourcePath:          "/data/invoice_001.txt",
			Verdict:             "COMPLIANT",
			TrustScore:          92.5,
			Completeness:        100,
			VerificationQuality: 95,
			DisclosureStandards: 80,
			DeviationPercent:    &dev,
			ExtractionMethod:    "pattern",
			StartedAt:           time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:             uuid.New(),
			DocumentID:     uuid.New(),
			SourcePath:     "/data/invoice_002.txt",
			Verdict:        "FLAGGED_FOR_HUMAN_REVIEW",
			RequiresReview: true,
			Flags:          []string{"greenwashing-suspected", "missing-supplier-id"},
			StartedAt:      time.Date(2026, 3, 15, 10, 1, 0, 0, time.UTC),
		},
	}

	b, err := SummariesXLSX(summaries)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Audits")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Audited At", rows[0][0])
	assert.Equal(t, "Verdict", rows[0][2])

	assert.Equal(t, "/data/invoice_001.txt", rows[1][1])
	assert.Equal(t, "COMPLIANT", rows[1][2])
	assert.Equal(t, "92.50", rows[1][3])
	assert.Equal(t, "+6.7", rows[1][7])

	assert.Equal(t, "FLAGGED_FOR_HUMAN_REVIEW", rows[2][2])
	assert.Contains(t, rows[2][10], "greenwashing-suspected")
}

func TestSummariesXLSXEmpty(t *testing.T) {
	b, err := SummariesXLSX(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Audits")
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only")
}
