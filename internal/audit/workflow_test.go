package audit

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greentrust/esg-audit/constants"
	"github.com/greentrust/esg-audit/internal/benchmark"
	"github.com/greentrust/esg-audit/internal/entity"
	"github.com/greentrust/esg-audit/internal/normalize"
	"github.com/greentrust/esg-audit/internal/risk"
	"github.com/greentrust/esg-audit/internal/score"
	"github.com/greentrust/esg-audit/internal/verify"
)

func ptr(v float64) *float64 { return &v }

// stubExtractor returns a fixed record, or panics on demand to exercise the
// workflow boundary.
type stubExtractor struct {
	rec    entity.InvoiceRecord
	panics bool
}

func (s *stubExtractor) Extract(context.Context, string) (entity.InvoiceRecord, constants.ExtractionMethod) {
	if s.panics {
		panic("extractor blew up")
	}
	return s.rec, constants.ExtractionPattern
}

func testWorkflow(t *testing.T, extractor *stubExtractor) *Workflow {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	table, err := benchmark.DefaultTable()
	require.NoError(t, err)
	regions, err := risk.DefaultRegions()
	require.NoError(t, err)

	return NewWorkflow(
		extractor,
		normalize.NewNormalizer("USD", normalize.DefaultRates("USD")),
		benchmark.NewResolver(table, logger),
		risk.NewAssessor(regions),
		verify.NewEngine(logger),
		score.NewScorer(score.DefaultConfig(), logger),
		logger,
	)
}

func compliantRecord() entity.InvoiceRecord {
	return entity.InvoiceRecord{
		SupplierID:    "SUP-IN-2026-001",
		Origin:        "Pune",
		Destination:   "Nagpur",
		Mode:          constants.ModeRoad,
		WeightKG:      ptr(12000),
		DistanceKM:    ptr(1400),
		CO2eKG:        ptr(1650), // benchmark 0.096*12*1400 = 1612.8, within band
		AmountTotal:   ptr(4500),
		CurrencyCode:  "USD",
		FactorSource:  constants.FactorIndustryAverage,
		PriorYearCO2e: ptr(1800),
	}
}

func stageNames(rec *Record) []constants.Stage {
	out := make([]constants.Stage, len(rec.History))
	for i, e := range rec.History {
		out[i] = e.Stage
	}
	return out
}

func TestRunCompliantAudit(t *testing.T) {
	w := testWorkflow(t, &stubExtractor{rec: compliantRecord()})

	rec := w.Run(context.Background(), "doc-1", "raw text")
	assert.Equal(t, constants.VerdictCompliant, rec.Verdict)
	assert.False(t, rec.Verification.RequiresReview)
	assert.True(t, rec.Sealed())
	require.NotNil(t, rec.FinishedAt)

	assert.Equal(t, []constants.Stage{
		constants.StageReceived,
		constants.StageExtracted,
		constants.StageNormalized,
		constants.StageResolved,
		constants.StageVerified,
		constants.StageScored,
		constants.StageTerminal,
	}, stageNames(rec))
}

func TestRunHighRiskRouteGoesToReview(t *testing.T) {
	invoice := compliantRecord()
	invoice.Origin = "Damascus, Syria"
	w := testWorkflow(t, &stubExtractor{rec: invoice})

	rec := w.Run(context.Background(), "doc-2", "raw")
	assert.Equal(t, constants.VerdictHumanReview, rec.Verdict)
	assert.Equal(t, risk.TierHigh, rec.Risk.Tier)
	assert.True(t, rec.Verification.HasFlag(constants.FlagHighRiskRegion))
}

func TestRunUnknownCurrencyDegradesToFlag(t *testing.T) {
	invoice := compliantRecord()
	invoice.CurrencyCode = "XYZ"
	w := testWorkflow(t, &stubExtractor{rec: invoice})

	rec := w.Run(context.Background(), "doc-3", "raw")
	assert.True(t, rec.Verification.HasFlag(constants.FlagUnknownCurrency))
	assert.NotEqual(t, "", string(rec.Verdict), "a verdict is always reached")
	assert.Equal(t, constants.StageTerminal, rec.History[len(rec.History)-1].Stage)
}

func TestRunPanicLandsInHumanReview(t *testing.T) {
	w := testWorkflow(t, &stubExtractor{panics: true})

	rec := w.Run(context.Background(), "doc-4", "raw")
	assert.Equal(t, constants.VerdictHumanReview, rec.Verdict)
	assert.Contains(t, rec.FailureReason, "internal failure")
	assert.True(t, rec.Sealed())
	assert.Equal(t, constants.StageTerminal, rec.History[len(rec.History)-1].Stage)
}

func TestRunCancelledContext(t *testing.T) {
	w := testWorkflow(t, &stubExtractor{rec: compliantRecord()})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := w.Run(ctx, "doc-5", "raw")
	assert.Equal(t, constants.VerdictHumanReview, rec.Verdict)
	assert.Contains(t, rec.FailureReason, "audit abandoned")
	assert.True(t, rec.Sealed())
}

func TestRunEmptyDocumentStillTerminates(t *testing.T) {
	w := testWorkflow(t, &stubExtractor{rec: entity.InvoiceRecord{FactorSource: constants.FactorUnspecified}})

	rec := w.Run(context.Background(), "doc-6", "")
	assert.True(t, rec.Sealed())
	assert.NotEqual(t, "", string(rec.Verdict))
	// nothing extracted: no benchmark, heavy completeness penalty
	assert.True(t, rec.Benchmark.Partial)
	assert.Equal(t, constants.VerdictHumanReview, rec.Verdict, "missing supplier id forces review")
}

func TestRunBatchOrdered(t *testing.T) {
	w := testWorkflow(t, &stubExtractor{rec: compliantRecord()})

	docs := make([]Document, 8)
	for i := range docs {
		docs[i] = Document{ID: string(rune('a' + i)), RawText: "raw"}
	}

	records := w.RunBatch(context.Background(), docs, 3, true)
	require.Len(t, records, len(docs))
	for i, rec := range records {
		require.NotNil(t, rec)
		assert.Equal(t, docs[i].ID, rec.DocumentID, "ordered batch preserves input order")
		assert.True(t, rec.Sealed())
	}
}

func TestRunBatchFailuresStayLocal(t *testing.T) {
	// Panicking extractor: every record individually lands in review, and the
	// batch itself survives.
	w := testWorkflow(t, &stubExtractor{panics: true})

	docs := []Document{{ID: "x", RawText: "a"}, {ID: "y", RawText: "b"}}
	records := w.RunBatch(context.Background(), docs, 2, true)
	require.Len(t, records, 2)
	for _, rec := range records {
		assert.Equal(t, constants.VerdictHumanReview, rec.Verdict)
	}
}

func TestRunBatchEmptyInput(t *testing.T) {
	w := testWorkflow(t, &stubExtractor{rec: compliantRecord()})
	assert.Nil(t, w.RunBatch(context.Background(), nil, 4, true))
}

func TestRecordSealDropsLateWrites(t *testing.T) {
	rec := NewRecord("doc")
	rec.appendStage(constants.StageReceived, "ok", nil)
	rec.seal()
	rec.appendStage(constants.StageScored, "late", nil)

	require.Len(t, rec.History, 1)
	assert.Equal(t, constants.StageReceived, rec.History[0].Stage)
}
