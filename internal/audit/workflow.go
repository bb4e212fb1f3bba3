package audit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/greentrust/esg-audit/constants"
	"github.com/greentrust/esg-audit/internal/benchmark"
	"github.com/greentrust/esg-audit/internal/entity"
	"github.com/greentrust/esg-audit/internal/extract"
	"github.com/greentrust/esg-audit/internal/normalize"
	"github.com/greentrust/esg-audit/internal/risk"
	"github.com/greentrust/esg-audit/internal/score"
	"github.com/greentrust/esg-audit/internal/verify"
)

// Workflow sequences the audit stages:
// Received -> Extracted -> Normalized -> Resolved (benchmark ∥ risk) ->
// Verified -> Scored -> Terminal.
// Transitions are strictly forward. Any failure that is not an explicit
// domain error is caught at the workflow boundary and lands the document in
// the human-review terminal state; the workflow never crashes a batch.
type Workflow struct {
	extractor  extract.InvoiceExtractor
	normalizer *normalize.Normalizer
	resolver   *benchmark.Resolver
	assessor   *risk.Assessor
	engine     *verify.Engine
	scorer     *score.Scorer
	log        *slog.Logger
}

func NewWorkflow(
	extractor extract.InvoiceExtractor,
	normalizer *normalize.Normalizer,
	resolver *benchmark.Resolver,
	assessor *risk.Assessor,
	engine *verify.Engine,
	scorer *score.Scorer,
	logger *slog.Logger,
) *Workflow {
	if logger == nil {
		logger = slog.Default()
	}
	return &Workflow{
		extractor:  extractor,
		normalizer: normalizer,
		resolver:   resolver,
		assessor:   assessor,
		engine:     engine,
		scorer:     scorer,
		log:        logger,
	}
}

// Run audits one document and always returns a sealed terminal Record.
func (w *Workflow) Run(ctx context.Context, documentID, rawText string) (rec *Record) {
	rec = NewRecord(documentID)
	rec.appendStage(constants.StageReceived, fmt.Sprintf("document received (%d bytes)", len(rawText)), nil)

	defer func() {
		if r := recover(); r != nil {
			w.log.Error("audit.stage_panic", "document_id", documentID, "cause", r)
			w.failToReview(rec, fmt.Sprintf("internal failure: %v", r))
		}
		rec.seal()
	}()

	// Extracted. The primary/fallback switch is internal to the extractor
	// and invisible here beyond the recorded method.
	invoice, method := w.extractor.Extract(ctx, rawText)
	rec.ExtractionMethod = method
	rec.appendStage(constants.StageExtracted, "method="+string(method), nil)

	if err := ctx.Err(); err != nil {
		w.failToReview(rec, "audit abandoned: "+err.Error())
		return rec
	}

	// Normalized. Domain validation errors degrade to flags, never abort.
	var domainFlags []constants.Flag
	norm, err := w.normalizer.Normalize(invoice)
	if err != nil {
		var unknown *normalize.UnknownCurrencyError
		if errors.As(err, &unknown) {
			domainFlags = append(domainFlags, constants.FlagUnknownCurrency)
			rec.appendStage(constants.StageNormalized, "unknown currency "+unknown.Code, domainFlags)
		} else {
			domainFlags = append(domainFlags, constants.FlagMalformedNumeric)
			rec.appendStage(constants.StageNormalized, "normalization error: "+err.Error(), domainFlags)
		}
		norm = entity.NormalizedInvoice{
			InvoiceRecord:     invoice,
			ReportingCurrency: w.normalizer.ReportingCurrency,
		}
	} else {
		rec.appendStage(constants.StageNormalized, "reporting currency "+norm.ReportingCurrency, nil)
	}
	rec.Invoice = norm

	if err := ctx.Err(); err != nil {
		w.failToReview(rec, "audit abandoned: "+err.Error())
		return rec
	}

	// Resolved: benchmark and risk have no data dependency and run
	// concurrently; both complete before verification (join point).
	var (
		wg      sync.WaitGroup
		res     benchmark.Resolution
		profile risk.Profile
		resErr  error
		riskErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		defer recoverTo(&resErr)
		res = w.resolver.ResolveShipment(&norm)
	}()
	go func() {
		defer wg.Done()
		defer recoverTo(&riskErr)
		origin, destination := riskEndpoints(&norm)
		profile = w.assessor.Assess(origin, destination)
	}()
	wg.Wait()

	if resErr != nil || riskErr != nil {
		w.failToReview(rec, "resolution failure: "+errors.Join(resErr, riskErr).Error())
		return rec
	}
	rec.Benchmark = res
	rec.Risk = profile
	rec.appendStage(constants.StageResolved,
		fmt.Sprintf("benchmark partial=%t, risk tier=%s", res.Partial, profile.Tier), nil)

	// Verified
	vr := w.engine.Verify(&norm, res, profile, domainFlags...)
	rec.Verification = vr
	rec.appendStage(constants.StageVerified, verifyOutcome(&vr), vr.Flags)

	// Scored
	breakdown := w.scorer.Score(&norm, &vr)
	rec.Score = breakdown
	rec.appendStage(constants.StageScored, fmt.Sprintf("trust score %.1f", breakdown.Total), nil)

	// Terminal
	rec.Verdict = w.scorer.Verdict(&breakdown, &vr)
	rec.appendStage(constants.StageTerminal, string(rec.Verdict), nil)

	w.log.Info("audit.done",
		"document_id", documentID,
		"verdict", rec.Verdict,
		"trust_score", breakdown.Total,
		"extraction_method", method,
	)
	return rec
}

// failToReview forces the human-review terminal state with the cause recorded.
func (w *Workflow) failToReview(rec *Record, reason string) {
	if rec.Verdict != "" {
		return
	}
	rec.FailureReason = reason
	rec.Verdict = constants.VerdictHumanReview
	rec.appendStage(constants.StageTerminal, string(rec.Verdict)+": "+reason, nil)
}

func recoverTo(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("panic: %v", r)
	}
}

// riskEndpoints flattens multimodal legs so every intermediate stop is
// visible to the watch lists.
func riskEndpoints(inv *entity.NormalizedInvoice) (string, string) {
	if !inv.Multimodal() {
		return inv.Origin, inv.Destination
	}
	var origins, destinations []string
	if inv.Origin != "" {
		origins = append(origins, inv.Origin)
	}
	if inv.Destination != "" {
		destinations = append(destinations, inv.Destination)
	}
	for _, leg := range inv.Legs {
		if leg.Origin != "" {
			origins = append(origins, leg.Origin)
		}
		if leg.Destination != "" {
			destinations = append(destinations, leg.Destination)
		}
	}
	return strings.Join(origins, "; "), strings.Join(destinations, "; ")
}

func verifyOutcome(vr *entity.VerificationResult) string {
	if vr.DeviationPercent == nil {
		return "no deviation available"
	}
	return fmt.Sprintf("deviation %+.1f%%", *vr.DeviationPercent)
}
