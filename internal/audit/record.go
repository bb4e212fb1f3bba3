package audit

import (
	"time"

	"github.com/google/uuid"

	"github.com/greentrust/esg-audit/constants"
	"github.com/greentrust/esg-audit/internal/benchmark"
	"github.com/greentrust/esg-audit/internal/entity"
	"github.com/greentrust/esg-audit/internal/risk"
)

// StageEntry is one line of the reasoning trail.
type StageEntry struct {
	Stage   constants.Stage  `json:"stage"`
	At      time.Time        `json:"at"`
	Outcome string           `json:"outcome"`
	Flags   []constants.Flag `json:"flags,omitempty"`
}

// Record is the terminal artifact of one audit: the normalized invoice, the
// verification result, the score breakdown, the full stage history, and the
// verdict. One Record per input document; no state is shared across audits.
type Record struct {
	ID               uuid.UUID                  `json:"id"`
	DocumentID       string                     `json:"document_id"`
	ExtractionMethod constants.ExtractionMethod `json:"extraction_method,omitempty"`
	Invoice          entity.NormalizedInvoice   `json:"invoice"`
	Benchmark        benchmark.Resolution       `json:"benchmark"`
	Risk             risk.Profile               `json:"risk"`
	Verification     entity.VerificationResult  `json:"verification"`
	Score            entity.TrustScoreBreakdown `json:"score"`
	Verdict          constants.Verdict          `json:"verdict"`
	FailureReason    string                     `json:"failure_reason,omitempty"`
	History          []StageEntry               `json:"history"`
	StartedAt        time.Time                  `json:"started_at"`
	FinishedAt       *time.Time                 `json:"finished_at,omitempty"`

	sealed bool
}

// NewRecord opens the audit trail for one document.
func NewRecord(documentID string) *Record {
	return &Record{
		ID:         uuid.New(),
		DocumentID: documentID,
		StartedAt:  time.Now().UTC(),
	}
}

// appendStage adds one history entry. Writes after sealing are dropped;
// a Record is read-only once the workflow reaches a terminal state.
func (r *Record) appendStage(stage constants.Stage, outcome string, flags []constants.Flag) {
	if r.sealed {
		return
	}
	r.History = append(r.History, StageEntry{
		Stage:   stage,
		At:      time.Now().UTC(),
		Outcome: outcome,
		Flags:   flags,
	})
}

func (r *Record) seal() {
	if r.sealed {
		return
	}
	now := time.Now().UTC()
	r.FinishedAt = &now
	r.sealed = true
}

// Sealed reports whether the record has reached its terminal state.
func (r *Record) Sealed() bool {
	return r.sealed
}
