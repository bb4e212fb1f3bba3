package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditSummary is the flattened audit row used for listings and export.
type AuditSummary struct {
	ID                  uuid.UUID  `json:"id"`
	DocumentID          uuid.UUID  `json:"document_id"`
	SourcePath          string     `json:"source_path,omitempty"`
	Verdict             string     `json:"verdict"`
	TrustScore          float64    `json:"trust_score"`
	Completeness        float64    `json:"completeness"`
	VerificationQuality float64    `json:"verification_quality"`
	DisclosureStandards float64    `json:"disclosure_standards"`
	DeviationPercent    *float64   `json:"deviation_percent,omitempty"`
	ExtractionMethod    string     `json:"extraction_method,omitempty"`
	RequiresReview      bool       `json:"requires_review"`
	FailureReason       string     `json:"failure_reason,omitempty"`
	Flags               []string   `json:"flags,omitempty"`
	StartedAt           time.Time  `json:"started_at"`
	FinishedAt          *time.Time `json:"finished_at,omitempty"`
}
