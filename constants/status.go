package constants

// Stage is the canonical name for a step in the audit workflow.
type Stage string

// Stable values (store these exact strings in stage history and DB).
const (
	StageReceived   Stage = "RECEIVED"
	StageExtracted  Stage = "EXTRACTED"
	StageNormalized Stage = "NORMALIZED"
	StageResolved   Stage = "RESOLVED" // benchmark + risk join point
	StageVerified   Stage = "VERIFIED"
	StageScored     Stage = "SCORED"
	StageTerminal   Stage = "TERMINAL"
)

// Verdict is the terminal outcome of one audit.
type Verdict string

const (
	VerdictCompliant   Verdict = "COMPLIANT"
	VerdictRemediation Verdict = "REMEDIATION_REQUIRED"
	VerdictHumanReview Verdict = "FLAGGED_FOR_HUMAN_REVIEW"
)

// ExtractionMethod records which extractor produced the invoice record.
type ExtractionMethod string

const (
	ExtractionLLM     ExtractionMethod = "llm"
	ExtractionPattern ExtractionMethod = "pattern"
)
