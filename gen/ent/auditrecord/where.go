// Code generated by ent, DO NOT EDIT.

package auditrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/greentrust/esg-audit/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldDocumentID, v))
}

// Verdict applies equality check predicate on the "verdict" field. It's identical to VerdictEQ.
func Verdict(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldVerdict, v))
}

// TrustScore applies equality check predicate on the "trust_score" field. It's identical to TrustScoreEQ.
func TrustScore(v float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldTrustScore, v))
}

// Completeness applies equality check predicate on the "completeness" field. It's identical to CompletenessEQ.
func Completeness(v float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldCompleteness, v))
}

// VerificationQuality applies equality check predicate on the "verification_quality" field. It's identical to VerificationQualityEQ.
func VerificationQuality(v float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldVerificationQuality, v))
}

// DisclosureStandards applies equality check predicate on the "disclosure_standards" field. It's identical to DisclosureStandardsEQ.
func DisclosureStandards(v float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldDisclosureStandards, v))
}

// DeviationPercent applies equality check predicate on the "deviation_percent" field. It's identical to DeviationPercentEQ.
func DeviationPercent(v float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldDeviationPercent, v))
}

// ExtractionMethod applies equality check predicate on the "extraction_method" field. It's identical to ExtractionMethodEQ.
func ExtractionMethod(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldExtractionMethod, v))
}

// RequiresReview applies equality check predicate on the "requires_review" field. It's identical to RequiresReviewEQ.
func RequiresReview(v bool) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldRequiresReview, v))
}

// FailureReason applies equality check predicate on the "failure_reason" field. It's identical to FailureReasonEQ.
func FailureReason(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldFailureReason, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldFinishedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNotIn(FieldDocumentID, vs...))
}

// VerdictEQ applies the EQ predicate on the "verdict" field.
func VerdictEQ(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldVerdict, v))
}

// VerdictNEQ applies the NEQ predicate on the "verdict" field.
func VerdictNEQ(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNEQ(FieldVerdict, v))
}

// VerdictIn applies the In predicate on the "verdict" field.
func VerdictIn(vs ...string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldIn(FieldVerdict, vs...))
}

// VerdictNotIn applies the NotIn predicate on the "verdict" field.
func VerdictNotIn(vs ...string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNotIn(FieldVerdict, vs...))
}

// VerdictGT applies the GT predicate on the "verdict" field.
func VerdictGT(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGT(FieldVerdict, v))
}

// VerdictGTE applies the GTE predicate on the "verdict" field.
func VerdictGTE(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGTE(FieldVerdict, v))
}

// VerdictLT applies the LT predicate on the "verdict" field.
func VerdictLT(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLT(FieldVerdict, v))
}

// VerdictLTE applies the LTE predicate on the "verdict" field.
func VerdictLTE(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLTE(FieldVerdict, v))
}

// VerdictContains applies the Contains predicate on the "verdict" field.
func VerdictContains(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldContains(FieldVerdict, v))
}

// VerdictHasPrefix applies the HasPrefix predicate on the "verdict" field.
func VerdictHasPrefix(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldHasPrefix(FieldVerdict, v))
}

// VerdictHasSuffix applies the HasSuffix predicate on the "verdict" field.
func VerdictHasSuffix(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldHasSuffix(FieldVerdict, v))
}

// VerdictEqualFold applies the EqualFold predicate on the "verdict" field.
func VerdictEqualFold(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEqualFold(FieldVerdict, v))
}

// VerdictContainsFold applies the ContainsFold predicate on the "verdict" field.
func VerdictContainsFold(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldContainsFold(FieldVerdict, v))
}

// TrustScoreEQ applies the EQ predicate on the "trust_score" field.
func TrustScoreEQ(v float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldTrustScore, v))
}

// TrustScoreNEQ applies the NEQ predicate on the "trust_score" field.
func TrustScoreNEQ(v float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNEQ(FieldTrustScore, v))
}

// TrustScoreIn applies the In predicate on the "trust_score" field.
func TrustScoreIn(vs ...float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldIn(FieldTrustScore, vs...))
}

// TrustScoreNotIn applies the NotIn predicate on the "trust_score" field.
func TrustScoreNotIn(vs ...float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNotIn(FieldTrustScore, vs...))
}

// TrustScoreGT applies the GT predicate on the "trust_score" field.
func TrustScoreGT(v float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGT(FieldTrustScore, v))
}

// TrustScoreGTE applies the GTE predicate on the "trust_score" field.
func TrustScoreGTE(v float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGTE(FieldTrustScore, v))
}

// TrustScoreLT applies the LT predicate on the "trust_score" field.
func TrustScoreLT(v float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLT(FieldTrustScore, v))
}

// TrustScoreLTE applies the LTE predicate on the "trust_score" field.
func TrustScoreLTE(v float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLTE(FieldTrustScore, v))
}

// CompletenessEQ applies the EQ predicate on the "completeness" field.
func CompletenessEQ(v float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldCompleteness, v))
}

// CompletenessNEQ applies the NEQ predicate on the "completeness" field.
func CompletenessNEQ(v float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNEQ(FieldCompleteness, v))
}

// CompletenessIn applies the In predicate on the "completeness" field.
func CompletenessIn(vs ...float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldIn(FieldCompleteness, vs...))
}

// CompletenessNotIn applies the NotIn predicate on the "completeness" field.
func CompletenessNotIn(vs ...float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNotIn(FieldCompleteness, vs...))
}

// CompletenessGT applies the GT predicate on the "completeness" field.
func CompletenessGT(v float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGT(FieldCompleteness, v))
}

// CompletenessGTE applies the GTE predicate on the "completeness" field.
func CompletenessGTE(v float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGTE(FieldCompleteness, v))
}

// CompletenessLT applies the LT predicate on the "completeness" field.
func CompletenessLT(v float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLT(FieldCompleteness, v))
}

// CompletenessLTE applies the LTE predicate on the "completeness" field.
func CompletenessLTE(v float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLTE(FieldCompleteness, v))
}

// VerificationQualityEQ applies the EQ predicate on the "verification_quality" field.
func VerificationQualityEQ(v float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldVerificationQuality, v))
}

// VerificationQualityNEQ applies the NEQ predicate on the "verification_quality" field.
func VerificationQualityNEQ(v float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNEQ(FieldVerificationQuality, v))
}

// VerificationQualityIn applies the In predicate on the "verification_quality" field.
func VerificationQualityIn(vs ...float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldIn(FieldVerificationQuality, vs...))
}

// VerificationQualityNotIn applies the NotIn predicate on the "verification_quality" field.
func VerificationQualityNotIn(vs ...float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNotIn(FieldVerificationQuality, vs...))
}

// VerificationQualityGT applies the GT predicate on the "verification_quality" field.
func VerificationQualityGT(v float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGT(FieldVerificationQuality, v))
}

// VerificationQualityGTE applies the GTE predicate on the "verification_quality" field.
func VerificationQualityGTE(v float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGTE(FieldVerificationQuality, v))
}

// VerificationQualityLT applies the LT predicate on the "verification_quality" field.
func VerificationQualityLT(v float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLT(FieldVerificationQuality, v))
}

// VerificationQualityLTE applies the LTE predicate on the "verification_quality" field.
func VerificationQualityLTE(v float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLTE(FieldVerificationQuality, v))
}

// DisclosureStandardsEQ applies the EQ predicate on the "disclosure_standards" field.
func DisclosureStandardsEQ(v float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldDisclosureStandards, v))
}

// DisclosureStandardsNEQ applies the NEQ predicate on the "disclosure_standards" field.
func DisclosureStandardsNEQ(v float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNEQ(FieldDisclosureStandards, v))
}

// DisclosureStandardsIn applies the In predicate on the "disclosure_standards" field.
func DisclosureStandardsIn(vs ...float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldIn(FieldDisclosureStandards, vs...))
}

// DisclosureStandardsNotIn applies the NotIn predicate on the "disclosure_standards" field.
func DisclosureStandardsNotIn(vs ...float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNotIn(FieldDisclosureStandards, vs...))
}

// DisclosureStandardsGT applies the GT predicate on the "disclosure_standards" field.
func DisclosureStandardsGT(v float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGT(FieldDisclosureStandards, v))
}

// DisclosureStandardsGTE applies the GTE predicate on the "disclosure_standards" field.
func DisclosureStandardsGTE(v float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGTE(FieldDisclosureStandards, v))
}

// DisclosureStandardsLT applies the LT predicate on the "disclosure_standards" field.
func DisclosureStandardsLT(v float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLT(FieldDisclosureStandards, v))
}

// DisclosureStandardsLTE applies the LTE predicate on the "disclosure_standards" field.
func DisclosureStandardsLTE(v float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLTE(FieldDisclosureStandards, v))
}

// DeviationPercentEQ applies the EQ predicate on the "deviation_percent" field.
func DeviationPercentEQ(v float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldDeviationPercent, v))
}

// DeviationPercentNEQ applies the NEQ predicate on the "deviation_percent" field.
func DeviationPercentNEQ(v float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNEQ(FieldDeviationPercent, v))
}

// DeviationPercentIn applies the In predicate on the "deviation_percent" field.
func DeviationPercentIn(vs ...float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldIn(FieldDeviationPercent, vs...))
}

// DeviationPercentNotIn applies the NotIn predicate on the "deviation_percent" field.
func DeviationPercentNotIn(vs ...float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNotIn(FieldDeviationPercent, vs...))
}

// DeviationPercentGT applies the GT predicate on the "deviation_percent" field.
func DeviationPercentGT(v float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGT(FieldDeviationPercent, v))
}

// DeviationPercentGTE applies the GTE predicate on the "deviation_percent" field.
func DeviationPercentGTE(v float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGTE(FieldDeviationPercent, v))
}

// DeviationPercentLT applies the LT predicate on the "deviation_percent" field.
func DeviationPercentLT(v float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLT(FieldDeviationPercent, v))
}

// DeviationPercentLTE applies the LTE predicate on the "deviation_percent" field.
func DeviationPercentLTE(v float64) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLTE(FieldDeviationPercent, v))
}

// DeviationPercentIsNil applies the IsNil predicate on the "deviation_percent" field.
func DeviationPercentIsNil() predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldIsNull(FieldDeviationPercent))
}

// DeviationPercentNotNil applies the NotNil predicate on the "deviation_percent" field.
func DeviationPercentNotNil() predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNotNull(FieldDeviationPercent))
}

// ExtractionMethodEQ applies the EQ predicate on the "extraction_method" field.
func ExtractionMethodEQ(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldExtractionMethod, v))
}

// ExtractionMethodNEQ applies the NEQ predicate on the "extraction_method" field.
func ExtractionMethodNEQ(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNEQ(FieldExtractionMethod, v))
}

// ExtractionMethodIn applies the In predicate on the "extraction_method" field.
func ExtractionMethodIn(vs ...string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldIn(FieldExtractionMethod, vs...))
}

// ExtractionMethodNotIn applies the NotIn predicate on the "extraction_method" field.
func ExtractionMethodNotIn(vs ...string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNotIn(FieldExtractionMethod, vs...))
}

// ExtractionMethodGT applies the GT predicate on the "extraction_method" field.
func ExtractionMethodGT(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGT(FieldExtractionMethod, v))
}

// ExtractionMethodGTE applies the GTE predicate on the "extraction_method" field.
func ExtractionMethodGTE(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGTE(FieldExtractionMethod, v))
}

// ExtractionMethodLT applies the LT predicate on the "extraction_method" field.
func ExtractionMethodLT(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLT(FieldExtractionMethod, v))
}

// ExtractionMethodLTE applies the LTE predicate on the "extraction_method" field.
func ExtractionMethodLTE(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLTE(FieldExtractionMethod, v))
}

// ExtractionMethodContains applies the Contains predicate on the "extraction_method" field.
func ExtractionMethodContains(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldContains(FieldExtractionMethod, v))
}

// ExtractionMethodHasPrefix applies the HasPrefix predicate on the "extraction_method" field.
func ExtractionMethodHasPrefix(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldHasPrefix(FieldExtractionMethod, v))
}

// ExtractionMethodHasSuffix applies the HasSuffix predicate on the "extraction_method" field.
func ExtractionMethodHasSuffix(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldHasSuffix(FieldExtractionMethod, v))
}

// ExtractionMethodIsNil applies the IsNil predicate on the "extraction_method" field.
func ExtractionMethodIsNil() predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldIsNull(FieldExtractionMethod))
}

// ExtractionMethodNotNil applies the NotNil predicate on the "extraction_method" field.
func ExtractionMethodNotNil() predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNotNull(FieldExtractionMethod))
}

// ExtractionMethodEqualFold applies the EqualFold predicate on the "extraction_method" field.
func ExtractionMethodEqualFold(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEqualFold(FieldExtractionMethod, v))
}

// ExtractionMethodContainsFold applies the ContainsFold predicate on the "extraction_method" field.
func ExtractionMethodContainsFold(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldContainsFold(FieldExtractionMethod, v))
}

// RequiresReviewEQ applies the EQ predicate on the "requires_review" field.
func RequiresReviewEQ(v bool) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldRequiresReview, v))
}

// RequiresReviewNEQ applies the NEQ predicate on the "requires_review" field.
func RequiresReviewNEQ(v bool) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNEQ(FieldRequiresReview, v))
}

// FailureReasonEQ applies the EQ predicate on the "failure_reason" field.
func FailureReasonEQ(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldFailureReason, v))
}

// FailureReasonNEQ applies the NEQ predicate on the "failure_reason" field.
func FailureReasonNEQ(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNEQ(FieldFailureReason, v))
}

// FailureReasonIn applies the In predicate on the "failure_reason" field.
func FailureReasonIn(vs ...string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldIn(FieldFailureReason, vs...))
}

// FailureReasonNotIn applies the NotIn predicate on the "failure_reason" field.
func FailureReasonNotIn(vs ...string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNotIn(FieldFailureReason, vs...))
}

// FailureReasonGT applies the GT predicate on the "failure_reason" field.
func FailureReasonGT(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGT(FieldFailureReason, v))
}

// FailureReasonGTE applies the GTE predicate on the "failure_reason" field.
func FailureReasonGTE(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGTE(FieldFailureReason, v))
}

// FailureReasonLT applies the LT predicate on the "failure_reason" field.
func FailureReasonLT(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLT(FieldFailureReason, v))
}

// FailureReasonLTE applies the LTE predicate on the "failure_reason" field.
func FailureReasonLTE(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLTE(FieldFailureReason, v))
}

// FailureReasonContains applies the Contains predicate on the "failure_reason" field.
func FailureReasonContains(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldContains(FieldFailureReason, v))
}

// FailureReasonHasPrefix applies the HasPrefix predicate on the "failure_reason" field.
func FailureReasonHasPrefix(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldHasPrefix(FieldFailureReason, v))
}

// FailureReasonHasSuffix applies the HasSuffix predicate on the "failure_reason" field.
func FailureReasonHasSuffix(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldHasSuffix(FieldFailureReason, v))
}

// FailureReasonIsNil applies the IsNil predicate on the "failure_reason" field.
func FailureReasonIsNil() predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldIsNull(FieldFailureReason))
}

// FailureReasonNotNil applies the NotNil predicate on the "failure_reason" field.
func FailureReasonNotNil() predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNotNull(FieldFailureReason))
}

// FailureReasonEqualFold applies the EqualFold predicate on the "failure_reason" field.
func FailureReasonEqualFold(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEqualFold(FieldFailureReason, v))
}

// FailureReasonContainsFold applies the ContainsFold predicate on the "failure_reason" field.
func FailureReasonContainsFold(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldContainsFold(FieldFailureReason, v))
}

// FlagsIsNil applies the IsNil predicate on the "flags" field.
func FlagsIsNil() predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldIsNull(FieldFlags))
}

// FlagsNotNil applies the NotNil predicate on the "flags" field.
func FlagsNotNil() predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNotNull(FieldFlags))
}

// InvoiceIsNil applies the IsNil predicate on the "invoice" field.
func InvoiceIsNil() predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldIsNull(FieldInvoice))
}

// InvoiceNotNil applies the NotNil predicate on the "invoice" field.
func InvoiceNotNil() predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNotNull(FieldInvoice))
}

// HistoryIsNil applies the IsNil predicate on the "history" field.
func HistoryIsNil() predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldIsNull(FieldHistory))
}

// HistoryNotNil applies the NotNil predicate on the "history" field.
func HistoryNotNil() predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNotNull(FieldHistory))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNotNull(FieldFinishedAt))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.AuditRecord {
	return predicate.AuditRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.InvoiceDocument) predicate.AuditRecord {
	return predicate.AuditRecord(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AuditRecord) predicate.AuditRecord {
	return predicate.AuditRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AuditRecord) predicate.AuditRecord {
	return predicate.AuditRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AuditRecord) predicate.AuditRecord {
	return predicate.AuditRecord(sql.NotPredicates(p))
}
