// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/greentrust/esg-audit/gen/ent/auditrecord"
	"github.com/greentrust/esg-audit/gen/ent/invoicedocument"
	"github.com/greentrust/esg-audit/gen/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAuditRecord     = "AuditRecord"
	TypeInvoiceDocument = "InvoiceDocument"
)

// AuditRecordMutation represents an operation that mutates the AuditRecord nodes in the graph.
type AuditRecordMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	verdict                 *string
	trust_score             *float64
	addtrust_score          *float64
	completeness            *float64
	addcompleteness         *float64
	verification_quality    *float64
	addverification_quality *float64
	disclosure_standards    *float64
	adddisclosure_standards *float64
	deviation_percent       *float64
	adddeviation_percent    *float64
	extraction_method       *string
	requires_review         *bool
	failure_reason          *string
	flags                   *json.RawMessage
	appendflags             json.RawMessage
	invoice                 *json.RawMessage
	appendinvoice           json.RawMessage
	history                 *json.RawMessage
	appendhistory           json.RawMessage
	started_at              *time.Time
	finished_at             *time.Time
	clearedFields           map[string]struct{}
	document                *uuid.UUID
	cleareddocument         bool
	done                    bool
	oldValue                func(context.Context) (*AuditRecord, error)
	predicates              []predicate.AuditRecord
}

var _ ent.Mutation = (*AuditRecordMutation)(nil)

// auditrecordOption allows management of the mutation configuration using functional options.
type auditrecordOption func(*AuditRecordMutation)

// newAuditRecordMutation creates new mutation for the AuditRecord entity.
func newAuditRecordMutation(c config, op Op, opts ...auditrecordOption) *AuditRecordMutation {
	m := &AuditRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditRecordID sets the ID field of the mutation.
func withAuditRecordID(id uuid.UUID) auditrecordOption {
	return func(m *AuditRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditRecord
		)
		m.oldValue = func(ctx context.Context) (*AuditRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditRecord sets the old AuditRecord of the mutation.
func withAuditRecord(node *AuditRecord) auditrecordOption {
	return func(m *AuditRecordMutation) {
		m.oldValue = func(context.Context) (*AuditRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditRecord entities.
func (m *AuditRecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditRecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditRecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *AuditRecordMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *AuditRecordMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *AuditRecordMutation) ResetDocumentID() {
	m.document = nil
}

// SetVerdict sets the "verdict" field.
func (m *AuditRecordMutation) SetVerdict(s string) {
	m.verdict = &s
}

// Verdict returns the value of the "verdict" field in the mutation.
func (m *AuditRecordMutation) Verdict() (r string, exists bool) {
	v := m.verdict
	if v == nil {
		return
	}
	return *v, true
}

// OldVerdict returns the old "verdict" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldVerdict(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerdict is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerdict requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerdict: %w", err)
	}
	return oldValue.Verdict, nil
}

// ResetVerdict resets all changes to the "verdict" field.
func (m *AuditRecordMutation) ResetVerdict() {
	m.verdict = nil
}

// SetTrustScore sets the "trust_score" field.
func (m *AuditRecordMutation) SetTrustScore(f float64) {
	m.trust_score = &f
	m.addtrust_score = nil
}

// TrustScore returns the value of the "trust_score" field in the mutation.
func (m *AuditRecordMutation) TrustScore() (r float64, exists bool) {
	v := m.trust_score
	if v == nil {
		return
	}
	return *v, true
}

// OldTrustScore returns the old "trust_score" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldTrustScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrustScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrustScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrustScore: %w", err)
	}
	return oldValue.TrustScore, nil
}

// AddTrustScore adds f to the "trust_score" field.
func (m *AuditRecordMutation) AddTrustScore(f float64) {
	if m.addtrust_score != nil {
		*m.addtrust_score += f
	} else {
		m.addtrust_score = &f
	}
}

// AddedTrustScore returns the value that was added to the "trust_score" field in this mutation.
func (m *AuditRecordMutation) AddedTrustScore() (r float64, exists bool) {
	v := m.addtrust_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetTrustScore resets all changes to the "trust_score" field.
func (m *AuditRecordMutation) ResetTrustScore() {
	m.trust_score = nil
	m.addtrust_score = nil
}

// SetCompleteness sets the "completeness" field.
func (m *AuditRecordMutation) SetCompleteness(f float64) {
	m.completeness = &f
	m.addcompleteness = nil
}

// Completeness returns the value of the "completeness" field in the mutation.
func (m *AuditRecordMutation) Completeness() (r float64, exists bool) {
	v := m.completeness
	if v == nil {
		return
	}
	return *v, true
}

// OldCompleteness returns the old "completeness" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldCompleteness(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompleteness is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompleteness requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompleteness: %w", err)
	}
	return oldValue.Completeness, nil
}

// AddCompleteness adds f to the "completeness" field.
func (m *AuditRecordMutation) AddCompleteness(f float64) {
	if m.addcompleteness != nil {
		*m.addcompleteness += f
	} else {
		m.addcompleteness = &f
	}
}

// AddedCompleteness returns the value that was added to the "completeness" field in this mutation.
func (m *AuditRecordMutation) AddedCompleteness() (r float64, exists bool) {
	v := m.addcompleteness
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompleteness resets all changes to the "completeness" field.
func (m *AuditRecordMutation) ResetCompleteness() {
	m.completeness = nil
	m.addcompleteness = nil
}

// SetVerificationQuality sets the "verification_quality" field.
func (m *AuditRecordMutation) SetVerificationQuality(f float64) {
	m.verification_quality = &f
	m.addverification_quality = nil
}

// VerificationQuality returns the value of the "verification_quality" field in the mutation.
func (m *AuditRecordMutation) VerificationQuality() (r float64, exists bool) {
	v := m.verification_quality
	if v == nil {
		return
	}
	return *v, true
}

// OldVerificationQuality returns the old "verification_quality" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldVerificationQuality(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerificationQuality is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerificationQuality requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerificationQuality: %w", err)
	}
	return oldValue.VerificationQuality, nil
}

// AddVerificationQuality adds f to the "verification_quality" field.
func (m *AuditRecordMutation) AddVerificationQuality(f float64) {
	if m.addverification_quality != nil {
		*m.addverification_quality += f
	} else {
		m.addverification_quality = &f
	}
}

// AddedVerificationQuality returns the value that was added to the "verification_quality" field in this mutation.
func (m *AuditRecordMutation) AddedVerificationQuality() (r float64, exists bool) {
	v := m.addverification_quality
	if v == nil {
		return
	}
	return *v, true
}

// ResetVerificationQuality resets all changes to the "verification_quality" field.
func (m *AuditRecordMutation) ResetVerificationQuality() {
	m.verification_quality = nil
	m.addverification_quality = nil
}

// SetDisclosureStandards sets the "disclosure_standards" field.
func (m *AuditRecordMutation) SetDisclosureStandards(f float64) {
	m.disclosure_standards = &f
	m.adddisclosure_standards = nil
}

// DisclosureStandards returns the value of the "disclosure_standards" field in the mutation.
func (m *AuditRecordMutation) DisclosureStandards() (r float64, exists bool) {
	v := m.disclosure_standards
	if v == nil {
		return
	}
	return *v, true
}

// OldDisclosureStandards returns the old "disclosure_standards" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldDisclosureStandards(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisclosureStandards is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisclosureStandards requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisclosureStandards: %w", err)
	}
	return oldValue.DisclosureStandards, nil
}

// AddDisclosureStandards adds f to the "disclosure_standards" field.
func (m *AuditRecordMutation) AddDisclosureStandards(f float64) {
	if m.adddisclosure_standards != nil {
		*m.adddisclosure_standards += f
	} else {
		m.adddisclosure_standards = &f
	}
}

// AddedDisclosureStandards returns the value that was added to the "disclosure_standards" field in this mutation.
func (m *AuditRecordMutation) AddedDisclosureStandards() (r float64, exists bool) {
	v := m.adddisclosure_standards
	if v == nil {
		return
	}
	return *v, true
}

// ResetDisclosureStandards resets all changes to the "disclosure_standards" field.
func (m *AuditRecordMutation) ResetDisclosureStandards() {
	m.disclosure_standards = nil
	m.adddisclosure_standards = nil
}

// SetDeviationPercent sets the "deviation_percent" field.
func (m *AuditRecordMutation) SetDeviationPercent(f float64) {
	m.deviation_percent = &f
	m.adddeviation_percent = nil
}

// DeviationPercent returns the value of the "deviation_percent" field in the mutation.
func (m *AuditRecordMutation) DeviationPercent() (r float64, exists bool) {
	v := m.deviation_percent
	if v == nil {
		return
	}
	return *v, true
}

// OldDeviationPercent returns the old "deviation_percent" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldDeviationPercent(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeviationPercent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeviationPercent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeviationPercent: %w", err)
	}
	return oldValue.DeviationPercent, nil
}

// AddDeviationPercent adds f to the "deviation_percent" field.
func (m *AuditRecordMutation) AddDeviationPercent(f float64) {
	if m.adddeviation_percent != nil {
		*m.adddeviation_percent += f
	} else {
		m.adddeviation_percent = &f
	}
}

// AddedDeviationPercent returns the value that was added to the "deviation_percent" field in this mutation.
func (m *AuditRecordMutation) AddedDeviationPercent() (r float64, exists bool) {
	v := m.adddeviation_percent
	if v == nil {
		return
	}
	return *v, true
}

// ClearDeviationPercent clears the value of the "deviation_percent" field.
func (m *AuditRecordMutation) ClearDeviationPercent() {
	m.deviation_percent = nil
	m.adddeviation_percent = nil
	m.clearedFields[auditrecord.FieldDeviationPercent] = struct{}{}
}

// DeviationPercentCleared returns if the "deviation_percent" field was cleared in this mutation.
func (m *AuditRecordMutation) DeviationPercentCleared() bool {
	_, ok := m.clearedFields[auditrecord.FieldDeviationPercent]
	return ok
}

// ResetDeviationPercent resets all changes to the "deviation_percent" field.
func (m *AuditRecordMutation) ResetDeviationPercent() {
	m.deviation_percent = nil
	m.adddeviation_percent = nil
	delete(m.clearedFields, auditrecord.FieldDeviationPercent)
}

// SetExtractionMethod sets the "extraction_method" field.
func (m *AuditRecordMutation) SetExtractionMethod(s string) {
	m.extraction_method = &s
}

// ExtractionMethod returns the value of the "extraction_method" field in the mutation.
func (m *AuditRecordMutation) ExtractionMethod() (r string, exists bool) {
	v := m.extraction_method
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionMethod returns the old "extraction_method" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldExtractionMethod(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionMethod: %w", err)
	}
	return oldValue.ExtractionMethod, nil
}

// ClearExtractionMethod clears the value of the "extraction_method" field.
func (m *AuditRecordMutation) ClearExtractionMethod() {
	m.extraction_method = nil
	m.clearedFields[auditrecord.FieldExtractionMethod] = struct{}{}
}

// ExtractionMethodCleared returns if the "extraction_method" field was cleared in this mutation.
func (m *AuditRecordMutation) ExtractionMethodCleared() bool {
	_, ok := m.clearedFields[auditrecord.FieldExtractionMethod]
	return ok
}

// ResetExtractionMethod resets all changes to the "extraction_method" field.
func (m *AuditRecordMutation) ResetExtractionMethod() {
	m.extraction_method = nil
	delete(m.clearedFields, auditrecord.FieldExtractionMethod)
}

// SetRequiresReview sets the "requires_review" field.
func (m *AuditRecordMutation) SetRequiresReview(b bool) {
	m.requires_review = &b
}

// RequiresReview returns the value of the "requires_review" field in the mutation.
func (m *AuditRecordMutation) RequiresReview() (r bool, exists bool) {
	v := m.requires_review
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiresReview returns the old "requires_review" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldRequiresReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiresReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiresReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiresReview: %w", err)
	}
	return oldValue.RequiresReview, nil
}

// ResetRequiresReview resets all changes to the "requires_review" field.
func (m *AuditRecordMutation) ResetRequiresReview() {
	m.requires_review = nil
}

// SetFailureReason sets the "failure_reason" field.
func (m *AuditRecordMutation) SetFailureReason(s string) {
	m.failure_reason = &s
}

// FailureReason returns the value of the "failure_reason" field in the mutation.
func (m *AuditRecordMutation) FailureReason() (r string, exists bool) {
	v := m.failure_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureReason returns the old "failure_reason" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldFailureReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureReason: %w", err)
	}
	return oldValue.FailureReason, nil
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (m *AuditRecordMutation) ClearFailureReason() {
	m.failure_reason = nil
	m.clearedFields[auditrecord.FieldFailureReason] = struct{}{}
}

// FailureReasonCleared returns if the "failure_reason" field was cleared in this mutation.
func (m *AuditRecordMutation) FailureReasonCleared() bool {
	_, ok := m.clearedFields[auditrecord.FieldFailureReason]
	return ok
}

// ResetFailureReason resets all changes to the "failure_reason" field.
func (m *AuditRecordMutation) ResetFailureReason() {
	m.failure_reason = nil
	delete(m.clearedFields, auditrecord.FieldFailureReason)
}

// SetFlags sets the "flags" field.
func (m *AuditRecordMutation) SetFlags(jm json.RawMessage) {
	m.flags = &jm
	m.appendflags = nil
}

// Flags returns the value of the "flags" field in the mutation.
func (m *AuditRecordMutation) Flags() (r json.RawMessage, exists bool) {
	v := m.flags
	if v == nil {
		return
	}
	return *v, true
}

// OldFlags returns the old "flags" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldFlags(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlags: %w", err)
	}
	return oldValue.Flags, nil
}

// AppendFlags adds jm to the "flags" field.
func (m *AuditRecordMutation) AppendFlags(jm json.RawMessage) {
	m.appendflags = append(m.appendflags, jm...)
}

// AppendedFlags returns the list of values that were appended to the "flags" field in this mutation.
func (m *AuditRecordMutation) AppendedFlags() (json.RawMessage, bool) {
	if len(m.appendflags) == 0 {
		return nil, false
	}
	return m.appendflags, true
}

// ClearFlags clears the value of the "flags" field.
func (m *AuditRecordMutation) ClearFlags() {
	m.flags = nil
	m.appendflags = nil
	m.clearedFields[auditrecord.FieldFlags] = struct{}{}
}

// FlagsCleared returns if the "flags" field was cleared in this mutation.
func (m *AuditRecordMutation) FlagsCleared() bool {
	_, ok := m.clearedFields[auditrecord.FieldFlags]
	return ok
}

// ResetFlags resets all changes to the "flags" field.
func (m *AuditRecordMutation) ResetFlags() {
	m.flags = nil
	m.appendflags = nil
	delete(m.clearedFields, auditrecord.FieldFlags)
}

// SetInvoice sets the "invoice" field.
func (m *AuditRecordMutation) SetInvoice(jm json.RawMessage) {
	m.invoice = &jm
	m.appendinvoice = nil
}

// Invoice returns the value of the "invoice" field in the mutation.
func (m *AuditRecordMutation) Invoice() (r json.RawMessage, exists bool) {
	v := m.invoice
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoice returns the old "invoice" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldInvoice(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoice: %w", err)
	}
	return oldValue.Invoice, nil
}

// AppendInvoice adds jm to the "invoice" field.
func (m *AuditRecordMutation) AppendInvoice(jm json.RawMessage) {
	m.appendinvoice = append(m.appendinvoice, jm...)
}

// AppendedInvoice returns the list of values that were appended to the "invoice" field in this mutation.
func (m *AuditRecordMutation) AppendedInvoice() (json.RawMessage, bool) {
	if len(m.appendinvoice) == 0 {
		return nil, false
	}
	return m.appendinvoice, true
}

// ClearInvoice clears the value of the "invoice" field.
func (m *AuditRecordMutation) ClearInvoice() {
	m.invoice = nil
	m.appendinvoice = nil
	m.clearedFields[auditrecord.FieldInvoice] = struct{}{}
}

// InvoiceCleared returns if the "invoice" field was cleared in this mutation.
func (m *AuditRecordMutation) InvoiceCleared() bool {
	_, ok := m.clearedFields[auditrecord.FieldInvoice]
	return ok
}

// ResetInvoice resets all changes to the "invoice" field.
func (m *AuditRecordMutation) ResetInvoice() {
	m.invoice = nil
	m.appendinvoice = nil
	delete(m.clearedFields, auditrecord.FieldInvoice)
}

// SetHistory sets the "history" field.
func (m *AuditRecordMutation) SetHistory(jm json.RawMessage) {
	m.history = &jm
	m.appendhistory = nil
}

// History returns the value of the "history" field in the mutation.
func (m *AuditRecordMutation) History() (r json.RawMessage, exists bool) {
	v := m.history
	if v == nil {
		return
	}
	return *v, true
}

// OldHistory returns the old "history" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldHistory(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHistory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHistory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHistory: %w", err)
	}
	return oldValue.History, nil
}

// AppendHistory adds jm to the "history" field.
func (m *AuditRecordMutation) AppendHistory(jm json.RawMessage) {
	m.appendhistory = append(m.appendhistory, jm...)
}

// AppendedHistory returns the list of values that were appended to the "history" field in this mutation.
func (m *AuditRecordMutation) AppendedHistory() (json.RawMessage, bool) {
	if len(m.appendhistory) == 0 {
		return nil, false
	}
	return m.appendhistory, true
}

// ClearHistory clears the value of the "history" field.
func (m *AuditRecordMutation) ClearHistory() {
	m.history = nil
	m.appendhistory = nil
	m.clearedFields[auditrecord.FieldHistory] = struct{}{}
}

// HistoryCleared returns if the "history" field was cleared in this mutation.
func (m *AuditRecordMutation) HistoryCleared() bool {
	_, ok := m.clearedFields[auditrecord.FieldHistory]
	return ok
}

// ResetHistory resets all changes to the "history" field.
func (m *AuditRecordMutation) ResetHistory() {
	m.history = nil
	m.appendhistory = nil
	delete(m.clearedFields, auditrecord.FieldHistory)
}

// SetStartedAt sets the "started_at" field.
func (m *AuditRecordMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AuditRecordMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AuditRecordMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *AuditRecordMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *AuditRecordMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *AuditRecordMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[auditrecord.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *AuditRecordMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[auditrecord.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *AuditRecordMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, auditrecord.FieldFinishedAt)
}

// ClearDocument clears the "document" edge to the InvoiceDocument entity.
func (m *AuditRecordMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[auditrecord.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the InvoiceDocument entity was cleared.
func (m *AuditRecordMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *AuditRecordMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *AuditRecordMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the AuditRecordMutation builder.
func (m *AuditRecordMutation) Where(ps ...predicate.AuditRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditRecord).
func (m *AuditRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditRecordMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.document != nil {
		fields = append(fields, auditrecord.FieldDocumentID)
	}
	if m.verdict != nil {
		fields = append(fields, auditrecord.FieldVerdict)
	}
	if m.trust_score != nil {
		fields = append(fields, auditrecord.FieldTrustScore)
	}
	if m.completeness != nil {
		fields = append(fields, auditrecord.FieldCompleteness)
	}
	if m.verification_quality != nil {
		fields = append(fields, auditrecord.FieldVerificationQuality)
	}
	if m.disclosure_standards != nil {
		fields = append(fields, auditrecord.FieldDisclosureStandards)
	}
	if m.deviation_percent != nil {
		fields = append(fields, auditrecord.FieldDeviationPercent)
	}
	if m.extraction_method != nil {
		fields = append(fields, auditrecord.FieldExtractionMethod)
	}
	if m.requires_review != nil {
		fields = append(fields, auditrecord.FieldRequiresReview)
	}
	if m.failure_reason != nil {
		fields = append(fields, auditrecord.FieldFailureReason)
	}
	if m.flags != nil {
		fields = append(fields, auditrecord.FieldFlags)
	}
	if m.invoice != nil {
		fields = append(fields, auditrecord.FieldInvoice)
	}
	if m.history != nil {
		fields = append(fields, auditrecord.FieldHistory)
	}
	if m.started_at != nil {
		fields = append(fields, auditrecord.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, auditrecord.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditrecord.FieldDocumentID:
		return m.DocumentID()
	case auditrecord.FieldVerdict:
		return m.Verdict()
	case auditrecord.FieldTrustScore:
		return m.TrustScore()
	case auditrecord.FieldCompleteness:
		return m.Completeness()
	case auditrecord.FieldVerificationQuality:
		return m.VerificationQuality()
	case auditrecord.FieldDisclosureStandards:
		return m.DisclosureStandards()
	case auditrecord.FieldDeviationPercent:
		return m.DeviationPercent()
	case auditrecord.FieldExtractionMethod:
		return m.ExtractionMethod()
	case auditrecord.FieldRequiresReview:
		return m.RequiresReview()
	case auditrecord.FieldFailureReason:
		return m.FailureReason()
	case auditrecord.FieldFlags:
		return m.Flags()
	case auditrecord.FieldInvoice:
		return m.Invoice()
	case auditrecord.FieldHistory:
		return m.History()
	case auditrecord.FieldStartedAt:
		return m.StartedAt()
	case auditrecord.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditrecord.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case auditrecord.FieldVerdict:
		return m.OldVerdict(ctx)
	case auditrecord.FieldTrustScore:
		return m.OldTrustScore(ctx)
	case auditrecord.FieldCompleteness:
		return m.OldCompleteness(ctx)
	case auditrecord.FieldVerificationQuality:
		return m.OldVerificationQuality(ctx)
	case auditrecord.FieldDisclosureStandards:
		return m.OldDisclosureStandards(ctx)
	case auditrecord.FieldDeviationPercent:
		return m.OldDeviationPercent(ctx)
	case auditrecord.FieldExtractionMethod:
		return m.OldExtractionMethod(ctx)
	case auditrecord.FieldRequiresReview:
		return m.OldRequiresReview(ctx)
	case auditrecord.FieldFailureReason:
		return m.OldFailureReason(ctx)
	case auditrecord.FieldFlags:
		return m.OldFlags(ctx)
	case auditrecord.FieldInvoice:
		return m.OldInvoice(ctx)
	case auditrecord.FieldHistory:
		return m.OldHistory(ctx)
	case auditrecord.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case auditrecord.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditrecord.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case auditrecord.FieldVerdict:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerdict(v)
		return nil
	case auditrecord.FieldTrustScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrustScore(v)
		return nil
	case auditrecord.FieldCompleteness:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompleteness(v)
		return nil
	case auditrecord.FieldVerificationQuality:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerificationQuality(v)
		return nil
	case auditrecord.FieldDisclosureStandards:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisclosureStandards(v)
		return nil
	case auditrecord.FieldDeviationPercent:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeviationPercent(v)
		return nil
	case auditrecord.FieldExtractionMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionMethod(v)
		return nil
	case auditrecord.FieldRequiresReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiresReview(v)
		return nil
	case auditrecord.FieldFailureReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureReason(v)
		return nil
	case auditrecord.FieldFlags:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlags(v)
		return nil
	case auditrecord.FieldInvoice:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoice(v)
		return nil
	case auditrecord.FieldHistory:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHistory(v)
		return nil
	case auditrecord.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case auditrecord.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditRecordMutation) AddedFields() []string {
	var fields []string
	if m.addtrust_score != nil {
		fields = append(fields, auditrecord.FieldTrustScore)
	}
	if m.addcompleteness != nil {
		fields = append(fields, auditrecord.FieldCompleteness)
	}
	if m.addverification_quality != nil {
		fields = append(fields, auditrecord.FieldVerificationQuality)
	}
	if m.adddisclosure_standards != nil {
		fields = append(fields, auditrecord.FieldDisclosureStandards)
	}
	if m.adddeviation_percent != nil {
		fields = append(fields, auditrecord.FieldDeviationPercent)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case auditrecord.FieldTrustScore:
		return m.AddedTrustScore()
	case auditrecord.FieldCompleteness:
		return m.AddedCompleteness()
	case auditrecord.FieldVerificationQuality:
		return m.AddedVerificationQuality()
	case auditrecord.FieldDisclosureStandards:
		return m.AddedDisclosureStandards()
	case auditrecord.FieldDeviationPercent:
		return m.AddedDeviationPercent()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case auditrecord.FieldTrustScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTrustScore(v)
		return nil
	case auditrecord.FieldCompleteness:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompleteness(v)
		return nil
	case auditrecord.FieldVerificationQuality:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVerificationQuality(v)
		return nil
	case auditrecord.FieldDisclosureStandards:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDisclosureStandards(v)
		return nil
	case auditrecord.FieldDeviationPercent:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDeviationPercent(v)
		return nil
	}
	return fmt.Errorf("unknown AuditRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditrecord.FieldDeviationPercent) {
		fields = append(fields, auditrecord.FieldDeviationPercent)
	}
	if m.FieldCleared(auditrecord.FieldExtractionMethod) {
		fields = append(fields, auditrecord.FieldExtractionMethod)
	}
	if m.FieldCleared(auditrecord.FieldFailureReason) {
		fields = append(fields, auditrecord.FieldFailureReason)
	}
	if m.FieldCleared(auditrecord.FieldFlags) {
		fields = append(fields, auditrecord.FieldFlags)
	}
	if m.FieldCleared(auditrecord.FieldInvoice) {
		fields = append(fields, auditrecord.FieldInvoice)
	}
	if m.FieldCleared(auditrecord.FieldHistory) {
		fields = append(fields, auditrecord.FieldHistory)
	}
	if m.FieldCleared(auditrecord.FieldFinishedAt) {
		fields = append(fields, auditrecord.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditRecordMutation) ClearField(name string) error {
	switch name {
	case auditrecord.FieldDeviationPercent:
		m.ClearDeviationPercent()
		return nil
	case auditrecord.FieldExtractionMethod:
		m.ClearExtractionMethod()
		return nil
	case auditrecord.FieldFailureReason:
		m.ClearFailureReason()
		return nil
	case auditrecord.FieldFlags:
		m.ClearFlags()
		return nil
	case auditrecord.FieldInvoice:
		m.ClearInvoice()
		return nil
	case auditrecord.FieldHistory:
		m.ClearHistory()
		return nil
	case auditrecord.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditRecordMutation) ResetField(name string) error {
	switch name {
	case auditrecord.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case auditrecord.FieldVerdict:
		m.ResetVerdict()
		return nil
	case auditrecord.FieldTrustScore:
		m.ResetTrustScore()
		return nil
	case auditrecord.FieldCompleteness:
		m.ResetCompleteness()
		return nil
	case auditrecord.FieldVerificationQuality:
		m.ResetVerificationQuality()
		return nil
	case auditrecord.FieldDisclosureStandards:
		m.ResetDisclosureStandards()
		return nil
	case auditrecord.FieldDeviationPercent:
		m.ResetDeviationPercent()
		return nil
	case auditrecord.FieldExtractionMethod:
		m.ResetExtractionMethod()
		return nil
	case auditrecord.FieldRequiresReview:
		m.ResetRequiresReview()
		return nil
	case auditrecord.FieldFailureReason:
		m.ResetFailureReason()
		return nil
	case auditrecord.FieldFlags:
		m.ResetFlags()
		return nil
	case auditrecord.FieldInvoice:
		m.ResetInvoice()
		return nil
	case auditrecord.FieldHistory:
		m.ResetHistory()
		return nil
	case auditrecord.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case auditrecord.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, auditrecord.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case auditrecord.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, auditrecord.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case auditrecord.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditRecordMutation) ClearEdge(name string) error {
	switch name {
	case auditrecord.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown AuditRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditRecordMutation) ResetEdge(name string) error {
	switch name {
	case auditrecord.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown AuditRecord edge %s", name)
}

// InvoiceDocumentMutation represents an operation that mutates the InvoiceDocument nodes in the graph.
type InvoiceDocumentMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	source_path   *string
	file_ext      *string
	content_hash  *[]byte
	raw_text      *string
	ingested_at   *time.Time
	clearedFields map[string]struct{}
	audits        map[uuid.UUID]struct{}
	removedaudits map[uuid.UUID]struct{}
	clearedaudits bool
	done          bool
	oldValue      func(context.Context) (*InvoiceDocument, error)
	predicates    []predicate.InvoiceDocument
}

var _ ent.Mutation = (*InvoiceDocumentMutation)(nil)

// invoicedocumentOption allows management of the mutation configuration using functional options.
type invoicedocumentOption func(*InvoiceDocumentMutation)

// newInvoiceDocumentMutation creates new mutation for the InvoiceDocument entity.
func newInvoiceDocumentMutation(c config, op Op, opts ...invoicedocumentOption) *InvoiceDocumentMutation {
	m := &InvoiceDocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeInvoiceDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInvoiceDocumentID sets the ID field of the mutation.
func withInvoiceDocumentID(id uuid.UUID) invoicedocumentOption {
	return func(m *InvoiceDocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *InvoiceDocument
		)
		m.oldValue = func(ctx context.Context) (*InvoiceDocument, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InvoiceDocument.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInvoiceDocument sets the old InvoiceDocument of the mutation.
func withInvoiceDocument(node *InvoiceDocument) invoicedocumentOption {
	return func(m *InvoiceDocumentMutation) {
		m.oldValue = func(context.Context) (*InvoiceDocument, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InvoiceDocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InvoiceDocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InvoiceDocument entities.
func (m *InvoiceDocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InvoiceDocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InvoiceDocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InvoiceDocument.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourcePath sets the "source_path" field.
func (m *InvoiceDocumentMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *InvoiceDocumentMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the InvoiceDocument entity.
// If the InvoiceDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceDocumentMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *InvoiceDocumentMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetFileExt sets the "file_ext" field.
func (m *InvoiceDocumentMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *InvoiceDocumentMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the InvoiceDocument entity.
// If the InvoiceDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceDocumentMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *InvoiceDocumentMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetContentHash sets the "content_hash" field.
func (m *InvoiceDocumentMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *InvoiceDocumentMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the InvoiceDocument entity.
// If the InvoiceDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceDocumentMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *InvoiceDocumentMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetRawText sets the "raw_text" field.
func (m *InvoiceDocumentMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *InvoiceDocumentMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the InvoiceDocument entity.
// If the InvoiceDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceDocumentMutation) OldRawText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *InvoiceDocumentMutation) ResetRawText() {
	m.raw_text = nil
}

// SetIngestedAt sets the "ingested_at" field.
func (m *InvoiceDocumentMutation) SetIngestedAt(t time.Time) {
	m.ingested_at = &t
}

// IngestedAt returns the value of the "ingested_at" field in the mutation.
func (m *InvoiceDocumentMutation) IngestedAt() (r time.Time, exists bool) {
	v := m.ingested_at
	if v == nil {
		return
	}
	return *v, true
}

// OldIngestedAt returns the old "ingested_at" field's value of the InvoiceDocument entity.
// If the InvoiceDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceDocumentMutation) OldIngestedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIngestedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIngestedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIngestedAt: %w", err)
	}
	return oldValue.IngestedAt, nil
}

// ResetIngestedAt resets all changes to the "ingested_at" field.
func (m *InvoiceDocumentMutation) ResetIngestedAt() {
	m.ingested_at = nil
}

// AddAuditIDs adds the "audits" edge to the AuditRecord entity by ids.
func (m *InvoiceDocumentMutation) AddAuditIDs(ids ...uuid.UUID) {
	if m.audits == nil {
		m.audits = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.audits[ids[i]] = struct{}{}
	}
}

// ClearAudits clears the "audits" edge to the AuditRecord entity.
func (m *InvoiceDocumentMutation) ClearAudits() {
	m.clearedaudits = true
}

// AuditsCleared reports if the "audits" edge to the AuditRecord entity was cleared.
func (m *InvoiceDocumentMutation) AuditsCleared() bool {
	return m.clearedaudits
}

// RemoveAuditIDs removes the "audits" edge to the AuditRecord entity by IDs.
func (m *InvoiceDocumentMutation) RemoveAuditIDs(ids ...uuid.UUID) {
	if m.removedaudits == nil {
		m.removedaudits = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.audits, ids[i])
		m.removedaudits[ids[i]] = struct{}{}
	}
}

// RemovedAudits returns the removed IDs of the "audits" edge to the AuditRecord entity.
func (m *InvoiceDocumentMutation) RemovedAuditsIDs() (ids []uuid.UUID) {
	for id := range m.removedaudits {
		ids = append(ids, id)
	}
	return
}

// AuditsIDs returns the "audits" edge IDs in the mutation.
func (m *InvoiceDocumentMutation) AuditsIDs() (ids []uuid.UUID) {
	for id := range m.audits {
		ids = append(ids, id)
	}
	return
}

// ResetAudits resets all changes to the "audits" edge.
func (m *InvoiceDocumentMutation) ResetAudits() {
	m.audits = nil
	m.clearedaudits = false
	m.removedaudits = nil
}

// Where appends a list predicates to the InvoiceDocumentMutation builder.
func (m *InvoiceDocumentMutation) Where(ps ...predicate.InvoiceDocument) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InvoiceDocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InvoiceDocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InvoiceDocument, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InvoiceDocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InvoiceDocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InvoiceDocument).
func (m *InvoiceDocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InvoiceDocumentMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.source_path != nil {
		fields = append(fields, invoicedocument.FieldSourcePath)
	}
	if m.file_ext != nil {
		fields = append(fields, invoicedocument.FieldFileExt)
	}
	if m.content_hash != nil {
		fields = append(fields, invoicedocument.FieldContentHash)
	}
	if m.raw_text != nil {
		fields = append(fields, invoicedocument.FieldRawText)
	}
	if m.ingested_at != nil {
		fields = append(fields, invoicedocument.FieldIngestedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InvoiceDocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case invoicedocument.FieldSourcePath:
		return m.SourcePath()
	case invoicedocument.FieldFileExt:
		return m.FileExt()
	case invoicedocument.FieldContentHash:
		return m.ContentHash()
	case invoicedocument.FieldRawText:
		return m.RawText()
	case invoicedocument.FieldIngestedAt:
		return m.IngestedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InvoiceDocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case invoicedocument.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case invoicedocument.FieldFileExt:
		return m.OldFileExt(ctx)
	case invoicedocument.FieldContentHash:
		return m.OldContentHash(ctx)
	case invoicedocument.FieldRawText:
		return m.OldRawText(ctx)
	case invoicedocument.FieldIngestedAt:
		return m.OldIngestedAt(ctx)
	}
	return nil, fmt.Errorf("unknown InvoiceDocument field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceDocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case invoicedocument.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case invoicedocument.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case invoicedocument.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case invoicedocument.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case invoicedocument.FieldIngestedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIngestedAt(v)
		return nil
	}
	return fmt.Errorf("unknown InvoiceDocument field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InvoiceDocumentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InvoiceDocumentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceDocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown InvoiceDocument numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InvoiceDocumentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InvoiceDocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InvoiceDocumentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown InvoiceDocument nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InvoiceDocumentMutation) ResetField(name string) error {
	switch name {
	case invoicedocument.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case invoicedocument.FieldFileExt:
		m.ResetFileExt()
		return nil
	case invoicedocument.FieldContentHash:
		m.ResetContentHash()
		return nil
	case invoicedocument.FieldRawText:
		m.ResetRawText()
		return nil
	case invoicedocument.FieldIngestedAt:
		m.ResetIngestedAt()
		return nil
	}
	return fmt.Errorf("unknown InvoiceDocument field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InvoiceDocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.audits != nil {
		edges = append(edges, invoicedocument.EdgeAudits)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InvoiceDocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case invoicedocument.EdgeAudits:
		ids := make([]ent.Value, 0, len(m.audits))
		for id := range m.audits {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InvoiceDocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedaudits != nil {
		edges = append(edges, invoicedocument.EdgeAudits)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InvoiceDocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case invoicedocument.EdgeAudits:
		ids := make([]ent.Value, 0, len(m.removedaudits))
		for id := range m.removedaudits {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InvoiceDocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedaudits {
		edges = append(edges, invoicedocument.EdgeAudits)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InvoiceDocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case invoicedocument.EdgeAudits:
		return m.clearedaudits
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InvoiceDocumentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown InvoiceDocument unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InvoiceDocumentMutation) ResetEdge(name string) error {
	switch name {
	case invoicedocument.EdgeAudits:
		m.ResetAudits()
		return nil
	}
	return fmt.Errorf("unknown InvoiceDocument edge %s", name)
}
