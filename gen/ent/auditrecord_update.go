// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/greentrust/esg-audit/gen/ent/auditrecord"
	"github.com/greentrust/esg-audit/gen/ent/invoicedocument"
	"github.com/greentrust/esg-audit/gen/ent/predicate"
)

// AuditRecordUpdate is the builder for updating AuditRecord entities.
type AuditRecordUpdate struct {
	config
	hooks    []Hook
	mutation *AuditRecordMutation
}

// Where appends a list predicates to the AuditRecordUpdate builder.
func (_u *AuditRecordUpdate) Where(ps ...predicate.AuditRecord) *AuditRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *AuditRecordUpdate) SetDocumentID(v uuid.UUID) *AuditRecordUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *AuditRecordUpdate) SetNillableDocumentID(v *uuid.UUID) *AuditRecordUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetVerdict sets the "verdict" field.
func (_u *AuditRecordUpdate) SetVerdict(v string) *AuditRecordUpdate {
	_u.mutation.SetVerdict(v)
	return _u
}

// SetNillableVerdict sets the "verdict" field if the given value is not nil.
func (_u *AuditRecordUpdate) SetNillableVerdict(v *string) *AuditRecordUpdate {
	if v != nil {
		_u.SetVerdict(*v)
	}
	return _u
}

// SetTrustScore sets the "trust_score" field.
func (_u *AuditRecordUpdate) SetTrustScore(v float64) *AuditRecordUpdate {
	_u.mutation.ResetTrustScore()
	_u.mutation.SetTrustScore(v)
	return _u
}

// SetNillableTrustScore sets the "trust_score" field if the given value is not nil.
func (_u *AuditRecordUpdate) SetNillableTrustScore(v *float64) *AuditRecordUpdate {
	if v != nil {
		_u.SetTrustScore(*v)
	}
	return _u
}

// AddTrustScore adds value to the "trust_score" field.
func (_u *AuditRecordUpdate) AddTrustScore(v float64) *AuditRecordUpdate {
	_u.mutation.AddTrustScore(v)
	return _u
}

// SetCompleteness sets the "completeness" field.
func (_u *AuditRecordUpdate) SetCompleteness(v float64) *AuditRecordUpdate {
	_u.mutation.ResetCompleteness()
	_u.mutation.SetCompleteness(v)
	return _u
}

// SetNillableCompleteness sets the "completeness" field if the given value is not nil.
func (_u *AuditRecordUpdate) SetNillableCompleteness(v *float64) *AuditRecordUpdate {
	if v != nil {
		_u.SetCompleteness(*v)
	}
	return _u
}

// AddCompleteness adds value to the "completeness" field.
func (_u *AuditRecordUpdate) AddCompleteness(v float64) *AuditRecordUpdate {
	_u.mutation.AddCompleteness(v)
	return _u
}

// SetVerificationQuality sets the "verification_quality" field.
func (_u *AuditRecordUpdate) SetVerificationQuality(v float64) *AuditRecordUpdate {
	_u.mutation.ResetVerificationQuality()
	_u.mutation.SetVerificationQuality(v)
	return _u
}

// SetNillableVerificationQuality sets the "verification_quality" field if the given value is not nil.
func (_u *AuditRecordUpdate) SetNillableVerificationQuality(v *float64) *AuditRecordUpdate {
	if v != nil {
		_u.SetVerificationQuality(*v)
	}
	return _u
}

// AddVerificationQuality adds value to the "verification_quality" field.
func (_u *AuditRecordUpdate) AddVerificationQuality(v float64) *AuditRecordUpdate {
	_u.mutation.AddVerificationQuality(v)
	return _u
}

// SetDisclosureStandards sets the "disclosure_standards" field.
func (_u *AuditRecordUpdate) SetDisclosureStandards(v float64) *AuditRecordUpdate {
	_u.mutation.ResetDisclosureStandards()
	_u.mutation.SetDisclosureStandards(v)
	return _u
}

// SetNillableDisclosureStandards sets the "disclosure_standards" field if the given value is not nil.
func (_u *AuditRecordUpdate) SetNillableDisclosureStandards(v *float64) *AuditRecordUpdate {
	if v != nil {
		_u.SetDisclosureStandards(*v)
	}
	return _u
}

// AddDisclosureStandards adds value to the "disclosure_standards" field.
func (_u *AuditRecordUpdate) AddDisclosureStandards(v float64) *AuditRecordUpdate {
	_u.mutation.AddDisclosureStandards(v)
	return _u
}

// SetDeviationPercent sets the "deviation_percent" field.
func (_u *AuditRecordUpdate) SetDeviationPercent(v float64) *AuditRecordUpdate {
	_u.mutation.ResetDeviationPercent()
	_u.mutation.SetDeviationPercent(v)
	return _u
}

// SetNillableDeviationPercent sets the "deviation_percent" field if the given value is not nil.
func (_u *AuditRecordUpdate) SetNillableDeviationPercent(v *float64) *AuditRecordUpdate {
	if v != nil {
		_u.SetDeviationPercent(*v)
	}
	return _u
}

// AddDeviationPercent adds value to the "deviation_percent" field.
func (_u *AuditRecordUpdate) AddDeviationPercent(v float64) *AuditRecordUpdate {
	_u.mutation.AddDeviationPercent(v)
	return _u
}

// ClearDeviationPercent clears the value of the "deviation_percent" field.
func (_u *AuditRecordUpdate) ClearDeviationPercent() *AuditRecordUpdate {
	_u.mutation.ClearDeviationPercent()
	return _u
}

// SetExtractionMethod sets the "extraction_method" field.
func (_u *AuditRecordUpdate) SetExtractionMethod(v string) *AuditRecordUpdate {
	_u.mutation.SetExtractionMethod(v)
	return _u
}

// SetNillableExtractionMethod sets the "extraction_method" field if the given value is not nil.
func (_u *AuditRecordUpdate) SetNillableExtractionMethod(v *string) *AuditRecordUpdate {
	if v != nil {
		_u.SetExtractionMethod(*v)
	}
	return _u
}

// ClearExtractionMethod clears the value of the "extraction_method" field.
func (_u *AuditRecordUpdate) ClearExtractionMethod() *AuditRecordUpdate {
	_u.mutation.ClearExtractionMethod()
	return _u
}

// SetRequiresReview sets the "requires_review" field.
func (_u *AuditRecordUpdate) SetRequiresReview(v bool) *AuditRecordUpdate {
	_u.mutation.SetRequiresReview(v)
	return _u
}

// SetNillableRequiresReview sets the "requires_review" field if the given value is not nil.
func (_u *AuditRecordUpdate) SetNillableRequiresReview(v *bool) *AuditRecordUpdate {
	if v != nil {
		_u.SetRequiresReview(*v)
	}
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *AuditRecordUpdate) SetFailureReason(v string) *AuditRecordUpdate {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *AuditRecordUpdate) SetNillableFailureReason(v *string) *AuditRecordUpdate {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *AuditRecordUpdate) ClearFailureReason() *AuditRecordUpdate {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetFlags sets the "flags" field.
func (_u *AuditRecordUpdate) SetFlags(v json.RawMessage) *AuditRecordUpdate {
	_u.mutation.SetFlags(v)
	return _u
}

// AppendFlags appends value to the "flags" field.
func (_u *AuditRecordUpdate) AppendFlags(v json.RawMessage) *AuditRecordUpdate {
	_u.mutation.AppendFlags(v)
	return _u
}

// ClearFlags clears the value of the "flags" field.
func (_u *AuditRecordUpdate) ClearFlags() *AuditRecordUpdate {
	_u.mutation.ClearFlags()
	return _u
}

// SetInvoice sets the "invoice" field.
func (_u *AuditRecordUpdate) SetInvoice(v json.RawMessage) *AuditRecordUpdate {
	_u.mutation.SetInvoice(v)
	return _u
}

// AppendInvoice appends value to the "invoice" field.
func (_u *AuditRecordUpdate) AppendInvoice(v json.RawMessage) *AuditRecordUpdate {
	_u.mutation.AppendInvoice(v)
	return _u
}

// ClearInvoice clears the value of the "invoice" field.
func (_u *AuditRecordUpdate) ClearInvoice() *AuditRecordUpdate {
	_u.mutation.ClearInvoice()
	return _u
}

// SetHistory sets the "history" field.
func (_u *AuditRecordUpdate) SetHistory(v json.RawMessage) *AuditRecordUpdate {
	_u.mutation.SetHistory(v)
	return _u
}

// AppendHistory appends value to the "history" field.
func (_u *AuditRecordUpdate) AppendHistory(v json.RawMessage) *AuditRecordUpdate {
	_u.mutation.AppendHistory(v)
	return _u
}

// ClearHistory clears the value of the "history" field.
func (_u *AuditRecordUpdate) ClearHistory() *AuditRecordUpdate {
	_u.mutation.ClearHistory()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AuditRecordUpdate) SetStartedAt(v time.Time) *AuditRecordUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AuditRecordUpdate) SetNillableStartedAt(v *time.Time) *AuditRecordUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *AuditRecordUpdate) SetFinishedAt(v time.Time) *AuditRecordUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *AuditRecordUpdate) SetNillableFinishedAt(v *time.Time) *AuditRecordUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *AuditRecordUpdate) ClearFinishedAt() *AuditRecordUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetDocument sets the "document" edge to the InvoiceDocument entity.
func (_u *AuditRecordUpdate) SetDocument(v *InvoiceDocument) *AuditRecordUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the AuditRecordMutation object of the builder.
func (_u *AuditRecordUpdate) Mutation() *AuditRecordMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the InvoiceDocument entity.
func (_u *AuditRecordUpdate) ClearDocument() *AuditRecordUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AuditRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AuditRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditRecordUpdate) check() error {
	if v, ok := _u.mutation.Verdict(); ok {
		if err := auditrecord.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "AuditRecord.verdict": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AuditRecord.document"`)
	}
	return nil
}

func (_u *AuditRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditrecord.Table, auditrecord.Columns, sqlgraph.NewFieldSpec(auditrecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Verdict(); ok {
		_spec.SetField(auditrecord.FieldVerdict, field.TypeString, value)
	}
	if value, ok := _u.mutation.TrustScore(); ok {
		_spec.SetField(auditrecord.FieldTrustScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTrustScore(); ok {
		_spec.AddField(auditrecord.FieldTrustScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Completeness(); ok {
		_spec.SetField(auditrecord.FieldCompleteness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompleteness(); ok {
		_spec.AddField(auditrecord.FieldCompleteness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.VerificationQuality(); ok {
		_spec.SetField(auditrecord.FieldVerificationQuality, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVerificationQuality(); ok {
		_spec.AddField(auditrecord.FieldVerificationQuality, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DisclosureStandards(); ok {
		_spec.SetField(auditrecord.FieldDisclosureStandards, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDisclosureStandards(); ok {
		_spec.AddField(auditrecord.FieldDisclosureStandards, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DeviationPercent(); ok {
		_spec.SetField(auditrecord.FieldDeviationPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDeviationPercent(); ok {
		_spec.AddField(auditrecord.FieldDeviationPercent, field.TypeFloat64, value)
	}
	if _u.mutation.DeviationPercentCleared() {
		_spec.ClearField(auditrecord.FieldDeviationPercent, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ExtractionMethod(); ok {
		_spec.SetField(auditrecord.FieldExtractionMethod, field.TypeString, value)
	}
	if _u.mutation.ExtractionMethodCleared() {
		_spec.ClearField(auditrecord.FieldExtractionMethod, field.TypeString)
	}
	if value, ok := _u.mutation.RequiresReview(); ok {
		_spec.SetField(auditrecord.FieldRequiresReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(auditrecord.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(auditrecord.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.Flags(); ok {
		_spec.SetField(auditrecord.FieldFlags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFlags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, auditrecord.FieldFlags, value)
		})
	}
	if _u.mutation.FlagsCleared() {
		_spec.ClearField(auditrecord.FieldFlags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Invoice(); ok {
		_spec.SetField(auditrecord.FieldInvoice, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInvoice(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, auditrecord.FieldInvoice, value)
		})
	}
	if _u.mutation.InvoiceCleared() {
		_spec.ClearField(auditrecord.FieldInvoice, field.TypeJSON)
	}
	if value, ok := _u.mutation.History(); ok {
		_spec.SetField(auditrecord.FieldHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, auditrecord.FieldHistory, value)
		})
	}
	if _u.mutation.HistoryCleared() {
		_spec.ClearField(auditrecord.FieldHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(auditrecord.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(auditrecord.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(auditrecord.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   auditrecord.DocumentTable,
			Columns: []string{auditrecord.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoicedocument.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   auditrecord.DocumentTable,
			Columns: []string{auditrecord.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoicedocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AuditRecordUpdateOne is the builder for updating a single AuditRecord entity.
type AuditRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AuditRecordMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *AuditRecordUpdateOne) SetDocumentID(v uuid.UUID) *AuditRecordUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *AuditRecordUpdateOne) SetNillableDocumentID(v *uuid.UUID) *AuditRecordUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetVerdict sets the "verdict" field.
func (_u *AuditRecordUpdateOne) SetVerdict(v string) *AuditRecordUpdateOne {
	_u.mutation.SetVerdict(v)
	return _u
}

// SetNillableVerdict sets the "verdict" field if the given value is not nil.
func (_u *AuditRecordUpdateOne) SetNillableVerdict(v *string) *AuditRecordUpdateOne {
	if v != nil {
		_u.SetVerdict(*v)
	}
	return _u
}

// SetTrustScore sets the "trust_score" field.
func (_u *AuditRecordUpdateOne) SetTrustScore(v float64) *AuditRecordUpdateOne {
	_u.mutation.ResetTrustScore()
	_u.mutation.SetTrustScore(v)
	return _u
}

// SetNillableTrustScore sets the "trust_score" field if the given value is not nil.
func (_u *AuditRecordUpdateOne) SetNillableTrustScore(v *float64) *AuditRecordUpdateOne {
	if v != nil {
		_u.SetTrustScore(*v)
	}
	return _u
}

// AddTrustScore adds value to the "trust_score" field.
func (_u *AuditRecordUpdateOne) AddTrustScore(v float64) *AuditRecordUpdateOne {
	_u.mutation.AddTrustScore(v)
	return _u
}

// SetCompleteness sets the "completeness" field.
func (_u *AuditRecordUpdateOne) SetCompleteness(v float64) *AuditRecordUpdateOne {
	_u.mutation.ResetCompleteness()
	_u.mutation.SetCompleteness(v)
	return _u
}

// SetNillableCompleteness sets the "completeness" field if the given value is not nil.
func (_u *AuditRecordUpdateOne) SetNillableCompleteness(v *float64) *AuditRecordUpdateOne {
	if v != nil {
		_u.SetCompleteness(*v)
	}
	return _u
}

// AddCompleteness adds value to the "completeness" field.
func (_u *AuditRecordUpdateOne) AddCompleteness(v float64) *AuditRecordUpdateOne {
	_u.mutation.AddCompleteness(v)
	return _u
}

// SetVerificationQuality sets the "verification_quality" field.
func (_u *AuditRecordUpdateOne) SetVerificationQuality(v float64) *AuditRecordUpdateOne {
	_u.mutation.ResetVerificationQuality()
	_u.mutation.SetVerificationQuality(v)
	return _u
}

// SetNillableVerificationQuality sets the "verification_quality" field if the given value is not nil.
func (_u *AuditRecordUpdateOne) SetNillableVerificationQuality(v *float64) *AuditRecordUpdateOne {
	if v != nil {
		_u.SetVerificationQuality(*v)
	}
	return _u
}

// AddVerificationQuality adds value to the "verification_quality" field.
func (_u *AuditRecordUpdateOne) AddVerificationQuality(v float64) *AuditRecordUpdateOne {
	_u.mutation.AddVerificationQuality(v)
	return _u
}

// SetDisclosureStandards sets the "disclosure_standards" field.
func (_u *AuditRecordUpdateOne) SetDisclosureStandards(v float64) *AuditRecordUpdateOne {
	_u.mutation.ResetDisclosureStandards()
	_u.mutation.SetDisclosureStandards(v)
	return _u
}

// SetNillableDisclosureStandards sets the "disclosure_standards" field if the given value is not nil.
func (_u *AuditRecordUpdateOne) SetNillableDisclosureStandards(v *float64) *AuditRecordUpdateOne {
	if v != nil {
		_u.SetDisclosureStandards(*v)
	}
	return _u
}

// AddDisclosureStandards adds value to the "disclosure_standards" field.
func (_u *AuditRecordUpdateOne) AddDisclosureStandards(v float64) *AuditRecordUpdateOne {
	_u.mutation.AddDisclosureStandards(v)
	return _u
}

// SetDeviationPercent sets the "deviation_percent" field.
func (_u *AuditRecordUpdateOne) SetDeviationPercent(v float64) *AuditRecordUpdateOne {
	_u.mutation.ResetDeviationPercent()
	_u.mutation.SetDeviationPercent(v)
	return _u
}

// SetNillableDeviationPercent sets the "deviation_percent" field if the given value is not nil.
func (_u *AuditRecordUpdateOne) SetNillableDeviationPercent(v *float64) *AuditRecordUpdateOne {
	if v != nil {
		_u.SetDeviationPercent(*v)
	}
	return _u
}

// AddDeviationPercent adds value to the "deviation_percent" field.
func (_u *AuditRecordUpdateOne) AddDeviationPercent(v float64) *AuditRecordUpdateOne {
	_u.mutation.AddDeviationPercent(v)
	return _u
}

// ClearDeviationPercent clears the value of the "deviation_percent" field.
func (_u *AuditRecordUpdateOne) ClearDeviationPercent() *AuditRecordUpdateOne {
	_u.mutation.ClearDeviationPercent()
	return _u
}

// SetExtractionMethod sets the "extraction_method" field.
func (_u *AuditRecordUpdateOne) SetExtractionMethod(v string) *AuditRecordUpdateOne {
	_u.mutation.SetExtractionMethod(v)
	return _u
}

// SetNillableExtractionMethod sets the "extraction_method" field if the given value is not nil.
func (_u *AuditRecordUpdateOne) SetNillableExtractionMethod(v *string) *AuditRecordUpdateOne {
	if v != nil {
		_u.SetExtractionMethod(*v)
	}
	return _u
}

// ClearExtractionMethod clears the value of the "extraction_method" field.
func (_u *AuditRecordUpdateOne) ClearExtractionMethod() *AuditRecordUpdateOne {
	_u.mutation.ClearExtractionMethod()
	return _u
}

// SetRequiresReview sets the "requires_review" field.
func (_u *AuditRecordUpdateOne) SetRequiresReview(v bool) *AuditRecordUpdateOne {
	_u.mutation.SetRequiresReview(v)
	return _u
}

// SetNillableRequiresReview sets the "requires_review" field if the given value is not nil.
func (_u *AuditRecordUpdateOne) SetNillableRequiresReview(v *bool) *AuditRecordUpdateOne {
	if v != nil {
		_u.SetRequiresReview(*v)
	}
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *AuditRecordUpdateOne) SetFailureReason(v string) *AuditRecordUpdateOne {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *AuditRecordUpdateOne) SetNillableFailureReason(v *string) *AuditRecordUpdateOne {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *AuditRecordUpdateOne) ClearFailureReason() *AuditRecordUpdateOne {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetFlags sets the "flags" field.
func (_u *AuditRecordUpdateOne) SetFlags(v json.RawMessage) *AuditRecordUpdateOne {
	_u.mutation.SetFlags(v)
	return _u
}

// AppendFlags appends value to the "flags" field.
func (_u *AuditRecordUpdateOne) AppendFlags(v json.RawMessage) *AuditRecordUpdateOne {
	_u.mutation.AppendFlags(v)
	return _u
}

// ClearFlags clears the value of the "flags" field.
func (_u *AuditRecordUpdateOne) ClearFlags() *AuditRecordUpdateOne {
	_u.mutation.ClearFlags()
	return _u
}

// SetInvoice sets the "invoice" field.
func (_u *AuditRecordUpdateOne) SetInvoice(v json.RawMessage) *AuditRecordUpdateOne {
	_u.mutation.SetInvoice(v)
	return _u
}

// AppendInvoice appends value to the "invoice" field.
func (_u *AuditRecordUpdateOne) AppendInvoice(v json.RawMessage) *AuditRecordUpdateOne {
	_u.mutation.AppendInvoice(v)
	return _u
}

// ClearInvoice clears the value of the "invoice" field.
func (_u *AuditRecordUpdateOne) ClearInvoice() *AuditRecordUpdateOne {
	_u.mutation.ClearInvoice()
	return _u
}

// SetHistory sets the "history" field.
func (_u *AuditRecordUpdateOne) SetHistory(v json.RawMessage) *AuditRecordUpdateOne {
	_u.mutation.SetHistory(v)
	return _u
}

// AppendHistory appends value to the "history" field.
func (_u *AuditRecordUpdateOne) AppendHistory(v json.RawMessage) *AuditRecordUpdateOne {
	_u.mutation.AppendHistory(v)
	return _u
}

// ClearHistory clears the value of the "history" field.
func (_u *AuditRecordUpdateOne) ClearHistory() *AuditRecordUpdateOne {
	_u.mutation.ClearHistory()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AuditRecordUpdateOne) SetStartedAt(v time.Time) *AuditRecordUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AuditRecordUpdateOne) SetNillableStartedAt(v *time.Time) *AuditRecordUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *AuditRecordUpdateOne) SetFinishedAt(v time.Time) *AuditRecordUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *AuditRecordUpdateOne) SetNillableFinishedAt(v *time.Time) *AuditRecordUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *AuditRecordUpdateOne) ClearFinishedAt() *AuditRecordUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetDocument sets the "document" edge to the InvoiceDocument entity.
func (_u *AuditRecordUpdateOne) SetDocument(v *InvoiceDocument) *AuditRecordUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the AuditRecordMutation object of the builder.
func (_u *AuditRecordUpdateOne) Mutation() *AuditRecordMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the InvoiceDocument entity.
func (_u *AuditRecordUpdateOne) ClearDocument() *AuditRecordUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the AuditRecordUpdate builder.
func (_u *AuditRecordUpdateOne) Where(ps ...predicate.AuditRecord) *AuditRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AuditRecordUpdateOne) Select(field string, fields ...string) *AuditRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AuditRecord entity.
func (_u *AuditRecordUpdateOne) Save(ctx context.Context) (*AuditRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditRecordUpdateOne) SaveX(ctx context.Context) *AuditRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AuditRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Verdict(); ok {
		if err := auditrecord.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "AuditRecord.verdict": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AuditRecord.document"`)
	}
	return nil
}

func (_u *AuditRecordUpdateOne) sqlSave(ctx context.Context) (_node *AuditRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditrecord.Table, auditrecord.Columns, sqlgraph.NewFieldSpec(auditrecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AuditRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, auditrecord.FieldID)
		for _, f := range fields {
			if !auditrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != auditrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Verdict(); ok {
		_spec.SetField(auditrecord.FieldVerdict, field.TypeString, value)
	}
	if value, ok := _u.mutation.TrustScore(); ok {
		_spec.SetField(auditrecord.FieldTrustScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTrustScore(); ok {
		_spec.AddField(auditrecord.FieldTrustScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Completeness(); ok {
		_spec.SetField(auditrecord.FieldCompleteness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompleteness(); ok {
		_spec.AddField(auditrecord.FieldCompleteness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.VerificationQuality(); ok {
		_spec.SetField(auditrecord.FieldVerificationQuality, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVerificationQuality(); ok {
		_spec.AddField(auditrecord.FieldVerificationQuality, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DisclosureStandards(); ok {
		_spec.SetField(auditrecord.FieldDisclosureStandards, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDisclosureStandards(); ok {
		_spec.AddField(auditrecord.FieldDisclosureStandards, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DeviationPercent(); ok {
		_spec.SetField(auditrecord.FieldDeviationPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDeviationPercent(); ok {
		_spec.AddField(auditrecord.FieldDeviationPercent, field.TypeFloat64, value)
	}
	if _u.mutation.DeviationPercentCleared() {
		_spec.ClearField(auditrecord.FieldDeviationPercent, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ExtractionMethod(); ok {
		_spec.SetField(auditrecord.FieldExtractionMethod, field.TypeString, value)
	}
	if _u.mutation.ExtractionMethodCleared() {
		_spec.ClearField(auditrecord.FieldExtractionMethod, field.TypeString)
	}
	if value, ok := _u.mutation.RequiresReview(); ok {
		_spec.SetField(auditrecord.FieldRequiresReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(auditrecord.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(auditrecord.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.Flags(); ok {
		_spec.SetField(auditrecord.FieldFlags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFlags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, auditrecord.FieldFlags, value)
		})
	}
	if _u.mutation.FlagsCleared() {
		_spec.ClearField(auditrecord.FieldFlags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Invoice(); ok {
		_spec.SetField(auditrecord.FieldInvoice, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInvoice(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, auditrecord.FieldInvoice, value)
		})
	}
	if _u.mutation.InvoiceCleared() {
		_spec.ClearField(auditrecord.FieldInvoice, field.TypeJSON)
	}
	if value, ok := _u.mutation.History(); ok {
		_spec.SetField(auditrecord.FieldHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, auditrecord.FieldHistory, value)
		})
	}
	if _u.mutation.HistoryCleared() {
		_spec.ClearField(auditrecord.FieldHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(auditrecord.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(auditrecord.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(auditrecord.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   auditrecord.DocumentTable,
			Columns: []string{auditrecord.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoicedocument.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   auditrecord.DocumentTable,
			Columns: []string{auditrecord.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoicedocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AuditRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
