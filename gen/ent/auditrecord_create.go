// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/greentrust/esg-audit/gen/ent/auditrecord"
	"github.com/greentrust/esg-audit/gen/ent/invoicedocument"
)

// AuditRecordCreate is the builder for creating a AuditRecord entity.
type AuditRecordCreate struct {
	config
	mutation *AuditRecordMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *AuditRecordCreate) SetDocumentID(v uuid.UUID) *AuditRecordCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetVerdict sets the "verdict" field.
func (_c *AuditRecordCreate) SetVerdict(v string) *AuditRecordCreate {
	_c.mutation.SetVerdict(v)
	return _c
}

// SetTrustScore sets the "trust_score" field.
func (_c *AuditRecordCreate) SetTrustScore(v float64) *AuditRecordCreate {
	_c.mutation.SetTrustScore(v)
	return _c
}

// SetCompleteness sets the "completeness" field.
func (_c *AuditRecordCreate) SetCompleteness(v float64) *AuditRecordCreate {
	_c.mutation.SetCompleteness(v)
	return _c
}

// SetVerificationQuality sets the "verification_quality" field.
func (_c *AuditRecordCreate) SetVerificationQuality(v float64) *AuditRecordCreate {
	_c.mutation.SetVerificationQuality(v)
	return _c
}

// SetDisclosureStandards sets the "disclosure_standards" field.
func (_c *AuditRecordCreate) SetDisclosureStandards(v float64) *AuditRecordCreate {
	_c.mutation.SetDisclosureStandards(v)
	return _c
}

// SetDeviationPercent sets the "deviation_percent" field.
func (_c *AuditRecordCreate) SetDeviationPercent(v float64) *AuditRecordCreate {
	_c.mutation.SetDeviationPercent(v)
	return _c
}

// SetNillableDeviationPercent sets the "deviation_percent" field if the given value is not nil.
func (_c *AuditRecordCreate) SetNillableDeviationPercent(v *float64) *AuditRecordCreate {
	if v != nil {
		_c.SetDeviationPercent(*v)
	}
	return _c
}

// SetExtractionMethod sets the "extraction_method" field.
func (_c *AuditRecordCreate) SetExtractionMethod(v string) *AuditRecordCreate {
	_c.mutation.SetExtractionMethod(v)
	return _c
}

// SetNillableExtractionMethod sets the "extraction_method" field if the given value is not nil.
func (_c *AuditRecordCreate) SetNillableExtractionMethod(v *string) *AuditRecordCreate {
	if v != nil {
		_c.SetExtractionMethod(*v)
	}
	return _c
}

// SetRequiresReview sets the "requires_review" field.
func (_c *AuditRecordCreate) SetRequiresReview(v bool) *AuditRecordCreate {
	_c.mutation.SetRequiresReview(v)
	return _c
}

// SetNillableRequiresReview sets the "requires_review" field if the given value is not nil.
func (_c *AuditRecordCreate) SetNillableRequiresReview(v *bool) *AuditRecordCreate {
	if v != nil {
		_c.SetRequiresReview(*v)
	}
	return _c
}

// SetFailureReason sets the "failure_reason" field.
func (_c *AuditRecordCreate) SetFailureReason(v string) *AuditRecordCreate {
	_c.mutation.SetFailureReason(v)
	return _c
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_c *AuditRecordCreate) SetNillableFailureReason(v *string) *AuditRecordCreate {
	if v != nil {
		_c.SetFailureReason(*v)
	}
	return _c
}

// SetFlags sets the "flags" field.
func (_c *AuditRecordCreate) SetFlags(v json.RawMessage) *AuditRecordCreate {
	_c.mutation.SetFlags(v)
	return _c
}

// SetInvoice sets the "invoice" field.
func (_c *AuditRecordCreate) SetInvoice(v json.RawMessage) *AuditRecordCreate {
	_c.mutation.SetInvoice(v)
	return _c
}

// SetHistory sets the "history" field.
func (_c *AuditRecordCreate) SetHistory(v json.RawMessage) *AuditRecordCreate {
	_c.mutation.SetHistory(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AuditRecordCreate) SetStartedAt(v time.Time) *AuditRecordCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *AuditRecordCreate) SetNillableStartedAt(v *time.Time) *AuditRecordCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *AuditRecordCreate) SetFinishedAt(v time.Time) *AuditRecordCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *AuditRecordCreate) SetNillableFinishedAt(v *time.Time) *AuditRecordCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AuditRecordCreate) SetID(v uuid.UUID) *AuditRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AuditRecordCreate) SetNillableID(v *uuid.UUID) *AuditRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the InvoiceDocument entity.
func (_c *AuditRecordCreate) SetDocument(v *InvoiceDocument) *AuditRecordCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the AuditRecordMutation object of the builder.
func (_c *AuditRecordCreate) Mutation() *AuditRecordMutation {
	return _c.mutation
}

// Save creates the AuditRecord in the database.
func (_c *AuditRecordCreate) Save(ctx context.Context) (*AuditRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AuditRecordCreate) SaveX(ctx context.Context) *AuditRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AuditRecordCreate) defaults() {
	if _, ok := _c.mutation.RequiresReview(); !ok {
		v := auditrecord.DefaultRequiresReview
		_c.mutation.SetRequiresReview(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := auditrecord.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := auditrecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AuditRecordCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "AuditRecord.document_id"`)}
	}
	if _, ok := _c.mutation.Verdict(); !ok {
		return &ValidationError{Name: "verdict", err: errors.New(`ent: missing required field "AuditRecord.verdict"`)}
	}
	if v, ok := _c.mutation.Verdict(); ok {
		if err := auditrecord.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "AuditRecord.verdict": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TrustScore(); !ok {
		return &ValidationError{Name: "trust_score", err: errors.New(`ent: missing required field "AuditRecord.trust_score"`)}
	}
	if _, ok := _c.mutation.Completeness(); !ok {
		return &ValidationError{Name: "completeness", err: errors.New(`ent: missing required field "AuditRecord.completeness"`)}
	}
	if _, ok := _c.mutation.VerificationQuality(); !ok {
		return &ValidationError{Name: "verification_quality", err: errors.New(`ent: missing required field "AuditRecord.verification_quality"`)}
	}
	if _, ok := _c.mutation.DisclosureStandards(); !ok {
		return &ValidationError{Name: "disclosure_standards", err: errors.New(`ent: missing required field "AuditRecord.disclosure_standards"`)}
	}
	if _, ok := _c.mutation.RequiresReview(); !ok {
		return &ValidationError{Name: "requires_review", err: errors.New(`ent: missing required field "AuditRecord.requires_review"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "AuditRecord.started_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "AuditRecord.document"`)}
	}
	return nil
}

func (_c *AuditRecordCreate) sqlSave(ctx context.Context) (*AuditRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AuditRecordCreate) createSpec() (*AuditRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &AuditRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(auditrecord.Table, sqlgraph.NewFieldSpec(auditrecord.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Verdict(); ok {
		_spec.SetField(auditrecord.FieldVerdict, field.TypeString, value)
		_node.Verdict = value
	}
	if value, ok := _c.mutation.TrustScore(); ok {
		_spec.SetField(auditrecord.FieldTrustScore, field.TypeFloat64, value)
		_node.TrustScore = value
	}
	if value, ok := _c.mutation.Completeness(); ok {
		_spec.SetField(auditrecord.FieldCompleteness, field.TypeFloat64, value)
		_node.Completeness = value
	}
	if value, ok := _c.mutation.VerificationQuality(); ok {
		_spec.SetField(auditrecord.FieldVerificationQuality, field.TypeFloat64, value)
		_node.VerificationQuality = value
	}
	if value, ok := _c.mutation.DisclosureStandards(); ok {
		_spec.SetField(auditrecord.FieldDisclosureStandards, field.TypeFloat64, value)
		_node.DisclosureStandards = value
	}
	if value, ok := _c.mutation.DeviationPercent(); ok {
		_spec.SetField(auditrecord.FieldDeviationPercent, field.TypeFloat64, value)
		_node.DeviationPercent = &value
	}
	if value, ok := _c.mutation.ExtractionMethod(); ok {
		_spec.SetField(auditrecord.FieldExtractionMethod, field.TypeString, value)
		_node.ExtractionMethod = &value
	}
	if value, ok := _c.mutation.RequiresReview(); ok {
		_spec.SetField(auditrecord.FieldRequiresReview, field.TypeBool, value)
		_node.RequiresReview = value
	}
	if value, ok := _c.mutation.FailureReason(); ok {
		_spec.SetField(auditrecord.FieldFailureReason, field.TypeString, value)
		_node.FailureReason = &value
	}
	if value, ok := _c.mutation.Flags(); ok {
		_spec.SetField(auditrecord.FieldFlags, field.TypeJSON, value)
		_node.Flags = value
	}
	if value, ok := _c.mutation.Invoice(); ok {
		_spec.SetField(auditrecord.FieldInvoice, field.TypeJSON, value)
		_node.Invoice = value
	}
	if value, ok := _c.mutation.History(); ok {
		_spec.SetField(auditrecord.FieldHistory, field.TypeJSON, value)
		_node.History = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(auditrecord.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(auditrecord.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AuditRecordCreateBulk is the builder for creating many AuditRecord entities in bulk.
type AuditRecordCreateBulk struct {
	config
	err      error
	builders []*AuditRecordCreate
}

// Save creates the AuditRecord entities in the database.
func (_c *AuditRecordCreateBulk) Save(ctx context.Context) ([]*AuditRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AuditRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AuditRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AuditRecordCreateBulk) SaveX(ctx context.Context) []*AuditRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
