// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/greentrust/esg-audit/gen/ent/auditrecord"
	"github.com/greentrust/esg-audit/gen/ent/invoicedocument"
	"github.com/greentrust/esg-audit/gen/ent/predicate"
)

// InvoiceDocumentUpdate is the builder for updating InvoiceDocument entities.
type InvoiceDocumentUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceDocumentMutation
}

// Where appends a list predicates to the InvoiceDocumentUpdate builder.
func (_u *InvoiceDocumentUpdate) Where(ps ...predicate.InvoiceDocument) *InvoiceDocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *InvoiceDocumentUpdate) SetSourcePath(v string) *InvoiceDocumentUpdate {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *InvoiceDocumentUpdate) SetNillableSourcePath(v *string) *InvoiceDocumentUpdate {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *InvoiceDocumentUpdate) SetFileExt(v string) *InvoiceDocumentUpdate {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *InvoiceDocumentUpdate) SetNillableFileExt(v *string) *InvoiceDocumentUpdate {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *InvoiceDocumentUpdate) SetContentHash(v []byte) *InvoiceDocumentUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *InvoiceDocumentUpdate) SetRawText(v string) *InvoiceDocumentUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *InvoiceDocumentUpdate) SetNillableRawText(v *string) *InvoiceDocumentUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// SetIngestedAt sets the "ingested_at" field.
func (_u *InvoiceDocumentUpdate) SetIngestedAt(v time.Time) *InvoiceDocumentUpdate {
	_u.mutation.SetIngestedAt(v)
	return _u
}

// SetNillableIngestedAt sets the "ingested_at" field if the given value is not nil.
func (_u *InvoiceDocumentUpdate) SetNillableIngestedAt(v *time.Time) *InvoiceDocumentUpdate {
	if v != nil {
		_u.SetIngestedAt(*v)
	}
	return _u
}

// AddAuditIDs adds the "audits" edge to the AuditRecord entity by IDs.
func (_u *InvoiceDocumentUpdate) AddAuditIDs(ids ...uuid.UUID) *InvoiceDocumentUpdate {
	_u.mutation.AddAuditIDs(ids...)
	return _u
}

// AddAudits adds the "audits" edges to the AuditRecord entity.
func (_u *InvoiceDocumentUpdate) AddAudits(v ...*AuditRecord) *InvoiceDocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditIDs(ids...)
}

// Mutation returns the InvoiceDocumentMutation object of the builder.
func (_u *InvoiceDocumentUpdate) Mutation() *InvoiceDocumentMutation {
	return _u.mutation
}

// ClearAudits clears all "audits" edges to the AuditRecord entity.
func (_u *InvoiceDocumentUpdate) ClearAudits() *InvoiceDocumentUpdate {
	_u.mutation.ClearAudits()
	return _u
}

// RemoveAuditIDs removes the "audits" edge to AuditRecord entities by IDs.
func (_u *InvoiceDocumentUpdate) RemoveAuditIDs(ids ...uuid.UUID) *InvoiceDocumentUpdate {
	_u.mutation.RemoveAuditIDs(ids...)
	return _u
}

// RemoveAudits removes "audits" edges to AuditRecord entities.
func (_u *InvoiceDocumentUpdate) RemoveAudits(v ...*AuditRecord) *InvoiceDocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvoiceDocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceDocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvoiceDocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceDocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceDocumentUpdate) check() error {
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := invoicedocument.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "InvoiceDocument.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := invoicedocument.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "InvoiceDocument.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := invoicedocument.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "InvoiceDocument.content_hash": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceDocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoicedocument.Table, invoicedocument.Columns, sqlgraph.NewFieldSpec(invoicedocument.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(invoicedocument.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(invoicedocument.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(invoicedocument.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(invoicedocument.FieldRawText, field.TypeString, value)
	}
	if value, ok := _u.mutation.IngestedAt(); ok {
		_spec.SetField(invoicedocument.FieldIngestedAt, field.TypeTime, value)
	}
	if _u.mutation.AuditsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoicedocument.AuditsTable,
			Columns: []string{invoicedocument.AuditsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditrecord.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditsIDs(); len(nodes) > 0 && !_u.mutation.AuditsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoicedocument.AuditsTable,
			Columns: []string{invoicedocument.AuditsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoicedocument.AuditsTable,
			Columns: []string{invoicedocument.AuditsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoicedocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvoiceDocumentUpdateOne is the builder for updating a single InvoiceDocument entity.
type InvoiceDocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceDocumentMutation
}

// SetSourcePath sets the "source_path" field.
func (_u *InvoiceDocumentUpdateOne) SetSourcePath(v string) *InvoiceDocumentUpdateOne {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *InvoiceDocumentUpdateOne) SetNillableSourcePath(v *string) *InvoiceDocumentUpdateOne {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *InvoiceDocumentUpdateOne) SetFileExt(v string) *InvoiceDocumentUpdateOne {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *InvoiceDocumentUpdateOne) SetNillableFileExt(v *string) *InvoiceDocumentUpdateOne {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *InvoiceDocumentUpdateOne) SetContentHash(v []byte) *InvoiceDocumentUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *InvoiceDocumentUpdateOne) SetRawText(v string) *InvoiceDocumentUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *InvoiceDocumentUpdateOne) SetNillableRawText(v *string) *InvoiceDocumentUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// SetIngestedAt sets the "ingested_at" field.
func (_u *InvoiceDocumentUpdateOne) SetIngestedAt(v time.Time) *InvoiceDocumentUpdateOne {
	_u.mutation.SetIngestedAt(v)
	return _u
}

// SetNillableIngestedAt sets the "ingested_at" field if the given value is not nil.
func (_u *InvoiceDocumentUpdateOne) SetNillableIngestedAt(v *time.Time) *InvoiceDocumentUpdateOne {
	if v != nil {
		_u.SetIngestedAt(*v)
	}
	return _u
}

// AddAuditIDs adds the "audits" edge to the AuditRecord entity by IDs.
func (_u *InvoiceDocumentUpdateOne) AddAuditIDs(ids ...uuid.UUID) *InvoiceDocumentUpdateOne {
	_u.mutation.AddAuditIDs(ids...)
	return _u
}

// AddAudits adds the "audits" edges to the AuditRecord entity.
func (_u *InvoiceDocumentUpdateOne) AddAudits(v ...*AuditRecord) *InvoiceDocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditIDs(ids...)
}

// Mutation returns the InvoiceDocumentMutation object of the builder.
func (_u *InvoiceDocumentUpdateOne) Mutation() *InvoiceDocumentMutation {
	return _u.mutation
}

// ClearAudits clears all "audits" edges to the AuditRecord entity.
func (_u *InvoiceDocumentUpdateOne) ClearAudits() *InvoiceDocumentUpdateOne {
	_u.mutation.ClearAudits()
	return _u
}

// RemoveAuditIDs removes the "audits" edge to AuditRecord entities by IDs.
func (_u *InvoiceDocumentUpdateOne) RemoveAuditIDs(ids ...uuid.UUID) *InvoiceDocumentUpdateOne {
	_u.mutation.RemoveAuditIDs(ids...)
	return _u
}

// RemoveAudits removes "audits" edges to AuditRecord entities.
func (_u *InvoiceDocumentUpdateOne) RemoveAudits(v ...*AuditRecord) *InvoiceDocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditIDs(ids...)
}

// Where appends a list predicates to the InvoiceDocumentUpdate builder.
func (_u *InvoiceDocumentUpdateOne) Where(ps ...predicate.InvoiceDocument) *InvoiceDocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvoiceDocumentUpdateOne) Select(field string, fields ...string) *InvoiceDocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InvoiceDocument entity.
func (_u *InvoiceDocumentUpdateOne) Save(ctx context.Context) (*InvoiceDocument, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceDocumentUpdateOne) SaveX(ctx context.Context) *InvoiceDocument {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvoiceDocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceDocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceDocumentUpdateOne) check() error {
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := invoicedocument.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "InvoiceDocument.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := invoicedocument.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "InvoiceDocument.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := invoicedocument.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "InvoiceDocument.content_hash": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceDocumentUpdateOne) sqlSave(ctx context.Context) (_node *InvoiceDocument, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoicedocument.Table, invoicedocument.Columns, sqlgraph.NewFieldSpec(invoicedocument.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InvoiceDocument.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoicedocument.FieldID)
		for _, f := range fields {
			if !invoicedocument.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoicedocument.FieldID {
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
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(invoicedocument.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(invoicedocument.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(invoicedocument.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(invoicedocument.FieldRawText, field.TypeString, value)
	}
	if value, ok := _u.mutation.IngestedAt(); ok {
		_spec.SetField(invoicedocument.FieldIngestedAt, field.TypeTime, value)
	}
	if _u.mutation.AuditsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoicedocument.AuditsTable,
			Columns: []string{invoicedocument.AuditsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditrecord.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditsIDs(); len(nodes) > 0 && !_u.mutation.AuditsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoicedocument.AuditsTable,
			Columns: []string{invoicedocument.AuditsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoicedocument.AuditsTable,
			Columns: []string{invoicedocument.AuditsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &InvoiceDocument{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoicedocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
