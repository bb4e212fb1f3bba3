// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/greentrust/esg-audit/gen/ent/auditrecord"
	"github.com/greentrust/esg-audit/gen/ent/invoicedocument"
)

// InvoiceDocumentCreate is the builder for creating a InvoiceDocument entity.
type InvoiceDocumentCreate struct {
	config
	mutation *InvoiceDocumentMutation
	hooks    []Hook
}

// SetSourcePath sets the "source_path" field.
func (_c *InvoiceDocumentCreate) SetSourcePath(v string) *InvoiceDocumentCreate {
	_c.mutation.SetSourcePath(v)
	return _c
}

// SetFileExt sets the "file_ext" field.
func (_c *InvoiceDocumentCreate) SetFileExt(v string) *InvoiceDocumentCreate {
	_c.mutation.SetFileExt(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *InvoiceDocumentCreate) SetContentHash(v []byte) *InvoiceDocumentCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetRawText sets the "raw_text" field.
func (_c *InvoiceDocumentCreate) SetRawText(v string) *InvoiceDocumentCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetIngestedAt sets the "ingested_at" field.
func (_c *InvoiceDocumentCreate) SetIngestedAt(v time.Time) *InvoiceDocumentCreate {
	_c.mutation.SetIngestedAt(v)
	return _c
}

// SetNillableIngestedAt sets the "ingested_at" field if the given value is not nil.
func (_c *InvoiceDocumentCreate) SetNillableIngestedAt(v *time.Time) *InvoiceDocumentCreate {
	if v != nil {
		_c.SetIngestedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InvoiceDocumentCreate) SetID(v uuid.UUID) *InvoiceDocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InvoiceDocumentCreate) SetNillableID(v *uuid.UUID) *InvoiceDocumentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddAuditIDs adds the "audits" edge to the AuditRecord entity by IDs.
func (_c *InvoiceDocumentCreate) AddAuditIDs(ids ...uuid.UUID) *InvoiceDocumentCreate {
	_c.mutation.AddAuditIDs(ids...)
	return _c
}

// AddAudits adds the "audits" edges to the AuditRecord entity.
func (_c *InvoiceDocumentCreate) AddAudits(v ...*AuditRecord) *InvoiceDocumentCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAuditIDs(ids...)
}

// Mutation returns the InvoiceDocumentMutation object of the builder.
func (_c *InvoiceDocumentCreate) Mutation() *InvoiceDocumentMutation {
	return _c.mutation
}

// Save creates the InvoiceDocument in the database.
func (_c *InvoiceDocumentCreate) Save(ctx context.Context) (*InvoiceDocument, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InvoiceDocumentCreate) SaveX(ctx context.Context) *InvoiceDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceDocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceDocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InvoiceDocumentCreate) defaults() {
	if _, ok := _c.mutation.IngestedAt(); !ok {
		v := invoicedocument.DefaultIngestedAt()
		_c.mutation.SetIngestedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := invoicedocument.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InvoiceDocumentCreate) check() error {
	if _, ok := _c.mutation.SourcePath(); !ok {
		return &ValidationError{Name: "source_path", err: errors.New(`ent: missing required field "InvoiceDocument.source_path"`)}
	}
	if v, ok := _c.mutation.SourcePath(); ok {
		if err := invoicedocument.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "InvoiceDocument.source_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileExt(); !ok {
		return &ValidationError{Name: "file_ext", err: errors.New(`ent: missing required field "InvoiceDocument.file_ext"`)}
	}
	if v, ok := _c.mutation.FileExt(); ok {
		if err := invoicedocument.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "InvoiceDocument.file_ext": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "InvoiceDocument.content_hash"`)}
	}
	if v, ok := _c.mutation.ContentHash(); ok {
		if err := invoicedocument.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "InvoiceDocument.content_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RawText(); !ok {
		return &ValidationError{Name: "raw_text", err: errors.New(`ent: missing required field "InvoiceDocument.raw_text"`)}
	}
	if _, ok := _c.mutation.IngestedAt(); !ok {
		return &ValidationError{Name: "ingested_at", err: errors.New(`ent: missing required field "InvoiceDocument.ingested_at"`)}
	}
	return nil
}

func (_c *InvoiceDocumentCreate) sqlSave(ctx context.Context) (*InvoiceDocument, error) {
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

func (_c *InvoiceDocumentCreate) createSpec() (*InvoiceDocument, *sqlgraph.CreateSpec) {
	var (
		_node = &InvoiceDocument{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(invoicedocument.Table, sqlgraph.NewFieldSpec(invoicedocument.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.SourcePath(); ok {
		_spec.SetField(invoicedocument.FieldSourcePath, field.TypeString, value)
		_node.SourcePath = value
	}
	if value, ok := _c.mutation.FileExt(); ok {
		_spec.SetField(invoicedocument.FieldFileExt, field.TypeString, value)
		_node.FileExt = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(invoicedocument.FieldContentHash, field.TypeBytes, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(invoicedocument.FieldRawText, field.TypeString, value)
		_node.RawText = value
	}
	if value, ok := _c.mutation.IngestedAt(); ok {
		_spec.SetField(invoicedocument.FieldIngestedAt, field.TypeTime, value)
		_node.IngestedAt = value
	}
	if nodes := _c.mutation.AuditsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InvoiceDocumentCreateBulk is the builder for creating many InvoiceDocument entities in bulk.
type InvoiceDocumentCreateBulk struct {
	config
	err      error
	builders []*InvoiceDocumentCreate
}

// Save creates the InvoiceDocument entities in the database.
func (_c *InvoiceDocumentCreateBulk) Save(ctx context.Context) ([]*InvoiceDocument, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InvoiceDocument, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvoiceDocumentMutation)
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
func (_c *InvoiceDocumentCreateBulk) SaveX(ctx context.Context) []*InvoiceDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceDocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceDocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
