// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/greentrust/esg-audit/gen/ent/invoicedocument"
	"github.com/greentrust/esg-audit/gen/ent/predicate"
)

// InvoiceDocumentDelete is the builder for deleting a InvoiceDocument entity.
type InvoiceDocumentDelete struct {
	config
	hooks    []Hook
	mutation *InvoiceDocumentMutation
}

// Where appends a list predicates to the InvoiceDocumentDelete builder.
func (_d *InvoiceDocumentDelete) Where(ps ...predicate.InvoiceDocument) *InvoiceDocumentDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *InvoiceDocumentDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InvoiceDocumentDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *InvoiceDocumentDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(invoicedocument.Table, sqlgraph.NewFieldSpec(invoicedocument.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// InvoiceDocumentDeleteOne is the builder for deleting a single InvoiceDocument entity.
type InvoiceDocumentDeleteOne struct {
	_d *InvoiceDocumentDelete
}

// Where appends a list predicates to the InvoiceDocumentDelete builder.
func (_d *InvoiceDocumentDeleteOne) Where(ps ...predicate.InvoiceDocument) *InvoiceDocumentDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *InvoiceDocumentDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{invoicedocument.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InvoiceDocumentDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
