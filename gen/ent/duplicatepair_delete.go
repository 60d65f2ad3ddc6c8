// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adeolu-ojo/applytrack/gen/ent/duplicatepair"
	"github.com/adeolu-ojo/applytrack/gen/ent/predicate"
)

// DuplicatePairDelete is the builder for deleting a DuplicatePair entity.
type DuplicatePairDelete struct {
	config
	hooks    []Hook
	mutation *DuplicatePairMutation
}

// Where appends a list predicates to the DuplicatePairDelete builder.
func (_d *DuplicatePairDelete) Where(ps ...predicate.DuplicatePair) *DuplicatePairDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DuplicatePairDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DuplicatePairDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DuplicatePairDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(duplicatepair.Table, sqlgraph.NewFieldSpec(duplicatepair.FieldID, field.TypeUUID))
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

// DuplicatePairDeleteOne is the builder for deleting a single DuplicatePair entity.
type DuplicatePairDeleteOne struct {
	_d *DuplicatePairDelete
}

// Where appends a list predicates to the DuplicatePairDelete builder.
func (_d *DuplicatePairDeleteOne) Where(ps ...predicate.DuplicatePair) *DuplicatePairDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DuplicatePairDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{duplicatepair.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DuplicatePairDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
