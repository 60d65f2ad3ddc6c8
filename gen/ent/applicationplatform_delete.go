// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adeolu-ojo/applytrack/gen/ent/applicationplatform"
	"github.com/adeolu-ojo/applytrack/gen/ent/predicate"
)

// ApplicationPlatformDelete is the builder for deleting a ApplicationPlatform entity.
type ApplicationPlatformDelete struct {
	config
	hooks    []Hook
	mutation *ApplicationPlatformMutation
}

// Where appends a list predicates to the ApplicationPlatformDelete builder.
func (_d *ApplicationPlatformDelete) Where(ps ...predicate.ApplicationPlatform) *ApplicationPlatformDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ApplicationPlatformDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ApplicationPlatformDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ApplicationPlatformDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(applicationplatform.Table, sqlgraph.NewFieldSpec(applicationplatform.FieldID, field.TypeUUID))
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

// ApplicationPlatformDeleteOne is the builder for deleting a single ApplicationPlatform entity.
type ApplicationPlatformDeleteOne struct {
	_d *ApplicationPlatformDelete
}

// Where appends a list predicates to the ApplicationPlatformDelete builder.
func (_d *ApplicationPlatformDeleteOne) Where(ps ...predicate.ApplicationPlatform) *ApplicationPlatformDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ApplicationPlatformDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{applicationplatform.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ApplicationPlatformDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
