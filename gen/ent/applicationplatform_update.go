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
	"github.com/adeolu-ojo/applytrack/gen/ent/applicationplatform"
	"github.com/adeolu-ojo/applytrack/gen/ent/job"
	"github.com/adeolu-ojo/applytrack/gen/ent/predicate"
	"github.com/google/uuid"
)

// ApplicationPlatformUpdate is the builder for updating ApplicationPlatform entities.
type ApplicationPlatformUpdate struct {
	config
	hooks    []Hook
	mutation *ApplicationPlatformMutation
}

// Where appends a list predicates to the ApplicationPlatformUpdate builder.
func (_u *ApplicationPlatformUpdate) Where(ps ...predicate.ApplicationPlatform) *ApplicationPlatformUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *ApplicationPlatformUpdate) SetJobID(v uuid.UUID) *ApplicationPlatformUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *ApplicationPlatformUpdate) SetNillableJobID(v *uuid.UUID) *ApplicationPlatformUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *ApplicationPlatformUpdate) SetPlatform(v string) *ApplicationPlatformUpdate {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *ApplicationPlatformUpdate) SetNillablePlatform(v *string) *ApplicationPlatformUpdate {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *ApplicationPlatformUpdate) SetURL(v string) *ApplicationPlatformUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *ApplicationPlatformUpdate) SetNillableURL(v *string) *ApplicationPlatformUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *ApplicationPlatformUpdate) ClearURL() *ApplicationPlatformUpdate {
	_u.mutation.ClearURL()
	return _u
}

// SetExternalID sets the "external_id" field.
func (_u *ApplicationPlatformUpdate) SetExternalID(v string) *ApplicationPlatformUpdate {
	_u.mutation.SetExternalID(v)
	return _u
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_u *ApplicationPlatformUpdate) SetNillableExternalID(v *string) *ApplicationPlatformUpdate {
	if v != nil {
		_u.SetExternalID(*v)
	}
	return _u
}

// ClearExternalID clears the value of the "external_id" field.
func (_u *ApplicationPlatformUpdate) ClearExternalID() *ApplicationPlatformUpdate {
	_u.mutation.ClearExternalID()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ApplicationPlatformUpdate) SetNotes(v string) *ApplicationPlatformUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ApplicationPlatformUpdate) SetNillableNotes(v *string) *ApplicationPlatformUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *ApplicationPlatformUpdate) ClearNotes() *ApplicationPlatformUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ApplicationPlatformUpdate) SetCreatedAt(v time.Time) *ApplicationPlatformUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ApplicationPlatformUpdate) SetNillableCreatedAt(v *time.Time) *ApplicationPlatformUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ApplicationPlatformUpdate) SetUpdatedAt(v time.Time) *ApplicationPlatformUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetJob sets the "job" edge to the Job entity.
func (_u *ApplicationPlatformUpdate) SetJob(v *Job) *ApplicationPlatformUpdate {
	return _u.SetJobID(v.ID)
}

// Mutation returns the ApplicationPlatformMutation object of the builder.
func (_u *ApplicationPlatformUpdate) Mutation() *ApplicationPlatformMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the Job entity.
func (_u *ApplicationPlatformUpdate) ClearJob() *ApplicationPlatformUpdate {
	_u.mutation.ClearJob()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApplicationPlatformUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApplicationPlatformUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApplicationPlatformUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApplicationPlatformUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ApplicationPlatformUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := applicationplatform.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApplicationPlatformUpdate) check() error {
	if v, ok := _u.mutation.Platform(); ok {
		if err := applicationplatform.PlatformValidator(v); err != nil {
			return &ValidationError{Name: "platform", err: fmt.Errorf(`ent: validator failed for field "ApplicationPlatform.platform": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ApplicationPlatform.job"`)
	}
	return nil
}

func (_u *ApplicationPlatformUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(applicationplatform.Table, applicationplatform.Columns, sqlgraph.NewFieldSpec(applicationplatform.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(applicationplatform.FieldPlatform, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(applicationplatform.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(applicationplatform.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.ExternalID(); ok {
		_spec.SetField(applicationplatform.FieldExternalID, field.TypeString, value)
	}
	if _u.mutation.ExternalIDCleared() {
		_spec.ClearField(applicationplatform.FieldExternalID, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(applicationplatform.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(applicationplatform.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(applicationplatform.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(applicationplatform.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   applicationplatform.JobTable,
			Columns: []string{applicationplatform.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   applicationplatform.JobTable,
			Columns: []string{applicationplatform.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{applicationplatform.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApplicationPlatformUpdateOne is the builder for updating a single ApplicationPlatform entity.
type ApplicationPlatformUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApplicationPlatformMutation
}

// SetJobID sets the "job_id" field.
func (_u *ApplicationPlatformUpdateOne) SetJobID(v uuid.UUID) *ApplicationPlatformUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *ApplicationPlatformUpdateOne) SetNillableJobID(v *uuid.UUID) *ApplicationPlatformUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *ApplicationPlatformUpdateOne) SetPlatform(v string) *ApplicationPlatformUpdateOne {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *ApplicationPlatformUpdateOne) SetNillablePlatform(v *string) *ApplicationPlatformUpdateOne {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *ApplicationPlatformUpdateOne) SetURL(v string) *ApplicationPlatformUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *ApplicationPlatformUpdateOne) SetNillableURL(v *string) *ApplicationPlatformUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *ApplicationPlatformUpdateOne) ClearURL() *ApplicationPlatformUpdateOne {
	_u.mutation.ClearURL()
	return _u
}

// SetExternalID sets the "external_id" field.
func (_u *ApplicationPlatformUpdateOne) SetExternalID(v string) *ApplicationPlatformUpdateOne {
	_u.mutation.SetExternalID(v)
	return _u
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_u *ApplicationPlatformUpdateOne) SetNillableExternalID(v *string) *ApplicationPlatformUpdateOne {
	if v != nil {
		_u.SetExternalID(*v)
	}
	return _u
}

// ClearExternalID clears the value of the "external_id" field.
func (_u *ApplicationPlatformUpdateOne) ClearExternalID() *ApplicationPlatformUpdateOne {
	_u.mutation.ClearExternalID()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ApplicationPlatformUpdateOne) SetNotes(v string) *ApplicationPlatformUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ApplicationPlatformUpdateOne) SetNillableNotes(v *string) *ApplicationPlatformUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *ApplicationPlatformUpdateOne) ClearNotes() *ApplicationPlatformUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ApplicationPlatformUpdateOne) SetCreatedAt(v time.Time) *ApplicationPlatformUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ApplicationPlatformUpdateOne) SetNillableCreatedAt(v *time.Time) *ApplicationPlatformUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ApplicationPlatformUpdateOne) SetUpdatedAt(v time.Time) *ApplicationPlatformUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetJob sets the "job" edge to the Job entity.
func (_u *ApplicationPlatformUpdateOne) SetJob(v *Job) *ApplicationPlatformUpdateOne {
	return _u.SetJobID(v.ID)
}

// Mutation returns the ApplicationPlatformMutation object of the builder.
func (_u *ApplicationPlatformUpdateOne) Mutation() *ApplicationPlatformMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the Job entity.
func (_u *ApplicationPlatformUpdateOne) ClearJob() *ApplicationPlatformUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// Where appends a list predicates to the ApplicationPlatformUpdate builder.
func (_u *ApplicationPlatformUpdateOne) Where(ps ...predicate.ApplicationPlatform) *ApplicationPlatformUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApplicationPlatformUpdateOne) Select(field string, fields ...string) *ApplicationPlatformUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ApplicationPlatform entity.
func (_u *ApplicationPlatformUpdateOne) Save(ctx context.Context) (*ApplicationPlatform, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApplicationPlatformUpdateOne) SaveX(ctx context.Context) *ApplicationPlatform {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApplicationPlatformUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApplicationPlatformUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ApplicationPlatformUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := applicationplatform.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApplicationPlatformUpdateOne) check() error {
	if v, ok := _u.mutation.Platform(); ok {
		if err := applicationplatform.PlatformValidator(v); err != nil {
			return &ValidationError{Name: "platform", err: fmt.Errorf(`ent: validator failed for field "ApplicationPlatform.platform": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ApplicationPlatform.job"`)
	}
	return nil
}

func (_u *ApplicationPlatformUpdateOne) sqlSave(ctx context.Context) (_node *ApplicationPlatform, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(applicationplatform.Table, applicationplatform.Columns, sqlgraph.NewFieldSpec(applicationplatform.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ApplicationPlatform.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, applicationplatform.FieldID)
		for _, f := range fields {
			if !applicationplatform.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != applicationplatform.FieldID {
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
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(applicationplatform.FieldPlatform, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(applicationplatform.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(applicationplatform.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.ExternalID(); ok {
		_spec.SetField(applicationplatform.FieldExternalID, field.TypeString, value)
	}
	if _u.mutation.ExternalIDCleared() {
		_spec.ClearField(applicationplatform.FieldExternalID, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(applicationplatform.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(applicationplatform.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(applicationplatform.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(applicationplatform.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   applicationplatform.JobTable,
			Columns: []string{applicationplatform.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   applicationplatform.JobTable,
			Columns: []string{applicationplatform.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ApplicationPlatform{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{applicationplatform.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
