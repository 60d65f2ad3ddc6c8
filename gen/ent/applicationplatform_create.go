// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adeolu-ojo/applytrack/gen/ent/applicationplatform"
	"github.com/adeolu-ojo/applytrack/gen/ent/job"
	"github.com/google/uuid"
)

// ApplicationPlatformCreate is the builder for creating a ApplicationPlatform entity.
type ApplicationPlatformCreate struct {
	config
	mutation *ApplicationPlatformMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *ApplicationPlatformCreate) SetJobID(v uuid.UUID) *ApplicationPlatformCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetPlatform sets the "platform" field.
func (_c *ApplicationPlatformCreate) SetPlatform(v string) *ApplicationPlatformCreate {
	_c.mutation.SetPlatform(v)
	return _c
}

// SetURL sets the "url" field.
func (_c *ApplicationPlatformCreate) SetURL(v string) *ApplicationPlatformCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_c *ApplicationPlatformCreate) SetNillableURL(v *string) *ApplicationPlatformCreate {
	if v != nil {
		_c.SetURL(*v)
	}
	return _c
}

// SetExternalID sets the "external_id" field.
func (_c *ApplicationPlatformCreate) SetExternalID(v string) *ApplicationPlatformCreate {
	_c.mutation.SetExternalID(v)
	return _c
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_c *ApplicationPlatformCreate) SetNillableExternalID(v *string) *ApplicationPlatformCreate {
	if v != nil {
		_c.SetExternalID(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *ApplicationPlatformCreate) SetNotes(v string) *ApplicationPlatformCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *ApplicationPlatformCreate) SetNillableNotes(v *string) *ApplicationPlatformCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ApplicationPlatformCreate) SetCreatedAt(v time.Time) *ApplicationPlatformCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ApplicationPlatformCreate) SetNillableCreatedAt(v *time.Time) *ApplicationPlatformCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ApplicationPlatformCreate) SetUpdatedAt(v time.Time) *ApplicationPlatformCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ApplicationPlatformCreate) SetNillableUpdatedAt(v *time.Time) *ApplicationPlatformCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ApplicationPlatformCreate) SetID(v uuid.UUID) *ApplicationPlatformCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ApplicationPlatformCreate) SetNillableID(v *uuid.UUID) *ApplicationPlatformCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetJob sets the "job" edge to the Job entity.
func (_c *ApplicationPlatformCreate) SetJob(v *Job) *ApplicationPlatformCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the ApplicationPlatformMutation object of the builder.
func (_c *ApplicationPlatformCreate) Mutation() *ApplicationPlatformMutation {
	return _c.mutation
}

// Save creates the ApplicationPlatform in the database.
func (_c *ApplicationPlatformCreate) Save(ctx context.Context) (*ApplicationPlatform, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApplicationPlatformCreate) SaveX(ctx context.Context) *ApplicationPlatform {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApplicationPlatformCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApplicationPlatformCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApplicationPlatformCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := applicationplatform.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := applicationplatform.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := applicationplatform.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApplicationPlatformCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "ApplicationPlatform.job_id"`)}
	}
	if _, ok := _c.mutation.Platform(); !ok {
		return &ValidationError{Name: "platform", err: errors.New(`ent: missing required field "ApplicationPlatform.platform"`)}
	}
	if v, ok := _c.mutation.Platform(); ok {
		if err := applicationplatform.PlatformValidator(v); err != nil {
			return &ValidationError{Name: "platform", err: fmt.Errorf(`ent: validator failed for field "ApplicationPlatform.platform": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ApplicationPlatform.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ApplicationPlatform.updated_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "ApplicationPlatform.job"`)}
	}
	return nil
}

func (_c *ApplicationPlatformCreate) sqlSave(ctx context.Context) (*ApplicationPlatform, error) {
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

func (_c *ApplicationPlatformCreate) createSpec() (*ApplicationPlatform, *sqlgraph.CreateSpec) {
	var (
		_node = &ApplicationPlatform{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(applicationplatform.Table, sqlgraph.NewFieldSpec(applicationplatform.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Platform(); ok {
		_spec.SetField(applicationplatform.FieldPlatform, field.TypeString, value)
		_node.Platform = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(applicationplatform.FieldURL, field.TypeString, value)
		_node.URL = &value
	}
	if value, ok := _c.mutation.ExternalID(); ok {
		_spec.SetField(applicationplatform.FieldExternalID, field.TypeString, value)
		_node.ExternalID = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(applicationplatform.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(applicationplatform.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(applicationplatform.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
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
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ApplicationPlatformCreateBulk is the builder for creating many ApplicationPlatform entities in bulk.
type ApplicationPlatformCreateBulk struct {
	config
	err      error
	builders []*ApplicationPlatformCreate
}

// Save creates the ApplicationPlatform entities in the database.
func (_c *ApplicationPlatformCreateBulk) Save(ctx context.Context) ([]*ApplicationPlatform, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ApplicationPlatform, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApplicationPlatformMutation)
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
func (_c *ApplicationPlatformCreateBulk) SaveX(ctx context.Context) []*ApplicationPlatform {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApplicationPlatformCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApplicationPlatformCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
