// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adeolu-ojo/applytrack/gen/ent/duplicatepair"
	"github.com/google/uuid"
)

// DuplicatePairCreate is the builder for creating a DuplicatePair entity.
type DuplicatePairCreate struct {
	config
	mutation *DuplicatePairMutation
	hooks    []Hook
}

// SetJobID1 sets the "job_id_1" field.
func (_c *DuplicatePairCreate) SetJobID1(v uuid.UUID) *DuplicatePairCreate {
	_c.mutation.SetJobID1(v)
	return _c
}

// SetJobID2 sets the "job_id_2" field.
func (_c *DuplicatePairCreate) SetJobID2(v uuid.UUID) *DuplicatePairCreate {
	_c.mutation.SetJobID2(v)
	return _c
}

// SetCompanyScore sets the "company_score" field.
func (_c *DuplicatePairCreate) SetCompanyScore(v float64) *DuplicatePairCreate {
	_c.mutation.SetCompanyScore(v)
	return _c
}

// SetTitleScore sets the "title_score" field.
func (_c *DuplicatePairCreate) SetTitleScore(v float64) *DuplicatePairCreate {
	_c.mutation.SetTitleScore(v)
	return _c
}

// SetLocationScore sets the "location_score" field.
func (_c *DuplicatePairCreate) SetLocationScore(v float64) *DuplicatePairCreate {
	_c.mutation.SetLocationScore(v)
	return _c
}

// SetDateScore sets the "date_score" field.
func (_c *DuplicatePairCreate) SetDateScore(v float64) *DuplicatePairCreate {
	_c.mutation.SetDateScore(v)
	return _c
}

// SetSimilarityScore sets the "similarity_score" field.
func (_c *DuplicatePairCreate) SetSimilarityScore(v float64) *DuplicatePairCreate {
	_c.mutation.SetSimilarityScore(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *DuplicatePairCreate) SetStatus(v string) *DuplicatePairCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DuplicatePairCreate) SetNillableStatus(v *string) *DuplicatePairCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *DuplicatePairCreate) SetResolvedAt(v time.Time) *DuplicatePairCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *DuplicatePairCreate) SetNillableResolvedAt(v *time.Time) *DuplicatePairCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DuplicatePairCreate) SetCreatedAt(v time.Time) *DuplicatePairCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DuplicatePairCreate) SetNillableCreatedAt(v *time.Time) *DuplicatePairCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DuplicatePairCreate) SetUpdatedAt(v time.Time) *DuplicatePairCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DuplicatePairCreate) SetNillableUpdatedAt(v *time.Time) *DuplicatePairCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DuplicatePairCreate) SetID(v uuid.UUID) *DuplicatePairCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DuplicatePairCreate) SetNillableID(v *uuid.UUID) *DuplicatePairCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the DuplicatePairMutation object of the builder.
func (_c *DuplicatePairCreate) Mutation() *DuplicatePairMutation {
	return _c.mutation
}

// Save creates the DuplicatePair in the database.
func (_c *DuplicatePairCreate) Save(ctx context.Context) (*DuplicatePair, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DuplicatePairCreate) SaveX(ctx context.Context) *DuplicatePair {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DuplicatePairCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DuplicatePairCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DuplicatePairCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := duplicatepair.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := duplicatepair.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := duplicatepair.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := duplicatepair.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DuplicatePairCreate) check() error {
	if _, ok := _c.mutation.JobID1(); !ok {
		return &ValidationError{Name: "job_id_1", err: errors.New(`ent: missing required field "DuplicatePair.job_id_1"`)}
	}
	if _, ok := _c.mutation.JobID2(); !ok {
		return &ValidationError{Name: "job_id_2", err: errors.New(`ent: missing required field "DuplicatePair.job_id_2"`)}
	}
	if _, ok := _c.mutation.CompanyScore(); !ok {
		return &ValidationError{Name: "company_score", err: errors.New(`ent: missing required field "DuplicatePair.company_score"`)}
	}
	if v, ok := _c.mutation.CompanyScore(); ok {
		if err := duplicatepair.CompanyScoreValidator(v); err != nil {
			return &ValidationError{Name: "company_score", err: fmt.Errorf(`ent: validator failed for field "DuplicatePair.company_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TitleScore(); !ok {
		return &ValidationError{Name: "title_score", err: errors.New(`ent: missing required field "DuplicatePair.title_score"`)}
	}
	if v, ok := _c.mutation.TitleScore(); ok {
		if err := duplicatepair.TitleScoreValidator(v); err != nil {
			return &ValidationError{Name: "title_score", err: fmt.Errorf(`ent: validator failed for field "DuplicatePair.title_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LocationScore(); !ok {
		return &ValidationError{Name: "location_score", err: errors.New(`ent: missing required field "DuplicatePair.location_score"`)}
	}
	if v, ok := _c.mutation.LocationScore(); ok {
		if err := duplicatepair.LocationScoreValidator(v); err != nil {
			return &ValidationError{Name: "location_score", err: fmt.Errorf(`ent: validator failed for field "DuplicatePair.location_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DateScore(); !ok {
		return &ValidationError{Name: "date_score", err: errors.New(`ent: missing required field "DuplicatePair.date_score"`)}
	}
	if v, ok := _c.mutation.DateScore(); ok {
		if err := duplicatepair.DateScoreValidator(v); err != nil {
			return &ValidationError{Name: "date_score", err: fmt.Errorf(`ent: validator failed for field "DuplicatePair.date_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SimilarityScore(); !ok {
		return &ValidationError{Name: "similarity_score", err: errors.New(`ent: missing required field "DuplicatePair.similarity_score"`)}
	}
	if v, ok := _c.mutation.SimilarityScore(); ok {
		if err := duplicatepair.SimilarityScoreValidator(v); err != nil {
			return &ValidationError{Name: "similarity_score", err: fmt.Errorf(`ent: validator failed for field "DuplicatePair.similarity_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "DuplicatePair.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := duplicatepair.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DuplicatePair.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DuplicatePair.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DuplicatePair.updated_at"`)}
	}
	return nil
}

func (_c *DuplicatePairCreate) sqlSave(ctx context.Context) (*DuplicatePair, error) {
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

func (_c *DuplicatePairCreate) createSpec() (*DuplicatePair, *sqlgraph.CreateSpec) {
	var (
		_node = &DuplicatePair{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(duplicatepair.Table, sqlgraph.NewFieldSpec(duplicatepair.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.JobID1(); ok {
		_spec.SetField(duplicatepair.FieldJobID1, field.TypeUUID, value)
		_node.JobID1 = value
	}
	if value, ok := _c.mutation.JobID2(); ok {
		_spec.SetField(duplicatepair.FieldJobID2, field.TypeUUID, value)
		_node.JobID2 = value
	}
	if value, ok := _c.mutation.CompanyScore(); ok {
		_spec.SetField(duplicatepair.FieldCompanyScore, field.TypeFloat64, value)
		_node.CompanyScore = value
	}
	if value, ok := _c.mutation.TitleScore(); ok {
		_spec.SetField(duplicatepair.FieldTitleScore, field.TypeFloat64, value)
		_node.TitleScore = value
	}
	if value, ok := _c.mutation.LocationScore(); ok {
		_spec.SetField(duplicatepair.FieldLocationScore, field.TypeFloat64, value)
		_node.LocationScore = value
	}
	if value, ok := _c.mutation.DateScore(); ok {
		_spec.SetField(duplicatepair.FieldDateScore, field.TypeFloat64, value)
		_node.DateScore = value
	}
	if value, ok := _c.mutation.SimilarityScore(); ok {
		_spec.SetField(duplicatepair.FieldSimilarityScore, field.TypeFloat64, value)
		_node.SimilarityScore = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(duplicatepair.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(duplicatepair.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(duplicatepair.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(duplicatepair.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// DuplicatePairCreateBulk is the builder for creating many DuplicatePair entities in bulk.
type DuplicatePairCreateBulk struct {
	config
	err      error
	builders []*DuplicatePairCreate
}

// Save creates the DuplicatePair entities in the database.
func (_c *DuplicatePairCreateBulk) Save(ctx context.Context) ([]*DuplicatePair, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DuplicatePair, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DuplicatePairMutation)
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
func (_c *DuplicatePairCreateBulk) SaveX(ctx context.Context) []*DuplicatePair {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DuplicatePairCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DuplicatePairCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
