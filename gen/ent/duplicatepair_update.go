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
	"github.com/adeolu-ojo/applytrack/gen/ent/duplicatepair"
	"github.com/adeolu-ojo/applytrack/gen/ent/predicate"
	"github.com/google/uuid"
)

// DuplicatePairUpdate is the builder for updating DuplicatePair entities.
type DuplicatePairUpdate struct {
	config
	hooks    []Hook
	mutation *DuplicatePairMutation
}

// Where appends a list predicates to the DuplicatePairUpdate builder.
func (_u *DuplicatePairUpdate) Where(ps ...predicate.DuplicatePair) *DuplicatePairUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID1 sets the "job_id_1" field.
func (_u *DuplicatePairUpdate) SetJobID1(v uuid.UUID) *DuplicatePairUpdate {
	_u.mutation.SetJobID1(v)
	return _u
}

// SetNillableJobID1 sets the "job_id_1" field if the given value is not nil.
func (_u *DuplicatePairUpdate) SetNillableJobID1(v *uuid.UUID) *DuplicatePairUpdate {
	if v != nil {
		_u.SetJobID1(*v)
	}
	return _u
}

// SetJobID2 sets the "job_id_2" field.
func (_u *DuplicatePairUpdate) SetJobID2(v uuid.UUID) *DuplicatePairUpdate {
	_u.mutation.SetJobID2(v)
	return _u
}

// SetNillableJobID2 sets the "job_id_2" field if the given value is not nil.
func (_u *DuplicatePairUpdate) SetNillableJobID2(v *uuid.UUID) *DuplicatePairUpdate {
	if v != nil {
		_u.SetJobID2(*v)
	}
	return _u
}

// SetCompanyScore sets the "company_score" field.
func (_u *DuplicatePairUpdate) SetCompanyScore(v float64) *DuplicatePairUpdate {
	_u.mutation.ResetCompanyScore()
	_u.mutation.SetCompanyScore(v)
	return _u
}

// SetNillableCompanyScore sets the "company_score" field if the given value is not nil.
func (_u *DuplicatePairUpdate) SetNillableCompanyScore(v *float64) *DuplicatePairUpdate {
	if v != nil {
		_u.SetCompanyScore(*v)
	}
	return _u
}

// AddCompanyScore adds value to the "company_score" field.
func (_u *DuplicatePairUpdate) AddCompanyScore(v float64) *DuplicatePairUpdate {
	_u.mutation.AddCompanyScore(v)
	return _u
}

// SetTitleScore sets the "title_score" field.
func (_u *DuplicatePairUpdate) SetTitleScore(v float64) *DuplicatePairUpdate {
	_u.mutation.ResetTitleScore()
	_u.mutation.SetTitleScore(v)
	return _u
}

// SetNillableTitleScore sets the "title_score" field if the given value is not nil.
func (_u *DuplicatePairUpdate) SetNillableTitleScore(v *float64) *DuplicatePairUpdate {
	if v != nil {
		_u.SetTitleScore(*v)
	}
	return _u
}

// AddTitleScore adds value to the "title_score" field.
func (_u *DuplicatePairUpdate) AddTitleScore(v float64) *DuplicatePairUpdate {
	_u.mutation.AddTitleScore(v)
	return _u
}

// SetLocationScore sets the "location_score" field.
func (_u *DuplicatePairUpdate) SetLocationScore(v float64) *DuplicatePairUpdate {
	_u.mutation.ResetLocationScore()
	_u.mutation.SetLocationScore(v)
	return _u
}

// SetNillableLocationScore sets the "location_score" field if the given value is not nil.
func (_u *DuplicatePairUpdate) SetNillableLocationScore(v *float64) *DuplicatePairUpdate {
	if v != nil {
		_u.SetLocationScore(*v)
	}
	return _u
}

// AddLocationScore adds value to the "location_score" field.
func (_u *DuplicatePairUpdate) AddLocationScore(v float64) *DuplicatePairUpdate {
	_u.mutation.AddLocationScore(v)
	return _u
}

// SetDateScore sets the "date_score" field.
func (_u *DuplicatePairUpdate) SetDateScore(v float64) *DuplicatePairUpdate {
	_u.mutation.ResetDateScore()
	_u.mutation.SetDateScore(v)
	return _u
}

// SetNillableDateScore sets the "date_score" field if the given value is not nil.
func (_u *DuplicatePairUpdate) SetNillableDateScore(v *float64) *DuplicatePairUpdate {
	if v != nil {
		_u.SetDateScore(*v)
	}
	return _u
}

// AddDateScore adds value to the "date_score" field.
func (_u *DuplicatePairUpdate) AddDateScore(v float64) *DuplicatePairUpdate {
	_u.mutation.AddDateScore(v)
	return _u
}

// SetSimilarityScore sets the "similarity_score" field.
func (_u *DuplicatePairUpdate) SetSimilarityScore(v float64) *DuplicatePairUpdate {
	_u.mutation.ResetSimilarityScore()
	_u.mutation.SetSimilarityScore(v)
	return _u
}

// SetNillableSimilarityScore sets the "similarity_score" field if the given value is not nil.
func (_u *DuplicatePairUpdate) SetNillableSimilarityScore(v *float64) *DuplicatePairUpdate {
	if v != nil {
		_u.SetSimilarityScore(*v)
	}
	return _u
}

// AddSimilarityScore adds value to the "similarity_score" field.
func (_u *DuplicatePairUpdate) AddSimilarityScore(v float64) *DuplicatePairUpdate {
	_u.mutation.AddSimilarityScore(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *DuplicatePairUpdate) SetStatus(v string) *DuplicatePairUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DuplicatePairUpdate) SetNillableStatus(v *string) *DuplicatePairUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *DuplicatePairUpdate) SetResolvedAt(v time.Time) *DuplicatePairUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *DuplicatePairUpdate) SetNillableResolvedAt(v *time.Time) *DuplicatePairUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *DuplicatePairUpdate) ClearResolvedAt() *DuplicatePairUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DuplicatePairUpdate) SetCreatedAt(v time.Time) *DuplicatePairUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DuplicatePairUpdate) SetNillableCreatedAt(v *time.Time) *DuplicatePairUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DuplicatePairUpdate) SetUpdatedAt(v time.Time) *DuplicatePairUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DuplicatePairMutation object of the builder.
func (_u *DuplicatePairUpdate) Mutation() *DuplicatePairMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DuplicatePairUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DuplicatePairUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DuplicatePairUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DuplicatePairUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DuplicatePairUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := duplicatepair.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DuplicatePairUpdate) check() error {
	if v, ok := _u.mutation.CompanyScore(); ok {
		if err := duplicatepair.CompanyScoreValidator(v); err != nil {
			return &ValidationError{Name: "company_score", err: fmt.Errorf(`ent: validator failed for field "DuplicatePair.company_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TitleScore(); ok {
		if err := duplicatepair.TitleScoreValidator(v); err != nil {
			return &ValidationError{Name: "title_score", err: fmt.Errorf(`ent: validator failed for field "DuplicatePair.title_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LocationScore(); ok {
		if err := duplicatepair.LocationScoreValidator(v); err != nil {
			return &ValidationError{Name: "location_score", err: fmt.Errorf(`ent: validator failed for field "DuplicatePair.location_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DateScore(); ok {
		if err := duplicatepair.DateScoreValidator(v); err != nil {
			return &ValidationError{Name: "date_score", err: fmt.Errorf(`ent: validator failed for field "DuplicatePair.date_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SimilarityScore(); ok {
		if err := duplicatepair.SimilarityScoreValidator(v); err != nil {
			return &ValidationError{Name: "similarity_score", err: fmt.Errorf(`ent: validator failed for field "DuplicatePair.similarity_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := duplicatepair.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DuplicatePair.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DuplicatePairUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(duplicatepair.Table, duplicatepair.Columns, sqlgraph.NewFieldSpec(duplicatepair.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.JobID1(); ok {
		_spec.SetField(duplicatepair.FieldJobID1, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.JobID2(); ok {
		_spec.SetField(duplicatepair.FieldJobID2, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CompanyScore(); ok {
		_spec.SetField(duplicatepair.FieldCompanyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompanyScore(); ok {
		_spec.AddField(duplicatepair.FieldCompanyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TitleScore(); ok {
		_spec.SetField(duplicatepair.FieldTitleScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTitleScore(); ok {
		_spec.AddField(duplicatepair.FieldTitleScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LocationScore(); ok {
		_spec.SetField(duplicatepair.FieldLocationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLocationScore(); ok {
		_spec.AddField(duplicatepair.FieldLocationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DateScore(); ok {
		_spec.SetField(duplicatepair.FieldDateScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDateScore(); ok {
		_spec.AddField(duplicatepair.FieldDateScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SimilarityScore(); ok {
		_spec.SetField(duplicatepair.FieldSimilarityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSimilarityScore(); ok {
		_spec.AddField(duplicatepair.FieldSimilarityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(duplicatepair.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(duplicatepair.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(duplicatepair.FieldResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(duplicatepair.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(duplicatepair.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{duplicatepair.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DuplicatePairUpdateOne is the builder for updating a single DuplicatePair entity.
type DuplicatePairUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DuplicatePairMutation
}

// SetJobID1 sets the "job_id_1" field.
func (_u *DuplicatePairUpdateOne) SetJobID1(v uuid.UUID) *DuplicatePairUpdateOne {
	_u.mutation.SetJobID1(v)
	return _u
}

// SetNillableJobID1 sets the "job_id_1" field if the given value is not nil.
func (_u *DuplicatePairUpdateOne) SetNillableJobID1(v *uuid.UUID) *DuplicatePairUpdateOne {
	if v != nil {
		_u.SetJobID1(*v)
	}
	return _u
}

// SetJobID2 sets the "job_id_2" field.
func (_u *DuplicatePairUpdateOne) SetJobID2(v uuid.UUID) *DuplicatePairUpdateOne {
	_u.mutation.SetJobID2(v)
	return _u
}

// SetNillableJobID2 sets the "job_id_2" field if the given value is not nil.
func (_u *DuplicatePairUpdateOne) SetNillableJobID2(v *uuid.UUID) *DuplicatePairUpdateOne {
	if v != nil {
		_u.SetJobID2(*v)
	}
	return _u
}

// SetCompanyScore sets the "company_score" field.
func (_u *DuplicatePairUpdateOne) SetCompanyScore(v float64) *DuplicatePairUpdateOne {
	_u.mutation.ResetCompanyScore()
	_u.mutation.SetCompanyScore(v)
	return _u
}

// SetNillableCompanyScore sets the "company_score" field if the given value is not nil.
func (_u *DuplicatePairUpdateOne) SetNillableCompanyScore(v *float64) *DuplicatePairUpdateOne {
	if v != nil {
		_u.SetCompanyScore(*v)
	}
	return _u
}

// AddCompanyScore adds value to the "company_score" field.
func (_u *DuplicatePairUpdateOne) AddCompanyScore(v float64) *DuplicatePairUpdateOne {
	_u.mutation.AddCompanyScore(v)
	return _u
}

// SetTitleScore sets the "title_score" field.
func (_u *DuplicatePairUpdateOne) SetTitleScore(v float64) *DuplicatePairUpdateOne {
	_u.mutation.ResetTitleScore()
	_u.mutation.SetTitleScore(v)
	return _u
}

// SetNillableTitleScore sets the "title_score" field if the given value is not nil.
func (_u *DuplicatePairUpdateOne) SetNillableTitleScore(v *float64) *DuplicatePairUpdateOne {
	if v != nil {
		_u.SetTitleScore(*v)
	}
	return _u
}

// AddTitleScore adds value to the "title_score" field.
func (_u *DuplicatePairUpdateOne) AddTitleScore(v float64) *DuplicatePairUpdateOne {
	_u.mutation.AddTitleScore(v)
	return _u
}

// SetLocationScore sets the "location_score" field.
func (_u *DuplicatePairUpdateOne) SetLocationScore(v float64) *DuplicatePairUpdateOne {
	_u.mutation.ResetLocationScore()
	_u.mutation.SetLocationScore(v)
	return _u
}

// SetNillableLocationScore sets the "location_score" field if the given value is not nil.
func (_u *DuplicatePairUpdateOne) SetNillableLocationScore(v *float64) *DuplicatePairUpdateOne {
	if v != nil {
		_u.SetLocationScore(*v)
	}
	return _u
}

// AddLocationScore adds value to the "location_score" field.
func (_u *DuplicatePairUpdateOne) AddLocationScore(v float64) *DuplicatePairUpdateOne {
	_u.mutation.AddLocationScore(v)
	return _u
}

// SetDateScore sets the "date_score" field.
func (_u *DuplicatePairUpdateOne) SetDateScore(v float64) *DuplicatePairUpdateOne {
	_u.mutation.ResetDateScore()
	_u.mutation.SetDateScore(v)
	return _u
}

// SetNillableDateScore sets the "date_score" field if the given value is not nil.
func (_u *DuplicatePairUpdateOne) SetNillableDateScore(v *float64) *DuplicatePairUpdateOne {
	if v != nil {
		_u.SetDateScore(*v)
	}
	return _u
}

// AddDateScore adds value to the "date_score" field.
func (_u *DuplicatePairUpdateOne) AddDateScore(v float64) *DuplicatePairUpdateOne {
	_u.mutation.AddDateScore(v)
	return _u
}

// SetSimilarityScore sets the "similarity_score" field.
func (_u *DuplicatePairUpdateOne) SetSimilarityScore(v float64) *DuplicatePairUpdateOne {
	_u.mutation.ResetSimilarityScore()
	_u.mutation.SetSimilarityScore(v)
	return _u
}

// SetNillableSimilarityScore sets the "similarity_score" field if the given value is not nil.
func (_u *DuplicatePairUpdateOne) SetNillableSimilarityScore(v *float64) *DuplicatePairUpdateOne {
	if v != nil {
		_u.SetSimilarityScore(*v)
	}
	return _u
}

// AddSimilarityScore adds value to the "similarity_score" field.
func (_u *DuplicatePairUpdateOne) AddSimilarityScore(v float64) *DuplicatePairUpdateOne {
	_u.mutation.AddSimilarityScore(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *DuplicatePairUpdateOne) SetStatus(v string) *DuplicatePairUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DuplicatePairUpdateOne) SetNillableStatus(v *string) *DuplicatePairUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *DuplicatePairUpdateOne) SetResolvedAt(v time.Time) *DuplicatePairUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *DuplicatePairUpdateOne) SetNillableResolvedAt(v *time.Time) *DuplicatePairUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *DuplicatePairUpdateOne) ClearResolvedAt() *DuplicatePairUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DuplicatePairUpdateOne) SetCreatedAt(v time.Time) *DuplicatePairUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DuplicatePairUpdateOne) SetNillableCreatedAt(v *time.Time) *DuplicatePairUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DuplicatePairUpdateOne) SetUpdatedAt(v time.Time) *DuplicatePairUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DuplicatePairMutation object of the builder.
func (_u *DuplicatePairUpdateOne) Mutation() *DuplicatePairMutation {
	return _u.mutation
}

// Where appends a list predicates to the DuplicatePairUpdate builder.
func (_u *DuplicatePairUpdateOne) Where(ps ...predicate.DuplicatePair) *DuplicatePairUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DuplicatePairUpdateOne) Select(field string, fields ...string) *DuplicatePairUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DuplicatePair entity.
func (_u *DuplicatePairUpdateOne) Save(ctx context.Context) (*DuplicatePair, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DuplicatePairUpdateOne) SaveX(ctx context.Context) *DuplicatePair {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DuplicatePairUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DuplicatePairUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DuplicatePairUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := duplicatepair.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DuplicatePairUpdateOne) check() error {
	if v, ok := _u.mutation.CompanyScore(); ok {
		if err := duplicatepair.CompanyScoreValidator(v); err != nil {
			return &ValidationError{Name: "company_score", err: fmt.Errorf(`ent: validator failed for field "DuplicatePair.company_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TitleScore(); ok {
		if err := duplicatepair.TitleScoreValidator(v); err != nil {
			return &ValidationError{Name: "title_score", err: fmt.Errorf(`ent: validator failed for field "DuplicatePair.title_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LocationScore(); ok {
		if err := duplicatepair.LocationScoreValidator(v); err != nil {
			return &ValidationError{Name: "location_score", err: fmt.Errorf(`ent: validator failed for field "DuplicatePair.location_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DateScore(); ok {
		if err := duplicatepair.DateScoreValidator(v); err != nil {
			return &ValidationError{Name: "date_score", err: fmt.Errorf(`ent: validator failed for field "DuplicatePair.date_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SimilarityScore(); ok {
		if err := duplicatepair.SimilarityScoreValidator(v); err != nil {
			return &ValidationError{Name: "similarity_score", err: fmt.Errorf(`ent: validator failed for field "DuplicatePair.similarity_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := duplicatepair.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DuplicatePair.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DuplicatePairUpdateOne) sqlSave(ctx context.Context) (_node *DuplicatePair, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(duplicatepair.Table, duplicatepair.Columns, sqlgraph.NewFieldSpec(duplicatepair.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DuplicatePair.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, duplicatepair.FieldID)
		for _, f := range fields {
			if !duplicatepair.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != duplicatepair.FieldID {
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
	if value, ok := _u.mutation.JobID1(); ok {
		_spec.SetField(duplicatepair.FieldJobID1, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.JobID2(); ok {
		_spec.SetField(duplicatepair.FieldJobID2, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CompanyScore(); ok {
		_spec.SetField(duplicatepair.FieldCompanyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompanyScore(); ok {
		_spec.AddField(duplicatepair.FieldCompanyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TitleScore(); ok {
		_spec.SetField(duplicatepair.FieldTitleScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTitleScore(); ok {
		_spec.AddField(duplicatepair.FieldTitleScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LocationScore(); ok {
		_spec.SetField(duplicatepair.FieldLocationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLocationScore(); ok {
		_spec.AddField(duplicatepair.FieldLocationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DateScore(); ok {
		_spec.SetField(duplicatepair.FieldDateScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDateScore(); ok {
		_spec.AddField(duplicatepair.FieldDateScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SimilarityScore(); ok {
		_spec.SetField(duplicatepair.FieldSimilarityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSimilarityScore(); ok {
		_spec.AddField(duplicatepair.FieldSimilarityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(duplicatepair.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(duplicatepair.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(duplicatepair.FieldResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(duplicatepair.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(duplicatepair.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &DuplicatePair{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{duplicatepair.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
