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
	"github.com/adeolu-ojo/applytrack/gen/ent/user"
	"github.com/google/uuid"
)

// JobUpdate is the builder for updating Job entities.
type JobUpdate struct {
	config
	hooks    []Hook
	mutation *JobMutation
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdate) Where(ps ...predicate.Job) *JobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *JobUpdate) SetUserID(v uuid.UUID) *JobUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableUserID(v *uuid.UUID) *JobUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCompany sets the "company" field.
func (_u *JobUpdate) SetCompany(v string) *JobUpdate {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCompany(v *string) *JobUpdate {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *JobUpdate) SetTitle(v string) *JobUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *JobUpdate) SetNillableTitle(v *string) *JobUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetCity sets the "city" field.
func (_u *JobUpdate) SetCity(v string) *JobUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCity(v *string) *JobUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *JobUpdate) ClearCity() *JobUpdate {
	_u.mutation.ClearCity()
	return _u
}

// SetState sets the "state" field.
func (_u *JobUpdate) SetState(v string) *JobUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *JobUpdate) SetNillableState(v *string) *JobUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *JobUpdate) ClearState() *JobUpdate {
	_u.mutation.ClearState()
	return _u
}

// SetCountry sets the "country" field.
func (_u *JobUpdate) SetCountry(v string) *JobUpdate {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCountry(v *string) *JobUpdate {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// ClearCountry clears the value of the "country" field.
func (_u *JobUpdate) ClearCountry() *JobUpdate {
	_u.mutation.ClearCountry()
	return _u
}

// SetAppliedAt sets the "applied_at" field.
func (_u *JobUpdate) SetAppliedAt(v time.Time) *JobUpdate {
	_u.mutation.SetAppliedAt(v)
	return _u
}

// SetNillableAppliedAt sets the "applied_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableAppliedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetAppliedAt(*v)
	}
	return _u
}

// ClearAppliedAt clears the value of the "applied_at" field.
func (_u *JobUpdate) ClearAppliedAt() *JobUpdate {
	_u.mutation.ClearAppliedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdate) SetStatus(v string) *JobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStatus(v *string) *JobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIsDuplicate sets the "is_duplicate" field.
func (_u *JobUpdate) SetIsDuplicate(v bool) *JobUpdate {
	_u.mutation.SetIsDuplicate(v)
	return _u
}

// SetNillableIsDuplicate sets the "is_duplicate" field if the given value is not nil.
func (_u *JobUpdate) SetNillableIsDuplicate(v *bool) *JobUpdate {
	if v != nil {
		_u.SetIsDuplicate(*v)
	}
	return _u
}

// SetMergedIntoJobID sets the "merged_into_job_id" field.
func (_u *JobUpdate) SetMergedIntoJobID(v uuid.UUID) *JobUpdate {
	_u.mutation.SetMergedIntoJobID(v)
	return _u
}

// SetNillableMergedIntoJobID sets the "merged_into_job_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableMergedIntoJobID(v *uuid.UUID) *JobUpdate {
	if v != nil {
		_u.SetMergedIntoJobID(*v)
	}
	return _u
}

// ClearMergedIntoJobID clears the value of the "merged_into_job_id" field.
func (_u *JobUpdate) ClearMergedIntoJobID() *JobUpdate {
	_u.mutation.ClearMergedIntoJobID()
	return _u
}

// SetPlatformCount sets the "platform_count" field.
func (_u *JobUpdate) SetPlatformCount(v int) *JobUpdate {
	_u.mutation.ResetPlatformCount()
	_u.mutation.SetPlatformCount(v)
	return _u
}

// SetNillablePlatformCount sets the "platform_count" field if the given value is not nil.
func (_u *JobUpdate) SetNillablePlatformCount(v *int) *JobUpdate {
	if v != nil {
		_u.SetPlatformCount(*v)
	}
	return _u
}

// AddPlatformCount adds value to the "platform_count" field.
func (_u *JobUpdate) AddPlatformCount(v int) *JobUpdate {
	_u.mutation.AddPlatformCount(v)
	return _u
}

// SetNotes sets the "notes" field.
func (_u *JobUpdate) SetNotes(v string) *JobUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *JobUpdate) SetNillableNotes(v *string) *JobUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *JobUpdate) ClearNotes() *JobUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *JobUpdate) SetCreatedAt(v time.Time) *JobUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCreatedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobUpdate) SetUpdatedAt(v time.Time) *JobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *JobUpdate) SetUser(v *User) *JobUpdate {
	return _u.SetUserID(v.ID)
}

// AddPlatformIDs adds the "platforms" edge to the ApplicationPlatform entity by IDs.
func (_u *JobUpdate) AddPlatformIDs(ids ...uuid.UUID) *JobUpdate {
	_u.mutation.AddPlatformIDs(ids...)
	return _u
}

// AddPlatforms adds the "platforms" edges to the ApplicationPlatform entity.
func (_u *JobUpdate) AddPlatforms(v ...*ApplicationPlatform) *JobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPlatformIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdate) Mutation() *JobMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *JobUpdate) ClearUser() *JobUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearPlatforms clears all "platforms" edges to the ApplicationPlatform entity.
func (_u *JobUpdate) ClearPlatforms() *JobUpdate {
	_u.mutation.ClearPlatforms()
	return _u
}

// RemovePlatformIDs removes the "platforms" edge to ApplicationPlatform entities by IDs.
func (_u *JobUpdate) RemovePlatformIDs(ids ...uuid.UUID) *JobUpdate {
	_u.mutation.RemovePlatformIDs(ids...)
	return _u
}

// RemovePlatforms removes "platforms" edges to ApplicationPlatform entities.
func (_u *JobUpdate) RemovePlatforms(v ...*ApplicationPlatform) *JobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePlatformIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := job.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdate) check() error {
	if v, ok := _u.mutation.Company(); ok {
		if err := job.CompanyValidator(v); err != nil {
			return &ValidationError{Name: "company", err: fmt.Errorf(`ent: validator failed for field "Job.company": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := job.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Job.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PlatformCount(); ok {
		if err := job.PlatformCountValidator(v); err != nil {
			return &ValidationError{Name: "platform_count", err: fmt.Errorf(`ent: validator failed for field "Job.platform_count": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Job.user"`)
	}
	return nil
}

func (_u *JobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(job.FieldCompany, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(job.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(job.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(job.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(job.FieldState, field.TypeString, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(job.FieldState, field.TypeString)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(job.FieldCountry, field.TypeString, value)
	}
	if _u.mutation.CountryCleared() {
		_spec.ClearField(job.FieldCountry, field.TypeString)
	}
	if value, ok := _u.mutation.AppliedAt(); ok {
		_spec.SetField(job.FieldAppliedAt, field.TypeTime, value)
	}
	if _u.mutation.AppliedAtCleared() {
		_spec.ClearField(job.FieldAppliedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsDuplicate(); ok {
		_spec.SetField(job.FieldIsDuplicate, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MergedIntoJobID(); ok {
		_spec.SetField(job.FieldMergedIntoJobID, field.TypeUUID, value)
	}
	if _u.mutation.MergedIntoJobIDCleared() {
		_spec.ClearField(job.FieldMergedIntoJobID, field.TypeUUID)
	}
	if value, ok := _u.mutation.PlatformCount(); ok {
		_spec.SetField(job.FieldPlatformCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlatformCount(); ok {
		_spec.AddField(job.FieldPlatformCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(job.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(job.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.UserTable,
			Columns: []string{job.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.UserTable,
			Columns: []string{job.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PlatformsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.PlatformsTable,
			Columns: []string{job.PlatformsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(applicationplatform.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPlatformsIDs(); len(nodes) > 0 && !_u.mutation.PlatformsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.PlatformsTable,
			Columns: []string{job.PlatformsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(applicationplatform.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PlatformsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.PlatformsTable,
			Columns: []string{job.PlatformsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(applicationplatform.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobUpdateOne is the builder for updating a single Job entity.
type JobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobMutation
}

// SetUserID sets the "user_id" field.
func (_u *JobUpdateOne) SetUserID(v uuid.UUID) *JobUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableUserID(v *uuid.UUID) *JobUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCompany sets the "company" field.
func (_u *JobUpdateOne) SetCompany(v string) *JobUpdateOne {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCompany(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *JobUpdateOne) SetTitle(v string) *JobUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableTitle(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetCity sets the "city" field.
func (_u *JobUpdateOne) SetCity(v string) *JobUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCity(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *JobUpdateOne) ClearCity() *JobUpdateOne {
	_u.mutation.ClearCity()
	return _u
}

// SetState sets the "state" field.
func (_u *JobUpdateOne) SetState(v string) *JobUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableState(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *JobUpdateOne) ClearState() *JobUpdateOne {
	_u.mutation.ClearState()
	return _u
}

// SetCountry sets the "country" field.
func (_u *JobUpdateOne) SetCountry(v string) *JobUpdateOne {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCountry(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// ClearCountry clears the value of the "country" field.
func (_u *JobUpdateOne) ClearCountry() *JobUpdateOne {
	_u.mutation.ClearCountry()
	return _u
}

// SetAppliedAt sets the "applied_at" field.
func (_u *JobUpdateOne) SetAppliedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetAppliedAt(v)
	return _u
}

// SetNillableAppliedAt sets the "applied_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableAppliedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetAppliedAt(*v)
	}
	return _u
}

// ClearAppliedAt clears the value of the "applied_at" field.
func (_u *JobUpdateOne) ClearAppliedAt() *JobUpdateOne {
	_u.mutation.ClearAppliedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdateOne) SetStatus(v string) *JobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStatus(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIsDuplicate sets the "is_duplicate" field.
func (_u *JobUpdateOne) SetIsDuplicate(v bool) *JobUpdateOne {
	_u.mutation.SetIsDuplicate(v)
	return _u
}

// SetNillableIsDuplicate sets the "is_duplicate" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableIsDuplicate(v *bool) *JobUpdateOne {
	if v != nil {
		_u.SetIsDuplicate(*v)
	}
	return _u
}

// SetMergedIntoJobID sets the "merged_into_job_id" field.
func (_u *JobUpdateOne) SetMergedIntoJobID(v uuid.UUID) *JobUpdateOne {
	_u.mutation.SetMergedIntoJobID(v)
	return _u
}

// SetNillableMergedIntoJobID sets the "merged_into_job_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableMergedIntoJobID(v *uuid.UUID) *JobUpdateOne {
	if v != nil {
		_u.SetMergedIntoJobID(*v)
	}
	return _u
}

// ClearMergedIntoJobID clears the value of the "merged_into_job_id" field.
func (_u *JobUpdateOne) ClearMergedIntoJobID() *JobUpdateOne {
	_u.mutation.ClearMergedIntoJobID()
	return _u
}

// SetPlatformCount sets the "platform_count" field.
func (_u *JobUpdateOne) SetPlatformCount(v int) *JobUpdateOne {
	_u.mutation.ResetPlatformCount()
	_u.mutation.SetPlatformCount(v)
	return _u
}

// SetNillablePlatformCount sets the "platform_count" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillablePlatformCount(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetPlatformCount(*v)
	}
	return _u
}

// AddPlatformCount adds value to the "platform_count" field.
func (_u *JobUpdateOne) AddPlatformCount(v int) *JobUpdateOne {
	_u.mutation.AddPlatformCount(v)
	return _u
}

// SetNotes sets the "notes" field.
func (_u *JobUpdateOne) SetNotes(v string) *JobUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableNotes(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *JobUpdateOne) ClearNotes() *JobUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *JobUpdateOne) SetCreatedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCreatedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobUpdateOne) SetUpdatedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *JobUpdateOne) SetUser(v *User) *JobUpdateOne {
	return _u.SetUserID(v.ID)
}

// AddPlatformIDs adds the "platforms" edge to the ApplicationPlatform entity by IDs.
func (_u *JobUpdateOne) AddPlatformIDs(ids ...uuid.UUID) *JobUpdateOne {
	_u.mutation.AddPlatformIDs(ids...)
	return _u
}

// AddPlatforms adds the "platforms" edges to the ApplicationPlatform entity.
func (_u *JobUpdateOne) AddPlatforms(v ...*ApplicationPlatform) *JobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPlatformIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdateOne) Mutation() *JobMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *JobUpdateOne) ClearUser() *JobUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearPlatforms clears all "platforms" edges to the ApplicationPlatform entity.
func (_u *JobUpdateOne) ClearPlatforms() *JobUpdateOne {
	_u.mutation.ClearPlatforms()
	return _u
}

// RemovePlatformIDs removes the "platforms" edge to ApplicationPlatform entities by IDs.
func (_u *JobUpdateOne) RemovePlatformIDs(ids ...uuid.UUID) *JobUpdateOne {
	_u.mutation.RemovePlatformIDs(ids...)
	return _u
}

// RemovePlatforms removes "platforms" edges to ApplicationPlatform entities.
func (_u *JobUpdateOne) RemovePlatforms(v ...*ApplicationPlatform) *JobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePlatformIDs(ids...)
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdateOne) Where(ps ...predicate.Job) *JobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobUpdateOne) Select(field string, fields ...string) *JobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Job entity.
func (_u *JobUpdateOne) Save(ctx context.Context) (*Job, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdateOne) SaveX(ctx context.Context) *Job {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := job.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdateOne) check() error {
	if v, ok := _u.mutation.Company(); ok {
		if err := job.CompanyValidator(v); err != nil {
			return &ValidationError{Name: "company", err: fmt.Errorf(`ent: validator failed for field "Job.company": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := job.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Job.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PlatformCount(); ok {
		if err := job.PlatformCountValidator(v); err != nil {
			return &ValidationError{Name: "platform_count", err: fmt.Errorf(`ent: validator failed for field "Job.platform_count": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Job.user"`)
	}
	return nil
}

func (_u *JobUpdateOne) sqlSave(ctx context.Context) (_node *Job, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Job.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, job.FieldID)
		for _, f := range fields {
			if !job.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != job.FieldID {
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
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(job.FieldCompany, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(job.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(job.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(job.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(job.FieldState, field.TypeString, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(job.FieldState, field.TypeString)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(job.FieldCountry, field.TypeString, value)
	}
	if _u.mutation.CountryCleared() {
		_spec.ClearField(job.FieldCountry, field.TypeString)
	}
	if value, ok := _u.mutation.AppliedAt(); ok {
		_spec.SetField(job.FieldAppliedAt, field.TypeTime, value)
	}
	if _u.mutation.AppliedAtCleared() {
		_spec.ClearField(job.FieldAppliedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsDuplicate(); ok {
		_spec.SetField(job.FieldIsDuplicate, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MergedIntoJobID(); ok {
		_spec.SetField(job.FieldMergedIntoJobID, field.TypeUUID, value)
	}
	if _u.mutation.MergedIntoJobIDCleared() {
		_spec.ClearField(job.FieldMergedIntoJobID, field.TypeUUID)
	}
	if value, ok := _u.mutation.PlatformCount(); ok {
		_spec.SetField(job.FieldPlatformCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlatformCount(); ok {
		_spec.AddField(job.FieldPlatformCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(job.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(job.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.UserTable,
			Columns: []string{job.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.UserTable,
			Columns: []string{job.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PlatformsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.PlatformsTable,
			Columns: []string{job.PlatformsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(applicationplatform.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPlatformsIDs(); len(nodes) > 0 && !_u.mutation.PlatformsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.PlatformsTable,
			Columns: []string{job.PlatformsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(applicationplatform.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PlatformsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.PlatformsTable,
			Columns: []string{job.PlatformsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(applicationplatform.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Job{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
