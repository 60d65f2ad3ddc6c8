// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/adeolu-ojo/applytrack/gen/ent/duplicatepair"
	"github.com/google/uuid"
)

// DuplicatePair is the model entity for the DuplicatePair schema.
type DuplicatePair struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// JobID1 holds the value of the "job_id_1" field.
	JobID1 uuid.UUID `json:"job_id_1,omitempty"`
	// JobID2 holds the value of the "job_id_2" field.
	JobID2 uuid.UUID `json:"job_id_2,omitempty"`
	// CompanyScore holds the value of the "company_score" field.
	CompanyScore float64 `json:"company_score,omitempty"`
	// TitleScore holds the value of the "title_score" field.
	TitleScore float64 `json:"title_score,omitempty"`
	// LocationScore holds the value of the "location_score" field.
	LocationScore float64 `json:"location_score,omitempty"`
	// DateScore holds the value of the "date_score" field.
	DateScore float64 `json:"date_score,omitempty"`
	// SimilarityScore holds the value of the "similarity_score" field.
	SimilarityScore float64 `json:"similarity_score,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ResolvedAt holds the value of the "resolved_at" field.
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DuplicatePair) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case duplicatepair.FieldCompanyScore, duplicatepair.FieldTitleScore, duplicatepair.FieldLocationScore, duplicatepair.FieldDateScore, duplicatepair.FieldSimilarityScore:
			values[i] = new(sql.NullFloat64)
		case duplicatepair.FieldStatus:
			values[i] = new(sql.NullString)
		case duplicatepair.FieldResolvedAt, duplicatepair.FieldCreatedAt, duplicatepair.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case duplicatepair.FieldID, duplicatepair.FieldJobID1, duplicatepair.FieldJobID2:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DuplicatePair fields.
func (_m *DuplicatePair) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case duplicatepair.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case duplicatepair.FieldJobID1:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field job_id_1", values[i])
			} else if value != nil {
				_m.JobID1 = *value
			}
		case duplicatepair.FieldJobID2:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field job_id_2", values[i])
			} else if value != nil {
				_m.JobID2 = *value
			}
		case duplicatepair.FieldCompanyScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field company_score", values[i])
			} else if value.Valid {
				_m.CompanyScore = value.Float64
			}
		case duplicatepair.FieldTitleScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field title_score", values[i])
			} else if value.Valid {
				_m.TitleScore = value.Float64
			}
		case duplicatepair.FieldLocationScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field location_score", values[i])
			} else if value.Valid {
				_m.LocationScore = value.Float64
			}
		case duplicatepair.FieldDateScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field date_score", values[i])
			} else if value.Valid {
				_m.DateScore = value.Float64
			}
		case duplicatepair.FieldSimilarityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field similarity_score", values[i])
			} else if value.Valid {
				_m.SimilarityScore = value.Float64
			}
		case duplicatepair.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case duplicatepair.FieldResolvedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_at", values[i])
			} else if value.Valid {
				_m.ResolvedAt = new(time.Time)
				*_m.ResolvedAt = value.Time
			}
		case duplicatepair.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case duplicatepair.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DuplicatePair.
// This includes values selected through modifiers, order, etc.
func (_m *DuplicatePair) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DuplicatePair.
// Note that you need to call DuplicatePair.Unwrap() before calling this method if this DuplicatePair
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DuplicatePair) Update() *DuplicatePairUpdateOne {
	return NewDuplicatePairClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DuplicatePair entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DuplicatePair) Unwrap() *DuplicatePair {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DuplicatePair is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DuplicatePair) String() string {
	var builder strings.Builder
	builder.WriteString("DuplicatePair(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id_1=")
	builder.WriteString(fmt.Sprintf("%v", _m.JobID1))
	builder.WriteString(", ")
	builder.WriteString("job_id_2=")
	builder.WriteString(fmt.Sprintf("%v", _m.JobID2))
	builder.WriteString(", ")
	builder.WriteString("company_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompanyScore))
	builder.WriteString(", ")
	builder.WriteString("title_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.TitleScore))
	builder.WriteString(", ")
	builder.WriteString("location_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.LocationScore))
	builder.WriteString(", ")
	builder.WriteString("date_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.DateScore))
	builder.WriteString(", ")
	builder.WriteString("similarity_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.SimilarityScore))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.ResolvedAt; v != nil {
		builder.WriteString("resolved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DuplicatePairs is a parsable slice of DuplicatePair.
type DuplicatePairs []*DuplicatePair
