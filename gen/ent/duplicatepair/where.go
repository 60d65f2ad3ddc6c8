// Code generated by ent, DO NOT EDIT.

package duplicatepair

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/adeolu-ojo/applytrack/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldLTE(FieldID, id))
}

// JobID1 applies equality check predicate on the "job_id_1" field. It's identical to JobID1EQ.
func JobID1(v uuid.UUID) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldEQ(FieldJobID1, v))
}

// JobID2 applies equality check predicate on the "job_id_2" field. It's identical to JobID2EQ.
func JobID2(v uuid.UUID) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldEQ(FieldJobID2, v))
}

// CompanyScore applies equality check predicate on the "company_score" field. It's identical to CompanyScoreEQ.
func CompanyScore(v float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldEQ(FieldCompanyScore, v))
}

// TitleScore applies equality check predicate on the "title_score" field. It's identical to TitleScoreEQ.
func TitleScore(v float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldEQ(FieldTitleScore, v))
}

// LocationScore applies equality check predicate on the "location_score" field. It's identical to LocationScoreEQ.
func LocationScore(v float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldEQ(FieldLocationScore, v))
}

// DateScore applies equality check predicate on the "date_score" field. It's identical to DateScoreEQ.
func DateScore(v float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldEQ(FieldDateScore, v))
}

// SimilarityScore applies equality check predicate on the "similarity_score" field. It's identical to SimilarityScoreEQ.
func SimilarityScore(v float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldEQ(FieldSimilarityScore, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldEQ(FieldStatus, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldEQ(FieldResolvedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldEQ(FieldUpdatedAt, v))
}

// JobID1EQ applies the EQ predicate on the "job_id_1" field.
func JobID1EQ(v uuid.UUID) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldEQ(FieldJobID1, v))
}

// JobID1NEQ applies the NEQ predicate on the "job_id_1" field.
func JobID1NEQ(v uuid.UUID) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldNEQ(FieldJobID1, v))
}

// JobID1In applies the In predicate on the "job_id_1" field.
func JobID1In(vs ...uuid.UUID) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldIn(FieldJobID1, vs...))
}

// JobID1NotIn applies the NotIn predicate on the "job_id_1" field.
func JobID1NotIn(vs ...uuid.UUID) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldNotIn(FieldJobID1, vs...))
}

// JobID1GT applies the GT predicate on the "job_id_1" field.
func JobID1GT(v uuid.UUID) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldGT(FieldJobID1, v))
}

// JobID1GTE applies the GTE predicate on the "job_id_1" field.
func JobID1GTE(v uuid.UUID) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldGTE(FieldJobID1, v))
}

// JobID1LT applies the LT predicate on the "job_id_1" field.
func JobID1LT(v uuid.UUID) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldLT(FieldJobID1, v))
}

// JobID1LTE applies the LTE predicate on the "job_id_1" field.
func JobID1LTE(v uuid.UUID) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldLTE(FieldJobID1, v))
}

// JobID2EQ applies the EQ predicate on the "job_id_2" field.
func JobID2EQ(v uuid.UUID) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldEQ(FieldJobID2, v))
}

// JobID2NEQ applies the NEQ predicate on the "job_id_2" field.
func JobID2NEQ(v uuid.UUID) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldNEQ(FieldJobID2, v))
}

// JobID2In applies the In predicate on the "job_id_2" field.
func JobID2In(vs ...uuid.UUID) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldIn(FieldJobID2, vs...))
}

// JobID2NotIn applies the NotIn predicate on the "job_id_2" field.
func JobID2NotIn(vs ...uuid.UUID) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldNotIn(FieldJobID2, vs...))
}

// JobID2GT applies the GT predicate on the "job_id_2" field.
func JobID2GT(v uuid.UUID) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldGT(FieldJobID2, v))
}

// JobID2GTE applies the GTE predicate on the "job_id_2" field.
func JobID2GTE(v uuid.UUID) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldGTE(FieldJobID2, v))
}

// JobID2LT applies the LT predicate on the "job_id_2" field.
func JobID2LT(v uuid.UUID) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldLT(FieldJobID2, v))
}

// JobID2LTE applies the LTE predicate on the "job_id_2" field.
func JobID2LTE(v uuid.UUID) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldLTE(FieldJobID2, v))
}

// CompanyScoreEQ applies the EQ predicate on the "company_score" field.
func CompanyScoreEQ(v float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldEQ(FieldCompanyScore, v))
}

// CompanyScoreNEQ applies the NEQ predicate on the "company_score" field.
func CompanyScoreNEQ(v float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldNEQ(FieldCompanyScore, v))
}

// CompanyScoreIn applies the In predicate on the "company_score" field.
func CompanyScoreIn(vs ...float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldIn(FieldCompanyScore, vs...))
}

// CompanyScoreNotIn applies the NotIn predicate on the "company_score" field.
func CompanyScoreNotIn(vs ...float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldNotIn(FieldCompanyScore, vs...))
}

// CompanyScoreGT applies the GT predicate on the "company_score" field.
func CompanyScoreGT(v float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldGT(FieldCompanyScore, v))
}

// CompanyScoreGTE applies the GTE predicate on the "company_score" field.
func CompanyScoreGTE(v float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldGTE(FieldCompanyScore, v))
}

// CompanyScoreLT applies the LT predicate on the "company_score" field.
func CompanyScoreLT(v float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldLT(FieldCompanyScore, v))
}

// CompanyScoreLTE applies the LTE predicate on the "company_score" field.
func CompanyScoreLTE(v float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldLTE(FieldCompanyScore, v))
}

// TitleScoreEQ applies the EQ predicate on the "title_score" field.
func TitleScoreEQ(v float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldEQ(FieldTitleScore, v))
}

// TitleScoreNEQ applies the NEQ predicate on the "title_score" field.
func TitleScoreNEQ(v float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldNEQ(FieldTitleScore, v))
}

// TitleScoreIn applies the In predicate on the "title_score" field.
func TitleScoreIn(vs ...float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldIn(FieldTitleScore, vs...))
}

// TitleScoreNotIn applies the NotIn predicate on the "title_score" field.
func TitleScoreNotIn(vs ...float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldNotIn(FieldTitleScore, vs...))
}

// TitleScoreGT applies the GT predicate on the "title_score" field.
func TitleScoreGT(v float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldGT(FieldTitleScore, v))
}

// TitleScoreGTE applies the GTE predicate on the "title_score" field.
func TitleScoreGTE(v float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldGTE(FieldTitleScore, v))
}

// TitleScoreLT applies the LT predicate on the "title_score" field.
func TitleScoreLT(v float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldLT(FieldTitleScore, v))
}

// TitleScoreLTE applies the LTE predicate on the "title_score" field.
func TitleScoreLTE(v float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldLTE(FieldTitleScore, v))
}

// LocationScoreEQ applies the EQ predicate on the "location_score" field.
func LocationScoreEQ(v float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldEQ(FieldLocationScore, v))
}

// LocationScoreNEQ applies the NEQ predicate on the "location_score" field.
func LocationScoreNEQ(v float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldNEQ(FieldLocationScore, v))
}

// LocationScoreIn applies the In predicate on the "location_score" field.
func LocationScoreIn(vs ...float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldIn(FieldLocationScore, vs...))
}

// LocationScoreNotIn applies the NotIn predicate on the "location_score" field.
func LocationScoreNotIn(vs ...float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldNotIn(FieldLocationScore, vs...))
}

// LocationScoreGT applies the GT predicate on the "location_score" field.
func LocationScoreGT(v float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldGT(FieldLocationScore, v))
}

// LocationScoreGTE applies the GTE predicate on the "location_score" field.
func LocationScoreGTE(v float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldGTE(FieldLocationScore, v))
}

// LocationScoreLT applies the LT predicate on the "location_score" field.
func LocationScoreLT(v float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldLT(FieldLocationScore, v))
}

// LocationScoreLTE applies the LTE predicate on the "location_score" field.
func LocationScoreLTE(v float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldLTE(FieldLocationScore, v))
}

// DateScoreEQ applies the EQ predicate on the "date_score" field.
func DateScoreEQ(v float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldEQ(FieldDateScore, v))
}

// DateScoreNEQ applies the NEQ predicate on the "date_score" field.
func DateScoreNEQ(v float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldNEQ(FieldDateScore, v))
}

// DateScoreIn applies the In predicate on the "date_score" field.
func DateScoreIn(vs ...float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldIn(FieldDateScore, vs...))
}

// DateScoreNotIn applies the NotIn predicate on the "date_score" field.
func DateScoreNotIn(vs ...float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldNotIn(FieldDateScore, vs...))
}

// DateScoreGT applies the GT predicate on the "date_score" field.
func DateScoreGT(v float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldGT(FieldDateScore, v))
}

// DateScoreGTE applies the GTE predicate on the "date_score" field.
func DateScoreGTE(v float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldGTE(FieldDateScore, v))
}

// DateScoreLT applies the LT predicate on the "date_score" field.
func DateScoreLT(v float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldLT(FieldDateScore, v))
}

// DateScoreLTE applies the LTE predicate on the "date_score" field.
func DateScoreLTE(v float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldLTE(FieldDateScore, v))
}

// SimilarityScoreEQ applies the EQ predicate on the "similarity_score" field.
func SimilarityScoreEQ(v float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldEQ(FieldSimilarityScore, v))
}

// SimilarityScoreNEQ applies the NEQ predicate on the "similarity_score" field.
func SimilarityScoreNEQ(v float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldNEQ(FieldSimilarityScore, v))
}

// SimilarityScoreIn applies the In predicate on the "similarity_score" field.
func SimilarityScoreIn(vs ...float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldIn(FieldSimilarityScore, vs...))
}

// SimilarityScoreNotIn applies the NotIn predicate on the "similarity_score" field.
func SimilarityScoreNotIn(vs ...float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldNotIn(FieldSimilarityScore, vs...))
}

// SimilarityScoreGT applies the GT predicate on the "similarity_score" field.
func SimilarityScoreGT(v float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldGT(FieldSimilarityScore, v))
}

// SimilarityScoreGTE applies the GTE predicate on the "similarity_score" field.
func SimilarityScoreGTE(v float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldGTE(FieldSimilarityScore, v))
}

// SimilarityScoreLT applies the LT predicate on the "similarity_score" field.
func SimilarityScoreLT(v float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldLT(FieldSimilarityScore, v))
}

// SimilarityScoreLTE applies the LTE predicate on the "similarity_score" field.
func SimilarityScoreLTE(v float64) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldLTE(FieldSimilarityScore, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldContainsFold(FieldStatus, v))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldNotNull(FieldResolvedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DuplicatePair) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DuplicatePair) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DuplicatePair) predicate.DuplicatePair {
	return predicate.DuplicatePair(sql.NotPredicates(p))
}
