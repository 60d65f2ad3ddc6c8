// Code generated by ent, DO NOT EDIT.

package duplicatepair

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the duplicatepair type in the database.
	Label = "duplicate_pair"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldJobID1 holds the string denoting the job_id_1 field in the database.
	FieldJobID1 = "job_id_1"
	// FieldJobID2 holds the string denoting the job_id_2 field in the database.
	FieldJobID2 = "job_id_2"
	// FieldCompanyScore holds the string denoting the company_score field in the database.
	FieldCompanyScore = "company_score"
	// FieldTitleScore holds the string denoting the title_score field in the database.
	FieldTitleScore = "title_score"
	// FieldLocationScore holds the string denoting the location_score field in the database.
	FieldLocationScore = "location_score"
	// FieldDateScore holds the string denoting the date_score field in the database.
	FieldDateScore = "date_score"
	// FieldSimilarityScore holds the string denoting the similarity_score field in the database.
	FieldSimilarityScore = "similarity_score"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldResolvedAt holds the string denoting the resolved_at field in the database.
	FieldResolvedAt = "resolved_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the duplicatepair in the database.
	Table = "duplicate_pairs"
)

// Columns holds all SQL columns for duplicatepair fields.
var Columns = []string{
	FieldID,
	FieldJobID1,
	FieldJobID2,
	FieldCompanyScore,
	FieldTitleScore,
	FieldLocationScore,
	FieldDateScore,
	FieldSimilarityScore,
	FieldStatus,
	FieldResolvedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// CompanyScoreValidator is a validator for the "company_score" field. It is called by the builders before save.
	CompanyScoreValidator func(float64) error
	// TitleScoreValidator is a validator for the "title_score" field. It is called by the builders before save.
	TitleScoreValidator func(float64) error
	// LocationScoreValidator is a validator for the "location_score" field. It is called by the builders before save.
	LocationScoreValidator func(float64) error
	// DateScoreValidator is a validator for the "date_score" field. It is called by the builders before save.
	DateScoreValidator func(float64) error
	// SimilarityScoreValidator is a validator for the "similarity_score" field. It is called by the builders before save.
	SimilarityScoreValidator func(float64) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the DuplicatePair queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID1 orders the results by the job_id_1 field.
func ByJobID1(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID1, opts...).ToFunc()
}

// ByJobID2 orders the results by the job_id_2 field.
func ByJobID2(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID2, opts...).ToFunc()
}

// ByCompanyScore orders the results by the company_score field.
func ByCompanyScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyScore, opts...).ToFunc()
}

// ByTitleScore orders the results by the title_score field.
func ByTitleScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitleScore, opts...).ToFunc()
}

// ByLocationScore orders the results by the location_score field.
func ByLocationScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocationScore, opts...).ToFunc()
}

// ByDateScore orders the results by the date_score field.
func ByDateScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDateScore, opts...).ToFunc()
}

// BySimilarityScore orders the results by the similarity_score field.
func BySimilarityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSimilarityScore, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByResolvedAt orders the results by the resolved_at field.
func ByResolvedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
