// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/adeolu-ojo/applytrack/db/ent/schema"
	"github.com/adeolu-ojo/applytrack/gen/ent/applicationplatform"
	"github.com/adeolu-ojo/applytrack/gen/ent/contact"
	"github.com/adeolu-ojo/applytrack/gen/ent/duplicatepair"
	"github.com/adeolu-ojo/applytrack/gen/ent/job"
	"github.com/adeolu-ojo/applytrack/gen/ent/user"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	applicationplatformFields := schema.ApplicationPlatform{}.Fields()
	_ = applicationplatformFields
	// applicationplatformDescPlatform is the schema descriptor for platform field.
	applicationplatformDescPlatform := applicationplatformFields[2].Descriptor()
	// applicationplatform.PlatformValidator is a validator for the "platform" field. It is called by the builders before save.
	applicationplatform.PlatformValidator = func() func(string) error {
		validators := applicationplatformDescPlatform.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(platform string) error {
			for _, fn := range fns {
				if err := fn(platform); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// applicationplatformDescCreatedAt is the schema descriptor for created_at field.
	applicationplatformDescCreatedAt := applicationplatformFields[6].Descriptor()
	// applicationplatform.DefaultCreatedAt holds the default value on creation for the created_at field.
	applicationplatform.DefaultCreatedAt = applicationplatformDescCreatedAt.Default.(func() time.Time)
	// applicationplatformDescUpdatedAt is the schema descriptor for updated_at field.
	applicationplatformDescUpdatedAt := applicationplatformFields[7].Descriptor()
	// applicationplatform.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	applicationplatform.DefaultUpdatedAt = applicationplatformDescUpdatedAt.Default.(func() time.Time)
	// applicationplatform.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	applicationplatform.UpdateDefaultUpdatedAt = applicationplatformDescUpdatedAt.UpdateDefault.(func() time.Time)
	// applicationplatformDescID is the schema descriptor for id field.
	applicationplatformDescID := applicationplatformFields[0].Descriptor()
	// applicationplatform.DefaultID holds the default value on creation for the id field.
	applicationplatform.DefaultID = applicationplatformDescID.Default.(func() uuid.UUID)
	contactFields := schema.Contact{}.Fields()
	_ = contactFields
	// contactDescName is the schema descriptor for name field.
	contactDescName := contactFields[2].Descriptor()
	// contact.NameValidator is a validator for the "name" field. It is called by the builders before save.
	contact.NameValidator = contactDescName.Validators[0].(func(string) error)
	// contactDescCreatedAt is the schema descriptor for created_at field.
	contactDescCreatedAt := contactFields[7].Descriptor()
	// contact.DefaultCreatedAt holds the default value on creation for the created_at field.
	contact.DefaultCreatedAt = contactDescCreatedAt.Default.(func() time.Time)
	// contactDescUpdatedAt is the schema descriptor for updated_at field.
	contactDescUpdatedAt := contactFields[8].Descriptor()
	// contact.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	contact.DefaultUpdatedAt = contactDescUpdatedAt.Default.(func() time.Time)
	// contact.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	contact.UpdateDefaultUpdatedAt = contactDescUpdatedAt.UpdateDefault.(func() time.Time)
	// contactDescID is the schema descriptor for id field.
	contactDescID := contactFields[0].Descriptor()
	// contact.DefaultID holds the default value on creation for the id field.
	contact.DefaultID = contactDescID.Default.(func() uuid.UUID)
	duplicatepairFields := schema.DuplicatePair{}.Fields()
	_ = duplicatepairFields
	// duplicatepairDescCompanyScore is the schema descriptor for company_score field.
	duplicatepairDescCompanyScore := duplicatepairFields[3].Descriptor()
	// duplicatepair.CompanyScoreValidator is a validator for the "company_score" field. It is called by the builders before save.
	duplicatepair.CompanyScoreValidator = duplicatepairDescCompanyScore.Validators[0].(func(float64) error)
	// duplicatepairDescTitleScore is the schema descriptor for title_score field.
	duplicatepairDescTitleScore := duplicatepairFields[4].Descriptor()
	// duplicatepair.TitleScoreValidator is a validator for the "title_score" field. It is called by the builders before save.
	duplicatepair.TitleScoreValidator = duplicatepairDescTitleScore.Validators[0].(func(float64) error)
	// duplicatepairDescLocationScore is the schema descriptor for location_score field.
	duplicatepairDescLocationScore := duplicatepairFields[5].Descriptor()
	// duplicatepair.LocationScoreValidator is a validator for the "location_score" field. It is called by the builders before save.
	duplicatepair.LocationScoreValidator = duplicatepairDescLocationScore.Validators[0].(func(float64) error)
	// duplicatepairDescDateScore is the schema descriptor for date_score field.
	duplicatepairDescDateScore := duplicatepairFields[6].Descriptor()
	// duplicatepair.DateScoreValidator is a validator for the "date_score" field. It is called by the builders before save.
	duplicatepair.DateScoreValidator = duplicatepairDescDateScore.Validators[0].(func(float64) error)
	// duplicatepairDescSimilarityScore is the schema descriptor for similarity_score field.
	duplicatepairDescSimilarityScore := duplicatepairFields[7].Descriptor()
	// duplicatepair.SimilarityScoreValidator is a validator for the "similarity_score" field. It is called by the builders before save.
	duplicatepair.SimilarityScoreValidator = duplicatepairDescSimilarityScore.Validators[0].(func(float64) error)
	// duplicatepairDescStatus is the schema descriptor for status field.
	duplicatepairDescStatus := duplicatepairFields[8].Descriptor()
	// duplicatepair.DefaultStatus holds the default value on creation for the status field.
	duplicatepair.DefaultStatus = duplicatepairDescStatus.Default.(string)
	// duplicatepair.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	duplicatepair.StatusValidator = duplicatepairDescStatus.Validators[0].(func(string) error)
	// duplicatepairDescCreatedAt is the schema descriptor for created_at field.
	duplicatepairDescCreatedAt := duplicatepairFields[10].Descriptor()
	// duplicatepair.DefaultCreatedAt holds the default value on creation for the created_at field.
	duplicatepair.DefaultCreatedAt = duplicatepairDescCreatedAt.Default.(func() time.Time)
	// duplicatepairDescUpdatedAt is the schema descriptor for updated_at field.
	duplicatepairDescUpdatedAt := duplicatepairFields[11].Descriptor()
	// duplicatepair.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	duplicatepair.DefaultUpdatedAt = duplicatepairDescUpdatedAt.Default.(func() time.Time)
	// duplicatepair.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	duplicatepair.UpdateDefaultUpdatedAt = duplicatepairDescUpdatedAt.UpdateDefault.(func() time.Time)
	// duplicatepairDescID is the schema descriptor for id field.
	duplicatepairDescID := duplicatepairFields[0].Descriptor()
	// duplicatepair.DefaultID holds the default value on creation for the id field.
	duplicatepair.DefaultID = duplicatepairDescID.Default.(func() uuid.UUID)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescCompany is the schema descriptor for company field.
	jobDescCompany := jobFields[2].Descriptor()
	// job.CompanyValidator is a validator for the "company" field. It is called by the builders before save.
	job.CompanyValidator = jobDescCompany.Validators[0].(func(string) error)
	// jobDescTitle is the schema descriptor for title field.
	jobDescTitle := jobFields[3].Descriptor()
	// job.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	job.TitleValidator = jobDescTitle.Validators[0].(func(string) error)
	// jobDescStatus is the schema descriptor for status field.
	jobDescStatus := jobFields[8].Descriptor()
	// job.DefaultStatus holds the default value on creation for the status field.
	job.DefaultStatus = jobDescStatus.Default.(string)
	// job.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	job.StatusValidator = jobDescStatus.Validators[0].(func(string) error)
	// jobDescIsDuplicate is the schema descriptor for is_duplicate field.
	jobDescIsDuplicate := jobFields[9].Descriptor()
	// job.DefaultIsDuplicate holds the default value on creation for the is_duplicate field.
	job.DefaultIsDuplicate = jobDescIsDuplicate.Default.(bool)
	// jobDescPlatformCount is the schema descriptor for platform_count field.
	jobDescPlatformCount := jobFields[11].Descriptor()
	// job.DefaultPlatformCount holds the default value on creation for the platform_count field.
	job.DefaultPlatformCount = jobDescPlatformCount.Default.(int)
	// job.PlatformCountValidator is a validator for the "platform_count" field. It is called by the builders before save.
	job.PlatformCountValidator = jobDescPlatformCount.Validators[0].(func(int) error)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[13].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescUpdatedAt is the schema descriptor for updated_at field.
	jobDescUpdatedAt := jobFields[14].Descriptor()
	// job.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	job.DefaultUpdatedAt = jobDescUpdatedAt.Default.(func() time.Time)
	// job.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	job.UpdateDefaultUpdatedAt = jobDescUpdatedAt.UpdateDefault.(func() time.Time)
	// jobDescID is the schema descriptor for id field.
	jobDescID := jobFields[0].Descriptor()
	// job.DefaultID holds the default value on creation for the id field.
	job.DefaultID = jobDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[2].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[3].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[4].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
