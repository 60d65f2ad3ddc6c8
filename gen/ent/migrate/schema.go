// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ApplicationPlatformsColumns holds the columns for the "application_platforms" table.
	ApplicationPlatformsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "platform", Type: field.TypeString},
		{Name: "url", Type: field.TypeString, Nullable: true},
		{Name: "external_id", Type: field.TypeString, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeUUID},
	}
	// ApplicationPlatformsTable holds the schema information for the "application_platforms" table.
	ApplicationPlatformsTable = &schema.Table{
		Name:       "application_platforms",
		Columns:    ApplicationPlatformsColumns,
		PrimaryKey: []*schema.Column{ApplicationPlatformsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "application_platforms_jobs_platforms",
				Columns:    []*schema.Column{ApplicationPlatformsColumns[7]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "applicationplatform_job_id_platform",
				Unique:  true,
				Columns: []*schema.Column{ApplicationPlatformsColumns[7], ApplicationPlatformsColumns[1]},
			},
		},
	}
	// ContactsColumns holds the columns for the "contacts" table.
	ContactsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "company", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeString, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// ContactsTable holds the schema information for the "contacts" table.
	ContactsTable = &schema.Table{
		Name:       "contacts",
		Columns:    ContactsColumns,
		PrimaryKey: []*schema.Column{ContactsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "contacts_users_contacts",
				Columns:    []*schema.Column{ContactsColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "contact_user_id",
				Unique:  false,
				Columns: []*schema.Column{ContactsColumns[8]},
			},
		},
	}
	// DuplicatePairsColumns holds the columns for the "duplicate_pairs" table.
	DuplicatePairsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "job_id_1", Type: field.TypeUUID},
		{Name: "job_id_2", Type: field.TypeUUID},
		{Name: "company_score", Type: field.TypeFloat64},
		{Name: "title_score", Type: field.TypeFloat64},
		{Name: "location_score", Type: field.TypeFloat64},
		{Name: "date_score", Type: field.TypeFloat64},
		{Name: "similarity_score", Type: field.TypeFloat64},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DuplicatePairsTable holds the schema information for the "duplicate_pairs" table.
	DuplicatePairsTable = &schema.Table{
		Name:       "duplicate_pairs",
		Columns:    DuplicatePairsColumns,
		PrimaryKey: []*schema.Column{DuplicatePairsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "duplicatepair_job_id_1_job_id_2",
				Unique:  true,
				Columns: []*schema.Column{DuplicatePairsColumns[1], DuplicatePairsColumns[2]},
			},
			{
				Name:    "duplicatepair_job_id_1_status",
				Unique:  false,
				Columns: []*schema.Column{DuplicatePairsColumns[1], DuplicatePairsColumns[8]},
			},
			{
				Name:    "duplicatepair_job_id_2_status",
				Unique:  false,
				Columns: []*schema.Column{DuplicatePairsColumns[2], DuplicatePairsColumns[8]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "company", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "city", Type: field.TypeString, Nullable: true},
		{Name: "state", Type: field.TypeString, Nullable: true},
		{Name: "country", Type: field.TypeString, Nullable: true},
		{Name: "applied_at", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "status", Type: field.TypeString, Default: "APPLIED"},
		{Name: "is_duplicate", Type: field.TypeBool, Default: false},
		{Name: "merged_into_job_id", Type: field.TypeUUID, Nullable: true},
		{Name: "platform_count", Type: field.TypeInt, Default: 0},
		{Name: "notes", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "jobs_users_jobs",
				Columns:    []*schema.Column{JobsColumns[14]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "job_user_id_is_duplicate",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[14], JobsColumns[8]},
			},
			{
				Name:    "job_user_id_applied_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[14], JobsColumns[6]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ApplicationPlatformsTable,
		ContactsTable,
		DuplicatePairsTable,
		JobsTable,
		UsersTable,
	}
)

func init() {
	ApplicationPlatformsTable.ForeignKeys[0].RefTable = JobsTable
	ApplicationPlatformsTable.Annotation = &entsql.Annotation{
		Table: "application_platforms",
	}
	ContactsTable.ForeignKeys[0].RefTable = UsersTable
	ContactsTable.Annotation = &entsql.Annotation{
		Table: "contacts",
	}
	DuplicatePairsTable.Annotation = &entsql.Annotation{
		Table: "duplicate_pairs",
	}
	JobsTable.ForeignKeys[0].RefTable = UsersTable
	JobsTable.Annotation = &entsql.Annotation{
		Table: "jobs",
	}
	UsersTable.Annotation = &entsql.Annotation{
		Table: "users",
	}
}
