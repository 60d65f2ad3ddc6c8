package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/adeolu-ojo/applytrack/constants"
	schemautils "github.com/adeolu-ojo/applytrack/db/ent/schema/utils"
	"github.com/google/uuid"
)

type Job struct{ ent.Schema }

func (Job) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "jobs"},
	}
}

func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("user_id", uuid.UUID{}),
		field.String("company").NotEmpty(),
		field.String("title").NotEmpty(),
		field.String("city").Optional().Nillable(),
		field.String("state").Optional().Nillable(),
		field.String("country").Optional().Nillable(),
		field.Time("applied_at").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("status").
			Default(string(constants.StatusApplied)).
			Validate(schemautils.EnumValidator(constants.ApplicationStatuses()...)),
		field.Bool("is_duplicate").Default(false),
		// Set only when is_duplicate is true; points at the surviving master job.
		field.UUID("merged_into_job_id", uuid.UUID{}).Optional().Nillable(),
		field.Int("platform_count").Default(0).NonNegative(),
		field.String("notes").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY jobs -> ONE user (FK: jobs.user_id)
		edge.From("user", User.Type).
			Ref("jobs").
			Field("user_id").
			Required().
			Unique(),
		// ONE job -> MANY platform entries
		edge.To("platforms", ApplicationPlatform.Type),
	}
}

func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "is_duplicate"),
		index.Fields("user_id", "applied_at"),
	}
}
