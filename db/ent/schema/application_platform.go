package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/adeolu-ojo/applytrack/constants"
	schemautils "github.com/adeolu-ojo/applytrack/db/ent/schema/utils"
	"github.com/google/uuid"
)

type ApplicationPlatform struct{ ent.Schema }

func (ApplicationPlatform) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "application_platforms"},
	}
}

func (ApplicationPlatform) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("job_id", uuid.UUID{}),
		field.String("platform").NotEmpty().
			Validate(schemautils.EnumValidator(constants.PlatformsAsStringSlice()...)),
		field.String("url").Optional().Nillable(),
		field.String("external_id").Optional().Nillable(),
		field.String("notes").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ApplicationPlatform) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("platforms").
			Field("job_id").
			Required().
			Unique(),
	}
}

func (ApplicationPlatform) Indexes() []ent.Index {
	return []ent.Index{
		// At most one entry per (job, platform).
		index.Fields("job_id", "platform").Unique(),
	}
}
