package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/adeolu-ojo/applytrack/constants"
	schemautils "github.com/adeolu-ojo/applytrack/db/ent/schema/utils"
	"github.com/google/uuid"
)

type DuplicatePair struct{ ent.Schema }

func (DuplicatePair) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "duplicate_pairs"},
	}
}

func (DuplicatePair) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// Canonical ordering: job_id_1 is always the smaller UUID string,
		// so an unordered pair maps to exactly one row.
		field.UUID("job_id_1", uuid.UUID{}),
		field.UUID("job_id_2", uuid.UUID{}),
		field.Float("company_score").Range(0, 1),
		field.Float("title_score").Range(0, 1),
		field.Float("location_score").Range(0, 1),
		field.Float("date_score").Range(0, 1),
		field.Float("similarity_score").Range(0, 1),
		field.String("status").
			Default(string(constants.SuggestionPending)).
			Validate(schemautils.EnumValidator(constants.SuggestionStatuses()...)),
		field.Time("resolved_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (DuplicatePair) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id_1", "job_id_2").Unique(),
		index.Fields("job_id_1", "status"),
		index.Fields("job_id_2", "status"),
	}
}
