package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Session is a therapy appointment that spends patient credits.
// It points at either a registered psychologist or a free-text
// reference placeholder, never both resolved independently: binding a
// reference rewrites psychologist_id on its sessions.
type Session struct {
	ent.Schema
}

func (Session) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}),

		field.UUID("psychologist_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.UUID("reference_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.Time("scheduled_at"),

		field.Int("duration_minutes").
			Comment("Session length in minutes; decides the credit cost"),

		field.Int("credits_used").
			Positive(),

		field.Enum("registered_by").
			Values("patient", "psychologist"),
	}
}

func (Session) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("sessions").
			Unique().
			Required().
			Field("patient_id"),
		edge.From("psychologist", Psychologist.Type).
			Ref("sessions").
			Unique().
			Field("psychologist_id"),
		edge.From("reference", PsychologistReference.Type).
			Ref("sessions").
			Unique().
			Field("reference_id"),
	}
}

func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "scheduled_at"),
		index.Fields("psychologist_id"),
		index.Fields("reference_id"),
	}
}
