package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// PsychologistReference is a patient-scoped free-text placeholder for a
// professional who is not registered on the platform. It can later be
// bound to a real psychologist account.
type PsychologistReference struct {
	ent.Schema
}

func (PsychologistReference) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (PsychologistReference) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}),

		field.String("name").
			MaxLen(255).
			NotEmpty(),

		field.UUID("linked_psychologist_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Set when the placeholder is bound to a real account"),
	}
}

func (PsychologistReference) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("references").
			Unique().
			Required().
			Field("patient_id"),
		edge.From("linked_psychologist", Psychologist.Type).
			Ref("linked_references").
			Unique().
			Field("linked_psychologist_id"),
		edge.To("sessions", Session.Type),
	}
}

func (PsychologistReference) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id"),
		index.Fields("linked_psychologist_id"),
	}
}
