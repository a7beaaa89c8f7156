package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// PatientPsychologistLink is the consent relationship between a patient
// and a psychologist. At most one row per pair; pending requests carry
// who asked, rejected rows carry when, to enforce the re-request
// cooldown.
type PatientPsychologistLink struct {
	ent.Schema
}

func (PatientPsychologistLink) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (PatientPsychologistLink) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}),

		field.UUID("psychologist_id", uuid.UUID{}),

		field.Enum("status").
			Values("pending", "accepted", "rejected").
			Default("pending"),

		field.Enum("requested_by").
			Values("patient", "psychologist"),

		field.Time("responded_at").
			Optional().
			Nillable(),
	}
}

func (PatientPsychologistLink) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("links").
			Unique().
			Required().
			Field("patient_id"),
		edge.From("psychologist", Psychologist.Type).
			Ref("links").
			Unique().
			Required().
			Field("psychologist_id"),
	}
}

func (PatientPsychologistLink) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "psychologist_id").Unique(),
		index.Fields("psychologist_id", "status"),
	}
}
