package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Psychologist is the professional profile of a user with the
// psychologist role.
type Psychologist struct {
	ent.Schema
}

func (Psychologist) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Psychologist) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Unique().
			Comment("FK → users.id"),

		field.String("crp").
			MaxLen(20).
			Optional().
			Nillable().
			Comment("Professional registration number"),
	}
}

func (Psychologist) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("psychologist_profile").
			Unique().
			Required().
			Field("user_id"),
		edge.To("sessions", Session.Type),
		edge.To("links", PatientPsychologistLink.Type),
		edge.To("linked_references", PsychologistReference.Type),
	}
}

func (Psychologist) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
	}
}
