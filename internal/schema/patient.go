package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Patient is the credit-holding profile of a user with the patient role.
// Balance is mutated only inside the facial / session transactions and may
// go negative.
type Patient struct {
	ent.Schema
}

func (Patient) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Patient) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Unique().
			Comment("FK → users.id"),

		field.Int("balance").
			Default(0).
			Comment("Spendable credits; negative is a valid, highlighted state"),
	}
}

func (Patient) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("patient_profile").
			Unique().
			Required().
			Field("user_id"),
		edge.To("guides", Guide.Type),
		edge.To("facials", FacialRecord.Type),
		edge.To("sessions", Session.Type),
		edge.To("references", PsychologistReference.Type),
		edge.To("links", PatientPsychologistLink.Type),
		edge.To("activity_logs", ActivityLog.Type),
	}
}

func (Patient) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
	}
}
