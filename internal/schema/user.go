package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User is an account holder: either a patient or a psychologist.
// The role profile lives in the Patient / Psychologist tables.
type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(255).
			NotEmpty(),

		field.String("email").
			MaxLen(255).
			Unique(),

		field.String("whatsapp").
			MaxLen(20).
			Unique().
			Comment("E.164 normalized WhatsApp number"),

		field.String("password_hash").
			MaxLen(500).
			Sensitive(),

		field.Enum("role").
			Values("patient", "psychologist"),

		field.Bool("whatsapp_verified").
			Default(false),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("patient_profile", Patient.Type).
			Unique(),
		edge.To("psychologist_profile", Psychologist.Type).
			Unique(),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email"),
		index.Fields("whatsapp"),
		index.Fields("role"),
	}
}
