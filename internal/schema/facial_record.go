package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// FacialRecord is one biometric check-in. Each record consumes exactly
// one credit from the guide it is attached to. Append-only.
type FacialRecord struct {
	ent.Schema
}

func (FacialRecord) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (FacialRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Immutable(),

		field.UUID("guide_id", uuid.UUID{}).
			Immutable(),

		field.Time("performed_at").
			Immutable(),
	}
}

func (FacialRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("facials").
			Unique().
			Required().
			Immutable().
			Field("patient_id"),
		edge.From("guide", Guide.Type).
			Ref("facials").
			Unique().
			Required().
			Immutable().
			Field("guide_id"),
	}
}

func (FacialRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "performed_at"),
		index.Fields("guide_id"),
	}
}
