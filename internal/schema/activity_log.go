package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ActivityLog is an append-only record of guide lifecycle events.
// Rows are never updated or deleted.
type ActivityLog struct {
	ent.Schema
}

func (ActivityLog) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (ActivityLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Immutable(),

		field.Enum("type").
			Values("guide_created", "guide_expired", "guide_closed").
			Immutable(),

		field.String("description").
			MaxLen(500).
			Immutable(),

		field.JSON("metadata", map[string]any{}).
			Optional().
			Immutable().
			Comment("Event payload: guide number, credit counts"),

		field.Time("occurred_at").
			Immutable(),
	}
}

func (ActivityLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("activity_logs").
			Unique().
			Required().
			Immutable().
			Field("patient_id"),
	}
}

func (ActivityLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "occurred_at"),
		index.Fields("patient_id", "type"),
	}
}
