package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Guide is a prepaid credit voucher issued by an insurer. Credits on a
// guide are consumed by facial check-ins in FIFO order of creation.
type Guide struct {
	ent.Schema
}

func (Guide) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Guide) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}),

		field.UUID("company_id", uuid.UUID{}),

		field.String("number").
			MaxLen(100).
			NotEmpty().
			Comment("Insurer-issued guide number, unique per patient"),

		field.Int("total_credits").
			Positive(),

		field.Int("used_credits").
			Default(0).
			NonNegative(),

		field.Time("expiration_date"),

		field.Enum("status").
			Values("active", "completed", "expired").
			Default("active"),
	}
}

func (Guide) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("guides").
			Unique().
			Required().
			Field("patient_id"),
		edge.From("company", Company.Type).
			Ref("guides").
			Unique().
			Required().
			Field("company_id"),
		edge.To("facials", FacialRecord.Type),
	}
}

func (Guide) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "number").Unique(),
		// FIFO consumption scans active guides oldest first.
		index.Fields("patient_id", "status", "created_at"),
		index.Fields("status", "expiration_date"),
	}
}
