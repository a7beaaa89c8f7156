package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Company is an insurer that issues prepaid credit guides.
type Company struct {
	ent.Schema
}

func (Company) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Company) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(255).
			NotEmpty().
			Unique(),
	}
}

func (Company) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("guides", Guide.Type),
	}
}
