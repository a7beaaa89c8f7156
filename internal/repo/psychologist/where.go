// Code generated by ent, DO NOT EDIT.

package psychologist

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/credvia/credvia_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldEQ(FieldUserID, v))
}

// Crp applies equality check predicate on the "crp" field. It's identical to CrpEQ.
func Crp(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldEQ(FieldCrp, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldNotIn(FieldUserID, vs...))
}

// CrpEQ applies the EQ predicate on the "crp" field.
func CrpEQ(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldEQ(FieldCrp, v))
}

// CrpNEQ applies the NEQ predicate on the "crp" field.
func CrpNEQ(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldNEQ(FieldCrp, v))
}

// CrpIn applies the In predicate on the "crp" field.
func CrpIn(vs ...string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldIn(FieldCrp, vs...))
}

// CrpNotIn applies the NotIn predicate on the "crp" field.
func CrpNotIn(vs ...string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldNotIn(FieldCrp, vs...))
}

// CrpGT applies the GT predicate on the "crp" field.
func CrpGT(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldGT(FieldCrp, v))
}

// CrpGTE applies the GTE predicate on the "crp" field.
func CrpGTE(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldGTE(FieldCrp, v))
}

// CrpLT applies the LT predicate on the "crp" field.
func CrpLT(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldLT(FieldCrp, v))
}

// CrpLTE applies the LTE predicate on the "crp" field.
func CrpLTE(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldLTE(FieldCrp, v))
}

// CrpContains applies the Contains predicate on the "crp" field.
func CrpContains(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldContains(FieldCrp, v))
}

// CrpHasPrefix applies the HasPrefix predicate on the "crp" field.
func CrpHasPrefix(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldHasPrefix(FieldCrp, v))
}

// CrpHasSuffix applies the HasSuffix predicate on the "crp" field.
func CrpHasSuffix(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldHasSuffix(FieldCrp, v))
}

// CrpIsNil applies the IsNil predicate on the "crp" field.
func CrpIsNil() predicate.Psychologist {
	return predicate.Psychologist(sql.FieldIsNull(FieldCrp))
}

// CrpNotNil applies the NotNil predicate on the "crp" field.
func CrpNotNil() predicate.Psychologist {
	return predicate.Psychologist(sql.FieldNotNull(FieldCrp))
}

// CrpEqualFold applies the EqualFold predicate on the "crp" field.
func CrpEqualFold(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldEqualFold(FieldCrp, v))
}

// CrpContainsFold applies the ContainsFold predicate on the "crp" field.
func CrpContainsFold(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldContainsFold(FieldCrp, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.Psychologist {
	return predicate.Psychologist(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.Psychologist {
	return predicate.Psychologist(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSessions applies the HasEdge predicate on the "sessions" edge.
func HasSessions() predicate.Psychologist {
	return predicate.Psychologist(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SessionsTable, SessionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionsWith applies the HasEdge predicate on the "sessions" edge with a given conditions (other predicates).
func HasSessionsWith(preds ...predicate.Session) predicate.Psychologist {
	return predicate.Psychologist(func(s *sql.Selector) {
		step := newSessionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLinks applies the HasEdge predicate on the "links" edge.
func HasLinks() predicate.Psychologist {
	return predicate.Psychologist(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LinksTable, LinksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLinksWith applies the HasEdge predicate on the "links" edge with a given conditions (other predicates).
func HasLinksWith(preds ...predicate.PatientPsychologistLink) predicate.Psychologist {
	return predicate.Psychologist(func(s *sql.Selector) {
		step := newLinksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLinkedReferences applies the HasEdge predicate on the "linked_references" edge.
func HasLinkedReferences() predicate.Psychologist {
	return predicate.Psychologist(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LinkedReferencesTable, LinkedReferencesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLinkedReferencesWith applies the HasEdge predicate on the "linked_references" edge with a given conditions (other predicates).
func HasLinkedReferencesWith(preds ...predicate.PsychologistReference) predicate.Psychologist {
	return predicate.Psychologist(func(s *sql.Selector) {
		step := newLinkedReferencesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Psychologist) predicate.Psychologist {
	return predicate.Psychologist(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Psychologist) predicate.Psychologist {
	return predicate.Psychologist(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Psychologist) predicate.Psychologist {
	return predicate.Psychologist(sql.NotPredicates(p))
}
