// Code generated by ent, DO NOT EDIT.

package psychologistreference

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/credvia/credvia_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldEQ(FieldUpdatedAt, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldEQ(FieldPatientID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldEQ(FieldName, v))
}

// LinkedPsychologistID applies equality check predicate on the "linked_psychologist_id" field. It's identical to LinkedPsychologistIDEQ.
func LinkedPsychologistID(v uuid.UUID) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldEQ(FieldLinkedPsychologistID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldLTE(FieldUpdatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldNotIn(FieldPatientID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldContainsFold(FieldName, v))
}

// LinkedPsychologistIDEQ applies the EQ predicate on the "linked_psychologist_id" field.
func LinkedPsychologistIDEQ(v uuid.UUID) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldEQ(FieldLinkedPsychologistID, v))
}

// LinkedPsychologistIDNEQ applies the NEQ predicate on the "linked_psychologist_id" field.
func LinkedPsychologistIDNEQ(v uuid.UUID) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldNEQ(FieldLinkedPsychologistID, v))
}

// LinkedPsychologistIDIn applies the In predicate on the "linked_psychologist_id" field.
func LinkedPsychologistIDIn(vs ...uuid.UUID) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldIn(FieldLinkedPsychologistID, vs...))
}

// LinkedPsychologistIDNotIn applies the NotIn predicate on the "linked_psychologist_id" field.
func LinkedPsychologistIDNotIn(vs ...uuid.UUID) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldNotIn(FieldLinkedPsychologistID, vs...))
}

// LinkedPsychologistIDIsNil applies the IsNil predicate on the "linked_psychologist_id" field.
func LinkedPsychologistIDIsNil() predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldIsNull(FieldLinkedPsychologistID))
}

// LinkedPsychologistIDNotNil applies the NotNil predicate on the "linked_psychologist_id" field.
func LinkedPsychologistIDNotNil() predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.FieldNotNull(FieldLinkedPsychologistID))
}

// HasPatient applies the HasEdge predicate on the "patient" edge.
func HasPatient() predicate.PsychologistReference {
	return predicate.PsychologistReference(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatientWith applies the HasEdge predicate on the "patient" edge with a given conditions (other predicates).
func HasPatientWith(preds ...predicate.Patient) predicate.PsychologistReference {
	return predicate.PsychologistReference(func(s *sql.Selector) {
		step := newPatientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLinkedPsychologist applies the HasEdge predicate on the "linked_psychologist" edge.
func HasLinkedPsychologist() predicate.PsychologistReference {
	return predicate.PsychologistReference(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, LinkedPsychologistTable, LinkedPsychologistColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLinkedPsychologistWith applies the HasEdge predicate on the "linked_psychologist" edge with a given conditions (other predicates).
func HasLinkedPsychologistWith(preds ...predicate.Psychologist) predicate.PsychologistReference {
	return predicate.PsychologistReference(func(s *sql.Selector) {
		step := newLinkedPsychologistStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSessions applies the HasEdge predicate on the "sessions" edge.
func HasSessions() predicate.PsychologistReference {
	return predicate.PsychologistReference(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SessionsTable, SessionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionsWith applies the HasEdge predicate on the "sessions" edge with a given conditions (other predicates).
func HasSessionsWith(preds ...predicate.Session) predicate.PsychologistReference {
	return predicate.PsychologistReference(func(s *sql.Selector) {
		step := newSessionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PsychologistReference) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PsychologistReference) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PsychologistReference) predicate.PsychologistReference {
	return predicate.PsychologistReference(sql.NotPredicates(p))
}
