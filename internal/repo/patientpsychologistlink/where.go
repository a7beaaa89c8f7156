// Code generated by ent, DO NOT EDIT.

package patientpsychologistlink

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/credvia/credvia_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldEQ(FieldUpdatedAt, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldEQ(FieldPatientID, v))
}

// PsychologistID applies equality check predicate on the "psychologist_id" field. It's identical to PsychologistIDEQ.
func PsychologistID(v uuid.UUID) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldEQ(FieldPsychologistID, v))
}

// RespondedAt applies equality check predicate on the "responded_at" field. It's identical to RespondedAtEQ.
func RespondedAt(v time.Time) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldEQ(FieldRespondedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldLTE(FieldUpdatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldNotIn(FieldPatientID, vs...))
}

// PsychologistIDEQ applies the EQ predicate on the "psychologist_id" field.
func PsychologistIDEQ(v uuid.UUID) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldEQ(FieldPsychologistID, v))
}

// PsychologistIDNEQ applies the NEQ predicate on the "psychologist_id" field.
func PsychologistIDNEQ(v uuid.UUID) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldNEQ(FieldPsychologistID, v))
}

// PsychologistIDIn applies the In predicate on the "psychologist_id" field.
func PsychologistIDIn(vs ...uuid.UUID) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldIn(FieldPsychologistID, vs...))
}

// PsychologistIDNotIn applies the NotIn predicate on the "psychologist_id" field.
func PsychologistIDNotIn(vs ...uuid.UUID) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldNotIn(FieldPsychologistID, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldNotIn(FieldStatus, vs...))
}

// RequestedByEQ applies the EQ predicate on the "requested_by" field.
func RequestedByEQ(v RequestedBy) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldEQ(FieldRequestedBy, v))
}

// RequestedByNEQ applies the NEQ predicate on the "requested_by" field.
func RequestedByNEQ(v RequestedBy) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldNEQ(FieldRequestedBy, v))
}

// RequestedByIn applies the In predicate on the "requested_by" field.
func RequestedByIn(vs ...RequestedBy) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldIn(FieldRequestedBy, vs...))
}

// RequestedByNotIn applies the NotIn predicate on the "requested_by" field.
func RequestedByNotIn(vs ...RequestedBy) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldNotIn(FieldRequestedBy, vs...))
}

// RespondedAtEQ applies the EQ predicate on the "responded_at" field.
func RespondedAtEQ(v time.Time) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldEQ(FieldRespondedAt, v))
}

// RespondedAtNEQ applies the NEQ predicate on the "responded_at" field.
func RespondedAtNEQ(v time.Time) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldNEQ(FieldRespondedAt, v))
}

// RespondedAtIn applies the In predicate on the "responded_at" field.
func RespondedAtIn(vs ...time.Time) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldIn(FieldRespondedAt, vs...))
}

// RespondedAtNotIn applies the NotIn predicate on the "responded_at" field.
func RespondedAtNotIn(vs ...time.Time) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldNotIn(FieldRespondedAt, vs...))
}

// RespondedAtGT applies the GT predicate on the "responded_at" field.
func RespondedAtGT(v time.Time) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldGT(FieldRespondedAt, v))
}

// RespondedAtGTE applies the GTE predicate on the "responded_at" field.
func RespondedAtGTE(v time.Time) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldGTE(FieldRespondedAt, v))
}

// RespondedAtLT applies the LT predicate on the "responded_at" field.
func RespondedAtLT(v time.Time) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldLT(FieldRespondedAt, v))
}

// RespondedAtLTE applies the LTE predicate on the "responded_at" field.
func RespondedAtLTE(v time.Time) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldLTE(FieldRespondedAt, v))
}

// RespondedAtIsNil applies the IsNil predicate on the "responded_at" field.
func RespondedAtIsNil() predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldIsNull(FieldRespondedAt))
}

// RespondedAtNotNil applies the NotNil predicate on the "responded_at" field.
func RespondedAtNotNil() predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.FieldNotNull(FieldRespondedAt))
}

// HasPatient applies the HasEdge predicate on the "patient" edge.
func HasPatient() predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatientWith applies the HasEdge predicate on the "patient" edge with a given conditions (other predicates).
func HasPatientWith(preds ...predicate.Patient) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(func(s *sql.Selector) {
		step := newPatientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPsychologist applies the HasEdge predicate on the "psychologist" edge.
func HasPsychologist() predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PsychologistTable, PsychologistColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPsychologistWith applies the HasEdge predicate on the "psychologist" edge with a given conditions (other predicates).
func HasPsychologistWith(preds ...predicate.Psychologist) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(func(s *sql.Selector) {
		step := newPsychologistStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PatientPsychologistLink) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PatientPsychologistLink) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PatientPsychologistLink) predicate.PatientPsychologistLink {
	return predicate.PatientPsychologistLink(sql.NotPredicates(p))
}
