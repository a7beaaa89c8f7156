// Code generated by ent, DO NOT EDIT.

package facialrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/credvia/credvia_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.FacialRecord {
	return predicate.FacialRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.FacialRecord {
	return predicate.FacialRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.FacialRecord {
	return predicate.FacialRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.FacialRecord {
	return predicate.FacialRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.FacialRecord {
	return predicate.FacialRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.FacialRecord {
	return predicate.FacialRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.FacialRecord {
	return predicate.FacialRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.FacialRecord {
	return predicate.FacialRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.FacialRecord {
	return predicate.FacialRecord(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FacialRecord {
	return predicate.FacialRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.FacialRecord {
	return predicate.FacialRecord(sql.FieldEQ(FieldPatientID, v))
}

// GuideID applies equality check predicate on the "guide_id" field. It's identical to GuideIDEQ.
func GuideID(v uuid.UUID) predicate.FacialRecord {
	return predicate.FacialRecord(sql.FieldEQ(FieldGuideID, v))
}

// PerformedAt applies equality check predicate on the "performed_at" field. It's identical to PerformedAtEQ.
func PerformedAt(v time.Time) predicate.FacialRecord {
	return predicate.FacialRecord(sql.FieldEQ(FieldPerformedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FacialRecord {
	return predicate.FacialRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FacialRecord {
	return predicate.FacialRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FacialRecord {
	return predicate.FacialRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FacialRecord {
	return predicate.FacialRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FacialRecord {
	return predicate.FacialRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FacialRecord {
	return predicate.FacialRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FacialRecord {
	return predicate.FacialRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FacialRecord {
	return predicate.FacialRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.FacialRecord {
	return predicate.FacialRecord(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.FacialRecord {
	return predicate.FacialRecord(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.FacialRecord {
	return predicate.FacialRecord(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.FacialRecord {
	return predicate.FacialRecord(sql.FieldNotIn(FieldPatientID, vs...))
}

// GuideIDEQ applies the EQ predicate on the "guide_id" field.
func GuideIDEQ(v uuid.UUID) predicate.FacialRecord {
	return predicate.FacialRecord(sql.FieldEQ(FieldGuideID, v))
}

// GuideIDNEQ applies the NEQ predicate on the "guide_id" field.
func GuideIDNEQ(v uuid.UUID) predicate.FacialRecord {
	return predicate.FacialRecord(sql.FieldNEQ(FieldGuideID, v))
}

// GuideIDIn applies the In predicate on the "guide_id" field.
func GuideIDIn(vs ...uuid.UUID) predicate.FacialRecord {
	return predicate.FacialRecord(sql.FieldIn(FieldGuideID, vs...))
}

// GuideIDNotIn applies the NotIn predicate on the "guide_id" field.
func GuideIDNotIn(vs ...uuid.UUID) predicate.FacialRecord {
	return predicate.FacialRecord(sql.FieldNotIn(FieldGuideID, vs...))
}

// PerformedAtEQ applies the EQ predicate on the "performed_at" field.
func PerformedAtEQ(v time.Time) predicate.FacialRecord {
	return predicate.FacialRecord(sql.FieldEQ(FieldPerformedAt, v))
}

// PerformedAtNEQ applies the NEQ predicate on the "performed_at" field.
func PerformedAtNEQ(v time.Time) predicate.FacialRecord {
	return predicate.FacialRecord(sql.FieldNEQ(FieldPerformedAt, v))
}

// PerformedAtIn applies the In predicate on the "performed_at" field.
func PerformedAtIn(vs ...time.Time) predicate.FacialRecord {
	return predicate.FacialRecord(sql.FieldIn(FieldPerformedAt, vs...))
}

// PerformedAtNotIn applies the NotIn predicate on the "performed_at" field.
func PerformedAtNotIn(vs ...time.Time) predicate.FacialRecord {
	return predicate.FacialRecord(sql.FieldNotIn(FieldPerformedAt, vs...))
}

// PerformedAtGT applies the GT predicate on the "performed_at" field.
func PerformedAtGT(v time.Time) predicate.FacialRecord {
	return predicate.FacialRecord(sql.FieldGT(FieldPerformedAt, v))
}

// PerformedAtGTE applies the GTE predicate on the "performed_at" field.
func PerformedAtGTE(v time.Time) predicate.FacialRecord {
	return predicate.FacialRecord(sql.FieldGTE(FieldPerformedAt, v))
}

// PerformedAtLT applies the LT predicate on the "performed_at" field.
func PerformedAtLT(v time.Time) predicate.FacialRecord {
	return predicate.FacialRecord(sql.FieldLT(FieldPerformedAt, v))
}

// PerformedAtLTE applies the LTE predicate on the "performed_at" field.
func PerformedAtLTE(v time.Time) predicate.FacialRecord {
	return predicate.FacialRecord(sql.FieldLTE(FieldPerformedAt, v))
}

// HasPatient applies the HasEdge predicate on the "patient" edge.
func HasPatient() predicate.FacialRecord {
	return predicate.FacialRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatientWith applies the HasEdge predicate on the "patient" edge with a given conditions (other predicates).
func HasPatientWith(preds ...predicate.Patient) predicate.FacialRecord {
	return predicate.FacialRecord(func(s *sql.Selector) {
		step := newPatientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasGuide applies the HasEdge predicate on the "guide" edge.
func HasGuide() predicate.FacialRecord {
	return predicate.FacialRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, GuideTable, GuideColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGuideWith applies the HasEdge predicate on the "guide" edge with a given conditions (other predicates).
func HasGuideWith(preds ...predicate.Guide) predicate.FacialRecord {
	return predicate.FacialRecord(func(s *sql.Selector) {
		step := newGuideStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FacialRecord) predicate.FacialRecord {
	return predicate.FacialRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FacialRecord) predicate.FacialRecord {
	return predicate.FacialRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FacialRecord) predicate.FacialRecord {
	return predicate.FacialRecord(sql.NotPredicates(p))
}
