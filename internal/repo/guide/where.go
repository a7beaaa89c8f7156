// Code generated by ent, DO NOT EDIT.

package guide

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/credvia/credvia_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Guide {
	return predicate.Guide(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Guide {
	return predicate.Guide(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Guide {
	return predicate.Guide(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Guide {
	return predicate.Guide(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Guide {
	return predicate.Guide(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Guide {
	return predicate.Guide(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Guide {
	return predicate.Guide(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Guide {
	return predicate.Guide(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Guide {
	return predicate.Guide(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Guide {
	return predicate.Guide(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Guide {
	return predicate.Guide(sql.FieldEQ(FieldUpdatedAt, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.Guide {
	return predicate.Guide(sql.FieldEQ(FieldPatientID, v))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v uuid.UUID) predicate.Guide {
	return predicate.Guide(sql.FieldEQ(FieldCompanyID, v))
}

// Number applies equality check predicate on the "number" field. It's identical to NumberEQ.
func Number(v string) predicate.Guide {
	return predicate.Guide(sql.FieldEQ(FieldNumber, v))
}

// TotalCredits applies equality check predicate on the "total_credits" field. It's identical to TotalCreditsEQ.
func TotalCredits(v int) predicate.Guide {
	return predicate.Guide(sql.FieldEQ(FieldTotalCredits, v))
}

// UsedCredits applies equality check predicate on the "used_credits" field. It's identical to UsedCreditsEQ.
func UsedCredits(v int) predicate.Guide {
	return predicate.Guide(sql.FieldEQ(FieldUsedCredits, v))
}

// ExpirationDate applies equality check predicate on the "expiration_date" field. It's identical to ExpirationDateEQ.
func ExpirationDate(v time.Time) predicate.Guide {
	return predicate.Guide(sql.FieldEQ(FieldExpirationDate, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Guide {
	return predicate.Guide(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Guide {
	return predicate.Guide(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Guide {
	return predicate.Guide(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Guide {
	return predicate.Guide(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Guide {
	return predicate.Guide(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Guide {
	return predicate.Guide(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Guide {
	return predicate.Guide(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Guide {
	return predicate.Guide(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Guide {
	return predicate.Guide(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Guide {
	return predicate.Guide(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Guide {
	return predicate.Guide(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Guide {
	return predicate.Guide(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Guide {
	return predicate.Guide(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Guide {
	return predicate.Guide(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Guide {
	return predicate.Guide(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Guide {
	return predicate.Guide(sql.FieldLTE(FieldUpdatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.Guide {
	return predicate.Guide(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.Guide {
	return predicate.Guide(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.Guide {
	return predicate.Guide(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.Guide {
	return predicate.Guide(sql.FieldNotIn(FieldPatientID, vs...))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v uuid.UUID) predicate.Guide {
	return predicate.Guide(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v uuid.UUID) predicate.Guide {
	return predicate.Guide(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...uuid.UUID) predicate.Guide {
	return predicate.Guide(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...uuid.UUID) predicate.Guide {
	return predicate.Guide(sql.FieldNotIn(FieldCompanyID, vs...))
}

// NumberEQ applies the EQ predicate on the "number" field.
func NumberEQ(v string) predicate.Guide {
	return predicate.Guide(sql.FieldEQ(FieldNumber, v))
}

// NumberNEQ applies the NEQ predicate on the "number" field.
func NumberNEQ(v string) predicate.Guide {
	return predicate.Guide(sql.FieldNEQ(FieldNumber, v))
}

// NumberIn applies the In predicate on the "number" field.
func NumberIn(vs ...string) predicate.Guide {
	return predicate.Guide(sql.FieldIn(FieldNumber, vs...))
}

// NumberNotIn applies the NotIn predicate on the "number" field.
func NumberNotIn(vs ...string) predicate.Guide {
	return predicate.Guide(sql.FieldNotIn(FieldNumber, vs...))
}

// NumberGT applies the GT predicate on the "number" field.
func NumberGT(v string) predicate.Guide {
	return predicate.Guide(sql.FieldGT(FieldNumber, v))
}

// NumberGTE applies the GTE predicate on the "number" field.
func NumberGTE(v string) predicate.Guide {
	return predicate.Guide(sql.FieldGTE(FieldNumber, v))
}

// NumberLT applies the LT predicate on the "number" field.
func NumberLT(v string) predicate.Guide {
	return predicate.Guide(sql.FieldLT(FieldNumber, v))
}

// NumberLTE applies the LTE predicate on the "number" field.
func NumberLTE(v string) predicate.Guide {
	return predicate.Guide(sql.FieldLTE(FieldNumber, v))
}

// NumberContains applies the Contains predicate on the "number" field.
func NumberContains(v string) predicate.Guide {
	return predicate.Guide(sql.FieldContains(FieldNumber, v))
}

// NumberHasPrefix applies the HasPrefix predicate on the "number" field.
func NumberHasPrefix(v string) predicate.Guide {
	return predicate.Guide(sql.FieldHasPrefix(FieldNumber, v))
}

// NumberHasSuffix applies the HasSuffix predicate on the "number" field.
func NumberHasSuffix(v string) predicate.Guide {
	return predicate.Guide(sql.FieldHasSuffix(FieldNumber, v))
}

// NumberEqualFold applies the EqualFold predicate on the "number" field.
func NumberEqualFold(v string) predicate.Guide {
	return predicate.Guide(sql.FieldEqualFold(FieldNumber, v))
}

// NumberContainsFold applies the ContainsFold predicate on the "number" field.
func NumberContainsFold(v string) predicate.Guide {
	return predicate.Guide(sql.FieldContainsFold(FieldNumber, v))
}

// TotalCreditsEQ applies the EQ predicate on the "total_credits" field.
func TotalCreditsEQ(v int) predicate.Guide {
	return predicate.Guide(sql.FieldEQ(FieldTotalCredits, v))
}

// TotalCreditsNEQ applies the NEQ predicate on the "total_credits" field.
func TotalCreditsNEQ(v int) predicate.Guide {
	return predicate.Guide(sql.FieldNEQ(FieldTotalCredits, v))
}

// TotalCreditsIn applies the In predicate on the "total_credits" field.
func TotalCreditsIn(vs ...int) predicate.Guide {
	return predicate.Guide(sql.FieldIn(FieldTotalCredits, vs...))
}

// TotalCreditsNotIn applies the NotIn predicate on the "total_credits" field.
func TotalCreditsNotIn(vs ...int) predicate.Guide {
	return predicate.Guide(sql.FieldNotIn(FieldTotalCredits, vs...))
}

// TotalCreditsGT applies the GT predicate on the "total_credits" field.
func TotalCreditsGT(v int) predicate.Guide {
	return predicate.Guide(sql.FieldGT(FieldTotalCredits, v))
}

// TotalCreditsGTE applies the GTE predicate on the "total_credits" field.
func TotalCreditsGTE(v int) predicate.Guide {
	return predicate.Guide(sql.FieldGTE(FieldTotalCredits, v))
}

// TotalCreditsLT applies the LT predicate on the "total_credits" field.
func TotalCreditsLT(v int) predicate.Guide {
	return predicate.Guide(sql.FieldLT(FieldTotalCredits, v))
}

// TotalCreditsLTE applies the LTE predicate on the "total_credits" field.
func TotalCreditsLTE(v int) predicate.Guide {
	return predicate.Guide(sql.FieldLTE(FieldTotalCredits, v))
}

// UsedCreditsEQ applies the EQ predicate on the "used_credits" field.
func UsedCreditsEQ(v int) predicate.Guide {
	return predicate.Guide(sql.FieldEQ(FieldUsedCredits, v))
}

// UsedCreditsNEQ applies the NEQ predicate on the "used_credits" field.
func UsedCreditsNEQ(v int) predicate.Guide {
	return predicate.Guide(sql.FieldNEQ(FieldUsedCredits, v))
}

// UsedCreditsIn applies the In predicate on the "used_credits" field.
func UsedCreditsIn(vs ...int) predicate.Guide {
	return predicate.Guide(sql.FieldIn(FieldUsedCredits, vs...))
}

// UsedCreditsNotIn applies the NotIn predicate on the "used_credits" field.
func UsedCreditsNotIn(vs ...int) predicate.Guide {
	return predicate.Guide(sql.FieldNotIn(FieldUsedCredits, vs...))
}

// UsedCreditsGT applies the GT predicate on the "used_credits" field.
func UsedCreditsGT(v int) predicate.Guide {
	return predicate.Guide(sql.FieldGT(FieldUsedCredits, v))
}

// UsedCreditsGTE applies the GTE predicate on the "used_credits" field.
func UsedCreditsGTE(v int) predicate.Guide {
	return predicate.Guide(sql.FieldGTE(FieldUsedCredits, v))
}

// UsedCreditsLT applies the LT predicate on the "used_credits" field.
func UsedCreditsLT(v int) predicate.Guide {
	return predicate.Guide(sql.FieldLT(FieldUsedCredits, v))
}

// UsedCreditsLTE applies the LTE predicate on the "used_credits" field.
func UsedCreditsLTE(v int) predicate.Guide {
	return predicate.Guide(sql.FieldLTE(FieldUsedCredits, v))
}

// ExpirationDateEQ applies the EQ predicate on the "expiration_date" field.
func ExpirationDateEQ(v time.Time) predicate.Guide {
	return predicate.Guide(sql.FieldEQ(FieldExpirationDate, v))
}

// ExpirationDateNEQ applies the NEQ predicate on the "expiration_date" field.
func ExpirationDateNEQ(v time.Time) predicate.Guide {
	return predicate.Guide(sql.FieldNEQ(FieldExpirationDate, v))
}

// ExpirationDateIn applies the In predicate on the "expiration_date" field.
func ExpirationDateIn(vs ...time.Time) predicate.Guide {
	return predicate.Guide(sql.FieldIn(FieldExpirationDate, vs...))
}

// ExpirationDateNotIn applies the NotIn predicate on the "expiration_date" field.
func ExpirationDateNotIn(vs ...time.Time) predicate.Guide {
	return predicate.Guide(sql.FieldNotIn(FieldExpirationDate, vs...))
}

// ExpirationDateGT applies the GT predicate on the "expiration_date" field.
func ExpirationDateGT(v time.Time) predicate.Guide {
	return predicate.Guide(sql.FieldGT(FieldExpirationDate, v))
}

// ExpirationDateGTE applies the GTE predicate on the "expiration_date" field.
func ExpirationDateGTE(v time.Time) predicate.Guide {
	return predicate.Guide(sql.FieldGTE(FieldExpirationDate, v))
}

// ExpirationDateLT applies the LT predicate on the "expiration_date" field.
func ExpirationDateLT(v time.Time) predicate.Guide {
	return predicate.Guide(sql.FieldLT(FieldExpirationDate, v))
}

// ExpirationDateLTE applies the LTE predicate on the "expiration_date" field.
func ExpirationDateLTE(v time.Time) predicate.Guide {
	return predicate.Guide(sql.FieldLTE(FieldExpirationDate, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Guide {
	return predicate.Guide(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Guide {
	return predicate.Guide(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Guide {
	return predicate.Guide(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Guide {
	return predicate.Guide(sql.FieldNotIn(FieldStatus, vs...))
}

// HasPatient applies the HasEdge predicate on the "patient" edge.
func HasPatient() predicate.Guide {
	return predicate.Guide(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatientWith applies the HasEdge predicate on the "patient" edge with a given conditions (other predicates).
func HasPatientWith(preds ...predicate.Patient) predicate.Guide {
	return predicate.Guide(func(s *sql.Selector) {
		step := newPatientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCompany applies the HasEdge predicate on the "company" edge.
func HasCompany() predicate.Guide {
	return predicate.Guide(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CompanyTable, CompanyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCompanyWith applies the HasEdge predicate on the "company" edge with a given conditions (other predicates).
func HasCompanyWith(preds ...predicate.Company) predicate.Guide {
	return predicate.Guide(func(s *sql.Selector) {
		step := newCompanyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFacials applies the HasEdge predicate on the "facials" edge.
func HasFacials() predicate.Guide {
	return predicate.Guide(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FacialsTable, FacialsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFacialsWith applies the HasEdge predicate on the "facials" edge with a given conditions (other predicates).
func HasFacialsWith(preds ...predicate.FacialRecord) predicate.Guide {
	return predicate.Guide(func(s *sql.Selector) {
		step := newFacialsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Guide) predicate.Guide {
	return predicate.Guide(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Guide) predicate.Guide {
	return predicate.Guide(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Guide) predicate.Guide {
	return predicate.Guide(sql.NotPredicates(p))
}
