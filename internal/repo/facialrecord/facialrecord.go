// Code generated by ent, DO NOT EDIT.

package facialrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the facialrecord type in the database.
	Label = "facial_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldPatientID holds the string denoting the patient_id field in the database.
	FieldPatientID = "patient_id"
	// FieldGuideID holds the string denoting the guide_id field in the database.
	FieldGuideID = "guide_id"
	// FieldPerformedAt holds the string denoting the performed_at field in the database.
	FieldPerformedAt = "performed_at"
	// EdgePatient holds the string denoting the patient edge name in mutations.
	EdgePatient = "patient"
	// EdgeGuide holds the string denoting the guide edge name in mutations.
	EdgeGuide = "guide"
	// Table holds the table name of the facialrecord in the database.
	Table = "facial_records"
	// PatientTable is the table that holds the patient relation/edge.
	PatientTable = "facial_records"
	// PatientInverseTable is the table name for the Patient entity.
	// It exists in this package in order to avoid circular dependency with the "patient" package.
	PatientInverseTable = "patients"
	// PatientColumn is the table column denoting the patient relation/edge.
	PatientColumn = "patient_id"
	// GuideTable is the table that holds the guide relation/edge.
	GuideTable = "facial_records"
	// GuideInverseTable is the table name for the Guide entity.
	// It exists in this package in order to avoid circular dependency with the "guide" package.
	GuideInverseTable = "guides"
	// GuideColumn is the table column denoting the guide relation/edge.
	GuideColumn = "guide_id"
)

// Columns holds all SQL columns for facialrecord fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldPatientID,
	FieldGuideID,
	FieldPerformedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the FacialRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByPatientID orders the results by the patient_id field.
func ByPatientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientID, opts...).ToFunc()
}

// ByGuideID orders the results by the guide_id field.
func ByGuideID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGuideID, opts...).ToFunc()
}

// ByPerformedAt orders the results by the performed_at field.
func ByPerformedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPerformedAt, opts...).ToFunc()
}

// ByPatientField orders the results by patient field.
func ByPatientField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPatientStep(), sql.OrderByField(field, opts...))
	}
}

// ByGuideField orders the results by guide field.
func ByGuideField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGuideStep(), sql.OrderByField(field, opts...))
	}
}
func newPatientStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PatientInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
	)
}
func newGuideStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GuideInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, GuideTable, GuideColumn),
	)
}
