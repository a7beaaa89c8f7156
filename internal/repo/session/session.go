// Code generated by ent, DO NOT EDIT.

package session

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the session type in the database.
	Label = "session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldPatientID holds the string denoting the patient_id field in the database.
	FieldPatientID = "patient_id"
	// FieldPsychologistID holds the string denoting the psychologist_id field in the database.
	FieldPsychologistID = "psychologist_id"
	// FieldReferenceID holds the string denoting the reference_id field in the database.
	FieldReferenceID = "reference_id"
	// FieldScheduledAt holds the string denoting the scheduled_at field in the database.
	FieldScheduledAt = "scheduled_at"
	// FieldDurationMinutes holds the string denoting the duration_minutes field in the database.
	FieldDurationMinutes = "duration_minutes"
	// FieldCreditsUsed holds the string denoting the credits_used field in the database.
	FieldCreditsUsed = "credits_used"
	// FieldRegisteredBy holds the string denoting the registered_by field in the database.
	FieldRegisteredBy = "registered_by"
	// EdgePatient holds the string denoting the patient edge name in mutations.
	EdgePatient = "patient"
	// EdgePsychologist holds the string denoting the psychologist edge name in mutations.
	EdgePsychologist = "psychologist"
	// EdgeReference holds the string denoting the reference edge name in mutations.
	EdgeReference = "reference"
	// Table holds the table name of the session in the database.
	Table = "sessions"
	// PatientTable is the table that holds the patient relation/edge.
	PatientTable = "sessions"
	// PatientInverseTable is the table name for the Patient entity.
	// It exists in this package in order to avoid circular dependency with the "patient" package.
	PatientInverseTable = "patients"
	// PatientColumn is the table column denoting the patient relation/edge.
	PatientColumn = "patient_id"
	// PsychologistTable is the table that holds the psychologist relation/edge.
	PsychologistTable = "sessions"
	// PsychologistInverseTable is the table name for the Psychologist entity.
	// It exists in this package in order to avoid circular dependency with the "psychologist" package.
	PsychologistInverseTable = "psychologists"
	// PsychologistColumn is the table column denoting the psychologist relation/edge.
	PsychologistColumn = "psychologist_id"
	// ReferenceTable is the table that holds the reference relation/edge.
	ReferenceTable = "sessions"
	// ReferenceInverseTable is the table name for the PsychologistReference entity.
	// It exists in this package in order to avoid circular dependency with the "psychologistreference" package.
	ReferenceInverseTable = "psychologist_references"
	// ReferenceColumn is the table column denoting the reference relation/edge.
	ReferenceColumn = "reference_id"
)

// Columns holds all SQL columns for session fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldPatientID,
	FieldPsychologistID,
	FieldReferenceID,
	FieldScheduledAt,
	FieldDurationMinutes,
	FieldCreditsUsed,
	FieldRegisteredBy,
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
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// CreditsUsedValidator is a validator for the "credits_used" field. It is called by the builders before save.
	CreditsUsedValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// RegisteredBy defines the type for the "registered_by" enum field.
type RegisteredBy string

// RegisteredBy values.
const (
	RegisteredByPatient      RegisteredBy = "patient"
	RegisteredByPsychologist RegisteredBy = "psychologist"
)

func (rb RegisteredBy) String() string {
	return string(rb)
}

// RegisteredByValidator is a validator for the "registered_by" field enum values. It is called by the builders before save.
func RegisteredByValidator(rb RegisteredBy) error {
	switch rb {
	case RegisteredByPatient, RegisteredByPsychologist:
		return nil
	default:
		return fmt.Errorf("session: invalid enum value for registered_by field: %q", rb)
	}
}

// OrderOption defines the ordering options for the Session queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByPatientID orders the results by the patient_id field.
func ByPatientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientID, opts...).ToFunc()
}

// ByPsychologistID orders the results by the psychologist_id field.
func ByPsychologistID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPsychologistID, opts...).ToFunc()
}

// ByReferenceID orders the results by the reference_id field.
func ByReferenceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReferenceID, opts...).ToFunc()
}

// ByScheduledAt orders the results by the scheduled_at field.
func ByScheduledAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduledAt, opts...).ToFunc()
}

// ByDurationMinutes orders the results by the duration_minutes field.
func ByDurationMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMinutes, opts...).ToFunc()
}

// ByCreditsUsed orders the results by the credits_used field.
func ByCreditsUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreditsUsed, opts...).ToFunc()
}

// ByRegisteredBy orders the results by the registered_by field.
func ByRegisteredBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRegisteredBy, opts...).ToFunc()
}

// ByPatientField orders the results by patient field.
func ByPatientField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPatientStep(), sql.OrderByField(field, opts...))
	}
}

// ByPsychologistField orders the results by psychologist field.
func ByPsychologistField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPsychologistStep(), sql.OrderByField(field, opts...))
	}
}

// ByReferenceField orders the results by reference field.
func ByReferenceField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReferenceStep(), sql.OrderByField(field, opts...))
	}
}
func newPatientStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PatientInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
	)
}
func newPsychologistStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PsychologistInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PsychologistTable, PsychologistColumn),
	)
}
func newReferenceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReferenceInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ReferenceTable, ReferenceColumn),
	)
}
