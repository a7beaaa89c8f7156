// Code generated by ent, DO NOT EDIT.

package user

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the user type in the database.
	Label = "user"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldWhatsapp holds the string denoting the whatsapp field in the database.
	FieldWhatsapp = "whatsapp"
	// FieldPasswordHash holds the string denoting the password_hash field in the database.
	FieldPasswordHash = "password_hash"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldWhatsappVerified holds the string denoting the whatsapp_verified field in the database.
	FieldWhatsappVerified = "whatsapp_verified"
	// EdgePatientProfile holds the string denoting the patient_profile edge name in mutations.
	EdgePatientProfile = "patient_profile"
	// EdgePsychologistProfile holds the string denoting the psychologist_profile edge name in mutations.
	EdgePsychologistProfile = "psychologist_profile"
	// Table holds the table name of the user in the database.
	Table = "users"
	// PatientProfileTable is the table that holds the patient_profile relation/edge.
	PatientProfileTable = "patients"
	// PatientProfileInverseTable is the table name for the Patient entity.
	// It exists in this package in order to avoid circular dependency with the "patient" package.
	PatientProfileInverseTable = "patients"
	// PatientProfileColumn is the table column denoting the patient_profile relation/edge.
	PatientProfileColumn = "user_id"
	// PsychologistProfileTable is the table that holds the psychologist_profile relation/edge.
	PsychologistProfileTable = "psychologists"
	// PsychologistProfileInverseTable is the table name for the Psychologist entity.
	// It exists in this package in order to avoid circular dependency with the "psychologist" package.
	PsychologistProfileInverseTable = "psychologists"
	// PsychologistProfileColumn is the table column denoting the psychologist_profile relation/edge.
	PsychologistProfileColumn = "user_id"
)

// Columns holds all SQL columns for user fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
	FieldName,
	FieldEmail,
	FieldWhatsapp,
	FieldPasswordHash,
	FieldRole,
	FieldWhatsappVerified,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// WhatsappValidator is a validator for the "whatsapp" field. It is called by the builders before save.
	WhatsappValidator func(string) error
	// PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	PasswordHashValidator func(string) error
	// DefaultWhatsappVerified holds the default value on creation for the "whatsapp_verified" field.
	DefaultWhatsappVerified bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Role defines the type for the "role" enum field.
type Role string

// Role values.
const (
	RolePatient      Role = "patient"
	RolePsychologist Role = "psychologist"
)

func (r Role) String() string {
	return string(r)
}

// RoleValidator is a validator for the "role" field enum values. It is called by the builders before save.
func RoleValidator(r Role) error {
	switch r {
	case RolePatient, RolePsychologist:
		return nil
	default:
		return fmt.Errorf("user: invalid enum value for role field: %q", r)
	}
}

// OrderOption defines the ordering options for the User queries.
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

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByWhatsapp orders the results by the whatsapp field.
func ByWhatsapp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWhatsapp, opts...).ToFunc()
}

// ByPasswordHash orders the results by the password_hash field.
func ByPasswordHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPasswordHash, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByWhatsappVerified orders the results by the whatsapp_verified field.
func ByWhatsappVerified(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWhatsappVerified, opts...).ToFunc()
}

// ByPatientProfileField orders the results by patient_profile field.
func ByPatientProfileField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPatientProfileStep(), sql.OrderByField(field, opts...))
	}
}

// ByPsychologistProfileField orders the results by psychologist_profile field.
func ByPsychologistProfileField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPsychologistProfileStep(), sql.OrderByField(field, opts...))
	}
}
func newPatientProfileStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PatientProfileInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, PatientProfileTable, PatientProfileColumn),
	)
}
func newPsychologistProfileStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PsychologistProfileInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, PsychologistProfileTable, PsychologistProfileColumn),
	)
}
