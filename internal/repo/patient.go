// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/credvia/credvia_backend/internal/repo/patient"
	"github.com/credvia/credvia_backend/internal/repo/user"
	"github.com/google/uuid"
)

// Patient is the model entity for the Patient schema.
type Patient struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → users.id
	UserID uuid.UUID `json:"user_id,omitempty"`
	// Spendable credits; negative is a valid, highlighted state
	Balance int `json:"balance,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PatientQuery when eager-loading is set.
	Edges        PatientEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PatientEdges holds the relations/edges for other nodes in the graph.
type PatientEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// Guides holds the value of the guides edge.
	Guides []*Guide `json:"guides,omitempty"`
	// Facials holds the value of the facials edge.
	Facials []*FacialRecord `json:"facials,omitempty"`
	// Sessions holds the value of the sessions edge.
	Sessions []*Session `json:"sessions,omitempty"`
	// References holds the value of the references edge.
	References []*PsychologistReference `json:"references,omitempty"`
	// Links holds the value of the links edge.
	Links []*PatientPsychologistLink `json:"links,omitempty"`
	// ActivityLogs holds the value of the activity_logs edge.
	ActivityLogs []*ActivityLog `json:"activity_logs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [7]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PatientEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// GuidesOrErr returns the Guides value or an error if the edge
// was not loaded in eager-loading.
func (e PatientEdges) GuidesOrErr() ([]*Guide, error) {
	if e.loadedTypes[1] {
		return e.Guides, nil
	}
	return nil, &NotLoadedError{edge: "guides"}
}

// FacialsOrErr returns the Facials value or an error if the edge
// was not loaded in eager-loading.
func (e PatientEdges) FacialsOrErr() ([]*FacialRecord, error) {
	if e.loadedTypes[2] {
		return e.Facials, nil
	}
	return nil, &NotLoadedError{edge: "facials"}
}

// SessionsOrErr returns the Sessions value or an error if the edge
// was not loaded in eager-loading.
func (e PatientEdges) SessionsOrErr() ([]*Session, error) {
	if e.loadedTypes[3] {
		return e.Sessions, nil
	}
	return nil, &NotLoadedError{edge: "sessions"}
}

// ReferencesOrErr returns the References value or an error if the edge
// was not loaded in eager-loading.
func (e PatientEdges) ReferencesOrErr() ([]*PsychologistReference, error) {
	if e.loadedTypes[4] {
		return e.References, nil
	}
	return nil, &NotLoadedError{edge: "references"}
}

// LinksOrErr returns the Links value or an error if the edge
// was not loaded in eager-loading.
func (e PatientEdges) LinksOrErr() ([]*PatientPsychologistLink, error) {
	if e.loadedTypes[5] {
		return e.Links, nil
	}
	return nil, &NotLoadedError{edge: "links"}
}

// ActivityLogsOrErr returns the ActivityLogs value or an error if the edge
// was not loaded in eager-loading.
func (e PatientEdges) ActivityLogsOrErr() ([]*ActivityLog, error) {
	if e.loadedTypes[6] {
		return e.ActivityLogs, nil
	}
	return nil, &NotLoadedError{edge: "activity_logs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Patient) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case patient.FieldBalance:
			values[i] = new(sql.NullInt64)
		case patient.FieldCreatedAt, patient.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case patient.FieldID, patient.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Patient fields.
func (_m *Patient) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case patient.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case patient.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case patient.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case patient.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case patient.FieldBalance:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field balance", values[i])
			} else if value.Valid {
				_m.Balance = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Patient.
// This includes values selected through modifiers, order, etc.
func (_m *Patient) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the Patient entity.
func (_m *Patient) QueryUser() *UserQuery {
	return NewPatientClient(_m.config).QueryUser(_m)
}

// QueryGuides queries the "guides" edge of the Patient entity.
func (_m *Patient) QueryGuides() *GuideQuery {
	return NewPatientClient(_m.config).QueryGuides(_m)
}

// QueryFacials queries the "facials" edge of the Patient entity.
func (_m *Patient) QueryFacials() *FacialRecordQuery {
	return NewPatientClient(_m.config).QueryFacials(_m)
}

// QuerySessions queries the "sessions" edge of the Patient entity.
func (_m *Patient) QuerySessions() *SessionQuery {
	return NewPatientClient(_m.config).QuerySessions(_m)
}

// QueryReferences queries the "references" edge of the Patient entity.
func (_m *Patient) QueryReferences() *PsychologistReferenceQuery {
	return NewPatientClient(_m.config).QueryReferences(_m)
}

// QueryLinks queries the "links" edge of the Patient entity.
func (_m *Patient) QueryLinks() *PatientPsychologistLinkQuery {
	return NewPatientClient(_m.config).QueryLinks(_m)
}

// QueryActivityLogs queries the "activity_logs" edge of the Patient entity.
func (_m *Patient) QueryActivityLogs() *ActivityLogQuery {
	return NewPatientClient(_m.config).QueryActivityLogs(_m)
}

// Update returns a builder for updating this Patient.
// Note that you need to call Patient.Unwrap() before calling this method if this Patient
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Patient) Update() *PatientUpdateOne {
	return NewPatientClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Patient entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Patient) Unwrap() *Patient {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Patient is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Patient) String() string {
	var builder strings.Builder
	builder.WriteString("Patient(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("balance=")
	builder.WriteString(fmt.Sprintf("%v", _m.Balance))
	builder.WriteByte(')')
	return builder.String()
}

// Patients is a parsable slice of Patient.
type Patients []*Patient
