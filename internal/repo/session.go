// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/credvia/credvia_backend/internal/repo/patient"
	"github.com/credvia/credvia_backend/internal/repo/psychologist"
	"github.com/credvia/credvia_backend/internal/repo/psychologistreference"
	"github.com/credvia/credvia_backend/internal/repo/session"
	"github.com/google/uuid"
)

// Session is the model entity for the Session schema.
type Session struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// PatientID holds the value of the "patient_id" field.
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// PsychologistID holds the value of the "psychologist_id" field.
	PsychologistID *uuid.UUID `json:"psychologist_id,omitempty"`
	// ReferenceID holds the value of the "reference_id" field.
	ReferenceID *uuid.UUID `json:"reference_id,omitempty"`
	// ScheduledAt holds the value of the "scheduled_at" field.
	ScheduledAt time.Time `json:"scheduled_at,omitempty"`
	// Session length in minutes; decides the credit cost
	DurationMinutes int `json:"duration_minutes,omitempty"`
	// CreditsUsed holds the value of the "credits_used" field.
	CreditsUsed int `json:"credits_used,omitempty"`
	// RegisteredBy holds the value of the "registered_by" field.
	RegisteredBy session.RegisteredBy `json:"registered_by,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SessionQuery when eager-loading is set.
	Edges        SessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SessionEdges holds the relations/edges for other nodes in the graph.
type SessionEdges struct {
	// Patient holds the value of the patient edge.
	Patient *Patient `json:"patient,omitempty"`
	// Psychologist holds the value of the psychologist edge.
	Psychologist *Psychologist `json:"psychologist,omitempty"`
	// Reference holds the value of the reference edge.
	Reference *PsychologistReference `json:"reference,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// PatientOrErr returns the Patient value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SessionEdges) PatientOrErr() (*Patient, error) {
	if e.Patient != nil {
		return e.Patient, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: patient.Label}
	}
	return nil, &NotLoadedError{edge: "patient"}
}

// PsychologistOrErr returns the Psychologist value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SessionEdges) PsychologistOrErr() (*Psychologist, error) {
	if e.Psychologist != nil {
		return e.Psychologist, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: psychologist.Label}
	}
	return nil, &NotLoadedError{edge: "psychologist"}
}

// ReferenceOrErr returns the Reference value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SessionEdges) ReferenceOrErr() (*PsychologistReference, error) {
	if e.Reference != nil {
		return e.Reference, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: psychologistreference.Label}
	}
	return nil, &NotLoadedError{edge: "reference"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Session) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case session.FieldPsychologistID, session.FieldReferenceID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case session.FieldDurationMinutes, session.FieldCreditsUsed:
			values[i] = new(sql.NullInt64)
		case session.FieldRegisteredBy:
			values[i] = new(sql.NullString)
		case session.FieldCreatedAt, session.FieldUpdatedAt, session.FieldScheduledAt:
			values[i] = new(sql.NullTime)
		case session.FieldID, session.FieldPatientID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Session fields.
func (_m *Session) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case session.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case session.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case session.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case session.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case session.FieldPsychologistID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field psychologist_id", values[i])
			} else if value.Valid {
				_m.PsychologistID = new(uuid.UUID)
				*_m.PsychologistID = *value.S.(*uuid.UUID)
			}
		case session.FieldReferenceID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field reference_id", values[i])
			} else if value.Valid {
				_m.ReferenceID = new(uuid.UUID)
				*_m.ReferenceID = *value.S.(*uuid.UUID)
			}
		case session.FieldScheduledAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field scheduled_at", values[i])
			} else if value.Valid {
				_m.ScheduledAt = value.Time
			}
		case session.FieldDurationMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_minutes", values[i])
			} else if value.Valid {
				_m.DurationMinutes = int(value.Int64)
			}
		case session.FieldCreditsUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field credits_used", values[i])
			} else if value.Valid {
				_m.CreditsUsed = int(value.Int64)
			}
		case session.FieldRegisteredBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field registered_by", values[i])
			} else if value.Valid {
				_m.RegisteredBy = session.RegisteredBy(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Session.
// This includes values selected through modifiers, order, etc.
func (_m *Session) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPatient queries the "patient" edge of the Session entity.
func (_m *Session) QueryPatient() *PatientQuery {
	return NewSessionClient(_m.config).QueryPatient(_m)
}

// QueryPsychologist queries the "psychologist" edge of the Session entity.
func (_m *Session) QueryPsychologist() *PsychologistQuery {
	return NewSessionClient(_m.config).QueryPsychologist(_m)
}

// QueryReference queries the "reference" edge of the Session entity.
func (_m *Session) QueryReference() *PsychologistReferenceQuery {
	return NewSessionClient(_m.config).QueryReference(_m)
}

// Update returns a builder for updating this Session.
// Note that you need to call Session.Unwrap() before calling this method if this Session
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Session) Update() *SessionUpdateOne {
	return NewSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Session entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Session) Unwrap() *Session {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Session is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Session) String() string {
	var builder strings.Builder
	builder.WriteString("Session(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	if v := _m.PsychologistID; v != nil {
		builder.WriteString("psychologist_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ReferenceID; v != nil {
		builder.WriteString("reference_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("scheduled_at=")
	builder.WriteString(_m.ScheduledAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("duration_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMinutes))
	builder.WriteString(", ")
	builder.WriteString("credits_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreditsUsed))
	builder.WriteString(", ")
	builder.WriteString("registered_by=")
	builder.WriteString(fmt.Sprintf("%v", _m.RegisteredBy))
	builder.WriteByte(')')
	return builder.String()
}

// Sessions is a parsable slice of Session.
type Sessions []*Session
