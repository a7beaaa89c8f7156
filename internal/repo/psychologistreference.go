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
	"github.com/google/uuid"
)

// PsychologistReference is the model entity for the PsychologistReference schema.
type PsychologistReference struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// PatientID holds the value of the "patient_id" field.
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Set when the placeholder is bound to a real account
	LinkedPsychologistID *uuid.UUID `json:"linked_psychologist_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PsychologistReferenceQuery when eager-loading is set.
	Edges        PsychologistReferenceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PsychologistReferenceEdges holds the relations/edges for other nodes in the graph.
type PsychologistReferenceEdges struct {
	// Patient holds the value of the patient edge.
	Patient *Patient `json:"patient,omitempty"`
	// LinkedPsychologist holds the value of the linked_psychologist edge.
	LinkedPsychologist *Psychologist `json:"linked_psychologist,omitempty"`
	// Sessions holds the value of the sessions edge.
	Sessions []*Session `json:"sessions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// PatientOrErr returns the Patient value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PsychologistReferenceEdges) PatientOrErr() (*Patient, error) {
	if e.Patient != nil {
		return e.Patient, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: patient.Label}
	}
	return nil, &NotLoadedError{edge: "patient"}
}

// LinkedPsychologistOrErr returns the LinkedPsychologist value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PsychologistReferenceEdges) LinkedPsychologistOrErr() (*Psychologist, error) {
	if e.LinkedPsychologist != nil {
		return e.LinkedPsychologist, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: psychologist.Label}
	}
	return nil, &NotLoadedError{edge: "linked_psychologist"}
}

// SessionsOrErr returns the Sessions value or an error if the edge
// was not loaded in eager-loading.
func (e PsychologistReferenceEdges) SessionsOrErr() ([]*Session, error) {
	if e.loadedTypes[2] {
		return e.Sessions, nil
	}
	return nil, &NotLoadedError{edge: "sessions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PsychologistReference) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case psychologistreference.FieldLinkedPsychologistID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case psychologistreference.FieldName:
			values[i] = new(sql.NullString)
		case psychologistreference.FieldCreatedAt, psychologistreference.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case psychologistreference.FieldID, psychologistreference.FieldPatientID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PsychologistReference fields.
func (_m *PsychologistReference) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case psychologistreference.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case psychologistreference.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case psychologistreference.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case psychologistreference.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case psychologistreference.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case psychologistreference.FieldLinkedPsychologistID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field linked_psychologist_id", values[i])
			} else if value.Valid {
				_m.LinkedPsychologistID = new(uuid.UUID)
				*_m.LinkedPsychologistID = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PsychologistReference.
// This includes values selected through modifiers, order, etc.
func (_m *PsychologistReference) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPatient queries the "patient" edge of the PsychologistReference entity.
func (_m *PsychologistReference) QueryPatient() *PatientQuery {
	return NewPsychologistReferenceClient(_m.config).QueryPatient(_m)
}

// QueryLinkedPsychologist queries the "linked_psychologist" edge of the PsychologistReference entity.
func (_m *PsychologistReference) QueryLinkedPsychologist() *PsychologistQuery {
	return NewPsychologistReferenceClient(_m.config).QueryLinkedPsychologist(_m)
}

// QuerySessions queries the "sessions" edge of the PsychologistReference entity.
func (_m *PsychologistReference) QuerySessions() *SessionQuery {
	return NewPsychologistReferenceClient(_m.config).QuerySessions(_m)
}

// Update returns a builder for updating this PsychologistReference.
// Note that you need to call PsychologistReference.Unwrap() before calling this method if this PsychologistReference
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PsychologistReference) Update() *PsychologistReferenceUpdateOne {
	return NewPsychologistReferenceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PsychologistReference entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PsychologistReference) Unwrap() *PsychologistReference {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: PsychologistReference is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PsychologistReference) String() string {
	var builder strings.Builder
	builder.WriteString("PsychologistReference(")
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
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.LinkedPsychologistID; v != nil {
		builder.WriteString("linked_psychologist_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// PsychologistReferences is a parsable slice of PsychologistReference.
type PsychologistReferences []*PsychologistReference
