// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/credvia/credvia_backend/internal/repo/patient"
	"github.com/credvia/credvia_backend/internal/repo/patientpsychologistlink"
	"github.com/credvia/credvia_backend/internal/repo/psychologist"
	"github.com/google/uuid"
)

// PatientPsychologistLink is the model entity for the PatientPsychologistLink schema.
type PatientPsychologistLink struct {
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
	PsychologistID uuid.UUID `json:"psychologist_id,omitempty"`
	// Status holds the value of the "status" field.
	Status patientpsychologistlink.Status `json:"status,omitempty"`
	// RequestedBy holds the value of the "requested_by" field.
	RequestedBy patientpsychologistlink.RequestedBy `json:"requested_by,omitempty"`
	// RespondedAt holds the value of the "responded_at" field.
	RespondedAt *time.Time `json:"responded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PatientPsychologistLinkQuery when eager-loading is set.
	Edges        PatientPsychologistLinkEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PatientPsychologistLinkEdges holds the relations/edges for other nodes in the graph.
type PatientPsychologistLinkEdges struct {
	// Patient holds the value of the patient edge.
	Patient *Patient `json:"patient,omitempty"`
	// Psychologist holds the value of the psychologist edge.
	Psychologist *Psychologist `json:"psychologist,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PatientOrErr returns the Patient value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PatientPsychologistLinkEdges) PatientOrErr() (*Patient, error) {
	if e.Patient != nil {
		return e.Patient, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: patient.Label}
	}
	return nil, &NotLoadedError{edge: "patient"}
}

// PsychologistOrErr returns the Psychologist value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PatientPsychologistLinkEdges) PsychologistOrErr() (*Psychologist, error) {
	if e.Psychologist != nil {
		return e.Psychologist, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: psychologist.Label}
	}
	return nil, &NotLoadedError{edge: "psychologist"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PatientPsychologistLink) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case patientpsychologistlink.FieldStatus, patientpsychologistlink.FieldRequestedBy:
			values[i] = new(sql.NullString)
		case patientpsychologistlink.FieldCreatedAt, patientpsychologistlink.FieldUpdatedAt, patientpsychologistlink.FieldRespondedAt:
			values[i] = new(sql.NullTime)
		case patientpsychologistlink.FieldID, patientpsychologistlink.FieldPatientID, patientpsychologistlink.FieldPsychologistID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PatientPsychologistLink fields.
func (_m *PatientPsychologistLink) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case patientpsychologistlink.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case patientpsychologistlink.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case patientpsychologistlink.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case patientpsychologistlink.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case patientpsychologistlink.FieldPsychologistID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field psychologist_id", values[i])
			} else if value != nil {
				_m.PsychologistID = *value
			}
		case patientpsychologistlink.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = patientpsychologistlink.Status(value.String)
			}
		case patientpsychologistlink.FieldRequestedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field requested_by", values[i])
			} else if value.Valid {
				_m.RequestedBy = patientpsychologistlink.RequestedBy(value.String)
			}
		case patientpsychologistlink.FieldRespondedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field responded_at", values[i])
			} else if value.Valid {
				_m.RespondedAt = new(time.Time)
				*_m.RespondedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PatientPsychologistLink.
// This includes values selected through modifiers, order, etc.
func (_m *PatientPsychologistLink) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPatient queries the "patient" edge of the PatientPsychologistLink entity.
func (_m *PatientPsychologistLink) QueryPatient() *PatientQuery {
	return NewPatientPsychologistLinkClient(_m.config).QueryPatient(_m)
}

// QueryPsychologist queries the "psychologist" edge of the PatientPsychologistLink entity.
func (_m *PatientPsychologistLink) QueryPsychologist() *PsychologistQuery {
	return NewPatientPsychologistLinkClient(_m.config).QueryPsychologist(_m)
}

// Update returns a builder for updating this PatientPsychologistLink.
// Note that you need to call PatientPsychologistLink.Unwrap() before calling this method if this PatientPsychologistLink
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PatientPsychologistLink) Update() *PatientPsychologistLinkUpdateOne {
	return NewPatientPsychologistLinkClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PatientPsychologistLink entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PatientPsychologistLink) Unwrap() *PatientPsychologistLink {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: PatientPsychologistLink is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PatientPsychologistLink) String() string {
	var builder strings.Builder
	builder.WriteString("PatientPsychologistLink(")
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
	builder.WriteString("psychologist_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PsychologistID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("requested_by=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequestedBy))
	builder.WriteString(", ")
	if v := _m.RespondedAt; v != nil {
		builder.WriteString("responded_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// PatientPsychologistLinks is a parsable slice of PatientPsychologistLink.
type PatientPsychologistLinks []*PatientPsychologistLink
