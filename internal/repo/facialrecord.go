// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/credvia/credvia_backend/internal/repo/facialrecord"
	"github.com/credvia/credvia_backend/internal/repo/guide"
	"github.com/credvia/credvia_backend/internal/repo/patient"
	"github.com/google/uuid"
)

// FacialRecord is the model entity for the FacialRecord schema.
type FacialRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// PatientID holds the value of the "patient_id" field.
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// GuideID holds the value of the "guide_id" field.
	GuideID uuid.UUID `json:"guide_id,omitempty"`
	// PerformedAt holds the value of the "performed_at" field.
	PerformedAt time.Time `json:"performed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FacialRecordQuery when eager-loading is set.
	Edges        FacialRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FacialRecordEdges holds the relations/edges for other nodes in the graph.
type FacialRecordEdges struct {
	// Patient holds the value of the patient edge.
	Patient *Patient `json:"patient,omitempty"`
	// Guide holds the value of the guide edge.
	Guide *Guide `json:"guide,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PatientOrErr returns the Patient value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FacialRecordEdges) PatientOrErr() (*Patient, error) {
	if e.Patient != nil {
		return e.Patient, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: patient.Label}
	}
	return nil, &NotLoadedError{edge: "patient"}
}

// GuideOrErr returns the Guide value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FacialRecordEdges) GuideOrErr() (*Guide, error) {
	if e.Guide != nil {
		return e.Guide, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: guide.Label}
	}
	return nil, &NotLoadedError{edge: "guide"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FacialRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case facialrecord.FieldCreatedAt, facialrecord.FieldPerformedAt:
			values[i] = new(sql.NullTime)
		case facialrecord.FieldID, facialrecord.FieldPatientID, facialrecord.FieldGuideID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FacialRecord fields.
func (_m *FacialRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case facialrecord.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case facialrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case facialrecord.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case facialrecord.FieldGuideID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field guide_id", values[i])
			} else if value != nil {
				_m.GuideID = *value
			}
		case facialrecord.FieldPerformedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field performed_at", values[i])
			} else if value.Valid {
				_m.PerformedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FacialRecord.
// This includes values selected through modifiers, order, etc.
func (_m *FacialRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPatient queries the "patient" edge of the FacialRecord entity.
func (_m *FacialRecord) QueryPatient() *PatientQuery {
	return NewFacialRecordClient(_m.config).QueryPatient(_m)
}

// QueryGuide queries the "guide" edge of the FacialRecord entity.
func (_m *FacialRecord) QueryGuide() *GuideQuery {
	return NewFacialRecordClient(_m.config).QueryGuide(_m)
}

// Update returns a builder for updating this FacialRecord.
// Note that you need to call FacialRecord.Unwrap() before calling this method if this FacialRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FacialRecord) Update() *FacialRecordUpdateOne {
	return NewFacialRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FacialRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FacialRecord) Unwrap() *FacialRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: FacialRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FacialRecord) String() string {
	var builder strings.Builder
	builder.WriteString("FacialRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	builder.WriteString("guide_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.GuideID))
	builder.WriteString(", ")
	builder.WriteString("performed_at=")
	builder.WriteString(_m.PerformedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FacialRecords is a parsable slice of FacialRecord.
type FacialRecords []*FacialRecord
