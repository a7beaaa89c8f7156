// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/credvia/credvia_backend/internal/repo/company"
	"github.com/credvia/credvia_backend/internal/repo/guide"
	"github.com/credvia/credvia_backend/internal/repo/patient"
	"github.com/google/uuid"
)

// Guide is the model entity for the Guide schema.
type Guide struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// PatientID holds the value of the "patient_id" field.
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// CompanyID holds the value of the "company_id" field.
	CompanyID uuid.UUID `json:"company_id,omitempty"`
	// Insurer-issued guide number, unique per patient
	Number string `json:"number,omitempty"`
	// TotalCredits holds the value of the "total_credits" field.
	TotalCredits int `json:"total_credits,omitempty"`
	// UsedCredits holds the value of the "used_credits" field.
	UsedCredits int `json:"used_credits,omitempty"`
	// ExpirationDate holds the value of the "expiration_date" field.
	ExpirationDate time.Time `json:"expiration_date,omitempty"`
	// Status holds the value of the "status" field.
	Status guide.Status `json:"status,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GuideQuery when eager-loading is set.
	Edges        GuideEdges `json:"edges"`
	selectValues sql.SelectValues
}

// GuideEdges holds the relations/edges for other nodes in the graph.
type GuideEdges struct {
	// Patient holds the value of the patient edge.
	Patient *Patient `json:"patient,omitempty"`
	// Company holds the value of the company edge.
	Company *Company `json:"company,omitempty"`
	// Facials holds the value of the facials edge.
	Facials []*FacialRecord `json:"facials,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// PatientOrErr returns the Patient value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GuideEdges) PatientOrErr() (*Patient, error) {
	if e.Patient != nil {
		return e.Patient, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: patient.Label}
	}
	return nil, &NotLoadedError{edge: "patient"}
}

// CompanyOrErr returns the Company value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GuideEdges) CompanyOrErr() (*Company, error) {
	if e.Company != nil {
		return e.Company, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: company.Label}
	}
	return nil, &NotLoadedError{edge: "company"}
}

// FacialsOrErr returns the Facials value or an error if the edge
// was not loaded in eager-loading.
func (e GuideEdges) FacialsOrErr() ([]*FacialRecord, error) {
	if e.loadedTypes[2] {
		return e.Facials, nil
	}
	return nil, &NotLoadedError{edge: "facials"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Guide) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case guide.FieldTotalCredits, guide.FieldUsedCredits:
			values[i] = new(sql.NullInt64)
		case guide.FieldNumber, guide.FieldStatus:
			values[i] = new(sql.NullString)
		case guide.FieldCreatedAt, guide.FieldUpdatedAt, guide.FieldExpirationDate:
			values[i] = new(sql.NullTime)
		case guide.FieldID, guide.FieldPatientID, guide.FieldCompanyID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Guide fields.
func (_m *Guide) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case guide.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case guide.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case guide.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case guide.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case guide.FieldCompanyID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value != nil {
				_m.CompanyID = *value
			}
		case guide.FieldNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field number", values[i])
			} else if value.Valid {
				_m.Number = value.String
			}
		case guide.FieldTotalCredits:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_credits", values[i])
			} else if value.Valid {
				_m.TotalCredits = int(value.Int64)
			}
		case guide.FieldUsedCredits:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field used_credits", values[i])
			} else if value.Valid {
				_m.UsedCredits = int(value.Int64)
			}
		case guide.FieldExpirationDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expiration_date", values[i])
			} else if value.Valid {
				_m.ExpirationDate = value.Time
			}
		case guide.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = guide.Status(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Guide.
// This includes values selected through modifiers, order, etc.
func (_m *Guide) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPatient queries the "patient" edge of the Guide entity.
func (_m *Guide) QueryPatient() *PatientQuery {
	return NewGuideClient(_m.config).QueryPatient(_m)
}

// QueryCompany queries the "company" edge of the Guide entity.
func (_m *Guide) QueryCompany() *CompanyQuery {
	return NewGuideClient(_m.config).QueryCompany(_m)
}

// QueryFacials queries the "facials" edge of the Guide entity.
func (_m *Guide) QueryFacials() *FacialRecordQuery {
	return NewGuideClient(_m.config).QueryFacials(_m)
}

// Update returns a builder for updating this Guide.
// Note that you need to call Guide.Unwrap() before calling this method if this Guide
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Guide) Update() *GuideUpdateOne {
	return NewGuideClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Guide entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Guide) Unwrap() *Guide {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Guide is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Guide) String() string {
	var builder strings.Builder
	builder.WriteString("Guide(")
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
	builder.WriteString("company_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompanyID))
	builder.WriteString(", ")
	builder.WriteString("number=")
	builder.WriteString(_m.Number)
	builder.WriteString(", ")
	builder.WriteString("total_credits=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalCredits))
	builder.WriteString(", ")
	builder.WriteString("used_credits=")
	builder.WriteString(fmt.Sprintf("%v", _m.UsedCredits))
	builder.WriteString(", ")
	builder.WriteString("expiration_date=")
	builder.WriteString(_m.ExpirationDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteByte(')')
	return builder.String()
}

// Guides is a parsable slice of Guide.
type Guides []*Guide
