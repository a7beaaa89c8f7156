// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/credvia/credvia_backend/internal/repo/psychologist"
	"github.com/credvia/credvia_backend/internal/repo/user"
	"github.com/google/uuid"
)

// Psychologist is the model entity for the Psychologist schema.
type Psychologist struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → users.id
	UserID uuid.UUID `json:"user_id,omitempty"`
	// Professional registration number
	Crp *string `json:"crp,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PsychologistQuery when eager-loading is set.
	Edges        PsychologistEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PsychologistEdges holds the relations/edges for other nodes in the graph.
type PsychologistEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// Sessions holds the value of the sessions edge.
	Sessions []*Session `json:"sessions,omitempty"`
	// Links holds the value of the links edge.
	Links []*PatientPsychologistLink `json:"links,omitempty"`
	// LinkedReferences holds the value of the linked_references edge.
	LinkedReferences []*PsychologistReference `json:"linked_references,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PsychologistEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// SessionsOrErr returns the Sessions value or an error if the edge
// was not loaded in eager-loading.
func (e PsychologistEdges) SessionsOrErr() ([]*Session, error) {
	if e.loadedTypes[1] {
		return e.Sessions, nil
	}
	return nil, &NotLoadedError{edge: "sessions"}
}

// LinksOrErr returns the Links value or an error if the edge
// was not loaded in eager-loading.
func (e PsychologistEdges) LinksOrErr() ([]*PatientPsychologistLink, error) {
	if e.loadedTypes[2] {
		return e.Links, nil
	}
	return nil, &NotLoadedError{edge: "links"}
}

// LinkedReferencesOrErr returns the LinkedReferences value or an error if the edge
// was not loaded in eager-loading.
func (e PsychologistEdges) LinkedReferencesOrErr() ([]*PsychologistReference, error) {
	if e.loadedTypes[3] {
		return e.LinkedReferences, nil
	}
	return nil, &NotLoadedError{edge: "linked_references"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Psychologist) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case psychologist.FieldCrp:
			values[i] = new(sql.NullString)
		case psychologist.FieldCreatedAt, psychologist.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case psychologist.FieldID, psychologist.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Psychologist fields.
func (_m *Psychologist) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case psychologist.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case psychologist.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case psychologist.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case psychologist.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case psychologist.FieldCrp:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field crp", values[i])
			} else if value.Valid {
				_m.Crp = new(string)
				*_m.Crp = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Psychologist.
// This includes values selected through modifiers, order, etc.
func (_m *Psychologist) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the Psychologist entity.
func (_m *Psychologist) QueryUser() *UserQuery {
	return NewPsychologistClient(_m.config).QueryUser(_m)
}

// QuerySessions queries the "sessions" edge of the Psychologist entity.
func (_m *Psychologist) QuerySessions() *SessionQuery {
	return NewPsychologistClient(_m.config).QuerySessions(_m)
}

// QueryLinks queries the "links" edge of the Psychologist entity.
func (_m *Psychologist) QueryLinks() *PatientPsychologistLinkQuery {
	return NewPsychologistClient(_m.config).QueryLinks(_m)
}

// QueryLinkedReferences queries the "linked_references" edge of the Psychologist entity.
func (_m *Psychologist) QueryLinkedReferences() *PsychologistReferenceQuery {
	return NewPsychologistClient(_m.config).QueryLinkedReferences(_m)
}

// Update returns a builder for updating this Psychologist.
// Note that you need to call Psychologist.Unwrap() before calling this method if this Psychologist
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Psychologist) Update() *PsychologistUpdateOne {
	return NewPsychologistClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Psychologist entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Psychologist) Unwrap() *Psychologist {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Psychologist is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Psychologist) String() string {
	var builder strings.Builder
	builder.WriteString("Psychologist(")
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
	if v := _m.Crp; v != nil {
		builder.WriteString("crp=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Psychologists is a parsable slice of Psychologist.
type Psychologists []*Psychologist
