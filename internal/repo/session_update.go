// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/credvia/credvia_backend/internal/repo/patient"
	"github.com/credvia/credvia_backend/internal/repo/predicate"
	"github.com/credvia/credvia_backend/internal/repo/psychologist"
	"github.com/credvia/credvia_backend/internal/repo/psychologistreference"
	"github.com/credvia/credvia_backend/internal/repo/session"
	"github.com/google/uuid"
)

// SessionUpdate is the builder for updating Session entities.
type SessionUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdate) Where(ps ...predicate.Session) *SessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionUpdate) SetUpdatedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *SessionUpdate) SetPatientID(v uuid.UUID) *SessionUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillablePatientID(v *uuid.UUID) *SessionUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetPsychologistID sets the "psychologist_id" field.
func (_u *SessionUpdate) SetPsychologistID(v uuid.UUID) *SessionUpdate {
	_u.mutation.SetPsychologistID(v)
	return _u
}

// SetNillablePsychologistID sets the "psychologist_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillablePsychologistID(v *uuid.UUID) *SessionUpdate {
	if v != nil {
		_u.SetPsychologistID(*v)
	}
	return _u
}

// ClearPsychologistID clears the value of the "psychologist_id" field.
func (_u *SessionUpdate) ClearPsychologistID() *SessionUpdate {
	_u.mutation.ClearPsychologistID()
	return _u
}

// SetReferenceID sets the "reference_id" field.
func (_u *SessionUpdate) SetReferenceID(v uuid.UUID) *SessionUpdate {
	_u.mutation.SetReferenceID(v)
	return _u
}

// SetNillableReferenceID sets the "reference_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableReferenceID(v *uuid.UUID) *SessionUpdate {
	if v != nil {
		_u.SetReferenceID(*v)
	}
	return _u
}

// ClearReferenceID clears the value of the "reference_id" field.
func (_u *SessionUpdate) ClearReferenceID() *SessionUpdate {
	_u.mutation.ClearReferenceID()
	return _u
}

// SetScheduledAt sets the "scheduled_at" field.
func (_u *SessionUpdate) SetScheduledAt(v time.Time) *SessionUpdate {
	_u.mutation.SetScheduledAt(v)
	return _u
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableScheduledAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetScheduledAt(*v)
	}
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *SessionUpdate) SetDurationMinutes(v int) *SessionUpdate {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableDurationMinutes(v *int) *SessionUpdate {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *SessionUpdate) AddDurationMinutes(v int) *SessionUpdate {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetCreditsUsed sets the "credits_used" field.
func (_u *SessionUpdate) SetCreditsUsed(v int) *SessionUpdate {
	_u.mutation.ResetCreditsUsed()
	_u.mutation.SetCreditsUsed(v)
	return _u
}

// SetNillableCreditsUsed sets the "credits_used" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableCreditsUsed(v *int) *SessionUpdate {
	if v != nil {
		_u.SetCreditsUsed(*v)
	}
	return _u
}

// AddCreditsUsed adds value to the "credits_used" field.
func (_u *SessionUpdate) AddCreditsUsed(v int) *SessionUpdate {
	_u.mutation.AddCreditsUsed(v)
	return _u
}

// SetRegisteredBy sets the "registered_by" field.
func (_u *SessionUpdate) SetRegisteredBy(v session.RegisteredBy) *SessionUpdate {
	_u.mutation.SetRegisteredBy(v)
	return _u
}

// SetNillableRegisteredBy sets the "registered_by" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableRegisteredBy(v *session.RegisteredBy) *SessionUpdate {
	if v != nil {
		_u.SetRegisteredBy(*v)
	}
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *SessionUpdate) SetPatient(v *Patient) *SessionUpdate {
	return _u.SetPatientID(v.ID)
}

// SetPsychologist sets the "psychologist" edge to the Psychologist entity.
func (_u *SessionUpdate) SetPsychologist(v *Psychologist) *SessionUpdate {
	return _u.SetPsychologistID(v.ID)
}

// SetReference sets the "reference" edge to the PsychologistReference entity.
func (_u *SessionUpdate) SetReference(v *PsychologistReference) *SessionUpdate {
	return _u.SetReferenceID(v.ID)
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdate) Mutation() *SessionMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *SessionUpdate) ClearPatient() *SessionUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// ClearPsychologist clears the "psychologist" edge to the Psychologist entity.
func (_u *SessionUpdate) ClearPsychologist() *SessionUpdate {
	_u.mutation.ClearPsychologist()
	return _u
}

// ClearReference clears the "reference" edge to the PsychologistReference entity.
func (_u *SessionUpdate) ClearReference() *SessionUpdate {
	_u.mutation.ClearReference()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := session.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdate) check() error {
	if v, ok := _u.mutation.CreditsUsed(); ok {
		if err := session.CreditsUsedValidator(v); err != nil {
			return &ValidationError{Name: "credits_used", err: fmt.Errorf(`repo: validator failed for field "Session.credits_used": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RegisteredBy(); ok {
		if err := session.RegisteredByValidator(v); err != nil {
			return &ValidationError{Name: "registered_by", err: fmt.Errorf(`repo: validator failed for field "Session.registered_by": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Session.patient"`)
	}
	return nil
}

func (_u *SessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ScheduledAt(); ok {
		_spec.SetField(session.FieldScheduledAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(session.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(session.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreditsUsed(); ok {
		_spec.SetField(session.FieldCreditsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCreditsUsed(); ok {
		_spec.AddField(session.FieldCreditsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RegisteredBy(); ok {
		_spec.SetField(session.FieldRegisteredBy, field.TypeEnum, value)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.PatientTable,
			Columns: []string{session.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.PatientTable,
			Columns: []string{session.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PsychologistCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.PsychologistTable,
			Columns: []string{session.PsychologistColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(psychologist.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PsychologistIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.PsychologistTable,
			Columns: []string{session.PsychologistColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(psychologist.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReferenceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.ReferenceTable,
			Columns: []string{session.ReferenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(psychologistreference.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReferenceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.ReferenceTable,
			Columns: []string{session.ReferenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(psychologistreference.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionUpdateOne is the builder for updating a single Session entity.
type SessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionUpdateOne) SetUpdatedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *SessionUpdateOne) SetPatientID(v uuid.UUID) *SessionUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillablePatientID(v *uuid.UUID) *SessionUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetPsychologistID sets the "psychologist_id" field.
func (_u *SessionUpdateOne) SetPsychologistID(v uuid.UUID) *SessionUpdateOne {
	_u.mutation.SetPsychologistID(v)
	return _u
}

// SetNillablePsychologistID sets the "psychologist_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillablePsychologistID(v *uuid.UUID) *SessionUpdateOne {
	if v != nil {
		_u.SetPsychologistID(*v)
	}
	return _u
}

// ClearPsychologistID clears the value of the "psychologist_id" field.
func (_u *SessionUpdateOne) ClearPsychologistID() *SessionUpdateOne {
	_u.mutation.ClearPsychologistID()
	return _u
}

// SetReferenceID sets the "reference_id" field.
func (_u *SessionUpdateOne) SetReferenceID(v uuid.UUID) *SessionUpdateOne {
	_u.mutation.SetReferenceID(v)
	return _u
}

// SetNillableReferenceID sets the "reference_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableReferenceID(v *uuid.UUID) *SessionUpdateOne {
	if v != nil {
		_u.SetReferenceID(*v)
	}
	return _u
}

// ClearReferenceID clears the value of the "reference_id" field.
func (_u *SessionUpdateOne) ClearReferenceID() *SessionUpdateOne {
	_u.mutation.ClearReferenceID()
	return _u
}

// SetScheduledAt sets the "scheduled_at" field.
func (_u *SessionUpdateOne) SetScheduledAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetScheduledAt(v)
	return _u
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableScheduledAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetScheduledAt(*v)
	}
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *SessionUpdateOne) SetDurationMinutes(v int) *SessionUpdateOne {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableDurationMinutes(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *SessionUpdateOne) AddDurationMinutes(v int) *SessionUpdateOne {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetCreditsUsed sets the "credits_used" field.
func (_u *SessionUpdateOne) SetCreditsUsed(v int) *SessionUpdateOne {
	_u.mutation.ResetCreditsUsed()
	_u.mutation.SetCreditsUsed(v)
	return _u
}

// SetNillableCreditsUsed sets the "credits_used" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableCreditsUsed(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetCreditsUsed(*v)
	}
	return _u
}

// AddCreditsUsed adds value to the "credits_used" field.
func (_u *SessionUpdateOne) AddCreditsUsed(v int) *SessionUpdateOne {
	_u.mutation.AddCreditsUsed(v)
	return _u
}

// SetRegisteredBy sets the "registered_by" field.
func (_u *SessionUpdateOne) SetRegisteredBy(v session.RegisteredBy) *SessionUpdateOne {
	_u.mutation.SetRegisteredBy(v)
	return _u
}

// SetNillableRegisteredBy sets the "registered_by" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableRegisteredBy(v *session.RegisteredBy) *SessionUpdateOne {
	if v != nil {
		_u.SetRegisteredBy(*v)
	}
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *SessionUpdateOne) SetPatient(v *Patient) *SessionUpdateOne {
	return _u.SetPatientID(v.ID)
}

// SetPsychologist sets the "psychologist" edge to the Psychologist entity.
func (_u *SessionUpdateOne) SetPsychologist(v *Psychologist) *SessionUpdateOne {
	return _u.SetPsychologistID(v.ID)
}

// SetReference sets the "reference" edge to the PsychologistReference entity.
func (_u *SessionUpdateOne) SetReference(v *PsychologistReference) *SessionUpdateOne {
	return _u.SetReferenceID(v.ID)
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdateOne) Mutation() *SessionMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *SessionUpdateOne) ClearPatient() *SessionUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// ClearPsychologist clears the "psychologist" edge to the Psychologist entity.
func (_u *SessionUpdateOne) ClearPsychologist() *SessionUpdateOne {
	_u.mutation.ClearPsychologist()
	return _u
}

// ClearReference clears the "reference" edge to the PsychologistReference entity.
func (_u *SessionUpdateOne) ClearReference() *SessionUpdateOne {
	_u.mutation.ClearReference()
	return _u
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdateOne) Where(ps ...predicate.Session) *SessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionUpdateOne) Select(field string, fields ...string) *SessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Session entity.
func (_u *SessionUpdateOne) Save(ctx context.Context) (*Session, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdateOne) SaveX(ctx context.Context) *Session {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := session.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdateOne) check() error {
	if v, ok := _u.mutation.CreditsUsed(); ok {
		if err := session.CreditsUsedValidator(v); err != nil {
			return &ValidationError{Name: "credits_used", err: fmt.Errorf(`repo: validator failed for field "Session.credits_used": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RegisteredBy(); ok {
		if err := session.RegisteredByValidator(v); err != nil {
			return &ValidationError{Name: "registered_by", err: fmt.Errorf(`repo: validator failed for field "Session.registered_by": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Session.patient"`)
	}
	return nil
}

func (_u *SessionUpdateOne) sqlSave(ctx context.Context) (_node *Session, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Session.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, session.FieldID)
		for _, f := range fields {
			if !session.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != session.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ScheduledAt(); ok {
		_spec.SetField(session.FieldScheduledAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(session.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(session.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreditsUsed(); ok {
		_spec.SetField(session.FieldCreditsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCreditsUsed(); ok {
		_spec.AddField(session.FieldCreditsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RegisteredBy(); ok {
		_spec.SetField(session.FieldRegisteredBy, field.TypeEnum, value)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.PatientTable,
			Columns: []string{session.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.PatientTable,
			Columns: []string{session.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PsychologistCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.PsychologistTable,
			Columns: []string{session.PsychologistColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(psychologist.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PsychologistIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.PsychologistTable,
			Columns: []string{session.PsychologistColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(psychologist.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReferenceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.ReferenceTable,
			Columns: []string{session.ReferenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(psychologistreference.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReferenceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.ReferenceTable,
			Columns: []string{session.ReferenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(psychologistreference.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Session{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
