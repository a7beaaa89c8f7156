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

// PsychologistReferenceUpdate is the builder for updating PsychologistReference entities.
type PsychologistReferenceUpdate struct {
	config
	hooks    []Hook
	mutation *PsychologistReferenceMutation
}

// Where appends a list predicates to the PsychologistReferenceUpdate builder.
func (_u *PsychologistReferenceUpdate) Where(ps ...predicate.PsychologistReference) *PsychologistReferenceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PsychologistReferenceUpdate) SetUpdatedAt(v time.Time) *PsychologistReferenceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *PsychologistReferenceUpdate) SetPatientID(v uuid.UUID) *PsychologistReferenceUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *PsychologistReferenceUpdate) SetNillablePatientID(v *uuid.UUID) *PsychologistReferenceUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *PsychologistReferenceUpdate) SetName(v string) *PsychologistReferenceUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PsychologistReferenceUpdate) SetNillableName(v *string) *PsychologistReferenceUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetLinkedPsychologistID sets the "linked_psychologist_id" field.
func (_u *PsychologistReferenceUpdate) SetLinkedPsychologistID(v uuid.UUID) *PsychologistReferenceUpdate {
	_u.mutation.SetLinkedPsychologistID(v)
	return _u
}

// SetNillableLinkedPsychologistID sets the "linked_psychologist_id" field if the given value is not nil.
func (_u *PsychologistReferenceUpdate) SetNillableLinkedPsychologistID(v *uuid.UUID) *PsychologistReferenceUpdate {
	if v != nil {
		_u.SetLinkedPsychologistID(*v)
	}
	return _u
}

// ClearLinkedPsychologistID clears the value of the "linked_psychologist_id" field.
func (_u *PsychologistReferenceUpdate) ClearLinkedPsychologistID() *PsychologistReferenceUpdate {
	_u.mutation.ClearLinkedPsychologistID()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *PsychologistReferenceUpdate) SetPatient(v *Patient) *PsychologistReferenceUpdate {
	return _u.SetPatientID(v.ID)
}

// SetLinkedPsychologist sets the "linked_psychologist" edge to the Psychologist entity.
func (_u *PsychologistReferenceUpdate) SetLinkedPsychologist(v *Psychologist) *PsychologistReferenceUpdate {
	return _u.SetLinkedPsychologistID(v.ID)
}

// AddSessionIDs adds the "sessions" edge to the Session entity by IDs.
func (_u *PsychologistReferenceUpdate) AddSessionIDs(ids ...uuid.UUID) *PsychologistReferenceUpdate {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the Session entity.
func (_u *PsychologistReferenceUpdate) AddSessions(v ...*Session) *PsychologistReferenceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// Mutation returns the PsychologistReferenceMutation object of the builder.
func (_u *PsychologistReferenceUpdate) Mutation() *PsychologistReferenceMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *PsychologistReferenceUpdate) ClearPatient() *PsychologistReferenceUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// ClearLinkedPsychologist clears the "linked_psychologist" edge to the Psychologist entity.
func (_u *PsychologistReferenceUpdate) ClearLinkedPsychologist() *PsychologistReferenceUpdate {
	_u.mutation.ClearLinkedPsychologist()
	return _u
}

// ClearSessions clears all "sessions" edges to the Session entity.
func (_u *PsychologistReferenceUpdate) ClearSessions() *PsychologistReferenceUpdate {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to Session entities by IDs.
func (_u *PsychologistReferenceUpdate) RemoveSessionIDs(ids ...uuid.UUID) *PsychologistReferenceUpdate {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to Session entities.
func (_u *PsychologistReferenceUpdate) RemoveSessions(v ...*Session) *PsychologistReferenceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PsychologistReferenceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PsychologistReferenceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PsychologistReferenceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PsychologistReferenceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PsychologistReferenceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := psychologistreference.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PsychologistReferenceUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := psychologistreference.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "PsychologistReference.name": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PsychologistReference.patient"`)
	}
	return nil
}

func (_u *PsychologistReferenceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(psychologistreference.Table, psychologistreference.Columns, sqlgraph.NewFieldSpec(psychologistreference.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(psychologistreference.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(psychologistreference.FieldName, field.TypeString, value)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   psychologistreference.PatientTable,
			Columns: []string{psychologistreference.PatientColumn},
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
			Table:   psychologistreference.PatientTable,
			Columns: []string{psychologistreference.PatientColumn},
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
	if _u.mutation.LinkedPsychologistCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   psychologistreference.LinkedPsychologistTable,
			Columns: []string{psychologistreference.LinkedPsychologistColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(psychologist.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LinkedPsychologistIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   psychologistreference.LinkedPsychologistTable,
			Columns: []string{psychologistreference.LinkedPsychologistColumn},
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
	if _u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   psychologistreference.SessionsTable,
			Columns: []string{psychologistreference.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   psychologistreference.SessionsTable,
			Columns: []string{psychologistreference.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   psychologistreference.SessionsTable,
			Columns: []string{psychologistreference.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{psychologistreference.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PsychologistReferenceUpdateOne is the builder for updating a single PsychologistReference entity.
type PsychologistReferenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PsychologistReferenceMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PsychologistReferenceUpdateOne) SetUpdatedAt(v time.Time) *PsychologistReferenceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *PsychologistReferenceUpdateOne) SetPatientID(v uuid.UUID) *PsychologistReferenceUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *PsychologistReferenceUpdateOne) SetNillablePatientID(v *uuid.UUID) *PsychologistReferenceUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *PsychologistReferenceUpdateOne) SetName(v string) *PsychologistReferenceUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PsychologistReferenceUpdateOne) SetNillableName(v *string) *PsychologistReferenceUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetLinkedPsychologistID sets the "linked_psychologist_id" field.
func (_u *PsychologistReferenceUpdateOne) SetLinkedPsychologistID(v uuid.UUID) *PsychologistReferenceUpdateOne {
	_u.mutation.SetLinkedPsychologistID(v)
	return _u
}

// SetNillableLinkedPsychologistID sets the "linked_psychologist_id" field if the given value is not nil.
func (_u *PsychologistReferenceUpdateOne) SetNillableLinkedPsychologistID(v *uuid.UUID) *PsychologistReferenceUpdateOne {
	if v != nil {
		_u.SetLinkedPsychologistID(*v)
	}
	return _u
}

// ClearLinkedPsychologistID clears the value of the "linked_psychologist_id" field.
func (_u *PsychologistReferenceUpdateOne) ClearLinkedPsychologistID() *PsychologistReferenceUpdateOne {
	_u.mutation.ClearLinkedPsychologistID()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *PsychologistReferenceUpdateOne) SetPatient(v *Patient) *PsychologistReferenceUpdateOne {
	return _u.SetPatientID(v.ID)
}

// SetLinkedPsychologist sets the "linked_psychologist" edge to the Psychologist entity.
func (_u *PsychologistReferenceUpdateOne) SetLinkedPsychologist(v *Psychologist) *PsychologistReferenceUpdateOne {
	return _u.SetLinkedPsychologistID(v.ID)
}

// AddSessionIDs adds the "sessions" edge to the Session entity by IDs.
func (_u *PsychologistReferenceUpdateOne) AddSessionIDs(ids ...uuid.UUID) *PsychologistReferenceUpdateOne {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the Session entity.
func (_u *PsychologistReferenceUpdateOne) AddSessions(v ...*Session) *PsychologistReferenceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// Mutation returns the PsychologistReferenceMutation object of the builder.
func (_u *PsychologistReferenceUpdateOne) Mutation() *PsychologistReferenceMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *PsychologistReferenceUpdateOne) ClearPatient() *PsychologistReferenceUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// ClearLinkedPsychologist clears the "linked_psychologist" edge to the Psychologist entity.
func (_u *PsychologistReferenceUpdateOne) ClearLinkedPsychologist() *PsychologistReferenceUpdateOne {
	_u.mutation.ClearLinkedPsychologist()
	return _u
}

// ClearSessions clears all "sessions" edges to the Session entity.
func (_u *PsychologistReferenceUpdateOne) ClearSessions() *PsychologistReferenceUpdateOne {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to Session entities by IDs.
func (_u *PsychologistReferenceUpdateOne) RemoveSessionIDs(ids ...uuid.UUID) *PsychologistReferenceUpdateOne {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to Session entities.
func (_u *PsychologistReferenceUpdateOne) RemoveSessions(v ...*Session) *PsychologistReferenceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// Where appends a list predicates to the PsychologistReferenceUpdate builder.
func (_u *PsychologistReferenceUpdateOne) Where(ps ...predicate.PsychologistReference) *PsychologistReferenceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PsychologistReferenceUpdateOne) Select(field string, fields ...string) *PsychologistReferenceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PsychologistReference entity.
func (_u *PsychologistReferenceUpdateOne) Save(ctx context.Context) (*PsychologistReference, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PsychologistReferenceUpdateOne) SaveX(ctx context.Context) *PsychologistReference {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PsychologistReferenceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PsychologistReferenceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PsychologistReferenceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := psychologistreference.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PsychologistReferenceUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := psychologistreference.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "PsychologistReference.name": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PsychologistReference.patient"`)
	}
	return nil
}

func (_u *PsychologistReferenceUpdateOne) sqlSave(ctx context.Context) (_node *PsychologistReference, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(psychologistreference.Table, psychologistreference.Columns, sqlgraph.NewFieldSpec(psychologistreference.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "PsychologistReference.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, psychologistreference.FieldID)
		for _, f := range fields {
			if !psychologistreference.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != psychologistreference.FieldID {
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
		_spec.SetField(psychologistreference.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(psychologistreference.FieldName, field.TypeString, value)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   psychologistreference.PatientTable,
			Columns: []string{psychologistreference.PatientColumn},
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
			Table:   psychologistreference.PatientTable,
			Columns: []string{psychologistreference.PatientColumn},
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
	if _u.mutation.LinkedPsychologistCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   psychologistreference.LinkedPsychologistTable,
			Columns: []string{psychologistreference.LinkedPsychologistColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(psychologist.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LinkedPsychologistIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   psychologistreference.LinkedPsychologistTable,
			Columns: []string{psychologistreference.LinkedPsychologistColumn},
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
	if _u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   psychologistreference.SessionsTable,
			Columns: []string{psychologistreference.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   psychologistreference.SessionsTable,
			Columns: []string{psychologistreference.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   psychologistreference.SessionsTable,
			Columns: []string{psychologistreference.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PsychologistReference{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{psychologistreference.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
