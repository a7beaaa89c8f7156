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
	"github.com/credvia/credvia_backend/internal/repo/patientpsychologistlink"
	"github.com/credvia/credvia_backend/internal/repo/predicate"
	"github.com/credvia/credvia_backend/internal/repo/psychologist"
	"github.com/google/uuid"
)

// PatientPsychologistLinkUpdate is the builder for updating PatientPsychologistLink entities.
type PatientPsychologistLinkUpdate struct {
	config
	hooks    []Hook
	mutation *PatientPsychologistLinkMutation
}

// Where appends a list predicates to the PatientPsychologistLinkUpdate builder.
func (_u *PatientPsychologistLinkUpdate) Where(ps ...predicate.PatientPsychologistLink) *PatientPsychologistLinkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientPsychologistLinkUpdate) SetUpdatedAt(v time.Time) *PatientPsychologistLinkUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *PatientPsychologistLinkUpdate) SetPatientID(v uuid.UUID) *PatientPsychologistLinkUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *PatientPsychologistLinkUpdate) SetNillablePatientID(v *uuid.UUID) *PatientPsychologistLinkUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetPsychologistID sets the "psychologist_id" field.
func (_u *PatientPsychologistLinkUpdate) SetPsychologistID(v uuid.UUID) *PatientPsychologistLinkUpdate {
	_u.mutation.SetPsychologistID(v)
	return _u
}

// SetNillablePsychologistID sets the "psychologist_id" field if the given value is not nil.
func (_u *PatientPsychologistLinkUpdate) SetNillablePsychologistID(v *uuid.UUID) *PatientPsychologistLinkUpdate {
	if v != nil {
		_u.SetPsychologistID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PatientPsychologistLinkUpdate) SetStatus(v patientpsychologistlink.Status) *PatientPsychologistLinkUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PatientPsychologistLinkUpdate) SetNillableStatus(v *patientpsychologistlink.Status) *PatientPsychologistLinkUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRequestedBy sets the "requested_by" field.
func (_u *PatientPsychologistLinkUpdate) SetRequestedBy(v patientpsychologistlink.RequestedBy) *PatientPsychologistLinkUpdate {
	_u.mutation.SetRequestedBy(v)
	return _u
}

// SetNillableRequestedBy sets the "requested_by" field if the given value is not nil.
func (_u *PatientPsychologistLinkUpdate) SetNillableRequestedBy(v *patientpsychologistlink.RequestedBy) *PatientPsychologistLinkUpdate {
	if v != nil {
		_u.SetRequestedBy(*v)
	}
	return _u
}

// SetRespondedAt sets the "responded_at" field.
func (_u *PatientPsychologistLinkUpdate) SetRespondedAt(v time.Time) *PatientPsychologistLinkUpdate {
	_u.mutation.SetRespondedAt(v)
	return _u
}

// SetNillableRespondedAt sets the "responded_at" field if the given value is not nil.
func (_u *PatientPsychologistLinkUpdate) SetNillableRespondedAt(v *time.Time) *PatientPsychologistLinkUpdate {
	if v != nil {
		_u.SetRespondedAt(*v)
	}
	return _u
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (_u *PatientPsychologistLinkUpdate) ClearRespondedAt() *PatientPsychologistLinkUpdate {
	_u.mutation.ClearRespondedAt()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *PatientPsychologistLinkUpdate) SetPatient(v *Patient) *PatientPsychologistLinkUpdate {
	return _u.SetPatientID(v.ID)
}

// SetPsychologist sets the "psychologist" edge to the Psychologist entity.
func (_u *PatientPsychologistLinkUpdate) SetPsychologist(v *Psychologist) *PatientPsychologistLinkUpdate {
	return _u.SetPsychologistID(v.ID)
}

// Mutation returns the PatientPsychologistLinkMutation object of the builder.
func (_u *PatientPsychologistLinkUpdate) Mutation() *PatientPsychologistLinkMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *PatientPsychologistLinkUpdate) ClearPatient() *PatientPsychologistLinkUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// ClearPsychologist clears the "psychologist" edge to the Psychologist entity.
func (_u *PatientPsychologistLinkUpdate) ClearPsychologist() *PatientPsychologistLinkUpdate {
	_u.mutation.ClearPsychologist()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PatientPsychologistLinkUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientPsychologistLinkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PatientPsychologistLinkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientPsychologistLinkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientPsychologistLinkUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patientpsychologistlink.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientPsychologistLinkUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := patientpsychologistlink.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "PatientPsychologistLink.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequestedBy(); ok {
		if err := patientpsychologistlink.RequestedByValidator(v); err != nil {
			return &ValidationError{Name: "requested_by", err: fmt.Errorf(`repo: validator failed for field "PatientPsychologistLink.requested_by": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PatientPsychologistLink.patient"`)
	}
	if _u.mutation.PsychologistCleared() && len(_u.mutation.PsychologistIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PatientPsychologistLink.psychologist"`)
	}
	return nil
}

func (_u *PatientPsychologistLinkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patientpsychologistlink.Table, patientpsychologistlink.Columns, sqlgraph.NewFieldSpec(patientpsychologistlink.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(patientpsychologistlink.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(patientpsychologistlink.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RequestedBy(); ok {
		_spec.SetField(patientpsychologistlink.FieldRequestedBy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RespondedAt(); ok {
		_spec.SetField(patientpsychologistlink.FieldRespondedAt, field.TypeTime, value)
	}
	if _u.mutation.RespondedAtCleared() {
		_spec.ClearField(patientpsychologistlink.FieldRespondedAt, field.TypeTime)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patientpsychologistlink.PatientTable,
			Columns: []string{patientpsychologistlink.PatientColumn},
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
			Table:   patientpsychologistlink.PatientTable,
			Columns: []string{patientpsychologistlink.PatientColumn},
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
			Table:   patientpsychologistlink.PsychologistTable,
			Columns: []string{patientpsychologistlink.PsychologistColumn},
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
			Table:   patientpsychologistlink.PsychologistTable,
			Columns: []string{patientpsychologistlink.PsychologistColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patientpsychologistlink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PatientPsychologistLinkUpdateOne is the builder for updating a single PatientPsychologistLink entity.
type PatientPsychologistLinkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PatientPsychologistLinkMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientPsychologistLinkUpdateOne) SetUpdatedAt(v time.Time) *PatientPsychologistLinkUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *PatientPsychologistLinkUpdateOne) SetPatientID(v uuid.UUID) *PatientPsychologistLinkUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *PatientPsychologistLinkUpdateOne) SetNillablePatientID(v *uuid.UUID) *PatientPsychologistLinkUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetPsychologistID sets the "psychologist_id" field.
func (_u *PatientPsychologistLinkUpdateOne) SetPsychologistID(v uuid.UUID) *PatientPsychologistLinkUpdateOne {
	_u.mutation.SetPsychologistID(v)
	return _u
}

// SetNillablePsychologistID sets the "psychologist_id" field if the given value is not nil.
func (_u *PatientPsychologistLinkUpdateOne) SetNillablePsychologistID(v *uuid.UUID) *PatientPsychologistLinkUpdateOne {
	if v != nil {
		_u.SetPsychologistID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PatientPsychologistLinkUpdateOne) SetStatus(v patientpsychologistlink.Status) *PatientPsychologistLinkUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PatientPsychologistLinkUpdateOne) SetNillableStatus(v *patientpsychologistlink.Status) *PatientPsychologistLinkUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRequestedBy sets the "requested_by" field.
func (_u *PatientPsychologistLinkUpdateOne) SetRequestedBy(v patientpsychologistlink.RequestedBy) *PatientPsychologistLinkUpdateOne {
	_u.mutation.SetRequestedBy(v)
	return _u
}

// SetNillableRequestedBy sets the "requested_by" field if the given value is not nil.
func (_u *PatientPsychologistLinkUpdateOne) SetNillableRequestedBy(v *patientpsychologistlink.RequestedBy) *PatientPsychologistLinkUpdateOne {
	if v != nil {
		_u.SetRequestedBy(*v)
	}
	return _u
}

// SetRespondedAt sets the "responded_at" field.
func (_u *PatientPsychologistLinkUpdateOne) SetRespondedAt(v time.Time) *PatientPsychologistLinkUpdateOne {
	_u.mutation.SetRespondedAt(v)
	return _u
}

// SetNillableRespondedAt sets the "responded_at" field if the given value is not nil.
func (_u *PatientPsychologistLinkUpdateOne) SetNillableRespondedAt(v *time.Time) *PatientPsychologistLinkUpdateOne {
	if v != nil {
		_u.SetRespondedAt(*v)
	}
	return _u
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (_u *PatientPsychologistLinkUpdateOne) ClearRespondedAt() *PatientPsychologistLinkUpdateOne {
	_u.mutation.ClearRespondedAt()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *PatientPsychologistLinkUpdateOne) SetPatient(v *Patient) *PatientPsychologistLinkUpdateOne {
	return _u.SetPatientID(v.ID)
}

// SetPsychologist sets the "psychologist" edge to the Psychologist entity.
func (_u *PatientPsychologistLinkUpdateOne) SetPsychologist(v *Psychologist) *PatientPsychologistLinkUpdateOne {
	return _u.SetPsychologistID(v.ID)
}

// Mutation returns the PatientPsychologistLinkMutation object of the builder.
func (_u *PatientPsychologistLinkUpdateOne) Mutation() *PatientPsychologistLinkMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *PatientPsychologistLinkUpdateOne) ClearPatient() *PatientPsychologistLinkUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// ClearPsychologist clears the "psychologist" edge to the Psychologist entity.
func (_u *PatientPsychologistLinkUpdateOne) ClearPsychologist() *PatientPsychologistLinkUpdateOne {
	_u.mutation.ClearPsychologist()
	return _u
}

// Where appends a list predicates to the PatientPsychologistLinkUpdate builder.
func (_u *PatientPsychologistLinkUpdateOne) Where(ps ...predicate.PatientPsychologistLink) *PatientPsychologistLinkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PatientPsychologistLinkUpdateOne) Select(field string, fields ...string) *PatientPsychologistLinkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PatientPsychologistLink entity.
func (_u *PatientPsychologistLinkUpdateOne) Save(ctx context.Context) (*PatientPsychologistLink, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientPsychologistLinkUpdateOne) SaveX(ctx context.Context) *PatientPsychologistLink {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PatientPsychologistLinkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientPsychologistLinkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientPsychologistLinkUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patientpsychologistlink.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientPsychologistLinkUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := patientpsychologistlink.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "PatientPsychologistLink.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequestedBy(); ok {
		if err := patientpsychologistlink.RequestedByValidator(v); err != nil {
			return &ValidationError{Name: "requested_by", err: fmt.Errorf(`repo: validator failed for field "PatientPsychologistLink.requested_by": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PatientPsychologistLink.patient"`)
	}
	if _u.mutation.PsychologistCleared() && len(_u.mutation.PsychologistIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PatientPsychologistLink.psychologist"`)
	}
	return nil
}

func (_u *PatientPsychologistLinkUpdateOne) sqlSave(ctx context.Context) (_node *PatientPsychologistLink, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patientpsychologistlink.Table, patientpsychologistlink.Columns, sqlgraph.NewFieldSpec(patientpsychologistlink.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "PatientPsychologistLink.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, patientpsychologistlink.FieldID)
		for _, f := range fields {
			if !patientpsychologistlink.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != patientpsychologistlink.FieldID {
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
		_spec.SetField(patientpsychologistlink.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(patientpsychologistlink.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RequestedBy(); ok {
		_spec.SetField(patientpsychologistlink.FieldRequestedBy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RespondedAt(); ok {
		_spec.SetField(patientpsychologistlink.FieldRespondedAt, field.TypeTime, value)
	}
	if _u.mutation.RespondedAtCleared() {
		_spec.ClearField(patientpsychologistlink.FieldRespondedAt, field.TypeTime)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patientpsychologistlink.PatientTable,
			Columns: []string{patientpsychologistlink.PatientColumn},
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
			Table:   patientpsychologistlink.PatientTable,
			Columns: []string{patientpsychologistlink.PatientColumn},
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
			Table:   patientpsychologistlink.PsychologistTable,
			Columns: []string{patientpsychologistlink.PsychologistColumn},
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
			Table:   patientpsychologistlink.PsychologistTable,
			Columns: []string{patientpsychologistlink.PsychologistColumn},
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
	_node = &PatientPsychologistLink{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patientpsychologistlink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
