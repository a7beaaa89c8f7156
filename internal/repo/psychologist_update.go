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
	"github.com/credvia/credvia_backend/internal/repo/patientpsychologistlink"
	"github.com/credvia/credvia_backend/internal/repo/predicate"
	"github.com/credvia/credvia_backend/internal/repo/psychologist"
	"github.com/credvia/credvia_backend/internal/repo/psychologistreference"
	"github.com/credvia/credvia_backend/internal/repo/session"
	"github.com/credvia/credvia_backend/internal/repo/user"
	"github.com/google/uuid"
)

// PsychologistUpdate is the builder for updating Psychologist entities.
type PsychologistUpdate struct {
	config
	hooks    []Hook
	mutation *PsychologistMutation
}

// Where appends a list predicates to the PsychologistUpdate builder.
func (_u *PsychologistUpdate) Where(ps ...predicate.Psychologist) *PsychologistUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PsychologistUpdate) SetUpdatedAt(v time.Time) *PsychologistUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PsychologistUpdate) SetUserID(v uuid.UUID) *PsychologistUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PsychologistUpdate) SetNillableUserID(v *uuid.UUID) *PsychologistUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCrp sets the "crp" field.
func (_u *PsychologistUpdate) SetCrp(v string) *PsychologistUpdate {
	_u.mutation.SetCrp(v)
	return _u
}

// SetNillableCrp sets the "crp" field if the given value is not nil.
func (_u *PsychologistUpdate) SetNillableCrp(v *string) *PsychologistUpdate {
	if v != nil {
		_u.SetCrp(*v)
	}
	return _u
}

// ClearCrp clears the value of the "crp" field.
func (_u *PsychologistUpdate) ClearCrp() *PsychologistUpdate {
	_u.mutation.ClearCrp()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *PsychologistUpdate) SetUser(v *User) *PsychologistUpdate {
	return _u.SetUserID(v.ID)
}

// AddSessionIDs adds the "sessions" edge to the Session entity by IDs.
func (_u *PsychologistUpdate) AddSessionIDs(ids ...uuid.UUID) *PsychologistUpdate {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the Session entity.
func (_u *PsychologistUpdate) AddSessions(v ...*Session) *PsychologistUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// AddLinkIDs adds the "links" edge to the PatientPsychologistLink entity by IDs.
func (_u *PsychologistUpdate) AddLinkIDs(ids ...uuid.UUID) *PsychologistUpdate {
	_u.mutation.AddLinkIDs(ids...)
	return _u
}

// AddLinks adds the "links" edges to the PatientPsychologistLink entity.
func (_u *PsychologistUpdate) AddLinks(v ...*PatientPsychologistLink) *PsychologistUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLinkIDs(ids...)
}

// AddLinkedReferenceIDs adds the "linked_references" edge to the PsychologistReference entity by IDs.
func (_u *PsychologistUpdate) AddLinkedReferenceIDs(ids ...uuid.UUID) *PsychologistUpdate {
	_u.mutation.AddLinkedReferenceIDs(ids...)
	return _u
}

// AddLinkedReferences adds the "linked_references" edges to the PsychologistReference entity.
func (_u *PsychologistUpdate) AddLinkedReferences(v ...*PsychologistReference) *PsychologistUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLinkedReferenceIDs(ids...)
}

// Mutation returns the PsychologistMutation object of the builder.
func (_u *PsychologistUpdate) Mutation() *PsychologistMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *PsychologistUpdate) ClearUser() *PsychologistUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearSessions clears all "sessions" edges to the Session entity.
func (_u *PsychologistUpdate) ClearSessions() *PsychologistUpdate {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to Session entities by IDs.
func (_u *PsychologistUpdate) RemoveSessionIDs(ids ...uuid.UUID) *PsychologistUpdate {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to Session entities.
func (_u *PsychologistUpdate) RemoveSessions(v ...*Session) *PsychologistUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// ClearLinks clears all "links" edges to the PatientPsychologistLink entity.
func (_u *PsychologistUpdate) ClearLinks() *PsychologistUpdate {
	_u.mutation.ClearLinks()
	return _u
}

// RemoveLinkIDs removes the "links" edge to PatientPsychologistLink entities by IDs.
func (_u *PsychologistUpdate) RemoveLinkIDs(ids ...uuid.UUID) *PsychologistUpdate {
	_u.mutation.RemoveLinkIDs(ids...)
	return _u
}

// RemoveLinks removes "links" edges to PatientPsychologistLink entities.
func (_u *PsychologistUpdate) RemoveLinks(v ...*PatientPsychologistLink) *PsychologistUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLinkIDs(ids...)
}

// ClearLinkedReferences clears all "linked_references" edges to the PsychologistReference entity.
func (_u *PsychologistUpdate) ClearLinkedReferences() *PsychologistUpdate {
	_u.mutation.ClearLinkedReferences()
	return _u
}

// RemoveLinkedReferenceIDs removes the "linked_references" edge to PsychologistReference entities by IDs.
func (_u *PsychologistUpdate) RemoveLinkedReferenceIDs(ids ...uuid.UUID) *PsychologistUpdate {
	_u.mutation.RemoveLinkedReferenceIDs(ids...)
	return _u
}

// RemoveLinkedReferences removes "linked_references" edges to PsychologistReference entities.
func (_u *PsychologistUpdate) RemoveLinkedReferences(v ...*PsychologistReference) *PsychologistUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLinkedReferenceIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PsychologistUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PsychologistUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PsychologistUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PsychologistUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PsychologistUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := psychologist.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PsychologistUpdate) check() error {
	if v, ok := _u.mutation.Crp(); ok {
		if err := psychologist.CrpValidator(v); err != nil {
			return &ValidationError{Name: "crp", err: fmt.Errorf(`repo: validator failed for field "Psychologist.crp": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Psychologist.user"`)
	}
	return nil
}

func (_u *PsychologistUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(psychologist.Table, psychologist.Columns, sqlgraph.NewFieldSpec(psychologist.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(psychologist.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Crp(); ok {
		_spec.SetField(psychologist.FieldCrp, field.TypeString, value)
	}
	if _u.mutation.CrpCleared() {
		_spec.ClearField(psychologist.FieldCrp, field.TypeString)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   psychologist.UserTable,
			Columns: []string{psychologist.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   psychologist.UserTable,
			Columns: []string{psychologist.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
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
			Table:   psychologist.SessionsTable,
			Columns: []string{psychologist.SessionsColumn},
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
			Table:   psychologist.SessionsTable,
			Columns: []string{psychologist.SessionsColumn},
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
			Table:   psychologist.SessionsTable,
			Columns: []string{psychologist.SessionsColumn},
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
	if _u.mutation.LinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   psychologist.LinksTable,
			Columns: []string{psychologist.LinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patientpsychologistlink.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLinksIDs(); len(nodes) > 0 && !_u.mutation.LinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   psychologist.LinksTable,
			Columns: []string{psychologist.LinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patientpsychologistlink.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   psychologist.LinksTable,
			Columns: []string{psychologist.LinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patientpsychologistlink.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LinkedReferencesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   psychologist.LinkedReferencesTable,
			Columns: []string{psychologist.LinkedReferencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(psychologistreference.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLinkedReferencesIDs(); len(nodes) > 0 && !_u.mutation.LinkedReferencesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   psychologist.LinkedReferencesTable,
			Columns: []string{psychologist.LinkedReferencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(psychologistreference.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LinkedReferencesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   psychologist.LinkedReferencesTable,
			Columns: []string{psychologist.LinkedReferencesColumn},
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
			err = &NotFoundError{psychologist.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PsychologistUpdateOne is the builder for updating a single Psychologist entity.
type PsychologistUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PsychologistMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PsychologistUpdateOne) SetUpdatedAt(v time.Time) *PsychologistUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PsychologistUpdateOne) SetUserID(v uuid.UUID) *PsychologistUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PsychologistUpdateOne) SetNillableUserID(v *uuid.UUID) *PsychologistUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCrp sets the "crp" field.
func (_u *PsychologistUpdateOne) SetCrp(v string) *PsychologistUpdateOne {
	_u.mutation.SetCrp(v)
	return _u
}

// SetNillableCrp sets the "crp" field if the given value is not nil.
func (_u *PsychologistUpdateOne) SetNillableCrp(v *string) *PsychologistUpdateOne {
	if v != nil {
		_u.SetCrp(*v)
	}
	return _u
}

// ClearCrp clears the value of the "crp" field.
func (_u *PsychologistUpdateOne) ClearCrp() *PsychologistUpdateOne {
	_u.mutation.ClearCrp()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *PsychologistUpdateOne) SetUser(v *User) *PsychologistUpdateOne {
	return _u.SetUserID(v.ID)
}

// AddSessionIDs adds the "sessions" edge to the Session entity by IDs.
func (_u *PsychologistUpdateOne) AddSessionIDs(ids ...uuid.UUID) *PsychologistUpdateOne {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the Session entity.
func (_u *PsychologistUpdateOne) AddSessions(v ...*Session) *PsychologistUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// AddLinkIDs adds the "links" edge to the PatientPsychologistLink entity by IDs.
func (_u *PsychologistUpdateOne) AddLinkIDs(ids ...uuid.UUID) *PsychologistUpdateOne {
	_u.mutation.AddLinkIDs(ids...)
	return _u
}

// AddLinks adds the "links" edges to the PatientPsychologistLink entity.
func (_u *PsychologistUpdateOne) AddLinks(v ...*PatientPsychologistLink) *PsychologistUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLinkIDs(ids...)
}

// AddLinkedReferenceIDs adds the "linked_references" edge to the PsychologistReference entity by IDs.
func (_u *PsychologistUpdateOne) AddLinkedReferenceIDs(ids ...uuid.UUID) *PsychologistUpdateOne {
	_u.mutation.AddLinkedReferenceIDs(ids...)
	return _u
}

// AddLinkedReferences adds the "linked_references" edges to the PsychologistReference entity.
func (_u *PsychologistUpdateOne) AddLinkedReferences(v ...*PsychologistReference) *PsychologistUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLinkedReferenceIDs(ids...)
}

// Mutation returns the PsychologistMutation object of the builder.
func (_u *PsychologistUpdateOne) Mutation() *PsychologistMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *PsychologistUpdateOne) ClearUser() *PsychologistUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearSessions clears all "sessions" edges to the Session entity.
func (_u *PsychologistUpdateOne) ClearSessions() *PsychologistUpdateOne {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to Session entities by IDs.
func (_u *PsychologistUpdateOne) RemoveSessionIDs(ids ...uuid.UUID) *PsychologistUpdateOne {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to Session entities.
func (_u *PsychologistUpdateOne) RemoveSessions(v ...*Session) *PsychologistUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// ClearLinks clears all "links" edges to the PatientPsychologistLink entity.
func (_u *PsychologistUpdateOne) ClearLinks() *PsychologistUpdateOne {
	_u.mutation.ClearLinks()
	return _u
}

// RemoveLinkIDs removes the "links" edge to PatientPsychologistLink entities by IDs.
func (_u *PsychologistUpdateOne) RemoveLinkIDs(ids ...uuid.UUID) *PsychologistUpdateOne {
	_u.mutation.RemoveLinkIDs(ids...)
	return _u
}

// RemoveLinks removes "links" edges to PatientPsychologistLink entities.
func (_u *PsychologistUpdateOne) RemoveLinks(v ...*PatientPsychologistLink) *PsychologistUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLinkIDs(ids...)
}

// ClearLinkedReferences clears all "linked_references" edges to the PsychologistReference entity.
func (_u *PsychologistUpdateOne) ClearLinkedReferences() *PsychologistUpdateOne {
	_u.mutation.ClearLinkedReferences()
	return _u
}

// RemoveLinkedReferenceIDs removes the "linked_references" edge to PsychologistReference entities by IDs.
func (_u *PsychologistUpdateOne) RemoveLinkedReferenceIDs(ids ...uuid.UUID) *PsychologistUpdateOne {
	_u.mutation.RemoveLinkedReferenceIDs(ids...)
	return _u
}

// RemoveLinkedReferences removes "linked_references" edges to PsychologistReference entities.
func (_u *PsychologistUpdateOne) RemoveLinkedReferences(v ...*PsychologistReference) *PsychologistUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLinkedReferenceIDs(ids...)
}

// Where appends a list predicates to the PsychologistUpdate builder.
func (_u *PsychologistUpdateOne) Where(ps ...predicate.Psychologist) *PsychologistUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PsychologistUpdateOne) Select(field string, fields ...string) *PsychologistUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Psychologist entity.
func (_u *PsychologistUpdateOne) Save(ctx context.Context) (*Psychologist, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PsychologistUpdateOne) SaveX(ctx context.Context) *Psychologist {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PsychologistUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PsychologistUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PsychologistUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := psychologist.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PsychologistUpdateOne) check() error {
	if v, ok := _u.mutation.Crp(); ok {
		if err := psychologist.CrpValidator(v); err != nil {
			return &ValidationError{Name: "crp", err: fmt.Errorf(`repo: validator failed for field "Psychologist.crp": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Psychologist.user"`)
	}
	return nil
}

func (_u *PsychologistUpdateOne) sqlSave(ctx context.Context) (_node *Psychologist, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(psychologist.Table, psychologist.Columns, sqlgraph.NewFieldSpec(psychologist.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Psychologist.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, psychologist.FieldID)
		for _, f := range fields {
			if !psychologist.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != psychologist.FieldID {
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
		_spec.SetField(psychologist.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Crp(); ok {
		_spec.SetField(psychologist.FieldCrp, field.TypeString, value)
	}
	if _u.mutation.CrpCleared() {
		_spec.ClearField(psychologist.FieldCrp, field.TypeString)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   psychologist.UserTable,
			Columns: []string{psychologist.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   psychologist.UserTable,
			Columns: []string{psychologist.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
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
			Table:   psychologist.SessionsTable,
			Columns: []string{psychologist.SessionsColumn},
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
			Table:   psychologist.SessionsTable,
			Columns: []string{psychologist.SessionsColumn},
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
			Table:   psychologist.SessionsTable,
			Columns: []string{psychologist.SessionsColumn},
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
	if _u.mutation.LinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   psychologist.LinksTable,
			Columns: []string{psychologist.LinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patientpsychologistlink.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLinksIDs(); len(nodes) > 0 && !_u.mutation.LinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   psychologist.LinksTable,
			Columns: []string{psychologist.LinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patientpsychologistlink.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   psychologist.LinksTable,
			Columns: []string{psychologist.LinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patientpsychologistlink.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LinkedReferencesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   psychologist.LinkedReferencesTable,
			Columns: []string{psychologist.LinkedReferencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(psychologistreference.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLinkedReferencesIDs(); len(nodes) > 0 && !_u.mutation.LinkedReferencesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   psychologist.LinkedReferencesTable,
			Columns: []string{psychologist.LinkedReferencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(psychologistreference.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LinkedReferencesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   psychologist.LinkedReferencesTable,
			Columns: []string{psychologist.LinkedReferencesColumn},
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
	_node = &Psychologist{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{psychologist.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
