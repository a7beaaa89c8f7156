// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/credvia/credvia_backend/internal/repo/patient"
	"github.com/credvia/credvia_backend/internal/repo/psychologist"
	"github.com/credvia/credvia_backend/internal/repo/psychologistreference"
	"github.com/credvia/credvia_backend/internal/repo/session"
	"github.com/google/uuid"
)

// SessionCreate is the builder for creating a Session entity.
type SessionCreate struct {
	config
	mutation *SessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionCreate) SetCreatedAt(v time.Time) *SessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableCreatedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SessionCreate) SetUpdatedAt(v time.Time) *SessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableUpdatedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *SessionCreate) SetPatientID(v uuid.UUID) *SessionCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetPsychologistID sets the "psychologist_id" field.
func (_c *SessionCreate) SetPsychologistID(v uuid.UUID) *SessionCreate {
	_c.mutation.SetPsychologistID(v)
	return _c
}

// SetNillablePsychologistID sets the "psychologist_id" field if the given value is not nil.
func (_c *SessionCreate) SetNillablePsychologistID(v *uuid.UUID) *SessionCreate {
	if v != nil {
		_c.SetPsychologistID(*v)
	}
	return _c
}

// SetReferenceID sets the "reference_id" field.
func (_c *SessionCreate) SetReferenceID(v uuid.UUID) *SessionCreate {
	_c.mutation.SetReferenceID(v)
	return _c
}

// SetNillableReferenceID sets the "reference_id" field if the given value is not nil.
func (_c *SessionCreate) SetNillableReferenceID(v *uuid.UUID) *SessionCreate {
	if v != nil {
		_c.SetReferenceID(*v)
	}
	return _c
}

// SetScheduledAt sets the "scheduled_at" field.
func (_c *SessionCreate) SetScheduledAt(v time.Time) *SessionCreate {
	_c.mutation.SetScheduledAt(v)
	return _c
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_c *SessionCreate) SetDurationMinutes(v int) *SessionCreate {
	_c.mutation.SetDurationMinutes(v)
	return _c
}

// SetCreditsUsed sets the "credits_used" field.
func (_c *SessionCreate) SetCreditsUsed(v int) *SessionCreate {
	_c.mutation.SetCreditsUsed(v)
	return _c
}

// SetRegisteredBy sets the "registered_by" field.
func (_c *SessionCreate) SetRegisteredBy(v session.RegisteredBy) *SessionCreate {
	_c.mutation.SetRegisteredBy(v)
	return _c
}

// SetID sets the "id" field.
func (_c *SessionCreate) SetID(v uuid.UUID) *SessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SessionCreate) SetNillableID(v *uuid.UUID) *SessionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *SessionCreate) SetPatient(v *Patient) *SessionCreate {
	return _c.SetPatientID(v.ID)
}

// SetPsychologist sets the "psychologist" edge to the Psychologist entity.
func (_c *SessionCreate) SetPsychologist(v *Psychologist) *SessionCreate {
	return _c.SetPsychologistID(v.ID)
}

// SetReference sets the "reference" edge to the PsychologistReference entity.
func (_c *SessionCreate) SetReference(v *PsychologistReference) *SessionCreate {
	return _c.SetReferenceID(v.ID)
}

// Mutation returns the SessionMutation object of the builder.
func (_c *SessionCreate) Mutation() *SessionMutation {
	return _c.mutation
}

// Save creates the Session in the database.
func (_c *SessionCreate) Save(ctx context.Context) (*Session, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionCreate) SaveX(ctx context.Context) *Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := session.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := session.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := session.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Session.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Session.updated_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "Session.patient_id"`)}
	}
	if _, ok := _c.mutation.ScheduledAt(); !ok {
		return &ValidationError{Name: "scheduled_at", err: errors.New(`repo: missing required field "Session.scheduled_at"`)}
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		return &ValidationError{Name: "duration_minutes", err: errors.New(`repo: missing required field "Session.duration_minutes"`)}
	}
	if _, ok := _c.mutation.CreditsUsed(); !ok {
		return &ValidationError{Name: "credits_used", err: errors.New(`repo: missing required field "Session.credits_used"`)}
	}
	if v, ok := _c.mutation.CreditsUsed(); ok {
		if err := session.CreditsUsedValidator(v); err != nil {
			return &ValidationError{Name: "credits_used", err: fmt.Errorf(`repo: validator failed for field "Session.credits_used": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RegisteredBy(); !ok {
		return &ValidationError{Name: "registered_by", err: errors.New(`repo: missing required field "Session.registered_by"`)}
	}
	if v, ok := _c.mutation.RegisteredBy(); ok {
		if err := session.RegisteredByValidator(v); err != nil {
			return &ValidationError{Name: "registered_by", err: fmt.Errorf(`repo: validator failed for field "Session.registered_by": %w`, err)}
		}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "Session.patient"`)}
	}
	return nil
}

func (_c *SessionCreate) sqlSave(ctx context.Context) (*Session, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionCreate) createSpec() (*Session, *sqlgraph.CreateSpec) {
	var (
		_node = &Session{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(session.Table, sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(session.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ScheduledAt(); ok {
		_spec.SetField(session.FieldScheduledAt, field.TypeTime, value)
		_node.ScheduledAt = value
	}
	if value, ok := _c.mutation.DurationMinutes(); ok {
		_spec.SetField(session.FieldDurationMinutes, field.TypeInt, value)
		_node.DurationMinutes = value
	}
	if value, ok := _c.mutation.CreditsUsed(); ok {
		_spec.SetField(session.FieldCreditsUsed, field.TypeInt, value)
		_node.CreditsUsed = value
	}
	if value, ok := _c.mutation.RegisteredBy(); ok {
		_spec.SetField(session.FieldRegisteredBy, field.TypeEnum, value)
		_node.RegisteredBy = value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
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
		_node.PatientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PsychologistIDs(); len(nodes) > 0 {
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
		_node.PsychologistID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ReferenceIDs(); len(nodes) > 0 {
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
		_node.ReferenceID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Session.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionCreate) OnConflict(opts ...sql.ConflictOption) *SessionUpsertOne {
	_c.conflict = opts
	return &SessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionCreate) OnConflictColumns(columns ...string) *SessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionUpsertOne{
		create: _c,
	}
}

type (
	// SessionUpsertOne is the builder for "upsert"-ing
	//  one Session node.
	SessionUpsertOne struct {
		create *SessionCreate
	}

	// SessionUpsert is the "OnConflict" setter.
	SessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *SessionUpsert) SetUpdatedAt(v time.Time) *SessionUpsert {
	u.Set(session.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SessionUpsert) UpdateUpdatedAt() *SessionUpsert {
	u.SetExcluded(session.FieldUpdatedAt)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *SessionUpsert) SetPatientID(v uuid.UUID) *SessionUpsert {
	u.Set(session.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *SessionUpsert) UpdatePatientID() *SessionUpsert {
	u.SetExcluded(session.FieldPatientID)
	return u
}

// SetPsychologistID sets the "psychologist_id" field.
func (u *SessionUpsert) SetPsychologistID(v uuid.UUID) *SessionUpsert {
	u.Set(session.FieldPsychologistID, v)
	return u
}

// UpdatePsychologistID sets the "psychologist_id" field to the value that was provided on create.
func (u *SessionUpsert) UpdatePsychologistID() *SessionUpsert {
	u.SetExcluded(session.FieldPsychologistID)
	return u
}

// ClearPsychologistID clears the value of the "psychologist_id" field.
func (u *SessionUpsert) ClearPsychologistID() *SessionUpsert {
	u.SetNull(session.FieldPsychologistID)
	return u
}

// SetReferenceID sets the "reference_id" field.
func (u *SessionUpsert) SetReferenceID(v uuid.UUID) *SessionUpsert {
	u.Set(session.FieldReferenceID, v)
	return u
}

// UpdateReferenceID sets the "reference_id" field to the value that was provided on create.
func (u *SessionUpsert) UpdateReferenceID() *SessionUpsert {
	u.SetExcluded(session.FieldReferenceID)
	return u
}

// ClearReferenceID clears the value of the "reference_id" field.
func (u *SessionUpsert) ClearReferenceID() *SessionUpsert {
	u.SetNull(session.FieldReferenceID)
	return u
}

// SetScheduledAt sets the "scheduled_at" field.
func (u *SessionUpsert) SetScheduledAt(v time.Time) *SessionUpsert {
	u.Set(session.FieldScheduledAt, v)
	return u
}

// UpdateScheduledAt sets the "scheduled_at" field to the value that was provided on create.
func (u *SessionUpsert) UpdateScheduledAt() *SessionUpsert {
	u.SetExcluded(session.FieldScheduledAt)
	return u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (u *SessionUpsert) SetDurationMinutes(v int) *SessionUpsert {
	u.Set(session.FieldDurationMinutes, v)
	return u
}

// UpdateDurationMinutes sets the "duration_minutes" field to the value that was provided on create.
func (u *SessionUpsert) UpdateDurationMinutes() *SessionUpsert {
	u.SetExcluded(session.FieldDurationMinutes)
	return u
}

// AddDurationMinutes adds v to the "duration_minutes" field.
func (u *SessionUpsert) AddDurationMinutes(v int) *SessionUpsert {
	u.Add(session.FieldDurationMinutes, v)
	return u
}

// SetCreditsUsed sets the "credits_used" field.
func (u *SessionUpsert) SetCreditsUsed(v int) *SessionUpsert {
	u.Set(session.FieldCreditsUsed, v)
	return u
}

// UpdateCreditsUsed sets the "credits_used" field to the value that was provided on create.
func (u *SessionUpsert) UpdateCreditsUsed() *SessionUpsert {
	u.SetExcluded(session.FieldCreditsUsed)
	return u
}

// AddCreditsUsed adds v to the "credits_used" field.
func (u *SessionUpsert) AddCreditsUsed(v int) *SessionUpsert {
	u.Add(session.FieldCreditsUsed, v)
	return u
}

// SetRegisteredBy sets the "registered_by" field.
func (u *SessionUpsert) SetRegisteredBy(v session.RegisteredBy) *SessionUpsert {
	u.Set(session.FieldRegisteredBy, v)
	return u
}

// UpdateRegisteredBy sets the "registered_by" field to the value that was provided on create.
func (u *SessionUpsert) UpdateRegisteredBy() *SessionUpsert {
	u.SetExcluded(session.FieldRegisteredBy)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(session.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionUpsertOne) UpdateNewValues() *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(session.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(session.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Session.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SessionUpsertOne) Ignore() *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionUpsertOne) DoNothing() *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionCreate.OnConflict
// documentation for more info.
func (u *SessionUpsertOne) Update(set func(*SessionUpsert)) *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SessionUpsertOne) SetUpdatedAt(v time.Time) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateUpdatedAt() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *SessionUpsertOne) SetPatientID(v uuid.UUID) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdatePatientID() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdatePatientID()
	})
}

// SetPsychologistID sets the "psychologist_id" field.
func (u *SessionUpsertOne) SetPsychologistID(v uuid.UUID) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetPsychologistID(v)
	})
}

// UpdatePsychologistID sets the "psychologist_id" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdatePsychologistID() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdatePsychologistID()
	})
}

// ClearPsychologistID clears the value of the "psychologist_id" field.
func (u *SessionUpsertOne) ClearPsychologistID() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearPsychologistID()
	})
}

// SetReferenceID sets the "reference_id" field.
func (u *SessionUpsertOne) SetReferenceID(v uuid.UUID) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetReferenceID(v)
	})
}

// UpdateReferenceID sets the "reference_id" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateReferenceID() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateReferenceID()
	})
}

// ClearReferenceID clears the value of the "reference_id" field.
func (u *SessionUpsertOne) ClearReferenceID() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearReferenceID()
	})
}

// SetScheduledAt sets the "scheduled_at" field.
func (u *SessionUpsertOne) SetScheduledAt(v time.Time) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetScheduledAt(v)
	})
}

// UpdateScheduledAt sets the "scheduled_at" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateScheduledAt() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateScheduledAt()
	})
}

// SetDurationMinutes sets the "duration_minutes" field.
func (u *SessionUpsertOne) SetDurationMinutes(v int) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetDurationMinutes(v)
	})
}

// AddDurationMinutes adds v to the "duration_minutes" field.
func (u *SessionUpsertOne) AddDurationMinutes(v int) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.AddDurationMinutes(v)
	})
}

// UpdateDurationMinutes sets the "duration_minutes" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateDurationMinutes() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateDurationMinutes()
	})
}

// SetCreditsUsed sets the "credits_used" field.
func (u *SessionUpsertOne) SetCreditsUsed(v int) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetCreditsUsed(v)
	})
}

// AddCreditsUsed adds v to the "credits_used" field.
func (u *SessionUpsertOne) AddCreditsUsed(v int) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.AddCreditsUsed(v)
	})
}

// UpdateCreditsUsed sets the "credits_used" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateCreditsUsed() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateCreditsUsed()
	})
}

// SetRegisteredBy sets the "registered_by" field.
func (u *SessionUpsertOne) SetRegisteredBy(v session.RegisteredBy) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetRegisteredBy(v)
	})
}

// UpdateRegisteredBy sets the "registered_by" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateRegisteredBy() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateRegisteredBy()
	})
}

// Exec executes the query.
func (u *SessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for SessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SessionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: SessionUpsertOne.ID is not supported by MySQL driver. Use SessionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SessionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SessionCreateBulk is the builder for creating many Session entities in bulk.
type SessionCreateBulk struct {
	config
	err      error
	builders []*SessionCreate
	conflict []sql.ConflictOption
}

// Save creates the Session entities in the database.
func (_c *SessionCreateBulk) Save(ctx context.Context) ([]*Session, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Session, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SessionCreateBulk) SaveX(ctx context.Context) []*Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Session.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *SessionUpsertBulk {
	_c.conflict = opts
	return &SessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionCreateBulk) OnConflictColumns(columns ...string) *SessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionUpsertBulk{
		create: _c,
	}
}

// SessionUpsertBulk is the builder for "upsert"-ing
// a bulk of Session nodes.
type SessionUpsertBulk struct {
	create *SessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(session.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionUpsertBulk) UpdateNewValues() *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(session.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(session.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SessionUpsertBulk) Ignore() *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionUpsertBulk) DoNothing() *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionCreateBulk.OnConflict
// documentation for more info.
func (u *SessionUpsertBulk) Update(set func(*SessionUpsert)) *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SessionUpsertBulk) SetUpdatedAt(v time.Time) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateUpdatedAt() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *SessionUpsertBulk) SetPatientID(v uuid.UUID) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdatePatientID() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdatePatientID()
	})
}

// SetPsychologistID sets the "psychologist_id" field.
func (u *SessionUpsertBulk) SetPsychologistID(v uuid.UUID) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetPsychologistID(v)
	})
}

// UpdatePsychologistID sets the "psychologist_id" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdatePsychologistID() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdatePsychologistID()
	})
}

// ClearPsychologistID clears the value of the "psychologist_id" field.
func (u *SessionUpsertBulk) ClearPsychologistID() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearPsychologistID()
	})
}

// SetReferenceID sets the "reference_id" field.
func (u *SessionUpsertBulk) SetReferenceID(v uuid.UUID) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetReferenceID(v)
	})
}

// UpdateReferenceID sets the "reference_id" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateReferenceID() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateReferenceID()
	})
}

// ClearReferenceID clears the value of the "reference_id" field.
func (u *SessionUpsertBulk) ClearReferenceID() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearReferenceID()
	})
}

// SetScheduledAt sets the "scheduled_at" field.
func (u *SessionUpsertBulk) SetScheduledAt(v time.Time) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetScheduledAt(v)
	})
}

// UpdateScheduledAt sets the "scheduled_at" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateScheduledAt() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateScheduledAt()
	})
}

// SetDurationMinutes sets the "duration_minutes" field.
func (u *SessionUpsertBulk) SetDurationMinutes(v int) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetDurationMinutes(v)
	})
}

// AddDurationMinutes adds v to the "duration_minutes" field.
func (u *SessionUpsertBulk) AddDurationMinutes(v int) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.AddDurationMinutes(v)
	})
}

// UpdateDurationMinutes sets the "duration_minutes" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateDurationMinutes() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateDurationMinutes()
	})
}

// SetCreditsUsed sets the "credits_used" field.
func (u *SessionUpsertBulk) SetCreditsUsed(v int) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetCreditsUsed(v)
	})
}

// AddCreditsUsed adds v to the "credits_used" field.
func (u *SessionUpsertBulk) AddCreditsUsed(v int) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.AddCreditsUsed(v)
	})
}

// UpdateCreditsUsed sets the "credits_used" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateCreditsUsed() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateCreditsUsed()
	})
}

// SetRegisteredBy sets the "registered_by" field.
func (u *SessionUpsertBulk) SetRegisteredBy(v session.RegisteredBy) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetRegisteredBy(v)
	})
}

// UpdateRegisteredBy sets the "registered_by" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateRegisteredBy() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateRegisteredBy()
	})
}

// Exec executes the query.
func (u *SessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the SessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for SessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
