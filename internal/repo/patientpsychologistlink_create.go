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
	"github.com/credvia/credvia_backend/internal/repo/patientpsychologistlink"
	"github.com/credvia/credvia_backend/internal/repo/psychologist"
	"github.com/google/uuid"
)

// PatientPsychologistLinkCreate is the builder for creating a PatientPsychologistLink entity.
type PatientPsychologistLinkCreate struct {
	config
	mutation *PatientPsychologistLinkMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PatientPsychologistLinkCreate) SetCreatedAt(v time.Time) *PatientPsychologistLinkCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PatientPsychologistLinkCreate) SetNillableCreatedAt(v *time.Time) *PatientPsychologistLinkCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PatientPsychologistLinkCreate) SetUpdatedAt(v time.Time) *PatientPsychologistLinkCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PatientPsychologistLinkCreate) SetNillableUpdatedAt(v *time.Time) *PatientPsychologistLinkCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *PatientPsychologistLinkCreate) SetPatientID(v uuid.UUID) *PatientPsychologistLinkCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetPsychologistID sets the "psychologist_id" field.
func (_c *PatientPsychologistLinkCreate) SetPsychologistID(v uuid.UUID) *PatientPsychologistLinkCreate {
	_c.mutation.SetPsychologistID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PatientPsychologistLinkCreate) SetStatus(v patientpsychologistlink.Status) *PatientPsychologistLinkCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PatientPsychologistLinkCreate) SetNillableStatus(v *patientpsychologistlink.Status) *PatientPsychologistLinkCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRequestedBy sets the "requested_by" field.
func (_c *PatientPsychologistLinkCreate) SetRequestedBy(v patientpsychologistlink.RequestedBy) *PatientPsychologistLinkCreate {
	_c.mutation.SetRequestedBy(v)
	return _c
}

// SetRespondedAt sets the "responded_at" field.
func (_c *PatientPsychologistLinkCreate) SetRespondedAt(v time.Time) *PatientPsychologistLinkCreate {
	_c.mutation.SetRespondedAt(v)
	return _c
}

// SetNillableRespondedAt sets the "responded_at" field if the given value is not nil.
func (_c *PatientPsychologistLinkCreate) SetNillableRespondedAt(v *time.Time) *PatientPsychologistLinkCreate {
	if v != nil {
		_c.SetRespondedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PatientPsychologistLinkCreate) SetID(v uuid.UUID) *PatientPsychologistLinkCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PatientPsychologistLinkCreate) SetNillableID(v *uuid.UUID) *PatientPsychologistLinkCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *PatientPsychologistLinkCreate) SetPatient(v *Patient) *PatientPsychologistLinkCreate {
	return _c.SetPatientID(v.ID)
}

// SetPsychologist sets the "psychologist" edge to the Psychologist entity.
func (_c *PatientPsychologistLinkCreate) SetPsychologist(v *Psychologist) *PatientPsychologistLinkCreate {
	return _c.SetPsychologistID(v.ID)
}

// Mutation returns the PatientPsychologistLinkMutation object of the builder.
func (_c *PatientPsychologistLinkCreate) Mutation() *PatientPsychologistLinkMutation {
	return _c.mutation
}

// Save creates the PatientPsychologistLink in the database.
func (_c *PatientPsychologistLinkCreate) Save(ctx context.Context) (*PatientPsychologistLink, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PatientPsychologistLinkCreate) SaveX(ctx context.Context) *PatientPsychologistLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientPsychologistLinkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientPsychologistLinkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PatientPsychologistLinkCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := patientpsychologistlink.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := patientpsychologistlink.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := patientpsychologistlink.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := patientpsychologistlink.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PatientPsychologistLinkCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "PatientPsychologistLink.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "PatientPsychologistLink.updated_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "PatientPsychologistLink.patient_id"`)}
	}
	if _, ok := _c.mutation.PsychologistID(); !ok {
		return &ValidationError{Name: "psychologist_id", err: errors.New(`repo: missing required field "PatientPsychologistLink.psychologist_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "PatientPsychologistLink.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := patientpsychologistlink.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "PatientPsychologistLink.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequestedBy(); !ok {
		return &ValidationError{Name: "requested_by", err: errors.New(`repo: missing required field "PatientPsychologistLink.requested_by"`)}
	}
	if v, ok := _c.mutation.RequestedBy(); ok {
		if err := patientpsychologistlink.RequestedByValidator(v); err != nil {
			return &ValidationError{Name: "requested_by", err: fmt.Errorf(`repo: validator failed for field "PatientPsychologistLink.requested_by": %w`, err)}
		}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "PatientPsychologistLink.patient"`)}
	}
	if len(_c.mutation.PsychologistIDs()) == 0 {
		return &ValidationError{Name: "psychologist", err: errors.New(`repo: missing required edge "PatientPsychologistLink.psychologist"`)}
	}
	return nil
}

func (_c *PatientPsychologistLinkCreate) sqlSave(ctx context.Context) (*PatientPsychologistLink, error) {
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

func (_c *PatientPsychologistLinkCreate) createSpec() (*PatientPsychologistLink, *sqlgraph.CreateSpec) {
	var (
		_node = &PatientPsychologistLink{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(patientpsychologistlink.Table, sqlgraph.NewFieldSpec(patientpsychologistlink.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(patientpsychologistlink.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(patientpsychologistlink.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(patientpsychologistlink.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RequestedBy(); ok {
		_spec.SetField(patientpsychologistlink.FieldRequestedBy, field.TypeEnum, value)
		_node.RequestedBy = value
	}
	if value, ok := _c.mutation.RespondedAt(); ok {
		_spec.SetField(patientpsychologistlink.FieldRespondedAt, field.TypeTime, value)
		_node.RespondedAt = &value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
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
		_node.PatientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PsychologistIDs(); len(nodes) > 0 {
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
		_node.PsychologistID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PatientPsychologistLink.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatientPsychologistLinkUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PatientPsychologistLinkCreate) OnConflict(opts ...sql.ConflictOption) *PatientPsychologistLinkUpsertOne {
	_c.conflict = opts
	return &PatientPsychologistLinkUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PatientPsychologistLink.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatientPsychologistLinkCreate) OnConflictColumns(columns ...string) *PatientPsychologistLinkUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatientPsychologistLinkUpsertOne{
		create: _c,
	}
}

type (
	// PatientPsychologistLinkUpsertOne is the builder for "upsert"-ing
	//  one PatientPsychologistLink node.
	PatientPsychologistLinkUpsertOne struct {
		create *PatientPsychologistLinkCreate
	}

	// PatientPsychologistLinkUpsert is the "OnConflict" setter.
	PatientPsychologistLinkUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientPsychologistLinkUpsert) SetUpdatedAt(v time.Time) *PatientPsychologistLinkUpsert {
	u.Set(patientpsychologistlink.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientPsychologistLinkUpsert) UpdateUpdatedAt() *PatientPsychologistLinkUpsert {
	u.SetExcluded(patientpsychologistlink.FieldUpdatedAt)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *PatientPsychologistLinkUpsert) SetPatientID(v uuid.UUID) *PatientPsychologistLinkUpsert {
	u.Set(patientpsychologistlink.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PatientPsychologistLinkUpsert) UpdatePatientID() *PatientPsychologistLinkUpsert {
	u.SetExcluded(patientpsychologistlink.FieldPatientID)
	return u
}

// SetPsychologistID sets the "psychologist_id" field.
func (u *PatientPsychologistLinkUpsert) SetPsychologistID(v uuid.UUID) *PatientPsychologistLinkUpsert {
	u.Set(patientpsychologistlink.FieldPsychologistID, v)
	return u
}

// UpdatePsychologistID sets the "psychologist_id" field to the value that was provided on create.
func (u *PatientPsychologistLinkUpsert) UpdatePsychologistID() *PatientPsychologistLinkUpsert {
	u.SetExcluded(patientpsychologistlink.FieldPsychologistID)
	return u
}

// SetStatus sets the "status" field.
func (u *PatientPsychologistLinkUpsert) SetStatus(v patientpsychologistlink.Status) *PatientPsychologistLinkUpsert {
	u.Set(patientpsychologistlink.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PatientPsychologistLinkUpsert) UpdateStatus() *PatientPsychologistLinkUpsert {
	u.SetExcluded(patientpsychologistlink.FieldStatus)
	return u
}

// SetRequestedBy sets the "requested_by" field.
func (u *PatientPsychologistLinkUpsert) SetRequestedBy(v patientpsychologistlink.RequestedBy) *PatientPsychologistLinkUpsert {
	u.Set(patientpsychologistlink.FieldRequestedBy, v)
	return u
}

// UpdateRequestedBy sets the "requested_by" field to the value that was provided on create.
func (u *PatientPsychologistLinkUpsert) UpdateRequestedBy() *PatientPsychologistLinkUpsert {
	u.SetExcluded(patientpsychologistlink.FieldRequestedBy)
	return u
}

// SetRespondedAt sets the "responded_at" field.
func (u *PatientPsychologistLinkUpsert) SetRespondedAt(v time.Time) *PatientPsychologistLinkUpsert {
	u.Set(patientpsychologistlink.FieldRespondedAt, v)
	return u
}

// UpdateRespondedAt sets the "responded_at" field to the value that was provided on create.
func (u *PatientPsychologistLinkUpsert) UpdateRespondedAt() *PatientPsychologistLinkUpsert {
	u.SetExcluded(patientpsychologistlink.FieldRespondedAt)
	return u
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (u *PatientPsychologistLinkUpsert) ClearRespondedAt() *PatientPsychologistLinkUpsert {
	u.SetNull(patientpsychologistlink.FieldRespondedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PatientPsychologistLink.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(patientpsychologistlink.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PatientPsychologistLinkUpsertOne) UpdateNewValues() *PatientPsychologistLinkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(patientpsychologistlink.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(patientpsychologistlink.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PatientPsychologistLink.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PatientPsychologistLinkUpsertOne) Ignore() *PatientPsychologistLinkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatientPsychologistLinkUpsertOne) DoNothing() *PatientPsychologistLinkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatientPsychologistLinkCreate.OnConflict
// documentation for more info.
func (u *PatientPsychologistLinkUpsertOne) Update(set func(*PatientPsychologistLinkUpsert)) *PatientPsychologistLinkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatientPsychologistLinkUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientPsychologistLinkUpsertOne) SetUpdatedAt(v time.Time) *PatientPsychologistLinkUpsertOne {
	return u.Update(func(s *PatientPsychologistLinkUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientPsychologistLinkUpsertOne) UpdateUpdatedAt() *PatientPsychologistLinkUpsertOne {
	return u.Update(func(s *PatientPsychologistLinkUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *PatientPsychologistLinkUpsertOne) SetPatientID(v uuid.UUID) *PatientPsychologistLinkUpsertOne {
	return u.Update(func(s *PatientPsychologistLinkUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PatientPsychologistLinkUpsertOne) UpdatePatientID() *PatientPsychologistLinkUpsertOne {
	return u.Update(func(s *PatientPsychologistLinkUpsert) {
		s.UpdatePatientID()
	})
}

// SetPsychologistID sets the "psychologist_id" field.
func (u *PatientPsychologistLinkUpsertOne) SetPsychologistID(v uuid.UUID) *PatientPsychologistLinkUpsertOne {
	return u.Update(func(s *PatientPsychologistLinkUpsert) {
		s.SetPsychologistID(v)
	})
}

// UpdatePsychologistID sets the "psychologist_id" field to the value that was provided on create.
func (u *PatientPsychologistLinkUpsertOne) UpdatePsychologistID() *PatientPsychologistLinkUpsertOne {
	return u.Update(func(s *PatientPsychologistLinkUpsert) {
		s.UpdatePsychologistID()
	})
}

// SetStatus sets the "status" field.
func (u *PatientPsychologistLinkUpsertOne) SetStatus(v patientpsychologistlink.Status) *PatientPsychologistLinkUpsertOne {
	return u.Update(func(s *PatientPsychologistLinkUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PatientPsychologistLinkUpsertOne) UpdateStatus() *PatientPsychologistLinkUpsertOne {
	return u.Update(func(s *PatientPsychologistLinkUpsert) {
		s.UpdateStatus()
	})
}

// SetRequestedBy sets the "requested_by" field.
func (u *PatientPsychologistLinkUpsertOne) SetRequestedBy(v patientpsychologistlink.RequestedBy) *PatientPsychologistLinkUpsertOne {
	return u.Update(func(s *PatientPsychologistLinkUpsert) {
		s.SetRequestedBy(v)
	})
}

// UpdateRequestedBy sets the "requested_by" field to the value that was provided on create.
func (u *PatientPsychologistLinkUpsertOne) UpdateRequestedBy() *PatientPsychologistLinkUpsertOne {
	return u.Update(func(s *PatientPsychologistLinkUpsert) {
		s.UpdateRequestedBy()
	})
}

// SetRespondedAt sets the "responded_at" field.
func (u *PatientPsychologistLinkUpsertOne) SetRespondedAt(v time.Time) *PatientPsychologistLinkUpsertOne {
	return u.Update(func(s *PatientPsychologistLinkUpsert) {
		s.SetRespondedAt(v)
	})
}

// UpdateRespondedAt sets the "responded_at" field to the value that was provided on create.
func (u *PatientPsychologistLinkUpsertOne) UpdateRespondedAt() *PatientPsychologistLinkUpsertOne {
	return u.Update(func(s *PatientPsychologistLinkUpsert) {
		s.UpdateRespondedAt()
	})
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (u *PatientPsychologistLinkUpsertOne) ClearRespondedAt() *PatientPsychologistLinkUpsertOne {
	return u.Update(func(s *PatientPsychologistLinkUpsert) {
		s.ClearRespondedAt()
	})
}

// Exec executes the query.
func (u *PatientPsychologistLinkUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PatientPsychologistLinkCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatientPsychologistLinkUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PatientPsychologistLinkUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PatientPsychologistLinkUpsertOne.ID is not supported by MySQL driver. Use PatientPsychologistLinkUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PatientPsychologistLinkUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PatientPsychologistLinkCreateBulk is the builder for creating many PatientPsychologistLink entities in bulk.
type PatientPsychologistLinkCreateBulk struct {
	config
	err      error
	builders []*PatientPsychologistLinkCreate
	conflict []sql.ConflictOption
}

// Save creates the PatientPsychologistLink entities in the database.
func (_c *PatientPsychologistLinkCreateBulk) Save(ctx context.Context) ([]*PatientPsychologistLink, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PatientPsychologistLink, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PatientPsychologistLinkMutation)
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
func (_c *PatientPsychologistLinkCreateBulk) SaveX(ctx context.Context) []*PatientPsychologistLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientPsychologistLinkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientPsychologistLinkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PatientPsychologistLink.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatientPsychologistLinkUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PatientPsychologistLinkCreateBulk) OnConflict(opts ...sql.ConflictOption) *PatientPsychologistLinkUpsertBulk {
	_c.conflict = opts
	return &PatientPsychologistLinkUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PatientPsychologistLink.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatientPsychologistLinkCreateBulk) OnConflictColumns(columns ...string) *PatientPsychologistLinkUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatientPsychologistLinkUpsertBulk{
		create: _c,
	}
}

// PatientPsychologistLinkUpsertBulk is the builder for "upsert"-ing
// a bulk of PatientPsychologistLink nodes.
type PatientPsychologistLinkUpsertBulk struct {
	create *PatientPsychologistLinkCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PatientPsychologistLink.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(patientpsychologistlink.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PatientPsychologistLinkUpsertBulk) UpdateNewValues() *PatientPsychologistLinkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(patientpsychologistlink.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(patientpsychologistlink.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PatientPsychologistLink.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PatientPsychologistLinkUpsertBulk) Ignore() *PatientPsychologistLinkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatientPsychologistLinkUpsertBulk) DoNothing() *PatientPsychologistLinkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatientPsychologistLinkCreateBulk.OnConflict
// documentation for more info.
func (u *PatientPsychologistLinkUpsertBulk) Update(set func(*PatientPsychologistLinkUpsert)) *PatientPsychologistLinkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatientPsychologistLinkUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientPsychologistLinkUpsertBulk) SetUpdatedAt(v time.Time) *PatientPsychologistLinkUpsertBulk {
	return u.Update(func(s *PatientPsychologistLinkUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientPsychologistLinkUpsertBulk) UpdateUpdatedAt() *PatientPsychologistLinkUpsertBulk {
	return u.Update(func(s *PatientPsychologistLinkUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *PatientPsychologistLinkUpsertBulk) SetPatientID(v uuid.UUID) *PatientPsychologistLinkUpsertBulk {
	return u.Update(func(s *PatientPsychologistLinkUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PatientPsychologistLinkUpsertBulk) UpdatePatientID() *PatientPsychologistLinkUpsertBulk {
	return u.Update(func(s *PatientPsychologistLinkUpsert) {
		s.UpdatePatientID()
	})
}

// SetPsychologistID sets the "psychologist_id" field.
func (u *PatientPsychologistLinkUpsertBulk) SetPsychologistID(v uuid.UUID) *PatientPsychologistLinkUpsertBulk {
	return u.Update(func(s *PatientPsychologistLinkUpsert) {
		s.SetPsychologistID(v)
	})
}

// UpdatePsychologistID sets the "psychologist_id" field to the value that was provided on create.
func (u *PatientPsychologistLinkUpsertBulk) UpdatePsychologistID() *PatientPsychologistLinkUpsertBulk {
	return u.Update(func(s *PatientPsychologistLinkUpsert) {
		s.UpdatePsychologistID()
	})
}

// SetStatus sets the "status" field.
func (u *PatientPsychologistLinkUpsertBulk) SetStatus(v patientpsychologistlink.Status) *PatientPsychologistLinkUpsertBulk {
	return u.Update(func(s *PatientPsychologistLinkUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PatientPsychologistLinkUpsertBulk) UpdateStatus() *PatientPsychologistLinkUpsertBulk {
	return u.Update(func(s *PatientPsychologistLinkUpsert) {
		s.UpdateStatus()
	})
}

// SetRequestedBy sets the "requested_by" field.
func (u *PatientPsychologistLinkUpsertBulk) SetRequestedBy(v patientpsychologistlink.RequestedBy) *PatientPsychologistLinkUpsertBulk {
	return u.Update(func(s *PatientPsychologistLinkUpsert) {
		s.SetRequestedBy(v)
	})
}

// UpdateRequestedBy sets the "requested_by" field to the value that was provided on create.
func (u *PatientPsychologistLinkUpsertBulk) UpdateRequestedBy() *PatientPsychologistLinkUpsertBulk {
	return u.Update(func(s *PatientPsychologistLinkUpsert) {
		s.UpdateRequestedBy()
	})
}

// SetRespondedAt sets the "responded_at" field.
func (u *PatientPsychologistLinkUpsertBulk) SetRespondedAt(v time.Time) *PatientPsychologistLinkUpsertBulk {
	return u.Update(func(s *PatientPsychologistLinkUpsert) {
		s.SetRespondedAt(v)
	})
}

// UpdateRespondedAt sets the "responded_at" field to the value that was provided on create.
func (u *PatientPsychologistLinkUpsertBulk) UpdateRespondedAt() *PatientPsychologistLinkUpsertBulk {
	return u.Update(func(s *PatientPsychologistLinkUpsert) {
		s.UpdateRespondedAt()
	})
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (u *PatientPsychologistLinkUpsertBulk) ClearRespondedAt() *PatientPsychologistLinkUpsertBulk {
	return u.Update(func(s *PatientPsychologistLinkUpsert) {
		s.ClearRespondedAt()
	})
}

// Exec executes the query.
func (u *PatientPsychologistLinkUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PatientPsychologistLinkCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PatientPsychologistLinkCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatientPsychologistLinkUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
