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

// PsychologistReferenceCreate is the builder for creating a PsychologistReference entity.
type PsychologistReferenceCreate struct {
	config
	mutation *PsychologistReferenceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PsychologistReferenceCreate) SetCreatedAt(v time.Time) *PsychologistReferenceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PsychologistReferenceCreate) SetNillableCreatedAt(v *time.Time) *PsychologistReferenceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PsychologistReferenceCreate) SetUpdatedAt(v time.Time) *PsychologistReferenceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PsychologistReferenceCreate) SetNillableUpdatedAt(v *time.Time) *PsychologistReferenceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *PsychologistReferenceCreate) SetPatientID(v uuid.UUID) *PsychologistReferenceCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *PsychologistReferenceCreate) SetName(v string) *PsychologistReferenceCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetLinkedPsychologistID sets the "linked_psychologist_id" field.
func (_c *PsychologistReferenceCreate) SetLinkedPsychologistID(v uuid.UUID) *PsychologistReferenceCreate {
	_c.mutation.SetLinkedPsychologistID(v)
	return _c
}

// SetNillableLinkedPsychologistID sets the "linked_psychologist_id" field if the given value is not nil.
func (_c *PsychologistReferenceCreate) SetNillableLinkedPsychologistID(v *uuid.UUID) *PsychologistReferenceCreate {
	if v != nil {
		_c.SetLinkedPsychologistID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PsychologistReferenceCreate) SetID(v uuid.UUID) *PsychologistReferenceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PsychologistReferenceCreate) SetNillableID(v *uuid.UUID) *PsychologistReferenceCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *PsychologistReferenceCreate) SetPatient(v *Patient) *PsychologistReferenceCreate {
	return _c.SetPatientID(v.ID)
}

// SetLinkedPsychologist sets the "linked_psychologist" edge to the Psychologist entity.
func (_c *PsychologistReferenceCreate) SetLinkedPsychologist(v *Psychologist) *PsychologistReferenceCreate {
	return _c.SetLinkedPsychologistID(v.ID)
}

// AddSessionIDs adds the "sessions" edge to the Session entity by IDs.
func (_c *PsychologistReferenceCreate) AddSessionIDs(ids ...uuid.UUID) *PsychologistReferenceCreate {
	_c.mutation.AddSessionIDs(ids...)
	return _c
}

// AddSessions adds the "sessions" edges to the Session entity.
func (_c *PsychologistReferenceCreate) AddSessions(v ...*Session) *PsychologistReferenceCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSessionIDs(ids...)
}

// Mutation returns the PsychologistReferenceMutation object of the builder.
func (_c *PsychologistReferenceCreate) Mutation() *PsychologistReferenceMutation {
	return _c.mutation
}

// Save creates the PsychologistReference in the database.
func (_c *PsychologistReferenceCreate) Save(ctx context.Context) (*PsychologistReference, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PsychologistReferenceCreate) SaveX(ctx context.Context) *PsychologistReference {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PsychologistReferenceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PsychologistReferenceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PsychologistReferenceCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := psychologistreference.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := psychologistreference.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := psychologistreference.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PsychologistReferenceCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "PsychologistReference.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "PsychologistReference.updated_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "PsychologistReference.patient_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "PsychologistReference.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := psychologistreference.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "PsychologistReference.name": %w`, err)}
		}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "PsychologistReference.patient"`)}
	}
	return nil
}

func (_c *PsychologistReferenceCreate) sqlSave(ctx context.Context) (*PsychologistReference, error) {
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

func (_c *PsychologistReferenceCreate) createSpec() (*PsychologistReference, *sqlgraph.CreateSpec) {
	var (
		_node = &PsychologistReference{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(psychologistreference.Table, sqlgraph.NewFieldSpec(psychologistreference.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(psychologistreference.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(psychologistreference.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(psychologistreference.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
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
		_node.PatientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LinkedPsychologistIDs(); len(nodes) > 0 {
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
		_node.LinkedPsychologistID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SessionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PsychologistReference.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PsychologistReferenceUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PsychologistReferenceCreate) OnConflict(opts ...sql.ConflictOption) *PsychologistReferenceUpsertOne {
	_c.conflict = opts
	return &PsychologistReferenceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PsychologistReference.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PsychologistReferenceCreate) OnConflictColumns(columns ...string) *PsychologistReferenceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PsychologistReferenceUpsertOne{
		create: _c,
	}
}

type (
	// PsychologistReferenceUpsertOne is the builder for "upsert"-ing
	//  one PsychologistReference node.
	PsychologistReferenceUpsertOne struct {
		create *PsychologistReferenceCreate
	}

	// PsychologistReferenceUpsert is the "OnConflict" setter.
	PsychologistReferenceUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PsychologistReferenceUpsert) SetUpdatedAt(v time.Time) *PsychologistReferenceUpsert {
	u.Set(psychologistreference.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PsychologistReferenceUpsert) UpdateUpdatedAt() *PsychologistReferenceUpsert {
	u.SetExcluded(psychologistreference.FieldUpdatedAt)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *PsychologistReferenceUpsert) SetPatientID(v uuid.UUID) *PsychologistReferenceUpsert {
	u.Set(psychologistreference.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PsychologistReferenceUpsert) UpdatePatientID() *PsychologistReferenceUpsert {
	u.SetExcluded(psychologistreference.FieldPatientID)
	return u
}

// SetName sets the "name" field.
func (u *PsychologistReferenceUpsert) SetName(v string) *PsychologistReferenceUpsert {
	u.Set(psychologistreference.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PsychologistReferenceUpsert) UpdateName() *PsychologistReferenceUpsert {
	u.SetExcluded(psychologistreference.FieldName)
	return u
}

// SetLinkedPsychologistID sets the "linked_psychologist_id" field.
func (u *PsychologistReferenceUpsert) SetLinkedPsychologistID(v uuid.UUID) *PsychologistReferenceUpsert {
	u.Set(psychologistreference.FieldLinkedPsychologistID, v)
	return u
}

// UpdateLinkedPsychologistID sets the "linked_psychologist_id" field to the value that was provided on create.
func (u *PsychologistReferenceUpsert) UpdateLinkedPsychologistID() *PsychologistReferenceUpsert {
	u.SetExcluded(psychologistreference.FieldLinkedPsychologistID)
	return u
}

// ClearLinkedPsychologistID clears the value of the "linked_psychologist_id" field.
func (u *PsychologistReferenceUpsert) ClearLinkedPsychologistID() *PsychologistReferenceUpsert {
	u.SetNull(psychologistreference.FieldLinkedPsychologistID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PsychologistReference.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(psychologistreference.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PsychologistReferenceUpsertOne) UpdateNewValues() *PsychologistReferenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(psychologistreference.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(psychologistreference.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PsychologistReference.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PsychologistReferenceUpsertOne) Ignore() *PsychologistReferenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PsychologistReferenceUpsertOne) DoNothing() *PsychologistReferenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PsychologistReferenceCreate.OnConflict
// documentation for more info.
func (u *PsychologistReferenceUpsertOne) Update(set func(*PsychologistReferenceUpsert)) *PsychologistReferenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PsychologistReferenceUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PsychologistReferenceUpsertOne) SetUpdatedAt(v time.Time) *PsychologistReferenceUpsertOne {
	return u.Update(func(s *PsychologistReferenceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PsychologistReferenceUpsertOne) UpdateUpdatedAt() *PsychologistReferenceUpsertOne {
	return u.Update(func(s *PsychologistReferenceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *PsychologistReferenceUpsertOne) SetPatientID(v uuid.UUID) *PsychologistReferenceUpsertOne {
	return u.Update(func(s *PsychologistReferenceUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PsychologistReferenceUpsertOne) UpdatePatientID() *PsychologistReferenceUpsertOne {
	return u.Update(func(s *PsychologistReferenceUpsert) {
		s.UpdatePatientID()
	})
}

// SetName sets the "name" field.
func (u *PsychologistReferenceUpsertOne) SetName(v string) *PsychologistReferenceUpsertOne {
	return u.Update(func(s *PsychologistReferenceUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PsychologistReferenceUpsertOne) UpdateName() *PsychologistReferenceUpsertOne {
	return u.Update(func(s *PsychologistReferenceUpsert) {
		s.UpdateName()
	})
}

// SetLinkedPsychologistID sets the "linked_psychologist_id" field.
func (u *PsychologistReferenceUpsertOne) SetLinkedPsychologistID(v uuid.UUID) *PsychologistReferenceUpsertOne {
	return u.Update(func(s *PsychologistReferenceUpsert) {
		s.SetLinkedPsychologistID(v)
	})
}

// UpdateLinkedPsychologistID sets the "linked_psychologist_id" field to the value that was provided on create.
func (u *PsychologistReferenceUpsertOne) UpdateLinkedPsychologistID() *PsychologistReferenceUpsertOne {
	return u.Update(func(s *PsychologistReferenceUpsert) {
		s.UpdateLinkedPsychologistID()
	})
}

// ClearLinkedPsychologistID clears the value of the "linked_psychologist_id" field.
func (u *PsychologistReferenceUpsertOne) ClearLinkedPsychologistID() *PsychologistReferenceUpsertOne {
	return u.Update(func(s *PsychologistReferenceUpsert) {
		s.ClearLinkedPsychologistID()
	})
}

// Exec executes the query.
func (u *PsychologistReferenceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PsychologistReferenceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PsychologistReferenceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PsychologistReferenceUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PsychologistReferenceUpsertOne.ID is not supported by MySQL driver. Use PsychologistReferenceUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PsychologistReferenceUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PsychologistReferenceCreateBulk is the builder for creating many PsychologistReference entities in bulk.
type PsychologistReferenceCreateBulk struct {
	config
	err      error
	builders []*PsychologistReferenceCreate
	conflict []sql.ConflictOption
}

// Save creates the PsychologistReference entities in the database.
func (_c *PsychologistReferenceCreateBulk) Save(ctx context.Context) ([]*PsychologistReference, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PsychologistReference, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PsychologistReferenceMutation)
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
func (_c *PsychologistReferenceCreateBulk) SaveX(ctx context.Context) []*PsychologistReference {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PsychologistReferenceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PsychologistReferenceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PsychologistReference.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PsychologistReferenceUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PsychologistReferenceCreateBulk) OnConflict(opts ...sql.ConflictOption) *PsychologistReferenceUpsertBulk {
	_c.conflict = opts
	return &PsychologistReferenceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PsychologistReference.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PsychologistReferenceCreateBulk) OnConflictColumns(columns ...string) *PsychologistReferenceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PsychologistReferenceUpsertBulk{
		create: _c,
	}
}

// PsychologistReferenceUpsertBulk is the builder for "upsert"-ing
// a bulk of PsychologistReference nodes.
type PsychologistReferenceUpsertBulk struct {
	create *PsychologistReferenceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PsychologistReference.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(psychologistreference.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PsychologistReferenceUpsertBulk) UpdateNewValues() *PsychologistReferenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(psychologistreference.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(psychologistreference.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PsychologistReference.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PsychologistReferenceUpsertBulk) Ignore() *PsychologistReferenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PsychologistReferenceUpsertBulk) DoNothing() *PsychologistReferenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PsychologistReferenceCreateBulk.OnConflict
// documentation for more info.
func (u *PsychologistReferenceUpsertBulk) Update(set func(*PsychologistReferenceUpsert)) *PsychologistReferenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PsychologistReferenceUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PsychologistReferenceUpsertBulk) SetUpdatedAt(v time.Time) *PsychologistReferenceUpsertBulk {
	return u.Update(func(s *PsychologistReferenceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PsychologistReferenceUpsertBulk) UpdateUpdatedAt() *PsychologistReferenceUpsertBulk {
	return u.Update(func(s *PsychologistReferenceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *PsychologistReferenceUpsertBulk) SetPatientID(v uuid.UUID) *PsychologistReferenceUpsertBulk {
	return u.Update(func(s *PsychologistReferenceUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PsychologistReferenceUpsertBulk) UpdatePatientID() *PsychologistReferenceUpsertBulk {
	return u.Update(func(s *PsychologistReferenceUpsert) {
		s.UpdatePatientID()
	})
}

// SetName sets the "name" field.
func (u *PsychologistReferenceUpsertBulk) SetName(v string) *PsychologistReferenceUpsertBulk {
	return u.Update(func(s *PsychologistReferenceUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PsychologistReferenceUpsertBulk) UpdateName() *PsychologistReferenceUpsertBulk {
	return u.Update(func(s *PsychologistReferenceUpsert) {
		s.UpdateName()
	})
}

// SetLinkedPsychologistID sets the "linked_psychologist_id" field.
func (u *PsychologistReferenceUpsertBulk) SetLinkedPsychologistID(v uuid.UUID) *PsychologistReferenceUpsertBulk {
	return u.Update(func(s *PsychologistReferenceUpsert) {
		s.SetLinkedPsychologistID(v)
	})
}

// UpdateLinkedPsychologistID sets the "linked_psychologist_id" field to the value that was provided on create.
func (u *PsychologistReferenceUpsertBulk) UpdateLinkedPsychologistID() *PsychologistReferenceUpsertBulk {
	return u.Update(func(s *PsychologistReferenceUpsert) {
		s.UpdateLinkedPsychologistID()
	})
}

// ClearLinkedPsychologistID clears the value of the "linked_psychologist_id" field.
func (u *PsychologistReferenceUpsertBulk) ClearLinkedPsychologistID() *PsychologistReferenceUpsertBulk {
	return u.Update(func(s *PsychologistReferenceUpsert) {
		s.ClearLinkedPsychologistID()
	})
}

// Exec executes the query.
func (u *PsychologistReferenceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PsychologistReferenceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PsychologistReferenceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PsychologistReferenceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
