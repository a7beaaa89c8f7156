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
	"github.com/credvia/credvia_backend/internal/repo/facialrecord"
	"github.com/credvia/credvia_backend/internal/repo/guide"
	"github.com/credvia/credvia_backend/internal/repo/patient"
	"github.com/google/uuid"
)

// FacialRecordCreate is the builder for creating a FacialRecord entity.
type FacialRecordCreate struct {
	config
	mutation *FacialRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *FacialRecordCreate) SetCreatedAt(v time.Time) *FacialRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FacialRecordCreate) SetNillableCreatedAt(v *time.Time) *FacialRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *FacialRecordCreate) SetPatientID(v uuid.UUID) *FacialRecordCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetGuideID sets the "guide_id" field.
func (_c *FacialRecordCreate) SetGuideID(v uuid.UUID) *FacialRecordCreate {
	_c.mutation.SetGuideID(v)
	return _c
}

// SetPerformedAt sets the "performed_at" field.
func (_c *FacialRecordCreate) SetPerformedAt(v time.Time) *FacialRecordCreate {
	_c.mutation.SetPerformedAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *FacialRecordCreate) SetID(v uuid.UUID) *FacialRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FacialRecordCreate) SetNillableID(v *uuid.UUID) *FacialRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *FacialRecordCreate) SetPatient(v *Patient) *FacialRecordCreate {
	return _c.SetPatientID(v.ID)
}

// SetGuide sets the "guide" edge to the Guide entity.
func (_c *FacialRecordCreate) SetGuide(v *Guide) *FacialRecordCreate {
	return _c.SetGuideID(v.ID)
}

// Mutation returns the FacialRecordMutation object of the builder.
func (_c *FacialRecordCreate) Mutation() *FacialRecordMutation {
	return _c.mutation
}

// Save creates the FacialRecord in the database.
func (_c *FacialRecordCreate) Save(ctx context.Context) (*FacialRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FacialRecordCreate) SaveX(ctx context.Context) *FacialRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FacialRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FacialRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FacialRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := facialrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := facialrecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FacialRecordCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "FacialRecord.created_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "FacialRecord.patient_id"`)}
	}
	if _, ok := _c.mutation.GuideID(); !ok {
		return &ValidationError{Name: "guide_id", err: errors.New(`repo: missing required field "FacialRecord.guide_id"`)}
	}
	if _, ok := _c.mutation.PerformedAt(); !ok {
		return &ValidationError{Name: "performed_at", err: errors.New(`repo: missing required field "FacialRecord.performed_at"`)}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "FacialRecord.patient"`)}
	}
	if len(_c.mutation.GuideIDs()) == 0 {
		return &ValidationError{Name: "guide", err: errors.New(`repo: missing required edge "FacialRecord.guide"`)}
	}
	return nil
}

func (_c *FacialRecordCreate) sqlSave(ctx context.Context) (*FacialRecord, error) {
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

func (_c *FacialRecordCreate) createSpec() (*FacialRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &FacialRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(facialrecord.Table, sqlgraph.NewFieldSpec(facialrecord.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(facialrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.PerformedAt(); ok {
		_spec.SetField(facialrecord.FieldPerformedAt, field.TypeTime, value)
		_node.PerformedAt = value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   facialrecord.PatientTable,
			Columns: []string{facialrecord.PatientColumn},
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
	if nodes := _c.mutation.GuideIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   facialrecord.GuideTable,
			Columns: []string{facialrecord.GuideColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(guide.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.GuideID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.FacialRecord.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FacialRecordUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *FacialRecordCreate) OnConflict(opts ...sql.ConflictOption) *FacialRecordUpsertOne {
	_c.conflict = opts
	return &FacialRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FacialRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FacialRecordCreate) OnConflictColumns(columns ...string) *FacialRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FacialRecordUpsertOne{
		create: _c,
	}
}

type (
	// FacialRecordUpsertOne is the builder for "upsert"-ing
	//  one FacialRecord node.
	FacialRecordUpsertOne struct {
		create *FacialRecordCreate
	}

	// FacialRecordUpsert is the "OnConflict" setter.
	FacialRecordUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.FacialRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(facialrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FacialRecordUpsertOne) UpdateNewValues() *FacialRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(facialrecord.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(facialrecord.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.PatientID(); exists {
			s.SetIgnore(facialrecord.FieldPatientID)
		}
		if _, exists := u.create.mutation.GuideID(); exists {
			s.SetIgnore(facialrecord.FieldGuideID)
		}
		if _, exists := u.create.mutation.PerformedAt(); exists {
			s.SetIgnore(facialrecord.FieldPerformedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FacialRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *FacialRecordUpsertOne) Ignore() *FacialRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FacialRecordUpsertOne) DoNothing() *FacialRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FacialRecordCreate.OnConflict
// documentation for more info.
func (u *FacialRecordUpsertOne) Update(set func(*FacialRecordUpsert)) *FacialRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FacialRecordUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *FacialRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for FacialRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FacialRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *FacialRecordUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: FacialRecordUpsertOne.ID is not supported by MySQL driver. Use FacialRecordUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *FacialRecordUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// FacialRecordCreateBulk is the builder for creating many FacialRecord entities in bulk.
type FacialRecordCreateBulk struct {
	config
	err      error
	builders []*FacialRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the FacialRecord entities in the database.
func (_c *FacialRecordCreateBulk) Save(ctx context.Context) ([]*FacialRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FacialRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FacialRecordMutation)
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
func (_c *FacialRecordCreateBulk) SaveX(ctx context.Context) []*FacialRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FacialRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FacialRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.FacialRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FacialRecordUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *FacialRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *FacialRecordUpsertBulk {
	_c.conflict = opts
	return &FacialRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FacialRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FacialRecordCreateBulk) OnConflictColumns(columns ...string) *FacialRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FacialRecordUpsertBulk{
		create: _c,
	}
}

// FacialRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of FacialRecord nodes.
type FacialRecordUpsertBulk struct {
	create *FacialRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.FacialRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(facialrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FacialRecordUpsertBulk) UpdateNewValues() *FacialRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(facialrecord.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(facialrecord.FieldCreatedAt)
			}
			if _, exists := b.mutation.PatientID(); exists {
				s.SetIgnore(facialrecord.FieldPatientID)
			}
			if _, exists := b.mutation.GuideID(); exists {
				s.SetIgnore(facialrecord.FieldGuideID)
			}
			if _, exists := b.mutation.PerformedAt(); exists {
				s.SetIgnore(facialrecord.FieldPerformedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FacialRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *FacialRecordUpsertBulk) Ignore() *FacialRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FacialRecordUpsertBulk) DoNothing() *FacialRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FacialRecordCreateBulk.OnConflict
// documentation for more info.
func (u *FacialRecordUpsertBulk) Update(set func(*FacialRecordUpsert)) *FacialRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FacialRecordUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *FacialRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the FacialRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for FacialRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FacialRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
