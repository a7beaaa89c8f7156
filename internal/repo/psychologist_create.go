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
	"github.com/credvia/credvia_backend/internal/repo/patientpsychologistlink"
	"github.com/credvia/credvia_backend/internal/repo/psychologist"
	"github.com/credvia/credvia_backend/internal/repo/psychologistreference"
	"github.com/credvia/credvia_backend/internal/repo/session"
	"github.com/credvia/credvia_backend/internal/repo/user"
	"github.com/google/uuid"
)

// PsychologistCreate is the builder for creating a Psychologist entity.
type PsychologistCreate struct {
	config
	mutation *PsychologistMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PsychologistCreate) SetCreatedAt(v time.Time) *PsychologistCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PsychologistCreate) SetNillableCreatedAt(v *time.Time) *PsychologistCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PsychologistCreate) SetUpdatedAt(v time.Time) *PsychologistCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PsychologistCreate) SetNillableUpdatedAt(v *time.Time) *PsychologistCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *PsychologistCreate) SetUserID(v uuid.UUID) *PsychologistCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCrp sets the "crp" field.
func (_c *PsychologistCreate) SetCrp(v string) *PsychologistCreate {
	_c.mutation.SetCrp(v)
	return _c
}

// SetNillableCrp sets the "crp" field if the given value is not nil.
func (_c *PsychologistCreate) SetNillableCrp(v *string) *PsychologistCreate {
	if v != nil {
		_c.SetCrp(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PsychologistCreate) SetID(v uuid.UUID) *PsychologistCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PsychologistCreate) SetNillableID(v *uuid.UUID) *PsychologistCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *PsychologistCreate) SetUser(v *User) *PsychologistCreate {
	return _c.SetUserID(v.ID)
}

// AddSessionIDs adds the "sessions" edge to the Session entity by IDs.
func (_c *PsychologistCreate) AddSessionIDs(ids ...uuid.UUID) *PsychologistCreate {
	_c.mutation.AddSessionIDs(ids...)
	return _c
}

// AddSessions adds the "sessions" edges to the Session entity.
func (_c *PsychologistCreate) AddSessions(v ...*Session) *PsychologistCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSessionIDs(ids...)
}

// AddLinkIDs adds the "links" edge to the PatientPsychologistLink entity by IDs.
func (_c *PsychologistCreate) AddLinkIDs(ids ...uuid.UUID) *PsychologistCreate {
	_c.mutation.AddLinkIDs(ids...)
	return _c
}

// AddLinks adds the "links" edges to the PatientPsychologistLink entity.
func (_c *PsychologistCreate) AddLinks(v ...*PatientPsychologistLink) *PsychologistCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLinkIDs(ids...)
}

// AddLinkedReferenceIDs adds the "linked_references" edge to the PsychologistReference entity by IDs.
func (_c *PsychologistCreate) AddLinkedReferenceIDs(ids ...uuid.UUID) *PsychologistCreate {
	_c.mutation.AddLinkedReferenceIDs(ids...)
	return _c
}

// AddLinkedReferences adds the "linked_references" edges to the PsychologistReference entity.
func (_c *PsychologistCreate) AddLinkedReferences(v ...*PsychologistReference) *PsychologistCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLinkedReferenceIDs(ids...)
}

// Mutation returns the PsychologistMutation object of the builder.
func (_c *PsychologistCreate) Mutation() *PsychologistMutation {
	return _c.mutation
}

// Save creates the Psychologist in the database.
func (_c *PsychologistCreate) Save(ctx context.Context) (*Psychologist, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PsychologistCreate) SaveX(ctx context.Context) *Psychologist {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PsychologistCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PsychologistCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PsychologistCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := psychologist.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := psychologist.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := psychologist.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PsychologistCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Psychologist.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Psychologist.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "Psychologist.user_id"`)}
	}
	if v, ok := _c.mutation.Crp(); ok {
		if err := psychologist.CrpValidator(v); err != nil {
			return &ValidationError{Name: "crp", err: fmt.Errorf(`repo: validator failed for field "Psychologist.crp": %w`, err)}
		}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`repo: missing required edge "Psychologist.user"`)}
	}
	return nil
}

func (_c *PsychologistCreate) sqlSave(ctx context.Context) (*Psychologist, error) {
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

func (_c *PsychologistCreate) createSpec() (*Psychologist, *sqlgraph.CreateSpec) {
	var (
		_node = &Psychologist{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(psychologist.Table, sqlgraph.NewFieldSpec(psychologist.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(psychologist.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(psychologist.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Crp(); ok {
		_spec.SetField(psychologist.FieldCrp, field.TypeString, value)
		_node.Crp = &value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SessionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LinksIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LinkedReferencesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Psychologist.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PsychologistUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PsychologistCreate) OnConflict(opts ...sql.ConflictOption) *PsychologistUpsertOne {
	_c.conflict = opts
	return &PsychologistUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Psychologist.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PsychologistCreate) OnConflictColumns(columns ...string) *PsychologistUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PsychologistUpsertOne{
		create: _c,
	}
}

type (
	// PsychologistUpsertOne is the builder for "upsert"-ing
	//  one Psychologist node.
	PsychologistUpsertOne struct {
		create *PsychologistCreate
	}

	// PsychologistUpsert is the "OnConflict" setter.
	PsychologistUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PsychologistUpsert) SetUpdatedAt(v time.Time) *PsychologistUpsert {
	u.Set(psychologist.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PsychologistUpsert) UpdateUpdatedAt() *PsychologistUpsert {
	u.SetExcluded(psychologist.FieldUpdatedAt)
	return u
}

// SetUserID sets the "user_id" field.
func (u *PsychologistUpsert) SetUserID(v uuid.UUID) *PsychologistUpsert {
	u.Set(psychologist.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PsychologistUpsert) UpdateUserID() *PsychologistUpsert {
	u.SetExcluded(psychologist.FieldUserID)
	return u
}

// SetCrp sets the "crp" field.
func (u *PsychologistUpsert) SetCrp(v string) *PsychologistUpsert {
	u.Set(psychologist.FieldCrp, v)
	return u
}

// UpdateCrp sets the "crp" field to the value that was provided on create.
func (u *PsychologistUpsert) UpdateCrp() *PsychologistUpsert {
	u.SetExcluded(psychologist.FieldCrp)
	return u
}

// ClearCrp clears the value of the "crp" field.
func (u *PsychologistUpsert) ClearCrp() *PsychologistUpsert {
	u.SetNull(psychologist.FieldCrp)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Psychologist.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(psychologist.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PsychologistUpsertOne) UpdateNewValues() *PsychologistUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(psychologist.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(psychologist.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Psychologist.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PsychologistUpsertOne) Ignore() *PsychologistUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PsychologistUpsertOne) DoNothing() *PsychologistUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PsychologistCreate.OnConflict
// documentation for more info.
func (u *PsychologistUpsertOne) Update(set func(*PsychologistUpsert)) *PsychologistUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PsychologistUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PsychologistUpsertOne) SetUpdatedAt(v time.Time) *PsychologistUpsertOne {
	return u.Update(func(s *PsychologistUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PsychologistUpsertOne) UpdateUpdatedAt() *PsychologistUpsertOne {
	return u.Update(func(s *PsychologistUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *PsychologistUpsertOne) SetUserID(v uuid.UUID) *PsychologistUpsertOne {
	return u.Update(func(s *PsychologistUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PsychologistUpsertOne) UpdateUserID() *PsychologistUpsertOne {
	return u.Update(func(s *PsychologistUpsert) {
		s.UpdateUserID()
	})
}

// SetCrp sets the "crp" field.
func (u *PsychologistUpsertOne) SetCrp(v string) *PsychologistUpsertOne {
	return u.Update(func(s *PsychologistUpsert) {
		s.SetCrp(v)
	})
}

// UpdateCrp sets the "crp" field to the value that was provided on create.
func (u *PsychologistUpsertOne) UpdateCrp() *PsychologistUpsertOne {
	return u.Update(func(s *PsychologistUpsert) {
		s.UpdateCrp()
	})
}

// ClearCrp clears the value of the "crp" field.
func (u *PsychologistUpsertOne) ClearCrp() *PsychologistUpsertOne {
	return u.Update(func(s *PsychologistUpsert) {
		s.ClearCrp()
	})
}

// Exec executes the query.
func (u *PsychologistUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PsychologistCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PsychologistUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PsychologistUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PsychologistUpsertOne.ID is not supported by MySQL driver. Use PsychologistUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PsychologistUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PsychologistCreateBulk is the builder for creating many Psychologist entities in bulk.
type PsychologistCreateBulk struct {
	config
	err      error
	builders []*PsychologistCreate
	conflict []sql.ConflictOption
}

// Save creates the Psychologist entities in the database.
func (_c *PsychologistCreateBulk) Save(ctx context.Context) ([]*Psychologist, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Psychologist, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PsychologistMutation)
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
func (_c *PsychologistCreateBulk) SaveX(ctx context.Context) []*Psychologist {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PsychologistCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PsychologistCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Psychologist.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PsychologistUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PsychologistCreateBulk) OnConflict(opts ...sql.ConflictOption) *PsychologistUpsertBulk {
	_c.conflict = opts
	return &PsychologistUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Psychologist.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PsychologistCreateBulk) OnConflictColumns(columns ...string) *PsychologistUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PsychologistUpsertBulk{
		create: _c,
	}
}

// PsychologistUpsertBulk is the builder for "upsert"-ing
// a bulk of Psychologist nodes.
type PsychologistUpsertBulk struct {
	create *PsychologistCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Psychologist.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(psychologist.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PsychologistUpsertBulk) UpdateNewValues() *PsychologistUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(psychologist.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(psychologist.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Psychologist.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PsychologistUpsertBulk) Ignore() *PsychologistUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PsychologistUpsertBulk) DoNothing() *PsychologistUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PsychologistCreateBulk.OnConflict
// documentation for more info.
func (u *PsychologistUpsertBulk) Update(set func(*PsychologistUpsert)) *PsychologistUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PsychologistUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PsychologistUpsertBulk) SetUpdatedAt(v time.Time) *PsychologistUpsertBulk {
	return u.Update(func(s *PsychologistUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PsychologistUpsertBulk) UpdateUpdatedAt() *PsychologistUpsertBulk {
	return u.Update(func(s *PsychologistUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *PsychologistUpsertBulk) SetUserID(v uuid.UUID) *PsychologistUpsertBulk {
	return u.Update(func(s *PsychologistUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PsychologistUpsertBulk) UpdateUserID() *PsychologistUpsertBulk {
	return u.Update(func(s *PsychologistUpsert) {
		s.UpdateUserID()
	})
}

// SetCrp sets the "crp" field.
func (u *PsychologistUpsertBulk) SetCrp(v string) *PsychologistUpsertBulk {
	return u.Update(func(s *PsychologistUpsert) {
		s.SetCrp(v)
	})
}

// UpdateCrp sets the "crp" field to the value that was provided on create.
func (u *PsychologistUpsertBulk) UpdateCrp() *PsychologistUpsertBulk {
	return u.Update(func(s *PsychologistUpsert) {
		s.UpdateCrp()
	})
}

// ClearCrp clears the value of the "crp" field.
func (u *PsychologistUpsertBulk) ClearCrp() *PsychologistUpsertBulk {
	return u.Update(func(s *PsychologistUpsert) {
		s.ClearCrp()
	})
}

// Exec executes the query.
func (u *PsychologistUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PsychologistCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PsychologistCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PsychologistUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
