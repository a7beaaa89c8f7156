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
	"github.com/credvia/credvia_backend/internal/repo/company"
	"github.com/credvia/credvia_backend/internal/repo/facialrecord"
	"github.com/credvia/credvia_backend/internal/repo/guide"
	"github.com/credvia/credvia_backend/internal/repo/patient"
	"github.com/google/uuid"
)

// GuideCreate is the builder for creating a Guide entity.
type GuideCreate struct {
	config
	mutation *GuideMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *GuideCreate) SetCreatedAt(v time.Time) *GuideCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GuideCreate) SetNillableCreatedAt(v *time.Time) *GuideCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *GuideCreate) SetUpdatedAt(v time.Time) *GuideCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *GuideCreate) SetNillableUpdatedAt(v *time.Time) *GuideCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *GuideCreate) SetPatientID(v uuid.UUID) *GuideCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetCompanyID sets the "company_id" field.
func (_c *GuideCreate) SetCompanyID(v uuid.UUID) *GuideCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetNumber sets the "number" field.
func (_c *GuideCreate) SetNumber(v string) *GuideCreate {
	_c.mutation.SetNumber(v)
	return _c
}

// SetTotalCredits sets the "total_credits" field.
func (_c *GuideCreate) SetTotalCredits(v int) *GuideCreate {
	_c.mutation.SetTotalCredits(v)
	return _c
}

// SetUsedCredits sets the "used_credits" field.
func (_c *GuideCreate) SetUsedCredits(v int) *GuideCreate {
	_c.mutation.SetUsedCredits(v)
	return _c
}

// SetNillableUsedCredits sets the "used_credits" field if the given value is not nil.
func (_c *GuideCreate) SetNillableUsedCredits(v *int) *GuideCreate {
	if v != nil {
		_c.SetUsedCredits(*v)
	}
	return _c
}

// SetExpirationDate sets the "expiration_date" field.
func (_c *GuideCreate) SetExpirationDate(v time.Time) *GuideCreate {
	_c.mutation.SetExpirationDate(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *GuideCreate) SetStatus(v guide.Status) *GuideCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *GuideCreate) SetNillableStatus(v *guide.Status) *GuideCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GuideCreate) SetID(v uuid.UUID) *GuideCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *GuideCreate) SetNillableID(v *uuid.UUID) *GuideCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *GuideCreate) SetPatient(v *Patient) *GuideCreate {
	return _c.SetPatientID(v.ID)
}

// SetCompany sets the "company" edge to the Company entity.
func (_c *GuideCreate) SetCompany(v *Company) *GuideCreate {
	return _c.SetCompanyID(v.ID)
}

// AddFacialIDs adds the "facials" edge to the FacialRecord entity by IDs.
func (_c *GuideCreate) AddFacialIDs(ids ...uuid.UUID) *GuideCreate {
	_c.mutation.AddFacialIDs(ids...)
	return _c
}

// AddFacials adds the "facials" edges to the FacialRecord entity.
func (_c *GuideCreate) AddFacials(v ...*FacialRecord) *GuideCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFacialIDs(ids...)
}

// Mutation returns the GuideMutation object of the builder.
func (_c *GuideCreate) Mutation() *GuideMutation {
	return _c.mutation
}

// Save creates the Guide in the database.
func (_c *GuideCreate) Save(ctx context.Context) (*Guide, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GuideCreate) SaveX(ctx context.Context) *Guide {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GuideCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GuideCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GuideCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := guide.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := guide.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.UsedCredits(); !ok {
		v := guide.DefaultUsedCredits
		_c.mutation.SetUsedCredits(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := guide.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := guide.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GuideCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Guide.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Guide.updated_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "Guide.patient_id"`)}
	}
	if _, ok := _c.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`repo: missing required field "Guide.company_id"`)}
	}
	if _, ok := _c.mutation.Number(); !ok {
		return &ValidationError{Name: "number", err: errors.New(`repo: missing required field "Guide.number"`)}
	}
	if v, ok := _c.mutation.Number(); ok {
		if err := guide.NumberValidator(v); err != nil {
			return &ValidationError{Name: "number", err: fmt.Errorf(`repo: validator failed for field "Guide.number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalCredits(); !ok {
		return &ValidationError{Name: "total_credits", err: errors.New(`repo: missing required field "Guide.total_credits"`)}
	}
	if v, ok := _c.mutation.TotalCredits(); ok {
		if err := guide.TotalCreditsValidator(v); err != nil {
			return &ValidationError{Name: "total_credits", err: fmt.Errorf(`repo: validator failed for field "Guide.total_credits": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UsedCredits(); !ok {
		return &ValidationError{Name: "used_credits", err: errors.New(`repo: missing required field "Guide.used_credits"`)}
	}
	if v, ok := _c.mutation.UsedCredits(); ok {
		if err := guide.UsedCreditsValidator(v); err != nil {
			return &ValidationError{Name: "used_credits", err: fmt.Errorf(`repo: validator failed for field "Guide.used_credits": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExpirationDate(); !ok {
		return &ValidationError{Name: "expiration_date", err: errors.New(`repo: missing required field "Guide.expiration_date"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Guide.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := guide.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Guide.status": %w`, err)}
		}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "Guide.patient"`)}
	}
	if len(_c.mutation.CompanyIDs()) == 0 {
		return &ValidationError{Name: "company", err: errors.New(`repo: missing required edge "Guide.company"`)}
	}
	return nil
}

func (_c *GuideCreate) sqlSave(ctx context.Context) (*Guide, error) {
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

func (_c *GuideCreate) createSpec() (*Guide, *sqlgraph.CreateSpec) {
	var (
		_node = &Guide{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(guide.Table, sqlgraph.NewFieldSpec(guide.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(guide.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(guide.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Number(); ok {
		_spec.SetField(guide.FieldNumber, field.TypeString, value)
		_node.Number = value
	}
	if value, ok := _c.mutation.TotalCredits(); ok {
		_spec.SetField(guide.FieldTotalCredits, field.TypeInt, value)
		_node.TotalCredits = value
	}
	if value, ok := _c.mutation.UsedCredits(); ok {
		_spec.SetField(guide.FieldUsedCredits, field.TypeInt, value)
		_node.UsedCredits = value
	}
	if value, ok := _c.mutation.ExpirationDate(); ok {
		_spec.SetField(guide.FieldExpirationDate, field.TypeTime, value)
		_node.ExpirationDate = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(guide.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   guide.PatientTable,
			Columns: []string{guide.PatientColumn},
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
	if nodes := _c.mutation.CompanyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   guide.CompanyTable,
			Columns: []string{guide.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(company.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CompanyID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FacialsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   guide.FacialsTable,
			Columns: []string{guide.FacialsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(facialrecord.FieldID, field.TypeUUID),
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
//	client.Guide.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GuideUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *GuideCreate) OnConflict(opts ...sql.ConflictOption) *GuideUpsertOne {
	_c.conflict = opts
	return &GuideUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Guide.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GuideCreate) OnConflictColumns(columns ...string) *GuideUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GuideUpsertOne{
		create: _c,
	}
}

type (
	// GuideUpsertOne is the builder for "upsert"-ing
	//  one Guide node.
	GuideUpsertOne struct {
		create *GuideCreate
	}

	// GuideUpsert is the "OnConflict" setter.
	GuideUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *GuideUpsert) SetUpdatedAt(v time.Time) *GuideUpsert {
	u.Set(guide.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GuideUpsert) UpdateUpdatedAt() *GuideUpsert {
	u.SetExcluded(guide.FieldUpdatedAt)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *GuideUpsert) SetPatientID(v uuid.UUID) *GuideUpsert {
	u.Set(guide.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *GuideUpsert) UpdatePatientID() *GuideUpsert {
	u.SetExcluded(guide.FieldPatientID)
	return u
}

// SetCompanyID sets the "company_id" field.
func (u *GuideUpsert) SetCompanyID(v uuid.UUID) *GuideUpsert {
	u.Set(guide.FieldCompanyID, v)
	return u
}

// UpdateCompanyID sets the "company_id" field to the value that was provided on create.
func (u *GuideUpsert) UpdateCompanyID() *GuideUpsert {
	u.SetExcluded(guide.FieldCompanyID)
	return u
}

// SetNumber sets the "number" field.
func (u *GuideUpsert) SetNumber(v string) *GuideUpsert {
	u.Set(guide.FieldNumber, v)
	return u
}

// UpdateNumber sets the "number" field to the value that was provided on create.
func (u *GuideUpsert) UpdateNumber() *GuideUpsert {
	u.SetExcluded(guide.FieldNumber)
	return u
}

// SetTotalCredits sets the "total_credits" field.
func (u *GuideUpsert) SetTotalCredits(v int) *GuideUpsert {
	u.Set(guide.FieldTotalCredits, v)
	return u
}

// UpdateTotalCredits sets the "total_credits" field to the value that was provided on create.
func (u *GuideUpsert) UpdateTotalCredits() *GuideUpsert {
	u.SetExcluded(guide.FieldTotalCredits)
	return u
}

// AddTotalCredits adds v to the "total_credits" field.
func (u *GuideUpsert) AddTotalCredits(v int) *GuideUpsert {
	u.Add(guide.FieldTotalCredits, v)
	return u
}

// SetUsedCredits sets the "used_credits" field.
func (u *GuideUpsert) SetUsedCredits(v int) *GuideUpsert {
	u.Set(guide.FieldUsedCredits, v)
	return u
}

// UpdateUsedCredits sets the "used_credits" field to the value that was provided on create.
func (u *GuideUpsert) UpdateUsedCredits() *GuideUpsert {
	u.SetExcluded(guide.FieldUsedCredits)
	return u
}

// AddUsedCredits adds v to the "used_credits" field.
func (u *GuideUpsert) AddUsedCredits(v int) *GuideUpsert {
	u.Add(guide.FieldUsedCredits, v)
	return u
}

// SetExpirationDate sets the "expiration_date" field.
func (u *GuideUpsert) SetExpirationDate(v time.Time) *GuideUpsert {
	u.Set(guide.FieldExpirationDate, v)
	return u
}

// UpdateExpirationDate sets the "expiration_date" field to the value that was provided on create.
func (u *GuideUpsert) UpdateExpirationDate() *GuideUpsert {
	u.SetExcluded(guide.FieldExpirationDate)
	return u
}

// SetStatus sets the "status" field.
func (u *GuideUpsert) SetStatus(v guide.Status) *GuideUpsert {
	u.Set(guide.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *GuideUpsert) UpdateStatus() *GuideUpsert {
	u.SetExcluded(guide.FieldStatus)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Guide.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(guide.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GuideUpsertOne) UpdateNewValues() *GuideUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(guide.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(guide.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Guide.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *GuideUpsertOne) Ignore() *GuideUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GuideUpsertOne) DoNothing() *GuideUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GuideCreate.OnConflict
// documentation for more info.
func (u *GuideUpsertOne) Update(set func(*GuideUpsert)) *GuideUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GuideUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GuideUpsertOne) SetUpdatedAt(v time.Time) *GuideUpsertOne {
	return u.Update(func(s *GuideUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GuideUpsertOne) UpdateUpdatedAt() *GuideUpsertOne {
	return u.Update(func(s *GuideUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *GuideUpsertOne) SetPatientID(v uuid.UUID) *GuideUpsertOne {
	return u.Update(func(s *GuideUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *GuideUpsertOne) UpdatePatientID() *GuideUpsertOne {
	return u.Update(func(s *GuideUpsert) {
		s.UpdatePatientID()
	})
}

// SetCompanyID sets the "company_id" field.
func (u *GuideUpsertOne) SetCompanyID(v uuid.UUID) *GuideUpsertOne {
	return u.Update(func(s *GuideUpsert) {
		s.SetCompanyID(v)
	})
}

// UpdateCompanyID sets the "company_id" field to the value that was provided on create.
func (u *GuideUpsertOne) UpdateCompanyID() *GuideUpsertOne {
	return u.Update(func(s *GuideUpsert) {
		s.UpdateCompanyID()
	})
}

// SetNumber sets the "number" field.
func (u *GuideUpsertOne) SetNumber(v string) *GuideUpsertOne {
	return u.Update(func(s *GuideUpsert) {
		s.SetNumber(v)
	})
}

// UpdateNumber sets the "number" field to the value that was provided on create.
func (u *GuideUpsertOne) UpdateNumber() *GuideUpsertOne {
	return u.Update(func(s *GuideUpsert) {
		s.UpdateNumber()
	})
}

// SetTotalCredits sets the "total_credits" field.
func (u *GuideUpsertOne) SetTotalCredits(v int) *GuideUpsertOne {
	return u.Update(func(s *GuideUpsert) {
		s.SetTotalCredits(v)
	})
}

// AddTotalCredits adds v to the "total_credits" field.
func (u *GuideUpsertOne) AddTotalCredits(v int) *GuideUpsertOne {
	return u.Update(func(s *GuideUpsert) {
		s.AddTotalCredits(v)
	})
}

// UpdateTotalCredits sets the "total_credits" field to the value that was provided on create.
func (u *GuideUpsertOne) UpdateTotalCredits() *GuideUpsertOne {
	return u.Update(func(s *GuideUpsert) {
		s.UpdateTotalCredits()
	})
}

// SetUsedCredits sets the "used_credits" field.
func (u *GuideUpsertOne) SetUsedCredits(v int) *GuideUpsertOne {
	return u.Update(func(s *GuideUpsert) {
		s.SetUsedCredits(v)
	})
}

// AddUsedCredits adds v to the "used_credits" field.
func (u *GuideUpsertOne) AddUsedCredits(v int) *GuideUpsertOne {
	return u.Update(func(s *GuideUpsert) {
		s.AddUsedCredits(v)
	})
}

// UpdateUsedCredits sets the "used_credits" field to the value that was provided on create.
func (u *GuideUpsertOne) UpdateUsedCredits() *GuideUpsertOne {
	return u.Update(func(s *GuideUpsert) {
		s.UpdateUsedCredits()
	})
}

// SetExpirationDate sets the "expiration_date" field.
func (u *GuideUpsertOne) SetExpirationDate(v time.Time) *GuideUpsertOne {
	return u.Update(func(s *GuideUpsert) {
		s.SetExpirationDate(v)
	})
}

// UpdateExpirationDate sets the "expiration_date" field to the value that was provided on create.
func (u *GuideUpsertOne) UpdateExpirationDate() *GuideUpsertOne {
	return u.Update(func(s *GuideUpsert) {
		s.UpdateExpirationDate()
	})
}

// SetStatus sets the "status" field.
func (u *GuideUpsertOne) SetStatus(v guide.Status) *GuideUpsertOne {
	return u.Update(func(s *GuideUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *GuideUpsertOne) UpdateStatus() *GuideUpsertOne {
	return u.Update(func(s *GuideUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *GuideUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for GuideCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GuideUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *GuideUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: GuideUpsertOne.ID is not supported by MySQL driver. Use GuideUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *GuideUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// GuideCreateBulk is the builder for creating many Guide entities in bulk.
type GuideCreateBulk struct {
	config
	err      error
	builders []*GuideCreate
	conflict []sql.ConflictOption
}

// Save creates the Guide entities in the database.
func (_c *GuideCreateBulk) Save(ctx context.Context) ([]*Guide, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Guide, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GuideMutation)
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
func (_c *GuideCreateBulk) SaveX(ctx context.Context) []*Guide {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GuideCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GuideCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Guide.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GuideUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *GuideCreateBulk) OnConflict(opts ...sql.ConflictOption) *GuideUpsertBulk {
	_c.conflict = opts
	return &GuideUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Guide.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GuideCreateBulk) OnConflictColumns(columns ...string) *GuideUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GuideUpsertBulk{
		create: _c,
	}
}

// GuideUpsertBulk is the builder for "upsert"-ing
// a bulk of Guide nodes.
type GuideUpsertBulk struct {
	create *GuideCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Guide.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(guide.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GuideUpsertBulk) UpdateNewValues() *GuideUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(guide.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(guide.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Guide.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *GuideUpsertBulk) Ignore() *GuideUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GuideUpsertBulk) DoNothing() *GuideUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GuideCreateBulk.OnConflict
// documentation for more info.
func (u *GuideUpsertBulk) Update(set func(*GuideUpsert)) *GuideUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GuideUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GuideUpsertBulk) SetUpdatedAt(v time.Time) *GuideUpsertBulk {
	return u.Update(func(s *GuideUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GuideUpsertBulk) UpdateUpdatedAt() *GuideUpsertBulk {
	return u.Update(func(s *GuideUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *GuideUpsertBulk) SetPatientID(v uuid.UUID) *GuideUpsertBulk {
	return u.Update(func(s *GuideUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *GuideUpsertBulk) UpdatePatientID() *GuideUpsertBulk {
	return u.Update(func(s *GuideUpsert) {
		s.UpdatePatientID()
	})
}

// SetCompanyID sets the "company_id" field.
func (u *GuideUpsertBulk) SetCompanyID(v uuid.UUID) *GuideUpsertBulk {
	return u.Update(func(s *GuideUpsert) {
		s.SetCompanyID(v)
	})
}

// UpdateCompanyID sets the "company_id" field to the value that was provided on create.
func (u *GuideUpsertBulk) UpdateCompanyID() *GuideUpsertBulk {
	return u.Update(func(s *GuideUpsert) {
		s.UpdateCompanyID()
	})
}

// SetNumber sets the "number" field.
func (u *GuideUpsertBulk) SetNumber(v string) *GuideUpsertBulk {
	return u.Update(func(s *GuideUpsert) {
		s.SetNumber(v)
	})
}

// UpdateNumber sets the "number" field to the value that was provided on create.
func (u *GuideUpsertBulk) UpdateNumber() *GuideUpsertBulk {
	return u.Update(func(s *GuideUpsert) {
		s.UpdateNumber()
	})
}

// SetTotalCredits sets the "total_credits" field.
func (u *GuideUpsertBulk) SetTotalCredits(v int) *GuideUpsertBulk {
	return u.Update(func(s *GuideUpsert) {
		s.SetTotalCredits(v)
	})
}

// AddTotalCredits adds v to the "total_credits" field.
func (u *GuideUpsertBulk) AddTotalCredits(v int) *GuideUpsertBulk {
	return u.Update(func(s *GuideUpsert) {
		s.AddTotalCredits(v)
	})
}

// UpdateTotalCredits sets the "total_credits" field to the value that was provided on create.
func (u *GuideUpsertBulk) UpdateTotalCredits() *GuideUpsertBulk {
	return u.Update(func(s *GuideUpsert) {
		s.UpdateTotalCredits()
	})
}

// SetUsedCredits sets the "used_credits" field.
func (u *GuideUpsertBulk) SetUsedCredits(v int) *GuideUpsertBulk {
	return u.Update(func(s *GuideUpsert) {
		s.SetUsedCredits(v)
	})
}

// AddUsedCredits adds v to the "used_credits" field.
func (u *GuideUpsertBulk) AddUsedCredits(v int) *GuideUpsertBulk {
	return u.Update(func(s *GuideUpsert) {
		s.AddUsedCredits(v)
	})
}

// UpdateUsedCredits sets the "used_credits" field to the value that was provided on create.
func (u *GuideUpsertBulk) UpdateUsedCredits() *GuideUpsertBulk {
	return u.Update(func(s *GuideUpsert) {
		s.UpdateUsedCredits()
	})
}

// SetExpirationDate sets the "expiration_date" field.
func (u *GuideUpsertBulk) SetExpirationDate(v time.Time) *GuideUpsertBulk {
	return u.Update(func(s *GuideUpsert) {
		s.SetExpirationDate(v)
	})
}

// UpdateExpirationDate sets the "expiration_date" field to the value that was provided on create.
func (u *GuideUpsertBulk) UpdateExpirationDate() *GuideUpsertBulk {
	return u.Update(func(s *GuideUpsert) {
		s.UpdateExpirationDate()
	})
}

// SetStatus sets the "status" field.
func (u *GuideUpsertBulk) SetStatus(v guide.Status) *GuideUpsertBulk {
	return u.Update(func(s *GuideUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *GuideUpsertBulk) UpdateStatus() *GuideUpsertBulk {
	return u.Update(func(s *GuideUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *GuideUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the GuideCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for GuideCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GuideUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
