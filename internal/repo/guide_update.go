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
	"github.com/credvia/credvia_backend/internal/repo/company"
	"github.com/credvia/credvia_backend/internal/repo/facialrecord"
	"github.com/credvia/credvia_backend/internal/repo/guide"
	"github.com/credvia/credvia_backend/internal/repo/patient"
	"github.com/credvia/credvia_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// GuideUpdate is the builder for updating Guide entities.
type GuideUpdate struct {
	config
	hooks    []Hook
	mutation *GuideMutation
}

// Where appends a list predicates to the GuideUpdate builder.
func (_u *GuideUpdate) Where(ps ...predicate.Guide) *GuideUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GuideUpdate) SetUpdatedAt(v time.Time) *GuideUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *GuideUpdate) SetPatientID(v uuid.UUID) *GuideUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *GuideUpdate) SetNillablePatientID(v *uuid.UUID) *GuideUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *GuideUpdate) SetCompanyID(v uuid.UUID) *GuideUpdate {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *GuideUpdate) SetNillableCompanyID(v *uuid.UUID) *GuideUpdate {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetNumber sets the "number" field.
func (_u *GuideUpdate) SetNumber(v string) *GuideUpdate {
	_u.mutation.SetNumber(v)
	return _u
}

// SetNillableNumber sets the "number" field if the given value is not nil.
func (_u *GuideUpdate) SetNillableNumber(v *string) *GuideUpdate {
	if v != nil {
		_u.SetNumber(*v)
	}
	return _u
}

// SetTotalCredits sets the "total_credits" field.
func (_u *GuideUpdate) SetTotalCredits(v int) *GuideUpdate {
	_u.mutation.ResetTotalCredits()
	_u.mutation.SetTotalCredits(v)
	return _u
}

// SetNillableTotalCredits sets the "total_credits" field if the given value is not nil.
func (_u *GuideUpdate) SetNillableTotalCredits(v *int) *GuideUpdate {
	if v != nil {
		_u.SetTotalCredits(*v)
	}
	return _u
}

// AddTotalCredits adds value to the "total_credits" field.
func (_u *GuideUpdate) AddTotalCredits(v int) *GuideUpdate {
	_u.mutation.AddTotalCredits(v)
	return _u
}

// SetUsedCredits sets the "used_credits" field.
func (_u *GuideUpdate) SetUsedCredits(v int) *GuideUpdate {
	_u.mutation.ResetUsedCredits()
	_u.mutation.SetUsedCredits(v)
	return _u
}

// SetNillableUsedCredits sets the "used_credits" field if the given value is not nil.
func (_u *GuideUpdate) SetNillableUsedCredits(v *int) *GuideUpdate {
	if v != nil {
		_u.SetUsedCredits(*v)
	}
	return _u
}

// AddUsedCredits adds value to the "used_credits" field.
func (_u *GuideUpdate) AddUsedCredits(v int) *GuideUpdate {
	_u.mutation.AddUsedCredits(v)
	return _u
}

// SetExpirationDate sets the "expiration_date" field.
func (_u *GuideUpdate) SetExpirationDate(v time.Time) *GuideUpdate {
	_u.mutation.SetExpirationDate(v)
	return _u
}

// SetNillableExpirationDate sets the "expiration_date" field if the given value is not nil.
func (_u *GuideUpdate) SetNillableExpirationDate(v *time.Time) *GuideUpdate {
	if v != nil {
		_u.SetExpirationDate(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *GuideUpdate) SetStatus(v guide.Status) *GuideUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GuideUpdate) SetNillableStatus(v *guide.Status) *GuideUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *GuideUpdate) SetPatient(v *Patient) *GuideUpdate {
	return _u.SetPatientID(v.ID)
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *GuideUpdate) SetCompany(v *Company) *GuideUpdate {
	return _u.SetCompanyID(v.ID)
}

// AddFacialIDs adds the "facials" edge to the FacialRecord entity by IDs.
func (_u *GuideUpdate) AddFacialIDs(ids ...uuid.UUID) *GuideUpdate {
	_u.mutation.AddFacialIDs(ids...)
	return _u
}

// AddFacials adds the "facials" edges to the FacialRecord entity.
func (_u *GuideUpdate) AddFacials(v ...*FacialRecord) *GuideUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFacialIDs(ids...)
}

// Mutation returns the GuideMutation object of the builder.
func (_u *GuideUpdate) Mutation() *GuideMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *GuideUpdate) ClearPatient() *GuideUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *GuideUpdate) ClearCompany() *GuideUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// ClearFacials clears all "facials" edges to the FacialRecord entity.
func (_u *GuideUpdate) ClearFacials() *GuideUpdate {
	_u.mutation.ClearFacials()
	return _u
}

// RemoveFacialIDs removes the "facials" edge to FacialRecord entities by IDs.
func (_u *GuideUpdate) RemoveFacialIDs(ids ...uuid.UUID) *GuideUpdate {
	_u.mutation.RemoveFacialIDs(ids...)
	return _u
}

// RemoveFacials removes "facials" edges to FacialRecord entities.
func (_u *GuideUpdate) RemoveFacials(v ...*FacialRecord) *GuideUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFacialIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GuideUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GuideUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GuideUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GuideUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GuideUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := guide.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GuideUpdate) check() error {
	if v, ok := _u.mutation.Number(); ok {
		if err := guide.NumberValidator(v); err != nil {
			return &ValidationError{Name: "number", err: fmt.Errorf(`repo: validator failed for field "Guide.number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalCredits(); ok {
		if err := guide.TotalCreditsValidator(v); err != nil {
			return &ValidationError{Name: "total_credits", err: fmt.Errorf(`repo: validator failed for field "Guide.total_credits": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UsedCredits(); ok {
		if err := guide.UsedCreditsValidator(v); err != nil {
			return &ValidationError{Name: "used_credits", err: fmt.Errorf(`repo: validator failed for field "Guide.used_credits": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := guide.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Guide.status": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Guide.patient"`)
	}
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Guide.company"`)
	}
	return nil
}

func (_u *GuideUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(guide.Table, guide.Columns, sqlgraph.NewFieldSpec(guide.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(guide.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Number(); ok {
		_spec.SetField(guide.FieldNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalCredits(); ok {
		_spec.SetField(guide.FieldTotalCredits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalCredits(); ok {
		_spec.AddField(guide.FieldTotalCredits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UsedCredits(); ok {
		_spec.SetField(guide.FieldUsedCredits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUsedCredits(); ok {
		_spec.AddField(guide.FieldUsedCredits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpirationDate(); ok {
		_spec.SetField(guide.FieldExpirationDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(guide.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.PatientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CompanyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FacialsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFacialsIDs(); len(nodes) > 0 && !_u.mutation.FacialsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FacialsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{guide.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GuideUpdateOne is the builder for updating a single Guide entity.
type GuideUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GuideMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GuideUpdateOne) SetUpdatedAt(v time.Time) *GuideUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *GuideUpdateOne) SetPatientID(v uuid.UUID) *GuideUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *GuideUpdateOne) SetNillablePatientID(v *uuid.UUID) *GuideUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *GuideUpdateOne) SetCompanyID(v uuid.UUID) *GuideUpdateOne {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *GuideUpdateOne) SetNillableCompanyID(v *uuid.UUID) *GuideUpdateOne {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetNumber sets the "number" field.
func (_u *GuideUpdateOne) SetNumber(v string) *GuideUpdateOne {
	_u.mutation.SetNumber(v)
	return _u
}

// SetNillableNumber sets the "number" field if the given value is not nil.
func (_u *GuideUpdateOne) SetNillableNumber(v *string) *GuideUpdateOne {
	if v != nil {
		_u.SetNumber(*v)
	}
	return _u
}

// SetTotalCredits sets the "total_credits" field.
func (_u *GuideUpdateOne) SetTotalCredits(v int) *GuideUpdateOne {
	_u.mutation.ResetTotalCredits()
	_u.mutation.SetTotalCredits(v)
	return _u
}

// SetNillableTotalCredits sets the "total_credits" field if the given value is not nil.
func (_u *GuideUpdateOne) SetNillableTotalCredits(v *int) *GuideUpdateOne {
	if v != nil {
		_u.SetTotalCredits(*v)
	}
	return _u
}

// AddTotalCredits adds value to the "total_credits" field.
func (_u *GuideUpdateOne) AddTotalCredits(v int) *GuideUpdateOne {
	_u.mutation.AddTotalCredits(v)
	return _u
}

// SetUsedCredits sets the "used_credits" field.
func (_u *GuideUpdateOne) SetUsedCredits(v int) *GuideUpdateOne {
	_u.mutation.ResetUsedCredits()
	_u.mutation.SetUsedCredits(v)
	return _u
}

// SetNillableUsedCredits sets the "used_credits" field if the given value is not nil.
func (_u *GuideUpdateOne) SetNillableUsedCredits(v *int) *GuideUpdateOne {
	if v != nil {
		_u.SetUsedCredits(*v)
	}
	return _u
}

// AddUsedCredits adds value to the "used_credits" field.
func (_u *GuideUpdateOne) AddUsedCredits(v int) *GuideUpdateOne {
	_u.mutation.AddUsedCredits(v)
	return _u
}

// SetExpirationDate sets the "expiration_date" field.
func (_u *GuideUpdateOne) SetExpirationDate(v time.Time) *GuideUpdateOne {
	_u.mutation.SetExpirationDate(v)
	return _u
}

// SetNillableExpirationDate sets the "expiration_date" field if the given value is not nil.
func (_u *GuideUpdateOne) SetNillableExpirationDate(v *time.Time) *GuideUpdateOne {
	if v != nil {
		_u.SetExpirationDate(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *GuideUpdateOne) SetStatus(v guide.Status) *GuideUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GuideUpdateOne) SetNillableStatus(v *guide.Status) *GuideUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *GuideUpdateOne) SetPatient(v *Patient) *GuideUpdateOne {
	return _u.SetPatientID(v.ID)
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *GuideUpdateOne) SetCompany(v *Company) *GuideUpdateOne {
	return _u.SetCompanyID(v.ID)
}

// AddFacialIDs adds the "facials" edge to the FacialRecord entity by IDs.
func (_u *GuideUpdateOne) AddFacialIDs(ids ...uuid.UUID) *GuideUpdateOne {
	_u.mutation.AddFacialIDs(ids...)
	return _u
}

// AddFacials adds the "facials" edges to the FacialRecord entity.
func (_u *GuideUpdateOne) AddFacials(v ...*FacialRecord) *GuideUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFacialIDs(ids...)
}

// Mutation returns the GuideMutation object of the builder.
func (_u *GuideUpdateOne) Mutation() *GuideMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *GuideUpdateOne) ClearPatient() *GuideUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *GuideUpdateOne) ClearCompany() *GuideUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// ClearFacials clears all "facials" edges to the FacialRecord entity.
func (_u *GuideUpdateOne) ClearFacials() *GuideUpdateOne {
	_u.mutation.ClearFacials()
	return _u
}

// RemoveFacialIDs removes the "facials" edge to FacialRecord entities by IDs.
func (_u *GuideUpdateOne) RemoveFacialIDs(ids ...uuid.UUID) *GuideUpdateOne {
	_u.mutation.RemoveFacialIDs(ids...)
	return _u
}

// RemoveFacials removes "facials" edges to FacialRecord entities.
func (_u *GuideUpdateOne) RemoveFacials(v ...*FacialRecord) *GuideUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFacialIDs(ids...)
}

// Where appends a list predicates to the GuideUpdate builder.
func (_u *GuideUpdateOne) Where(ps ...predicate.Guide) *GuideUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GuideUpdateOne) Select(field string, fields ...string) *GuideUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Guide entity.
func (_u *GuideUpdateOne) Save(ctx context.Context) (*Guide, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GuideUpdateOne) SaveX(ctx context.Context) *Guide {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GuideUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GuideUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GuideUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := guide.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GuideUpdateOne) check() error {
	if v, ok := _u.mutation.Number(); ok {
		if err := guide.NumberValidator(v); err != nil {
			return &ValidationError{Name: "number", err: fmt.Errorf(`repo: validator failed for field "Guide.number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalCredits(); ok {
		if err := guide.TotalCreditsValidator(v); err != nil {
			return &ValidationError{Name: "total_credits", err: fmt.Errorf(`repo: validator failed for field "Guide.total_credits": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UsedCredits(); ok {
		if err := guide.UsedCreditsValidator(v); err != nil {
			return &ValidationError{Name: "used_credits", err: fmt.Errorf(`repo: validator failed for field "Guide.used_credits": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := guide.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Guide.status": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Guide.patient"`)
	}
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Guide.company"`)
	}
	return nil
}

func (_u *GuideUpdateOne) sqlSave(ctx context.Context) (_node *Guide, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(guide.Table, guide.Columns, sqlgraph.NewFieldSpec(guide.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Guide.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, guide.FieldID)
		for _, f := range fields {
			if !guide.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != guide.FieldID {
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
		_spec.SetField(guide.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Number(); ok {
		_spec.SetField(guide.FieldNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalCredits(); ok {
		_spec.SetField(guide.FieldTotalCredits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalCredits(); ok {
		_spec.AddField(guide.FieldTotalCredits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UsedCredits(); ok {
		_spec.SetField(guide.FieldUsedCredits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUsedCredits(); ok {
		_spec.AddField(guide.FieldUsedCredits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpirationDate(); ok {
		_spec.SetField(guide.FieldExpirationDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(guide.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.PatientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CompanyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FacialsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFacialsIDs(); len(nodes) > 0 && !_u.mutation.FacialsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FacialsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Guide{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{guide.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
