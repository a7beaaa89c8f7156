// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/credvia/credvia_backend/internal/repo/facialrecord"
	"github.com/credvia/credvia_backend/internal/repo/predicate"
)

// FacialRecordUpdate is the builder for updating FacialRecord entities.
type FacialRecordUpdate struct {
	config
	hooks    []Hook
	mutation *FacialRecordMutation
}

// Where appends a list predicates to the FacialRecordUpdate builder.
func (_u *FacialRecordUpdate) Where(ps ...predicate.FacialRecord) *FacialRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the FacialRecordMutation object of the builder.
func (_u *FacialRecordUpdate) Mutation() *FacialRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FacialRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FacialRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FacialRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FacialRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FacialRecordUpdate) check() error {
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "FacialRecord.patient"`)
	}
	if _u.mutation.GuideCleared() && len(_u.mutation.GuideIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "FacialRecord.guide"`)
	}
	return nil
}

func (_u *FacialRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(facialrecord.Table, facialrecord.Columns, sqlgraph.NewFieldSpec(facialrecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{facialrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FacialRecordUpdateOne is the builder for updating a single FacialRecord entity.
type FacialRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FacialRecordMutation
}

// Mutation returns the FacialRecordMutation object of the builder.
func (_u *FacialRecordUpdateOne) Mutation() *FacialRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the FacialRecordUpdate builder.
func (_u *FacialRecordUpdateOne) Where(ps ...predicate.FacialRecord) *FacialRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FacialRecordUpdateOne) Select(field string, fields ...string) *FacialRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FacialRecord entity.
func (_u *FacialRecordUpdateOne) Save(ctx context.Context) (*FacialRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FacialRecordUpdateOne) SaveX(ctx context.Context) *FacialRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FacialRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FacialRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FacialRecordUpdateOne) check() error {
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "FacialRecord.patient"`)
	}
	if _u.mutation.GuideCleared() && len(_u.mutation.GuideIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "FacialRecord.guide"`)
	}
	return nil
}

func (_u *FacialRecordUpdateOne) sqlSave(ctx context.Context) (_node *FacialRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(facialrecord.Table, facialrecord.Columns, sqlgraph.NewFieldSpec(facialrecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "FacialRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, facialrecord.FieldID)
		for _, f := range fields {
			if !facialrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != facialrecord.FieldID {
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
	_node = &FacialRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{facialrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
