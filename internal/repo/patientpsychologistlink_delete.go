// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/credvia/credvia_backend/internal/repo/patientpsychologistlink"
	"github.com/credvia/credvia_backend/internal/repo/predicate"
)

// PatientPsychologistLinkDelete is the builder for deleting a PatientPsychologistLink entity.
type PatientPsychologistLinkDelete struct {
	config
	hooks    []Hook
	mutation *PatientPsychologistLinkMutation
}

// Where appends a list predicates to the PatientPsychologistLinkDelete builder.
func (_d *PatientPsychologistLinkDelete) Where(ps ...predicate.PatientPsychologistLink) *PatientPsychologistLinkDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PatientPsychologistLinkDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PatientPsychologistLinkDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PatientPsychologistLinkDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(patientpsychologistlink.Table, sqlgraph.NewFieldSpec(patientpsychologistlink.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// PatientPsychologistLinkDeleteOne is the builder for deleting a single PatientPsychologistLink entity.
type PatientPsychologistLinkDeleteOne struct {
	_d *PatientPsychologistLinkDelete
}

// Where appends a list predicates to the PatientPsychologistLinkDelete builder.
func (_d *PatientPsychologistLinkDeleteOne) Where(ps ...predicate.PatientPsychologistLink) *PatientPsychologistLinkDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PatientPsychologistLinkDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{patientpsychologistlink.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PatientPsychologistLinkDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
