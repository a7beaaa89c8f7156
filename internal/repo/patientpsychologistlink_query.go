// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/credvia/credvia_backend/internal/repo/patient"
	"github.com/credvia/credvia_backend/internal/repo/patientpsychologistlink"
	"github.com/credvia/credvia_backend/internal/repo/predicate"
	"github.com/credvia/credvia_backend/internal/repo/psychologist"
	"github.com/google/uuid"
)

// PatientPsychologistLinkQuery is the builder for querying PatientPsychologistLink entities.
type PatientPsychologistLinkQuery struct {
	config
	ctx              *QueryContext
	order            []patientpsychologistlink.OrderOption
	inters           []Interceptor
	predicates       []predicate.PatientPsychologistLink
	withPatient      *PatientQuery
	withPsychologist *PsychologistQuery
	modifiers        []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the PatientPsychologistLinkQuery builder.
func (_q *PatientPsychologistLinkQuery) Where(ps ...predicate.PatientPsychologistLink) *PatientPsychologistLinkQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *PatientPsychologistLinkQuery) Limit(limit int) *PatientPsychologistLinkQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *PatientPsychologistLinkQuery) Offset(offset int) *PatientPsychologistLinkQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *PatientPsychologistLinkQuery) Unique(unique bool) *PatientPsychologistLinkQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *PatientPsychologistLinkQuery) Order(o ...patientpsychologistlink.OrderOption) *PatientPsychologistLinkQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryPatient chains the current query on the "patient" edge.
func (_q *PatientPsychologistLinkQuery) QueryPatient() *PatientQuery {
	query := (&PatientClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(patientpsychologistlink.Table, patientpsychologistlink.FieldID, selector),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, patientpsychologistlink.PatientTable, patientpsychologistlink.PatientColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryPsychologist chains the current query on the "psychologist" edge.
func (_q *PatientPsychologistLinkQuery) QueryPsychologist() *PsychologistQuery {
	query := (&PsychologistClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(patientpsychologistlink.Table, patientpsychologistlink.FieldID, selector),
			sqlgraph.To(psychologist.Table, psychologist.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, patientpsychologistlink.PsychologistTable, patientpsychologistlink.PsychologistColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first PatientPsychologistLink entity from the query.
// Returns a *NotFoundError when no PatientPsychologistLink was found.
func (_q *PatientPsychologistLinkQuery) First(ctx context.Context) (*PatientPsychologistLink, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{patientpsychologistlink.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *PatientPsychologistLinkQuery) FirstX(ctx context.Context) *PatientPsychologistLink {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first PatientPsychologistLink ID from the query.
// Returns a *NotFoundError when no PatientPsychologistLink ID was found.
func (_q *PatientPsychologistLinkQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{patientpsychologistlink.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *PatientPsychologistLinkQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single PatientPsychologistLink entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one PatientPsychologistLink entity is found.
// Returns a *NotFoundError when no PatientPsychologistLink entities are found.
func (_q *PatientPsychologistLinkQuery) Only(ctx context.Context) (*PatientPsychologistLink, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{patientpsychologistlink.Label}
	default:
		return nil, &NotSingularError{patientpsychologistlink.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *PatientPsychologistLinkQuery) OnlyX(ctx context.Context) *PatientPsychologistLink {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only PatientPsychologistLink ID in the query.
// Returns a *NotSingularError when more than one PatientPsychologistLink ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *PatientPsychologistLinkQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{patientpsychologistlink.Label}
	default:
		err = &NotSingularError{patientpsychologistlink.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *PatientPsychologistLinkQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of PatientPsychologistLinks.
func (_q *PatientPsychologistLinkQuery) All(ctx context.Context) ([]*PatientPsychologistLink, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*PatientPsychologistLink, *PatientPsychologistLinkQuery]()
	return withInterceptors[[]*PatientPsychologistLink](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *PatientPsychologistLinkQuery) AllX(ctx context.Context) []*PatientPsychologistLink {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of PatientPsychologistLink IDs.
func (_q *PatientPsychologistLinkQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(patientpsychologistlink.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *PatientPsychologistLinkQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *PatientPsychologistLinkQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*PatientPsychologistLinkQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *PatientPsychologistLinkQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *PatientPsychologistLinkQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("repo: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *PatientPsychologistLinkQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the PatientPsychologistLinkQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *PatientPsychologistLinkQuery) Clone() *PatientPsychologistLinkQuery {
	if _q == nil {
		return nil
	}
	return &PatientPsychologistLinkQuery{
		config:           _q.config,
		ctx:              _q.ctx.Clone(),
		order:            append([]patientpsychologistlink.OrderOption{}, _q.order...),
		inters:           append([]Interceptor{}, _q.inters...),
		predicates:       append([]predicate.PatientPsychologistLink{}, _q.predicates...),
		withPatient:      _q.withPatient.Clone(),
		withPsychologist: _q.withPsychologist.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithPatient tells the query-builder to eager-load the nodes that are connected to
// the "patient" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PatientPsychologistLinkQuery) WithPatient(opts ...func(*PatientQuery)) *PatientPsychologistLinkQuery {
	query := (&PatientClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPatient = query
	return _q
}

// WithPsychologist tells the query-builder to eager-load the nodes that are connected to
// the "psychologist" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PatientPsychologistLinkQuery) WithPsychologist(opts ...func(*PsychologistQuery)) *PatientPsychologistLinkQuery {
	query := (&PsychologistClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPsychologist = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.PatientPsychologistLink.Query().
//		GroupBy(patientpsychologistlink.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *PatientPsychologistLinkQuery) GroupBy(field string, fields ...string) *PatientPsychologistLinkGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &PatientPsychologistLinkGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = patientpsychologistlink.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.PatientPsychologistLink.Query().
//		Select(patientpsychologistlink.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *PatientPsychologistLinkQuery) Select(fields ...string) *PatientPsychologistLinkSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &PatientPsychologistLinkSelect{PatientPsychologistLinkQuery: _q}
	sbuild.label = patientpsychologistlink.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a PatientPsychologistLinkSelect configured with the given aggregations.
func (_q *PatientPsychologistLinkQuery) Aggregate(fns ...AggregateFunc) *PatientPsychologistLinkSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *PatientPsychologistLinkQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("repo: uninitialized interceptor (forgotten import repo/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !patientpsychologistlink.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *PatientPsychologistLinkQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*PatientPsychologistLink, error) {
	var (
		nodes       = []*PatientPsychologistLink{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withPatient != nil,
			_q.withPsychologist != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*PatientPsychologistLink).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &PatientPsychologistLink{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withPatient; query != nil {
		if err := _q.loadPatient(ctx, query, nodes, nil,
			func(n *PatientPsychologistLink, e *Patient) { n.Edges.Patient = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withPsychologist; query != nil {
		if err := _q.loadPsychologist(ctx, query, nodes, nil,
			func(n *PatientPsychologistLink, e *Psychologist) { n.Edges.Psychologist = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *PatientPsychologistLinkQuery) loadPatient(ctx context.Context, query *PatientQuery, nodes []*PatientPsychologistLink, init func(*PatientPsychologistLink), assign func(*PatientPsychologistLink, *Patient)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*PatientPsychologistLink)
	for i := range nodes {
		fk := nodes[i].PatientID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(patient.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "patient_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *PatientPsychologistLinkQuery) loadPsychologist(ctx context.Context, query *PsychologistQuery, nodes []*PatientPsychologistLink, init func(*PatientPsychologistLink), assign func(*PatientPsychologistLink, *Psychologist)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*PatientPsychologistLink)
	for i := range nodes {
		fk := nodes[i].PsychologistID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(psychologist.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "psychologist_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *PatientPsychologistLinkQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *PatientPsychologistLinkQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(patientpsychologistlink.Table, patientpsychologistlink.Columns, sqlgraph.NewFieldSpec(patientpsychologistlink.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, patientpsychologistlink.FieldID)
		for i := range fields {
			if fields[i] != patientpsychologistlink.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withPatient != nil {
			_spec.Node.AddColumnOnce(patientpsychologistlink.FieldPatientID)
		}
		if _q.withPsychologist != nil {
			_spec.Node.AddColumnOnce(patientpsychologistlink.FieldPsychologistID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *PatientPsychologistLinkQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(patientpsychologistlink.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = patientpsychologistlink.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *PatientPsychologistLinkQuery) ForUpdate(opts ...sql.LockOption) *PatientPsychologistLinkQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *PatientPsychologistLinkQuery) ForShare(opts ...sql.LockOption) *PatientPsychologistLinkQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// PatientPsychologistLinkGroupBy is the group-by builder for PatientPsychologistLink entities.
type PatientPsychologistLinkGroupBy struct {
	selector
	build *PatientPsychologistLinkQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *PatientPsychologistLinkGroupBy) Aggregate(fns ...AggregateFunc) *PatientPsychologistLinkGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *PatientPsychologistLinkGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PatientPsychologistLinkQuery, *PatientPsychologistLinkGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *PatientPsychologistLinkGroupBy) sqlScan(ctx context.Context, root *PatientPsychologistLinkQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// PatientPsychologistLinkSelect is the builder for selecting fields of PatientPsychologistLink entities.
type PatientPsychologistLinkSelect struct {
	*PatientPsychologistLinkQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *PatientPsychologistLinkSelect) Aggregate(fns ...AggregateFunc) *PatientPsychologistLinkSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *PatientPsychologistLinkSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PatientPsychologistLinkQuery, *PatientPsychologistLinkSelect](ctx, _s.PatientPsychologistLinkQuery, _s, _s.inters, v)
}

func (_s *PatientPsychologistLinkSelect) sqlScan(ctx context.Context, root *PatientPsychologistLinkQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
