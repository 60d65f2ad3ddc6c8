// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adeolu-ojo/applytrack/gen/ent/duplicatepair"
	"github.com/adeolu-ojo/applytrack/gen/ent/predicate"
	"github.com/google/uuid"
)

// DuplicatePairQuery is the builder for querying DuplicatePair entities.
type DuplicatePairQuery struct {
	config
	ctx        *QueryContext
	order      []duplicatepair.OrderOption
	inters     []Interceptor
	predicates []predicate.DuplicatePair
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DuplicatePairQuery builder.
func (_q *DuplicatePairQuery) Where(ps ...predicate.DuplicatePair) *DuplicatePairQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *DuplicatePairQuery) Limit(limit int) *DuplicatePairQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *DuplicatePairQuery) Offset(offset int) *DuplicatePairQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *DuplicatePairQuery) Unique(unique bool) *DuplicatePairQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *DuplicatePairQuery) Order(o ...duplicatepair.OrderOption) *DuplicatePairQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// First returns the first DuplicatePair entity from the query.
// Returns a *NotFoundError when no DuplicatePair was found.
func (_q *DuplicatePairQuery) First(ctx context.Context) (*DuplicatePair, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{duplicatepair.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *DuplicatePairQuery) FirstX(ctx context.Context) *DuplicatePair {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first DuplicatePair ID from the query.
// Returns a *NotFoundError when no DuplicatePair ID was found.
func (_q *DuplicatePairQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{duplicatepair.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *DuplicatePairQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single DuplicatePair entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one DuplicatePair entity is found.
// Returns a *NotFoundError when no DuplicatePair entities are found.
func (_q *DuplicatePairQuery) Only(ctx context.Context) (*DuplicatePair, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{duplicatepair.Label}
	default:
		return nil, &NotSingularError{duplicatepair.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *DuplicatePairQuery) OnlyX(ctx context.Context) *DuplicatePair {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only DuplicatePair ID in the query.
// Returns a *NotSingularError when more than one DuplicatePair ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *DuplicatePairQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{duplicatepair.Label}
	default:
		err = &NotSingularError{duplicatepair.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *DuplicatePairQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of DuplicatePairs.
func (_q *DuplicatePairQuery) All(ctx context.Context) ([]*DuplicatePair, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*DuplicatePair, *DuplicatePairQuery]()
	return withInterceptors[[]*DuplicatePair](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *DuplicatePairQuery) AllX(ctx context.Context) []*DuplicatePair {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of DuplicatePair IDs.
func (_q *DuplicatePairQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(duplicatepair.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *DuplicatePairQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *DuplicatePairQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*DuplicatePairQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *DuplicatePairQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *DuplicatePairQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *DuplicatePairQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DuplicatePairQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *DuplicatePairQuery) Clone() *DuplicatePairQuery {
	if _q == nil {
		return nil
	}
	return &DuplicatePairQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]duplicatepair.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.DuplicatePair{}, _q.predicates...),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		JobID1 uuid.UUID `json:"job_id_1,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.DuplicatePair.Query().
//		GroupBy(duplicatepair.FieldJobID1).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *DuplicatePairQuery) GroupBy(field string, fields ...string) *DuplicatePairGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DuplicatePairGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = duplicatepair.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		JobID1 uuid.UUID `json:"job_id_1,omitempty"`
//	}
//
//	client.DuplicatePair.Query().
//		Select(duplicatepair.FieldJobID1).
//		Scan(ctx, &v)
func (_q *DuplicatePairQuery) Select(fields ...string) *DuplicatePairSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &DuplicatePairSelect{DuplicatePairQuery: _q}
	sbuild.label = duplicatepair.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DuplicatePairSelect configured with the given aggregations.
func (_q *DuplicatePairQuery) Aggregate(fns ...AggregateFunc) *DuplicatePairSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *DuplicatePairQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !duplicatepair.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
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

func (_q *DuplicatePairQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*DuplicatePair, error) {
	var (
		nodes = []*DuplicatePair{}
		_spec = _q.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*DuplicatePair).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &DuplicatePair{config: _q.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
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
	return nodes, nil
}

func (_q *DuplicatePairQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *DuplicatePairQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(duplicatepair.Table, duplicatepair.Columns, sqlgraph.NewFieldSpec(duplicatepair.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, duplicatepair.FieldID)
		for i := range fields {
			if fields[i] != duplicatepair.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *DuplicatePairQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(duplicatepair.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = duplicatepair.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
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

// DuplicatePairGroupBy is the group-by builder for DuplicatePair entities.
type DuplicatePairGroupBy struct {
	selector
	build *DuplicatePairQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *DuplicatePairGroupBy) Aggregate(fns ...AggregateFunc) *DuplicatePairGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *DuplicatePairGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DuplicatePairQuery, *DuplicatePairGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *DuplicatePairGroupBy) sqlScan(ctx context.Context, root *DuplicatePairQuery, v any) error {
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

// DuplicatePairSelect is the builder for selecting fields of DuplicatePair entities.
type DuplicatePairSelect struct {
	*DuplicatePairQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *DuplicatePairSelect) Aggregate(fns ...AggregateFunc) *DuplicatePairSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *DuplicatePairSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DuplicatePairQuery, *DuplicatePairSelect](ctx, _s.DuplicatePairQuery, _s, _s.inters, v)
}

func (_s *DuplicatePairSelect) sqlScan(ctx context.Context, root *DuplicatePairQuery, v any) error {
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
