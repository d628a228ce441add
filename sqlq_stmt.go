package sqlq

import "strconv"

/*
Statement builders are immutable records. Every builder method takes the
receiver by value and returns a modified copy; inner slices are
copy-appended. A statement, or any intermediate version of one, can be
stored, shared between goroutines, and branched into diverging variants
without aliasing.

Validation failures are carried inside the record and surfaced by `.Build`;
the first error wins, and a failed statement yields no text and no args.
*/

// Starts a select statement with the provided final placeholder notation.
func MakeSelect(ph Placeholder) SelectQuery { return SelectQuery{ph: ph} }

// Starts an insert statement with the provided final placeholder notation.
func MakeInsert(ph Placeholder) InsertQuery { return InsertQuery{ph: ph} }

// Starts an update statement with the provided final placeholder notation.
func MakeUpdate(ph Placeholder) UpdateQuery { return UpdateQuery{ph: ph} }

// Starts a delete statement with the provided final placeholder notation.
func MakeDelete(ph Placeholder) DeleteQuery { return DeleteQuery{ph: ph} }

/*
Composable select statement. Clause order in the output is canonical and
independent from the call order:

	SELECT [DISTINCT] cols FROM table [as alias]
	-> joins -> filter -> group by -> order by -> limit -> offset

Bound values follow the same canonical order.
*/
type SelectQuery struct {
	ph       Placeholder
	table    string
	alias    string
	distinct bool
	cols     []string
	joins    []Clause
	filter   Clause
	groups   Clause
	orders   Clause
	limit    int64
	offset   int64
	err      error
}

// Sets the table and its optional alias, replacing any previous value.
func (self SelectQuery) Table(table, alias string) SelectQuery {
	self.table, self.alias = table, alias
	return self
}

// Marks the statement as `SELECT DISTINCT`.
func (self SelectQuery) Distinct() SelectQuery {
	self.distinct = true
	return self
}

/*
Appends columns to the select list, each rendered as `alias.col`, or `col`
when the alias is empty. With no columns, appends `alias.*`, or `*` when the
alias is also empty. Accumulates across calls. When never called, the select
list defaults to `*`.
*/
func (self SelectQuery) Cols(alias string, cols ...string) SelectQuery {
	rendered := make([]string, 0, len(cols))

	if len(cols) == 0 {
		rendered = append(rendered, identString(alias, `*`))
	}
	for _, col := range cols {
		if col == `` {
			return self.fail(errValidation(`building select list`, `missing column name`))
		}
		rendered = append(rendered, identString(alias, col))
	}

	self.cols = append(copyStrings(self.cols), rendered...)
	return self
}

// Appends verbatim entries to the select list, such as expressions or
// casts. Accumulates across calls, interleaving with `.Cols` in call order.
func (self SelectQuery) ColsRaw(cols ...string) SelectQuery {
	for _, col := range cols {
		if col == `` {
			return self.fail(errValidation(`building select list`, `missing column expression`))
		}
	}
	self.cols = append(copyStrings(self.cols), cols...)
	return self
}

// Appends a join clause. Repeatable; joins render in call order. Shortcut
// for `JoinOn` + error propagation.
func (self SelectQuery) Join(kind JoinKind, table, alias string, on ...Expr) SelectQuery {
	clause := JoinOn(kind, table, alias, on...)
	if clause.err != nil {
		return self.fail(clause.err)
	}
	self.joins = append(copyClauses(self.joins), clause)
	return self
}

// Sets the filter clause, replacing any previous value. Shortcut for
// `Where` + error propagation.
func (self SelectQuery) Filter(exprs ...Expr) SelectQuery {
	clause := Where(exprs...)
	if clause.err != nil {
		return self.fail(clause.err)
	}
	self.filter = clause
	return self
}

// Sets the group-by clause, replacing any previous value. Shortcut for
// `GroupBy` + error propagation.
func (self SelectQuery) GroupBy(groups ...Group) SelectQuery {
	clause := GroupBy(groups...)
	if clause.err != nil {
		return self.fail(clause.err)
	}
	self.groups = clause
	return self
}

// Sets the order-by clause, replacing any previous value. Shortcut for
// `OrderBy` + error propagation.
func (self SelectQuery) OrderBy(ords ...Ord) SelectQuery {
	clause := OrderBy(ords...)
	if clause.err != nil {
		return self.fail(clause.err)
	}
	self.orders = clause
	return self
}

// Sets the limit, rendered as a literal count. Zero means no limit clause.
func (self SelectQuery) Limit(val int64) SelectQuery {
	if val < 0 {
		return self.fail(errValidation(`building select statement`, `negative limit %v`, val))
	}
	self.limit = val
	return self
}

// Sets the offset, rendered as a literal count. Zero means no offset clause.
func (self SelectQuery) Offset(val int64) SelectQuery {
	if val < 0 {
		return self.fail(errValidation(`building select statement`, `negative offset %v`, val))
	}
	self.offset = val
	return self
}

// Returns the error carried by the statement, if any. `.Build` returns the
// same error; this is a shortcut for checking before building.
func (self SelectQuery) Err() error { return self.err }

/*
Renders the statement into its final text and args, substituting markers
according to the statement's placeholder notation. Pure and repeatable:
building twice yields identical results.
*/
func (self SelectQuery) Build() (string, []any, error) {
	return buildStatement(self.ph, self.buildBui)
}

func (self SelectQuery) buildBui() Bui {
	const while = `building select statement`

	try(self.err)
	if self.table == `` {
		panic(errValidation(while, `missing table name`))
	}

	bui := MakeBui(128, 8)
	bui.Str(`SELECT`)
	if self.distinct {
		bui.Str(`DISTINCT`)
	}

	if len(self.cols) == 0 {
		bui.Str(`*`)
	} else {
		appendNames(&bui, self.cols)
	}

	bui.Str(`FROM`)
	bui.Str(self.table)
	if self.alias != `` {
		bui.Str(`as`)
		bui.Str(self.alias)
	}

	for _, join := range self.joins {
		join.appendClause(&bui)
	}
	self.filter.appendClause(&bui)
	self.groups.appendClause(&bui)
	self.orders.appendClause(&bui)

	if self.limit > 0 {
		bui.Str(`LIMIT`)
		bui.Str(strconv.FormatInt(self.limit, 10))
	}
	if self.offset > 0 {
		bui.Str(`OFFSET`)
		bui.Str(strconv.FormatInt(self.offset, 10))
	}

	return bui
}

func (self SelectQuery) fail(err error) SelectQuery {
	if self.err == nil {
		self.err = err
	}
	return self
}

/*
Composable insert statement. Canonical clause order:

	INSERT INTO table(cols) VALUES (...), (...) -> returning
*/
type InsertQuery struct {
	ph        Placeholder
	table     string
	cols      []string
	tuples    [][]any
	returning []string
	err       error
}

// Sets the table, replacing any previous value.
func (self InsertQuery) Table(table string) InsertQuery {
	self.table = table
	return self
}

// Sets the inserted column names, replacing any previous value.
func (self InsertQuery) Cols(cols ...string) InsertQuery {
	for _, col := range cols {
		if col == `` {
			return self.fail(errValidation(`building insert statement`, `missing column name`))
		}
	}
	self.cols = copyStrings(cols)
	return self
}

/*
Appends one value tuple. Repeatable; tuples render in call order. Each value
contributes one marker. Every tuple's length must match the column count,
verified at `.Build`.
*/
func (self InsertQuery) Values(vals ...any) InsertQuery {
	self.tuples = append(copyTuples(self.tuples), copyInterfaces(vals))
	return self
}

// Sets the returned column names, replacing any previous value.
func (self InsertQuery) Returning(cols ...string) InsertQuery {
	self.returning = copyStrings(cols)
	return self
}

// Returns the error carried by the statement, if any.
func (self InsertQuery) Err() error { return self.err }

// Renders the statement into its final text and args. Pure and repeatable.
func (self InsertQuery) Build() (string, []any, error) {
	return buildStatement(self.ph, self.buildBui)
}

func (self InsertQuery) buildBui() Bui {
	const while = `building insert statement`

	try(self.err)
	if self.table == `` {
		panic(errValidation(while, `missing table name`))
	}
	if len(self.cols) == 0 {
		panic(errValidation(while, `expected at least one column`))
	}
	if len(self.tuples) == 0 {
		panic(errValidation(while, `expected at least one value tuple`))
	}

	bui := MakeBui(128, len(self.tuples)*len(self.cols))
	bui.Str(`INSERT INTO`)
	bui.Str(self.table)
	bui.Raw(`(`)
	appendNames(&bui, self.cols)
	bui.Raw(`)`)

	bui.Str(`VALUES`)
	for ind, tuple := range self.tuples {
		if len(tuple) != len(self.cols) {
			panic(errValidation(
				while, `tuple %v has %v values, expected %v`, ind, len(tuple), len(self.cols),
			))
		}

		if ind > 0 {
			bui.Raw(`,`)
		}
		bui.Str(`(`)
		for valInd, val := range tuple {
			if valInd > 0 {
				bui.Raw(`,`)
			}
			bui.Arg(val)
		}
		bui.Raw(`)`)
	}

	appendReturning(&bui, self.returning)
	return bui
}

func (self InsertQuery) fail(err error) InsertQuery {
	if self.err == nil {
		self.err = err
	}
	return self
}

/*
Composable update statement. Canonical clause order:

	UPDATE table SET ... -> filter -> returning

The set clause may be provided only once; a second call is an error. Nested
selects in assignments must use the generic marker notation and are
renumbered by the single substitution pass of this statement.
*/
type UpdateQuery struct {
	ph         Placeholder
	table      string
	set        Clause
	setDefined bool
	filter     Clause
	returning  []string
	err        error
}

// Sets the table, replacing any previous value.
func (self UpdateQuery) Table(table string) UpdateQuery {
	self.table = table
	return self
}

// Provides the set clause. Callable at most once. Shortcut for `Set` +
// error propagation.
func (self UpdateQuery) Set(items ...SetItem) UpdateQuery {
	if self.setDefined {
		return self.fail(errValidation(`building update statement`, `set clause already defined`))
	}
	self.setDefined = true

	clause := Set(items...)
	if clause.err != nil {
		return self.fail(clause.err)
	}
	self.set = clause
	return self
}

// Sets the filter clause, replacing any previous value. Shortcut for
// `Where` + error propagation.
func (self UpdateQuery) Filter(exprs ...Expr) UpdateQuery {
	clause := Where(exprs...)
	if clause.err != nil {
		return self.fail(clause.err)
	}
	self.filter = clause
	return self
}

// Sets the returned column names, replacing any previous value.
func (self UpdateQuery) Returning(cols ...string) UpdateQuery {
	self.returning = copyStrings(cols)
	return self
}

// Returns the error carried by the statement, if any.
func (self UpdateQuery) Err() error { return self.err }

// Renders the statement into its final text and args. Pure and repeatable.
func (self UpdateQuery) Build() (string, []any, error) {
	return buildStatement(self.ph, self.buildBui)
}

func (self UpdateQuery) buildBui() Bui {
	const while = `building update statement`

	try(self.err)
	if self.table == `` {
		panic(errValidation(while, `missing table name`))
	}
	if !self.setDefined {
		panic(errValidation(while, `missing set clause`))
	}

	bui := MakeBui(128, 8)
	bui.Str(`UPDATE`)
	bui.Str(self.table)
	self.set.appendClause(&bui)
	self.filter.appendClause(&bui)
	appendReturning(&bui, self.returning)
	return bui
}

func (self UpdateQuery) fail(err error) UpdateQuery {
	if self.err == nil {
		self.err = err
	}
	return self
}

/*
Composable delete statement. Canonical clause order:

	DELETE FROM table [as alias] -> using -> filter -> returning
*/
type DeleteQuery struct {
	ph         Placeholder
	table      string
	alias      string
	usingTable string
	usingAlias string
	filter     Clause
	returning  []string
	err        error
}

// Sets the table and its optional alias, replacing any previous value.
func (self DeleteQuery) Table(table, alias string) DeleteQuery {
	self.table, self.alias = table, alias
	return self
}

// Sets the `USING` table and its optional alias, replacing any previous
// value.
func (self DeleteQuery) Using(table, alias string) DeleteQuery {
	if table == `` {
		return self.fail(errValidation(`building delete statement`, `missing using table name`))
	}
	self.usingTable, self.usingAlias = table, alias
	return self
}

// Sets the filter clause, replacing any previous value. Shortcut for
// `Where` + error propagation.
func (self DeleteQuery) Filter(exprs ...Expr) DeleteQuery {
	clause := Where(exprs...)
	if clause.err != nil {
		return self.fail(clause.err)
	}
	self.filter = clause
	return self
}

// Sets the returned column names, replacing any previous value.
func (self DeleteQuery) Returning(cols ...string) DeleteQuery {
	self.returning = copyStrings(cols)
	return self
}

// Returns the error carried by the statement, if any.
func (self DeleteQuery) Err() error { return self.err }

// Renders the statement into its final text and args. Pure and repeatable.
func (self DeleteQuery) Build() (string, []any, error) {
	return buildStatement(self.ph, self.buildBui)
}

func (self DeleteQuery) buildBui() Bui {
	const while = `building delete statement`

	try(self.err)
	if self.table == `` {
		panic(errValidation(while, `missing table name`))
	}

	bui := MakeBui(64, 4)
	bui.Str(`DELETE FROM`)
	bui.Str(self.table)
	if self.alias != `` {
		bui.Str(`as`)
		bui.Str(self.alias)
	}

	if self.usingTable != `` {
		bui.Str(`USING`)
		bui.Str(self.usingTable)
		if self.usingAlias != `` {
			bui.Str(`as`)
			bui.Str(self.usingAlias)
		}
	}

	self.filter.appendClause(&bui)
	appendReturning(&bui, self.returning)
	return bui
}

func (self DeleteQuery) fail(err error) DeleteQuery {
	if self.err == nil {
		self.err = err
	}
	return self
}

func buildStatement(ph Placeholder, fun func() Bui) (text string, args []any, err error) {
	defer rec(&err)
	bui := fun()
	text, args = bui.Reify(ph)
	return
}

func appendNames(bui *Bui, names []string) {
	for ind, name := range names {
		if ind > 0 {
			bui.Raw(`,`)
		}
		bui.Str(name)
	}
}

func appendReturning(bui *Bui, cols []string) {
	if len(cols) == 0 {
		return
	}
	bui.Str(`RETURNING`)
	appendNames(bui, cols)
}

func identString(alias, field string) string {
	if alias == `` {
		return field
	}
	return bytesToMutableString(appendIdent(nil, alias, field))
}
