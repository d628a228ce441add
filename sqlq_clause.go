package sqlq

/*
A rendered statement clause: text, bound values in textual order, and the
recorded marker offsets. Produced by `Where`, `JoinOn`, `Set`, `OrderBy`,
`GroupBy`. Immutable after construction. A failed construction produces a
clause that carries the error; statements that include it fail at `.Build`.
*/
type Clause struct {
	Text string
	Args []any

	marks []int
	err   error
}

// Returns the error carried by the clause, if any. Statement builders check
// this automatically; standalone users may want to check it directly.
func (self Clause) Err() error { return self.err }

func (self Clause) appendClause(bui *Bui) {
	try(self.err)
	if self.Text == `` {
		return
	}
	bui.Frag(self.Text, self.Args, self.marks)
}

func makeClause(fun func(*Bui)) Clause {
	var bui Bui
	err := bui.Catch(fun)
	if err != nil {
		return Clause{err: err}
	}
	return Clause{Text: bui.String(), Args: bui.Args, marks: bui.Marks}
}

/*
Combines expressions into a filter clause: `WHERE ...`. With a single
expression, its text is included as-is, prefixed with its connective if it
has one. With more than one, each expression is parenthesized and prefixed
with its connective:

	WHERE (a = ? AND b = ?) OR (c = ?)

Expression texts are never inspected or re-rendered; shaping connectives on
the inputs is the caller's responsibility. Bound values concatenate in
expression order. At least one expression is required.
*/
func Where(exprs ...Expr) Clause {
	return makeClause(func(bui *Bui) {
		bui.Str(`WHERE`)
		appendGrouped(bui, `building where clause`, exprs)
	})
}

/*
Combines expressions into a join clause:

	{KIND} JOIN {table} as {alias} ON ...

The `ON` conditions follow the same grouping rule as `Where`. The table name
is mandatory, the alias optional. A cross join may omit the expressions, in
which case no `ON` is rendered.
*/
func JoinOn(kind JoinKind, table, alias string, exprs ...Expr) Clause {
	return makeClause(func(bui *Bui) {
		const while = `building join clause`

		if table == `` {
			panic(errValidation(while, `missing table name`))
		}

		bui.Str(kind.String())
		bui.Str(`JOIN`)
		bui.Str(table)
		if alias != `` {
			bui.Str(`as`)
			bui.Str(alias)
		}

		if kind == JoinCross && len(exprs) == 0 {
			return
		}

		bui.Str(`ON`)
		appendGrouped(bui, while, exprs)
	})
}

func appendGrouped(bui *Bui, while string, exprs []Expr) {
	if len(exprs) == 0 {
		panic(errValidation(while, `expected at least one expression`))
	}

	group := len(exprs) > 1

	for _, expr := range exprs {
		if expr.Logic != LogicNone {
			bui.Str(expr.Logic.String())
		}

		if group {
			bui.Str(`(`)
			expr.appendExpr(bui)
			bui.Raw(`)`)
		} else {
			expr.appendExpr(bui)
		}
	}
}

/*
One assignment in an update's set clause. The value is either an ordinary
bound value, a `Val` variant, or a nested `SelectQuery` rendered as a
parenthesized sub-select. A nested select must use the generic marker
notation; its markers are renumbered, together with everything else, by the
single substitution pass of the outermost statement.
*/
type SetItem struct {
	Field string
	Val   any
}

/*
Combines assignments into an update's set clause:

	SET one = ?, two = (SELECT ...)

Bound values concatenate in assignment order, with a nested select's values
spliced at its assignment's position. At least one assignment is required.
*/
func Set(items ...SetItem) Clause {
	return makeClause(func(bui *Bui) {
		const while = `building set clause`

		if len(items) == 0 {
			panic(errValidation(while, `expected at least one assignment`))
		}

		bui.Str(`SET`)

		for ind, item := range items {
			if item.Field == `` {
				panic(errValidation(while, `missing field name in assignment`))
			}

			if ind > 0 {
				bui.Raw(`,`)
			}
			bui.Str(item.Field)
			bui.Str(`=`)
			appendSetVal(bui, item.Val)
		}
	})
}

func appendSetVal(bui *Bui, val any) {
	sub, ok := asSelect(val)
	if ok {
		if sub.ph != PlaceholderQuestion {
			panic(ErrPlaceholder.while(`building set clause`).because(errf(
				`nested select must use generic markers; numbering happens once, in the outer statement`,
			)))
		}

		inner := sub.buildBui()
		bui.Str(`(`)
		bui.Frag(inner.String(), inner.Args, inner.Marks)
		bui.Raw(`)`)
		return
	}

	impl, ok := val.(Val)
	if ok {
		impl.appendVal(bui)
		return
	}

	bui.Arg(val)
}

func asSelect(val any) (SelectQuery, bool) {
	switch val := val.(type) {
	case SelectQuery:
		return val, true
	case *SelectQuery:
		if val != nil {
			return *val, true
		}
	}
	return SelectQuery{}, false
}
