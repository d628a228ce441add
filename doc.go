/*
Composable generator of parameterized SQL. Converts structured descriptions
of conditions, clauses and whole statements into a single SQL string and an
ordered list of bound values, ready for any `database/sql`-compatible driver.
Not an ORM, and not a query executor: the output is plain text and args.

Key features:

	* Conditions, expressions and clauses are small immutable values.
	  Builder methods return modified copies; fragments can be freely
	  shared between statements.

	* Bound values always travel with the text that references them. At
	  every level of composition, the Nth parameter marker in the text
	  corresponds to the Nth value in the args.

	* Placeholder notation is a final rendering concern. Statements are
	  built with generic `?` markers and reified once, at the outermost
	  `.Build`, into either `?` or `$1..$N` notation.

	* Marker positions are tracked structurally, not by scanning text.
	  Operators such as `?`, `?|`, `?&` pass through substitution intact.

Simple example:

	sel := sqlq.MakeSelect(sqlq.PlaceholderDollar).
		Table(`users`, `u`).
		Cols(`u`, `email`, `name`).
		Filter(sqlq.MakeExpr(sqlq.LogicNone, sqlq.Cond{
			Alias: `u`, Field: `email`, Op: sqlq.OpEq, Val: sqlq.Literal{`one@two.com`},
		}))

	text, args, err := sel.Build()
	// text == `SELECT u.email, u.name FROM users as u WHERE u.email = $1`
	// args == []any{`one@two.com`}
*/
package sqlq
