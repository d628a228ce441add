package sqlq_test

import (
	"fmt"

	"github.com/mitranim/sqlq"
)

func ExampleSelectQuery_Build() {
	sel := sqlq.MakeSelect(sqlq.PlaceholderDollar).
		Table(`users`, `u`).
		Cols(`u`, `email`, `name`).
		Filter(sqlq.MakeExpr(sqlq.LogicNone, sqlq.Cond{
			Alias: `u`, Field: `email`, Op: sqlq.OpEq, Val: sqlq.Literal{`one@two.com`},
		})).
		OrderBy(sqlq.Ord{Alias: `u`, Field: `name`}).
		Limit(10)

	text, args, err := sel.Build()
	fmt.Println(text)
	fmt.Println(args, err)

	// Output:
	// SELECT u.email, u.name FROM users as u WHERE u.email = $1 ORDER BY u.name ASC LIMIT 10
	// [one@two.com] <nil>
}

func ExampleWhere() {
	clause := sqlq.Where(
		sqlq.MakeExpr(sqlq.LogicNone,
			sqlq.Cond{Alias: `t`, Field: `one`, Op: sqlq.OpEq, Val: sqlq.Literal{10}},
			sqlq.Cond{Alias: `t`, Field: `two`, Op: sqlq.OpEq, Val: sqlq.Literal{20}, Logic: sqlq.LogicAnd},
		),
		sqlq.MakeExpr(sqlq.LogicOr,
			sqlq.Cond{Alias: `t`, Field: `three`, Op: sqlq.OpIsNull},
		),
	)

	fmt.Println(clause.Text)
	fmt.Println(clause.Args)

	// Output:
	// WHERE (t.one = ? AND t.two = ?) OR (t.three IS NULL)
	// [10 20]
}

func ExampleMakeRawExpr() {
	expr := sqlq.MakeRawExpr(sqlq.LogicAnd, `meta @> $1 and meta ? $2`, `{"a": 1}`, `some_key`)

	fmt.Println(expr.Text)
	fmt.Println(expr.Args)

	// Output:
	// meta @> ? and meta ? ?
	// [{"a": 1} some_key]
}

func ExampleUpdateQuery_Set() {
	sub := sqlq.MakeSelect(sqlq.PlaceholderQuestion).
		Table(`users`, `u`).
		Cols(`u`, `email`).
		Filter(sqlq.MakeExpr(sqlq.LogicNone, sqlq.Cond{
			Alias: `u`, Field: `id`, Op: sqlq.OpEq, Val: sqlq.Literal{7},
		}))

	upd := sqlq.MakeUpdate(sqlq.PlaceholderDollar).
		Table(`accounts`).
		Set(sqlq.SetItem{`name`, `Mira`}, sqlq.SetItem{`email`, sub}).
		Filter(sqlq.MakeExpr(sqlq.LogicNone, sqlq.Cond{
			Field: `id`, Op: sqlq.OpEq, Val: sqlq.Literal{3},
		}))

	text, args, err := upd.Build()
	fmt.Println(text)
	fmt.Println(args, err)

	// Output:
	// UPDATE accounts SET name = $1, email = (SELECT u.email FROM users as u WHERE u.id = $2) WHERE id = $3
	// [Mira 7 3] <nil>
}
