package sqlq

import (
	"strings"
	"testing"
)

func TestMakeExpr_singleCondition(t *testing.T) {
	testExpr(t,
		`t.email = ?`, list{`one@two.com`},
		MakeExpr(LogicNone, Cond{Alias: `t`, Field: `email`, Op: OpEq, Val: Literal{`one@two.com`}}),
	)
}

func TestMakeExpr_noAlias(t *testing.T) {
	testExpr(t,
		`email = ?`, list{`one@two.com`},
		MakeExpr(LogicNone, Cond{Field: `email`, Op: OpEq, Val: Literal{`one@two.com`}}),
	)
}

func TestMakeExpr_comparisonOps(t *testing.T) {
	test := func(op Op, text string) {
		t.Helper()
		testExpr(t,
			`t.count `+text+` ?`, list{10},
			MakeExpr(LogicNone, Cond{Alias: `t`, Field: `count`, Op: op, Val: Literal{10}}),
		)
	}

	test(OpEq, `=`)
	test(OpNeq, `!=`)
	test(OpGt, `>`)
	test(OpGte, `>=`)
	test(OpLt, `<`)
	test(OpLte, `<=`)
	test(OpLike, `LIKE`)
	test(OpIlike, `ILIKE`)
}

func TestMakeExpr_nullOps(t *testing.T) {
	testExpr(t,
		`t.deleted_at IS NULL`, list{},
		MakeExpr(LogicNone, Cond{Alias: `t`, Field: `deleted_at`, Op: OpIsNull}),
	)
	testExpr(t,
		`t.deleted_at IS NOT NULL`, list{},
		MakeExpr(LogicNone, Cond{Alias: `t`, Field: `deleted_at`, Op: OpNotNull}),
	)
}

// The value must be ignored, not rendered, when the operator is complete on
// its own.
func TestMakeExpr_nullOpsIgnoreValue(t *testing.T) {
	testExpr(t,
		`t.deleted_at IS NULL`, list{},
		MakeExpr(LogicNone, Cond{Alias: `t`, Field: `deleted_at`, Op: OpIsNull, Val: Literal{10}}),
	)
}

func TestMakeExpr_between(t *testing.T) {
	testExpr(t,
		`t.age BETWEEN ? AND ?`, list{18, 65},
		MakeExpr(LogicNone, Cond{Alias: `t`, Field: `age`, Op: OpBetween, Val: Range{18, 65}}),
	)
}

func TestMakeExpr_inList(t *testing.T) {
	testExpr(t,
		`t.id IN (?)`, list{[]int{1, 2, 3}},
		MakeExpr(LogicNone, Cond{Alias: `t`, Field: `id`, Op: OpIn, Val: Literal{[]int{1, 2, 3}}}),
	)
	testExpr(t,
		`t.id NOT IN (?)`, list{[]int{1, 2, 3}},
		MakeExpr(LogicNone, Cond{Alias: `t`, Field: `id`, Op: OpNotIn, Val: Literal{[]int{1, 2, 3}}}),
	)
}

// `[]byte` is a scalar blob, not a list.
func TestMakeExpr_bytesAreScalar(t *testing.T) {
	testExpr(t,
		`t.blob = ?`, list{[]byte(`01`)},
		MakeExpr(LogicNone, Cond{Alias: `t`, Field: `blob`, Op: OpEq, Val: Literal{[]byte(`01`)}}),
	)
}

func TestMakeExpr_fieldRef(t *testing.T) {
	testExpr(t,
		`o.user_id = u.id`, list{},
		MakeExpr(LogicNone, Cond{Alias: `o`, Field: `user_id`, Op: OpEq, Val: FieldRef{`u`, `id`}}),
	)
}

func TestMakeExpr_jsonOps(t *testing.T) {
	testExpr(t,
		`t.meta @> ?`, list{`{"a": 1}`},
		MakeExpr(LogicNone, Cond{Alias: `t`, Field: `meta`, Op: OpJsonContains, Val: Literal{`{"a": 1}`}}),
	)
	testExpr(t,
		`t.meta <@ ?`, list{`{"a": 1}`},
		MakeExpr(LogicNone, Cond{Alias: `t`, Field: `meta`, Op: OpJsonContainedBy, Val: Literal{`{"a": 1}`}}),
	)
	testExpr(t,
		`t.meta ? ?`, list{`some_key`},
		MakeExpr(LogicNone, Cond{Alias: `t`, Field: `meta`, Op: OpJsonHasKey, Val: Literal{`some_key`}}),
	)
	testExpr(t,
		`t.meta ?| (?)`, list{[]string{`one`, `two`}},
		MakeExpr(LogicNone, Cond{Alias: `t`, Field: `meta`, Op: OpJsonHasAny, Val: Literal{[]string{`one`, `two`}}}),
	)
	testExpr(t,
		`t.meta ?& (?)`, list{[]string{`one`, `two`}},
		MakeExpr(LogicNone, Cond{Alias: `t`, Field: `meta`, Op: OpJsonHasAll, Val: Literal{[]string{`one`, `two`}}}),
	)
}

func TestMakeExpr_fold(t *testing.T) {
	testExpr(t,
		`t.one = ? AND t.two = ? OR t.three IS NULL`, list{10, 20},
		MakeExpr(LogicNone,
			Cond{Alias: `t`, Field: `one`, Op: OpEq, Val: Literal{10}},
			Cond{Alias: `t`, Field: `two`, Op: OpEq, Val: Literal{20}, Logic: LogicAnd},
			Cond{Alias: `t`, Field: `three`, Op: OpIsNull, Logic: LogicOr},
		),
	)
}

// The connective of the first condition is preserved verbatim; shaping the
// input is the caller's responsibility.
func TestMakeExpr_leadingConnectivePreserved(t *testing.T) {
	testExpr(t,
		`AND t.one = ?`, list{10},
		MakeExpr(LogicNone, Cond{Alias: `t`, Field: `one`, Op: OpEq, Val: Literal{10}, Logic: LogicAnd}),
	)
}

func TestMakeExpr_trailingConnective(t *testing.T) {
	expr := MakeExpr(LogicOr, Cond{Field: `one`, Op: OpEq, Val: Literal{10}})
	eq(t, LogicOr, expr.Logic)
	eq(t, `one = ?`, expr.Text)
}

// Value contributions: `FieldRef` none, `Literal` one, `Range` two. Marker
// count in the text must match the arg count at every level.
func TestMakeExpr_markerArgCorrespondence(t *testing.T) {
	expr := MakeExpr(LogicNone,
		Cond{Alias: `t`, Field: `one`, Op: OpEq, Val: FieldRef{`u`, `id`}},
		Cond{Alias: `t`, Field: `two`, Op: OpEq, Val: Literal{10}, Logic: LogicAnd},
		Cond{Alias: `t`, Field: `three`, Op: OpBetween, Val: Range{1, 2}, Logic: LogicAnd},
		Cond{Alias: `t`, Field: `four`, Op: OpIsNull, Logic: LogicAnd},
	)

	if expr.Err() != nil {
		t.Fatalf(`unexpected expression error: %v`, expr.Err())
	}
	eq(t, 3, len(expr.Args))
	eq(t, 3, strings.Count(expr.Text, `?`))
	eq(t, list{10, 1, 2}, expr.Args)
}

func TestMakeExpr_emptyConds(t *testing.T) {
	errIs(t, MakeExpr(LogicNone).Err(), ErrValidation)
}

func TestMakeExpr_missingField(t *testing.T) {
	errIs(t, MakeExpr(LogicNone, Cond{Op: OpEq, Val: Literal{10}}).Err(), ErrValidation)
}

func TestMakeExpr_missingOp(t *testing.T) {
	errIs(t, MakeExpr(LogicNone, Cond{Field: `one`, Val: Literal{10}}).Err(), ErrValidation)
}

func TestMakeExpr_missingVal(t *testing.T) {
	errIs(t, MakeExpr(LogicNone, Cond{Field: `one`, Op: OpEq}).Err(), ErrValidation)
}

// One invalid condition poisons the whole expression; no partial text.
func TestMakeExpr_noPartialOutput(t *testing.T) {
	expr := MakeExpr(LogicNone,
		Cond{Field: `one`, Op: OpEq, Val: Literal{10}},
		Cond{Op: OpEq, Val: Literal{20}, Logic: LogicAnd},
	)
	errIs(t, expr.Err(), ErrValidation)
	eq(t, ``, expr.Text)
	eq(t, list{}, normArgs(expr.Args))
}

func TestMakeExpr_fieldRefMissingField(t *testing.T) {
	expr := MakeExpr(LogicNone, Cond{Field: `one`, Op: OpEq, Val: FieldRef{Alias: `u`}})
	errIs(t, expr.Err(), ErrValidation)
}
