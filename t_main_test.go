package sqlq

import (
	"errors"
	"fmt"
	r "reflect"
	"runtime"
	"strings"
	"testing"
)

type list = []any

func eq(t testing.TB, exp, act any) {
	t.Helper()
	if !r.DeepEqual(exp, act) {
		t.Fatalf(`
expected (detailed):
	%#[1]v
actual (detailed):
	%#[2]v
expected (simple):
	%[1]v
actual (simple):
	%[2]v
`, exp, act)
	}
}

func errIs(t testing.TB, err error, exp Err) {
	t.Helper()
	if err == nil {
		t.Fatalf(`expected an error matching %v, found none`, exp)
	}
	if !errors.Is(err, exp) {
		t.Fatalf(`expected error %q to match %v`, err, exp)
	}
}

func panics(t testing.TB, msg string, fun func()) {
	t.Helper()
	val := catchAny(fun)

	if val == nil {
		t.Fatalf(`expected %v to panic, found no panic`, funcName(fun))
	}

	str := fmt.Sprint(val)
	if !strings.Contains(str, msg) {
		t.Fatalf(
			`expected %v to panic with a message containing %q, found %q`,
			funcName(fun), msg, str,
		)
	}
}

func funcName(val any) string {
	return runtime.FuncForPC(r.ValueOf(val).Pointer()).Name()
}

func catchAny(fun func()) (val any) {
	defer recAny(&val)
	fun()
	return
}

func recAny(ptr *any) { *ptr = recover() }

func normArgs(args []any) list {
	if args == nil {
		return list{}
	}
	return args
}

func testExpr(t testing.TB, expText string, expArgs list, expr Expr) {
	t.Helper()
	if expr.Err() != nil {
		t.Fatalf(`unexpected expression error: %v`, expr.Err())
	}
	eq(t, expText, expr.Text)
	eq(t, expArgs, normArgs(expr.Args))
}

func testClause(t testing.TB, expText string, expArgs list, clause Clause) {
	t.Helper()
	if clause.Err() != nil {
		t.Fatalf(`unexpected clause error: %v`, clause.Err())
	}
	eq(t, expText, clause.Text)
	eq(t, expArgs, normArgs(clause.Args))
}

func testBuilt(t testing.TB, expText string, expArgs list, text string, args []any, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf(`unexpected build error: %v`, err)
	}
	eq(t, expText, text)
	eq(t, expArgs, normArgs(args))
}
