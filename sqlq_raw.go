package sqlq

import (
	"github.com/mitranim/sqlp"
)

/*
Builds an expression from a raw SQL fragment with ordinal parameters:

	expr := sqlq.MakeRawExpr(sqlq.LogicAnd, `jsonb ? $1`, `some_key`)

Ordinal parameters use the Postgres form `$N`, numbered from `$1` against the
provided args. This form is unambiguous: the source is tokenized, so `?`
operators, quoted literals and comments are left untouched, and each `$N` is
converted into a generic marker with a recorded offset. The resulting
expression composes with built conditions in clauses and statements, and is
renumbered by the single substitution pass of the outermost statement.

A parameter may occur more than once; each occurrence re-appends the same
argument, preserving the marker-to-arg correspondence. Errors: an ordinal
exceeding the argument count, a named `:identifier` parameter, or an argument
never referenced by the fragment.
*/
func MakeRawExpr(logic Logic, src string, args ...any) Expr {
	var bui Bui

	err := bui.Catch(func(bui *Bui) {
		appendRaw(bui, src, args)
	})
	if err != nil {
		return Expr{err: err}
	}

	return Expr{
		Text:  bui.String(),
		Args:  bui.Args,
		Logic: logic,
		marks: bui.Marks,
	}
}

func appendRaw(bui *Bui, src string, args []any) {
	const while = `building raw expression`

	tokenizer := sqlp.Tokenizer{Source: src}
	used := make([]bool, len(args))

	for {
		node := tokenizer.Next()
		if node == nil {
			break
		}

		switch node := node.(type) {
		case sqlp.NodeOrdinalParam:
			index := node.Index()
			if index >= len(args) {
				panic(ErrOrdinalOutOfBounds.while(while).because(errf(
					`ordinal parameter %v exceeds argument count %v`, node, len(args),
				)))
			}

			used[index] = true
			bui.OrphanMark()
			bui.Args = append(bui.Args, args[index])

		case sqlp.NodeNamedParam:
			panic(ErrUnexpectedParameter.while(while).because(errf(
				`expected only ordinal params, got named param %q`, node,
			)))

		default:
			node.Append(&bui.Text)
		}
	}

	for ind, arg := range args {
		if !used[ind] {
			panic(ErrUnusedArgument.while(while).because(errf(
				`unused argument %#v at index %v`, arg, ind,
			)))
		}
	}
}
