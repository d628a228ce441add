package sqlq

/*
A folded group of conditions: one text fragment, its bound values in textual
order, and an optional connective used one grouping level up when several
expressions are combined. Immutable after construction. A failed construction
produces an expression whose error surfaces from `.Err` and from the `.Build`
of any statement it participates in; it never contributes partial text.
*/
type Expr struct {
	Text  string
	Args  []any
	Logic Logic

	marks []int
	err   error
}

/*
Folds the provided conditions into one expression. Conditions are rendered
left to right, space-separated, each with its own optional connective prefix.
The resulting value list matches the marker order of the resulting text.
An empty condition list, or any invalid condition, yields an expression
carrying a validation error.
*/
func MakeExpr(logic Logic, conds ...Cond) Expr {
	var bui Bui

	err := bui.Catch(func(bui *Bui) {
		if len(conds) == 0 {
			panic(errValidation(`building expression`, `expected at least one condition`))
		}
		for _, cond := range conds {
			cond.appendCond(bui)
		}
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

// Returns the error carried by the expression, if any. Statement builders
// check this automatically; standalone users may want to check it directly.
func (self Expr) Err() error { return self.err }

func (self Expr) appendExpr(bui *Bui) {
	try(self.err)
	bui.Frag(self.Text, self.Args, self.marks)
}
