package sqlq

/*
A single leaf predicate: `{LOGIC} {alias.}field {op} {value}`. The connective
prefix is optional and rendered verbatim when present, including on the first
condition of an expression. `Field` and `Op` are mandatory. The value is
ignored by `OpIsNull` and `OpNotNull`, and mandatory for every other
operator.
*/
type Cond struct {
	Alias string
	Field string
	Op    Op
	Val   Val
	Logic Logic
}

func (self Cond) appendCond(bui *Bui) {
	const while = `rendering condition`

	if self.Field == `` {
		panic(errValidation(while, `missing field name`))
	}
	if self.Op == OpNone {
		panic(errValidation(while, `missing operator in condition for field %q`, self.Field))
	}

	if self.Logic != LogicNone {
		bui.Str(self.Logic.String())
	}

	bui.Text = appendIdent(bui.Text, self.Alias, self.Field)
	bui.Str(self.Op.String())

	if !self.Op.takesVal() {
		return
	}
	if self.Val == nil {
		panic(errValidation(
			while, `missing value for field %q and operator %q`, self.Field, self.Op,
		))
	}
	self.Val.appendVal(bui)
}
