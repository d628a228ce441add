package sqlq

/*
Right-hand side of a condition. Closed sum: the only implementations are
`Literal`, `FieldRef` and `Range`. Each variant knows how it renders and how
many bound values it contributes:

	Literal  -> one marker, one value; lists render as `(?)`
	FieldRef -> a column reference, no values
	Range    -> `? AND ?`, two values, low then high
*/
type Val interface{ appendVal(*Bui) }

/*
A bound value. Contributes exactly one marker and one value. Slice and array
values (except `[]byte`) render the marker parenthesized, as `(?)`, for use
with `IN` and `NOT IN`; the list itself is never expanded into individual
markers, it's passed to the driver as a single argument.
*/
type Literal struct{ Val any }

var _ = Val(Literal{})

func (self Literal) appendVal(bui *Bui) {
	if isListValue(self.Val) {
		bui.Str(`(`)
		bui.OrphanMark()
		bui.Args = append(bui.Args, self.Val)
		bui.Raw(`)`)
		return
	}
	bui.Arg(self.Val)
}

/*
A reference to another column, rendered as `alias.field` or `field`.
Contributes no bound values. An empty field name is a validation error.
*/
type FieldRef struct{ Alias, Field string }

var _ = Val(FieldRef{})

func (self FieldRef) appendVal(bui *Bui) {
	if self.Field == `` {
		panic(errValidation(`rendering field reference`, `missing field name`))
	}
	bui.Text = appendIdent(bui.Text, self.Alias, self.Field)
}

/*
A pair of bound values rendered as `? AND ?`, for use with `BETWEEN`.
Contributes two values: low, then high.
*/
type Range struct{ Low, High any }

var _ = Val(Range{})

func (self Range) appendVal(bui *Bui) {
	bui.Arg(self.Low)
	bui.Str(`AND`)
	bui.Arg(self.High)
}
