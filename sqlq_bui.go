package sqlq

import "strconv"

/*
Prealloc tool. Makes a `Bui` with the specified capacity of the text and args
buffers.
*/
func MakeBui(textCap, argsCap int) Bui {
	return Bui{
		make([]byte, 0, textCap),
		make([]any, 0, argsCap),
		make([]int, 0, argsCap),
	}
}

/*
Short for "builder". Low-level tool for assembling SQL text together with
bound values. Used internally by every clause and statement type in this
package.

The text uses generic `?` markers regardless of the final placeholder
notation. `Marks` holds the byte offset of each marker within `Text`, in
ascending order, one entry per value in `Args`. Substitution into numbered
notation happens by offset, never by scanning the text, which keeps operators
like `?`, `?|` and `?&` intact.
*/
type Bui struct {
	Text  []byte
	Args  []any
	Marks []int
}

// Returns inner text as a string, performing a free cast.
func (self Bui) String() string {
	return bytesToMutableString(self.Text)
}

// Increases the capacity (not length) of the inner buffers by the specified
// amounts. If there's already enough capacity, avoids allocation.
func (self *Bui) Grow(textLen, argsLen int) {
	self.Text = growBytes(self.Text, textLen)
	self.Args = growInterfaces(self.Args, argsLen)
	self.Marks = growInts(self.Marks, argsLen)
}

// Adds a space if the preceding text doesn't already end with a terminator.
func (self *Bui) Space() {
	self.Text = maybeAppendSpace(self.Text)
}

// Appends the provided string, delimiting it from the previous text with a
// space if necessary.
func (self *Bui) Str(val string) {
	self.Text = appendMaybeSpaced(self.Text, val)
}

// Appends the provided string verbatim, without space management.
func (self *Bui) Raw(val string) {
	self.Text = append(self.Text, val...)
}

/*
Appends an argument to `.Args` and a corresponding generic marker to `.Text`,
delimited from the previous text with a space if necessary. The marker offset
is recorded in `.Marks`.
*/
func (self *Bui) Arg(val any) {
	self.Space()
	self.OrphanMark()
	self.Args = append(self.Args, val)
}

/*
Appends a generic marker at the current end of the text, recording its offset.
Requires caution: does not append the corresponding argument, and does not
space-delimit the marker from the previous text.
*/
func (self *Bui) OrphanMark() {
	self.Marks = append(self.Marks, len(self.Text))
	self.Text = append(self.Text, genericMark)
}

/*
Splices a prebuilt fragment: appends its text, delimited from the previous
text with a space if necessary, rebasing its marker offsets onto this builder
and appending its args. The relative order of markers and args is preserved,
keeping the marker-to-arg correspondence intact across composition.
*/
func (self *Bui) Frag(text string, args []any, marks []int) {
	if !hasDelimSuffix(self.String()) && !hasDelimPrefix(text) {
		self.Text = append(self.Text, ' ')
	}

	base := len(self.Text)
	self.Text = append(self.Text, text...)
	for _, mark := range marks {
		self.Marks = append(self.Marks, base+mark)
	}
	self.Args = append(self.Args, args...)
}

/*
Converts accumulated text and args into their final form, substituting generic
markers according to the provided notation. `PlaceholderQuestion` returns the
text as-is. `PlaceholderDollar` rewrites each marker, in text order, into
`$1`..`$N`. Substitution is done by recorded marker offsets; question marks
occurring in operators or quoted literals are not affected.
*/
func (self Bui) Reify(ph Placeholder) (string, []any) {
	if ph != PlaceholderDollar {
		return self.String(), self.Args
	}

	text := self.Text
	buf := make([]byte, 0, len(text)+len(self.Marks)*2)
	prev := 0

	for ind, mark := range self.Marks {
		if mark < prev || mark >= len(text) || text[mark] != genericMark {
			panic(errInternal(
				`reifying statement`,
				`marker offset %v does not point at a marker`, mark,
			))
		}
		buf = append(buf, text[prev:mark]...)
		buf = append(buf, '$')
		buf = strconv.AppendInt(buf, int64(ind+1), 10)
		prev = mark + 1
	}

	buf = append(buf, text[prev:]...)
	return bytesToMutableString(buf), self.Args
}

/*
Runs the provided function, catching panics and converting them to an error.
Since rendering functions in this package use panics internally, this is the
boundary for code that insists on errors-as-values.
*/
func (self *Bui) Catch(fun func(*Bui)) (err error) {
	defer rec(&err)
	fun(self)
	return
}
