package sqlq

import (
	"fmt"
	r "reflect"
	"unsafe"
)

const (
	genericMark = '?'
	quoteSingle = '\''
	quoteDouble = '"'
)

var (
	charsetWhitespace = new(charset).addStr(" \t\v\r\n")
	charsetDelimStart = new(charset).addSet(charsetWhitespace).addStr(`([{.`)
	charsetDelimEnd   = new(charset).addSet(charsetWhitespace).addStr(`,}])`)
)

type charset [256]bool

func (self *charset) has(val byte) bool { return self[val] }

func (self *charset) addStr(vals string) *charset {
	for _, val := range vals {
		self[val] = true
	}
	return self
}

func (self *charset) addSet(vals *charset) *charset {
	for ind, val := range vals {
		if val {
			self[ind] = true
		}
	}
	return self
}

/*
Allocation-free conversion. Reinterprets a byte slice as a string. Borrowed from
the standard library. Reasonably safe as long as the underlying byte array is
not mutated afterwards.
*/
func bytesToMutableString(bytes []byte) string {
	return *(*string)(unsafe.Pointer(&bytes))
}

func maybeAppendSpace(val []byte) []byte {
	if hasDelimSuffix(bytesToMutableString(val)) {
		return val
	}
	return append(val, ` `...)
}

func appendMaybeSpaced(text []byte, suffix string) []byte {
	if !hasDelimSuffix(bytesToMutableString(text)) && !hasDelimPrefix(suffix) {
		text = append(text, ` `...)
	}
	text = append(text, suffix...)
	return text
}

func hasDelimPrefix(text string) bool {
	return len(text) == 0 || charsetDelimEnd.has(text[0])
}

func hasDelimSuffix(text string) bool {
	return len(text) == 0 || charsetDelimStart.has(text[len(text)-1])
}

func errf(pat string, vals ...any) error {
	return fmt.Errorf(pat, vals...)
}

func try(err error) {
	if err != nil {
		panic(err)
	}
}

// Must be deferred.
func rec(ptr *error) {
	val := recover()
	if val == nil {
		return
	}

	err, _ := val.(error)
	if err != nil {
		*ptr = err
		return
	}

	panic(val)
}

// Generics when?
func copyStrings(val []string) []string {
	if val == nil {
		return nil
	}
	out := make([]string, len(val))
	copy(out, val)
	return out
}

// Same as `copyStrings`. WTB generics.
func copyInterfaces(val []any) []any {
	if val == nil {
		return nil
	}
	out := make([]any, len(val))
	copy(out, val)
	return out
}

func copyClauses(val []Clause) []Clause {
	if val == nil {
		return nil
	}
	out := make([]Clause, len(val))
	copy(out, val)
	return out
}

func copyTuples(val [][]any) [][]any {
	if val == nil {
		return nil
	}
	out := make([][]any, len(val))
	copy(out, val)
	return out
}

// Copied from `github.com/mitranim/gax` and tested there.
func growBytes(prev []byte, size int) []byte {
	len, cap := len(prev), cap(prev)
	if cap-len >= size {
		return prev
	}

	next := make([]byte, len, 2*cap+size)
	copy(next, prev)
	return next
}

// Same as `growBytes`. WTB generics.
func growInterfaces(prev []any, size int) []any {
	len, cap := len(prev), cap(prev)
	if cap-len >= size {
		return prev
	}

	next := make([]any, len, 2*cap+size)
	copy(next, prev)
	return next
}

// Same as `growBytes`. WTB generics.
func growInts(prev []int, size int) []int {
	len, cap := len(prev), cap(prev)
	if cap-len >= size {
		return prev
	}

	next := make([]int, len, 2*cap+size)
	copy(next, prev)
	return next
}

/*
True if the value would be rendered as a parenthesized list by `Literal`.
`[]byte` is excluded: drivers treat it as a scalar blob.
*/
func isListValue(val any) bool {
	rval := r.ValueOf(val)
	switch rval.Kind() {
	case r.Slice, r.Array:
		return rval.Type().Elem().Kind() != r.Uint8
	default:
		return false
	}
}

func validateIdent(while string, val string) {
	if val == `` {
		panic(errValidation(while, `missing identifier`))
	}
	for _, char := range val {
		if char == quoteSingle || char == quoteDouble {
			panic(errValidation(while, `unexpected %q in identifier %q`, char, val))
		}
	}
}

func appendIdent(text []byte, alias, field string) []byte {
	if alias != `` {
		text = appendMaybeSpaced(text, alias)
		text = append(text, '.')
		text = append(text, field...)
		return text
	}
	return appendMaybeSpaced(text, field)
}
