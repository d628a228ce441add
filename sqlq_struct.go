package sqlq

import (
	"fmt"
	"reflect"

	"github.com/mitranim/refut"
)

/*
Struct scanning converts annotated structs into statement inputs. Fields are
matched by the "db" tag; untagged fields and fields tagged `db:"-"` are
skipped. The input must be a struct or a non-nil pointer to one; anything
else panics with `ErrInvalidInput`, since a mistyped input is a programmer
error rather than a runtime condition.

	type User struct {
		Email string `db:"email"`
		Name  string `db:"name"`
	}

	sqlq.StructCols(user)     // []string{`email`, `name`}
	sqlq.StructVals(user)     // []any{user.Email, user.Name}
	sqlq.StructSetItems(user) // for UpdateQuery.Set
*/

// Returns the DB column names of the struct's tagged fields, in field order.
// Usable as insert columns, select columns, or returning lists.
func StructCols(src any) []string {
	var out []string
	traverseStructDbFields(src, func(name string, _ any) {
		out = append(out, name)
	})
	return out
}

// Returns the values of the struct's tagged fields, in field order. Matches
// the order of `StructCols` for the same type, making the pair usable as
// insert columns and a value tuple.
func StructVals(src any) []any {
	var out []any
	traverseStructDbFields(src, func(_ string, val any) {
		out = append(out, val)
	})
	return out
}

// Returns one assignment per tagged field, in field order, for use with
// `Set` or `UpdateQuery.Set`.
func StructSetItems(src any) []SetItem {
	var out []SetItem
	traverseStructDbFields(src, func(name string, val any) {
		out = append(out, SetItem{Field: name, Val: val})
	})
	return out
}

// Follows the JSON convention: the name is everything before the first
// comma, and "-" is a non-name.
func sfieldColumnName(sfield reflect.StructField) string {
	ident := refut.TagIdent(sfield.Tag.Get(`db`))
	if ident == `-` {
		return ``
	}
	return ident
}

func traverseStructDbFields(input any, fun func(string, any)) {
	rval := reflect.ValueOf(input)
	if !rval.IsValid() {
		panic(Err{
			Code:  ErrCodeInvalidInput,
			While: `traversing struct for DB fields`,
			Cause: errf(`expected struct, got nil`),
		})
	}

	rtype := refut.RtypeDeref(rval.Type())
	if rtype.Kind() != reflect.Struct {
		panic(Err{
			Code:  ErrCodeInvalidInput,
			While: `traversing struct for DB fields`,
			Cause: fmt.Errorf(`expected struct, got %q`, rtype),
		})
	}

	if refut.IsRvalNil(rval) {
		return
	}

	err := refut.TraverseStructRval(rval, func(rval reflect.Value, sfield reflect.StructField, _ []int) error {
		colName := sfieldColumnName(sfield)
		if colName == "" {
			return nil
		}
		fun(colName, rval.Interface())
		return nil
	})
	if err != nil {
		panic(err)
	}
}
