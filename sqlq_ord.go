package sqlq

/*
One ordering term: `{alias.}field ASC|DESC`. The zero direction is
ascending.
*/
type Ord struct {
	Alias string
	Field string
	Dir   Dir
}

// Implement `fmt.Stringer`. Returns the rendered term. Does not validate;
// `OrderBy` validates before rendering.
func (self Ord) String() string {
	var buf []byte
	buf = appendIdent(buf, self.Alias, self.Field)
	buf = appendMaybeSpaced(buf, self.Dir.String())
	return bytesToMutableString(buf)
}

// One grouping term: `{alias.}field`.
type Group struct {
	Alias string
	Field string
}

// Implement `fmt.Stringer`. Returns the rendered term. Does not validate;
// `GroupBy` validates before rendering.
func (self Group) String() string {
	return bytesToMutableString(appendIdent(nil, self.Alias, self.Field))
}

/*
Combines ordering terms into `ORDER BY one ASC, two DESC`. Terms that render
to identical text are dropped, keeping the first occurrence; the remaining
terms keep their input order. An empty term list or an empty field name is a
validation error. Contributes no bound values.
*/
func OrderBy(ords ...Ord) Clause {
	return makeClause(func(bui *Bui) {
		const while = `building order by clause`

		if len(ords) == 0 {
			panic(errValidation(while, `expected at least one ordering term`))
		}

		bui.Str(`ORDER BY`)
		var seen []string

		for _, ord := range ords {
			if ord.Field == `` {
				panic(errValidation(while, `missing field name in ordering term`))
			}

			frag := ord.String()
			if containsString(seen, frag) {
				continue
			}

			if len(seen) > 0 {
				bui.Raw(`,`)
			}
			bui.Str(frag)
			seen = append(seen, frag)
		}
	})
}

/*
Combines grouping terms into `GROUP BY one, two`. Same de-duplication and
validation rules as `OrderBy`. Contributes no bound values.
*/
func GroupBy(groups ...Group) Clause {
	return makeClause(func(bui *Bui) {
		const while = `building group by clause`

		if len(groups) == 0 {
			panic(errValidation(while, `expected at least one grouping term`))
		}

		bui.Str(`GROUP BY`)
		var seen []string

		for _, group := range groups {
			if group.Field == `` {
				panic(errValidation(while, `missing field name in grouping term`))
			}

			frag := group.String()
			if containsString(seen, frag) {
				continue
			}

			if len(seen) > 0 {
				bui.Raw(`,`)
			}
			bui.Str(frag)
			seen = append(seen, frag)
		}
	})
}

func containsString(vals []string, val string) bool {
	for _, elem := range vals {
		if elem == val {
			return true
		}
	}
	return false
}
