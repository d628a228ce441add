package sqlq

import "testing"

func TestOrderBy(t *testing.T) {
	testClause(t,
		`ORDER BY t.name ASC, t.created_at DESC, id ASC`, list{},
		OrderBy(
			Ord{Alias: `t`, Field: `name`},
			Ord{Alias: `t`, Field: `created_at`, Dir: DirDesc},
			Ord{Field: `id`, Dir: DirAsc},
		),
	)
}

// Duplicates are detected on the fully-rendered term; the first occurrence
// wins and input order is otherwise preserved.
func TestOrderBy_dedup(t *testing.T) {
	testClause(t,
		`ORDER BY t.name ASC, t.name DESC`, list{},
		OrderBy(
			Ord{Alias: `t`, Field: `name`},
			Ord{Alias: `t`, Field: `name`, Dir: DirDesc},
			Ord{Alias: `t`, Field: `name`},
		),
	)
}

func TestOrderBy_empty(t *testing.T) {
	errIs(t, OrderBy().Err(), ErrValidation)
}

func TestOrderBy_missingField(t *testing.T) {
	errIs(t, OrderBy(Ord{Alias: `t`}).Err(), ErrValidation)
}

func TestGroupBy(t *testing.T) {
	testClause(t,
		`GROUP BY t.region, status`, list{},
		GroupBy(Group{Alias: `t`, Field: `region`}, Group{Field: `status`}),
	)
}

func TestGroupBy_dedup(t *testing.T) {
	testClause(t,
		`GROUP BY t.region`, list{},
		GroupBy(
			Group{Alias: `t`, Field: `region`},
			Group{Alias: `t`, Field: `region`},
		),
	)
}

func TestGroupBy_empty(t *testing.T) {
	errIs(t, GroupBy().Err(), ErrValidation)
}

func TestGroupBy_missingField(t *testing.T) {
	errIs(t, GroupBy(Group{Alias: `t`}).Err(), ErrValidation)
}

func TestOrdString(t *testing.T) {
	eq(t, `t.name ASC`, Ord{Alias: `t`, Field: `name`}.String())
	eq(t, `name DESC`, Ord{Field: `name`, Dir: DirDesc}.String())
	eq(t, `t.name`, Group{Alias: `t`, Field: `name`}.String())
}
