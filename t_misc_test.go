package sqlq

import "testing"

func TestTableColumnsQuery(t *testing.T) {
	text, err := TableColumnsQuery(`users`)
	if err != nil {
		t.Fatalf(`unexpected error: %v`, err)
	}
	eq(t,
		`SELECT column_name, data_type FROM information_schema.columns WHERE table_name = 'users'`,
		text,
	)
}

func TestTableColumnsQuery_invalid(t *testing.T) {
	_, err := TableColumnsQuery(``)
	errIs(t, err, ErrValidation)

	_, err = TableColumnsQuery(`users'; drop table users; --`)
	errIs(t, err, ErrValidation)
}
