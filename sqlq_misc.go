package sqlq

/*
Returns the text of a metadata query listing the columns of the provided
table, via `information_schema`:

	SELECT column_name, data_type FROM information_schema.columns
	WHERE table_name = 'some_table'

The table name is interpolated as a string literal, so it's validated as an
identifier: empty names and names containing quotes are rejected. The result
has no bound values; interpreting the resulting rows is up to the caller.
*/
func TableColumnsQuery(table string) (string, error) {
	const while = `building table columns query`

	var bui Bui
	err := bui.Catch(func(bui *Bui) {
		validateIdent(while, table)
		bui.Str(`SELECT column_name, data_type FROM information_schema.columns WHERE table_name =`)
		bui.Raw(` '`)
		bui.Raw(table)
		bui.Raw(`'`)
	})
	if err != nil {
		return ``, err
	}
	return bui.String(), nil
}
