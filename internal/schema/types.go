package schema

// Column describes one live column of a table.
type Column struct {
	Name            string
	Type            string
	Nullable        bool
	Default         string
	IsPrimary       bool
	IsAutoIncrement bool
}

// Table is the live description of a single table, keyed by column name.
type Table struct {
	Name    string
	Columns map[string]Column
}

// HasColumn reports whether the table currently has the named column.
func (t *Table) HasColumn(name string) bool {
	if t == nil {
		return false
	}
	_, ok := t.Columns[name]
	return ok
}
