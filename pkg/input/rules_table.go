package input

// DefaultDeletedAtColumn is the soft-delete column used by the *NotDeleted rules.
const DefaultDeletedAtColumn = "deleted_at"

// Exists requires the value to exist in table.column. An empty column
// defaults to the key name.
func (i *Input) Exists(table, column string, msg ...string) *Input {
	return i.addRuleObjectAndMessage(Exists{Table: table, Column: i.column(column)}, msg)
}

// ExistsNotDeleted is Exists restricted to rows whose deletedAt column is NULL.
func (i *Input) ExistsNotDeleted(table, column, deletedAt string, msg ...string) *Input {
	return i.addRuleObjectAndMessage(Exists{
		Table:     table,
		Column:    i.column(column),
		WhereNull: deletedAtColumn(deletedAt),
	}, msg)
}

// Unique requires the value to be absent from table.column.
func (i *Input) Unique(table, column string, msg ...string) *Input {
	return i.addRuleObjectAndMessage(Unique{Table: table, Column: i.column(column)}, msg)
}

// UniqueNotDeleted ignores soft-deleted rows.
func (i *Input) UniqueNotDeleted(table, column, deletedAt string, msg ...string) *Input {
	return i.addRuleObjectAndMessage(Unique{
		Table:     table,
		Column:    i.column(column),
		WhereNull: deletedAtColumn(deletedAt),
	}, msg)
}

// ID requires the value to exist in table.id.
func (i *Input) ID(table string, msg ...string) *Input {
	return i.Exists(table, "id", msg...)
}

func (i *Input) column(column string) string {
	if column == "" {
		return i.keyName
	}
	return column
}

func deletedAtColumn(column string) string {
	if column == "" {
		return DefaultDeletedAtColumn
	}
	return column
}
