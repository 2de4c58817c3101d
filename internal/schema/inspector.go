package schema

import (
	"context"
	"database/sql"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/voltgrid/chargeseed/internal/database"
)

// Inspector reads live table metadata from information_schema. It is
// deliberately fail-open: a table that cannot be described, for whatever
// reason, is reported as absent rather than as an error, so the seeder
// can run against schemas in any state of completeness.
type Inspector struct {
	db database.Querier
	qb squirrel.StatementBuilderType
}

func NewInspector(db database.Querier, qb squirrel.StatementBuilderType) *Inspector {
	return &Inspector{db: db, qb: qb}
}

// Describe returns the table's current column set, or ok=false when the
// table is not present. The description is produced fresh on every call;
// nothing is cached.
func (i *Inspector) Describe(ctx context.Context, tableName string) (*Table, bool) {
	columnsQuery := i.qb.
		Select("c.column_name", "c.data_type", "c.is_nullable", "c.column_default").
		From("information_schema.columns c").
		Where(squirrel.Eq{"c.table_name": tableName}).
		Where(squirrel.Expr("c.table_schema IN (current_schema(), 'public')")).
		OrderBy("c.ordinal_position")

	query, args, err := columnsQuery.ToSql()
	if err != nil {
		return nil, false
	}

	rows, err := i.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, false
	}
	defer rows.Close()

	table := &Table{
		Name:    tableName,
		Columns: make(map[string]Column),
	}

	for rows.Next() {
		var name, dataType, isNullable string
		var columnDefault sql.NullString

		if err := rows.Scan(&name, &dataType, &isNullable, &columnDefault); err != nil {
			return nil, false
		}

		column := Column{
			Name:     name,
			Type:     dataType,
			Nullable: isNullable == "YES",
		}
		if columnDefault.Valid {
			column.Default = columnDefault.String
			column.IsAutoIncrement = strings.Contains(strings.ToLower(columnDefault.String), "nextval")
		}
		table.Columns[name] = column
	}
	if err := rows.Err(); err != nil {
		return nil, false
	}

	if len(table.Columns) == 0 {
		return nil, false
	}

	if !i.markPrimaryKeys(ctx, tableName, table) {
		return nil, false
	}

	return table, true
}

// markPrimaryKeys flags the table's primary key columns. A failure here
// is treated the same as a missing table.
func (i *Inspector) markPrimaryKeys(ctx context.Context, tableName string, table *Table) bool {
	pkQuery := i.qb.
		Select("kcu.column_name").
		From("information_schema.table_constraints tc").
		Join("information_schema.key_column_usage kcu ON tc.constraint_name = kcu.constraint_name AND tc.table_schema = kcu.table_schema").
		Where(squirrel.Eq{"tc.table_name": tableName, "tc.constraint_type": "PRIMARY KEY"}).
		Where(squirrel.Expr("tc.table_schema IN (current_schema(), 'public')"))

	query, args, err := pkQuery.ToSql()
	if err != nil {
		return false
	}

	rows, err := i.db.QueryContext(ctx, query, args...)
	if err != nil {
		return false
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return false
		}
		if column, ok := table.Columns[name]; ok {
			column.IsPrimary = true
			table.Columns[name] = column
		}
	}
	return rows.Err() == nil
}
