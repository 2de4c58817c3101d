package seeder

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/voltgrid/chargeseed/internal/database"
)

// ensureRow implements find-or-create without relying on database-level
// unique constraints: read the row matching the uniqueness predicate,
// and only insert when nothing is there. The read and the write are not
// wrapped in a transaction; the tool is meant for one-at-a-time operator
// use, so two concurrent runs racing past the read is an accepted
// limitation rather than a handled case.
func (s *Seeder) ensureRow(ctx context.Context, table string, where Record, record Record, resultColumns []string) (Record, bool, error) {
	if len(record) == 0 {
		return nil, false, fmt.Errorf("no insertable columns for table %s", table)
	}

	quotedTable := database.QuoteIdentifier(table)
	quotedResults := database.QuoteIdentifiers(resultColumns)

	predicate := squirrel.Eq{}
	for column, value := range where {
		predicate[database.QuoteIdentifier(column)] = value
	}

	query, args, err := s.qb.
		Select(quotedResults...).
		From(quotedTable).
		Where(predicate).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("failed to build lookup for %s: %w", table, err)
	}

	existing, err := s.queryOneRow(ctx, query, args)
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up existing row in %s: %w", table, err)
	}
	if existing != nil {
		return existing, false, nil
	}

	columns := make([]string, 0, len(record))
	for column := range record {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	values := make([]interface{}, len(columns))
	for i, column := range columns {
		values[i] = record[column]
	}

	query, args, err = s.qb.
		Insert(quotedTable).
		Columns(database.QuoteIdentifiers(columns)...).
		Values(values...).
		Suffix("RETURNING " + strings.Join(quotedResults, ", ")).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("failed to build insert for %s: %w", table, err)
	}

	inserted, err := s.queryOneRow(ctx, query, args)
	if err != nil {
		return nil, false, fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	if inserted == nil {
		// The write was expected to hand back exactly one row.
		return nil, false, fmt.Errorf("insert into %s returned no row", table)
	}
	return inserted, true, nil
}

// queryOneRow runs a query expected to yield zero or one row and returns
// the row as a column-keyed map, or nil when there was no row.
func (s *Seeder) queryOneRow(ctx context.Context, query string, args []interface{}) (Record, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	values := make([]interface{}, len(columns))
	pointers := make([]interface{}, len(columns))
	for i := range values {
		pointers[i] = &values[i]
	}
	if err := rows.Scan(pointers...); err != nil {
		return nil, err
	}

	row := make(Record, len(columns))
	for i, column := range columns {
		row[column] = values[i]
	}
	return row, nil
}
