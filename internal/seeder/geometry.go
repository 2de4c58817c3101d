package seeder

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/voltgrid/chargeseed/internal/database"
)

// backfillPointIfNull sets a WGS-84 (EPSG:4326) point on the row matching
// idColumn = idValue, but only when the point column is currently null.
// Operator-provided coordinates are never overwritten. Returns whether a
// row was actually changed.
func (s *Seeder) backfillPointIfNull(ctx context.Context, table, idColumn string, idValue interface{}, pointColumn string, longitude, latitude float64) (bool, error) {
	quotedTable := database.QuoteIdentifier(table)
	quotedID := database.QuoteIdentifier(idColumn)
	quotedPoint := database.QuoteIdentifier(pointColumn)

	query, args, err := s.qb.
		Update(quotedTable).
		Set(quotedPoint, squirrel.Expr("ST_SetSRID(ST_MakePoint(?, ?), 4326)", longitude, latitude)).
		Where(squirrel.Expr(quotedID+" = ?", idValue)).
		Where(squirrel.Expr(quotedPoint + " IS NULL")).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build geometry update for %s: %w", table, err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to set %s.%s: %w", table, pointColumn, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows for %s: %w", table, err)
	}
	return affected > 0, nil
}
