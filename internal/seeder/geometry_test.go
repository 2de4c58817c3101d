package seeder

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

const backfillSQL = `UPDATE "Locations" SET "coordinates" = ST_SetSRID(ST_MakePoint($1, $2), 4326) WHERE "id" = $3 AND "coordinates" IS NULL`

func TestBackfillPointSetsNullColumn(t *testing.T) {
	s, mock, closeDB := newMockSeeder(t)
	defer closeDB()

	mock.ExpectExec(regexp.QuoteMeta(backfillSQL)).
		WithArgs(-122.3949, 37.7936, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	wasSet, err := s.backfillPointIfNull(context.Background(), "Locations", "id", 5, "coordinates", -122.3949, 37.7936)
	if err != nil {
		t.Fatalf("backfill failed: %v", err)
	}
	if !wasSet {
		t.Error("expected wasSet=true on first backfill")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestBackfillPointIsWriteOnce(t *testing.T) {
	s, mock, closeDB := newMockSeeder(t)
	defer closeDB()

	mock.ExpectExec(regexp.QuoteMeta(backfillSQL)).
		WithArgs(-122.3949, 37.7936, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(backfillSQL)).
		WithArgs(-122.3949, 37.7936, 5).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ctx := context.Background()
	first, err := s.backfillPointIfNull(ctx, "Locations", "id", 5, "coordinates", -122.3949, 37.7936)
	if err != nil {
		t.Fatalf("first backfill failed: %v", err)
	}
	second, err := s.backfillPointIfNull(ctx, "Locations", "id", 5, "coordinates", -122.3949, 37.7936)
	if err != nil {
		t.Fatalf("second backfill failed: %v", err)
	}

	if !first || second {
		t.Errorf("affected = (%v, %v), want (true, false)", first, second)
	}
}

func TestBackfillPointNeverOverwrites(t *testing.T) {
	s, mock, closeDB := newMockSeeder(t)
	defer closeDB()

	// A row whose coordinates are already set matches no row, whatever
	// coordinates the caller supplies.
	mock.ExpectExec(regexp.QuoteMeta(backfillSQL)).
		WithArgs(0.0, 0.0, 5).
		WillReturnResult(sqlmock.NewResult(0, 0))

	wasSet, err := s.backfillPointIfNull(context.Background(), "Locations", "id", 5, "coordinates", 0, 0)
	if err != nil {
		t.Fatalf("backfill failed: %v", err)
	}
	if wasSet {
		t.Error("expected wasSet=false for an already-populated column")
	}
}
