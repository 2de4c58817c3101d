package seeder

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/fatih/color"

	"github.com/voltgrid/chargeseed/internal/database"
	"github.com/voltgrid/chargeseed/internal/schema"
)

// Seeded tables, in dependency order. Tenants is the only mandatory one;
// every other entity is skipped when its table is absent.
const (
	TableTenants          = "Tenants"
	TableTenantPartners   = "TenantPartners"
	TableLocations        = "Locations"
	TableChargingStations = "ChargingStations"
	TableEvses            = "Evses"
	TableConnectors       = "Connectors"
)

// Seeder idempotently ensures a small graph of demo records: one tenant,
// one partner, one location, one charging station, one EVSE and one
// connector, each wired to its parents through the ids the previous step
// produced. Re-running it against the same database changes nothing.
type Seeder struct {
	db        database.Querier
	qb        squirrel.StatementBuilderType
	inspector *schema.Inspector
	values    Values
}

func New(db database.Querier, qb squirrel.StatementBuilderType, values Values) *Seeder {
	return &Seeder{
		db:        db,
		qb:        qb,
		inspector: schema.NewInspector(db, qb),
		values:    values,
	}
}

// Summary describes what a run did.
type Summary struct {
	TenantCreated  bool
	StationID      string
	CoordinatesSet bool
	Seeded         []string
	Skipped        []string
}

// Run executes the fixed entity sequence. Strictly sequential: no
// entity's insert is issued before its parent's ensure has returned.
func (s *Seeder) Run(ctx context.Context) (*Summary, error) {
	summary := &Summary{StationID: s.values.StationID}
	now := time.Now().UTC()

	tenantID, err := s.seedTenant(ctx, now, summary)
	if err != nil {
		return nil, err
	}

	if err := s.seedPartner(ctx, now, tenantID, summary); err != nil {
		return nil, err
	}

	locationID, err := s.seedLocation(ctx, now, tenantID, summary)
	if err != nil {
		return nil, err
	}

	stationID, err := s.seedStation(ctx, now, tenantID, locationID, summary)
	if err != nil {
		return nil, err
	}

	evseID, err := s.seedEvse(ctx, now, stationID, summary)
	if err != nil {
		return nil, err
	}

	if err := s.seedConnector(ctx, now, tenantID, stationID, evseID, summary); err != nil {
		return nil, err
	}

	return summary, nil
}

func (s *Seeder) seedTenant(ctx context.Context, now time.Time, summary *Summary) (interface{}, error) {
	table, ok := s.inspector.Describe(ctx, TableTenants)
	if !ok {
		return nil, fmt.Errorf("required table %q is missing", TableTenants)
	}

	candidate := Record{
		"id":        s.values.TenantID,
		"name":      s.values.TenantName,
		"createdAt": now,
		"updatedAt": now,
	}
	where := Record{"id": s.values.TenantID}

	row, created, err := s.ensureEntity(ctx, table, where, candidate)
	if err != nil {
		return nil, err
	}
	summary.TenantCreated = created
	s.reportEnsured(summary, TableTenants, created)
	return row["id"], nil
}

func (s *Seeder) seedPartner(ctx context.Context, now time.Time, tenantID interface{}, summary *Summary) error {
	table, ok := s.inspector.Describe(ctx, TableTenantPartners)
	if !ok {
		s.reportSkipped(summary, TableTenantPartners)
		return nil
	}

	where := Record{
		"partyId":     s.values.PartyID,
		"countryCode": s.values.CountryCode,
	}
	if table.HasColumn("tenantId") {
		where["tenantId"] = tenantID
	}
	candidate := Record{
		"partyId":     s.values.PartyID,
		"countryCode": s.values.CountryCode,
		"tenantId":    tenantID,
		"createdAt":   now,
		"updatedAt":   now,
	}

	_, created, err := s.ensureEntity(ctx, table, where, candidate)
	if err != nil {
		return err
	}
	s.reportEnsured(summary, TableTenantPartners, created)
	return nil
}

func (s *Seeder) seedLocation(ctx context.Context, now time.Time, tenantID interface{}, summary *Summary) (interface{}, error) {
	table, ok := s.inspector.Describe(ctx, TableLocations)
	if !ok {
		s.reportSkipped(summary, TableLocations)
		return nil, nil
	}

	where := Record{"name": s.values.LocationName}
	if table.HasColumn("tenantId") {
		where["tenantId"] = tenantID
	}
	candidate := Record{
		"name":       s.values.LocationName,
		"address":    s.values.Address,
		"city":       s.values.City,
		"state":      s.values.State,
		"postalCode": s.values.PostalCode,
		"country":    s.values.Country,
		"tenantId":   tenantID,
		"createdAt":  now,
		"updatedAt":  now,
	}

	row, created, err := s.ensureEntity(ctx, table, where, candidate)
	if err != nil {
		return nil, err
	}
	s.reportEnsured(summary, TableLocations, created)

	// Coordinates are a post-creation enrichment, not part of the row's
	// identity, and must never clobber operator-provided values.
	if table.HasColumn("coordinates") {
		wasSet, err := s.backfillPointIfNull(ctx, TableLocations, "id", row["id"], "coordinates", s.values.Longitude, s.values.Latitude)
		if err != nil {
			return nil, err
		}
		summary.CoordinatesSet = wasSet
		if wasSet {
			color.Green("  ✅ %s coordinates set to (%v, %v)", TableLocations, s.values.Longitude, s.values.Latitude)
		}
	}

	return row["id"], nil
}

func (s *Seeder) seedStation(ctx context.Context, now time.Time, tenantID, locationID interface{}, summary *Summary) (interface{}, error) {
	table, ok := s.inspector.Describe(ctx, TableChargingStations)
	if !ok {
		s.reportSkipped(summary, TableChargingStations)
		return nil, nil
	}

	where := Record{"id": s.values.StationID}
	candidate := Record{
		"id":         s.values.StationID,
		"locationId": locationID,
		"tenantId":   tenantID,
		"createdAt":  now,
		"updatedAt":  now,
	}

	row, created, err := s.ensureEntity(ctx, table, where, candidate)
	if err != nil {
		return nil, err
	}
	s.reportEnsured(summary, TableChargingStations, created)
	return row["id"], nil
}

func (s *Seeder) seedEvse(ctx context.Context, now time.Time, stationID interface{}, summary *Summary) (interface{}, error) {
	table, ok := s.inspector.Describe(ctx, TableEvses)
	if !ok {
		s.reportSkipped(summary, TableEvses)
		return nil, nil
	}

	// The fallback to evseId keys on the COLUMN being absent from the
	// schema, not on the candidate value being null. Older schemas that
	// never grew an evseTypeId column keep their original identity rule.
	where := Record{"stationId": stationID}
	if table.HasColumn("evseTypeId") {
		where["evseTypeId"] = s.values.EvseTypeID
	} else {
		where["evseId"] = s.values.EvseID
	}
	candidate := Record{
		"stationId":  stationID,
		"evseTypeId": s.values.EvseTypeID,
		"evseId":     s.values.EvseID,
		"createdAt":  now,
		"updatedAt":  now,
	}

	row, created, err := s.ensureEntity(ctx, table, where, candidate)
	if err != nil {
		return nil, err
	}
	s.reportEnsured(summary, TableEvses, created)
	return row["id"], nil
}

func (s *Seeder) seedConnector(ctx context.Context, now time.Time, tenantID, stationID, evseID interface{}, summary *Summary) error {
	table, ok := s.inspector.Describe(ctx, TableConnectors)
	if !ok {
		s.reportSkipped(summary, TableConnectors)
		return nil
	}

	where := Record{
		"stationId":   stationID,
		"connectorId": s.values.ConnectorID,
	}
	candidate := Record{
		"stationId":   stationID,
		"connectorId": s.values.ConnectorID,
		"status":      s.values.ConnectorStatus,
		"evseId":      evseID,
		"tenantId":    tenantID,
		"createdAt":   now,
		"updatedAt":   now,
	}

	_, created, err := s.ensureEntity(ctx, table, where, candidate)
	if err != nil {
		return err
	}
	s.reportEnsured(summary, TableConnectors, created)
	return nil
}

// ensureEntity projects the candidate against the live table and ensures
// the row, returning at least its id.
func (s *Seeder) ensureEntity(ctx context.Context, table *schema.Table, where, candidate Record) (Record, bool, error) {
	projected := Project(candidate, table)
	return s.ensureRow(ctx, table.Name, where, projected, []string{"id"})
}

func (s *Seeder) reportEnsured(summary *Summary, table string, created bool) {
	if created {
		color.Green("  ✅ %s row created", table)
	} else {
		color.Cyan("  ✔️  %s row already present", table)
	}
	summary.Seeded = append(summary.Seeded, table)
}

func (s *Seeder) reportSkipped(summary *Summary, table string) {
	color.Yellow("  ⏭️  %s table not found, skipping", table)
	summary.Skipped = append(summary.Skipped, table)
}
