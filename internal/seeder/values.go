package seeder

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// DefaultStationID is the well-known demo station identifier used when
// no override is supplied.
const DefaultStationID = "00000000-0000-0000-0000-000000000001"

// Values holds the concrete demo values seeded into the database. Any of
// them can be overridden from a YAML file; the station id can also be
// overridden from the environment.
type Values struct {
	TenantID   int    `yaml:"tenantId"`
	TenantName string `yaml:"tenantName"`

	PartyID     string `yaml:"partyId"`
	CountryCode string `yaml:"countryCode"`

	LocationName string  `yaml:"locationName"`
	Address      string  `yaml:"address"`
	City         string  `yaml:"city"`
	State        string  `yaml:"state"`
	PostalCode   string  `yaml:"postalCode"`
	Country      string  `yaml:"country"`
	Longitude    float64 `yaml:"longitude"`
	Latitude     float64 `yaml:"latitude"`

	StationID string `yaml:"stationId"`

	EvseTypeID int `yaml:"evseTypeId"`
	EvseID     int `yaml:"evseId"`

	ConnectorID     int    `yaml:"connectorId"`
	ConnectorStatus string `yaml:"connectorStatus"`
}

func DefaultValues() Values {
	return Values{
		TenantID:   1,
		TenantName: "Demo Tenant",

		PartyID:     "TST",
		CountryCode: "US",

		LocationName: "Demo Location",
		Address:      "1 Market Street",
		City:         "San Francisco",
		State:        "CA",
		PostalCode:   "94105",
		Country:      "US",
		Longitude:    -122.3949,
		Latitude:     37.7936,

		StationID: DefaultStationID,

		EvseTypeID: 1,
		EvseID:     1,

		ConnectorID:     1,
		ConnectorStatus: "Available",
	}
}

// LoadFile overlays values from a YAML file. Fields absent from the file
// keep their current value.
func (v *Values) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read values file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse values file %s: %w", path, err)
	}
	return nil
}

// ApplyEnvOverrides reads the station id override from the named
// environment variable, if set. The override must be a valid UUID.
func (v *Values) ApplyEnvOverrides(stationIDEnv string) error {
	if stationIDEnv == "" {
		return nil
	}
	override := os.Getenv(stationIDEnv)
	if override == "" {
		return nil
	}
	if _, err := uuid.Parse(override); err != nil {
		return fmt.Errorf("invalid station id in %s: %w", stationIDEnv, err)
	}
	v.StationID = override
	return nil
}
