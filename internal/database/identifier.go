package database

import "strings"

// QuoteIdentifier wraps a table or column name in double quotes and
// doubles any embedded quote characters, so names like ChargingStations
// keep their case and a hostile name cannot break out of the identifier
// position. Data values never go through here; they are always bound
// parameters.
func QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// QuoteIdentifiers quotes each name in order.
func QuoteIdentifiers(names []string) []string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = QuoteIdentifier(name)
	}
	return quoted
}
