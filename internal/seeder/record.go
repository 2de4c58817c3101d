package seeder

import "github.com/voltgrid/chargeseed/internal/schema"

// Record is a candidate row: logical field names mapped to values. Field
// names are a superset of the physical columns a deployment may have.
type Record map[string]interface{}

// Project restricts a candidate record to the columns the live table
// actually has. Values are copied unchanged; fields without a matching
// column are silently dropped. This is what lets one fixed set of demo
// values work across schema versions that have or have not grown an
// optional column yet.
func Project(candidate Record, table *schema.Table) Record {
	projected := make(Record, len(candidate))
	for field, value := range candidate {
		if table.HasColumn(field) {
			projected[field] = value
		}
	}
	return projected
}
