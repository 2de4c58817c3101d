package database

import (
	"reflect"
	"testing"
)

func TestQuoteIdentifier(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Tenants", `"Tenants"`},
		{"camel case", "ChargingStations", `"ChargingStations"`},
		{"lower", "coordinates", `"coordinates"`},
		{"embedded quote", `bad"name`, `"bad""name"`},
		{"only quotes", `""`, `""""""`},
		{"empty", "", `""`},
	}

	for _, tc := range cases {
		if got := QuoteIdentifier(tc.in); got != tc.want {
			t.Errorf("%s: QuoteIdentifier(%q) = %s, want %s", tc.name, tc.in, got, tc.want)
		}
	}
}

func TestQuoteIdentifiers(t *testing.T) {
	got := QuoteIdentifiers([]string{"id", "partyId", `x"y`})
	want := []string{`"id"`, `"partyId"`, `"x""y"`}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("QuoteIdentifiers = %v, want %v", got, want)
	}

	if got := QuoteIdentifiers(nil); len(got) != 0 {
		t.Errorf("QuoteIdentifiers(nil) = %v, want empty", got)
	}
}
