package main

import (
	"testing"
)

// This file IS our development roadmap!
// Each skipped test represents a feature to implement.
// Unskip tests as you implement features.

func TestBigsky_Roadmap(t *testing.T) {
	t.Run("1_City_Management", func(t *testing.T) {
		t.Run("Remove_City", func(t *testing.T) {
			t.Skip("TODO: compact the append-only city file so an entry can be dropped")
		})

		t.Run("Refile_City", func(t *testing.T) {
			t.Skip("TODO: move a saved city to a different prefix without hand-editing the file")
		})

		t.Run("Export_Cities", func(t *testing.T) {
			t.Skip("TODO: export user-added cities as CSV from the browse screen")
		})
	})

	t.Run("2_Lookups", func(t *testing.T) {
		t.Run("Fuzzy_Suggestions", func(t *testing.T) {
			t.Skip("TODO: suggest near-miss city names when a lookup fails")
		})

		t.Run("Seat_To_County", func(t *testing.T) {
			t.Skip("TODO: show all cities filed under a county from the browse screen")
		})
	})

	t.Run("3_Data", func(t *testing.T) {
		t.Run("Alternate_Datasets", func(t *testing.T) {
			t.Skip("TODO: load prefix tables for other states that use county prefixes")
		})
	})
}
